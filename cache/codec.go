package cache

import (
	"bytes"
	"encoding/gob"

	"github.com/klauspost/compress/s2"
	"golang.org/x/xerrors"
)

// entryContainerVersion1 is the first byte of every serialized entry.
// The remainder is an s2-compressed gob stream.
const entryContainerVersion1 byte = 0x01

// EncodeEntry serializes an Entry to its durable byte representation
func EncodeEntry(entry Entry) ([]byte, error) {
	buffer := &bytes.Buffer{}

	encoder := gob.NewEncoder(buffer)
	err := encoder.Encode(&entry)
	if err != nil {
		return nil, xerrors.Errorf("failed to encode cache entry: %w", err)
	}

	compressed := s2.Encode(nil, buffer.Bytes())

	data := make([]byte, 0, len(compressed)+1)
	data = append(data, entryContainerVersion1)
	data = append(data, compressed...)
	return data, nil
}

// DecodeEntry deserializes an Entry from its durable byte representation
func DecodeEntry(data []byte) (Entry, error) {
	if len(data) < 2 {
		return Entry{}, xerrors.Errorf("failed to decode cache entry: data is too short (%d bytes)", len(data))
	}

	if data[0] != entryContainerVersion1 {
		return Entry{}, xerrors.Errorf("failed to decode cache entry: unknown container version %d", data[0])
	}

	decompressed, err := s2.Decode(nil, data[1:])
	if err != nil {
		return Entry{}, xerrors.Errorf("failed to decompress cache entry: %w", err)
	}

	entry := Entry{}
	decoder := gob.NewDecoder(bytes.NewReader(decompressed))
	err = decoder.Decode(&entry)
	if err != nil {
		return Entry{}, xerrors.Errorf("failed to decode cache entry: %w", err)
	}

	return entry, nil
}
