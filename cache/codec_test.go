package cache

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestMetadata() ImageMetadata {
	return ImageMetadata{
		StudyInstanceUID:  "1.2.840.113619.2.5.100",
		SeriesInstanceUID: "1.2.840.113619.2.5.100.1",
		SOPInstanceUID:    "1.2.840.113619.2.5.100.1.7",
		Modality:          "CT",
		Rows:              512,
		Columns:           512,
		BitsStored:        12,
		Signed:            true,
		NumberOfFrames:    1,
		PixelSpacingX:     0.703125,
		PixelSpacingY:     0.703125,
	}
}

func makeTestPayload(size int, seed int64) []byte {
	payload := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(payload)
	return payload
}

func TestCodecRoundTrip(t *testing.T) {
	entry := NewEntry(makeTestMetadata(), makeTestPayload(4096, 1), makeTestPayload(8192, 2), WindowLevel{Center: 40, Width: 400})

	data, err := EncodeEntry(entry)
	require.NoError(t, err)

	decoded, err := DecodeEntry(data)
	require.NoError(t, err)

	assert.Equal(t, entry.Metadata, decoded.Metadata)
	assert.Equal(t, entry.RenderedImage, decoded.RenderedImage)
	assert.Equal(t, entry.PixelData, decoded.PixelData)
	assert.Equal(t, entry.WindowLevel, decoded.WindowLevel)
	assert.True(t, entry.Timestamp.Equal(decoded.Timestamp))
}

func TestCodecRoundTripWithoutRenderedImage(t *testing.T) {
	entry := NewEntry(makeTestMetadata(), nil, makeTestPayload(8192, 3), WindowLevel{Center: 40, Width: 400})

	data, err := EncodeEntry(entry)
	require.NoError(t, err)

	decoded, err := DecodeEntry(data)
	require.NoError(t, err)

	assert.Empty(t, decoded.RenderedImage)
	assert.Equal(t, entry.PixelData, decoded.PixelData)
}

func TestCodecDecodeCorruptData(t *testing.T) {
	_, err := DecodeEntry([]byte{})
	assert.Error(t, err)

	_, err = DecodeEntry([]byte{entryContainerVersion1, 0xde, 0xad, 0xbe, 0xef})
	assert.Error(t, err)

	// unknown container version
	_, err = DecodeEntry([]byte{0x7f, 0x00, 0x00})
	assert.Error(t, err)
}
