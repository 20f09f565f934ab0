package utils

import (
	"encoding/base64"
	"path/filepath"
	"time"
)

func ParseTime(t string) (time.Time, error) {
	return time.Parse(time.RFC3339, t)
}

func MakeTimeToString(t time.Time) string {
	return t.Format(time.RFC3339)
}

// JoinPath joins file paths
func JoinPath(dir string, name string) string {
	return filepath.Join(dir, name)
}

// EncodeKeyToFileName encodes a cache key to a filesystem-safe file name.
// The encoding is reversible and collision-free for distinct keys.
func EncodeKeyToFileName(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

// DecodeFileNameToKey decodes a file name made by EncodeKeyToFileName back to the cache key
func DecodeFileNameToKey(fileName string) (string, error) {
	keyBytes, err := base64.RawURLEncoding.DecodeString(fileName)
	if err != nil {
		return "", err
	}

	return string(keyBytes), nil
}
