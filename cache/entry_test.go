package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryEstimatedCost(t *testing.T) {
	entry := NewEntry(ImageMetadata{}, make([]byte, 100), make([]byte, 250), WindowLevel{})
	assert.Equal(t, int64(350), entry.EstimatedCost())

	entryNoRender := NewEntry(ImageMetadata{}, nil, make([]byte, 250), WindowLevel{})
	assert.Equal(t, int64(250), entryNoRender.EstimatedCost())

	entryEmpty := NewEntry(ImageMetadata{}, nil, nil, WindowLevel{})
	assert.Equal(t, int64(0), entryEmpty.EstimatedCost())
}

func TestMakeEntryKey(t *testing.T) {
	windowLevel := WindowLevel{Center: 40, Width: 400}

	key := MakeEntryKey("1.2.840.113619.2.5.1762583", 0, windowLevel)
	sameKey := MakeEntryKey("1.2.840.113619.2.5.1762583", 0, windowLevel)
	assert.Equal(t, key, sameKey)

	// different frame
	assert.NotEqual(t, key, MakeEntryKey("1.2.840.113619.2.5.1762583", 1, windowLevel))

	// different window/level
	assert.NotEqual(t, key, MakeEntryKey("1.2.840.113619.2.5.1762583", 0, WindowLevel{Center: 300, Width: 1500}))

	// different instance
	assert.NotEqual(t, key, MakeEntryKey("1.2.840.113619.2.5.1762584", 0, windowLevel))
}
