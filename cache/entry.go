package cache

import (
	"fmt"
	"time"
)

// WindowLevel is the display window/level pair a rendered image was produced under
type WindowLevel struct {
	Center float64
	Width  float64
}

// ImageMetadata contains the structural description of the source image.
// The cache passes it through unchanged.
type ImageMetadata struct {
	StudyInstanceUID  string
	SeriesInstanceUID string
	SOPInstanceUID    string
	Modality          string
	Rows              int
	Columns           int
	BitsStored        int
	Signed            bool
	NumberOfFrames    int
	PixelSpacingX     float64
	PixelSpacingY     float64
}

// Entry is one cached imaging artifact. An Entry is an immutable value once
// constructed - replacement is modeled as overwrite-by-key.
type Entry struct {
	Metadata      ImageMetadata
	RenderedImage []byte
	PixelData     []byte
	WindowLevel   WindowLevel
	Timestamp     time.Time
}

// NewEntry creates a new Entry
func NewEntry(metadata ImageMetadata, renderedImage []byte, pixelData []byte, windowLevel WindowLevel) Entry {
	return Entry{
		Metadata:      metadata,
		RenderedImage: renderedImage,
		PixelData:     pixelData,
		WindowLevel:   windowLevel,
		Timestamp:     time.Now(),
	}
}

// EstimatedCost returns the cost (bytes) used for memory tier accounting
func (entry Entry) EstimatedCost() int64 {
	return int64(len(entry.RenderedImage)) + int64(len(entry.PixelData))
}

// MakeEntryKey makes a cache key for an artifact.
// Requests that produce byte-identical artifacts map to the same key.
func MakeEntryKey(sopInstanceUID string, frameIndex int, windowLevel WindowLevel) string {
	return fmt.Sprintf("%s:%d:%g:%g", sopInstanceUID, frameIndex, windowLevel.Center, windowLevel.Width)
}
