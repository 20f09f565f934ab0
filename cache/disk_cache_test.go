package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCacheStoreRetrieve(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	entry := NewEntry(makeTestMetadata(), makeTestPayload(4096, 10), makeTestPayload(8192, 11), WindowLevel{Center: 40, Width: 400})

	err = diskCache.Store("study1:0:40:400", entry)
	require.NoError(t, err)

	cached, ok := diskCache.Retrieve("study1:0:40:400")
	require.True(t, ok)
	assert.Equal(t, entry.Metadata, cached.Metadata)
	assert.Equal(t, entry.RenderedImage, cached.RenderedImage)
	assert.Equal(t, entry.PixelData, cached.PixelData)
	assert.Equal(t, entry.WindowLevel, cached.WindowLevel)
	assert.True(t, entry.Timestamp.Equal(cached.Timestamp))
}

func TestDiskCacheMiss(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	_, ok := diskCache.Retrieve("absent")
	assert.False(t, ok)
}

func TestDiskCacheOverwrite(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	first := NewEntry(makeTestMetadata(), nil, makeTestPayload(1024, 20), WindowLevel{Center: 40, Width: 400})
	require.NoError(t, diskCache.Store("key1", first))

	second := NewEntry(makeTestMetadata(), nil, makeTestPayload(2048, 21), WindowLevel{Center: 300, Width: 1500})
	require.NoError(t, diskCache.Store("key1", second))

	assert.Equal(t, 1, diskCache.GetTotalEntries())

	cached, ok := diskCache.Retrieve("key1")
	require.True(t, ok)
	assert.Equal(t, second.PixelData, cached.PixelData)
	assert.Equal(t, second.WindowLevel, cached.WindowLevel)
}

func TestDiskCacheCorruptFileIsAMiss(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	entry := NewEntry(makeTestMetadata(), nil, makeTestPayload(1024, 30), WindowLevel{})
	require.NoError(t, diskCache.Store("key1", entry))

	// scribble over the file
	filePath := diskCache.getFilePath("key1")
	require.NoError(t, os.WriteFile(filePath, []byte("not a cache entry"), 0666))

	_, ok := diskCache.Retrieve("key1")
	assert.False(t, ok)

	// the corrupt file is deleted
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskCacheEnforceMaxSize(t *testing.T) {
	// incompressible 10KiB payloads encode to a bit over 10KiB each;
	// the cap fits three entries but not four
	diskCache, err := NewDiskCache(36000, t.TempDir())
	require.NoError(t, err)

	makeEntry := func(seed int64) Entry {
		return NewEntry(makeTestMetadata(), nil, makeTestPayload(10240, seed), WindowLevel{Center: 40, Width: 400})
	}

	require.NoError(t, diskCache.Store("keyA", makeEntry(40)))
	require.NoError(t, diskCache.Store("keyB", makeEntry(41)))
	require.NoError(t, diskCache.Store("keyC", makeEntry(42)))
	require.Equal(t, 3, diskCache.GetTotalEntries())

	// keyA is the least recently accessed
	now := time.Now()
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyA"), now.Add(-3*time.Hour), now.Add(-3*time.Hour)))
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyB"), now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyC"), now.Add(-1*time.Hour), now.Add(-1*time.Hour)))

	// the fourth store sweeps keyA out
	require.NoError(t, diskCache.Store("keyD", makeEntry(43)))

	assert.LessOrEqual(t, diskCache.GetTotalEntrySize(), diskCache.GetSizeCap())

	_, ok := diskCache.Retrieve("keyA")
	assert.False(t, ok)
	_, ok = diskCache.Retrieve("keyB")
	assert.True(t, ok)
	_, ok = diskCache.Retrieve("keyC")
	assert.True(t, ok)
	_, ok = diskCache.Retrieve("keyD")
	assert.True(t, ok)
}

func TestDiskCacheRetrieveBumpsAccessRecency(t *testing.T) {
	diskCache, err := NewDiskCache(36000, t.TempDir())
	require.NoError(t, err)

	makeEntry := func(seed int64) Entry {
		return NewEntry(makeTestMetadata(), nil, makeTestPayload(10240, seed), WindowLevel{Center: 40, Width: 400})
	}

	require.NoError(t, diskCache.Store("keyA", makeEntry(50)))
	require.NoError(t, diskCache.Store("keyB", makeEntry(51)))
	require.NoError(t, diskCache.Store("keyC", makeEntry(52)))

	now := time.Now()
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyA"), now.Add(-3*time.Hour), now.Add(-3*time.Hour)))
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyB"), now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(diskCache.getFilePath("keyC"), now.Add(-1*time.Hour), now.Add(-1*time.Hour)))

	// retrieving keyA makes keyB the least recently accessed
	_, ok := diskCache.Retrieve("keyA")
	require.True(t, ok)

	require.NoError(t, diskCache.Store("keyD", makeEntry(53)))

	_, ok = diskCache.Retrieve("keyB")
	assert.False(t, ok)
	_, ok = diskCache.Retrieve("keyA")
	assert.True(t, ok)
}

func TestDiskCacheEntryKeys(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	entry := NewEntry(makeTestMetadata(), nil, makeTestPayload(512, 60), WindowLevel{})
	require.NoError(t, diskCache.Store("study1:0:40:400", entry))
	require.NoError(t, diskCache.Store("study1:1:40:400", entry))

	keys := diskCache.GetEntryKeys()
	assert.ElementsMatch(t, []string{"study1:0:40:400", "study1:1:40:400"}, keys)
}

func TestDiskCacheDeleteAllEntries(t *testing.T) {
	diskCache, err := NewDiskCache(1024*1024, t.TempDir())
	require.NoError(t, err)

	entry := NewEntry(makeTestMetadata(), nil, makeTestPayload(512, 70), WindowLevel{})
	require.NoError(t, diskCache.Store("key1", entry))
	require.NoError(t, diskCache.Store("key2", entry))

	diskCache.DeleteAllEntries()

	assert.Equal(t, 0, diskCache.GetTotalEntries())
	assert.Equal(t, int64(0), diskCache.GetTotalEntrySize())
}
