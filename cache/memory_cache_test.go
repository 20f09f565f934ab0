package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCostedEntry(size int) Entry {
	return NewEntry(makeTestMetadata(), nil, make([]byte, size), WindowLevel{Center: 40, Width: 400})
}

func TestMemoryCacheSetGet(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	entry := makeCostedEntry(100)
	memoryCache.Set("key1", entry, entry.EstimatedCost())

	cached, ok := memoryCache.Get("key1")
	require.True(t, ok)
	assert.Equal(t, entry.PixelData, cached.PixelData)
	assert.Equal(t, int64(100), memoryCache.GetTotalCost())

	_, ok = memoryCache.Get("absent")
	assert.False(t, ok)
}

func TestMemoryCacheEntryCountCap(t *testing.T) {
	memoryCache, err := NewMemoryCache(3, 10000)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		entry := makeCostedEntry(10)
		memoryCache.Set(fmt.Sprintf("key%d", i), entry, entry.EstimatedCost())
	}

	assert.Equal(t, 3, memoryCache.GetTotalEntries())

	// oldest is evicted
	_, ok := memoryCache.Get("key0")
	assert.False(t, ok)

	for i := 1; i < 4; i++ {
		_, ok := memoryCache.Get(fmt.Sprintf("key%d", i))
		assert.True(t, ok)
	}
}

func TestMemoryCacheCostCap(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 100)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		entry := makeCostedEntry(40)
		memoryCache.Set(fmt.Sprintf("key%d", i), entry, entry.EstimatedCost())
	}

	// 3 * 40 = 120 exceeds the 100 cap, the least recently used entry goes
	assert.LessOrEqual(t, memoryCache.GetTotalCost(), int64(100))
	assert.Equal(t, 2, memoryCache.GetTotalEntries())

	_, ok := memoryCache.Get("key0")
	assert.False(t, ok)
	_, ok = memoryCache.Get("key2")
	assert.True(t, ok)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	first := makeCostedEntry(100)
	memoryCache.Set("key1", first, first.EstimatedCost())

	second := makeCostedEntry(200)
	memoryCache.Set("key1", second, second.EstimatedCost())

	// the old entry's cost is released
	assert.Equal(t, int64(200), memoryCache.GetTotalCost())
	assert.Equal(t, 1, memoryCache.GetTotalEntries())

	cached, ok := memoryCache.Get("key1")
	require.True(t, ok)
	assert.Equal(t, second.PixelData, cached.PixelData)
}

func TestMemoryCacheSetCostCap(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		entry := makeCostedEntry(200)
		memoryCache.Set(fmt.Sprintf("key%d", i), entry, entry.EstimatedCost())
	}

	require.Equal(t, int64(800), memoryCache.GetTotalCost())

	memoryCache.SetCostCap(500)
	assert.Equal(t, int64(500), memoryCache.GetCostCap())
	assert.LessOrEqual(t, memoryCache.GetTotalCost(), int64(500))
	assert.Equal(t, 2, memoryCache.GetTotalEntries())

	// most recently used entries survive
	_, ok := memoryCache.Get("key3")
	assert.True(t, ok)
	_, ok = memoryCache.Get("key0")
	assert.False(t, ok)
}

func TestMemoryCacheRemoveAll(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		entry := makeCostedEntry(50)
		memoryCache.Set(fmt.Sprintf("key%d", i), entry, entry.EstimatedCost())
	}

	memoryCache.RemoveAll()

	assert.Equal(t, 0, memoryCache.GetTotalEntries())
	assert.Equal(t, int64(0), memoryCache.GetTotalCost())

	_, ok := memoryCache.Get("key0")
	assert.False(t, ok)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	memoryCache, err := NewMemoryCache(50, 100000)
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d", j%20)
				entry := makeCostedEntry(10)
				memoryCache.Set(key, entry, entry.EstimatedCost())
				memoryCache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, memoryCache.GetTotalCost(), memoryCache.GetCostCap())
	assert.LessOrEqual(t, memoryCache.GetTotalEntries(), 50)
}
