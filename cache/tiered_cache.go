package cache

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const diskWriteQueueDepth int = 64

// TieredCache is the public facade over the memory and disk tiers.
// Lookups go memory -> disk -> miss; a disk hit is promoted into memory.
// Stores write the memory tier synchronously and hand the disk copy to a
// single serialized write lane, so same-key overwrites converge to the
// newest bytes on disk.
type TieredCache struct {
	memoryCache       *MemoryCache
	diskCache         *DiskCache
	diskWriteQueue    chan diskWriteRequest
	diskWriterDone    chan struct{}
	pendingDiskWrites sync.WaitGroup
	shutdownOnce      sync.Once
}

type diskWriteRequest struct {
	key   string
	entry Entry
}

// TieredCacheStat contains diagnostic counters of a TieredCache
type TieredCacheStat struct {
	MemoryEntries       int   `json:"memory_entries"`
	MemoryEntryCountCap int   `json:"memory_entry_count_cap"`
	MemoryCost          int64 `json:"memory_cost"`
	MemoryCostCap       int64 `json:"memory_cost_cap"`
	DiskEntries         int   `json:"disk_entries"`
	DiskSize            int64 `json:"disk_size"`
	DiskSizeCap         int64 `json:"disk_size_cap"`
}

// NewTieredCache creates a new TieredCache
func NewTieredCache(memoryEntryCountCap int, memoryCostCap int64, diskSizeCap int64, diskRootPath string) (*TieredCache, error) {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"function": "NewTieredCache",
	})

	memoryCache, err := NewMemoryCache(memoryEntryCountCap, memoryCostCap)
	if err != nil {
		logger.WithError(err).Error("failed to create a memory cache")
		return nil, err
	}

	diskCache, err := NewDiskCache(diskSizeCap, diskRootPath)
	if err != nil {
		logger.WithError(err).Error("failed to create a disk cache")
		return nil, err
	}

	tieredCache := &TieredCache{
		memoryCache:    memoryCache,
		diskCache:      diskCache,
		diskWriteQueue: make(chan diskWriteRequest, diskWriteQueueDepth),
		diskWriterDone: make(chan struct{}),
	}

	go tieredCache.runDiskWriter()

	return tieredCache, nil
}

// Store writes the entry to the memory tier synchronously and queues it for
// the disk tier without blocking the caller. After Store returns, Retrieve of
// the same key is guaranteed to hit the memory tier; the disk copy is
// eventual. Disk write failures are logged and swallowed - the memory tier
// holds the authoritative copy for the session. Store must not be called
// after Shutdown or Release.
func (cache *TieredCache) Store(key string, entry Entry) {
	cache.memoryCache.Set(key, entry, entry.EstimatedCost())
	promGaugeForMemoryCost.Set(float64(cache.memoryCache.GetTotalCost()))

	cache.pendingDiskWrites.Add(1)
	cache.diskWriteQueue <- diskWriteRequest{
		key:   key,
		entry: entry,
	}
}

// runDiskWriter drains the write queue in store order until the queue is
// closed by Shutdown
func (cache *TieredCache) runDiskWriter() {
	for request := range cache.diskWriteQueue {
		cache.storeOnDisk(request.key, request.entry)
	}

	close(cache.diskWriterDone)
}

func (cache *TieredCache) storeOnDisk(key string, entry Entry) {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "TieredCache",
		"function": "storeOnDisk",
	})

	defer cache.pendingDiskWrites.Done()

	err := cache.diskCache.Store(key, entry)
	if err != nil {
		// not surfaced to the caller
		logger.WithError(err).Errorf("failed to write a cache entry for key %s to disk", key)
		promCounterForDiskWriteFailures.Inc()
		return
	}

	promGaugeForDiskSize.Set(float64(cache.diskCache.GetTotalEntrySize()))
}

// Retrieve returns the entry for the key, checking the memory tier first and
// falling through to the disk tier. A disk hit is promoted into the memory
// tier so the next retrieval is served from memory. A miss in both tiers
// returns a miss, never an error.
func (cache *TieredCache) Retrieve(key string) (Entry, bool) {
	if entry, ok := cache.memoryCache.Get(key); ok {
		promCounterForMemoryHit.Inc()
		return entry, true
	}
	promCounterForMemoryMiss.Inc()

	if entry, ok := cache.diskCache.Retrieve(key); ok {
		promCounterForDiskHit.Inc()

		// promote
		cache.memoryCache.Set(key, entry, entry.EstimatedCost())
		promGaugeForMemoryCost.Set(float64(cache.memoryCache.GetTotalCost()))
		promCounterForPromotions.Inc()

		return entry, true
	}
	promCounterForDiskMiss.Inc()

	return Entry{}, false
}

// GetMemoryCache returns the memory tier
func (cache *TieredCache) GetMemoryCache() *MemoryCache {
	return cache.memoryCache
}

// GetDiskCache returns the disk tier
func (cache *TieredCache) GetDiskCache() *DiskCache {
	return cache.diskCache
}

// WaitPendingDiskWrites blocks until queued disk writes complete
func (cache *TieredCache) WaitPendingDiskWrites() {
	cache.pendingDiskWrites.Wait()
}

// GetStat returns a diagnostic snapshot
func (cache *TieredCache) GetStat() TieredCacheStat {
	return TieredCacheStat{
		MemoryEntries:       cache.memoryCache.GetTotalEntries(),
		MemoryEntryCountCap: cache.memoryCache.GetEntryCountCap(),
		MemoryCost:          cache.memoryCache.GetTotalCost(),
		MemoryCostCap:       cache.memoryCache.GetCostCap(),
		DiskEntries:         cache.diskCache.GetTotalEntries(),
		DiskSize:            cache.diskCache.GetTotalEntrySize(),
		DiskSizeCap:         cache.diskCache.GetSizeCap(),
	}
}

// Shutdown drains the write lane, stops the disk writer and clears the
// memory tier. Disk entries are left in place so the next process serves
// them as cold lookups. Idempotent.
func (cache *TieredCache) Shutdown() {
	cache.shutdownOnce.Do(func() {
		logger := log.WithFields(log.Fields{
			"package":  "cache",
			"struct":   "TieredCache",
			"function": "Shutdown",
		})

		logger.Info("Shutting down the tiered cache, keeping disk entries")

		cache.pendingDiskWrites.Wait()
		close(cache.diskWriteQueue)
		<-cache.diskWriterDone

		cache.memoryCache.RemoveAll()
	})
}

// Release shuts down and deletes the disk tier's entries and root
func (cache *TieredCache) Release() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "TieredCache",
		"function": "Release",
	})

	logger.Info("Releasing the tiered cache")

	cache.Shutdown()
	cache.diskCache.Release()
}
