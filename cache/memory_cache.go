package cache

import (
	"sync"

	lrucache "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"
)

type memoryCacheItem struct {
	entry Entry
	cost  int64
}

// MemoryCache is the in-memory cache tier. It is bounded by an entry count
// cap and a total cost (bytes) cap. The cost cap is mutable at runtime - the
// pressure monitor lowers and restores it.
type MemoryCache struct {
	entryCountCap int
	costCap       int64
	totalCost     int64
	cache         *lrucache.Cache
	mutex         sync.RWMutex
}

// NewMemoryCache creates a new MemoryCache
func NewMemoryCache(entryCountCap int, costCap int64) (*MemoryCache, error) {
	memoryCache := &MemoryCache{
		entryCountCap: entryCountCap,
		costCap:       costCap,
		totalCost:     0,
		cache:         nil,
	}

	lruCache, err := lrucache.NewWithEvict(entryCountCap, memoryCache.onEvicted)
	if err != nil {
		return nil, err
	}

	memoryCache.cache = lruCache
	return memoryCache, nil
}

// Set puts an entry. Entries are evicted in least-recently-used order until
// both the entry count cap and the cost cap hold.
func (cache *MemoryCache) Set(key string, entry Entry, cost int64) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	// remove first so the old entry's cost is released via the eviction callback
	cache.cache.Remove(key)

	cache.cache.Add(key, &memoryCacheItem{
		entry: entry,
		cost:  cost,
	})
	cache.totalCost += cost

	cache.evictOverCostCap()
}

// Get returns the entry for the key, or a miss
func (cache *MemoryCache) Get(key string) (Entry, bool) {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	if item, ok := cache.cache.Get(key); ok {
		if cacheItem, ok := item.(*memoryCacheItem); ok {
			return cacheItem.entry, true
		}
	}

	return Entry{}, false
}

// Contains returns whether the key is cached without updating recency
func (cache *MemoryCache) Contains(key string) bool {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	return cache.cache.Contains(key)
}

// RemoveAll evicts all entries
func (cache *MemoryCache) RemoveAll() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "MemoryCache",
		"function": "RemoveAll",
	})

	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	logger.Info("Deleting all memory cache entries")
	cache.cache.Purge()
	cache.totalCost = 0
}

// GetEntryCountCap returns the entry count cap
func (cache *MemoryCache) GetEntryCountCap() int {
	return cache.entryCountCap
}

// GetCostCap returns the current cost cap
func (cache *MemoryCache) GetCostCap() int64 {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	return cache.costCap
}

// SetCostCap changes the cost cap, evicting entries if the new cap is exceeded
func (cache *MemoryCache) SetCostCap(costCap int64) {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "MemoryCache",
		"function": "SetCostCap",
	})

	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	logger.Infof("Changing memory cache cost cap %d -> %d", cache.costCap, costCap)
	cache.costCap = costCap

	cache.evictOverCostCap()
}

// GetTotalCost returns the aggregate cost of cached entries
func (cache *MemoryCache) GetTotalCost() int64 {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	return cache.totalCost
}

// GetTotalEntries returns the number of cached entries
func (cache *MemoryCache) GetTotalEntries() int {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	return cache.cache.Len()
}

// GetEntryKeys returns keys of cached entries
func (cache *MemoryCache) GetEntryKeys() []string {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	keys := []string{}
	for _, key := range cache.cache.Keys() {
		if strkey, ok := key.(string); ok {
			keys = append(keys, strkey)
		}
	}
	return keys
}

// evictOverCostCap must be called with the mutex held for write
func (cache *MemoryCache) evictOverCostCap() {
	for cache.totalCost > cache.costCap && cache.cache.Len() > 0 {
		cache.cache.RemoveOldest()
	}
}

// onEvicted is called by the LRU under the write lock held by Set, SetCostCap, RemoveAll
func (cache *MemoryCache) onEvicted(key interface{}, item interface{}) {
	if cacheItem, ok := item.(*memoryCacheItem); ok {
		cache.totalCost -= cacheItem.cost
		promCounterForMemoryEvictions.Inc()
	}
}
