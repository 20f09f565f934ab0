package client

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medimager/rendercache/cache"
)

// MetadataCache manages image metadata caches so viewer code can derive
// cache keys without re-parsing source files. Entries expire after the
// cache timeout.
type MetadataCache struct {
	cacheTimeout   time.Duration
	cleanupTimeout time.Duration
	metadataCache  *gocache.Cache
}

// NewMetadataCache creates a new MetadataCache
func NewMetadataCache(cacheTimeout time.Duration, cleanup time.Duration) *MetadataCache {
	metadataCache := gocache.New(cacheTimeout, cleanup)

	return &MetadataCache{
		cacheTimeout:   cacheTimeout,
		cleanupTimeout: cleanup,
		metadataCache:  metadataCache,
	}
}

// AddMetadataCache adds an image metadata cache
func (metaCache *MetadataCache) AddMetadataCache(metadata cache.ImageMetadata) {
	metaCache.metadataCache.Set(metadata.SOPInstanceUID, metadata, 0)
}

// GetMetadataCache retrieves an image metadata cache
func (metaCache *MetadataCache) GetMetadataCache(sopInstanceUID string) (cache.ImageMetadata, bool) {
	data, exist := metaCache.metadataCache.Get(sopInstanceUID)
	if exist {
		if metadata, ok := data.(cache.ImageMetadata); ok {
			return metadata, true
		}
	}
	return cache.ImageMetadata{}, false
}

// RemoveMetadataCache removes an image metadata cache
func (metaCache *MetadataCache) RemoveMetadataCache(sopInstanceUID string) {
	metaCache.metadataCache.Delete(sopInstanceUID)
}

// ClearMetadataCache clears all image metadata caches
func (metaCache *MetadataCache) ClearMetadataCache() {
	metaCache.metadataCache.Flush()
}
