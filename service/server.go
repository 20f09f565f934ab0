package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/medimager/rendercache/cache"
	"github.com/medimager/rendercache/commons"
	"github.com/medimager/rendercache/service/api"
)

// ServerConfig is a configuration for CacheServer
type ServerConfig struct {
	MemoryEntryCountMax    int
	MemoryCostMax          int64
	DiskCacheSizeMax       int64
	DiskCacheRootPath      string
	PressureThrottleFactor float64
	PressureRestoreDelay   time.Duration
}

// CacheServer hosts one tiered cache instance behind the RenderCacheAPI.
// Entry payloads on the wire use the same container as the disk tier.
type CacheServer struct {
	api.UnimplementedRenderCacheAPIServer

	config          *ServerConfig
	tieredCache     *cache.TieredCache
	pressureMonitor *cache.PressureMonitor
	pressureSource  *cache.MemInfoPressureSource
}

// NewServer creates a new CacheServer
func NewServer(config *ServerConfig) (*CacheServer, error) {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"function": "NewServer",
	})

	tieredCache, err := cache.NewTieredCache(config.MemoryEntryCountMax, config.MemoryCostMax, config.DiskCacheSizeMax, config.DiskCacheRootPath)
	if err != nil {
		logger.WithError(err).Error("failed to create a tiered cache")
		return nil, err
	}

	pressureMonitor := cache.NewPressureMonitor(tieredCache.GetMemoryCache(), config.PressureThrottleFactor, config.PressureRestoreDelay)
	pressureSource := cache.NewMemInfoPressureSource()

	pressureSource.Start()
	pressureMonitor.Start(pressureSource)

	return &CacheServer{
		config:          config,
		tieredCache:     tieredCache,
		pressureMonitor: pressureMonitor,
		pressureSource:  pressureSource,
	}, nil
}

// GetTieredCache returns the hosted tiered cache
func (server *CacheServer) GetTieredCache() *cache.TieredCache {
	return server.tieredCache
}

// StoreEntry stores an encoded entry to the tiered cache
func (server *CacheServer) StoreEntry(context context.Context, request *api.StoreEntryRequest) (*api.StoreEntryResponse, error) {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheServer",
		"function": "StoreEntry",
	})

	entry, err := cache.DecodeEntry(request.Data)
	if err != nil {
		logger.WithError(err).Errorf("failed to decode the entry for key %s", request.Key)
		return nil, commons.ErrorToStatus(commons.NewEntryCorruptError(request.Key))
	}

	server.tieredCache.Store(request.Key, entry)

	return &api.StoreEntryResponse{}, nil
}

// RetrieveEntry retrieves an encoded entry from the tiered cache. An absent
// key returns a NotFound status.
func (server *CacheServer) RetrieveEntry(context context.Context, request *api.RetrieveEntryRequest) (*api.RetrieveEntryResponse, error) {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheServer",
		"function": "RetrieveEntry",
	})

	entry, ok := server.tieredCache.Retrieve(request.Key)
	if !ok {
		return nil, commons.ErrorToStatus(commons.NewEntryNotFoundError(request.Key))
	}

	data, err := cache.EncodeEntry(entry)
	if err != nil {
		logger.WithError(err).Errorf("failed to encode the entry for key %s", request.Key)
		return nil, commons.ErrorToStatus(err)
	}

	return &api.RetrieveEntryResponse{
		Data: data,
	}, nil
}

// GetStat returns a diagnostic snapshot of the tiered cache
func (server *CacheServer) GetStat(context context.Context, request *api.GetStatRequest) (*api.GetStatResponse, error) {
	stat := server.tieredCache.GetStat()

	return &api.GetStatResponse{
		MemoryEntries:       int64(stat.MemoryEntries),
		MemoryEntryCountCap: int64(stat.MemoryEntryCountCap),
		MemoryCost:          stat.MemoryCost,
		MemoryCostCap:       stat.MemoryCostCap,
		DiskEntries:         int64(stat.DiskEntries),
		DiskSize:            stat.DiskSize,
		DiskSizeCap:         stat.DiskSizeCap,
	}, nil
}

// LowMemory handles the application-level low memory notification forwarded
// by a viewer process
func (server *CacheServer) LowMemory(context context.Context, request *api.LowMemoryRequest) (*api.LowMemoryResponse, error) {
	server.pressureMonitor.LowMemory()

	return &api.LowMemoryResponse{}, nil
}

// Stop stops the pressure monitor and shuts down the cache, keeping disk
// entries for the next process
func (server *CacheServer) Stop() {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheServer",
		"function": "Stop",
	})

	logger.Info("Stopping the cache server")

	server.pressureMonitor.Stop()
	server.pressureSource.Stop()
	server.tieredCache.Shutdown()
}

// Release stops the server and deletes the disk tier
func (server *CacheServer) Release() {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheServer",
		"function": "Release",
	})

	logger.Info("Releasing the cache server")

	server.pressureMonitor.Stop()
	server.pressureSource.Stop()
	server.tieredCache.Release()
}
