package service

import (
	"fmt"
	"net"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/medimager/rendercache/commons"
	"github.com/medimager/rendercache/service/api"
)

// CacheService is a service object
type CacheService struct {
	Config        *commons.Config
	Server        *CacheServer
	GrpcServer    *grpc.Server
	TerminateChan chan bool
	Terminated    bool
	Mutex         sync.Mutex // for termination
}

// NewCacheService creates a new cache service
func NewCacheService(config *commons.Config) (*CacheService, error) {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"function": "NewCacheService",
	})

	serverConfig := &ServerConfig{
		MemoryEntryCountMax:    config.MemoryEntryCountMax,
		MemoryCostMax:          config.MemoryCostMax,
		DiskCacheSizeMax:       config.DiskCacheSizeMax,
		DiskCacheRootPath:      config.DiskCacheRootPath,
		PressureThrottleFactor: config.PressureThrottleFactor,
		PressureRestoreDelay:   time.Duration(config.PressureRestoreDelay),
	}

	server, err := NewServer(serverConfig)
	if err != nil {
		logger.WithError(err).Error("failed to create a new server")
		return nil, err
	}

	grpcServer := grpc.NewServer()
	api.RegisterRenderCacheAPIServer(grpcServer, server)

	service := &CacheService{
		Config:        config,
		Server:        server,
		GrpcServer:    grpcServer,
		TerminateChan: make(chan bool),
	}

	return service, nil
}

// Start starts the service
func (svc *CacheService) Start() error {
	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheService",
		"function": "Start",
	})

	logger.Info("Starting the Render Cache service")

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", svc.Config.ServicePort))
	if err != nil {
		logger.Error(err)
		return err
	}

	go func() {
		logger := log.WithFields(log.Fields{
			"package": "service",
			"struct":  "CacheService",
		})

		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-svc.TerminateChan:
				// terminate
				return
			case <-ticker.C:
				stat := svc.Server.GetTieredCache().GetStat()
				logger.Infof("Memory tier %d entries, %d/%d bytes; disk tier %d entries, %d/%d bytes", stat.MemoryEntries, stat.MemoryCost, stat.MemoryCostCap, stat.DiskEntries, stat.DiskSize, stat.DiskSizeCap)
			}
		}
	}()

	err = svc.GrpcServer.Serve(listener)
	if err != nil {
		logger.Error(err)
		return err
	}

	// should not return
	return nil
}

// Destroy destroys the service. Disk tier entries are kept so the next
// process serves them as cold lookups.
func (svc *CacheService) Destroy() {
	svc.Mutex.Lock()
	defer svc.Mutex.Unlock()

	if svc.Terminated {
		// already terminated
		return
	}

	svc.Terminated = true

	logger := log.WithFields(log.Fields{
		"package":  "service",
		"struct":   "CacheService",
		"function": "Destroy",
	})

	logger.Info("Destroying the Render Cache service")
	svc.TerminateChan <- true

	if svc.GrpcServer != nil {
		svc.GrpcServer.Stop()
	}

	if svc.Server != nil {
		svc.Server.Stop()
	}
}
