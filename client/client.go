package client

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"

	"github.com/medimager/rendercache/cache"
	"github.com/medimager/rendercache/commons"
	"github.com/medimager/rendercache/service/api"
)

const (
	// large enough for a full-resolution multi-frame entry container
	messageRWLengthMax int = 64 * 1024 * 1024 // 64MB
)

// CacheClient is a client of a local render cache service
type CacheClient struct {
	address          string // host:port
	operationTimeout time.Duration
	grpcConnection   *grpc.ClientConn
	apiClient        api.RenderCacheAPIClient
	connected        bool
}

// NewCacheClient creates a new CacheClient for the given address (e.g., 127.0.0.1:12720)
func NewCacheClient(address string, operationTimeout time.Duration) *CacheClient {
	return &CacheClient{
		address:          address,
		operationTimeout: operationTimeout,
		grpcConnection:   nil,
		connected:        false,
	}
}

// Connect connects to the cache service
func (client *CacheClient) Connect() error {
	logger := log.WithFields(log.Fields{
		"package":  "client",
		"struct":   "CacheClient",
		"function": "Connect",
	})

	client.connected = false

	conn, err := grpc.Dial(client.address, grpc.WithInsecure())
	if err != nil {
		grpcErr := xerrors.Errorf("failed to dial to %q: %w", client.address, err)
		logger.Errorf("%+v", grpcErr)
		return grpcErr
	}

	client.grpcConnection = conn
	client.apiClient = api.NewRenderCacheAPIClient(conn)
	client.connected = true
	return nil
}

// Disconnect disconnects the connection from the cache service
func (client *CacheClient) Disconnect() {
	if client.apiClient != nil {
		client.apiClient = nil
	}

	if client.grpcConnection != nil {
		client.grpcConnection.Close()
		client.grpcConnection = nil
	}

	client.connected = false
}

func (client *CacheClient) getContextWithDeadline() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), client.operationTimeout)
}

func getLargeReadOption() grpc.CallOption {
	return grpc.MaxCallRecvMsgSize(messageRWLengthMax)
}

func getLargeWriteOption() grpc.CallOption {
	return grpc.MaxCallSendMsgSize(messageRWLengthMax)
}

// Store stores an entry to the cache service
func (client *CacheClient) Store(key string, entry cache.Entry) error {
	data, err := cache.EncodeEntry(entry)
	if err != nil {
		return err
	}

	ctx, cancel := client.getContextWithDeadline()
	defer cancel()

	request := &api.StoreEntryRequest{
		Key:  key,
		Data: data,
	}

	_, err = client.apiClient.StoreEntry(ctx, request, getLargeWriteOption())
	if err != nil {
		return commons.StatusToError(err)
	}

	return nil
}

// Retrieve retrieves an entry from the cache service. An absent key is a
// miss, not an error.
func (client *CacheClient) Retrieve(key string) (cache.Entry, bool, error) {
	ctx, cancel := client.getContextWithDeadline()
	defer cancel()

	request := &api.RetrieveEntryRequest{
		Key: key,
	}

	response, err := client.apiClient.RetrieveEntry(ctx, request, getLargeReadOption())
	if err != nil {
		convErr := commons.StatusToError(err)
		if commons.IsEntryNotFoundError(convErr) {
			return cache.Entry{}, false, nil
		}
		return cache.Entry{}, false, convErr
	}

	entry, err := cache.DecodeEntry(response.Data)
	if err != nil {
		return cache.Entry{}, false, err
	}

	return entry, true, nil
}

// Stat returns the cache service's diagnostic snapshot
func (client *CacheClient) Stat() (cache.TieredCacheStat, error) {
	ctx, cancel := client.getContextWithDeadline()
	defer cancel()

	response, err := client.apiClient.GetStat(ctx, &api.GetStatRequest{})
	if err != nil {
		return cache.TieredCacheStat{}, commons.StatusToError(err)
	}

	return cache.TieredCacheStat{
		MemoryEntries:       int(response.MemoryEntries),
		MemoryEntryCountCap: int(response.MemoryEntryCountCap),
		MemoryCost:          response.MemoryCost,
		MemoryCostCap:       response.MemoryCostCap,
		DiskEntries:         int(response.DiskEntries),
		DiskSize:            response.DiskSize,
		DiskSizeCap:         response.DiskSizeCap,
	}, nil
}

// LowMemory forwards the application low memory notification to the service
func (client *CacheClient) LowMemory() error {
	ctx, cancel := client.getContextWithDeadline()
	defer cancel()

	_, err := client.apiClient.LowMemory(ctx, &api.LowMemoryRequest{})
	if err != nil {
		return commons.StatusToError(err)
	}

	return nil
}
