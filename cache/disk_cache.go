package cache

import (
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/medimager/rendercache/utils"
)

// DiskCache is the persistent cache tier. One file per cache key under the
// root path, named by a reversible filesystem-safe encoding of the key.
// Writes are serialized per instance; reads may run concurrently with each
// other and with writes to different keys. A write is atomic at the file
// level (write-temp-then-rename), so a read racing a write to the same key
// observes the old bytes, the new bytes, or a miss - never a torn file.
type DiskCache struct {
	sizeCap    int64
	rootPath   string
	writeMutex sync.Mutex
}

const (
	tempFileSuffix string = ".tmp"
)

// NewDiskCache creates a new DiskCache
func NewDiskCache(sizeCap int64, rootPath string) (*DiskCache, error) {
	err := os.MkdirAll(rootPath, 0766)
	if err != nil {
		return nil, xerrors.Errorf("failed to make a disk cache dir %s: %w", rootPath, err)
	}

	return &DiskCache{
		sizeCap:  sizeCap,
		rootPath: rootPath,
	}, nil
}

// GetSizeCap returns the total size cap in bytes
func (cache *DiskCache) GetSizeCap() int64 {
	return cache.sizeCap
}

// GetRootPath returns the cache root path
func (cache *DiskCache) GetRootPath() string {
	return cache.rootPath
}

// Store serializes the entry and writes it to the path mapped from the key,
// overwriting any prior file. After every store the size cap is enforced.
func (cache *DiskCache) Store(key string, entry Entry) error {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "DiskCache",
		"function": "Store",
	})

	data, err := EncodeEntry(entry)
	if err != nil {
		return err
	}

	cache.writeMutex.Lock()
	defer cache.writeMutex.Unlock()

	filePath := cache.getFilePath(key)
	tempPath := filePath + tempFileSuffix

	logger.Debugf("Writing disk cache entry for key %s to %s", key, filePath)

	err = os.WriteFile(tempPath, data, 0666)
	if err != nil {
		os.Remove(tempPath)
		return xerrors.Errorf("failed to write a disk cache entry %s: %w", tempPath, err)
	}

	err = os.Rename(tempPath, filePath)
	if err != nil {
		os.Remove(tempPath)
		return xerrors.Errorf("failed to rename a disk cache entry to %s: %w", filePath, err)
	}

	cache.enforceMaxSize()
	return nil
}

// Retrieve reads and deserializes the entry for the key. An absent or corrupt
// file is a miss, never an error - corrupt files are deleted.
func (cache *DiskCache) Retrieve(key string) (Entry, bool) {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "DiskCache",
		"function": "Retrieve",
	})

	filePath := cache.getFilePath(key)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Errorf("failed to read a disk cache entry %s", filePath)
		}
		return Entry{}, false
	}

	entry, err := DecodeEntry(data)
	if err != nil {
		logger.WithError(err).Errorf("disk cache entry %s is corrupt - deleting", filePath)
		os.Remove(filePath)
		return Entry{}, false
	}

	// bump access recency for the eviction sweep
	// mtime is used since atime is unreliable under noatime mounts
	now := time.Now()
	os.Chtimes(filePath, now, now)

	return entry, true
}

// HasEntry returns whether a file for the key exists
func (cache *DiskCache) HasEntry(key string) bool {
	_, err := os.Stat(cache.getFilePath(key))
	return err == nil
}

// GetEntryKeys returns keys of persisted entries
func (cache *DiskCache) GetEntryKeys() []string {
	keys := []string{}
	for _, file := range cache.scan() {
		key, err := utils.DecodeFileNameToKey(file.name)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// GetTotalEntries returns the number of persisted entries
func (cache *DiskCache) GetTotalEntries() int {
	return len(cache.scan())
}

// GetTotalEntrySize returns aggregate on-disk bytes of persisted entries
func (cache *DiskCache) GetTotalEntrySize() int64 {
	var total int64
	for _, file := range cache.scan() {
		total += file.size
	}
	return total
}

// DeleteAllEntries deletes all persisted entries, keeping the root dir
func (cache *DiskCache) DeleteAllEntries() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "DiskCache",
		"function": "DeleteAllEntries",
	})

	cache.writeMutex.Lock()
	defer cache.writeMutex.Unlock()

	logger.Info("Deleting all disk cache entries")
	for _, file := range cache.scan() {
		os.Remove(utils.JoinPath(cache.rootPath, file.name))
	}
}

// Release deletes the cache files and the root dir
func (cache *DiskCache) Release() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "DiskCache",
		"function": "Release",
	})

	cache.writeMutex.Lock()
	defer cache.writeMutex.Unlock()

	logger.Infof("Deleting disk cache files and directory %s", cache.rootPath)
	os.RemoveAll(cache.rootPath)
}

func (cache *DiskCache) getFilePath(key string) string {
	return utils.JoinPath(cache.rootPath, utils.EncodeKeyToFileName(key))
}

type diskCacheFile struct {
	name       string
	size       int64
	accessTime time.Time
}

// scan stats all persisted entry files, skipping in-flight temp files
func (cache *DiskCache) scan() []diskCacheFile {
	files := []diskCacheFile{}

	dirEntries, err := os.ReadDir(cache.rootPath)
	if err != nil {
		return files
	}

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		name := dirEntry.Name()
		if strings.HasSuffix(name, tempFileSuffix) {
			continue
		}

		info, err := dirEntry.Info()
		if err != nil {
			continue
		}

		files = append(files, diskCacheFile{
			name:       name,
			size:       info.Size(),
			accessTime: info.ModTime(),
		})
	}

	return files
}

// enforceMaxSize full-scan sweeps the cache dir and deletes entries in
// least-recently-accessed order until aggregate size is at or below the cap.
// Must be called with writeMutex held.
func (cache *DiskCache) enforceMaxSize() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "DiskCache",
		"function": "enforceMaxSize",
	})

	files := cache.scan()

	var total int64
	for _, file := range files {
		total += file.size
	}

	if total <= cache.sizeCap {
		return
	}

	// least-recently-accessed first
	sort.Slice(files, func(i int, j int) bool {
		return files[i].accessTime.Before(files[j].accessTime)
	})

	for _, file := range files {
		if total <= cache.sizeCap {
			break
		}

		filePath := utils.JoinPath(cache.rootPath, file.name)
		logger.Infof("Evicting disk cache entry %s (%d bytes) - total %d bytes over cap %d", filePath, file.size, total, cache.sizeCap)

		err := os.Remove(filePath)
		if err != nil {
			logger.WithError(err).Errorf("failed to delete a disk cache entry %s", filePath)
			continue
		}

		total -= file.size
		promCounterForDiskEvictions.Inc()
	}
}
