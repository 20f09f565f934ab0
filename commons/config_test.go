package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, ServicePortDefault, config.ServicePort)
	assert.Equal(t, MemoryEntryCountMaxDefault, config.MemoryEntryCountMax)
	assert.Equal(t, MemoryCostMaxDefault, config.MemoryCostMax)
	assert.Equal(t, DiskCacheSizeMaxDefault, config.DiskCacheSizeMax)
	assert.Equal(t, PressureThrottleFactorDefault, config.PressureThrottleFactor)
	assert.Equal(t, PressureRestoreDelayDefault, time.Duration(config.PressureRestoreDelay))
	assert.NotEmpty(t, config.DiskCacheRootPath)
	assert.NoError(t, config.Validate())
}

func TestNewConfigFromYAML(t *testing.T) {
	yamlConfig := `
service_port: 13000
memory_entry_count_max: 20
memory_cost_max: 52428800
disk_cache_size_max: 1073741824
disk_cache_root_path: /var/cache/rendercache
pressure_throttle_factor: 0.25
pressure_restore_delay: 10s
`

	config, err := NewConfigFromYAML([]byte(yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 13000, config.ServicePort)
	assert.Equal(t, 20, config.MemoryEntryCountMax)
	assert.Equal(t, int64(50*1024*1024), config.MemoryCostMax)
	assert.Equal(t, int64(1024*1024*1024), config.DiskCacheSizeMax)
	assert.Equal(t, "/var/cache/rendercache", config.DiskCacheRootPath)
	assert.Equal(t, 0.25, config.PressureThrottleFactor)
	assert.Equal(t, 10*time.Second, time.Duration(config.PressureRestoreDelay))

	// unset fields keep defaults
	assert.Equal(t, PrometheusExporterPortDefault, config.PrometheusExporterPort)

	assert.NoError(t, config.Validate())
}

func TestConfigKeepsDiskCacheAcrossRestarts(t *testing.T) {
	config := NewDefaultConfig()

	// the default root carries no per-process component
	assert.Equal(t, DiskCacheRootPathDefault, config.DiskCacheRootPath)
	assert.False(t, config.ClearDiskCacheAtExit)

	config.DiskCacheRootPath = filepath.Join(t.TempDir(), "disk_cache")
	require.NoError(t, config.MakeWorkDirs())
	require.NoError(t, os.WriteFile(filepath.Join(config.DiskCacheRootPath, "entry"), []byte("x"), 0o644))

	// exit cleanup keeps the disk cache unless clearing was requested
	require.NoError(t, config.CleanWorkDirs())
	assert.DirExists(t, config.DiskCacheRootPath)

	config.ClearDiskCacheAtExit = true
	require.NoError(t, config.CleanWorkDirs())
	assert.NoDirExists(t, config.DiskCacheRootPath)
}

func TestConfigValidate(t *testing.T) {
	config := NewDefaultConfig()
	config.MemoryCostMax = 0
	assert.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.PressureThrottleFactor = 1.5
	assert.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.DiskCacheRootPath = ""
	assert.Error(t, config.Validate())
}
