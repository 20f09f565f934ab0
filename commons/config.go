package commons

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"
	yaml "gopkg.in/yaml.v2"

	"github.com/medimager/rendercache/utils"
)

const (
	ServicePortDefault             int    = 12720
	PrometheusExporterPortDefault  int    = 12721
	ProfileServicePortDefault      int    = 12722
	MemoryEntryCountMaxDefault     int    = 50
	MemoryCostMaxDefault           int64  = 200 * 1024 * 1024      // 200MB
	DiskCacheSizeMaxDefault        int64  = 2 * 1024 * 1024 * 1024 // 2GB
	DiskCacheRootPathDefault string = "/tmp/rendercache/disk_cache"
	LogFilePathPrefixDefault string = "/tmp/rendercache"

	PressureThrottleFactorDefault float64       = 0.5
	PressureRestoreDelayDefault   time.Duration = 30 * time.Second

	MetadataCacheTimeoutDefault time.Duration = 5 * time.Minute
	MetadataCacheCleanupDefault time.Duration = 10 * time.Minute
)

var (
	instanceID string
)

// getInstanceID returns instance ID
func getInstanceID() string {
	if len(instanceID) == 0 {
		instanceID = xid.New().String()
	}

	return instanceID
}

// GetDefaultLogFilePath returns default log file path
func GetDefaultLogFilePath() string {
	return fmt.Sprintf("%s_%s.log", LogFilePathPrefixDefault, getInstanceID())
}

// GetDefaultDiskCacheRootPath returns default disk cache root path.
// The path is stable across restarts so disk entries written by an earlier
// process serve cold lookups in the next one.
func GetDefaultDiskCacheRootPath() string {
	return DiskCacheRootPathDefault
}

// Config holds the parameters list which can be configured
type Config struct {
	ServicePort            int            `yaml:"service_port"`
	MemoryEntryCountMax    int            `yaml:"memory_entry_count_max"`
	MemoryCostMax          int64          `yaml:"memory_cost_max"`
	DiskCacheSizeMax       int64          `yaml:"disk_cache_size_max"`
	DiskCacheRootPath      string         `yaml:"disk_cache_root_path"`
	PressureThrottleFactor float64        `yaml:"pressure_throttle_factor,omitempty"`
	PressureRestoreDelay   utils.Duration `yaml:"pressure_restore_delay,omitempty"`
	MetadataCacheTimeout   utils.Duration `yaml:"metadata_cache_timeout,omitempty"`
	MetadataCacheCleanup   utils.Duration `yaml:"metadata_cache_cleanup,omitempty"`

	ClearDiskCacheAtExit bool `yaml:"clear_disk_cache_at_exit,omitempty"`

	LogPath string `yaml:"log_path,omitempty"`

	Profile                bool `yaml:"profile,omitempty"`
	ProfileServicePort     int  `yaml:"profile_service_port,omitempty"`
	PrometheusExporterPort int  `yaml:"prometheus_exporter_port,omitempty"`

	Debug      bool   `yaml:"debug,omitempty"`
	InstanceID string `yaml:"instanceid,omitempty"`
}

// NewDefaultConfig creates DefaultConfig
func NewDefaultConfig() *Config {
	return &Config{
		ServicePort:            ServicePortDefault,
		MemoryEntryCountMax:    MemoryEntryCountMaxDefault,
		MemoryCostMax:          MemoryCostMaxDefault,
		DiskCacheSizeMax:       DiskCacheSizeMaxDefault,
		DiskCacheRootPath:      GetDefaultDiskCacheRootPath(),
		PressureThrottleFactor: PressureThrottleFactorDefault,
		PressureRestoreDelay:   utils.Duration(PressureRestoreDelayDefault),
		MetadataCacheTimeout:   utils.Duration(MetadataCacheTimeoutDefault),
		MetadataCacheCleanup:   utils.Duration(MetadataCacheCleanupDefault),

		ClearDiskCacheAtExit: false,

		LogPath: "",

		Profile:                false,
		ProfileServicePort:     ProfileServicePortDefault,
		PrometheusExporterPort: PrometheusExporterPortDefault,

		Debug:      false,
		InstanceID: getInstanceID(),
	}
}

// NewConfigFromYAML creates Config from YAML
func NewConfigFromYAML(yamlBytes []byte) (*Config, error) {
	config := NewDefaultConfig()

	err := yaml.Unmarshal(yamlBytes, config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML - %v", err)
	}

	return config, nil
}

// MakeWorkDirs makes dirs required
func (config *Config) MakeWorkDirs() error {
	err := os.MkdirAll(config.DiskCacheRootPath, 0766)
	if err != nil {
		return err
	}

	return nil
}

// CleanWorkDirs cleans dirs created. The disk cache root is kept unless
// clearing at exit was requested, so cached entries survive a restart.
func (config *Config) CleanWorkDirs() error {
	if !config.ClearDiskCacheAtExit {
		return nil
	}

	err := os.RemoveAll(config.DiskCacheRootPath)
	if err != nil {
		return err
	}

	return nil
}

// Validate validates configuration
func (config *Config) Validate() error {
	if config.ServicePort <= 0 {
		return fmt.Errorf("service port must be given")
	}

	if config.MemoryEntryCountMax <= 0 {
		return fmt.Errorf("memory entry count max must be a positive value")
	}

	if config.MemoryCostMax <= 0 {
		return fmt.Errorf("memory cost max must be a positive value")
	}

	if config.DiskCacheSizeMax <= 0 {
		return fmt.Errorf("disk cache size max must be a positive value")
	}

	if len(config.DiskCacheRootPath) == 0 {
		return fmt.Errorf("disk cache root path must be given")
	}

	if config.PressureThrottleFactor <= 0 || config.PressureThrottleFactor >= 1 {
		return fmt.Errorf("pressure throttle factor must be between 0 and 1 exclusively")
	}

	if time.Duration(config.PressureRestoreDelay) <= 0 {
		return fmt.Errorf("pressure restore delay must be a positive value")
	}

	if config.Profile && config.ProfileServicePort <= 0 {
		return fmt.Errorf("profile service port must be given")
	}

	return nil
}
