package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promCounterForMemoryHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_memory_hit_total",
		Help: "The total number of memory tier cache hits",
	})

	promCounterForMemoryMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_memory_miss_total",
		Help: "The total number of memory tier cache misses",
	})

	promCounterForDiskHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_disk_hit_total",
		Help: "The total number of disk tier cache hits",
	})

	promCounterForDiskMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_disk_miss_total",
		Help: "The total number of disk tier cache misses",
	})

	promCounterForPromotions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_promotions_total",
		Help: "The total number of disk hits promoted into the memory tier",
	})

	promCounterForMemoryEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_memory_evictions_total",
		Help: "The total number of memory tier evictions",
	})

	promCounterForDiskEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_disk_evictions_total",
		Help: "The total number of disk tier eviction sweep deletions",
	})

	promCounterForDiskWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_disk_write_failures_total",
		Help: "The total number of swallowed disk write failures",
	})

	promCounterForPressureWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_pressure_warnings_total",
		Help: "The total number of memory pressure warning signals handled",
	})

	promCounterForPressureCriticals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rendercache_pressure_criticals_total",
		Help: "The total number of memory pressure critical signals handled",
	})

	promGaugeForMemoryCost = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rendercache_memory_cost_bytes",
		Help: "The aggregate cost of memory tier entries in bytes",
	})

	promGaugeForDiskSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rendercache_disk_size_bytes",
		Help: "The aggregate size of disk tier entries in bytes",
	})
)
