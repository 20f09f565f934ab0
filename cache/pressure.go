package cache

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// PressureLevel is a host-delivered indication of memory pressure
type PressureLevel int

const (
	PressureLevelNormal PressureLevel = iota
	PressureLevelWarning
	PressureLevelCritical
)

// String stringifies PressureLevel
func (level PressureLevel) String() string {
	switch level {
	case PressureLevelNormal:
		return "normal"
	case PressureLevelWarning:
		return "warning"
	case PressureLevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// PressureSource is a subscribable source of memory pressure signals.
// The production binding observes the host; tests use NotifierPressureSource.
type PressureSource interface {
	Events() <-chan PressureLevel
}

// NotifierPressureSource is a PressureSource driven by explicit Notify calls
type NotifierPressureSource struct {
	events chan PressureLevel
}

// NewNotifierPressureSource creates a new NotifierPressureSource
func NewNotifierPressureSource() *NotifierPressureSource {
	return &NotifierPressureSource{
		events: make(chan PressureLevel),
	}
}

// Notify emits a pressure level
func (source *NotifierPressureSource) Notify(level PressureLevel) {
	source.events <- level
}

// Events returns the event channel
func (source *NotifierPressureSource) Events() <-chan PressureLevel {
	return source.events
}

// PressureMonitor adjusts the memory tier in response to pressure signals.
// On warning the cost cap is multiplied by the throttle factor and the
// original cap is restored after the restore delay. A new warning cancels any
// pending restoration and reschedules it; the original cap is captured once
// per throttle episode. On critical the memory tier is cleared synchronously
// and no throttle state is retained. The disk tier is never touched.
type PressureMonitor struct {
	memoryCache    *MemoryCache
	throttleFactor float64
	restoreDelay   time.Duration

	throttled         bool
	originalCostCap   int64
	restoreTimer      *time.Timer
	restoreGeneration uint64
	mutex             sync.Mutex

	terminateChan chan bool
}

// NewPressureMonitor creates a new PressureMonitor
func NewPressureMonitor(memoryCache *MemoryCache, throttleFactor float64, restoreDelay time.Duration) *PressureMonitor {
	return &PressureMonitor{
		memoryCache:    memoryCache,
		throttleFactor: throttleFactor,
		restoreDelay:   restoreDelay,

		terminateChan: make(chan bool),
	}
}

// Start consumes pressure signals from the source until Stop is called
func (monitor *PressureMonitor) Start(source PressureSource) {
	go func() {
		for {
			select {
			case <-monitor.terminateChan:
				return
			case level, ok := <-source.Events():
				if !ok {
					return
				}
				monitor.Handle(level)
			}
		}
	}()
}

// Stop stops consuming pressure signals and cancels a pending restoration
func (monitor *PressureMonitor) Stop() {
	monitor.terminateChan <- true

	monitor.mutex.Lock()
	defer monitor.mutex.Unlock()

	if monitor.restoreTimer != nil {
		monitor.restoreTimer.Stop()
		monitor.restoreTimer = nil
	}
	monitor.restoreGeneration++
}

// Handle applies one pressure signal synchronously
func (monitor *PressureMonitor) Handle(level PressureLevel) {
	switch level {
	case PressureLevelWarning:
		monitor.handleWarning()
	case PressureLevelCritical:
		monitor.handleCritical()
	default:
		// normal - nothing to do
	}
}

// LowMemory handles the application-level low memory notification.
// It performs the full clear, same as a critical pressure signal.
func (monitor *PressureMonitor) LowMemory() {
	monitor.handleCritical()
}

// IsThrottled returns whether a throttle episode is in progress
func (monitor *PressureMonitor) IsThrottled() bool {
	monitor.mutex.Lock()
	defer monitor.mutex.Unlock()

	return monitor.throttled
}

func (monitor *PressureMonitor) handleWarning() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "PressureMonitor",
		"function": "handleWarning",
	})

	monitor.mutex.Lock()
	defer monitor.mutex.Unlock()

	if !monitor.throttled {
		monitor.originalCostCap = monitor.memoryCache.GetCostCap()
		monitor.throttled = true
	}

	// cancel-and-reschedule so an earlier warning's restoration
	// cannot clobber this throttle. Stop alone is not enough since the
	// earlier timer may have fired already and be waiting on the mutex,
	// so each scheduled restoration carries a generation and stale
	// generations are discarded.
	if monitor.restoreTimer != nil {
		monitor.restoreTimer.Stop()
	}
	monitor.restoreGeneration++
	generation := monitor.restoreGeneration

	throttledCostCap := int64(float64(monitor.originalCostCap) * monitor.throttleFactor)
	logger.Infof("Memory pressure warning - throttling memory cache cost cap to %d for %s", throttledCostCap, monitor.restoreDelay)

	monitor.memoryCache.SetCostCap(throttledCostCap)
	promGaugeForMemoryCost.Set(float64(monitor.memoryCache.GetTotalCost()))
	promCounterForPressureWarnings.Inc()

	monitor.restoreTimer = time.AfterFunc(monitor.restoreDelay, func() {
		monitor.restore(generation)
	})
}

func (monitor *PressureMonitor) restore(generation uint64) {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "PressureMonitor",
		"function": "restore",
	})

	monitor.mutex.Lock()
	defer monitor.mutex.Unlock()

	if generation != monitor.restoreGeneration {
		// superseded by a newer warning or a critical
		return
	}

	if !monitor.throttled {
		return
	}

	logger.Infof("Restoring memory cache cost cap to %d", monitor.originalCostCap)

	monitor.memoryCache.SetCostCap(monitor.originalCostCap)
	monitor.throttled = false
	monitor.restoreTimer = nil
}

func (monitor *PressureMonitor) handleCritical() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "PressureMonitor",
		"function": "handleCritical",
	})

	monitor.mutex.Lock()
	defer monitor.mutex.Unlock()

	logger.Info("Memory pressure critical - evicting all memory cache entries")

	if monitor.restoreTimer != nil {
		monitor.restoreTimer.Stop()
		monitor.restoreTimer = nil
	}
	monitor.restoreGeneration++

	if monitor.throttled {
		monitor.memoryCache.SetCostCap(monitor.originalCostCap)
		monitor.throttled = false
	}

	monitor.memoryCache.RemoveAll()
	promGaugeForMemoryCost.Set(0)
	promCounterForPressureCriticals.Inc()
}
