package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressureWarningThrottleAndRestore(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	monitor := NewPressureMonitor(memoryCache, 0.5, 50*time.Millisecond)

	monitor.Handle(PressureLevelWarning)
	assert.Equal(t, int64(500), memoryCache.GetCostCap())
	assert.True(t, monitor.IsThrottled())

	// the original cap returns after the restore delay
	assert.Eventually(t, func() bool {
		return memoryCache.GetCostCap() == 1000 && !monitor.IsThrottled()
	}, time.Second, 5*time.Millisecond)
}

func TestPressureOverlappingWarnings(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	monitor := NewPressureMonitor(memoryCache, 0.5, 300*time.Millisecond)

	monitor.Handle(PressureLevelWarning)
	require.Equal(t, int64(500), memoryCache.GetCostCap())

	time.Sleep(150 * time.Millisecond)

	// the second warning cancels the first restoration; the throttle does
	// not compound - the cap stays at half the original
	monitor.Handle(PressureLevelWarning)
	assert.Equal(t, int64(500), memoryCache.GetCostCap())

	// past the first warning's restore point the throttle still holds
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(500), memoryCache.GetCostCap())
	assert.True(t, monitor.IsThrottled())

	// the second warning's restoration fires
	assert.Eventually(t, func() bool {
		return memoryCache.GetCostCap() == 1000 && !monitor.IsThrottled()
	}, time.Second, 5*time.Millisecond)
}

func TestPressureWarningSupersedesFiredRestoration(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	monitor := NewPressureMonitor(memoryCache, 0.5, 30*time.Millisecond)

	monitor.Handle(PressureLevelWarning)
	require.Equal(t, int64(500), memoryCache.GetCostCap())

	// hold the monitor lock past the restore deadline so the first
	// warning's fired restoration is stuck waiting on it
	monitor.mutex.Lock()
	time.Sleep(60 * time.Millisecond)

	warningDone := make(chan struct{})
	go func() {
		monitor.Handle(PressureLevelWarning)
		close(warningDone)
	}()
	time.Sleep(10 * time.Millisecond)
	monitor.mutex.Unlock()
	<-warningDone

	// whichever order the stuck restoration and the second warning ran
	// in, the second warning's throttle must be in effect now
	time.Sleep(10 * time.Millisecond)
	assert.True(t, monitor.IsThrottled())
	assert.Equal(t, int64(500), memoryCache.GetCostCap())

	// the second warning's own restoration still fires
	assert.Eventually(t, func() bool {
		return memoryCache.GetCostCap() == 1000 && !monitor.IsThrottled()
	}, time.Second, 5*time.Millisecond)
}

func TestPressureCriticalClearsMemory(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		entry := makeCostedEntry(50)
		memoryCache.Set(fmt.Sprintf("key%d", i), entry, entry.EstimatedCost())
	}

	monitor := NewPressureMonitor(memoryCache, 0.5, 50*time.Millisecond)
	monitor.Handle(PressureLevelCritical)

	assert.Equal(t, 0, memoryCache.GetTotalEntries())
	assert.Equal(t, int64(0), memoryCache.GetTotalCost())

	_, ok := memoryCache.Get("key0")
	assert.False(t, ok)
}

func TestPressureCriticalDuringWarning(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	entry := makeCostedEntry(50)
	memoryCache.Set("key1", entry, entry.EstimatedCost())

	monitor := NewPressureMonitor(memoryCache, 0.5, time.Hour)

	monitor.Handle(PressureLevelWarning)
	require.Equal(t, int64(500), memoryCache.GetCostCap())

	// critical performs the full clear and retains no throttle state
	monitor.Handle(PressureLevelCritical)

	assert.Equal(t, 0, memoryCache.GetTotalEntries())
	assert.Equal(t, int64(1000), memoryCache.GetCostCap())
	assert.False(t, monitor.IsThrottled())
}

func TestPressureNormalIsANoop(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	entry := makeCostedEntry(50)
	memoryCache.Set("key1", entry, entry.EstimatedCost())

	monitor := NewPressureMonitor(memoryCache, 0.5, 50*time.Millisecond)
	monitor.Handle(PressureLevelNormal)

	assert.Equal(t, int64(1000), memoryCache.GetCostCap())
	assert.Equal(t, 1, memoryCache.GetTotalEntries())
}

func TestPressureMonitorConsumesSource(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	monitor := NewPressureMonitor(memoryCache, 0.5, time.Hour)
	source := NewNotifierPressureSource()

	monitor.Start(source)
	defer monitor.Stop()

	source.Notify(PressureLevelWarning)

	assert.Eventually(t, func() bool {
		return memoryCache.GetCostCap() == 500
	}, time.Second, 5*time.Millisecond)

	source.Notify(PressureLevelCritical)

	assert.Eventually(t, func() bool {
		return memoryCache.GetCostCap() == 1000 && memoryCache.GetTotalEntries() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestPressureCriticalLeavesDiskIntact(t *testing.T) {
	tieredCache, err := NewTieredCache(10, 1024*1024, 10*1024*1024, t.TempDir())
	require.NoError(t, err)

	monitor := NewPressureMonitor(tieredCache.GetMemoryCache(), 0.5, 50*time.Millisecond)

	persisted := NewEntry(makeTestMetadata(), nil, makeTestPayload(1024, 400), WindowLevel{})
	tieredCache.Store("persisted", persisted)
	tieredCache.WaitPendingDiskWrites()

	// an entry held only by the memory tier
	memoryOnly := NewEntry(makeTestMetadata(), nil, makeTestPayload(1024, 401), WindowLevel{})
	tieredCache.GetMemoryCache().Set("memory-only", memoryOnly, memoryOnly.EstimatedCost())

	monitor.Handle(PressureLevelCritical)

	// the memory-only entry is gone for good
	_, ok := tieredCache.Retrieve("memory-only")
	assert.False(t, ok)

	// the persisted entry survives through the disk tier
	_, ok = tieredCache.Retrieve("persisted")
	assert.True(t, ok)
}

func TestPressureLowMemoryNotification(t *testing.T) {
	memoryCache, err := NewMemoryCache(10, 1000)
	require.NoError(t, err)

	entry := makeCostedEntry(50)
	memoryCache.Set("key1", entry, entry.EstimatedCost())

	monitor := NewPressureMonitor(memoryCache, 0.5, 50*time.Millisecond)
	monitor.LowMemory()

	assert.Equal(t, 0, memoryCache.GetTotalEntries())
}
