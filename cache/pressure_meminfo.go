package cache

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	memInfoPathDefault               string        = "/proc/meminfo"
	memInfoPollIntervalDefault       time.Duration = 5 * time.Second
	memInfoWarningRatioDefault       float64       = 0.15
	memInfoCriticalRatioDefault      float64       = 0.05
	memInfoEventChannelBufferDefault int           = 8
)

// MemInfoPressureSource is the production PressureSource binding. It polls
// the host meminfo file and emits a pressure level whenever the level
// transitions. Available memory below the warning ratio of total emits
// warning; below the critical ratio emits critical.
type MemInfoPressureSource struct {
	memInfoPath   string
	pollInterval  time.Duration
	warningRatio  float64
	criticalRatio float64

	events        chan PressureLevel
	terminateChan chan bool
}

// NewMemInfoPressureSource creates a new MemInfoPressureSource with defaults
func NewMemInfoPressureSource() *MemInfoPressureSource {
	return &MemInfoPressureSource{
		memInfoPath:   memInfoPathDefault,
		pollInterval:  memInfoPollIntervalDefault,
		warningRatio:  memInfoWarningRatioDefault,
		criticalRatio: memInfoCriticalRatioDefault,

		events:        make(chan PressureLevel, memInfoEventChannelBufferDefault),
		terminateChan: make(chan bool),
	}
}

// Events returns the event channel
func (source *MemInfoPressureSource) Events() <-chan PressureLevel {
	return source.events
}

// Start starts polling
func (source *MemInfoPressureSource) Start() {
	logger := log.WithFields(log.Fields{
		"package":  "cache",
		"struct":   "MemInfoPressureSource",
		"function": "Start",
	})

	go func() {
		ticker := time.NewTicker(source.pollInterval)
		defer ticker.Stop()

		lastLevel := PressureLevelNormal

		for {
			select {
			case <-source.terminateChan:
				close(source.events)
				return
			case <-ticker.C:
				level, err := source.readLevel()
				if err != nil {
					logger.WithError(err).Debugf("failed to read %s", source.memInfoPath)
					continue
				}

				if level == lastLevel {
					continue
				}

				lastLevel = level
				select {
				case source.events <- level:
				default:
					// consumer is behind - drop, the next transition will be delivered
				}
			}
		}
	}()
}

// Stop stops polling and closes the event channel
func (source *MemInfoPressureSource) Stop() {
	source.terminateChan <- true
}

func (source *MemInfoPressureSource) readLevel() (PressureLevel, error) {
	file, err := os.Open(source.memInfoPath)
	if err != nil {
		return PressureLevelNormal, err
	}
	defer file.Close()

	var memTotal int64
	var memAvailable int64

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		switch fields[0] {
		case "MemTotal:":
			memTotal, _ = strconv.ParseInt(fields[1], 10, 64)
		case "MemAvailable:":
			memAvailable, _ = strconv.ParseInt(fields[1], 10, 64)
		}
	}

	if err := scanner.Err(); err != nil {
		return PressureLevelNormal, err
	}

	if memTotal <= 0 {
		return PressureLevelNormal, nil
	}

	availableRatio := float64(memAvailable) / float64(memTotal)
	if availableRatio < source.criticalRatio {
		return PressureLevelCritical, nil
	}
	if availableRatio < source.warningRatio {
		return PressureLevelWarning, nil
	}

	return PressureLevelNormal, nil
}
