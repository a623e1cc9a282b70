package debug

import (
	"sort"
	"sync"
	"time"

	"personal-diary/internal/logger"
)

// TimingTracker records how long diary operations take.
type TimingTracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	logger  logger.Logger
	enabled bool
}

func NewTimingTracker(log logger.Logger) *TimingTracker {
	return &TimingTracker{
		timings: make(map[string][]time.Duration),
		logger:  log,
		enabled: true,
	}
}

// Track starts timing operation and returns the function that stops it.
//
//	defer tracker.Track("save")()
func (tt *TimingTracker) Track(operation string) func() {
	if !tt.isEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		duration := time.Since(start)

		tt.mu.Lock()
		tt.timings[operation] = append(tt.timings[operation], duration)
		tt.mu.Unlock()

		tt.logger.Debug("Timing", "operation completed", map[string]interface{}{
			"operation": operation,
			"duration":  duration.String(),
		})
	}
}

func (tt *TimingTracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *TimingTracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *TimingTracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *TimingTracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}

// Operations lists every operation with at least one recorded timing.
func (tt *TimingTracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	ops := make([]string, 0, len(tt.timings))
	for op := range tt.timings {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
