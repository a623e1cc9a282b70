package storage

import (
	"sync"
	"time"
)

// Debouncer runs a function once calls for the same key stop arriving for
// the configured duration.
type Debouncer struct {
	mutex    sync.Mutex
	timers   map[string]*time.Timer
	duration time.Duration
}

func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		timers:   make(map[string]*time.Timer),
		duration: duration,
	}
}

// Debounce schedules fn, cancelling any call still pending for key.
func (d *Debouncer) Debounce(key string, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if timer, exists := d.timers[key]; exists {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d.duration, func() {
		d.mutex.Lock()
		// A newer call may already own the slot.
		if d.timers[key] == timer {
			delete(d.timers, key)
		}
		d.mutex.Unlock()
		fn()
	})
	d.timers[key] = timer
}

// Clear cancels every pending call.
func (d *Debouncer) Clear() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
