package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts wall time for the frame clock
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a controllable time source for tests and replays
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameClock turns successive wall-time reads into tick deltas in seconds
// The first tick after a restart yields 0; deltas above maxDelta are capped
type FrameClock struct {
	src      TimeProvider
	maxDelta float64
	last     time.Time
	started  bool
}

func NewFrameClock(src TimeProvider, maxDelta float64) *FrameClock {
	return &FrameClock{src: src, maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick
func (c *FrameClock) Tick() float64 {
	now := c.src.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Restart makes the next Tick report zero elapsed time
func (c *FrameClock) Restart() {
	c.started = false
}
