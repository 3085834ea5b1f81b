package clock

import (
	"sync"
	"time"
)

// ManualSource provides a controllable counter for testing
type ManualSource struct {
	mu        sync.RWMutex
	ticks     uint64
	frequency uint64
	highRes   bool
}

// NewManualSource creates a manual counter at zero with the given frequency
// A zero frequency defaults to NanosPerSecond; low-resolution sources always
// count milliseconds
func NewManualSource(frequency uint64, highRes bool) *ManualSource {
	switch {
	case !highRes:
		frequency = CoarseFrequency
	case frequency == 0:
		frequency = NanosPerSecond
	}
	return &ManualSource{
		frequency: frequency,
		highRes:   highRes,
	}
}

// Ticks returns the current counter value
func (m *ManualSource) Ticks() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ticks
}

// Frequency returns the configured ticks per second
func (m *ManualSource) Frequency() uint64 {
	return m.frequency
}

// HighResolution returns the configured capability flag
func (m *ManualSource) HighResolution() bool {
	return m.highRes
}

// Name returns the manual source identifier
func (m *ManualSource) Name() string {
	return "manual"
}

// SetTicks sets the counter to an absolute value, which may move it backward
func (m *ManualSource) SetTicks(ticks uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = ticks
}

// Advance moves the counter forward by the given number of ticks
func (m *ManualSource) Advance(ticks uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks += ticks
}

// AdvanceDuration moves the counter forward by d, truncated to whole ticks
// Negative durations are ignored
func (m *ManualSource) AdvanceDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	ns := uint64(d.Nanoseconds())
	ticks := ns/NanosPerSecond*m.frequency + ns%NanosPerSecond*m.frequency/NanosPerSecond
	m.Advance(ticks)
}
