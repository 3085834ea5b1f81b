//go:build !linux && !windows

package clock

import "time"

// HighResSource reads the Go runtime monotonic clock in nanoseconds
type HighResSource struct {
	epoch time.Time
}

func newHighResSource() (Source, bool) {
	return &HighResSource{epoch: time.Now()}, true
}

// Ticks returns nanoseconds since the source was created
func (s *HighResSource) Ticks() uint64 {
	return uint64(time.Since(s.epoch).Nanoseconds())
}

// Frequency returns NanosPerSecond
func (s *HighResSource) Frequency() uint64 {
	return NanosPerSecond
}

// HighResolution always returns true
func (s *HighResSource) HighResolution() bool {
	return true
}

// Name returns the counter identifier
func (s *HighResSource) Name() string {
	return "runtime-monotonic"
}
