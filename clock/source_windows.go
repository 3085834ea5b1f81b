//go:build windows

package clock

import (
	"golang.org/x/sys/windows"
)

// HighResSource reads the performance counter
type HighResSource struct {
	frequency uint64
}

func newHighResSource() (Source, bool) {
	var freq int64
	if err := windows.QueryPerformanceFrequency(&freq); err != nil || freq <= 0 {
		return nil, false
	}

	var counter int64
	if err := windows.QueryPerformanceCounter(&counter); err != nil {
		return nil, false
	}
	return &HighResSource{frequency: uint64(freq)}, true
}

// Ticks returns the raw performance counter value
func (s *HighResSource) Ticks() uint64 {
	var counter int64
	if err := windows.QueryPerformanceCounter(&counter); err != nil {
		return 0
	}
	return uint64(counter)
}

// Frequency returns the counter frequency reported at construction
func (s *HighResSource) Frequency() uint64 {
	return s.frequency
}

// HighResolution always returns true
func (s *HighResSource) HighResolution() bool {
	return true
}

// Name returns the counter identifier
func (s *HighResSource) Name() string {
	return "QueryPerformanceCounter"
}
