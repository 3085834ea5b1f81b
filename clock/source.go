package clock

import "time"

const (
	// NanosPerSecond is the tick frequency of nanosecond counters
	NanosPerSecond uint64 = 1_000_000_000

	// CoarseFrequency is the tick frequency of the millisecond fallback tier
	CoarseFrequency uint64 = 1000

	// CoarseResolution is the fixed resolution used when no high-resolution counter exists
	CoarseResolution = 1.0 / float64(CoarseFrequency)

	// maxHighResolution is the coarsest counter granularity still accepted as high resolution
	maxHighResolution = time.Millisecond
)

// Source reads a raw monotonic hardware or OS counter
// Ticks have a platform-defined origin, only differences are meaningful
type Source interface {
	// Ticks returns the current raw counter value
	Ticks() uint64
	// Frequency returns the number of ticks per second
	Frequency() uint64
	// HighResolution reports whether this is a high-resolution counter
	// Sources returning false must count milliseconds
	HighResolution() bool
	// Name identifies the underlying counter for diagnostics
	Name() string
}

// NewSystemSource negotiates the best counter the host provides
// Falls back to the coarse millisecond source when no high-resolution counter is usable
func NewSystemSource() Source {
	if src, ok := newHighResSource(); ok {
		return src
	}
	return NewCoarseSource()
}

// CoarseSource counts whole milliseconds on the runtime monotonic clock
type CoarseSource struct {
	epoch time.Time
}

// NewCoarseSource creates a millisecond-granularity source
func NewCoarseSource() *CoarseSource {
	return &CoarseSource{epoch: time.Now()}
}

// Ticks returns milliseconds elapsed since the source was created
func (s *CoarseSource) Ticks() uint64 {
	return uint64(time.Since(s.epoch).Milliseconds())
}

// Frequency returns CoarseFrequency
func (s *CoarseSource) Frequency() uint64 {
	return CoarseFrequency
}

// HighResolution always returns false
func (s *CoarseSource) HighResolution() bool {
	return false
}

// Name returns the coarse tier identifier
func (s *CoarseSource) Name() string {
	return "coarse-ms"
}
