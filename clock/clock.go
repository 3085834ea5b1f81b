// Package clock provides frame timing for real-time loops.
//
// A Clock measures elapsed time from an origin sampled at Initialize and
// reports the duration of the latest update. Hosts drive it once per loop
// iteration with one of two policies:
//
//   - UpdateFixed advances by exactly 1/stepsPerSecond without reading the
//     counter, for deterministic simulation.
//   - UpdateAdaptive reads the counter and reports real elapsed time,
//     including stalls.
//
// The counter comes from a Source. NewSystemSource picks the best counter
// available on the host and falls back to a millisecond source, so
// initialization never fails.
//
// A Clock is not safe for concurrent use.
package clock

import (
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Clock tracks total and delta time against a raw counter origin
type Clock struct {
	source Source
	logger *zap.Logger

	totalTime float64
	deltaTime float64

	// Set by Initialize, replaced only by Reset
	baseTime   uint64
	frequency  uint64
	resolution float64
	highRes    bool

	initialized bool
}

// Option configures a Clock
type Option func(*Clock)

// WithLogger sets the logger receiving misuse diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Clock) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an uninitialized clock reading src
// A nil src uses NewSystemSource
func New(src Source, opts ...Option) *Clock {
	if src == nil {
		src = NewSystemSource()
	}
	c := &Clock{source: src}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	return c
}

// defaultLogger writes human-readable warnings to stderr
func defaultLogger() *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.WarnLevel))
}

// Initialize negotiates resolution, samples the origin and zeroes the time state
// Calling it again on an initialized clock is a no-op; use Reset to restart
func (c *Clock) Initialize() {
	if c.initialized {
		return
	}

	if c.source.HighResolution() && c.source.Frequency() > 0 {
		c.frequency = c.source.Frequency()
		c.resolution = 1.0 / float64(c.frequency)
		c.highRes = true
	} else {
		c.frequency = CoarseFrequency
		c.resolution = CoarseResolution
		c.highRes = false
	}

	c.baseTime = c.source.Ticks()
	c.totalTime = 0
	c.deltaTime = 0
	c.initialized = true

	c.logger.Debug("clock initialized",
		zap.String("source", c.source.Name()),
		zap.Bool("high_resolution", c.highRes),
		zap.Float64("resolution", c.resolution),
	)
}

// Reset re-samples the origin and zeroes total and delta time
func (c *Clock) Reset() {
	c.initialized = false
	c.Initialize()
}

// UpdateFixed advances by one step of 1/stepsPerSecond without reading the counter
func (c *Clock) UpdateFixed(stepsPerSecond float64) error {
	if !c.initialized {
		return c.notInitialized("UpdateFixed")
	}
	if stepsPerSecond <= 0 || math.IsNaN(stepsPerSecond) || math.IsInf(stepsPerSecond, 0) {
		c.logger.Warn("invalid fixed step rate", zap.Float64("steps_per_second", stepsPerSecond))
		return opError("UpdateFixed", ErrInvalidStepRate)
	}

	c.deltaTime = 1.0 / stepsPerSecond
	c.totalTime += c.deltaTime
	return nil
}

// UpdateAdaptive reads the counter and sets total time to the absolute elapsed
// seconds since the origin, with delta as the difference from the previous total
// A reading behind the current total, possible after fixed steps ran ahead of
// real time, yields a zero delta and leaves the total unchanged
func (c *Clock) UpdateAdaptive() error {
	if !c.initialized {
		return c.notInitialized("UpdateAdaptive")
	}

	reading := c.elapsedSeconds(c.source.Ticks())
	if reading < c.totalTime {
		c.deltaTime = 0
		return nil
	}

	c.deltaTime = reading - c.totalTime
	c.totalTime = reading
	return nil
}

// GetTotalTime returns seconds elapsed since initialization
func (c *Clock) GetTotalTime() (float64, error) {
	if !c.initialized {
		return 0, c.notInitialized("GetTotalTime")
	}
	return c.totalTime, nil
}

// GetDeltaTime returns the duration of the most recent update
func (c *Clock) GetDeltaTime() (float64, error) {
	if !c.initialized {
		return 0, c.notInitialized("GetDeltaTime")
	}
	return c.deltaTime, nil
}

// Resolution returns the seconds-per-tick factor negotiated at initialization
func (c *Clock) Resolution() (float64, error) {
	if !c.initialized {
		return 0, c.notInitialized("Resolution")
	}
	return c.resolution, nil
}

// HighResolutionAvailable reports whether initialization found a high-resolution counter
func (c *Clock) HighResolutionAvailable() (bool, error) {
	if !c.initialized {
		return false, c.notInitialized("HighResolutionAvailable")
	}
	return c.highRes, nil
}

// Initialized reports the lifecycle state
func (c *Clock) Initialized() bool {
	return c.initialized
}

// SourceName returns the name of the underlying counter
func (c *Clock) SourceName() string {
	return c.source.Name()
}

// elapsedSeconds converts a raw reading to seconds since the origin
// Whole seconds are split off in the integer domain so large counter values
// keep sub-tick precision after conversion
func (c *Clock) elapsedSeconds(ticks uint64) float64 {
	if ticks <= c.baseTime {
		return 0
	}
	elapsed := ticks - c.baseTime
	whole := elapsed / c.frequency
	frac := elapsed % c.frequency
	return float64(whole) + float64(frac)*c.resolution
}

func (c *Clock) notInitialized(op string) error {
	c.logger.Warn("clock used before initialization", zap.String("op", op))
	return opError(op, ErrNotInitialized)
}
