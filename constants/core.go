package constants

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultStepsPerSecond is the fixed-step rate used when none is given
	DefaultStepsPerSecond = 60.0

	// MinStepsPerSecond and MaxStepsPerSecond bound the interactive rate controls
	MinStepsPerSecond = 1.0
	MaxStepsPerSecond = 1000.0

	// StepRateIncrement is the rate change per keypress
	StepRateIncrement = 10.0

	// DefaultProbeSamples is the number of back-to-back adaptive updates measured by probe
	DefaultProbeSamples = 10000
)

// ClampStepRate keeps an interactive step rate within the supported range
func ClampStepRate(rate float64) float64 {
	if rate < MinStepsPerSecond {
		return MinStepsPerSecond
	}
	if rate > MaxStepsPerSecond {
		return MaxStepsPerSecond
	}
	return rate
}
