package constants

import (
	"testing"
)

// TestClampStepRate verifies interactive rates stay within bounds
func TestClampStepRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected float64
	}{
		{name: "Below minimum", rate: 0, expected: MinStepsPerSecond},
		{name: "Negative", rate: -30, expected: MinStepsPerSecond},
		{name: "Default", rate: DefaultStepsPerSecond, expected: DefaultStepsPerSecond},
		{name: "Above maximum", rate: 5000, expected: MaxStepsPerSecond},
		{name: "Maximum", rate: MaxStepsPerSecond, expected: MaxStepsPerSecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := ClampStepRate(tt.rate); actual != tt.expected {
				t.Errorf("Expected rate %v, got %v", tt.expected, actual)
			}
		})
	}
}

// TestFrameIntervalWithinDefaultStep verifies a render frame is not longer than one default fixed step
func TestFrameIntervalWithinDefaultStep(t *testing.T) {
	step := 1.0 / DefaultStepsPerSecond
	if FrameUpdateInterval.Seconds() > step {
		t.Errorf("Expected frame interval <= %v s, got %v", step, FrameUpdateInterval.Seconds())
	}
}
