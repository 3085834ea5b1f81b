package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/lixenwraith/tinyclock/clock"
)

type probeReport struct {
	Source     string
	HighRes    bool
	Resolution float64
	Samples    int
	MinDelta   float64
	MaxDelta   float64
	MeanDelta  float64
}

// runProbe initializes clk and measures back-to-back adaptive updates
func runProbe(clk *clock.Clock, samples int) (probeReport, error) {
	if samples <= 0 {
		return probeReport{}, errors.New("samples must be positive")
	}

	clk.Initialize()
	report := probeReport{
		Source:   clk.SourceName(),
		Samples:  samples,
		MinDelta: math.Inf(1),
	}

	var err error
	if report.Resolution, err = clk.Resolution(); err != nil {
		return probeReport{}, err
	}
	if report.HighRes, err = clk.HighResolutionAvailable(); err != nil {
		return probeReport{}, err
	}

	for i := 0; i < samples; i++ {
		if err := clk.UpdateAdaptive(); err != nil {
			return probeReport{}, err
		}
		delta, err := clk.GetDeltaTime()
		if err != nil {
			return probeReport{}, err
		}
		report.MinDelta = math.Min(report.MinDelta, delta)
		report.MaxDelta = math.Max(report.MaxDelta, delta)
	}

	total, err := clk.GetTotalTime()
	if err != nil {
		return probeReport{}, err
	}
	report.MeanDelta = total / float64(samples)
	return report, nil
}

func (r probeReport) write(w io.Writer) {
	fmt.Fprintf(w, "source:      %s\n", r.Source)
	fmt.Fprintf(w, "high-res:    %t\n", r.HighRes)
	fmt.Fprintf(w, "resolution:  %.3g s\n", r.Resolution)
	fmt.Fprintf(w, "samples:     %d\n", r.Samples)
	fmt.Fprintf(w, "delta min:   %.9f s\n", r.MinDelta)
	fmt.Fprintf(w, "delta max:   %.9f s\n", r.MaxDelta)
	fmt.Fprintf(w, "delta mean:  %.9f s\n", r.MeanDelta)
}
