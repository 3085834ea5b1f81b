package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/tinyclock/clock"
	"github.com/lixenwraith/tinyclock/constants"
)

type stepMode int

const (
	modeFixed stepMode = iota
	modeAdaptive
)

func (m stepMode) String() string {
	if m == modeFixed {
		return "fixed"
	}
	return "adaptive"
}

func parseStepMode(s string) (stepMode, error) {
	switch s {
	case "fixed":
		return modeFixed, nil
	case "adaptive":
		return modeAdaptive, nil
	}
	return modeFixed, fmt.Errorf("unknown mode %q (want fixed or adaptive)", s)
}

type Demo struct {
	screen        tcell.Screen
	width, height int

	clk    *clock.Clock
	logger *zap.Logger

	mode stepMode
	rate float64

	// Frame rate over a half-second window
	fps         float64
	fpsFrames   int
	fpsElapsed  float64
	lastSecond  int
	secondTicks int

	// Sweep marker history, newest last
	trail []int

	// Audio
	audioInit bool
}

func NewDemo(screen tcell.Screen, clk *clock.Clock, logger *zap.Logger, mode stepMode, rate float64) *Demo {
	d := &Demo{
		screen: screen,
		clk:    clk,
		logger: logger,
		mode:   mode,
		rate:   constants.ClampStepRate(rate),
		trail:  make([]int, 0, constants.TrailLength),
	}
	d.width, d.height = screen.Size()
	clk.Initialize()
	return d
}

func (d *Demo) initAudio() error {
	sampleRate := beep.SampleRate(constants.AudioSampleRate)
	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *Demo) playTick() {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(constants.AudioSampleRate)
	sine, err := generators.SineTone(sampleRate, constants.TickToneHz)
	if err != nil {
		d.logger.Debug("tick tone unavailable", zap.Error(err))
		return
	}
	speaker.Play(beep.Take(sampleRate.N(constants.TickToneDuration), sine))
}

// step advances the clock by one frame under the current mode
func (d *Demo) step() error {
	var err error
	if d.mode == modeFixed {
		err = d.clk.UpdateFixed(d.rate)
	} else {
		err = d.clk.UpdateAdaptive()
	}
	if err != nil {
		return err
	}

	total, err := d.clk.GetTotalTime()
	if err != nil {
		return err
	}
	delta, err := d.clk.GetDeltaTime()
	if err != nil {
		return err
	}

	d.fpsFrames++
	d.fpsElapsed += delta
	if d.fpsElapsed >= 0.5 {
		d.fps = float64(d.fpsFrames) / d.fpsElapsed
		d.fpsFrames = 0
		d.fpsElapsed = 0
	}

	if sec := int(total); sec > d.lastSecond {
		d.lastSecond = sec
		d.secondTicks++
		d.playTick()
		d.logger.Debug("second elapsed",
			zap.Int("second", sec),
			zap.String("mode", d.mode.String()),
			zap.Float64("fps", d.fps),
		)
	}

	d.updateTrail(total)
	return nil
}

func (d *Demo) updateTrail(total float64) {
	if d.width <= 0 {
		return
	}
	x := int(total*constants.SweepCellsPerSecond) % d.width
	if n := len(d.trail); n > 0 && d.trail[n-1] == x {
		return
	}
	if len(d.trail) == constants.TrailLength {
		d.trail = append(d.trail[:0], d.trail[1:]...)
	}
	d.trail = append(d.trail, x)
}

func (d *Demo) reset() {
	d.clk.Reset()
	d.lastSecond = 0
	d.fps = 0
	d.fpsFrames = 0
	d.fpsElapsed = 0
	d.trail = d.trail[:0]
	d.logger.Debug("clock reset")
}

func (d *Demo) hudLines() []string {
	total, _ := d.clk.GetTotalTime()
	delta, _ := d.clk.GetDeltaTime()
	resolution, _ := d.clk.Resolution()
	highRes, _ := d.clk.HighResolutionAvailable()

	modeLine := "mode:   adaptive"
	if d.mode == modeFixed {
		modeLine = fmt.Sprintf("mode:   fixed @ %.1f steps/s", d.rate)
	}

	return []string{
		modeLine,
		fmt.Sprintf("total:  %12.6f s", total),
		fmt.Sprintf("delta:  %12.6f s", delta),
		fmt.Sprintf("fps:    %8.1f", d.fps),
		fmt.Sprintf("source: %s (high-res: %t, resolution: %.3g s)", d.clk.SourceName(), highRes, resolution),
		"[f] fixed  [a] adaptive  [+/-] rate  [r] reset  [q] quit",
	}
}

func (d *Demo) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		if x+i >= d.width {
			return
		}
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Demo) draw() {
	d.screen.Clear()

	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range d.hudLines() {
		d.drawText(constants.HUDMarginX, constants.HUDMarginY+i, hudStyle, line)
	}

	// Draw sweep trail, fading toward the oldest cell
	row := d.height - constants.SweepRow
	if row >= 0 {
		for i, x := range d.trail {
			intensity := int32(255 * (i + 1) / len(d.trail))
			color := tcell.NewRGBColor(intensity, intensity, intensity)
			d.screen.SetContent(x, row, '█', nil, tcell.StyleDefault.Foreground(color))
		}
	}

	d.screen.Show()
}

func (d *Demo) handleResize() {
	d.width, d.height = d.screen.Size()
	d.trail = d.trail[:0]
}

// handleInput returns false when the demo should exit
func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'f':
				d.mode = modeFixed
			case 'a':
				d.mode = modeAdaptive
			case '+', '=':
				d.rate = constants.ClampStepRate(d.rate + constants.StepRateIncrement)
			case '-':
				d.rate = constants.ClampStepRate(d.rate - constants.StepRateIncrement)
			case 'r':
				d.reset()
			}
		}

	case *tcell.EventResize:
		d.handleResize()
	}

	return true
}

func (d *Demo) run() error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			// Screen finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return nil
			}

		case <-ticker.C:
			if err := d.step(); err != nil {
				return err
			}
			d.draw()
		}
	}
}

func (d *Demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}
