package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/tinyclock/clock"
	"github.com/lixenwraith/tinyclock/constants"
)

type demoOptions struct {
	mode    string
	rate    float64
	coarse  bool
	noAudio bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tinyclock",
		Short:         "Monotonic frame timing for real-time loops",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newDemoCmd(), newProbeCmd())
	return rootCmd
}

func newDemoCmd() *cobra.Command {
	opts := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive frame loop driven by the clock",
		Long: `Run a full-screen loop that updates the clock every frame and shows
total time, frame delta and frame rate. Switch between fixed-step and
adaptive stepping with f and a, change the fixed rate with + and -,
restart the origin with r. A short tone marks each elapsed second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}
	cmd.Flags().StringVar(&opts.mode, "mode", "adaptive", "Stepping mode: fixed, adaptive")
	cmd.Flags().Float64Var(&opts.rate, "rate", constants.DefaultStepsPerSecond, "Fixed-step rate in steps per second")
	cmd.Flags().BoolVar(&opts.coarse, "coarse", false, "Force the millisecond fallback counter")
	cmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "Disable the per-second tone")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Write debug logs to "+constants.LogDir)
	return cmd
}

func newProbeCmd() *cobra.Command {
	var (
		samples int
		coarse  bool
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report the negotiated counter and measured update deltas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runProbe(clock.New(selectSource(coarse)), samples)
			if err != nil {
				return err
			}
			report.write(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", constants.DefaultProbeSamples, "Number of back-to-back adaptive updates")
	cmd.Flags().BoolVar(&coarse, "coarse", false, "Force the millisecond fallback counter")
	return cmd
}

func selectSource(coarse bool) clock.Source {
	if coarse {
		return clock.NewCoarseSource()
	}
	return clock.NewSystemSource()
}

func runDemo(opts *demoOptions) error {
	mode, err := parseStepMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.rate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", opts.rate)
	}

	logger, rotator, err := setupLogging(constants.LogDir, opts.debug)
	if err != nil {
		return err
	}
	if rotator != nil {
		defer rotator.Close()
	}
	defer logger.Sync()

	clockOpts := []clock.Option{}
	if opts.debug {
		clockOpts = append(clockOpts, clock.WithLogger(logger))
	}
	clk := clock.New(selectSource(opts.coarse), clockOpts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	demo := NewDemo(screen, clk, logger, mode, opts.rate)
	defer demo.cleanup()

	// Panic Recovery: ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTINYCLOCK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if !opts.noAudio {
		if err := demo.initAudio(); err != nil {
			// Non-fatal, the demo runs without sound
			logger.Warn("audio initialization failed", zap.Error(err))
		}
	}

	logger.Info("demo started",
		zap.String("mode", mode.String()),
		zap.Float64("rate", demo.rate),
		zap.String("source", clk.SourceName()),
	)
	return demo.run()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tinyclock: %v\n", err)
		os.Exit(1)
	}
}
