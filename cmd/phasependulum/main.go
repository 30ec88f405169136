package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phasependulum/internal/analysis"
	"github.com/san-kum/phasependulum/internal/config"
	"github.com/san-kum/phasependulum/internal/gui"
	"github.com/san-kum/phasependulum/internal/metrics"
	"github.com/san-kum/phasependulum/internal/optim"
	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
	"github.com/san-kum/phasependulum/internal/viz"
)

// main registers the commands and exits with status 1 if one fails. With no
// subcommand it opens the window. Interrupts cancel headless runs.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:          "phasependulum",
		Short:        "phase-space portrait of a simple pendulum",
		SilenceUsage: true,
		RunE:         s.runGUI,
	}
	s.bindShared(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window",
		RunE:  s.runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive phase portrait in the terminal",
		RunE:  s.runTUI,
	}

	var plot, phase bool
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate without a window and report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runHeadless(cmd, plot, phase)
		},
	}
	s.bindRun(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot theta and omega over time")
	runCmd.Flags().BoolVar(&phase, "phase", false, "print a braille phase portrait")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "measure the oscillation period",
		RunE:  s.runAnalyze,
	}
	s.bindRun(analyzeCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark integration throughput",
		RunE:  s.runBench,
	}

	var axes []string
	var metric string
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid-search parameters and rank runs by a metric",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runSweep(cmd, axes, metric)
		},
	}
	s.bindRun(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&axes, "axis", nil, "swept parameter, name=start:stop:step or name=v1,v2 (repeatable)")
	sweepCmd.Flags().StringVar(&metric, "metric", "energy_drift", "metric to minimize")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd)
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, analyzeCmd, benchCmd, sweepCmd, presetsCmd)
	return rootCmd
}

func newPendulum(cfg *config.Config, center trace.Vec) *sim.Pendulum {
	p := sim.New(center,
		sim.WithParams(cfg.Params()),
		sim.WithTraceLimit(cfg.TraceLimit),
	)
	p.Reset(cfg.InitState.Theta, cfg.InitState.Omega)
	return p
}

func (s *settings) runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	gui.Run(newPendulum(cfg, trace.Vec{X: gui.WindowWidth / 2, Y: gui.WindowHeight / 2}))
	return nil
}

func (s *settings) runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	return viz.Run(newPendulum(cfg, trace.Vec{}))
}

func runConfig(cfg *config.Config) sim.RunConfig {
	rc := sim.DefaultRunConfig()
	rc.Dt = cfg.Dt
	rc.Duration = cfg.Duration
	return rc
}

func (s *settings) runHeadless(cmd *cobra.Command, plot, phase bool) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render("pendulum run"))
	fmt.Fprintf(out, "g=%.3f L=%.3f k=%.3f  x0=%s\n", params.Gravity, params.Length, params.Damping, cfg.GetInitState())

	start := time.Now()
	result, err := sim.Run(cmd.Context(), params, cfg.GetInitState(), runConfig(cfg), metrics.Defaults(&params)...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "steps: %d\n", result.StepsTaken)
	fmt.Fprintf(out, "final: %s\n", result.Final())
	fmt.Fprintln(out, "\nmetrics:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range []string{"energy", "energy_drift", "amplitude", "highlight_ratio"} {
		fmt.Fprintf(w, "  %s\t%.6f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		for _, series := range []struct {
			caption string
			data    []float64
		}{
			{"theta (angle)", result.Series(sim.Theta)},
			{"omega (angular velocity)", result.Series(sim.Omega)},
		} {
			graph := asciigraph.Plot(series.data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(series.caption),
			)
			fmt.Fprintln(out)
			fmt.Fprintln(out, graph)
		}
	}

	if phase {
		fmt.Fprintln(out)
		fmt.Fprint(out, phasePortrait(result, 70, 20).Render(viz.ThemeClassic))
	}
	return nil
}

// phasePortrait fits the run's states into a braille canvas of w×h cells.
func phasePortrait(result *sim.Result, w, h int) *viz.Canvas {
	c := viz.NewCanvas(w, h)
	if len(result.States) == 0 {
		return c
	}

	thetaMax, omegaMax := 0.0, 0.0
	for _, s := range result.States {
		thetaMax = math.Max(thetaMax, math.Abs(s.Theta))
		omegaMax = math.Max(omegaMax, math.Abs(s.Omega))
	}
	if thetaMax == 0 {
		thetaMax = 1
	}
	if omegaMax == 0 {
		omegaMax = 1
	}

	sw, sh := float64(c.SubWidth()-1), float64(c.SubHeight()-1)
	px := func(theta float64) int { return int(math.Round((theta/thetaMax + 1) / 2 * sw)) }
	py := func(omega float64) int { return int(math.Round((1 - omega/omegaMax) / 2 * sh)) }

	c.SetPen(viz.InkAxis)
	c.DrawLine(0, py(0), int(sw), py(0))
	c.DrawLine(px(0), 0, px(0), int(sh))

	prev := result.States[0]
	for _, s := range result.States[1:] {
		if trace.Classify(s.Omega) == trace.Highlighted {
			c.SetPen(viz.InkHighlight)
		} else {
			c.SetPen(viz.InkNormal)
		}
		c.DrawLine(px(prev.Theta), py(prev.Omega), px(s.Theta), py(s.Omega))
		prev = s
	}
	return c
}

func (s *settings) runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	out := cmd.OutOrStdout()
	result, err := sim.Run(cmd.Context(), params, cfg.GetInitState(), runConfig(cfg))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, viz.HeaderStyle.Render("frequency analysis"))
	thetas := result.Series(sim.Theta)

	ps := analysis.PowerSpectrum(thetas)
	if len(ps) > 8 {
		graph := asciigraph.Plot(ps[:len(ps)/4],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (theta)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	period, err := analysis.DominantPeriod(thetas, cfg.Dt)
	if err != nil {
		return err
	}
	small := analysis.SmallAnglePeriod(params)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "dominant period\t%.4f s\n", period)
	fmt.Fprintf(w, "dominant frequency\t%.4f hz\n", 1/period)
	fmt.Fprintf(w, "small-angle period\t%.4f s\n", small)
	if !math.IsInf(small, 0) {
		fmt.Fprintf(w, "ratio\t%.4f\n", period/small)
	}
	return w.Flush()
}

func (s *settings) runBench(cmd *cobra.Command, args []string) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	out := cmd.OutOrStdout()
	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Fprintln(out, viz.HeaderStyle.Render("benchmarking rk4"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC\tDRIFT")

	for _, dur := range durations {
		for _, dt := range dts {
			rc := sim.RunConfig{Dt: dt, Duration: dur}
			start := time.Now()
			result, err := sim.Run(cmd.Context(), params, cfg.GetInitState(), rc)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\t%.2e\n",
				dur, dt, result.StepsTaken, elapsed, stepsPerSec, result.EnergyDrift)
		}
	}

	return w.Flush()
}

func (s *settings) runSweep(cmd *cobra.Command, specs []string, metric string) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("sweep needs at least one --axis")
	}

	axes := make([]optim.Axis, 0, len(specs))
	for _, spec := range specs {
		axis, err := optim.ParseAxis(spec)
		if err != nil {
			return err
		}
		axes = append(axes, axis)
	}

	obj := optim.PendulumObjective(cfg.Params(), cfg.GetInitState(), runConfig(cfg), metric)
	points, best, err := optim.NewGridSearch(axes...).Search(cmd.Context(), obj)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render("sweep: "+metric))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, a := range axes {
		fmt.Fprintf(w, "%s\t", strings.ToUpper(a.Name))
	}
	fmt.Fprintln(w, strings.ToUpper(metric))
	for i, pt := range points {
		for _, a := range axes {
			fmt.Fprintf(w, "%.4g\t", pt.Params[a.Name])
		}
		mark := ""
		if i == best {
			mark = "  <- best"
		}
		fmt.Fprintf(w, "%.6g%s\n", pt.Value, mark)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTHETA\tOMEGA\tGRAVITY\tDAMPING\tDURATION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.2f\t%.2f\t%.0fs\n",
			name, p.InitState.Theta, p.InitState.Omega, p.Gravity, p.Damping, p.Duration)
	}
	return w.Flush()
}
