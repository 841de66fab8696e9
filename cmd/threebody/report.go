package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/threebody/internal/analysis"
	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/export"
	"github.com/san-kum/threebody/internal/metrics"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

var (
	driftFrames   int
	analyzeFrames int
	portrait      bool
	svgOut        string
	sweep         bool
	force         bool
)

func runDrift(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if driftFrames < 2 {
		return fmt.Errorf("frames must be at least 2, got %d", driftFrames)
	}

	// Drift does not depend on the raster, so render small.
	surface := viz.NewImageSurface(64, 48)
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}
	loop.Gate().Interval = 0

	drift := metrics.NewEnergyDrift(cfg.Params())
	momentum := metrics.NewMomentum()
	stability := metrics.NewStability(2)
	metrics.Attach(loop, drift, momentum, stability)

	runErr := loop.Run(context.Background(), sim.NewFixedSource(cfg.Loop.FPS, driftFrames))

	fmt.Println(asciigraph.Plot(drift.History(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("relative energy drift"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(momentum.History(),
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("|total momentum|"),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", loop.System().Frames)
	fmt.Fprintf(w, "time\t%.3f\n", loop.System().Time)
	fmt.Fprintf(w, "initial energy\t%.10f\n", drift.Initial())
	fmt.Fprintf(w, "final energy\t%.10f\n", drift.Current())
	seed := physics.FigureEight()
	fmt.Fprintf(w, "initial angular momentum\t%.3e\n", physics.AngularMomentum(&seed))
	fmt.Fprintf(w, "final angular momentum\t%.3e\n", physics.AngularMomentum(&loop.System().Bodies))
	for _, m := range []metrics.Metric{drift, momentum, stability} {
		fmt.Fprintf(w, "%s\t%.3e\n", m.Name(), m.Value())
	}
	w.Flush()

	return runErr
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if analyzeFrames < 16 {
		return fmt.Errorf("frames must be at least 16, got %d", analyzeFrames)
	}
	p := cfg.Params()

	tr := analysis.Sample(p, analyzeFrames)
	ps := analysis.PowerSpectrum(tr.X[0])

	fmt.Printf("frequency analysis: %d frames, dt %.4f\n\n", analyzeFrames, tr.Dt)
	fmt.Println(asciigraph.Plot(ps[:max(2, len(ps)/16)],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (body A, x)"),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "dominant frequency\t%.4f\n", analysis.DominantFrequency(tr.X[0], tr.Dt))
	fmt.Fprintf(w, "spectral period\t%.4f\n", analysis.EstimatePeriod(tr.X[0], tr.Dt))
	fmt.Fprintf(w, "crossing period\t%.4f\n", analysis.CrossingPeriod(tr.X[0], tr.Dt))
	fmt.Fprintf(w, "lyapunov exponent\t%.4f\n", analysis.LyapunovExponent(p, analyzeFrames, 1e-8))
	w.Flush()

	if portrait {
		fmt.Println()
		fmt.Println(analysis.PortraitToASCII(analysis.NewPortrait(tr, 0), 72, 20))
	}

	if svgOut != "" {
		colors, err := cfg.Colors()
		if err != nil {
			return err
		}
		c := colors[2]
		stroke := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		svg := export.PortraitToSVG(analysis.NewPortrait(tr, 0), cfg.Render.Width, cfg.Render.Height, stroke)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote orbit to %s\n", svgOut)
	}

	if sweep {
		points := analysis.SweepSoftening(p, 0.001, 0.05, 25, analyzeFrames)
		periods := make([]float64, len(points))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Println()
		fmt.Fprintln(w, "softening\tperiod\tmax drift")
		for i, pt := range points {
			periods[i] = pt.Period
			fmt.Fprintf(w, "%.4f\t%.4f\t%.3e\n", pt.Softening, pt.Period, pt.Drift)
		}
		w.Flush()
		fmt.Println()
		fmt.Println(asciigraph.Plot(periods,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("period vs softening"),
		))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPALETTE\tSIZE\tTRAIL\tFPS")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.0f\n",
			name, cfg.Render.Palette, cfg.Render.Width, cfg.Render.Height, cfg.Trail.Capacity, cfg.Loop.FPS)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "threebody.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
