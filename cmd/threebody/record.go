package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/export"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

var (
	seconds        float64
	maxFrames      int
	snapshotFrames int
)

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := "threebody.gif"
	if len(args) > 0 {
		out = args[0]
	}
	if seconds <= 0 {
		return fmt.Errorf("seconds must be positive, got %v", seconds)
	}

	surface := viz.NewImageSurface(cfg.Render.Width, cfg.Render.Height)
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}
	colors, err := cfg.Colors()
	if err != nil {
		return err
	}

	rec := export.NewRecorder(surface, colors, cfg.BackgroundColor(), cfg.Loop.FPS, maxFrames)
	loop.AddObserver(rec)
	loop.AddObserver(sim.ObserverFunc(func(sim.Frame) {
		if rec.Full() {
			loop.Stop()
		}
	}))

	opportunities := int(math.Ceil(seconds * cfg.Loop.RefreshHz))
	if err := loop.Run(context.Background(), sim.NewFixedSource(cfg.Loop.RefreshHz, opportunities)); err != nil {
		log.Printf("recording stopped early: %v", err)
	}

	if err := rec.Save(out); err != nil {
		return err
	}
	fmt.Printf("recorded %d frames to %s\n", rec.Frames(), out)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := "threebody.png"
	if len(args) > 0 {
		out = args[0]
	}
	if snapshotFrames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", snapshotFrames)
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".svg":
		surface := export.NewSVGSurface(cfg.Render.Width, cfg.Render.Height)
		if err := runFrames(cfg, surface, snapshotFrames); err != nil {
			return err
		}
		if err := surface.Save(out, cfg.BackgroundColor()); err != nil {
			return err
		}
		fmt.Printf("%d rects\n", surface.Rects())
	case ".png":
		surface := viz.NewImageSurface(cfg.Render.Width, cfg.Render.Height)
		if err := runFrames(cfg, surface, snapshotFrames); err != nil {
			return err
		}
		if err := export.SavePNG(out, surface.Image(), cfg.BackgroundColor()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported snapshot format: %s", out)
	}

	fmt.Printf("wrote frame %d to %s\n", snapshotFrames, out)
	return nil
}

// runFrames executes exactly n frames on surface, ungated.
func runFrames(cfg *config.Config, surface viz.Surface, n int) error {
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}
	loop.AddObserver(sim.ObserverFunc(func(f sim.Frame) {
		if f.Index >= n {
			loop.Stop()
		}
	}))

	// Every opportunity executes a frame.
	loop.Gate().Interval = 0
	src := &sim.FixedSource{Period: 1000 / cfg.Loop.FPS}
	return loop.Run(context.Background(), src)
}
