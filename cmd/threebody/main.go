package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/viz"
)

var (
	configFile string
	preset     string
	fps        float64
	refreshHz  float64
	palette    string
	trail      int
	width      int
	height     int
)

// main runs the terminal host when no subcommand is given. It exits with
// status 1 if the command fails.
func main() {
	log.SetFlags(0)
	log.SetPrefix("threebody: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "threebody",
		Short: "figure-eight three-body animation",
		RunE:  runTerm,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&fps, "fps", 60, "target frames per second")
	pf.Float64Var(&refreshHz, "refresh", 120, "frame opportunities per second")
	pf.StringVar(&palette, "palette", "mono", "body palette ("+strings.Join(viz.PaletteNames(), ", ")+")")
	pf.IntVar(&trail, "trail", 80, "trail length in frames")
	pf.IntVar(&width, "width", 800, "surface width in pixels")
	pf.IntVar(&height, "height", 600, "surface height in pixels")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "animate full screen in the terminal",
		RunE:  runTerm,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in braille with a status bar",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a raylib window",
		RunE:  runGUI,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in an ebitengine window",
		RunE:  runWindow,
	}
	windowCmd.Flags().IntVar(&pixelScale, "pixel-scale", 1, "window pixels per surface pixel")

	recordCmd := &cobra.Command{
		Use:   "record [out.gif]",
		Short: "record an animated gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&seconds, "seconds", 6.5, "length of the recording")
	recordCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "stop after this many frames (0 for no limit)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [out.png|out.svg]",
		Short: "render a single frame to png or svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 240, "frames to run before the snapshot")

	driftCmd := &cobra.Command{
		Use:   "drift",
		Short: "plot momentum and energy drift",
		RunE:  runDrift,
	}
	driftCmd.Flags().IntVar(&driftFrames, "frames", 5000, "frames to simulate")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate the orbital period",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().IntVar(&analyzeFrames, "frames", 4096, "frames to sample")
	analyzeCmd.Flags().BoolVar(&portrait, "portrait", false, "print the orbit of body A")
	analyzeCmd.Flags().StringVar(&svgOut, "svg", "", "write the orbit of body A as svg")
	analyzeCmd.Flags().BoolVar(&sweep, "sweep", false, "sweep softening from 0.001 to 0.05")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(termCmd, tuiCmd, guiCmd, windowCmd, recordCmd, snapshotCmd, driftCmd, analyzeCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and changed flags, in that order,
// over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = fps
	}
	if flags.Changed("refresh") {
		cfg.Loop.RefreshHz = refreshHz
	}
	if flags.Changed("palette") {
		cfg.Render.Palette = palette
	}
	if flags.Changed("trail") {
		cfg.Trail.Capacity = trail
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Loop.FPS > cfg.Loop.RefreshHz {
		log.Printf("fps %.0f exceeds refresh %.0f hz; frames are capped at the refresh rate", cfg.Loop.FPS, cfg.Loop.RefreshHz)
	}
	return cfg, nil
}
