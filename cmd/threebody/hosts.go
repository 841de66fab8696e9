package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/san-kum/threebody/internal/gui"
	"github.com/san-kum/threebody/internal/term"
	"github.com/san-kum/threebody/internal/tui"
	"github.com/san-kum/threebody/internal/viz"
	"github.com/san-kum/threebody/internal/window"
)

var pixelScale int

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	surface := viz.NewImageSurface(term.SurfaceSize(screen.Size()))
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.New(screen, loop, surface, cfg.BackgroundColor(), cfg.Loop.RefreshHz)
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Sized on the first WindowSizeMsg.
	surface := viz.NewImageSurface(1, 1)
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}

	if err := tui.Run(tui.New(loop, surface, cfg.Palette(), cfg.Loop.RefreshHz)); err != nil {
		return err
	}
	return loop.Err()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	surface := viz.NewImageSurface(cfg.Render.Width, cfg.Render.Height)
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}
	return gui.New(loop, surface, cfg.BackgroundColor(), cfg.Loop.RefreshHz).Run()
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	surface := viz.NewImageSurface(cfg.Render.Width, cfg.Render.Height)
	loop, err := cfg.NewLoop(surface)
	if err != nil {
		return err
	}

	game := window.NewGame(loop, surface, cfg.BackgroundColor())
	game.PixelScale = pixelScale
	return window.Run(game, "threebody", cfg.Loop.RefreshHz)
}
