package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/smasonuk/boxgrid"
	"github.com/smasonuk/boxgrid/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "boxgrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	columns := flag.Int("columns", 0, "Override the number of grid columns")
	rotation := flag.String("rotation", "", "Initial rotation source: random, perlin or none")
	seed := flag.Int64("seed", 0, "Override the rotation seed")
	geometry := flag.String("geometry", "", "DXF file used as the shared box shape")
	outline := flag.Bool("outline", false, "Draw face outlines")
	headless := flag.Bool("headless", false, "Run the frame loop without a window")
	frames := flag.Int("frames", 0, "Stop a headless run after this many frames (0 runs until interrupted)")
	pointerX := flag.Float64("pointer-x", 0, "Headless pointer X in normalized device coordinates")
	pointerY := flag.Float64("pointer-y", 0, "Headless pointer Y in normalized device coordinates")
	logLevel := flag.String("log-level", "", "Override the log level (debug, info, warn, ...)")
	flag.Parse()

	cfg := boxgrid.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = boxgrid.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *columns > 0 {
		cfg.Grid.Columns = *columns
	}
	if *rotation != "" {
		cfg.Grid.Rotation = *rotation
	}
	if *seed != 0 {
		cfg.Grid.Seed = *seed
	}
	if *geometry != "" {
		cfg.Geometry.File = *geometry
	}
	if *outline {
		cfg.Colors.Outline = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Log.Apply()

	scene, err := boxgrid.NewScene(cfg, cfg.Aspect())
	if err != nil {
		return err
	}

	if *headless {
		scene.Pointer().SetNDC(*pointerX, *pointerY)
		return runHeadless(scene, cfg, *frames)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(render.NewGame(scene, cfg)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runHeadless(scene *boxgrid.Scene, cfg boxgrid.Config, frames int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	last := -1
	tick := boxgrid.TickerFunc(func(dt float64) {
		scene.Tick(dt)
		current := -1
		if hit, ok := scene.Hit(); ok {
			current = hit.Box.ID
		}
		if current != last {
			log.WithField("box", current).Info("Hover changed")
			last = current
		}
	})

	err := boxgrid.Run(ctx, tick, time.Second/time.Duration(cfg.Window.TPS), frames)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
