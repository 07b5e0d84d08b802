package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"maze/internal/config"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("exiting", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("game over")
}

func run(cfg *config.Config, log *zap.Logger) error {
	level, err := buildMap(cfg, log)
	if err != nil {
		return err
	}
	g, err := newGame(cfg, level, log)
	if err != nil {
		return err
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoProfilePath)
		if err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer stop()
		log.Info("recording cpu profile", zap.String("path", pgoProfilePath), zap.Duration("duration", pgoRecordDuration))
		g.enableAutoWalk(pgoRecordDuration, stop)
	}

	log.Info("starting",
		zap.Int("width", cfg.Screen.Width),
		zap.Int("height", cfg.Screen.Height),
		zap.Float64("fov_deg", cfg.Camera.FOVDegrees),
		zap.String("projection", cfg.Camera.Projection),
		zap.Int("tps", cfg.Screen.TPS))

	ebiten.SetWindowSize(cfg.Screen.Width*cfg.Screen.Scale, cfg.Screen.Height*cfg.Screen.Scale)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetFullscreen(cfg.Screen.Fullscreen)
	ebiten.SetTPS(cfg.Screen.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
