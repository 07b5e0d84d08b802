package main

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"maze/internal/config"
	"maze/internal/grid"
)

// buildMap returns the map selected by cfg. Generated maps keep the player's
// start cell clear.
func buildMap(cfg *config.Config, log *zap.Logger) (*grid.Map, error) {
	var (
		m   *grid.Map
		err error
	)
	switch cfg.Map.Source {
	case config.SourceGenerated:
		seed := cfg.Map.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts := grid.DefaultGenerateOptions()
		opts.Width = cfg.Map.Width
		opts.Height = cfg.Map.Height
		opts.Segments = cfg.Map.Segments
		opts.StartX = int(cfg.Player.X)
		opts.StartY = int(cfg.Player.Y)
		m, err = grid.Generate(rand.New(rand.NewSource(seed)), opts)
		if err != nil {
			return nil, fmt.Errorf("generate map: %w", err)
		}
		log.Info("generated map", zap.Int64("seed", seed), zap.Int("width", m.Width()), zap.Int("height", m.Height()))
	default:
		m = grid.Default()
		log.Info("loaded built-in map", zap.Int("width", m.Width()), zap.Int("height", m.Height()))
	}
	if !m.Enclosed() {
		log.Warn("map border is open; rays leaving the map draw as background")
	}
	return m, nil
}
