package main

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"maze/internal/actor"
	"maze/internal/config"
	"maze/internal/grid"
	"maze/internal/raycast"
)

// Game owns the viewpoint, the map, and the frame buffer. Every tick reads
// input, moves the viewpoint, and renders a complete frame.
type Game struct {
	log *zap.Logger

	level    *grid.Map
	player   actor.Viewpoint
	renderer *raycast.Renderer
	frame    *raycast.Frame
	pixels   []byte

	width, height int

	lastStats   raycast.Stats
	missFrames  int
	lastMissLog time.Time

	showDebug   bool
	showMinimap bool

	autoWalk         bool
	autoWalkDeadline time.Time
	autopilot        *actor.Autopilot
	onAutoWalkDone   func()
}

// newGame constructs a Game ready for ebiten.RunGame.
func newGame(cfg *config.Config, level *grid.Map, log *zap.Logger) (*Game, error) {
	projection, err := raycast.ParseProjection(cfg.Camera.Projection)
	if err != nil {
		return nil, err
	}
	player := actor.Viewpoint{
		X:         cfg.Player.X,
		Y:         cfg.Player.Y,
		Heading:   cfg.Player.Heading,
		MoveSpeed: cfg.Player.MoveSpeed,
		TurnSpeed: cfg.Player.TurnSpeed,
	}
	if !level.IsEmpty(int(math.Floor(player.X)), int(math.Floor(player.Y))) {
		return nil, fmt.Errorf("start position (%.2f, %.2f) is inside a wall", player.X, player.Y)
	}
	renderer := raycast.NewRenderer(raycast.Options{
		Camera: raycast.Camera{
			Width:  cfg.Screen.Width,
			Height: cfg.Screen.Height,
			FOV:    cfg.Camera.FOVDegrees,
		},
		Projection: projection,
		Palette:    raycast.DefaultPalette(),
		Ceiling:    cfg.Render.Ceiling,
		Floor:      cfg.Render.Floor,
		MaxSteps:   cfg.Render.MaxSteps,
	})
	g := &Game{
		log:         log,
		level:       level,
		player:      player,
		renderer:    renderer,
		frame:       renderer.NewFrame(),
		width:       cfg.Screen.Width,
		height:      cfg.Screen.Height,
		showDebug:   *debugFlag,
		showMinimap: cfg.Render.Minimap,
	}
	g.lastStats = g.renderer.RenderInto(g.frame, g.player, g.level)
	return g, nil
}

// Update advances one frame: input, movement, then a full render.
func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	g.handleDebugControls()

	in, ok := g.frameIntents()
	if !ok {
		return ebiten.Termination
	}
	g.player.Apply(in, g.level)

	g.lastStats = g.renderer.RenderInto(g.frame, g.player, g.level)
	g.logMisses()
	return nil
}

// logMisses reports columns whose rays escaped the map, at most once per
// missLogInterval.
func (g *Game) logMisses() {
	if g.lastStats.Misses == 0 {
		return
	}
	g.missFrames++
	now := time.Now()
	if now.Sub(g.lastMissLog) < missLogInterval {
		return
	}
	g.log.Debug("rays escaped the map",
		zap.Int("columns", g.lastStats.Misses),
		zap.Int("frames", g.missFrames),
		zap.Float64("x", g.player.X),
		zap.Float64("y", g.player.Y),
		zap.Float64("heading", g.player.Heading))
	g.missFrames = 0
	g.lastMissLog = now
}
