package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"maze/internal/actor"
)

// enableAutoWalk schedules scripted movement for a limited duration. done
// runs once when the walk ends.
func (g *Game) enableAutoWalk(duration time.Duration, done func()) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autopilot = actor.NewAutopilot(rand.New(rand.NewSource(time.Now().UnixNano() + 3)))
	g.onAutoWalkDone = done
}

// frameIntents selects either keyboard or scripted intents. It reports false
// once a scripted walk has finished.
func (g *Game) frameIntents() (actor.Intents, bool) {
	if !g.autoWalk {
		return manualIntents(), true
	}
	if time.Now().After(g.autoWalkDeadline) {
		g.autoWalk = false
		g.log.Info("scripted walk finished")
		if g.onAutoWalkDone != nil {
			g.onAutoWalkDone()
		}
		return actor.Intents{}, false
	}
	return g.autopilot.Next(g.player, g.level), true
}

// manualIntents reads held keys: W/S walk, Left/Right turn, A/D strafe.
func manualIntents() actor.Intents {
	return actor.Intents{
		Forward: keyAxis(ebiten.KeyW, ebiten.KeyS),
		Turn:    keyAxis(ebiten.KeyArrowRight, ebiten.KeyArrowLeft),
		Strafe:  keyAxis(ebiten.KeyD, ebiten.KeyA),
	}
}

// keyAxis returns 1, -1, or 0 (both or neither held).
func keyAxis(pos, neg ebiten.Key) int {
	v := 0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handleDebugControls processes overlay hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
		g.log.Debug("debug overlay toggled", zap.Bool("enabled", g.showDebug))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
