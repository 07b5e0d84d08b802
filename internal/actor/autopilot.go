package actor

import (
	"math"
	"math/rand"
)

const (
	probeDistance  = 0.6
	minTurnFrames  = 8
	turnFrameRange = 30
	wanderChance   = 90
)

// Autopilot produces scripted intents: walk forward, and when a wall is close
// ahead, spin in a random direction for a while before walking again.
type Autopilot struct {
	rng     *rand.Rand
	turnDir int
	frames  int
}

// NewAutopilot returns an Autopilot driven by rng.
func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

// Next returns the intents for the coming frame.
func (a *Autopilot) Next(v Viewpoint, c Collider) Intents {
	if a.frames > 0 {
		a.frames--
		return Intents{Turn: a.turnDir}
	}
	rad := Radians(v.Heading)
	nx := v.X + math.Cos(rad)*probeDistance
	ny := v.Y + math.Sin(rad)*probeDistance
	if !c.IsEmpty(cell(nx), cell(ny)) || a.rng.Intn(wanderChance) == 0 {
		a.randomizeTurn()
		a.frames--
		return Intents{Turn: a.turnDir}
	}
	return Intents{Forward: 1}
}

func (a *Autopilot) randomizeTurn() {
	a.turnDir = 1
	if a.rng.Intn(2) == 0 {
		a.turnDir = -1
	}
	a.frames = minTurnFrames + a.rng.Intn(turnFrameRange)
}
