package actor

import "math"

// Collider answers occupancy queries for integer cells.
type Collider interface {
	IsEmpty(cx, cy int) bool
}

// Viewpoint is the camera pose that walks the map. Heading is in degrees and
// is never normalized; every consumer goes through sin/cos.
type Viewpoint struct {
	X, Y      float64
	Heading   float64
	MoveSpeed float64
	TurnSpeed float64
}

// Intents are the per-frame directional inputs, each in {-1, 0, 1}.
type Intents struct {
	Turn    int
	Forward int
	Strafe  int
}

// Zero reports whether no input is held.
func (in Intents) Zero() bool {
	return in.Turn == 0 && in.Forward == 0 && in.Strafe == 0
}

// Clamped returns the intents limited to {-1, 0, 1}.
func (in Intents) Clamped() Intents {
	return Intents{Turn: sign(in.Turn), Forward: sign(in.Forward), Strafe: sign(in.Strafe)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Turn rotates the heading. Rotation is never blocked.
func (v *Viewpoint) Turn(dir int) {
	v.Heading += v.TurnSpeed * float64(dir)
}

// Move walks along the heading.
func (v *Viewpoint) Move(dir int, c Collider) {
	v.step(v.Heading, dir, c)
}

// Strafe walks perpendicular to the heading, toward heading+90°.
func (v *Viewpoint) Strafe(dir int, c Collider) {
	v.step(v.Heading+90, dir, c)
}

// step applies each axis separately so a blocked axis does not cancel the
// other one; the y check sees the already updated x.
func (v *Viewpoint) step(angle float64, dir int, c Collider) {
	if dir == 0 {
		return
	}
	rad := Radians(angle)
	dx := math.Cos(rad) * v.MoveSpeed * float64(dir)
	dy := math.Sin(rad) * v.MoveSpeed * float64(dir)
	if c.IsEmpty(cell(v.X+dx), cell(v.Y)) {
		v.X += dx
	}
	if c.IsEmpty(cell(v.X), cell(v.Y+dy)) {
		v.Y += dy
	}
}

// Apply runs one frame of input in the order move, turn, strafe.
func (v *Viewpoint) Apply(in Intents, c Collider) {
	in = in.Clamped()
	v.Move(in.Forward, c)
	v.Turn(in.Turn)
	v.Strafe(in.Strafe, c)
}

func cell(f float64) int { return int(math.Floor(f)) }
