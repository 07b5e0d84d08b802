package actor

import (
	"math"
	"math/rand"
	"testing"

	"maze/internal/grid"
)

func mustMap(t *testing.T, rows [][]int) *grid.Map {
	t.Helper()
	m, err := grid.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestTurn_NeverBlocked(t *testing.T) {
	v := Viewpoint{X: 1.5, Y: 1.5, Heading: 10, TurnSpeed: 2}
	v.Turn(1)
	v.Turn(1)
	v.Turn(-1)
	if v.Heading != 12 {
		t.Fatalf("heading %.3f, want 12", v.Heading)
	}
	for i := 0; i < 1000; i++ {
		v.Turn(1)
	}
	if v.Heading != 2012 {
		t.Fatalf("heading must stay unnormalized, got %.3f", v.Heading)
	}
}

func TestMove_OpenFloor(t *testing.T) {
	m := mustMap(t, [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	})
	v := Viewpoint{X: 1.5, Y: 1.5, Heading: 0, MoveSpeed: 0.15}
	v.Move(1, m)
	if math.Abs(v.X-1.65) > 1e-9 || math.Abs(v.Y-1.5) > 1e-9 {
		t.Fatalf("got (%.4f,%.4f), want (1.65,1.5)", v.X, v.Y)
	}
	v.Move(-1, m)
	if math.Abs(v.X-1.5) > 1e-9 {
		t.Fatalf("backing up: x=%.4f, want 1.5", v.X)
	}
}

func TestMove_CollisionExample(t *testing.T) {
	m := mustMap(t, [][]int{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	})
	v := Viewpoint{X: 1.1, Y: 1.1, Heading: 0, MoveSpeed: 0.15, TurnSpeed: 2}
	v.Apply(Intents{Forward: -1, Strafe: -1}, m)
	if math.Abs(v.X-1.1) > 1e-9 {
		t.Fatalf("west move must be blocked, x=%.6f", v.X)
	}
	if math.Abs(v.Y-0.95) > 1e-9 {
		t.Fatalf("strafe toward the open north cell must move y, got %.6f", v.Y)
	}
	if m.CellAt(int(math.Floor(v.X)), int(math.Floor(v.Y))) != grid.Empty {
		t.Fatal("viewpoint ended inside a wall")
	}
}

func TestMove_SlidesAlongWall(t *testing.T) {
	m := mustMap(t, [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	})
	// Pressing diagonally into the west wall keeps the southward component.
	v := Viewpoint{X: 1.05, Y: 1.5, Heading: 135, MoveSpeed: 0.15}
	v.Move(1, m)
	if v.X != 1.05 {
		t.Fatalf("x must be blocked, got %.6f", v.X)
	}
	want := 1.5 + math.Sin(Radians(135))*0.15
	if math.Abs(v.Y-want) > 1e-9 {
		t.Fatalf("y must slide to %.6f, got %.6f", want, v.Y)
	}
}

func TestStrafe_SlidesAlongWall(t *testing.T) {
	m := mustMap(t, [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	})
	// Heading 45° makes strafe point toward 135°: west is blocked, south is open.
	v := Viewpoint{X: 1.05, Y: 1.5, Heading: 45, MoveSpeed: 0.15}
	v.Strafe(1, m)
	if v.X != 1.05 {
		t.Fatalf("x must be blocked, got %.6f", v.X)
	}
	if v.Y <= 1.5 {
		t.Fatalf("y must increase, got %.6f", v.Y)
	}
}

func TestApply_IdleIsIdempotent(t *testing.T) {
	m := grid.Default()
	v := Viewpoint{X: 1.5, Y: 1.5, Heading: 33.3, MoveSpeed: 0.15, TurnSpeed: 2}
	start := v
	for i := 0; i < 100; i++ {
		v.Apply(Intents{}, m)
	}
	if v != start {
		t.Fatalf("pose changed without input: %+v -> %+v", start, v)
	}
}

func TestIntents_Clamped(t *testing.T) {
	in := Intents{Turn: 5, Forward: -3, Strafe: 0}.Clamped()
	if in != (Intents{Turn: 1, Forward: -1}) {
		t.Fatalf("got %+v", in)
	}
	if !(Intents{}).Zero() || in.Zero() {
		t.Fatal("Zero misreports")
	}
}

func TestAutopilot_StaysInOpenCells(t *testing.T) {
	m := grid.Default()
	v := Viewpoint{X: 1.5, Y: 1.5, MoveSpeed: 0.15, TurnSpeed: 2}
	ap := NewAutopilot(rand.New(rand.NewSource(42)))
	moved := false
	for i := 0; i < 2000; i++ {
		in := ap.Next(v, m)
		if in != in.Clamped() {
			t.Fatalf("frame %d: unclamped intents %+v", i, in)
		}
		v.Apply(in, m)
		if !m.IsEmpty(int(math.Floor(v.X)), int(math.Floor(v.Y))) {
			t.Fatalf("frame %d: viewpoint inside wall at (%.3f,%.3f)", i, v.X, v.Y)
		}
		if v.X != 1.5 || v.Y != 1.5 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("autopilot never moved")
	}
}
