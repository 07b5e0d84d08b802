package raycast

import (
	"fmt"
	"math"
)

// Projection selects how a hit distance becomes a wall height.
type Projection int

const (
	// Perspective scales by the pinhole projection distance of the camera.
	Perspective Projection = iota
	// Simple divides the screen height by the distance, never magnifying
	// walls closer than one cell.
	Simple
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Simple:
		return "simple"
	}
	return fmt.Sprintf("Projection(%d)", int(p))
}

// ParseProjection accepts the names returned by String.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "perspective", "":
		return Perspective, nil
	case "simple":
		return Simple, nil
	}
	return 0, fmt.Errorf("unknown projection %q", s)
}

// Span is a vertical run of pixels in one column.
type Span struct {
	Top    int
	Length int
	Color  uint32
}

// Projector turns hits into wall spans for one screen size.
type Projector struct {
	height    int
	planeDist float64
	model     Projection
	palette   *Palette
}

// NewProjector returns a projector for cam. A nil palette uses DefaultPalette.
func NewProjector(cam Camera, model Projection, palette *Palette) Projector {
	if palette == nil {
		palette = DefaultPalette()
	}
	return Projector{
		height:    cam.Height,
		planeDist: cam.ProjectionDistance(),
		model:     model,
		palette:   palette,
	}
}

// WallHeight returns the unclipped on-screen height of a wall at distance.
func (p Projector) WallHeight(distance float64) float64 {
	if p.model == Simple {
		return float64(p.height) / math.Max(distance, 1)
	}
	if distance <= 0 {
		return math.Inf(1)
	}
	return p.planeDist / distance
}

// Project returns the span for h, vertically centered and clipped to the
// screen.
func (p Projector) Project(h Hit) Span {
	wall := p.WallHeight(h.Distance)
	length := p.height
	if wall < float64(p.height) {
		length = int(wall)
	}
	return Span{
		Top:    (p.height - length) / 2,
		Length: length,
		Color:  p.palette.Color(h.Material, h.Side),
	}
}
