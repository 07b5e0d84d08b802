package raycast

import (
	"fmt"

	"maze/internal/actor"
)

// Options configure a Renderer.
type Options struct {
	Camera     Camera
	Projection Projection
	Palette    *Palette
	Ceiling    uint32
	Floor      uint32
	// MaxSteps bounds each ray's walk. Zero derives it from the map size.
	MaxSteps int
}

// Stats summarizes one rendered frame.
type Stats struct {
	// Misses counts columns whose ray found no wall.
	Misses int
}

// Renderer composites full frames: background, then one wall span per column.
type Renderer struct {
	camera    Camera
	projector Projector
	ceiling   uint32
	floor     uint32
	maxSteps  int
}

// NewRenderer builds a Renderer from opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		camera:    opts.Camera,
		projector: NewProjector(opts.Camera, opts.Projection, opts.Palette),
		ceiling:   opts.Ceiling,
		floor:     opts.Floor,
		maxSteps:  opts.MaxSteps,
	}
}

// NewFrame allocates a frame sized for the camera.
func (r *Renderer) NewFrame() *Frame {
	return NewFrame(r.camera.Width, r.camera.Height)
}

// Render draws a new frame for the viewpoint.
func (r *Renderer) Render(v actor.Viewpoint, g Grid) (*Frame, Stats) {
	f := r.NewFrame()
	return f, r.RenderInto(f, v, g)
}

// RenderInto overwrites every pixel of dst. dst must match the camera size.
func (r *Renderer) RenderInto(dst *Frame, v actor.Viewpoint, g Grid) Stats {
	w, h := r.camera.Width, r.camera.Height
	if dst.Width != w || dst.Height != h || len(dst.Pix) != w*h {
		panic(fmt.Sprintf("raycast: frame is %dx%d, camera is %dx%d", dst.Width, dst.Height, w, h))
	}
	horizon := h / 2
	dst.FillRows(0, horizon, r.ceiling)
	dst.FillRows(horizon, h, r.floor)

	var stats Stats
	for i := 0; i < w; i++ {
		hit := r.camera.Ray(v, i).Cast(g, r.maxSteps)
		if !hit.Ok {
			stats.Misses++
			continue
		}
		span := r.projector.Project(hit)
		dst.FillColumn(i, span.Top, span.Length, span.Color)
	}
	return stats
}
