package grid

import (
	"fmt"
	"math/rand"
)

// GenerateOptions controls procedural map generation.
type GenerateOptions struct {
	Width, Height int
	Segments      int
	MinLen        int
	MaxLen        int
	// Materials is the number of wall codes to pick from (1..Materials).
	Materials int
	// StartX, StartY is kept clear of walls within ClearRadius cells.
	StartX, StartY int
	ClearRadius    int
}

// DefaultGenerateOptions returns options sized for a 24x24 map starting in
// the top-left room.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:       24,
		Height:      24,
		Segments:    14,
		MinLen:      3,
		MaxLen:      10,
		Materials:   4,
		StartX:      1,
		StartY:      1,
		ClearRadius: 1,
	}
}

// Generate builds an enclosed map: a solid border ring of material 1 plus
// random straight wall segments. The result depends only on rng's sequence.
func Generate(rng *rand.Rand, opts GenerateOptions) (*Map, error) {
	w, h := opts.Width, opts.Height
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: generated map needs at least 3x3, got %dx%d", ErrDimensions, w, h)
	}
	cells := make([]int, w*h)
	for x := 0; x < w; x++ {
		cells[x] = 1
		cells[(h-1)*w+x] = 1
	}
	for y := 0; y < h; y++ {
		cells[y*w] = 1
		cells[y*w+w-1] = 1
	}

	materials := opts.Materials
	if materials < 1 {
		materials = 1
	}
	lengthRange := opts.MaxLen - opts.MinLen + 1
	if lengthRange <= 0 {
		lengthRange = 1
	}
	for s := 0; s < opts.Segments; s++ {
		length := opts.MinLen + rng.Intn(lengthRange)
		material := 1 + rng.Intn(materials)
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(w-2) + 1
		y := rng.Intn(h-2) + 1
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		for l := 0; l < length; l++ {
			if x <= 0 || x >= w-1 || y <= 0 || y >= h-1 {
				break
			}
			trySetWall(cells, w, x, y, material, opts)
			x += dx
			y += dy
		}
	}
	return New(w, h, cells)
}

// trySetWall marks an interior cell as a wall unless it lies in the start
// clearance.
func trySetWall(cells []int, w, x, y, material int, opts GenerateOptions) {
	dx := x - opts.StartX
	dy := y - opts.StartY
	r := opts.ClearRadius
	if dx >= -r && dx <= r && dy >= -r && dy <= r {
		return
	}
	cells[y*w+x] = material
}
