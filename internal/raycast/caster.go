package raycast

import "math"

// Side records which grid line the ray crossed into the hit cell.
type Side uint8

const (
	// SideX is a crossing of a vertical grid line (the ray stepped in x).
	SideX Side = iota
	// SideY is a crossing of a horizontal grid line (the ray stepped in y).
	SideY
)

func (s Side) String() string {
	if s == SideY {
		return "y"
	}
	return "x"
}

// Grid is the read-only map the caster walks.
type Grid interface {
	Width() int
	Height() int
	CellAt(cx, cy int) int
}

// Hit is the result of one cast. Ok is false when the ray left the map or ran
// out of steps without striking a wall.
type Hit struct {
	Distance     float64
	Material     int
	Side         Side
	CellX, CellY int
	Ok           bool
}

const (
	// hugeDelta stands in for 1/0 on an axis the ray does not move along.
	hugeDelta   = 1e30
	axisEpsilon = 1e-12
)

// MaxStepsFor returns a step budget for a width x height grid. It is large
// enough for any ray that starts inside the grid.
func MaxStepsFor(width, height int) int {
	return 4*(width+height) + 64
}

// Cast walks the grid cell by cell along r, always advancing across whichever
// grid line is nearer, until it enters a wall cell. The starting cell is never
// tested. maxSteps bounds the walk; zero picks MaxStepsFor.
func (r Ray) Cast(g Grid, maxSteps int) Hit {
	if maxSteps <= 0 {
		maxSteps = MaxStepsFor(g.Width(), g.Height())
	}
	mapX := int(math.Floor(r.OriginX))
	mapY := int(math.Floor(r.OriginY))

	stepX, deltaX, sideX := axisSetup(r.OriginX, r.DirX, mapX)
	stepY, deltaY, sideY := axisSetup(r.OriginY, r.DirY, mapY)

	var side Side
	for n := 0; n < maxSteps; n++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			side = SideY
		}
		if material := g.CellAt(mapX, mapY); material != 0 {
			return Hit{
				Distance: r.perpendicular(side, mapX, mapY, stepX, stepY),
				Material: material,
				Side:     side,
				CellX:    mapX,
				CellY:    mapY,
				Ok:       true,
			}
		}
		if escaped(g, mapX, mapY, stepX, stepY) {
			break
		}
	}
	return Hit{Side: side, CellX: mapX, CellY: mapY}
}

// axisSetup returns the step direction, the ray length between successive
// grid lines, and the ray length to the first grid line for one axis.
func axisSetup(origin, dir float64, cell int) (step int, delta, side float64) {
	step = 1
	if dir < 0 {
		step = -1
	}
	if math.Abs(dir) < axisEpsilon {
		return step, hugeDelta, hugeDelta
	}
	delta = math.Abs(1 / dir)
	if step < 0 {
		side = (origin - float64(cell)) * delta
	} else {
		side = (float64(cell) + 1 - origin) * delta
	}
	return step, delta, side
}

func (r Ray) perpendicular(side Side, mapX, mapY, stepX, stepY int) float64 {
	if side == SideY {
		return (float64(mapY) - r.OriginY + near(stepY)) / r.DirY
	}
	return (float64(mapX) - r.OriginX + near(stepX)) / r.DirX
}

// near is 1 when stepping negative: the struck face is the cell's far edge.
func near(step int) float64 {
	if step < 0 {
		return 1
	}
	return 0
}

// escaped reports whether the walk is outside the grid and moving away from
// it on some axis, so no wall can ever be reached.
func escaped(g Grid, mapX, mapY, stepX, stepY int) bool {
	return (mapX < 0 && stepX < 0) || (mapX >= g.Width() && stepX > 0) ||
		(mapY < 0 && stepY < 0) || (mapY >= g.Height() && stepY > 0)
}
