package grid

import (
	"errors"
	"fmt"
)

// Empty is the cell code for open floor. Any positive code is a wall material.
const Empty = 0

var (
	ErrDimensions   = errors.New("grid: width and height must be positive")
	ErrCellCount    = errors.New("grid: cell count does not match width*height")
	ErrNegativeCell = errors.New("grid: cell codes must be non-negative")
)

// Map is an immutable row-major grid of cell codes. Coordinates outside the
// grid read as Empty.
type Map struct {
	width  int
	height int
	cells  []int
}

// New copies cells into a Map of the given size.
func New(width, height int, cells []int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCellCount, len(cells), width*height)
	}
	m := &Map{width: width, height: height, cells: make([]int, len(cells))}
	for i, c := range cells {
		if c < 0 {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeCell, c, i%width, i/width)
		}
		m.cells[i] = c
	}
	return m, nil
}

// FromRows builds a Map from a literal layout. All rows must share one length.
func FromRows(rows [][]int) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrDimensions
	}
	width := len(rows[0])
	cells := make([]int, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrCellCount, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	return New(width, len(rows), cells)
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (cx, cy) lies inside the grid.
func (m *Map) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < m.width && cy >= 0 && cy < m.height
}

// CellAt returns the material code at (cx, cy), or Empty when out of bounds.
func (m *Map) CellAt(cx, cy int) int {
	if !m.InBounds(cx, cy) {
		return Empty
	}
	return m.cells[cy*m.width+cx]
}

// IsEmpty reports whether (cx, cy) can be occupied. Out-of-bounds cells are
// always empty.
func (m *Map) IsEmpty(cx, cy int) bool {
	return m.CellAt(cx, cy) == Empty
}

// Enclosed reports whether every border cell is a wall. Rays cast inside an
// enclosed map always terminate on a wall.
func (m *Map) Enclosed() bool {
	for x := 0; x < m.width; x++ {
		if m.IsEmpty(x, 0) || m.IsEmpty(x, m.height-1) {
			return false
		}
	}
	for y := 1; y < m.height-1; y++ {
		if m.IsEmpty(0, y) || m.IsEmpty(m.width-1, y) {
			return false
		}
	}
	return true
}
