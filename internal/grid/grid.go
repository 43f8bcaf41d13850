// Package grid holds the square cell grid searched by the A* engine: cell
// states, neighbor lists, editing rules and snapshots for renderers.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid cannot be built with the given size.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfRange is returned for coordinates outside [0, rows).
	ErrOutOfRange = errors.New("coordinates out of range")
)

// offsets lists neighbor directions in the order they are appended:
// down, up, right, left.
var offsets = [4]Point{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Grid is a rows x rows array of cells indexed [row][col].
type Grid struct {
	Rows     int
	Width    int // in pixels
	CellSize int // Width / Rows, truncated
	Cells    [][]*Cell
}

// New allocates a grid with every cell Empty.
func New(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidDimension, rows)
	}
	if pixelWidth < rows {
		return nil, fmt.Errorf("%w: width %d smaller than rows %d", ErrInvalidDimension, pixelWidth, rows)
	}

	cells := make([][]*Cell, rows)
	for i := range cells {
		cells[i] = make([]*Cell, rows)
		for j := range cells[i] {
			cells[i][j] = &Cell{row: i, col: j, State: Empty}
		}
	}

	return &Grid{
		Rows:     rows,
		Width:    pixelWidth,
		CellSize: pixelWidth / rows,
		Cells:    cells,
	}, nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Rows
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) (*Cell, error) {
	if !g.InBounds(Point{Row: row, Col: col}) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.Rows, g.Rows)
	}
	return g.Cells[row][col], nil
}

// Contains reports whether c is a cell of this grid (pointer identity).
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || !g.InBounds(c.Pos()) {
		return false
	}
	return g.Cells[c.row][c.col] == c
}

// ComputeNeighbors rebuilds the neighbor list of every cell. Barrier cells are
// never listed as neighbors. Call it after barrier edits and before a search.
func (g *Grid) ComputeNeighbors() {
	for _, row := range g.Cells {
		for _, c := range row {
			c.Neighbors = c.Neighbors[:0]
			for _, d := range offsets {
				p := Point{Row: c.row + d.Row, Col: c.col + d.Col}
				if !g.InBounds(p) {
					continue
				}
				n := g.Cells[p.Row][p.Col]
				if n.State == Barrier {
					continue
				}
				c.Neighbors = append(c.Neighbors, n)
			}
		}
	}
}

// ResetSearch returns Open, Closed and Path cells to Empty. Start, End and
// Barrier cells are kept.
func (g *Grid) ResetSearch() {
	g.Each(func(c *Cell) {
		if c.State.Transient() {
			c.State = Empty
		}
	})
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.Cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns how many cells hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.State == s {
			n++
		}
	})
	return n
}

// Find returns the first cell holding state s in row-major order, or nil.
func (g *Grid) Find(s State) *Cell {
	for _, row := range g.Cells {
		for _, c := range row {
			if c.State == s {
				return c
			}
		}
	}
	return nil
}
