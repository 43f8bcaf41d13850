package grid

import "fmt"

// State is the search/edit tag of a cell. Exactly one state holds at a time.
type State uint8

const (
	Empty State = iota
	Barrier
	Start
	End
	Open
	Closed
	Path
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Transient reports whether the state is written by a search run
// and cleared by ResetSearch.
func (s State) Transient() bool {
	switch s {
	case Open, Closed, Path:
		return true
	default:
		return false
	}
}

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// String formats the point as (row,col).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single addressable square of the grid.
type Cell struct {
	row, col int
	State    State

	// Neighbors holds the traversable cells in the order down, up, right, left.
	// It is only valid right after Grid.ComputeNeighbors.
	Neighbors []*Cell
}

// Row returns the row of the cell.
func (c *Cell) Row() int { return c.row }

// Col returns the column of the cell.
func (c *Cell) Col() int { return c.col }

// Pos returns the coordinates of the cell.
func (c *Cell) Pos() Point { return Point{Row: c.row, Col: c.col} }

// Is reports whether the cell currently holds state s.
func (c *Cell) Is(s State) bool { return c.State == s }

func (c *Cell) String() string {
	return fmt.Sprintf("%s[%s]", c.Pos(), c.State)
}
