package astar

import (
	"slices"

	"github.com/mtxik/AStarGrid/internal/grid"
)

// Reconstruct walks cameFrom back from end and marks the cells in between as
// Path. The start cell has no predecessor and ends the walk; it is neither
// marked nor returned. end keeps its own state.
//
// The returned cells run from the cell after start to end inclusive. A path
// where start is adjacent to end yields just [end].
func Reconstruct(cameFrom map[*grid.Cell]*grid.Cell, end *grid.Cell) []*grid.Cell {
	var cells []*grid.Cell
	current := end
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		cells = append(cells, current)
		if _, hasPrev := cameFrom[prev]; hasPrev {
			prev.State = grid.Path
		}
		current = prev
	}
	slices.Reverse(cells)
	return cells
}
