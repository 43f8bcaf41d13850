package astar

import (
	"fmt"
	"math"
	"sort"

	"github.com/mtxik/AStarGrid/internal/grid"
)

// Heuristic estimates the remaining cost between two grid coordinates.
type Heuristic func(a, b grid.Point) float64

// Manhattan is the grid distance |Δrow| + |Δcol|. It is admissible and
// consistent for 4-directional unit-cost moves, so A* stays optimal.
func Manhattan(a, b grid.Point) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean is the straight-line distance.
func Euclidean(a, b grid.Point) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Chebyshev is the larger of the coordinate differences.
func Chebyshev(a, b grid.Point) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	return math.Max(dr, dc)
}

// Zero turns A* into Dijkstra's algorithm.
func Zero(_, _ grid.Point) float64 { return 0 }

var heuristics = map[string]Heuristic{
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"chebyshev": Chebyshev,
	"dijkstra":  Zero,
}

// HeuristicByName looks up a heuristic by its configuration name.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHeuristic, name, HeuristicNames())
	}
	return h, nil
}

// HeuristicNames returns the known heuristic names, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
