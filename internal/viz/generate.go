package viz

import (
	"math/rand"

	"github.com/mtxik/AStarGrid/internal/grid"
)

// directions used by the barrier random walks
var walk = [4]grid.Point{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// generate builds an editor with distinct random start and end cells and
// clustered barriers laid by random walks. density is the chance that a walk
// step leaves a barrier.
func generate(rows, width int, density float64, seed int64) (*grid.Editor, error) {
	e, err := grid.NewEditor(rows, width)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))
	g := e.Grid()

	start := grid.Point{Row: r.Intn(rows), Col: r.Intn(rows)}
	end := start
	for end == start {
		end = grid.Point{Row: r.Intn(rows), Col: r.Intn(rows)}
	}
	if err := e.Primary(start.Row, start.Col); err != nil {
		return nil, err
	}
	if err := e.Primary(end.Row, end.Col); err != nil {
		return nil, err
	}

	if density <= 0 {
		return e, nil
	}
	clusters := max(1, rows/5)
	steps := rows * 4
	for c := 0; c < clusters; c++ {
		p := grid.Point{Row: r.Intn(rows), Col: r.Intn(rows)}
		for s := 0; s < steps; s++ {
			if r.Float64() < density {
				// Primary never overwrites start or end
				if err := e.Primary(p.Row, p.Col); err != nil {
					return nil, err
				}
			}
			d := walk[r.Intn(len(walk))]
			if np := (grid.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}); g.InBounds(np) {
				p = np
			}
		}
	}
	return e, nil
}
