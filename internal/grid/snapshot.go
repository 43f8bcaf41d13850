package grid

// Snapshot is a detached copy of the cell states of a grid. It shares no
// memory with the grid and may be handed to another goroutine.
type Snapshot struct {
	Step   int
	Rows   int
	States [][]State
	Open   int
	Closed int
}

// Snapshot copies the current cell states.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{
		Rows:   g.Rows,
		States: make([][]State, g.Rows),
	}
	for i, row := range g.Cells {
		s.States[i] = make([]State, len(row))
		for j, c := range row {
			s.States[i][j] = c.State
			switch c.State {
			case Open:
				s.Open++
			case Closed:
				s.Closed++
			}
		}
	}
	return s
}

// At returns the state at p, or Empty when p is outside the snapshot.
func (s Snapshot) At(p Point) State {
	if p.Row < 0 || p.Row >= len(s.States) || p.Col < 0 || p.Col >= len(s.States[p.Row]) {
		return Empty
	}
	return s.States[p.Row][p.Col]
}

// Points returns the coordinates holding state st in row-major order.
func (s Snapshot) Points(st State) []Point {
	var out []Point
	for i, row := range s.States {
		for j, v := range row {
			if v == st {
				out = append(out, Point{Row: i, Col: j})
			}
		}
	}
	return out
}
