package grid

// Editor applies the interactive editing rules to a grid and tracks the
// start and end cells. It owns the grid for the lifetime of the session:
// Clear replaces it wholesale.
type Editor struct {
	grid       *Grid
	start, end *Cell
}

// NewEditor builds an editor over a fresh rows x rows grid.
func NewEditor(rows, pixelWidth int) (*Editor, error) {
	g, err := New(rows, pixelWidth)
	if err != nil {
		return nil, err
	}
	return &Editor{grid: g}, nil
}

// EditorFor wraps an existing grid, picking up its Start and End cells.
func EditorFor(g *Grid) *Editor {
	return &Editor{grid: g, start: g.Find(Start), end: g.Find(End)}
}

// Grid returns the grid currently being edited.
func (e *Editor) Grid() *Grid { return e.grid }

// Start returns the start cell, or nil.
func (e *Editor) Start() *Cell { return e.start }

// End returns the end cell, or nil.
func (e *Editor) End() *Cell { return e.end }

// Ready reports whether both start and end are placed.
func (e *Editor) Ready() bool { return e.start != nil && e.end != nil }

// Primary places the start if none is set, then the end, then barriers.
// The start and end cells themselves are never overwritten.
func (e *Editor) Primary(row, col int) error {
	c, err := e.grid.At(row, col)
	if err != nil {
		return err
	}

	switch {
	case e.start == nil && c != e.end:
		e.start = c
		c.State = Start
	case e.end == nil && c != e.start:
		e.end = c
		c.State = End
	case c != e.start && c != e.end:
		c.State = Barrier
	}
	return nil
}

// Secondary clears a cell back to Empty, forgetting it as start or end.
func (e *Editor) Secondary(row, col int) error {
	c, err := e.grid.At(row, col)
	if err != nil {
		return err
	}

	c.State = Empty
	switch c {
	case e.start:
		e.start = nil
	case e.end:
		e.end = nil
	}
	return nil
}

// Clear discards the grid and builds an empty one of the same size.
func (e *Editor) Clear() {
	g, err := New(e.grid.Rows, e.grid.Width)
	if err != nil {
		// the current grid already passed the same validation
		panic(err)
	}
	e.grid = g
	e.start, e.end = nil, nil
}

// PixelToCell maps a window position to grid coordinates. Rows run along the
// x axis and columns along the y axis.
func (e *Editor) PixelToCell(x, y int) (row, col int, ok bool) {
	size := e.grid.CellSize
	if size <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = x/size, y/size
	return row, col, e.grid.InBounds(Point{Row: row, Col: col})
}
