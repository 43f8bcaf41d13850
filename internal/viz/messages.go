package viz

import (
	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
)

// Command is sent by the browser.
type Command struct {
	Action  string  `json:"action"` // "init", "map", "run", "stop"
	Rows    int     `json:"rows,omitempty"`
	Density float64 `json:"density,omitempty"`
	Seed    int64   `json:"seed,omitempty"`
	Map     string  `json:"map,omitempty"` // text map for "map"
}

// Frame carries the cell states after a step, or the initial grid.
type Frame struct {
	Type    string   `json:"type"` // "grid" or "frame"
	Session string   `json:"session"`
	Step    int      `json:"step"`
	Rows    int      `json:"rows"`
	Cells   []string `json:"cells"` // one glyph string per row
	Open    int      `json:"open"`
	Closed  int      `json:"closed"`
}

// Done reports the end of a search.
type Done struct {
	Type     string   `json:"type"` // "done"
	Session  string   `json:"session"`
	Outcome  string   `json:"outcome"`
	Path     [][2]int `json:"path,omitempty"`
	Expanded int      `json:"expanded"`
	Cells    []string `json:"cells,omitempty"`
}

// Failure reports a rejected command.
type Failure struct {
	Type    string `json:"type"` // "error"
	Session string `json:"session"`
	Error   string `json:"error"`
}

func encodeCells(s grid.Snapshot) []string {
	rows := make([]string, len(s.States))
	for i, row := range s.States {
		b := make([]byte, len(row))
		for j, st := range row {
			b[j] = grid.Glyph(st)
		}
		rows[i] = string(b)
	}
	return rows
}

func newFrame(kind, session string, s grid.Snapshot) Frame {
	return Frame{
		Type:    kind,
		Session: session,
		Step:    s.Step,
		Rows:    s.Rows,
		Cells:   encodeCells(s),
		Open:    s.Open,
		Closed:  s.Closed,
	}
}

func newDone(session string, res astar.Result, final grid.Snapshot) Done {
	d := Done{
		Type:     "done",
		Session:  session,
		Outcome:  res.Outcome.String(),
		Expanded: res.Stats.Expanded,
		Cells:    encodeCells(final),
	}
	for _, p := range res.Path {
		d.Path = append(d.Path, [2]int{p.Row, p.Col})
	}
	return d
}
