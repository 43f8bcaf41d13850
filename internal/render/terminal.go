package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtxik/AStarGrid/internal/grid"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cellStyles  = func() map[grid.State]lipgloss.Style {
		m := make(map[grid.State]lipgloss.Style)
		for _, s := range []grid.State{grid.Empty, grid.Barrier, grid.Start, grid.End, grid.Open, grid.Closed, grid.Path} {
			m[s] = lipgloss.NewStyle().
				Background(lipgloss.Color(Hex(Color(s)))).
				Foreground(lipgloss.Color("#000000"))
		}
		return m
	}()
)

// Text renders a snapshot as one line per row. Each cell is its map glyph
// twice, colored by state when the terminal supports it.
func Text(s grid.Snapshot) string {
	var b strings.Builder
	for _, row := range s.States {
		for _, st := range row {
			g := string([]byte{grid.Glyph(st), grid.Glyph(st)})
			b.WriteString(cellStyles[st].Render(g))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Terminal prints frames to a writer, typically stdout.
type Terminal struct {
	w     io.Writer
	every int
	step  int
	err   error
}

// NewTerminal prints every every-th step to w.
func NewTerminal(w io.Writer, every int) *Terminal {
	if every < 1 {
		every = 1
	}
	return &Terminal{w: w, every: every}
}

// Write prints the snapshot as the next step.
func (t *Terminal) Write(s grid.Snapshot) error {
	t.step++
	if t.step%t.every != 0 {
		return nil
	}
	return t.print(fmt.Sprintf("step %d", t.step), s)
}

// Final prints a snapshot with a free-form title, outside the step count.
func (t *Terminal) Final(title string, s grid.Snapshot) error {
	return t.print(title, s)
}

func (t *Terminal) print(title string, s grid.Snapshot) error {
	header := headerStyle.Render(title) + "  " +
		statsStyle.Render(fmt.Sprintf("open %d  closed %d", s.Open, s.Closed))
	_, err := fmt.Fprintf(t.w, "%s\n%s\n", header, Text(s))
	return err
}

// Observer returns a step callback that snapshots g and prints it.
func (t *Terminal) Observer(g *grid.Grid) func() {
	return func() {
		if t.err != nil {
			return
		}
		t.err = t.Write(g.Snapshot())
	}
}

// Err returns the first write error hit by an observer callback.
func (t *Terminal) Err() error { return t.err }
