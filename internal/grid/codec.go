package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadMap is returned when a text map cannot be parsed.
var ErrBadMap = errors.New("malformed map")

var stateGlyphs = map[State]byte{
	Empty:   '.',
	Barrier: '#',
	Start:   'S',
	End:     'E',
	Open:    'o',
	Closed:  'x',
	Path:    '*',
}

var glyphStates = func() map[byte]State {
	m := make(map[byte]State, len(stateGlyphs))
	for s, b := range stateGlyphs {
		m[b] = s
	}
	return m
}()

// Glyph returns the map character for a state.
func Glyph(s State) byte {
	if b, ok := stateGlyphs[s]; ok {
		return b
	}
	return '?'
}

// Parse reads a square text map, one row per line. Blank lines and lines
// starting with ';' are skipped. At most one S and one E may appear.
func Parse(r io.Reader, pixelWidth int) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadMap)
	}

	rows := len(lines)
	if pixelWidth < rows {
		pixelWidth = rows
	}
	g, err := New(rows, pixelWidth)
	if err != nil {
		return nil, err
	}

	var starts, ends int
	for i, line := range lines {
		if len(line) != rows {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMap, i, len(line), rows)
		}
		for j := 0; j < len(line); j++ {
			st, ok := glyphStates[line[j]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrBadMap, line[j], i, j)
			}
			switch st {
			case Start:
				starts++
			case End:
				ends++
			}
			g.Cells[i][j].State = st
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d starts and %d ends, at most one each", ErrBadMap, starts, ends)
	}
	return g, nil
}

// Format writes the grid in the text map format accepted by Parse.
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Cells {
		for _, c := range row {
			if err := bw.WriteByte(Glyph(c.State)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the grid as a text map.
func (g *Grid) String() string {
	var b strings.Builder
	_ = g.Format(&b)
	return b.String()
}
