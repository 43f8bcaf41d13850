// Package report formats and writes the comparison of several searches over
// the same map.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
)

// Entry is the result of one algorithm run.
type Entry struct {
	Name           string
	Outcome        astar.Outcome
	PathLength     int
	Expanded       int
	PercentVisited int
	ExecutionTime  time.Duration
	Path           string
}

// NewEntry builds an entry from a search result. start is prepended to the
// formatted path.
func NewEntry(name string, start grid.Point, res astar.Result) Entry {
	e := Entry{
		Name:           name,
		Outcome:        res.Outcome,
		Expanded:       res.Stats.Expanded,
		PercentVisited: res.Stats.PercentVisited,
		ExecutionTime:  res.Stats.Elapsed,
	}
	if res.Outcome == astar.Found {
		e.PathLength = len(res.Path)
		e.Path = FormatPath(append([]grid.Point{start}, res.Path...))
	} else {
		e.Path = FormatPath(nil)
	}
	return e
}

// FormatPath renders points as (r1,c1) -> (r2,c2) -> ...
func FormatPath(path []grid.Point) string {
	if path == nil {
		return "no path"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}

// Write prints entries separated by blank lines.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		execTime := fmt.Sprintf("%.2f ms", float64(e.ExecutionTime)/float64(time.Millisecond))
		fmt.Fprintf(bw, "Algorithm: %s\n", e.Name)
		fmt.Fprintf(bw, "Outcome: %s\n", e.Outcome)
		fmt.Fprintf(bw, "Path length: %d\n", e.PathLength)
		fmt.Fprintf(bw, "Expanded cells: %d (%d%%)\n", e.Expanded, e.PercentVisited)
		fmt.Fprintf(bw, "Execution time: %s\n", execTime)
		fmt.Fprintf(bw, "Path: %s\n\n", e.Path)
	}
	return bw.Flush()
}

// WriteFile creates or truncates filename and writes the entries to it.
func WriteFile(filename string, entries []Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
