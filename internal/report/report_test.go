package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
)

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "no path", FormatPath(nil))
	assert.Equal(t, "(0,0) -> (0,1) -> (1,1)",
		FormatPath([]grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}))
}

func TestNewEntry(t *testing.T) {
	found := NewEntry("manhattan", grid.Point{Row: 0, Col: 0}, astar.Result{
		Outcome: astar.Found,
		Path:    []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 1}},
		Stats:   astar.Stats{Expanded: 3, PercentVisited: 75},
	})
	assert.Equal(t, 2, found.PathLength)
	assert.Equal(t, "(0,0) -> (0,1) -> (1,1)", found.Path)

	missing := NewEntry("dijkstra", grid.Point{Row: 0, Col: 0}, astar.Result{Outcome: astar.NotFound})
	assert.Zero(t, missing.PathLength)
	assert.Equal(t, "no path", missing.Path)
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.txt")
	entries := []Entry{
		{Name: "manhattan", Outcome: astar.Found, PathLength: 2, Expanded: 3, PercentVisited: 75,
			ExecutionTime: 1500 * time.Microsecond, Path: "(0,0) -> (0,1) -> (1,1)"},
		{Name: "dijkstra", Outcome: astar.NotFound, Path: "no path"},
	}
	require.NoError(t, WriteFile(name, entries))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "Algorithm: manhattan\nOutcome: found\nPath length: 2\n")
	assert.Contains(t, text, "Expanded cells: 3 (75%)")
	assert.Contains(t, text, "Execution time: 1.50 ms")
	assert.Contains(t, text, "Outcome: not_found")
	assert.Equal(t, 2, strings.Count(text, "Algorithm:"))
}
