package runner

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
	"github.com/mtxik/AStarGrid/internal/metrics"
)

func newTestRunner(t *testing.T, logs *bytes.Buffer) (*Runner, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := New("manhattan", WithLogger(logger), WithMetrics(metrics.New(reg)))
	require.NoError(t, err)
	return r, reg
}

func TestRunEditor(t *testing.T) {
	var logs bytes.Buffer
	r, reg := newTestRunner(t, &logs)

	e, err := grid.NewEditor(5, 50)
	require.NoError(t, err)
	require.NoError(t, e.Primary(0, 0))
	require.NoError(t, e.Primary(4, 4))

	res, err := r.RunEditor(context.Background(), e, nil)
	require.NoError(t, err)

	assert.Equal(t, astar.Found, res.Outcome)
	assert.Len(t, res.Path, 8)
	assert.Contains(t, logs.String(), "search finished")
	assert.Contains(t, logs.String(), "outcome=found")
	assert.Equal(t, 1, gatherCount(t, reg, "astargrid_search_total"))
}

func TestRun_RecomputesNeighborsAndClearsMarks(t *testing.T) {
	var logs bytes.Buffer
	r, _ := newTestRunner(t, &logs)

	e, err := grid.NewEditor(5, 50)
	require.NoError(t, err)
	require.NoError(t, e.Primary(0, 0))
	require.NoError(t, e.Primary(0, 4))

	first, err := r.RunEditor(context.Background(), e, nil)
	require.NoError(t, err)
	require.Len(t, first.Path, 4)

	// wall off column 2 except the bottom row, without touching neighbor lists
	for row := 0; row < 4; row++ {
		require.NoError(t, e.Primary(row, 2))
	}

	second, err := r.RunEditor(context.Background(), e, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Found, second.Outcome)
	assert.Contains(t, second.Path, grid.Point{Row: 4, Col: 2})
	assert.Len(t, second.Path, 12)

	for _, p := range first.Path {
		if !containsPoint(second.Path, p) && e.Grid().Cells[p.Row][p.Col].State == grid.Path {
			t.Errorf("stale path mark at %s", p)
		}
	}
}

func TestRun_NotReady(t *testing.T) {
	var logs bytes.Buffer
	r, reg := newTestRunner(t, &logs)

	e, err := grid.NewEditor(3, 30)
	require.NoError(t, err)
	require.NoError(t, e.Primary(1, 1))

	_, err = r.RunEditor(context.Background(), e, nil)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, 1, gatherCount(t, reg, "astargrid_search_rejected_total"))
}

func TestRun_InvalidArgument(t *testing.T) {
	var logs bytes.Buffer
	r, _ := newTestRunner(t, &logs)

	a, _ := grid.New(3, 30)
	b, _ := grid.New(3, 30)

	_, err := r.Run(context.Background(), a, a.Cells[0][0], b.Cells[2][2], nil)
	assert.ErrorIs(t, err, astar.ErrInvalidArgument)
}

func TestRun_Cancelled(t *testing.T) {
	var logs bytes.Buffer
	r, _ := newTestRunner(t, &logs)

	g, err := grid.Parse(strings.NewReader("S...\n....\n....\n...E\n"), 40)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := r.Run(ctx, g, g.Find(grid.Start), g.Find(grid.End), cancel)
	require.NoError(t, err)
	assert.Equal(t, astar.Cancelled, res.Outcome)
	assert.Equal(t, 0, g.Count(grid.Path))
}

func TestNew_UnknownHeuristic(t *testing.T) {
	_, err := New("teleport")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)
}

func containsPoint(ps []grid.Point, p grid.Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func gatherCount(t *testing.T, reg *prometheus.Registry, name string) int {
	t.Helper()
	n, err := testutil.GatherAndCount(reg, name)
	require.NoError(t, err)
	return n
}
