package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
	"github.com/mtxik/AStarGrid/internal/runner"
)

func newController(t *testing.T, rows, width int, delay time.Duration) *Controller {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := runner.New("manhattan", runner.WithLogger(logger))
	require.NoError(t, err)
	c, err := NewController(rows, width, r, delay, logger)
	require.NoError(t, err)
	return c
}

// click returns the pixel at the centre of cell (row, col); rows lie along x.
func click(c *Controller, row, col int) (int, int) {
	size := c.CellSize()
	return row*size + size/2, col*size + size/2
}

func drain(t *testing.T, c *Controller) int {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	frames := 0
	for c.Searching() {
		require.True(t, time.Now().Before(deadline), "search did not finish")
		prev := c.Snapshot().Step
		c.Poll()
		if c.Searching() && c.Snapshot().Step != prev {
			frames++
		}
	}
	return frames
}

func TestController_EditAndRun(t *testing.T) {
	c := newController(t, 5, 100, 0)
	assert.Equal(t, 100, c.Width())

	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 4, 4))
	c.Primary(click(c, 2, 2))
	snap := c.Snapshot()
	assert.Equal(t, grid.Start, snap.At(grid.Point{Row: 0, Col: 0}))
	assert.Equal(t, grid.End, snap.At(grid.Point{Row: 4, Col: 4}))
	assert.Equal(t, grid.Barrier, snap.At(grid.Point{Row: 2, Col: 2}))

	require.True(t, c.Run(context.Background()))
	assert.True(t, c.Searching())
	assert.False(t, c.Run(context.Background()), "second run while searching")

	frames := drain(t, c)
	assert.Positive(t, frames)

	res, ok := c.LastResult()
	require.True(t, ok)
	assert.Equal(t, astar.Found, res.Outcome)
	assert.Equal(t, 8.0, res.Cost)
	assert.Len(t, c.Snapshot().Points(grid.Path), 7)
}

func TestController_RunNeedsEndpoints(t *testing.T) {
	c := newController(t, 5, 100, 0)
	assert.False(t, c.Run(context.Background()))

	c.Primary(click(c, 1, 1))
	assert.False(t, c.Run(context.Background()))
	assert.False(t, c.Searching())
}

func TestController_SecondaryForgetsEndpoint(t *testing.T) {
	c := newController(t, 5, 100, 0)
	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 4, 4))
	c.Secondary(click(c, 0, 0))

	assert.Equal(t, grid.Empty, c.Snapshot().At(grid.Point{Row: 0, Col: 0}))
	assert.False(t, c.Run(context.Background()))

	// the next left click places a new start
	c.Primary(click(c, 3, 0))
	assert.Equal(t, grid.Start, c.Snapshot().At(grid.Point{Row: 3, Col: 0}))
	assert.True(t, c.Run(context.Background()))
	drain(t, c)
}

func TestController_EditsIgnoredWhileSearching(t *testing.T) {
	c := newController(t, 20, 200, 50*time.Millisecond)
	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 19, 19))
	require.True(t, c.Run(context.Background()))

	c.Primary(click(c, 10, 10))
	c.Secondary(click(c, 0, 0))

	c.Stop()
	assert.False(t, c.Searching())
	snap := c.Snapshot()
	assert.NotEqual(t, grid.Barrier, snap.At(grid.Point{Row: 10, Col: 10}))
	assert.Equal(t, grid.Start, snap.At(grid.Point{Row: 0, Col: 0}))
}

func TestController_StopCancels(t *testing.T) {
	c := newController(t, 30, 300, 20*time.Millisecond)
	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 29, 29))
	require.True(t, c.Run(context.Background()))

	// let at least one step through
	for c.Snapshot().Step == 0 {
		c.Poll()
	}
	c.Stop()

	res, ok := c.LastResult()
	require.True(t, ok)
	assert.Equal(t, astar.Cancelled, res.Outcome)
	assert.Empty(t, res.Path)
	assert.Empty(t, c.Snapshot().Points(grid.Path))
}

func TestController_ClearDuringSearch(t *testing.T) {
	c := newController(t, 30, 300, 20*time.Millisecond)
	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 29, 29))
	require.True(t, c.Run(context.Background()))

	c.Clear()
	assert.False(t, c.Searching())
	_, ok := c.LastResult()
	assert.False(t, ok)

	snap := c.Snapshot()
	assert.Len(t, snap.Points(grid.Empty), 30*30)
	assert.False(t, c.Run(context.Background()), "endpoints are forgotten")
}

func TestController_ParentContextCancels(t *testing.T) {
	c := newController(t, 30, 300, 20*time.Millisecond)
	c.Primary(click(c, 0, 0))
	c.Primary(click(c, 29, 29))

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, c.Run(ctx))
	cancel()
	drain(t, c)

	res, ok := c.LastResult()
	require.True(t, ok)
	assert.Equal(t, astar.Cancelled, res.Outcome)
}

func TestController_ClickOutsideGrid(t *testing.T) {
	c := newController(t, 5, 100, 0)
	c.Primary(-5, 10)
	c.Primary(1000, 1000)
	assert.Len(t, c.Snapshot().Points(grid.Empty), 25)
}
