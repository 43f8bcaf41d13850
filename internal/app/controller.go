// Package app holds the interactive editing session behind the window: mouse
// edits, starting and cancelling searches, and the frame the window should
// show. It has no windowing dependency so it can be driven headlessly.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
	"github.com/mtxik/AStarGrid/internal/runner"
)

type finished struct {
	res astar.Result
	err error
}

// Controller is driven once per window tick. While a search runs, the engine
// goroutine owns the grid and publishes snapshots; the controller only
// touches the grid when no search is in flight.
type Controller struct {
	editor *grid.Editor
	runner *runner.Runner
	logger *slog.Logger
	delay  time.Duration

	frames  chan grid.Snapshot
	results chan finished
	cancel  context.CancelFunc

	searching bool
	view      grid.Snapshot
	last      *astar.Result
}

// NewController builds a session over an empty rows x rows grid. delay is an
// extra pause after each published step.
func NewController(rows, width int, r *runner.Runner, delay time.Duration, logger *slog.Logger) (*Controller, error) {
	e, err := grid.NewEditor(rows, width)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{editor: e, runner: r, logger: logger, delay: delay}, nil
}

// Width returns the window size in pixels.
func (c *Controller) Width() int { return c.editor.Grid().Width }

// Searching reports whether a search is in flight.
func (c *Controller) Searching() bool { return c.searching }

// LastResult returns the result of the most recent finished search.
func (c *Controller) LastResult() (astar.Result, bool) {
	if c.last == nil {
		return astar.Result{}, false
	}
	return *c.last, true
}

// Primary handles a left click at window pixel (x, y).
func (c *Controller) Primary(x, y int) {
	if c.searching {
		return
	}
	if row, col, ok := c.editor.PixelToCell(x, y); ok {
		_ = c.editor.Primary(row, col)
	}
}

// Secondary handles a right click at window pixel (x, y).
func (c *Controller) Secondary(x, y int) {
	if c.searching {
		return
	}
	if row, col, ok := c.editor.PixelToCell(x, y); ok {
		_ = c.editor.Secondary(row, col)
	}
}

// Run starts a search when start and end are placed and none is running.
func (c *Controller) Run(ctx context.Context) bool {
	if c.searching || !c.editor.Ready() {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.frames = make(chan grid.Snapshot)
	c.results = make(chan finished, 1)
	c.view = c.editor.Grid().Snapshot()
	c.searching = true

	go c.search(ctx, c.editor, c.frames, c.results)
	return true
}

func (c *Controller) search(ctx context.Context, e *grid.Editor, frames chan<- grid.Snapshot, results chan<- finished) {
	g := e.Grid()
	step := 0
	onStep := func() {
		step++
		snap := g.Snapshot()
		snap.Step = step
		// one step per received frame
		select {
		case frames <- snap:
		case <-ctx.Done():
			return
		}
		if c.delay > 0 {
			t := time.NewTimer(c.delay)
			defer t.Stop()
			select {
			case <-t.C:
			case <-ctx.Done():
			}
		}
	}
	res, err := c.runner.RunEditor(ctx, e, onStep)
	results <- finished{res: res, err: err}
}

// Poll takes at most one pending frame and collects the result of a finished
// search. Call it once per tick.
func (c *Controller) Poll() {
	if !c.searching {
		return
	}
	select {
	case snap := <-c.frames:
		c.view = snap
	case f := <-c.results:
		c.finish(f)
	default:
	}
}

func (c *Controller) finish(f finished) {
	c.searching = false
	c.cancel()
	c.cancel = nil
	if f.err != nil {
		c.logger.Warn("search failed", "error", f.err)
		return
	}
	c.last = &f.res
	c.logger.Info("search done",
		"outcome", f.res.Outcome.String(), "expanded", f.res.Stats.Expanded, "path_length", len(f.res.Path))
}

// Stop cancels a running search and waits for the engine to return.
func (c *Controller) Stop() {
	if !c.searching {
		return
	}
	c.cancel()
	for c.searching {
		select {
		case <-c.frames:
		case f := <-c.results:
			c.finish(f)
		}
	}
}

// Clear stops any search and replaces the grid with an empty one.
func (c *Controller) Clear() {
	c.Stop()
	c.editor.Clear()
	c.last = nil
}

// Snapshot returns what the window should draw: the latest published step
// while searching, the live grid otherwise.
func (c *Controller) Snapshot() grid.Snapshot {
	if c.searching {
		return c.view
	}
	return c.editor.Grid().Snapshot()
}

// CellSize returns the pixel size of one cell.
func (c *Controller) CellSize() int { return c.editor.Grid().CellSize }
