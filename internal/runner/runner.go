// Package runner is the invocation boundary between front ends (CLI, editor
// window, web viewer) and the search engine. It prepares the grid, runs the
// search and reports it through logs, metrics and a trace span.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
	"github.com/mtxik/AStarGrid/internal/metrics"
)

// ErrNotReady is returned when start or end has not been placed.
var ErrNotReady = errors.New("start and end must both be placed")

// Runner runs searches with a fixed heuristic.
type Runner struct {
	logger    *slog.Logger
	metrics   *metrics.Search
	tracer    trace.Tracer
	heuristic astar.Heuristic
	name      string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every run on m.
func WithMetrics(m *metrics.Search) Option {
	return func(r *Runner) { r.metrics = m }
}

// New builds a runner for the named heuristic (see astar.HeuristicNames).
func New(heuristic string, opts ...Option) (*Runner, error) {
	h, err := astar.HeuristicByName(heuristic)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		logger:    slog.Default(),
		tracer:    otel.Tracer("astargrid.runner"),
		heuristic: h,
		name:      heuristic,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Heuristic returns the configured heuristic name.
func (r *Runner) Heuristic() string { return r.name }

// Run clears the marks of any previous search, recomputes neighbor lists and
// searches from start to end. onStep is passed through to the engine.
func (r *Runner) Run(ctx context.Context, g *grid.Grid, start, end *grid.Cell, onStep func()) (astar.Result, error) {
	if start == nil || end == nil {
		r.metrics.Rejected()
		return astar.Result{}, ErrNotReady
	}

	ctx, span := r.tracer.Start(ctx, "runner.Run",
		trace.WithAttributes(
			attribute.String("heuristic", r.name),
			attribute.Int("rows", gridRows(g)),
			attribute.String("start", start.Pos().String()),
			attribute.String("end", end.Pos().String()),
		),
	)
	defer span.End()

	if g != nil {
		g.ResetSearch()
		g.ComputeNeighbors()
	}

	r.logger.Debug("search starting",
		"heuristic", r.name, "start", start.Pos().String(), "end", end.Pos().String())

	res, err := astar.Search(ctx, g, start, end, onStep, astar.WithHeuristic(r.heuristic))
	if err != nil {
		r.metrics.Rejected()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid search")
		return res, fmt.Errorf("search: %w", err)
	}

	r.metrics.Observe(r.name, res)
	span.SetAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("expanded", res.Stats.Expanded),
		attribute.Int("path_length", len(res.Path)),
	)
	span.SetStatus(codes.Ok, res.Outcome.String())

	r.logger.Info("search finished",
		"heuristic", r.name,
		"outcome", res.Outcome.String(),
		"expanded", res.Stats.Expanded,
		"path_length", len(res.Path),
		"duration", res.Stats.Elapsed,
	)
	return res, nil
}

// RunEditor runs a search between the editor's start and end cells.
func (r *Runner) RunEditor(ctx context.Context, e *grid.Editor, onStep func()) (astar.Result, error) {
	if !e.Ready() {
		r.metrics.Rejected()
		return astar.Result{}, ErrNotReady
	}
	return r.Run(ctx, e.Grid(), e.Start(), e.End(), onStep)
}

func gridRows(g *grid.Grid) int {
	if g == nil {
		return 0
	}
	return g.Rows
}
