package astar

import (
	"errors"
	"fmt"
	"time"

	"github.com/mtxik/AStarGrid/internal/grid"
)

var (
	// ErrInvalidArgument is returned when Search preconditions do not hold:
	// missing grid or endpoints, start == end, or endpoints from another grid.
	ErrInvalidArgument = errors.New("invalid search argument")

	// ErrUnknownHeuristic is returned by HeuristicByName.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
)

// Outcome is the terminal state of a search. None of them is an error.
type Outcome int

const (
	// NotFound means the frontier was exhausted without reaching the end.
	NotFound Outcome = iota

	// Found means the end was reached and the path was marked.
	Found

	// Cancelled means the context was done at a loop check.
	Cancelled
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats describes the work done by one search.
type Stats struct {
	Expanded       int           // cells popped from the frontier
	Steps          int           // onStep invocations
	Elapsed        time.Duration // wall time of the search loop
	PercentVisited int           // Expanded as a share of all cells
}

// Result is returned by Search.
type Result struct {
	Outcome Outcome

	// Path runs from the cell after start up to and including end.
	// Nil unless Outcome is Found.
	Path []grid.Point

	// Cost is the path length in edges. Zero unless Outcome is Found.
	Cost float64

	// CameFrom maps each reached cell to its predecessor.
	CameFrom map[grid.Point]grid.Point

	Stats Stats
}

// EventKind tells what an Event reports.
type EventKind int

const (
	// Expanded is emitted when a cell is popped from the frontier.
	Expanded EventKind = iota

	// Relaxed is emitted when a strictly cheaper cost is written for a neighbor.
	Relaxed
)

// Event is delivered to the trace hook set with WithTrace.
type Event struct {
	Kind  EventKind
	Cell  grid.Point
	From  grid.Point // predecessor, for Relaxed
	G     float64
	PrevG float64 // cost before the update, +Inf if unset; Relaxed only
	F     float64
	Seq   uint64 // frontier insertion sequence
}

// Options tunes a search.
type Options struct {
	Heuristic Heuristic
	Trace     func(Event)
}

// Option modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithTrace installs a hook called for every expansion and relaxation.
func WithTrace(fn func(Event)) Option {
	return func(o *Options) { o.Trace = fn }
}
