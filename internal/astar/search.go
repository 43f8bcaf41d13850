package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mtxik/AStarGrid/internal/grid"
)

// edgeCost is the weight of every move between adjacent cells.
const edgeCost = 1.0

// state is the bookkeeping of one invocation. Only the engine writes it.
type state struct {
	gScore   map[*grid.Cell]float64
	fScore   map[*grid.Cell]float64
	cameFrom map[*grid.Cell]*grid.Cell
	open     frontier
	members  map[*grid.Cell]*entry // in lockstep with open
	seq      uint64
}

func (s *state) g(c *grid.Cell) float64 {
	if v, ok := s.gScore[c]; ok {
		return v
	}
	return math.Inf(1)
}

// push adds c to the frontier with the next insertion sequence number.
func (s *state) push(c *grid.Cell, f float64) *entry {
	e := &entry{cell: c, f: f, seq: s.seq}
	s.seq++
	heap.Push(&s.open, e)
	s.members[c] = e
	return e
}

// Search finds a shortest path from start to end. The neighbor lists of g
// must be current (see grid.Grid.ComputeNeighbors). onStep, if not nil, is
// called once per iteration after the popped cell's neighbors are relaxed;
// it must not modify the grid.
func Search(ctx context.Context, g *grid.Grid, start, end *grid.Cell, onStep func(), opts ...Option) (Result, error) {
	if err := validate(ctx, g, start, end); err != nil {
		return Result{}, err
	}

	options := Options{Heuristic: Manhattan}
	for _, opt := range opts {
		opt(&options)
	}
	if onStep == nil {
		onStep = func() {}
	}
	h := options.Heuristic
	goal := end.Pos()
	trace := options.Trace

	began := time.Now()
	s := &state{
		gScore:   map[*grid.Cell]float64{start: 0},
		fScore:   map[*grid.Cell]float64{start: h(start.Pos(), goal)},
		cameFrom: make(map[*grid.Cell]*grid.Cell),
		members:  make(map[*grid.Cell]*entry),
	}
	heap.Init(&s.open)
	s.push(start, s.fScore[start])

	var stats Stats
	finish := func(outcome Outcome) Result {
		stats.Elapsed = time.Since(began)
		if total := g.Rows * g.Rows; total > 0 {
			stats.PercentVisited = int(float64(stats.Expanded) / float64(total) * 100)
		}
		return Result{Outcome: outcome, CameFrom: pointMap(s.cameFrom), Stats: stats}
	}

	for {
		if ctx.Err() != nil {
			return finish(Cancelled), nil
		}
		if s.open.Len() == 0 {
			return finish(NotFound), nil
		}

		top := heap.Pop(&s.open).(*entry)
		current := top.cell
		delete(s.members, current)
		stats.Expanded++
		if trace != nil {
			trace(Event{Kind: Expanded, Cell: current.Pos(), G: s.g(current), F: top.f, Seq: top.seq})
		}

		if current == end {
			cells := Reconstruct(s.cameFrom, end)
			end.State = grid.End

			res := finish(Found)
			res.Cost = s.g(end)
			res.Path = make([]grid.Point, len(cells))
			for i, c := range cells {
				res.Path[i] = c.Pos()
			}
			return res, nil
		}

		tentative := s.g(current) + edgeCost
		for _, n := range current.Neighbors {
			prev := s.g(n)
			if tentative >= prev {
				continue
			}
			s.cameFrom[n] = current
			s.gScore[n] = tentative
			f := tentative + h(n.Pos(), goal)
			s.fScore[n] = f

			e, inOpen := s.members[n]
			if !inOpen {
				e = s.push(n, f)
				n.State = grid.Open
			} else {
				// keep the original sequence so ties still resolve by first insertion
				e.f = f
				heap.Fix(&s.open, e.index)
			}
			if trace != nil {
				trace(Event{Kind: Relaxed, Cell: n.Pos(), From: current.Pos(), G: tentative, PrevG: prev, F: f, Seq: e.seq})
			}
		}

		onStep()
		stats.Steps++

		if current != start {
			current.State = grid.Closed
		}
	}
}

func validate(ctx context.Context, g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case ctx == nil:
		return fmt.Errorf("%w: nil context", ErrInvalidArgument)
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidArgument)
	case start == nil || end == nil:
		return fmt.Errorf("%w: start and end must both be set", ErrInvalidArgument)
	case start == end:
		return fmt.Errorf("%w: start and end are the same cell %s", ErrInvalidArgument, start.Pos())
	case !g.Contains(start):
		return fmt.Errorf("%w: start %s is not a cell of the grid", ErrInvalidArgument, start.Pos())
	case !g.Contains(end):
		return fmt.Errorf("%w: end %s is not a cell of the grid", ErrInvalidArgument, end.Pos())
	}
	return nil
}

func pointMap(m map[*grid.Cell]*grid.Cell) map[grid.Point]grid.Point {
	out := make(map[grid.Point]grid.Point, len(m))
	for k, v := range m {
		out[k.Pos()] = v.Pos()
	}
	return out
}
