package astar

import "github.com/mtxik/AStarGrid/internal/grid"

// entry is a frontier element. Cells have no natural order, so the key is
// (f, seq): lower cost first, earlier insertion on ties.
type entry struct {
	cell  *grid.Cell
	f     float64
	seq   uint64
	index int // position in the heap, maintained by Swap
}

// frontier implements heap.Interface over entries.
type frontier []*entry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
