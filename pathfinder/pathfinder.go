// Package pathfinder provides breadth-first search from the top-left to the
// bottom-right corner of a square occupancy grid, returning a shortest path
// by hop count when one exists.
//
// The search runs eagerly at construction; the resulting PathFinder only
// answers read-only queries.
package pathfinder

import (
	"github.com/katalvlaran/gridpath/grid"
)

// neighborOffsets is the fixed expansion order: +row, +col, -row, -col.
// Keeping it fixed makes tie-breaking among equal-length paths reproducible.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// walker encapsulates mutable search state for a single run.
type walker struct {
	g      *grid.Grid
	opts   Options
	queue  []int // row-major cell indices, discovered order
	head   int   // index of the next cell to expand
	dist   []int32
	parent []int32
}

// New validates and snapshots the flat cell buffer (see grid.New), runs BFS
// immediately, and returns a PathFinder holding the resulting path.
// Returns grid.ErrZeroSize or grid.ErrCellCount for invalid input,
// ErrOptionViolation for bad options.
func New(cells []byte, size int, opts ...Option) (*PathFinder, error) {
	g, err := grid.New(cells, size)
	if err != nil {
		return nil, err
	}

	return FromGrid(g, opts...)
}

// FromGrid runs BFS on an existing grid snapshot, applying any number of
// functional Options. Returns ErrNilGrid for a nil grid,
// ErrOptionViolation for bad options.
func FromGrid(g *grid.Grid, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	total := g.Len()
	qcap := o.QueueCapacity
	if qcap == 0 {
		qcap = total
	}
	w := &walker{
		g:      g,
		opts:   o,
		queue:  make([]int, 0, qcap),
		dist:   make([]int32, total),
		parent: make([]int32, total),
	}
	for i := 0; i < total; i++ {
		w.dist[i] = -1
		w.parent[i] = -1
	}

	return &PathFinder{g: g, path: w.search()}, nil
}

// search runs BFS from the start corner and returns the shortest path to the
// goal corner, or nil when none exists.
func (w *walker) search() []grid.Coord {
	n := w.g.Size()
	// Fast rejection: a blocked corner can never carry a path.
	if !w.g.At(0, 0).Free() || !w.g.At(n-1, n-1).Free() {
		return nil
	}

	goal := w.g.Index(n-1, n-1)
	w.enqueue(0, 0)
	for w.head < len(w.queue) {
		u := w.dequeue()
		// The first dequeue of the goal is at minimum hop count: stop here.
		// This also covers the 1×1 grid, where start and goal coincide.
		if u == goal {
			return w.reconstruct(u)
		}
		w.expand(u)
	}

	return nil
}

// enqueue marks idx discovered at depth d, calls OnEnqueue, and appends it
// to the frontier. Marking happens on discovery, not on dequeue, so a cell
// can never be enqueued twice.
func (w *walker) enqueue(idx int, d int32) {
	w.dist[idx] = d
	w.opts.OnEnqueue(w.g.Coordinate(idx), int(d))
	w.queue = append(w.queue, idx)
}

// dequeue pops the next frontier cell, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	u := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(w.g.Coordinate(u), int(w.dist[u]))

	return u
}

// expand examines the 4-neighborhood of u in fixed order, recording u as the
// discoverer of each free, unvisited, in-bounds neighbor.
func (w *walker) expand(u int) {
	c := w.g.Coordinate(u)
	d := w.dist[u] + 1
	for _, off := range neighborOffsets {
		nr, nc := c.Row+off[0], c.Col+off[1]
		if !w.g.Free(nr, nc) {
			continue
		}
		v := w.g.Index(nr, nc)
		if w.dist[v] >= 0 {
			continue
		}
		w.parent[v] = int32(u)
		w.enqueue(v, d)
	}
}

// reconstruct backtracks the parent arena from the goal to the start (the
// only discovered cell without a parent) and reverses in place so the path
// runs start → goal.
func (w *walker) reconstruct(goal int) []grid.Coord {
	path := make([]grid.Coord, 0, int(w.dist[goal])+1)
	for at := int32(goal); at >= 0; at = w.parent[at] {
		path = append(path, w.g.Coordinate(int(at)))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
