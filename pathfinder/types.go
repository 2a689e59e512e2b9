// Package pathfinder defines tunable options, sentinel errors, and the
// PathFinder result type for corner-to-corner BFS over a grid.Grid.
package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for PathFinder construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to FromGrid.
	ErrNilGrid = errors.New("pathfinder: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative queue capacity), it is recorded
// internally and surfaced as ErrOptionViolation at construction.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its hop distance from the start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnDequeue is called when a cell leaves the frontier for expansion.
	OnDequeue func(c grid.Coord, depth int)

	// QueueCapacity preallocates the frontier's backing array.
	// A value of 0 defaults to the grid's full cell count.
	QueueCapacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - no-op hooks (OnEnqueue, OnDequeue)
//   - QueueCapacity 0 (defaulted to the cell count at construction)
func DefaultOptions() Options {
	return Options{
		OnEnqueue:     func(grid.Coord, int) {},
		OnDequeue:     func(grid.Coord, int) {},
		QueueCapacity: 0,
		err:           nil,
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is expanded.
func WithOnDequeue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithQueueCapacity preallocates the frontier queue.
//
//	c > 0: reserve capacity for c cells
//	c == 0: explicit default (full cell count)
//	c < 0: invalid option → ErrOptionViolation
func WithQueueCapacity(c int) Option {
	return func(o *Options) {
		switch {
		case c < 0:
			o.err = fmt.Errorf("%w: QueueCapacity cannot be negative (%d)", ErrOptionViolation, c)
		default:
			o.QueueCapacity = c
		}
	}
}

// PathFinder holds the outcome of one corner-to-corner search:
// the grid snapshot it ran on and the shortest path found, possibly empty.
// It is immutable after construction; all queries are pure reads and safe
// for concurrent callers.
type PathFinder struct {
	g    *grid.Grid
	path []grid.Coord
}

// HasPath reports whether a path from (0,0) to (size-1,size-1) exists.
func (p *PathFinder) HasPath() bool {
	return len(p.path) > 0
}

// Path returns the stored path as a flat sequence
// [r0, c0, r1, c1, ..., rk, ck] in start-to-destination order,
// or an empty slice when no path exists. The slice is freshly
// allocated on every call, so callers may mutate it freely.
func (p *PathFinder) Path() []int {
	flat := make([]int, 0, 2*len(p.path))
	for _, c := range p.path {
		flat = append(flat, c.Row, c.Col)
	}

	return flat
}

// Cells returns a copy of the stored path as structured coordinates,
// or an empty slice when no path exists.
func (p *PathFinder) Cells() []grid.Coord {
	cells := make([]grid.Coord, len(p.path))
	copy(cells, p.path)

	return cells
}

// Len returns the number of cells on the stored path, 0 when none.
func (p *PathFinder) Len() int {
	return len(p.path)
}

// Grid returns the immutable snapshot the search ran on.
func (p *PathFinder) Grid() *grid.Grid {
	return p.g
}
