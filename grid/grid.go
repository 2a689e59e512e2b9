// Package grid provides an immutable square occupancy grid backed by a flat
// row-major byte buffer, the snapshot all pathfinding in this module runs on.
package grid

import (
	"fmt"
)

// Grid is an immutable square occupancy grid. It owns a private copy of the
// cell buffer taken at construction, so later mutation of the caller's buffer
// cannot affect it.
type Grid struct {
	size  int
	cells []byte
}

// New constructs a Grid from a flat row-major cell buffer and its side length.
// The buffer is deep-copied to ensure immutability.
// Returns ErrZeroSize if size < 1,
// ErrCellCount if len(cells) != size*size.
// Algorithmic complexity: O(size²) time and memory.
func New(cells []byte, size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrZeroSize
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("%w: got %d cells for size %d", ErrCellCount, len(cells), size)
	}
	// Deep copy to prevent external mutation
	snap := make([]byte, len(cells))
	copy(snap, cells)

	return &Grid{size: size, cells: snap}, nil
}

// Size returns the side length n.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// Len returns the total cell count n*n.
// Complexity: O(1).
func (g *Grid) Len() int {
	return g.size * g.size
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// At returns the state of cell (r,c). The coordinate must be in bounds;
// use InBounds or Free when it may not be.
func (g *Grid) At(r, c int) State {
	return State(g.cells[g.Index(r, c)])
}

// Free reports whether (r,c) is in bounds and traversable.
// Complexity: O(1).
func (g *Grid) Free(r, c int) bool {
	return g.InBounds(r, c) && State(g.cells[r*g.size+c]).Free()
}

// Index maps (r,c) to a row-major index: r*size + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.size + c
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.size, Col: idx % g.size}
}

// Start returns the fixed source corner (0,0).
func (g *Grid) Start() Coord {
	return Coord{}
}

// Goal returns the fixed destination corner (size-1, size-1).
func (g *Grid) Goal() Coord {
	return Coord{Row: g.size - 1, Col: g.size - 1}
}
