// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrZeroSize indicates the requested side length is less than one.
	ErrZeroSize = errors.New("grid: size must be at least one")
	// ErrCellCount indicates the flat cell buffer does not hold size*size cells.
	ErrCellCount = errors.New("grid: cell count must equal size*size")
)

// State is the occupancy of a single cell, byte-backed so a host-provided
// flat buffer is usable as-is: 0 is blocked, any non-zero value is free.
type State byte

const (
	// Blocked marks a cell that cannot be entered.
	Blocked State = 0
	// Free marks a traversable cell.
	Free State = 1
)

// Free reports whether the state permits traversal.
func (s State) Free() bool {
	return s != Blocked
}

// Coord is a row-major cell coordinate: Row and Col both lie in [0, size).
type Coord struct {
	Row, Col int
}
