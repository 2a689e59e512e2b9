package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects zero sizes and mismatched buffers.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells []byte
		size  int
		err   error
	}{
		{"ZeroSize", nil, 0, grid.ErrZeroSize},
		{"NegativeSize", nil, -3, grid.ErrZeroSize},
		{"ShortBuffer", []byte{1, 1, 1}, 2, grid.ErrCellCount},
		{"LongBuffer", []byte{1, 1, 1, 1, 1}, 2, grid.ErrCellCount},
		{"EmptyBufferNonZeroSize", []byte{}, 1, grid.ErrCellCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells, tc.size)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v, %d) error = %v; want %v", tc.cells, tc.size, err, tc.err)
			}
		})
	}
}

// TestNew_SnapshotIsolation ensures the grid owns a copy of the input buffer.
func TestNew_SnapshotIsolation(t *testing.T) {
	cells := []byte{1, 0, 1, 1}
	g, err := grid.New(cells, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	cells[1] = 1 // mutate caller's buffer after construction
	if got := g.At(0, 1); got != grid.Blocked {
		t.Errorf("At(0,1) = %v after caller mutation; want Blocked", got)
	}
}

// TestInBounds checks boundary probes on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(make([]byte, 9), 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 2}, {1, 2}, {2, 0}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Index/Coordinate and Accessor Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinateRoundTrip checks the row-major conversion both ways.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New(make([]byte, 16), 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			idx := g.Index(r, c)
			if want := r*4 + c; idx != want {
				t.Errorf("Index(%d,%d) = %d; want %d", r, c, idx, want)
			}
			if got := g.Coordinate(idx); got != (grid.Coord{Row: r, Col: c}) {
				t.Errorf("Coordinate(%d) = %v; want (%d,%d)", idx, got, r, c)
			}
		}
	}
}

// TestAtAndFree verifies state reads, including the non-zero-is-free rule.
func TestAtAndFree(t *testing.T) {
	g, err := grid.New([]byte{1, 0, 7, 1}, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !g.At(0, 0).Free() {
		t.Error("At(0,0).Free() = false; want true")
	}
	if g.At(0, 1).Free() {
		t.Error("At(0,1).Free() = true; want false")
	}
	if !g.Free(1, 0) {
		t.Error("Free(1,0) = false; want true (non-zero value)")
	}
	if g.Free(2, 0) {
		t.Error("Free(2,0) = true; want false (out of bounds)")
	}
}

// TestCorners pins the fixed start and goal corners.
func TestCorners(t *testing.T) {
	g, err := grid.New(make([]byte, 25), 5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.Start(); got != (grid.Coord{}) {
		t.Errorf("Start() = %v; want (0,0)", got)
	}
	if got := g.Goal(); got != (grid.Coord{Row: 4, Col: 4}) {
		t.Errorf("Goal() = %v; want (4,4)", got)
	}
	if g.Size() != 5 || g.Len() != 25 {
		t.Errorf("Size/Len = %d/%d; want 5/25", g.Size(), g.Len())
	}
}
