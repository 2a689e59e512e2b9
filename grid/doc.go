// Package grid wraps a flat row-major byte buffer as an immutable square
// occupancy grid, the input surface for pathfinding.
//
// What:
//
//   - Grid owns a private snapshot of a size×size cell buffer (0 = blocked,
//     non-zero = free).
//   - Validates the buffer once at construction; all later reads are O(1)
//     and never out of bounds when guarded by InBounds/Free.
//   - Converts between (row,col) coordinates and row-major indices, the
//     arena convention used by the pathfinder package.
//
// Why:
//
//   - A host binding can hand over a contiguous numeric buffer with no
//     per-cell marshaling; the deep copy makes later host-side mutation of
//     that buffer harmless.
//   - Fixing the start at (0,0) and the goal at (size-1,size-1) keeps the
//     corner-to-corner contract in one place.
//
// Complexity:
//
//   - New: O(size²) time and memory (validation + snapshot copy).
//   - All accessors: O(1).
//
// Errors:
//
//   - ErrZeroSize: requested side length is less than one.
//   - ErrCellCount: buffer length differs from size*size.
package grid
