// Package pathfinder provides a production-grade breadth-first search from
// the top-left corner (0,0) to the bottom-right corner (size-1,size-1) of a
// square occupancy grid.
//
// What
//
//   - New validates a flat row-major cell buffer (0 = blocked, non-zero =
//     free), snapshots it, and runs BFS eagerly - the PathFinder it returns
//     is immutable and only answers queries.
//   - HasPath reports whether the goal corner is reachable.
//   - Path returns the shortest path flattened as [r0, c0, r1, c1, ...];
//     Cells returns the same path as structured coordinates.
//   - Supports observation hooks at two stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (when a cell leaves the frontier)
//
// Why
//
//   - BFS expands cells in non-decreasing hop distance, so the first time
//     the goal is dequeued its path is shortest on the unit-cost 4-neighbor
//     graph.
//   - One eager run per instance keeps every query a pure O(1)-per-element
//     read with no hidden recomputation.
//
// Determinism
//
//	Neighbors are expanded in the fixed order +row, +col, -row, -col, so
//	ties among equal-length paths break identically on every run.
//
// Absence of a path is not an error: HasPath reports false and Path returns
// an empty slice. This includes grids whose start or goal corner is blocked.
// A 1×1 grid with a free cell yields the one-cell path [(0,0)].
//
// Complexity (n = side length)
//
//   - Time:   O(n²)  (each cell enqueued and expanded at most once)
//   - Memory: O(n²)  (frontier queue, distance and parent arenas)
//
// Usage
//
//	pf, err := pathfinder.New(cells, size)
//	if err != nil {
//	    // handle grid.ErrZeroSize, grid.ErrCellCount, or ErrOptionViolation
//	}
//	if pf.HasPath() {
//	    flat := pf.Path() // [r0, c0, r1, c1, ...]
//	}
//
// Options
//
//   - DefaultOptions(): no-op hooks, frontier sized to the full cell count.
//   - WithOnEnqueue(fn):    hook when a cell is discovered.
//   - WithOnDequeue(fn):    hook when a cell is expanded.
//   - WithQueueCapacity(c): preallocate the frontier for c cells (c > 0).
//
// Errors
//
//   - grid.ErrZeroSize     if the side length is less than one.
//   - grid.ErrCellCount    if the buffer length differs from size*size.
//   - ErrNilGrid           if FromGrid receives a nil grid.
//   - ErrOptionViolation   if an invalid Option is supplied.
package pathfinder
