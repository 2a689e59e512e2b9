// Package gridpath finds shortest corner-to-corner routes on square binary
// grids — a small, allocation-conscious BFS core meant to sit behind a host
// binding that supplies grids as flat byte buffers.
//
// 🚀 What is gridpath?
//
//	A focused library built from two pieces:
//		• grid:       immutable square occupancy grid over a flat row-major buffer
//		• pathfinder: eager BFS from (0,0) to (n-1,n-1) with read-only path queries
//
// ✨ Why choose gridpath?
//
//   - Minimal API – construct once, query HasPath/Path forever
//   - Deterministic – fixed neighbor order, reproducible tie-breaking
//   - Pure Go – no cgo, no hidden deps
//   - Host-friendly – flat []byte in, flat []int out, no per-cell marshaling
//
// Quick ASCII example:
//
//	1 1 0
//	0 1 1     →  (0,0) (0,1) (1,1) (2,1) (2,2)
//	0 1 1
//
// Dive into the pathfinder package docs for the full contract, options,
// and complexity notes.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
