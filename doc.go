// Package gridastar finds shortest 4-directional paths on bounded grids with
// obstacle cells using best-first (A*-style) search.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one frontier removal at a time to drive
//     tracing or debugging tools.
//
// SearchAll runs independent searches over many grids on a bounded worker
// pool. A single search is always single-threaded.
//
// Coordinates are 1-indexed: a cell (x, y) is inside a grid of size
// width×height iff 1 <= x <= width and 1 <= y <= height.
//
// The default heuristic is SourceManhattan, which adds the y coordinates
// instead of subtracting them. It is kept for parity with existing results and
// is not admissible, so the returned path is not guaranteed to be the
// shortest one. Pass WithHeuristic(Manhattan) for the textbook behavior.
package gridastar
