// Package bfs runs breadth-first search over the walkable cells of a
// grid.Grid, returning unit-cost shortest distances, parent links, and
// visit order.
//
// BFS explores cells in increasing distance from a start cell with
// 4-directional moves, so Depth[c] is the exact shortest edge count from
// start to c. It is exhaustive and heuristic-free, which makes it the
// reference against which astar results are checked.
//
// Complexity: O(W×H) time and memory.
package bfs
