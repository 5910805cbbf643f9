// Package astar finds a minimum-length 4-directional path between two cells
// of a grid.Grid using the A* algorithm with the Manhattan heuristic.
//
// Overview:
//
//   - Edges have unit cost and connect orthogonally adjacent Free cells.
//   - The Manhattan distance is admissible and consistent on such grids, so the
//     first time the goal is popped from the frontier its path is optimal.
//   - The frontier is a binary min-heap with lazy decrease-key: a re-relaxed
//     cell is pushed again and stale entries are skipped when popped.
//   - Score tables are sparse maps (absent = infinite), so memory is
//     proportional to the explored area rather than the grid size.
//
// Tie-break:
//
//	Among frontier entries with equal f = g + h, the entry with the smaller h
//	(closer to the goal) is expanded first; remaining ties prefer the lower
//	row, then the lower column. The rule is deterministic, so repeated calls
//	on the same input return the same path.
//
// Outcomes:
//
//   - Result.Found == true:  Result.Path runs from start to goal inclusive.
//     When start == goal the path is the single cell [start].
//   - Result.Found == false: no path exists. This is a normal outcome, not an error.
//   - ErrInvalidEndpoint:   start or goal is out of bounds or blocked (caller error).
//   - ErrCancelled:         the context supplied via WithContext was done.
//   - ErrBudgetExceeded:    WithMaxExpansions limit was reached before a verdict.
//
// Complexity:
//
//   - Time:  O(E log V) over the V reachable free cells and E ≤ 4V edges.
//   - Space: O(V) for score/parent maps, O(E) worst-case heap entries.
//
// Thread safety:
//
//	FindPath keeps all search state local to the call and only reads the
//	grid, so any number of calls may run concurrently on the same Grid.
package astar
