// Package grid models a fixed-size 2D occupancy map of Free and Blocked
// cells, the search space consumed by astar, bfs and route.
//
// What:
//
//   - Cell is a (Row, Col) value type; two cells are equal iff both coordinates match.
//   - Grid is a rectangular Height×Width table of Tags, deep-copied at construction
//     and never mutated afterwards.
//   - Bounds and walkability queries, 4-directional neighbor expansion,
//     connected components of walkable cells, and a "./#" text form.
//
// Why:
//
//   - Search engines borrow a Grid read-only; immutability makes concurrent
//     searches over one Grid safe without locks.
//
// Complexity:
//
//   - InBounds, IsWalkable, Manhattan: O(1).
//   - Neighbors:                       O(1) (at most 4 cells).
//   - Components, ComponentIDs:        O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadRune: Parse met a rune other than '.' or '#'.
//   - ErrOutOfBounds: a queried cell lies outside the grid.
package grid
