// Package route composes single A* searches into multi-stop routes, such as
// a courier going start → package → destination, and exports the result for
// external renderers.
//
// Legs are independent searches over the same immutable grid, so Plan runs
// them concurrently; each leg owns its own search state. A leg with no path
// makes the whole route not found (Route.Found == false, MissingLeg set),
// which, as with astar, is a normal outcome rather than an error.
//
// Geometry export maps cell (row, col) to the planar point
// (col+0.5, row+0.5), the cell center with x to the right and y downward.
package route
