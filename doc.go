// Package gridpath finds shortest obstacle-avoiding routes on fixed-size 2D
// grids and composes them into multi-stop delivery routes.
//
// Layout:
//
//	grid/      Cell, Grid: bounds, walkability, neighbors, components, "./#" text form
//	astar/     FindPath: A* with Manhattan heuristic, lazy decrease-key heap, hooks
//	bfs/       exhaustive breadth-first distances, the reference for shortest lengths
//	gridgen/   seeded random obstacle maps and distinct free-cell sampling
//	route/     concurrent multi-leg planning, GeoJSON export via paulmach/orb
//	cmd/gridroute   courier simulation CLI
//
// Quick example:
//
//	g := grid.MustParse("...\n#.#\n...")
//	res, _ := astar.FindPath(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0})
//	// res.Path == [(0,0) (0,1) (1,1) (2,1) (2,0)]
package gridpath
