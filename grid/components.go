package grid

// ComponentIDs labels every walkable cell with the index of its 4-connected
// component; blocked cells get -1. Components are numbered in row-major order
// of their first cell. The returned slice is indexed by Index(cell), and the
// second value is the number of components.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) ComponentIDs() ([]int, int) {
	labels := make([]int, len(g.tags))
	for i := range labels {
		labels[i] = -1
	}
	var (
		count int
		queue []int
		nbrs  = make([]Cell, 0, len(offsets4))
	)
	for i0, t := range g.tags {
		if t != Free || labels[i0] >= 0 {
			continue
		}
		// BFS to label component
		queue = append(queue[:0], i0)
		labels[i0] = count
		for qi := 0; qi < len(queue); qi++ {
			nbrs = g.AppendNeighbors(nbrs[:0], g.Coordinate(queue[qi]))
			for _, n := range nbrs {
				vi := g.index(n)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}

	return labels, count
}

// Components groups walkable cells by 4-connected component.
// Within a component cells appear in row-major order.
func (g *Grid) Components() [][]Cell {
	labels, count := g.ComponentIDs()
	comps := make([][]Cell, count)
	for i, id := range labels {
		if id >= 0 {
			comps[id] = append(comps[id], g.Coordinate(i))
		}
	}
	return comps
}

// Connected reports whether a and b are both walkable and lie in the same
// component. Out-of-bounds cells are never connected.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	labels, _ := g.ComponentIDs()
	la := labels[g.index(a)]
	return la >= 0 && la == labels[g.index(b)]
}
