package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	head  int
	nbrs  []grid.Cell
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrInvalidCell for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *grid.Grid, start grid.Cell, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ok, err := g.IsWalkable(start); err != nil || !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCell, start)
	}

	n := g.FreeCount()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		nbrs:  make([]grid.Cell, 0, 4),
		res: &BFSResult{
			Start:  start,
			Order:  make([]grid.Cell, 0, n),
			Depth:  make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{cell: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.nbrs = w.grid.AppendNeighbors(w.nbrs[:0], item.cell)
		for _, nb := range w.nbrs {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			w.res.Depth[nb] = next
			w.res.Parent[nb] = item.cell
			w.queue = append(w.queue, queueItem{cell: nb, depth: next})
		}
	}
	return nil
}

// ShortestLength returns the number of edges on a shortest path from start
// to goal and whether goal is reachable. Both cells must be walkable.
func ShortestLength(g *grid.Grid, start, goal grid.Cell) (int, bool, error) {
	if g != nil {
		if ok, err := g.IsWalkable(goal); err != nil || !ok {
			return 0, false, fmt.Errorf("%w: goal %v", ErrInvalidCell, goal)
		}
	}
	res, err := BFS(g, start)
	if err != nil {
		return 0, false, err
	}
	d, ok := res.Depth[goal]
	return d, ok, nil
}
