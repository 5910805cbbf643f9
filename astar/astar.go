// Package astar implements A* search over a grid.Grid.
//
// Notes on implementation choices:
//
//   - Endpoints are validated before any allocation; an invalid endpoint is a
//     caller error and never reported as "no path".
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries whose cell is already closed.
//   - Closed cells are never reopened. The Manhattan heuristic is consistent,
//     so a closed cell's g-score is already optimal.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath computes a shortest 4-directional path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds and Free (ErrInvalidEndpoint).
//
// When no path exists FindPath returns a Result with Found == false and a nil
// error. ErrCancelled and ErrBudgetExceeded report searches that stopped
// before a verdict; they are never folded into the not-found outcome.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return Result{}, err
	}

	r := newRunner(g, goal, cfg)
	r.init(start)

	return r.process(start)
}

// checkEndpoint wraps the reason an endpoint is rejected under ErrInvalidEndpoint.
func checkEndpoint(g *grid.Grid, name string, c grid.Cell) error {
	ok, err := g.IsWalkable(c)
	if err != nil {
		return fmt.Errorf("%w: %s %v: %w", ErrInvalidEndpoint, name, c, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %v: %w", ErrInvalidEndpoint, name, c, ErrBlocked)
	}
	return nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g      *grid.Grid
	goal   grid.Cell
	opts   Options
	gScore map[grid.Cell]int       // best known cost from start; absent = infinite
	parent map[grid.Cell]grid.Cell // predecessor on the best known path
	closed map[grid.Cell]bool      // cells whose g-score is final
	pq     nodePQ                  // frontier, may hold stale entries
	nbrs   []grid.Cell             // scratch buffer for neighbor expansion
}

func newRunner(g *grid.Grid, goal grid.Cell, opts Options) *runner {
	return &runner{
		g:      g,
		goal:   goal,
		opts:   opts,
		gScore: make(map[grid.Cell]int),
		parent: make(map[grid.Cell]grid.Cell),
		closed: make(map[grid.Cell]bool),
		nbrs:   make([]grid.Cell, 0, 4),
	}
}

// init seeds the frontier with start at g = 0, f = h(start, goal).
func (r *runner) init(start grid.Cell) {
	r.gScore[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(c grid.Cell, g int) {
	h := Heuristic(c, r.goal)
	heap.Push(&r.pq, &nodeItem{cell: c, g: g, h: h, f: g + h})
}

// process is the main A* loop. It pops the best frontier entry until the goal
// is finalized or the frontier is exhausted.
func (r *runner) process(start grid.Cell) (Result, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return Result{Expanded: expanded}, fmt.Errorf("%w: %w", ErrCancelled, r.opts.Ctx.Err())
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		current := item.cell
		if r.closed[current] {
			continue // stale entry
		}
		if r.opts.MaxExpansions > 0 && expanded >= r.opts.MaxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w: %d cells expanded", ErrBudgetExceeded, expanded)
		}
		r.closed[current] = true
		expanded++
		r.opts.OnExpand(current, item.g, item.f)

		if current == r.goal {
			path := r.reconstruct(start)
			return Result{Path: path, Found: true, Cost: len(path) - 1, Expanded: expanded}, nil
		}

		r.relax(current, item.g)
	}

	return Result{Expanded: expanded}, nil
}

// relax examines the walkable neighbors of u and records any strictly better
// route through u. Assumes u is closed with final score gu.
func (r *runner) relax(u grid.Cell, gu int) {
	r.nbrs = r.g.AppendNeighbors(r.nbrs[:0], u)
	tentative := gu + 1
	for _, v := range r.nbrs {
		if r.closed[v] {
			continue
		}
		if old, seen := r.gScore[v]; seen && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		r.parent[v] = u
		r.opts.OnRelax(u, v, tentative)
		r.push(v, tentative)
	}
}

// reconstruct follows parent links back from the goal, then reverses.
func (r *runner) reconstruct(start grid.Cell) []grid.Cell {
	path := make([]grid.Cell, 0, r.gScore[r.goal]+1)
	for at := r.goal; ; {
		path = append(path, at)
		if at == start {
			break
		}
		at = r.parent[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is a frontier entry. Several entries may exist for one cell;
// only the one popped first while the cell is open is used.
type nodeItem struct {
	cell grid.Cell
	g    int // cost from start when pushed
	h    int // heuristic to goal
	f    int // g + h
}

// nodePQ is a min-heap of *nodeItem ordered by (f, h, row, col).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less implements the documented tie-break.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
