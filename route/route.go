package route

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrTooFewStops indicates Plan was given fewer than two stops.
var ErrTooFewStops = errors.New("route: at least two stops are required")

// Route is a multi-leg path through an ordered list of stops.
type Route struct {
	// Stops are the cells visited in order, as passed to Plan.
	Stops []grid.Cell
	// Legs holds one search result per consecutive pair of stops.
	Legs []astar.Result
	// Path is the concatenation of all leg paths with shared joints kept once.
	// Nil when Found is false.
	Path []grid.Cell
	// Found is true iff every leg found a path.
	Found bool
	// MissingLeg is the index of the first leg without a path, or -1.
	MissingLeg int
}

// Plan searches every leg stops[i] → stops[i+1] on g concurrently.
// opts are passed to each astar.FindPath call; ctx cancels all legs.
// Caller errors from any leg (invalid endpoint, cancellation, budget) abort
// the plan and are returned wrapped with the leg index.
func Plan(ctx context.Context, g *grid.Grid, stops []grid.Cell, opts ...astar.Option) (*Route, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewStops, len(stops))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	legs := make([]astar.Result, len(stops)-1)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range legs {
		legOpts := append(append(make([]astar.Option, 0, len(opts)+1), opts...), astar.WithContext(egCtx))
		eg.Go(func() error {
			res, err := astar.FindPath(g, stops[i], stops[i+1], legOpts...)
			if err != nil {
				return fmt.Errorf("route: leg %d %v→%v: %w", i, stops[i], stops[i+1], err)
			}
			legs[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r := &Route{
		Stops:      append([]grid.Cell(nil), stops...),
		Legs:       legs,
		MissingLeg: -1,
	}
	for i, leg := range legs {
		if !leg.Found {
			r.MissingLeg = i
			return r, nil
		}
	}
	r.Found = true
	r.Path = Concat(legPaths(legs)...)

	return r, nil
}

func legPaths(legs []astar.Result) [][]grid.Cell {
	out := make([][]grid.Cell, len(legs))
	for i, leg := range legs {
		out[i] = leg.Path
	}
	return out
}

// Concat joins consecutive leg paths. Each leg after the first must begin
// where the previous one ended; that shared cell is kept once.
func Concat(paths ...[]grid.Cell) []grid.Cell {
	n := 0
	for _, p := range paths {
		n += len(p)
	}
	out := make([]grid.Cell, 0, n)
	for i, p := range paths {
		if i > 0 && len(p) > 0 && len(out) > 0 && out[len(out)-1] == p[0] {
			p = p[1:]
		}
		out = append(out, p...)
	}
	return out
}

// Length returns the number of edges along Path, or 0 if not found.
func (r *Route) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// LegAt reports which leg step i of Path belongs to. A stop shared by two
// legs belongs to the earlier one. Returns -1 when i is outside Path.
func (r *Route) LegAt(i int) int {
	if i < 0 || i >= len(r.Path) {
		return -1
	}
	end := 0
	for leg, res := range r.Legs {
		end += res.Cost
		if i <= end {
			return leg
		}
	}
	return len(r.Legs) - 1
}
