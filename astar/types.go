package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is out of bounds or blocked.
	// It wraps grid.ErrOutOfBounds or ErrBlocked for the offending endpoint.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrBlocked indicates an endpoint lies on an obstacle.
	ErrBlocked = errors.New("astar: cell is blocked")

	// ErrCancelled indicates the search context was cancelled or its deadline passed.
	ErrCancelled = errors.New("astar: search cancelled")

	// ErrBudgetExceeded indicates the expansion budget ran out before a verdict.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Result is the outcome of a completed search.
type Result struct {
	// Path lists cells from start to goal inclusive; nil when Found is false.
	Path []grid.Cell
	// Found distinguishes a path from the not-found outcome.
	Found bool
	// Cost is the number of edges in Path (len(Path)-1), or 0 when not found.
	Cost int
	// Expanded counts cells finalized by the search.
	Expanded int
}

// Heuristic is the estimate used by FindPath. It is grid.Manhattan.
var Heuristic = grid.Manhattan

// Options configures FindPath.
type Options struct {
	// Ctx is checked once per frontier pop.
	Ctx context.Context

	// MaxExpansions, if > 0, limits the number of finalized cells.
	// 0 disables the limit.
	MaxExpansions int

	// OnExpand is called when a cell is finalized, with its g and f scores.
	OnExpand func(c grid.Cell, g, f int)

	// OnRelax is called when a strictly better route to `to` via `from` is recorded.
	OnRelax func(from, to grid.Cell, g int)

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no expansion
// limit, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(grid.Cell, int, int) {},
		OnRelax:       func(grid.Cell, grid.Cell, int) {},
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search with ErrBudgetExceeded after n cells
// have been finalized without reaching the goal.
//
//	n > 0:  limit to n expansions
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked for every finalized cell.
func WithOnExpand(fn func(c grid.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked for every improving relaxation.
func WithOnRelax(fn func(from, to grid.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
