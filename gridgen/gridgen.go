package gridgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for map generation and sampling.
var (
	ErrBadSize       = errors.New("gridgen: height and width must be at least 1")
	ErrBadDensity    = errors.New("gridgen: density must lie in [0,1]")
	ErrNeedRand      = errors.New("gridgen: random source is nil")
	ErrNotEnoughFree = errors.New("gridgen: not enough free cells to sample")
)

// Defaults of the delivery simulation.
const (
	DefaultSize    = 15
	DefaultDensity = 0.3

	// defaultSeed is used when callers pass seed==0.
	defaultSeed int64 = 1
)

// Options configures Random.
type Options struct {
	Height, Width int
	Density       float64
	Rand          *rand.Rand
}

// Option configures Random via functional arguments.
type Option func(*Options)

// DefaultOptions returns a 15×15 map at density 0.3 with a default-seeded source.
func DefaultOptions() Options {
	return Options{
		Height:  DefaultSize,
		Width:   DefaultSize,
		Density: DefaultDensity,
	}
}

// WithSize sets a square n×n map.
func WithSize(n int) Option {
	return WithDims(n, n)
}

// WithDims sets the map height (rows) and width (columns).
func WithDims(height, width int) Option {
	return func(o *Options) {
		o.Height, o.Width = height, width
	}
}

// WithDensity sets the per-cell obstacle probability.
func WithDensity(p float64) Option {
	return func(o *Options) {
		o.Density = p
	}
}

// WithSeed uses a fresh source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = NewRand(seed)
	}
}

// WithRand draws from rng. Nil keeps the current source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// NewRand returns a deterministic *rand.Rand. seed==0 ⇒ default seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Random generates a map where each cell is Blocked with probability Density.
// Complexity: O(W×H).
func Random(opts ...Option) (*grid.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Height < 1 || cfg.Width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, cfg.Height, cfg.Width)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("%w: got %.3f", ErrBadDensity, cfg.Density)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	blocked := make([][]bool, cfg.Height)
	for r := range blocked {
		blocked[r] = make([]bool, cfg.Width)
		for c := range blocked[r] {
			blocked[r][c] = rng.Float64() < cfg.Density
		}
	}

	return grid.FromBools(blocked)
}

// SampleFree returns count mutually distinct Free cells of g in random order.
// It fails with ErrNotEnoughFree instead of retrying forever when the grid
// has fewer free cells than requested.
// Complexity: O(W×H) for the free-cell scan plus O(count) draws.
func SampleFree(g *grid.Grid, count int, rng *rand.Rand) ([]grid.Cell, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	if count < 0 || count > g.FreeCount() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughFree, count, g.FreeCount())
	}
	free := g.FreeCells()
	// partial Fisher–Yates: the first count slots become the sample
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}
	return free[:count:count], nil
}
