// Package grid provides the occupancy map searched by the path finders.
//
// Cells tagged Free are walkable; cells tagged Blocked are obstacles.
// Neighbors are strictly orthogonal (N, E, S, W).
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of tags,
// indexed tags[row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if tags has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(tags [][]Tag) (*Grid, error) {
	if len(tags) == 0 || len(tags[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(tags), len(tags[0])
	for _, row := range tags {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, tags: make([]Tag, 0, w*h)}
	for _, row := range tags {
		for _, t := range row {
			if t != Free {
				t = Blocked
			}
			if t == Free {
				g.free++
			}
			g.tags = append(g.tags, t)
		}
	}

	return g, nil
}

// FromBools builds a Grid where blocked[row][col] == true marks an obstacle.
func FromBools(blocked [][]bool) (*Grid, error) {
	tags := make([][]Tag, len(blocked))
	for r, row := range blocked {
		tags[r] = make([]Tag, len(row))
		for c, b := range row {
			if b {
				tags[r][c] = Blocked
			}
		}
	}

	return New(tags)
}

// Parse reads a grid from text: one line per row, '.' for Free and '#' for
// Blocked. Leading and trailing blank lines and surrounding spaces are ignored.
func Parse(text string) (*Grid, error) {
	var tags [][]Tag
	for n, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Tag, 0, len(line))
		for _, r := range line {
			switch r {
			case FreeRune:
				row = append(row, Free)
			case BlockedRune:
				row = append(row, Blocked)
			default:
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadRune, r, n+1)
			}
		}
		tags = append(tags, row)
	}

	return New(tags)
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether c lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the tag stored at c, or ErrOutOfBounds.
func (g *Grid) At(c Cell) (Tag, error) {
	if !g.InBounds(c) {
		return Blocked, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Height, g.Width)
	}
	return g.tags[g.index(c)], nil
}

// IsWalkable reports whether c is tagged Free.
// Querying a cell outside the grid is a caller error and yields ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) IsWalkable(c Cell) (bool, error) {
	t, err := g.At(c)
	if err != nil {
		return false, err
	}
	return t == Free, nil
}

// Neighbors returns the in-bounds, walkable 4-neighbors of c in the order
// up, right, down, left.
func (g *Grid) Neighbors(c Cell) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, len(offsets4)), c)
}

// AppendNeighbors appends the walkable 4-neighbors of c to dst and returns
// the extended slice. Search loops reuse dst to avoid per-step allocation.
func (g *Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range offsets4 {
		n := c.Add(d)
		if g.InBounds(n) && g.tags[g.index(n)] == Free {
			dst = append(dst, n)
		}
	}
	return dst
}

// Size returns Width×Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// FreeCount returns the number of walkable cells.
func (g *Grid) FreeCount() int {
	return g.free
}

// FreeCells lists every walkable cell in row-major order.
func (g *Grid) FreeCells() []Cell {
	out := make([]Cell, 0, g.free)
	for i, t := range g.tags {
		if t == Free {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Tags returns a deep copy of the grid contents as tags[row][col].
func (g *Grid) Tags() [][]Tag {
	out := make([][]Tag, g.Height)
	for r := range out {
		out[r] = make([]Tag, g.Width)
		copy(out[r], g.tags[r*g.Width:(r+1)*g.Width])
	}
	return out
}

// String renders the grid in the text form accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.tags[r*g.Width+c] == Free {
				sb.WriteByte(FreeRune)
			} else {
				sb.WriteByte(BlockedRune)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Index maps c to its row-major index: Row*Width + Col. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return g.index(c)
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Width, Col: idx % g.Width}
}
