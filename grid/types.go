package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadRune indicates Parse met a character that is neither '.' nor '#'.
	ErrBadRune = errors.New("grid: unexpected character in grid text")
	// ErrOutOfBounds indicates a queried cell lies outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Tag marks a cell as walkable or not.
type Tag uint8

const (
	// Free cells may be entered.
	Free Tag = iota
	// Blocked cells are obstacles.
	Blocked
)

// String returns the text rune used by Parse and Grid.String.
func (t Tag) String() string {
	if t == Blocked {
		return string(BlockedRune)
	}
	return string(FreeRune)
}

// Runes of the text form.
const (
	FreeRune    = '.'
	BlockedRune = '#'
)

// Cell is a grid coordinate. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Adjacent reports whether a and b differ by exactly one unit in exactly one coordinate.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is an admissible and
// consistent estimate for unit-cost 4-directional movement.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// offsets4 lists the 4-directional moves in expansion order: up, right, down, left.
var offsets4 = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable Height×Width occupancy map. tags is stored row-major.
type Grid struct {
	Width, Height int
	tags          []Tag
	free          int
}
