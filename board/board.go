// Package board implements the grid algebra of Jungo: a square board of
// intersections, stone groups, liberties and captures.
//
// A Grid is a value. None of the functions in this package modify a Grid
// that is passed in. Operations that change the board return a new Grid
// which shares every untouched row with its input, so a long game does not
// copy the whole board on each move.
package board

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// MinSize is the smallest board that can be constructed.
const MinSize = 2

var (
	// ErrSizeTooSmall is returned when a board size is below MinSize.
	ErrSizeTooSmall = errors.New("board size too small")

	// ErrSizeNotInteger is returned by ParseSize when the input is not an integer.
	ErrSizeNotInteger = errors.New("board size is not an integer")
)

// Pos is a (x, y) coordinate. (0, 0) is the top left, x grows to the right
// and y grows downwards.
type Pos struct {
	X, Y int
}

// Eq returns true if both are equal
func (p Pos) Eq(other Pos) bool { return p.X == other.X && p.Y == other.Y }

func (p Pos) Format(s fmt.State, c rune) { fmt.Fprintf(s, "(%d, %d)", p.X, p.Y) }

// Grid is a square board, indexed g[y][x].
type Grid [][]Colour

// New creates an empty grid of size x size.
//
// All rows are carved out of one backing slice with their capacity clipped,
// so appending to a row can never bleed into the next one.
func New(size int) (Grid, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	data := make([]Colour, size*size)
	g := make(Grid, size)
	for i := range g {
		start := i * size
		g[i] = data[start : start+size : start+size]
	}
	return g, nil
}

// ParseSize parses a board size given as text.
func ParseSize(s string) (int, error) {
	size, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrSizeNotInteger, "%q", s)
	}
	if err := validSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

func validSize(size int) error {
	if size < MinSize {
		return errors.Wrapf(ErrSizeTooSmall, "size %d, minimum is %d", size, MinSize)
	}
	return nil
}

// InBounds returns true if p lies on a board of the given size.
func InBounds(size int, p Pos) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Size returns the length of a side of the board.
func (g Grid) Size() int { return len(g) }

// InBounds returns true if p lies on g.
func (g Grid) InBounds(p Pos) bool { return InBounds(len(g), p) }

// At returns the colour at p. p must be in bounds.
func (g Grid) At(p Pos) Colour { return g[p.Y][p.X] }

// Place returns a new grid with p set to c. Bounds and occupancy are not
// checked. Only row p.Y is copied.
func (g Grid) Place(p Pos, c Colour) Grid {
	retVal := make(Grid, len(g))
	copy(retVal, g)
	retVal[p.Y] = copyRow(g[p.Y])
	retVal[p.Y][p.X] = c
	return retVal
}

// Remove returns a new grid with every given position emptied.
// When no positions are given, g itself is returned.
func (g Grid) Remove(ps ...Pos) Grid {
	if len(ps) == 0 {
		return g
	}
	retVal := make(Grid, len(g))
	copy(retVal, g)
	copied := make([]bool, len(g))
	for _, p := range ps {
		if !copied[p.Y] {
			retVal[p.Y] = copyRow(g[p.Y])
			copied[p.Y] = true
		}
		retVal[p.Y][p.X] = None
	}
	return retVal
}

// Neighbours returns the in-bounds positions above, right, below and left of p, in that order.
func Neighbours(size int, p Pos) []Pos {
	adj := adjacents(p)
	retVal := make([]Pos, 0, len(adj))
	for _, a := range adj {
		if InBounds(size, a) {
			retVal = append(retVal, a)
		}
	}
	return retVal
}

// Format implements fmt.Formatter
func (g Grid) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range g {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func copyRow(row []Colour) []Colour {
	retVal := make([]Colour, len(row))
	copy(retVal, row)
	return retVal
}

// adjacents returns the four orthogonal positions of p. Some may be off the board.
func adjacents(p Pos) (retVal [4]Pos) {
	for i, d := range directions {
		retVal[i] = Pos{p.X + d.X, p.Y + d.Y}
	}
	return retVal
}

// above, right, below, left
var directions = [4]Pos{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}
