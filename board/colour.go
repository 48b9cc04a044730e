package board

import "fmt"

// Colour is the content of a single intersection.
type Colour int8

const (
	None Colour = iota
	Black
	White
)

// Opponent returns the colour of the other player.
func (c Colour) Opponent() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic("Unreachable")
}

// IsStone returns true for Black and White.
func (c Colour) IsStone() bool { return c == Black || c == White }

func (c Colour) Format(s fmt.State, r rune) {
	switch r {
	case 's': // used in board diagrams
		switch c {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	default:
		fmt.Fprint(s, c.String())
	}
}

func (c Colour) String() string {
	switch c {
	case None:
		return "None"
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Colour(%d)", int8(c))
}
