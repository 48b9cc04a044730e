package board

import "fmt"

// Count is a tally of stones per colour.
type Count struct {
	Black, White int
}

// Of returns the number of stones of colour c.
func (c Count) Of(colour Colour) int {
	switch colour {
	case Black:
		return c.Black
	case White:
		return c.White
	}
	return 0
}

// Add returns c with n added to the tally of colour.
func (c Count) Add(colour Colour, n int) Count {
	switch colour {
	case Black:
		c.Black += n
	case White:
		c.White += n
	}
	return c
}

func (c Count) Format(s fmt.State, r rune) { fmt.Fprintf(s, "{X: %d, O: %d}", c.Black, c.White) }

// Count tallies every stone on the board.
func (g Grid) Count() (retVal Count) {
	for _, row := range g {
		for _, c := range row {
			switch c {
			case Black:
				retVal.Black++
			case White:
				retVal.White++
			}
		}
	}
	return retVal
}
