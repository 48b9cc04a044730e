// Package game implements the Jungo state machine: turn order, ko, passes,
// resignation and the stone count that decides the game.
//
// A *State is never modified once it has been made. Apply returns a new
// *State for every accepted move, so earlier states stay valid snapshots
// that can be kept around for replays or undo, and may be shared between
// goroutines without locking.
package game

import (
	"fmt"

	"github.com/gorgonia/jungo/board"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// State is the state of a game of Jungo.
type State struct {
	grid   board.Grid
	z      *zobrist
	hash   Zobrist
	stones board.Count // kept in step with grid

	toMove    board.Colour
	ko        board.Pos // forbidden to the next player, when hasKo
	hasKo     bool
	moveCount int
	last      PlayerMove

	over   bool
	winner Winner
}

// New creates a game on an empty board of size x size, Black to move.
func New(size int) (*State, error) {
	g, err := board.New(size)
	if err != nil {
		return nil, errors.WithMessage(err, "Unable to create game")
	}
	return &State{
		grid:   g,
		z:      zobristFor(size),
		toMove: board.Black,
	}, nil
}

// Grid returns the board. It is shared with the state and must not be written to.
func (s *State) Grid() board.Grid { return s.grid }

// Size returns the length of a side of the board.
func (s *State) Size() int { return s.grid.Size() }

// ToMove returns the colour that plays next.
func (s *State) ToMove() board.Colour { return s.toMove }

// KoPoint returns the intersection the next player may not play on, if any.
func (s *State) KoPoint() (board.Pos, bool) { return s.ko, s.hasKo }

// MoveNumber returns the count of moves, passes and resignations so far.
func (s *State) MoveNumber() int { return s.moveCount }

// LastMove returns the move that led to this state. ok is false at the start of the game.
func (s *State) LastMove() (m PlayerMove, ok bool) { return s.last, s.moveCount > 0 }

// Stones returns the number of stones of each colour on the board.
func (s *State) Stones() board.Count { return s.stones }

// Hash returns the Zobrist hash of the board.
func (s *State) Hash() Zobrist { return s.hash }

// IsOver returns true once the game has ended.
func (s *State) IsOver() bool { return s.over }

// Winner returns the result. It is NoWinner while the game is in progress.
func (s *State) Winner() Winner { return s.winner }

// Ended returns whether the game has ended, and if so, who won.
func (s *State) Ended() (ended bool, winner Winner) { return s.over, s.winner }

// Eq checks that both states are equal
func (s *State) Eq(other *State) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}

	// easy to check stuff first
	if s.hash != other.hash ||
		s.Size() != other.Size() ||
		s.toMove != other.toMove ||
		s.moveCount != other.moveCount ||
		s.hasKo != other.hasKo ||
		s.hasKo && !s.ko.Eq(other.ko) ||
		s.last != other.last ||
		s.stones != other.stones ||
		s.over != other.over ||
		s.winner != other.winner {
		return false
	}

	for y, row := range s.grid {
		for x, c := range row {
			if c != other.grid[y][x] {
				return false
			}
		}
	}
	return true
}

// Format implements fmt.Formatter. %s prints the board, %v adds a status line.
func (s *State) Format(f fmt.State, c rune) {
	switch c {
	case 's':
		fmt.Fprintf(f, "%s", s.grid)
	case 'v':
		fmt.Fprintf(f, "%s", s.grid)
		switch {
		case s.over:
			fmt.Fprintf(f, "Move %d. Game over. Winner: %v. Stones %v", s.moveCount, s.winner, s.stones)
		case s.hasKo:
			fmt.Fprintf(f, "Move %d. %v to move. Ko at %v. Stones %v", s.moveCount, s.toMove, s.ko, s.stones)
		default:
			fmt.Fprintf(f, "Move %d. %v to move. Stones %v", s.moveCount, s.toMove, s.stones)
		}
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s *State) MarshalZerologObject(e *zerolog.Event) {
	e.Int("size", s.Size()).
		Int("move", s.moveCount).
		Int("black", s.stones.Black).
		Int("white", s.stones.White).
		Uint32("hash", uint32(s.hash))
	if s.moveCount > 0 {
		e.Object("last", s.last)
	}
	if s.over {
		e.Stringer("winner", s.winner)
		return
	}
	e.Stringer("to_move", s.toMove)
	if s.hasKo {
		e.Int("ko_x", s.ko.X).Int("ko_y", s.ko.Y)
	}
}
