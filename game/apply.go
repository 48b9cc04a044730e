package game

import (
	"fmt"

	"github.com/gorgonia/jungo/board"
)

// Apply makes a move for the player to move and returns the resulting state.
// If the move is rejected, the returned error is a MoveError and s is left as it was.
func (s *State) Apply(m Move) (*State, error) {
	if err := s.Check(m); err != nil {
		return nil, err
	}

	switch m.Kind {
	case KindPlay:
		return s.play(m), nil
	case KindPass:
		return s.pass(m), nil
	case KindResign:
		return s.resign(m), nil
	}
	panic(fmt.Sprintf("Unreachable: unknown move kind %v", m.Kind))
}

// Check reports the error Apply would return for m, without making the move.
//
// Placements are checked in order: bounds, occupancy, ko, suicide.
func (s *State) Check(m Move) error {
	if s.over {
		return s.reject(m, ErrGameOver)
	}

	switch m.Kind {
	case KindPass, KindResign:
		return nil
	case KindPlay:
		p := m.Pos
		if !s.grid.InBounds(p) {
			return s.reject(m, ErrInvalidPosition)
		}
		if s.grid.At(p) != board.None {
			return s.reject(m, ErrOccupied)
		}
		if s.hasKo && s.ko.Eq(p) {
			return s.reject(m, ErrKo)
		}
		if s.grid.IsSuicide(p, s.toMove) {
			return s.reject(m, ErrSuicide)
		}
		return nil
	}
	panic(fmt.Sprintf("Unreachable: unknown move kind %v", m.Kind))
}

func (s *State) reject(m Move, kind ErrorKind) error {
	return MoveError{Kind: kind, Move: PlayerMove{Player: s.toMove, Move: m}}
}

// successor is a copy of s with m recorded as the last move.
func (s *State) successor(m Move) *State {
	next := *s
	next.moveCount++
	next.last = PlayerMove{Player: s.toMove, Move: m}
	return &next
}

// play places a stone for the player to move and resolves captures.
// The move must have been checked.
func (s *State) play(m Move) *State {
	p, c := m.Pos, s.toMove
	opp := c.Opponent()

	grid, captured := s.grid.Place(p, c).Capture(p, c)

	next := s.successor(m)
	next.grid = grid
	next.stones = s.stones.Add(c, 1).Add(opp, -len(captured))
	next.hash = s.hash ^ s.z.key(p, c)
	for _, prisoner := range captured {
		next.hash ^= s.z.key(prisoner, opp) // Xoring the original colour
	}

	// only a single stone taking a single stone can be immediately retaken
	next.hasKo = false
	next.ko = board.Pos{}
	if len(captured) == 1 && len(grid.Group(p)) == 1 {
		next.ko, next.hasKo = captured[0], true
	}

	next.toMove = opp
	return next
}

// pass ends the game if the previous move was also a pass. Otherwise the
// turn goes to the opponent and any ko is lifted.
func (s *State) pass(m Move) *State {
	next := s.successor(m)
	if s.moveCount > 0 && s.last.IsPass() {
		next.over = true
		next.winner = s.score()
		return next
	}
	next.toMove = s.toMove.Opponent()
	next.hasKo = false
	next.ko = board.Pos{}
	return next
}

// resign ends the game in favour of the opponent. The board and the ko point
// are left as they are.
func (s *State) resign(m Move) *State {
	next := s.successor(m)
	next.over = true
	next.winner = winnerOf(s.toMove.Opponent())
	return next
}

// score decides the game by comparing the number of stones on the board.
func (s *State) score() Winner {
	switch {
	case s.stones.Black > s.stones.White:
		return BlackWins
	case s.stones.White > s.stones.Black:
		return WhiteWins
	default:
		return Draw
	}
}
