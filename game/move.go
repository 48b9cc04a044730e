package game

import (
	"fmt"

	"github.com/gorgonia/jungo/board"
	"github.com/rs/zerolog"
)

// MoveKind tells the three kinds of moves apart.
type MoveKind uint8

const (
	KindPlay MoveKind = iota
	KindPass
	KindResign
)

func (k MoveKind) String() string {
	switch k {
	case KindPlay:
		return "play"
	case KindPass:
		return "pass"
	case KindResign:
		return "resign"
	}
	return fmt.Sprintf("MoveKind(%d)", uint8(k))
}

// Move is a move to be made by whoever is next to move.
// Pos is only meaningful when Kind is KindPlay.
type Move struct {
	Kind MoveKind
	Pos  board.Pos
}

// Play is a move placing a stone at (x, y).
func Play(x, y int) Move { return Move{Kind: KindPlay, Pos: board.Pos{X: x, Y: y}} }

// PlayAt is a move placing a stone at p.
func PlayAt(p board.Pos) Move { return Move{Kind: KindPlay, Pos: p} }

// Pass is a move that leaves the board alone.
func Pass() Move { return Move{Kind: KindPass} }

// Resign is a move that concedes the game.
func Resign() Move { return Move{Kind: KindResign} }

// IsPass returns true when the move is a pass
func (m Move) IsPass() bool { return m.Kind == KindPass }

// IsResignation returns true when the move is a resignation
func (m Move) IsResignation() bool { return m.Kind == KindResign }

func (m Move) Format(s fmt.State, c rune) {
	if m.Kind == KindPlay {
		fmt.Fprintf(s, "%v", m.Pos)
		return
	}
	fmt.Fprint(s, m.Kind.String())
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (m Move) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("kind", m.Kind)
	if m.Kind == KindPlay {
		e.Int("x", m.Pos.X).Int("y", m.Pos.Y)
	}
}

// PlayerMove is a move along with the colour that made it.
type PlayerMove struct {
	Player board.Colour
	Move
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", p.Player, p.Move) }

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (p PlayerMove) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("player", p.Player).EmbedObject(p.Move)
}

// Winner is the result of a game.
type Winner uint8

const (
	NoWinner Winner = iota // game in progress
	BlackWins
	WhiteWins
	Draw
)

func winnerOf(c board.Colour) Winner {
	switch c {
	case board.Black:
		return BlackWins
	case board.White:
		return WhiteWins
	}
	panic("Unreachable")
}

func (w Winner) String() string {
	switch w {
	case NoWinner:
		return "none"
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Winner(%d)", uint8(w))
}
