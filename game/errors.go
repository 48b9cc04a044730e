package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the reason a move was rejected. The string values are stable.
type ErrorKind string

const (
	ErrInvalidPosition ErrorKind = "invalid_position"
	ErrOccupied        ErrorKind = "occupied"
	ErrSuicide         ErrorKind = "suicide"
	ErrKo              ErrorKind = "ko"
	ErrGameOver        ErrorKind = "game_over"
)

func (k ErrorKind) Error() string { return string(k) }

// MoveError is returned when a move is rejected. The state the move was
// applied to is left as it was.
type MoveError struct {
	Kind ErrorKind
	Move PlayerMove
}

func (err MoveError) Error() string {
	return fmt.Sprintf("Unable to make %v: %s", err.Move, err.Kind)
}

// Unwrap allows errors.Is(err, ErrKo) and the like.
func (err MoveError) Unwrap() error { return err.Kind }

// KindOf returns the ErrorKind of a rejected move, looking through any wrapping.
func KindOf(err error) (ErrorKind, bool) {
	var me MoveError
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return "", false
}
