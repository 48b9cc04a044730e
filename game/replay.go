package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ReplayOption configures Replay.
type ReplayOption func(*replayer)

// WithLogger traces every applied and rejected move at debug level.
func WithLogger(l zerolog.Logger) ReplayOption {
	return func(r *replayer) { r.log = l }
}

type replayer struct {
	log zerolog.Logger
}

// Replay starts a game of the given size and applies moves in order.
// It returns every state of the game, the initial one first.
//
// Replay stops at the first rejected move. The states up to that point are
// returned along with the rejection, wrapped with the index of the move.
func Replay(size int, moves []Move, opts ...ReplayOption) ([]*State, error) {
	r := replayer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&r)
	}

	s, err := New(size)
	if err != nil {
		return nil, err
	}

	states := make([]*State, 1, len(moves)+1)
	states[0] = s
	for i, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			r.log.Debug().Int("index", i).Object("move", PlayerMove{Player: s.toMove, Move: m}).Err(err).Msg("move rejected")
			return states, errors.Wrapf(err, "move %d", i)
		}
		r.log.Debug().Int("index", i).Object("state", next).Msg("move applied")
		states = append(states, next)
		s = next
	}
	return states, nil
}
