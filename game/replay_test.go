package game

import (
	"bytes"
	"testing"

	"github.com/gorgonia/jungo/board"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	moves := []Move{Play(4, 4), Play(3, 3), Pass(), Play(2, 2)}
	states, err := Replay(9, moves)
	require.NoError(t, err)
	require.Len(t, states, len(moves)+1)

	assert.Equal(t, 0, states[0].MoveNumber())
	for i, s := range states[1:] {
		assert.Equal(t, i+1, s.MoveNumber())
		last, ok := s.LastMove()
		require.True(t, ok)
		assert.Equal(t, moves[i], last.Move)
	}

	// earlier snapshots are untouched by later moves
	assert.Equal(t, board.Count{Black: 1}, states[1].Stones())
	assert.Equal(t, board.Count{Black: 1, White: 2}, states[4].Stones())
	assert.Equal(t, board.None, states[1].Grid()[3][3])
}

func TestReplay_StopsAtRejection(t *testing.T) {
	moves := []Move{Play(4, 4), Play(3, 3), Play(4, 4), Play(0, 0)}
	states, err := Replay(9, moves)
	require.Error(t, err)
	assert.Len(t, states, 3, "the initial state and the two accepted moves")

	assert.True(t, errors.Is(err, ErrOccupied))
	assert.Contains(t, err.Error(), "move 2")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrOccupied, kind)

	var me MoveError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, PlayerMove{Player: board.Black, Move: Play(4, 4)}, me.Move)
}

func TestReplay_BadSize(t *testing.T) {
	states, err := Replay(1, []Move{Pass()})
	assert.Nil(t, states)
	assert.True(t, errors.Is(err, board.ErrSizeTooSmall))
	_, ok := KindOf(err)
	assert.False(t, ok)
}

func TestReplay_AfterGameOver(t *testing.T) {
	states, err := Replay(5, []Move{Resign(), Play(1, 1)})
	assert.Len(t, states, 2)
	assert.True(t, errors.Is(err, ErrGameOver))
	assert.Equal(t, WhiteWins, states[1].Winner())
}

func TestReplay_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := Replay(5, []Move{Play(2, 2), Play(2, 2)}, WithLogger(logger))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"move applied"`)
	assert.Contains(t, out, `"message":"move rejected"`)
	assert.Contains(t, out, `"error":"Unable to make White@(2, 2): occupied"`)

	// nothing is written below debug level
	buf.Reset()
	_, err = Replay(5, []Move{Play(2, 2)}, WithLogger(logger.Level(zerolog.InfoLevel)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
