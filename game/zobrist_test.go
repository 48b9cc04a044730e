package game

import (
	"testing"

	"github.com/gorgonia/jungo/board"
	"github.com/stretchr/testify/assert"
)

func TestZobrist_Transposition(t *testing.T) {
	a := play(t, 9, Play(1, 1), Play(2, 2), Play(3, 3), Play(4, 4))
	b := play(t, 9, Play(3, 3), Play(4, 4), Play(1, 1), Play(2, 2))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Eq(b), "same board, different last move")

	c := play(t, 9, Play(2, 2), Play(1, 1), Play(3, 3), Play(4, 4)) // colours swapped on two points
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestZobrist_Capture(t *testing.T) {
	s := play(t, 9,
		Play(4, 3), Play(4, 4),
		Play(5, 4), Play(0, 0),
		Play(3, 4), Play(8, 8),
		Play(4, 5),
	)
	assert.Equal(t, s.z.hash(s.Grid()), s.Hash())

	// the captured white stone no longer contributes
	want := zobristFor(9).hash(s.Grid())
	assert.Equal(t, want, s.Hash())
	assert.Equal(t, board.None, s.Grid()[4][4])
}

func TestZobrist_Tables(t *testing.T) {
	assert.Same(t, zobristFor(9), zobristFor(9))
	assert.NotSame(t, zobristFor(9), zobristFor(13))

	z := zobristFor(3)
	assert.Len(t, z.table, 3*3*2)
	p := board.Pos{X: 2, Y: 1}
	assert.NotEqual(t, z.key(p, board.Black), z.key(p, board.White))
	assert.Panics(t, func() { z.key(p, board.None) })
}
