package game

import (
	"math/rand"
	"sync"

	"github.com/gorgonia/jungo/board"
)

// Zobrist is a hash of the stones on a board.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist uint32

// zobrist holds the random keys for a board size. It is a (size*size, 2)
// matrix stored row major: one key for a black stone and one for a white
// stone at every intersection.
//
// The keys are seeded from the board size, so equal positions hash equally
// across games. Tables are read-only once built.
type zobrist struct {
	size  int
	table []Zobrist
}

var zobristTables sync.Map // int -> *zobrist

func zobristFor(size int) *zobrist {
	if z, ok := zobristTables.Load(size); ok {
		return z.(*zobrist)
	}
	r := rand.New(rand.NewSource(int64(size)))
	z := &zobrist{
		size:  size,
		table: make([]Zobrist, size*size*2),
	}
	for i := range z.table {
		z.table[i] = Zobrist(r.Uint32())
	}
	actual, _ := zobristTables.LoadOrStore(size, z)
	return actual.(*zobrist)
}

// key returns the key of a stone of colour c at p.
func (z *zobrist) key(p board.Pos, c board.Colour) Zobrist {
	i := (p.Y*z.size + p.X) * 2
	switch c {
	case board.Black:
		return z.table[i]
	case board.White:
		return z.table[i+1]
	}
	panic("Unreachable")
}

// hash computes the hash of a whole board.
func (z *zobrist) hash(g board.Grid) (retVal Zobrist) {
	for y, row := range g {
		for x, c := range row {
			if c.IsStone() {
				retVal ^= z.key(board.Pos{X: x, Y: y}, c)
			}
		}
	}
	return retVal
}
