package board

import "sync"

// scratch holds the working memory of a group search: a visited set keyed
// by the row-major index of a position, and the worklist.
type scratch struct {
	seen  []bool
	stack []Pos
}

var scratchPool = &sync.Pool{
	New: func() interface{} { return new(scratch) },
}

// borrowScratch returns a scratch with a cleared visited set of length n.
func borrowScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.seen) < n {
		s.seen = make([]bool, n)
	} else {
		s.seen = s.seen[:n]
		for i := range s.seen {
			s.seen[i] = false
		}
	}
	s.stack = s.stack[:0]
	return s
}

func returnScratch(s *scratch) { scratchPool.Put(s) }
