package board

// Group returns every position connected to p through stones of the same
// colour, p included. The order is unspecified. An empty p has no group.
func (g Grid) Group(p Pos) []Pos {
	group, _ := g.group(p)
	return group
}

// Liberties returns the number of distinct empty intersections adjacent to
// the group containing p. It is 0 when p is empty.
func (g Grid) Liberties(p Pos) int {
	_, libs := g.group(p)
	return libs
}

// Capture removes the opposing groups left without liberties around p,
// where a stone of colour c has just been placed. It returns the new grid
// and the captured positions. Stones of colour c are never removed.
//
// When nothing is captured the returned grid is g itself.
func (g Grid) Capture(p Pos, c Colour) (Grid, []Pos) {
	captured := g.captures(p, c)
	return g.Remove(captured...), captured
}

// IsSuicide returns true if a stone of colour c at p would be left without
// liberties and would capture nothing. p must be empty and in bounds.
func (g Grid) IsSuicide(p Pos, c Colour) bool {
	placed := g.Place(p, c)
	if len(placed.captures(p, c)) > 0 {
		return false
	}
	_, libs := placed.group(p)
	return libs == 0
}

// captures finds the opposing stones adjacent to p that have no liberties.
// Groups touching p on several sides are only reported once.
func (g Grid) captures(p Pos, c Colour) (captured []Pos) {
	opp := c.Opponent()
	size := len(g)
	for _, a := range adjacents(p) {
		if !InBounds(size, a) || g.At(a) != opp {
			continue
		}
		if contains(captured, a) {
			continue
		}
		group, libs := g.group(a)
		if libs == 0 {
			captured = append(captured, group...)
		}
	}
	return captured
}

// group walks the group containing p with an explicit worklist and returns
// its stones and its liberty count.
func (g Grid) group(p Pos) (stones []Pos, liberties int) {
	size := len(g)
	if !InBounds(size, p) {
		return nil, 0
	}
	colour := g.At(p)
	if colour == None {
		return nil, 0
	}

	s := borrowScratch(size * size)
	defer returnScratch(s)

	// stones and liberties share the visited set: a cell is either one or the other.
	s.seen[p.Y*size+p.X] = true
	s.stack = append(s.stack, p)
	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		stones = append(stones, f)

		for _, a := range adjacents(f) {
			if !InBounds(size, a) {
				continue
			}
			i := a.Y*size + a.X
			if s.seen[i] {
				continue
			}
			switch g.At(a) {
			case None:
				s.seen[i] = true
				liberties++
			case colour:
				s.seen[i] = true
				s.stack = append(s.stack, a)
			}
		}
	}
	return stones, liberties
}

func contains(ps []Pos, p Pos) bool {
	for _, q := range ps {
		if q.Eq(p) {
			return true
		}
	}
	return false
}
