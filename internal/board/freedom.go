package board

// IsFree reports whether a tile can be picked: it is active, no active tile
// lies on it, and at least one of its sides has no active neighbour.
// The answer is recomputed on every call.
func (b *Board) IsFree(id int) bool {
	t := b.Tile(id)
	if t == nil || !t.Active {
		return false
	}
	if b.countActive(t.blockedBy) > 0 {
		return false
	}
	return b.countActive(t.left) == 0 || b.countActive(t.right) == 0
}

func (b *Board) countActive(ids []int) int {
	n := 0
	for _, id := range ids {
		if b.tiles[id].Active {
			n++
		}
	}
	return n
}

// ActiveBlockers returns how many active tiles lie on the tile.
func (b *Board) ActiveBlockers(id int) int {
	return b.countActive(b.tiles[id].blockedBy)
}

// ActiveSides returns the number of active neighbours on each side.
func (b *Board) ActiveSides(id int) (left, right int) {
	t := &b.tiles[id]
	return b.countActive(t.left), b.countActive(t.right)
}

// ActiveIDs returns the ids of all active tiles in ascending order.
func (b *Board) ActiveIDs() []int {
	var ids []int
	for i := range b.tiles {
		if b.tiles[i].Active {
			ids = append(ids, i)
		}
	}
	return ids
}

// ActiveCount returns the number of tiles still on the board.
func (b *Board) ActiveCount() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].Active {
			n++
		}
	}
	return n
}

// FreeTiles returns the ids of all free tiles in ascending order.
func (b *Board) FreeTiles() []int {
	var ids []int
	for i := range b.tiles {
		if b.IsFree(i) {
			ids = append(ids, i)
		}
	}
	return ids
}

// Pair is two tiles that can be removed together.
type Pair struct {
	A, B int
}

// MatchingPairs lists every pair of free tiles whose faces match, ordered by
// the first and then the second id.
func (b *Board) MatchingPairs() []Pair {
	free := b.FreeTiles()
	var pairs []Pair
	for i, a := range free {
		for _, c := range free[i+1:] {
			if b.tiles[a].Type.Matches(b.tiles[c].Type) {
				pairs = append(pairs, Pair{A: a, B: c})
			}
		}
	}
	return pairs
}

// HasLegalMove reports whether at least one matching pair of free tiles exists.
func (b *Board) HasLegalMove() bool {
	free := b.FreeTiles()
	for i, a := range free {
		for _, c := range free[i+1:] {
			if b.tiles[a].Type.Matches(b.tiles[c].Type) {
				return true
			}
		}
	}
	return false
}
