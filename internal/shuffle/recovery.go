package shuffle

import (
	"sort"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// freeBonus outweighs every other term so free tiles always rank first.
const freeBonus = 1000

// StrategicValue ranks how useful it is to give a tile a guaranteed partner.
// Free tiles rank first, then low tiles with few active blockers, with a
// penalty for tiles boxed in on both sides and a bonus near the board centre.
func StrategicValue(b *board.Board, id int) int {
	return strategicValue(b, id, b.Bounds())
}

func strategicValue(b *board.Board, id int, bounds core.Rect) int {
	t := b.Tile(id)
	v := (5 - t.Z) * 10

	if b.IsFree(id) {
		v += freeBonus
	} else {
		v += core.Max(0, 50-10*b.ActiveBlockers(id))
		left, right := b.ActiveSides(id)
		v -= 20 * core.Min(left, right)
	}

	// Distances are taken between doubled centres to stay on integers.
	cx2 := bounds.X + bounds.Right()
	cy2 := bounds.Y + bounds.Bottom()
	dist := (core.Abs(2*t.X+core.TileSize-cx2) + core.Abs(2*t.Y+core.TileSize-cy2)) / 2
	v += core.Max(0, 20-dist)
	return v
}

// topTwo returns the two active tiles with the highest strategic value.
// Ties go to the lower id.
func topTwo(b *board.Board, active []int) (int, int) {
	bounds := b.Bounds()
	ranked := append([]int(nil), active...)
	values := make(map[int]int, len(ranked))
	for _, id := range ranked {
		values[id] = strategicValue(b, id, bounds)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if values[ranked[i]] != values[ranked[j]] {
			return values[ranked[i]] > values[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked[0], ranked[1]
}

// forcePair makes tiles a and c share a face without breaking key parity.
// Faces are swapped with, or taken from, other active tiles of the same key.
func forcePair(b *board.Board, active []int, a, c int, fallback tile.Type) error {
	ta, tc := b.Tile(a).Type, b.Tile(c).Type

	switch {
	case ta.Matches(tc):
		return nil

	case ta.Valid() && tc.Valid():
		d := partner(b, active, ta.Key(), a, c)
		if d < 0 {
			return ErrUnsolvable
		}
		b.Tile(c).Type, b.Tile(d).Type = ta, tc

	case ta.Valid() || tc.Valid():
		face, empty := ta, c
		if !ta.Valid() {
			face, empty = tc, a
		}
		d := partner(b, active, face.Key(), a, c)
		if d < 0 {
			return ErrUnsolvable
		}
		b.Tile(empty).Type = face
		b.Tile(d).Type = tile.Type{}

	default:
		d := partner(b, active, "", a, c)
		if d >= 0 {
			e := partner(b, active, b.Tile(d).Type.Key(), a, c, d)
			if e < 0 {
				return ErrUnsolvable
			}
			b.Tile(a).Type, b.Tile(c).Type = b.Tile(d).Type, b.Tile(e).Type
			b.Tile(d).Type, b.Tile(e).Type = tile.Type{}, tile.Type{}
			return nil
		}
		if !fallback.Valid() {
			return ErrUnsolvable
		}
		b.Tile(a).Type, b.Tile(c).Type = fallback, fallback
	}
	return nil
}

// partner finds the lowest active tile, other than the excluded ones, whose
// face has the given key. An empty key matches any typed tile.
func partner(b *board.Board, active []int, key string, exclude ...int) int {
next:
	for _, id := range active {
		for _, x := range exclude {
			if id == x {
				continue next
			}
		}
		t := b.Tile(id).Type
		if !t.Valid() {
			continue
		}
		if key == "" || t.Key() == key {
			return id
		}
	}
	return -1
}
