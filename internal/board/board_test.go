package board

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/solitaire/internal/tile"
)

func TestBuildRowRelations(t *testing.T) {
	b := Build([]Position{{0, 0}, {2, 0}, {4, 0}})

	tests := []struct {
		id          int
		left, right []int
		free        bool
	}{
		{0, nil, []int{1}, true},
		{1, []int{0}, []int{2}, false},
		{2, []int{1}, nil, true},
	}

	for _, tc := range tests {
		tl := b.Tile(tc.id)
		if tl.Z != 0 {
			t.Errorf("tile %d: Z = %d, expected 0", tc.id, tl.Z)
		}
		if !reflect.DeepEqual(tl.AdjacentLeft(), tc.left) {
			t.Errorf("tile %d: left = %v, expected %v", tc.id, tl.AdjacentLeft(), tc.left)
		}
		if !reflect.DeepEqual(tl.AdjacentRight(), tc.right) {
			t.Errorf("tile %d: right = %v, expected %v", tc.id, tl.AdjacentRight(), tc.right)
		}
		if got := b.IsFree(tc.id); got != tc.free {
			t.Errorf("tile %d: IsFree = %v, expected %v", tc.id, got, tc.free)
		}
	}
}

func TestBuildStacking(t *testing.T) {
	tests := []struct {
		name      string
		positions []Position
		wantZ     []int
	}{
		{"single tile", []Position{{0, 0}}, []int{0}},
		{"tower", []Position{{0, 0}, {0, 0}, {0, 0}}, []int{0, 1, 2}},
		{"bridge over two tiles", []Position{{0, 0}, {2, 0}, {1, 0}}, []int{0, 0, 1}},
		{"order decides stacking", []Position{{1, 0}, {0, 0}}, []int{0, 1}},
		{"half row offset", []Position{{0, 6}, {0, 8}, {0, 7}}, []int{0, 0, 1}},
		{"apart", []Position{{0, 0}, {4, 0}}, []int{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Build(tc.positions)
			for i, want := range tc.wantZ {
				if got := b.Tile(i).Z; got != want {
					t.Errorf("tile %d: Z = %d, expected %d", i, got, want)
				}
			}
		})
	}
}

func TestBuildBlocking(t *testing.T) {
	// Two base tiles with a third resting across both.
	b := Build([]Position{{0, 0}, {2, 0}, {1, 0}})

	for _, id := range []int{0, 1} {
		if got := b.Tile(id).BlockedBy(); !reflect.DeepEqual(got, []int{2}) {
			t.Errorf("tile %d: blockedBy = %v, expected [2]", id, got)
		}
		if b.IsFree(id) {
			t.Errorf("tile %d should be blocked", id)
		}
	}
	if !b.IsFree(2) {
		t.Error("top tile should be free")
	}

	b.Tile(2).Active = false
	if !b.IsFree(0) || !b.IsFree(1) {
		t.Error("base tiles should be free once the top tile is removed")
	}
}

func TestBuildOnlyAdjacentLevelBlocks(t *testing.T) {
	b := Build([]Position{{0, 0}, {0, 0}, {0, 0}})

	if got := b.Tile(0).BlockedBy(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("bottom blockedBy = %v, expected [1]", got)
	}
	if got := b.Tile(1).BlockedBy(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("middle blockedBy = %v, expected [2]", got)
	}
}

func TestBuildHalfRowAdjacency(t *testing.T) {
	// The lone tile at (0,7) touches both rows of the neighbouring column.
	b := Build([]Position{{0, 7}, {2, 6}, {2, 8}})

	if got := b.Tile(0).AdjacentRight(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("right = %v, expected [1 2]", got)
	}
	if got := b.Tile(2).AdjacentLeft(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("left = %v, expected [0]", got)
	}
}

func TestIsFreeDefinition(t *testing.T) {
	var positions []Position
	for z := 0; z < 3; z++ {
		for y := z * 2; y < 12-z*2; y += 2 {
			for x := z * 2; x < 16-z*2; x += 2 {
				positions = append(positions, Position{x, y})
			}
		}
	}
	b := Build(positions)
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		for i := 0; i < b.Len(); i++ {
			b.Tile(i).Active = rng.Intn(3) != 0
		}
		for i := 0; i < b.Len(); i++ {
			tl := b.Tile(i)
			blocked := anyActive(b, tl.BlockedBy())
			boxed := anyActive(b, tl.AdjacentLeft()) && anyActive(b, tl.AdjacentRight())
			want := tl.Active && !blocked && !boxed
			if got := b.IsFree(i); got != want {
				t.Fatalf("round %d tile %d: IsFree = %v, expected %v", round, i, got, want)
			}
		}
	}
}

func anyActive(b *Board, ids []int) bool {
	for _, id := range ids {
		if b.Tile(id).Active {
			return true
		}
	}
	return false
}

func TestWire(t *testing.T) {
	b, err := Wire([]Spec{
		{X: 0, Left: []int{1}, Right: []int{1}},
		{X: 2, Left: []int{0}, Right: []int{2}},
		{X: 4, Left: []int{1}},
	})
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}

	if got := b.FreeTiles(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("FreeTiles() = %v, expected [2]", got)
	}

	_, err = Wire([]Spec{{BlockedBy: []int{3}}})
	if !errors.Is(err, ErrBadRelation) {
		t.Errorf("Wire() with bad index: err = %v, expected ErrBadRelation", err)
	}
}

func TestMatchingPairs(t *testing.T) {
	bam := tile.Type{Group: tile.GroupBam, Index: 1}
	num := tile.Type{Group: tile.GroupNum, Index: 1}
	spring := tile.Type{Group: tile.GroupSeason, Index: 0, MatchAny: true}
	summer := tile.Type{Group: tile.GroupSeason, Index: 1, MatchAny: true}

	b := Build([]Position{{0, 0}, {4, 0}, {8, 0}, {12, 0}, {16, 0}})
	if err := b.SetTypes([]tile.Type{bam, num, spring, bam, summer}); err != nil {
		t.Fatalf("SetTypes() failed: %v", err)
	}

	want := []Pair{{0, 3}, {2, 4}}
	if got := b.MatchingPairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("MatchingPairs() = %v, expected %v", got, want)
	}
	if !b.HasLegalMove() {
		t.Error("HasLegalMove() = false, expected true")
	}

	b.Tile(3).Active = false
	b.Tile(4).Active = false
	if b.HasLegalMove() {
		t.Error("HasLegalMove() = true after removing partners")
	}
	if got := b.ActiveCount(); got != 3 {
		t.Errorf("ActiveCount() = %d, expected 3", got)
	}
}

func TestSetTypesLength(t *testing.T) {
	b := Build([]Position{{0, 0}, {2, 0}})
	if err := b.SetTypes(make([]tile.Type, 3)); err == nil {
		t.Error("SetTypes() with wrong length should fail")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Build([]Position{{0, 0}, {2, 0}})
	c := b.Clone()
	c.Tile(0).Active = false

	if !b.Tile(0).Active {
		t.Error("changing the clone should not affect the original")
	}
}

func TestBounds(t *testing.T) {
	b := Build([]Position{{2, 0}, {0, 7}, {28, 7}, {2, 14}})
	r := b.Bounds()
	if r.X != 0 || r.Y != 0 || r.Right() != 30 || r.Bottom() != 16 {
		t.Errorf("Bounds() = %+v", r)
	}
}
