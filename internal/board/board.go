// Package board holds the tile arena of a solitaire layout: where each tile
// sits, which tiles block it, and which tiles sit beside it.
//
// Tiles live in a flat slice and refer to each other by index. Relations are
// computed once when the board is built and never change afterwards; only the
// per-tile flags (Active, Selected, Hinted) and faces are mutated during play.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// ErrBadRelation is returned by Wire when a relation points outside the board.
var ErrBadRelation = errors.New("board: relation index out of range")

// Position is a tile anchor on the layout grid. Height is derived when the
// board is built.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Tile is one slot of the arena.
type Tile struct {
	ID       int
	X, Y, Z  int
	Type     tile.Type
	Active   bool
	Selected bool
	Hinted   bool

	blockedBy []int
	left      []int
	right     []int
}

// BlockedBy returns the tiles lying directly on top of this one.
func (t *Tile) BlockedBy() []int { return t.blockedBy }

// AdjacentLeft returns the tiles touching this one on its left side.
func (t *Tile) AdjacentLeft() []int { return t.left }

// AdjacentRight returns the tiles touching this one on its right side.
func (t *Tile) AdjacentRight() []int { return t.right }

// Footprint returns the grid area the tile covers.
func (t *Tile) Footprint() core.Rect {
	return core.Footprint(t.X, t.Y)
}

// Board is the arena of tiles for one game.
type Board struct {
	tiles []Tile
}

// Build places tiles in the given order and derives their relations.
//
// A tile's height is one more than the highest earlier tile whose footprint it
// overlaps, so the order of positions decides stacking. Relations:
//   - A blocks B when A is exactly one level above B and their footprints overlap.
//   - A is left of B when both share a level, their rows overlap and A.X+2 == B.X.
//
// All tiles start active. Building is O(N^2) and happens once per game.
func Build(positions []Position) *Board {
	b := &Board{tiles: make([]Tile, len(positions))}

	for i, p := range positions {
		z := 0
		fp := core.Footprint(p.X, p.Y)
		for j := 0; j < i; j++ {
			prev := &b.tiles[j]
			if prev.Z+1 > z && fp.Intersects(prev.Footprint()) {
				z = prev.Z + 1
			}
		}
		b.tiles[i] = Tile{ID: i, X: p.X, Y: p.Y, Z: z, Active: true}
	}

	for i := range b.tiles {
		a := &b.tiles[i]
		for j := i + 1; j < len(b.tiles); j++ {
			c := &b.tiles[j]
			b.relate(a, c)
		}
	}
	return b
}

// relate records every relation between two distinct tiles, in both directions.
func (b *Board) relate(a, c *Tile) {
	switch {
	case a.Z == c.Z+1 && a.Footprint().Intersects(c.Footprint()):
		c.blockedBy = append(c.blockedBy, a.ID)
	case c.Z == a.Z+1 && c.Footprint().Intersects(a.Footprint()):
		a.blockedBy = append(a.blockedBy, c.ID)
	case a.Z == c.Z && a.Footprint().SpansY(c.Footprint()):
		if a.X+core.TileSize == c.X {
			c.left = append(c.left, a.ID)
			a.right = append(a.right, c.ID)
		} else if c.X+core.TileSize == a.X {
			a.left = append(a.left, c.ID)
			c.right = append(c.right, a.ID)
		}
	}
}

// Spec describes a tile with explicit relations for Wire.
type Spec struct {
	X, Y, Z   int
	Type      tile.Type
	BlockedBy []int
	Left      []int
	Right     []int
}

// Wire builds a board from explicit relations instead of deriving them from
// geometry. Relations are taken exactly as given.
func Wire(specs []Spec) (*Board, error) {
	b := &Board{tiles: make([]Tile, len(specs))}
	for i, s := range specs {
		for _, rel := range [][]int{s.BlockedBy, s.Left, s.Right} {
			for _, id := range rel {
				if id < 0 || id >= len(specs) || id == i {
					return nil, fmt.Errorf("%w: tile %d refers to %d", ErrBadRelation, i, id)
				}
			}
		}
		b.tiles[i] = Tile{
			ID:        i,
			X:         s.X,
			Y:         s.Y,
			Z:         s.Z,
			Type:      s.Type,
			Active:    true,
			blockedBy: append([]int(nil), s.BlockedBy...),
			left:      append([]int(nil), s.Left...),
			right:     append([]int(nil), s.Right...),
		}
	}
	return b, nil
}

// Len returns the number of tiles, active or not.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tile returns the tile with the given id, or nil if out of range.
func (b *Board) Tile(id int) *Tile {
	if id < 0 || id >= len(b.tiles) {
		return nil
	}
	return &b.tiles[id]
}

// Tiles returns a copy of all tiles in id order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Clone returns an independent copy of the board. Relation slices are shared
// because they never change after construction.
func (b *Board) Clone() *Board {
	return &Board{tiles: b.Tiles()}
}

// Positions returns the anchor of every tile in id order.
func (b *Board) Positions() []Position {
	out := make([]Position, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = Position{X: t.X, Y: t.Y}
	}
	return out
}

// Bounds returns the grid area covered by all tiles, active or not.
func (b *Board) Bounds() core.Rect {
	var r core.Rect
	for i := range b.tiles {
		r = r.Union(b.tiles[i].Footprint())
	}
	return r
}

// SetTypes assigns faces in id order. It returns an error if the count differs
// from the number of tiles.
func (b *Board) SetTypes(types []tile.Type) error {
	if len(types) != len(b.tiles) {
		return fmt.Errorf("board: %d types for %d tiles", len(types), len(b.tiles))
	}
	for i := range b.tiles {
		b.tiles[i].Type = types[i]
	}
	return nil
}

// ClearSelection unselects every tile.
func (b *Board) ClearSelection() {
	for i := range b.tiles {
		b.tiles[i].Selected = false
	}
}

// ClearHints removes every hint mark.
func (b *Board) ClearHints() {
	for i := range b.tiles {
		b.tiles[i].Hinted = false
	}
}
