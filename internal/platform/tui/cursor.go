package tui

import (
	"sort"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/core"
)

// The cursor only ever rests on free tiles.

// readingOrder sorts tile ids top to bottom, then left to right. Upper layers
// come first on the same spot.
func readingOrder(tiles []board.Tile, ids []int) []int {
	out := append([]int(nil), ids...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := tiles[out[i]], tiles[out[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Z != b.Z {
			return a.Z > b.Z
		}
		return a.ID < b.ID
	})
	return out
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// settleCursor keeps cur when it is free and otherwise moves to the first free
// tile. It returns -1 when nothing is free.
func settleCursor(tiles []board.Tile, free []int, cur int) int {
	if contains(free, cur) {
		return cur
	}
	if len(free) == 0 {
		return -1
	}
	return readingOrder(tiles, free)[0]
}

// cycleCursor steps through the free tiles in reading order.
func cycleCursor(tiles []board.Tile, free []int, cur, step int) int {
	if len(free) == 0 {
		return -1
	}
	order := readingOrder(tiles, free)
	for i, id := range order {
		if id == cur {
			n := len(order)
			return order[((i+step)%n+n)%n]
		}
	}
	return order[0]
}

// moveCursor picks the nearest free tile in direction (dx, dy). Tiles off the
// axis of movement count double. The cursor stays put if nothing lies that
// way.
func moveCursor(tiles []board.Tile, free []int, cur, dx, dy int) int {
	if !contains(free, cur) {
		return settleCursor(tiles, free, cur)
	}

	from := tiles[cur]
	best, bestScore := cur, 0
	for _, id := range free {
		if id == cur {
			continue
		}
		t := tiles[id]
		ddx, ddy := t.X-from.X, t.Y-from.Y
		along := ddx*dx + ddy*dy
		if along <= 0 {
			continue
		}
		off := core.Abs(ddx*dy) + core.Abs(ddy*dx)
		score := along + 2*off
		if best == cur || score < bestScore || (score == bestScore && id < best) {
			best, bestScore = id, score
		}
	}
	return best
}
