// Package core provides the grid geometry and screen primitives shared by the
// solitaire packages. It has no external dependencies (especially no Bubble
// Tea) so rules code stays pure and testable.
package core

// TileSize is the edge length of a tile footprint in grid units.
// Every tile covers a TileSize x TileSize square.
const TileSize = 2

// Rect is an axis-aligned box on the layout grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Footprint returns the area covered by a tile anchored at (x, y).
func Footprint(x, y int) Rect {
	return Rect{X: x, Y: y, W: TileSize, H: TileSize}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// SpansY reports whether the vertical extents of both rectangles overlap.
func (r Rect) SpansY(other Rect) bool {
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and other.
// An empty rectangle (zero width and height) is treated as absent.
func (r Rect) Union(other Rect) Rect {
	if r.W == 0 && r.H == 0 {
		return other
	}
	if other.W == 0 && other.H == 0 {
		return r
	}
	x := Min(r.X, other.X)
	y := Min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: Max(r.Right(), other.Right()) - x,
		H: Max(r.Bottom(), other.Bottom()) - y,
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
