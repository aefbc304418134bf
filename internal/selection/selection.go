package selection

import (
	"fmt"
	"image"
)

// Single is the Width/Height sentinel of a point selection.
const Single = -1

// Selection is a point or rectangle in raster coordinates.
//
// A point selection has Width == Height == Single. A rectangle has
// Width, Height >= 0 and covers columns [X, X+Width) and rows [Y, Y+Height).
type Selection struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point returns a single-point selection at p.
func Point(p image.Point) Selection {
	return Selection{X: p.X, Y: p.Y, Width: Single, Height: Single}
}

// Span returns the normalized rectangle between a and b. The order of the
// two corners does not matter.
func Span(a, b image.Point) Selection {
	return Selection{
		X:      min(a.X, b.X),
		Y:      min(a.Y, b.Y),
		Width:  abs(b.X - a.X),
		Height: abs(b.Y - a.Y),
	}
}

// IsSingle reports whether s is a point selection.
func (s Selection) IsSingle() bool {
	return s.Width == Single && s.Height == Single
}

// Rect returns the covered cells as an image.Rectangle. A point selection
// covers exactly one cell.
func (s Selection) Rect() image.Rectangle {
	if s.IsSingle() {
		return image.Rect(s.X, s.Y, s.X+1, s.Y+1)
	}
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
}

// Clip returns the part of s inside a width x height grid, and false when
// nothing is left.
func (s Selection) Clip(width, height int) (image.Rectangle, bool) {
	r := s.Rect().Intersect(image.Rect(0, 0, width, height))
	return r, !r.Empty()
}

func (s Selection) String() string {
	if s.IsSingle() {
		return fmt.Sprintf("point(%d, %d)", s.X, s.Y)
	}
	return fmt.Sprintf("rect(%d, %d, %dx%d)", s.X, s.Y, s.Width, s.Height)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
