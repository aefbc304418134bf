package selection

import "image"

// State is the phase of a Capture.
type State int

const (
	// None means nothing is selected.
	None State = iota
	// Pending means one corner has been clicked.
	Pending
	// Complete means both corners have been clicked.
	Complete
)

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Pending:
		return "pending"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Viewport describes how raster cells are laid out on screen: a fixed border
// of Padding pixels and an integer Zoom factor applied to each cell.
type Viewport struct {
	Padding int
	Zoom    int
}

// ToRaster maps a view-space point to raster space.
//
// The padding is subtracted first and the result is then divided by the zoom
// factor, truncating toward zero, so any point inside a scaled cell maps to
// that cell. A zoom below 1 is treated as 1.
func (v Viewport) ToRaster(p image.Point) image.Point {
	z := v.zoom()
	return image.Point{X: (p.X - v.Padding) / z, Y: (p.Y - v.Padding) / z}
}

// ToView returns the view-space top-left corner of raster cell p.
func (v Viewport) ToView(p image.Point) image.Point {
	z := v.zoom()
	return image.Point{X: p.X*z + v.Padding, Y: p.Y*z + v.Padding}
}

// Contains reports whether view-space point p falls on a cell of a
// width x height raster.
func (v Viewport) Contains(p image.Point, width, height int) bool {
	z := v.zoom()
	return p.X >= v.Padding && p.Y >= v.Padding &&
		p.X < width*z+v.Padding && p.Y < height*z+v.Padding
}

func (v Viewport) zoom() int {
	if v.Zoom < 1 {
		return 1
	}
	return v.Zoom
}

// Capture is the two-click selection state machine. The zero value is an
// empty capture ready for use.
//
// Capture is not safe for concurrent use; callers serialize input events.
type Capture struct {
	state    State
	from, to image.Point
}

// Click feeds a raster-space point into the machine and returns the new state.
func (c *Capture) Click(p image.Point) State {
	switch c.state {
	case None:
		c.from = p
		c.state = Pending
	case Pending:
		c.to = p
		c.state = Complete
	default:
		c.Reset()
	}
	return c.state
}

// ClickView translates a view-space point through vp and feeds it to Click.
func (c *Capture) ClickView(p image.Point, vp Viewport) State {
	return c.Click(vp.ToRaster(p))
}

// Reset returns the machine to None.
func (c *Capture) Reset() {
	c.state = None
	c.from = image.Point{}
	c.to = image.Point{}
}

// State returns the current phase.
func (c *Capture) State() State {
	return c.state
}

// Selection returns the current selection in raster space, and false when
// nothing is selected.
func (c *Capture) Selection() (Selection, bool) {
	switch c.state {
	case Pending:
		return Point(c.from), true
	case Complete:
		return Span(c.from, c.to), true
	default:
		return Selection{}, false
	}
}
