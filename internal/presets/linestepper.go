package presets

import (
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
)

// LineStep is the distance between consecutive LineStepper lines.
const LineStep = 20

// LineStepper draws white lines that advance on every invocation. Its state
// survives between invocations and is shared by every session it is
// registered with.
type LineStepper struct {
	vstep    int
	hstep    int
	vertical bool
}

// NewLineStepper returns a stepper with both lines at LineStep, starting
// with a vertical line.
func NewLineStepper() *LineStepper {
	ls := &LineStepper{}
	ls.reset()
	return ls
}

func (ls *LineStepper) reset() {
	ls.vstep = LineStep
	ls.hstep = LineStep
	ls.vertical = true
}

// Vertical draws the next vertical line. The column advances even when it
// has moved past the right edge.
func (ls *LineStepper) Vertical(r raster.Raster, _ operation.Session) (raster.Raster, error) {
	if ls.vstep < r.Width() {
		for y := range r {
			r[y][ls.vstep] = raster.MaxTone
		}
	}
	ls.vstep += LineStep
	return nil, nil
}

// Horizontal draws the next horizontal line. The row only advances while
// it is inside the image.
func (ls *LineStepper) Horizontal(r raster.Raster, _ operation.Session) (raster.Raster, error) {
	if ls.hstep < r.Height() {
		for x := range r[ls.hstep] {
			r[ls.hstep][x] = raster.MaxTone
		}
		ls.hstep += LineStep
	}
	return nil, nil
}

// Alternate draws a vertical and a horizontal line in turn.
func (ls *LineStepper) Alternate(r raster.Raster, s operation.Session) (raster.Raster, error) {
	var err error
	if ls.vertical {
		_, err = ls.Vertical(r, s)
	} else {
		_, err = ls.Horizontal(r, s)
	}
	ls.vertical = !ls.vertical
	return nil, err
}

// Reset moves both lines back to their first position.
func (ls *LineStepper) Reset(_ raster.Raster, _ operation.Session) (raster.Raster, error) {
	ls.reset()
	return nil, nil
}
