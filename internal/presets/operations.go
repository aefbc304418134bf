package presets

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/greyditor/internal/imageio"
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
)

// Messages shown by the stock operations.
const (
	MsgClearAll       = "whole image will get white!"
	MsgClearSelection = "selection will get white!"
	MsgSelectArea     = "Please select an area of the image."
)

// ErrInvalidInput reports a prompted value the operation cannot use.
var ErrInvalidInput = errors.New("invalid input")

// area returns the cells an operation should touch: the selection clipped
// to r, or all of r when nothing is selected. ok is false when a selection
// exists but lies entirely outside r.
func area(r raster.Raster, s operation.Session) (rect image.Rectangle, selected, ok bool) {
	whole := image.Rect(0, 0, r.Width(), r.Height())
	sel, has := s.Selection()
	if !has {
		return whole, false, true
	}
	rect, ok = sel.Clip(r.Width(), r.Height())
	return rect, true, ok
}

// Clear paints the selection white, or the whole image when nothing is
// selected. A single clicked corner is not an area yet and paints nothing.
func Clear(r raster.Raster, s operation.Session) (raster.Raster, error) {
	rect, selected, ok := area(r, s)
	if selected {
		s.Message(MsgClearSelection)
	} else {
		s.Message(MsgClearAll)
	}
	if sel, _ := s.Selection(); !ok || (selected && sel.IsSingle()) {
		return nil, nil
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r[y][x] = raster.MaxTone
		}
	}
	return nil, nil
}

// Square replaces the image with its top-left corner. The side is prompted
// and limited to the shorter image side.
func Square(r raster.Raster, s operation.Session) (raster.Raster, error) {
	side, err := s.PromptInteger("Side")
	if err != nil {
		return nil, err
	}
	side = min(side, r.Width(), r.Height())
	if side < 1 {
		return nil, fmt.Errorf("%w: side must be at least 1", ErrInvalidInput)
	}

	out := make(raster.Raster, side)
	for y := range out {
		out[y] = make([]int, side)
		copy(out[y], r[y][:side])
	}
	return out, nil
}

// DarkenArea lowers the selected tones by a prompted intensity.
func DarkenArea(r raster.Raster, s operation.Session) (raster.Raster, error) {
	rect, selected, ok := area(r, s)
	if !selected {
		s.Message(MsgSelectArea)
		return nil, nil
	}
	factor, err := s.PromptInteger("Intensity?")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r[y][x] = Darken(r[y][x], factor)
		}
	}
	return nil, nil
}

// Crop replaces the image with the selected rectangle.
func Crop(r raster.Raster, s operation.Session) (raster.Raster, error) {
	rect, selected, ok := area(r, s)
	if !selected || !ok {
		s.Message(MsgSelectArea)
		return nil, nil
	}
	return imageio.ToRaster(imaging.Crop(imageio.ToGray(r), rect)), nil
}

// FlipHorizontal mirrors the image left to right.
func FlipHorizontal(r raster.Raster, _ operation.Session) (raster.Raster, error) {
	return imageio.ToRaster(imaging.FlipH(imageio.ToGray(r))), nil
}

// FlipVertical mirrors the image top to bottom.
func FlipVertical(r raster.Raster, _ operation.Session) (raster.Raster, error) {
	return imageio.ToRaster(imaging.FlipV(imageio.ToGray(r))), nil
}

// Rotate turns the image 90 degrees counter-clockwise.
func Rotate(r raster.Raster, _ operation.Session) (raster.Raster, error) {
	return imageio.ToRaster(imaging.Rotate90(imageio.ToGray(r))), nil
}

// Scale returns an operation that resizes the image by a prompted
// percentage. Results larger than maxSide on either side are rejected.
func Scale(maxSide int) operation.Func {
	return func(r raster.Raster, s operation.Session) (raster.Raster, error) {
		percent, err := s.PromptInteger("Percent?")
		if err != nil {
			return nil, err
		}
		if percent < 1 {
			return nil, fmt.Errorf("%w: percent must be at least 1, got %d", ErrInvalidInput, percent)
		}

		width := max(1, r.Width()*percent/100)
		height := max(1, r.Height()*percent/100)
		if err := raster.CheckDimensions(width, height, maxSide); err != nil {
			return nil, err
		}
		return imageio.ToRaster(imaging.Resize(imageio.ToGray(r), width, height, imaging.Lanczos)), nil
	}
}

// Stats summarizes the tones of a region.
type Stats struct {
	Min   int
	Max   int
	Mean  float64
	Cells int
}

func (st Stats) String() string {
	return fmt.Sprintf("min: %d  max: %d  mean: %.2f  cells: %d", st.Min, st.Max, st.Mean, st.Cells)
}

// Measure computes Stats over rect.
func Measure(r raster.Raster, rect image.Rectangle) Stats {
	var st Stats
	var sum int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := r[y][x]
			if st.Cells == 0 {
				st.Min, st.Max = t, t
			}
			st.Min = min(st.Min, t)
			st.Max = max(st.Max, t)
			sum += t
			st.Cells++
		}
	}
	if st.Cells == 0 {
		return st
	}
	st.Mean = float64(sum) / float64(st.Cells)
	return st
}

// Statistics reports the tone range and mean of the selection, or of the
// whole image, as a message. The image is not changed.
func Statistics(r raster.Raster, s operation.Session) (raster.Raster, error) {
	rect, _, ok := area(r, s)
	if !ok {
		s.Message(MsgSelectArea)
		return nil, nil
	}
	s.Message(Measure(r, rect).String())
	return nil, nil
}
