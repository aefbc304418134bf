package render

import (
	"fmt"
	"image"

	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/selection"
)

// ProbeResult describes the cell under a view-space point.
type ProbeResult struct {
	// Inside is false when the point is outside the scaled image; all other
	// fields are then zero.
	Inside bool `json:"inside"`

	// X and Y are raster coordinates.
	X int `json:"x"`
	Y int `json:"y"`

	// Tone is the stored tone. It is nil for a missing row or a cell past
	// the end of a short row.
	Tone *int `json:"tone,omitempty"`

	// Valid reports whether the tone is displayable.
	Valid bool `json:"valid"`

	// PointLabel reads "x: X  y: Y".
	PointLabel string `json:"point_label"`

	// ToneLabel reads "tone: T", or names the axis that is off the grid.
	ToneLabel string `json:"tone_label"`

	// Background is the swatch color, Foreground the readable text color.
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Probe inspects the displayed raster under view-space point p.
//
// The image area is taken from the first row's length and the row count.
// A missing row reports "tone: y = Y is null" and a short row reports
// "tone: x = X is off", both on the Sentinel swatch. Out-of-range tones
// keep their numeric label but also use the Sentinel swatch.
func Probe(r raster.Raster, p image.Point, vp selection.Viewport) ProbeResult {
	if !vp.Contains(p, r.Width(), r.Height()) {
		return ProbeResult{}
	}
	c := vp.ToRaster(p)
	res := ProbeResult{
		Inside:     true,
		X:          c.X,
		Y:          c.Y,
		PointLabel: fmt.Sprintf("x: %d  y: %d", c.X, c.Y),
		Background: Hex(Sentinel),
		Foreground: Hex(LabelForeground(raster.MaxTone)),
	}

	row := r[c.Y]
	switch {
	case row == nil:
		res.ToneLabel = fmt.Sprintf("tone: y = %d is null", c.Y)
		return res
	case c.X >= len(row):
		res.ToneLabel = fmt.Sprintf("tone: x = %d is off", c.X)
		return res
	}

	tone := row[c.X]
	bg, valid := ToneColor(tone)
	res.Tone = &tone
	res.Valid = valid
	res.ToneLabel = fmt.Sprintf("tone: %d", tone)
	res.Background = Hex(bg)
	res.Foreground = Hex(LabelForeground(tone))
	return res
}
