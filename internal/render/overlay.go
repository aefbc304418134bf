package render

import (
	"image"
	"image/color"

	"github.com/ironsheep/greyditor/internal/selection"
)

const (
	lineWidth = 2
	dashOn    = 10
	dashOff   = 5

	glyphWidth  = 4
	glyphHeight = 5
)

// drawSelection outlines sel on frame. A point selection is drawn as a
// lineWidth x lineWidth dot centered on the clicked cell's corner; a
// rectangle as a dashed outline around the covered cells.
func drawSelection(frame *image.NRGBA, sel selection.Selection, vp selection.Viewport) {
	origin := vp.ToView(image.Pt(sel.X, sel.Y))
	if sel.IsSingle() {
		for dy := 0; dy < lineWidth; dy++ {
			for dx := 0; dx < lineWidth; dx++ {
				setClipped(frame, origin.X-lineWidth/2+dx, origin.Y-lineWidth/2+dy, Overlay)
			}
		}
		return
	}

	w := sel.Width * vp.Zoom
	h := sel.Height * vp.Zoom
	x0, y0 := origin.X, origin.Y
	x1, y1 := x0+w, y0+h

	// Horizontal edges
	for i := 0; i <= w; i++ {
		if !dashed(i) {
			continue
		}
		for t := 0; t < lineWidth; t++ {
			setClipped(frame, x0+i, y0+t, Overlay)
			setClipped(frame, x0+i, y1-t, Overlay)
		}
	}

	// Vertical edges
	for i := 0; i <= h; i++ {
		if !dashed(i) {
			continue
		}
		for t := 0; t < lineWidth; t++ {
			setClipped(frame, x0+t, y0+i, Overlay)
			setClipped(frame, x1-t, y0+i, Overlay)
		}
	}
}

// dashed reports whether position i along an edge is inside a dash.
func dashed(i int) bool {
	return i%(dashOn+dashOff) < dashOn
}

func setClipped(img *image.NRGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// glyphs is a 3x5 pixel font covering the size caption.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'x': {"000", "101", "010", "101", "000"},
}

// drawLabel draws text at (x, y) in the 3x5 font. Unknown runes, including
// spaces, advance the pen without drawing. Pixels outside img are skipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg color.RGBA) {
	if y < 0 {
		return
	}
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += glyphWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += glyphWidth
	}
}
