package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/greyditor/internal/raster"
)

// Hex strings of the fixed view colors.
const (
	SentinelHex   = "#FF0000"
	OverlayHex    = "#00FFFF"
	BackgroundHex = "#EEEEEE"
	LabelHex      = "#333333"
)

var (
	// Sentinel marks cells that cannot be displayed.
	Sentinel = mustHex(SentinelHex)

	// Overlay is the selection outline color.
	Overlay = mustHex(OverlayHex)

	// Background fills the padding around the image.
	Background = mustHex(BackgroundHex)

	// LabelColor draws the size caption in the top padding.
	LabelColor = mustHex(LabelHex)

	palette = buildPalette()
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad color %q: %v", s, err))
	}
	return toRGBA(c)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	for i := range p {
		v := float64(i) / 255.0
		p[i] = toRGBA(colorful.Color{R: v, G: v, B: v})
	}
	return p
}

// ToneColor returns the display color of tone and whether the tone is valid.
// Invalid tones return Sentinel.
func ToneColor(tone int) (color.RGBA, bool) {
	if !raster.ValidTone(tone) {
		return Sentinel, false
	}
	return palette[tone], true
}

// Hex formats a color as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// LabelForeground returns the text color that stays readable on a tone
// swatch: white on dark tones (below 128), black otherwise.
func LabelForeground(tone int) color.RGBA {
	if tone < 128 {
		return palette[raster.MaxTone]
	}
	return palette[raster.MinTone]
}
