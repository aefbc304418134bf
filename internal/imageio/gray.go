package imageio

import (
	"image"
	"image/color"

	"github.com/ironsheep/greyditor/internal/raster"
)

// Luma weights (ITU-R BT.601), in thousandths.
const (
	weightR = 299
	weightG = 587
	weightB = 114
)

// Luma returns the gray tone of an 8-bit RGB color, truncated toward zero.
// Gray inputs map to themselves.
func Luma(r, g, b uint8) int {
	return (weightR*int(r) + weightG*int(g) + weightB*int(b)) / 1000
}

// ToRaster converts any image to a raster using Luma. Alpha is ignored.
func ToRaster(img image.Image) raster.Raster {
	b := img.Bounds()
	out := make(raster.Raster, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]int, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.NRGBA)
			row[x] = Luma(c.R, c.G, c.B)
		}
		out[y] = row
	}
	return out
}

// ToGray converts a raster to an *image.Gray, clamping tones into [0,255].
// It is the bridge for library filters that only understand image.Image.
func ToGray(r raster.Raster) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, r.Width(), r.Height()))
	for y := range r {
		for x, t := range r[y] {
			g.SetGray(x, y, color.Gray{Y: uint8(raster.ClampTone(t))})
		}
	}
	return g
}

// FromImage writes img back into dst as gray, cell by cell. Gray pixels
// round-trip exactly. Extra pixels on either side are ignored.
func FromImage(dst raster.Raster, img image.Image) {
	b := img.Bounds()
	for y := range dst {
		if y >= b.Dy() {
			return
		}
		for x := range dst[y] {
			if x >= b.Dx() {
				break
			}
			g := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			dst[y][x] = int(g.Y)
		}
	}
}
