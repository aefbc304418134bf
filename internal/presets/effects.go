package presets

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/greyditor/internal/imageio"
	"github.com/ironsheep/greyditor/internal/raster"
)

const (
	// GridTone is the tone of the grid-of-thirds lines.
	GridTone = 200

	// LineTone is the tone of the Lines effect.
	LineTone = 0
)

// Grid draws a grid of thirds.
func Grid(r raster.Raster) {
	width, height := r.Width(), r.Height()
	hspace := (width + 2) / 3
	vspace := (height + 2) / 3
	if hspace < 1 || vspace < 1 {
		return
	}

	for y := vspace; y < height; y += vspace {
		for x := range r[y] {
			r[y][x] = GridTone
		}
	}
	for x := hspace; x < width; x += hspace {
		for y := range r {
			if x < len(r[y]) {
				r[y][x] = GridTone
			}
		}
	}
}

// Lines draws a horizontal line every spacing rows, starting at row 0.
// A spacing of 0 or less draws nothing.
func Lines(r raster.Raster, spacing int) {
	if spacing <= 0 {
		return
	}
	for y := 0; y < len(r); y += spacing {
		for x := range r[y] {
			r[y][x] = LineTone
		}
	}
}

// Blur applies a Gaussian blur with the given radius.
func Blur(r raster.Raster, radius int) {
	if radius <= 0 {
		return
	}
	throughImage(r, func(img image.Image) image.Image {
		return blur.Gaussian(img, float64(radius))
	})
}

// Sharpen applies a 3x3 sharpening kernel.
func Sharpen(r raster.Raster) {
	throughImage(r, func(img image.Image) image.Image {
		return effect.Sharpen(img)
	})
}

// Brightness shifts tones by percent of the full range, -100..100.
func Brightness(r raster.Raster, percent int) {
	if percent == 0 {
		return
	}
	throughImage(r, func(img image.Image) image.Image {
		return adjust.Brightness(img, float64(percent)/100)
	})
}

// Contrast stretches (positive) or flattens (negative) tones around the
// middle gray by percent, -100..100.
func Contrast(r raster.Raster, percent int) {
	if percent == 0 {
		return
	}
	throughImage(r, func(img image.Image) image.Image {
		return adjust.Contrast(img, float64(percent)/100)
	})
}

// throughImage runs fn on a gray copy of r and writes the result back.
func throughImage(r raster.Raster, fn func(image.Image) image.Image) {
	if r.Width() == 0 || r.Height() == 0 {
		return
	}
	imageio.FromImage(r, fn(imageio.ToGray(r)))
}
