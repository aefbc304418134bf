package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/selection"
)

// Image converts r into an unscaled RGBA image, one pixel per cell.
//
// The image is as wide as the longest row. Missing rows, cells past the end
// of a short row and out-of-range tones are drawn with Sentinel.
func Image(r raster.Raster) *image.RGBA {
	width := 0
	for _, row := range r {
		width = max(width, len(row))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, len(r)))
	for y := 0; y < len(r); y++ {
		row := r[y]
		for x := 0; x < width; x++ {
			if x >= len(row) {
				img.SetRGBA(x, y, Sentinel)
				continue
			}
			c, _ := ToneColor(row[x])
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Options controls frame layout.
type Options struct {
	// Viewport gives the border padding and zoom factor.
	Viewport selection.Viewport

	// Selection is drawn on top of the image when HasSelection is set.
	Selection    selection.Selection
	HasSelection bool

	// Caption draws "W x H" in the top padding when there is room.
	Caption bool
}

// Frame renders r the way the editor view shows it: scaled by the zoom
// factor, surrounded by padding, with the selection overlay on top.
func Frame(r raster.Raster, opts Options) *image.NRGBA {
	vp := opts.Viewport
	if vp.Zoom < 1 {
		vp.Zoom = 1
	}
	if vp.Padding < 0 {
		vp.Padding = 0
	}

	src := Image(r)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	var scaled image.Image = src
	if vp.Zoom > 1 && w > 0 && h > 0 {
		scaled = imaging.Resize(src, w*vp.Zoom, h*vp.Zoom, imaging.NearestNeighbor)
	}

	frame := imaging.New(w*vp.Zoom+2*vp.Padding, h*vp.Zoom+2*vp.Padding, Background)
	frame = imaging.Paste(frame, scaled, image.Pt(vp.Padding, vp.Padding))

	if opts.HasSelection {
		drawSelection(frame, opts.Selection, vp)
	}
	if opts.Caption && vp.Padding >= glyphHeight+2 {
		drawLabel(frame, vp.Padding, (vp.Padding-glyphHeight)/2, fmt.Sprintf("%d x %d", w, h), LabelColor)
	}
	return frame
}

// FrameResult contains an encoded frame.
type FrameResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Zoom        int    `json:"zoom"`
	Padding     int    `json:"padding"`
}

// Encode renders a frame and returns it as a base64 PNG.
func Encode(r raster.Raster, opts Options) (*FrameResult, error) {
	frame := Frame(r, opts)

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	zoom := max(opts.Viewport.Zoom, 1)
	return &FrameResult{
		Width:       frame.Bounds().Dx(),
		Height:      frame.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Zoom:        zoom,
		Padding:     max(opts.Viewport.Padding, 0),
	}, nil
}
