package raster

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultPaintTone is the tone a fresh Canvas paints with.
const DefaultPaintTone = MaxTone

// Canvas is a paint surface over a raster.
//
// Paint calls outside the grid are logged and skipped; they never abort the
// caller or modify the grid. PaintTone stores its argument unchanged, so
// callers may deliberately write out-of-range tones that the render sink
// will flag.
type Canvas struct {
	r    Raster
	tone int
	log  logrus.FieldLogger

	skipped int
}

// NewCanvas wraps r. A nil logger discards diagnostics.
func NewCanvas(r Raster, log logrus.FieldLogger) *Canvas {
	if log == nil {
		log = discardLogger()
	}
	return &Canvas{r: r, tone: DefaultPaintTone, log: log}
}

// Width returns the raster width.
func (c *Canvas) Width() int { return c.r.Width() }

// Height returns the raster height.
func (c *Canvas) Height() int { return c.r.Height() }

// Tone returns the current paint tone.
func (c *Canvas) Tone() int { return c.tone }

// SetTone sets the tone used by Paint. Values outside [0,255] are clamped
// and reported.
func (c *Canvas) SetTone(tone int) {
	clamped := ClampTone(tone)
	if clamped != tone {
		c.log.WithFields(logrus.Fields{
			"tone": tone,
			"set":  clamped,
		}).Warn("invalid tone")
	}
	c.tone = clamped
}

// Paint sets (x, y) to the current tone.
func (c *Canvas) Paint(x, y int) {
	c.PaintTone(x, y, c.tone)
}

// PaintTone sets (x, y) to tone.
func (c *Canvas) PaintTone(x, y, tone int) {
	if err := c.r.Set(x, y, tone); err != nil {
		c.skipped++
		c.log.WithFields(logrus.Fields{
			"x": x,
			"y": y,
		}).Warn("invalid point")
	}
}

// Skipped returns how many paint calls fell outside the grid.
func (c *Canvas) Skipped() int { return c.skipped }

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
