package effect

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/raster"
)

// Compositor derives displayed rasters from a base raster and control state.
//
// Render is deterministic and free of side effects on its input, so it can
// be called on every control change. It holds no locks; callers serialize
// input events per session.
type Compositor struct {
	reg *Registry
	log logrus.FieldLogger
}

// NewCompositor creates a compositor over reg. A nil logger discards output.
func NewCompositor(reg *Registry, log logrus.FieldLogger) *Compositor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Compositor{reg: reg, log: log}
}

// Render returns a fresh raster: a deep copy of base with every effect
// applied in registration order.
//
// A Simple effect applies only while its toggle is on; a Parametric effect
// always applies with its current value. Effect output is not clamped, so
// out-of-range tones survive composition and are flagged at display time.
// base is never modified.
func (c *Compositor) Render(base raster.Raster, b Bindings) raster.Raster {
	out := raster.Clone(base)
	applied := 0
	for _, e := range c.reg.Effects() {
		switch e.Kind() {
		case Simple:
			if !b.Enabled(e.Name()) {
				continue
			}
			e.Apply(out, true, 0)
		case Parametric:
			e.Apply(out, false, b.Value(e.Name()))
		}
		applied++
	}
	c.log.WithFields(logrus.Fields{
		"width":   out.Width(),
		"height":  out.Height(),
		"applied": applied,
	}).Debug("rendered preview")
	return out
}
