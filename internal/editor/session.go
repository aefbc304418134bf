package editor

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/effect"
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/render"
	"github.com/ironsheep/greyditor/internal/selection"
)

// Session is one open raster with its own controls, selection and zoom.
type Session struct {
	id     string
	serial int
	source string
	ed     *Editor
	log    logrus.FieldLogger

	base       raster.Raster
	displayed  raster.Raster
	controls   *effect.Controls
	compositor *effect.Compositor
	dispatcher *operation.Dispatcher
	capture    selection.Capture
	zoom       int
}

func newSession(ed *Editor, id, source string, base raster.Raster) *Session {
	log := ed.opts.Log.WithField("session", id)
	s := &Session{
		id:         id,
		serial:     ed.opened,
		source:     source,
		ed:         ed,
		log:        log,
		base:       base,
		controls:   effect.NewControls(ed.effects),
		compositor: effect.NewCompositor(ed.effects, log),
		dispatcher: operation.NewDispatcher(log),
		zoom:       1,
	}
	s.refresh()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Title returns the window title: the editor title and the image source.
func (s *Session) Title() string {
	return fmt.Sprintf("%s - %s", s.ed.opts.Title, s.source)
}

// Info describes the session.
func (s *Session) Info() Info {
	return Info{
		ID:     s.id,
		Title:  s.Title(),
		Source: s.source,
		Width:  s.base.Width(),
		Height: s.base.Height(),
		Serial: s.serial,
	}
}

func (s *Session) refresh() {
	s.displayed = s.compositor.Render(s.base, s.controls)
}

// Base returns a copy of the base raster.
func (s *Session) Base() raster.Raster {
	return raster.Clone(s.base)
}

// Image returns a copy of the displayed raster: the base with every active
// effect applied.
func (s *Session) Image() raster.Raster {
	return raster.Clone(s.displayed)
}

// Controls describes every effect control.
func (s *Session) Controls() []effect.Control {
	return s.controls.List()
}

// SetToggle switches a toggle effect and refreshes the preview.
func (s *Session) SetToggle(name string, on bool) error {
	if err := s.controls.SetToggle(name, on); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"effect": name, "enabled": on}).Debug("toggle changed")
	s.refresh()
	return nil
}

// SetValue moves a slider and refreshes the preview. Values outside the
// effect's range are rejected and leave the preview unchanged.
func (s *Session) SetValue(name string, value int) error {
	if err := s.controls.SetValue(name, value); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"effect": name, "value": value}).Debug("slider changed")
	s.refresh()
	return nil
}

// ResetControls turns every toggle off and every slider back to its default.
func (s *Session) ResetControls() {
	s.controls.Reset()
	s.log.Debug("controls reset")
	s.refresh()
}

// Viewport returns the current view layout.
func (s *Session) Viewport() selection.Viewport {
	return selection.Viewport{Padding: s.ed.opts.Padding, Zoom: s.zoom}
}

// Zoom sets the zoom factor. Factors outside 1..MaxZoom are ignored and
// false is returned.
func (s *Session) Zoom(factor int) bool {
	if factor < 1 || factor > s.ed.opts.MaxZoom {
		return false
	}
	s.zoom = factor
	return true
}

// ZoomFactor returns the current zoom factor.
func (s *Session) ZoomFactor() int { return s.zoom }

// Click feeds a view-space click into the selection. Clicks on the padding
// or past the scaled image are ignored and report false.
func (s *Session) Click(p image.Point) (selection.State, bool) {
	vp := s.Viewport()
	if !vp.Contains(p, s.base.Width(), s.base.Height()) {
		s.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("click outside image ignored")
		return s.capture.State(), false
	}
	return s.capture.ClickView(p, vp), true
}

// ClearSelection drops the selection.
func (s *Session) ClearSelection() {
	s.capture.Reset()
}

// Selection returns the selection in raster space.
func (s *Session) Selection() (selection.Selection, bool) {
	return s.capture.Selection()
}

// SelectionState returns the phase of the two-click selection.
func (s *Session) SelectionState() selection.State {
	return s.capture.State()
}

// Hover probes the displayed raster under a view-space point.
func (s *Session) Hover(p image.Point) render.ProbeResult {
	return render.Probe(s.displayed, p, s.Viewport())
}

// Tone returns the displayed tone at raster coordinates (x, y).
func (s *Session) Tone(x, y int) (int, error) {
	return s.displayed.ToneAt(x, y)
}

// Frame renders the view: the displayed raster zoomed and padded, with the
// selection overlay and size caption.
func (s *Session) Frame() (*render.FrameResult, error) {
	sel, ok := s.capture.Selection()
	return render.Encode(s.displayed, render.Options{
		Viewport:     s.Viewport(),
		Selection:    sel,
		HasSelection: ok,
		Caption:      true,
	})
}

// Draw paints directly on the base raster and refreshes the preview. The
// selection is kept. It returns the number of paints skipped for falling
// outside the raster.
func (s *Session) Draw(fn func(c *raster.Canvas)) int {
	c := raster.NewCanvas(s.base, s.log)
	fn(c)
	s.refresh()
	return c.Skipped()
}

// Save writes the displayed raster to path as PNG.
func (s *Session) Save(path string) error {
	return s.ed.store.Save(s.displayed, path)
}

// Invoke runs the named operation.
//
// On success the base raster is replaced, the selection is cleared and the
// preview refreshed. On any error (unknown name, canceled prompt, failed or
// malformed result) the base raster and selection are left as they were.
func (s *Session) Invoke(name string, io IO) error {
	fn, err := s.ed.ops.Lookup(name)
	if err != nil {
		return err
	}

	inv := &invocation{session: s, io: io}
	out, err := s.dispatcher.Invoke(name, fn, s.base, inv)
	if err != nil {
		return err
	}

	s.base = out.Base
	s.capture.Reset()
	s.refresh()
	s.log.WithFields(logrus.Fields{
		"operation": name,
		"replaced":  out.Replaced,
		"width":     s.base.Width(),
		"height":    s.base.Height(),
	}).Info("operation committed")
	return nil
}

// invocation is the operation.Session handed to a running operation.
type invocation struct {
	session *Session
	io      IO
}

func (inv *invocation) Selection() (selection.Selection, bool) {
	return inv.session.capture.Selection()
}

func (inv *invocation) PromptInteger(label string) (int, error) {
	if inv.io.Prompter == nil {
		return 0, fmt.Errorf("%s: %w", label, operation.ErrCanceled)
	}
	return inv.io.Prompter.PromptInteger(label)
}

func (inv *invocation) Confirm(question string) (bool, error) {
	if inv.io.Prompter == nil {
		return false, fmt.Errorf("%s: %w", question, operation.ErrCanceled)
	}
	return inv.io.Prompter.Confirm(question)
}

func (inv *invocation) Message(text string) {
	inv.session.log.WithField("message", text).Debug("operation message")
	if inv.io.Prompter != nil {
		inv.io.Prompter.Message(text)
	}
}
