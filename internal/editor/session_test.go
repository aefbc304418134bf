package editor

import (
	"encoding/base64"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/greyditor/internal/effect"
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/selection"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	ed := New(Options{Padding: 20, MaxZoom: 5})
	require.NoError(t, ed.AddFilter("Invert", func(t int) int { return 255 - t }))
	require.NoError(t, ed.AddValueFilter("Darken", func(t, v int) int { return max(0, t-v) }, 0, 255))
	require.NoError(t, ed.AddOperation("Clear", clearOp))
	require.NoError(t, ed.AddOperation("Square", func(r raster.Raster, s operation.Session) (raster.Raster, error) {
		side, err := s.PromptInteger("Side")
		if err != nil {
			return nil, err
		}
		side = min(side, r.Width(), r.Height())
		out := make(raster.Raster, side)
		for y := range out {
			out[y] = append([]int(nil), r[y][:side]...)
		}
		return out, nil
	}))
	require.NoError(t, ed.AddOperation("Jagged", func(raster.Raster, operation.Session) (raster.Raster, error) {
		return raster.Raster{{1, 2}, {3}}, nil
	}))
	require.NoError(t, ed.AddOperation("Fail", func(r raster.Raster, _ operation.Session) (raster.Raster, error) {
		r[0][0] = 1
		return nil, errors.New("disk on fire")
	}))
	return ed
}

func TestSession_ClearWithoutSelection(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.Open(raster.Raster{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.NoError(t, s.Invoke("Clear", IO{}))
	require.Equal(t, raster.Raster{{255, 255, 255}, {255, 255, 255}}, s.Image())
}

func TestSession_EffectsPreview(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.Open(raster.Raster{{100, 30}})
	require.NoError(t, err)

	require.NoError(t, s.SetToggle("Invert", true))
	require.Equal(t, raster.Raster{{155, 225}}, s.Image())
	require.Equal(t, raster.Raster{{100, 30}}, s.Base(), "effects must not touch the base")

	require.NoError(t, s.SetToggle("Invert", false))
	require.NoError(t, s.SetValue("Darken", 50))
	require.Equal(t, raster.Raster{{50, 0}}, s.Image())

	err = s.SetValue("Darken", 300)
	require.ErrorIs(t, err, effect.ErrValueOutOfRange)
	require.Equal(t, raster.Raster{{50, 0}}, s.Image())

	err = s.SetToggle("Invrt", true)
	require.ErrorIs(t, err, effect.ErrUnknownEffect)
	require.Contains(t, err.Error(), `did you mean "Invert"`)

	controls := s.Controls()
	require.Len(t, controls, 2)
	require.Equal(t, "slider", controls[1].Kind)
	require.Equal(t, 50, controls[1].Value)

	require.NoError(t, s.SetToggle("Invert", true))
	s.ResetControls()
	require.Equal(t, raster.Raster{{100, 30}}, s.Image())
	require.False(t, s.Controls()[0].Enabled)
	require.Equal(t, 0, s.Controls()[1].Value)
}

func TestSession_SelectionAndZoom(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.OpenBlank(10, 10)
	require.NoError(t, err)

	require.False(t, s.Zoom(0))
	require.False(t, s.Zoom(6))
	require.True(t, s.Zoom(2))
	require.Equal(t, 2, s.ZoomFactor())

	// Padding 20, zoom 2: view (25, 27) is raster (2, 3).
	state, accepted := s.Click(image.Pt(25, 27))
	require.True(t, accepted)
	require.Equal(t, selection.Pending, state)
	sel, ok := s.Selection()
	require.True(t, ok)
	require.True(t, sel.IsSingle())
	require.Equal(t, 2, sel.X)
	require.Equal(t, 3, sel.Y)

	state, _ = s.Click(image.Pt(21, 35))
	require.Equal(t, selection.Complete, state)
	sel, _ = s.Selection()
	require.Equal(t, selection.Selection{X: 0, Y: 3, Width: 2, Height: 4}, sel)

	state, _ = s.Click(image.Pt(30, 30))
	require.Equal(t, selection.None, state)
	s.Click(image.Pt(22, 22))
	s.ClearSelection()
	_, ok = s.Selection()
	require.False(t, ok)
}

func TestSession_ClickOutsideImageIgnored(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.OpenBlank(4, 4)
	require.NoError(t, err)
	require.True(t, s.Zoom(2))

	// Padding 20, zoom 2: the image covers view [20, 28) on both axes.
	for _, p := range []image.Point{{19, 19}, {20, 19}, {28, 20}, {20, 28}, {0, 0}} {
		state, accepted := s.Click(p)
		require.False(t, accepted, "click at %v", p)
		require.Equal(t, selection.None, state)
	}

	state, accepted := s.Click(image.Pt(27, 27))
	require.True(t, accepted)
	require.Equal(t, selection.Pending, state)

	state, accepted = s.Click(image.Pt(5, 5))
	require.False(t, accepted)
	require.Equal(t, selection.Pending, state, "an ignored click keeps the pending corner")
	sel, _ := s.Selection()
	require.Equal(t, 3, sel.X)
	require.Equal(t, 3, sel.Y)
}

func TestSession_InvokeReplacesBaseAndResetsSelection(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.Open(raster.Raster{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	s.Click(image.Pt(20, 20))

	require.NoError(t, s.Invoke("Square", IO{Prompter: &scripted{ints: []int{2}}}))
	require.Equal(t, raster.Raster{{1, 2}, {4, 5}}, s.Base())
	_, ok := s.Selection()
	require.False(t, ok)
}

func TestSession_InstalledResultIsOwned(t *testing.T) {
	var kept raster.Raster
	ed := New(Options{Padding: 20})
	require.NoError(t, ed.AddOperation("Keep", func(raster.Raster, operation.Session) (raster.Raster, error) {
		kept = raster.Raster{{10, 10}, {10, 10}}
		return kept, nil
	}))
	s, err := ed.OpenBlank(1, 1)
	require.NoError(t, err)
	require.NoError(t, s.Invoke("Keep", IO{}))

	s.Draw(func(c *raster.Canvas) { c.PaintTone(0, 0, 99) })
	require.Equal(t, raster.Raster{{10, 10}, {10, 10}}, kept)

	kept[1][1] = 77
	require.Equal(t, raster.Raster{{99, 10}, {10, 10}}, s.Base())
}

func TestSession_FailedInvokeKeepsState(t *testing.T) {
	tests := []struct {
		name string
		op   string
		io   IO
		want error
	}{
		{"canceled prompt", "Square", IO{}, operation.ErrCanceled},
		{"malformed result", "Jagged", IO{}, operation.ErrMalformedResult},
		{"operation error", "Fail", IO{}, nil},
		{"unknown operation", "Sqaure", IO{}, operation.ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(t)
			s, err := ed.Open(raster.Raster{{9, 9}, {9, 9}})
			require.NoError(t, err)
			s.Click(image.Pt(20, 20))

			err = s.Invoke(tt.op, tt.io)
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}

			require.Equal(t, raster.Raster{{9, 9}, {9, 9}}, s.Base())
			_, ok := s.Selection()
			require.True(t, ok, "selection must survive a failed invocation")
		})
	}
}

func TestSession_Draw(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.OpenBlank(3, 3)
	require.NoError(t, err)
	s.Click(image.Pt(20, 20))

	skipped := s.Draw(func(c *raster.Canvas) {
		for i := 0; i < c.Width(); i++ {
			c.Paint(i, i)
		}
		c.PaintTone(0, 2, 400)
		c.Paint(5, 5)
	})

	require.Equal(t, 1, skipped)
	require.Equal(t, raster.Raster{{255, 0, 0}, {0, 255, 0}, {400, 0, 255}}, s.Image())
	_, ok := s.Selection()
	require.True(t, ok, "drawing keeps the selection")

	probe := s.Hover(image.Pt(20, 22))
	require.True(t, probe.Inside)
	require.Equal(t, "tone: 400", probe.ToneLabel)
	require.False(t, probe.Valid)
}

func TestSession_ToneAndFrame(t *testing.T) {
	ed := newTestEditor(t)
	s, err := ed.Open(raster.Raster{{10, 20}, {30, 40}})
	require.NoError(t, err)

	tone, err := s.Tone(1, 1)
	require.NoError(t, err)
	require.Equal(t, 40, tone)

	_, err = s.Tone(2, 0)
	require.ErrorIs(t, err, raster.ErrOutOfBounds)

	s.Zoom(3)
	frame, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, 2*3+2*20, frame.Width)
	require.Equal(t, 3, frame.Zoom)
	_, err = base64.StdEncoding.DecodeString(frame.ImageBase64)
	require.NoError(t, err)
}
