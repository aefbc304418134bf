package operation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/selection"
)

// fakeSession answers prompts from a fixed list and records messages.
type fakeSession struct {
	sel      *selection.Selection
	answers  []int
	messages []string
}

func (f *fakeSession) Selection() (selection.Selection, bool) {
	if f.sel == nil {
		return selection.Selection{}, false
	}
	return *f.sel, true
}

func (f *fakeSession) PromptInteger(label string) (int, error) {
	if len(f.answers) == 0 {
		return 0, fmt.Errorf("%s: %w", label, ErrCanceled)
	}
	v := f.answers[0]
	f.answers = f.answers[1:]
	return v, nil
}

func (f *fakeSession) Message(text string) {
	f.messages = append(f.messages, text)
}

func clearOp(r raster.Raster, s Session) (raster.Raster, error) {
	area := selection.Selection{X: 0, Y: 0, Width: r.Width(), Height: r.Height()}
	if sel, ok := s.Selection(); ok {
		area = sel
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			r[y][x] = 255
		}
	}
	return nil, nil
}

func TestInvoke_InPlaceCommit(t *testing.T) {
	base := raster.Raster{{1, 2}, {3, 4}}
	d := NewDispatcher(nil)

	out, err := d.Invoke("Clear", clearOp, base, &fakeSession{})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out.Replaced {
		t.Error("in-place edit should not report a replacement")
	}
	if !raster.Equal(out.Base, raster.Raster{{255, 255}, {255, 255}}) {
		t.Errorf("committed base: got %v, want all 255", out.Base)
	}
	if !raster.Equal(base, raster.Raster{{1, 2}, {3, 4}}) {
		t.Error("Invoke must work on a copy of base")
	}
}

func TestInvoke_Replacement(t *testing.T) {
	square := func(r raster.Raster, s Session) (raster.Raster, error) {
		side, err := s.PromptInteger("Side")
		if err != nil {
			return nil, err
		}
		side = min(side, r.Height(), r.Width())
		out := make(raster.Raster, side)
		for y := range out {
			out[y] = append([]int(nil), r[y][:side]...)
		}
		return out, nil
	}

	base := raster.Raster{{1, 2, 3}, {4, 5, 6}}
	out, err := NewDispatcher(nil).Invoke("Square", square, base, &fakeSession{answers: []int{10}})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !out.Replaced {
		t.Error("expected a replacement")
	}
	if !raster.Equal(out.Base, raster.Raster{{1, 2}, {4, 5}}) {
		t.Errorf("replacement: got %v, want [[1 2] [4 5]]", out.Base)
	}
}

func TestInvoke_ReplacementIsCopied(t *testing.T) {
	var kept raster.Raster
	keep := func(r raster.Raster, _ Session) (raster.Raster, error) {
		kept = raster.Raster{{10, 10}, {10, 10}}
		return kept, nil
	}

	out, err := NewDispatcher(nil).Invoke("Keep", keep, raster.Raster{{1}}, &fakeSession{})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	out.Base[0][0] = 99
	if kept[0][0] != 10 {
		t.Errorf("operation's raster changed with the installed base: %v", kept)
	}
	kept[1][1] = 77
	if out.Base[1][1] != 10 {
		t.Errorf("installed base changed with the operation's raster: %v", out.Base)
	}
}

func TestInvoke_MalformedResultRejected(t *testing.T) {
	tests := []struct {
		name   string
		result raster.Raster
	}{
		{"jagged", raster.Raster{{1, 2}, {3}}},
		{"missing row", raster.Raster{{1}, nil}},
		{"no rows", raster.Raster{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := raster.Raster{{9, 9}, {9, 9}}
			op := func(r raster.Raster, s Session) (raster.Raster, error) {
				r[0][0] = 0
				return tt.result, nil
			}
			_, err := NewDispatcher(nil).Invoke("Bad", op, base, &fakeSession{})
			if !errors.Is(err, ErrMalformedResult) {
				t.Fatalf("got %v, want ErrMalformedResult", err)
			}
			if !errors.Is(err, raster.ErrMalformedRaster) {
				t.Error("error should carry the raster defect")
			}
			if !raster.Equal(base, raster.Raster{{9, 9}, {9, 9}}) {
				t.Errorf("base changed after rejected commit: %v", base)
			}
		})
	}
}

func TestInvoke_CanceledPrompt(t *testing.T) {
	base := raster.Raster{{5}}
	op := func(r raster.Raster, s Session) (raster.Raster, error) {
		r[0][0] = 0
		if _, err := s.PromptInteger("Intensity?"); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err := NewDispatcher(nil).Invoke("Darken area", op, base, &fakeSession{})
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("got %v, want ErrCanceled", err)
	}
	if base[0][0] != 5 {
		t.Errorf("canceled operation changed base: got %d, want 5", base[0][0])
	}
}

func TestInvoke_PanicIsContained(t *testing.T) {
	op := func(r raster.Raster, s Session) (raster.Raster, error) {
		_ = r[10][10]
		return nil, nil
	}
	_, err := NewDispatcher(nil).Invoke("Crash", op, raster.Raster{{1}}, &fakeSession{})
	if !errors.Is(err, ErrPanicked) {
		t.Errorf("got %v, want ErrPanicked", err)
	}
}

func TestInvoke_Reentrant(t *testing.T) {
	d := NewDispatcher(nil)
	var inner error
	op := func(r raster.Raster, s Session) (raster.Raster, error) {
		_, inner = d.Invoke("inner", clearOp, r, s)
		return nil, nil
	}
	if _, err := d.Invoke("outer", op, raster.Raster{{1}}, &fakeSession{}); err != nil {
		t.Fatalf("outer Invoke failed: %v", err)
	}
	if !errors.Is(inner, ErrBusy) {
		t.Errorf("inner Invoke: got %v, want ErrBusy", inner)
	}
	if _, err := d.Invoke("again", clearOp, raster.Raster{{1}}, &fakeSession{}); err != nil {
		t.Errorf("dispatcher should be free after outer returns: %v", err)
	}
}

func TestInvoke_StatefulOperation(t *testing.T) {
	type stepper struct{ next int }
	st := &stepper{next: 1}
	op := func(r raster.Raster, s Session) (raster.Raster, error) {
		if st.next < r.Width() {
			for y := range r {
				r[y][st.next] = 255
			}
		}
		st.next++
		return nil, nil
	}

	d := NewDispatcher(nil)
	base := raster.Raster{{0, 0, 0}}
	for i := 0; i < 2; i++ {
		out, err := d.Invoke("Step", op, base, &fakeSession{})
		if err != nil {
			t.Fatalf("Invoke %d failed: %v", i, err)
		}
		base = out.Base
	}
	if !raster.Equal(base, raster.Raster{{0, 255, 255}}) {
		t.Errorf("after two steps: got %v, want [[0 255 255]]", base)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add("Clear", clearOp); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("Nil", nil); err == nil {
		t.Error("nil operation should be rejected")
	}
	if _, err := reg.Lookup("Clear"); err != nil {
		t.Errorf("Lookup(Clear) failed: %v", err)
	}
	_, err := reg.Lookup("Claer")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("got %v, want ErrUnknownOperation", err)
	}
	if got := err.Error(); got != `unknown operation "Claer" (did you mean "Clear"?)` {
		t.Errorf("error text: got %q", got)
	}
}
