package raster

import "testing"

func TestCanvas_Paint(t *testing.T) {
	r := Raster{{0, 0}, {0, 0}}
	c := NewCanvas(r, nil)

	if c.Tone() != DefaultPaintTone {
		t.Errorf("default tone: got %d, want %d", c.Tone(), DefaultPaintTone)
	}

	c.Paint(0, 0)
	c.SetTone(42)
	c.Paint(1, 1)

	if r[0][0] != 255 || r[1][1] != 42 {
		t.Errorf("painted tones: got %d and %d, want 255 and 42", r[0][0], r[1][1])
	}
}

func TestCanvas_SetToneClamps(t *testing.T) {
	c := NewCanvas(Raster{{0}}, nil)

	c.SetTone(400)
	if c.Tone() != 255 {
		t.Errorf("SetTone(400): got %d, want 255", c.Tone())
	}
	c.SetTone(-3)
	if c.Tone() != 0 {
		t.Errorf("SetTone(-3): got %d, want 0", c.Tone())
	}
}

func TestCanvas_OutOfBoundsIsSkipped(t *testing.T) {
	r := Raster{{1, 2}, {3, 4}}
	c := NewCanvas(r, nil)

	c.Paint(-1, 0)
	c.Paint(0, 2)
	c.PaintTone(5, 5, 9)

	if c.Skipped() != 3 {
		t.Errorf("Skipped: got %d, want 3", c.Skipped())
	}
	if !Equal(r, Raster{{1, 2}, {3, 4}}) {
		t.Error("out-of-bounds paints must not modify the grid")
	}
}

func TestCanvas_PaintToneStoresRawValue(t *testing.T) {
	r := Raster{{0}}
	NewCanvas(r, nil).PaintTone(0, 0, -20)
	if r[0][0] != -20 {
		t.Errorf("PaintTone should store raw tone: got %d, want -20", r[0][0])
	}
}
