package imageio

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/greyditor/internal/raster"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    int
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"gray", 100, 100, 100, 100},
		{"red", 255, 0, 0, 76},
		{"green", 0, 255, 0, 149},
		{"blue", 0, 0, 255, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Luma(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestToRaster_HonorsBoundsOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 7, 6))
	img.SetGray(5, 5, color.Gray{Y: 10})
	img.SetGray(6, 5, color.Gray{Y: 20})

	r := ToRaster(img)
	if !raster.Equal(r, raster.Raster{{10, 20}}) {
		t.Errorf("ToRaster: got %v, want [[10 20]]", r)
	}
}

func TestToGray_Clamps(t *testing.T) {
	g := ToGray(raster.Raster{{-10, 128, 999}})

	want := []uint8{0, 128, 255}
	for x, w := range want {
		if got := g.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestFromImage(t *testing.T) {
	dst := raster.Raster{{0, 0, 0}, {0, 0, 0}}
	src := image.NewGray(image.Rect(0, 0, 2, 3))
	src.SetGray(0, 0, color.Gray{Y: 7})
	src.SetGray(1, 1, color.Gray{Y: 200})
	src.SetGray(0, 2, color.Gray{Y: 50})

	FromImage(dst, src)

	want := raster.Raster{{7, 0, 0}, {0, 200, 0}}
	if !raster.Equal(dst, want) {
		t.Errorf("FromImage: got %v, want %v", dst, want)
	}
}
