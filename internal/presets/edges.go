package presets

import (
	"math"

	"github.com/ironsheep/greyditor/internal/raster"
)

// Edges replaces r with a Canny edge map: edge cells become white, the
// rest black.
//
// threshold is the strong-edge gradient (0-255); cells between half of it
// and threshold are kept only next to a strong edge. A threshold of 0 or
// less leaves r untouched.
func Edges(r raster.Raster, threshold int) {
	width, height := r.Width(), r.Height()
	if threshold <= 0 || width == 0 || height == 0 {
		return
	}

	levels := make([][]float64, height)
	for y := range levels {
		levels[y] = make([]float64, width)
		for x := 0; x < width && x < len(r[y]); x++ {
			levels[y][x] = float64(raster.ClampTone(r[y][x])) / raster.MaxTone
		}
	}

	magnitude, direction := sobel(smooth(levels, width, height), width, height)
	thin := suppress(magnitude, direction, width, height)

	high := float64(threshold) / raster.MaxTone
	low := high / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width && x < len(r[y]); x++ {
			v := thin[y][x]
			edge := v >= high || (v >= low && strongNeighbor(thin, x, y, width, height, high))
			if edge {
				r[y][x] = raster.MaxTone
			} else {
				r[y][x] = raster.MinTone
			}
		}
	}
}

// smoothKernel is a 5x5 Gaussian (sigma about 1.4) summing to 273.
var smoothKernel = [5][5]float64{
	{1, 4, 7, 4, 1},
	{4, 16, 26, 16, 4},
	{7, 26, 41, 26, 7},
	{4, 16, 26, 16, 4},
	{1, 4, 7, 4, 1},
}

// smooth blurs levels with smoothKernel, replicating border cells.
func smooth(levels [][]float64, width, height int) [][]float64 {
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					sum += levels[clamp(y+ky, 0, height-1)][clamp(x+kx, 0, width-1)] * smoothKernel[ky+2][kx+2]
				}
			}
			out[y][x] = sum / 273
		}
	}
	return out
}

// sobel returns the gradient magnitude and direction of every cell.
func sobel(levels [][]float64, width, height int) (magnitude, direction [][]float64) {
	kx := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	ky := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	magnitude = make([][]float64, height)
	direction = make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := levels[clamp(y+dy, 0, height-1)][clamp(x+dx, 0, width-1)]
					gx += v * kx[dy+1][dx+1]
					gy += v * ky[dy+1][dx+1]
				}
			}
			magnitude[y][x] = math.Hypot(gx, gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// suppress keeps only local maxima along the gradient direction. Border
// cells are always dropped.
func suppress(magnitude, direction [][]float64, width, height int) [][]float64 {
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			a := direction[y][x]
			var n1, n2 float64
			switch {
			case (a >= -math.Pi/8 && a < math.Pi/8) || a >= 7*math.Pi/8 || a < -7*math.Pi/8:
				n1, n2 = magnitude[y][x-1], magnitude[y][x+1]
			case (a >= math.Pi/8 && a < 3*math.Pi/8) || (a >= -7*math.Pi/8 && a < -5*math.Pi/8):
				n1, n2 = magnitude[y-1][x+1], magnitude[y+1][x-1]
			case (a >= 3*math.Pi/8 && a < 5*math.Pi/8) || (a >= -5*math.Pi/8 && a < -3*math.Pi/8):
				n1, n2 = magnitude[y-1][x], magnitude[y+1][x]
			default:
				n1, n2 = magnitude[y-1][x-1], magnitude[y+1][x+1]
			}
			if m := magnitude[y][x]; m >= n1 && m >= n2 {
				out[y][x] = m
			}
		}
	}
	return out
}

func strongNeighbor(thin [][]float64, x, y, width, height int, high float64) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if thin[clamp(y+dy, 0, height-1)][clamp(x+dx, 0, width-1)] >= high {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
