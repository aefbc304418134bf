package presets

import "github.com/ironsheep/greyditor/internal/raster"

// Invert mirrors a tone around the middle of the range.
func Invert(tone int) int {
	return raster.MaxTone - tone
}

// Darken lowers a tone by intensity, stopping at black.
func Darken(tone, intensity int) int {
	return max(raster.MinTone, tone-intensity)
}

// Lighten raises a tone by intensity, stopping at white.
func Lighten(tone, intensity int) int {
	return min(raster.MaxTone, tone+intensity)
}
