// Package presets provides ready-made filters, effects and operations.
//
// The per-pixel filters and the drawing effects follow the classic demo set
// (Invert, Darken, Grid of thirds, Lines). The rest are backed by imaging
// libraries: bild for blur, sharpen, brightness and contrast, and
// disintegration/imaging for geometric operations. Library-backed presets
// work on a gray image, so they see tones clamped into [0, 255].
//
// Every parametric preset is the identity at its default value, so a fresh
// session shows the base raster unchanged.
package presets
