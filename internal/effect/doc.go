// Package effect implements live-preview composition.
//
// An Effect is a named raster transform in one of two variants:
//
//   - Simple effects take no parameter and apply only while their toggle is on.
//   - Parametric effects always apply and receive the current integer value
//     of their slider, bounded by [Min, Max].
//
// Filters are per-pixel conveniences that wrap a tone function into an
// Effect. They are only called for tones in [0, 255]; other tones pass
// through untouched.
//
// Effects are registered once in a Registry, whose order is the application
// order. Each session owns a Controls value holding its toggles and slider
// values, and Compositor.Render derives the displayed raster from a base
// raster without ever modifying it.
package effect
