// Package selection models region selection over a raster.
//
// A selection is captured with discrete clicks driving a three-state machine:
//
//	None --click(p)--> Pending(p) --click(q)--> Complete(p, q) --click--> None
//
// Pending exposes a single-point Selection (Width == Height == -1) and
// Complete exposes the normalized rectangle spanned by both clicks. Capture
// itself is zoom-agnostic and works in raster space; Viewport converts
// view-space clicks (border padding plus integer zoom) into raster space by
// subtracting the padding and then dividing by the zoom factor.
package selection
