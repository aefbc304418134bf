// Package raster defines the canonical grayscale grid edited by greyditor.
//
// A Raster is a row-major slice of rows of integer tones. Tones are nominally
// in [0, 255] but the package never clamps stored values: out-of-range tones
// are kept as they are and flagged later by the render sink.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X indexes the column (0 to Width-1)
//   - Y indexes the row (0 to Height-1)
//
// Note that the underlying storage is indexed r[y][x].
//
// # Well-formedness
//
// A raster is well-formed when it has at least one row, no row is nil or
// empty, and every row has the same length. Rasters that fail this check are
// rejected (never repaired) wherever they enter the system. Use Validate for
// an error describing the defect, or IsWellFormed for a plain boolean.
//
// # Ownership
//
// Raster is a reference type. Clone returns storage that shares nothing with
// its source, and every component that must not alias a caller's grid takes a
// Clone first.
package raster
