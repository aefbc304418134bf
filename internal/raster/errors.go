package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRaster reports a raster with missing or jagged rows.
	ErrMalformedRaster = errors.New("malformed raster")

	// ErrOutOfBounds reports a read or paint outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrInvalidDimension reports a zero, negative or oversized side.
	ErrInvalidDimension = errors.New("invalid raster dimension")
)

// OutOfBoundsError describes an access outside [0,Width)x[0,Height).
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: invalid point %d, %d (raster is %dx%d)", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// MalformedError describes the first defect found in a raster.
type MalformedError struct {
	// Row is the index of the offending row, or -1 when the raster has no rows.
	Row    int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed raster: %s", e.Reason)
	}
	return fmt.Sprintf("malformed raster: row %d %s", e.Row, e.Reason)
}

// Is reports whether target is ErrMalformedRaster.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedRaster
}

// DimensionError describes a rejected width/height pair.
type DimensionError struct {
	Width, Height int
	Max           int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimensions: %d x %d (allowed 1..%d per side)", e.Width, e.Height, e.Max)
}

// Is reports whether target is ErrInvalidDimension.
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}
