package raster

const (
	// MinTone is the darkest displayable tone (black).
	MinTone = 0

	// MaxTone is the brightest displayable tone (white).
	MaxTone = 255

	// DefaultMaxSide is the largest width or height accepted at ingress.
	DefaultMaxSide = 1000
)

// Raster is a row-major grid of tones indexed r[y][x].
//
// The type does not enforce its own shape; a Raster built by hand may have
// nil or jagged rows. Such rasters are only legal until they reach an ingress
// point, where Validate rejects them.
type Raster [][]int

// New creates a width x height raster filled with tone 0.
//
// Parameters:
//   - width: Number of columns, 1..maxSide.
//   - height: Number of rows, 1..maxSide.
//   - maxSide: Upper bound for either side. Values < 1 select DefaultMaxSide.
//
// Returns a *DimensionError (matching ErrInvalidDimension) when either side
// is outside the allowed range; no raster is created in that case.
func New(width, height, maxSide int) (Raster, error) {
	return Filled(width, height, maxSide, 0)
}

// Filled creates a width x height raster with every cell set to tone.
func Filled(width, height, maxSide, tone int) (Raster, error) {
	if err := CheckDimensions(width, height, maxSide); err != nil {
		return nil, err
	}

	// Rows share one backing array; each row is capped at its own width.
	cells := make([]int, width*height)
	if tone != 0 {
		for i := range cells {
			cells[i] = tone
		}
	}
	r := make(Raster, height)
	for y := 0; y < height; y++ {
		r[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return r, nil
}

// CheckDimensions validates a width/height pair against [1, maxSide].
func CheckDimensions(width, height, maxSide int) error {
	if maxSide < 1 {
		maxSide = DefaultMaxSide
	}
	if width < 1 || height < 1 || width > maxSide || height > maxSide {
		return &DimensionError{Width: width, Height: height, Max: maxSide}
	}
	return nil
}

// Validate returns nil for a well-formed raster, or a *MalformedError
// (matching ErrMalformedRaster) describing the first defect found.
func Validate(r Raster) error {
	if len(r) == 0 {
		return &MalformedError{Row: -1, Reason: "has no rows"}
	}
	width := -1
	for y, row := range r {
		if row == nil {
			return &MalformedError{Row: y, Reason: "is missing"}
		}
		if len(row) == 0 {
			return &MalformedError{Row: y, Reason: "is empty"}
		}
		if width >= 0 && len(row) != width {
			return &MalformedError{Row: y, Reason: "length differs from previous row"}
		}
		width = len(row)
	}
	return nil
}

// IsWellFormed reports whether every row is present and all rows share one
// non-zero length.
func IsWellFormed(r Raster) bool {
	return Validate(r) == nil
}

// Clone returns a deep copy of r. Nil rows stay nil and row lengths are
// preserved, so Clone never repairs a malformed raster.
func Clone(r Raster) Raster {
	if r == nil {
		return nil
	}
	c := make(Raster, len(r))
	for y, row := range r {
		if row == nil {
			continue
		}
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// Width returns the length of the first row, or 0 for an empty raster.
func (r Raster) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Height returns the number of rows.
func (r Raster) Height() int {
	return len(r)
}

// Contains reports whether (x, y) addresses an existing cell.
func (r Raster) Contains(x, y int) bool {
	return y >= 0 && y < len(r) && x >= 0 && x < len(r[y])
}

// ToneAt returns the tone at (x, y).
//
// An *OutOfBoundsError (matching ErrOutOfBounds) is returned when the point
// does not address an existing cell. The grid is never modified.
func (r Raster) ToneAt(x, y int) (int, error) {
	if !r.Contains(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: r.Width(), Height: r.Height()}
	}
	return r[y][x], nil
}

// Set stores tone at (x, y) without clamping.
func (r Raster) Set(x, y, tone int) error {
	if !r.Contains(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Width: r.Width(), Height: r.Height()}
	}
	r[y][x] = tone
	return nil
}

// Equal reports whether a and b have identical shape and tones.
func Equal(a, b Raster) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if (a[y] == nil) != (b[y] == nil) || len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// ValidTone reports whether tone is displayable.
func ValidTone(tone int) bool {
	return tone >= MinTone && tone <= MaxTone
}

// ClampTone constrains tone to [MinTone, MaxTone].
func ClampTone(tone int) int {
	if tone < MinTone {
		return MinTone
	}
	if tone > MaxTone {
		return MaxTone
	}
	return tone
}
