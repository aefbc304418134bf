package effect

import (
	"errors"
	"fmt"

	"github.com/ironsheep/greyditor/internal/raster"
)

var (
	// ErrUnknownEffect reports a control lookup for an unregistered effect.
	ErrUnknownEffect = errors.New("unknown effect")

	// ErrInvalidRange reports a parametric effect with an unusable range.
	ErrInvalidRange = errors.New("invalid effect range")

	// ErrKindMismatch reports a toggle on a parametric effect or a value on a
	// simple one.
	ErrKindMismatch = errors.New("control does not match effect kind")

	// ErrValueOutOfRange reports a slider value outside [Min, Max].
	ErrValueOutOfRange = errors.New("control value out of range")

	// ErrNilFunc reports a registration without a transform.
	ErrNilFunc = errors.New("effect function must not be nil")
)

// Kind tags the Effect variant.
type Kind int

const (
	// Simple effects are gated by a toggle.
	Simple Kind = iota
	// Parametric effects always apply with a ranged integer value.
	Parametric
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "toggle"
	case Parametric:
		return "slider"
	default:
		return "unknown"
	}
}

// SimpleFunc transforms a raster in place.
type SimpleFunc func(r raster.Raster)

// ParametricFunc transforms a raster in place using value.
type ParametricFunc func(r raster.Raster, value int)

// FilterFunc maps one tone to another.
type FilterFunc func(tone int) int

// ValueFilterFunc maps one tone to another using value.
type ValueFilterFunc func(tone, value int) int

// Effect is an immutable, named transform. Build one with NewSimple,
// NewParametric, NewFilter or NewValueFilter.
type Effect struct {
	name   string
	kind   Kind
	min    int
	max    int
	simple SimpleFunc
	param  ParametricFunc
}

// NewSimple creates a toggle-gated effect.
func NewSimple(name string, fn SimpleFunc) (Effect, error) {
	if fn == nil {
		return Effect{}, fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	return Effect{name: name, kind: Simple, simple: fn}, nil
}

// NewParametric creates a slider-driven effect with values in [min, max].
//
// min must not exceed max, and the empty range min == max == 0 is reserved
// for toggle-only effects.
func NewParametric(name string, fn ParametricFunc, min, max int) (Effect, error) {
	if fn == nil {
		return Effect{}, fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	if min > max {
		return Effect{}, fmt.Errorf("%w: %q min %d > max %d", ErrInvalidRange, name, min, max)
	}
	if min == 0 && max == 0 {
		return Effect{}, fmt.Errorf("%w: %q range [0,0] is reserved for toggles", ErrInvalidRange, name)
	}
	return Effect{name: name, kind: Parametric, min: min, max: max, param: fn}, nil
}

// NewFilter wraps a per-pixel tone function into a Simple effect.
func NewFilter(name string, fn FilterFunc) (Effect, error) {
	if fn == nil {
		return Effect{}, fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	return NewSimple(name, func(r raster.Raster) {
		eachValidTone(r, fn)
	})
}

// NewValueFilter wraps a per-pixel tone function into a Parametric effect.
func NewValueFilter(name string, fn ValueFilterFunc, min, max int) (Effect, error) {
	if fn == nil {
		return Effect{}, fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	return NewParametric(name, func(r raster.Raster, value int) {
		eachValidTone(r, func(t int) int { return fn(t, value) })
	}, min, max)
}

// eachValidTone replaces every displayable tone with fn(tone). Out-of-range
// tones and missing rows are left as they are.
func eachValidTone(r raster.Raster, fn FilterFunc) {
	for y := range r {
		row := r[y]
		for x := range row {
			if raster.ValidTone(row[x]) {
				row[x] = fn(row[x])
			}
		}
	}
}

// Name returns the display name.
func (e Effect) Name() string { return e.name }

// Kind returns the variant tag.
func (e Effect) Kind() Kind { return e.kind }

// Range returns the slider bounds. Simple effects report [0, 0].
func (e Effect) Range() (min, max int) { return e.min, e.max }

// Default returns the initial control value: 0 clamped into the range.
func (e Effect) Default() int {
	switch {
	case 0 < e.min:
		return e.min
	case 0 > e.max:
		return e.max
	default:
		return 0
	}
}

// Apply runs the transform on r with the given control state.
func (e Effect) Apply(r raster.Raster, enabled bool, value int) {
	switch e.kind {
	case Simple:
		if enabled && e.simple != nil {
			e.simple(r)
		}
	case Parametric:
		if e.param != nil {
			e.param(r, value)
		}
	}
}
