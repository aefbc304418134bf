package presets

import (
	"errors"

	"github.com/ironsheep/greyditor/internal/effect"
	"github.com/ironsheep/greyditor/internal/operation"
)

// Registrar is the registration surface presets are installed on.
type Registrar interface {
	AddFilter(name string, fn effect.FilterFunc) error
	AddValueFilter(name string, fn effect.ValueFilterFunc, min, max int) error
	AddEffect(name string, fn effect.SimpleFunc) error
	AddValueEffect(name string, fn effect.ParametricFunc, min, max int) error
	AddOperation(name string, fn operation.Func) error
}

// RegisterFilters installs the per-pixel filters.
func RegisterFilters(reg Registrar) error {
	return errors.Join(
		reg.AddFilter("Invert", Invert),
		reg.AddValueFilter("Darken", Darken, 0, 255),
		reg.AddValueFilter("Lighten", Lighten, 0, 255),
	)
}

// RegisterEffects installs the whole-raster effects.
func RegisterEffects(reg Registrar) error {
	return errors.Join(
		reg.AddEffect("Grid", Grid),
		reg.AddValueEffect("Lines", Lines, 0, 50),
		reg.AddValueEffect("Blur", Blur, 0, 10),
		reg.AddEffect("Sharpen", Sharpen),
		reg.AddValueEffect("Brightness", Brightness, -100, 100),
		reg.AddValueEffect("Contrast", Contrast, -100, 100),
		reg.AddValueEffect("Edges", Edges, 0, 255),
	)
}

// RegisterOperations installs the stock operations, including a fresh
// LineStepper. maxSide bounds the result of Scale.
func RegisterOperations(reg Registrar, maxSide int) error {
	ls := NewLineStepper()
	return errors.Join(
		reg.AddOperation("Clear", Clear),
		reg.AddOperation("Square", Square),
		reg.AddOperation("Darken area", DarkenArea),
		reg.AddOperation("Crop to selection", Crop),
		reg.AddOperation("Flip horizontal", FlipHorizontal),
		reg.AddOperation("Flip vertical", FlipVertical),
		reg.AddOperation("Rotate 90", Rotate),
		reg.AddOperation("Scale", Scale(maxSide)),
		reg.AddOperation("Statistics", Statistics),
		reg.AddOperation("Vertical line", ls.Vertical),
		reg.AddOperation("Horizontal line", ls.Horizontal),
		reg.AddOperation("Alternate line", ls.Alternate),
		reg.AddOperation("Reset lines", ls.Reset),
	)
}

// RegisterAll installs filters, effects and operations, in that order.
func RegisterAll(reg Registrar, maxSide int) error {
	return errors.Join(
		RegisterFilters(reg),
		RegisterEffects(reg),
		RegisterOperations(reg, maxSide),
	)
}
