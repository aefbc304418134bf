package effect

import (
	"github.com/ironsheep/greyditor/internal/ordered"
)

// Registry holds effects in registration order, which is also the order the
// Compositor applies them in.
type Registry struct {
	effects ordered.Map[Effect]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers e. Names are unique.
func (r *Registry) Add(e Effect) error {
	return r.effects.Add(e.Name(), e)
}

// AddFilter registers a per-pixel toggle filter.
func (r *Registry) AddFilter(name string, fn FilterFunc) error {
	e, err := NewFilter(name, fn)
	if err != nil {
		return err
	}
	return r.Add(e)
}

// AddValueFilter registers a per-pixel slider filter.
func (r *Registry) AddValueFilter(name string, fn ValueFilterFunc, min, max int) error {
	e, err := NewValueFilter(name, fn, min, max)
	if err != nil {
		return err
	}
	return r.Add(e)
}

// AddEffect registers a whole-raster toggle effect.
func (r *Registry) AddEffect(name string, fn SimpleFunc) error {
	e, err := NewSimple(name, fn)
	if err != nil {
		return err
	}
	return r.Add(e)
}

// AddValueEffect registers a whole-raster slider effect.
func (r *Registry) AddValueEffect(name string, fn ParametricFunc, min, max int) error {
	e, err := NewParametric(name, fn, min, max)
	if err != nil {
		return err
	}
	return r.Add(e)
}

// Lookup returns the effect registered under name. Unknown names yield an
// *ordered.UnknownError matching ErrUnknownEffect.
func (r *Registry) Lookup(name string) (Effect, error) {
	e, ok := r.effects.Get(name)
	if !ok {
		return Effect{}, ordered.NewUnknownError(ErrUnknownEffect, "effect", name, r.effects.Suggest(name))
	}
	return e, nil
}

// Effects returns all effects in application order.
func (r *Registry) Effects() []Effect {
	return r.effects.Values()
}

// Len returns the number of registered effects.
func (r *Registry) Len() int {
	return r.effects.Len()
}
