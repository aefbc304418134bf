package effect

import (
	"fmt"
)

// Bindings exposes the control state the Compositor reads. It is never
// written through this interface.
type Bindings interface {
	Enabled(name string) bool
	Value(name string) int
}

// Control describes one effect control for display.
type Control struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Enabled bool   `json:"enabled,omitempty"`
	Value   int    `json:"value"`
}

// Controls is the per-session state of every registered effect: a toggle
// per Simple effect and a bounded value per Parametric effect.
//
// Controls is not safe for concurrent use.
type Controls struct {
	reg     *Registry
	toggles map[string]bool
	values  map[string]int
}

// NewControls creates controls for every effect in reg, with toggles off and
// values at their defaults.
func NewControls(reg *Registry) *Controls {
	c := &Controls{
		reg:     reg,
		toggles: make(map[string]bool),
		values:  make(map[string]int),
	}
	for _, e := range reg.Effects() {
		if e.Kind() == Parametric {
			c.values[e.Name()] = e.Default()
		}
	}
	return c
}

// SetToggle switches a Simple effect on or off.
func (c *Controls) SetToggle(name string, on bool) error {
	e, err := c.reg.Lookup(name)
	if err != nil {
		return err
	}
	if e.Kind() != Simple {
		return fmt.Errorf("%w: %q is a %s", ErrKindMismatch, name, e.Kind())
	}
	c.toggles[name] = on
	return nil
}

// SetValue sets the slider of a Parametric effect. Values outside the
// effect's range are rejected and the previous value is kept.
func (c *Controls) SetValue(name string, value int) error {
	e, err := c.reg.Lookup(name)
	if err != nil {
		return err
	}
	if e.Kind() != Parametric {
		return fmt.Errorf("%w: %q is a %s", ErrKindMismatch, name, e.Kind())
	}
	lo, hi := e.Range()
	if value < lo || value > hi {
		return fmt.Errorf("%w: %q accepts %d..%d, got %d", ErrValueOutOfRange, name, lo, hi, value)
	}
	c.values[name] = value
	return nil
}

// Enabled reports the toggle of a Simple effect.
func (c *Controls) Enabled(name string) bool {
	return c.toggles[name]
}

// Value reports the slider value of a Parametric effect.
func (c *Controls) Value(name string) int {
	return c.values[name]
}

// Reset turns every toggle off and every slider back to its default.
func (c *Controls) Reset() {
	for k := range c.toggles {
		delete(c.toggles, k)
	}
	for _, e := range c.reg.Effects() {
		if e.Kind() == Parametric {
			c.values[e.Name()] = e.Default()
		}
	}
}

// List describes all controls in registration order.
func (c *Controls) List() []Control {
	effects := c.reg.Effects()
	out := make([]Control, 0, len(effects))
	for _, e := range effects {
		lo, hi := e.Range()
		out = append(out, Control{
			Name:    e.Name(),
			Kind:    e.Kind().String(),
			Min:     lo,
			Max:     hi,
			Enabled: c.Enabled(e.Name()),
			Value:   c.Value(e.Name()),
		})
	}
	return out
}
