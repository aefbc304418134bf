package operation

import (
	"errors"
	"fmt"

	"github.com/ironsheep/greyditor/internal/ordered"
	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/selection"
)

var (
	// ErrMalformedResult reports a replacement raster with missing or jagged rows.
	ErrMalformedResult = errors.New("operation returned a malformed raster")

	// ErrCanceled reports that the user dismissed a prompt.
	ErrCanceled = errors.New("canceled")

	// ErrUnknownOperation reports an invocation of an unregistered name.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrBusy reports an invocation while another one is still running.
	ErrBusy = errors.New("another operation is running")

	// ErrPanicked reports an operation that panicked.
	ErrPanicked = errors.New("operation panicked")
)

// Session is the handle an operation uses to talk to its editing session.
type Session interface {
	// Selection returns the active selection in raster space, and false when
	// nothing is selected.
	Selection() (selection.Selection, bool)

	// PromptInteger asks the user for an integer. It returns ErrCanceled
	// (possibly wrapped) when the prompt is dismissed.
	PromptInteger(label string) (int, error)

	// Message shows text to the user.
	Message(text string)
}

// Func is an operation body.
//
// Returning a nil raster means "no replacement": whatever the operation did
// to r in place is committed. Returning a non-nil raster replaces the base
// with it. Returning an error discards all changes.
//
// Operations may keep their own mutable state between invocations; the
// dispatcher only guarantees that invocations on one session do not overlap.
type Func func(r raster.Raster, s Session) (raster.Raster, error)

// Registry holds operations in registration order. Order only affects
// presentation.
type Registry struct {
	ops ordered.Map[Func]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers fn under name.
func (r *Registry) Add(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("operation %q: function must not be nil", name)
	}
	return r.ops.Add(name, fn)
}

// Lookup returns the operation registered under name. Unknown names yield an
// *ordered.UnknownError matching ErrUnknownOperation.
func (r *Registry) Lookup(name string) (Func, error) {
	fn, ok := r.ops.Get(name)
	if !ok {
		return nil, ordered.NewUnknownError(ErrUnknownOperation, "operation", name, r.ops.Suggest(name))
	}
	return fn, nil
}

// Names returns operation names in registration order.
func (r *Registry) Names() []string {
	return r.ops.Names()
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return r.ops.Len()
}
