package operation

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/raster"
)

// Outcome is a committed operation result.
type Outcome struct {
	// Base is the raster to install as the new base.
	Base raster.Raster

	// Replaced is true when the operation returned a replacement raster
	// rather than editing its input in place.
	Replaced bool
}

// Dispatcher invokes operations for one session.
//
// It does not lock. A reentrant invocation (an operation triggering another
// on the same dispatcher) is refused with ErrBusy.
type Dispatcher struct {
	log     logrus.FieldLogger
	running bool
}

// NewDispatcher creates a dispatcher. A nil logger discards output.
func NewDispatcher(log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Dispatcher{log: log}
}

// Invoke runs fn against a private copy of base.
//
// On success the returned Outcome holds the raster to install: the
// operation's replacement, copied so the operation keeps no alias, when it
// returned one, otherwise the edited copy.
// The caller is expected to reset its selection and re-render after a
// successful Invoke.
//
// On failure base is untouched and the error is one of:
//   - ErrMalformedResult (wrapping the raster.ErrMalformedRaster detail)
//   - ErrCanceled when a prompt was dismissed
//   - ErrPanicked when fn panicked
//   - ErrBusy when called from inside another invocation
//   - any other error fn returned
func (d *Dispatcher) Invoke(name string, fn Func, base raster.Raster, s Session) (Outcome, error) {
	if d.running {
		return Outcome{}, fmt.Errorf("%s: %w", name, ErrBusy)
	}
	d.running = true
	defer func() { d.running = false }()

	log := d.log.WithField("operation", name)

	work := raster.Clone(base)
	result, err := call(fn, work, s)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			log.Info("operation canceled")
		} else {
			log.WithError(err).Warn("operation failed")
		}
		return Outcome{}, err
	}

	if result == nil {
		log.Debug("operation committed in place")
		return Outcome{Base: work}, nil
	}
	if verr := raster.Validate(result); verr != nil {
		log.WithError(verr).Warn("rejected operation result")
		return Outcome{}, fmt.Errorf("%s: %w: %w", name, ErrMalformedResult, verr)
	}
	log.WithFields(logrus.Fields{
		"width":  result.Width(),
		"height": result.Height(),
	}).Debug("operation replaced base")
	return Outcome{Base: raster.Clone(result), Replaced: true}, nil
}

func call(fn Func, r raster.Raster, s Session) (result raster.Raster, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrPanicked, p)
		}
	}()
	return fn(r, s)
}
