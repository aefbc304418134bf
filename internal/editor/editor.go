package editor

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/effect"
	"github.com/ironsheep/greyditor/internal/imageio"
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
)

var (
	// ErrUnknownSession reports a session id that is not open.
	ErrUnknownSession = errors.New("unknown session")

	// ErrRegistrationClosed reports an effect or operation added after the
	// first session was opened.
	ErrRegistrationClosed = errors.New("registration closed: sessions have been opened")
)

// Default view settings.
const (
	DefaultTitle   = "Greyditor"
	DefaultMaxZoom = 5
)

// Options configures an Editor.
type Options struct {
	// Title prefixes every session title.
	Title string

	// Padding is the view border in pixels. Zero draws no border and
	// negative values are treated as zero.
	Padding int

	// MaxZoom is the largest zoom factor, >= 1.
	MaxZoom int

	// MaxSide bounds the width and height of opened rasters.
	MaxSide int

	// Log receives editor and session events. Nil discards them.
	Log logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.MaxZoom < 1 {
		o.MaxZoom = DefaultMaxZoom
	}
	if o.MaxSide < 1 {
		o.MaxSide = raster.DefaultMaxSide
	}
	if o.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Log = l
	}
	return o
}

// Editor holds the shared effect and operation registries and the set of
// open sessions.
//
// Registration methods must be called before the first session is opened.
// All Editor methods are safe for concurrent use.
type Editor struct {
	opts  Options
	log   logrus.FieldLogger
	store *imageio.Store

	effects *effect.Registry
	ops     *operation.Registry

	mu           sync.Mutex
	frozen       bool
	sessions     map[string]*Session
	opened       int
	onLastClosed func()
}

// New creates an editor with no effects, operations or sessions.
func New(opts Options) *Editor {
	opts = opts.withDefaults()
	return &Editor{
		opts:     opts,
		log:      opts.Log.WithField("editor", opts.Title),
		store:    imageio.NewStore(opts.MaxSide, opts.Log),
		effects:  effect.NewRegistry(),
		ops:      operation.NewRegistry(),
		sessions: make(map[string]*Session),
	}
}

// Title returns the editor title.
func (e *Editor) Title() string { return e.opts.Title }

// Options returns the effective options.
func (e *Editor) Options() Options { return e.opts }

// Store returns the raster store used for loading and saving.
func (e *Editor) Store() *imageio.Store { return e.store }

func (e *Editor) register(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.frozen {
		return ErrRegistrationClosed
	}
	return fn()
}

// AddFilter registers a per-pixel toggle filter.
func (e *Editor) AddFilter(name string, fn effect.FilterFunc) error {
	return e.register(func() error { return e.effects.AddFilter(name, fn) })
}

// AddValueFilter registers a per-pixel slider filter over [min, max].
func (e *Editor) AddValueFilter(name string, fn effect.ValueFilterFunc, min, max int) error {
	return e.register(func() error { return e.effects.AddValueFilter(name, fn, min, max) })
}

// AddEffect registers a whole-raster toggle effect.
func (e *Editor) AddEffect(name string, fn effect.SimpleFunc) error {
	return e.register(func() error { return e.effects.AddEffect(name, fn) })
}

// AddValueEffect registers a whole-raster slider effect over [min, max].
func (e *Editor) AddValueEffect(name string, fn effect.ParametricFunc, min, max int) error {
	return e.register(func() error { return e.effects.AddValueEffect(name, fn, min, max) })
}

// AddOperation registers an operation.
func (e *Editor) AddOperation(name string, fn operation.Func) error {
	return e.register(func() error { return e.ops.Add(name, fn) })
}

// Effects returns the registered effects in application order.
func (e *Editor) Effects() []effect.Effect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effects.Effects()
}

// Operations returns the registered operation names in order.
func (e *Editor) Operations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ops.Names()
}

// OnLastClosed sets a hook run every time closing a session leaves none
// open. It runs on the goroutine that called Close, after the decoded-image
// cache has been dropped.
func (e *Editor) OnLastClosed(fn func()) {
	e.mu.Lock()
	e.onLastClosed = fn
	e.mu.Unlock()
}

// Open starts a session on a copy of r.
//
// r must be well-formed and within MaxSide; otherwise the error matches
// raster.ErrMalformedRaster or raster.ErrInvalidDimension.
func (e *Editor) Open(r raster.Raster) (*Session, error) {
	return e.open(raster.Clone(r), "untitled")
}

// OpenFile starts a session on the image at path.
func (e *Editor) OpenFile(path string) (*Session, error) {
	r, err := e.store.Load(path)
	if err != nil {
		return nil, err
	}
	return e.open(r, filepath.Base(path))
}

// OpenBlank starts a session on a black width x height raster.
func (e *Editor) OpenBlank(width, height int) (*Session, error) {
	r, err := raster.New(width, height, e.opts.MaxSide)
	if err != nil {
		return nil, err
	}
	return e.open(r, fmt.Sprintf("blank %dx%d", width, height))
}

func (e *Editor) open(r raster.Raster, source string) (*Session, error) {
	if err := raster.Validate(r); err != nil {
		return nil, err
	}
	if err := raster.CheckDimensions(r.Width(), r.Height(), e.opts.MaxSide); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.frozen = true
	e.opened++
	id := uuid.NewString()
	s := newSession(e, id, source, r)
	e.sessions[id] = s
	e.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"source": source,
		"width":  r.Width(),
		"height": r.Height(),
	}).Info("session opened")
	return s, nil
}

// Session returns the open session with the given id.
func (e *Editor) Session(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return s, nil
}

// Info describes an open session.
type Info struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Serial int    `json:"serial"`
}

// Sessions lists the open sessions in the order they were opened.
func (e *Editor) Sessions() []Info {
	e.mu.Lock()
	list := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		list = append(list, s)
	}
	e.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].serial < list[j].serial })
	out := make([]Info, 0, len(list))
	for _, s := range list {
		out = append(out, s.Info())
	}
	return out
}

// Close ends a session. When it was the last one open, the OnLastClosed
// hook runs.
func (e *Editor) Close(id string) error {
	e.mu.Lock()
	s, ok := e.sessions[id]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	delete(e.sessions, id)
	last := len(e.sessions) == 0
	hook := e.onLastClosed
	e.mu.Unlock()

	s.log.Info("session closed")
	if last {
		e.log.Info("last session closed")
		e.store.Clear()
		if hook != nil {
			hook()
		}
	}
	return nil
}
