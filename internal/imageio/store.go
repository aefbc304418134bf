package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/render"
)

var (
	// ErrNotFound reports a source path that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrDecode reports a source that exists but is not a readable image.
	ErrDecode = errors.New("failed to decode image")

	// ErrTooLarge reports a source wider or taller than the configured limit.
	ErrTooLarge = errors.New("image too large")

	// ErrTooSmall reports a source with a zero side.
	ErrTooSmall = errors.New("image too small")

	// ErrWriteFailed reports a failed save.
	ErrWriteFailed = errors.New("failed to save image")
)

// SizeError describes a source rejected for its dimensions. It matches
// ErrTooLarge or ErrTooSmall, and raster.ErrInvalidDimension.
type SizeError struct {
	Path          string
	Width, Height int
	Max           int
}

func (e *SizeError) Error() string {
	if e.tooSmall() {
		return fmt.Sprintf("image must be at least 1x1: %s is %dx%d", e.Path, e.Width, e.Height)
	}
	return fmt.Sprintf("image too large (maximum: %dx%d): %s is %dx%d", e.Max, e.Max, e.Path, e.Width, e.Height)
}

// Is matches the size sentinel for this error and raster.ErrInvalidDimension.
func (e *SizeError) Is(target error) bool {
	switch target {
	case raster.ErrInvalidDimension:
		return true
	case ErrTooSmall:
		return e.tooSmall()
	case ErrTooLarge:
		return !e.tooSmall()
	}
	return false
}

func (e *SizeError) tooSmall() bool {
	return e.Width < 1 || e.Height < 1
}

// Store loads and saves rasters, caching decoded sources to avoid redundant
// disk reads.
//
// Decoded images are cached by the exact path string provided. Every Load
// converts the cached image into a fresh raster, so callers never share
// storage. Save evicts the destination path so a later Load sees the new
// contents.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	mu      sync.RWMutex
	images  map[string]image.Image
	maxSide int
	log     logrus.FieldLogger
}

// NewStore creates a store that admits sources up to maxSide per side.
// maxSide < 1 selects raster.DefaultMaxSide; a nil logger discards output.
func NewStore(maxSide int, log logrus.FieldLogger) *Store {
	if maxSide < 1 {
		maxSide = raster.DefaultMaxSide
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{
		images:  make(map[string]image.Image),
		maxSide: maxSide,
		log:     log,
	}
}

// decode retrieves an image from the cache or reads it from disk.
func (s *Store) decode(path string) (image.Image, error) {
	s.mu.RLock()
	if img, ok := s.images[path]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	s.mu.Lock()
	s.images[path] = img
	s.mu.Unlock()

	return img, nil
}

// Load reads a PNG, JPEG or GIF file as a grayscale raster.
//
// Returns:
//   - raster.Raster: A well-formed raster owned by the caller.
//   - error: ErrNotFound, ErrDecode, or a *SizeError matching ErrTooLarge
//     (either side above the store limit) or ErrTooSmall (either side below 1).
//     No raster is created on error.
//
// Color sources are converted with ToRaster.
func (s *Store) Load(path string) (raster.Raster, error) {
	img, err := s.decode(path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > s.maxSide || b.Dy() > s.maxSide {
		return nil, &SizeError{Path: path, Width: b.Dx(), Height: b.Dy(), Max: s.maxSide}
	}

	r := ToRaster(img)
	s.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  r.Width(),
		"height": r.Height(),
	}).Debug("loaded raster")
	return r, nil
}

// Save writes r to path as PNG, whatever the file extension.
//
// Tones are written the way they are displayed: out-of-range tones become
// the render error sentinel. Any failure is reported as ErrWriteFailed.
func (s *Store) Save(r raster.Raster, path string) error {
	if err := raster.Validate(r); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := imaging.Encode(f, render.Image(r), imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	s.Evict(path)
	s.log.WithField("path", path).Info("saved raster")
	return nil
}

// Exists reports whether path names an existing file.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Clear removes all images from the cache.
func (s *Store) Clear() {
	s.mu.Lock()
	s.images = make(map[string]image.Image)
	s.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
func (s *Store) Evict(path string) {
	s.mu.Lock()
	delete(s.images, path)
	s.mu.Unlock()
}

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", or "unknown", based on the extension.
	Format string `json:"format"`

	// Loadable reports whether the dimensions are within the store limits.
	Loadable bool `json:"loadable"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Stat returns metadata about an image file without converting it.
func (s *Store) Stat(path string) (*Info, error) {
	img, err := s.decode(path)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	b := img.Bounds()
	return &Info{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        format,
		Loadable:      b.Dx() >= 1 && b.Dy() >= 1 && b.Dx() <= s.maxSide && b.Dy() <= s.maxSide,
		FileSizeBytes: stat.Size(),
	}, nil
}
