package imageio

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ironsheep/greyditor/internal/raster"
	"github.com/ironsheep/greyditor/internal/render"
)

// createTestImage writes a width x height PNG filled with c into a temp
// directory and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestStore_Load(t *testing.T) {
	path := createTestImage(t, 4, 3, color.RGBA{100, 100, 100, 255})
	store := NewStore(0, nil)

	r, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", r.Width(), r.Height())
	}
	if !raster.IsWellFormed(r) {
		t.Error("loaded raster should be well-formed")
	}
	if r[2][3] != 100 {
		t.Errorf("tone: got %d, want 100", r[2][3])
	}
}

func TestStore_LoadColorUsesLuma(t *testing.T) {
	path := createTestImage(t, 1, 1, color.RGBA{255, 0, 0, 255})
	r, err := NewStore(0, nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r[0][0] != 76 {
		t.Errorf("red luma: got %d, want 76", r[0][0])
	}
}

func TestStore_LoadReturnsFreshRasters(t *testing.T) {
	path := createTestImage(t, 2, 2, color.White)
	store := NewStore(0, nil)

	a, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	a[0][0] = 0

	b, err := store.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if b[0][0] != 255 {
		t.Errorf("cached load shares storage: got %d, want 255", b[0][0])
	}
}

func TestStore_LoadNotFound(t *testing.T) {
	_, err := NewStore(0, nil).Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_LoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewStore(0, nil).Load(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestStore_LoadTooLarge(t *testing.T) {
	path := createTestImage(t, 1001, 500, color.Black)

	_, err := NewStore(1000, nil).Load(path)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if !errors.Is(err, raster.ErrInvalidDimension) {
		t.Errorf("size error should also match raster.ErrInvalidDimension")
	}

	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *SizeError, got %T", err)
	}
	if sizeErr.Width != 1001 || sizeErr.Height != 500 || sizeErr.Max != 1000 {
		t.Errorf("SizeError: got %+v", sizeErr)
	}
}

func TestStore_LoadAtLimit(t *testing.T) {
	path := createTestImage(t, 10, 3, color.Black)
	if _, err := NewStore(10, nil).Load(path); err != nil {
		t.Errorf("image at the limit should load: %v", err)
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store := NewStore(0, nil)
	path := filepath.Join(t.TempDir(), "out.png")
	r := raster.Raster{{0, 64}, {128, 255}}

	if err := store.Save(r, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists(path) {
		t.Fatal("saved file does not exist")
	}

	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !raster.Equal(got, r) {
		t.Errorf("round trip: got %v, want %v", got, r)
	}
}

func TestStore_SaveEvictsCache(t *testing.T) {
	store := NewStore(0, nil)
	path := createTestImage(t, 2, 2, color.White)

	if _, err := store.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Save(raster.Raster{{0, 0}, {0, 0}}, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	r, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if r[0][0] != 0 {
		t.Errorf("stale cache after save: got %d, want 0", r[0][0])
	}
}

func TestStore_SaveWritesDisplayedColors(t *testing.T) {
	store := NewStore(0, nil)
	path := filepath.Join(t.TempDir(), "sentinel.png")

	if err := store.Save(raster.Raster{{300}}, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open saved file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode saved file: %v", err)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	if got != render.Sentinel {
		t.Errorf("out-of-range tone: got %v, want sentinel %v", got, render.Sentinel)
	}
}

func TestStore_SaveRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	err := NewStore(0, nil).Save(raster.Raster{{1, 2}, {3}}, path)
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("malformed raster should not create a file")
	}
}

func TestStore_SaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.png")
	err := NewStore(0, nil).Save(raster.Raster{{1}}, path)
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
}

func TestStore_Stat(t *testing.T) {
	path := createTestImage(t, 20, 30, color.White)
	info, err := NewStore(25, nil).Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if info.Width != 20 || info.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 20x30", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.Loadable {
		t.Error("30px tall image should not be loadable with a 25px limit")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestStore_ConcurrentLoad(t *testing.T) {
	path := createTestImage(t, 8, 8, color.Gray{Y: 42})
	store := NewStore(0, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := store.Load(path)
			if err != nil {
				errs <- err
				return
			}
			r[0][0] = i
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestStore_ClearDropsCachedImages(t *testing.T) {
	path := createTestImage(t, 1, 1, color.Gray{Y: 10})
	replacement := createTestImage(t, 1, 1, color.Gray{Y: 200})
	store := NewStore(0, nil)

	if _, err := store.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := os.Rename(replacement, path); err != nil {
		t.Fatalf("failed to replace file: %v", err)
	}

	cached, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cached[0][0] != 10 {
		t.Errorf("cached load: got %d, want 10", cached[0][0])
	}

	store.Clear()
	fresh, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if fresh[0][0] != 200 {
		t.Errorf("load after Clear: got %d, want 200", fresh[0][0])
	}
}
