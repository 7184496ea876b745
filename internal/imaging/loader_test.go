package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestImage writes a solid color PNG of the given size into dir.
func writeTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
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

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestImage(t, t.TempDir(), "a.png", 100, 80, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(bad); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "1.png", 10, 10, color.White)
	writeTestImage(t, dir, "2.png", 20, 10, color.Black)
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	cache := NewImageCache()
	images, err := cache.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if images["2"].Bounds().Dx() != 20 {
		t.Errorf("image 2 width = %d, want 20", images["2"].Bounds().Dx())
	}

	if _, err := cache.LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("LoadDir should fail for missing directory")
	}
}

func TestImageCache_ClearEvict(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	a := writeTestImage(t, dir, "a.png", 5, 5, color.White)
	b := writeTestImage(t, dir, "b.png", 5, 5, color.White)

	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	cache.Evict(a)
	cache.Evict("/nonexistent/path")
	if cache.Len() != 1 {
		t.Errorf("Len() after Evict = %d, want 1", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestImage(t, t.TempDir(), "c.png", 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if ToRGBA(rgba) != rgba {
		t.Error("ToRGBA should return an *image.RGBA unchanged")
	}

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 1, color.Gray{200})
	out := ToRGBA(gray)
	if got := out.RGBAAt(1, 1); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("converted pixel = %v, want {200 200 200 255}", got)
	}
}

func TestClone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst := Clone(src)
	dst.Set(0, 0, color.White)

	if src.RGBAAt(0, 0) == (color.RGBA{255, 255, 255, 255}) {
		t.Error("Clone shares pixels with the source")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 12, 7))

	for _, name := range []string{"out.png", "out.jpg"} {
		path := filepath.Join(dir, name)
		if err := Save(img, path); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}
		loaded, err := NewImageCache().Load(path)
		if err != nil {
			t.Fatalf("reload %s failed: %v", name, err)
		}
		if loaded.Bounds().Dx() != 12 || loaded.Bounds().Dy() != 7 {
			t.Errorf("%s: got %v, want 12x7", name, loaded.Bounds())
		}
	}

	if err := Save(img, filepath.Join(dir, "out.unknownext")); err == nil {
		t.Error("Save should fail for unsupported extension")
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"/data/wp1/rgb/3.png": "3",
		"frame.0001.jpg":      "frame.0001",
		"noext":               "noext",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}
