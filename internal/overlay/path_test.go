package overlay

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAnnotationPath(t *testing.T) {
	root := t.TempDir()
	rgb := filepath.Join(root, "data", "wp1", "rgb")
	if err := os.MkdirAll(rgb, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got, err := AnnotationPath(filepath.Join(rgb, "3.png"), "detector_a")
	if err != nil {
		t.Fatalf("AnnotationPath failed: %v", err)
	}
	want := filepath.Join(root, "data", "wp1", "detector_a", "3.png")
	if got != want {
		t.Errorf("AnnotationPath = %s, want %s", got, want)
	}

	info, err := os.Stat(filepath.Dir(want))
	if err != nil || !info.IsDir() {
		t.Fatalf("method directory not created: %v", err)
	}

	// Second call tolerates the existing directory
	again, err := AnnotationPath(filepath.Join(rgb, "4.png"), "detector_a")
	if err != nil {
		t.Fatalf("second AnnotationPath failed: %v", err)
	}
	if filepath.Base(again) != "4.png" || filepath.Dir(again) != filepath.Dir(want) {
		t.Errorf("second AnnotationPath = %s", again)
	}
}

func TestAnnotationPath_InvalidMethod(t *testing.T) {
	for _, m := range []string{"", ".", "..", "a/b"} {
		if _, err := AnnotationPath("/data/wp1/rgb/3.png", m); err == nil {
			t.Errorf("AnnotationPath with method %q should fail", m)
		}
	}
}
