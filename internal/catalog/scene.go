package catalog

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/arid-tools/internal/annotations"
	"github.com/ironsheep/arid-tools/internal/imaging"
)

// Modality directory names inside a scene.
const (
	RGBDir   = "rgb"
	DepthDir = "depth"
	PCLDir   = "pcl"
)

// LabelsSuffix completes the labels file name: "<title>_labels.json".
const LabelsSuffix = "_labels.json"

// Scene is one waypoint of an experiment: its capture directories and the
// annotations recorded for its images.
//
// A Scene owns its annotation store. Directory paths are references into the
// dataset and are empty when the modality is disabled.
type Scene struct {
	title      string
	experiment string
	dir        string

	rgbRoot   string
	depthRoot string
	pclRoot   string

	methodRoots []string
	store       *annotations.Store
}

// Title returns the scene name.
func (s *Scene) Title() string { return s.title }

// String implements fmt.Stringer.
func (s *Scene) String() string { return s.title }

// Experiment returns the name of the experiment the scene belongs to.
func (s *Scene) Experiment() string { return s.experiment }

// Dir returns the scene directory.
func (s *Scene) Dir() string { return s.dir }

// RGBRoot returns the RGB image directory, or "" when RGB is disabled.
func (s *Scene) RGBRoot() string { return s.rgbRoot }

// DepthRoot returns the depth image directory, or "" when depth is disabled.
func (s *Scene) DepthRoot() string { return s.depthRoot }

// PCLRoot returns the point cloud directory, or "" when point clouds are
// disabled.
func (s *Scene) PCLRoot() string { return s.pclRoot }

// MethodRoots returns the annotation method directories, sorted by name.
func (s *Scene) MethodRoots() []string {
	out := make([]string, len(s.methodRoots))
	copy(out, s.methodRoots)
	return out
}

// Methods returns the annotation method names, sorted.
func (s *Scene) Methods() []string {
	names := make([]string, len(s.methodRoots))
	for i, m := range s.methodRoots {
		names[i] = filepath.Base(m)
	}
	return names
}

// Store returns the scene's annotation store.
func (s *Scene) Store() *annotations.Store { return s.store }

// LabelsPath returns the path of the scene's labels file.
func (s *Scene) LabelsPath() string {
	return filepath.Join(s.dir, s.title+LabelsSuffix)
}

// Annotations returns the annotations of one image, identified by its stem.
//
// # Errors
//
//   - annotations.ErrAnnotationNotFound if the image has no record
func (s *Scene) Annotations(imageID string) ([]annotations.Annotation, error) {
	rec, err := s.store.Get(imageID)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.title, err)
	}
	return rec.Annotations, nil
}

// SaveAnnotations writes the store back to the scene's labels file.
func (s *Scene) SaveAnnotations() error {
	return s.store.WriteFile(s.LabelsPath())
}

// RGBImagePaths lists the files of the RGB directory keyed by stem. It is
// empty when RGB is disabled.
func (s *Scene) RGBImagePaths() (map[string]string, error) {
	if s.rgbRoot == "" {
		return map[string]string{}, nil
	}
	return listFiles(s.rgbRoot)
}

// RGBImages loads every RGB image of the scene through cache, keyed by stem.
// It is empty when RGB is disabled.
func (s *Scene) RGBImages(cache *imaging.ImageCache) (map[string]image.Image, error) {
	if s.rgbRoot == "" {
		return map[string]image.Image{}, nil
	}
	return cache.LoadDir(s.rgbRoot)
}
