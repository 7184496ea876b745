package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ironsheep/arid-tools/internal/annotations"
	"github.com/ironsheep/arid-tools/internal/imaging"
)

var (
	// ErrAnnotationFileMissing marks a scene without a labels file.
	ErrAnnotationFileMissing = errors.New("annotation file missing")

	// ErrAnnotationParse marks a scene whose labels file is malformed.
	ErrAnnotationParse = errors.New("annotation file unparsable")

	// ErrSceneNotFound is returned by Catalog.Scene for an unknown title.
	ErrSceneNotFound = errors.New("scene not found")
)

// Catalog is the set of scenes discovered under a dataset root, ordered by
// experiment then title.
type Catalog struct {
	Root   string
	Scenes []*Scene
}

// Option configures Build.
type Option func(*builder)

// WithLogger sets the logger used to report skipped scenes.
func WithLogger(l zerolog.Logger) Option {
	return func(b *builder) { b.log = l }
}

type builder struct {
	cfg Config
	log zerolog.Logger
}

// Build walks cfg.Root and returns every scene with a valid labels file.
//
// Entries that are not directories are ignored at both levels. Scenes whose
// labels file is missing or malformed are logged at warn level and skipped.
//
// # Errors
//
//   - Returns error only if the dataset root itself cannot be listed
func Build(cfg Config, opts ...Option) (*Catalog, error) {
	b := &builder{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}

	experiments, err := os.ReadDir(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset root: %w", err)
	}

	cat := &Catalog{Root: cfg.Root}
	for _, exp := range experiments {
		if !exp.IsDir() {
			continue
		}
		expDir := filepath.Join(cfg.Root, exp.Name())
		entries, err := os.ReadDir(expDir)
		if err != nil {
			b.log.Warn().Err(err).Str("experiment", exp.Name()).Msg("skipping unreadable experiment")
			continue
		}

		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			scene, err := b.loadScene(exp.Name(), filepath.Join(expDir, e.Name()))
			if err != nil {
				b.log.Warn().Err(err).
					Str("experiment", exp.Name()).
					Str("scene", e.Name()).
					Msg("skipping scene")
				continue
			}
			cat.Scenes = append(cat.Scenes, scene)
		}
	}

	b.log.Debug().Int("scenes", len(cat.Scenes)).Str("root", cfg.Root).Msg("catalog built")
	return cat, nil
}

func (b *builder) loadScene(experiment, dir string) (*Scene, error) {
	title := imaging.Stem(dir)
	s := &Scene{
		title:      title,
		experiment: experiment,
		dir:        dir,
	}

	labels := s.LabelsPath()
	f, err := os.Open(labels)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAnnotationFileMissing, labels)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrAnnotationFileMissing, labels, err)
	}
	defer f.Close()

	store, err := annotations.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAnnotationParse, labels, err)
	}
	s.store = store

	if b.cfg.IncludeRGB {
		s.rgbRoot = filepath.Join(dir, RGBDir)
	}
	if b.cfg.IncludeDepth {
		s.depthRoot = filepath.Join(dir, DepthDir)
	}
	if b.cfg.IncludePCL {
		s.pclRoot = filepath.Join(dir, PCLDir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		switch e.Name() {
		case RGBDir, DepthDir, PCLDir:
		default:
			s.methodRoots = append(s.methodRoots, filepath.Join(dir, e.Name()))
		}
	}

	return s, nil
}

// Scene returns the scene with the given title.
func (c *Catalog) Scene(title string) (*Scene, error) {
	for _, s := range c.Scenes {
		if s.title == title {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSceneNotFound, title)
}

// ObjectMatch is an annotation found across the catalog.
type ObjectMatch struct {
	Scene *Scene
	annotations.Match
}

// FindByObjectPrefix scans every scene's store for annotations whose id
// starts with prefix, in catalog order.
func (c *Catalog) FindByObjectPrefix(prefix string) []ObjectMatch {
	var out []ObjectMatch
	for _, s := range c.Scenes {
		for _, m := range s.store.FindByObjectPrefix(prefix) {
			out = append(out, ObjectMatch{Scene: s, Match: m})
		}
	}
	return out
}

func listFiles(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			files[imaging.Stem(e.Name())] = filepath.Join(dir, e.Name())
		}
	}
	return files, nil
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
