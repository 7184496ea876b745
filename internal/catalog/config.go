package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// DefaultConfigPath is the configuration file read when none is given.
const DefaultConfigPath = "config.ini"

// ErrConfigNotFound is returned alongside default settings when the
// configuration file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config selects the dataset root and the modalities attached to each scene.
//
// It is read from the [Dataset] section of an INI file:
//
//	[Dataset]
//	root = ./dataset
//	include_rgb = true
//	include_depth = true
//	include_pcl = false
type Config struct {
	Root         string
	IncludeRGB   bool
	IncludeDepth bool
	IncludePCL   bool
}

// DefaultConfig returns the settings used when no file or key overrides them.
func DefaultConfig() Config {
	return Config{
		Root:         "./dataset",
		IncludeRGB:   true,
		IncludeDepth: true,
		IncludePCL:   false,
	}
}

// LoadConfig reads the configuration file at path. Root is resolved to an
// absolute path.
//
// A missing file is not fatal: the defaults are returned together with an
// error wrapping ErrConfigNotFound, which callers are expected to log.
//
// # Errors
//
//   - ErrConfigNotFound if path does not exist (defaults are still returned)
//   - Returns error if the file cannot be parsed
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var notFound error
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		notFound = fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	} else {
		file, err := ini.Load(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		sec := file.Section("Dataset")
		cfg.Root = sec.Key("root").MustString(cfg.Root)
		cfg.IncludeRGB = sec.Key("include_rgb").MustBool(cfg.IncludeRGB)
		cfg.IncludeDepth = sec.Key("include_depth").MustBool(cfg.IncludeDepth)
		cfg.IncludePCL = sec.Key("include_pcl").MustBool(cfg.IncludePCL)
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve dataset root: %w", err)
	}
	cfg.Root = root

	return cfg, notFound
}
