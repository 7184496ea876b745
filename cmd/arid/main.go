package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/arid-tools/internal/catalog"
	"github.com/ironsheep/arid-tools/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	configPath string
	log        zerolog.Logger
)

func main() {
	log = logger.NewConsole()

	rootCmd := &cobra.Command{
		Use:           "arid",
		Short:         "Browse and annotate the ARID robotics image dataset",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", catalog.DefaultConfigPath, "configuration file")

	rootCmd.AddCommand(scenesCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(redactCmd())
	rootCmd.AddCommand(findCmd())
	rootCmd.AddCommand(iouCmd())
	rootCmd.AddCommand(colormapsCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// loadCatalog reads the configuration and discovers the dataset's scenes.
// A missing configuration file falls back to defaults.
func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := catalog.LoadConfig(configPath)
	if errors.Is(err, catalog.ErrConfigNotFound) {
		log.Warn().Str("path", configPath).Msg("config file not found, using defaults")
	} else if err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", cfg.Root).
		Bool("rgb", cfg.IncludeRGB).
		Bool("depth", cfg.IncludeDepth).
		Bool("pcl", cfg.IncludePCL).
		Msg("loading dataset")

	return catalog.Build(cfg, catalog.WithLogger(log))
}
