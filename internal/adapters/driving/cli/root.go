// Package cli provides the cobra command tree for Vitrina. Commands
// talk to the engine through the driving ports; the composition root
// injects concrete services and adapter factories via SetConfig.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/core/ports/driving"
	"github.com/atelier-labs/vitrina/internal/logger"
)

const version = "0.1.0"

// Config holds the services and factories the commands need.
type Config struct {
	Search    driving.SearchService
	Catalog   driving.CatalogService
	Recommend driving.RecommendationService

	// OpenCatalog opens a catalog source for the given file path.
	OpenCatalog func(path string) driven.CatalogSource

	// WatchCatalog creates a change watcher for the given file path.
	WatchCatalog func(path string) (driven.CatalogWatcher, error)
}

var cfg *Config

// SetConfig sets the configuration for all commands.
func SetConfig(c *Config) {
	cfg = c
}

var (
	flagVerbose bool
	flagCatalog string
)

var rootCmd = &cobra.Command{
	Use:   "vitrina",
	Short: "Catalog search and recommendation engine",
	Long: `Vitrina is a catalog search and recommendation engine for a
conversational sales assistant. It maintains a lexical index, a
self-learning synonym dictionary and a category-affinity graph over an
in-memory product catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "path to the catalog JSON file (default: built-in demo catalog)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadCatalog loads the catalog file named by --catalog and installs it
// as the active snapshot.
func loadCatalog(ctx context.Context) error {
	if cfg == nil || cfg.Catalog == nil {
		return errors.New("catalog service not configured")
	}
	if cfg.OpenCatalog == nil {
		return errors.New("catalog source not configured")
	}

	source := cfg.OpenCatalog(flagCatalog)
	products, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if err := cfg.Catalog.Replace(ctx, products); err != nil {
		return fmt.Errorf("installing catalog: %w", err)
	}
	return nil
}
