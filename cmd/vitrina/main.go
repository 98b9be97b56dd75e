package main

import (
	"fmt"
	"os"

	"github.com/atelier-labs/vitrina/internal/adapters/driven/config/file"
	"github.com/atelier-labs/vitrina/internal/adapters/driven/index/lexical"
	storage "github.com/atelier-labs/vitrina/internal/adapters/driven/storage/file"
	"github.com/atelier-labs/vitrina/internal/adapters/driving/cli"
	"github.com/atelier-labs/vitrina/internal/catalog"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := file.NewConfigStore(os.Getenv("VITRINA_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	engine := services.NewEngine(func() driven.ProductIndex {
		return lexical.New()
	}, file.EngineParams(store))

	cli.SetConfig(&cli.Config{
		Search:    services.NewSearchService(engine),
		Catalog:   engine,
		Recommend: services.NewRecommendationService(engine),
		OpenCatalog: func(path string) driven.CatalogSource {
			if path == "" {
				return catalog.DemoSource{}
			}
			return storage.NewCatalogFile(path)
		},
		WatchCatalog: func(path string) (driven.CatalogWatcher, error) {
			return storage.NewWatcher(path)
		},
	})

	return cli.Execute()
}
