package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/yahna8/store-and-inventory-microservice/internal/bootstrap"
	"github.com/yahna8/store-and-inventory-microservice/internal/catalog"
	"github.com/yahna8/store-and-inventory-microservice/internal/config"
	"github.com/yahna8/store-and-inventory-microservice/internal/database"
)

// seed loads the catalog definition file into the database. Items whose name
// already exists are left untouched.
func main() {
	path := flag.String("file", "", "catalog definition file (defaults to CATALOG_SEED_PATH)")
	validateOnly := flag.Bool("validate", false, "validate the file without touching the database")
	flag.Parse()

	if err := run(*path, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, validateOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.CatalogSeedPath
	}

	if _, err := bootstrap.SetupLogger(cfg); err != nil {
		return err
	}

	if validateOnly {
		l := catalog.NewLoader()
		def, err := l.Load(path)
		if err != nil {
			return err
		}
		if err := l.Validate(def); err != nil {
			return err
		}
		slog.Info("Catalog file is valid", "path", path, "items", len(def.Items))
		return nil
	}

	ctx := context.Background()
	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, connString, 2, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := bootstrap.InitializeRepositories(pool)
	svc := catalog.NewService(repos.Catalog, cfg.CatalogOwnershipMode)

	result, err := catalog.SeedFromFile(ctx, path, svc)
	if err != nil {
		return err
	}

	for _, item := range result.Inserted {
		slog.Info("Inserted catalog item", "id", item.ID, "name", item.Name, "price", item.Price)
	}
	for _, name := range result.Skipped {
		slog.Info("Skipped existing catalog item", "name", name)
	}
	slog.Info("Catalog seed complete", "inserted", len(result.Inserted), "skipped", len(result.Skipped))
	return nil
}
