package core

import (
	"context"
	"fmt"

	"dietplanner/internal/catalog"
	"dietplanner/internal/config"
	"dietplanner/internal/db"
	"dietplanner/internal/logger"
	"dietplanner/internal/storage"

	"go.uber.org/zap"
)

// LoadCatalog builds the configured catalog source, loads it once and
// validates the result. The returned cleanup releases whatever the source
// opened and is safe to call when err != nil.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, func(), error) {
	noop := func() {}

	source, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		return nil, noop, err
	}

	c, err := source.Load(ctx)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("loading %s catalog: %w", cfg.CatalogSource, err)
	}

	// sources validate on construction; re-check here so a bad source is
	// caught before the first plan
	if err := c.Validate(); err != nil {
		cleanup()
		return nil, noop, err
	}

	for _, s := range c.Stats() {
		logger.Debug("catalog slot loaded",
			zap.String("slot", string(s.Slot)),
			zap.Int("total", s.Total),
			zap.Int("veg", s.Veg),
			zap.Int("nonveg", s.NonVeg),
		)
	}

	return c, cleanup, nil
}

func newSource(ctx context.Context, cfg *config.Config) (catalog.Source, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case config.SourceBuiltin:
		return catalog.BuiltinSource{}, noop, nil

	case config.SourceFile:
		return catalog.FileSource{Path: cfg.CatalogFile}, noop, nil

	case config.SourcePostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		source := catalog.NewPostgresSource(pool)

		seeded, err := source.SeedIfEmpty(ctx, catalog.Builtin())
		if err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("seeding catalog: %w", err)
		}
		if seeded {
			logger.Info("seeded empty food_items table with the builtin catalog")
		}
		return source, pool.Close, nil

	case config.SourceR2:
		client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, noop, fmt.Errorf("R2 init failed: %w", err)
		}
		return catalog.ObjectSource{Fetcher: client, Key: cfg.R2.ObjectKey}, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
}
