package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"dietplanner/internal/catalog"
	"dietplanner/internal/config"
	"dietplanner/internal/core"
	"dietplanner/internal/logger"
	"dietplanner/internal/storage"

	"go.uber.org/zap"
)

func main() {
	exportPath := flag.String("export", "", "write the loaded catalog as YAML to this path")
	publish := flag.Bool("publish", false, "upload the loaded catalog to the R2 bucket under CATALOG_OBJECT_KEY")
	flag.Parse()

	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger.InitializeLogger(cfg.Env)
	defer logger.Close()

	if err := run(cfg, *exportPath, *publish); err != nil {
		logger.Error("catalog check failed", zap.String("source", cfg.CatalogSource), zap.Error(err))
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, exportPath string, publish bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, closeCatalog, err := core.LoadCatalog(ctx, cfg)
	defer closeCatalog()
	if err != nil {
		return err
	}

	for _, s := range c.Stats() {
		logger.Info("slot",
			zap.String("slot", string(s.Slot)),
			zap.Int("total", s.Total),
			zap.Int("veg", s.Veg),
			zap.Int("nonveg", s.NonVeg),
		)
	}
	logger.Info("catalog ok", zap.String("source", cfg.CatalogSource))

	if exportPath == "" && !publish {
		return nil
	}

	doc, err := catalog.Encode(c)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if err := os.WriteFile(exportPath, doc, 0o644); err != nil {
			return err
		}
		logger.Info("catalog exported", zap.String("path", exportPath))
	}

	if publish {
		client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return err
		}
		if err := client.Upload(ctx, cfg.R2.ObjectKey, doc, "application/x-yaml"); err != nil {
			return err
		}
		logger.Info("catalog published",
			zap.String("bucket", cfg.R2.Bucket),
			zap.String("key", cfg.R2.ObjectKey),
		)
	}

	return nil
}
