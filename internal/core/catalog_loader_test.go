package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dietplanner/internal/catalog"
	"dietplanner/internal/config"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	c, cleanup, err := LoadCatalog(context.Background(), &config.Config{CatalogSource: config.SourceBuiltin})
	defer cleanup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := c.Slice(catalog.Breakfast)
	if err != nil || len(items) == 0 {
		t.Fatalf("expected breakfast items, got %d (%v)", len(items), err)
	}
}

func TestLoadCatalog_File(t *testing.T) {
	data, err := catalog.Encode(catalog.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c, cleanup, err := LoadCatalog(context.Background(), &config.Config{
		CatalogSource: config.SourceFile,
		CatalogFile:   path,
	})
	defer cleanup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := c.Slice(catalog.Drink)
	want, _ := catalog.Builtin().Slice(catalog.Drink)
	if len(got) != len(want) {
		t.Fatalf("expected %d drinks, got %d", len(want), len(got))
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"missing file", config.Config{CatalogSource: config.SourceFile, CatalogFile: filepath.Join(t.TempDir(), "none.yaml")}},
		{"no database url", config.Config{CatalogSource: config.SourcePostgres}},
		{"no bucket", config.Config{CatalogSource: config.SourceR2}},
		{"unknown source", config.Config{CatalogSource: "ftp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, cleanup, err := LoadCatalog(context.Background(), &cfg)
			cleanup()
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
