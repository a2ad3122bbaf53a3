package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "CORS_ORIGINS", "JWT_SECRET", "GOAL_POLICY", "PLAN_SEED",
		"CATALOG_SOURCE", "CATALOG_FILE", "DATABASE_URL",
		"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME", "CATALOG_OBJECT_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.CatalogSource != SourceBuiltin {
		t.Errorf("expected builtin catalog, got %s", cfg.CatalogSource)
	}
	if cfg.GoalPolicy.Name() != "additive" {
		t.Errorf("expected additive policy, got %s", cfg.GoalPolicy.Name())
	}
	if cfg.JWTSecret != nil || cfg.PlanSeed != nil {
		t.Errorf("expected no secret and no seed")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOAL_POLICY", "multiplicative")
	t.Setenv("PLAN_SEED", "42")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://plan.example.com, ,https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.GoalPolicy.Name() != "multiplicative" {
		t.Errorf("expected multiplicative, got %s", cfg.GoalPolicy.Name())
	}
	if cfg.PlanSeed == nil || *cfg.PlanSeed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.PlanSeed)
	}
	if string(cfg.JWTSecret) != "s3cret" {
		t.Errorf("unexpected secret %q", cfg.JWTSecret)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadRequiredPerSource(t *testing.T) {
	tests := []struct {
		source string
		env    map[string]string
	}{
		{SourceFile, nil},
		{SourcePostgres, nil},
		{SourceR2, map[string]string{"R2_ENDPOINT": "https://r2.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CATALOG_SOURCE", tt.source)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Fatal("expected missing env var error")
			}
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAN_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad seed")
	}

	clearEnv(t)
	t.Setenv("GOAL_POLICY", "keto")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad goal policy")
	}

	clearEnv(t)
	t.Setenv("CATALOG_SOURCE", "ftp")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
