package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"dietplanner/internal/metabolic"

	"github.com/joho/godotenv"
)

// Catalog sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceR2       = "r2"
)

type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	ObjectKey string
}

type Config struct {
	Env         string
	Port        string
	CORSOrigins []string

	// JWTSecret enables bearer-token auth on the plan routes when set.
	JWTSecret []byte

	GoalPolicy metabolic.GoalPolicy
	// PlanSeed seeds the shared coin for diet preference "both". Nil seeds from the clock.
	PlanSeed *int64

	CatalogSource string
	CatalogFile   string
	DatabaseURL   string
	R2            R2Config
}

// LoadEnv reads .env outside production. A missing file is fine.
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

// Load builds a Config from the environment and checks that every variable the
// chosen catalog source needs is present.
func Load() (*Config, error) {
	policy, err := metabolic.ParseGoalPolicy(os.Getenv("GOAL_POLICY"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:           getenv("APP_ENV", "development"),
		Port:          getenv("PORT", "8000"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		GoalPolicy:    policy,
		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", SourceBuiltin)),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		R2: R2Config{
			Endpoint:  os.Getenv("R2_ENDPOINT"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
			Bucket:    os.Getenv("R2_BUCKET_NAME"),
			ObjectKey: getenv("CATALOG_OBJECT_KEY", "catalog/catalog.yaml"),
		},
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = []byte(secret)
	}

	if raw := os.Getenv("PLAN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("PLAN_SEED: %w", err)
		}
		cfg.PlanSeed = &seed
	}

	var required []string
	switch cfg.CatalogSource {
	case SourceBuiltin:
	case SourceFile:
		required = []string{"CATALOG_FILE"}
	case SourcePostgres:
		required = []string{"DATABASE_URL"}
	case SourceR2:
		required = []string{"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME"}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			return nil, fmt.Errorf("missing env var: %s", k)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
