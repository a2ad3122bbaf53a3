package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dietplanner/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens a small pool and makes sure the catalog table exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DATABASE_URL: %w", err)
	}

	// the catalog is read once at startup, so a tiny pool is plenty
	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	logger.Info("connected to postgres")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// initSchema creates the catalog table
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// FOOD ITEMS
	// -------------------------------
	foodItemsSQL := `
		CREATE TABLE IF NOT EXISTS food_items (
			id SERIAL PRIMARY KEY,
			slot VARCHAR(20) NOT NULL
				CHECK (slot IN ('breakfast', 'lunch', 'dinner', 'snack', 'drink')),
			position INT NOT NULL DEFAULT 0,
			name VARCHAR(255) NOT NULL,
			quantity VARCHAR(255) NOT NULL DEFAULT '',
			calories INT NOT NULL CHECK (calories >= 0),
			protein DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (protein >= 0),
			carbs DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (carbs >= 0),
			fats DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (fats >= 0),
			fiber DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (fiber >= 0),
			price INT NOT NULL CHECK (price >= 0),
			diet_type VARCHAR(10) NOT NULL CHECK (diet_type IN ('veg', 'nonveg')),
			recipe TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, foodItemsSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS food_items_slot_position_idx
		ON food_items (slot, position)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	logger.Info("schema initialized")
	return nil
}
