package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the catalog from the food_items table.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// --------------------------------------------------
// LOAD (READ ONLY)
// --------------------------------------------------
func (r *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			slot,
			name,
			quantity,
			calories,
			protein,
			carbs,
			fats,
			fiber,
			price,
			diet_type,
			recipe
		FROM food_items
		ORDER BY slot, position, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make(map[Slot][]FoodItem, len(Slots))

	for rows.Next() {
		var (
			slot string
			diet string
			item FoodItem
		)
		if err := rows.Scan(
			&slot,
			&item.Name,
			&item.Quantity,
			&item.Calories,
			&item.Protein,
			&item.Carbs,
			&item.Fats,
			&item.Fiber,
			&item.Price,
			&diet,
			&item.Recipe,
		); err != nil {
			return nil, err
		}

		item.DietType = DietType(diet)

		s, err := ParseSlot(slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, slot)
		}
		slots[s] = append(slots[s], item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return New(slots)
}

// --------------------------------------------------
// SEED (ONLY WHEN THE TABLE IS EMPTY)
// --------------------------------------------------

// SeedIfEmpty copies c into food_items when the table has no rows.
// It reports whether anything was written.
func (r *PostgresSource) SeedIfEmpty(ctx context.Context, c *Catalog) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, slot := range Slots {
		items, _ := c.Slice(slot)
		for i, item := range items {
			batch.Queue(`
				INSERT INTO food_items (
					slot, position, name, quantity,
					calories, protein, carbs, fats, fiber,
					price, diet_type, recipe
				)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			`,
				string(slot), i, item.Name, item.Quantity,
				item.Calories, item.Protein, item.Carbs, item.Fats, item.Fiber,
				item.Price, string(item.DietType), item.Recipe,
			)
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
