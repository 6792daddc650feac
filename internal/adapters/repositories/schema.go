package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Initialize the item and plan tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS items (
		item_id INTEGER PRIMARY KEY,
		neighborhood TEXT NOT NULL,
		population INTEGER NOT NULL,
		criticality DOUBLE PRECISION NOT NULL,
		impact_area DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL
	);
	`

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS plans (
		run_id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		strategy TEXT NOT NULL,
		alpha DOUBLE PRECISION NOT NULL,
		budget DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL,
		iterations INTEGER NOT NULL,
		truncated BOOLEAN NOT NULL,
		elapsed_ms BIGINT NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		total_priority DOUBLE PRECISION NOT NULL,
		total_equipment INTEGER NOT NULL
	);
	`

	createPlanItemsQuery := `
	CREATE TABLE IF NOT EXISTS plan_items (
		run_id TEXT NOT NULL REFERENCES plans(run_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		item_id INTEGER NOT NULL,
		neighborhood TEXT NOT NULL,
		population INTEGER NOT NULL,
		criticality DOUBLE PRECISION NOT NULL,
		impact_area DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		priority DOUBLE PRECISION NOT NULL,
		equipment_count INTEGER NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`

	createPlanCacheQuery := `
	CREATE TABLE IF NOT EXISTS plan_cache (
		cache_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		expires_at BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_plans_created_at
	ON plans(created_at);
	`

	statements := []string{
		createItemsQuery,
		createPlansQuery,
		createPlanItemsQuery,
		createPlanCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Upsert items into the items table.
func SeedItems(ctx context.Context, db *sql.DB, dialect Dialect, items []domain.Item) error {
	if db == nil {
		return errors.New("seed items: DB is nil")
	}

	for i, it := range items {
		if !(it.Cost > 0) {
			return fmt.Errorf("seed items: row %d item_id=%d: %w", i+1, it.ItemID, domain.ErrInvalidCost)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed items: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO items (item_id, neighborhood, population, criticality, impact_area, cost)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (item_id) DO UPDATE
	SET neighborhood = EXCLUDED.neighborhood,
		population = EXCLUDED.population,
		criticality = EXCLUDED.criticality,
		impact_area = EXCLUDED.impact_area,
		cost = EXCLUDED.cost;
	`))
	if err != nil {
		return fmt.Errorf("seed items: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.ItemID, it.Neighborhood, it.Population, it.Criticality, it.ImpactArea, it.Cost); err != nil {
			return fmt.Errorf("seed items: insert item_id=%d: %w", it.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed items: commit tx: %w", err)
	}

	return nil
}
