package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
)

// SQLPlanStore persists investment plans in the plans and plan_items tables.
type SQLPlanStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLPlanStore(db *sql.DB, dialect Dialect) *SQLPlanStore {
	return &SQLPlanStore{DB: db, Dialect: dialect}
}

// Save a plan, replacing any previous plan with the same run id.
func (s *SQLPlanStore) SavePlan(ctx context.Context, plan *domain.InvestmentPlan) (err error) {
	defer obs.Time(ctx, "plans.sql.SavePlan")(&err)

	if s.DB == nil {
		return errors.New("sql plan store: DB is nil")
	}
	if plan == nil || plan.RunID == "" {
		return errors.New("save plan: run id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save plan: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, s.Dialect.Rebind(`
	INSERT INTO plans (
		run_id, created_at, strategy, alpha, budget, seed, iterations,
		truncated, elapsed_ms, total_cost, total_priority, total_equipment
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (run_id) DO UPDATE
	SET created_at = EXCLUDED.created_at,
		strategy = EXCLUDED.strategy,
		alpha = EXCLUDED.alpha,
		budget = EXCLUDED.budget,
		seed = EXCLUDED.seed,
		iterations = EXCLUDED.iterations,
		truncated = EXCLUDED.truncated,
		elapsed_ms = EXCLUDED.elapsed_ms,
		total_cost = EXCLUDED.total_cost,
		total_priority = EXCLUDED.total_priority,
		total_equipment = EXCLUDED.total_equipment;
	`),
		plan.RunID,
		plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		plan.Strategy,
		plan.Alpha,
		plan.Budget,
		int64(plan.Seed),
		plan.Iterations,
		plan.Truncated,
		plan.Elapsed.Milliseconds(),
		plan.TotalCost,
		plan.TotalPriority,
		plan.TotalEquipment,
	)
	if err != nil {
		return fmt.Errorf("save plan run_id=%s: upsert plan: %w", plan.RunID, err)
	}

	if _, err := tx.ExecContext(ctx, s.Dialect.Rebind(`DELETE FROM plan_items WHERE run_id = ?;`), plan.RunID); err != nil {
		return fmt.Errorf("save plan run_id=%s: clear items: %w", plan.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.Dialect.Rebind(`
	INSERT INTO plan_items (
		run_id, position, item_id, neighborhood, population, criticality,
		impact_area, cost, priority, equipment_count
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("save plan: prepare item insert: %w", err)
	}
	defer stmt.Close()

	for pos, it := range plan.Items {
		_, err := stmt.ExecContext(ctx,
			plan.RunID, pos, it.ItemID, it.Neighborhood, it.Population, it.Criticality,
			it.ImpactArea, it.Cost, it.Priority, it.EquipmentCount,
		)
		if err != nil {
			return fmt.Errorf("save plan run_id=%s: insert item_id=%d: %w", plan.RunID, it.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save plan: commit tx: %w", err)
	}

	return nil
}

// Load a plan by run id. Returns domain.ErrPlanNotFound for unknown ids.
func (s *SQLPlanStore) GetPlan(ctx context.Context, runID string) (_ *domain.InvestmentPlan, err error) {
	defer obs.Time(ctx, "plans.sql.GetPlan")(&err)

	if s.DB == nil {
		return nil, errors.New("sql plan store: DB is nil")
	}

	var (
		plan      domain.InvestmentPlan
		createdAt string
		seed      int64
		elapsedMs int64
	)
	row := s.DB.QueryRowContext(ctx, s.Dialect.Rebind(`
	SELECT
		run_id, created_at, strategy, alpha, budget, seed, iterations,
		truncated, elapsed_ms, total_cost, total_priority, total_equipment
	FROM plans
	WHERE run_id = ?;
	`), runID)
	err = row.Scan(
		&plan.RunID, &createdAt, &plan.Strategy, &plan.Alpha, &plan.Budget, &seed, &plan.Iterations,
		&plan.Truncated, &elapsedMs, &plan.TotalCost, &plan.TotalPriority, &plan.TotalEquipment,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plan run_id=%s: %w", runID, domain.ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan run_id=%s: scan plan: %w", runID, err)
	}

	plan.Seed = uint64(seed)
	plan.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	plan.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("get plan run_id=%s: parse created_at %q: %w", runID, createdAt, err)
	}

	rows, err := s.DB.QueryContext(ctx, s.Dialect.Rebind(`
	SELECT
		item_id, neighborhood, population, criticality,
		impact_area, cost, priority, equipment_count
	FROM plan_items
	WHERE run_id = ?
	ORDER BY position;
	`), runID)
	if err != nil {
		return nil, fmt.Errorf("get plan run_id=%s: query items: %w", runID, err)
	}
	defer rows.Close()

	plan.Items = []domain.PlannedItem{}
	for rows.Next() {
		var it domain.PlannedItem
		if err := rows.Scan(
			&it.ItemID, &it.Neighborhood, &it.Population, &it.Criticality,
			&it.ImpactArea, &it.Cost, &it.Priority, &it.EquipmentCount,
		); err != nil {
			return nil, fmt.Errorf("get plan run_id=%s: scan item: %w", runID, err)
		}
		plan.Items = append(plan.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get plan run_id=%s: row iteration: %w", runID, err)
	}

	return &plan, nil
}
