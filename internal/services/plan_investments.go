package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/ports"
	"github.com/google/uuid"
)

type PlanInvestmentsRequest struct {
	Solver            Config
	EquipmentUnitCost float64
	// Baseline, when set, replaces the GRASP run with a construction-only
	// heuristic. Baseline runs bypass the plan cache.
	Baseline *BaselineConfig
}

// PlanInvestments loads the candidate items, solves the budgeted selection and
// turns the best solution into an InvestmentPlan.
//
// cache and store are optional. Only complete runs are cached, since a truncated
// run depends on timing rather than on its inputs.
func PlanInvestments(
	ctx context.Context,
	req PlanInvestmentsRequest,
	repo ports.ItemRepository,
	cache ports.PlanCache,
	store ports.PlanStore,
) (*domain.InvestmentPlan, error) {
	runID := uuid.NewString()
	ctx = obs.WithRunID(ctx, runID)

	unitCost := req.EquipmentUnitCost
	if unitCost == 0 {
		unitCost = DefaultEquipmentUnitCost
	}
	if unitCost < 0 {
		return nil, fmt.Errorf("plan investments: equipment unit cost must be > 0: %w", domain.ErrInvalidConfig)
	}

	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan investments: list items: %w", err)
	}

	if req.Baseline != nil {
		res, err := RunBaseline(ctx, items, *req.Baseline)
		if err != nil {
			return nil, fmt.Errorf("plan investments: %w", err)
		}
		meta := planMeta{strategy: string(req.Baseline.Method), budget: req.Baseline.Budget, seed: req.Baseline.Seed}
		return savePlan(ctx, store, buildPlan(runID, meta, unitCost, res))
	}

	var key string
	if cache != nil {
		key = PlanCacheKey(items, req.Solver, unitCost)
		cached, ok, err := cache.Get(ctx, key)
		if err != nil {
			log.Printf("run_id=%s plan cache read failed: %v", runID, err)
		} else if ok {
			log.Printf("run_id=%s plan cache hit cached_run_id=%s", runID, cached.RunID)
			return cached, nil
		}
	}

	res, err := Solve(ctx, items, req.Solver)
	if err != nil {
		return nil, fmt.Errorf("plan investments: %w", err)
	}

	meta := planMeta{strategy: string(req.Solver.Strategy), alpha: req.Solver.Alpha, budget: req.Solver.Budget, seed: req.Solver.Seed}
	plan := buildPlan(runID, meta, unitCost, res)

	if cache != nil && !plan.Truncated {
		if err := cache.Put(ctx, key, plan); err != nil {
			log.Printf("run_id=%s plan cache write failed: %v", runID, err)
		}
	}

	return savePlan(ctx, store, plan)
}

func savePlan(ctx context.Context, store ports.PlanStore, plan *domain.InvestmentPlan) (*domain.InvestmentPlan, error) {
	if store != nil {
		if err := store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("plan investments: save plan: %w", err)
		}
	}
	return plan, nil
}

// planMeta is the run configuration recorded on a plan.
type planMeta struct {
	strategy      string
	alpha, budget float64
	seed          uint64
}

func buildPlan(runID string, meta planMeta, unitCost float64, res *Result) *domain.InvestmentPlan {
	plan := &domain.InvestmentPlan{
		RunID:         runID,
		CreatedAt:     time.Now().UTC(),
		Strategy:      meta.strategy,
		Alpha:         meta.alpha,
		Budget:        meta.budget,
		Seed:          meta.seed,
		Iterations:    res.Iterations,
		Truncated:     res.Truncated,
		Elapsed:       res.Elapsed,
		TotalCost:     res.TotalCost(),
		TotalPriority: res.TotalPriority(),
	}

	selected := res.Selected()
	plan.Items = make([]domain.PlannedItem, 0, len(selected))
	for _, it := range selected {
		n := EquipmentCount(it.Cost, unitCost)
		plan.Items = append(plan.Items, domain.PlannedItem{Item: it, EquipmentCount: n})
		plan.TotalEquipment += n
	}

	return plan
}
