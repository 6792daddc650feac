package ports

import (
	"context"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Contract for persisting finished investment plans.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *domain.InvestmentPlan) error
	// Return the plan with the given run id or domain.ErrPlanNotFound.
	GetPlan(ctx context.Context, runID string) (*domain.InvestmentPlan, error)
}
