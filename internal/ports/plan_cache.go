package ports

import (
	"context"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Optional cache of solved plans keyed by dataset and solver configuration.
type PlanCache interface {
	// Return the cached plan and whether it was found.
	Get(ctx context.Context, key string) (*domain.InvestmentPlan, bool, error)
	Put(ctx context.Context, key string, plan *domain.InvestmentPlan) error
}
