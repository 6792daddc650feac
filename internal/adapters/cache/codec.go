package cache

import (
	"encoding/json"
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/api/dto"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

func encodePlan(plan *domain.InvestmentPlan) ([]byte, error) {
	b, err := json.Marshal(dto.FromPlan(plan))
	if err != nil {
		return nil, fmt.Errorf("encode plan run_id=%s: %w", plan.RunID, err)
	}
	return b, nil
}

func decodePlan(b []byte) (*domain.InvestmentPlan, error) {
	var r dto.PlanResponse
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return r.ToDomain(), nil
}
