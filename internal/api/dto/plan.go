package dto

import (
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// PlanResponse is the JSON form of an investment plan, shared by the plan
// caches and the planner's JSON output.
type PlanResponse struct {
	RunID          string                `json:"run_id"`
	CreatedAt      time.Time             `json:"created_at"`
	Strategy       string                `json:"strategy"`
	Alpha          float64               `json:"alpha"`
	Budget         float64               `json:"budget"`
	Seed           uint64                `json:"seed"`
	Iterations     int                   `json:"iterations"`
	Truncated      bool                  `json:"truncated"`
	ElapsedMs      int64                 `json:"elapsed_ms"`
	TotalCost      float64               `json:"total_cost"`
	TotalPriority  float64               `json:"total_priority"`
	TotalEquipment int                   `json:"total_equipment"`
	Items          []PlannedItemResponse `json:"items"`
}

func FromPlan(p *domain.InvestmentPlan) PlanResponse {
	out := PlanResponse{
		RunID:          p.RunID,
		CreatedAt:      p.CreatedAt,
		Strategy:       p.Strategy,
		Alpha:          p.Alpha,
		Budget:         p.Budget,
		Seed:           p.Seed,
		Iterations:     p.Iterations,
		Truncated:      p.Truncated,
		ElapsedMs:      p.Elapsed.Milliseconds(),
		TotalCost:      p.TotalCost,
		TotalPriority:  p.TotalPriority,
		TotalEquipment: p.TotalEquipment,
		Items:          make([]PlannedItemResponse, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		out.Items = append(out.Items, FromPlannedItem(it))
	}
	return out
}

func (r PlanResponse) ToDomain() *domain.InvestmentPlan {
	p := &domain.InvestmentPlan{
		RunID:          r.RunID,
		CreatedAt:      r.CreatedAt,
		Strategy:       r.Strategy,
		Alpha:          r.Alpha,
		Budget:         r.Budget,
		Seed:           r.Seed,
		Iterations:     r.Iterations,
		Truncated:      r.Truncated,
		Elapsed:        time.Duration(r.ElapsedMs) * time.Millisecond,
		TotalCost:      r.TotalCost,
		TotalPriority:  r.TotalPriority,
		TotalEquipment: r.TotalEquipment,
		Items:          make([]domain.PlannedItem, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		p.Items = append(p.Items, it.ToDomain())
	}
	return p
}
