package domain

import "time"

// A selected item together with the number of drainage units its budget buys.
type PlannedItem struct {
	Item
	EquipmentCount int
}

// InvestmentPlan is the persisted outcome of one GRASP run.
// An empty Items slice with zero totals is the "no feasible solution" result.
type InvestmentPlan struct {
	RunID          string
	CreatedAt      time.Time
	Strategy       string
	Alpha          float64
	Budget         float64
	Seed           uint64
	Iterations     int
	Truncated      bool
	Elapsed        time.Duration
	Items          []PlannedItem
	TotalCost      float64
	TotalPriority  float64
	TotalEquipment int
}

// Empty reports whether the plan carries no selected items.
func (p *InvestmentPlan) Empty() bool { return len(p.Items) == 0 }
