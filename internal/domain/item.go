package domain

import (
	"fmt"
	"math"
)

// Represents one candidate infrastructure investment, one per neighborhood.
// Cost is expressed in thousands of reais. Priority is derived once per dataset
// load by ComputePriorities and is never recomputed during a run.
type Item struct {
	ItemID       int
	Neighborhood string
	Population   int
	Criticality  float64
	ImpactArea   float64
	Cost         float64
	Priority     float64
}

// Priority returns (impactArea * criticality) / cost.
func Priority(impactArea, criticality, cost float64) (float64, error) {
	if !(cost > 0) || math.IsInf(cost, 0) {
		return 0, fmt.Errorf("priority: cost=%v: %w", cost, ErrInvalidCost)
	}
	p := impactArea * criticality / cost
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("priority: non-finite value for impact=%v criticality=%v cost=%v", impactArea, criticality, cost)
	}
	return p, nil
}

// ComputePriorities returns a copy of items with Priority filled in.
// The input slice is left untouched.
func ComputePriorities(items []Item) ([]Item, error) {
	if len(items) == 0 {
		return nil, ErrEmptyDataset
	}

	out := make([]Item, len(items))
	seen := make(map[int]struct{}, len(items))
	for i, it := range items {
		if _, ok := seen[it.ItemID]; ok {
			return nil, fmt.Errorf("compute priorities: duplicate item_id=%d at row %d", it.ItemID, i)
		}
		seen[it.ItemID] = struct{}{}

		p, err := Priority(it.ImpactArea, it.Criticality, it.Cost)
		if err != nil {
			return nil, fmt.Errorf("compute priorities: item_id=%d: %w", it.ItemID, err)
		}
		it.Priority = p
		out[i] = it
	}

	return out, nil
}
