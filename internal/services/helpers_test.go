package services

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// randomItems builds a dataset shaped like the generated neighborhood files.
func randomItems(t *testing.T, n int, seed uint64) []domain.Item {
	t.Helper()

	r := rand.New(rand.NewPCG(seed, 7))
	raw := make([]domain.Item, n)
	for i := range raw {
		raw[i] = domain.Item{
			ItemID:      i,
			Criticality: float64(1 + r.IntN(10)),
			ImpactArea:  float64(500 + r.IntN(2500)),
			Cost:        float64(20 + r.IntN(130)),
		}
	}

	items, err := domain.ComputePriorities(raw)
	if err != nil {
		t.Fatalf("compute priorities: %v", err)
	}
	return items
}

// checkSolution verifies every invariant a returned solution must satisfy.
func checkSolution(t *testing.T, items []domain.Item, sol *domain.Solution, budget float64) {
	t.Helper()

	if sol.TotalCost() > budget {
		t.Fatalf("total cost %v exceeds budget %v", sol.TotalCost(), budget)
	}

	seen := map[int]bool{}
	var cost, priority float64
	for _, idx := range sol.Members() {
		id := items[idx].ItemID
		if seen[id] {
			t.Fatalf("item id %d selected twice", id)
		}
		seen[id] = true
		cost += items[idx].Cost
		priority += items[idx].Priority
	}

	if math.Abs(cost-sol.TotalCost()) > 1e-6 {
		t.Fatalf("total cost %v, recomputed %v", sol.TotalCost(), cost)
	}
	if math.Abs(priority-sol.TotalPriority()) > 1e-6 {
		t.Fatalf("total priority %v, recomputed %v", sol.TotalPriority(), priority)
	}
}

func solutionOf(items []domain.Item, budget float64, idxs ...int) *domain.Solution {
	sol := domain.NewSolution(len(items))
	for _, idx := range idxs {
		sol.Add(items, idx, budget)
	}
	return sol
}

func twoNeighborhoods() []domain.Item {
	return []domain.Item{
		{ItemID: 1, Cost: 100, ImpactArea: 1000, Criticality: 5},
		{ItemID: 2, Cost: 50, ImpactArea: 400, Criticality: 8},
	}
}
