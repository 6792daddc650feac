package services

import (
	"math/rand/v2"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Construct builds one feasible solution with the randomized greedy procedure.
//
// Each step samples uniformly from the restricted candidate list computed against
// the budget still available. The sampled item is added when it fits and is then
// dropped from the pool either way. Construction stops when the pool is exhausted
// or the RCL comes back empty. The returned solution may be empty.
func Construct(items []domain.Item, budget, alpha float64, rng *rand.Rand) *domain.Solution {
	pool := newCandidatePool(items)
	sol := domain.NewSolution(len(items))

	for pool.Len() > 0 {
		rcl := buildRCL(pool, budget-sol.TotalCost(), alpha)
		if len(rcl) == 0 {
			break
		}

		chosen := rcl[rng.IntN(len(rcl))]
		sol.Add(items, chosen, budget)
		pool.remove(chosen)
	}

	return sol
}
