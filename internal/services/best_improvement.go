package services

import (
	"context"
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// BestImprovement evaluates every (position, candidate) pair each round and
// applies only the single swap with the largest positive priority delta.
// Ties keep the first pair found in scan order.
type BestImprovement struct{}

func (BestImprovement) Improve(
	ctx context.Context,
	items []domain.Item,
	sol *domain.Solution,
	budget float64,
) (SearchStats, error) {
	var stats SearchStats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Rounds++

		best, ok := bestImprovingSwap(items, sol, budget)
		if !ok {
			return stats, nil
		}

		if err := sol.Replace(items, best.pos, best.candidate, budget); err != nil {
			return stats, fmt.Errorf("best improvement: %w", err)
		}
		stats.Moves++
	}
}

func bestImprovingSwap(items []domain.Item, sol *domain.Solution, budget float64) (swapMove, bool) {
	var best swapMove
	found := false

	for pos := 0; pos < sol.Len(); pos++ {
		for cand := range items {
			move, ok := evaluateSwap(items, sol, budget, pos, cand)
			if !ok || move.delta <= 0 {
				continue
			}
			if !found || move.delta > best.delta {
				best = move
				found = true
			}
		}
	}

	return best, found
}
