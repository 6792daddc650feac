package services

import (
	"context"
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// FirstImprovement applies the first feasible single swap that strictly raises
// the priority of a position, then restarts from position 0.
type FirstImprovement struct{}

func (FirstImprovement) Improve(
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

		move, ok := firstImprovingSwap(items, sol, budget)
		if !ok {
			return stats, nil
		}

		if err := sol.Replace(items, move.pos, move.candidate, budget); err != nil {
			return stats, fmt.Errorf("first improvement: %w", err)
		}
		stats.Moves++
	}
}

func firstImprovingSwap(items []domain.Item, sol *domain.Solution, budget float64) (swapMove, bool) {
	for pos := 0; pos < sol.Len(); pos++ {
		for cand := range items {
			move, ok := evaluateSwap(items, sol, budget, pos, cand)
			if ok && move.delta > 0 {
				return move, true
			}
		}
	}
	return swapMove{}, false
}
