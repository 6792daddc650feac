package services

import (
	"context"
	"fmt"
	"log"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// TwoSwap replaces two selected items by two unselected ones at once.
//
// Positions are scanned as i < j and candidates as unordered pairs a < b over the
// unselected items in index order. The first pair that fits the budget and
// strictly raises the combined priority is applied and the scan restarts.
// MaxRounds bounds the number of applied moves. When it is spent while an
// improving pair still exists, the current solution is returned with Capped set.
type TwoSwap struct {
	MaxRounds int
}

func (t TwoSwap) Improve(
	ctx context.Context,
	items []domain.Item,
	sol *domain.Solution,
	budget float64,
) (SearchStats, error) {
	var stats SearchStats
	if sol.Len() < 2 {
		return stats, nil
	}

	maxRounds := t.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultTwoSwapMaxRounds
	}

	for stats.Rounds < maxRounds {
		stats.Rounds++

		move, ok, err := firstImprovingPairSwap(ctx, items, sol, budget)
		if err != nil {
			return stats, err
		}
		if !ok {
			return stats, nil
		}

		if err := sol.ReplacePair(items, move.p1, move.p2, move.c1, move.c2, budget); err != nil {
			return stats, fmt.Errorf("two swap: %w", err)
		}
		stats.Moves++
	}

	// The budget ran out on an improving move; check whether one more was available.
	_, improvable, err := firstImprovingPairSwap(ctx, items, sol, budget)
	if err != nil {
		return stats, err
	}
	if !improvable {
		return stats, nil
	}

	stats.Capped = true
	log.Printf("op=local_search.two_swap rounds=%d capped=true objective=%.2f", stats.Rounds, sol.TotalPriority())
	return stats, nil
}

func firstImprovingPairSwap(
	ctx context.Context,
	items []domain.Item,
	sol *domain.Solution,
	budget float64,
) (pairMove, bool, error) {
	outside := unselected(items, sol)

	for p1 := 0; p1 < sol.Len(); p1++ {
		if err := ctx.Err(); err != nil {
			return pairMove{}, false, err
		}

		for p2 := p1 + 1; p2 < sol.Len(); p2++ {
			for a := 0; a < len(outside); a++ {
				for b := a + 1; b < len(outside); b++ {
					move, ok := evaluatePairSwap(items, sol, budget, p1, p2, outside[a], outside[b])
					if ok {
						return move, true, nil
					}
				}
			}
		}
	}

	return pairMove{}, false, nil
}
