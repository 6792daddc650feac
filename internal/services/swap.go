package services

import "github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"

// swapMove replaces the member at pos by candidate.
type swapMove struct {
	pos       int
	candidate int
	delta     float64
}

// evaluateSwap reports whether replacing the member at pos by items[cand] keeps
// the solution within budget, and the resulting priority delta.
func evaluateSwap(items []domain.Item, sol *domain.Solution, budget float64, pos, cand int) (swapMove, bool) {
	if sol.Contains(cand) {
		return swapMove{}, false
	}
	if sol.SwapCost(items, pos, cand) > budget {
		return swapMove{}, false
	}

	return swapMove{
		pos:       pos,
		candidate: cand,
		delta:     items[cand].Priority - items[sol.At(pos)].Priority,
	}, true
}

// pairMove replaces the members at p1 and p2 by c1 and c2.
type pairMove struct {
	p1, p2 int
	c1, c2 int
}

// evaluatePairSwap reports whether the pair replacement is feasible and strictly
// raises the combined priority of the two positions.
func evaluatePairSwap(items []domain.Item, sol *domain.Solution, budget float64, p1, p2, c1, c2 int) (pairMove, bool) {
	if sol.PairSwapCost(items, p1, p2, c1, c2) > budget {
		return pairMove{}, false
	}

	out := items[sol.At(p1)].Priority + items[sol.At(p2)].Priority
	in := items[c1].Priority + items[c2].Priority
	if !(in > out) {
		return pairMove{}, false
	}

	return pairMove{p1: p1, p2: p2, c1: c1, c2: c2}, true
}

// unselected lists item indices outside the solution in ascending order.
func unselected(items []domain.Item, sol *domain.Solution) []int {
	out := make([]int, 0, len(items)-sol.Len())
	for idx := range items {
		if !sol.Contains(idx) {
			out = append(out, idx)
		}
	}
	return out
}
