package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Strategy names a local search procedure.
type Strategy string

const (
	FirstImprovementStrategy Strategy = "first-improvement"
	BestImprovementStrategy  Strategy = "best-improvement"
	TwoSwapStrategy          Strategy = "two-swap"
)

// DefaultTwoSwapMaxRounds bounds Two-Swap when no explicit cap is configured.
const DefaultTwoSwapMaxRounds = 100

// ParseStrategy accepts the strategy names and the legacy numeric selectors
// (1 first-improvement, 2 two-swap, 3 best-improvement).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-improvement", "first", "1":
		return FirstImprovementStrategy, nil
	case "two-swap", "2-swap", "2":
		return TwoSwapStrategy, nil
	case "best-improvement", "best", "3":
		return BestImprovementStrategy, nil
	}
	return "", fmt.Errorf("parse strategy %q: %w", s, domain.ErrUnknownStrategy)
}

// SearchStats summarizes one local search invocation.
type SearchStats struct {
	Rounds int
	Moves  int
	// Capped is set when Two-Swap stopped on its round limit with an improving
	// pair still available. Reaching a local optimum on the last round does not set it.
	Capped bool
}

// LocalSearch refines a feasible solution in place by replacing selected items
// with unselected ones. Implementations never change the solution size, never
// violate the budget, and never touch the item set itself.
type LocalSearch interface {
	Improve(ctx context.Context, items []domain.Item, sol *domain.Solution, budget float64) (SearchStats, error)
}

// NewLocalSearch returns the implementation for strategy s.
func NewLocalSearch(s Strategy, twoSwapMaxRounds int) (LocalSearch, error) {
	switch s {
	case FirstImprovementStrategy:
		return FirstImprovement{}, nil
	case BestImprovementStrategy:
		return BestImprovement{}, nil
	case TwoSwapStrategy:
		if twoSwapMaxRounds <= 0 {
			twoSwapMaxRounds = DefaultTwoSwapMaxRounds
		}
		return TwoSwap{MaxRounds: twoSwapMaxRounds}, nil
	}
	return nil, fmt.Errorf("new local search %q: %w", s, domain.ErrUnknownStrategy)
}
