package services

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
)

// Baseline names a construction-only heuristic run without GRASP iterations or
// local search. Baselines give a reference objective for a dataset.
type Baseline string

const (
	// GreedyBaseline scans items by descending priority and adds every one that
	// still fits, up to MaxItems.
	GreedyBaseline Baseline = "greedy"
	// TopKBaseline repeatedly samples one of the K best remaining items and stops
	// at the first sampled item that does not fit.
	TopKBaseline Baseline = "top-k"
)

func ParseBaseline(s string) (Baseline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return GreedyBaseline, nil
	case "top-k", "topk":
		return TopKBaseline, nil
	}
	return "", fmt.Errorf("parse baseline %q: %w", s, domain.ErrUnknownStrategy)
}

type BaselineConfig struct {
	Method Baseline
	Budget float64
	// MaxItems caps the greedy selection size. Zero means no cap.
	MaxItems int
	// K is the width of the top-k sample.
	K int
	// Noise scales each item's ranking key by a factor drawn from
	// [1-Noise, 1+Noise]. Reported priorities are never perturbed.
	Noise float64
	Seed  uint64
}

func DefaultBaselineConfig() BaselineConfig {
	return BaselineConfig{
		Method: GreedyBaseline,
		Budget: 800,
		K:      3,
		Noise:  0.1,
	}
}

func (c BaselineConfig) Validate() error {
	if !(c.Budget > 0) {
		return fmt.Errorf("budget must be > 0, got %v: %w", c.Budget, domain.ErrInvalidConfig)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max items must be >= 0, got %d: %w", c.MaxItems, domain.ErrInvalidConfig)
	}
	switch c.Method {
	case GreedyBaseline:
	case TopKBaseline:
		if c.K < 1 {
			return fmt.Errorf("top-k width must be >= 1, got %d: %w", c.K, domain.ErrInvalidConfig)
		}
		if !(c.Noise >= 0 && c.Noise < 1) {
			return fmt.Errorf("noise must be in [0,1), got %v: %w", c.Noise, domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("baseline %q: %w", c.Method, domain.ErrUnknownStrategy)
	}
	return nil
}

// byPriority returns item indices sorted by descending key, ties by index.
// A nil keys slice ranks by the items' own priority.
func byPriority(items []domain.Item, keys []float64) []int {
	key := func(i int) float64 {
		if keys != nil {
			return keys[i]
		}
		return items[i].Priority
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(key(b), key(a))
	})
	return order
}

// Greedy adds items in descending priority order, skipping those that no longer
// fit, until maxItems are selected. maxItems <= 0 means no cap.
func Greedy(items []domain.Item, budget float64, maxItems int) *domain.Solution {
	sol := domain.NewSolution(len(items))
	for _, idx := range byPriority(items, nil) {
		if maxItems > 0 && sol.Len() >= maxItems {
			break
		}
		sol.Add(items, idx, budget)
	}
	return sol
}

// TopK samples uniformly among the k best remaining items and stops at the
// first sampled item that does not fit.
func TopK(items []domain.Item, budget float64, k int, noise float64, rng *rand.Rand) *domain.Solution {
	var keys []float64
	if noise > 0 {
		keys = make([]float64, len(items))
		for i, it := range items {
			keys[i] = it.Priority * (1 + noise*(2*rng.Float64()-1))
		}
	}

	order := byPriority(items, keys)
	sol := domain.NewSolution(len(items))
	for len(order) > 0 {
		j := rng.IntN(min(k, len(order)))
		if !sol.Add(items, order[j], budget) {
			break
		}
		order = slices.Delete(order, j, j+1)
	}
	return sol
}

// RunBaseline builds one solution with the configured baseline and reports it
// in the same shape as Solve.
func RunBaseline(ctx context.Context, items []domain.Item, cfg BaselineConfig) (_ *Result, err error) {
	defer obs.Time(ctx, "baseline.Run")(&err)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("run baseline: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("run baseline: %w", domain.ErrEmptyDataset)
	}

	prioritized, err := domain.ComputePriorities(items)
	if err != nil {
		return nil, fmt.Errorf("run baseline: %w", err)
	}

	start := time.Now()

	var sol *domain.Solution
	switch cfg.Method {
	case GreedyBaseline:
		sol = Greedy(prioritized, cfg.Budget, cfg.MaxItems)
	case TopKBaseline:
		sol = TopK(prioritized, cfg.Budget, cfg.K, cfg.Noise, rand.New(rand.NewPCG(cfg.Seed, 0)))
	}

	res := &Result{
		Items:         prioritized,
		Best:          sol,
		BestIteration: 0,
		Iterations:    1,
		Elapsed:       time.Since(start),
	}
	if sol.Len() == 0 {
		res.BestIteration = -1
	}

	log.Printf("op=baseline.summary method=%s budget=%.2f objective=%.2f cost=%.2f items=%d",
		cfg.Method, cfg.Budget, res.TotalPriority(), res.TotalCost(), sol.Len())

	return res, nil
}
