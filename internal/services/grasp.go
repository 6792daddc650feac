package services

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
	"golang.org/x/sync/errgroup"
)

// Config holds the GRASP knobs.
type Config struct {
	Budget        float64
	Alpha         float64
	MaxIterations int
	Strategy      Strategy
	// Seed drives every iteration generator; iteration i uses PCG(Seed, i).
	Seed    uint64
	Workers int
	// TimeLimit bounds the whole run. Zero means no limit.
	TimeLimit        time.Duration
	TwoSwapMaxRounds int
}

// DefaultConfig mirrors the parameters used for the Nova Iguaçu datasets.
func DefaultConfig() Config {
	return Config{
		Budget:           800,
		Alpha:            0.3,
		MaxIterations:    100,
		Strategy:         FirstImprovementStrategy,
		Workers:          runtime.GOMAXPROCS(0),
		TwoSwapMaxRounds: DefaultTwoSwapMaxRounds,
	}
}

func (c Config) Validate() error {
	if !(c.Budget > 0) {
		return fmt.Errorf("budget must be > 0, got %v: %w", c.Budget, domain.ErrInvalidConfig)
	}
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return fmt.Errorf("alpha must be in [0,1], got %v: %w", c.Alpha, domain.ErrInvalidConfig)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations must be >= 0, got %d: %w", c.MaxIterations, domain.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", c.Workers, domain.ErrInvalidConfig)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("time limit must be >= 0, got %v: %w", c.TimeLimit, domain.ErrInvalidConfig)
	}
	if c.TwoSwapMaxRounds < 1 {
		return fmt.Errorf("two-swap max rounds must be >= 1, got %d: %w", c.TwoSwapMaxRounds, domain.ErrInvalidConfig)
	}
	switch c.Strategy {
	case FirstImprovementStrategy, BestImprovementStrategy, TwoSwapStrategy:
	default:
		return fmt.Errorf("strategy %q: %w", c.Strategy, domain.ErrUnknownStrategy)
	}
	return nil
}

// Result is the outcome of Solve.
type Result struct {
	// Items is the priority-annotated item set the solution indexes into.
	Items []domain.Item
	Best  *domain.Solution
	// BestIteration is -1 when no iteration produced a non-empty solution.
	BestIteration int
	Iterations    int
	Truncated     bool
	Elapsed       time.Duration
}

// Selected returns the chosen items in insertion order. Best is always built over
// Items, the empty sentinel included, so Resolve cannot fail here.
func (r *Result) Selected() []domain.Item {
	out, _ := r.Best.Resolve(r.Items)
	return out
}

func (r *Result) TotalCost() float64     { return r.Best.TotalCost() }
func (r *Result) TotalPriority() float64 { return r.Best.TotalPriority() }

type iterationResult struct {
	index    int
	solution *domain.Solution
}

// incumbent is the running best-of-N accumulator.
type incumbent struct {
	iteration int
	solution  *domain.Solution
}

// fold keeps the strictly better result. Equal objectives keep the lower
// iteration index so parallel runs match the sequential first-found winner.
func (b incumbent) fold(r iterationResult) incumbent {
	if r.solution.Len() == 0 {
		return b
	}
	if b.solution != nil {
		bp, rp := b.solution.TotalPriority(), r.solution.TotalPriority()
		if rp < bp || (rp == bp && r.index > b.iteration) {
			return b
		}
	}
	return incumbent{iteration: r.index, solution: r.solution}
}

// Solve runs GRASP over items and returns the best solution found.
//
// Priorities are computed once up front. Iterations are independent: each builds
// a fresh candidate pool, constructs a solution and refines it with the configured
// local search. When cfg.TimeLimit expires, unfinished iterations are discarded
// and the best completed incumbent is returned with Truncated set.
func Solve(ctx context.Context, items []domain.Item, cfg Config) (_ *Result, err error) {
	defer obs.Time(ctx, "grasp.Solve")(&err)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("grasp solve: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("grasp solve: %w", domain.ErrEmptyDataset)
	}

	prioritized, err := domain.ComputePriorities(items)
	if err != nil {
		return nil, fmt.Errorf("grasp solve: %w", err)
	}

	search, err := NewLocalSearch(cfg.Strategy, cfg.TwoSwapMaxRounds)
	if err != nil {
		return nil, fmt.Errorf("grasp solve: %w", err)
	}

	start := time.Now()

	runCtx := ctx
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(cfg.Workers)

	results := make(chan iterationResult, cfg.Workers)
	waitErr := make(chan error, 1)

	go func() {
		for i := 0; i < cfg.MaxIterations; i++ {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				sol, err := runIteration(gctx, prioritized, cfg, search, i)
				if err != nil {
					// Interrupted iterations are dropped whole.
					if gctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("iteration %d: %w", i, err)
				}
				results <- iterationResult{index: i, solution: sol}
				return nil
			})
		}
		waitErr <- g.Wait()
		close(results)
	}()

	best := incumbent{iteration: -1}
	completed := 0
	for r := range results {
		completed++
		prev := best.iteration
		best = best.fold(r)
		if best.iteration != prev {
			log.Printf("op=grasp.incumbent iteration=%d objective=%.2f cost=%.2f items=%d",
				best.iteration, best.solution.TotalPriority(), best.solution.TotalCost(), best.solution.Len())
		}
	}

	if err := <-waitErr; err != nil {
		return nil, fmt.Errorf("grasp solve: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("grasp solve: %w", err)
	}

	res := &Result{
		Items:         prioritized,
		Best:          best.solution,
		BestIteration: best.iteration,
		Iterations:    completed,
		Truncated:     completed < cfg.MaxIterations,
		Elapsed:       time.Since(start),
	}
	if res.Best == nil {
		res.Best = domain.NewSolution(len(prioritized))
	}

	log.Printf(
		"op=grasp.summary strategy=%s alpha=%.2f budget=%.2f iterations=%d/%d best_iteration=%d objective=%.2f cost=%.2f truncated=%t",
		cfg.Strategy, cfg.Alpha, cfg.Budget, completed, cfg.MaxIterations,
		res.BestIteration, res.TotalPriority(), res.TotalCost(), res.Truncated,
	)

	return res, nil
}

func runIteration(
	ctx context.Context,
	items []domain.Item,
	cfg Config,
	search LocalSearch,
	i int,
) (*domain.Solution, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))

	sol := Construct(items, cfg.Budget, cfg.Alpha, rng)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := search.Improve(ctx, items, sol, cfg.Budget); err != nil {
		return nil, err
	}

	return sol, nil
}
