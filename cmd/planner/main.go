package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/cache"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/export"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/repositories"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/api/dto"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/config"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/ports"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/services"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the composition root of the planner.
// It wires the item source, plan cache and plan store behind ports and runs one GRASP plan,
// or a construction-only baseline when -baseline is given.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var (
		strategy = string(settings.Solver.Strategy)
		source   = "file"
		format   = "table"
		seed     = settings.Solver.Seed
		baseline = ""
		bcfg     = services.DefaultBaselineConfig()
	)
	flag.Float64Var(&settings.Solver.Budget, "budget", settings.Solver.Budget, "budget limit (R$ thousand)")
	flag.Float64Var(&settings.Solver.Alpha, "alpha", settings.Solver.Alpha, "RCL greediness in [0,1]; 0 is purely greedy")
	flag.IntVar(&settings.Solver.MaxIterations, "iterations", settings.Solver.MaxIterations, "GRASP iterations")
	flag.StringVar(&strategy, "strategy", strategy, "local search: first-improvement, best-improvement, two-swap (or 1, 3, 2)")
	flag.Uint64Var(&seed, "seed", seed, "random seed, 0 for a time based one")
	flag.IntVar(&settings.Solver.Workers, "workers", settings.Solver.Workers, "parallel iterations")
	flag.DurationVar(&settings.Solver.TimeLimit, "time-limit", settings.Solver.TimeLimit, "wall-clock limit, 0 for none")
	flag.IntVar(&settings.Solver.TwoSwapMaxRounds, "two-swap-rounds", settings.Solver.TwoSwapMaxRounds, "two-swap round cap")
	flag.StringVar(&settings.DatasetPath, "dataset", settings.DatasetPath, "dataset file (.csv or .json)")
	flag.StringVar(&source, "source", source, "item source: file or db")
	flag.StringVar(&settings.OutputPath, "out", settings.OutputPath, "result CSV path, empty to skip")
	flag.StringVar(&settings.ParquetPath, "parquet", settings.ParquetPath, "result Parquet path, empty to skip")
	flag.StringVar(&format, "format", format, "console output: table or json")
	flag.StringVar(&baseline, "baseline", baseline, "construction-only run instead of GRASP: greedy or top-k")
	flag.IntVar(&bcfg.MaxItems, "max-items", bcfg.MaxItems, "greedy baseline selection cap, 0 for none")
	flag.IntVar(&bcfg.K, "top-k", bcfg.K, "top-k baseline sample width")
	flag.Float64Var(&bcfg.Noise, "noise", bcfg.Noise, "top-k baseline ranking noise in [0,1)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			settings.SetSeed(seed)
		}
	})

	settings.Solver.Strategy, err = services.ParseStrategy(strategy)
	if err != nil {
		log.Fatal(err)
	}

	var base *services.BaselineConfig
	if baseline != "" {
		bcfg.Method, err = services.ParseBaseline(baseline)
		if err != nil {
			log.Fatal(err)
		}
		bcfg.Budget = settings.Solver.Budget
		bcfg.Seed = settings.Solver.Seed
		base = &bcfg
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, settings, base, source, format); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, settings config.Settings, baseline *services.BaselineConfig, source, format string) error {
	db, dialect, err := repositories.OpenStorage(ctx, settings.DatabaseURL, settings.DBPath)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if db != nil {
		defer db.Close()
		log.Printf("storage=%s", dialect)
	}

	var repo ports.ItemRepository
	switch source {
	case "file":
		repo = repositories.NewFileItemRepository(settings.DatasetPath)
		log.Printf("source=file path=%s", settings.DatasetPath)
	case "db":
		if db == nil {
			return fmt.Errorf("planner: source=db requires DATABASE_URL or DB_PATH")
		}
		repo = repositories.NewSQLItemRepository(db)
		log.Printf("source=db")
	default:
		return fmt.Errorf("planner: unknown source %q", source)
	}

	var store ports.PlanStore
	if db != nil {
		store = repositories.NewSQLPlanStore(db, dialect)
	}

	// Time seeded runs are not reproducible, so they never read or fill the cache.
	var planCache ports.PlanCache
	switch {
	case settings.RandomSeed:
	case settings.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: settings.RedisAddr})
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client, settings.CacheTTL)
		log.Printf("plan cache=redis addr=%s ttl=%s", settings.RedisAddr, settings.CacheTTL)
	case db != nil:
		planCache = cache.NewSQLPlanCache(db, dialect, settings.CacheTTL)
		log.Printf("plan cache=sql ttl=%s", settings.CacheTTL)
	}

	plan, err := services.PlanInvestments(ctx, services.PlanInvestmentsRequest{
		Solver:            settings.Solver,
		EquipmentUnitCost: settings.EquipmentUnitCost,
		Baseline:          baseline,
	}, repo, planCache, store)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.FromPlan(plan)); err != nil {
			return fmt.Errorf("planner: encode plan: %w", err)
		}
	default:
		if err := export.WriteReport(os.Stdout, plan); err != nil {
			return fmt.Errorf("planner: %w", err)
		}
	}

	if plan.Empty() {
		return nil
	}

	if settings.OutputPath != "" {
		if err := export.WritePlanCSVFile(settings.OutputPath, plan); err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		log.Printf("run_id=%s result saved path=%s", plan.RunID, settings.OutputPath)
	}
	if settings.ParquetPath != "" {
		if err := export.WritePlanParquet(settings.ParquetPath, plan); err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		log.Printf("run_id=%s result saved path=%s", plan.RunID, settings.ParquetPath)
	}

	return nil
}
