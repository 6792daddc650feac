package config

import (
	"errors"
	"runtime"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/services"
)

// Settings is everything the planner binaries read from the environment.
type Settings struct {
	Solver            services.Config
	EquipmentUnitCost float64
	// RandomSeed is set when SEED was absent or 0 and a time based seed was drawn.
	// Such runs are not reproducible and skip the plan cache.
	RandomSeed bool

	DatasetPath string
	DBPath      string
	DatabaseURL string
	RedisAddr   string
	CacheTTL    time.Duration
	OutputPath  string
	ParquetPath string
}

// SetSeed fixes the solver seed. Seed 0 draws a time based seed and marks the
// run as RandomSeed.
func (s *Settings) SetSeed(seed uint64) {
	s.RandomSeed = seed == 0
	if s.RandomSeed {
		seed = uint64(time.Now().UnixNano())
	}
	s.Solver.Seed = seed
}

// Load reads Settings from the environment, applying the documented defaults.
// Every malformed variable is reported, not just the first.
func Load() (Settings, error) {
	s := Settings{
		Solver:      services.DefaultConfig(),
		DatasetPath: Get("DATASET_PATH", "data/nova_iguacu_dataset_heuristica_100.csv"),
		DBPath:      Get("DB_PATH", ""),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		OutputPath:  Get("OUTPUT_PATH", "solution_grasp.csv"),
		ParquetPath: Get("PARQUET_PATH", ""),
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	s.Solver.Budget, err = GetFloat("BUDGET", s.Solver.Budget)
	collect(err)
	s.Solver.Alpha, err = GetFloat("ALPHA", s.Solver.Alpha)
	collect(err)
	s.Solver.MaxIterations, err = GetInt("MAX_ITERATIONS", s.Solver.MaxIterations)
	collect(err)
	seed, err := GetUint64("SEED", 0)
	collect(err)
	s.SetSeed(seed)
	s.Solver.Workers, err = GetInt("WORKERS", runtime.GOMAXPROCS(0))
	collect(err)
	s.Solver.TimeLimit, err = GetDuration("TIME_LIMIT", 0)
	collect(err)
	s.Solver.TwoSwapMaxRounds, err = GetInt("TWO_SWAP_MAX_ROUNDS", services.DefaultTwoSwapMaxRounds)
	collect(err)
	s.EquipmentUnitCost, err = GetFloat("EQUIPMENT_UNIT_COST", services.DefaultEquipmentUnitCost)
	collect(err)
	s.CacheTTL, err = GetDuration("CACHE_TTL", 24*time.Hour)
	collect(err)

	if v := Get("LOCAL_SEARCH", ""); v != "" {
		s.Solver.Strategy, err = services.ParseStrategy(v)
		collect(err)
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	return s, nil
}
