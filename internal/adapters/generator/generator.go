package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Value ranges of the generated attributes. Upper bounds are exclusive.
const (
	MinCriticality = 1
	MaxCriticality = 11
	MinImpact      = 500
	MaxImpact      = 3000
	MinCost        = 20
	MaxCost        = 150
)

// DefaultSizes are the dataset sizes produced by cmd/datagen.
var DefaultSizes = []int{100, 1000, 10000}

// FileName is the conventional dataset file name for n rows.
func FileName(n int) string {
	return fmt.Sprintf("nova_iguacu_dataset_heuristica_%d.csv", n)
}

// Neighborhoods returns n names: the real list first, then "Bairro 1", "Bairro 2"...
func Neighborhoods(n int) []string {
	if n <= len(baseNeighborhoods) {
		return append([]string(nil), baseNeighborhoods[:n]...)
	}
	out := append(make([]string, 0, n), baseNeighborhoods...)
	for i := 1; len(out) < n; i++ {
		out = append(out, fmt.Sprintf("Bairro %d", i))
	}
	return out
}

// Generate builds a dataset of n items. Known neighborhoods keep their census
// population; the rest draw uniformly from [min, 2*max] of the census values.
func Generate(n int, rng *rand.Rand) []domain.Item {
	minPop, maxPop := populationRange()
	extMax := 2 * maxPop

	names := Neighborhoods(n)
	items := make([]domain.Item, n)
	for i, name := range names {
		pop, ok := realPopulation[name]
		if !ok {
			pop = minPop + rng.IntN(extMax-minPop+1)
		}
		items[i] = domain.Item{
			ItemID:       i,
			Neighborhood: name,
			Population:   pop,
			Criticality:  float64(MinCriticality + rng.IntN(MaxCriticality-MinCriticality)),
			ImpactArea:   float64(MinImpact + rng.IntN(MaxImpact-MinImpact)),
			Cost:         float64(MinCost + rng.IntN(MaxCost-MinCost)),
		}
	}
	return items
}

func populationRange() (lo, hi int) {
	first := true
	for _, p := range realPopulation {
		if first || p < lo {
			lo = p
		}
		if first || p > hi {
			hi = p
		}
		first = false
	}
	return lo, hi
}

// Summary is the min, max and mean of one column.
type Summary struct {
	Min, Max, Mean float64
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%g max=%g mean=%.2f", s.Min, s.Max, s.Mean)
}

type Stats struct {
	Population  Summary
	Criticality Summary
	Impact      Summary
	Cost        Summary
}

// Describe summarizes every numeric column of items. items must be non-empty.
func Describe(items []domain.Item) Stats {
	pop := make([]float64, len(items))
	crit := make([]float64, len(items))
	impact := make([]float64, len(items))
	cost := make([]float64, len(items))
	for i, it := range items {
		pop[i] = float64(it.Population)
		crit[i] = it.Criticality
		impact[i] = it.ImpactArea
		cost[i] = it.Cost
	}
	return Stats{
		Population:  summarize(pop),
		Criticality: summarize(crit),
		Impact:      summarize(impact),
		Cost:        summarize(cost),
	}
}

func summarize(x []float64) Summary {
	return Summary{Min: floats.Min(x), Max: floats.Max(x), Mean: stat.Mean(x, nil)}
}
