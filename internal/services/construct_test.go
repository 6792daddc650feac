package services

import (
	"math/rand/v2"
	"testing"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

func TestConstructGreedyExample(t *testing.T) {
	items, err := domain.ComputePriorities(twoNeighborhoods())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for seed := uint64(0); seed < 10; seed++ {
		sol := Construct(items, 120, 0, rand.New(rand.NewPCG(seed, 0)))

		if sol.Len() != 1 || items[sol.At(0)].ItemID != 2 {
			t.Fatalf("seed %d: members = %v, want only item 2", seed, sol.Members())
		}
		if sol.TotalCost() != 50 || sol.TotalPriority() != 64 {
			t.Fatalf("seed %d: cost=%v priority=%v, want 50, 64", seed, sol.TotalCost(), sol.TotalPriority())
		}
	}
}

func TestConstructNothingFits(t *testing.T) {
	items, _ := domain.ComputePriorities([]domain.Item{{ItemID: 1, Cost: 500, ImpactArea: 10, Criticality: 1}})

	sol := Construct(items, 100, 0.3, rand.New(rand.NewPCG(1, 0)))
	if sol.Len() != 0 || sol.TotalCost() != 0 {
		t.Fatalf("expected empty solution, got %v", sol.Members())
	}
}

func TestConstructFeasibleAcrossSeeds(t *testing.T) {
	items := randomItems(t, 200, 42)

	for _, alpha := range []float64{0, 0.3, 1} {
		for seed := uint64(0); seed < 25; seed++ {
			sol := Construct(items, 800, alpha, rand.New(rand.NewPCG(seed, 0)))
			if sol.Len() == 0 {
				t.Fatalf("alpha=%v seed=%d: expected a non-empty solution", alpha, seed)
			}
			checkSolution(t, items, sol, 800)
		}
	}
}

func TestConstructSameSeedSameSolution(t *testing.T) {
	items := randomItems(t, 100, 3)

	a := Construct(items, 500, 0.4, rand.New(rand.NewPCG(9, 1)))
	b := Construct(items, 500, 0.4, rand.New(rand.NewPCG(9, 1)))

	am, bm := a.Members(), b.Members()
	if len(am) != len(bm) {
		t.Fatalf("lengths differ: %v vs %v", am, bm)
	}
	for i := range am {
		if am[i] != bm[i] {
			t.Fatalf("members differ: %v vs %v", am, bm)
		}
	}
}
