package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/repositories"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/ports"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

var (
	_ ports.PlanCache = (*RedisPlanCache)(nil)
	_ ports.PlanCache = (*SQLPlanCache)(nil)
)

func samplePlan() *domain.InvestmentPlan {
	return &domain.InvestmentPlan{
		RunID:      "3f1c",
		CreatedAt:  time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC),
		Strategy:   "best-improvement",
		Alpha:      0.3,
		Budget:     800,
		Seed:       42,
		Iterations: 100,
		Elapsed:    2 * time.Second,
		Items: []domain.PlannedItem{
			{Item: domain.Item{ItemID: 2, Neighborhood: "Posse", Population: 10921, Criticality: 8, ImpactArea: 400, Cost: 50, Priority: 64}, EquipmentCount: 2},
		},
		TotalCost:      50,
		TotalPriority:  64,
		TotalEquipment: 2,
	}
}

func checkPlan(t *testing.T, got *domain.InvestmentPlan) {
	t.Helper()

	want := samplePlan()
	if got.RunID != want.RunID || !got.CreatedAt.Equal(want.CreatedAt) || got.Elapsed != want.Elapsed {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.Seed != want.Seed || got.TotalEquipment != want.TotalEquipment || got.TotalPriority != want.TotalPriority {
		t.Fatalf("totals mismatch: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0] != want.Items[0] {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
}

func TestRedisPlanCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := NewRedisPlanCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)

	if _, ok, err := c.Get(ctx, "plan:abc"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%t err=%v", ok, err)
	}

	if err := c.Put(ctx, "plan:abc", samplePlan()); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "plan:abc")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%t err=%v", ok, err)
	}
	checkPlan(t, got)

	mr.FastForward(2 * time.Hour)
	if _, ok, err := c.Get(ctx, "plan:abc"); err != nil || ok {
		t.Fatalf("expected expiry, got ok=%t err=%v", ok, err)
	}
}

func TestRedisPlanCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	if err := mr.Set("plan:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewRedisPlanCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	if _, _, err := c.Get(context.Background(), "plan:bad"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRedisPlanCacheUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedisPlanCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	mr.Close()

	if _, _, err := c.Get(context.Background(), "plan:abc"); err == nil {
		t.Fatal("expected error from a closed server")
	}
}

func TestSQLPlanCache(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSQLPlanCache(db, repositories.SQLite, time.Hour)
	c.now = func() time.Time { return now }

	if _, ok, err := c.Get(ctx, "plan:abc"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%t err=%v", ok, err)
	}

	if err := c.Put(ctx, "plan:abc", samplePlan()); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Overwrite is allowed.
	if err := c.Put(ctx, "plan:abc", samplePlan()); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, ok, err := c.Get(ctx, "plan:abc")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%t err=%v", ok, err)
	}
	checkPlan(t, got)

	now = now.Add(61 * time.Minute)
	if _, ok, err := c.Get(ctx, "plan:abc"); err != nil || ok {
		t.Fatalf("expected expiry, got ok=%t err=%v", ok, err)
	}
}
