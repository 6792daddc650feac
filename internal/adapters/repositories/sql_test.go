package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	// Idempotent.
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema again: %v", err)
	}
	return db
}

func TestDialectRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c = ?;"

	if got := SQLite.Rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}
	if got, want := Postgres.Rebind(q), "SELECT a FROM t WHERE b = $1 AND c = $2;"; got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestSeedAndListItems(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	items := []domain.Item{
		{ItemID: 2, Neighborhood: "Posse", Population: 10921, Criticality: 8, ImpactArea: 400, Cost: 50},
		{ItemID: 1, Neighborhood: "Centro", Population: 25806, Criticality: 5, ImpactArea: 1000, Cost: 100},
	}
	if err := SeedItems(ctx, db, SQLite, items); err != nil {
		t.Fatalf("seed items: %v", err)
	}

	// Re-seeding updates in place.
	items[0].Cost = 60
	if err := SeedItems(ctx, db, SQLite, items[:1]); err != nil {
		t.Fatalf("reseed items: %v", err)
	}

	got, err := NewSQLItemRepository(db).ListItems(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].ItemID != 1 || got[1].ItemID != 2 {
		t.Fatalf("items not ordered by id: %+v", got)
	}
	if got[1].Cost != 60 || got[1].Neighborhood != "Posse" || got[1].Population != 10921 {
		t.Fatalf("unexpected item: %+v", got[1])
	}
}

func TestSeedItemsRejectsInvalidCost(t *testing.T) {
	db := openTestDB(t)

	err := SeedItems(context.Background(), db, SQLite, []domain.Item{{ItemID: 1, Cost: 0}})
	if !errors.Is(err, domain.ErrInvalidCost) {
		t.Fatalf("expected ErrInvalidCost, got %v", err)
	}
}

func TestPlanStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLPlanStore(openTestDB(t), SQLite)

	plan := &domain.InvestmentPlan{
		RunID:      "run-1",
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Strategy:   "two-swap",
		Alpha:      0.3,
		Budget:     800,
		Seed:       1<<63 + 5,
		Iterations: 100,
		Truncated:  true,
		Elapsed:    1500 * time.Millisecond,
		Items: []domain.PlannedItem{
			{Item: domain.Item{ItemID: 4, Neighborhood: "Austin", Population: 23216, Criticality: 9, ImpactArea: 2000, Cost: 70, Priority: 257.14}, EquipmentCount: 4},
			{Item: domain.Item{ItemID: 1, Neighborhood: "Tinguá", Population: 4094, Criticality: 2, ImpactArea: 600, Cost: 30, Priority: 40}, EquipmentCount: 2},
		},
		TotalCost:      100,
		TotalPriority:  297.14,
		TotalEquipment: 6,
	}

	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	got, err := store.GetPlan(ctx, "run-1")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}

	if got.Seed != plan.Seed || !got.CreatedAt.Equal(plan.CreatedAt) || got.Elapsed != plan.Elapsed {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if !got.Truncated || got.Strategy != "two-swap" || got.TotalEquipment != 6 {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0].ItemID != 4 || got.Items[1].Neighborhood != "Tinguá" {
		t.Fatalf("items mismatch: %+v", got.Items)
	}

	// Saving again replaces the item list.
	plan.Items = plan.Items[:1]
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("resave plan: %v", err)
	}
	got, err = store.GetPlan(ctx, "run-1")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("got %d items after resave, want 1", len(got.Items))
	}
}

func TestPlanStoreEmptyPlan(t *testing.T) {
	ctx := context.Background()
	store := NewSQLPlanStore(openTestDB(t), SQLite)

	plan := &domain.InvestmentPlan{RunID: "empty", CreatedAt: time.Now().UTC(), Strategy: "first-improvement"}
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	got, err := store.GetPlan(ctx, "empty")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if !got.Empty() || got.TotalCost != 0 {
		t.Fatalf("expected empty plan, got %+v", got)
	}
}

func TestPlanStoreNotFound(t *testing.T) {
	store := NewSQLPlanStore(openTestDB(t), SQLite)

	if _, err := store.GetPlan(context.Background(), "missing"); !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	ctx := context.Background()

	conn, dialect, err := OpenStorage(ctx, "", t.TempDir()+"/plans.db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer conn.Close()

	if dialect != SQLite {
		t.Fatalf("dialect = %v, want sqlite", dialect)
	}
	if _, err := NewSQLItemRepository(conn).ListItems(ctx); err != nil {
		t.Fatalf("schema missing: %v", err)
	}

	none, _, err := OpenStorage(ctx, "", "")
	if err != nil || none != nil {
		t.Fatalf("expected no storage, got %v, %v", none, err)
	}
}

func TestNewFileItemRepository(t *testing.T) {
	if _, ok := NewFileItemRepository("data/items.JSON").(*JSONItemRepository); !ok {
		t.Fatal("expected JSON repository for .json")
	}
	if _, ok := NewFileItemRepository("data/nova_iguacu_dataset_heuristica_100.csv").(*CSVItemRepository); !ok {
		t.Fatal("expected CSV repository")
	}
}
