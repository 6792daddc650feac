package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func testPlan() *domain.InvestmentPlan {
	return &domain.InvestmentPlan{
		RunID:    "run-7",
		Strategy: "first-improvement",
		Alpha:    0.3,
		Budget:   120,
		Seed:     1,
		Elapsed:  1234 * time.Millisecond,
		Items: []domain.PlannedItem{
			{Item: domain.Item{ItemID: 2, Neighborhood: "Posse", Population: 10921, Criticality: 8, ImpactArea: 400, Cost: 50, Priority: 64}, EquipmentCount: 2},
			{Item: domain.Item{ItemID: 5, Neighborhood: "Bairro 3", Population: 900, Criticality: 2, ImpactArea: 700, Cost: 70, Priority: 20}, EquipmentCount: 4},
		},
		TotalCost:      120,
		TotalPriority:  84,
		TotalEquipment: 6,
	}
}

func TestWritePlanCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlanCSV(&buf, testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want header + 2", len(recs))
	}
	if strings.Join(recs[0], ",") != strings.Join(PlanHeader, ",") {
		t.Fatalf("header = %v", recs[0])
	}
	want := []string{"2", "Posse", "10921", "8", "400", "50", "2", "64.000000"}
	if strings.Join(recs[1], ",") != strings.Join(want, ",") {
		t.Fatalf("row = %v, want %v", recs[1], want)
	}
}

func TestWritePlanCSVFileEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution_grasp.csv")
	if err := WritePlanCSVFile(path, &domain.InvestmentPlan{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Count(string(b), "\n") != 1 {
		t.Fatalf("expected only a header, got %q", b)
	}
}

func TestWritePlanParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.parquet")
	if err := WritePlanParquet(path, testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(PlanRow), 1)
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	if n != 2 {
		t.Fatalf("got %d rows, want 2", n)
	}
	rows := make([]PlanRow, n)
	if err := pr.Read(&rows); err != nil {
		t.Fatalf("read: %v", err)
	}

	if rows[0].RunID != "run-7" || rows[0].ItemID != 2 || rows[0].EquipmentCount != 2 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Position != 1 || rows[1].Neighborhood != "Bairro 3" || rows[1].Cost != 70 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Posse", "Bairro 3", "Total equipment to install: 6", "Total cost: R$ 120.00 k", "Objective value: 84.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := WriteReport(&buf, &domain.InvestmentPlan{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No feasible solution") {
		t.Fatalf("unexpected empty report: %q", buf.String())
	}
}
