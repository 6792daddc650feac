package repositories

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

func TestReadItemsCSVDatasetHeader(t *testing.T) {
	data := "\ufeffBairro,População,Criticidade,Impacto (m2),Custo (R$ mil)\n" +
		"Centro,25806,5,1000,100\n" +
		"Bairro 1,31000,8,400,50\n"

	items, err := ReadItemsCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	want := domain.Item{ItemID: 1, Neighborhood: "Bairro 1", Population: 31000, Criticality: 8, ImpactArea: 400, Cost: 50}
	if items[1] != want {
		t.Fatalf("item = %+v, want %+v", items[1], want)
	}
	if items[0].ItemID != 0 {
		t.Fatalf("first item id = %d, want row index 0", items[0].ItemID)
	}
}

func TestReadItemsCSVEnglishHeaderWithID(t *testing.T) {
	data := "id,cost,impact_area,criticality\n17,20,500,1\n"

	items, err := ReadItemsCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != 17 || items[0].Cost != 20 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestReadItemsCSVErrors(t *testing.T) {
	tests := map[string]string{
		"missing cost": "Bairro,Criticidade,Impacto (m2)\nCentro,5,1000\n",
		"bad number":   "Criticidade,Impacto (m2),Custo (R$ mil)\n5,mil,100\n",
		"short row":    "Criticidade,Impacto (m2),Custo (R$ mil)\n5,1000\n",
		"empty":        "",
	}

	for name, data := range tests {
		if _, err := ReadItemsCSV(strings.NewReader(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestWriteItemsCSVReadsBack(t *testing.T) {
	items := []domain.Item{
		{ItemID: 0, Neighborhood: "Cabuçu", Population: 29731, Criticality: 3, ImpactArea: 2999, Cost: 149},
		{ItemID: 1, Neighborhood: "Bairro, Norte", Population: 1200, Criticality: 10, ImpactArea: 500, Cost: 20},
	}

	var buf bytes.Buffer
	if err := WriteItemsCSV(&buf, items); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Bairro,População,Criticidade,Impacto (m2),Custo (R$ mil)\n") {
		t.Fatalf("unexpected header: %q", buf.String())
	}

	got, err := ReadItemsCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestCSVItemRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte("Criticidade,Impacto (m2),Custo (R$ mil)\n8,400,50\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := NewCSVItemRepository(path).ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Cost != 50 {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := NewCSVItemRepository(filepath.Join(t.TempDir(), "nope.csv")).ListItems(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseItemsJSON(t *testing.T) {
	data := `{"items": [
		{"item_id": 1, "neighborhood": "Centro", "population": 25806, "criticality": 5, "impact_area": 1000, "cost": 100},
		{"Bairro": "Posse", "Criticidade": 8, "Impacto (m2)": 400, "Custo (R$ mil)": 50}
	]}`

	items, err := ParseItemsJSON([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ItemID != 1 || items[0].Population != 25806 || items[0].Cost != 100 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ItemID != 1 || items[1].Neighborhood != "Posse" || items[1].ImpactArea != 400 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestParseItemsJSONErrors(t *testing.T) {
	tests := map[string]string{
		"invalid":           `[{"cost": 1`,
		"not array":         `{"cost": 1}`,
		"not object":        `[1, 2]`,
		"missing field":     `[{"cost": 10, "criticality": 2}]`,
		"word criticality":  `[{"criticality": "high", "impact_area": 400, "cost": 50}]`,
		"boolean impact":    `[{"criticality": 8, "impact_area": true, "cost": 50}]`,
		"quoted cost":       `[{"criticality": 8, "impact_area": 400, "cost": "50"}]`,
		"quoted population": `[{"population": "1200", "criticality": 8, "impact_area": 400, "cost": 50}]`,
		"fractional id":     `[{"item_id": 1.5, "criticality": 8, "impact_area": 400, "cost": 50}]`,
		"string id":         `[{"id": "7", "criticality": 8, "impact_area": 400, "cost": 50}]`,
		"numeric bairro":    `[{"Bairro": 12, "Criticidade": 8, "Impacto (m2)": 400, "Custo (R$ mil)": 50}]`,
		"null cost":         `[{"criticality": 8, "impact_area": 400, "cost": null}]`,
	}

	for name, data := range tests {
		if _, err := ParseItemsJSON([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestJSONItemRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte(`[{"criticality": 8, "impact_area": 400, "cost": 50}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := NewJSONItemRepository(path).ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != 0 || items[0].Criticality != 8 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
