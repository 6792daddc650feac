package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
)

// Dataset column headers as written by the generator.
var DatasetHeader = []string{"Bairro", "População", "Criticidade", "Impacto (m2)", "Custo (R$ mil)"}

const (
	colID = iota
	colNeighborhood
	colPopulation
	colCriticality
	colImpact
	colCost
	numCols
)

var headerAliases = map[string]int{
	"id":             colID,
	"item_id":        colID,
	"bairro":         colNeighborhood,
	"neighborhood":   colNeighborhood,
	"população":      colPopulation,
	"populacao":      colPopulation,
	"population":     colPopulation,
	"criticidade":    colCriticality,
	"criticality":    colCriticality,
	"impacto (m2)":   colImpact,
	"impacto":        colImpact,
	"impact_area":    colImpact,
	"impact":         colImpact,
	"custo (r$ mil)": colCost,
	"custo":          colCost,
	"cost":           colCost,
}

// CSVItemRepository reads candidate items from a dataset CSV file.
type CSVItemRepository struct{ Path string }

func NewCSVItemRepository(path string) *CSVItemRepository {
	return &CSVItemRepository{Path: path}
}

func (c *CSVItemRepository) ListItems(ctx context.Context) (_ []domain.Item, err error) {
	defer obs.Time(ctx, "items.csv.ListItems")(&err)

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("list items: open %q: %w", c.Path, err)
	}
	defer f.Close()

	items, err := ReadItemsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("list items %q: %w", c.Path, err)
	}
	return items, nil
}

// ReadItemsCSV parses a dataset. Headers may be the Portuguese dataset names or
// their English equivalents. Without an ID column, the zero-based row index is
// the item id.
func ReadItemsCSV(r io.Reader) ([]domain.Item, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read items csv: missing header: %w", domain.ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("read items csv: header: %w", err)
	}

	cols := [numCols]int{-1, -1, -1, -1, -1, -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if c, ok := headerAliases[key]; ok && cols[c] < 0 {
			cols[c] = i
		}
	}
	for _, c := range []int{colCriticality, colImpact, colCost} {
		if cols[c] < 0 {
			return nil, fmt.Errorf("read items csv: missing column %q", DatasetHeader[c-1])
		}
	}

	items := make([]domain.Item, 0, 128)
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read items csv: row %d: %w", row+1, err)
		}

		it := domain.Item{ItemID: row}
		if cols[colID] >= 0 {
			if it.ItemID, err = strconv.Atoi(strings.TrimSpace(rec[cols[colID]])); err != nil {
				return nil, fmt.Errorf("read items csv: row %d: id: %w", row+1, err)
			}
		}
		if cols[colNeighborhood] >= 0 {
			it.Neighborhood = strings.TrimSpace(rec[cols[colNeighborhood]])
		}
		if cols[colPopulation] >= 0 {
			pop, err := parseNumber(rec[cols[colPopulation]])
			if err != nil {
				return nil, fmt.Errorf("read items csv: row %d: population: %w", row+1, err)
			}
			it.Population = int(pop)
		}
		if it.Criticality, err = parseNumber(rec[cols[colCriticality]]); err != nil {
			return nil, fmt.Errorf("read items csv: row %d: criticality: %w", row+1, err)
		}
		if it.ImpactArea, err = parseNumber(rec[cols[colImpact]]); err != nil {
			return nil, fmt.Errorf("read items csv: row %d: impact: %w", row+1, err)
		}
		if it.Cost, err = parseNumber(rec[cols[colCost]]); err != nil {
			return nil, fmt.Errorf("read items csv: row %d: cost: %w", row+1, err)
		}

		items = append(items, it)
	}

	return items, nil
}

// WriteItemsCSV writes items with the Portuguese dataset header.
func WriteItemsCSV(w io.Writer, items []domain.Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(DatasetHeader); err != nil {
		return fmt.Errorf("write items csv: header: %w", err)
	}
	for _, it := range items {
		rec := []string{
			it.Neighborhood,
			strconv.Itoa(it.Population),
			formatNumber(it.Criticality),
			formatNumber(it.ImpactArea),
			formatNumber(it.Cost),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write items csv: item_id=%d: %w", it.ItemID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write items csv: flush: %w", err)
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
