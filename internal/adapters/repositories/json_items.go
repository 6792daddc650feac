package repositories

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
	"github.com/tidwall/gjson"
)

// JSONItemRepository reads items from a JSON array of objects, either at the
// document root or under an "items" key.
type JSONItemRepository struct{ Path string }

func NewJSONItemRepository(path string) *JSONItemRepository {
	return &JSONItemRepository{Path: path}
}

func (j *JSONItemRepository) ListItems(ctx context.Context) (_ []domain.Item, err error) {
	defer obs.Time(ctx, "items.json.ListItems")(&err)

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, fmt.Errorf("list items: read %q: %w", j.Path, err)
	}

	items, err := ParseItemsJSON(data)
	if err != nil {
		return nil, fmt.Errorf("list items %q: %w", j.Path, err)
	}
	return items, nil
}

// ParseItemsJSON accepts snake_case English keys or the Portuguese dataset names.
func ParseItemsJSON(data []byte) ([]domain.Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse items json: invalid document")
	}

	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		arr = arr.Get("items")
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("parse items json: expected an array of items")
	}

	var (
		items  []domain.Item
		rowErr error
	)
	row := 0
	arr.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			rowErr = fmt.Errorf("parse items json: entry %d is not an object", row+1)
			return false
		}

		it, err := parseItemJSON(v, row)
		if err != nil {
			rowErr = fmt.Errorf("parse items json: entry %d: %w", row+1, err)
			return false
		}

		items = append(items, it)
		row++
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return items, nil
}

// parseItemJSON reads one entry. Numeric fields must be JSON numbers; strings and
// booleans are rejected rather than coerced.
func parseItemJSON(v gjson.Result, row int) (domain.Item, error) {
	it := domain.Item{ItemID: row}

	if id := first(v, "item_id", "id"); id.Exists() {
		n, err := number(id, "item_id")
		if err != nil {
			return it, err
		}
		if n != math.Trunc(n) {
			return it, fmt.Errorf("item_id %v is not an integer", n)
		}
		it.ItemID = int(n)
	}

	if name := first(v, "neighborhood", "Bairro"); name.Exists() {
		if name.Type != gjson.String {
			return it, fmt.Errorf("neighborhood must be a string, got %s", name.Raw)
		}
		it.Neighborhood = name.String()
	}

	if pop := first(v, "population", "População"); pop.Exists() {
		n, err := number(pop, "population")
		if err != nil {
			return it, err
		}
		it.Population = int(n)
	}

	crit, impact, cost := first(v, "criticality", "Criticidade"), first(v, "impact_area", "Impacto (m2)"), first(v, "cost", "Custo (R$ mil)")
	if !crit.Exists() || !impact.Exists() || !cost.Exists() {
		return it, fmt.Errorf("criticality, impact_area and cost are required")
	}

	var err error
	if it.Criticality, err = number(crit, "criticality"); err != nil {
		return it, err
	}
	if it.ImpactArea, err = number(impact, "impact_area"); err != nil {
		return it, err
	}
	if it.Cost, err = number(cost, "cost"); err != nil {
		return it, err
	}

	return it, nil
}

func number(r gjson.Result, field string) (float64, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("%s must be a number, got %s", field, r.Raw)
	}
	return r.Float(), nil
}

func first(v gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := v.Get(gjson.Escape(k)); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
