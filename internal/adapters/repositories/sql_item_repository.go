package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
)

// SQL-backed implementation of the ItemRepository port.
type SQLItemRepository struct{ DB *sql.DB }

func NewSQLItemRepository(db *sql.DB) *SQLItemRepository {
	return &SQLItemRepository{DB: db}
}

// Return all items ordered by item_id.
func (s *SQLItemRepository) ListItems(ctx context.Context) (_ []domain.Item, err error) {
	defer obs.Time(ctx, "items.sql.ListItems")(&err)

	if s.DB == nil {
		return nil, errors.New("sql item repository: DB is nil")
	}

	query := `
	SELECT
		item_id,
		neighborhood,
		population,
		criticality,
		impact_area,
		cost
	FROM items
	ORDER BY item_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: query items table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0, 128)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ItemID, &it.Neighborhood, &it.Population, &it.Criticality, &it.ImpactArea, &it.Cost); err != nil {
			return nil, fmt.Errorf("list items: scan row: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}

	return items, nil
}
