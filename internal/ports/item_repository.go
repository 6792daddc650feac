package ports

import (
	"context"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Port: a boundary for retrieving candidate investment items from a data source.
type ItemRepository interface {
	// Retrieve every candidate item, in a stable order.
	ListItems(ctx context.Context) ([]domain.Item, error)
}
