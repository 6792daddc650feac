package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/db"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/ports"
)

// OpenStorage opens Postgres when databaseURL is set, otherwise the SQLite file
// at sqlitePath, and makes sure the schema exists. It returns a nil DB when
// neither is configured.
func OpenStorage(ctx context.Context, databaseURL, sqlitePath string) (*sql.DB, Dialect, error) {
	var (
		conn    *sql.DB
		dialect Dialect
		err     error
	)

	switch {
	case strings.TrimSpace(databaseURL) != "":
		dialect = Postgres
		conn, err = db.Open(ctx, databaseURL)
	case strings.TrimSpace(sqlitePath) != "":
		dialect = SQLite
		conn, err = db.OpenSQLite(ctx, sqlitePath)
	default:
		return nil, SQLite, nil
	}
	if err != nil {
		return nil, dialect, fmt.Errorf("open storage: %w", err)
	}

	if err := InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, dialect, fmt.Errorf("open storage: %w", err)
	}

	return conn, dialect, nil
}

// NewFileItemRepository picks the JSON reader for .json paths and the CSV
// reader for everything else.
func NewFileItemRepository(path string) ports.ItemRepository {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONItemRepository(path)
	}
	return NewCSVItemRepository(path)
}
