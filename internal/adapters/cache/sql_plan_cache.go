package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/repositories"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
)

// SQLPlanCache is a SQL-backed plan cache for runs without Redis. It uses the
// plan_cache table created by repositories.InitSchema.
type SQLPlanCache struct {
	DB      *sql.DB
	Dialect repositories.Dialect
	TTL     time.Duration

	now func() time.Time
}

func NewSQLPlanCache(db *sql.DB, dialect repositories.Dialect, ttl time.Duration) *SQLPlanCache {
	return &SQLPlanCache{DB: db, Dialect: dialect, TTL: ttl, now: time.Now}
}

func (s *SQLPlanCache) Get(ctx context.Context, key string) (_ *domain.InvestmentPlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("sql plan cache: db is nil")
	}
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	var (
		payload   string
		expiresAt int64
	)
	q := s.Dialect.Rebind(`
	SELECT payload, expires_at
	FROM plan_cache
	WHERE cache_key = ?;
	`)
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: query plan_cache table: %w", err)
	}

	if expiresAt > 0 && s.clock().Unix() >= expiresAt {
		return nil, false, nil
	}

	plan, err := decodePlan([]byte(payload))
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%s: %w", key, err)
	}
	return plan, true, nil
}

func (s *SQLPlanCache) Put(ctx context.Context, key string, plan *domain.InvestmentPlan) error {
	if s.DB == nil {
		return errors.New("sql plan cache: db is nil")
	}
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	b, err := encodePlan(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: %w", err)
	}

	var expiresAt int64
	if s.TTL > 0 {
		expiresAt = s.clock().Add(s.TTL).Unix()
	}

	_, err = s.DB.ExecContext(ctx, s.Dialect.Rebind(`
	INSERT INTO plan_cache (cache_key, payload, expires_at)
	VALUES (?, ?, ?)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		expires_at = EXCLUDED.expires_at;
	`), key, string(b), expiresAt)
	if err != nil {
		return fmt.Errorf("insert plan cache key=%s: %w", key, err)
	}

	return nil
}

func (s *SQLPlanCache) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
