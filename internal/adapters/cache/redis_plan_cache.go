package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/platform/obs"
	"github.com/redis/go-redis/v9"
)

// RedisPlanCache stores solved plans as JSON under their cache key.
type RedisPlanCache struct {
	Client *redis.Client
	// TTL of each entry. Zero keeps entries until evicted.
	TTL time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.InvestmentPlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("redis plan cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%s: %w", key, err)
	}

	plan, err := decodePlan(b)
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%s: %w", key, err)
	}
	return plan, true, nil
}

func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.InvestmentPlan) error {
	if c.Client == nil {
		return errors.New("redis plan cache: client is nil")
	}
	if key == "" {
		return errors.New("put plan cache: key must not be empty")
	}

	b, err := encodePlan(plan)
	if err != nil {
		return fmt.Errorf("put plan cache: %w", err)
	}

	if err := c.Client.Set(ctx, key, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("put plan cache key=%s: %w", key, err)
	}
	return nil
}
