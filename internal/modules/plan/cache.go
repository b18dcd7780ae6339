// README: Read-through Redis cache of generated plans by ID.
package plan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"voyago/internal/observability"
)

const cacheKeyPrefix = "plan:"

type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

func NewCache(c *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{c: c, ttl: ttl}
}

func (r *Cache) Get(ctx context.Context, id string) (*TravelPlan, bool) {
	v, err := r.c.Get(ctx, cacheKeyPrefix+id).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var p TravelPlan
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, false
	}
	observability.ObserveCache("redis", "hit")
	return &p, true
}

func (r *Cache) Set(ctx context.Context, p *TravelPlan) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, cacheKeyPrefix+p.ID, b, r.ttl).Err()
}
