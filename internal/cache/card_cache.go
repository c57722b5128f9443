package cache

import (
	"context"
	"encoding/json"
	"time"

	"cardlink/internal/model"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// CardCache keeps resolved public cards in Redis keyed by slug. Entries
// are invalidated on profile update; a stale entry otherwise ages out
// after an hour.
type CardCache struct{ R *redis.Client }

func key(slug string) string { return "card:" + slug }

func (c *CardCache) Get(ctx context.Context, slug string) (*model.Profile, error) {
	b, err := c.R.Get(ctx, key(slug)).Bytes()
	if err != nil {
		return nil, err
	}
	var p model.Profile
	return &p, json.Unmarshal(b, &p)
}

func (c *CardCache) Set(ctx context.Context, slug string, p *model.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, key(slug), b, time.Hour).Err()
}

func (c *CardCache) Delete(ctx context.Context, slug string) error {
	return c.R.Del(ctx, key(slug)).Err()
}
