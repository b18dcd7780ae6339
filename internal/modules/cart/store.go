// README: Cart store backed by Redis lists, keyed per session.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	itemsKeyPrefix = "cart:%s:items"
	seqKeyPrefix   = "cart:%s:seq"
)

// Store keeps one Redis list per session so insertion order is preserved, plus
// a per-session sequence counter for booking references. Keys carry a sliding
// TTL: any touch extends the session.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{redis: redis, ttl: ttl}
}

func itemsKey(session string) string { return fmt.Sprintf(itemsKeyPrefix, session) }
func seqKey(session string) string   { return fmt.Sprintf(seqKeyPrefix, session) }

// NextSeq returns the next booking-reference number for the session.
// The counter never goes backwards, so references stay unique even after
// removals.
func (s *Store) NextSeq(ctx context.Context, session string) (int64, error) {
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, seqKey(session))
	pipe.Expire(ctx, seqKey(session), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Append adds the item to the end of the session's list.
func (s *Store) Append(ctx context.Context, session string, item Item) error {
	b, err := json.Marshal(item)
	if err != nil {
		return err
	}
	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, itemsKey(session), b)
	pipe.Expire(ctx, itemsKey(session), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Items returns the session's items in insertion order.
func (s *Store) Items(ctx context.Context, session string) ([]Item, error) {
	vals, err := s.redis.LRange(ctx, itemsKey(session), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(vals))
	for _, v := range vals {
		var item Item
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Replace rewrites the session's list with the given items, preserving order.
func (s *Store) Replace(ctx context.Context, session string, items []Item) error {
	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, itemsKey(session))
	if len(items) > 0 {
		vals := make([]any, 0, len(items))
		for _, item := range items {
			b, err := json.Marshal(item)
			if err != nil {
				return err
			}
			vals = append(vals, b)
		}
		pipe.RPush(ctx, itemsKey(session), vals...)
		pipe.Expire(ctx, itemsKey(session), s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
