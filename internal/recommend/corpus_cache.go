package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CorpusCache keeps per-user liked-content corpora in redis so the
// recommender does not rebuild every corpus from the database on each
// request. Entries are dropped whenever the user's likes change.
type CorpusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCorpusCache(client *redis.Client, ttl time.Duration) *CorpusCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CorpusCache{client: client, ttl: ttl}
}

func corpusKey(userID string) string { return fmt.Sprintf("corpus:%s", userID) }

func (c *CorpusCache) Get(ctx context.Context, userID string) ([]string, bool) {
	data, err := c.client.Get(ctx, corpusKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var corpus []string
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, false
	}
	return corpus, true
}

func (c *CorpusCache) Set(ctx context.Context, userID string, corpus []string) {
	data, err := json.Marshal(corpus)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, corpusKey(userID), data, c.ttl).Err()
}

// Invalidate drops the cached corpus after a like toggle.
func (c *CorpusCache) Invalidate(ctx context.Context, userID string) {
	_ = c.client.Del(ctx, corpusKey(userID)).Err()
}
