package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/redis/go-redis/v9"
)

// InterviewCache keeps active interview records warm for the candidate read
// path. A cache miss or any redis error falls through to the database, so the
// cache is never authoritative for the status gate.
type InterviewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewInterviewCache(rdb *redis.Client, ttl time.Duration) *InterviewCache {
	return &InterviewCache{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return "interview:active:" + id
}

func (c *InterviewCache) Get(ctx context.Context, id string) (*model.Interview, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var iv model.Interview
	if err := json.Unmarshal(raw, &iv); err != nil {
		return nil, false
	}
	return &iv, true
}

func (c *InterviewCache) Set(ctx context.Context, iv *model.Interview) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if iv.Status != model.InterviewStatusActive {
		return errors.New("only active interviews are cacheable")
	}
	raw, err := json.Marshal(iv)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(iv.ID), raw, c.ttl).Err()
}

// Invalidate must be called whenever a record leaves the active status.
func (c *InterviewCache) Invalidate(ctx context.Context, id string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, key(id)).Err()
}
