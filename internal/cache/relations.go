package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RelationCache keeps per-user follower/following id lists in Redis lists so
// profile reads skip the follows-table scan. An empty list is treated as a
// miss, which keeps invalidation trivial: DEL on every edge change.
type RelationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRelationCache(rdb *redis.Client, ttl time.Duration) *RelationCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RelationCache{rdb: rdb, ttl: ttl}
}

func followerKey(userID uint) string  { return fmt.Sprintf("followers:index:%d", userID) }
func followingKey(userID uint) string { return fmt.Sprintf("following:index:%d", userID) }

func (c *RelationCache) GetFollowerIDs(ctx context.Context, userID uint) ([]uint, bool) {
	return c.get(ctx, followerKey(userID))
}

func (c *RelationCache) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, bool) {
	return c.get(ctx, followingKey(userID))
}

func (c *RelationCache) SetFollowerIDs(ctx context.Context, userID uint, ids []uint) {
	c.set(ctx, followerKey(userID), ids)
}

func (c *RelationCache) SetFollowingIDs(ctx context.Context, userID uint, ids []uint) {
	c.set(ctx, followingKey(userID), ids)
}

// InvalidateEdge drops both sides of a follow edge change.
func (c *RelationCache) InvalidateEdge(ctx context.Context, followerID, followedID uint) {
	_ = c.rdb.Del(ctx,
		followingKey(followerID),
		followerKey(followedID),
	).Err()
}

func (c *RelationCache) get(ctx context.Context, key string) ([]uint, bool) {
	vals, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(vals) == 0 {
		return nil, false
	}
	ids := make([]uint, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint(n))
	}
	return ids, true
}

func (c *RelationCache) set(ctx context.Context, key string, ids []uint) {
	if len(ids) == 0 {
		return
	}
	vals := make([]interface{}, len(ids))
	for i, id := range ids {
		vals[i] = strconv.FormatUint(uint64(id), 10)
	}
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.RPush(ctx, key, vals...)
	pipe.Expire(ctx, key, c.ttl)
	_, _ = pipe.Exec(ctx)
}
