package universe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"starsystem-server/internal/shared/redis"
)

// TreeCache keeps assembled orbit trees in Redis so that repeated reads do
// not rebuild them from the database. A nil client turns every method into a
// no-op. It doubles as the invalidator the body and orbit services call
// after mutations.
type TreeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewTreeCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *TreeCache {
	return &TreeCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func treeKey(universeID int) string {
	return fmt.Sprintf("universe:%d:tree", universeID)
}

// GetTree returns the cached tree for a universe, or nil on a miss. Cache
// errors are logged and treated as misses.
func (c *TreeCache) GetTree(ctx context.Context, universeID int) *Tree {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, treeKey(universeID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read cached tree", "universe_id", universeID, "error", err)
		}
		return nil
	}

	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		c.logger.Warn("Failed to decode cached tree", "universe_id", universeID, "error", err)
		return nil
	}
	return &tree
}

// SetTree stores a tree for a universe. Failures are logged and ignored.
func (c *TreeCache) SetTree(ctx context.Context, tree *Tree) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(tree)
	if err != nil {
		c.logger.Warn("Failed to encode tree for caching", "universe_id", tree.UniverseID, "error", err)
		return
	}

	if err := c.client.Set(ctx, treeKey(tree.UniverseID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache tree", "universe_id", tree.UniverseID, "error", err)
	}
}

// InvalidateUniverse drops the cached tree of a universe after one of its
// bodies or orbits changes.
func (c *TreeCache) InvalidateUniverse(ctx context.Context, universeID int) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, treeKey(universeID)).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cached tree", "universe_id", universeID, "error", err)
	}
}
