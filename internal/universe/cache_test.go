package universe_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"starsystem-server/internal/universe"

	"github.com/stretchr/testify/assert"
)

func TestTreeCacheWithoutRedis(t *testing.T) {
	ctx := context.Background()
	cache := universe.NewTreeCache(nil, time.Minute, slog.Default())

	assert.Nil(t, cache.GetTree(ctx, 1))

	// Writes and invalidations are silently dropped.
	cache.SetTree(ctx, &universe.Tree{UniverseID: 1, Roots: []universe.TreeNode{}})
	cache.InvalidateUniverse(ctx, 1)

	assert.Nil(t, cache.GetTree(ctx, 1))
}

func TestTreeCacheNilReceiver(t *testing.T) {
	ctx := context.Background()
	var cache *universe.TreeCache

	assert.Nil(t, cache.GetTree(ctx, 1))
	cache.SetTree(ctx, &universe.Tree{UniverseID: 1})
	cache.InvalidateUniverse(ctx, 1)
}
