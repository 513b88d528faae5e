package webservice

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/qverkk/osrs-nav/internal/config"
	"github.com/qverkk/osrs-nav/internal/pathfinder"
)

// CachedRoute is the remembered outcome of one query. Absent routes are
// cached too; recomputing an unreachable pair costs as much as a hit
// saves.
type CachedRoute struct {
	Path  []pathfinder.Step `json:"path"`
	Cost  uint32            `json:"cost"`
	Found bool              `json:"found"`
}

// RouteCache memoizes query outcomes in Redis. Keys mix the grid
// checksum into the digest, so serving a different grid file never
// replays routes computed on the old one. Cache failures degrade to
// misses; Redis being down never fails a query.
type RouteCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	sum    []byte
}

// NewRouteCache connects to Redis and binds the cache to one grid by
// its checksum. The connection is lazy; use Ping to fail fast at
// startup.
func NewRouteCache(cfg config.CacheConfig, checksum []byte) *RouteCache {
	return &RouteCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Endpoint}),
		ttl:    cfg.TTL(),
		prefix: cfg.KeyPrefix,
		sum:    checksum,
	}
}

// Ping verifies connectivity.
func (c *RouteCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Key derives the cache key for a request. encoding/json sorts map
// keys, so equivalent game states digest identically.
func (c *RouteCache) Key(req PathRequest) string {
	payload, _ := json.Marshal(req)
	buf := make([]byte, 0, len(c.sum)+len(payload))
	buf = append(buf, c.sum...)
	buf = append(buf, payload...)
	digest := blake2b.Sum256(buf)
	return c.prefix + ":" + hex.EncodeToString(digest[:])
}

// Get returns the cached outcome for a key, if any.
func (c *RouteCache) Get(ctx context.Context, key string) (CachedRoute, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("route cache get failed", "error", err)
		}
		return CachedRoute{}, false
	}
	var route CachedRoute
	if err := json.Unmarshal(data, &route); err != nil {
		slog.Warn("route cache entry corrupt", "key", key, "error", err)
		return CachedRoute{}, false
	}
	return route, true
}

// Put stores an outcome, best effort.
func (c *RouteCache) Put(ctx context.Context, key string, route CachedRoute) {
	data, err := json.Marshal(route)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("route cache put failed", "error", err)
	}
}

// Close releases the Redis connection.
func (c *RouteCache) Close() error {
	return c.client.Close()
}
