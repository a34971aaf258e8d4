package guard

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockPrefix = "reconcile:lock:v1:"

// RedisGuard backs the single-flight lock with Redis SetNX, so the lock holds
// across admin sessions and processes, not just within one. The TTL bounds
// how long a crashed holder can block a request.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisGuard constructs a Redis-backed guard.
func NewRedisGuard(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl, logger: logger}
}

// Acquire reserves the request id, failing with ErrLocked when already held.
func (g *RedisGuard) Acquire(ctx context.Context, requestID string) error {
	ok, err := g.client.SetNX(ctx, lockPrefix+requestID, "1", g.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Release clears the reservation unconditionally. Failures are logged only:
// the TTL guarantees eventual release.
func (g *RedisGuard) Release(ctx context.Context, requestID string) {
	if err := g.client.Del(ctx, lockPrefix+requestID).Err(); err != nil {
		g.logger.Warn("release reconcile lock", slog.String("request_id", requestID), slog.Any("error", err))
	}
}
