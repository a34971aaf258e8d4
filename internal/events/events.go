// Package events carries the fire-and-forget cross-screen signals other
// views subscribe to. Events have a name and no payload.
package events

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	// Channel is the Redis pub/sub channel events are published on.
	Channel = "events:v1"

	// WalletUpdated signals that a reconciliation committed and any open
	// balance or history view should re-read.
	WalletUpdated = "wallet_updated"
	// PaymentInfoUpdated signals a change to the platform payment settings.
	PaymentInfoUpdated = "payment_info_updated"
)

// Publisher broadcasts an event to any listening screen. Implementations are
// best-effort: publishing happens after the owning write already committed,
// so failures must never be surfaced as operation failures.
type Publisher interface {
	Publish(ctx context.Context, event string) error
}

// RedisPublisher broadcasts events over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher constructs a Redis-backed publisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish sends the event name on the shared channel.
func (p *RedisPublisher) Publish(ctx context.Context, event string) error {
	return p.client.Publish(ctx, Channel, event).Err()
}

// LoggerPublisher is a stub publisher that writes events to the logger. Used
// when no Redis is configured.
type LoggerPublisher struct {
	logger *slog.Logger
}

// NewLoggerPublisher constructs a logging publisher stub.
func NewLoggerPublisher(logger *slog.Logger) *LoggerPublisher {
	return &LoggerPublisher{logger: logger}
}

// Publish writes the event to the structured logger.
func (p *LoggerPublisher) Publish(_ context.Context, event string) error {
	if p == nil || p.logger == nil {
		return nil
	}
	p.logger.Info("event", "name", event)
	return nil
}
