// Package redis serialises order confirmations across service instances.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "order_confirm_lock:"

// releaseScript deletes the key only while it still holds the caller's token,
// so a lock that expired and was taken by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ConfirmationLock implements ports.ConfirmationLocker with SET NX and a TTL.
// The TTL bounds how long a crashed holder blocks confirmations of its order.
type ConfirmationLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewConfirmationLock(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ConfirmationLock {
	return &ConfirmationLock{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "confirmation_lock"),
	}
}

// Acquire tries once; it does not wait for the holder.
func (l *ConfirmationLock) Acquire(ctx context.Context, orderID int64) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKey(orderID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire confirmation lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release logs its own failures since callers release in a defer. The key
// still expires after the TTL.
func (l *ConfirmationLock) Release(ctx context.Context, orderID int64, token string) error {
	err := releaseScript.Run(ctx, l.client, []string{lockKey(orderID)}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		l.logger.ErrorContext(ctx, "Failed to release confirmation lock", "order_id", orderID, "error", err)
		return fmt.Errorf("failed to release confirmation lock: %w", err)
	}
	return nil
}

func lockKey(orderID int64) string {
	return keyPrefix + strconv.FormatInt(orderID, 10)
}
