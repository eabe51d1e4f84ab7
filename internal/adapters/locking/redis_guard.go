// Package locking provides a submission guard shared by every instance through Redis.
package locking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "voucher-desk:submit:"
	// DefaultLockTTL outlives the ERP client timeout so a lock never expires mid-post.
	DefaultLockTTL = 30 * time.Second
)

// Obtainer is the subset of redislock.Client the guard needs.
type Obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// RedisGuard holds one redislock per submission key.
type RedisGuard struct {
	locker Obtainer
	ttl    time.Duration
}

var _ portssvc.SubmissionGuard = (*RedisGuard)(nil)

// NewRedisGuard creates a guard over an obtained-lock client.
func NewRedisGuard(locker Obtainer, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisGuard{locker: locker, ttl: ttl}
}

// Connect dials Redis and returns a guard backed by it together with the client to close.
func Connect(ctx context.Context, addr string, ttl time.Duration) (*RedisGuard, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect redis at %s: %w", addr, err)
	}
	return NewRedisGuard(redislock.New(rdb), ttl), rdb, nil
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	lock, err := g.locker.Obtain(ctx, keyPrefix+key, g.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, apperrors.ErrSubmissionInFlight
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain submission lock: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	return func() {
		// The request context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logger.Warn("Failed to release submission lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}, nil
}
