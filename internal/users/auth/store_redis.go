// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/beacon/internal/platform/constants"
)

// RedisLoginThrottle shares failed login counters between API replicas.
//
// The first failure of a window sets the key TTL; later failures only
// increment it, so the window is fixed rather than sliding.
type RedisLoginThrottle struct {
	client      redis.UniversalClient
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginThrottle allows maxAttempts failures per key within window.
func NewRedisLoginThrottle(client redis.UniversalClient, maxAttempts int, window time.Duration) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Blocked returns the remaining lockout for key, or zero.
func (throttle *RedisLoginThrottle) Blocked(context context.Context, key string) (time.Duration, error) {
	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := throttle.client.Get(context, redisKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis_login_attempts_get_failed: %w", err)
	}

	if count < throttle.maxAttempts {
		return 0, nil
	}

	ttl, err := throttle.client.TTL(context, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_attempts_ttl_failed: %w", err)
	}

	// A key without expiry would lock the account forever
	if ttl <= 0 {
		return throttle.window, throttle.client.Expire(context, redisKey, throttle.window).Err()
	}
	return ttl, nil
}

// Fail counts one failed attempt, starting the window on the first.
func (throttle *RedisLoginThrottle) Fail(context context.Context, key string) error {
	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := throttle.client.Incr(context, redisKey).Result()
	if err != nil {
		return fmt.Errorf("redis_login_attempts_incr_failed: %w", err)
	}

	if count == 1 {
		if err := throttle.client.Expire(context, redisKey, throttle.window).Err(); err != nil {
			return fmt.Errorf("redis_login_attempts_expire_failed: %w", err)
		}
	}
	return nil
}

// Reset clears the failures of key.
func (throttle *RedisLoginThrottle) Reset(context context.Context, key string) error {
	if err := throttle.client.Del(context, constants.RedisPrefixLoginAttempts+key).Err(); err != nil {
		return fmt.Errorf("redis_login_attempts_del_failed: %w", err)
	}
	return nil
}
