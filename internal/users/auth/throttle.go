// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedKeys bounds the in-memory throttle before idle keys are pruned.
const maxTrackedKeys = 10_000

// MemoryLoginThrottle is the single-process fallback when Redis is not
// configured.
//
// Each key owns a token bucket holding maxAttempts tokens that refills over
// the window. A failure spends one token; an empty bucket blocks the key.
type MemoryLoginThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

// NewMemoryLoginThrottle allows maxAttempts failures per key, refilled over window.
func NewMemoryLoginThrottle(maxAttempts int, window time.Duration) *MemoryLoginThrottle {
	return &MemoryLoginThrottle{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(window / time.Duration(maxAttempts)),
		burst:    maxAttempts,
	}
}

// Blocked returns the wait until key may try again, or zero.
func (throttle *MemoryLoginThrottle) Blocked(_ context.Context, key string) (time.Duration, error) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()

	limiter, ok := throttle.limiters[key]
	if !ok {
		return 0, nil
	}

	tokens := limiter.Tokens()
	if tokens >= 1 {
		return 0, nil
	}

	missing := 1 - tokens
	return time.Duration(missing / float64(throttle.every) * float64(time.Second)), nil
}

// Fail spends one attempt of key.
func (throttle *MemoryLoginThrottle) Fail(_ context.Context, key string) error {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()

	limiter, ok := throttle.limiters[key]
	if !ok {
		if len(throttle.limiters) >= maxTrackedKeys {
			throttle.prune()
		}
		limiter = rate.NewLimiter(throttle.every, throttle.burst)
		throttle.limiters[key] = limiter
	}

	limiter.Allow()
	return nil
}

// Reset forgets key.
func (throttle *MemoryLoginThrottle) Reset(_ context.Context, key string) error {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()

	delete(throttle.limiters, key)
	return nil
}

// prune drops keys whose bucket has refilled completely.
func (throttle *MemoryLoginThrottle) prune() {
	for key, limiter := range throttle.limiters {
		if limiter.Tokens() >= float64(throttle.burst) {
			delete(throttle.limiters, key)
		}
	}
}
