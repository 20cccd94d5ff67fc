package ratelimit

import (
	"context"
	"sync"
	"time"
)

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	MaxRequests int           // Maximum number of requests allowed
	WindowSize  time.Duration // Time window for rate limiting
}

// DefaultConfig matches the per-IP limit of the public nodes.
func DefaultConfig() *RateLimiterConfig {
	return &RateLimiterConfig{
		MaxRequests: 10,
		WindowSize:  time.Second,
	}
}

// RateLimiter implements a sliding window limit per key, typically one key per node host.
type RateLimiter struct {
	config   *RateLimiterConfig
	requests map[string][]time.Time
	mu       sync.Mutex
}

func NewRateLimiter(config *RateLimiterConfig) *RateLimiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &RateLimiter{
		config:   config,
		requests: make(map[string][]time.Time),
	}
}

// Allow records a request for key if the window has room and reports whether it did.
func (rl *RateLimiter) Allow(key string) bool {
	_, ok := rl.reserve(key, time.Now())
	return ok
}

// Wait blocks until a request for key is allowed or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context, key string) error {
	for {
		delay, ok := rl.reserve(key, time.Now())
		if ok {
			return nil
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve returns how long until the oldest request leaves the window when the key is full.
func (rl *RateLimiter) reserve(key string, now time.Time) (time.Duration, bool) {
	cutoff := now.Add(-rl.config.WindowSize)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := rl.requests[key][:0]
	for _, ts := range rl.requests[key] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	if len(valid) >= rl.config.MaxRequests {
		rl.requests[key] = valid
		return valid[0].Sub(cutoff), false
	}
	rl.requests[key] = append(valid, now)
	return 0, true
}

// InWindow returns the number of requests for key in the current window.
func (rl *RateLimiter) InWindow(key string) int {
	cutoff := time.Now().Add(-rl.config.WindowSize)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	count := 0
	for _, ts := range rl.requests[key] {
		if ts.After(cutoff) {
			count++
		}
	}
	return count
}

// Reset removes all entries for a given key
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.requests, key)
}
