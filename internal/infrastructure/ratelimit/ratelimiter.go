package ratelimit

import "context"

// RateLimiter bounds how many requests a single caller may make inside
// a rolling window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
