// Package ratelimit provides fixed-window limiters used to throttle login attempts.
package ratelimit

import (
	"context"
	"time"

	"sews/internal/domain/service"
	"sews/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// allowScript increments the window counter and starts its expiry on the first hit.
var allowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// NewRedisLimiter wraps an existing client. The caller owns the client's lifecycle.
func NewRedisLimiter(client *redis.Client, now func() time.Time) (service.RateLimiter, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if now == nil {
		now = time.Now
	}

	return &redisLimiter{client: client, now: now}, nil
}

func (r *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (service.RateLimitDecision, error) {
	if limit <= 0 {
		return service.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1000
	}

	result, err := allowScript.Run(ctx, r.client, []string{key}, windowMillis).Result()
	if err != nil {
		return service.RateLimitDecision{}, errors.Wrap(err, "redis rate limit script failed")
	}

	values, ok := result.([]any)
	if !ok || len(values) < 2 {
		return service.RateLimitDecision{}, errors.New("unexpected redis rate limit response")
	}

	current, ok := values[0].(int64)
	if !ok {
		return service.RateLimitDecision{}, errors.New("invalid redis counter response")
	}

	ttlMillis, _ := values[1].(int64)
	resetAt := r.now()
	if ttlMillis > 0 {
		resetAt = resetAt.Add(time.Duration(ttlMillis) * time.Millisecond)
	}

	return service.RateLimitDecision{
		Allowed:   current <= int64(limit),
		Limit:     limit,
		Remaining: max(limit-int(current), 0),
		ResetAt:   resetAt,
	}, nil
}
