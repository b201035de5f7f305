package ratelimit

import (
	"context"
	"sync"
	"time"

	"sews/internal/domain/service"
	"sews/internal/errors"
)

const defaultMaxKeys = 10000

type memoryBucket struct {
	count     int
	windowEnd time.Time
}

type memoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*memoryBucket
	maxKeys int
}

// NewMemoryLimiter keeps counters in process. Suitable for a single instance.
func NewMemoryLimiter(now func() time.Time, maxKeys int) service.RateLimiter {
	if now == nil {
		now = time.Now
	}
	if maxKeys <= 0 {
		maxKeys = defaultMaxKeys
	}

	return &memoryLimiter{
		now:     now,
		buckets: make(map[string]*memoryBucket),
		maxKeys: maxKeys,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (service.RateLimitDecision, error) {
	if limit <= 0 {
		return service.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		if !ok && len(m.buckets) >= m.maxKeys {
			m.evictExpired(now)
			if len(m.buckets) >= m.maxKeys {
				return service.RateLimitDecision{}, errors.New("rate limiter capacity exceeded")
			}
		}

		bucket = &memoryBucket{windowEnd: now.Add(window)}
		m.buckets[key] = bucket
	}

	if bucket.count >= limit {
		return service.RateLimitDecision{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetAt:   bucket.windowEnd,
		}, nil
	}

	bucket.count++

	return service.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - bucket.count,
		ResetAt:   bucket.windowEnd,
	}, nil
}

func (m *memoryLimiter) evictExpired(now time.Time) {
	for key, bucket := range m.buckets {
		if now.After(bucket.windowEnd) {
			delete(m.buckets, key)
		}
	}
}
