package rate

import (
	"context"
	"math"
	"sync"
	"time"

	xrate "golang.org/x/time/rate"
)

// maxTrackedKeys acota el mapa de buckets; al superarlo se descartan los inactivos.
const maxTrackedKeys = 10000

// MemoryLimiter es un token bucket por key: MaxRequests de ráfaga, recargados
// de forma uniforme a lo largo de Window.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*bucket
	limit    xrate.Limit
	burst    int
	window   time.Duration
	now      func() time.Time
}

type bucket struct {
	lim      *xrate.Limiter
	lastSeen time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		limiters: make(map[string]*bucket),
		limit:    xrate.Every(window / time.Duration(max)),
		burst:    max,
		window:   window,
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	b := l.get(key, now)

	r := b.lim.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
		return Result{
			Allowed:     false,
			Remaining:   0,
			RetryAfter:  time.Duration(math.Ceil(delay.Seconds())) * time.Second,
			WindowTTL:   l.window,
			CurrentHits: int64(l.burst) + 1,
		}, nil
	}

	remaining := int64(b.lim.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:     true,
		Remaining:   remaining,
		WindowTTL:   l.window,
		CurrentHits: int64(l.burst) - remaining,
	}, nil
}

func (l *MemoryLimiter) get(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxTrackedKeys {
			l.evict(now)
		}
		b = &bucket{lim: xrate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = b
	}
	b.lastSeen = now
	return b
}

// evict descarta los buckets sin uso durante más de una ventana.
func (l *MemoryLimiter) evict(now time.Time) {
	for k, b := range l.limiters {
		if now.Sub(b.lastSeen) > l.window {
			delete(l.limiters, k)
		}
	}
}
