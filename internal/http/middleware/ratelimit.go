// README: Per-client rate limiting backed by Redis or an in-process token bucket.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// A bucket idle this long has refilled completely, so dropping it loses nothing.
const memoryLimiterIdleTTL = 10 * time.Minute

// MemoryLimiter keeps one token bucket per key in process memory.
// Buckets unused for the idle TTL are evicted.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

func NewMemoryLimiter(perMinute int) *MemoryLimiter {
	return newMemoryLimiter(perMinute, memoryLimiterIdleTTL)
}

func newMemoryLimiter(perMinute int, idle time.Duration) *MemoryLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &MemoryLimiter{
		limiters: cache.New(idle, idle/2),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	var l *rate.Limiter
	if v, ok := m.limiters.Get(key); ok {
		l = v.(*rate.Limiter)
	} else {
		l = rate.NewLimiter(m.limit, m.burst)
	}
	// re-set on every hit so the idle timer slides
	m.limiters.SetDefault(key, l)
	m.mu.Unlock()
	return l.Allow(), nil
}

// RedisLimiter counts requests per key in fixed one-minute windows shared by every replica.
type RedisLimiter struct {
	client    *redis.Client
	perMinute int64
	now       func() time.Time
}

func NewRedisLimiter(client *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{client: client, perMinute: int64(perMinute), now: time.Now}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := r.now().Unix() / 60
	k := fmt.Sprintf("travel:ratelimit:%s:%d", key, window)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= r.perMinute, nil
}

// RateLimit rejects clients over their budget with 429. Limiter errors let the request through.
func RateLimit(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			logger.Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
			return
		}
		c.Next()
	}
}
