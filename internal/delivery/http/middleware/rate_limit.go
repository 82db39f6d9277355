package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

var (
	rateLimitStore = sync.Map{}
	cleanupOnce    sync.Once
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP. Uses Redis when available so
// limits hold across replicas, with an in-memory fallback per instance.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		var retryAfter time.Duration

		if client := redis.Client(); client != nil {
			res, err := client.Eval(c.Request.Context(), rateLimitLuaScript,
				[]string{key}, int(cfg.Window.Seconds())).Result()
			if vals, _ := res.([]interface{}); err == nil && len(vals) == 2 {
				n, _ := vals[0].(int64)
				ttl, _ := vals[1].(int64)
				count = int(n)
				retryAfter = time.Duration(ttl) * time.Second
			} else if err != nil && err != goredis.Nil {
				// Redis down: fall through to the in-memory counter
				count, retryAfter = inMemoryIncrement(key, cfg.Window)
			}
		} else {
			count, retryAfter = inMemoryIncrement(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func inMemoryIncrement(key string, window time.Duration) (int, time.Duration) {
	now := time.Now()
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}
