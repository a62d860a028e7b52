package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/eslsoft/coursecatalog/internal/logger"
)

// RateLimiter counts requests per caller in fixed redis windows. A nil client
// disables limiting.
type RateLimiter struct {
	redisClient *redis.Client
	log         *logger.Logger
}

func NewRateLimiter(client *redis.Client, log *logger.Logger) *RateLimiter {
	return &RateLimiter{redisClient: client, log: log}
}

// Limit allows at most limit requests per caller and window for the named action.
// Authenticated callers are keyed by user id, anonymous ones by client IP.
// Redis failures let the request through.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		caller := c.ClientIP()
		if identity := identityFrom(c); identity != nil {
			caller = identity.UserID.String()
		}
		key := rateLimitKey(keySuffix, caller)

		var (
			incr *redis.IntCmd
			ttl  *redis.DurationCmd
		)
		if _, err := rl.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			ttl = pipe.TTL(ctx, key)
			return nil
		}); err != nil {
			rl.log.Warn("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		// A counter without a TTL would never reset, whether it is new or an
		// earlier EXPIRE was lost.
		retryAfter := ttl.Val()
		if retryAfter < 0 {
			if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
				rl.redisClient.Del(ctx, key)
				rl.log.Warn("rate limiter could not set expiry", "key", key, "error", err)
				c.Next()
				return
			}
			retryAfter = window
		}

		if incr.Val() > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

func rateLimitKey(action, caller string) string {
	return fmt.Sprintf("rate_limit:%s:%s", action, caller)
}
