package middleware

import (
	"fmt"
	"strconv"
	"time"

	"rentalstore/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateKeyPrefix = "rentalstore:login"

// LoginRateLimit counts attempts per client IP in a fixed window stored in
// Redis and answers 429 once the limit is reached. A nil client or a
// non-positive limit disables it; Redis errors let the request through.
func LoginRateLimit(rdb *redis.Client, cfg config.RateLimitConfig, log *zap.Logger) fiber.Handler {
	if rdb == nil || cfg.Limit <= 0 || cfg.Window <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if log == nil {
		log = zap.NewNop()
	}

	windowSecs := int64(cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if ip == "" {
			ip = "unknown"
		}
		now := time.Now().Unix()
		bucket := now / windowSecs
		key := fmt.Sprintf("%s:%s:%d", rateKeyPrefix, ip, bucket)

		ctx := c.UserContext()
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Duration(windowSecs)*time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("login rate limit unavailable", zap.String("key", key), zap.Error(err))
			return c.Next()
		}

		count := incr.Val()
		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			retryAfter := (bucket+1)*windowSecs - now
			c.Set(fiber.HeaderRetryAfter, strconv.FormatInt(retryAfter, 10))
			log.Info("login rate limit exceeded", zap.String("ip", ip), zap.Int64("attempts", count))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many login attempts, try again later.",
			})
		}
		return c.Next()
	}
}
