package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

const limitReachedMessage = "リクエストが多すぎます。しばらくしてから再度お試しください。"

// RateLimiter allows each client IP max requests per sliding window of
// expiration. Rejections keep the limiter's Retry-After header and are logged
// under scope. The liveness and readiness endpoints are never limited.
func RateLimiter(scope string, max int, expiration time.Duration) fiber.Handler {
	if max <= 0 {
		max = 50
	}
	if expiration <= 0 {
		expiration = time.Minute
	}
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p == healthcheck.DefaultLivenessEndpoint || p == healthcheck.DefaultReadinessEndpoint
		},
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			zap.L().Warn("rate limit reached",
				zap.String("scope", scope),
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": limitReachedMessage,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
