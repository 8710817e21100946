package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"todolist-api/pkg/config"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

// AuthRateLimiter throttles the public auth endpoints per client IP
func AuthRateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.AuthMax,
		Expiration: cfg.AuthWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WarnContext(c.UserContext(), "Auth rate limit reached", "ip", c.IP(), "path", c.Path())
			return utils.TooManyRequestsResponse(c)
		},
	})
}
