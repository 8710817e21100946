package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"todolist-api/pkg/logger"
)

// LoggerMiddleware logs one line per completed request
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
			"bytes", len(c.Response().Body()),
		)

		return err
	}
}
