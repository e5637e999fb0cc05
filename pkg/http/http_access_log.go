package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var accessLogSkip = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// AccessLogFormat returns a fiber handler that writes one structured line
// per request, skipping probe and scrape endpoints.
func AccessLogFormat(log *zap.Logger) fiber.Handler {
	sugar := log.Sugar()

	return func(c *fiber.Ctx) error {
		if _, skip := accessLogSkip[c.Path()]; skip {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
			"latency", time.Since(start).String(),
		}
		if q := c.Context().QueryArgs().String(); q != "" {
			fields = append(fields, "query", q)
		}
		sugar.Infow("HTTP request", fields...)

		return err
	}
}
