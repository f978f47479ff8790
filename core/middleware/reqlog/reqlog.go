package reqlog

import (
	"errors"
	"time"

	"audiomass-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging each request through log.
// It must be registered after the rayid middleware to pick up the request id.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(log, c).With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		l.Debug("Request started")

		err := c.Next()

		// The error handler has not run yet, so derive the status it will write.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case err == nil:
			l.Info("Request completed", fields...)
		case status < fiber.StatusInternalServerError:
			l.Warn("Request rejected", append(fields, zap.Error(err))...)
		default:
			l.Error("Request error", append(fields, zap.Error(err))...)
		}
		return err
	}
}
