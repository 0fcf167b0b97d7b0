package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoMiddleware returns an echo middleware that logs every request
// through the structured logger.
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			fields := []zap.Field{
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.String("client_ip", c.RealIP()),
				zap.String("method", c.Request().Method),
				zap.String("path", path),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case statusCode >= 500:
				l.Error("Server error", fields...)
			case statusCode >= 400:
				l.Warn("Client error", fields...)
			default:
				l.Info("Request processed", fields...)
			}

			return err
		}
	}
}
