package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/proxline/proxline/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and converts them into a plain 500 response. Panics must
// never escape the HTTP boundary.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	zapLogger.WithFields(map[string]interface{}{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get("X-Request-ID"),
		"component":   "panic_recovery",
	}).Error("Panic recovered during request processing")

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}
