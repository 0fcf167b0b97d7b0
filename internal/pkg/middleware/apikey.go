package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/proxline/proxline/internal/utils"
)

const (
	// APIKeyHeader carries the internal service token.
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey validates the API key for service-to-service
// communication (the Telegram bot frontend calling internal endpoints).
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if expectedKey == "" || !strings.EqualFold(apiKey, expectedKey) {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
