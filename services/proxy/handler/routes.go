package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/proxline/proxline/internal/pkg/middleware"
	"github.com/proxline/proxline/internal/pkg/models"
	httpHandler "github.com/proxline/proxline/services/proxy/handler/http"
)

// Handler coordinates the proxy service HTTP surface
type Handler struct {
	proxyHandler *httpHandler.ProxyHandler
	cfg          *models.Config
}

// NewHandler creates and initializes the proxy handlers
func NewHandler(proxyHandler *httpHandler.ProxyHandler, cfg *models.Config) *Handler {
	return &Handler{
		proxyHandler: proxyHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the proxy routes behind the internal API key
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/proxy", middleware.ValidateAPIKey(h.cfg.Notify.InternalAPIKey))

	g.GET("/price", h.proxyHandler.GetPrice)
	g.POST("/buy", h.proxyHandler.Buy)
	g.GET("/list/:telegram_id", h.proxyHandler.List)
}
