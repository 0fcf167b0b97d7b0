package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/proxline/proxline/internal/pkg/middleware"
	"github.com/proxline/proxline/internal/pkg/models"
	httpHandler "github.com/proxline/proxline/services/wallet/handler/http"
)

// Handler coordinates the wallet service HTTP surface
type Handler struct {
	walletHandler *httpHandler.WalletHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the wallet handlers
func NewHandler(walletHandler *httpHandler.WalletHandler, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the wallet routes. User management and
// top-up creation are internal bot-to-backend calls guarded by the API
// key; the webhook stays open for providers.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	internal := api.Group("", middleware.ValidateAPIKey(h.cfg.Notify.InternalAPIKey))
	internal.POST("/users", h.walletHandler.UpsertUser)
	internal.GET("/users/:telegram_id/balance", h.walletHandler.GetBalance)
	internal.POST("/topup", h.walletHandler.TopUp)

	api.POST("/webhook/:provider", h.walletHandler.Webhook)
}
