package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/internal/utils"
	"github.com/proxline/proxline/services/proxy"
)

// ProxyHandler handles HTTP requests for proxy operations
type ProxyHandler struct {
	proxyUC proxy.ProxyUC
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(proxyUC proxy.ProxyUC) *ProxyHandler {
	return &ProxyHandler{proxyUC: proxyUC}
}

// GetPrice handles quote requests
func (h *ProxyHandler) GetPrice(c echo.Context) error {
	version := c.QueryParam("version")
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid quantity")
	}
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid days")
	}

	quote, err := h.proxyUC.GetQuote(c.Request().Context(), version, quantity, days)
	if err != nil {
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Failed to get quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote retrieved successfully", quote)
}

// Buy handles purchase saga requests
func (h *ProxyHandler) Buy(c echo.Context) error {
	var req models.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.proxyUC.Purchase(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Purchase failed",
			logger.String("telegram_id", req.TelegramID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Purchase failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Purchase completed", resp)
}

// List handles inventory browse requests
func (h *ProxyHandler) List(c echo.Context) error {
	telegramID := c.Param("telegram_id")
	if telegramID == "" {
		return utils.BadRequestResponse(c, "Invalid telegram ID")
	}

	proxies, err := h.proxyUC.ListUserProxies(c.Request().Context(), telegramID)
	if err != nil {
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Failed to list proxies")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proxies retrieved successfully", proxies)
}
