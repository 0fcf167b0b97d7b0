package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/internal/utils"
	"github.com/proxline/proxline/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// UpsertUser handles user creation and refresh requests
func (h *WalletHandler) UpsertUser(c echo.Context) error {
	var req models.UserUpsertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.walletUC.UpsertUser(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to upsert user",
			logger.String("telegram_id", req.TelegramID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Failed to upsert user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User upserted successfully", user)
}

// GetBalance handles balance retrieval requests
func (h *WalletHandler) GetBalance(c echo.Context) error {
	telegramID := c.Param("telegram_id")
	if telegramID == "" {
		return utils.BadRequestResponse(c, "Invalid telegram ID")
	}

	balance, err := h.walletUC.GetBalance(c.Request().Context(), telegramID)
	if err != nil {
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Failed to retrieve balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", balance)
}

// TopUp handles payment link generation requests
func (h *WalletHandler) TopUp(c echo.Context) error {
	var req models.TopUpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.walletUC.TopUp(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to generate top-up link",
			logger.String("telegram_id", req.TelegramID),
			logger.String("provider", req.Provider),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Failed to generate top-up link")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Top-up link generated", resp)
}

// Webhook handles asynchronous payment provider callbacks. The raw
// body is handed to the provider strategy untouched; providers differ
// on content type.
func (h *WalletHandler) Webhook(c echo.Context) error {
	providerName := c.Param("provider")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable callback payload")
	}

	if err := h.walletUC.Reconcile(c.Request().Context(), providerName, body); err != nil {
		logger.Warn("Payment callback rejected",
			logger.String("provider", providerName),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, utils.HTTPStatus(err), "Callback rejected")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Callback processed", nil)
}
