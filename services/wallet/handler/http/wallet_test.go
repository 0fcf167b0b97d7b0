package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/wallet/mocks"
)

func TestUpsertUser_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	requestBody := `{
		"telegram_id": "12345",
		"username": "alice",
		"first_name": "Alice",
		"language": "en",
		"notification": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	mockWalletUC.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, upsertReq *models.UserUpsertRequest) (*models.User, error) {
			assert.Equal(t, "12345", upsertReq.TelegramID)
			assert.Equal(t, "alice", upsertReq.Username)
			assert.True(t, upsertReq.Notification)
			return &models.User{
				ID:         userID,
				TelegramID: upsertReq.TelegramID,
				Username:   upsertReq.Username,
				Language:   upsertReq.Language,
				Active:     true,
			}, nil
		})

	// Act
	err := handler.UpsertUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "User upserted successfully", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "12345", data["telegram_id"])
	assert.Equal(t, "alice", data["username"])
}

func TestUpsertUser_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler.UpsertUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["error"])
}

func TestUpsertUser_ValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockWalletUC.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrValidation)

	// Act
	err := handler.UpsertUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBalance_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/balance/:telegram_id")
	c.SetParamNames("telegram_id")
	c.SetParamValues("12345")

	mockWalletUC.EXPECT().
		GetBalance(gomock.Any(), "12345").
		Return(&models.Balance{UserID: uuid.New(), Amount: 42.5}, nil)

	// Act
	err := handler.GetBalance(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 42.5, data["amount"])
}

func TestGetBalance_UnknownUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/balance/:telegram_id")
	c.SetParamNames("telegram_id")
	c.SetParamValues("99999")

	mockWalletUC.EXPECT().
		GetBalance(gomock.Any(), "99999").
		Return(nil, models.ErrNotFound)

	// Act
	err := handler.GetBalance(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopUp_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	requestBody := `{"telegram_id":"12345","provider":"cryptocloud","amount":25}`
	req := httptest.NewRequest(http.MethodPost, "/topup", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	txID := uuid.New()
	mockWalletUC.EXPECT().
		TopUp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, topUpReq *models.TopUpRequest) (*models.TopUpResponse, error) {
			assert.Equal(t, "cryptocloud", topUpReq.Provider)
			assert.Equal(t, 25.0, topUpReq.Amount)
			return &models.TopUpResponse{
				TransactionID: txID,
				Link:          "https://pay.example/inv-1",
				InvoiceID:     "inv-1",
			}, nil
		})

	// Act
	err := handler.TopUp(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Top-up link generated", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "https://pay.example/inv-1", data["topup_url"])
	assert.Equal(t, "inv-1", data["invoice_id"])
}

func TestTopUp_ValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	requestBody := `{"telegram_id":"12345","provider":"cryptocloud","amount":-5}`
	req := httptest.NewRequest(http.MethodPost, "/topup", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockWalletUC.EXPECT().
		TopUp(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrValidation)

	// Act
	err := handler.TopUp(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	handler := NewWalletHandler(mockWalletUC)

	e := echo.New()
	payload := `status=success&invoice_id=inv-1&order_id=tx-1`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/webhook/:provider")
	c.SetParamNames("provider")
	c.SetParamValues("cryptocloud")

	mockWalletUC.EXPECT().
		Reconcile(gomock.Any(), "cryptocloud", []byte(payload)).
		Return(nil)

	// Act
	err := handler.Webhook(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Callback processed", response["message"])
}

func TestWebhook_StatusMapping(t *testing.T) {
	tests := []struct {
		name         string
		reconcileErr error
		wantStatus   int
	}{
		{
			name:         "duplicate callback maps to conflict",
			reconcileErr: models.ErrDuplicateCallback,
			wantStatus:   http.StatusConflict,
		},
		{
			name:         "validation failure maps to bad request",
			reconcileErr: models.ErrValidation,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "unknown invoice maps to not found",
			reconcileErr: models.ErrNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "unexpected failure maps to internal error",
			reconcileErr: errors.New("database down"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWalletUC := mocks.NewMockWalletUC(ctrl)
			handler := NewWalletHandler(mockWalletUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"fail"}`))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/webhook/:provider")
			c.SetParamNames("provider")
			c.SetParamValues("nowpayments")

			mockWalletUC.EXPECT().
				Reconcile(gomock.Any(), "nowpayments", gomock.Any()).
				Return(tt.reconcileErr)

			// Act
			err := handler.Webhook(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "Callback rejected", response["error"])
		})
	}
}
