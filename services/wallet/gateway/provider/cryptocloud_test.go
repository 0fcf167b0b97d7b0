package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
)

const testSecret = "shop-secret"

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newTestCryptoCloud() *CryptoCloud {
	return NewCryptoCloud(models.CryptoCloudConfig{
		APIKey:    "api-key",
		ShopID:    "shop-1",
		SecretKey: testSecret,
		Currency:  "USD",
	})
}

func TestCryptoCloud_GenerateLink(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Token api-key", r.Header.Get("Authorization"))

		var req cryptoCloudInvoiceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shop-1", req.ShopID)
		assert.Equal(t, 50.0, req.Amount)
		assert.Contains(t, req.OrderID, "tid_")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"result": map[string]string{
				"uuid": "INV-123",
				"link": "https://pay.cryptocloud.plus/INV-123",
			},
		})
	}))
	defer srv.Close()

	p := newTestCryptoCloud()
	p.invoiceURL = srv.URL

	user := &models.User{TelegramID: "421337"}

	// Act
	link, err := p.GenerateLink(context.Background(), user, 50.0, "tx-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.cryptocloud.plus/INV-123", link.Link)
	assert.Equal(t, "INV-123", link.InvoiceID)
}

func TestCryptoCloud_GenerateLink_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "error"})
	}))
	defer srv.Close()

	p := newTestCryptoCloud()
	p.invoiceURL = srv.URL

	link, err := p.GenerateLink(context.Background(), &models.User{}, 50.0, "tx-1")

	assert.ErrorIs(t, err, models.ErrUpstreamFailure)
	assert.Nil(t, link)
}

func TestCryptoCloud_NormalizeCallback(t *testing.T) {
	p := newTestCryptoCloud()
	token := signedToken(t, testSecret)

	tests := []struct {
		name       string
		formStatus string
		want       string
	}{
		{"success", "success", models.CallbackStatusSuccess},
		{"canceled", "canceled", models.CallbackStatusCancelled},
		{"created stays pending", "created", models.CallbackStatusPending},
		{"partial stays pending", "paid_in_part", models.CallbackStatusPending},
		{"unknown maps to failed", "something_else", models.CallbackStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("status", tt.formStatus)
			form.Set("invoice_id", "INV-123")
			form.Set("amount_crypto", "49.5")
			form.Set("order_id", "user_x_tid_y")
			form.Set("token", token)

			callback, err := p.NormalizeCallback([]byte(form.Encode()))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, callback.Status)
			assert.Equal(t, "INV-123", callback.ExternalID)
			assert.Equal(t, 49.5, callback.Amount)
			assert.Equal(t, "user_x_tid_y", callback.ProviderTxID)
		})
	}
}

func TestCryptoCloud_NormalizeCallback_BadToken(t *testing.T) {
	p := newTestCryptoCloud()

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"token signed with wrong secret", signedToken(t, "forged-secret")},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("status", "success")
			form.Set("invoice_id", "INV-123")
			if tt.token != "" {
				form.Set("token", tt.token)
			}

			callback, err := p.NormalizeCallback([]byte(form.Encode()))

			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Nil(t, callback)
		})
	}
}

func TestNowPayments_GenerateLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "np-key", r.Header.Get("x-api-key"))

		var req nowPaymentsInvoiceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 50.0, req.PriceAmount)

		json.NewEncoder(w).Encode(map[string]string{
			"id":          "5001",
			"invoice_url": "https://nowpayments.io/payment/5001",
		})
	}))
	defer srv.Close()

	p := NewNowPayments(models.NowPaymentsConfig{APIKey: "np-key", Currency: "usd"})
	p.invoiceURL = srv.URL

	link, err := p.GenerateLink(context.Background(), &models.User{TelegramID: "421337"}, 50.0, "tx-1")

	assert.NoError(t, err)
	assert.Equal(t, "https://nowpayments.io/payment/5001", link.Link)
	assert.Equal(t, "5001", link.InvoiceID)
}

func TestNowPayments_NormalizeCallback(t *testing.T) {
	p := NewNowPayments(models.NowPaymentsConfig{})

	tests := []struct {
		name          string
		paymentStatus string
		want          string
	}{
		{"finished settles", "finished", models.CallbackStatusSuccess},
		{"confirmed settles", "confirmed", models.CallbackStatusSuccess},
		{"failed terminates", "failed", models.CallbackStatusFailed},
		{"expired cancels", "expired", models.CallbackStatusCancelled},
		{"waiting stays pending", "waiting", models.CallbackStatusPending},
		{"partially_paid stays pending", "partially_paid", models.CallbackStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fmt.Sprintf(`{"payment_status":%q,"invoice_id":5001,"order_id":"user_x_tid_y","pay_amount":49.5,"payment_id":777}`, tt.paymentStatus)

			callback, err := p.NormalizeCallback([]byte(payload))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, callback.Status)
			assert.Equal(t, "5001", callback.ExternalID)
			assert.Equal(t, 49.5, callback.Amount)
			assert.Equal(t, "777", callback.ProviderTxID)
		})
	}
}

func TestNowPayments_NormalizeCallback_Malformed(t *testing.T) {
	p := NewNowPayments(models.NowPaymentsConfig{})

	callback, err := p.NormalizeCallback([]byte("not-json"))

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, callback)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(newTestCryptoCloud(), NewNowPayments(models.NowPaymentsConfig{}))

	p, err := registry.Get("cryptocloud")
	assert.NoError(t, err)
	assert.Equal(t, "cryptocloud", p.Name())

	p, err = registry.Get("nowpayments")
	assert.NoError(t, err)
	assert.Equal(t, "nowpayments", p.Name())

	_, err = registry.Get("wire-transfer")
	assert.Error(t, err)
}
