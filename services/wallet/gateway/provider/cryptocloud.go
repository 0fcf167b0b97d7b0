package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

const (
	cryptoCloudName       = "cryptocloud"
	cryptoCloudInvoiceURL = "https://api.cryptocloud.plus/v2/invoice/create"
)

// CryptoCloud implements wallet.PaymentProvider for cryptocloud.plus.
// Invoices are created over the v2 API; postbacks arrive form-encoded
// and carry a JWT signed with the shop secret.
type CryptoCloud struct {
	cfg        models.CryptoCloudConfig
	invoiceURL string
	client     *http.Client
}

// NewCryptoCloud creates the CryptoCloud provider
func NewCryptoCloud(cfg models.CryptoCloudConfig) *CryptoCloud {
	return &CryptoCloud{
		cfg:        cfg,
		invoiceURL: cryptoCloudInvoiceURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the registry key for this provider
func (p *CryptoCloud) Name() string {
	return cryptoCloudName
}

type cryptoCloudInvoiceRequest struct {
	ShopID   string  `json:"shop_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	OrderID  string  `json:"order_id"`
}

type cryptoCloudInvoiceResponse struct {
	Status string `json:"status"`
	Result struct {
		UUID string `json:"uuid"`
		Link string `json:"link"`
	} `json:"result"`
}

// GenerateLink creates an invoice and returns its payment link. The
// order id carries the local transaction correlation; the invoice uuid
// becomes the external id used by reconciliation.
func (p *CryptoCloud) GenerateLink(ctx context.Context, user *models.User, amount float64, transactionID string) (*models.PaymentLink, error) {
	reqBody := cryptoCloudInvoiceRequest{
		ShopID:   p.cfg.ShopID,
		Amount:   amount,
		Currency: p.cfg.Currency,
		OrderID:  fmt.Sprintf("user_%s_tid_%s", user.ID, transactionID),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.invoiceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: cryptocloud invoice create: %v", models.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cryptocloud invoice create returned %d", models.ErrUpstreamFailure, resp.StatusCode)
	}

	var invoice cryptoCloudInvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		return nil, fmt.Errorf("%w: cryptocloud invoice decode: %v", models.ErrUpstreamFailure, err)
	}

	if invoice.Status != "success" || invoice.Result.Link == "" {
		return nil, fmt.Errorf("%w: cryptocloud invoice rejected, status %q", models.ErrUpstreamFailure, invoice.Status)
	}

	return &models.PaymentLink{
		Link:      invoice.Result.Link,
		InvoiceID: invoice.Result.UUID,
	}, nil
}

// NormalizeCallback converts the form-encoded postback into the
// canonical callback view. The JWT token claim is verified against the
// shop secret before anything else is trusted.
func (p *CryptoCloud) NormalizeCallback(rawPayload []byte) (*models.PaymentCallback, error) {
	form, err := url.ParseQuery(string(rawPayload))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cryptocloud postback", models.ErrValidation)
	}

	if err := p.verifyToken(form.Get("token")); err != nil {
		return nil, err
	}

	amount, err := strconv.ParseFloat(form.Get("amount_crypto"), 64)
	if err != nil {
		logger.Warn("CryptoCloud postback without parseable amount",
			logger.String("invoice_id", form.Get("invoice_id")))
	}

	status := models.CallbackStatusFailed
	switch form.Get("status") {
	case "success":
		status = models.CallbackStatusSuccess
	case "canceled", "cancelled":
		status = models.CallbackStatusCancelled
	case "created", "paid_in_part":
		status = models.CallbackStatusPending
	}

	return &models.PaymentCallback{
		Provider:     cryptoCloudName,
		Status:       status,
		ExternalID:   form.Get("invoice_id"),
		Amount:       amount,
		ProviderTxID: form.Get("order_id"),
	}, nil
}

func (p *CryptoCloud) verifyToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: cryptocloud postback missing token", models.ErrValidation)
	}

	_, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(p.cfg.SecretKey), nil
	})
	if err != nil {
		return fmt.Errorf("%w: cryptocloud postback token rejected: %v", models.ErrValidation, err)
	}

	return nil
}
