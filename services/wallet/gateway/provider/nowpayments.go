package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/proxline/proxline/internal/pkg/models"
)

const (
	nowPaymentsName       = "nowpayments"
	nowPaymentsInvoiceURL = "https://api.nowpayments.io/v1/invoice"
)

// NowPayments implements wallet.PaymentProvider for nowpayments.io.
// Invoices are created over the v1 API; callbacks arrive as JSON IPN
// notifications.
type NowPayments struct {
	cfg        models.NowPaymentsConfig
	invoiceURL string
	client     *http.Client
}

// NewNowPayments creates the NOWPayments provider
func NewNowPayments(cfg models.NowPaymentsConfig) *NowPayments {
	return &NowPayments{
		cfg:        cfg,
		invoiceURL: nowPaymentsInvoiceURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the registry key for this provider
func (p *NowPayments) Name() string {
	return nowPaymentsName
}

type nowPaymentsInvoiceRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	OrderID          string  `json:"order_id"`
	OrderDescription string  `json:"order_description"`
	IPNCallbackURL   string  `json:"ipn_callback_url"`
	SuccessURL       string  `json:"success_url"`
	CancelURL        string  `json:"cancel_url"`
}

type nowPaymentsInvoiceResponse struct {
	ID         string `json:"id"`
	InvoiceURL string `json:"invoice_url"`
}

// GenerateLink creates an invoice and returns its payment link
func (p *NowPayments) GenerateLink(ctx context.Context, user *models.User, amount float64, transactionID string) (*models.PaymentLink, error) {
	reqBody := nowPaymentsInvoiceRequest{
		PriceAmount:      amount,
		PriceCurrency:    p.cfg.Currency,
		OrderID:          fmt.Sprintf("user_%s_tid_%s", user.ID, transactionID),
		OrderDescription: fmt.Sprintf("Top-up for user %s", user.TelegramID),
		IPNCallbackURL:   p.cfg.CallbackURL,
		SuccessURL:       p.cfg.SuccessURL,
		CancelURL:        p.cfg.CancelURL,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.invoiceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice request: %w", err)
	}
	req.Header.Set("x-api-key", p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: nowpayments invoice create: %v", models.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: nowpayments invoice create returned %d", models.ErrUpstreamFailure, resp.StatusCode)
	}

	var invoice nowPaymentsInvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		return nil, fmt.Errorf("%w: nowpayments invoice decode: %v", models.ErrUpstreamFailure, err)
	}

	if invoice.InvoiceURL == "" {
		return nil, fmt.Errorf("%w: nowpayments response missing invoice_url", models.ErrUpstreamFailure)
	}

	return &models.PaymentLink{
		Link:      invoice.InvoiceURL,
		InvoiceID: invoice.ID,
	}, nil
}

type nowPaymentsIPN struct {
	PaymentStatus string  `json:"payment_status"`
	InvoiceID     int64   `json:"invoice_id"`
	OrderID       string  `json:"order_id"`
	PayAmount     float64 `json:"pay_amount"`
	PaymentID     int64   `json:"payment_id"`
}

// NormalizeCallback converts the JSON IPN payload into the canonical
// callback view. "finished" and "confirmed" settle the invoice;
// "failed" and "expired" terminate it; everything else is ignored as
// still in flight.
func (p *NowPayments) NormalizeCallback(rawPayload []byte) (*models.PaymentCallback, error) {
	var ipn nowPaymentsIPN
	if err := json.Unmarshal(rawPayload, &ipn); err != nil {
		return nil, fmt.Errorf("%w: malformed nowpayments IPN", models.ErrValidation)
	}

	status := models.CallbackStatusPending
	switch ipn.PaymentStatus {
	case "finished", "confirmed":
		status = models.CallbackStatusSuccess
	case "failed":
		status = models.CallbackStatusFailed
	case "expired":
		status = models.CallbackStatusCancelled
	}

	return &models.PaymentCallback{
		Provider:     nowPaymentsName,
		Status:       status,
		ExternalID:   fmt.Sprintf("%d", ipn.InvoiceID),
		Amount:       ipn.PayAmount,
		ProviderTxID: fmt.Sprintf("%d", ipn.PaymentID),
	}, nil
}
