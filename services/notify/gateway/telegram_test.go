package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxline/proxline/internal/pkg/models"
)

func TestTelegramGW_Send(t *testing.T) {
	var gotBody sendRequest
	var gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-Key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw := NewTelegramGW(models.NotifyConfig{
		TelegramNotifyURL: srv.URL,
		InternalAPIKey:    "internal-key",
	})

	err := gw.Send(context.Background(), "12345", "Your proxy expires soon")

	assert.NoError(t, err)
	assert.Equal(t, "internal-key", gotAPIKey)
	assert.Equal(t, "12345", gotBody.TelegramID)
	assert.Equal(t, "Your proxy expires soon", gotBody.Text)
}

func TestTelegramGW_Send_NotifierError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewTelegramGW(models.NotifyConfig{TelegramNotifyURL: srv.URL})

	err := gw.Send(context.Background(), "12345", "text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTelegramGW_Send_Unreachable(t *testing.T) {
	gw := NewTelegramGW(models.NotifyConfig{TelegramNotifyURL: "http://127.0.0.1:1"})

	err := gw.Send(context.Background(), "12345", "text")

	assert.Error(t, err)
}
