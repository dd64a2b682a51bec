package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/config"
	"github.com/guestbonus/bonus-bot/internal/telegram"
)

func newTestClient(endpoint string) *telegram.Client {
	cfg := &config.TelegramConfig{
		Token:       "test-token",
		APIEndpoint: endpoint,
		Timeout:     5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
	return telegram.NewClient(cfg, zap.NewNop())
}

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	keyboard := &telegram.ReplyKeyboardMarkup{
		Keyboard: [][]telegram.KeyboardButton{
			{{Text: "Share phone number", RequestContact: true}},
		},
		ResizeKeyboard: true,
	}

	err := client.SendMessage(context.Background(), 42, "hello", keyboard)

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, float64(42), gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])
	assert.NotNil(t, gotBody["reply_markup"])
}

func TestClient_SendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	err := client.SendMessage(context.Background(), 42, "hello", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestClient_SetWebhook(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	err := client.SetWebhook(context.Background(), "https://example.com/webhook")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/setWebhook", gotPath)
	assert.Equal(t, "https://example.com/webhook", gotBody["url"])
}

func TestClient_CircuitBreakerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	state, requests, failures := client.CircuitBreakerStatus()
	assert.Equal(t, "closed", state)
	assert.Zero(t, requests)
	assert.Zero(t, failures)

	require.NoError(t, client.SendMessage(context.Background(), 42, "hello", nil))

	_, requests, failures = client.CircuitBreakerStatus()
	assert.Equal(t, uint32(1), requests)
	assert.Zero(t, failures)
}
