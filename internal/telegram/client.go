package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/config"
)

// Sender delivers replies to the chat platform. Implemented by Client.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup *ReplyKeyboardMarkup) error
}

// Client is an HTTP client for the Telegram Bot API. All outbound calls go
// through a circuit breaker so a degraded Bot API cannot pile up goroutines.
type Client struct {
	endpoint       string
	token          string
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewClient(cfg *config.TelegramConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint: cfg.APIEndpoint,
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

// SendMessage posts a sendMessage call for the given chat. The reply markup is
// optional and renders a custom keyboard when present.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup *ReplyKeyboardMarkup) error {
	req := sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: replyMarkup,
	}
	return c.call(ctx, "sendMessage", req)
}

// SetWebhook registers the public webhook URL with the Bot API.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	return c.call(ctx, "setWebhook", setWebhookRequest{URL: url})
}

// CircuitBreakerStatus exposes breaker state for the health report.
func (c *Client) CircuitBreakerStatus() (state string, requests uint32, failures uint32) {
	requests, failures = c.circuitBreaker.GetCounts()
	return c.circuitBreaker.GetState().String(), requests, failures
}

func (c *Client) call(ctx context.Context, method string, payload interface{}) error {
	return c.circuitBreaker.Execute(ctx, func() error {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", method, err)
		}

		url := fmt.Sprintf("%s/bot%s/%s", c.endpoint, c.token, method)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create %s request: %w", method, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send %s request: %w", method, err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		var apiResp apiResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}

		if resp.StatusCode != http.StatusOK || !apiResp.OK {
			return fmt.Errorf("%s failed with status %d: %s", method, resp.StatusCode, apiResp.Description)
		}

		return nil
	})
}
