// Package handler provides HTTP request handlers for the application.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/middleware"
	"github.com/guestbonus/bonus-bot/internal/service"
	"github.com/guestbonus/bonus-bot/internal/telegram"
)

const (
	errorCodeInvalidPayload = "INVALID_PAYLOAD"

	errorMessageInvalidPayload = "Webhook payload is malformed or incomplete"
)

type Handler struct {
	service *service.Service
	sender  telegram.Sender
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, sender telegram.Sender, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		sender:  sender,
		logger:  logger,
	}
}

// Webhook accepts a Telegram update, routes it through the gateway and sends
// the reply back through the Bot API. Only client-format problems produce a
// non-200 status; business rejections and storage trouble still ack the
// webhook so Telegram does not redeliver the update.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("Failed to decode webhook payload",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPayload, errorMessageInvalidPayload)
		return
	}

	if msg := update.Message; msg != nil && msg.Contact == nil && strings.HasPrefix(msg.Text, "/start") {
		text, keyboard := h.service.Gateway.HandleStartCommand()
		h.reply(r.Context(), requestID, msg.Chat.ID, text, keyboard)
		render.JSON(w, r, map[string]interface{}{"ok": true})
		return
	}

	reply, err := h.service.Gateway.HandleContactEvent(r.Context(), &update)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEvent) {
			h.logger.Warn("Rejected invalid contact event",
				zap.String("request_id", requestID),
				zap.Error(err))
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPayload, errorMessageInvalidPayload)
			return
		}

		h.logger.Error("Failed to handle contact event",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}

	h.reply(r.Context(), requestID, update.Message.Chat.ID, reply, nil)
	render.JSON(w, r, map[string]interface{}{"ok": true})
}

// HealthCheck reports liveness and dependency status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	if health.Status == service.StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, healthResponse{
		Status:               health.Status,
		DatabaseStatus:       health.DatabaseStatus,
		CircuitBreakerState:  health.CircuitBreakerState,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		Timestamp:            time.Now(),
	})
}

// reply delivers the outbound message. Send failures are logged with full
// detail but never change the webhook response.
func (h *Handler) reply(ctx context.Context, requestID string, chatID int64, text string, keyboard *telegram.ReplyKeyboardMarkup) {
	if err := h.sender.SendMessage(ctx, chatID, text, keyboard); err != nil {
		h.logger.Error("Failed to send reply",
			zap.String("request_id", requestID),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type healthResponse struct {
	Status               string    `json:"status"`
	DatabaseStatus       string    `json:"database_status"`
	CircuitBreakerState  string    `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus string    `json:"circuit_breaker_status,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}
