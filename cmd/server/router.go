package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guestbonus/bonus-bot/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/webhook", h.Webhook)
	r.Get("/health", h.HealthCheck)

	return r
}
