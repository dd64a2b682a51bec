package service

import (
	"context"

	"github.com/guestbonus/bonus-bot/internal/models"
	"github.com/guestbonus/bonus-bot/internal/telegram"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// BonusService derives a presentation-ready bonus from a stored guest record.
type BonusService interface {
	Resolve(record *models.GuestRecord) *models.GuestBonus
}

// GatewayService turns validated webhook events into reply text.
type GatewayService interface {
	// HandleContactEvent runs the full contact flow: validation, ownership
	// check, usage logging, lookup and reply formatting. It returns
	// ErrInvalidEvent for client-format problems; every other failure is
	// absorbed into a user-safe reply.
	HandleContactEvent(ctx context.Context, update *telegram.Update) (string, error)

	// HandleStartCommand returns the start prompt and the contact-request keyboard.
	HandleStartCommand() (string, *telegram.ReplyKeyboardMarkup)
}

// HealthService reports process health for the liveness endpoint.
type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
