package repository

import (
	"context"

	"github.com/guestbonus/bonus-bot/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// Guest returns guest repository
	Guest() GuestRepository
}

// GuestRepository interface defines guest lookup and usage-log operations.
type GuestRepository interface {
	// FetchByPhone returns the guest record keyed by the canonical phone,
	// or nil when there is no match. An empty phone never touches storage.
	FetchByPhone(ctx context.Context, phone string) (*models.GuestRecord, error)

	// LogUsage inserts one usage-stats row. Callers treat failures as
	// best-effort: log and move on.
	LogUsage(ctx context.Context, entry models.UsageLogEntry) error
}
