package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guestbonus/bonus-bot/internal/dbpool"
	"github.com/guestbonus/bonus-bot/internal/models"
)

type guestRepository struct {
	pools *dbpool.Manager
}

func NewGuestRepository(pools *dbpool.Manager) GuestRepository {
	return &guestRepository{
		pools: pools,
	}
}

// FetchByPhone retrieves the guest record for a canonical phone number.
// An empty phone means normalization failed upstream; no match is possible,
// so the pool is never acquired for it.
func (r *guestRepository) FetchByPhone(ctx context.Context, phone string) (*models.GuestRecord, error) {
	if phone == "" {
		return nil, nil
	}

	db, err := r.pools.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire pool: %w", err)
	}

	query := `
		SELECT first_name, loyalty_level, bonus_balances, last_visit
		FROM guests
		WHERE phone = $1
		LIMIT 1
	`

	var record models.GuestRecord
	err = db.GetContext(ctx, &record, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest by phone: %w", err)
	}

	return &record, nil
}

// LogUsage inserts a single usage-stats row.
func (r *guestRepository) LogUsage(ctx context.Context, entry models.UsageLogEntry) error {
	db, err := r.pools.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire pool: %w", err)
	}

	query := `
		INSERT INTO usage_stats (user_id, phone, command, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err = db.ExecContext(ctx, query, entry.UserID, entry.Phone, entry.Command, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert usage stat: %w", err)
	}

	return nil
}
