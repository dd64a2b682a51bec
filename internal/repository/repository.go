package repository

import (
	"context"
	"time"

	"github.com/guestbonus/bonus-bot/internal/dbpool"
)

// repositoryImpl is the concrete implementation of Repository interface.
// It holds the pool manager rather than a raw handle so the pool can be
// constructed lazily on the first query.
type repositoryImpl struct {
	pools *dbpool.Manager
	guest GuestRepository
}

// NewRepository creates a new repository instance.
func NewRepository(pools *dbpool.Manager) Repository {
	return &repositoryImpl{
		pools: pools,
		guest: NewGuestRepository(pools),
	}
}

// Guest returns the guest repository.
func (r *repositoryImpl) Guest() GuestRepository {
	return r.guest
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	db, err := r.pools.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.PingContext(ctx)
}
