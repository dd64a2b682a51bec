package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/dbpool"
	"github.com/guestbonus/bonus-bot/internal/models"
	"github.com/guestbonus/bonus-bot/internal/repository"
)

func setupMockRepo(t *testing.T) (sqlmock.Sqlmock, repository.Repository, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	wrapped := sqlx.NewDb(db, "sqlmock")
	pools := dbpool.NewManagerWithOpener(func(ctx context.Context) (*sqlx.DB, error) {
		return wrapped, nil
	}, zap.NewNop())

	repo := repository.NewRepository(pools)

	return mock, repo, func() { _ = pools.Close() }
}

func TestGuestRepository_FetchByPhone_Found(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	lastVisit := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"first_name", "loyalty_level", "bonus_balances", "last_visit"}).
		AddRow("Anna", "Gold", "1250", lastVisit)

	mock.ExpectQuery(`SELECT first_name, loyalty_level, bonus_balances, last_visit`).
		WithArgs("79991234567").
		WillReturnRows(rows)

	record, err := repo.Guest().FetchByPhone(context.Background(), "79991234567")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Anna", record.FirstName.String)
	assert.Equal(t, "Gold", record.LoyaltyLevel.String)
	assert.Equal(t, "1250", record.BonusBalances.String)
	assert.True(t, record.LastVisit.Valid)
	assert.Equal(t, lastVisit, record.LastVisit.Time)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_FetchByPhone_NotFound(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"first_name", "loyalty_level", "bonus_balances", "last_visit"})

	mock.ExpectQuery(`SELECT first_name, loyalty_level, bonus_balances, last_visit`).
		WithArgs("79991234567").
		WillReturnRows(rows)

	record, err := repo.Guest().FetchByPhone(context.Background(), "79991234567")

	require.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_FetchByPhone_EmptyPhoneSkipsStorage(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	record, err := repo.Guest().FetchByPhone(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, record)
	// No query was expected; any storage call would fail expectations.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_FetchByPhone_QueryError(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT first_name, loyalty_level, bonus_balances, last_visit`).
		WithArgs("79991234567").
		WillReturnError(errors.New("connection reset"))

	record, err := repo.Guest().FetchByPhone(context.Background(), "79991234567")

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to fetch guest by phone")
}

func TestGuestRepository_FetchByPhone_PoolUnavailable(t *testing.T) {
	pools := dbpool.NewManagerWithOpener(func(ctx context.Context) (*sqlx.DB, error) {
		return nil, errors.New("connection refused")
	}, zap.NewNop())
	repo := repository.NewRepository(pools)

	record, err := repo.Guest().FetchByPhone(context.Background(), "79991234567")

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to acquire pool")
}

func TestGuestRepository_LogUsage(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	entry := models.UsageLogEntry{
		UserID:    42,
		Phone:     "7999*****67",
		Command:   "contact",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO usage_stats`).
		WithArgs(entry.UserID, entry.Phone, entry.Command, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Guest().LogUsage(context.Background(), entry)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_LogUsage_Error(t *testing.T) {
	mock, repo, cleanup := setupMockRepo(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO usage_stats`).
		WillReturnError(errors.New("table missing"))

	err := repo.Guest().LogUsage(context.Background(), models.UsageLogEntry{
		UserID:    42,
		Phone:     "7999*****67",
		Command:   "contact",
		CreatedAt: time.Now(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert usage stat")
}
