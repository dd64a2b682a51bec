// Package service provides business logic implementation for the application.
package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/models"
)

const expiryDateLayout = "2006-01-02"

type bonusService struct {
	expiryDays int
	logger     *zap.Logger
}

// NewBonusService creates the resolver that turns raw guest rows into
// presentation-ready bonus values. expiryDays is the configured validity
// window added to the guest's last visit.
func NewBonusService(expiryDays int, logger *zap.Logger) BonusService {
	return &bonusService{
		expiryDays: expiryDays,
		logger:     logger,
	}
}

// Resolve never fails: bad stored data is logged and defaulted so one dirty
// row cannot break the reply flow.
func (s *bonusService) Resolve(record *models.GuestRecord) *models.GuestBonus {
	if record == nil {
		return nil
	}

	bonus := &models.GuestBonus{
		FirstName:    models.DefaultFirstName,
		LoyaltyLevel: models.DefaultLoyaltyLevel,
		Amount:       s.coerceAmount(record.BonusBalances.String, record.BonusBalances.Valid),
		ExpireDate:   s.deriveExpiry(record.LastVisit.Time, record.LastVisit.Valid),
	}

	if name := strings.TrimSpace(record.FirstName.String); record.FirstName.Valid && name != "" {
		bonus.FirstName = name
	}
	if level := strings.TrimSpace(record.LoyaltyLevel.String); record.LoyaltyLevel.Valid && level != "" {
		bonus.LoyaltyLevel = level
	}

	return bonus
}

// coerceAmount parses the stored balance text through a decimal-safe
// conversion. Missing, malformed or negative values collapse to 0.
func (s *bonusService) coerceAmount(raw string, valid bool) int64 {
	if !valid || strings.TrimSpace(raw) == "" {
		return 0
	}

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		s.logger.Warn("Could not coerce bonus balance, defaulting to 0",
			zap.String("value", raw),
			zap.Error(err))
		return 0
	}

	amount := value.IntPart()
	if amount < 0 {
		s.logger.Warn("Negative bonus balance, defaulting to 0",
			zap.String("value", raw))
		return 0
	}

	return amount
}

func (s *bonusService) deriveExpiry(lastVisit time.Time, valid bool) string {
	if !valid || lastVisit.IsZero() {
		return models.ExpiryUnknown
	}
	return lastVisit.AddDate(0, 0, s.expiryDays).Format(expiryDateLayout)
}
