package service

import (
	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/config"
	"github.com/guestbonus/bonus-bot/internal/repository"
)

type Service struct {
	Bonus   BonusService
	Gateway GatewayService
	Health  HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	breaker BreakerStatusProvider,
	logger *zap.Logger,
) *Service {
	bonusService := NewBonusService(cfg.Bonus.ExpiryDays, logger)
	gatewayService := NewGatewayService(repo, bonusService, logger)
	healthService := NewHealthService(repo, breaker)

	return &Service{
		Bonus:   bonusService,
		Gateway: gatewayService,
		Health:  healthService,
	}
}
