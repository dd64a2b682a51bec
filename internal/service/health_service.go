package service

import (
	"context"
	"fmt"

	"github.com/guestbonus/bonus-bot/internal/repository"
)

// BreakerStatusProvider exposes the outbound circuit breaker for health reporting.
type BreakerStatusProvider interface {
	CircuitBreakerStatus() (state string, requests uint32, failures uint32)
}

type healthService struct {
	repo    repository.Repository
	breaker BreakerStatusProvider
}

func NewHealthService(repo repository.Repository, breaker BreakerStatusProvider) HealthService {
	return &healthService{
		repo:    repo,
		breaker: breaker,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:         StatusHealthy,
		DatabaseStatus: DatabaseConnected,
	}

	if err := s.repo.Ping(ctx); err != nil {
		status.DatabaseStatus = DatabaseDisconnected
		status.Status = StatusUnhealthy
	}

	if s.breaker != nil {
		state, requests, failures := s.breaker.CircuitBreakerStatus()
		status.CircuitBreakerState = state
		if requests > 0 {
			failureRate := float64(failures) / float64(requests) * 100
			status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
		} else {
			status.CircuitBreakerStatus = "No requests yet"
		}

		// An open breaker means replies are not being delivered even though
		// lookups still work.
		if state == "open" && status.Status == StatusHealthy {
			status.Status = StatusDegraded
		}
	}

	return status
}
