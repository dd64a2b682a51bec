package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/guestbonus/bonus-bot/internal/repository/mocks"
	"github.com/guestbonus/bonus-bot/internal/service"
)

type stubBreaker struct {
	state    string
	requests uint32
	failures uint32
}

func (s *stubBreaker) CircuitBreakerStatus() (string, uint32, uint32) {
	return s.state, s.requests, s.failures
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		breaker  *stubBreaker
		expected string
	}{
		{
			name:     "healthy",
			pingErr:  nil,
			breaker:  &stubBreaker{state: "closed", requests: 10, failures: 1},
			expected: service.StatusHealthy,
		},
		{
			name:     "database down is unhealthy",
			pingErr:  errors.New("connection refused"),
			breaker:  &stubBreaker{state: "closed"},
			expected: service.StatusUnhealthy,
		},
		{
			name:     "open breaker is degraded",
			pingErr:  nil,
			breaker:  &stubBreaker{state: "open", requests: 10, failures: 9},
			expected: service.StatusDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := mocks.NewMockRepository(ctrl)
			repo.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			svc := service.NewHealthService(repo, tt.breaker)
			health := svc.GetHealth(context.Background())

			assert.Equal(t, tt.expected, health.Status)
			if tt.pingErr != nil {
				assert.Equal(t, service.DatabaseDisconnected, health.DatabaseStatus)
			} else {
				assert.Equal(t, service.DatabaseConnected, health.DatabaseStatus)
			}
			assert.Equal(t, tt.breaker.state, health.CircuitBreakerState)
		})
	}
}

func TestHealthService_GetHealth_NoBreakerRequests(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := service.NewHealthService(repo, &stubBreaker{state: "closed"})
	health := svc.GetHealth(context.Background())

	assert.Equal(t, "No requests yet", health.CircuitBreakerStatus)
}
