package service

import (
	"context"

	"edms/internal/domain"
	"edms/internal/port"
)

// StatsService serves the dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.statsRepo.GetDashboardStats(ctx)
}
