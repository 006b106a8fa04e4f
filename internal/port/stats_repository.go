package port

import (
	"context"

	"edms/internal/domain"
)

// StatsRepository computes the dashboard aggregates.
type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
