package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"edms/internal/domain"
	"edms/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const dashboardStatsQuery = `SELECT
	(SELECT COUNT(*) FROM documents) AS document_count,
	(SELECT COUNT(*) FROM employees) AS employee_count,
	(SELECT COUNT(*) FROM documents WHERE status = 'Active') AS active_count,
	(SELECT COUNT(*) FROM documents WHERE status = 'Inactive') AS inactive_count,
	(SELECT COUNT(*) FROM required_categories rc
		WHERE rc.is_active
		  AND NOT EXISTS (SELECT 1 FROM documents d
			WHERE d.employee_id = rc.employee_id
			  AND d.category_code = rc.category_code)) AS pending_count`

func (r *statsRepo) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetDashboardStats: %w", err)
	}

	var recent []domain.Document
	err := r.db.SelectContext(ctx, &recent,
		"SELECT * FROM documents ORDER BY uploaded_at DESC LIMIT 5")
	if err != nil {
		return nil, fmt.Errorf("statsRepo.GetDashboardStats recent: %w", err)
	}
	stats.RecentUploads = recent

	return &stats, nil
}
