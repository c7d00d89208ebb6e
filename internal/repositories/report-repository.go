package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReportRepositoryInterface interface {
	GetRequestStatsByTeam(ctx context.Context) ([]entities.RequestGroupStats, error)
	GetRequestStatsByCategory(ctx context.Context) ([]entities.RequestGroupStats, error)
	GetSummary(ctx context.Context) (*entities.SummaryReport, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

// statsQuery aggregates request counts per group in the database rather than
// in application memory: one row per team/category with per-stage and
// per-type breakdowns.
const statsQuery = `
SELECT g.id, g.name,
       COUNT(mr.id) AS total,
       COUNT(mr.id) FILTER (WHERE mr.stage = 'NEW') AS new_count,
       COUNT(mr.id) FILTER (WHERE mr.stage = 'ASSIGNED') AS assigned_count,
       COUNT(mr.id) FILTER (WHERE mr.stage = 'IN_PROGRESS') AS in_progress_count,
       COUNT(mr.id) FILTER (WHERE mr.stage = 'REPAIRED') AS repaired_count,
       COUNT(mr.id) FILTER (WHERE mr.stage = 'SCRAPPED') AS scrapped_count,
       COUNT(mr.id) FILTER (WHERE mr.request_type = 'CORRECTIVE') AS corrective_count,
       COUNT(mr.id) FILTER (WHERE mr.request_type = 'PREVENTIVE') AS preventive_count,
       COUNT(mr.id) FILTER (WHERE mr.request_type = 'PREDICTIVE') AS predictive_count
FROM %s g
LEFT JOIN maintenance_requests mr ON mr.%s = g.id
GROUP BY g.id, g.name
ORDER BY total DESC, g.id ASC`

func (r *ReportRepository) queryStats(ctx context.Context, table, fk string) ([]entities.RequestGroupStats, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf(statsQuery, table, fk))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]entities.RequestGroupStats, 0)
	for rows.Next() {
		var s entities.RequestGroupStats
		if err := rows.Scan(
			&s.GroupID, &s.GroupName, &s.Total,
			&s.New, &s.Assigned, &s.InProgress, &s.Repaired, &s.Scrapped,
			&s.Corrective, &s.Preventive, &s.Predictive,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *ReportRepository) GetRequestStatsByTeam(ctx context.Context) ([]entities.RequestGroupStats, error) {
	return r.queryStats(ctx, "maintenance_teams", "maintenance_team_id")
}

func (r *ReportRepository) GetRequestStatsByCategory(ctx context.Context) ([]entities.RequestGroupStats, error) {
	return r.queryStats(ctx, "equipment_categories", "equipment_category_id")
}

func (r *ReportRepository) GetSummary(ctx context.Context) (*entities.SummaryReport, error) {
	summary := &entities.SummaryReport{
		RequestsByStage:   make(map[string]uint64),
		EquipmentByStatus: make(map[string]uint64),
	}

	rows, err := r.storage.Query(ctx, `SELECT stage, COUNT(*) FROM maintenance_requests GROUP BY stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var stage string
		var count uint64
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		summary.RequestsByStage[stage] = count
		summary.TotalRequests += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT status, COUNT(*) FROM equipment GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.EquipmentByStatus[status] = count
		summary.TotalEquipment += count
	}
	return summary, rows.Err()
}
