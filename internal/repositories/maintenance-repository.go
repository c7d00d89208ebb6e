package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const maintenanceTable = "maintenance_requests"

var (
	maintenanceAllowedFilterFields = map[string]string{
		"stage":                 "mr.stage",
		"request_type":          "mr.request_type",
		"maintenance_team_id":   "mr.maintenance_team_id",
		"equipment_id":          "mr.equipment_id",
		"equipment_category_id": "mr.equipment_category_id",
		"requested_by_id":       "mr.requested_by_id",
		"assigned_to_id":        "mr.assigned_to_id",
	}
	maintenanceAllowedSortFields = map[string]string{
		"id":             "mr.id",
		"subject":        "mr.subject",
		"stage":          "mr.stage",
		"request_type":   "mr.request_type",
		"scheduled_date": "mr.scheduled_date",
		"completed_date": "mr.completed_date",
		"created_at":     "mr.created_at",
	}
)

const maintenanceColumns = `mr.id, mr.subject, mr.description, mr.equipment_id, mr.equipment_category_id,
       mr.maintenance_team_id, mr.request_type, mr.stage, mr.requested_by_id, mr.assigned_to_id,
       mr.scheduled_date, mr.completed_date, mr.duration_hours, mr.created_at, mr.updated_at`

type MaintenanceRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uint64, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.Subject, &m.Description, &m.EquipmentID, &m.EquipmentCategoryID,
		&m.MaintenanceTeamID, &m.RequestType, &m.Stage, &m.RequestedByID, &m.AssignedToID,
		&m.ScheduledDate, &m.CompletedDate, &m.DurationHours, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(mr.subject ILIKE $%d OR mr.description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := maintenanceAllowedFilterFields[key]; ok {
			conditions = append(conditions, fmt.Sprintf("%s = $%d", dbColumn, argCounter))
			args = append(args, value)
			argCounter++
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *MaintenanceRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS mr %s", maintenanceTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.MaintenanceRequest{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	orderBy := orderByClause(filter.Sort, maintenanceAllowedSortFields, "ORDER BY mr.created_at DESC")
	query := fmt.Sprintf("SELECT %s FROM %s AS mr %s %s %s",
		maintenanceColumns, maintenanceTable, whereClause, orderBy, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

// FindRequest loads a request with the related rows the detail view embeds:
// equipment summary, category, team, requester and assigned technician.
func (r *MaintenanceRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`SELECT %s,
	       eq.name, eq.serial_number, eq.location,
	       c.name,
	       mt.name,
	       rb.name, rb.email,
	       te.name, te.email
	FROM maintenance_requests mr
	JOIN equipment eq ON eq.id = mr.equipment_id
	JOIN equipment_categories c ON c.id = mr.equipment_category_id
	JOIN maintenance_teams mt ON mt.id = mr.maintenance_team_id
	JOIN employees rb ON rb.id = mr.requested_by_id
	LEFT JOIN technicians t ON t.id = mr.assigned_to_id
	LEFT JOIN employees te ON te.id = t.employee_id
	WHERE mr.id = $1`, maintenanceColumns)

	var (
		m entities.MaintenanceRequest

		equipmentName, equipmentSerial string
		equipmentLocation              null.String
		categoryName, teamName         string
		requesterName, requesterEmail  string
		techName, techEmail            *string
	)

	err := r.storage.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Subject, &m.Description, &m.EquipmentID, &m.EquipmentCategoryID,
		&m.MaintenanceTeamID, &m.RequestType, &m.Stage, &m.RequestedByID, &m.AssignedToID,
		&m.ScheduledDate, &m.CompletedDate, &m.DurationHours, &m.CreatedAt, &m.UpdatedAt,
		&equipmentName, &equipmentSerial, &equipmentLocation,
		&categoryName,
		&teamName,
		&requesterName, &requesterEmail,
		&techName, &techEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance request detail: %w", err)
	}

	m.Equipment = &entities.EquipmentRef{
		ID:           m.EquipmentID,
		Name:         equipmentName,
		SerialNumber: equipmentSerial,
		Location:     equipmentLocation,
	}
	m.EquipmentCategory = &entities.EquipmentCategory{ID: m.EquipmentCategoryID, Name: categoryName}
	m.MaintenanceTeam = &entities.MaintenanceTeam{ID: m.MaintenanceTeamID, Name: teamName}
	m.RequestedBy = &entities.EmployeeRef{ID: m.RequestedByID, Name: requesterName, Email: requesterEmail}
	if m.AssignedToID != nil && techName != nil && techEmail != nil {
		m.AssignedTo = &entities.TechnicianRef{
			ID:            *m.AssignedToID,
			EmployeeName:  *techName,
			EmployeeEmail: *techEmail,
		}
	}
	return &m, nil
}

func (r *MaintenanceRepository) CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`INSERT INTO maintenance_requests
	        (subject, description, equipment_id, equipment_category_id, maintenance_team_id,
	         request_type, stage, requested_by_id, assigned_to_id, scheduled_date, duration_hours)
	    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	    RETURNING %s`, strings.ReplaceAll(maintenanceColumns, "mr.", ""))

	created, err := scanRequest(r.storage.QueryRow(ctx, query,
		request.Subject, request.Description, request.EquipmentID, request.EquipmentCategoryID,
		request.MaintenanceTeamID, request.RequestType, request.Stage, request.RequestedByID,
		request.AssignedToID, request.ScheduledDate, request.DurationHours,
	))
	if err != nil {
		return nil, mapMaintenanceWriteError(err)
	}
	return created, nil
}

// UpdateRequest overwrites the mutable fields in one statement so the
// stage change and the auto-populated completed date land atomically.
func (r *MaintenanceRepository) UpdateRequest(ctx context.Context, id uint64, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	updateBuilder := sq.Update(maintenanceTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("subject", request.Subject).
		Set("description", request.Description).
		Set("request_type", request.RequestType).
		Set("stage", request.Stage).
		Set("assigned_to_id", request.AssignedToID).
		Set("scheduled_date", request.ScheduledDate).
		Set("completed_date", request.CompletedDate).
		Set("duration_hours", request.DurationHours).
		Set("updated_at", sq.Expr("NOW()"))

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.ReplaceAll(maintenanceColumns, "mr.", "")).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanRequest(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapMaintenanceWriteError(err)
	}
	return updated, nil
}

func (r *MaintenanceRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func mapMaintenanceWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return apperrors.NewBadRequestError("Referenced equipment, team or technician does not exist")
		case "23514":
			return apperrors.NewBadRequestError("Invalid stage or request type")
		}
	}
	return err
}
