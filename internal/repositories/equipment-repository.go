package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const equipmentTable = "equipment"

var (
	equipmentAllowedFilterFields = map[string]string{
		"category_id":         "eq.category_id",
		"department_id":       "eq.department_id",
		"maintenance_team_id": "eq.maintenance_team_id",
		"status":              "eq.status",
	}
	equipmentAllowedSortFields = map[string]string{
		"id":            "eq.id",
		"name":          "eq.name",
		"serial_number": "eq.serial_number",
		"status":        "eq.status",
		"purchase_date": "eq.purchase_date",
		"created_at":    "eq.created_at",
	}
)

const equipmentColumns = `eq.id, eq.name, eq.serial_number, eq.category_id, eq.department_id,
       eq.maintenance_team_id, eq.default_technician_id, eq.assigned_employee_id,
       eq.location, eq.purchase_date, eq.warranty_expiry_date, eq.status, eq.notes,
       eq.created_at, eq.updated_at`

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.DepartmentID,
		&e.MaintenanceTeamID, &e.DefaultTechnicianID, &e.AssignedEmployeeID,
		&e.Location, &e.PurchaseDate, &e.WarrantyExpiryDate, &e.Status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(eq.name ILIKE $%d OR eq.serial_number ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := equipmentAllowedFilterFields[key]; ok {
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

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS eq %s", equipmentTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	orderBy := orderByClause(filter.Sort, equipmentAllowedSortFields, "ORDER BY eq.id ASC")
	query := fmt.Sprintf("SELECT %s FROM %s AS eq %s %s %s",
		equipmentColumns, equipmentTable, whereClause, orderBy, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

// FindEquipment loads one record together with its category, department,
// team and assigned employee for the detail view.
func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s,
	       c.name, c.created_at, c.updated_at,
	       d.name, d.created_at, d.updated_at,
	       mt.name, mt.created_at, mt.updated_at,
	       ae.name, ae.email
	FROM equipment eq
	JOIN equipment_categories c ON c.id = eq.category_id
	JOIN departments d ON d.id = eq.department_id
	JOIN maintenance_teams mt ON mt.id = eq.maintenance_team_id
	LEFT JOIN employees ae ON ae.id = eq.assigned_employee_id
	WHERE eq.id = $1`, equipmentColumns)

	var (
		e entities.Equipment

		categoryName, departmentName, teamName string
		catCreated, catUpdated, deptCreated, deptUpdated,
		teamCreated, teamUpdated sql.NullTime
		assignedName, assignedEmail *string
	)

	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.DepartmentID,
		&e.MaintenanceTeamID, &e.DefaultTechnicianID, &e.AssignedEmployeeID,
		&e.Location, &e.PurchaseDate, &e.WarrantyExpiryDate, &e.Status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
		&categoryName, &catCreated, &catUpdated,
		&departmentName, &deptCreated, &deptUpdated,
		&teamName, &teamCreated, &teamUpdated,
		&assignedName, &assignedEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment detail: %w", err)
	}

	e.Category = &entities.EquipmentCategory{ID: e.CategoryID, Name: categoryName, CreatedAt: catCreated.Time, UpdatedAt: catUpdated.Time}
	e.Department = &entities.Department{ID: e.DepartmentID, Name: departmentName, CreatedAt: deptCreated.Time, UpdatedAt: deptUpdated.Time}
	e.MaintenanceTeam = &entities.MaintenanceTeam{ID: e.MaintenanceTeamID, Name: teamName, CreatedAt: teamCreated.Time, UpdatedAt: teamUpdated.Time}
	if e.AssignedEmployeeID != nil && assignedName != nil && assignedEmail != nil {
		e.AssignedEmployee = &entities.Employee{ID: *e.AssignedEmployeeID, Name: *assignedName, Email: *assignedEmail}
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(`INSERT INTO equipment
	        (name, serial_number, category_id, department_id, maintenance_team_id,
	         default_technician_id, assigned_employee_id, location, purchase_date,
	         warranty_expiry_date, status, notes)
	    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	    RETURNING %s`, strings.ReplaceAll(equipmentColumns, "eq.", ""))

	status := equipment.Status
	if status == "" {
		status = entities.EquipmentActive
	}

	created, err := scanEquipment(r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.SerialNumber, equipment.CategoryID, equipment.DepartmentID,
		equipment.MaintenanceTeamID, equipment.DefaultTechnicianID, equipment.AssignedEmployeeID,
		equipment.Location, equipment.PurchaseDate, equipment.WarrantyExpiryDate, status, equipment.Notes,
	))
	if err != nil {
		return nil, mapEquipmentWriteError(err)
	}
	return created, nil
}

// UpdateEquipment replaces the editable fields wholesale; the edit form
// always submits a full record.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error) {
	updateBuilder := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("name", equipment.Name).
		Set("serial_number", equipment.SerialNumber).
		Set("location", equipment.Location).
		Set("purchase_date", equipment.PurchaseDate).
		Set("warranty_expiry_date", equipment.WarrantyExpiryDate).
		Set("status", equipment.Status).
		Set("notes", equipment.Notes).
		Set("updated_at", sq.Expr("NOW()"))

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.ReplaceAll(equipmentColumns, "eq.", "")).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapEquipmentWriteError(err)
	}
	return updated, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func mapEquipmentWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.NewBadRequestError("Equipment with this serial number already exists")
		case "23503":
			return apperrors.NewBadRequestError("Referenced category, department, team or employee does not exist")
		}
	}
	return err
}
