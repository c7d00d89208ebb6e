package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const employeeTable = "employees"

var (
	employeeAllowedFilterFields = map[string]string{
		"role":          "e.role",
		"department_id": "e.department_id",
		"is_active":     "e.is_active",
	}
	employeeAllowedSortFields = map[string]string{
		"id":         "e.id",
		"name":       "e.name",
		"email":      "e.email",
		"role":       "e.role",
		"created_at": "e.created_at",
	}
)

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployeeByID(ctx context.Context, id uint64) (*entities.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.Employee, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

// employeeSelect joins department and technician (with its team) so one read
// is enough to build the session identity.
const employeeSelect = `
SELECT e.id, e.name, e.email, e.password, e.role, e.department_id, e.is_active, e.created_at, e.updated_at,
       d.id, d.name, d.created_at, d.updated_at,
       t.id, t.maintenance_team_id, t.created_at, t.updated_at,
       mt.id, mt.name, mt.created_at, mt.updated_at
FROM employees e
LEFT JOIN departments d ON d.id = e.department_id
LEFT JOIN technicians t ON t.employee_id = e.id
LEFT JOIN maintenance_teams mt ON mt.id = t.maintenance_team_id`

func scanEmployeeWithRelations(row pgx.Row) (*entities.Employee, error) {
	var (
		e entities.Employee

		deptID     *uint64
		deptName   *string
		techID     *uint64
		techTeamID *uint64
		teamID     *uint64
		teamName   *string

		deptCreatedAt, deptUpdatedAt,
		techCreatedAt, techUpdatedAt,
		teamCreatedAt, teamUpdatedAt sql.NullTime
	)

	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Password, &e.Role, &e.DepartmentID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		&deptID, &deptName, &deptCreatedAt, &deptUpdatedAt,
		&techID, &techTeamID, &techCreatedAt, &techUpdatedAt,
		&teamID, &teamName, &teamCreatedAt, &teamUpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}

	if deptID != nil && deptName != nil {
		e.Department = &entities.Department{
			ID:        *deptID,
			Name:      *deptName,
			CreatedAt: deptCreatedAt.Time,
			UpdatedAt: deptUpdatedAt.Time,
		}
	}
	if techID != nil && techTeamID != nil {
		e.Technician = &entities.Technician{
			ID:                *techID,
			EmployeeID:        e.ID,
			MaintenanceTeamID: *techTeamID,
			CreatedAt:         techCreatedAt.Time,
			UpdatedAt:         techUpdatedAt.Time,
		}
		if teamID != nil && teamName != nil {
			e.Technician.MaintenanceTeam = &entities.MaintenanceTeam{
				ID:        *teamID,
				Name:      *teamName,
				CreatedAt: teamCreatedAt.Time,
				UpdatedAt: teamUpdatedAt.Time,
			}
		}
	}
	return &e, nil
}

func (r *EmployeeRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR e.email ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := employeeAllowedFilterFields[key]; ok {
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

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS e %s", employeeTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Employee{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	orderBy := orderByClause(filter.Sort, employeeAllowedSortFields, "ORDER BY e.id ASC")
	query := fmt.Sprintf("%s %s %s %s", employeeSelect, whereClause, orderBy, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployeeWithRelations(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *emp)
	}
	return employees, total, rows.Err()
}

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, id uint64) (*entities.Employee, error) {
	query := employeeSelect + " WHERE e.id = $1"
	return scanEmployeeWithRelations(r.storage.QueryRow(ctx, query, id))
}

func (r *EmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	query := employeeSelect + " WHERE e.email = $1"
	return scanEmployeeWithRelations(r.storage.QueryRow(ctx, query, email))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.Employee, error) {
	query := `INSERT INTO employees (name, email, password, role, department_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, name, email, password, role, department_id, is_active, created_at, updated_at`

	var e entities.Employee
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.Email, hashedPassword, entities.RoleUser, payload.DepartmentID,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Password, &e.Role, &e.DepartmentID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return nil, apperrors.ErrEmailTaken
			}
			if pgErr.Code == "23503" {
				return nil, apperrors.NewBadRequestError("Referenced department does not exist")
			}
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &e, nil
}
