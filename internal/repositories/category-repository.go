package repositories

import (
	"context"
	"errors"
	"fmt"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const categoryTable = "equipment_categories"

var categoryAllowedSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
}

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, filter types.Filter) ([]entities.EquipmentCategory, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, name string) (*entities.EquipmentCategory, error)
	UpdateCategory(ctx context.Context, id uint64, name string) (*entities.EquipmentCategory, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage, logger: logger}
}

func scanCategory(row pgx.Row) (*entities.EquipmentCategory, error) {
	var c entities.EquipmentCategory
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context, filter types.Filter) ([]entities.EquipmentCategory, uint64, error) {
	whereClause := ""
	args := []interface{}{}
	if filter.Search != "" {
		whereClause = "WHERE name ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", categoryTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.EquipmentCategory{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	// Newest first by default, matching the category management screen.
	orderBy := orderByClause(filter.Sort, categoryAllowedSortFields, "ORDER BY created_at DESC")
	query := fmt.Sprintf("SELECT id, name, created_at, updated_at FROM %s %s %s %s",
		categoryTable, whereClause, orderBy, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]entities.EquipmentCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, *category)
	}
	return categories, total, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	query := `SELECT id, name, created_at, updated_at FROM equipment_categories WHERE id = $1`
	return scanCategory(r.storage.QueryRow(ctx, query, id))
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	query := `INSERT INTO equipment_categories (name) VALUES ($1) RETURNING id, name, created_at, updated_at`
	category, err := scanCategory(r.storage.QueryRow(ctx, query, name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewBadRequestError("Category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint64, name string) (*entities.EquipmentCategory, error) {
	query := `UPDATE equipment_categories SET name = $1, updated_at = NOW() WHERE id = $2
	          RETURNING id, name, created_at, updated_at`
	category, err := scanCategory(r.storage.QueryRow(ctx, query, name, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewBadRequestError("Category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that equipment still
// references: the FK RESTRICT violation is surfaced as a domain error.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrCategoryInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
