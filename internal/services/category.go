package services

import (
	"context"
	"strings"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context, filter types.Filter) ([]entities.EquipmentCategory, uint64, error) {
	return s.categoryRepo.GetCategories(ctx, filter)
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	return s.categoryRepo.FindCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.NewBadRequestError("Category name is required")
	}
	category, err := s.categoryRepo.CreateCategory(ctx, trimmed)
	if err != nil {
		s.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, name string) (*entities.EquipmentCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.NewBadRequestError("Category name is required")
	}
	category, err := s.categoryRepo.UpdateCategory(ctx, id, trimmed)
	if err != nil {
		s.logger.Error("failed to update category", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	err := s.categoryRepo.DeleteCategory(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete category", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
