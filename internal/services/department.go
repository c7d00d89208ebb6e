package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewDepartmentService(departmentRepo repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, logger: logger}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return s.departmentRepo.GetDepartments(ctx, filter)
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	return s.departmentRepo.FindDepartment(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepo.CreateDepartment(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create department", zap.Error(err))
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepo.UpdateDepartment(ctx, id, payload)
	if err != nil {
		s.logger.Error("failed to update department", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	err := s.departmentRepo.DeleteDepartment(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete department", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
