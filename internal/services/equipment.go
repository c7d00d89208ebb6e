package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipment(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	purchaseDate, err := utils.ParseDate(&payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warrantyDate, err := utils.ParseDate(&payload.WarrantyExpiryDate)
	if err != nil {
		return nil, err
	}

	equipment := entities.Equipment{
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		CategoryID:          payload.CategoryID,
		DepartmentID:        payload.DepartmentID,
		MaintenanceTeamID:   payload.MaintenanceTeamID,
		DefaultTechnicianID: payload.DefaultTechnicianID,
		AssignedEmployeeID:  payload.AssignedEmployeeID,
		Location:            null.StringFrom(payload.Location),
		PurchaseDate:        purchaseDate,
		WarrantyExpiryDate:  warrantyDate,
		Status:              entities.EquipmentActive,
		Notes:               null.StringFromPtr(payload.Notes),
	}

	created, err := s.equipmentRepo.CreateEquipment(ctx, equipment)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateEquipment overwrites the record field-by-field. The current row is
// loaded first so the status survives when the form omits it.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	current, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	purchaseDate, err := utils.ParseDate(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warrantyDate, err := utils.ParseDate(payload.WarrantyExpiryDate)
	if err != nil {
		return nil, err
	}

	status := current.Status
	if payload.Status != "" {
		status = entities.EquipmentStatus(payload.Status)
	}

	equipment := entities.Equipment{
		Name:               payload.Name,
		SerialNumber:       payload.SerialNumber,
		Location:           null.StringFromPtr(payload.Location),
		PurchaseDate:       purchaseDate,
		WarrantyExpiryDate: warrantyDate,
		Status:             status,
		Notes:              null.StringFromPtr(payload.Notes),
	}

	updated, err := s.equipmentRepo.UpdateEquipment(ctx, id, equipment)
	if err != nil {
		s.logger.Error("failed to update equipment", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	// Mirror of the delete handler: confirm existence first so a missing
	// record is a clean 404 rather than a zero-rows delete.
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return err
	}
	err := s.equipmentRepo.DeleteEquipment(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete equipment", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
