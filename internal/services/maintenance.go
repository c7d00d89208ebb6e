package services

import (
	"context"
	"errors"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type MaintenanceServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO, requestedByID uint64) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uint64, role entities.Role) error
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	logger          *zap.Logger

	// now is swapped out in tests to pin the completed-date side effect.
	now func() time.Time
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *MaintenanceService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	return s.maintenanceRepo.GetRequests(ctx, filter)
}

func (s *MaintenanceService) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	return s.maintenanceRepo.FindRequest(ctx, id)
}

// CreateRequest snapshots the equipment's category and team onto the new
// request and runs the same field guards the update path enforces.
func (s *MaintenanceService) CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO, requestedByID uint64) (*entities.MaintenanceRequest, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("Referenced equipment does not exist")
		}
		return nil, err
	}

	scheduledDate, err := utils.ParseDate(payload.ScheduledDate)
	if err != nil {
		return nil, err
	}

	stage := lifecycle.StageNew
	if payload.AssignedToID != nil {
		stage = lifecycle.StageAssigned
	}

	guard := lifecycle.Guard{
		Type:         lifecycle.RequestType(payload.RequestType),
		Stage:        stage,
		HasScheduled: scheduledDate.Valid,
		HasDuration:  payload.DurationHours != nil,
	}
	if err := guard.Check(); err != nil {
		return nil, rejectionToHTTP(err)
	}

	request := entities.MaintenanceRequest{
		Subject:             payload.Subject,
		Description:         null.StringFromPtr(payload.Description),
		EquipmentID:         equipment.ID,
		EquipmentCategoryID: equipment.CategoryID,
		MaintenanceTeamID:   equipment.MaintenanceTeamID,
		RequestType:         lifecycle.RequestType(payload.RequestType),
		Stage:               stage,
		RequestedByID:       requestedByID,
		AssignedToID:        payload.AssignedToID,
		ScheduledDate:       scheduledDate,
		DurationHours:       null.Float64FromPtr(payload.DurationHours),
	}

	created, err := s.maintenanceRepo.CreateRequest(ctx, request)
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateRequest applies the stage machine before anything is written: the
// requested transition must be legal and the field guards must hold. When a
// request moves into REPAIRED without an explicit completed date, the
// current time is recorded in the same update statement.
func (s *MaintenanceService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*entities.MaintenanceRequest, error) {
	current, err := s.maintenanceRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	newStage := lifecycle.Stage(payload.Stage)
	if err := lifecycle.Transition(current.Stage, newStage); err != nil {
		return nil, rejectionToHTTP(err)
	}

	scheduledDate, err := utils.ParseDate(payload.ScheduledDate)
	if err != nil {
		return nil, err
	}
	completedDate, err := utils.ParseDate(payload.CompletedDate)
	if err != nil {
		return nil, err
	}

	guard := lifecycle.Guard{
		Type:         lifecycle.RequestType(payload.RequestType),
		Stage:        newStage,
		HasScheduled: scheduledDate.Valid,
		HasDuration:  payload.DurationHours != nil,
	}
	if err := guard.Check(); err != nil {
		return nil, rejectionToHTTP(err)
	}

	if newStage == lifecycle.StageRepaired && !completedDate.Valid {
		completedDate = null.TimeFrom(s.now())
	}

	// An absent assignedToId keeps the current assignment.
	assignedToID := current.AssignedToID
	if payload.AssignedToID != nil {
		assignedToID = payload.AssignedToID
	}

	request := entities.MaintenanceRequest{
		Subject:       payload.Subject,
		Description:   null.StringFromPtr(payload.Description),
		RequestType:   lifecycle.RequestType(payload.RequestType),
		Stage:         newStage,
		AssignedToID:  assignedToID,
		ScheduledDate: scheduledDate,
		CompletedDate: completedDate,
		DurationHours: null.Float64FromPtr(payload.DurationHours),
	}

	updated, err := s.maintenanceRepo.UpdateRequest(ctx, id, request)
	if err != nil {
		s.logger.Error("failed to update maintenance request", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeleteRequest is restricted to administrators.
func (s *MaintenanceService) DeleteRequest(ctx context.Context, id uint64, role entities.Role) error {
	if role != entities.RoleAdmin {
		return apperrors.NewForbiddenError("Forbidden: Only admins can delete requests")
	}
	err := s.maintenanceRepo.DeleteRequest(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete maintenance request", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}

func rejectionToHTTP(err error) error {
	var rejection *lifecycle.RejectionError
	if errors.As(err, &rejection) {
		return apperrors.NewBadRequestError(rejection.Reason)
	}
	return err
}
