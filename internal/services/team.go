package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) *TeamService {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context, filter types.Filter) ([]entities.MaintenanceTeam, uint64, error) {
	return s.teamRepo.GetTeams(ctx, filter)
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateMaintenanceTeamDTO) (*entities.MaintenanceTeam, error) {
	team, err := s.teamRepo.CreateTeam(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create maintenance team", zap.Error(err))
		return nil, err
	}
	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateMaintenanceTeamDTO) (*entities.MaintenanceTeam, error) {
	team, err := s.teamRepo.UpdateTeam(ctx, id, payload)
	if err != nil {
		s.logger.Error("failed to update maintenance team", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	err := s.teamRepo.DeleteTeam(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete maintenance team", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
