package services

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetRequestStats(ctx context.Context, groupBy string) ([]entities.RequestGroupStats, error)
	GetSummary(ctx context.Context) (*entities.SummaryReport, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

func (s *ReportService) GetRequestStats(ctx context.Context, groupBy string) ([]entities.RequestGroupStats, error) {
	switch groupBy {
	case "", "team":
		return s.reportRepo.GetRequestStatsByTeam(ctx)
	case "category":
		return s.reportRepo.GetRequestStatsByCategory(ctx)
	default:
		return nil, apperrors.NewBadRequestError("groupBy must be 'team' or 'category'")
	}
}

func (s *ReportService) GetSummary(ctx context.Context) (*entities.SummaryReport, error) {
	return s.reportRepo.GetSummary(ctx)
}
