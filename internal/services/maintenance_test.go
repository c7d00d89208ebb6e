package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMaintenanceRepo struct {
	requests map[uint64]*entities.MaintenanceRequest
	nextID   uint64
	updated  *entities.MaintenanceRequest
	deleted  []uint64
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{requests: map[uint64]*entities.MaintenanceRequest{}, nextID: 1}
}

func (f *fakeMaintenanceRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	out := make([]entities.MaintenanceRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeMaintenanceRepo) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	if r, ok := f.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMaintenanceRepo) CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	request.ID = f.nextID
	f.nextID++
	f.requests[request.ID] = &request
	copied := request
	return &copied, nil
}

func (f *fakeMaintenanceRepo) UpdateRequest(ctx context.Context, id uint64, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	current, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	request.ID = id
	request.EquipmentID = current.EquipmentID
	request.EquipmentCategoryID = current.EquipmentCategoryID
	request.MaintenanceTeamID = current.MaintenanceTeamID
	request.RequestedByID = current.RequestedByID
	f.requests[id] = &request
	f.updated = &request
	copied := request
	return &copied, nil
}

func (f *fakeMaintenanceRepo) DeleteRequest(ctx context.Context, id uint64) error {
	if _, ok := f.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.requests, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEquipmentRepo struct {
	equipment map[uint64]*entities.Equipment
}

func (f *fakeEquipmentRepo) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return nil, 0, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if e, ok := f.equipment[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	return &equipment, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error) {
	return &equipment, nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	return nil
}

func testEquipment() *entities.Equipment {
	return &entities.Equipment{
		ID:                10,
		Name:              "CNC Mill 001",
		SerialNumber:      "CNC-001-2023",
		CategoryID:        5,
		DepartmentID:      1,
		MaintenanceTeamID: 8,
		Status:            entities.EquipmentActive,
	}
}

func newTestMaintenanceService(maintRepo *fakeMaintenanceRepo, equipRepo *fakeEquipmentRepo) *MaintenanceService {
	return NewMaintenanceService(maintRepo, equipRepo, zap.NewNop())
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateRequestSnapshotsEquipmentRelations(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	equipRepo := &fakeEquipmentRepo{equipment: map[uint64]*entities.Equipment{10: testEquipment()}}
	svc := newTestMaintenanceService(maintRepo, equipRepo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:     "Spindle vibration",
		EquipmentID: 10,
		RequestType: "CORRECTIVE",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), created.EquipmentCategoryID)
	assert.Equal(t, uint64(8), created.MaintenanceTeamID)
	assert.Equal(t, uint64(3), created.RequestedByID)
	assert.Equal(t, lifecycle.StageNew, created.Stage)
}

func TestCreateRequestStartsAssignedWhenTechnicianGiven(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	equipRepo := &fakeEquipmentRepo{equipment: map[uint64]*entities.Equipment{10: testEquipment()}}
	svc := newTestMaintenanceService(maintRepo, equipRepo)

	techID := uint64(4)
	created, err := svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:      "Spindle vibration",
		EquipmentID:  10,
		RequestType:  "CORRECTIVE",
		AssignedToID: &techID,
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StageAssigned, created.Stage)
}

func TestCreateRequestRejectsUnknownEquipment(t *testing.T) {
	svc := newTestMaintenanceService(newFakeMaintenanceRepo(), &fakeEquipmentRepo{})

	_, err := svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:     "Spindle vibration",
		EquipmentID: 99,
		RequestType: "CORRECTIVE",
	}, 3)
	assertBadRequest(t, err)
}

func TestCreatePreventiveRequiresScheduledDate(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	equipRepo := &fakeEquipmentRepo{equipment: map[uint64]*entities.Equipment{10: testEquipment()}}
	svc := newTestMaintenanceService(maintRepo, equipRepo)

	_, err := svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:     "Quarterly maintenance",
		EquipmentID: 10,
		RequestType: "PREVENTIVE",
	}, 3)
	assertBadRequest(t, err)

	scheduled := "2026-09-15"
	created, err := svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:       "Quarterly maintenance",
		EquipmentID:   10,
		RequestType:   "PREVENTIVE",
		ScheduledDate: &scheduled,
	}, 3)
	require.NoError(t, err)
	assert.True(t, created.ScheduledDate.Valid)
}

func seedRequest(repo *fakeMaintenanceRepo, stage lifecycle.Stage) *entities.MaintenanceRequest {
	techID := uint64(4)
	request := &entities.MaintenanceRequest{
		ID:                  1,
		Subject:             "Spindle vibration",
		EquipmentID:         10,
		EquipmentCategoryID: 5,
		MaintenanceTeamID:   8,
		RequestType:         lifecycle.TypeCorrective,
		Stage:               stage,
		RequestedByID:       3,
		AssignedToID:        &techID,
	}
	repo.requests[1] = request
	repo.nextID = 2
	return request
}

func TestUpdateRejectsIllegalTransition(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageNew)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	duration := 2.5
	_, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:       "Spindle vibration",
		RequestType:   "CORRECTIVE",
		Stage:         "REPAIRED",
		DurationHours: &duration,
	})
	assertBadRequest(t, err)
}

func TestUpdateRejectsChangesToTerminalRequest(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageScrapped)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	_, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:     "Spindle vibration",
		RequestType: "CORRECTIVE",
		Stage:       "NEW",
	})
	assertBadRequest(t, err)
}

func TestUpdatePreventiveRequiresScheduledDate(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageNew)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	_, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:     "Quarterly maintenance",
		RequestType: "PREVENTIVE",
		Stage:       "NEW",
	})
	assertBadRequest(t, err)

	scheduled := "2026-09-15"
	updated, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:       "Quarterly maintenance",
		RequestType:   "PREVENTIVE",
		Stage:         "NEW",
		ScheduledDate: &scheduled,
	})
	require.NoError(t, err)
	assert.True(t, updated.ScheduledDate.Valid)
}

func TestUpdateRepairedRequiresDuration(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageInProgress)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	_, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:     "Spindle vibration",
		RequestType: "CORRECTIVE",
		Stage:       "REPAIRED",
	})
	assertBadRequest(t, err)
}

func TestUpdateRepairedStampsCompletedDate(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageInProgress)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	frozen := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	duration := 2.5
	updated, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:       "Spindle vibration",
		RequestType:   "CORRECTIVE",
		Stage:         "REPAIRED",
		DurationHours: &duration,
	})
	require.NoError(t, err)
	require.True(t, updated.CompletedDate.Valid)
	assert.Equal(t, frozen, updated.CompletedDate.Time)
	assert.Equal(t, null.Float64From(2.5), updated.DurationHours)
}

func TestUpdateKeepsAssignmentWhenFieldOmitted(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageAssigned)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	updated, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateMaintenanceRequestDTO{
		Subject:     "Spindle vibration",
		RequestType: "CORRECTIVE",
		Stage:       "IN_PROGRESS",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedToID)
	assert.Equal(t, uint64(4), *updated.AssignedToID)
}

func TestDeleteRequestIsAdminOnly(t *testing.T) {
	maintRepo := newFakeMaintenanceRepo()
	seedRequest(maintRepo, lifecycle.StageNew)
	svc := newTestMaintenanceService(maintRepo, &fakeEquipmentRepo{})

	for _, role := range []entities.Role{entities.RoleManager, entities.RoleUser, entities.RoleTechnician} {
		err := svc.DeleteRequest(context.Background(), 1, role)
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	}
	assert.Empty(t, maintRepo.deleted)

	require.NoError(t, svc.DeleteRequest(context.Background(), 1, entities.RoleAdmin))
	assert.Equal(t, []uint64{1}, maintRepo.deleted)
}
