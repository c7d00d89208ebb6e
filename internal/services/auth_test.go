package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmployeeRepo struct {
	byEmail map[string]*entities.Employee
	created *entities.Employee
}

func (f *fakeEmployeeRepo) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) FindEmployeeByID(ctx context.Context, id uint64) (*entities.Employee, error) {
	for _, e := range f.byEmail {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEmployeeRepo) FindEmployeeByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEmployeeRepo) CreateEmployee(ctx context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.Employee, error) {
	if _, ok := f.byEmail[payload.Email]; ok {
		return nil, apperrors.ErrEmailTaken
	}
	employee := &entities.Employee{
		ID:       uint64(len(f.byEmail) + 1),
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     entities.RoleUser,
		IsActive: true,
	}
	if f.byEmail == nil {
		f.byEmail = map[string]*entities.Employee{}
	}
	f.byEmail[payload.Email] = employee
	f.created = employee
	return employee, nil
}

type fakeCache struct {
	values map[string]string
	counts map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, counts: map[string]int64{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.values[key] = "locked"
	return nil
}

func (f *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
		delete(f.counts, key)
	}
	return nil
}

func authConfig() *config.AuthConfig {
	return &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}
}

func activeEmployee(t *testing.T, password string) *entities.Employee {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entities.Employee{
		ID:       1,
		Name:     "Jane User",
		Email:    "user@gearguard.com",
		Password: hash,
		Role:     entities.RoleUser,
		IsActive: true,
	}
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	repo := &fakeEmployeeRepo{byEmail: map[string]*entities.Employee{
		"user@gearguard.com": activeEmployee(t, "secret123"),
	}}
	svc := NewAuthService(repo, newFakeCache(), zap.NewNop(), authConfig())

	identity, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@gearguard.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), identity.UserID)
	assert.Equal(t, "USER", identity.Role)
	assert.False(t, identity.IsTechnician)
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := &fakeEmployeeRepo{byEmail: map[string]*entities.Employee{
		"user@gearguard.com": activeEmployee(t, "secret123"),
	}}
	svc := NewAuthService(repo, newFakeCache(), zap.NewNop(), authConfig())

	_, unknownErr := svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@gearguard.com", Password: "secret123"})
	_, wrongErr := svc.Login(context.Background(), dto.LoginDTO{Email: "user@gearguard.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	employee := activeEmployee(t, "secret123")
	employee.IsActive = false
	repo := &fakeEmployeeRepo{byEmail: map[string]*entities.Employee{employee.Email: employee}}
	svc := NewAuthService(repo, newFakeCache(), zap.NewNop(), authConfig())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: employee.Email, Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDeactivated)
}

func TestLoginLocksAccountAfterRepeatedFailures(t *testing.T) {
	employee := activeEmployee(t, "secret123")
	repo := &fakeEmployeeRepo{byEmail: map[string]*entities.Employee{employee.Email: employee}}
	cache := newFakeCache()
	svc := NewAuthService(repo, cache, zap.NewNop(), authConfig())

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Email: employee.Email, Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the right password is refused while the lockout holds.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: employee.Email, Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
}

func TestLoginResetsAttemptCounterOnSuccess(t *testing.T) {
	employee := activeEmployee(t, "secret123")
	repo := &fakeEmployeeRepo{byEmail: map[string]*entities.Employee{employee.Email: employee}}
	cache := newFakeCache()
	svc := NewAuthService(repo, cache, zap.NewNop(), authConfig())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: employee.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: employee.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.Empty(t, cache.counts)
}

func TestSignupHashesPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewAuthService(repo, newFakeCache(), zap.NewNop(), authConfig())

	employee, err := svc.Signup(context.Background(), dto.SignupDTO{
		Name:     "New Hire",
		Email:    "new@gearguard.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", employee.Password)
	assert.NoError(t, utils.ComparePasswords(employee.Password, "secret123"))
}

func TestBuildIdentityIncludesTechnicianFields(t *testing.T) {
	deptID := uint64(2)
	employee := &entities.Employee{
		ID:           7,
		Name:         "Mike Technician",
		Email:        "tech@gearguard.com",
		Role:         entities.RoleTechnician,
		DepartmentID: &deptID,
		Department:   &entities.Department{ID: 2, Name: "Maintenance"},
		Technician:   &entities.Technician{ID: 4, EmployeeID: 7, MaintenanceTeamID: 9},
	}

	identity := BuildIdentity(employee)
	assert.True(t, identity.IsTechnician)
	require.NotNil(t, identity.TechnicianID)
	assert.Equal(t, uint64(4), *identity.TechnicianID)
	require.NotNil(t, identity.MaintenanceTeamID)
	assert.Equal(t, uint64(9), *identity.MaintenanceTeamID)
	assert.Equal(t, "Maintenance", identity.DepartmentName)
}
