package services

import (
	"context"
	"errors"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*service.Identity, error)
	Signup(ctx context.Context, payload dto.SignupDTO) (*entities.Employee, error)
}

type AuthService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	logger       *zap.Logger
	cfg          *config.AuthConfig
}

func NewAuthService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		employeeRepo: employeeRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cfg:          cfg,
	}
}

// Login verifies credentials and returns the identity payload embedded into
// session tokens. An unknown email and a wrong password produce the same
// error, and the unknown-email path still burns a bcrypt comparison so the
// two are not distinguishable by timing either.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*service.Identity, error) {
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.BurnPasswordCompare(payload.Password)
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, err
	}

	if !employee.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	if err := s.checkLockout(ctx, employee.ID); err != nil {
		return nil, err
	}

	if err := utils.ComparePasswords(employee.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, employee.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.resetLoginAttempts(ctx, employee.ID)

	identity := BuildIdentity(employee)
	return &identity, nil
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*entities.Employee, error) {
	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.CreateEmployee(ctx, payload, hashedPassword)
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee signed up", zap.Uint64("id", employee.ID), zap.String("email", employee.Email))
	return employee, nil
}

// BuildIdentity flattens an employee and its joined relations into the
// session payload.
func BuildIdentity(employee *entities.Employee) service.Identity {
	identity := service.Identity{
		UserID:       employee.ID,
		Name:         employee.Name,
		Email:        employee.Email,
		Role:         string(employee.Role),
		DepartmentID: employee.DepartmentID,
	}
	if employee.Department != nil {
		identity.DepartmentName = employee.Department.Name
	}
	if employee.Technician != nil {
		identity.IsTechnician = true
		technicianID := employee.Technician.ID
		teamID := employee.Technician.MaintenanceTeamID
		identity.TechnicianID = &technicianID
		identity.MaintenanceTeamID = &teamID
	}
	return identity
}

func (s *AuthService) checkLockout(ctx context.Context, employeeID uint64) error {
	lockoutKey := fmt.Sprintf("lockout:%d", employeeID)
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, employeeID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", employeeID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
		return
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%d", employeeID)
		s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		s.cacheRepo.Del(ctx, attemptsKey)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, employeeID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", employeeID)
	lockoutKey := fmt.Sprintf("lockout:%d", employeeID)
	s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}
