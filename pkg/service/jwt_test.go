package service

import (
	"testing"
	"time"

	apperrors "gearguard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testIdentity() Identity {
	deptID := uint64(3)
	return Identity{
		UserID:       42,
		Name:         "Jane User",
		Email:        "user@gearguard.com",
		Role:         "USER",
		DepartmentID: &deptID,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())

	access, refresh, err := svc.GenerateTokens(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.False(t, claims.IsRefreshToken)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "user@gearguard.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	require.NotNil(t, claims.DepartmentID)
	assert.Equal(t, uint64(3), *claims.DepartmentID)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, 24*time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Hour, 24*time.Hour, zap.NewNop())

	access, _, err := issuer.GenerateTokens(testIdentity())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, 24*time.Hour, zap.NewNop())

	access, _, err := svc.GenerateTokens(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTTLAccessors(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 48*time.Hour, zap.NewNop())
	assert.Equal(t, time.Hour, svc.GetAccessTokenTTL())
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenTTL())
}
