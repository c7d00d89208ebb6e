package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	loginIdentity *service.Identity
	loginErr      error
	signupCalled  bool
}

func (f *fakeAuthService) Login(ctx context.Context, payload dto.LoginDTO) (*service.Identity, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginIdentity, nil
}

func (f *fakeAuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*entities.Employee, error) {
	f.signupCalled = true
	return &entities.Employee{
		ID:    1,
		Name:  payload.Name,
		Email: payload.Email,
		Role:  entities.RoleUser,
	}, nil
}

func newAuthTestServer(authSvc *fakeAuthService) *echo.Echo {
	jwtSvc := service.NewJWTService("controller-test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	ctrl := NewAuthController(authSvc, jwtSvc, zap.NewNop())

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	e.POST("/api/auth/login", ctrl.Login)
	e.POST("/api/auth/signup", ctrl.Signup)
	return e
}

func TestSignupRejectsShortPassword(t *testing.T) {
	authSvc := &fakeAuthService{}
	e := newAuthTestServer(authSvc)

	body := `{"name":"New Hire","email":"new@gearguard.com","password":"12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, authSvc.signupCalled)
	assert.Contains(t, rec.Body.String(), "Password")
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	authSvc := &fakeAuthService{}
	e := newAuthTestServer(authSvc)

	body := `{"name":"New Hire","email":"not-an-email","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, authSvc.signupCalled)
}

func TestSignupCreatesUser(t *testing.T) {
	authSvc := &fakeAuthService{}
	e := newAuthTestServer(authSvc)

	body := `{"name":"New Hire","email":"new@gearguard.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, authSvc.signupCalled)
	assert.Contains(t, rec.Body.String(), "new@gearguard.com")
}

func TestLoginSetsSessionCookies(t *testing.T) {
	authSvc := &fakeAuthService{loginIdentity: &service.Identity{
		UserID: 1,
		Name:   "Jane User",
		Email:  "user@gearguard.com",
		Role:   "USER",
	}}
	e := newAuthTestServer(authSvc)

	body := `{"email":"user@gearguard.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "accessToken")

	cookies := rec.Result().Cookies()
	var refreshCookie, accessCookie *http.Cookie
	for _, cookie := range cookies {
		switch cookie.Name {
		case refreshTokenCookie:
			refreshCookie = cookie
		case middleware.AccessTokenCookie:
			accessCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)
	assert.NotEmpty(t, refreshCookie.Value)
	require.NotNil(t, accessCookie)
	assert.NotEmpty(t, accessCookie.Value)
}

func TestLoginFailureIsUnauthorized(t *testing.T) {
	authSvc := &fakeAuthService{loginErr: apperrors.ErrInvalidCredentials}
	e := newAuthTestServer(authSvc)

	body := `{"email":"user@gearguard.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}
