package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateHarness(t *testing.T) (*echo.Echo, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("gate-test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	gate := NewSessionGate(jwtSvc, zap.NewNop())

	e := echo.New()
	handler := func(c echo.Context) error {
		claims, err := utils.ClaimsFromContext(c.Request().Context())
		if err != nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, claims.Email)
	}
	e.GET("/*", gate.Gate(handler))
	return e, jwtSvc
}

func issueTokens(t *testing.T, jwtSvc service.JWTService) (string, string) {
	t.Helper()
	access, refresh, err := jwtSvc.GenerateTokens(service.Identity{
		UserID: 1,
		Name:   "Jane User",
		Email:  "user@gearguard.com",
		Role:   "USER",
	})
	require.NoError(t, err)
	return access, refresh
}

func TestGateRejectsAPIRequestWithoutSession(t *testing.T) {
	e, _ := newGateHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestGateRedirectsBrowserToLogin(t *testing.T) {
	e, _ := newGateHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?callbackUrl=%2Fdashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGatePassesPublicPathsWithoutSession(t *testing.T) {
	e, _ := newGateHarness(t)

	for _, path := range []string{"/login", "/signup", "/api/auth/login", "/api/auth/refresh"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGateAdmitsBearerToken(t *testing.T) {
	e, jwtSvc := newGateHarness(t)
	access, _ := issueTokens(t, jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@gearguard.com", rec.Body.String())
}

func TestGateAdmitsCookieToken(t *testing.T) {
	e, jwtSvc := newGateHarness(t)
	access, _ := issueTokens(t, jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: access})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@gearguard.com", rec.Body.String())
}

func TestGateRefusesRefreshTokenAsSession(t *testing.T) {
	e, jwtSvc := newGateHarness(t)
	_, refresh := issueTokens(t, jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateRedirectsAuthenticatedUserOffAuthPages(t *testing.T) {
	e, jwtSvc := newGateHarness(t)
	access, _ := issueTokens(t, jwtSvc)

	for _, path := range []string{"/login", "/signup"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation), path)
	}
}

func TestGateTreatsExpiredTokenAsAnonymous(t *testing.T) {
	expiredSvc := service.NewJWTService("gate-test-secret", -time.Minute, 24*time.Hour, zap.NewNop())
	e, _ := newGateHarness(t)
	access, _, err := expiredSvc.GenerateTokens(service.Identity{UserID: 1, Email: "user@gearguard.com", Role: "USER"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
