package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AccessTokenCookie is how browser sessions carry the access token; API
// clients use the Authorization header instead.
const AccessTokenCookie = "accessToken"

// SessionGate is the binary authentication gate that runs in front of every
// route. It classifies paths as public or protected and is a pure function
// of the incoming token's validity and the request path: no valid session on
// a protected path means login, a valid session on an auth page means home.
// It deliberately does not look at roles; role checks live in handlers.
type SessionGate struct {
	jwtService  service.JWTService
	logger      *zap.Logger
	publicPaths []string
}

func NewSessionGate(jwtSvc service.JWTService, logger *zap.Logger) *SessionGate {
	return &SessionGate{
		jwtService: jwtSvc,
		logger:     logger,
		publicPaths: []string{
			"/login",
			"/signup",
			"/api/auth/login",
			"/api/auth/signup",
			"/api/auth/refresh",
		},
	}
}

func (g *SessionGate) isPublicPath(path string) bool {
	for _, p := range g.publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// isAuthPage reports whether the path is a page an already-authenticated
// user has no business visiting.
func isAuthPage(path string) bool {
	return path == "/login" || path == "/signup"
}

func isBrowserNavigation(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}

func (g *SessionGate) extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (g *SessionGate) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path

		var claims *service.SessionClaims
		if token := g.extractToken(c); token != "" {
			parsed, err := g.jwtService.ValidateToken(token)
			if err == nil && !parsed.IsRefreshToken {
				claims = parsed
			}
		}

		if claims != nil {
			if isAuthPage(path) {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			ctx := context.WithValue(c.Request().Context(), contextkeys.ClaimsKey, claims)
			ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}

		if g.isPublicPath(path) {
			return next(c)
		}

		if isBrowserNavigation(c) {
			loginURL := "/login?callbackUrl=" + url.QueryEscape(path)
			return c.Redirect(http.StatusSeeOther, loginURL)
		}

		g.logger.Debug("session gate rejected request", zap.String("path", path))
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
	}
}
