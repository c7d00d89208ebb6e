package controllers

import (
	"net/http"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const refreshTokenCookie = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, jwtSvc service.JWTService, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, jwtSvc: jwtSvc, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid login payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	identity, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("login failed", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return ctrl.issueTokensAndRespond(c, *identity, "Login successful")
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid signup payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	employee, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	response := dto.SignupResponseDTO{
		ID:           employee.ID,
		Name:         employee.Name,
		Email:        employee.Email,
		Role:         string(employee.Role),
		DepartmentID: employee.DepartmentID,
	}
	return utils.SuccessResponse(c, response, "User created successfully", http.StatusCreated)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, ctrl.logger)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if !claims.IsRefreshToken {
		return utils.ErrorResponse(c, apperrors.ErrTokenIsNotRefresh, ctrl.logger)
	}

	return ctrl.issueTokensAndRespond(c, claims.Identity, "Token refreshed")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:    middleware.AccessTokenCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
	return utils.SuccessResponse(c, nil, "Logged out", http.StatusOK)
}

// Me rebuilds the session payload from claims without touching the database.
func (ctrl *AuthController) Me(c echo.Context) error {
	claims, err := utils.ClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, claims.Identity, "Session info", http.StatusOK)
}

func (ctrl *AuthController) issueTokensAndRespond(c echo.Context, identity service.Identity, message string) error {
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(identity)
	if err != nil {
		ctrl.logger.Error("failed to sign session tokens", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(ctrl.jwtSvc.GetRefreshTokenTTL()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:    middleware.AccessTokenCookie,
		Value:   accessToken,
		Path:    "/",
		Expires: time.Now().Add(ctrl.jwtSvc.GetAccessTokenTTL()),
	})

	response := dto.AuthResponseDTO{
		User:        identity,
		AccessToken: accessToken,
		ExpiresIn:   int64(ctrl.jwtSvc.GetAccessTokenTTL().Seconds()),
	}
	return utils.SuccessResponse(c, response, message, http.StatusOK)
}
