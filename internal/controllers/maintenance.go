package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (ctrl *MaintenanceController) GetRequests(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	requests, total, err := ctrl.maintenanceService.GetRequests(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, requests, "Requests retrieved successfully", http.StatusOK, total)
}

func (ctrl *MaintenanceController) FindRequest(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	request, err := ctrl.maintenanceService.FindRequest(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "Request retrieved successfully", http.StatusOK)
}

func (ctrl *MaintenanceController) CreateRequest(c echo.Context) error {
	claims, err := utils.ClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateMaintenanceRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid request payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.maintenanceService.CreateRequest(c.Request().Context(), payload, claims.Identity.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "Request created successfully", http.StatusCreated)
}

func (ctrl *MaintenanceController) UpdateRequest(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateMaintenanceRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid request payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	request, err := ctrl.maintenanceService.UpdateRequest(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "Request updated successfully", http.StatusOK)
}

// DeleteRequest forwards the caller's role so the service can reject
// non-admin deletions.
func (ctrl *MaintenanceController) DeleteRequest(c echo.Context) error {
	claims, err := utils.ClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.maintenanceService.DeleteRequest(c.Request().Context(), id, entities.Role(claims.Identity.Role)); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Request deleted successfully", http.StatusOK)
}
