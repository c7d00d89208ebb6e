package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            *zap.Logger
}

func NewDepartmentController(departmentService *services.DepartmentService, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{departmentService: departmentService, logger: logger}
}

func (ctrl *DepartmentController) GetDepartments(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	departments, total, err := ctrl.departmentService.GetDepartments(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, departments, "Departments retrieved successfully", http.StatusOK, total)
}

func (ctrl *DepartmentController) FindDepartment(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.FindDepartment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, department, "Department retrieved successfully", http.StatusOK)
}

func (ctrl *DepartmentController) CreateDepartment(c echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid department payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.CreateDepartment(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, department, "Department created successfully", http.StatusCreated)
}

func (ctrl *DepartmentController) UpdateDepartment(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateDepartmentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid department payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.UpdateDepartment(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, department, "Department updated successfully", http.StatusOK)
}

func (ctrl *DepartmentController) DeleteDepartment(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.departmentService.DeleteDepartment(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Department deleted successfully", http.StatusOK)
}
