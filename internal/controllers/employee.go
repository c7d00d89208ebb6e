package controllers

import (
	"net/http"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EmployeeController struct {
	employeeService *services.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeController(employeeService *services.EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, logger: logger}
}

func (ctrl *EmployeeController) GetEmployees(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	employees, total, err := ctrl.employeeService.GetEmployees(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, employees, "Employees retrieved successfully", http.StatusOK, total)
}

func (ctrl *EmployeeController) FindEmployee(c echo.Context) error {
	id, err := utils.ParseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	employee, err := ctrl.employeeService.FindEmployee(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, employee, "Employee retrieved successfully", http.StatusOK)
}
