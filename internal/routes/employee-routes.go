package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(api *echo.Group, ctrl *controllers.EmployeeController) {
	employees := api.Group("/employees")
	employees.GET("", ctrl.GetEmployees)
	employees.GET("/:id", ctrl.FindEmployee)
}
