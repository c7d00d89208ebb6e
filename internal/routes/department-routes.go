package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerDepartmentRoutes(api *echo.Group, ctrl *controllers.DepartmentController) {
	departments := api.Group("/departments")
	departments.GET("", ctrl.GetDepartments)
	departments.GET("/:id", ctrl.FindDepartment)
	departments.POST("", ctrl.CreateDepartment)
	departments.PUT("/:id", ctrl.UpdateDepartment)
	departments.DELETE("/:id", ctrl.DeleteDepartment)
}
