package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerMaintenanceRoutes(api *echo.Group, ctrl *controllers.MaintenanceController) {
	maintenance := api.Group("/maintenance")
	maintenance.GET("", ctrl.GetRequests)
	maintenance.GET("/:id", ctrl.FindRequest)
	maintenance.POST("", ctrl.CreateRequest)
	maintenance.PUT("/:id", ctrl.UpdateRequest)
	maintenance.DELETE("/:id", ctrl.DeleteRequest)
}
