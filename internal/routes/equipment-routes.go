package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerEquipmentRoutes(api *echo.Group, ctrl *controllers.EquipmentController) {
	equipment := api.Group("/equipment")
	equipment.GET("", ctrl.GetEquipment)
	equipment.GET("/:id", ctrl.FindEquipment)
	equipment.POST("", ctrl.CreateEquipment)
	equipment.PUT("/:id", ctrl.UpdateEquipment)
	equipment.DELETE("/:id", ctrl.DeleteEquipment)
}
