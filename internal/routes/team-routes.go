package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerTeamRoutes(api *echo.Group, ctrl *controllers.TeamController) {
	teams := api.Group("/teams")
	teams.GET("", ctrl.GetTeams)
	teams.GET("/:id", ctrl.FindTeam)
	teams.POST("", ctrl.CreateTeam)
	teams.PUT("/:id", ctrl.UpdateTeam)
	teams.DELETE("/:id", ctrl.DeleteTeam)
}
