package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerReportRoutes(api *echo.Group, ctrl *controllers.ReportController) {
	reports := api.Group("/reports")
	reports.GET("/maintenance", ctrl.GetRequestStats)
	reports.GET("/summary", ctrl.GetSummary)
}
