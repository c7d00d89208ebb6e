package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerCategoryRoutes(api *echo.Group, ctrl *controllers.CategoryController) {
	categories := api.Group("/categories")
	categories.GET("", ctrl.GetCategories)
	categories.GET("/:id", ctrl.FindCategory)
	categories.POST("", ctrl.CreateCategory)
	categories.PUT("/:id", ctrl.UpdateCategory)
	categories.DELETE("/:id", ctrl.DeleteCategory)
}
