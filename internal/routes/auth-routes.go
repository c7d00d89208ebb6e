package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(api *echo.Group, ctrl *controllers.AuthController) {
	auth := api.Group("/auth")
	auth.POST("/login", ctrl.Login)
	auth.POST("/signup", ctrl.Signup)
	auth.POST("/refresh", ctrl.RefreshToken)
	auth.POST("/logout", ctrl.Logout)
	auth.GET("/me", ctrl.Me)
}
