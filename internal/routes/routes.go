package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter wires repositories, services and controllers together and
// registers every route group under /api. The session gate runs on every
// request, page paths included, so browser navigation gets the login
// redirect and not a bare 401.
func InitRouter(e *echo.Echo, pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) {
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	employeeRepo := repositories.NewEmployeeRepository(pool, logger)
	departmentRepo := repositories.NewDepartmentRepository(pool, logger)
	teamRepo := repositories.NewTeamRepository(pool, logger)
	categoryRepo := repositories.NewCategoryRepository(pool, logger)
	equipmentRepo := repositories.NewEquipmentRepository(pool, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool, logger)
	reportRepo := repositories.NewReportRepository(pool, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(employeeRepo, cacheRepo, logger, &cfg.Auth)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	departmentService := services.NewDepartmentService(departmentRepo, logger)
	teamService := services.NewTeamService(teamRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	authController := controllers.NewAuthController(authService, jwtSvc, logger)
	employeeController := controllers.NewEmployeeController(employeeService, logger)
	departmentController := controllers.NewDepartmentController(departmentService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	gate := middleware.NewSessionGate(jwtSvc, logger)
	e.Use(gate.Gate)
	api := e.Group("/api")

	registerAuthRoutes(api, authController)
	registerEmployeeRoutes(api, employeeController)
	registerDepartmentRoutes(api, departmentController)
	registerTeamRoutes(api, teamController)
	registerCategoryRoutes(api, categoryController)
	registerEquipmentRoutes(api, equipmentController)
	registerMaintenanceRoutes(api, maintenanceController)
	registerReportRoutes(api, reportController)
}
