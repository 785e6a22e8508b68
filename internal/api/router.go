package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/wisensor/wisensor-api/docs"
	"github.com/wisensor/wisensor-api/internal/api/handler"
	"github.com/wisensor/wisensor-api/internal/api/middleware"
	"github.com/wisensor/wisensor-api/internal/core/auth"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/service"
	"github.com/wisensor/wisensor-api/internal/infrastructure/config"
	"github.com/wisensor/wisensor-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("wisensor"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	permRepo := postgres.NewPermissionRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	assignmentRepo := postgres.NewUserProjectRepository(db)
	centerRepo := postgres.NewCenterRepository(db)

	tokens := auth.NewTokenIssuer(
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpireMinutes)*time.Minute,
		7*24*time.Hour,
	)

	authService := service.NewAuthService(userRepo, tokens, logger)
	userService := service.NewUserService(userRepo, roleRepo, logger)
	roleService := service.NewRoleService(roleRepo, permRepo, logger)
	permService := service.NewPermissionService(permRepo, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	assignmentService := service.NewUserProjectService(assignmentRepo, userRepo, projectRepo, logger)
	centerService := service.NewCenterService(centerRepo, logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	permHandler := handler.NewPermissionHandler(permService)
	projectHandler := handler.NewProjectHandler(projectService)
	assignmentHandler := handler.NewUserProjectHandler(assignmentService)
	centerHandler := handler.NewCenterHandler(centerService)

	authRequired := middleware.Auth(authService)
	perm := middleware.RequirePermission

	api := e.Group("/api")

	// --- Auth routes ---
	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.GET("/me", authHandler.Me, authRequired)

	// --- Users (creation is public: self-registration) ---
	users := api.Group("/users")
	users.POST("/", userHandler.Create)
	users.GET("/", userHandler.List, authRequired, perm(domain.PermViewUsers))
	users.GET("/:id", userHandler.Get, authRequired, perm(domain.PermViewUsers))
	users.PUT("/:id", userHandler.Update, authRequired)
	users.DELETE("/:id", userHandler.Delete, authRequired, perm(domain.PermDeleteUsers))

	// --- Roles ---
	roles := api.Group("/roles", authRequired)
	roles.POST("/", roleHandler.Create, perm(domain.PermCreateRoles))
	roles.GET("/", roleHandler.List, perm(domain.PermViewRoles))
	roles.GET("/:id", roleHandler.Get, perm(domain.PermViewRoles))
	roles.PUT("/:id", roleHandler.Update, perm(domain.PermEditRoles))
	roles.DELETE("/:id", roleHandler.Delete, perm(domain.PermDeleteRoles))

	// --- Permissions ---
	perms := api.Group("/permissions", authRequired)
	perms.POST("/", permHandler.Create, perm(domain.PermCreatePermissions))
	perms.GET("/", permHandler.List, perm(domain.PermManageConfig))
	perms.GET("/:id", permHandler.Get, perm(domain.PermManageConfig))
	perms.PUT("/:id", permHandler.Update, perm(domain.PermEditPermissions))
	perms.DELETE("/:id", permHandler.Delete, perm(domain.PermDeletePermissions))

	// --- Projects ---
	projects := api.Group("/projects", authRequired)
	projects.POST("/", projectHandler.Create, perm(domain.PermCreateProjects))
	projects.GET("/", projectHandler.List, perm(domain.PermViewProjects))
	projects.GET("/:id", projectHandler.Get, perm(domain.PermViewProjects))
	projects.PUT("/:id", projectHandler.Update, perm(domain.PermEditProjects))
	projects.DELETE("/:id", projectHandler.Delete, perm(domain.PermDeleteProjects))

	// --- User-project assignments ---
	assignments := api.Group("/user-projects", authRequired)
	assignments.POST("/", assignmentHandler.Create, perm(domain.PermAssignUsers))
	assignments.GET("/", assignmentHandler.List)
	assignments.GET("/:id", assignmentHandler.Get)
	assignments.PUT("/:id", assignmentHandler.Update, perm(domain.PermAssignUsers))
	assignments.DELETE("/:id", assignmentHandler.Delete, perm(domain.PermAssignUsers))

	// --- Centers (open endpoints, consumed by external sensor dashboards) ---
	centers := api.Group("/centers")
	centers.POST("/", centerHandler.Create)
	centers.GET("/", centerHandler.List)
	centers.GET("/:id", centerHandler.Get)
	centers.PUT("/:id", centerHandler.Update)
	centers.DELETE("/:id", centerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
