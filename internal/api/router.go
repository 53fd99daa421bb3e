package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/labos-hq/labos-backend/internal/api/handler"
	"github.com/labos-hq/labos-backend/internal/api/middleware"
	"github.com/labos-hq/labos-backend/internal/core/ports"
	"github.com/labos-hq/labos-backend/internal/core/service"
	mongodb "github.com/labos-hq/labos-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/labos-hq/labos-backend/internal/infrastructure/db/redis"
	"github.com/labos-hq/labos-backend/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, creds ports.CredentialStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("labos"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxFailures, cfg.Login.Lockout)
	authService := service.NewAuthService(creds, tokenService, throttle, log)

	projectRepo := mongodb.NewProjectRepository(db)
	projectService := service.NewProjectService(projectRepo, log)

	workUnitRepo := mongodb.NewWorkUnitRepository(db)
	workUnitService := service.NewWorkUnitService(workUnitRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	workUnitHandler := handler.NewWorkUnitHandler(workUnitService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	secured := e.Group("", middleware.Auth(tokenService))
	secured.GET("/projects", projectHandler.List)
	secured.POST("/projects", projectHandler.Create)
	secured.GET("/work-units", workUnitHandler.List)
	secured.POST("/work-units", workUnitHandler.Create)
	secured.POST("/work-units/:id/status", workUnitHandler.UpdateStatus)

	return e
}
