package api

import (
	"time"

	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/birdboard/project-system/docs"
	"github.com/birdboard/project-system/internal/api/handler"
	"github.com/birdboard/project-system/internal/api/middleware"
	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/service"
	mongodb "github.com/birdboard/project-system/internal/infrastructure/db/mongo"
	redisdb "github.com/birdboard/project-system/internal/infrastructure/db/redis"
	"github.com/birdboard/project-system/internal/infrastructure/http/handlers"
	"github.com/birdboard/project-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered,
// plus the activity dispatcher (start it with Dispatcher.Start).
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, workers int, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("projects"))

	// --- Dependencies ---
	projectRepo := mongodb.NewProjectRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	dedup := redisdb.NewDedupChecker(rdb)
	activityService := service.NewActivityService(projectRepo, activityRepo, dedup, log)
	dispatcher := queue.NewDispatcher(workers, activityService, log)

	projectService := service.NewProjectService(projectRepo, dispatcher, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	projectHandler := handler.NewProjectHandler(projectService)
	activityHandler := handler.NewActivityHandler(projectService, activityRepo)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Project routes (authenticated) ---
	v1 := e.Group("/v1",
		middleware.Auth(jwtSecret),
		middleware.RBAC(domain.RoleMember, domain.RoleAdmin),
	)
	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PATCH("/projects/:id", projectHandler.UpdateNotes)
	v1.GET("/projects/:id/activity", activityHandler.Feed)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
