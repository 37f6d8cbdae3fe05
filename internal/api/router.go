package api

import (
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/Dorian-Reyes18/user-recolector/docs"
	"github.com/Dorian-Reyes18/user-recolector/internal/api/handler"
	apimiddleware "github.com/Dorian-Reyes18/user-recolector/internal/api/middleware"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/service"
	"github.com/Dorian-Reyes18/user-recolector/internal/infrastructure/db/postgres"
	redisdb "github.com/Dorian-Reyes18/user-recolector/internal/infrastructure/db/redis"
	"github.com/Dorian-Reyes18/user-recolector/internal/pkg/config"
)

const (
	// Global per-IP ceiling: 100 requests per 15-minute window.
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute

	// Tokens expire after one hour; expiry is the only invalidation.
	tokenTTL = time.Hour
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddleware("registry"))
	e.Use(apimiddleware.RateLimit(redisdb.NewWindowCounter(rdb), rateLimitMax, rateLimitWindow, log))

	// --- Dependencies ---
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewSystemUserRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, log)
	customerService := service.NewCustomerService(customerRepo, log)
	userService := service.NewSystemUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	userHandler := handler.NewSystemUserHandler(userService)

	authRequired := apimiddleware.Auth(cfg.JWTSecret)
	adminOnly := apimiddleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, authRequired, adminOnly)
	e.POST("/auth/login", authHandler.Login)

	// --- Customer registry: create is public, the rest is admin-only ---
	customers := e.Group("/v1/customers")
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List, authRequired, adminOnly)
	customers.GET("/:id", customerHandler.Get, authRequired, adminOnly)
	customers.PUT("/:id", customerHandler.Update, authRequired, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, authRequired, adminOnly)

	// --- System users: admin-only ---
	users := e.Group("/v1/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and observability (no auth required) ---
	readinessHandler := handler.NewReadinessHandler(pool, rdb)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
