package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storefront/commerce-api/docs"
	"github.com/storefront/commerce-api/internal/api/handler"
	"github.com/storefront/commerce-api/internal/api/middleware"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
	"github.com/storefront/commerce-api/internal/core/service"
	mongodb "github.com/storefront/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditTrail, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, audit, log)
	productService := service.NewProductService(productRepo, audit, log)
	orderService := service.NewOrderService(orderRepo, productRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	authRequired := middleware.Auth(jwtSecret, denylist)

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	auth := api.Group("", authRequired)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/user", userHandler.Me)

	auth.GET("/products", productHandler.List)
	auth.GET("/products/:id", productHandler.Get)
	auth.POST("/products", productHandler.Create, middleware.Require(domain.ActionCreate, domain.ResourceProduct))
	auth.PUT("/products/:id", productHandler.Update, middleware.Require(domain.ActionUpdate, domain.ResourceProduct))
	auth.DELETE("/products/:id", productHandler.Delete, middleware.Require(domain.ActionDelete, domain.ResourceProduct))

	auth.GET("/orders", orderHandler.List)
	auth.GET("/orders/:id", orderHandler.Get)
	auth.POST("/orders", orderHandler.Create)
	auth.PUT("/orders/:id", orderHandler.UpdateStatus, middleware.Require(domain.ActionUpdate, domain.ResourceOrder))

	auth.GET("/users", userHandler.List, middleware.Require(domain.ActionList, domain.ResourceUser))
	auth.GET("/users/:id", userHandler.Get, middleware.Require(domain.ActionRead, domain.ResourceUser))
	auth.PUT("/users/:id", userHandler.Update, middleware.Require(domain.ActionUpdate, domain.ResourceUser))
	auth.DELETE("/users/:id", userHandler.Delete, middleware.Require(domain.ActionDelete, domain.ResourceUser))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
