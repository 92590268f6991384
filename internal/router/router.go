package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"auth-service/internal/auth"
	"auth-service/internal/handler"
	"auth-service/internal/health"
	"auth-service/internal/metrics"
	"auth-service/internal/middleware"
	"auth-service/internal/repository"
	"auth-service/internal/service"
	"auth-service/internal/token"
)

// Config holds router configuration
type Config struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	BasePath     string
	TokenService *token.Service
	Metrics      *metrics.Metrics
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.DefaultCORS())
	r.Use(metrics.HTTPMiddleware(m))
	r.Use(func(c *gin.Context) {
		c.Set(handler.LoggerKey, cfg.Logger)
		c.Next()
	})

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	healthChecker := health.NewChecker(cfg.DB)
	healthChecker.RegisterRoutes(r, cfg.BasePath)

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	invoiceRepo := repository.NewInvoiceRepository(cfg.DB)

	// Initialize services
	hasher := auth.NewPasswordHasher(0)
	authService := service.NewAuthService(userRepo, invoiceRepo, hasher, cfg.TokenService, cfg.Logger, m)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()

	authMiddleware := middleware.Auth(authService)

	// API routes group
	api := r.Group(cfg.BasePath)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/token", authHandler.Login)
	}

	users := api.Group("/users")
	{
		users.POST("", authHandler.CreateUser)
		users.GET("/me", authMiddleware, userHandler.GetMe)
	}

	return r
}
