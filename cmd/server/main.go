package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/handlers"
	custommw "finboard/internal/middleware"
	"finboard/internal/repositories"
	"finboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, passwordService, tokenService, logger)
	transactionService := services.NewTransactionService(transactionRepo, logger)
	analyticsService := services.NewAnalyticsService(transactionRepo, logger)
	exportService := services.NewExportService(transactionRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.GET("/me", authHandler.GetProfile, custommw.RequireAuth(tokenService))

	protected := api.Group("", custommw.RequireAuth(tokenService))
	protected.GET("/transactions", transactionHandler.List)
	protected.GET("/transactions/analytics", transactionHandler.GetAnalytics)
	protected.POST("/transactions", transactionHandler.Create)
	protected.POST("/export/csv", exportHandler.ExportCSV)

	if cfg.IsDevelopment() {
		sampleData := services.NewSampleDataService(transactionRepo, logger)
		devHandler := handlers.NewDevHandler(sampleData)
		protected.POST("/dev/seed", devHandler.SeedTransactions)
	}

	go cleanupExpiredTokens(refreshTokenRepo, logger)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

// cleanupExpiredTokens periodically purges expired refresh tokens
func cleanupExpiredTokens(repo repositories.RefreshTokenRepositoryInterface, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		deleted, err := repo.DeleteExpired()
		if err != nil {
			logger.Error("failed to clean up expired refresh tokens", "error", err)
			continue
		}
		if deleted > 0 {
			logger.Info("expired refresh tokens removed", "count", deleted)
		}
	}
}
