package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/config"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/database"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/handlers"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/middleware"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/repositories"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("connected to database")

	if cfg.IsDevelopment() {
		if err := database.SeedSampleData(db, 10); err != nil {
			log.Printf("seeding failed: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	accountRepo := repositories.NewAccountRepository(db)
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(accountRepo, logger)

	accountHandler := handlers.NewAccountHandler(accountService, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORS())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/Accounts", accountHandler.ListAccounts)
	api.GET("/Accounts/GetAccountByAccountNumber/:accountNumber", accountHandler.GetAccountByAccountNumber)

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := ":" + cfg.Server.Port
		log.Printf("bbbank API starting on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
