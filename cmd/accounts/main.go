package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/config"
	"github.com/dealerdrive/dealerdrive/internal/pkg/database"
	"github.com/dealerdrive/dealerdrive/internal/pkg/health"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/middleware"
	"github.com/dealerdrive/dealerdrive/internal/pkg/server"
	"github.com/dealerdrive/dealerdrive/services/accounts/handler"
	"github.com/dealerdrive/dealerdrive/services/accounts/repository"
	"github.com/dealerdrive/dealerdrive/services/accounts/usecase"
)

func main() {
	appName := "accounts-service"
	configs := config.InitConfig("config/accounts.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	accountRepo := repository.NewAccountRepository(configs, postgresClient.GetDB())

	accountUC, err := usecase.NewAccountUC(configs, accountRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize account use case", logger.Err(err))
	}

	accountsHandler := handler.NewHandler(accountUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	accountsHandler.RegisterRoutes(e, apiKeyMiddleware)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during component shutdown", logger.Err(err))
	}
}
