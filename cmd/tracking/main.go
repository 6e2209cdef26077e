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
	"github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/internal/pkg/retry"
	"github.com/dealerdrive/dealerdrive/internal/pkg/server"
	wspkg "github.com/dealerdrive/dealerdrive/internal/pkg/websocket"
	"github.com/dealerdrive/dealerdrive/services/tracking/gateway"
	"github.com/dealerdrive/dealerdrive/services/tracking/handler"
	"github.com/dealerdrive/dealerdrive/services/tracking/repository"
	"github.com/dealerdrive/dealerdrive/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configs := config.InitConfig("config/tracking.env")

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

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	trackingRepo := repository.NewTrackingRepository(configs, redisClient)
	trackingGW := gateway.NewTrackingGW(natsClient, retry.NewWithDefaults(zapLogger))

	trackingUC, err := usecase.NewTrackingUC(configs, trackingRepo, trackingGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize tracking use case", logger.Err(err))
	}

	wsManager := wspkg.NewManager(configs.JWT)
	trackingHandler := handler.NewHandler(trackingUC, natsClient, wsManager, configs)

	if err := trackingHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	trackingHandler.RegisterRoutes(e, apiKeyMiddleware)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
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
