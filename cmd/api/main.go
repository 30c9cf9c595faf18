package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asharkov-briklabs/refunds-service/config"
	"github.com/asharkov-briklabs/refunds-service/internal/adapter/client"
	httpHandler "github.com/asharkov-briklabs/refunds-service/internal/adapter/http/handler"
	"github.com/asharkov-briklabs/refunds-service/internal/adapter/messaging/kafka"
	pgStorage "github.com/asharkov-briklabs/refunds-service/internal/adapter/storage/postgres"
	redisStorage "github.com/asharkov-briklabs/refunds-service/internal/adapter/storage/redis"
	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/internal/service"
	"github.com/asharkov-briklabs/refunds-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Refunds Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Apply schema migrations when a migrations dir is configured
	if cfg.Database.MigrationsDir != "" {
		if err := pgStorage.RunMigrations(cfg.Database.DSN(), cfg.Database.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
		log.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Migrations applied")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories and stores
	refundRepo := pgStorage.NewRefundRepo(pool)
	leaseStore := redisStorage.NewLeaseStore(rdb)

	// Kafka event publisher
	publisher := kafka.NewEventPublisher(cfg.Kafka, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka writer")
		}
	}()

	// Collaborator clients
	co := cfg.Collaborators
	transactionClient := client.NewTransactionClient(co.TransactionURL, co.Timeout, log)
	complianceClient := client.NewComplianceClient(co.ComplianceURL, co.Timeout, log)
	approvalClient := client.NewApprovalClient(co.ApprovalURL, co.Timeout, log)
	parameterClient := client.NewParameterClient(co.ParameterURL, co.Timeout, log)
	notificationClient := client.NewNotificationClient(co.NotificationURL, co.Timeout, log)

	// One gateway client per payout rail
	dispatcher := service.NewMethodDispatcher(map[domain.RefundMethod]service.GatewayClient{
		domain.MethodOriginalPayment: client.NewGatewayRefundClient(co.GatewayURL, "/internal/v1/refunds/card", co.Timeout, log),
		domain.MethodBalance:         client.NewGatewayRefundClient(co.GatewayURL, "/internal/v1/refunds/balance", co.Timeout, log),
		domain.MethodOther:           client.NewGatewayRefundClient(co.GatewayURL, "/internal/v1/refunds/bank-transfer", co.Timeout, log),
	}, log)

	// Core services
	guard := service.NewIdempotencyGuard(refundRepo, leaseStore, cfg.Refunds.LeaseTTL, log)
	orchestrator := service.NewOrchestrator(
		refundRepo,
		guard,
		transactionClient,
		complianceClient,
		approvalClient,
		dispatcher,
		parameterClient,
		publisher,
		notificationClient,
		[]ports.GatewayAdapter{
			service.NewStandardGatewayAdapter("acquirer"),
			service.NewLegacyGatewayAdapter("legacy"),
		},
		service.OrchestratorConfig{
			ApprovalThresholdParam: cfg.Refunds.ApprovalThresholdParam,
			NotifyChannel:          cfg.Refunds.NotifyChannel,
		},
		log,
	)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Orchestrator:   orchestrator,
		RefundRepo:     refundRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
