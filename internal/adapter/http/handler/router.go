package handler

import (
	"net/http"

	"github.com/asharkov-briklabs/refunds-service/internal/adapter/http/middleware"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Orchestrator   ports.RefundOrchestrator
	RefundRepo     ports.RefundRepository
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	refundHandler := NewRefundHandler(deps.Orchestrator, deps.RefundRepo)
	webhookHandler := NewWebhookHandler(deps.Orchestrator)

	v1 := r.Group("/api/v1")

	// --- Refund lifecycle (actor-authenticated via platform gateway) ---
	refunds := v1.Group("/refunds", middleware.RequireActor())
	{
		refunds.POST("", refundHandler.Create)
		refunds.GET("/:id", refundHandler.Get)
		refunds.POST("/:id/cancel", refundHandler.Cancel)
		refunds.POST("/:id/retry", refundHandler.Retry)
		refunds.POST("/:id/process", refundHandler.Process)
	}

	// --- Service-to-service callbacks ---
	v1.POST("/refunds/approval-decisions", refundHandler.ApprovalDecision)
	r.POST("/webhooks/gateways/:gatewayType", webhookHandler.Receive)

	return r
}

// HealthCheck reports the health of each external dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
