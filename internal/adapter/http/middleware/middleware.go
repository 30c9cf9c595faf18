package middleware

import (
	"net/http"
	"time"

	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"
	"github.com/asharkov-briklabs/refunds-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderCorrelationID propagates the request trace across services.
	HeaderCorrelationID = "X-Correlation-Id"
	// HeaderActorID carries the authenticated principal, resolved by the
	// platform gateway before the request reaches this service.
	HeaderActorID = "X-Actor-Id"
	// HeaderIdempotencyKey dedupes refund creation.
	HeaderIdempotencyKey = "Idempotency-Key"

	// Context keys
	CtxCorrelationID = "correlation_id"
	CtxActorID       = "actor_id"
)

// CorrelationID propagates the caller's correlation ID, generating one when
// absent, and echoes it on the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxCorrelationID, id)
		c.Writer.Header().Set(HeaderCorrelationID, id)
		c.Next()
	}
}

// RequireActor rejects requests missing the X-Actor-Id header and stores
// the actor in the request context.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(HeaderActorID)
		if actor == "" {
			response.Error(c, apperror.Validation("X-Actor-Id header is required"))
			c.Abort()
			return
		}
		c.Set(CtxActorID, actor)
		c.Next()
	}
}

// MaxBodySize limits the request body to n bytes.
func MaxBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("correlation_id", c.GetString(CtxCorrelationID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
