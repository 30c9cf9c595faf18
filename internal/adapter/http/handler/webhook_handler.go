package handler

import (
	"io"
	"net/http"

	"github.com/asharkov-briklabs/refunds-service/internal/adapter/http/dto"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"
	"github.com/asharkov-briklabs/refunds-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous gateway callbacks.
type WebhookHandler struct {
	orchestrator ports.RefundOrchestrator
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(orchestrator ports.RefundOrchestrator) *WebhookHandler {
	return &WebhookHandler{orchestrator: orchestrator}
}

// Receive handles POST /webhooks/gateways/:gatewayType. A payload that
// cannot be applied gets a 400 so the gateway redelivers; a handled one
// (including duplicates) gets a 200.
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	handled := h.orchestrator.HandleGatewayWebhook(c.Request.Context(), c.Param("gatewayType"), payload)
	if !handled {
		c.JSON(http.StatusBadRequest, dto.WebhookAckResponse{Received: false})
		return
	}
	c.JSON(http.StatusOK, dto.WebhookAckResponse{Received: true})
}
