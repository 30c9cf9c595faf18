package handler

import (
	"github.com/asharkov-briklabs/refunds-service/internal/adapter/http/dto"
	"github.com/asharkov-briklabs/refunds-service/internal/adapter/http/middleware"
	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"
	"github.com/asharkov-briklabs/refunds-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundHandler handles refund lifecycle endpoints.
type RefundHandler struct {
	orchestrator ports.RefundOrchestrator
	repo         ports.RefundRepository
}

// NewRefundHandler creates a new RefundHandler.
func NewRefundHandler(orchestrator ports.RefundOrchestrator, repo ports.RefundRepository) *RefundHandler {
	return &RefundHandler{orchestrator: orchestrator, repo: repo}
}

// Create handles POST /api/v1/refunds.
func (h *RefundHandler) Create(c *gin.Context) {
	idempotencyKey := c.GetHeader(middleware.HeaderIdempotencyKey)
	if idempotencyKey == "" {
		response.Error(c, apperror.Validation("Idempotency-Key header is required"))
		return
	}

	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal string"))
		return
	}

	result, err := h.orchestrator.Create(c.Request.Context(), ports.CreateRefundInput{
		TransactionID:  req.TransactionID,
		Amount:         amount,
		RefundMethod:   domain.RefundMethod(req.RefundMethod),
		BankAccountID:  req.BankAccountID,
		Reason:         req.Reason,
		RequestorID:    c.GetString(middleware.CtxActorID),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRefundResponse(result))
}

// Get handles GET /api/v1/refunds/:id.
func (h *RefundHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("refund id must be a UUID"))
		return
	}

	r, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if r == nil {
		response.Error(c, apperror.ErrNotFound("refund request"))
		return
	}

	response.OK(c, toRefundResponse(r))
}

// Cancel handles POST /api/v1/refunds/:id/cancel.
func (h *RefundHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("refund id must be a UUID"))
		return
	}

	var req dto.CancelRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.Cancel(c.Request.Context(), id, req.Reason, c.GetString(middleware.CtxActorID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRefundResponse(result))
}

// Process handles POST /api/v1/refunds/:id/process. Drives a submitted
// refund through gateway dispatch, for operational re-drives when the
// synchronous path was interrupted.
func (h *RefundHandler) Process(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("refund id must be a UUID"))
		return
	}

	result, err := h.orchestrator.Process(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRefundResponse(result))
}

// Retry handles POST /api/v1/refunds/:id/retry.
func (h *RefundHandler) Retry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("refund id must be a UUID"))
		return
	}

	result, err := h.orchestrator.Retry(c.Request.Context(), id, c.GetString(middleware.CtxActorID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRefundResponse(result))
}

// ApprovalDecision handles POST /api/v1/refunds/approval-decisions, the
// callback the approvals service posts when a decision lands.
func (h *RefundHandler) ApprovalDecision(c *gin.Context) {
	var req dto.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.HandleApprovalDecision(c.Request.Context(), req.ApprovalID, *req.Approved, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRefundResponse(result))
}

// toRefundResponse converts a domain.RefundRequest to its DTO.
func toRefundResponse(r *domain.RefundRequest) dto.RefundResponse {
	resp := dto.RefundResponse{
		ID:               r.ID.String(),
		TransactionID:    r.TransactionID,
		MerchantID:       r.MerchantID,
		Amount:           r.Amount.String(),
		Currency:         r.Currency,
		RefundMethod:     string(r.RefundMethod),
		BankAccountID:    r.BankAccountID,
		Status:           string(r.Status),
		ApprovalID:       r.ApprovalID,
		GatewayReference: r.GatewayReference,
		ProcessedAt:      r.ProcessedAt,
		CompletedAt:      r.CompletedAt,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt,
	}
	for _, c := range r.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, dto.StatusChangeResponse{
			Status:    string(c.Status),
			ChangedBy: c.ChangedBy,
			Reason:    c.Reason,
			ChangedAt: c.ChangedAt,
		})
	}
	for _, p := range r.ProcessingErrors {
		resp.ProcessingErrors = append(resp.ProcessingErrors, dto.ProcessingErrorResponse{
			Code:       p.Code,
			Message:    p.Message,
			OccurredAt: p.OccurredAt,
		})
	}
	return resp
}
