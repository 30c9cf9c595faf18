package dto

import "time"

// CreateRefundRequest is the request body for refund creation. The
// idempotency key travels in the Idempotency-Key header, not the body.
type CreateRefundRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required,max=100"`
	Amount        string  `json:"amount" binding:"required"`
	RefundMethod  string  `json:"refund_method,omitempty"`
	BankAccountID *string `json:"bank_account_id,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

// CancelRefundRequest is the request body for refund cancellation.
type CancelRefundRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ApprovalDecisionRequest is the callback body posted by the approvals
// service when a decision lands.
type ApprovalDecisionRequest struct {
	ApprovalID string `json:"approval_id" binding:"required"`
	Approved   *bool  `json:"approved" binding:"required"`
	Notes      string `json:"notes,omitempty"`
}

// StatusChangeResponse is one audit entry of the refund's history.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// ProcessingErrorResponse is one recorded processing failure.
type ProcessingErrorResponse struct {
	Code       string    `json:"code"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RefundResponse is the response body for refund results.
type RefundResponse struct {
	ID               string                    `json:"id"`
	TransactionID    string                    `json:"transaction_id"`
	MerchantID       string                    `json:"merchant_id"`
	Amount           string                    `json:"amount"`
	Currency         string                    `json:"currency"`
	RefundMethod     string                    `json:"refund_method"`
	BankAccountID    *string                   `json:"bank_account_id,omitempty"`
	Status           string                    `json:"status"`
	StatusHistory    []StatusChangeResponse    `json:"status_history"`
	ApprovalID       *string                   `json:"approval_id,omitempty"`
	GatewayReference *string                   `json:"gateway_reference,omitempty"`
	ProcessedAt      *time.Time                `json:"processed_at,omitempty"`
	CompletedAt      *time.Time                `json:"completed_at,omitempty"`
	ProcessingErrors []ProcessingErrorResponse `json:"processing_errors,omitempty"`
	Reason           string                    `json:"reason,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
}

// WebhookAckResponse acknowledges a gateway callback.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
