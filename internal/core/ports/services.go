package ports

import (
	"context"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Orchestrator (the core) ---

// CreateRefundInput holds validated input for refund creation.
type CreateRefundInput struct {
	TransactionID  string
	Amount         decimal.Decimal
	RefundMethod   domain.RefundMethod // empty resolves to ORIGINAL_PAYMENT
	BankAccountID  *string
	Reason         string
	RequestorID    string
	IdempotencyKey string
}

// RefundOrchestrator drives the refund lifecycle end to end.
type RefundOrchestrator interface {
	Create(ctx context.Context, input CreateRefundInput) (*domain.RefundRequest, error)
	Process(ctx context.Context, id uuid.UUID) (*domain.RefundRequest, error)
	HandleApprovalDecision(ctx context.Context, approvalID string, approved bool, notes string) (*domain.RefundRequest, error)
	Cancel(ctx context.Context, id uuid.UUID, reason, actorID string) (*domain.RefundRequest, error)
	Retry(ctx context.Context, id uuid.UUID, actorID string) (*domain.RefundRequest, error)

	// HandleGatewayWebhook reconciles an asynchronous gateway callback.
	// Returns false, never an error, when the payload cannot be resolved to
	// a record — transport-level delivery retries must not be amplified.
	HandleGatewayWebhook(ctx context.Context, gatewayType string, payload []byte) bool
}

// --- Idempotency ---

// IdempotencyLease is a key-scoped distributed lock admitting exactly one
// in-flight creation per idempotency key. Acquire returns an owner token;
// Release is a no-op when the token no longer owns the lease.
type IdempotencyLease interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

// --- Platform collaborators ---

// TransactionLookup resolves the original transaction a refund targets.
type TransactionLookup interface {
	// GetTransaction returns nil, nil when the transaction does not exist.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// ComplianceResult is the outcome of the compliance gate.
type ComplianceResult struct {
	Compliant  bool     `json:"compliant"`
	Violations []string `json:"violations,omitempty"`
}

// ComplianceGate evaluates a refund request against compliance rules.
type ComplianceGate interface {
	Validate(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*ComplianceResult, error)
}

// ApprovalDecision is the state of an approval request.
type ApprovalDecision string

const (
	ApprovalPending  ApprovalDecision = "PENDING"
	ApprovalApproved ApprovalDecision = "APPROVED"
	ApprovalRejected ApprovalDecision = "REJECTED"
)

// ApprovalTicket is returned when an approval request is opened.
type ApprovalTicket struct {
	ApprovalID       string   `json:"approval_id"`
	CurrentApprovers []string `json:"current_approvers"`
}

// ApprovalWorkflow is the external approval subsystem. Escalation and
// expiry logic live behind this interface.
type ApprovalWorkflow interface {
	CreateApprovalRequest(ctx context.Context, r *domain.RefundRequest) (*ApprovalTicket, error)
	GetApprovalStatus(ctx context.Context, approvalID string) (ApprovalDecision, error)
	CancelApprovalRequest(ctx context.Context, approvalID, reason string) error
}

// DispatchResult is the synchronous outcome of a payment-method dispatch.
// Gateway timeout/retry policy belongs to the dispatcher, not the
// orchestrator.
type DispatchResult struct {
	Success          bool   `json:"success"`
	GatewayReference string `json:"gateway_reference,omitempty"`
	ErrorCode        string `json:"error_code,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// PaymentDispatcher executes a refund through the payment-method-specific
// gateway logic.
type PaymentDispatcher interface {
	ProcessRefund(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*DispatchResult, error)
}

// ParameterResolver reads the merchant parameter hierarchy. Returns ""
// when the parameter is not set at any level.
type ParameterResolver interface {
	ResolveParameter(ctx context.Context, name, merchantID string) (string, error)
}

// EventPublisher publishes domain events. Fire-and-forget from the core's
// perspective; delivery guarantees belong to the messaging collaborator.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Notification types sent by the orchestrator.
const (
	NotificationApprovalRequested = "APPROVAL_REQUESTED"
	NotificationRefundCompleted   = "REFUND_COMPLETED"
	NotificationRefundFailed      = "REFUND_FAILED"
	NotificationRefundRejected    = "REFUND_REJECTED"
	NotificationRefundCanceled    = "REFUND_CANCELED"
)

// NotificationService delivers the business messages that need richer
// context than the generic status-changed event.
type NotificationService interface {
	Send(ctx context.Context, notificationType, recipient, channel string, details map[string]any) error
}

// --- Gateway webhook normalization ---

// NormalizedWebhook is the only webhook shape the reconciler consumes.
// Status is COMPLETED or FAILED.
type NormalizedWebhook struct {
	GatewayReference string
	Status           domain.RefundStatus
	ErrorCode        string
	ErrorMessage     string
}

// GatewayAdapter normalizes one gateway's payload format.
type GatewayAdapter interface {
	GatewayType() string
	Normalize(payload []byte) (*NormalizedWebhook, error)
}
