package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundMethod selects the rail a refund is paid out through.
type RefundMethod string

const (
	MethodOriginalPayment RefundMethod = "ORIGINAL_PAYMENT"
	MethodBalance         RefundMethod = "BALANCE"
	MethodOther           RefundMethod = "OTHER"
)

// Valid returns true for a known refund method.
func (m RefundMethod) Valid() bool {
	return m == MethodOriginalPayment || m == MethodBalance || m == MethodOther
}

// StatusChange is one append-only audit entry of the status history.
type StatusChange struct {
	Status    RefundStatus `json:"status"`
	ChangedBy string       `json:"changed_by"`
	Reason    string       `json:"reason"`
	ChangedAt time.Time    `json:"changed_at"`
}

// ProcessingError records one failed processing attempt. Entries accumulate;
// retries append, they never reset history.
type ProcessingError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProcessingErrorCodeSystem marks an unexpected failure caught at the
// processing boundary, as opposed to a failure reported by the gateway.
const ProcessingErrorCodeSystem = "SYSTEM_ERROR"

// RefundRequest is the aggregate root of the refund lifecycle.
// TransactionID, MerchantID, Currency and Amount are copied from the
// original transaction at creation time and immutable thereafter. Status is
// the single source of truth for lifecycle position; every mutation goes
// through the transition table in status.go.
type RefundRequest struct {
	ID               uuid.UUID         `json:"id"`
	TransactionID    string            `json:"transaction_id"`
	MerchantID       string            `json:"merchant_id"`
	Currency         string            `json:"currency"`
	Amount           decimal.Decimal   `json:"amount"`
	RefundMethod     RefundMethod      `json:"refund_method"`
	BankAccountID    *string           `json:"bank_account_id,omitempty"`
	Status           RefundStatus      `json:"status"`
	StatusHistory    []StatusChange    `json:"status_history"`
	ApprovalID       *string           `json:"approval_id,omitempty"`
	GatewayReference *string           `json:"gateway_reference,omitempty"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	ProcessingErrors []ProcessingError `json:"processing_errors,omitempty"`
	IdempotencyKey   string            `json:"idempotency_key"`
	RequestorID      string            `json:"requestor_id"`
	Reason           string            `json:"reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// NewRefundRequest builds a DRAFT refund request with its initial history
// entry. Transaction-derived fields come from the original transaction.
func NewRefundRequest(txn *Transaction, amount decimal.Decimal, method RefundMethod, bankAccountID *string, reason, requestorID, idempotencyKey string) *RefundRequest {
	now := time.Now().UTC()
	r := &RefundRequest{
		ID:             uuid.New(),
		TransactionID:  txn.ID,
		MerchantID:     txn.MerchantID,
		Currency:       txn.Currency,
		Amount:         amount,
		RefundMethod:   method,
		BankAccountID:  bankAccountID,
		Status:         StatusDraft,
		IdempotencyKey: idempotencyKey,
		RequestorID:    requestorID,
		Reason:         reason,
		CreatedAt:      now,
	}
	r.StatusHistory = append(r.StatusHistory, StatusChange{
		Status:    StatusDraft,
		ChangedBy: requestorID,
		Reason:    "refund request created",
		ChangedAt: now,
	})
	return r
}
