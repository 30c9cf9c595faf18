package domain

import (
	"errors"
	"fmt"
)

// RefundStatus represents the lifecycle state of a refund request.
type RefundStatus string

const (
	StatusDraft            RefundStatus = "DRAFT"
	StatusSubmitted        RefundStatus = "SUBMITTED"
	StatusPendingApproval  RefundStatus = "PENDING_APPROVAL"
	StatusProcessing       RefundStatus = "PROCESSING"
	StatusCompleted        RefundStatus = "COMPLETED"
	StatusFailed           RefundStatus = "FAILED"
	StatusRejected         RefundStatus = "REJECTED"
	StatusCanceled         RefundStatus = "CANCELED"
	StatusValidationFailed RefundStatus = "VALIDATION_FAILED"
)

// ErrInvalidTransition is returned when a status change is not in the
// transition table.
var ErrInvalidTransition = errors.New("invalid state transition")

// transitions is the single source of truth for legal status changes.
// COMPLETED and FAILED targets from pre-PROCESSING states exist only for
// the webhook reconciliation path; FAILED -> SUBMITTED is the manual retry
// and FAILED -> COMPLETED a late success reported by the gateway.
var transitions = map[RefundStatus][]RefundStatus{
	StatusDraft:            {StatusSubmitted, StatusValidationFailed, StatusCanceled, StatusCompleted, StatusFailed},
	StatusSubmitted:        {StatusPendingApproval, StatusProcessing, StatusCanceled, StatusCompleted, StatusFailed},
	StatusPendingApproval:  {StatusProcessing, StatusRejected, StatusCanceled, StatusCompleted, StatusFailed},
	StatusProcessing:       {StatusCompleted, StatusFailed},
	StatusFailed:           {StatusSubmitted, StatusCompleted},
	StatusCompleted:        {},
	StatusRejected:         {},
	StatusCanceled:         {},
	StatusValidationFailed: {},
}

// IsTerminal returns true for states that no operation may ever leave.
// FAILED is not listed: an authorized manual retry re-enters SUBMITTED.
func (s RefundStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCanceled, StatusValidationFailed:
		return true
	}
	return false
}

// IsCancelable returns true if a refund in this state may be canceled.
func (s RefundStatus) IsCancelable() bool {
	return s == StatusDraft || s == StatusSubmitted || s == StatusPendingApproval
}

// CanTransition checks whether from -> to is in the transition table.
func CanTransition(from, to RefundStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition when from -> to is illegal.
func ValidateTransition(from, to RefundStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// AllowedTransitions returns a copy of the legal targets from a state.
func AllowedTransitions(from RefundStatus) []RefundStatus {
	allowed := transitions[from]
	out := make([]RefundStatus, len(allowed))
	copy(out, allowed)
	return out
}
