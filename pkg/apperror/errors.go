package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
// The code prefix encodes the taxonomy: VAL (validation), BIZ
// (business/state), CFL (conflict, retryable), SYS (system).
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Refund amount must be greater than zero", http.StatusBadRequest)
}

func ErrMissingBankAccount() *AppError {
	return New("VAL_002", "Refund method OTHER requires a bank account", http.StatusBadRequest)
}

// ErrComplianceRejected carries the violation details from the compliance gate.
func ErrComplianceRejected(violations []string) *AppError {
	msg := "Refund request rejected by compliance"
	if len(violations) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(violations, "; "))
	}
	return New("VAL_003", msg, http.StatusUnprocessableEntity)
}

func ErrInvalidRefundMethod(method string) *AppError {
	return New("VAL_004", fmt.Sprintf("Unknown refund method %q", method), http.StatusBadRequest)
}

func ErrAmountExceedsOriginal() *AppError {
	return New("VAL_005", "Refund amount exceeds original transaction amount", http.StatusBadRequest)
}

// Validation returns a generic bad-input error (request shape problems).
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Business / State (BIZ) ----

func ErrInvalidStateTransition(from, to string) *AppError {
	return New("BIZ_001", fmt.Sprintf("Invalid state transition from %s to %s", from, to), http.StatusConflict)
}

func ErrApprovalNotGranted() *AppError {
	return New("BIZ_002", "Refund approval has not been granted", http.StatusConflict)
}

func ErrUnauthorizedActor() *AppError {
	return New("BIZ_003", "Actor is not authorized for this operation", http.StatusForbidden)
}

func ErrTransactionNotEligible(reason string) *AppError {
	return New("BIZ_004", fmt.Sprintf("Original transaction is not eligible for refund: %s", reason), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("BIZ_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Conflict (CFL) ----

// ErrDuplicateRequest signals an in-flight creation holding the idempotency
// lease. Retryable: the caller should repeat the request with the same key.
func ErrDuplicateRequest() *AppError {
	return New("CFL_001", "A refund request with this idempotency key is already being processed", http.StatusConflict)
}

func ErrConcurrentModification(id string) *AppError {
	return New("CFL_002", fmt.Sprintf("Refund request %s was modified concurrently", id), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrCollaboratorUnavailable(name string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("Dependency %s is unavailable", name), http.StatusBadGateway, err)
}
