package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []RefundStatus{
	StatusDraft, StatusSubmitted, StatusPendingApproval, StatusProcessing,
	StatusCompleted, StatusFailed, StatusRejected, StatusCanceled, StatusValidationFailed,
}

func TestCanTransition_LegalTable(t *testing.T) {
	legal := []struct{ from, to RefundStatus }{
		{StatusDraft, StatusSubmitted},
		{StatusDraft, StatusValidationFailed},
		{StatusDraft, StatusCanceled},
		{StatusSubmitted, StatusPendingApproval},
		{StatusSubmitted, StatusProcessing},
		{StatusSubmitted, StatusCanceled},
		{StatusPendingApproval, StatusProcessing},
		{StatusPendingApproval, StatusRejected},
		{StatusPendingApproval, StatusCanceled},
		{StatusProcessing, StatusCompleted},
		{StatusProcessing, StatusFailed},
		{StatusFailed, StatusSubmitted},
		{StatusFailed, StatusCompleted},
		// webhook-driven shortcuts
		{StatusDraft, StatusCompleted},
		{StatusSubmitted, StatusFailed},
		{StatusPendingApproval, StatusCompleted},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
		assert.NoError(t, ValidateTransition(tc.from, tc.to))
	}
}

func TestCanTransition_TerminalStatesHaveNoExit(t *testing.T) {
	for _, from := range []RefundStatus{StatusCompleted, StatusRejected, StatusCanceled, StatusValidationFailed} {
		for _, to := range allStatuses {
			assert.False(t, CanTransition(from, to), "%s -> %s must be illegal", from, to)
		}
	}
}

func TestCanTransition_IllegalPairs(t *testing.T) {
	illegal := []struct{ from, to RefundStatus }{
		{StatusProcessing, StatusCanceled}, // in-flight gateway call cannot be aborted
		{StatusProcessing, StatusSubmitted},
		{StatusProcessing, StatusPendingApproval},
		{StatusFailed, StatusProcessing}, // retry must pass through SUBMITTED
		{StatusFailed, StatusCanceled},
		{StatusSubmitted, StatusDraft},
		{StatusDraft, StatusProcessing},
		{StatusDraft, StatusPendingApproval},
		{StatusDraft, StatusRejected},
		{StatusSubmitted, StatusRejected},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s must be illegal", tc.from, tc.to)
		assert.ErrorIs(t, ValidateTransition(tc.from, tc.to), ErrInvalidTransition)
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(RefundStatus("BOGUS"), StatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.True(t, StatusValidationFailed.IsTerminal())
	// FAILED allows an authorized manual retry.
	assert.False(t, StatusFailed.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
}

func TestIsCancelable(t *testing.T) {
	assert.True(t, StatusDraft.IsCancelable())
	assert.True(t, StatusSubmitted.IsCancelable())
	assert.True(t, StatusPendingApproval.IsCancelable())
	assert.False(t, StatusProcessing.IsCancelable())
	assert.False(t, StatusFailed.IsCancelable())
	assert.False(t, StatusCompleted.IsCancelable())
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := AllowedTransitions(StatusProcessing)
	require.Len(t, got, 2)
	got[0] = StatusDraft
	assert.True(t, CanTransition(StatusProcessing, StatusCompleted), "mutating the copy must not affect the table")
}

func TestRefundMethod_Valid(t *testing.T) {
	assert.True(t, MethodOriginalPayment.Valid())
	assert.True(t, MethodBalance.Valid())
	assert.True(t, MethodOther.Valid())
	assert.False(t, RefundMethod("WIRE").Valid())
	assert.False(t, RefundMethod("").Valid())
}

func TestNewRefundRequest(t *testing.T) {
	txn := &Transaction{
		ID:         "txn-1",
		MerchantID: "mer-1",
		Amount:     decimal.RequireFromString("150.00"),
		Currency:   "USD",
		Status:     TransactionStatusSuccess,
	}

	r := NewRefundRequest(txn, decimal.RequireFromString("100.00"), MethodOriginalPayment, nil, "customer complaint", "user-1", "idem-1")

	assert.Equal(t, StatusDraft, r.Status)
	assert.Equal(t, "txn-1", r.TransactionID)
	assert.Equal(t, "mer-1", r.MerchantID)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, "idem-1", r.IdempotencyKey)
	require.Len(t, r.StatusHistory, 1)
	assert.Equal(t, StatusDraft, r.StatusHistory[0].Status)
	assert.Equal(t, "user-1", r.StatusHistory[0].ChangedBy)
	assert.NotEqual(t, r.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestTransaction_IsRefundable(t *testing.T) {
	assert.True(t, (&Transaction{Status: TransactionStatusSuccess}).IsRefundable())
	assert.True(t, (&Transaction{Status: TransactionStatusSettled}).IsRefundable())
	assert.False(t, (&Transaction{Status: TransactionStatusReversed}).IsRefundable())
	assert.False(t, (&Transaction{Status: TransactionStatusFailed}).IsRefundable())
}
