package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the status reported by the transactions service.
type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusSettled  TransactionStatus = "SETTLED"
	TransactionStatusReversed TransactionStatus = "REVERSED"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// Transaction is the read-only snapshot of the original payment a refund
// is issued against. Owned by the transactions service; this service never
// mutates it.
type Transaction struct {
	ID          string            `json:"id"`
	MerchantID  string            `json:"merchant_id"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
}

// IsRefundable returns true if this transaction can be refunded.
func (t *Transaction) IsRefundable() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusSettled
}
