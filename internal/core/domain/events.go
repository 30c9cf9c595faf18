package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventRefundStatusChanged is published on every status transition. It is
// the sole mechanism informing notification delivery and reporting of
// status bookkeeping.
const EventRefundStatusChanged = "REFUND_STATUS_CHANGED"

// RefundStatusChangedEvent is the payload of EventRefundStatusChanged.
type RefundStatusChangedEvent struct {
	RefundID      string          `json:"refund_id"`
	TransactionID string          `json:"transaction_id"`
	MerchantID    string          `json:"merchant_id"`
	OldStatus     RefundStatus    `json:"old_status"`
	NewStatus     RefundStatus    `json:"new_status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ChangedBy     string          `json:"changed_by"`
	Reason        string          `json:"reason,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// PartitionKey keys the event stream so all events for one refund land on
// the same partition, preserving per-refund ordering.
func (e RefundStatusChangedEvent) PartitionKey() string {
	return e.RefundID
}
