package ports

import (
	"context"
	"errors"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicateIdempotencyKey is returned by Create when the unique index on
// idempotency_key rejects the insert. Callers treat it as "creation already
// completed" and fetch the existing record.
var ErrDuplicateIdempotencyKey = errors.New("idempotency key already exists")

// StatusUpdate describes one guarded status transition. From is the
// expected current status; the update applies only if the row still matches
// (optimistic expected-status CAS). Optional fields are written alongside
// the transition when set.
type StatusUpdate struct {
	From             domain.RefundStatus
	Change           domain.StatusChange
	ApprovalID       *string
	GatewayReference *string
	ProcessedAt      *time.Time
	CompletedAt      *time.Time
}

// RefundRepository defines persistence operations for refund requests.
// Get* methods return nil, nil when no record matches.
type RefundRepository interface {
	Create(ctx context.Context, r *domain.RefundRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RefundRequest, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.RefundRequest, error)
	GetByApprovalID(ctx context.Context, approvalID string) (*domain.RefundRequest, error)
	GetByGatewayReference(ctx context.Context, reference string) (*domain.RefundRequest, error)

	// UpdateStatus atomically appends the history entry and moves the record
	// to Change.Status, guarded by From. Returns false (and no error) when
	// the guard fails because a concurrent operation already moved the record.
	UpdateStatus(ctx context.Context, id uuid.UUID, upd StatusUpdate) (bool, error)

	// AppendProcessingError appends one entry to the append-only error list.
	AppendProcessingError(ctx context.Context, id uuid.UUID, perr domain.ProcessingError) error
}
