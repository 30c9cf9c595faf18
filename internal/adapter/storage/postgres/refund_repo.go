package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

const refundColumns = `id, transaction_id, merchant_id, currency, amount, refund_method,
	bank_account_id, status, approval_id, gateway_reference, processed_at, completed_at,
	idempotency_key, requestor_id, reason, created_at`

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

// Create inserts the refund request and its initial history entries in one
// database transaction. A unique-index conflict on idempotency_key maps to
// ports.ErrDuplicateIdempotencyKey.
func (r *RefundRepo) Create(ctx context.Context, req *domain.RefundRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create refund: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO refund_requests (id, transaction_id, merchant_id, currency, amount, refund_method,
		bank_account_id, status, approval_id, gateway_reference, processed_at, completed_at,
		idempotency_key, requestor_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.Exec(ctx, query,
		req.ID, req.TransactionID, req.MerchantID, req.Currency, req.Amount, req.RefundMethod,
		req.BankAccountID, req.Status, req.ApprovalID, req.GatewayReference, req.ProcessedAt, req.CompletedAt,
		req.IdempotencyKey, req.RequestorID, req.Reason, req.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ports.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("insert refund request: %w", err)
	}

	for _, change := range req.StatusHistory {
		if err := insertHistory(ctx, tx, req.ID, change); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create refund: %w", err)
	}
	return nil
}

// GetByID fetches a refund request with its history and processing errors.
func (r *RefundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RefundRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM refund_requests WHERE id = $1`, refundColumns)
	return r.getOne(ctx, query, id)
}

// GetByIdempotencyKey fetches a refund request by its idempotency key.
func (r *RefundRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.RefundRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM refund_requests WHERE idempotency_key = $1`, refundColumns)
	return r.getOne(ctx, query, key)
}

// GetByApprovalID fetches a refund request by its approval ticket.
func (r *RefundRepo) GetByApprovalID(ctx context.Context, approvalID string) (*domain.RefundRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM refund_requests WHERE approval_id = $1`, refundColumns)
	return r.getOne(ctx, query, approvalID)
}

// GetByGatewayReference fetches a refund request by the reference the
// gateway assigned at dispatch.
func (r *RefundRepo) GetByGatewayReference(ctx context.Context, reference string) (*domain.RefundRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM refund_requests WHERE gateway_reference = $1`, refundColumns)
	return r.getOne(ctx, query, reference)
}

// UpdateStatus applies one guarded status transition. The UPDATE is fenced
// on the expected current status; zero affected rows means a concurrent
// operation already moved the record, reported as (false, nil).
func (r *RefundRepo) UpdateStatus(ctx context.Context, id uuid.UUID, upd ports.StatusUpdate) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin status update: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE refund_requests SET status = $1,
		approval_id = COALESCE($2, approval_id),
		gateway_reference = COALESCE($3, gateway_reference),
		processed_at = COALESCE($4, processed_at),
		completed_at = COALESCE($5, completed_at)
		WHERE id = $6 AND status = $7`

	tag, err := tx.Exec(ctx, query,
		upd.Change.Status, upd.ApprovalID, upd.GatewayReference,
		upd.ProcessedAt, upd.CompletedAt, id, upd.From,
	)
	if err != nil {
		return false, fmt.Errorf("update refund status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := insertHistory(ctx, tx, id, upd.Change); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit status update: %w", err)
	}
	return true, nil
}

// AppendProcessingError appends one processing error entry.
func (r *RefundRepo) AppendProcessingError(ctx context.Context, id uuid.UUID, perr domain.ProcessingError) error {
	query := `INSERT INTO refund_processing_errors (refund_id, code, message, occurred_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, id, perr.Code, perr.Message, perr.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert processing error: %w", err)
	}
	return nil
}

func insertHistory(ctx context.Context, tx pgx.Tx, id uuid.UUID, change domain.StatusChange) error {
	query := `INSERT INTO refund_status_history (refund_id, status, changed_by, reason, changed_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, id, change.Status, change.ChangedBy, change.Reason, change.ChangedAt)
	if err != nil {
		return fmt.Errorf("insert status history: %w", err)
	}
	return nil
}

func (r *RefundRepo) getOne(ctx context.Context, query string, arg any) (*domain.RefundRequest, error) {
	req, err := scanRefund(r.pool.QueryRow(ctx, query, arg))
	if err != nil || req == nil {
		return req, err
	}
	if err := r.loadHistory(ctx, req); err != nil {
		return nil, err
	}
	if err := r.loadProcessingErrors(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *RefundRepo) loadHistory(ctx context.Context, req *domain.RefundRequest) error {
	query := `SELECT status, changed_by, reason, changed_at
		FROM refund_status_history WHERE refund_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, req.ID)
	if err != nil {
		return fmt.Errorf("load status history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.StatusChange
		if err := rows.Scan(&c.Status, &c.ChangedBy, &c.Reason, &c.ChangedAt); err != nil {
			return fmt.Errorf("scan status history row: %w", err)
		}
		req.StatusHistory = append(req.StatusHistory, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate status history rows: %w", err)
	}
	return nil
}

func (r *RefundRepo) loadProcessingErrors(ctx context.Context, req *domain.RefundRequest) error {
	query := `SELECT code, message, occurred_at
		FROM refund_processing_errors WHERE refund_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, req.ID)
	if err != nil {
		return fmt.Errorf("load processing errors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.ProcessingError
		if err := rows.Scan(&p.Code, &p.Message, &p.OccurredAt); err != nil {
			return fmt.Errorf("scan processing error row: %w", err)
		}
		req.ProcessingErrors = append(req.ProcessingErrors, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate processing error rows: %w", err)
	}
	return nil
}

// scanRefund scans a single refund_requests row.
func scanRefund(row pgx.Row) (*domain.RefundRequest, error) {
	req := &domain.RefundRequest{}
	err := row.Scan(
		&req.ID, &req.TransactionID, &req.MerchantID, &req.Currency, &req.Amount, &req.RefundMethod,
		&req.BankAccountID, &req.Status, &req.ApprovalID, &req.GatewayReference, &req.ProcessedAt, &req.CompletedAt,
		&req.IdempotencyKey, &req.RequestorID, &req.Reason, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan refund request: %w", err)
	}
	return req, nil
}
