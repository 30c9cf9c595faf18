package service

import (
	"context"
	"fmt"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// IdempotencyGuard dedupes concurrent creation requests sharing an
// idempotency key. Creation is idempotent, not merely deduplicated: a key
// whose creation already completed returns the persisted record, and a key
// with an in-flight creation is rejected as a retryable conflict.
type IdempotencyGuard struct {
	repo  ports.RefundRepository
	lease ports.IdempotencyLease
	ttl   time.Duration
	log   zerolog.Logger
}

// NewIdempotencyGuard creates a new IdempotencyGuard. ttl bounds how long a
// crashed creation can keep its key unavailable.
func NewIdempotencyGuard(repo ports.RefundRepository, lease ports.IdempotencyLease, ttl time.Duration, log zerolog.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{repo: repo, lease: lease, ttl: ttl, log: log}
}

// Admit decides the fate of one creation attempt.
// Returns (existing, nil, nil) when creation previously completed for the
// key; (nil, release, nil) when the caller holds the lease and must create;
// or a CFL_001 conflict when another creation is in flight.
// The caller must invoke release on every exit path of the attempt.
func (g *IdempotencyGuard) Admit(ctx context.Context, key string) (*domain.RefundRequest, func(), error) {
	if key == "" {
		return nil, nil, apperror.Validation("idempotency key is required")
	}

	existing, err := g.repo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("idempotency lookup: %w", err))
	}
	if existing != nil {
		return existing, nil, nil
	}

	token, ok, err := g.lease.Acquire(ctx, key, g.ttl)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("acquire idempotency lease: %w", err))
	}
	if !ok {
		// Another process holds the lease. Its creation may have just
		// finished, so look once more before surfacing the conflict.
		existing, err = g.repo.GetByIdempotencyKey(ctx, key)
		if err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("idempotency lookup: %w", err))
		}
		if existing != nil {
			return existing, nil, nil
		}
		return nil, nil, apperror.ErrDuplicateRequest()
	}

	release := func() {
		// Release must run even when the request context is already gone.
		rctx := context.WithoutCancel(ctx)
		if rerr := g.lease.Release(rctx, key, token); rerr != nil {
			g.log.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency lease")
		}
	}
	return nil, release, nil
}
