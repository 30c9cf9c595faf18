package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type guardTestDeps struct {
	guard *IdempotencyGuard
	repo  *mocks.MockRefundRepository
	lease *mocks.MockIdempotencyLease
	ctrl  *gomock.Controller
}

func setupGuard(t *testing.T) *guardTestDeps {
	ctrl := gomock.NewController(t)
	d := &guardTestDeps{
		repo:  mocks.NewMockRefundRepository(ctrl),
		lease: mocks.NewMockIdempotencyLease(ctrl),
		ctrl:  ctrl,
	}
	d.guard = NewIdempotencyGuard(d.repo, d.lease, time.Minute, zerolog.Nop())
	return d
}

func guardRefund() *domain.RefundRequest {
	return domain.NewRefundRequest(
		&domain.Transaction{ID: "txn_001", MerchantID: "mer_001", Amount: decimal.RequireFromString("10.00"), Currency: "USD", Status: "SUCCESS"},
		decimal.RequireFromString("10.00"),
		domain.MethodOriginalPayment,
		nil, "", "user_001", "key-1",
	)
}

func TestIdempotencyGuard_Admit_NewKey(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(nil, nil)
	d.lease.EXPECT().Acquire(ctx, "key-1", time.Minute).Return("tok-1", true, nil)
	d.lease.EXPECT().Release(gomock.Any(), "key-1", "tok-1").Return(nil)

	existing, release, err := d.guard.Admit(ctx, "key-1")
	require.NoError(t, err)
	assert.Nil(t, existing)
	require.NotNil(t, release)
	release()
}

func TestIdempotencyGuard_Admit_ExistingRecord(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	r := guardRefund()
	d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(r, nil)

	existing, release, err := d.guard.Admit(ctx, "key-1")
	require.NoError(t, err)
	assert.Same(t, r, existing)
	assert.Nil(t, release)
}

func TestIdempotencyGuard_Admit_EmptyKey(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	existing, release, err := d.guard.Admit(context.Background(), "")
	assert.Nil(t, existing)
	assert.Nil(t, release)
	assertAppError(t, err, "VAL_000")
}

func TestIdempotencyGuard_Admit_LeaseHeldRecheckFinds(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	r := guardRefund()
	gomock.InOrder(
		d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(nil, nil),
		d.lease.EXPECT().Acquire(ctx, "key-1", time.Minute).Return("", false, nil),
		d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(r, nil),
	)

	existing, release, err := d.guard.Admit(ctx, "key-1")
	require.NoError(t, err)
	assert.Same(t, r, existing)
	assert.Nil(t, release)
}

func TestIdempotencyGuard_Admit_LeaseHeldConflict(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(nil, nil).Times(2)
	d.lease.EXPECT().Acquire(ctx, "key-1", time.Minute).Return("", false, nil)

	existing, release, err := d.guard.Admit(ctx, "key-1")
	assert.Nil(t, existing)
	assert.Nil(t, release)
	assertAppError(t, err, "CFL_001")
}

func TestIdempotencyGuard_Admit_LeaseError(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(nil, nil)
	d.lease.EXPECT().Acquire(ctx, "key-1", time.Minute).Return("", false, errors.New("redis down"))

	existing, release, err := d.guard.Admit(ctx, "key-1")
	assert.Nil(t, existing)
	assert.Nil(t, release)
	assertAppError(t, err, "SYS_001")
}

func TestIdempotencyGuard_ReleaseSurvivesCanceledContext(t *testing.T) {
	d := setupGuard(t)
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	d.repo.EXPECT().GetByIdempotencyKey(ctx, "key-1").Return(nil, nil)
	d.lease.EXPECT().Acquire(ctx, "key-1", time.Minute).Return("tok-1", true, nil)
	d.lease.EXPECT().
		Release(gomock.Any(), "key-1", "tok-1").
		DoAndReturn(func(rctx context.Context, _, _ string) error {
			assert.NoError(t, rctx.Err())
			return nil
		})

	_, release, err := d.guard.Admit(ctx, "key-1")
	require.NoError(t, err)
	cancel()
	release()
}
