package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asharkov-briklabs/refunds-service/internal/adapter/http/middleware"
	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports/mocks"
	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerTestDeps struct {
	router       http.Handler
	orchestrator *mocks.MockRefundOrchestrator
	repo         *mocks.MockRefundRepository
	ctrl         *gomock.Controller
}

func setupHandlers(t *testing.T) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		orchestrator: mocks.NewMockRefundOrchestrator(ctrl),
		repo:         mocks.NewMockRefundRepository(ctrl),
		ctrl:         ctrl,
	}
	d.router = SetupRouter(RouterDeps{
		Orchestrator: d.orchestrator,
		RefundRepo:   d.repo,
		Logger:       zerolog.Nop(),
	})
	return d
}

func handlerRefund(status domain.RefundStatus) *domain.RefundRequest {
	r := domain.NewRefundRequest(
		&domain.Transaction{
			ID:         "txn_001",
			MerchantID: "mer_001",
			Amount:     decimal.RequireFromString("150.00"),
			Currency:   "USD",
			Status:     domain.TransactionStatusSettled,
		},
		decimal.RequireFromString("100.00"),
		domain.MethodOriginalPayment,
		nil, "customer complaint", "user_001", "idem-001",
	)
	r.Status = status
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func actorHeaders() map[string]string {
	return map[string]string{
		middleware.HeaderActorID:        "user_001",
		middleware.HeaderIdempotencyKey: "idem-001",
	}
}

func TestRefundHandler_Create(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusCompleted)
	d.orchestrator.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input ports.CreateRefundInput) (*domain.RefundRequest, error) {
			assert.Equal(t, "txn_001", input.TransactionID)
			assert.True(t, input.Amount.Equal(decimal.RequireFromString("100.00")))
			assert.Equal(t, "user_001", input.RequestorID)
			assert.Equal(t, "idem-001", input.IdempotencyKey)
			return r, nil
		})

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds", map[string]any{
		"transaction_id": "txn_001",
		"amount":         "100.00",
		"reason":         "customer complaint",
	}, actorHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, r.ID.String(), envelope.Data.ID)
	assert.Equal(t, "COMPLETED", envelope.Data.Status)
	assert.NotEmpty(t, envelope.RequestID)
}

func TestRefundHandler_Create_MissingIdempotencyKey(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds", map[string]any{
		"transaction_id": "txn_001",
		"amount":         "100.00",
	}, map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VAL_000")
}

func TestRefundHandler_Create_MissingActor(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds", map[string]any{
		"transaction_id": "txn_001",
		"amount":         "100.00",
	}, map[string]string{middleware.HeaderIdempotencyKey: "idem-001"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VAL_000")
}

func TestRefundHandler_Create_NonDecimalAmount(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds", map[string]any{
		"transaction_id": "txn_001",
		"amount":         "a lot",
	}, actorHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VAL_000")
}

func TestRefundHandler_Create_ConflictMapsTo409(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.orchestrator.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDuplicateRequest())

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds", map[string]any{
		"transaction_id": "txn_001",
		"amount":         "100.00",
	}, actorHeaders())

	assert.Equal(t, http.StatusConflict, w.Code)
	assertErrorCode(t, w, "CFL_001")
}

func TestRefundHandler_Get(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusSubmitted)
	d.repo.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)

	w := doRequest(t, d.router, http.MethodGet, "/api/v1/refunds/"+r.ID.String(), nil,
		map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundHandler_Get_NotFound(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	id := uuid.New()
	d.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	w := doRequest(t, d.router, http.MethodGet, "/api/v1/refunds/"+id.String(), nil,
		map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assertErrorCode(t, w, "BIZ_005")
}

func TestRefundHandler_Get_BadID(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := doRequest(t, d.router, http.MethodGet, "/api/v1/refunds/not-a-uuid", nil,
		map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefundHandler_Cancel(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusCanceled)
	d.orchestrator.EXPECT().
		Cancel(gomock.Any(), r.ID, "changed my mind", "user_001").
		Return(r, nil)

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/"+r.ID.String()+"/cancel",
		map[string]any{"reason": "changed my mind"},
		map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundHandler_Cancel_Forbidden(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	id := uuid.New()
	d.orchestrator.EXPECT().
		Cancel(gomock.Any(), id, "", "someone_else").
		Return(nil, apperror.ErrUnauthorizedActor())

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/"+id.String()+"/cancel",
		map[string]any{}, map[string]string{middleware.HeaderActorID: "someone_else"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assertErrorCode(t, w, "BIZ_003")
}

func TestRefundHandler_Retry(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusCompleted)
	d.orchestrator.EXPECT().
		Retry(gomock.Any(), r.ID, "user_001").
		Return(r, nil)

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/"+r.ID.String()+"/retry",
		nil, map[string]string{middleware.HeaderActorID: "user_001"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundHandler_Process(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusCompleted)
	d.orchestrator.EXPECT().
		Process(gomock.Any(), r.ID).
		Return(r, nil)

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/"+r.ID.String()+"/process",
		nil, map[string]string{middleware.HeaderActorID: "ops_001"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundHandler_ApprovalDecision(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	r := handlerRefund(domain.StatusProcessing)
	d.orchestrator.EXPECT().
		HandleApprovalDecision(gomock.Any(), "apr-1", true, "looks fine").
		Return(r, nil)

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/approval-decisions", map[string]any{
		"approval_id": "apr-1",
		"approved":    true,
		"notes":       "looks fine",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundHandler_ApprovalDecision_MissingFields(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := doRequest(t, d.router, http.MethodPost, "/api/v1/refunds/approval-decisions",
		map[string]any{"approval_id": "apr-1"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_Receive(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.orchestrator.EXPECT().
		HandleGatewayWebhook(gomock.Any(), "acquirer", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte) bool {
			assert.Contains(t, string(payload), "gw-ref-1")
			return true
		})

	w := doRequest(t, d.router, http.MethodPost, "/webhooks/gateways/acquirer", map[string]any{
		"reference": "gw-ref-1",
		"status":    "succeeded",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestWebhookHandler_Receive_Unhandled(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.orchestrator.EXPECT().
		HandleGatewayWebhook(gomock.Any(), "acquirer", gomock.Any()).
		Return(false)

	w := doRequest(t, d.router, http.MethodPost, "/webhooks/gateways/acquirer",
		map[string]any{"reference": "unknown"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"received":false}`, w.Body.String())
}

func TestHealthCheck_Degraded(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	router := SetupRouter(RouterDeps{
		Orchestrator:   d.orchestrator,
		RefundRepo:     d.repo,
		HealthCheckers: []ports.HealthChecker{failingChecker{}},
		Logger:         zerolog.Nop(),
	})

	w := doRequest(t, router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

type failingChecker struct{}

func (failingChecker) Ping(context.Context) error { return assert.AnError }
func (failingChecker) Name() string               { return "postgresql" }

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, code, body.ErrorCode)
}
