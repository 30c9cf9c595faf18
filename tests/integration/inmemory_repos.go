package integration

import (
	"context"
	"sync"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// inMemoryRefundRepo is a mutex-guarded RefundRepository with the same
// semantics as the PostgreSQL implementation: unique idempotency keys and
// status-guarded updates.
type inMemoryRefundRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.RefundRequest
	byKey   map[string]uuid.UUID
	creates int
}

func newInMemoryRefundRepo() *inMemoryRefundRepo {
	return &inMemoryRefundRepo{
		byID:  make(map[uuid.UUID]*domain.RefundRequest),
		byKey: make(map[string]uuid.UUID),
	}
}

func (s *inMemoryRefundRepo) Create(_ context.Context, r *domain.RefundRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byKey[r.IdempotencyKey]; exists {
		return ports.ErrDuplicateIdempotencyKey
	}
	cp := copyRefund(r)
	s.byID[r.ID] = cp
	s.byKey[r.IdempotencyKey] = r.ID
	s.creates++
	return nil
}

func (s *inMemoryRefundRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.RefundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.byID[id]; ok {
		return copyRefund(r), nil
	}
	return nil, nil
}

func (s *inMemoryRefundRepo) GetByIdempotencyKey(_ context.Context, key string) (*domain.RefundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byKey[key]; ok {
		return copyRefund(s.byID[id]), nil
	}
	return nil, nil
}

func (s *inMemoryRefundRepo) GetByApprovalID(_ context.Context, approvalID string) (*domain.RefundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.byID {
		if r.ApprovalID != nil && *r.ApprovalID == approvalID {
			return copyRefund(r), nil
		}
	}
	return nil, nil
}

func (s *inMemoryRefundRepo) GetByGatewayReference(_ context.Context, reference string) (*domain.RefundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.byID {
		if r.GatewayReference != nil && *r.GatewayReference == reference {
			return copyRefund(r), nil
		}
	}
	return nil, nil
}

func (s *inMemoryRefundRepo) UpdateStatus(_ context.Context, id uuid.UUID, upd ports.StatusUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok || r.Status != upd.From {
		return false, nil
	}
	r.Status = upd.Change.Status
	r.StatusHistory = append(r.StatusHistory, upd.Change)
	if upd.ApprovalID != nil {
		r.ApprovalID = upd.ApprovalID
	}
	if upd.GatewayReference != nil {
		r.GatewayReference = upd.GatewayReference
	}
	if upd.ProcessedAt != nil {
		r.ProcessedAt = upd.ProcessedAt
	}
	if upd.CompletedAt != nil {
		r.CompletedAt = upd.CompletedAt
	}
	return true, nil
}

func (s *inMemoryRefundRepo) AppendProcessingError(_ context.Context, id uuid.UUID, perr domain.ProcessingError) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.byID[id]; ok {
		r.ProcessingErrors = append(r.ProcessingErrors, perr)
	}
	return nil
}

func (s *inMemoryRefundRepo) createCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

func copyRefund(r *domain.RefundRequest) *domain.RefundRequest {
	cp := *r
	cp.StatusHistory = append([]domain.StatusChange(nil), r.StatusHistory...)
	cp.ProcessingErrors = append([]domain.ProcessingError(nil), r.ProcessingErrors...)
	return &cp
}

// --- Stub collaborators ---

type stubTransactionLookup struct {
	transactions map[string]*domain.Transaction
}

func (s *stubTransactionLookup) GetTransaction(_ context.Context, id string) (*domain.Transaction, error) {
	return s.transactions[id], nil
}

type stubComplianceGate struct {
	violations []string
}

func (s *stubComplianceGate) Validate(context.Context, *domain.RefundRequest, *domain.Transaction) (*ports.ComplianceResult, error) {
	if len(s.violations) > 0 {
		return &ports.ComplianceResult{Compliant: false, Violations: s.violations}, nil
	}
	return &ports.ComplianceResult{Compliant: true}, nil
}

type stubApprovalWorkflow struct {
	mu       sync.Mutex
	tickets  map[string]ports.ApprovalDecision
	canceled []string
}

func newStubApprovalWorkflow() *stubApprovalWorkflow {
	return &stubApprovalWorkflow{tickets: make(map[string]ports.ApprovalDecision)}
}

func (s *stubApprovalWorkflow) CreateApprovalRequest(_ context.Context, r *domain.RefundRequest) (*ports.ApprovalTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := "apr-" + r.ID.String()
	s.tickets[id] = ports.ApprovalPending
	return &ports.ApprovalTicket{ApprovalID: id, CurrentApprovers: []string{"approver_001"}}, nil
}

func (s *stubApprovalWorkflow) GetApprovalStatus(_ context.Context, approvalID string) (ports.ApprovalDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets[approvalID], nil
}

func (s *stubApprovalWorkflow) CancelApprovalRequest(_ context.Context, approvalID, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceled = append(s.canceled, approvalID)
	return nil
}

// stubGatewayClient implements service.GatewayClient with a fixed outcome.
type stubGatewayClient struct {
	mu         sync.Mutex
	succeed    bool
	dispatches int
}

func (s *stubGatewayClient) Refund(_ context.Context, r *domain.RefundRequest, _ *domain.Transaction) (*ports.DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatches++
	if !s.succeed {
		return &ports.DispatchResult{Success: false, ErrorCode: "INSUFFICIENT_FUNDS", ErrorMessage: "acquirer declined"}, nil
	}
	return &ports.DispatchResult{Success: true, GatewayReference: "gw-" + r.ID.String()}, nil
}

type stubParameterResolver struct {
	values map[string]string // merchantID -> threshold
}

func (s *stubParameterResolver) ResolveParameter(_ context.Context, _, merchantID string) (string, error) {
	return s.values[merchantID], nil
}

type stubEventPublisher struct {
	mu     sync.Mutex
	events []string
}

func (s *stubEventPublisher) Publish(_ context.Context, eventType string, _ any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, eventType)
	return nil
}

type stubNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (s *stubNotifier) Send(_ context.Context, notificationType, _, _ string, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, notificationType)
	return nil
}

// settledTransaction returns a refundable transaction fixture.
func settledTransaction(id string) *domain.Transaction {
	return &domain.Transaction{
		ID:         id,
		MerchantID: "mer_001",
		Amount:     decimal.RequireFromString("500.00"),
		Currency:   "USD",
		Status:     domain.TransactionStatusSettled,
	}
}
