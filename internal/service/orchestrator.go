package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
	"github.com/asharkov-briklabs/refunds-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// changedBySystem marks transitions performed by the orchestrator itself.
const changedBySystem = "system"

// OrchestratorConfig holds the tunables of the refund lifecycle.
type OrchestratorConfig struct {
	// ApprovalThresholdParam is resolved per merchant; amounts at or above
	// the resolved value require human approval.
	ApprovalThresholdParam string
	NotifyChannel          string
}

// Orchestrator owns the refund lifecycle state machine. It is the only
// writer of refund records besides the webhook reconciliation path, which
// is also implemented here (HandleGatewayWebhook) so both paths share one
// transition function.
type Orchestrator struct {
	repo         ports.RefundRepository
	guard        *IdempotencyGuard
	transactions ports.TransactionLookup
	compliance   ports.ComplianceGate
	approvals    ports.ApprovalWorkflow
	dispatcher   ports.PaymentDispatcher
	parameters   ports.ParameterResolver
	events       ports.EventPublisher
	notifier     ports.NotificationService
	adapters     map[string]ports.GatewayAdapter
	cfg          OrchestratorConfig
	log          zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	repo ports.RefundRepository,
	guard *IdempotencyGuard,
	transactions ports.TransactionLookup,
	compliance ports.ComplianceGate,
	approvals ports.ApprovalWorkflow,
	dispatcher ports.PaymentDispatcher,
	parameters ports.ParameterResolver,
	events ports.EventPublisher,
	notifier ports.NotificationService,
	adapters []ports.GatewayAdapter,
	cfg OrchestratorConfig,
	log zerolog.Logger,
) *Orchestrator {
	byType := make(map[string]ports.GatewayAdapter, len(adapters))
	for _, a := range adapters {
		byType[a.GatewayType()] = a
	}
	return &Orchestrator{
		repo:         repo,
		guard:        guard,
		transactions: transactions,
		compliance:   compliance,
		approvals:    approvals,
		dispatcher:   dispatcher,
		parameters:   parameters,
		events:       events,
		notifier:     notifier,
		adapters:     byType,
		cfg:          cfg,
		log:          log,
	}
}

// Create runs one refund creation attempt end to end: idempotency guard,
// transaction eligibility, amount validation, DRAFT persistence, compliance
// gate, and either the approval detour or immediate processing.
func (s *Orchestrator) Create(ctx context.Context, input ports.CreateRefundInput) (*domain.RefundRequest, error) {
	method := input.RefundMethod
	if method == "" {
		method = domain.MethodOriginalPayment
	}
	if !method.Valid() {
		return nil, apperror.ErrInvalidRefundMethod(string(method))
	}
	if method == domain.MethodOther && (input.BankAccountID == nil || *input.BankAccountID == "") {
		return nil, apperror.ErrMissingBankAccount()
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	existing, release, err := s.guard.Admit(ctx, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Info().
			Str("refund_id", existing.ID.String()).
			Str("idempotency_key", input.IdempotencyKey).
			Msg("idempotent replay, returning existing refund request")
		return existing, nil
	}
	defer release()

	txn, err := s.transactions.GetTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, collaboratorErr("transactions-service", err)
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("original transaction")
	}
	if !txn.IsRefundable() {
		return nil, apperror.ErrTransactionNotEligible(fmt.Sprintf("transaction status is %s", txn.Status))
	}
	if input.Amount.GreaterThan(txn.Amount) {
		return nil, apperror.ErrAmountExceedsOriginal()
	}

	r := domain.NewRefundRequest(txn, input.Amount, method, input.BankAccountID, input.Reason, input.RequestorID, input.IdempotencyKey)
	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, ports.ErrDuplicateIdempotencyKey) {
			// A competing creation slipped past the lease and won the
			// unique index. Its record is the canonical one.
			winner, gerr := s.repo.GetByIdempotencyKey(ctx, input.IdempotencyKey)
			if gerr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, apperror.InternalError(fmt.Errorf("create refund request: %w", err))
	}

	s.log.Info().
		Str("refund_id", r.ID.String()).
		Str("transaction_id", r.TransactionID).
		Str("amount", r.Amount.String()).
		Msg("refund request created")

	result, err := s.compliance.Validate(ctx, r, txn)
	if err != nil {
		return nil, collaboratorErr("compliance-service", err)
	}
	if !result.Compliant {
		reason := strings.Join(result.Violations, "; ")
		if terr := s.transition(ctx, r, domain.StatusValidationFailed, changedBySystem, reason, nil); terr != nil {
			return nil, terr
		}
		return nil, apperror.ErrComplianceRejected(result.Violations)
	}

	if err := s.transition(ctx, r, domain.StatusSubmitted, changedBySystem, "compliance checks passed", nil); err != nil {
		return nil, err
	}

	required, err := s.approvalRequired(ctx, r)
	if err != nil {
		return nil, err
	}
	if required {
		ticket, err := s.approvals.CreateApprovalRequest(ctx, r)
		if err != nil {
			return nil, collaboratorErr("approvals-service", err)
		}
		extra := &transitionExtra{approvalID: &ticket.ApprovalID}
		if err := s.transition(ctx, r, domain.StatusPendingApproval, changedBySystem, "approval threshold reached", extra); err != nil {
			return nil, err
		}
		for _, approver := range ticket.CurrentApprovers {
			s.notify(ctx, ports.NotificationApprovalRequested, approver, s.notifyDetails(r))
		}
		return r, nil
	}

	return s.process(ctx, r, txn, false)
}

// Process drives a SUBMITTED (or approved PENDING_APPROVAL) refund through
// gateway dispatch. The record never exits this method in PROCESSING.
func (s *Orchestrator) Process(ctx context.Context, id uuid.UUID) (*domain.RefundRequest, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.process(ctx, r, nil, false)
}

// HandleApprovalDecision applies an external approval outcome.
func (s *Orchestrator) HandleApprovalDecision(ctx context.Context, approvalID string, approved bool, notes string) (*domain.RefundRequest, error) {
	r, err := s.repo.GetByApprovalID(ctx, approvalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup by approval id: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("refund request")
	}
	if r.Status != domain.StatusPendingApproval {
		target := domain.StatusProcessing
		if !approved {
			target = domain.StatusRejected
		}
		return nil, apperror.ErrInvalidStateTransition(string(r.Status), string(target))
	}

	if approved {
		return s.process(ctx, r, nil, true)
	}

	reason := notes
	if reason == "" {
		reason = "approval rejected"
	}
	if err := s.transition(ctx, r, domain.StatusRejected, "approver", reason, nil); err != nil {
		return nil, err
	}
	s.notify(ctx, ports.NotificationRefundRejected, r.RequestorID, s.notifyDetails(r, "notes", notes))
	return r, nil
}

// Cancel cancels a refund that has not yet entered PROCESSING. A record in
// PENDING_APPROVAL first cancels its outstanding approval cooperatively.
func (s *Orchestrator) Cancel(ctx context.Context, id uuid.UUID, reason, actorID string) (*domain.RefundRequest, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != r.RequestorID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if !r.Status.IsCancelable() {
		return nil, apperror.ErrInvalidStateTransition(string(r.Status), string(domain.StatusCanceled))
	}

	if r.Status == domain.StatusPendingApproval && r.ApprovalID != nil {
		if err := s.approvals.CancelApprovalRequest(ctx, *r.ApprovalID, reason); err != nil {
			return nil, collaboratorErr("approvals-service", err)
		}
	}

	if reason == "" {
		reason = "canceled by requestor"
	}
	if err := s.transition(ctx, r, domain.StatusCanceled, actorID, reason, nil); err != nil {
		return nil, err
	}
	s.notify(ctx, ports.NotificationRefundCanceled, r.RequestorID, s.notifyDetails(r))
	return r, nil
}

// Retry re-submits a FAILED refund. Prior processing errors are preserved;
// retries append history, they never rewrite it.
func (s *Orchestrator) Retry(ctx context.Context, id uuid.UUID, actorID string) (*domain.RefundRequest, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != r.RequestorID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if r.Status != domain.StatusFailed {
		return nil, apperror.ErrInvalidStateTransition(string(r.Status), string(domain.StatusSubmitted))
	}
	if err := s.transition(ctx, r, domain.StatusSubmitted, actorID, "manual retry", nil); err != nil {
		return nil, err
	}
	return s.process(ctx, r, nil, false)
}

// HandleGatewayWebhook reconciles an asynchronous gateway callback against
// the state machine. Idempotent and monotonic: duplicate terminal statuses
// are no-ops and nothing ever moves a record out of COMPLETED. Returns
// false, never an error, when the payload cannot be applied — the transport
// retries delivery and must not be amplified into application failures.
func (s *Orchestrator) HandleGatewayWebhook(ctx context.Context, gatewayType string, payload []byte) bool {
	adapter, ok := s.adapters[gatewayType]
	if !ok {
		s.log.Warn().Str("gateway", gatewayType).Msg("webhook from unknown gateway type")
		return false
	}

	hook, err := adapter.Normalize(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("gateway", gatewayType).Msg("webhook payload could not be normalized")
		return false
	}
	if hook.GatewayReference == "" {
		s.log.Warn().Str("gateway", gatewayType).Msg("webhook carries no gateway reference")
		return false
	}
	if hook.Status != domain.StatusCompleted && hook.Status != domain.StatusFailed {
		s.log.Warn().Str("gateway", gatewayType).Str("status", string(hook.Status)).Msg("webhook carries unsupported status")
		return false
	}

	r, err := s.repo.GetByGatewayReference(ctx, hook.GatewayReference)
	if err != nil {
		s.log.Error().Err(err).Str("gateway_reference", hook.GatewayReference).Msg("webhook record lookup failed")
		return false
	}
	if r == nil {
		s.log.Warn().Str("gateway_reference", hook.GatewayReference).Msg("webhook references unknown refund")
		return false
	}

	if r.Status == domain.StatusCompleted {
		s.log.Debug().
			Str("refund_id", r.ID.String()).
			Str("webhook_status", string(hook.Status)).
			Msg("refund already COMPLETED, webhook ignored")
		return true
	}
	if r.Status == hook.Status {
		// Duplicate FAILED delivery.
		return true
	}
	if err := domain.ValidateTransition(r.Status, hook.Status); err != nil {
		s.log.Warn().Err(err).Str("refund_id", r.ID.String()).Msg("webhook transition not allowed")
		return false
	}

	changedBy := "gateway:" + gatewayType

	if hook.Status == domain.StatusFailed {
		if hook.ErrorCode != "" || hook.ErrorMessage != "" {
			s.appendProcessingError(ctx, r, hook.ErrorCode, hook.ErrorMessage)
		}
		if err := s.transition(ctx, r, domain.StatusFailed, changedBy, "gateway reported failure", nil); err != nil {
			s.log.Warn().Err(err).Str("refund_id", r.ID.String()).Msg("webhook failure could not be applied")
			return false
		}
		s.notify(ctx, ports.NotificationRefundFailed, r.RequestorID, s.notifyDetails(r))
		return true
	}

	now := time.Now().UTC()
	extra := &transitionExtra{completedAt: &now}
	if r.ProcessedAt == nil {
		extra.processedAt = &now
	}
	if err := s.transition(ctx, r, domain.StatusCompleted, changedBy, "gateway confirmed completion", extra); err != nil {
		// Raced with the synchronous dispatch path. An already-COMPLETED
		// record means the outcome agrees, so the delivery is handled.
		if cur, gerr := s.repo.GetByID(ctx, r.ID); gerr == nil && cur != nil && cur.Status == domain.StatusCompleted {
			return true
		}
		s.log.Warn().Err(err).Str("refund_id", r.ID.String()).Msg("webhook completion could not be applied")
		return false
	}
	s.notify(ctx, ports.NotificationRefundCompleted, r.RequestorID, s.notifyDetails(r))
	return true
}

// process moves a refund through PROCESSING and dispatch. txn may be nil,
// in which case the original transaction is re-fetched. approvalGranted
// short-circuits the approval status check when the decision was just
// delivered by the approval callback.
func (s *Orchestrator) process(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction, approvalGranted bool) (*domain.RefundRequest, error) {
	switch r.Status {
	case domain.StatusSubmitted:
	case domain.StatusPendingApproval:
		if !approvalGranted {
			if r.ApprovalID == nil {
				return nil, apperror.ErrApprovalNotGranted()
			}
			decision, err := s.approvals.GetApprovalStatus(ctx, *r.ApprovalID)
			if err != nil {
				return nil, collaboratorErr("approvals-service", err)
			}
			if decision != ports.ApprovalApproved {
				return nil, apperror.ErrApprovalNotGranted()
			}
		}
	default:
		return nil, apperror.ErrInvalidStateTransition(string(r.Status), string(domain.StatusProcessing))
	}

	if txn == nil {
		var err error
		txn, err = s.transactions.GetTransaction(ctx, r.TransactionID)
		if err != nil {
			return nil, collaboratorErr("transactions-service", err)
		}
		if txn == nil {
			return nil, apperror.ErrNotFound("original transaction")
		}
	}

	if err := s.transition(ctx, r, domain.StatusProcessing, changedBySystem, "dispatching to payment gateway", nil); err != nil {
		return nil, err
	}

	result, dispatchErr := s.dispatch(ctx, r, txn)
	if dispatchErr != nil {
		// Unexpected failure at the processing boundary: record it, force
		// the record to FAILED, then re-raise so the caller is informed.
		s.failProcessing(ctx, r, domain.ProcessingErrorCodeSystem, dispatchErr.Error())
		return nil, apperror.InternalError(dispatchErr)
	}
	if !result.Success {
		code := result.ErrorCode
		if code == "" {
			code = "GATEWAY_DECLINED"
		}
		s.failProcessing(ctx, r, code, result.ErrorMessage)
		return r, nil
	}

	now := time.Now().UTC()
	extra := &transitionExtra{
		gatewayReference: &result.GatewayReference,
		processedAt:      &now,
		completedAt:      &now,
	}
	if err := s.transition(ctx, r, domain.StatusCompleted, changedBySystem, "gateway dispatch succeeded", extra); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("refund_id", r.ID.String()).
		Str("gateway_reference", result.GatewayReference).
		Msg("refund completed")
	s.notify(ctx, ports.NotificationRefundCompleted, r.RequestorID, s.notifyDetails(r))
	return r, nil
}

// dispatch invokes the payment-method dispatcher behind a panic boundary.
func (s *Orchestrator) dispatch(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (result *ports.DispatchResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = fmt.Errorf("panic during refund dispatch: %v", p)
		}
	}()
	result, err = s.dispatcher.ProcessRefund(ctx, r, txn)
	if err == nil && result == nil {
		err = errors.New("dispatcher returned no result")
	}
	return result, err
}

// failProcessing records a processing error and drives the record to
// FAILED. If a concurrent webhook already finished the record, the terminal
// outcome wins and is reloaded instead.
func (s *Orchestrator) failProcessing(ctx context.Context, r *domain.RefundRequest, code, message string) {
	s.appendProcessingError(ctx, r, code, message)
	if err := s.transition(ctx, r, domain.StatusFailed, changedBySystem, message, nil); err != nil {
		s.log.Warn().Err(err).Str("refund_id", r.ID.String()).Msg("could not mark refund FAILED after dispatch failure")
		if cur, gerr := s.repo.GetByID(ctx, r.ID); gerr == nil && cur != nil {
			*r = *cur
		}
		return
	}
	s.notify(ctx, ports.NotificationRefundFailed, r.RequestorID, s.notifyDetails(r))
}

func (s *Orchestrator) appendProcessingError(ctx context.Context, r *domain.RefundRequest, code, message string) {
	if code == "" {
		code = "GATEWAY_ERROR"
	}
	perr := domain.ProcessingError{Code: code, Message: message, OccurredAt: time.Now().UTC()}
	if err := s.repo.AppendProcessingError(ctx, r.ID, perr); err != nil {
		s.log.Error().Err(err).Str("refund_id", r.ID.String()).Msg("failed to persist processing error")
		return
	}
	r.ProcessingErrors = append(r.ProcessingErrors, perr)
}

// approvalRequired resolves the merchant's approval threshold. An unset
// parameter means no approval; an unparseable one fails closed.
func (s *Orchestrator) approvalRequired(ctx context.Context, r *domain.RefundRequest) (bool, error) {
	raw, err := s.parameters.ResolveParameter(ctx, s.cfg.ApprovalThresholdParam, r.MerchantID)
	if err != nil {
		return false, collaboratorErr("parameters-service", err)
	}
	if raw == "" {
		return false, nil
	}
	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		s.log.Warn().
			Str("merchant_id", r.MerchantID).
			Str("value", raw).
			Msg("unparseable approval threshold, requiring approval")
		return true, nil
	}
	return r.Amount.GreaterThanOrEqual(threshold), nil
}

// transitionExtra carries the fields written alongside a status change.
type transitionExtra struct {
	approvalID       *string
	gatewayReference *string
	processedAt      *time.Time
	completedAt      *time.Time
}

// transition is the single mutation path for refund status. It validates
// the transition table, applies a status-guarded update, mirrors the change
// on the in-memory aggregate, and publishes the status-changed event.
func (s *Orchestrator) transition(ctx context.Context, r *domain.RefundRequest, to domain.RefundStatus, changedBy, reason string, extra *transitionExtra) error {
	if err := domain.ValidateTransition(r.Status, to); err != nil {
		return apperror.ErrInvalidStateTransition(string(r.Status), string(to))
	}

	change := domain.StatusChange{
		Status:    to,
		ChangedBy: changedBy,
		Reason:    reason,
		ChangedAt: time.Now().UTC(),
	}
	upd := ports.StatusUpdate{From: r.Status, Change: change}
	if extra != nil {
		upd.ApprovalID = extra.approvalID
		upd.GatewayReference = extra.gatewayReference
		upd.ProcessedAt = extra.processedAt
		upd.CompletedAt = extra.completedAt
	}

	ok, err := s.repo.UpdateStatus(ctx, r.ID, upd)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update refund status: %w", err))
	}
	if !ok {
		return apperror.ErrConcurrentModification(r.ID.String())
	}

	old := r.Status
	r.Status = to
	r.StatusHistory = append(r.StatusHistory, change)
	if extra != nil {
		if extra.approvalID != nil {
			r.ApprovalID = extra.approvalID
		}
		if extra.gatewayReference != nil {
			r.GatewayReference = extra.gatewayReference
		}
		if extra.processedAt != nil {
			r.ProcessedAt = extra.processedAt
		}
		if extra.completedAt != nil {
			r.CompletedAt = extra.completedAt
		}
	}

	s.publishStatusChanged(ctx, r, old, change)
	return nil
}

// publishStatusChanged emits the domain event informing notifications and
// reporting. Best-effort: delivery guarantees belong to the messaging
// collaborator.
func (s *Orchestrator) publishStatusChanged(ctx context.Context, r *domain.RefundRequest, old domain.RefundStatus, change domain.StatusChange) {
	evt := domain.RefundStatusChangedEvent{
		RefundID:      r.ID.String(),
		TransactionID: r.TransactionID,
		MerchantID:    r.MerchantID,
		OldStatus:     old,
		NewStatus:     change.Status,
		Amount:        r.Amount,
		Currency:      r.Currency,
		ChangedBy:     change.ChangedBy,
		Reason:        change.Reason,
		OccurredAt:    change.ChangedAt,
	}
	if err := s.events.Publish(ctx, domain.EventRefundStatusChanged, evt); err != nil {
		s.log.Warn().Err(err).Str("refund_id", r.ID.String()).Msg("failed to publish status-changed event")
	}
}

func (s *Orchestrator) notify(ctx context.Context, notificationType, recipient string, details map[string]any) {
	if err := s.notifier.Send(ctx, notificationType, recipient, s.cfg.NotifyChannel, details); err != nil {
		s.log.Warn().Err(err).Str("type", notificationType).Str("recipient", recipient).Msg("notification delivery failed")
	}
}

// notifyDetails builds the shared notification context for a refund.
// Extra key/value pairs can be appended pairwise.
func (s *Orchestrator) notifyDetails(r *domain.RefundRequest, kv ...string) map[string]any {
	details := map[string]any{
		"refund_id":      r.ID.String(),
		"transaction_id": r.TransactionID,
		"merchant_id":    r.MerchantID,
		"amount":         r.Amount.String(),
		"currency":       r.Currency,
		"status":         string(r.Status),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		details[kv[i]] = kv[i+1]
	}
	return details
}

func (s *Orchestrator) load(ctx context.Context, id uuid.UUID) (*domain.RefundRequest, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load refund request: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("refund request")
	}
	return r, nil
}

// collaboratorErr passes through taxonomy errors from collaborator clients
// and wraps transport-level failures as SYS_002.
func collaboratorErr(name string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrCollaboratorUnavailable(name, err)
}
