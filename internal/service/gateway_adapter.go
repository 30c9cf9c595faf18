package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"
)

// StandardGatewayAdapter handles the flat JSON callback format used by the
// primary acquiring gateway:
//
//	{"reference": "...", "status": "succeeded", "error_code": "...", "error_message": "..."}
type StandardGatewayAdapter struct {
	gatewayType string
}

// NewStandardGatewayAdapter creates an adapter for the given gateway type.
func NewStandardGatewayAdapter(gatewayType string) *StandardGatewayAdapter {
	return &StandardGatewayAdapter{gatewayType: gatewayType}
}

func (a *StandardGatewayAdapter) GatewayType() string {
	return a.gatewayType
}

func (a *StandardGatewayAdapter) Normalize(payload []byte) (*ports.NormalizedWebhook, error) {
	var body struct {
		Reference    string `json:"reference"`
		Status       string `json:"status"`
		ErrorCode    string `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}

	status, err := normalizeGatewayStatus(body.Status)
	if err != nil {
		return nil, err
	}
	return &ports.NormalizedWebhook{
		GatewayReference: body.Reference,
		Status:           status,
		ErrorCode:        body.ErrorCode,
		ErrorMessage:     body.ErrorMessage,
	}, nil
}

// LegacyGatewayAdapter handles the nested envelope format of the legacy
// processor, which wraps the outcome in an "event" object and reports
// failures as a single freeform string:
//
//	{"event": {"txn_ref": "...", "outcome": "OK" | "DECLINED", "failure_reason": "..."}}
type LegacyGatewayAdapter struct {
	gatewayType string
}

// NewLegacyGatewayAdapter creates an adapter for the legacy processor.
func NewLegacyGatewayAdapter(gatewayType string) *LegacyGatewayAdapter {
	return &LegacyGatewayAdapter{gatewayType: gatewayType}
}

func (a *LegacyGatewayAdapter) GatewayType() string {
	return a.gatewayType
}

func (a *LegacyGatewayAdapter) Normalize(payload []byte) (*ports.NormalizedWebhook, error) {
	var body struct {
		Event struct {
			TxnRef        string `json:"txn_ref"`
			Outcome       string `json:"outcome"`
			FailureReason string `json:"failure_reason"`
		} `json:"event"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}

	hook := &ports.NormalizedWebhook{GatewayReference: body.Event.TxnRef}
	switch strings.ToUpper(body.Event.Outcome) {
	case "OK":
		hook.Status = domain.StatusCompleted
	case "DECLINED":
		hook.Status = domain.StatusFailed
		hook.ErrorCode = "GATEWAY_DECLINED"
		hook.ErrorMessage = body.Event.FailureReason
	default:
		return nil, fmt.Errorf("unknown webhook outcome %q", body.Event.Outcome)
	}
	return hook, nil
}

// normalizeGatewayStatus maps the status vocabulary gateways actually send
// to the two terminal statuses the reconciler accepts.
func normalizeGatewayStatus(raw string) (domain.RefundStatus, error) {
	switch strings.ToLower(raw) {
	case "succeeded", "success", "completed":
		return domain.StatusCompleted, nil
	case "failed", "declined", "error":
		return domain.StatusFailed, nil
	default:
		return "", fmt.Errorf("unknown webhook status %q", raw)
	}
}
