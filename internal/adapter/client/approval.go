package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// ApprovalClient implements ports.ApprovalWorkflow against the approvals
// service.
type ApprovalClient struct {
	baseClient
}

// NewApprovalClient creates an approvals-service client.
func NewApprovalClient(baseURL string, timeout time.Duration, log zerolog.Logger) *ApprovalClient {
	return &ApprovalClient{baseClient: newBaseClient(baseURL, timeout, log)}
}

type createApprovalRequest struct {
	RefundID    string `json:"refund_id"`
	MerchantID  string `json:"merchant_id"`
	RequestorID string `json:"requestor_id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Reason      string `json:"reason,omitempty"`
}

// CreateApprovalRequest opens an approval ticket for the refund.
func (c *ApprovalClient) CreateApprovalRequest(ctx context.Context, r *domain.RefundRequest) (*ports.ApprovalTicket, error) {
	req := createApprovalRequest{
		RefundID:    r.ID.String(),
		MerchantID:  r.MerchantID,
		RequestorID: r.RequestorID,
		Amount:      r.Amount.String(),
		Currency:    r.Currency,
		Reason:      r.Reason,
	}

	var ticket ports.ApprovalTicket
	if _, err := c.doJSON(ctx, http.MethodPost, "/internal/v1/approvals", req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetApprovalStatus reads the current decision on an approval ticket.
func (c *ApprovalClient) GetApprovalStatus(ctx context.Context, approvalID string) (ports.ApprovalDecision, error) {
	var body struct {
		Status string `json:"status"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/internal/v1/approvals/"+url.PathEscape(approvalID), nil, &body); err != nil {
		return "", err
	}
	return ports.ApprovalDecision(body.Status), nil
}

// CancelApprovalRequest withdraws an open approval ticket.
func (c *ApprovalClient) CancelApprovalRequest(ctx context.Context, approvalID, reason string) error {
	req := map[string]string{"reason": reason}
	_, err := c.doJSON(ctx, http.MethodPost, "/internal/v1/approvals/"+url.PathEscape(approvalID)+"/cancel", req, nil)
	return err
}
