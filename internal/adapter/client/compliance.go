package client

import (
	"context"
	"net/http"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// ComplianceClient implements ports.ComplianceGate against the compliance
// service.
type ComplianceClient struct {
	baseClient
}

// NewComplianceClient creates a compliance-service client.
func NewComplianceClient(baseURL string, timeout time.Duration, log zerolog.Logger) *ComplianceClient {
	return &ComplianceClient{baseClient: newBaseClient(baseURL, timeout, log)}
}

type complianceCheckRequest struct {
	RefundID             string `json:"refund_id"`
	TransactionID        string `json:"transaction_id"`
	MerchantID           string `json:"merchant_id"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	RefundMethod         string `json:"refund_method"`
	TransactionStatus    string `json:"transaction_status"`
	TransactionProcessed *time.Time `json:"transaction_processed_at,omitempty"`
}

// Validate runs the compliance rule evaluation for one refund request.
func (c *ComplianceClient) Validate(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*ports.ComplianceResult, error) {
	req := complianceCheckRequest{
		RefundID:             r.ID.String(),
		TransactionID:        r.TransactionID,
		MerchantID:           r.MerchantID,
		Amount:               r.Amount.String(),
		Currency:             r.Currency,
		RefundMethod:         string(r.RefundMethod),
		TransactionStatus:    string(txn.Status),
		TransactionProcessed: txn.ProcessedAt,
	}

	var result ports.ComplianceResult
	if _, err := c.doJSON(ctx, http.MethodPost, "/internal/v1/compliance/refund-checks", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
