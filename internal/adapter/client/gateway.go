package client

import (
	"context"
	"net/http"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// GatewayRefundClient implements service.GatewayClient against the payment
// gateway facade. One instance per payout rail, distinguished by path.
type GatewayRefundClient struct {
	baseClient
	path string
}

// NewGatewayRefundClient creates a gateway client posting refunds to path
// (e.g. "/internal/v1/refunds/card").
func NewGatewayRefundClient(baseURL, path string, timeout time.Duration, log zerolog.Logger) *GatewayRefundClient {
	return &GatewayRefundClient{baseClient: newBaseClient(baseURL, timeout, log), path: path}
}

type gatewayRefundRequest struct {
	RefundID       string  `json:"refund_id"`
	TransactionID  string  `json:"transaction_id"`
	MerchantID     string  `json:"merchant_id"`
	Amount         string  `json:"amount"`
	Currency       string  `json:"currency"`
	RefundMethod   string  `json:"refund_method"`
	BankAccountID  *string `json:"bank_account_id,omitempty"`
	IdempotencyKey string  `json:"idempotency_key"`
}

// Refund executes one refund through the gateway. Declines come back as an
// unsuccessful DispatchResult, not an error.
func (c *GatewayRefundClient) Refund(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*ports.DispatchResult, error) {
	req := gatewayRefundRequest{
		RefundID:       r.ID.String(),
		TransactionID:  r.TransactionID,
		MerchantID:     r.MerchantID,
		Amount:         r.Amount.String(),
		Currency:       r.Currency,
		RefundMethod:   string(r.RefundMethod),
		BankAccountID:  r.BankAccountID,
		IdempotencyKey: r.IdempotencyKey,
	}

	var result ports.DispatchResult
	if _, err := c.doJSON(ctx, http.MethodPost, c.path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
