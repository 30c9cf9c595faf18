package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransactionClient implements ports.TransactionLookup against the
// transactions service.
type TransactionClient struct {
	baseClient
}

// NewTransactionClient creates a transactions-service client.
func NewTransactionClient(baseURL string, timeout time.Duration, log zerolog.Logger) *TransactionClient {
	return &TransactionClient{baseClient: newBaseClient(baseURL, timeout, log)}
}

type transactionResponse struct {
	ID          string     `json:"id"`
	MerchantID  string     `json:"merchant_id"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// GetTransaction resolves the original transaction. Returns nil, nil when
// the transactions service reports 404.
func (c *TransactionClient) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var body transactionResponse
	status, err := c.doJSON(ctx, http.MethodGet,
		"/internal/v1/transactions/"+url.PathEscape(transactionID), nil, &body,
		http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse transaction amount %q: %w", body.Amount, err)
	}
	return &domain.Transaction{
		ID:          body.ID,
		MerchantID:  body.MerchantID,
		Amount:      amount,
		Currency:    body.Currency,
		Status:      domain.TransactionStatus(body.Status),
		ProcessedAt: body.ProcessedAt,
	}, nil
}
