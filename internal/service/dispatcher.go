package service

import (
	"context"
	"fmt"

	"github.com/asharkov-briklabs/refunds-service/internal/core/domain"
	"github.com/asharkov-briklabs/refunds-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// GatewayClient executes one refund against a concrete payout rail.
type GatewayClient interface {
	Refund(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*ports.DispatchResult, error)
}

// MethodDispatcher routes a refund to the gateway client registered for its
// refund method. It implements ports.PaymentDispatcher.
type MethodDispatcher struct {
	clients map[domain.RefundMethod]GatewayClient
	log     zerolog.Logger
}

// NewMethodDispatcher creates a dispatcher over the given method routes.
func NewMethodDispatcher(clients map[domain.RefundMethod]GatewayClient, log zerolog.Logger) *MethodDispatcher {
	return &MethodDispatcher{clients: clients, log: log}
}

func (d *MethodDispatcher) ProcessRefund(ctx context.Context, r *domain.RefundRequest, txn *domain.Transaction) (*ports.DispatchResult, error) {
	client, ok := d.clients[r.RefundMethod]
	if !ok {
		return nil, fmt.Errorf("no gateway client registered for refund method %s", r.RefundMethod)
	}

	d.log.Debug().
		Str("refund_id", r.ID.String()).
		Str("refund_method", string(r.RefundMethod)).
		Msg("dispatching refund")

	result, err := client.Refund(ctx, r, txn)
	if err != nil {
		return nil, fmt.Errorf("gateway refund for method %s: %w", r.RefundMethod, err)
	}
	if result.Success && result.GatewayReference == "" {
		return nil, fmt.Errorf("gateway accepted refund %s without a reference", r.ID)
	}
	return result, nil
}
