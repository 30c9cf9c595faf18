package client

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// NotificationClient implements ports.NotificationService against the
// notifications service.
type NotificationClient struct {
	baseClient
}

// NewNotificationClient creates a notifications-service client.
func NewNotificationClient(baseURL string, timeout time.Duration, log zerolog.Logger) *NotificationClient {
	return &NotificationClient{baseClient: newBaseClient(baseURL, timeout, log)}
}

type sendNotificationRequest struct {
	Type      string         `json:"type"`
	Recipient string         `json:"recipient"`
	Channel   string         `json:"channel"`
	Details   map[string]any `json:"details,omitempty"`
}

// Send delivers one notification. The notifications service owns templating
// and channel fan-out.
func (c *NotificationClient) Send(ctx context.Context, notificationType, recipient, channel string, details map[string]any) error {
	req := sendNotificationRequest{
		Type:      notificationType,
		Recipient: recipient,
		Channel:   channel,
		Details:   details,
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/internal/v1/notifications", req, nil)
	return err
}
