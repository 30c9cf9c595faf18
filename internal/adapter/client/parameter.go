package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// ParameterClient implements ports.ParameterResolver against the merchant
// parameters service. The hierarchy walk (merchant, program, bank, default)
// happens server-side.
type ParameterClient struct {
	baseClient
}

// NewParameterClient creates a parameters-service client.
func NewParameterClient(baseURL string, timeout time.Duration, log zerolog.Logger) *ParameterClient {
	return &ParameterClient{baseClient: newBaseClient(baseURL, timeout, log)}
}

// ResolveParameter resolves a parameter for a merchant. Returns "" when the
// parameter is not set at any level of the hierarchy.
func (c *ParameterClient) ResolveParameter(ctx context.Context, name, merchantID string) (string, error) {
	path := "/internal/v1/parameters/" + url.PathEscape(name) + "?merchant_id=" + url.QueryEscape(merchantID)

	var body struct {
		Value string `json:"value"`
	}
	status, err := c.doJSON(ctx, http.MethodGet, path, nil, &body, http.StatusNotFound)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", nil
	}
	return body.Value, nil
}
