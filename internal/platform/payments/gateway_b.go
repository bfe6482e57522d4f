package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CheckoutSession mirrors the session object returned by the hosted-checkout
// gateway. PaymentStatus is "paid" once the customer completed payment;
// PaymentIntentID is the gateway-side charge reference.
type CheckoutSession struct {
	ID              string `json:"id"`
	PaymentStatus   string `json:"payment_status"`
	PaymentIntentID string `json:"payment_intent"`
}

// GatewayBClient retrieves checkout sessions from the hosted-checkout
// provider's API using the merchant secret key.
type GatewayBClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewGatewayBClient creates a client for the hosted-checkout gateway.
func NewGatewayBClient(baseURL, secretKey string) *GatewayBClient {
	return &GatewayBClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetCheckoutSession retrieves a checkout session by its ID so the caller can
// verify the payment server-side instead of trusting the redirect.
func (c *GatewayBClient) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build checkout session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout session response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("checkout session lookup returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session response: %w", err)
	}

	return &session, nil
}
