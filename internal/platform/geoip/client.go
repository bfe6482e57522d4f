package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Location is the subset of the lookup response the pricing path cares about.
type Location struct {
	CountryCode string `json:"country_code"`
}

// Client calls an external IP geolocation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geolocation client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Lookup resolves the country code for an IP address.
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geoip request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geoip response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geoip lookup returned status %d", resp.StatusCode)
	}

	var location Location
	if err := json.Unmarshal(body, &location); err != nil {
		return nil, fmt.Errorf("failed to decode geoip response: %w", err)
	}

	return &location, nil
}
