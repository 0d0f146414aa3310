// Package exchangerate is a thin client for the ExchangeRate-API v6
// latest-rates endpoint. Requires an API key.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client handles ExchangeRate-API requests
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new ExchangeRate-API client
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    "https://v6.exchangerate-api.com/v6",
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestResponse is the decoded latest-rates payload.
type LatestResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	TimeLastUpdated string             `json:"time_last_update_utc"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// LatestRates returns conversion rates for a base currency code.
func (c *Client) LatestRates(ctx context.Context, base string) (*LatestResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.BaseURL, c.APIKey, base)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var latest LatestResponse
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if latest.Result != "success" {
		return nil, fmt.Errorf("API returned result %q", latest.Result)
	}

	return &latest, nil
}
