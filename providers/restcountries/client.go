// Package restcountries is a thin client for the REST Countries v3 API,
// used to resolve a country's official currency and capital. No credential
// is required.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client handles REST Countries API requests
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new REST Countries API client
func NewClient() *Client {
	return &Client{
		BaseURL:    "https://restcountries.com/v3.1",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Country is the subset of the REST Countries payload the tools need.
type Country struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Capital []string  `json:"capital"`
	LatLng  []float64 `json:"latlng"`
	Flag    string    `json:"flag"`
}

// LookupCountry returns the first match for a country name.
func (c *Client) LookupCountry(ctx context.Context, country string) (*Country, error) {
	endpoint := fmt.Sprintf("%s/name/%s", c.BaseURL, url.PathEscape(country))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to look up country: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var countries []Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("no match for country %q", country)
	}

	return &countries[0], nil
}
