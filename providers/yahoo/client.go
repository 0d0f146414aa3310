// Package yahoo is a thin client for the Yahoo Finance chart endpoint,
// used to read recent daily closes for market indices. No credential is
// required.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client handles Yahoo Finance chart requests
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new Yahoo Finance client
func NewClient() *Client {
	return &Client{
		BaseURL:    "https://query1.finance.yahoo.com",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Closes holds the most recent daily close and the one before it.
type Closes struct {
	Last float64
	Prev float64
	// HasPrev is false when only a single close was available.
	HasPrev bool
}

// RecentCloses fetches the last two daily closing values for a ticker.
func (c *Client) RecentCloses(ctx context.Context, ticker string) (*Closes, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=5d&interval=1d", c.BaseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for %q", ticker)
	}

	// Nulls appear for holidays; keep the trailing non-null closes.
	var closes []float64
	for _, v := range chart.Chart.Result[0].Indicators.Quote[0].Close {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no closes for %q", ticker)
	}

	out := &Closes{Last: closes[len(closes)-1]}
	if len(closes) >= 2 {
		out.Prev = closes[len(closes)-2]
		out.HasPrev = true
	}
	return out, nil
}
