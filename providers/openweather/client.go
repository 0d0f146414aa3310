// Package openweather is a thin client for the OpenWeather current-weather
// and 5-day forecast endpoints.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client handles OpenWeather API requests
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new OpenWeather API client
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    "https://api.openweathermap.org/data/2.5",
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current is the decoded current-conditions payload.
type Current struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // meters per second
	} `json:"wind"`
}

// ForecastEntry is one 3-hour bucket of the forecast payload.
type ForecastEntry struct {
	DtTxt string `json:"dt_txt"` // "2025-06-01 12:00:00"
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Forecast is the decoded 5-day/3-hour forecast payload.
type Forecast struct {
	List []ForecastEntry `json:"list"`
}

// CurrentWeather fetches current conditions for a city in metric units.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*Current, error) {
	var current Current
	if err := c.get(ctx, "/weather", city, &current); err != nil {
		return nil, err
	}
	if len(current.Weather) == 0 {
		return nil, fmt.Errorf("empty weather payload for %q", city)
	}
	return &current, nil
}

// FiveDayForecast fetches the 3-hour interval forecast for a city.
func (c *Client) FiveDayForecast(ctx context.Context, city string) (*Forecast, error) {
	var forecast Forecast
	if err := c.get(ctx, "/forecast", city, &forecast); err != nil {
		return nil, err
	}
	if len(forecast.List) == 0 {
		return nil, fmt.Errorf("empty forecast payload for %q", city)
	}
	return &forecast, nil
}

func (c *Client) get(ctx context.Context, path, city string, out interface{}) error {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.APIKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
