package exchangerate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestRates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/JPY", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result":               "success",
			"base_code":            "JPY",
			"time_last_update_utc": "Sun, 01 Jun 2025 00:00:01 +0000",
			"conversion_rates":     map[string]float64{"USD": 0.0067, "INR": 0.56, "GBP": 0.0053, "EUR": 0.0062},
		})
	}))
	defer ts.Close()

	c := NewClient("test-key")
	c.BaseURL = ts.URL

	latest, err := c.LatestRates(context.Background(), "JPY")
	assert.NoError(t, err)
	assert.Equal(t, "JPY", latest.BaseCode)
	assert.Equal(t, 0.0067, latest.ConversionRates["USD"])
}

func TestLatestRates_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"result": "error"})
	}))
	defer ts.Close()

	c := NewClient("test-key")
	c.BaseURL = ts.URL

	_, err := c.LatestRates(context.Background(), "XXX")
	assert.Error(t, err)
}
