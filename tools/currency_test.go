package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/providers/exchangerate"
	"github.com/devang92/wayfarer/providers/restcountries"
)

func TestCurrencyInfoLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/Japan", r.URL.Path)
		rw.Write([]byte(`[{
			"name": {"common": "Japan"},
			"currencies": {"JPY": {"name": "Japanese yen", "symbol": "¥"}},
			"capital": ["Tokyo"],
			"latlng": [36.0, 138.0],
			"flag": "🇯🇵"
		}]`))
	}))
	defer server.Close()

	client := restcountries.NewClient()
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	c := &Currency{Client: client, Cache: cache.NewMemory()}

	out := c.Info(context.Background(), "Japan")
	assert.Equal(t, "Japan", out.Country)
	assert.Equal(t, "JPY", out.CurrencyCode)
	assert.Equal(t, "Japanese yen", out.CurrencyName)
	assert.Equal(t, "¥", out.CurrencySymbol)
	assert.Equal(t, "Tokyo", out.Capital)
	assert.Equal(t, [2]float64{36.0, 138.0}, out.LatLng)
	assert.False(t, out.Sample)
}

func TestCurrencyInfoFallbackTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := restcountries.NewClient()
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	c := &Currency{Client: client}

	out := c.Info(context.Background(), "India")
	assert.Equal(t, "INR", out.CurrencyCode)
	assert.Equal(t, "New Delhi", out.Capital)
	assert.True(t, out.Sample)
	assert.Equal(t, "Fallback data used", out.Note)
}

func TestCurrencyInfoUnknownCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := restcountries.NewClient()
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	c := &Currency{Client: client}

	out := c.Info(context.Background(), "France")
	assert.Equal(t, "France", out.Country)
	assert.Equal(t, "N/A", out.CurrencyCode)
	assert.Equal(t, "Unknown", out.CurrencyName)
	assert.Equal(t, "Unknown", out.Capital)
	assert.True(t, out.Sample)
	assert.Equal(t, "Country not found", out.Note)
}

func TestCurrencyInfoNoClient(t *testing.T) {
	c := &Currency{}

	out := c.Info(context.Background(), "United Kingdom")
	assert.Equal(t, "GBP", out.CurrencyCode)
	assert.True(t, out.Sample)
}

func TestFXRatesNoCredential(t *testing.T) {
	f := &FX{}

	out := f.Rates(context.Background(), "JPY")
	assert.Equal(t, "JPY", out.Base)
	assert.Equal(t, 0.0067, out.Rates["USD"])
	assert.True(t, out.Sample)
	assert.Equal(t, "SAMPLE DATA - EXCHANGERATE_API_KEY not set", out.Note)
}

func TestFXRatesUnknownCode(t *testing.T) {
	f := &FX{}

	out := f.Rates(context.Background(), "N/A")
	assert.Equal(t, "N/A", out.Base)
	assert.Len(t, out.Rates, 4)
	for _, target := range fxTargets {
		assert.Equal(t, 0.0, out.Rates[target])
	}
	assert.True(t, out.Sample)
	assert.Equal(t, "Currency not found in fallback data", out.Note)
}

func TestFXRatesLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/JPY", r.URL.Path)
		rw.Write([]byte(`{
			"result": "success",
			"base_code": "JPY",
			"time_last_update_utc": "Fri, 10 Apr 2026 00:00:01 +0000",
			"conversion_rates": {"USD": 0.0068, "INR": 0.57, "GBP": 0.0054, "EUR": 0.0063, "CHF": 0.0061}
		}`))
	}))
	defer server.Close()

	client := exchangerate.NewClient("test-key")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	f := &FX{Client: client, Cache: cache.NewMemory()}

	out := f.Rates(context.Background(), "JPY")
	assert.Equal(t, "JPY", out.Base)
	assert.Equal(t, map[string]float64{"USD": 0.0068, "INR": 0.57, "GBP": 0.0054, "EUR": 0.0063}, out.Rates)
	assert.Equal(t, "Fri, 10 Apr 2026 00:00:01 +0000", out.LastUpdated)
	assert.False(t, out.Sample)
}

func TestFXRatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := exchangerate.NewClient("bad-key")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	f := &FX{Client: client}

	out := f.Rates(context.Background(), "USD")
	assert.True(t, out.Sample)
	assert.Equal(t, "Fallback data - API error", out.Note)
	assert.Equal(t, 83.5, out.Rates["INR"])
}
