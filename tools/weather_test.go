package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/providers/openweather"
)

func weatherClientFor(server *httptest.Server) *openweather.Client {
	client := openweather.NewClient("test-key")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	return client
}

func TestCurrentWeatherNoCredential(t *testing.T) {
	w := &Weather{}

	out := w.Current(context.Background(), "Tokyo")
	assert.Equal(t, "Tokyo", out.City)
	assert.Equal(t, 22.0, out.TempC)
	assert.Equal(t, "Partly cloudy", out.Description)
	assert.True(t, out.Sample)
	assert.Equal(t, "SAMPLE DATA - OPENWEATHER_API_KEY not set", out.Note)
}

func TestCurrentWeatherLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		rw.Write([]byte(`{
			"main": {"temp": 18.34, "feels_like": 17.91, "humidity": 60},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer server.Close()

	w := &Weather{Client: weatherClientFor(server), Cache: cache.NewMemory()}

	out := w.Current(context.Background(), "Tokyo")
	assert.Equal(t, "Tokyo", out.City)
	assert.Equal(t, 18.3, out.TempC)
	assert.Equal(t, 17.9, out.FeelsLikeC)
	assert.Equal(t, "Scattered Clouds", out.Description)
	assert.Equal(t, 60, out.Humidity)
	assert.Equal(t, 15.1, out.WindKPH)
	assert.Equal(t, "03d", out.Icon)
	assert.False(t, out.Sample)
	assert.Empty(t, out.Note)
}

func TestCurrentWeatherCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		calls++
		rw.Write([]byte(`{
			"main": {"temp": 10, "feels_like": 9, "humidity": 80},
			"weather": [{"description": "mist", "icon": "50d"}],
			"wind": {"speed": 1.0}
		}`))
	}))
	defer server.Close()

	w := &Weather{Client: weatherClientFor(server), Cache: cache.NewMemory()}

	first := w.Current(context.Background(), "London")
	second := w.Current(context.Background(), "London")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestCurrentWeatherAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	w := &Weather{Client: weatherClientFor(server)}

	out := w.Current(context.Background(), "Tokyo")
	assert.True(t, out.Sample)
	assert.Equal(t, 22.0, out.TempC)
	assert.Contains(t, out.Note, "SAMPLE DATA - API error")
}

func TestForecastNoCredential(t *testing.T) {
	w := &Weather{}

	days := w.Forecast(context.Background(), "Tokyo")
	assert.Len(t, days, 5)
	for _, d := range days {
		assert.True(t, d.Sample)
		assert.Equal(t, "SAMPLE DATA - OPENWEATHER_API_KEY not set", d.Note)
	}
	assert.Equal(t, "Day 1", days[0].Date)
	assert.Equal(t, 18.0, days[0].TempMin)
	assert.Equal(t, 25.0, days[0].TempMax)
}

func TestForecastLiveAggregation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		rw.Write([]byte(`{"list": [
			{"dt_txt": "2026-04-10 09:00:00", "main": {"temp": 12.0, "humidity": 60}, "weather": [{"description": "light rain"}]},
			{"dt_txt": "2026-04-10 12:00:00", "main": {"temp": 16.5, "humidity": 50}, "weather": [{"description": "light rain"}]},
			{"dt_txt": "2026-04-10 15:00:00", "main": {"temp": 15.0, "humidity": 55}, "weather": [{"description": "overcast clouds"}]},
			{"dt_txt": "2026-04-11 09:00:00", "main": {"temp": 14.0, "humidity": 45}, "weather": [{"description": "clear sky"}]}
		]}`))
	}))
	defer server.Close()

	w := &Weather{Client: weatherClientFor(server), Cache: cache.NewMemory()}

	days := w.Forecast(context.Background(), "Paris")
	assert.Len(t, days, 2)

	assert.Equal(t, "2026-04-10", days[0].Date)
	assert.Equal(t, 12.0, days[0].TempMin)
	assert.Equal(t, 16.5, days[0].TempMax)
	assert.Equal(t, "Light Rain", days[0].Description)
	assert.Equal(t, 55, days[0].Humidity)
	assert.False(t, days[0].Sample)

	assert.Equal(t, "2026-04-11", days[1].Date)
	assert.Equal(t, "Clear Sky", days[1].Description)
}

func TestAggregateForecastCapsAtFiveDays(t *testing.T) {
	var entries []openweather.ForecastEntry
	dates := []string{"2026-04-10", "2026-04-11", "2026-04-12", "2026-04-13", "2026-04-14", "2026-04-15"}
	for _, date := range dates {
		var e openweather.ForecastEntry
		e.DtTxt = date + " 12:00:00"
		e.Main.Temp = 20
		e.Main.Humidity = 50
		entries = append(entries, e)
	}

	days := aggregateForecast(entries)
	assert.Len(t, days, 5)
	assert.Equal(t, "2026-04-10", days[0].Date)
	assert.Equal(t, "2026-04-14", days[4].Date)
}

func TestDominantDescription(t *testing.T) {
	assert.Equal(t, "rain", dominant([]string{"rain", "clouds", "rain"}))
	// Ties resolve to the first occurrence.
	assert.Equal(t, "rain", dominant([]string{"rain", "clouds"}))
	assert.Equal(t, "", dominant(nil))
}
