// Package tools implements the tool adapters: one per external capability,
// each normalizing a live upstream call into a typed result and substituting
// deterministic fallback data on any failure. Adapters never return errors to
// their callers; a degraded result is flagged with Sample=true and a
// diagnostic note.
package tools

import (
	"fmt"
	"strings"
)

// Capability enumerates every tool the agents can invoke. The set is closed:
// the orchestrators call concrete adapters directly, and the enum exists so
// trace entries and cache keys use one canonical name per capability.
type Capability int

const (
	CapCurrentWeather Capability = iota
	CapWeatherForecast
	CapFlightSearch
	CapHotelSearch
	CapAttractions
	CapCurrencyInfo
	CapFXRates
	CapExchangeInfo
	CapStockIndices
)

var capabilityNames = [...]string{
	CapCurrentWeather:  "get_current_weather",
	CapWeatherForecast: "get_weather_forecast",
	CapFlightSearch:    "search_flights",
	CapHotelSearch:     "search_hotels",
	CapAttractions:     "get_attractions",
	CapCurrencyInfo:    "get_currency_info",
	CapFXRates:         "get_fx_rates",
	CapExchangeInfo:    "get_exchange_info",
	CapStockIndices:    "get_stock_indices",
}

// String returns the canonical tool name.
func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// cacheKey builds the process-wide cache key for a capability and its
// normalized input tuple.
func (c Capability) cacheKey(inputs ...string) string {
	parts := make([]string, 0, len(inputs)+1)
	parts = append(parts, c.String())
	for _, in := range inputs {
		parts = append(parts, normalize(in))
	}
	return strings.Join(parts, ":")
}

// normalize trims and lowercases a free-text identifier. Adapters do no
// further input validation; unknown identifiers resolve to fallback results.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
