package tools

import (
	"context"

	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/providers/exchangerate"
	"github.com/devang92/wayfarer/providers/restcountries"
)

// CurrencyInfo is the normalized country currency metadata.
type CurrencyInfo struct {
	Country        string     `json:"country"`
	CurrencyCode   string     `json:"currency_code"`
	CurrencyName   string     `json:"currency_name"`
	CurrencySymbol string     `json:"currency_symbol"`
	Capital        string     `json:"capital"`
	LatLng         [2]float64 `json:"latlng"`
	Flag           string     `json:"flag"`
	Sample         bool       `json:"sample"`
	Note           string     `json:"note,omitempty"`
}

// FXRates is the normalized set of conversion rates for a base currency
// against the four fixed target currencies.
type FXRates struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated string             `json:"last_updated"`
	Sample      bool               `json:"sample"`
	Note        string             `json:"note,omitempty"`
}

// fxTargets are the fixed conversion targets every FX result carries.
var fxTargets = []string{"USD", "INR", "GBP", "EUR"}

// Currency adapts the REST Countries metadata lookup. No credential is
// required; network failure falls back to a small built-in table.
type Currency struct {
	Client *restcountries.Client
	Cache  cache.Store
}

type fallbackCurrency struct {
	code    string
	name    string
	symbol  string
	capital string
	latlng  [2]float64
}

var fallbackCurrencies = map[string]fallbackCurrency{
	"japan":          {"JPY", "Japanese yen", "¥", "Tokyo", [2]float64{36.0, 138.0}},
	"india":          {"INR", "Indian rupee", "₹", "New Delhi", [2]float64{20.0, 77.0}},
	"united states":  {"USD", "United States dollar", "$", "Washington, D.C.", [2]float64{38.0, -97.0}},
	"south korea":    {"KRW", "South Korean won", "₩", "Seoul", [2]float64{37.0, 127.5}},
	"china":          {"CNY", "Chinese yuan", "¥", "Beijing", [2]float64{35.0, 105.0}},
	"united kingdom": {"GBP", "British pound sterling", "£", "London", [2]float64{54.0, -2.0}},
}

// Info returns currency metadata for a country, or flagged fallback data.
func (c *Currency) Info(ctx context.Context, country string) CurrencyInfo {
	key := CapCurrencyInfo.cacheKey(country)
	if cached, ok := cacheLookup[CurrencyInfo](c.Cache, key); ok {
		return cached
	}

	if c.Client != nil {
		match, err := c.Client.LookupCountry(ctx, country)
		if err == nil && len(match.Currencies) > 0 {
			out := normalizeCountry(country, match)
			cachePut(c.Cache, key, out, currencyTTL)
			return out
		}
		if err != nil {
			log.Warnf(ctx, "country lookup failed for %q: %v", country, err)
		}
	}

	if fb, ok := fallbackCurrencies[normalize(country)]; ok {
		return CurrencyInfo{
			Country:        country,
			CurrencyCode:   fb.code,
			CurrencyName:   fb.name,
			CurrencySymbol: fb.symbol,
			Capital:        fb.capital,
			LatLng:         fb.latlng,
			Sample:         true,
			Note:           "Fallback data used",
		}
	}

	return CurrencyInfo{
		Country:      country,
		CurrencyCode: "N/A",
		CurrencyName: "Unknown",
		Capital:      "Unknown",
		Sample:       true,
		Note:         "Country not found",
	}
}

func normalizeCountry(query string, match *restcountries.Country) CurrencyInfo {
	out := CurrencyInfo{
		Country: query,
		Capital: "Unknown",
		Flag:    match.Flag,
	}
	if match.Name.Common != "" {
		out.Country = match.Name.Common
	}
	if len(match.Capital) > 0 {
		out.Capital = match.Capital[0]
	}
	if len(match.LatLng) >= 2 {
		out.LatLng = [2]float64{match.LatLng[0], match.LatLng[1]}
	}
	// The payload maps code -> details; take the first listed currency.
	for code, cur := range match.Currencies {
		out.CurrencyCode = code
		out.CurrencyName = cur.Name
		out.CurrencySymbol = cur.Symbol
		break
	}
	if out.CurrencyName == "" {
		out.CurrencyName = "Unknown"
	}
	return out
}

// FX adapts the ExchangeRate API. A nil Client means no credential is
// configured and every call resolves from the fallback table immediately.
type FX struct {
	Client *exchangerate.Client
	Cache  cache.Store
}

var fallbackRates = map[string]map[string]float64{
	"JPY": {"USD": 0.0067, "INR": 0.56, "GBP": 0.0053, "EUR": 0.0062},
	"INR": {"USD": 0.012, "INR": 1.0, "GBP": 0.0095, "EUR": 0.011},
	"USD": {"USD": 1.0, "INR": 83.5, "GBP": 0.79, "EUR": 0.92},
	"KRW": {"USD": 0.00075, "INR": 0.063, "GBP": 0.00059, "EUR": 0.00069},
	"CNY": {"USD": 0.14, "INR": 11.5, "GBP": 0.11, "EUR": 0.13},
	"GBP": {"USD": 1.27, "INR": 105.8, "GBP": 1.0, "EUR": 1.17},
}

// Rates returns conversion rates for a base code against the fixed targets,
// or flagged fallback data. Unknown codes yield all-zero rates.
func (f *FX) Rates(ctx context.Context, code string) FXRates {
	if f.Client == nil {
		return fallbackFX(code, "SAMPLE DATA - EXCHANGERATE_API_KEY not set")
	}

	key := CapFXRates.cacheKey(code)
	if cached, ok := cacheLookup[FXRates](f.Cache, key); ok {
		return cached
	}

	latest, err := f.Client.LatestRates(ctx, code)
	if err != nil {
		log.Warnf(ctx, "FX lookup failed for %q: %v", code, err)
		return fallbackFX(code, "Fallback data - API error")
	}

	rates := make(map[string]float64, len(fxTargets))
	for _, target := range fxTargets {
		rates[target] = latest.ConversionRates[target]
	}
	out := FXRates{
		Base:        code,
		Rates:       rates,
		LastUpdated: latest.TimeLastUpdated,
	}
	cachePut(f.Cache, key, out, fxTTL)
	return out
}

func fallbackFX(code, note string) FXRates {
	if rates, ok := fallbackRates[code]; ok {
		copied := make(map[string]float64, len(rates))
		for k, v := range rates {
			copied[k] = v
		}
		return FXRates{Base: code, Rates: copied, LastUpdated: "N/A", Sample: true, Note: note}
	}
	zero := make(map[string]float64, len(fxTargets))
	for _, target := range fxTargets {
		zero[target] = 0.0
	}
	return FXRates{Base: code, Rates: zero, LastUpdated: "N/A", Sample: true, Note: "Currency not found in fallback data"}
}
