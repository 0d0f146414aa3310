package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/devang92/wayfarer/fallback"
	"github.com/devang92/wayfarer/llm"
	"github.com/devang92/wayfarer/tools"
	"github.com/devang92/wayfarer/trace"
)

// MarketRequest carries the market report parameters.
type MarketRequest struct {
	Country string `json:"country"`
	Query   string `json:"query"`
}

// MarketReport is the assembled market overview for one country.
type MarketReport struct {
	Meta      MarketRequest      `json:"meta"`
	Currency  tools.CurrencyInfo `json:"currency_info"`
	FXRates   tools.FXRates      `json:"fx_rates"`
	Exchanges []tools.Exchange   `json:"exchanges"`
	Indices   []tools.Index      `json:"indices"`
	Summary   string             `json:"market_summary"`
	Errors    map[string]string  `json:"errors,omitempty"`
	Trace     []trace.ToolCall   `json:"trace"`
}

func (r *MarketReport) noteError(section string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[section] = err.Error()
}

// MarketAgent assembles currency, FX, exchange and index data for a country
// plus a generated market overview, in a fixed five-step pipeline. The FX
// step uses the currency code resolved by the first step.
type MarketAgent struct {
	Tools *tools.Toolset
	LLM   llm.Generator
}

// NewMarketAgent builds a market agent over a toolset and a text generator.
func NewMarketAgent(ts *tools.Toolset, gen llm.Generator) *MarketAgent {
	return &MarketAgent{Tools: ts, LLM: gen}
}

// Report runs the pipeline to completion. It never returns an error;
// degraded sections are flagged in place.
func (a *MarketAgent) Report(ctx context.Context, req MarketRequest) MarketReport {
	tr := trace.New()
	report := MarketReport{Meta: req}

	if out, err := runStep(ctx, tr, tools.CapCurrencyInfo.String(),
		map[string]interface{}{"country": req.Country},
		func() tools.CurrencyInfo { return a.Tools.Currency.Info(ctx, req.Country) },
	); err != nil {
		report.noteError("currency_info", err)
	} else {
		report.Currency = out
	}

	// The resolved code feeds the FX lookup; when step 1 produced nothing,
	// USD keeps the pipeline moving.
	code := report.Currency.CurrencyCode
	if code == "" {
		code = "USD"
	}
	if out, err := runStep(ctx, tr, tools.CapFXRates.String(),
		map[string]interface{}{"currency_code": code},
		func() tools.FXRates { return a.Tools.FX.Rates(ctx, code) },
	); err != nil {
		report.noteError("fx_rates", err)
	} else {
		report.FXRates = out
	}

	if out, err := runStep(ctx, tr, tools.CapExchangeInfo.String(),
		map[string]interface{}{"country": req.Country},
		func() []tools.Exchange { return a.Tools.Exchanges.List(req.Country) },
	); err != nil {
		report.noteError("exchanges", err)
	} else {
		report.Exchanges = out
	}

	if out, err := runStep(ctx, tr, tools.CapStockIndices.String(),
		map[string]interface{}{"country": req.Country},
		func() []tools.Index { return a.Tools.Indices.Get(ctx, req.Country) },
	); err != nil {
		report.noteError("indices", err)
	} else {
		report.Indices = out
	}

	indexNames := make([]string, 0, len(report.Indices))
	for _, idx := range report.Indices {
		indexNames = append(indexNames, idx.IndexName)
	}
	currencyName := report.Currency.CurrencyName
	if currencyName == "" {
		currencyName = "N/A"
	}

	report.Summary = generateStep(ctx, tr, a.LLM, "llm_market_summary",
		map[string]interface{}{"country": req.Country, "prompt_type": "market_overview"},
		marketPrompt(req, currencyName, indexNames),
		func() string { return fallback.MarketSummary(req.Country, currencyName, indexNames) })

	report.Trace = tr.Calls()
	return report
}

func marketPrompt(req MarketRequest, currencyName string, indexNames []string) string {
	extra := ""
	if req.Query != "" {
		extra = "Additional context: " + req.Query
	}
	return fmt.Sprintf(`Write a brief paragraph (100-150 words) about %s's financial market landscape.
Cover: the official currency (%s),
major stock exchanges, key indices (%s), and the country's position
in global financial markets.
%s
Keep it factual and informative.`,
		req.Country, currencyName, strings.Join(indexNames, ", "), extra)
}
