package tools

import (
	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/config"
	"github.com/devang92/wayfarer/llm"
	"github.com/devang92/wayfarer/providers/exchangerate"
	"github.com/devang92/wayfarer/providers/openweather"
	"github.com/devang92/wayfarer/providers/restcountries"
	"github.com/devang92/wayfarer/providers/yahoo"
)

// Toolset bundles one adapter per capability. Having a concrete field per
// capability (rather than a name-to-function registry) means a missing
// handler is a compile error, not a runtime lookup failure.
type Toolset struct {
	Weather     *Weather
	Flights     Flights
	Hotels      Hotels
	Attractions *Attractions
	Currency    *Currency
	FX          *FX
	Exchanges   Exchanges
	Indices     *Indices
}

// NewToolset wires adapters to their upstream clients. Adapters whose
// credential is missing get a nil client and serve fallback data without
// attempting the network.
func NewToolset(cfg *config.Config, store cache.Store, gen llm.Generator) *Toolset {
	var weatherClient *openweather.Client
	if cfg.Weather.APIKey != "" {
		weatherClient = openweather.NewClient(cfg.Weather.APIKey)
	}

	var fxClient *exchangerate.Client
	if cfg.Exchange.APIKey != "" {
		fxClient = exchangerate.NewClient(cfg.Exchange.APIKey)
	}

	return &Toolset{
		Weather:     &Weather{Client: weatherClient, Cache: store},
		Attractions: &Attractions{LLM: gen},
		Currency:    &Currency{Client: restcountries.NewClient(), Cache: store},
		FX:          &FX{Client: fxClient, Cache: store},
		Indices:     &Indices{Client: yahoo.NewClient(), Cache: store},
	}
}
