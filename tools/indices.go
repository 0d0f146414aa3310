package tools

import (
	"context"
	"fmt"

	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/providers/yahoo"
)

// Index is one market index with its latest value and day-over-day change.
type Index struct {
	IndexName string  `json:"index_name"`
	Ticker    string  `json:"ticker"`
	Exchange  string  `json:"exchange"`
	Value     float64 `json:"value"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Sample    bool    `json:"sample"`
	Note      string  `json:"note,omitempty"`
}

// Indices adapts the Yahoo Finance chart lookup per country.
type Indices struct {
	Client *yahoo.Client
	Cache  cache.Store
}

type indexInfo struct {
	name     string
	ticker   string
	exchange string
}

var countryIndices = map[string][]indexInfo{
	"japan": {
		{"Nikkei 225", "^N225", "Tokyo Stock Exchange"},
		{"TOPIX", "^TOPX", "Tokyo Stock Exchange"},
	},
	"india": {
		{"BSE SENSEX", "^BSESN", "Bombay Stock Exchange"},
		{"NIFTY 50", "^NSEI", "National Stock Exchange"},
	},
	"united states": {
		{"S&P 500", "^GSPC", "New York Stock Exchange"},
		{"Dow Jones", "^DJI", "New York Stock Exchange"},
		{"NASDAQ Composite", "^IXIC", "NASDAQ"},
	},
	"south korea": {
		{"KOSPI", "^KS11", "Korea Exchange"},
		{"KOSDAQ", "^KQ11", "Korea Exchange"},
	},
	"china": {
		{"SSE Composite", "000001.SS", "Shanghai Stock Exchange"},
		{"Shenzhen Composite", "399001.SZ", "Shenzhen Stock Exchange"},
		{"Hang Seng", "^HSI", "Hong Kong Stock Exchange"},
	},
	"united kingdom": {
		{"FTSE 100", "^FTSE", "London Stock Exchange"},
		{"FTSE 250", "^FTMC", "London Stock Exchange"},
	},
}

// Approximate values served when a per-ticker lookup fails.
var fallbackIndexValues = map[string]float64{
	"^N225": 38500.0, "^TOPX": 2700.0,
	"^BSESN": 73500.0, "^NSEI": 22200.0,
	"^GSPC": 5100.0, "^DJI": 39200.0, "^IXIC": 16100.0,
	"^KS11": 2650.0, "^KQ11": 870.0,
	"000001.SS": 3050.0, "399001.SZ": 9500.0, "^HSI": 17200.0,
	"^FTSE": 7700.0, "^FTMC": 19800.0,
}

// Get returns index values for a country. Per-ticker failures fall back to
// fixed approximate values; an unknown country yields a single flagged
// placeholder entry.
func (i *Indices) Get(ctx context.Context, country string) []Index {
	infos, ok := countryIndices[normalize(country)]
	if !ok {
		return []Index{{
			IndexName: "N/A",
			Ticker:    "N/A",
			Exchange:  "N/A",
			Sample:    true,
			Note:      fmt.Sprintf("No index data available for %s", country),
		}}
	}

	key := CapStockIndices.cacheKey(country)
	if cached, ok := cacheLookup[[]Index](i.Cache, key); ok {
		return cached
	}

	results := make([]Index, 0, len(infos))
	allLive := true
	for _, info := range infos {
		idx := i.lookup(ctx, info)
		if idx.Sample {
			allLive = false
		}
		results = append(results, idx)
	}

	// Only a fully live result set is worth caching; a cached fallback
	// would mask the upstream recovering within the window.
	if allLive {
		cachePut(i.Cache, key, results, indicesTTL)
	}
	return results
}

func (i *Indices) lookup(ctx context.Context, info indexInfo) Index {
	idx := Index{IndexName: info.name, Ticker: info.ticker, Exchange: info.exchange}

	var closes *yahoo.Closes
	var err error
	if i.Client == nil {
		err = fmt.Errorf("no market data client configured")
	} else {
		closes, err = i.Client.RecentCloses(ctx, info.ticker)
	}
	if err != nil {
		log.Warnf(ctx, "index lookup failed for %s: %v", info.ticker, err)
		idx.Value = fallbackIndexValues[info.ticker]
		idx.Sample = true
		idx.Note = "Fallback data - " + truncate(err.Error(), 50)
		return idx
	}

	idx.Value = round2(closes.Last)
	if closes.HasPrev && closes.Prev != 0 {
		idx.Change = round2(closes.Last - closes.Prev)
		idx.ChangePct = round2((closes.Last - closes.Prev) / closes.Prev * 100)
	}
	return idx
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
