package tools

import (
	"encoding/json"
	"math"
	"time"

	"github.com/devang92/wayfarer/cache"
)

// Cache windows per capability, reflecting upstream volatility.
const (
	weatherTTL  = 10 * time.Minute
	currencyTTL = time.Hour
	fxTTL       = time.Hour
	indicesTTL  = 5 * time.Minute
)

// cacheLookup decodes a cached value into T.
func cacheLookup[T any](store cache.Store, key string) (T, bool) {
	var out T
	if store == nil {
		return out, false
	}
	raw, ok := store.Get(key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

// cachePut stores a value as JSON. Failures to encode are ignored; the cache
// is best effort.
func cachePut(store cache.Store, key string, value interface{}, ttl time.Duration) {
	if store == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	store.Set(key, raw, ttl)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
