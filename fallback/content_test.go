package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCulturalInfo_Curated(t *testing.T) {
	// Keyed case-insensitively with surrounding whitespace ignored.
	assert.Equal(t, CulturalInfo("Tokyo"), CulturalInfo("  tokyo "))
	assert.Contains(t, CulturalInfo("Tokyo"), "Edo")
	assert.Contains(t, CulturalInfo("New York"), "Big Apple")
}

func TestCulturalInfo_Generic(t *testing.T) {
	text := CulturalInfo("Reykjavik")
	assert.Contains(t, text, "Reykjavik")
	assert.NotContains(t, text, "%s")
}

func TestItinerary_Curated(t *testing.T) {
	text := Itinerary("tokyo", TripDetails{}, nil)
	assert.Contains(t, text, "Senso-ji Temple")
	assert.True(t, strings.HasPrefix(text, "**Day 1"))
}

func TestItinerary_GenericTemplate(t *testing.T) {
	d := TripDetails{
		FromCity:  "Delhi",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-05",
		Budget:    "Medium",
		Travelers: 2,
	}
	attractions := []string{"Old Fort", "Night Market", "Grand Museum", "a", "b", "c", "seventh-dropped"}

	text := Itinerary("Hanoi", d, attractions)
	assert.Contains(t, text, "Arrive in Hanoi from Delhi")
	assert.Contains(t, text, "Old Fort")
	assert.Contains(t, text, "Grand Museum")
	assert.NotContains(t, text, "seventh-dropped")
	assert.Contains(t, text, "Budget: Medium | Travelers: 2 | Dates: 2025-06-01 to 2025-06-05")
	assert.Contains(t, text, "General sightseeing")
}

func TestMarketSummary_Curated(t *testing.T) {
	assert.Contains(t, MarketSummary("Japan", "", nil), "Nikkei 225")
	assert.Contains(t, MarketSummary("UNITED KINGDOM", "", nil), "FTSE 100")
}

func TestMarketSummary_Generic(t *testing.T) {
	text := MarketSummary("France", "Euro", []string{"CAC 40"})
	assert.Contains(t, text, "France")
	assert.Contains(t, text, "Euro")
	assert.Contains(t, text, "CAC 40")

	// Without resolved details the template still reads sensibly.
	bare := MarketSummary("France", "", nil)
	assert.Contains(t, bare, "local currency")
	assert.Contains(t, bare, "N/A")
}
