package tools

import (
	"fmt"
	"strings"
)

// Exchange is one stock exchange listing.
type Exchange struct {
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	MapsLink     string   `json:"maps_link"`
	Established  string   `json:"established"`
	Description  string   `json:"description"`
	MajorIndices []string `json:"major_indices"`
	Sample       bool     `json:"sample"`
	Note         string   `json:"note,omitempty"`
}

// Exchanges serves the curated stock-exchange table. Purely static: there is
// no upstream for exchange listings.
type Exchanges struct{}

var exchangeTable = map[string][]Exchange{
	"japan": {
		{
			Name: "Tokyo Stock Exchange (TSE)", City: "Tokyo", Lat: 35.6815, Lon: 139.7740,
			MapsLink:    mapsLink("Tokyo Stock Exchange"),
			Established: "1878",
			Description: "Third-largest stock exchange in the world by market capitalization.",
			MajorIndices: []string{"Nikkei 225", "TOPIX"},
		},
	},
	"india": {
		{
			Name: "Bombay Stock Exchange (BSE)", City: "Mumbai", Lat: 18.9300, Lon: 72.8347,
			MapsLink:    mapsLink("Bombay Stock Exchange Mumbai"),
			Established: "1875",
			Description: "Asia's oldest stock exchange, located at Dalal Street, Mumbai.",
			MajorIndices: []string{"BSE SENSEX"},
		},
		{
			Name: "National Stock Exchange (NSE)", City: "Mumbai", Lat: 19.0544, Lon: 72.8407,
			MapsLink:    mapsLink("National Stock Exchange Mumbai"),
			Established: "1992",
			Description: "India's leading stock exchange by trading volume.",
			MajorIndices: []string{"NIFTY 50"},
		},
	},
	"united states": {
		{
			Name: "New York Stock Exchange (NYSE)", City: "New York", Lat: 40.7069, Lon: -74.0113,
			MapsLink:    mapsLink("New York Stock Exchange"),
			Established: "1792",
			Description: "World's largest stock exchange by market capitalization.",
			MajorIndices: []string{"S&P 500", "Dow Jones"},
		},
		{
			Name: "NASDAQ", City: "New York", Lat: 40.7568, Lon: -73.9862,
			MapsLink:    mapsLink("NASDAQ MarketSite Times Square"),
			Established: "1971",
			Description: "Second-largest stock exchange globally, tech-heavy.",
			MajorIndices: []string{"NASDAQ Composite"},
		},
	},
	"south korea": {
		{
			Name: "Korea Exchange (KRX)", City: "Busan", Lat: 35.1028, Lon: 129.0322,
			MapsLink:    mapsLink("Korea Exchange Busan"),
			Established: "2005",
			Description: "Sole securities exchange operator in South Korea.",
			MajorIndices: []string{"KOSPI", "KOSDAQ"},
		},
	},
	"china": {
		{
			Name: "Shanghai Stock Exchange (SSE)", City: "Shanghai", Lat: 31.2328, Lon: 121.4871,
			MapsLink:    mapsLink("Shanghai Stock Exchange"),
			Established: "1990",
			Description: "Largest stock exchange in China and one of the largest in Asia.",
			MajorIndices: []string{"SSE Composite"},
		},
		{
			Name: "Shenzhen Stock Exchange (SZSE)", City: "Shenzhen", Lat: 22.5362, Lon: 114.0579,
			MapsLink:    mapsLink("Shenzhen Stock Exchange"),
			Established: "1990",
			Description: "Second stock exchange in mainland China, known for tech listings.",
			MajorIndices: []string{"Shenzhen Composite"},
		},
		{
			Name: "Hong Kong Stock Exchange (HKEX)", City: "Hong Kong", Lat: 22.2864, Lon: 114.1587,
			MapsLink:    mapsLink("Hong Kong Stock Exchange"),
			Established: "1891",
			Description: "One of Asia's largest exchanges, gateway for international investors to China.",
			MajorIndices: []string{"Hang Seng Index"},
		},
	},
	"united kingdom": {
		{
			Name: "London Stock Exchange (LSE)", City: "London", Lat: 51.5144, Lon: -0.0987,
			MapsLink:    mapsLink("London Stock Exchange"),
			Established: "1801",
			Description: "One of the oldest and largest stock exchanges in Europe.",
			MajorIndices: []string{"FTSE 100", "FTSE 250"},
		},
	},
}

// List returns the exchanges for a country, or a single flagged placeholder
// when the country is not in the table.
func (Exchanges) List(country string) []Exchange {
	if exchanges, ok := exchangeTable[normalize(country)]; ok {
		out := make([]Exchange, len(exchanges))
		copy(out, exchanges)
		return out
	}

	return []Exchange{{
		Name:         fmt.Sprintf("%s Stock Exchange", country),
		City:         "Unknown",
		MapsLink:     mapsLink(country + " Stock Exchange"),
		Established:  "N/A",
		Description:  fmt.Sprintf("Stock exchange information for %s not in database.", country),
		MajorIndices: []string{},
		Sample:       true,
		Note:         "Country not in exchange table",
	}}
}

func mapsLink(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + strings.ReplaceAll(query, " ", "+")
}
