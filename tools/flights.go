package tools

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
)

// Flight is one generated flight option. All flight results are sample data:
// there is no live flight backend, so the generator produces plausible,
// internally consistent options deterministically derived from the inputs.
type Flight struct {
	Airline   string `json:"airline"`
	FlightNo  string `json:"flight_no"`
	From      string `json:"from"`
	To        string `json:"to"`
	Date      string `json:"date"`
	Departure string `json:"departure"`
	Duration  string `json:"duration"`
	Stops     int    `json:"stops"`
	StopLabel string `json:"stop_label"`
	PriceUSD  int    `json:"price_usd"`
	TotalUSD  int    `json:"total_usd"`
	Travelers int    `json:"travelers"`
	Class     string `json:"class"`
	Sample    bool   `json:"sample"`
	Note      string `json:"note"`
}

// Flights generates deterministic sample flight options.
type Flights struct{}

var airlines = []string{
	"Air India", "IndiGo", "Emirates", "Singapore Airlines",
	"Japan Airlines", "ANA", "Delta", "United Airlines",
	"British Airways", "Lufthansa", "Qatar Airways", "Thai Airways",
	"Korean Air", "Cathay Pacific", "Turkish Airlines",
}

var flightDurations = []string{
	"2h 30m", "3h 15m", "4h 00m", "5h 45m", "7h 20m",
	"8h 10m", "10h 30m", "12h 00m", "14h 25m", "16h 50m",
}

var departureMinutes = []int{0, 15, 30, 45}

var cabinClasses = []string{"Economy", "Economy", "Economy", "Premium Economy", "Business"}

const flightNote = "SAMPLE DATA - real flight API not connected"

// Search returns 3-5 sample flight options sorted ascending by per-person
// price. Identical inputs always yield an identical list.
func (Flights) Search(fromCity, toCity, date string, travelers int) []Flight {
	if travelers < 1 {
		travelers = 1
	}
	rng := seededRand(normalize(fromCity), normalize(toCity), normalize(date))

	count := 3 + rng.Intn(3)
	flights := make([]Flight, 0, count)
	for i := 0; i < count; i++ {
		airline := airlines[rng.Intn(len(airlines))]
		depHour := 5 + rng.Intn(18)
		depMin := departureMinutes[rng.Intn(len(departureMinutes))]
		stops := weightedStops(rng)
		price := 150 + rng.Intn(1051)
		price += stops * (rng.Intn(151) - 50)
		if price < 100 {
			price = 100
		}

		flights = append(flights, Flight{
			Airline:   airline,
			FlightNo:  fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 100+rng.Intn(900)),
			From:      fromCity,
			To:        toCity,
			Date:      date,
			Departure: fmt.Sprintf("%02d:%02d", depHour, depMin),
			Duration:  flightDurations[rng.Intn(len(flightDurations))],
			Stops:     stops,
			StopLabel: stopLabel(stops),
			PriceUSD:  price,
			TotalUSD:  price * travelers,
			Travelers: travelers,
			Class:     cabinClasses[rng.Intn(len(cabinClasses))],
			Sample:    true,
			Note:      flightNote,
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].PriceUSD < flights[j].PriceUSD
	})
	return flights
}

// weightedStops picks 0, 1 or 2 stops with weights 40/45/15.
func weightedStops(rng *rand.Rand) int {
	switch r := rng.Intn(100); {
	case r < 40:
		return 0
	case r < 85:
		return 1
	default:
		return 2
	}
}

func stopLabel(stops int) string {
	switch stops {
	case 0:
		return "Non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// seededRand builds a generator seeded from the normalized input tuple, so
// the same inputs always produce the same sequence.
func seededRand(inputs ...string) *rand.Rand {
	h := fnv.New64a()
	for _, in := range inputs {
		h.Write([]byte(in))
		h.Write([]byte{'|'})
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
