package tools

import (
	"fmt"
	"sort"
)

// Hotel is one generated hotel option. Like flights, hotel results are
// always deterministic sample data.
type Hotel struct {
	Name          string   `json:"name"`
	Stars         int      `json:"stars"`
	Rating        float64  `json:"rating"`
	ReviewScore   string   `json:"review_score"`
	PricePerNight int      `json:"price_per_night_usd"`
	Guests        int      `json:"guests"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	CheckIn       string   `json:"checkin"`
	CheckOut      string   `json:"checkout"`
	Sample        bool     `json:"sample"`
	Note          string   `json:"note"`
}

// Hotels generates deterministic sample hotel options.
type Hotels struct{}

var hotelPrefixes = []string{"Grand", "Royal", "Imperial", "The", "Hotel", "Park", "Palace", "Heritage"}

var hotelSuffixes = []string{"Inn", "Resort", "Suites", "Plaza", "Tower", "Residency", "Hotel", "Lodge"}

var amenitiesPool = []string{
	"Free WiFi", "Pool", "Spa", "Gym", "Restaurant", "Bar",
	"Room Service", "Airport Shuttle", "Parking", "Breakfast Included",
	"Business Center", "Concierge", "Laundry Service", "Ocean View",
}

var hotelLocations = []string{
	"City Center", "Near Airport", "Downtown", "Business District",
	"Old Town", "Waterfront", "Cultural Quarter", "Suburban",
}

var hotelStars = []int{3, 3, 4, 4, 4, 5}

const hotelNote = "SAMPLE DATA - real hotel API not connected"

// Search returns 4-6 sample hotel options sorted ascending by nightly price.
// Identical inputs always yield an identical list.
func (Hotels) Search(city, checkin, checkout string, guests int) []Hotel {
	if guests < 1 {
		guests = 1
	}
	rng := seededRand(normalize(city), normalize(checkin), normalize(checkout))

	count := 4 + rng.Intn(3)
	hotels := make([]Hotel, 0, count)
	for i := 0; i < count; i++ {
		prefix := hotelPrefixes[rng.Intn(len(hotelPrefixes))]
		suffix := hotelSuffixes[rng.Intn(len(hotelSuffixes))]
		rating := round1(3.0 + rng.Float64()*2.0)

		// Amenity sample: shuffle the pool and take 3-7 entries.
		k := 3 + rng.Intn(5)
		perm := rng.Perm(len(amenitiesPool))
		amenities := make([]string, k)
		for j := 0; j < k; j++ {
			amenities[j] = amenitiesPool[perm[j]]
		}

		hotels = append(hotels, Hotel{
			Name:          fmt.Sprintf("%s %s %s", prefix, city, suffix),
			Stars:         hotelStars[rng.Intn(len(hotelStars))],
			Rating:        rating,
			ReviewScore:   fmt.Sprintf("%.1f/5.0", rating),
			PricePerNight: 40 + rng.Intn(311),
			Guests:        guests,
			Location:      hotelLocations[rng.Intn(len(hotelLocations))],
			Amenities:     amenities,
			CheckIn:       checkin,
			CheckOut:      checkout,
			Sample:        true,
			Note:          hotelNote,
		})
	}

	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].PricePerNight < hotels[j].PricePerNight
	})
	return hotels
}
