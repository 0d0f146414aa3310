package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/devang92/wayfarer/llm"
	"github.com/devang92/wayfarer/log"
)

// Attraction is one point of interest.
type Attraction struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Sample      bool    `json:"sample"`
	Note        string  `json:"note,omitempty"`
}

// Attractions resolves points of interest for a city: the curated table
// first, then a structured LLM request, then a generic templated set.
type Attractions struct {
	LLM llm.Generator
}

var curatedAttractions = map[string][]Attraction{
	"tokyo": {
		{Name: "Senso-ji Temple", Category: "Temple", Description: "Tokyo's oldest and most significant Buddhist temple in Asakusa.", Rating: 4.7},
		{Name: "Shibuya Crossing", Category: "Landmark", Description: "The world's busiest pedestrian crossing, iconic Tokyo experience.", Rating: 4.5},
		{Name: "Meiji Shrine", Category: "Shrine", Description: "Serene Shinto shrine surrounded by a lush forest in central Tokyo.", Rating: 4.8},
		{Name: "Tokyo Skytree", Category: "Observation", Description: "Tallest tower in Japan (634m) with panoramic city views.", Rating: 4.6},
		{Name: "Tsukiji Outer Market", Category: "Food", Description: "World-famous fish market area with incredible street food.", Rating: 4.5},
		{Name: "Akihabara", Category: "Shopping", Description: "Electronics and anime/manga hub, vibrant pop-culture district.", Rating: 4.4},
	},
	"udaipur": {
		{Name: "City Palace", Category: "Palace", Description: "Majestic palace complex on the banks of Lake Pichola.", Rating: 4.7},
		{Name: "Lake Pichola", Category: "Nature", Description: "Artificial fresh water lake with stunning palace views.", Rating: 4.6},
		{Name: "Jag Mandir", Category: "Palace", Description: "Island palace in Lake Pichola, also known as Lake Garden Palace.", Rating: 4.5},
		{Name: "Saheliyon-ki-Bari", Category: "Garden", Description: "Garden of the Maidens with beautiful fountains and marble art.", Rating: 4.4},
		{Name: "Jagdish Temple", Category: "Temple", Description: "Indo-Aryan temple dedicated to Lord Vishnu, built in 1651.", Rating: 4.5},
		{Name: "Fateh Sagar Lake", Category: "Nature", Description: "Scenic artificial lake surrounded by hills and gardens.", Rating: 4.3},
	},
	"new york": {
		{Name: "Statue of Liberty", Category: "Monument", Description: "Iconic symbol of freedom on Liberty Island.", Rating: 4.7},
		{Name: "Central Park", Category: "Park", Description: "843-acre urban park, the green heart of Manhattan.", Rating: 4.8},
		{Name: "Times Square", Category: "Landmark", Description: "Brightly lit commercial hub and entertainment center.", Rating: 4.4},
		{Name: "Metropolitan Museum of Art", Category: "Museum", Description: "One of the world's largest and finest art museums.", Rating: 4.8},
		{Name: "Brooklyn Bridge", Category: "Landmark", Description: "Iconic hybrid cable-stayed/suspension bridge, opened 1883.", Rating: 4.7},
		{Name: "Empire State Building", Category: "Observation", Description: "Art Deco skyscraper with observation decks on 86th and 102nd floors.", Rating: 4.6},
	},
	"london": {
		{Name: "Tower of London", Category: "Castle", Description: "Historic castle and UNESCO site, home to the Crown Jewels.", Rating: 4.7},
		{Name: "British Museum", Category: "Museum", Description: "World-renowned museum of human history and culture.", Rating: 4.8},
		{Name: "Buckingham Palace", Category: "Palace", Description: "Official residence of the British monarch.", Rating: 4.6},
		{Name: "Big Ben & Houses of Parliament", Category: "Landmark", Description: "Iconic clock tower and Gothic Revival Parliament buildings.", Rating: 4.7},
		{Name: "London Eye", Category: "Observation", Description: "135m tall observation wheel on the South Bank of the Thames.", Rating: 4.5},
		{Name: "Hyde Park", Category: "Park", Description: "One of London's largest royal parks, 350 acres of green space.", Rating: 4.6},
	},
	"paris": {
		{Name: "Eiffel Tower", Category: "Landmark", Description: "Iconic iron lattice tower, symbol of Paris.", Rating: 4.7},
		{Name: "Louvre Museum", Category: "Museum", Description: "World's largest art museum, home to the Mona Lisa.", Rating: 4.8},
		{Name: "Notre-Dame Cathedral", Category: "Cathedral", Description: "Medieval Catholic cathedral, masterpiece of Gothic architecture.", Rating: 4.7},
		{Name: "Champs-Élysées", Category: "Street", Description: "Famous avenue known for luxury shops, cafés, and theatres.", Rating: 4.5},
		{Name: "Sacré-Cœur Basilica", Category: "Church", Description: "White-domed basilica at the summit of Montmartre.", Rating: 4.6},
		{Name: "Musée d'Orsay", Category: "Museum", Description: "Impressionist masterpieces housed in a former railway station.", Rating: 4.7},
	},
}

// Get returns attractions for a city. Curated cities never consult the LLM.
func (a *Attractions) Get(ctx context.Context, city string) []Attraction {
	if curated, ok := curatedAttractions[normalize(city)]; ok {
		out := make([]Attraction, len(curated))
		copy(out, curated)
		return out
	}

	if a.LLM != nil {
		prompt := fmt.Sprintf(`List the top 6 tourist attractions in %s.
For each, provide: name, category (e.g., Temple, Museum, Park, Landmark),
a one-sentence description, and an approximate rating out of 5.
Format as a numbered list like:
1. Name | Category | Description | Rating
`, city)

		response := a.LLM.Generate(ctx, prompt)
		if response != llm.Unavailable {
			if parsed := parseAttractionList(response); len(parsed) > 0 {
				return parsed
			}
			log.Warnf(ctx, "could not parse attraction list for %q, using generic set", city)
		}
	}

	return genericAttractions(city)
}

// parseAttractionList extracts attractions from a numbered pipe-delimited
// list. Lines that do not match are skipped; a missing or malformed rating
// defaults to 4.5.
func parseAttractionList(response string) []Attraction {
	var out []Attraction
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !unicode.IsDigit(rune(line[0])) {
			continue
		}
		if _, rest, ok := strings.Cut(line, "."); ok {
			line = strings.TrimSpace(rest)
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		rating := 4.5
		if len(parts) >= 4 {
			raw := strings.TrimSpace(strings.ReplaceAll(parts[3], "/5", ""))
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				rating = v
			}
		}

		out = append(out, Attraction{
			Name:        parts[0],
			Category:    parts[1],
			Description: parts[2],
			Rating:      rating,
		})
	}
	return out
}

func genericAttractions(city string) []Attraction {
	const note = "generic attraction set - city not curated and no LLM available"
	return []Attraction{
		{Name: city + " City Center", Category: "Landmark", Description: fmt.Sprintf("Explore the vibrant city center of %s.", city), Rating: 4.3, Sample: true, Note: note},
		{Name: city + " Historic District", Category: "Heritage", Description: fmt.Sprintf("Walk through the historical areas of %s.", city), Rating: 4.4, Sample: true, Note: note},
		{Name: city + " Local Market", Category: "Market", Description: fmt.Sprintf("Experience local culture at %s's famous markets.", city), Rating: 4.2, Sample: true, Note: note},
		{Name: city + " Museum", Category: "Museum", Description: fmt.Sprintf("Discover the art and history of %s.", city), Rating: 4.5, Sample: true, Note: note},
		{Name: city + " Park", Category: "Park", Description: fmt.Sprintf("Relax in the beautiful green spaces of %s.", city), Rating: 4.3, Sample: true, Note: note},
	}
}
