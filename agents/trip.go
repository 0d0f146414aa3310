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

// TripRequest carries the trip planning parameters.
type TripRequest struct {
	FromCity    string `json:"from_city"`
	ToCity      string `json:"to_city"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Budget      string `json:"budget"`
	Travelers   int    `json:"travelers"`
	Preferences string `json:"preferences"`
}

// TripReport is the assembled trip plan. Every section is populated, at
// minimum with fallback data; a section whose step raised carries its zero
// value and an entry in Errors.
type TripReport struct {
	Meta         TripRequest          `json:"meta"`
	CulturalInfo string               `json:"cultural_info"`
	Weather      tools.CurrentWeather `json:"current_weather"`
	Forecast     []tools.ForecastDay  `json:"forecast"`
	Flights      []tools.Flight       `json:"flights"`
	Hotels       []tools.Hotel        `json:"hotels"`
	Attractions  []tools.Attraction   `json:"attractions"`
	Itinerary    string               `json:"itinerary"`
	Errors       map[string]string    `json:"errors,omitempty"`
	Trace        []trace.ToolCall     `json:"trace"`
}

func (r *TripReport) noteError(section string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[section] = err.Error()
}

// TripAgent plans trips: one cultural paragraph, weather, flights, hotels,
// attractions and a day-by-day itinerary, in a fixed seven-step pipeline.
type TripAgent struct {
	Tools *tools.Toolset
	LLM   llm.Generator
}

// NewTripAgent builds a trip agent over a toolset and a text generator.
func NewTripAgent(ts *tools.Toolset, gen llm.Generator) *TripAgent {
	return &TripAgent{Tools: ts, LLM: gen}
}

// Plan runs the pipeline to completion and returns the report with its full
// execution trace. It never returns an error; degraded sections are flagged
// in place.
func (a *TripAgent) Plan(ctx context.Context, req TripRequest) TripReport {
	tr := trace.New()
	report := TripReport{Meta: req}

	report.CulturalInfo = generateStep(ctx, tr, a.LLM, "llm_cultural_paragraph",
		map[string]interface{}{"city": req.ToCity, "prompt_type": "cultural_historic_info"},
		culturalPrompt(req.ToCity),
		func() string { return fallback.CulturalInfo(req.ToCity) })

	if out, err := runStep(ctx, tr, tools.CapCurrentWeather.String(),
		map[string]interface{}{"city": req.ToCity},
		func() tools.CurrentWeather { return a.Tools.Weather.Current(ctx, req.ToCity) },
	); err != nil {
		report.noteError("current_weather", err)
	} else {
		report.Weather = out
	}

	if out, err := runStep(ctx, tr, tools.CapWeatherForecast.String(),
		map[string]interface{}{"city": req.ToCity},
		func() []tools.ForecastDay { return a.Tools.Weather.Forecast(ctx, req.ToCity) },
	); err != nil {
		report.noteError("forecast", err)
	} else {
		report.Forecast = out
	}

	if out, err := runStep(ctx, tr, tools.CapFlightSearch.String(),
		map[string]interface{}{"from_city": req.FromCity, "to_city": req.ToCity, "date": req.StartDate, "travelers": req.Travelers},
		func() []tools.Flight { return a.Tools.Flights.Search(req.FromCity, req.ToCity, req.StartDate, req.Travelers) },
	); err != nil {
		report.noteError("flights", err)
	} else {
		report.Flights = out
	}

	if out, err := runStep(ctx, tr, tools.CapHotelSearch.String(),
		map[string]interface{}{"city": req.ToCity, "checkin": req.StartDate, "checkout": req.EndDate, "guests": req.Travelers},
		func() []tools.Hotel { return a.Tools.Hotels.Search(req.ToCity, req.StartDate, req.EndDate, req.Travelers) },
	); err != nil {
		report.noteError("hotels", err)
	} else {
		report.Hotels = out
	}

	if out, err := runStep(ctx, tr, tools.CapAttractions.String(),
		map[string]interface{}{"city": req.ToCity},
		func() []tools.Attraction { return a.Tools.Attractions.Get(ctx, req.ToCity) },
	); err != nil {
		report.noteError("attractions", err)
	} else {
		report.Attractions = out
	}

	names := attractionNames(report.Attractions)
	report.Itinerary = generateStep(ctx, tr, a.LLM, "llm_day_itinerary",
		map[string]interface{}{
			"city":        req.ToCity,
			"dates":       fmt.Sprintf("%s to %s", req.StartDate, req.EndDate),
			"prompt_type": "day_by_day_plan",
		},
		itineraryPrompt(req, names, report.Forecast),
		func() string {
			return fallback.Itinerary(req.ToCity, fallback.TripDetails{
				FromCity:    req.FromCity,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
				Budget:      req.Budget,
				Preferences: req.Preferences,
				Travelers:   req.Travelers,
			}, names)
		})

	report.Trace = tr.Calls()
	return report
}

func culturalPrompt(city string) string {
	return fmt.Sprintf(`Write a concise but rich paragraph (150-200 words) about %s
covering its cultural significance, historical highlights, and what makes it
a unique travel destination. Include notable facts, traditions, and atmosphere.`, city)
}

func itineraryPrompt(req TripRequest, attractions []string, forecast []tools.ForecastDay) string {
	preferences := req.Preferences
	if preferences == "" {
		preferences = "General sightseeing"
	}

	var conditions []string
	for i, day := range forecast {
		if i == 3 {
			break
		}
		conditions = append(conditions, day.Description)
	}

	return fmt.Sprintf(`Create a detailed day-by-day travel itinerary for a trip to %s.

Trip Details:
- From: %s
- Dates: %s to %s
- Travelers: %d
- Budget: %s
- Preferences: %s

Available Attractions: %s

Weather forecast shows: %s

Format each day as:
**Day N: Title**
- Morning: activity
- Afternoon: activity
- Evening: activity
- Dining suggestion

Include practical tips for each day. Make it detailed and useful.`,
		req.ToCity, req.FromCity, req.StartDate, req.EndDate, req.Travelers,
		req.Budget, preferences,
		strings.Join(attractions, ", "), strings.Join(conditions, ", "))
}

func attractionNames(attractions []tools.Attraction) []string {
	names := make([]string, 0, len(attractions))
	for _, a := range attractions {
		names = append(names, a.Name)
	}
	return names
}
