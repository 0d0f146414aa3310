package tools

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/providers/openweather"
)

// CurrentWeather is the normalized current-conditions result.
type CurrentWeather struct {
	City        string  `json:"city"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindKPH     float64 `json:"wind_kph"`
	Icon        string  `json:"icon"`
	Sample      bool    `json:"sample"`
	Note        string  `json:"note,omitempty"`
}

// ForecastDay is one day of the normalized forecast.
type ForecastDay struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Sample      bool    `json:"sample"`
	Note        string  `json:"note,omitempty"`
}

// Weather adapts the OpenWeather API. A nil Client means no credential is
// configured and every call resolves to sample data immediately, without
// touching the network.
type Weather struct {
	Client *openweather.Client
	Cache  cache.Store
}

var sampleCurrent = CurrentWeather{
	TempC:       22,
	FeelsLikeC:  21,
	Description: "Partly cloudy",
	Humidity:    55,
	WindKPH:     12.5,
	Icon:        "02d",
	Sample:      true,
}

var sampleForecast = []ForecastDay{
	{Date: "Day 1", TempMin: 18, TempMax: 25, Description: "Sunny", Humidity: 50},
	{Date: "Day 2", TempMin: 17, TempMax: 24, Description: "Partly cloudy", Humidity: 55},
	{Date: "Day 3", TempMin: 19, TempMax: 26, Description: "Clear sky", Humidity: 48},
	{Date: "Day 4", TempMin: 16, TempMax: 23, Description: "Light rain", Humidity: 70},
	{Date: "Day 5", TempMin: 18, TempMax: 24, Description: "Sunny", Humidity: 52},
}

var titleCaser = cases.Title(language.English)

// Current returns current conditions for a city, or flagged sample data.
func (w *Weather) Current(ctx context.Context, city string) CurrentWeather {
	if w.Client == nil {
		out := sampleCurrent
		out.City = city
		out.Note = "SAMPLE DATA - OPENWEATHER_API_KEY not set"
		return out
	}

	key := CapCurrentWeather.cacheKey(city)
	if cached, ok := cacheLookup[CurrentWeather](w.Cache, key); ok {
		return cached
	}

	current, err := w.Client.CurrentWeather(ctx, city)
	if err != nil {
		log.Warnf(ctx, "current weather lookup failed for %q: %v", city, err)
		out := sampleCurrent
		out.City = city
		out.Note = "SAMPLE DATA - API error: " + err.Error()
		return out
	}

	out := CurrentWeather{
		City:        city,
		TempC:       round1(current.Main.Temp),
		FeelsLikeC:  round1(current.Main.FeelsLike),
		Description: titleCaser.String(current.Weather[0].Description),
		Humidity:    current.Main.Humidity,
		WindKPH:     round1(current.Wind.Speed * 3.6),
		Icon:        current.Weather[0].Icon,
	}
	cachePut(w.Cache, key, out, weatherTTL)
	return out
}

// Forecast returns up to five days of forecast for a city, aggregating the
// upstream 3-hour buckets into daily min/max, dominant description and mean
// humidity. On any failure it returns flagged sample data.
func (w *Weather) Forecast(ctx context.Context, city string) []ForecastDay {
	if w.Client == nil {
		return sampleForecastWithNote("SAMPLE DATA - OPENWEATHER_API_KEY not set")
	}

	key := CapWeatherForecast.cacheKey(city)
	if cached, ok := cacheLookup[[]ForecastDay](w.Cache, key); ok {
		return cached
	}

	forecast, err := w.Client.FiveDayForecast(ctx, city)
	if err != nil {
		log.Warnf(ctx, "forecast lookup failed for %q: %v", city, err)
		return sampleForecastWithNote("SAMPLE DATA - API error: " + err.Error())
	}

	out := aggregateForecast(forecast.List)
	cachePut(w.Cache, key, out, weatherTTL)
	return out
}

func sampleForecastWithNote(note string) []ForecastDay {
	out := make([]ForecastDay, len(sampleForecast))
	copy(out, sampleForecast)
	for i := range out {
		out[i].Sample = true
		out[i].Note = note
	}
	return out
}

type dayAccum struct {
	temps        []float64
	descriptions []string
	humidities   []int
}

func aggregateForecast(entries []openweather.ForecastEntry) []ForecastDay {
	byDay := make(map[string]*dayAccum)
	var order []string

	for _, entry := range entries {
		date := strings.SplitN(entry.DtTxt, " ", 2)[0]
		acc, ok := byDay[date]
		if !ok {
			acc = &dayAccum{}
			byDay[date] = acc
			order = append(order, date)
		}
		acc.temps = append(acc.temps, entry.Main.Temp)
		if len(entry.Weather) > 0 {
			acc.descriptions = append(acc.descriptions, entry.Weather[0].Description)
		}
		acc.humidities = append(acc.humidities, entry.Main.Humidity)
	}

	var out []ForecastDay
	for _, date := range order {
		if len(out) == 5 {
			break
		}
		acc := byDay[date]
		min, max := acc.temps[0], acc.temps[0]
		for _, t := range acc.temps {
			if t < min {
				min = t
			}
			if t > max {
				max = t
			}
		}
		humSum := 0
		for _, h := range acc.humidities {
			humSum += h
		}
		out = append(out, ForecastDay{
			Date:        date,
			TempMin:     round1(min),
			TempMax:     round1(max),
			Description: titleCaser.String(dominant(acc.descriptions)),
			Humidity:    int(float64(humSum)/float64(len(acc.humidities)) + 0.5),
		})
	}
	return out
}

// dominant returns the most frequent string, first occurrence winning ties.
func dominant(values []string) string {
	if len(values) == 0 {
		return ""
	}
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	best := values[0]
	for _, v := range values {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}
