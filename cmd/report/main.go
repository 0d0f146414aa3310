// Command report runs both agent pipelines once and prints the rendered
// reports with their execution traces. Useful for exercising the pipelines
// end to end without the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/devang92/wayfarer/agents"
	"github.com/devang92/wayfarer/bootstrap"
	"github.com/devang92/wayfarer/config"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/runid"
	"github.com/devang92/wayfarer/trace"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()
	log.Init()

	var (
		from      = flag.String("from", "Delhi", "departure city")
		to        = flag.String("to", "Tokyo", "destination city")
		start     = flag.String("start", "2026-04-10", "trip start date (YYYY-MM-DD)")
		end       = flag.String("end", "2026-04-14", "trip end date (YYYY-MM-DD)")
		budget    = flag.String("budget", "Medium", "budget level")
		travelers = flag.Int("travelers", 2, "number of travelers")
		prefs     = flag.String("preferences", "", "free-text preferences")
		country   = flag.String("country", "Japan", "country for the market report")
		query     = flag.String("query", "", "extra market query")
	)
	flag.Parse()

	ctx := runid.WithRunID(context.Background(), runid.New())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}
	defer app.Close()

	trip := app.TripAgent.Plan(ctx, agents.TripRequest{
		FromCity:    *from,
		ToCity:      *to,
		StartDate:   *start,
		EndDate:     *end,
		Budget:      *budget,
		Travelers:   *travelers,
		Preferences: *prefs,
	})
	printTripReport(trip)

	market := app.MarketAgent.Report(ctx, agents.MarketRequest{Country: *country, Query: *query})
	printMarketReport(market)
}

func printTripReport(r agents.TripReport) {
	fmt.Printf("=== Trip Report: %s -> %s ===\n\n", r.Meta.FromCity, r.Meta.ToCity)

	fmt.Println("--- About the destination ---")
	fmt.Println(r.CulturalInfo)

	fmt.Printf("\n--- Current weather in %s ---\n", r.Meta.ToCity)
	fmt.Printf("%.1f°C (feels like %.1f°C), %s, humidity %d%%%s\n",
		r.Weather.TempC, r.Weather.FeelsLikeC, r.Weather.Description, r.Weather.Humidity, sampleTag(r.Weather.Sample))

	fmt.Println("\n--- Forecast ---")
	for _, day := range r.Forecast {
		fmt.Printf("%s: %.0f-%.0f°C, %s\n", day.Date, day.TempMin, day.TempMax, day.Description)
	}

	fmt.Println("\n--- Flights ---")
	w := newTable()
	fmt.Fprintln(w, "AIRLINE\tFLIGHT\tDEPARTS\tDURATION\tSTOPS\tCLASS\tPRICE")
	for _, f := range r.Flights {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t$%d\n",
			f.Airline, f.FlightNo, f.Departure, f.Duration, f.StopLabel, f.Class, f.PriceUSD)
	}
	w.Flush()

	fmt.Println("\n--- Hotels ---")
	w = newTable()
	fmt.Fprintln(w, "HOTEL\tSTARS\tRATING\tLOCATION\tPER NIGHT")
	for _, h := range r.Hotels {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t$%d\n", h.Name, h.Stars, h.ReviewScore, h.Location, h.PricePerNight)
	}
	w.Flush()

	fmt.Println("\n--- Attractions ---")
	for _, a := range r.Attractions {
		fmt.Printf("%s (%s, %.1f/5): %s\n", a.Name, a.Category, a.Rating, a.Description)
	}

	fmt.Println("\n--- Itinerary ---")
	fmt.Println(r.Itinerary)

	printErrors(r.Errors)
	printTrace(r.Trace)
}

func printMarketReport(r agents.MarketReport) {
	fmt.Printf("\n=== Market Report: %s ===\n\n", r.Meta.Country)

	fmt.Printf("Currency: %s (%s) %s%s\n", r.Currency.CurrencyName, r.Currency.CurrencyCode,
		r.Currency.CurrencySymbol, sampleTag(r.Currency.Sample))
	fmt.Printf("Capital: %s\n", r.Currency.Capital)

	fmt.Printf("\n--- FX rates (base %s, updated %s) ---\n", r.FXRates.Base, r.FXRates.LastUpdated)
	for target, rate := range r.FXRates.Rates {
		fmt.Printf("1 %s = %.4f %s\n", r.FXRates.Base, rate, target)
	}

	fmt.Println("\n--- Exchanges ---")
	for _, e := range r.Exchanges {
		fmt.Printf("%s (%s, est. %s): %s\n", e.Name, e.City, e.Established, e.Description)
	}

	fmt.Println("\n--- Indices ---")
	w := newTable()
	fmt.Fprintln(w, "INDEX\tTICKER\tVALUE\tCHANGE\tCHANGE %")
	for _, i := range r.Indices {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%+.2f\t%+.2f%%\n", i.IndexName, i.Ticker, i.Value, i.Change, i.ChangePct)
	}
	w.Flush()

	fmt.Println("\n--- Market summary ---")
	fmt.Println(r.Summary)

	printErrors(r.Errors)
	printTrace(r.Trace)
}

func printErrors(errors map[string]string) {
	if len(errors) == 0 {
		return
	}
	fmt.Println("\n--- Section errors ---")
	for section, msg := range errors {
		fmt.Printf("%s: %s\n", section, msg)
	}
}

func printTrace(calls []trace.ToolCall) {
	fmt.Println("\n--- Execution trace ---")
	w := newTable()
	fmt.Fprintln(w, "#\tTOOL\tSTATUS\tDURATION\tERROR")
	for i, call := range calls {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1fms\t%s\n", i+1, call.Tool, call.Status, call.DurationMS, call.Error)
	}
	w.Flush()
}

func sampleTag(sample bool) string {
	if sample {
		return " [sample]"
	}
	return ""
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
