package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/devang92/wayfarer/agents"
	"github.com/devang92/wayfarer/bootstrap"
	"github.com/devang92/wayfarer/config"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/runid"
)

type reportServer struct {
	app *bootstrap.App
}

func (s *reportServer) handleTrip(w http.ResponseWriter, r *http.Request) {
	ctx := runid.WithRunID(r.Context(), runid.New())

	var req agents.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ToCity == "" {
		http.Error(w, "to_city is required", http.StatusBadRequest)
		return
	}

	log.Infof(ctx, "trip request: %s -> %s (%s to %s)", req.FromCity, req.ToCity, req.StartDate, req.EndDate)
	writeJSON(ctx, w, s.app.TripAgent.Plan(ctx, req))
}

func (s *reportServer) handleMarket(w http.ResponseWriter, r *http.Request) {
	ctx := runid.WithRunID(r.Context(), runid.New())

	var req agents.MarketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Country == "" {
		http.Error(w, "country is required", http.StatusBadRequest)
		return
	}

	log.Infof(ctx, "market request: %s", req.Country)
	writeJSON(ctx, w, s.app.MarketAgent.Report(ctx, req))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf(ctx, "failed to encode response: %v", err)
	}
}

func main() {
	log.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}
	defer app.Close()

	s := &reportServer{app: app}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/trip", s.handleTrip)
	mux.HandleFunc("POST /v1/market", s.handleMarket)
	mux.HandleFunc("GET /healthz", handleHealth)

	// Simple CORS middleware
	corsHandler := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			h.ServeHTTP(w, r)
		})
	}

	// h2c serves HTTP/2 without TLS, fine for dev and internal services.
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h2c.NewHandler(corsHandler(mux), &http2.Server{}),
	}

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down server...")
		srv.Shutdown(context.Background())
	}()

	log.Infof(context.Background(), "Starting server on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
}
