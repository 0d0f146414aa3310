// Package bootstrap assembles the application components from configuration:
// cache store, completion backends, toolset and agents.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/devang92/wayfarer/agents"
	"github.com/devang92/wayfarer/cache"
	"github.com/devang92/wayfarer/config"
	"github.com/devang92/wayfarer/llm"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/tools"
)

// App holds the initialized components of the application.
type App struct {
	TripAgent   *agents.TripAgent
	MarketAgent *agents.MarketAgent
	Gateway     *llm.Gateway
	Cache       cache.Store

	gemini *llm.Gemini
}

// Setup initializes the application components based on the configuration.
// Missing credentials are normal: the matching backend or upstream is simply
// left unconfigured and the tools serve fallback data.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var backends []llm.Backend
	if cfg.LLM.GroqAPIKey != "" {
		groq, err := llm.NewGroq(cfg.LLM.GroqAPIKey, cfg.LLM.GroqModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Groq backend: %w", err)
		}
		backends = append(backends, groq)
	} else {
		log.Infof(ctx, "GROQ_API_KEY not set, Groq backend disabled")
	}

	var gemini *llm.Gemini
	if cfg.LLM.GoogleAPIKey != "" {
		gemini, err = llm.NewGemini(ctx, cfg.LLM.GoogleAPIKey, cfg.LLM.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini backend: %w", err)
		}
		backends = append(backends, gemini)
	} else {
		log.Infof(ctx, "GOOGLE_API_KEY not set, Gemini backend disabled")
	}

	gateway := llm.NewGateway(backends...)
	toolset := tools.NewToolset(cfg, store, gateway)

	return &App{
		TripAgent:   agents.NewTripAgent(toolset, gateway),
		MarketAgent: agents.NewMarketAgent(toolset, gateway),
		Gateway:     gateway,
		Cache:       store,
		gemini:      gemini,
	}, nil
}

func buildCache(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	if cfg.Cache.DBPath == "" {
		return cache.NewMemory(), nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.Cache.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	store, err := cache.NewDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate cache table: %w", err)
	}
	if err := store.Cleanup(); err != nil {
		log.Warnf(ctx, "cache cleanup failed: %v", err)
	}
	log.Infof(ctx, "using persistent cache at %s", cfg.Cache.DBPath)
	return store, nil
}

// Close releases backend clients.
func (a *App) Close() {
	if a.gemini != nil {
		a.gemini.Close()
	}
}
