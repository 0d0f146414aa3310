package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration.
//
// Every credential is optional: a missing key simply means the matching
// upstream is skipped and the tools serve fallback data.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Weather  WeatherConfig  `yaml:"weather"`
	Exchange ExchangeConfig `yaml:"exchange"`
	LLM      LLMConfig      `yaml:"llm"`
}

type ServerConfig struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"8000"`
	CallTimeout time.Duration `yaml:"call_timeout" env:"CALL_TIMEOUT" env-default:"10s"`
}

type CacheConfig struct {
	// DBPath points at a sqlite file for a persistent cache. Empty means
	// the in-memory store.
	DBPath string `yaml:"db_path" env:"CACHE_DB_PATH"`
}

type WeatherConfig struct {
	APIKey string `yaml:"api_key" env:"OPENWEATHER_API_KEY"`
}

type ExchangeConfig struct {
	APIKey string `yaml:"api_key" env:"EXCHANGERATE_API_KEY"`
}

type LLMConfig struct {
	GroqAPIKey   string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	GroqModel    string `yaml:"groq_model" env:"GROQ_MODEL" env-default:"llama-3.3-70b-versatile"`
	GoogleAPIKey string `yaml:"google_api_key" env:"GOOGLE_API_KEY"`
	GeminiModel  string `yaml:"gemini_model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
