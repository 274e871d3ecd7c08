package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"interview-prep/internal/gemini"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Gemini configuration. The key is injected, never embedded in
	// responses or logs.
	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-preview-05-20"`

	MaxRetries        int           `env:"GEMINI_MAX_RETRIES" envDefault:"5"`
	InitialRetryDelay time.Duration `env:"GEMINI_RETRY_DELAY" envDefault:"1s"`
	HTTPTimeout       time.Duration `env:"GEMINI_HTTP_TIMEOUT" envDefault:"120s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) RetryPolicy() gemini.RetryPolicy {
	return gemini.RetryPolicy{
		MaxAttempts:  c.MaxRetries,
		InitialDelay: c.InitialRetryDelay,
		Multiplier:   2,
	}
}
