package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`   // "debug" | "info" | "warn" | "error"
	PrettyLog bool   `env:"PRETTY_LOG" envDefault:"false"` // true => zap dev (color), false => zap prod (JSON)

	MongoURL         string        `env:"MONGO_URL,required"`
	DBName           string        `env:"DB_NAME,required"`
	MongoPingTimeout time.Duration `env:"MONGO_PING_TIMEOUT" envDefault:"10s"`

	// CORS_ORIGINS defaults permissively; everything else store-related is required.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Provider credentials are checked at call time, not boot: a missing key
	// surfaces as a server error on the endpoint that needs it.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.MongoURL = "***REDACTED***"
		if cfg.OpenAIAPIKey != "" {
			cfgCopy.OpenAIAPIKey = "***REDACTED***"
		}
		if cfg.GeminiAPIKey != "" {
			cfgCopy.GeminiAPIKey = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg, nil
}
