package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/momacolors/internal/adapters/otel"
)

// Prefix is prepended to every environment variable, e.g. MOMA_ADDR.
const Prefix = "MOMA"

// Server holds configuration for the HTTP preview service.
type Server struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// MaxColors caps n on API requests.
	MaxColors int `envconfig:"MAX_COLORS" default:"4096"`
}

// Config holds all moma configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	ImageDir string `envconfig:"IMAGE_DIR" default:"images"`
	// Sections are processed separately so their keys carry no section name.
	Server Server      `ignored:"true"`
	Otel   otel.Config `ignored:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Server); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix, &cfg.Otel); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
