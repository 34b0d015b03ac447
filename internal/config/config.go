package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `validate:"required"`
	LogFormat       string        `validate:"oneof=text json"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	Assets          string        `validate:"oneof=embed disk"`
	AssetsDir       string        `validate:"required_if=Assets disk"`
	SiteLang        string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// New loads configuration from environment variables, reading a .env file
// first when one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from getenv, applying defaults for
// unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	timeout, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	tag, err := language.Parse(get("SITE_LANG", "en"))
	if err != nil {
		return nil, fmt.Errorf("SITE_LANG: %w", err)
	}

	cfg := &Config{
		Addr:            get("APP_ADDR", ":8080"),
		LogFormat:       get("LOG_FORMAT", "text"),
		LogLevel:        get("LOG_LEVEL", "debug"),
		Assets:          get("APP_ASSETS", "embed"),
		AssetsDir:       get("APP_ASSETS_DIR", "web/static"),
		SiteLang:        tag.String(),
		ShutdownTimeout: timeout,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s: failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
