package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/twupgrade/internal/config"
	"github.com/nfrund/twupgrade/internal/logging"
	"github.com/nfrund/twupgrade/internal/server"
)

// AppAssets can be set at build time to force an asset source.
// Example: go build -ldflags "-X 'main.AppAssets=embed'"
var AppAssets string

func main() {
	if AppAssets != "" {
		os.Setenv("APP_ASSETS", AppAssets)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	if err := s.RegisterRoutes(); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
