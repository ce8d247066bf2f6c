package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/revetio/revet/bubbletea"
	"github.com/revetio/revet/httpapi"
	"github.com/revetio/revet/lipgloss"
)

// Config holds the environment configuration for the TUI.
type Config struct {
	BaseURL     string `env:"REVET_BASE_URL" envDefault:"http://localhost:8000"`
	AnalyzePath string `env:"REVET_ANALYZE_PATH"`
	CSVPath     string `env:"REVET_CSV_PATH"`
	LegacyPaths bool   `env:"REVET_LEGACY_PATHS"`
	Theme       string `env:"REVET_THEME" envDefault:"dark"`
}

func run(ctx context.Context, cfg Config) error {
	var opts []httpapi.ClientOption
	if cfg.LegacyPaths {
		opts = append(opts, httpapi.WithLegacyPaths())
	}
	if cfg.AnalyzePath != "" {
		opts = append(opts, httpapi.WithAnalyzePath(cfg.AnalyzePath))
	}
	if cfg.CSVPath != "" {
		opts = append(opts, httpapi.WithCSVPath(cfg.CSVPath))
	}
	client := httpapi.NewClient(cfg.BaseURL, opts...)

	theme := lipgloss.DefaultTheme()
	if cfg.Theme == "light" {
		theme = lipgloss.LightTheme()
	}

	surface := bubbletea.NewSurface(client, client, bubbletea.WithTheme(theme))
	return surface.Run(ctx)
}

func main() {
	// Best-effort: a missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing configuration:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
