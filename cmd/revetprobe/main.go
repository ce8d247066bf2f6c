// Command revetprobe submits the built-in sample reviews to the engine and
// tabulates the verdicts. Useful as a smoke test against a deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/revetio/revet"
	"github.com/revetio/revet/httpapi"
	"github.com/revetio/revet/probe"
)

// maxTextPreview caps the review text column width.
const maxTextPreview = 48

// Config holds the environment configuration for the probe.
type Config struct {
	BaseURL     string `env:"REVET_BASE_URL" envDefault:"http://localhost:8000"`
	AnalyzePath string `env:"REVET_ANALYZE_PATH"`
}

func run(ctx context.Context, cfg Config, concurrency int) error {
	var opts []httpapi.ClientOption
	if cfg.AnalyzePath != "" {
		opts = append(opts, httpapi.WithAnalyzePath(cfg.AnalyzePath))
	}
	client := httpapi.NewClient(cfg.BaseURL, opts...)

	outcomes := probe.Run(ctx, client, revet.SampleReviews, concurrency)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Review", "Status", "Confidence"})

	failures := 0
	for _, outcome := range outcomes {
		text := outcome.Text
		if len([]rune(text)) > maxTextPreview {
			text = string([]rune(text)[:maxTextPreview-3]) + "..."
		}
		if outcome.Err != nil {
			failures++
			t.AppendRow(table.Row{outcome.Index + 1, text, "error", outcome.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{
			outcome.Index + 1,
			text,
			outcome.Result.Status.Label(),
			revet.FormatPercent(outcome.Result.Confidence),
		})
	}
	t.Render()

	if failures > 0 {
		return fmt.Errorf("%d of %d probes failed", failures, len(outcomes))
	}
	return nil
}

func main() {
	concurrency := flag.Int("concurrency", probe.DefaultConcurrency, "max in-flight requests")
	flag.Parse()

	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing configuration:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, *concurrency); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
