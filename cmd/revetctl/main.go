// Package main implements revetctl, the plain command-line surface for the
// review analyzer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/revetio/revet"
	"github.com/revetio/revet/console"
	"github.com/revetio/revet/httpapi"
	"github.com/revetio/revet/jsonl"
)

// Config holds the environment configuration shared by all subcommands.
type Config struct {
	BaseURL     string `env:"REVET_BASE_URL" envDefault:"http://localhost:8000"`
	AnalyzePath string `env:"REVET_ANALYZE_PATH"`
	CSVPath     string `env:"REVET_CSV_PATH"`
	LegacyPaths bool   `env:"REVET_LEGACY_PATHS"`
}

// app wires the client and renderer for the subcommands.
type app struct {
	cfg     Config
	verbose bool
}

func (a *app) client() *httpapi.Client {
	var opts []httpapi.ClientOption
	if a.cfg.LegacyPaths {
		opts = append(opts, httpapi.WithLegacyPaths())
	}
	if a.cfg.AnalyzePath != "" {
		opts = append(opts, httpapi.WithAnalyzePath(a.cfg.AnalyzePath))
	}
	if a.cfg.CSVPath != "" {
		opts = append(opts, httpapi.WithCSVPath(a.cfg.CSVPath))
	}
	if a.verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, httpapi.WithLogger(logger))
		}
	}
	return httpapi.NewClient(a.cfg.BaseURL, opts...)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revetctl",
		Short: "Submit reviews to the legitimacy-analysis engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log engine requests")
	cmd.AddCommand(newAnalyzeCmd(a))
	cmd.AddCommand(newUploadCmd(a))
	cmd.AddCommand(newReplayCmd(a))
	cmd.AddCommand(newHealthCmd(a))
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		place      string
		rating     int
		btype      string
		transcript string
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a single review",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			if err := revet.ValidateReviewText(text); err != nil {
				return err
			}

			sub := revet.ReviewSubmission{
				Text:         text,
				PlaceName:    strings.TrimSpace(place),
				BusinessType: strings.TrimSpace(btype),
			}
			if cmd.Flags().Changed("rating") {
				r := float64(rating)
				sub.StarRating = &r
			}

			res, err := a.client().AnalyzeReview(cmd.Context(), sub)
			if err != nil {
				return err
			}

			renderer := console.NewRenderer()
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderResult(revet.BuildResultView(*res)))

			if transcript != "" {
				entry := revet.TranscriptEntry{
					Submission: sub,
					Result:     res,
					ReceivedAt: time.Now(),
				}
				if err := jsonl.NewTranscript().Append(transcript, entry); err != nil {
					return fmt.Errorf("appending transcript: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&place, "place", "", "place name")
	cmd.Flags().IntVar(&rating, "rating", 0, "star rating 1-5")
	cmd.Flags().StringVar(&btype, "type", "", "business type")
	cmd.Flags().StringVar(&transcript, "transcript", "", "append the verdict to a JSONL transcript")
	return cmd
}

func newUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Analyze a CSV of reviews",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if err := revet.ValidateCSVFile(path); err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			out, err := a.client().AnalyzeCSV(cmd.Context(), filepath.Base(path), f)
			if err != nil {
				return err
			}

			renderer := console.NewRenderer()
			if out.Metadata != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderMetadata(out.Metadata))
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSections(revet.BuildBatchSections(*out)))
			return nil
		},
	}
}

func newReplayCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <transcript.jsonl>",
		Short: "Re-render verdicts from a JSONL transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := jsonl.NewTranscript().Load(args[0])
			if err != nil {
				return err
			}

			renderer := console.NewRenderer()
			for i, entry := range entries {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i+1, entry.ReceivedAt.Format(time.RFC3339))
				if entry.Result == nil {
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), renderer.RenderResult(revet.BuildResultView(*entry.Result)))
			}
			return nil
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check engine availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := a.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), console.NewRenderer().RenderHealth(health))
			return nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	a := &app{}
	if err := env.Parse(&a.cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing configuration:", err)
		os.Exit(1)
	}

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
