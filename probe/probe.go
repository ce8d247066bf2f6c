// Package probe sweeps the analysis engine with known sample reviews and
// collects the verdicts, mainly to sanity-check an engine deployment.
package probe

import (
	"context"

	"github.com/revetio/revet"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency limits in-flight probe requests.
const DefaultConcurrency = 4

// Outcome is the engine's verdict for one probed review.
type Outcome struct {
	Index  int
	Text   string
	Result *revet.AnalysisResult
	Err    error
}

// Run submits every text to the engine, at most concurrency requests in
// flight at a time, and returns the outcomes in input order. Failures are
// recorded per outcome; one failing probe never aborts the rest.
func Run(ctx context.Context, analyzer revet.ReviewAnalyzer, texts []string, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, text := range texts {
		g.Go(func() error {
			result, err := analyzer.AnalyzeReview(ctx, revet.ReviewSubmission{Text: text})
			outcomes[i] = Outcome{Index: i, Text: text, Result: result, Err: err}
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes completion.
	_ = g.Wait()
	return outcomes
}
