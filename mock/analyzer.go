// Package mock provides function-field mock implementations of the revet
// interfaces for testing.
package mock

import (
	"context"
	"io"
	"sync"

	"github.com/revetio/revet"
)

// Compile-time interface verification.
var (
	_ revet.ReviewAnalyzer = (*ReviewAnalyzer)(nil)
	_ revet.CSVAnalyzer    = (*CSVAnalyzer)(nil)
	_ revet.HealthChecker  = (*HealthChecker)(nil)
)

// ReviewAnalyzer is a mock implementation of revet.ReviewAnalyzer.
type ReviewAnalyzer struct {
	AnalyzeReviewFn func(ctx context.Context, sub revet.ReviewSubmission) (*revet.AnalysisResult, error)

	mu          sync.Mutex
	invocations int
}

func (a *ReviewAnalyzer) AnalyzeReview(ctx context.Context, sub revet.ReviewSubmission) (*revet.AnalysisResult, error) {
	a.mu.Lock()
	a.invocations++
	a.mu.Unlock()
	return a.AnalyzeReviewFn(ctx, sub)
}

// Invocations reports how many times AnalyzeReview was called, letting tests
// assert that validation failures never reach the network. Safe for
// concurrent callers.
func (a *ReviewAnalyzer) Invocations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.invocations
}

// CSVAnalyzer is a mock implementation of revet.CSVAnalyzer.
type CSVAnalyzer struct {
	AnalyzeCSVFn func(ctx context.Context, filename string, data io.Reader) (*revet.BatchOutcome, error)

	mu          sync.Mutex
	invocations int
}

func (a *CSVAnalyzer) AnalyzeCSV(ctx context.Context, filename string, data io.Reader) (*revet.BatchOutcome, error) {
	a.mu.Lock()
	a.invocations++
	a.mu.Unlock()
	return a.AnalyzeCSVFn(ctx, filename, data)
}

// Invocations reports how many times AnalyzeCSV was called.
func (a *CSVAnalyzer) Invocations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.invocations
}

// HealthChecker is a mock implementation of revet.HealthChecker.
type HealthChecker struct {
	HealthFn func(ctx context.Context) (*revet.EngineHealth, error)
}

func (h *HealthChecker) Health(ctx context.Context) (*revet.EngineHealth, error) {
	return h.HealthFn(ctx)
}

// TranscriptAppender is a mock implementation of revet.TranscriptAppender.
type TranscriptAppender struct {
	AppendFn func(path string, entry revet.TranscriptEntry) error
}

func (t *TranscriptAppender) Append(path string, entry revet.TranscriptEntry) error {
	return t.AppendFn(path, entry)
}

// Compile-time interface verification.
var _ revet.TranscriptAppender = (*TranscriptAppender)(nil)
