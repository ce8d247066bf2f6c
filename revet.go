// Package revet provides domain types for submitting reviews to a remote
// legitimacy-analysis engine and rendering its verdicts.
package revet

import (
	"context"
	"io"
)

// TextLimit is the maximum review length accepted by the engine.
const TextLimit = 2000

// ReviewSubmission is a single review with optional business metadata.
type ReviewSubmission struct {
	Text         string   `json:"text"`
	PlaceName    string   `json:"place_name,omitempty"`
	StarRating   *float64 `json:"star_rating,omitempty"`
	BusinessType string   `json:"business_type,omitempty"`
}

// AnalysisResult is the engine's verdict for a single review.
type AnalysisResult struct {
	Legitimate bool      `json:"legitimate"`
	Status     StatusTag `json:"status"`
	Confidence float64   `json:"confidence"` // in [0,1]
	Analysis   Analysis  `json:"analysis"`
}

// Analysis holds the detailed breakdown behind a verdict. The violation,
// risk-factor and recommendation sequences are always present in engine
// responses (possibly empty, never absent) and their order is
// engine-determined priority.
type Analysis struct {
	Sentiment        SentimentTag      `json:"sentiment"`
	TextFeatures     TextFeatures      `json:"text_features"`
	PolicyViolations []Violation       `json:"policy_violations"`
	RiskFactors      []string          `json:"risk_factors"`
	Recommendations  []string          `json:"recommendations"`
	MetadataAnalysis *MetadataAnalysis `json:"metadata_analysis,omitempty"`
}

// TextFeatures describes surface properties of the review text.
type TextFeatures struct {
	Length      int      `json:"length"`
	WordCount   int      `json:"word_count"`
	Readability string   `json:"readability"`
	Keywords    []string `json:"keywords"`
}

// Violation is a single policy infraction detected by the engine.
type Violation struct {
	Type        StatusTag `json:"type"`
	Description string    `json:"description"`
}

// MetadataAnalysis carries engine insights derived from submitted metadata.
type MetadataAnalysis struct {
	Insights *Insights `json:"insights,omitempty"`
}

// Insights echoes the metadata the engine considered meaningful.
type Insights struct {
	PlaceName  string   `json:"place_name,omitempty"`
	StarRating *float64 `json:"star_rating,omitempty"`
}

// EngineHealth is the engine's health-check response.
type EngineHealth struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Features  []string `json:"features"`
}

// ReviewAnalyzer submits a single review for legitimacy classification.
type ReviewAnalyzer interface {
	AnalyzeReview(ctx context.Context, sub ReviewSubmission) (*AnalysisResult, error)
}

// CSVAnalyzer submits a CSV of reviews for batch classification. The
// filename is forwarded to the engine, which also uses it for reporting.
type CSVAnalyzer interface {
	AnalyzeCSV(ctx context.Context, filename string, data io.Reader) (*BatchOutcome, error)
}

// HealthChecker probes engine availability.
type HealthChecker interface {
	Health(ctx context.Context) (*EngineHealth, error)
}
