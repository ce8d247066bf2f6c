// Package httpapi implements the analysis-engine interfaces over its
// HTTP+JSON API. Responses are decoded and validated here, once, so the
// renderers downstream only ever see fully-typed structures.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/revetio/revet"
	"go.uber.org/zap"
)

// Endpoint paths. The two historical client surfaces disagreed on paths;
// both variants remain supported via options.
const (
	DefaultAnalyzePath = "/api/analyze-review"
	LegacyAnalyzePath  = "/api/analyze"
	DefaultCSVPath     = "/api/analyze-csv"
	LegacyCSVPath      = "/api/upload-csv"
	HealthPath         = "/api/health"
)

// Compile-time interface verification.
var (
	_ revet.ReviewAnalyzer = (*Client)(nil)
	_ revet.CSVAnalyzer    = (*Client)(nil)
	_ revet.HealthChecker  = (*Client)(nil)
)

// Client talks to the analysis engine over HTTP.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	analyzePath string
	csvPath     string
	logger      *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client. No client-side timeout is
// imposed by default; a request stays in flight until the transport
// resolves or the context is cancelled.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAnalyzePath overrides the single-review endpoint path.
func WithAnalyzePath(path string) ClientOption {
	return func(c *Client) {
		c.analyzePath = path
	}
}

// WithCSVPath overrides the CSV endpoint path.
func WithCSVPath(path string) ClientOption {
	return func(c *Client) {
		c.csvPath = path
	}
}

// WithLegacyPaths switches both endpoints to the older path variants.
func WithLegacyPaths() ClientOption {
	return func(c *Client) {
		c.analyzePath = LegacyAnalyzePath
		c.csvPath = LegacyCSVPath
	}
}

// WithLogger sets a logger for request debugging. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the engine at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		analyzePath: DefaultAnalyzePath,
		csvPath:     DefaultCSVPath,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// analyzeRequest is the wire payload for a single review. Empty optional
// fields are normalized to JSON null, not omitted.
type analyzeRequest struct {
	Text         string   `json:"text"`
	PlaceName    *string  `json:"place_name"`
	StarRating   *float64 `json:"star_rating"`
	BusinessType *string  `json:"business_type"`
}

func buildAnalyzeRequest(sub revet.ReviewSubmission) analyzeRequest {
	req := analyzeRequest{
		Text:       sub.Text,
		StarRating: sub.StarRating,
	}
	if sub.PlaceName != "" {
		req.PlaceName = &sub.PlaceName
	}
	if sub.BusinessType != "" {
		req.BusinessType = &sub.BusinessType
	}
	return req
}

// AnalyzeReview implements revet.ReviewAnalyzer.
func (c *Client) AnalyzeReview(ctx context.Context, sub revet.ReviewSubmission) (*revet.AnalysisResult, error) {
	body, err := json.Marshal(buildAnalyzeRequest(sub))
	if err != nil {
		return nil, fmt.Errorf("httpapi: encode submission: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, c.analyzePath, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result revet.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("httpapi: decode analysis response: %w", err)
	}
	return &result, nil
}

// AnalyzeCSV implements revet.CSVAnalyzer. The file is sent as a multipart
// form with a single "file" field; the response may use either the summary
// or the dashboard envelope.
func (c *Client) AnalyzeCSV(ctx context.Context, filename string, data io.Reader) (*revet.BatchOutcome, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("httpapi: build multipart form: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("httpapi: read csv data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("httpapi: build multipart form: %w", err)
	}

	respData, err := c.do(ctx, http.MethodPost, c.csvPath, writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	return decodeBatchResponse(respData)
}

// Health implements revet.HealthChecker.
func (c *Client) Health(ctx context.Context) (*revet.EngineHealth, error) {
	data, err := c.do(ctx, http.MethodGet, HealthPath, "", nil)
	if err != nil {
		return nil, err
	}
	var health revet.EngineHealth
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, fmt.Errorf("httpapi: decode health response: %w", err)
	}
	return &health, nil
}

// decodeBatchResponse maps either batch envelope onto the BatchOutcome sum.
func decodeBatchResponse(data []byte) (*revet.BatchOutcome, error) {
	var env struct {
		Success            *bool                     `json:"success"`
		Error              string                    `json:"error"`
		Summary            *revet.BatchSummary       `json:"summary"`
		PreprocessingSteps []revet.PreprocessingStep `json:"preprocessing_steps"`
		Dashboard          *revet.DashboardReport    `json:"dashboard"`
		Metadata           *revet.BatchMetadata      `json:"metadata"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("httpapi: decode batch response: %w", err)
	}

	switch {
	case env.Dashboard != nil:
		return &revet.BatchOutcome{Dashboard: env.Dashboard, Metadata: env.Metadata}, nil
	case env.Success != nil && !*env.Success:
		msg := env.Error
		if msg == "" {
			msg = "CSV analysis failed"
		}
		return &revet.BatchOutcome{Err: msg}, nil
	case env.Success != nil:
		report := &revet.BatchReport{PreprocessingSteps: env.PreprocessingSteps}
		if env.Summary != nil {
			report.Summary = *env.Summary
		}
		return &revet.BatchOutcome{Summary: report}, nil
	default:
		return nil, fmt.Errorf("httpapi: unrecognized batch response shape")
	}
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpapi: engine request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: read engine response: %w", err)
	}

	c.logger.Debug("engine request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(resp.StatusCode, data)
	}
	return data, nil
}
