package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/revetio/revet"
	"github.com/revetio/revet/httpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AnalyzeReview(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON to the analyze endpoint", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotContentType string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"legitimate": true, "status": "authentic", "confidence": 0.92, "analysis": {"sentiment": "positive"}}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		rating := 4.0
		result, err := client.AnalyzeReview(context.Background(), revet.ReviewSubmission{
			Text:         "Great coffee.",
			PlaceName:    "Blue Bottle",
			StarRating:   &rating,
			BusinessType: "cafe",
		})
		require.NoError(t, err)

		assert.Equal(t, "/api/analyze-review", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Great coffee.", gotBody["text"])
		assert.Equal(t, "Blue Bottle", gotBody["place_name"])
		assert.Equal(t, 4.0, gotBody["star_rating"])
		assert.Equal(t, "cafe", gotBody["business_type"])

		assert.True(t, result.Legitimate)
		assert.Equal(t, revet.StatusAuthentic, result.Status)
		assert.Equal(t, 0.92, result.Confidence)
		assert.Equal(t, revet.SentimentPositive, result.Analysis.Sentiment)
	})

	t.Run("normalizes empty optionals to null", func(t *testing.T) {
		t.Parallel()

		var raw map[string]json.RawMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &raw))
			_, _ = w.Write([]byte(`{"status": "authentic"}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		_, err := client.AnalyzeReview(context.Background(), revet.ReviewSubmission{Text: "hi"})
		require.NoError(t, err)

		assert.Equal(t, "null", string(raw["place_name"]))
		assert.Equal(t, "null", string(raw["star_rating"]))
		assert.Equal(t, "null", string(raw["business_type"]))
	})

	t.Run("error body takes precedence verbatim on non-2xx", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error": "Review text exceeds the 2000 character limit"}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		_, err := client.AnalyzeReview(context.Background(), revet.ReviewSubmission{Text: "hi"})
		require.Error(t, err)
		assert.Equal(t, "Review text exceeds the 2000 character limit", err.Error())

		var serr *httpapi.StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, http.StatusUnprocessableEntity, serr.Code)
	})

	t.Run("falls back to the numeric status without an error body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream timeout`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		_, err := client.AnalyzeReview(context.Background(), revet.ReviewSubmission{Text: "hi"})
		require.Error(t, err)
		assert.Equal(t, "HTTP error: status 502", err.Error())
	})

	t.Run("legacy path option switches the endpoint", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"status": "authentic"}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL, httpapi.WithLegacyPaths())
		_, err := client.AnalyzeReview(context.Background(), revet.ReviewSubmission{Text: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "/api/analyze", gotPath)
	})
}

func TestClient_AnalyzeCSV(t *testing.T) {
	t.Parallel()

	t.Run("uploads the file as a multipart form", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotFilename, gotField, gotContent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseMultipartForm(1<<20))
			for field, headers := range r.MultipartForm.File {
				gotField = field
				require.Len(t, headers, 1)
				gotFilename = headers[0].Filename
				f, err := headers[0].Open()
				require.NoError(t, err)
				content, err := io.ReadAll(f)
				require.NoError(t, err)
				gotContent = string(content)
			}
			_, _ = w.Write([]byte(`{"success": true, "summary": {"total_analyzed": 2}}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		out, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\nhello\nbye\n"))
		require.NoError(t, err)

		assert.Equal(t, "/api/analyze-csv", gotPath)
		assert.Equal(t, "file", gotField)
		assert.Equal(t, "reviews.csv", gotFilename)
		assert.Equal(t, "text\nhello\nbye\n", gotContent)

		require.NotNil(t, out.Summary)
		assert.Equal(t, 2, out.Summary.Summary.TotalAnalyzed)
		assert.False(t, out.Failed())
	})

	t.Run("decodes the summary envelope in order", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"success": true,
				"summary": {
					"total_analyzed": 40,
					"average_confidence": 0.875,
					"total_violations": 5,
					"violation_rate": 0.125,
					"status_distribution": {"no-visit": 4, "authentic": 30}
				},
				"preprocessing_steps": [
					{"step": "dedupe", "description": "Removed duplicates", "details": {"rows_removed": 3}}
				]
			}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		out, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\n"))
		require.NoError(t, err)

		require.NotNil(t, out.Summary)
		dist := out.Summary.Summary.StatusDistribution
		require.Len(t, dist, 2)
		assert.Equal(t, revet.StatusNoVisit, dist[0].Tag)
		assert.Equal(t, revet.StatusAuthentic, dist[1].Tag)

		require.Len(t, out.Summary.PreprocessingSteps, 1)
		assert.Equal(t, "dedupe", out.Summary.PreprocessingSteps[0].Step)
	})

	t.Run("decodes the dashboard envelope with metadata", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"dashboard": {
					"overall_stats": {"total_reviews": 100, "total_companies": 8, "total_authors": 90},
					"companies": {"average_ratings": {"Zeta": {"mean": 4.6, "count": 12}}}
				},
				"metadata": {"file_name": "reviews.csv", "total_reviews": 100, "processed_at": "2026-08-31T10:00:00Z"}
			}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		out, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\n"))
		require.NoError(t, err)

		require.NotNil(t, out.Dashboard)
		require.NotNil(t, out.Dashboard.OverallStats)
		assert.Equal(t, 100, out.Dashboard.OverallStats.TotalReviews)
		require.NotNil(t, out.Metadata)
		assert.Equal(t, "reviews.csv", out.Metadata.FileName)
	})

	t.Run("engine rejection becomes a failed outcome rather than an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "error": "CSV file must contain a 'text' column"}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		out, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("oops\n"))
		require.NoError(t, err)

		assert.True(t, out.Failed())
		assert.Equal(t, "CSV file must contain a 'text' column", out.Err)
	})

	t.Run("rejection without a message gets a generic one", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		out, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\n"))
		require.NoError(t, err)
		assert.Equal(t, "CSV analysis failed", out.Err)
	})

	t.Run("unrecognized envelope is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected": true}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL)
		_, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\n"))
		assert.Error(t, err)
	})

	t.Run("custom csv path option", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer srv.Close()

		client := httpapi.NewClient(srv.URL, httpapi.WithCSVPath("/api/upload-csv"))
		_, err := client.AnalyzeCSV(context.Background(), "reviews.csv", strings.NewReader("text\n"))
		require.NoError(t, err)
		assert.Equal(t, "/api/upload-csv", gotPath)
	})
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "healthy", "service": "review-analyzer", "version": "2.0.0", "timestamp": "2026-08-31T10:00:00Z", "features": ["single", "batch"]}`))
	}))
	defer srv.Close()

	client := httpapi.NewClient(srv.URL)
	health, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "review-analyzer", health.Service)
	assert.Equal(t, []string{"single", "batch"}, health.Features)
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := httpapi.NewClient(srv.URL)
	_, err := client.AnalyzeReview(ctx, revet.ReviewSubmission{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
