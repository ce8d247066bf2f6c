package console_test

import (
	"strings"
	"testing"

	"github.com/revetio/revet"
	"github.com/revetio/revet/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderResult(t *testing.T) {
	t.Parallel()

	t.Run("renders an authentic verdict", func(t *testing.T) {
		t.Parallel()

		view := revet.BuildResultView(revet.AnalysisResult{
			Legitimate: true,
			Status:     revet.StatusAuthentic,
			Confidence: 0.92,
			Analysis: revet.Analysis{
				Sentiment: revet.SentimentPositive,
				TextFeatures: revet.TextFeatures{
					Length:      120,
					WordCount:   24,
					Readability: "easy",
					Keywords:    []string{"coffee", "service"},
				},
			},
		})

		out := console.NewRenderer().RenderResult(view)

		assert.Contains(t, out, "Analysis Result: Legitimate")
		assert.Contains(t, out, "✓ Authentic")
		assert.Contains(t, out, "Confidence: 92.0%")
		assert.Contains(t, out, "Sentiment:  Positive")
		assert.Contains(t, out, "coffee, service")
		assert.NotContains(t, out, "Policy Violations")
		assert.NotContains(t, out, "Risk Factors")
	})

	t.Run("renders a problematic verdict with violations", func(t *testing.T) {
		t.Parallel()

		view := revet.BuildResultView(revet.AnalysisResult{
			Status:     revet.StatusAdvertisement,
			Confidence: 0.81,
			Analysis: revet.Analysis{
				PolicyViolations: []revet.Violation{
					{Type: revet.StatusAdvertisement, Description: "Contains promotional language"},
				},
				RiskFactors:     []string{"Repeated calls to action"},
				Recommendations: []string{"Flag for manual review"},
			},
		})

		out := console.NewRenderer().RenderResult(view)

		assert.Contains(t, out, "Analysis Result: Potentially Problematic")
		assert.Contains(t, out, "⚠ Advertisement")
		assert.Contains(t, out, "Advertisement: Contains promotional language")
		assert.Contains(t, out, "Repeated calls to action")
		assert.Contains(t, out, "Flag for manual review")
	})

	t.Run("renders metadata insights", func(t *testing.T) {
		t.Parallel()

		rating := 3.4
		view := revet.BuildResultView(revet.AnalysisResult{
			Status: revet.StatusAuthentic,
			Analysis: revet.Analysis{
				MetadataAnalysis: &revet.MetadataAnalysis{
					Insights: &revet.Insights{PlaceName: "Blue Bottle", StarRating: &rating},
				},
			},
		})

		out := console.NewRenderer().RenderResult(view)

		assert.Contains(t, out, "Place:  Blue Bottle")
		assert.Contains(t, out, "★★★☆☆ (3.4)")
	})
}

func TestRenderer_RenderSections(t *testing.T) {
	t.Parallel()

	t.Run("error section renders the literal message", func(t *testing.T) {
		t.Parallel()

		sections := revet.BuildBatchSections(revet.BatchOutcome{Err: "CSV file must contain a 'text' column"})
		out := console.NewRenderer().RenderSections(sections)

		assert.Equal(t, "CSV Analysis Error: CSV file must contain a 'text' column", out)
	})

	t.Run("renders sections in order with underlined titles", func(t *testing.T) {
		t.Parallel()

		sections := revet.BuildBatchSections(revet.BatchOutcome{
			Summary: &revet.BatchReport{
				Summary: revet.BatchSummary{
					TotalAnalyzed:     40,
					AverageConfidence: 0.875,
					StatusDistribution: revet.StatusCounts{
						{Tag: revet.StatusAuthentic, Count: 30},
					},
				},
			},
		})

		out := console.NewRenderer().RenderSections(sections)

		summaryIdx := indexOf(t, out, "Analysis Summary")
		distIdx := indexOf(t, out, "Review Status Distribution")
		pipelineIdx := indexOf(t, out, "Data Preprocessing Pipeline")
		assert.Less(t, summaryIdx, distIdx)
		assert.Less(t, distIdx, pipelineIdx)
		assert.Contains(t, out, "87.5%")
		assert.Contains(t, out, "✓ Authentic")
	})

	t.Run("renders dashboard sections", func(t *testing.T) {
		t.Parallel()

		sections := revet.BuildBatchSections(revet.BatchOutcome{
			Dashboard: &revet.DashboardReport{
				OverallStats: &revet.OverallStats{TotalReviews: 100, TotalCompanies: 8, TotalAuthors: 90},
				Companies: &revet.CompanyBreakdown{
					AverageRatings: revet.CompanyRatings{{Name: "Zeta Diner", Mean: 4.6, Count: 12}},
				},
				SampleReviews: revet.SampleGroups{
					{Tag: "authentic", Reviews: []revet.SampleReview{
						{Author: "Ana", Rating: revet.Rating{Value: 5, Valid: true}, Text: "Lovely.", Company: "Zeta Diner"},
					}},
				},
			},
		})

		out := console.NewRenderer().RenderSections(sections)

		assert.Contains(t, out, "Overall Statistics")
		assert.Contains(t, out, "Zeta Diner")
		assert.Contains(t, out, "★★★★★")
		assert.Contains(t, out, "Zeta Diner • Authentic")
	})
}

func TestRenderer_RenderMetadata(t *testing.T) {
	t.Parallel()

	out := console.NewRenderer().RenderMetadata(&revet.BatchMetadata{
		FileName:     "reviews.csv",
		TotalReviews: 100,
		ProcessedAt:  "2026-08-31T10:00:00Z",
	})
	assert.Equal(t, "File: reviews.csv | Total Reviews: 100 | Processed: 2026-08-31T10:00:00Z", out)

	assert.Empty(t, console.NewRenderer().RenderMetadata(nil))
}

func TestRenderer_RenderHealth(t *testing.T) {
	t.Parallel()

	out := console.NewRenderer().RenderHealth(&revet.EngineHealth{
		Status:   "healthy",
		Service:  "review-analyzer",
		Version:  "2.0.0",
		Features: []string{"single", "batch"},
	})

	assert.Contains(t, out, "Status:   healthy")
	assert.Contains(t, out, "Service:  review-analyzer")
	assert.Contains(t, out, "Features: single, batch")
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	idx := strings.Index(s, substr)
	require.GreaterOrEqual(t, idx, 0, "missing %q", substr)
	return idx
}
