// Package console renders presentation models as plain terminal text. It is
// the line-oriented counterpart of the bubbletea surface: both are thin
// adapters over the same pure view builders in the root package.
package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/revetio/revet"
)

// Renderer writes presentation models as plain text.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderResult renders a single-review verdict.
func (r *Renderer) RenderResult(view revet.ResultView) string {
	var b strings.Builder

	verdict := "Potentially Problematic"
	if view.Legitimate {
		verdict = "Legitimate"
	}
	fmt.Fprintf(&b, "Analysis Result: %s\n", verdict)
	fmt.Fprintf(&b, "Status:     %s %s\n", view.Badge.Icon, view.Badge.Label)
	fmt.Fprintf(&b, "Confidence: %s\n", view.Confidence)
	fmt.Fprintf(&b, "Sentiment:  %s\n", view.Sentiment.Label)

	b.WriteString("\nText Analysis:\n")
	fmt.Fprintf(&b, "  Length:      %d chars\n", view.Features.Length)
	fmt.Fprintf(&b, "  Word Count:  %d\n", view.Features.WordCount)
	fmt.Fprintf(&b, "  Readability: %s\n", view.Features.Readability)

	if len(view.Keywords) > 0 {
		fmt.Fprintf(&b, "  Key Terms:   %s\n", strings.Join(view.Keywords, ", "))
	}

	if insights := view.Insights; insights != nil {
		b.WriteString("\nMetadata:\n")
		if insights.PlaceName != "" {
			fmt.Fprintf(&b, "  Place:  %s\n", insights.PlaceName)
		}
		if rating := insights.Rating; rating != nil {
			fmt.Fprintf(&b, "  Rating: %s (%s)\n", rating.Stars, rating.Label)
		}
	}

	if len(view.Violations) > 0 {
		b.WriteString("\nPolicy Violations:\n")
		for _, v := range view.Violations {
			fmt.Fprintf(&b, "  - %s: %s\n", v.Label, v.Description)
		}
	}
	if len(view.RiskFactors) > 0 {
		b.WriteString("\nRisk Factors:\n")
		for _, factor := range view.RiskFactors {
			fmt.Fprintf(&b, "  - %s\n", factor)
		}
	}
	if len(view.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range view.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	return b.String()
}

// RenderSections renders a batch report section by section, in order.
func (r *Renderer) RenderSections(sections []revet.ReportSection) string {
	var parts []string
	for _, section := range sections {
		parts = append(parts, r.renderSection(section))
	}
	return strings.Join(parts, "\n\n")
}

// RenderMetadata renders the dashboard envelope metadata line.
func (r *Renderer) RenderMetadata(meta *revet.BatchMetadata) string {
	if meta == nil {
		return ""
	}
	return fmt.Sprintf("File: %s | Total Reviews: %d | Processed: %s",
		meta.FileName, meta.TotalReviews, meta.ProcessedAt)
}

// RenderHealth renders the engine health response.
func (r *Renderer) RenderHealth(health *revet.EngineHealth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status:   %s\n", health.Status)
	fmt.Fprintf(&b, "Service:  %s\n", health.Service)
	fmt.Fprintf(&b, "Version:  %s\n", health.Version)
	if len(health.Features) > 0 {
		fmt.Fprintf(&b, "Features: %s\n", strings.Join(health.Features, ", "))
	}
	return b.String()
}

func (r *Renderer) renderSection(section revet.ReportSection) string {
	var b strings.Builder

	if section.Kind == revet.SectionError {
		fmt.Fprintf(&b, "%s: %s", section.Title, section.Error)
		return b.String()
	}

	b.WriteString(section.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(section.Title)))
	b.WriteString("\n")

	switch section.Kind {
	case revet.SectionSummary:
		b.WriteString(r.summaryTable(section.Summary))
	case revet.SectionDistribution:
		b.WriteString(r.distributionTable(section.Distribution))
	case revet.SectionPipeline:
		b.WriteString(r.renderPipeline(section.Pipeline))
	case revet.SectionOverallStats:
		b.WriteString(r.overallStatsTable(section.OverallStats))
	case revet.SectionRatings:
		b.WriteString(r.renderRatings(section.Ratings))
	case revet.SectionCompanies:
		b.WriteString(r.companiesTable(section.Companies))
	case revet.SectionClassifications:
		b.WriteString(r.classificationsTable(section.Classifications))
	case revet.SectionSamples:
		b.WriteString(r.renderSamples(section.Samples))
	}

	return b.String()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) summaryTable(summary *revet.SummaryView) string {
	if summary == nil {
		return ""
	}
	t := newTable()
	t.AppendHeader(table.Row{"Reviews Analyzed", "Avg Confidence", "Total Violations", "Violation Rate"})
	t.AppendRow(table.Row{summary.TotalAnalyzed, summary.AverageConfidence, summary.TotalViolations, summary.ViolationRate})
	return t.Render()
}

func (r *Renderer) distributionTable(entries []revet.DistributionEntry) string {
	t := newTable()
	t.AppendHeader(table.Row{"Status", "Reviews"})
	for _, entry := range entries {
		t.AppendRow(table.Row{fmt.Sprintf("%s %s", entry.Badge.Icon, entry.Badge.Label), entry.Count})
	}
	return t.Render()
}

func (r *Renderer) renderPipeline(steps []revet.PipelineStepView) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, step.Step)
		fmt.Fprintf(&b, "   %s\n", step.Description)
		for _, detail := range step.Details {
			fmt.Fprintf(&b, "   %s: %s\n", detail.Label, detail.Value)
		}
	}
	return b.String()
}

func (r *Renderer) overallStatsTable(stats *revet.OverallStatsView) string {
	if stats == nil {
		return ""
	}
	t := newTable()
	t.AppendHeader(table.Row{"Total Reviews", "Companies", "Authors"})
	t.AppendRow(table.Row{stats.TotalReviews, stats.TotalCompanies, stats.TotalAuthors})
	return t.Render()
}

func (r *Renderer) renderRatings(ratings *revet.RatingsView) string {
	if ratings == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Average Rating: %s\n", ratings.Mean)
	if len(ratings.Categories) > 0 {
		t := newTable()
		t.AppendHeader(table.Row{"Category", "Reviews"})
		for _, cat := range ratings.Categories {
			t.AppendRow(table.Row{cat.Label, cat.Count})
		}
		b.WriteString(t.Render())
	}
	return b.String()
}

func (r *Renderer) companiesTable(companies []revet.CompanyView) string {
	t := newTable()
	t.AppendHeader(table.Row{"Company", "Average", "", "Reviews"})
	for _, company := range companies {
		t.AppendRow(table.Row{company.Name, company.Mean, company.Stars, company.Count})
	}
	return t.Render()
}

func (r *Renderer) classificationsTable(entries []revet.ClassificationView) string {
	t := newTable()
	t.AppendHeader(table.Row{"Classification", "Reviews", "Share"})
	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Label, entry.Count, revet.FormatNumber(entry.Percent) + "%"})
	}
	return t.Render()
}

func (r *Renderer) renderSamples(groups []revet.SampleGroupView) string {
	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s]\n", group.Label)
		for _, review := range group.Reviews {
			if review.Stars != "" {
				fmt.Fprintf(&b, "  %s %s\n", review.Author, review.Stars)
			} else {
				fmt.Fprintf(&b, "  %s\n", review.Author)
			}
			fmt.Fprintf(&b, "  %s\n", review.Text)
			fmt.Fprintf(&b, "  %s • %s\n", review.Company, group.Label)
		}
	}
	return b.String()
}
