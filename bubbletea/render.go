package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/revetio/revet"
)

// styleFromColorPair converts a ColorPair to a lipgloss style.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp revet.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// headingStyle styles section headings, tinted from the palette when the
// theme carries one.
func headingStyle(palette revet.Palette, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer).Bold(true)
	if palette.Heading != "" {
		style = style.Foreground(lipgloss.Color(palette.Heading))
	}
	return style
}

// mutedStyle styles secondary chrome such as captions and metadata lines.
func mutedStyle(palette revet.Palette, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer).Faint(true)
	if palette.Muted != "" {
		style = style.Foreground(lipgloss.Color(palette.Muted))
	}
	return style
}

// renderResult converts a ResultView to a styled string for the results
// viewport.
func renderResult(view revet.ResultView, styles revet.Styles, palette revet.Palette, renderer *lipgloss.Renderer) string {
	badgeStyle := styleFromColorPair(styles.ForStatus(view.Badge.Tag), renderer).Bold(true).Padding(0, 1)
	sentimentStyle := styleFromColorPair(styles.ForSentiment(view.Sentiment.Tag), renderer)
	keywordStyle := styleFromColorPair(styles.Keyword, renderer).Padding(0, 1)
	ratingStyle := styleFromColorPair(styles.Rating, renderer)
	heading := headingStyle(palette, renderer)
	muted := mutedStyle(palette, renderer)

	var sb strings.Builder

	verdict := "Potentially Problematic"
	if view.Legitimate {
		verdict = "Legitimate"
	}
	sb.WriteString(heading.Render("Analysis Result: " + verdict))
	sb.WriteString("\n\n")

	sb.WriteString(badgeStyle.Render(fmt.Sprintf("%s %s", view.Badge.Icon, view.Badge.Label)))
	sb.WriteString("  ")
	sb.WriteString(muted.Render("Confidence: " + view.Confidence))
	sb.WriteString("\n\n")

	sb.WriteString("Sentiment: ")
	sb.WriteString(sentimentStyle.Render(view.Sentiment.Label))
	sb.WriteString("\n\n")

	sb.WriteString(heading.Render("Text Analysis"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Length: %d characters\n", view.Features.Length))
	sb.WriteString(fmt.Sprintf("Word Count: %d\n", view.Features.WordCount))
	sb.WriteString(fmt.Sprintf("Readability: %s\n", view.Features.Readability))

	if len(view.Keywords) > 0 {
		sb.WriteString("\n")
		sb.WriteString(heading.Render("Key Terms"))
		sb.WriteString("\n")
		badges := make([]string, 0, len(view.Keywords))
		for _, kw := range view.Keywords {
			badges = append(badges, keywordStyle.Render(kw))
		}
		sb.WriteString(strings.Join(badges, " "))
		sb.WriteString("\n")
	}

	if view.Insights != nil {
		sb.WriteString("\n")
		sb.WriteString(heading.Render("Metadata Analysis"))
		sb.WriteString("\n")
		if view.Insights.PlaceName != "" {
			sb.WriteString(fmt.Sprintf("Place: %s\n", view.Insights.PlaceName))
		}
		if r := view.Insights.Rating; r != nil {
			sb.WriteString("Rating: ")
			sb.WriteString(ratingStyle.Render(r.Stars))
			sb.WriteString(" " + r.Label + "\n")
		}
	}

	if len(view.Violations) > 0 {
		sb.WriteString("\n")
		sb.WriteString(heading.Render("Policy Violations"))
		sb.WriteString("\n")
		for _, v := range view.Violations {
			sb.WriteString(fmt.Sprintf("%s %s: %s\n", revet.IconWarning, v.Label, v.Description))
		}
	}

	if len(view.RiskFactors) > 0 {
		sb.WriteString("\n")
		sb.WriteString(heading.Render("Risk Factors"))
		sb.WriteString("\n")
		for _, rf := range view.RiskFactors {
			sb.WriteString("• " + rf + "\n")
		}
	}

	if len(view.Recommendations) > 0 {
		sb.WriteString("\n")
		sb.WriteString(heading.Render("Recommendations"))
		sb.WriteString("\n")
		for _, rec := range view.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}

	return sb.String()
}

// renderSections converts report sections to a styled string for the results
// viewport. Section order is preserved.
func renderSections(sections []revet.ReportSection, metadata *revet.BatchMetadata, styles revet.Styles, palette revet.Palette, renderer *lipgloss.Renderer) string {
	heading := headingStyle(palette, renderer)
	muted := mutedStyle(palette, renderer)
	errorStyle := styleFromColorPair(styles.Error, renderer).Bold(true)
	ratingStyle := styleFromColorPair(styles.Rating, renderer)

	var sb strings.Builder

	if metadata != nil {
		sb.WriteString(muted.Render(fmt.Sprintf("File: %s | Total Reviews: %d | Processed: %s",
			metadata.FileName, metadata.TotalReviews, metadata.ProcessedAt)))
		sb.WriteString("\n\n")
	}

	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(heading.Render(section.Title))
		sb.WriteString("\n")

		switch section.Kind {
		case revet.SectionError:
			sb.WriteString(errorStyle.Render(section.Error))
			sb.WriteString("\n")

		case revet.SectionSummary:
			s := section.Summary
			sb.WriteString(fmt.Sprintf("Total Analyzed: %d\n", s.TotalAnalyzed))
			sb.WriteString(fmt.Sprintf("Average Confidence: %s\n", s.AverageConfidence))
			sb.WriteString(fmt.Sprintf("Total Violations: %d\n", s.TotalViolations))
			sb.WriteString(fmt.Sprintf("Violation Rate: %s\n", s.ViolationRate))

		case revet.SectionDistribution:
			for _, entry := range section.Distribution {
				badgeStyle := styleFromColorPair(styles.ForStatus(entry.Badge.Tag), renderer)
				sb.WriteString(badgeStyle.Render(fmt.Sprintf("%s %s", entry.Badge.Icon, entry.Badge.Label)))
				sb.WriteString(fmt.Sprintf(": %d\n", entry.Count))
			}

		case revet.SectionPipeline:
			for _, step := range section.Pipeline {
				sb.WriteString(fmt.Sprintf("%s: %s\n", step.Step, step.Description))
				for _, detail := range step.Details {
					sb.WriteString(muted.Render(fmt.Sprintf("  %s: %s", detail.Label, detail.Value)))
					sb.WriteString("\n")
				}
			}

		case revet.SectionOverallStats:
			s := section.OverallStats
			sb.WriteString(fmt.Sprintf("Total Reviews: %d\n", s.TotalReviews))
			sb.WriteString(fmt.Sprintf("Total Companies: %d\n", s.TotalCompanies))
			sb.WriteString(fmt.Sprintf("Total Authors: %d\n", s.TotalAuthors))

		case revet.SectionRatings:
			sb.WriteString(fmt.Sprintf("Average Rating: %s\n", section.Ratings.Mean))
			for _, cat := range section.Ratings.Categories {
				sb.WriteString(fmt.Sprintf("%s: %d\n", cat.Label, cat.Count))
			}

		case revet.SectionCompanies:
			for _, company := range section.Companies {
				sb.WriteString(company.Name)
				sb.WriteString(" ")
				sb.WriteString(ratingStyle.Render(company.Stars))
				sb.WriteString(fmt.Sprintf(" %s (%d reviews)\n", company.Mean, company.Count))
			}

		case revet.SectionClassifications:
			for _, entry := range section.Classifications {
				sb.WriteString(fmt.Sprintf("%s: %d (%.1f%%)\n", entry.Label, entry.Count, entry.Percent))
			}

		case revet.SectionSamples:
			for _, group := range section.Samples {
				sb.WriteString(heading.Render(group.Label))
				sb.WriteString("\n")
				for _, review := range group.Reviews {
					sb.WriteString(review.Author)
					if review.Stars != "" {
						sb.WriteString(" ")
						sb.WriteString(ratingStyle.Render(review.Stars))
					}
					sb.WriteString("\n")
					sb.WriteString(review.Text)
					sb.WriteString("\n")
					sb.WriteString(muted.Render(review.Company))
					sb.WriteString("\n")
				}
			}
		}
	}

	return sb.String()
}

func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}
