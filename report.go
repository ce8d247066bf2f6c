package revet

// maxCompanyEntries caps the company leaderboard at the first entries of the
// mapping as received; ordering is the engine's responsibility.
const maxCompanyEntries = 6

// SectionKind discriminates report sections.
type SectionKind int

// Report section kinds.
const (
	SectionError SectionKind = iota
	SectionSummary
	SectionDistribution
	SectionPipeline
	SectionOverallStats
	SectionRatings
	SectionCompanies
	SectionClassifications
	SectionSamples
)

// ReportSection is one renderable block of a batch report. Kind selects
// which payload field is populated; surfaces render sections in order.
type ReportSection struct {
	Kind  SectionKind
	Title string

	Error           string
	Summary         *SummaryView
	Distribution    []DistributionEntry
	Pipeline        []PipelineStepView
	OverallStats    *OverallStatsView
	Ratings         *RatingsView
	Companies       []CompanyView
	Classifications []ClassificationView
	Samples         []SampleGroupView
}

// SummaryView holds the four headline numbers of a batch run.
type SummaryView struct {
	TotalAnalyzed     int
	AverageConfidence string // e.g. "87.5%"
	TotalViolations   int
	ViolationRate     string // e.g. "12.5%"
}

// DistributionEntry pairs a status badge with its count.
type DistributionEntry struct {
	Badge StatusBadge
	Count int
}

// PipelineStepView is one preprocessing pipeline stage.
type PipelineStepView struct {
	Step        string
	Description string
	Details     []DetailView
}

// DetailView is one labeled detail line under a pipeline stage.
type DetailView struct {
	Label string
	Value string
}

// OverallStatsView is the dashboard headline count section.
type OverallStatsView struct {
	TotalReviews   int
	TotalCompanies int
	TotalAuthors   int
}

// RatingsView is the dashboard rating section. Mean is "N/A" when the
// engine supplied no statistics.
type RatingsView struct {
	Mean       string
	Categories []CategoryView
}

// CategoryView is one rating bucket line.
type CategoryView struct {
	Label string
	Count int
}

// CompanyView is one leaderboard entry.
type CompanyView struct {
	Name  string
	Mean  string
	Stars string
	Count int
}

// ClassificationView is one classification distribution line.
type ClassificationView struct {
	Label   string
	Count   int
	Percent float64
}

// SampleGroupView groups rendered sample reviews by classification.
type SampleGroupView struct {
	Label   string
	Reviews []SampleReviewView
}

// SampleReviewView is one rendered sample review.
type SampleReviewView struct {
	Author  string
	Stars   string
	Text    string
	Company string
}

// BuildBatchSections maps a batch outcome to its report sections. When the
// engine rejected the batch, the literal error is the only section; the two
// success envelopes otherwise contribute their sections independently.
func BuildBatchSections(out BatchOutcome) []ReportSection {
	if out.Failed() {
		return []ReportSection{{
			Kind:  SectionError,
			Title: "CSV Analysis Error",
			Error: out.Err,
		}}
	}

	var sections []ReportSection
	if out.Summary != nil {
		sections = append(sections, buildSummarySections(*out.Summary)...)
	}
	if out.Dashboard != nil {
		sections = append(sections, buildDashboardSections(*out.Dashboard)...)
	}
	return sections
}

func buildSummarySections(report BatchReport) []ReportSection {
	summary := report.Summary

	sections := []ReportSection{{
		Kind:  SectionSummary,
		Title: "Analysis Summary",
		Summary: &SummaryView{
			TotalAnalyzed:     summary.TotalAnalyzed,
			AverageConfidence: FormatPercent(summary.AverageConfidence),
			TotalViolations:   summary.TotalViolations,
			ViolationRate:     FormatPercent(summary.ViolationRate),
		},
	}}

	dist := ReportSection{Kind: SectionDistribution, Title: "Review Status Distribution"}
	for _, entry := range summary.StatusDistribution {
		dist.Distribution = append(dist.Distribution, DistributionEntry{
			Badge: BadgeFor(entry.Tag),
			Count: entry.Count,
		})
	}
	sections = append(sections, dist)

	pipeline := ReportSection{Kind: SectionPipeline, Title: "Data Preprocessing Pipeline"}
	for _, step := range report.PreprocessingSteps {
		view := PipelineStepView{Step: step.Step, Description: step.Description}
		for _, detail := range step.Details {
			view.Details = append(view.Details, DetailView{
				Label: HumanizeKey(detail.Key),
				Value: detail.Value.String(),
			})
		}
		pipeline.Pipeline = append(pipeline.Pipeline, view)
	}
	sections = append(sections, pipeline)

	return sections
}

func buildDashboardSections(dash DashboardReport) []ReportSection {
	var sections []ReportSection

	if stats := dash.OverallStats; stats != nil {
		sections = append(sections, ReportSection{
			Kind:  SectionOverallStats,
			Title: "Overall Statistics",
			OverallStats: &OverallStatsView{
				TotalReviews:   stats.TotalReviews,
				TotalCompanies: stats.TotalCompanies,
				TotalAuthors:   stats.TotalAuthors,
			},
		})
	}

	if ratings := dash.Ratings; ratings != nil {
		view := &RatingsView{Mean: "N/A"}
		// A zero mean means no ratings were parsed; it stays unavailable.
		if ratings.Statistics != nil && ratings.Statistics.Mean != 0 {
			view.Mean = FormatNumber(ratings.Statistics.Mean)
		}
		for _, cat := range ratings.Categories {
			view.Categories = append(view.Categories, CategoryView{
				Label: HumanizeKey(cat.Name),
				Count: cat.Count,
			})
		}
		sections = append(sections, ReportSection{
			Kind:    SectionRatings,
			Title:   "Rating Analysis",
			Ratings: view,
		})
	}

	if companies := dash.Companies; companies != nil {
		section := ReportSection{Kind: SectionCompanies, Title: "Top Companies"}
		for i, company := range companies.AverageRatings {
			if i >= maxCompanyEntries {
				break
			}
			section.Companies = append(section.Companies, CompanyView{
				Name:  company.Name,
				Mean:  FormatNumber(company.Mean),
				Stars: Stars(company.Mean),
				Count: company.Count,
			})
		}
		sections = append(sections, section)
	}

	if class := dash.Classifications; class != nil {
		section := ReportSection{Kind: SectionClassifications, Title: "Review Classifications"}
		for _, entry := range class.Distribution {
			section.Classifications = append(section.Classifications, ClassificationView{
				Label:   HumanizeKey(entry.Tag),
				Count:   entry.Count,
				Percent: class.Percentages[entry.Tag],
			})
		}
		sections = append(sections, section)
	}

	if len(dash.SampleReviews) > 0 {
		section := ReportSection{Kind: SectionSamples, Title: "Sample Reviews"}
		for _, group := range dash.SampleReviews {
			view := SampleGroupView{Label: HumanizeKey(group.Tag)}
			for _, review := range group.Reviews {
				stars := ""
				if review.Rating.Valid {
					stars = Stars(review.Rating.Value)
				}
				view.Reviews = append(view.Reviews, SampleReviewView{
					Author:  review.Author,
					Stars:   stars,
					Text:    review.Text,
					Company: review.Company,
				})
			}
			section.Samples = append(section.Samples, view)
		}
		sections = append(sections, section)
	}

	return sections
}
