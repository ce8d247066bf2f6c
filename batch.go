package revet

// BatchOutcome is the decoded result of a CSV submission. The batch
// endpoints answer with one of two envelopes: the summary shape
// ({success, summary, preprocessing_steps} or {success: false, error}) and
// the dashboard shape ({dashboard, metadata}). Exactly one of Summary,
// Dashboard or Err is set; Metadata accompanies Dashboard when present.
type BatchOutcome struct {
	Summary   *BatchReport
	Dashboard *DashboardReport
	Metadata  *BatchMetadata
	Err       string
}

// Failed reports whether the engine rejected the batch (success=false).
func (o BatchOutcome) Failed() bool {
	return o.Err != ""
}

// BatchReport is the summary-shape payload of a successful batch run.
type BatchReport struct {
	Summary            BatchSummary        `json:"summary"`
	PreprocessingSteps []PreprocessingStep `json:"preprocessing_steps"`
}

// BatchSummary holds the headline numbers for a batch run.
type BatchSummary struct {
	TotalAnalyzed      int          `json:"total_analyzed"`
	AverageConfidence  float64      `json:"average_confidence"` // in [0,1]
	TotalViolations    int          `json:"total_violations"`
	ViolationRate      float64      `json:"violation_rate"` // in [0,1]
	StatusDistribution StatusCounts `json:"status_distribution"`
}

// PreprocessingStep describes one stage of the engine's CSV pipeline.
type PreprocessingStep struct {
	Step        string  `json:"step"`
	Description string  `json:"description"`
	Details     Details `json:"details,omitempty"`
}

// BatchMetadata accompanies the dashboard envelope.
type BatchMetadata struct {
	FileName     string `json:"file_name"`
	TotalReviews int    `json:"total_reviews"`
	ProcessedAt  string `json:"processed_at"`
}

// DashboardReport is the richer aggregate shape returned by the
// upload-dashboard endpoint. Every subsection is optional and renders
// independently; absence of one never suppresses the others.
type DashboardReport struct {
	OverallStats    *OverallStats            `json:"overall_stats,omitempty"`
	Ratings         *RatingBreakdown         `json:"ratings,omitempty"`
	Companies       *CompanyBreakdown        `json:"companies,omitempty"`
	Classifications *ClassificationBreakdown `json:"classifications,omitempty"`
	SampleReviews   SampleGroups             `json:"sample_reviews,omitempty"`
}

// OverallStats is the dashboard's headline count section.
type OverallStats struct {
	TotalReviews   int `json:"total_reviews"`
	TotalCompanies int `json:"total_companies"`
	TotalAuthors   int `json:"total_authors"`
}

// RatingBreakdown is the dashboard's rating section.
type RatingBreakdown struct {
	Statistics *RatingStatistics `json:"statistics,omitempty"`
	Categories CategoryCounts    `json:"categories,omitempty"`
}

// RatingStatistics holds aggregate rating statistics.
type RatingStatistics struct {
	Mean float64 `json:"mean"`
}

// CompanyBreakdown is the dashboard's per-company section.
type CompanyBreakdown struct {
	AverageRatings CompanyRatings `json:"average_ratings"`
}

// ClassificationBreakdown is the dashboard's classification section.
// Distribution order is engine-determined; Percentages is a lookup keyed
// from it (missing keys default to 0).
type ClassificationBreakdown struct {
	Distribution TagCounts          `json:"distribution"`
	Percentages  map[string]float64 `json:"percentages"`
}

// SampleReview is one representative review shown on the dashboard.
type SampleReview struct {
	Author  string `json:"author"`
	Rating  Rating `json:"rating"`
	Text    string `json:"text"`
	Company string `json:"company"`
}
