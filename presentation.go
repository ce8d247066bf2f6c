package revet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Icons attached to status badges. Authentic gets the check; every other
// tag, recognized or not, gets the warning glyph.
const (
	IconCheck   = "✓"
	IconWarning = "⚠"
)

// Star glyphs used by rating displays.
const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// ResultView is the presentation model for a single analysis result: labels,
// badges and grouped lists ready for display, with no business logic left.
// Building it is pure; rendering the same result twice yields identical views.
type ResultView struct {
	Badge      StatusBadge
	Legitimate bool
	Confidence string // e.g. "92.0%"

	Sentiment SentimentView
	Features  FeatureView
	Keywords  []string
	Insights  *InsightView

	Violations      []ViolationView
	RiskFactors     []string
	Recommendations []string
}

// StatusBadge is the resolved badge for a status tag.
type StatusBadge struct {
	Tag   StatusTag
	Label string
	Icon  string
}

// SentimentView is the resolved sentiment label.
type SentimentView struct {
	Tag   SentimentTag
	Label string
}

// FeatureView carries the text-feature numbers with display labels.
type FeatureView struct {
	Length      int
	WordCount   int
	Readability string
}

// InsightView is the metadata section, present only when the engine
// returned insights.
type InsightView struct {
	PlaceName string
	Rating    *RatingView
}

// RatingView is a star rating display: exactly five slots, filled up to the
// rounded rating, with the verbatim numeric label alongside.
type RatingView struct {
	Slots [5]bool
	Stars string // e.g. "★★★☆☆"
	Label string // e.g. "3.4"
}

// ViolationView is one policy violation line.
type ViolationView struct {
	Label       string
	Description string
}

// BuildResultView maps an engine verdict to its presentation model.
func BuildResultView(res AnalysisResult) ResultView {
	view := ResultView{
		Badge:      BadgeFor(res.Status),
		Legitimate: res.Legitimate,
		Confidence: FormatPercent(res.Confidence),
		Sentiment: SentimentView{
			Tag:   res.Analysis.Sentiment,
			Label: titleWords(string(res.Analysis.Sentiment)),
		},
		Features: FeatureView{
			Length:      res.Analysis.TextFeatures.Length,
			WordCount:   res.Analysis.TextFeatures.WordCount,
			Readability: titleWords(res.Analysis.TextFeatures.Readability),
		},
		Keywords:        res.Analysis.TextFeatures.Keywords,
		RiskFactors:     res.Analysis.RiskFactors,
		Recommendations: res.Analysis.Recommendations,
	}

	for _, v := range res.Analysis.PolicyViolations {
		view.Violations = append(view.Violations, ViolationView{
			Label:       HumanizeTag(string(v.Type)),
			Description: v.Description,
		})
	}

	if ma := res.Analysis.MetadataAnalysis; ma != nil && ma.Insights != nil {
		insight := &InsightView{PlaceName: ma.Insights.PlaceName}
		if r := ma.Insights.StarRating; r != nil {
			insight.Rating = NewRatingView(*r)
		}
		if insight.PlaceName != "" || insight.Rating != nil {
			view.Insights = insight
		}
	}

	return view
}

// BadgeFor resolves the badge for a status tag. Unrecognized tags get the
// "Unknown" label and the warning icon; resolution never fails.
func BadgeFor(tag StatusTag) StatusBadge {
	icon := IconWarning
	if tag == StatusAuthentic {
		icon = IconCheck
	}
	return StatusBadge{Tag: tag, Label: tag.Label(), Icon: icon}
}

// NewRatingView builds the five-slot star display for a rating. Fractional
// ratings round to the nearest whole star for the slots only; the label
// shows the value verbatim.
func NewRatingView(rating float64) *RatingView {
	view := &RatingView{
		Slots: StarSlots(rating),
		Label: FormatNumber(rating),
	}
	var b strings.Builder
	for _, filled := range view.Slots {
		if filled {
			b.WriteString(StarFilled)
		} else {
			b.WriteString(StarEmpty)
		}
	}
	view.Stars = b.String()
	return view
}

// StarSlots returns five slots, each filled if its 1-based index is at most
// the rating rounded to the nearest whole star.
func StarSlots(rating float64) [5]bool {
	rounded := math.Round(rating)
	var slots [5]bool
	for i := range slots {
		slots[i] = float64(i+1) <= rounded
	}
	return slots
}

// Stars returns a run of filled star glyphs, one per rounded whole star.
// Used by the dashboard leaderboard and sample reviews.
func Stars(rating float64) string {
	n := int(math.Round(rating))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(StarFilled, n)
}

// FormatPercent renders a [0,1] ratio as a percentage with one decimal
// place, e.g. 0.92 -> "92.0%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatNumber renders a float without trailing zeros, e.g. 3.40 -> "3.4".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HumanizeTag turns a hyphenated tag into a title-cased label,
// e.g. "personal-info" -> "Personal Info".
func HumanizeTag(tag string) string {
	return titleWords(strings.ReplaceAll(tag, "-", " "))
}

// HumanizeKey turns a snake_case key into a title-cased label,
// e.g. "column_names" -> "Column Names".
func HumanizeKey(key string) string {
	return titleWords(strings.ReplaceAll(key, "_", " "))
}

func titleWords(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is stateful, so build one per call rather than sharing.
	return cases.Title(language.English).String(s)
}
