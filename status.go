package revet

// StatusTag is the engine's classification label for a review. The set below
// is closed; anything else renders with the Unknown fallback, never an error.
type StatusTag string

// Classification labels assigned by the engine.
const (
	StatusAuthentic     StatusTag = "authentic"
	StatusAdvertisement StatusTag = "advertisement"
	StatusNoVisit       StatusTag = "no-visit"
	StatusOffTopic      StatusTag = "off-topic"
	StatusInappropriate StatusTag = "inappropriate"
	StatusPersonalInfo  StatusTag = "personal-info"

	// Legacy labels still emitted by older engine versions.
	StatusFake       StatusTag = "fake"
	StatusSuspicious StatusTag = "suspicious"
)

// Known reports whether the tag belongs to the closed set.
func (t StatusTag) Known() bool {
	switch t {
	case StatusAuthentic, StatusAdvertisement, StatusNoVisit, StatusOffTopic,
		StatusInappropriate, StatusPersonalInfo, StatusFake, StatusSuspicious:
		return true
	default:
		return false
	}
}

// Label returns the display label for the tag, "Unknown" for anything
// outside the closed set.
func (t StatusTag) Label() string {
	switch t {
	case StatusAuthentic:
		return "Authentic"
	case StatusAdvertisement:
		return "Advertisement"
	case StatusNoVisit:
		return "No Visit"
	case StatusOffTopic:
		return "Off-Topic"
	case StatusInappropriate:
		return "Inappropriate"
	case StatusPersonalInfo:
		return "Personal Info"
	case StatusFake:
		return "Fake"
	case StatusSuspicious:
		return "Suspicious"
	default:
		return "Unknown"
	}
}

// SentimentTag is the engine's sentiment label for the review text.
type SentimentTag string

// Sentiment labels. Anything else gets the neutral color treatment.
const (
	SentimentPositive SentimentTag = "positive"
	SentimentNegative SentimentTag = "negative"
	SentimentNeutral  SentimentTag = "neutral"
)
