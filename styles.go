package revet

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for every badge and label the surfaces render.
type Styles struct {
	Authentic     ColorPair // Badge style for authentic reviews
	Advertisement ColorPair // Badge style for promotional content
	NoVisit       ColorPair // Badge style for reviews without a visit
	OffTopic      ColorPair // Badge style for irrelevant reviews
	Inappropriate ColorPair // Badge style for offensive content
	PersonalInfo  ColorPair // Badge style for leaked personal data
	Fake          ColorPair // Badge style for fabricated reviews (legacy)
	Suspicious    ColorPair // Badge style for suspicious patterns (legacy)
	Unknown       ColorPair // Neutral fallback for unrecognized tags

	Positive ColorPair // Sentiment label style
	Negative ColorPair // Sentiment label style
	Neutral  ColorPair // Sentiment label style, also the sentiment fallback

	Error   ColorPair // Inline error banners
	Keyword ColorPair // Keyword badges
	Rating  ColorPair // Star glyphs
}

// ForStatus resolves the badge style for a status tag. Unrecognized tags get
// the neutral Unknown style.
func (s Styles) ForStatus(tag StatusTag) ColorPair {
	switch tag {
	case StatusAuthentic:
		return s.Authentic
	case StatusAdvertisement:
		return s.Advertisement
	case StatusNoVisit:
		return s.NoVisit
	case StatusOffTopic:
		return s.OffTopic
	case StatusInappropriate:
		return s.Inappropriate
	case StatusPersonalInfo:
		return s.PersonalInfo
	case StatusFake:
		return s.Fake
	case StatusSuspicious:
		return s.Suspicious
	default:
		return s.Unknown
	}
}

// ForSentiment resolves the label style for a sentiment tag. Unrecognized
// tags get the neutral style.
func (s Styles) ForSentiment(tag SentimentTag) ColorPair {
	switch tag {
	case SentimentPositive:
		return s.Positive
	case SentimentNegative:
		return s.Negative
	default:
		return s.Neutral
	}
}

// Palette provides semantic colors for surface chrome around the badges.
type Palette struct {
	Background string
	Foreground string

	Heading   string
	Muted     string
	Accent    string
	Surface   string
	Separator string

	Success string
	Warning string
	Danger  string
	Info    string
}

// Theme provides styles for rendering analysis results.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

// PaletteProvider is implemented by themes that also carry chrome colors.
// Surfaces fall back to attribute-only styling (bold, faint) when a theme
// provides no palette.
type PaletteProvider interface {
	Palette() Palette
}
