package revet

import "strings"

// ValidationReason identifies why a submission is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrEmptyText ValidationReason = "empty_text"
	ErrNoFile    ValidationReason = "no_file"
	ErrNotCSV    ValidationReason = "not_csv"
)

// ValidationError describes a submission rejected before any network call.
type ValidationError struct {
	Reason ValidationReason
}

// Error implements the error interface with the user-facing message.
func (e *ValidationError) Error() string {
	switch e.Reason {
	case ErrEmptyText:
		return "Please enter a review to analyze"
	case ErrNoFile:
		return "Please select a CSV file to analyze"
	case ErrNotCSV:
		return "Please select a valid CSV file"
	default:
		return "Invalid submission"
	}
}

// ValidateReviewText checks that the review text is non-empty after
// trimming whitespace. Optional metadata fields are never validated here;
// the engine owns their interpretation.
func ValidateReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Reason: ErrEmptyText}
	}
	return nil
}

// ValidateCSVFile checks that a file was selected and that its name carries
// a .csv extension (case-insensitive). Content is not inspected; column
// layout is the engine's responsibility.
func ValidateCSVFile(name string) error {
	if name == "" {
		return &ValidationError{Reason: ErrNoFile}
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return &ValidationError{Reason: ErrNotCSV}
	}
	return nil
}
