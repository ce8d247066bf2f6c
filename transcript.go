package revet

import "time"

// TranscriptEntry pairs a submission with the verdict it received. Entries
// are only written when a transcript path is configured; nothing persists
// otherwise.
type TranscriptEntry struct {
	Submission ReviewSubmission `json:"submission"`
	Result     *AnalysisResult  `json:"result"`
	ReceivedAt time.Time        `json:"received_at"`
}

// TranscriptAppender appends entries to a transcript.
type TranscriptAppender interface {
	Append(path string, entry TranscriptEntry) error
}

// TranscriptLoader loads a saved transcript for replay.
type TranscriptLoader interface {
	Load(path string) ([]TranscriptEntry, error)
}
