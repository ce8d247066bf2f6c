// Package jsonl persists analysis transcripts as JSONL files.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revetio/revet"
)

// Compile-time interface verification.
var (
	_ revet.TranscriptAppender = (*Transcript)(nil)
	_ revet.TranscriptLoader   = (*Transcript)(nil)
)

// maxLineSize is the maximum size for a single JSONL line (1MB). Engine
// verdicts are small; this only guards against corrupt files.
const maxLineSize = 1 << 20

// Transcript appends and loads TranscriptEntry records as JSONL.
type Transcript struct{}

// NewTranscript creates a new Transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds an entry to a JSONL file, creating parent directories if needed.
func (t *Transcript) Append(path string, entry revet.TranscriptEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	if _, err := f.WriteString("\n"); err != nil {
		return err
	}

	return nil
}

// Load reads entries from a JSONL file. Returns an empty slice if the file
// doesn't exist.
func (t *Transcript) Load(path string) ([]revet.TranscriptEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []revet.TranscriptEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry revet.TranscriptEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
