package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/revetio/revet"
)

// Surface runs the analyzer TUI over the given analyzers.
type Surface struct {
	analyzer revet.ReviewAnalyzer
	csv      revet.CSVAnalyzer
	opts     []ModelOption
}

// NewSurface creates a new Surface.
func NewSurface(analyzer revet.ReviewAnalyzer, csv revet.CSVAnalyzer, opts ...ModelOption) *Surface {
	return &Surface{analyzer: analyzer, csv: csv, opts: opts}
}

// Run displays the analyzer and blocks until the user exits.
func (s *Surface) Run(_ context.Context) error {
	m := NewModel(s.analyzer, s.csv, s.opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
