package bubbletea_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/revetio/revet"
	"github.com/revetio/revet/bubbletea"
	revetlipgloss "github.com/revetio/revet/lipgloss"
	"github.com/revetio/revet/mock"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestModel_RendersThemeColors(t *testing.T) {
	t.Parallel()

	analyzer := &mock.ReviewAnalyzer{
		AnalyzeReviewFn: func(ctx context.Context, sub revet.ReviewSubmission) (*revet.AnalysisResult, error) {
			return &revet.AnalysisResult{
				Legitimate: true,
				Status:     revet.StatusAuthentic,
				Confidence: 0.92,
			}, nil
		},
	}

	m := bubbletea.NewModel(analyzer, &mock.CSVAnalyzer{},
		bubbletea.WithTheme(revetlipgloss.DarkTheme()),
		bubbletea.WithRenderer(trueColorRenderer()),
	)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Single Review"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Great coffee.")})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	// The authentic badge renders with the dark theme's green foreground
	// (#a6e3a1) and the section headings with the palette's heading blue
	// (#89b4fa), both as truecolor escape sequences.
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Authentic")) &&
			bytes.Contains(out, []byte("38;2;166;227;161")) &&
			bytes.Contains(out, []byte("38;2;137;180;250"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
