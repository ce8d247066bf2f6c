// Package bubbletea provides the component-based terminal surface for the
// review analyzer using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/revetio/revet"
)

// Tab identifies which form tab is active.
type Tab int

// Tab constants.
const (
	TabReview Tab = iota
	TabBatch
)

// Review form field indices, in focus order.
const (
	fieldText = iota
	fieldPlace
	fieldRating
	fieldType
	reviewFieldCount
)

// Messages delivered by the async submission commands.
type (
	reviewVerdictMsg struct{ view revet.ResultView }
	reviewFailedMsg  struct{ message string }
	batchReportMsg   struct {
		sections []revet.ReportSection
		metadata *revet.BatchMetadata
	}
	batchFailedMsg struct{ message string }
)

// Model is the Bubble Tea model for the analyzer surface. It drives two
// independent submission flows, one per tab, over the shared domain core.
type Model struct {
	// Collaborators
	analyzer revet.ReviewAnalyzer
	csv      revet.CSVAnalyzer
	theme    revet.Theme
	renderer *lipgloss.Renderer

	// UI components
	textInput   textarea.Model
	placeInput  textinput.Model
	ratingInput textinput.Model
	typeInput   textinput.Model
	csvInput    textinput.Model
	spin        spinner.Model
	results     viewport.Model

	// State
	activeTab   Tab
	focusIndex  int
	sampleIndex int
	reviewFlow  revet.Flow
	batchFlow   revet.Flow
	reviewErr   string
	batchErr    string
	ready       bool

	width, height int

	keymap KeyMap
}

// plainTheme renders without color. Used until a theme is supplied.
type plainTheme struct{}

func (plainTheme) Styles() revet.Styles {
	return revet.Styles{}
}

// palette returns the theme's chrome colors, or the zero palette for themes
// that carry none.
func (m Model) palette() revet.Palette {
	if p, ok := m.theme.(revet.PaletteProvider); ok {
		return p.Palette()
	}
	return revet.Palette{}
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme sets the color theme.
func WithTheme(theme revet.Theme) ModelOption {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithRenderer sets the lipgloss renderer used for styling. Tests use this
// to force a deterministic color profile.
func WithRenderer(renderer *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = renderer
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(keymap KeyMap) ModelOption {
	return func(m *Model) {
		m.keymap = keymap
	}
}

// NewModel creates a new Model submitting reviews through the given
// analyzers.
func NewModel(analyzer revet.ReviewAnalyzer, csv revet.CSVAnalyzer, opts ...ModelOption) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type the review text here..."
	ta.CharLimit = revet.TextLimit
	ta.ShowLineNumbers = false
	ta.Focus()

	place := textinput.New()
	place.Placeholder = "Place name (optional)"

	rating := textinput.New()
	rating.Placeholder = "Star rating 1-5 (optional)"

	btype := textinput.New()
	btype.Placeholder = "Business type (optional)"

	csvPath := textinput.New()
	csvPath.Placeholder = "Path to a .csv file"

	m := Model{
		analyzer:    analyzer,
		csv:         csv,
		theme:       plainTheme{},
		textInput:   ta,
		placeInput:  place,
		ratingInput: rating,
		typeInput:   btype,
		csvInput:    csvPath,
		spin:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		keymap:      DefaultKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		if !m.reviewFlow.Submitting() && !m.batchFlow.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case reviewVerdictMsg:
		m.reviewFlow.Succeed()
		m.results.SetContent(renderResult(msg.view, m.theme.Styles(), m.palette(), m.renderer))
		m.results.GotoTop()
		return m, nil

	case reviewFailedMsg:
		m.reviewFlow.Fail(msg.message)
		m.reviewErr = "Analysis failed: " + msg.message
		return m, nil

	case batchReportMsg:
		m.batchFlow.Succeed()
		m.results.SetContent(renderSections(msg.sections, msg.metadata, m.theme.Styles(), m.palette(), m.renderer))
		m.results.GotoTop()
		return m, nil

	case batchFailedMsg:
		m.batchFlow.Fail(msg.message)
		m.batchErr = "CSV analysis failed: " + msg.message
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.SwitchTab):
		if m.activeTab == TabReview {
			m.activeTab = TabBatch
			m.blurReviewFields()
			m.csvInput.Focus()
		} else {
			m.activeTab = TabReview
			m.csvInput.Blur()
			m.focusReviewField(m.focusIndex)
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextField) && m.activeTab == TabReview:
		m.focusReviewField((m.focusIndex + 1) % reviewFieldCount)
		return m, nil

	case key.Matches(msg, m.keymap.PrevField) && m.activeTab == TabReview:
		m.focusReviewField((m.focusIndex - 1 + reviewFieldCount) % reviewFieldCount)
		return m, nil

	case key.Matches(msg, m.keymap.Sample) && m.activeTab == TabReview:
		m.textInput.SetValue(revet.SampleReviews[m.sampleIndex])
		m.sampleIndex = (m.sampleIndex + 1) % len(revet.SampleReviews)
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		if m.activeTab == TabReview {
			return m, m.submitReview()
		}
		return m, m.submitBatch()

	case key.Matches(msg, m.keymap.ScrollUp):
		m.results.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keymap.ScrollDown):
		m.results.HalfPageDown()
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.activeTab == TabBatch {
		m.csvInput, cmd = m.csvInput.Update(msg)
		return m, cmd
	}
	switch m.focusIndex {
	case fieldText:
		m.textInput, cmd = m.textInput.Update(msg)
	case fieldPlace:
		m.placeInput, cmd = m.placeInput.Update(msg)
	case fieldRating:
		m.ratingInput, cmd = m.ratingInput.Update(msg)
	case fieldType:
		m.typeInput, cmd = m.typeInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusReviewField(idx int) {
	m.blurReviewFields()
	m.focusIndex = idx
	switch idx {
	case fieldText:
		m.textInput.Focus()
	case fieldPlace:
		m.placeInput.Focus()
	case fieldRating:
		m.ratingInput.Focus()
	case fieldType:
		m.typeInput.Focus()
	}
}

func (m *Model) blurReviewFields() {
	m.textInput.Blur()
	m.placeInput.Blur()
	m.ratingInput.Blur()
	m.typeInput.Blur()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.textInput.SetWidth(msg.Width - 4)
	m.placeInput.Width = msg.Width - 4
	m.ratingInput.Width = msg.Width - 4
	m.typeInput.Width = msg.Width - 4
	m.csvInput.Width = msg.Width - 4

	// Reserve rows for the tab bar, form fields and status line.
	resultsHeight := msg.Height - 16
	if resultsHeight < 3 {
		resultsHeight = 3
	}
	if !m.ready {
		m.results = viewport.New(msg.Width, resultsHeight)
		m.ready = true
	} else {
		m.results.Width = msg.Width
		m.results.Height = resultsHeight
	}

	return m, nil
}

// submitReview validates the form and launches the single-review request.
// Validation failures surface inline without entering the submitting state.
func (m *Model) submitReview() tea.Cmd {
	text := m.textInput.Value()
	if err := revet.ValidateReviewText(text); err != nil {
		m.reviewErr = err.Error()
		return nil
	}
	if !m.reviewFlow.Submit() {
		return nil
	}
	m.reviewErr = ""
	// A new submission supersedes the previous verdict.
	m.results.SetContent("")

	sub := revet.ReviewSubmission{
		Text:         text,
		PlaceName:    strings.TrimSpace(m.placeInput.Value()),
		BusinessType: strings.TrimSpace(m.typeInput.Value()),
	}
	if v := strings.TrimSpace(m.ratingInput.Value()); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			sub.StarRating = &r
		}
	}

	analyzer := m.analyzer
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		res, err := analyzer.AnalyzeReview(context.Background(), sub)
		if err != nil {
			return reviewFailedMsg{message: err.Error()}
		}
		return reviewVerdictMsg{view: revet.BuildResultView(*res)}
	})
}

// submitBatch validates the file path and launches the CSV upload. The
// engine's own rejection (success=false) still arrives as a report, rendered
// as an error section.
func (m *Model) submitBatch() tea.Cmd {
	path := strings.TrimSpace(m.csvInput.Value())
	if err := revet.ValidateCSVFile(path); err != nil {
		m.batchErr = err.Error()
		return nil
	}
	if !m.batchFlow.Submit() {
		return nil
	}
	m.batchErr = ""
	m.results.SetContent("")

	csv := m.csv
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return batchFailedMsg{message: err.Error()}
		}
		defer f.Close()

		out, err := csv.AnalyzeCSV(context.Background(), filepath.Base(path), f)
		if err != nil {
			return batchFailedMsg{message: err.Error()}
		}
		return batchReportMsg{
			sections: revet.BuildBatchSections(*out),
			metadata: out.Metadata,
		}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(m.renderTabBar())
	s.WriteString("\n\n")

	if m.activeTab == TabReview {
		s.WriteString(m.renderReviewForm())
	} else {
		s.WriteString(m.renderBatchForm())
	}

	s.WriteString("\n")
	s.WriteString(m.renderStatusLine())
	s.WriteString("\n")
	s.WriteString(m.results.View())

	return s.String()
}

func (m Model) renderTabBar() string {
	palette := m.palette()
	active := newStyle(m.renderer).Bold(true).Underline(true)
	if palette.Accent != "" {
		active = active.Foreground(lipgloss.Color(palette.Accent))
	}
	inactive := mutedStyle(palette, m.renderer)

	review := "Single Review"
	batch := "CSV Batch"
	if m.activeTab == TabReview {
		return active.Render(review) + "  " + inactive.Render(batch)
	}
	return inactive.Render(review) + "  " + active.Render(batch)
}

func (m Model) renderReviewForm() string {
	var s strings.Builder
	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	s.WriteString(mutedStyle(m.palette(), m.renderer).Render(
		fmt.Sprintf("%d/%d", len([]rune(m.textInput.Value())), revet.TextLimit)))
	s.WriteString("\n")
	s.WriteString(m.placeInput.View())
	s.WriteString("\n")
	s.WriteString(m.ratingInput.View())
	s.WriteString("\n")
	s.WriteString(m.typeInput.View())
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderBatchForm() string {
	return m.csvInput.View() + "\n"
}

func (m Model) renderStatusLine() string {
	flow := &m.reviewFlow
	errMsg := m.reviewErr
	idle, busy := "ctrl+s to analyze", "Analyzing..."
	if m.activeTab == TabBatch {
		flow = &m.batchFlow
		errMsg = m.batchErr
		idle, busy = "ctrl+s to upload", "Analyzing CSV..."
	}

	if flow.Submitting() {
		return m.spin.View() + " " + flow.Caption(idle, busy)
	}
	if errMsg != "" {
		return styleFromColorPair(m.theme.Styles().Error, m.renderer).Render(errMsg)
	}
	return mutedStyle(m.palette(), m.renderer).Render(flow.Caption(idle, busy))
}
