// Package history shows the recent answer log, newest first.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/store"
	"github.com/kukulab/kuku/internal/ui/layout"
	"github.com/kukulab/kuku/internal/ui/theme"
)

// historyLimit is how many answers the screen loads.
const historyLimit = 50

// Source provides the answer rows the screen displays.
type Source interface {
	RecentAnswers(ctx context.Context, limit int) ([]store.AnswerRecord, error)
}

type historyLoadedMsg struct {
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen displays recently answered questions.
type HistoryScreen struct {
	source  Source
	answers []store.AnswerRecord
	offset  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source Source) *HistoryScreen {
	return &HistoryScreen{source: source}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		answers, err := s.source.RecentAnswers(context.Background(), historyLimit)
		return historyLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.answers)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing answered yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.answers) {
		end = len(s.answers)
	}

	lastDay := ""
	for _, a := range s.answers[s.offset:end] {
		day := a.At.Format("Jan 02, 2006")
		if day != lastDay {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(day)))
			b.WriteString("\n")
			lastDay = day
		}

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		note := fmt.Sprintf("%.1fs", a.Elapsed.Seconds())
		if a.TimedOut {
			note = "timed out"
		}
		pts := ""
		if a.Points > 0 {
			pts = fmt.Sprintf("  +%d", a.Points)
		}

		line := fmt.Sprintf("  %s  %d × %d = %d   %s%s",
			mark, a.First, a.Second, a.First*a.Second, note, pts)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
