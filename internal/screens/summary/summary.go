package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/ui/layout"
	"github.com/kukulab/kuku/internal/ui/theme"
)

// reportSentMsg reports the outcome of sending the study report.
type reportSentMsg struct {
	Err error
}

// SummaryScreen displays the results of a finished practice session.
type SummaryScreen struct {
	summary   engine.Summary
	pointsWon int
	mailbox   *messaging.Mailbox
	sent      bool
	sendErr   string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. The mailbox may be nil, in which
// case the send-report action is hidden.
func New(summary engine.Summary, pointsWon int, mailbox *messaging.Mailbox) *SummaryScreen {
	return &SummaryScreen{
		summary:   summary,
		pointsWon: pointsWon,
		mailbox:   mailbox,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.mailbox != nil && !s.sent {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Send report to parent"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSentMsg:
		if msg.Err != nil {
			s.sendErr = msg.Err.Error()
		} else {
			s.sent = true
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "s", "S":
			return s, s.sendReport()
		}
	}
	return s, nil
}

// sendReport mails today's results to the parent inbox.
func (s *SummaryScreen) sendReport() tea.Cmd {
	if s.mailbox == nil || s.sent {
		return nil
	}
	sum := s.summary
	mailbox := s.mailbox
	return func() tea.Msg {
		_, err := mailbox.SendStudyReport(context.Background(), messaging.StudySession{
			TotalProblems:  sum.TotalProblems,
			CorrectAnswers: sum.CorrectAnswers,
			AverageTimeSec: sum.AverageTimeSec,
			NewMasteries:   sum.NewMasteries,
			Date:           time.Now(),
		})
		return reportSentMsg{Err: err}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")

	head := "Practice complete!"
	if sum.Perfect {
		head = "Perfect score! Amazing!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(head))
	b.WriteString("\n\n")

	var accuracy float64
	if sum.TotalProblems > 0 {
		accuracy = float64(sum.CorrectAnswers) / float64(sum.TotalProblems) * 100
	}
	statsLine := fmt.Sprintf("Problems: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalProblems, sum.CorrectAnswers, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Average time: %.1fs        Points won: %d",
			sum.AverageTimeSec, s.pointsWon)))
	b.WriteString("\n\n")

	if len(sum.NewMasteries) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("New masteries")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, t := range sum.NewMasteries {
			line := fmt.Sprintf("  ★ Table of %d mastered!", t)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.sent {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Report sent to your parent!"))
		b.WriteString("\n")
	} else if s.sendErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Could not send report: %s", s.sendErr)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
