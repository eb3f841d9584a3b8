package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/ui/components"
	"github.com/kukulab/kuku/internal/ui/theme"
)

// gridCols is the answer-grid width; nine choices render as 3x3.
const gridCols = 3

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	switch s.phase {
	case phaseModeSelect:
		return s.renderModeSelect(width)
	case phaseTableSelect:
		return s.renderTableSelect(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestionView(width)
	}
}

func (s *PracticeScreen) renderModeSelect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How do you want to practice?"))
	b.WriteString("\n\n")

	for i, opt := range modeOptions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.modeSelected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+opt.Label)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PracticeScreen) renderTableSelect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Which table?"))
	b.WriteString("\n\n")

	var cells []string
	for t := question.MinTable; t <= question.MaxTable; t++ {
		label := fmt.Sprintf(" %d ", t)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if t-1 == s.tableSel {
			style = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true)
		}
		cells = append(cells, style.Render(label))
	}
	row := strings.Join(cells, " ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press 1-9 or Enter"))
	return b.String()
}

func (s *PracticeScreen) renderQuestionView(width int) string {
	var b strings.Builder

	// Round info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d", s.answered+1))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d   ◆ %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.correctCount,
			s.pointsWon,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Countdown bar.
	barWidth := min(width-10, 50)
	bar := components.NewProgressBar(
		fmt.Sprintf("%4.1fs", s.clock.Seconds()),
		1-s.clock.Progress(),
		false,
		barWidth,
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.prompt))
	b.WriteString("\n\n")

	b.WriteString(s.renderChoiceGrid(width))
	return b.String()
}

// renderChoiceGrid lays the nine choices out in a 3x3 grid with their
// digit shortcuts.
func (s *PracticeScreen) renderChoiceGrid(width int) string {
	cellStyle := lipgloss.NewStyle().
		Width(9).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	selectedStyle := cellStyle.
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Bold(true)

	var rows []string
	for start := 0; start < len(s.choices); start += gridCols {
		var cells []string
		for i := start; i < start+gridCols && i < len(s.choices); i++ {
			label := fmt.Sprintf("%d│ %d", i+1, s.choices[i])
			if i == s.selected {
				cells = append(cells, selectedStyle.Render(label))
			} else {
				cells = append(cells, cellStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)
}

func (s *PracticeScreen) renderFeedback(width int) string {
	res := s.lastResult
	var b strings.Builder
	b.WriteString("\n\n")

	if res == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Checking..."))
		return b.String()
	}

	if res.Correct {
		head := "Correct!"
		if res.WasDifficult {
			head = "Correct! You beat a tricky one!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(head))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("+%d points", res.Points)))
	} else {
		head := "Not quite"
		if res.TimedOut {
			head = "Time's up!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(head))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d × %d = %d",
				res.Question.First, res.Question.Second, res.Question.Answer())))
	}
	b.WriteString("\n\n")

	if res.LeveledUp {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Level up! You reached level %d!", res.NewLevel)))
		b.WriteString("\n")
	}
	for _, t := range res.NewMasteries {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("Table of %d mastered!", t)))
		b.WriteString("\n")
	}
	for _, bt := range res.NewBadges {
		info := bt.DisplayInfo()
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeCyan).
			Bold(true).
			Render(fmt.Sprintf("%s  New badge: %s", info.Icon, info.Title)))
		b.WriteString("\n")
	}
	if res.ChallengeCompleted {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Daily challenge complete! %d day streak", res.DailyStreak)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next question..."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Finish practicing?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
