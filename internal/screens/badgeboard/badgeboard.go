// Package badgeboard shows the badge collection: earned badges with
// their dates, locked ones with how to get them.
package badgeboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/ui/components"
	"github.com/kukulab/kuku/internal/ui/layout"
	"github.com/kukulab/kuku/internal/ui/theme"
)

// BadgeBoardScreen displays all badges, earned and locked.
type BadgeBoardScreen struct {
	evaluator *badges.Evaluator
	fresh     map[badges.Type]bool
	selected  int
}

var _ screen.Screen = (*BadgeBoardScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeBoardScreen)(nil)

// New creates a new BadgeBoardScreen.
func New(evaluator *badges.Evaluator) *BadgeBoardScreen {
	fresh := make(map[badges.Type]bool)
	for _, b := range evaluator.NewBadges() {
		fresh[b.Type] = true
	}
	return &BadgeBoardScreen{
		evaluator: evaluator,
		fresh:     fresh,
	}
}

func (s *BadgeBoardScreen) Init() tea.Cmd {
	// Viewing the board acknowledges any newly earned badges.
	return func() tea.Msg {
		s.evaluator.MarkSeen(context.Background())
		return nil
	}
}

func (s *BadgeBoardScreen) Title() string {
	return "Badges"
}

func (s *BadgeBoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeBoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(badges.All)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *BadgeBoardScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Badges  %d / %d",
			s.evaluator.EarnedCount(), s.evaluator.TotalCount())))
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.evaluator.Progress(), true, min(width-10, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	earnedAt := make(map[badges.Type]string)
	for _, earned := range s.evaluator.Earned() {
		earnedAt[earned.Type] = earned.EarnedAt.Format("Jan 02")
	}

	for i, t := range badges.All {
		info := t.DisplayInfo()
		has := s.evaluator.Has(t)

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		var line string
		var style lipgloss.Style
		if has {
			line = fmt.Sprintf("%s%s %-18s %s", prefix, info.Icon, info.Title, earnedAt[t])
			style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
			if s.fresh[t] {
				line += "  NEW!"
				style = style.Bold(true)
			}
		} else {
			line = fmt.Sprintf("%s🔒 %-18s", prefix, info.Title)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i == s.selected {
			style = style.Bold(true)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	// Detail line for the highlighted badge.
	sel := badges.All[s.selected]
	info := sel.DisplayInfo()
	detail := info.Description
	if !s.evaluator.Has(sel) {
		detail = info.Requirement
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Italic(true).
		Render(detail))
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
