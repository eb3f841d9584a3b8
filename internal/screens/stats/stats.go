// Package stats renders the progress dashboard: level and experience,
// per-table mastery, tricky facts, and the weekly challenge history.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/tablestats"
	"github.com/kukulab/kuku/internal/ui/components"
	"github.com/kukulab/kuku/internal/ui/layout"
	"github.com/kukulab/kuku/internal/ui/theme"
)

// maxTrickyShown bounds the tricky-facts list.
const maxTrickyShown = 5

// Deps are the trackers the dashboard reads from.
type Deps struct {
	Tables     *tablestats.Tracker
	Difficulty *difficulty.Tracker
	Levels     *level.Engine
	Points     *points.Balance
	Challenge  *challenge.Tracker
}

// StatsScreen displays the learner's progress.
type StatsScreen struct {
	deps Deps
	week []*challenge.Day
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(deps Deps) *StatsScreen {
	s := &StatsScreen{deps: deps}
	if deps.Challenge != nil {
		s.week = deps.Challenge.WeeklyHistory(context.Background())
	}
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(s.renderLevelSection(width))
	b.WriteString("\n")
	b.WriteString(s.renderTablesSection(width))
	b.WriteString(s.renderTrickySection(width))
	b.WriteString(s.renderWeekSection(width))

	return b.String()
}

func (s *StatsScreen) renderLevelSection(width int) string {
	lv := s.deps.Levels
	var b strings.Builder

	titleLine := fmt.Sprintf("Level %d  ·  %s", lv.Level(), titleText(lv.Title()))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(titleLine))
	b.WriteString("\n")

	bar := components.NewProgressBar("XP", lv.Progress(), true, min(width-10, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	detail := fmt.Sprintf("%d XP total  ·  %d XP to next level  ·  ◆ %d points",
		lv.TotalExperience(), lv.ExperienceToNext(), s.deps.Points.TotalEarned())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n")
	return b.String()
}

func (s *StatsScreen) renderTablesSection(width int) string {
	var b strings.Builder
	b.WriteString(sectionHeader("Times tables", width))

	for _, rec := range s.deps.Tables.All() {
		glyph, style := levelGlyph(rec.Level())

		bar := renderRateBar(rec.CorrectRate(), 20)

		detail := fmt.Sprintf("%3.0f%%  (%d/%d)", rec.CorrectRate()*100,
			rec.CorrectProblems, rec.TotalProblems)
		if rec.TotalProblems == 0 {
			detail = "not practiced yet"
		} else if rec.Level() != tablestats.LevelMaster {
			if est := tablestats.EstimatedProblemsToMaster(rec); est > 0 {
				detail += fmt.Sprintf("  ~%d to master", est)
			}
		}

		line := fmt.Sprintf("  %s ×%d  %s  %s", style.Render(glyph), rec.Table, bar,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StatsScreen) renderTrickySection(width int) string {
	tricky := s.deps.Difficulty.Difficult()
	if len(tricky) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeader("Tricky facts", width))

	shown := tricky
	if len(shown) > maxTrickyShown {
		shown = shown[:maxTrickyShown]
	}
	for _, rec := range shown {
		line := fmt.Sprintf("  %d × %d   missed %.0f%% of %d tries",
			rec.First, rec.Second, rec.IncorrectPercent(), rec.TotalAttempts())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
		b.WriteString("\n")
	}
	if extra := len(tricky) - len(shown); extra > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render(fmt.Sprintf("  ...and %d more", extra))))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StatsScreen) renderWeekSection(width int) string {
	if len(s.week) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeader("This week", width))

	var cells []string
	for _, day := range s.week {
		label := day.Day.Format("Mon")
		mark := lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		if day.IsCompleted() {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
		} else if day.CompletedProblems > 0 {
			mark = lipgloss.NewStyle().Foreground(theme.Accent).Render("◐")
		}
		cells = append(cells, fmt.Sprintf("%s %s", label, mark))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(cells, "   ")))
	b.WriteString("\n")
	return b.String()
}

func sectionHeader(name string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n\n"
}

// renderRateBar draws a compact filled bar for a 0..1 rate.
func renderRateBar(rate float64, cells int) string {
	filled := int(rate * float64(cells))
	if filled > cells {
		filled = cells
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))
}

func levelGlyph(l tablestats.Level) (string, lipgloss.Style) {
	switch l {
	case tablestats.LevelMaster:
		return "★", lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	case tablestats.LevelAdvanced:
		return "◆", lipgloss.NewStyle().Foreground(theme.ArcadeCyan)
	case tablestats.LevelIntermediate:
		return "◈", lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		return "·", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func titleText(t level.Title) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
