package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kukulab/kuku/internal/achievement"
	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/llm"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/parentauth"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/screens/badgeboard"
	"github.com/kukulab/kuku/internal/screens/history"
	"github.com/kukulab/kuku/internal/screens/parent"
	"github.com/kukulab/kuku/internal/screens/practice"
	"github.com/kukulab/kuku/internal/screens/stats"
	"github.com/kukulab/kuku/internal/selfupdate"
	"github.com/kukulab/kuku/internal/tablestats"
	"github.com/kukulab/kuku/internal/ui/components"
)

// Deps carries the subsystems the home screen and its children need.
type Deps struct {
	Engine       *engine.Engine
	Difficulty   *difficulty.Tracker
	Tables       *tablestats.Tracker
	Points       *points.Balance
	Levels       *level.Engine
	Badges       *badges.Evaluator
	Challenge    *challenge.Tracker
	Achievements *achievement.Recorder
	Mailbox      *messaging.Mailbox
	Guard        *parentauth.Guard
	History      history.Source
	Ledger       parent.LedgerSource
	LLMProvider  llm.Provider
	Version      string
}

// updateCheckMsg reports the result of the background release check.
type updateCheckMsg struct {
	LatestVersion string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps          Deps
	menu          components.Menu
	menuLabels    []string
	level         int
	pointTotal    int
	streak        int
	masteredCount int
	challengeDone int
	challengeGoal int
	mascotVariant MascotVariant
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	h := &HomeScreen{
		deps:          deps,
		challengeGoal: challenge.DefaultTarget,
	}

	if deps.Levels != nil {
		h.level = deps.Levels.Level()
	}
	if deps.Points != nil {
		h.pointTotal = deps.Points.TotalEarned()
	}
	if deps.Tables != nil {
		h.masteredCount = deps.Tables.MasteredCount()
	}
	if deps.Challenge != nil {
		h.streak = deps.Challenge.CurrentStreak(ctx)
		if day, err := deps.Challenge.GetOrCreateToday(ctx); err == nil {
			h.challengeDone = day.CompletedProblems
			h.challengeGoal = day.TargetProblems
		}
	}

	h.mascotVariant = MascotIdle
	if h.challengeDone >= h.challengeGoal && h.challengeGoal > 0 {
		h.mascotVariant = MascotCelebrating
	} else if h.streak > 0 {
		h.mascotVariant = MascotAlert // streak at risk until today's goal is met
	}

	h.menuLabels = []string{"START PRACTICE", "MY PROGRESS", "HISTORY", "BADGES", "PARENT ZONE", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(practice.Deps{
					Engine:     deps.Engine,
					Difficulty: deps.Difficulty,
					Mailbox:    deps.Mailbox,
				})}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(stats.Deps{
					Tables:     deps.Tables,
					Difficulty: deps.Difficulty,
					Levels:     deps.Levels,
					Points:     deps.Points,
					Challenge:  deps.Challenge,
				})}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.History)}
			}
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgeboard.New(deps.Badges)}
			}
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: parent.New(parent.Deps{
					Guard:        deps.Guard,
					Mailbox:      deps.Mailbox,
					Achievements: deps.Achievements,
					Points:       deps.Points,
					Levels:       deps.Levels,
					Challenge:    deps.Challenge,
					Ledger:       deps.Ledger,
					LLMProvider:  deps.LLMProvider,
				})}
			}
		}},
		{Label: h.menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.checkForUpdate()
}

// checkForUpdate queries the latest release in the background. Failures
// are silent; the note is purely informational.
func (h *HomeScreen) checkForUpdate() tea.Cmd {
	version := h.deps.Version
	return func() tea.Msg {
		if version == "" || version == "(devel)" {
			return nil
		}
		checker := selfupdate.NewChecker()
		result, err := checker.Check(context.Background(), &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return nil
		}
		return updateCheckMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckMsg); ok {
		h.latestVersion = m.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.level, h.pointTotal, h.streak, h.masteredCount, cw, compact))

	sections = append(sections, renderChallengeBanner(
		h.challengeDone, h.challengeGoal, cw))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, nil))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
