package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

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
	"github.com/kukulab/kuku/internal/screens/history"
	"github.com/kukulab/kuku/internal/screens/home"
	"github.com/kukulab/kuku/internal/screens/parent"
	"github.com/kukulab/kuku/internal/screens/welcome"
	"github.com/kukulab/kuku/internal/tablestats"
	"github.com/kukulab/kuku/internal/ui/layout"
)

// Options carries the wired-up subsystems into the TUI.
type Options struct {
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

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	streak int
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Engine:       opts.Engine,
			Difficulty:   opts.Difficulty,
			Tables:       opts.Tables,
			Points:       opts.Points,
			Levels:       opts.Levels,
			Badges:       opts.Badges,
			Challenge:    opts.Challenge,
			Achievements: opts.Achievements,
			Mailbox:      opts.Mailbox,
			Guard:        opts.Guard,
			History:      opts.History,
			Ledger:       opts.Ledger,
			LLMProvider:  opts.LLMProvider,
			Version:      opts.Version,
		})
	}

	streak := 0
	if opts.Challenge != nil {
		streak = opts.Challenge.CurrentStreak(context.Background())
	}

	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(homeFactory)),
		streak: streak,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: several use it for in-screen
		// navigation (confirm dialogs, sub-phases) rather than back.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders full-bleed, without the frame.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	pointTotal := 0
	if m.opts.Points != nil {
		pointTotal = m.opts.Points.TotalEarned()
	}
	header := layout.RenderHeader(title, pointTotal, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
