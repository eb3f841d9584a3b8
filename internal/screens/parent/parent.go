// Package parent implements the PIN-gated parent zone: the message
// inbox, quick replies, the points dashboard, and PIN management.
package parent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kukulab/kuku/internal/achievement"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/llm"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/parentauth"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/ui/components"
	"github.com/kukulab/kuku/internal/ui/layout"
	"github.com/kukulab/kuku/internal/ui/theme"
)

const (
	// inboxLimit is how many recent messages the inbox shows.
	inboxLimit = 20
	// ledgerLimit is how many earn/spend rows the dashboard shows.
	ledgerLimit = 12
)

type phase int

const (
	phasePINSetup phase = iota
	phasePINConfirm
	phasePINEntry
	phaseInbox
	phaseReplyPick
	phaseEncouragePreview
	phaseDashboard
	phaseSpendAmount
)

// LedgerSource provides the earn/spend rows the dashboard displays.
type LedgerSource interface {
	RecentPointEvents(ctx context.Context, limit int) ([]points.Event, error)
}

// Deps are the injected dependencies for the parent zone.
type Deps struct {
	Guard        *parentauth.Guard
	Mailbox      *messaging.Mailbox
	Achievements *achievement.Recorder
	Points       *points.Balance
	Levels       *level.Engine
	Challenge    *challenge.Tracker
	Ledger       LedgerSource
	LLMProvider  llm.Provider
}

type messagesLoadedMsg struct {
	Messages []*messaging.Message
	Err      error
}

type messageSentMsg struct {
	Err error
}

type encouragementDraftMsg struct {
	Text string
	Err  error
}

type ledgerLoadedMsg struct {
	Events []points.Event
	Err    error
}

// ParentScreen is the PIN-gated parent view.
type ParentScreen struct {
	deps Deps

	phase    phase
	pin      components.TextInput
	firstPIN string
	pinErr   string

	messages []*messaging.Message
	loaded   bool
	errMsg   string
	notice   string

	replySel int
	draft    string
	drafting bool

	ledger     []points.Event
	spendInput components.TextInput
	spendErr   string
}

var _ screen.Screen = (*ParentScreen)(nil)
var _ screen.KeyHintProvider = (*ParentScreen)(nil)

// New creates a ParentScreen, starting with PIN setup when no PIN
// exists yet.
func New(deps Deps) *ParentScreen {
	s := &ParentScreen{
		deps:  deps,
		phase: phasePINEntry,
		pin:   newPINInput(),
	}
	isSet, err := deps.Guard.IsSet(context.Background())
	if err == nil && !isSet {
		s.phase = phasePINSetup
	}
	return s
}

func newPINInput() components.TextInput {
	in := components.NewTextInput("4-digit PIN", true, parentauth.PINLength)
	in.Model.EchoMode = textinput.EchoPassword
	return in
}

func (s *ParentScreen) Init() tea.Cmd {
	return s.pin.Init()
}

func (s *ParentScreen) Title() string {
	return "Parent Zone"
}

func (s *ParentScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePINSetup, phasePINConfirm, phasePINEntry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseReplyPick:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Send reply"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseEncouragePreview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Discard"},
		}
	case phaseDashboard:
		return []layout.KeyHint{
			{Key: "S", Description: "Spend points"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSpendAmount:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Spend"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "R", Description: "Quick reply"},
			{Key: "D", Description: "Dashboard"},
		}
		if s.deps.LLMProvider != nil {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "Draft encouragement"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "P", Description: "Change PIN"},
			layout.KeyHint{Key: "Esc", Description: "Back"},
		)
		return hints
	}
}

func (s *ParentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case messagesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.messages = msg.Messages
		}
		s.loaded = true
		return s, nil

	case messageSentMsg:
		if msg.Err != nil {
			s.notice = "Could not send: " + msg.Err.Error()
		} else {
			s.notice = "Sent!"
		}
		return s, s.loadMessages()

	case encouragementDraftMsg:
		s.drafting = false
		if msg.Err != nil {
			s.notice = "Draft failed: " + msg.Err.Error()
			return s, nil
		}
		s.draft = msg.Text
		s.phase = phaseEncouragePreview
		return s, nil

	case ledgerLoadedMsg:
		if msg.Err != nil {
			s.spendErr = msg.Err.Error()
		} else {
			s.ledger = msg.Events
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inPINPhase() {
		var cmd tea.Cmd
		s.pin, cmd = s.pin.Update(msg)
		return s, cmd
	}
	if s.phase == phaseSpendAmount {
		var cmd tea.Cmd
		s.spendInput, cmd = s.spendInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ParentScreen) inPINPhase() bool {
	return s.phase == phasePINSetup || s.phase == phasePINConfirm || s.phase == phasePINEntry
}

func (s *ParentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePINSetup, phasePINConfirm, phasePINEntry:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.submitPIN()
		}
		var cmd tea.Cmd
		s.pin, cmd = s.pin.Update(msg)
		return s, cmd

	case phaseInbox:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			s.phase = phaseReplyPick
			s.replySel = 0
			return s, nil
		case "e", "E":
			if s.deps.LLMProvider != nil && !s.drafting {
				s.drafting = true
				s.notice = "Drafting..."
				return s, s.draftEncouragement()
			}
			return s, nil
		case "d", "D":
			return s.enterDashboard()
		case "p", "P":
			s.phase = phasePINSetup
			s.pin = newPINInput()
			s.firstPIN = ""
			s.pinErr = ""
			return s, s.pin.Init()
		}

	case phaseDashboard:
		switch key {
		case "esc":
			s.phase = phaseInbox
			return s, nil
		case "s", "S":
			s.phase = phaseSpendAmount
			s.spendInput = components.NewTextInput("amount", true, 5)
			s.spendErr = ""
			return s, s.spendInput.Init()
		}

	case phaseSpendAmount:
		switch key {
		case "esc":
			s.phase = phaseDashboard
			return s, nil
		case "enter":
			return s.submitSpend()
		}
		var cmd tea.Cmd
		s.spendInput, cmd = s.spendInput.Update(msg)
		return s, cmd

	case phaseReplyPick:
		switch {
		case key == "esc":
			s.phase = phaseInbox
			return s, nil
		case key == "up" || key == "k":
			if s.replySel > 0 {
				s.replySel--
			}
			return s, nil
		case key == "down" || key == "j":
			if s.replySel < len(messaging.QuickReplies)-1 {
				s.replySel++
			}
			return s, nil
		case key == "enter":
			return s.sendQuickReply(s.replySel)
		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			idx := int(key[0] - '1')
			if idx < len(messaging.QuickReplies) {
				return s.sendQuickReply(idx)
			}
			return s, nil
		}

	case phaseEncouragePreview:
		switch key {
		case "esc":
			s.draft = ""
			s.phase = phaseInbox
			return s, nil
		case "enter":
			draft := s.draft
			s.draft = ""
			s.phase = phaseInbox
			return s, s.sendText(draft)
		}
	}
	return s, nil
}

func (s *ParentScreen) submitPIN() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	value := s.pin.Value()

	switch s.phase {
	case phasePINSetup:
		if len(value) != parentauth.PINLength {
			s.pinErr = fmt.Sprintf("The PIN must be %d digits.", parentauth.PINLength)
			return s, nil
		}
		s.firstPIN = value
		s.pin = newPINInput()
		s.pinErr = ""
		s.phase = phasePINConfirm
		return s, s.pin.Init()

	case phasePINConfirm:
		if value != s.firstPIN {
			s.pinErr = "PINs do not match. Try again."
			s.firstPIN = ""
			s.pin = newPINInput()
			s.phase = phasePINSetup
			return s, s.pin.Init()
		}
		if err := s.deps.Guard.SetPIN(ctx, value); err != nil {
			s.pinErr = err.Error()
			return s, nil
		}
		return s.enterInbox()

	default: // phasePINEntry
		ok, err := s.deps.Guard.Verify(ctx, value)
		if err != nil && !errors.Is(err, parentauth.ErrNotSet) {
			s.pinErr = err.Error()
			return s, nil
		}
		if !ok {
			s.pinErr = "Wrong PIN."
			s.pin = newPINInput()
			return s, s.pin.Init()
		}
		return s.enterInbox()
	}
}

func (s *ParentScreen) enterInbox() (screen.Screen, tea.Cmd) {
	s.phase = phaseInbox
	s.pinErr = ""
	s.loaded = false
	return s, s.loadMessages()
}

func (s *ParentScreen) loadMessages() tea.Cmd {
	mailbox := s.deps.Mailbox
	return func() tea.Msg {
		ctx := context.Background()
		msgs, err := mailbox.Recent(ctx, inboxLimit)
		if err != nil {
			return messagesLoadedMsg{Err: err}
		}
		_ = mailbox.MarkAllRead(ctx, messaging.SenderParent)
		return messagesLoadedMsg{Messages: msgs}
	}
}

func (s *ParentScreen) enterDashboard() (screen.Screen, tea.Cmd) {
	s.phase = phaseDashboard
	s.spendErr = ""
	ledger := s.deps.Ledger
	if ledger == nil {
		s.ledger = nil
		return s, nil
	}
	return s, func() tea.Msg {
		events, err := ledger.RecentPointEvents(context.Background(), ledgerLimit)
		return ledgerLoadedMsg{Events: events, Err: err}
	}
}

// submitSpend debits the entered amount from the child's available
// points, e.g. when a reward has been cashed in.
func (s *ParentScreen) submitSpend() (screen.Screen, tea.Cmd) {
	n, err := strconv.Atoi(strings.TrimSpace(s.spendInput.Value()))
	if err != nil || n <= 0 {
		s.spendErr = "Enter a positive number."
		return s, nil
	}

	ok, err := s.deps.Points.Spend(context.Background(), n, "reward approved by parent")
	if err != nil {
		s.spendErr = err.Error()
		return s, nil
	}
	if !ok {
		s.spendErr = fmt.Sprintf("Only %d points available.", s.deps.Points.Available())
		return s, nil
	}
	return s.enterDashboard()
}

func (s *ParentScreen) sendQuickReply(idx int) (screen.Screen, tea.Cmd) {
	s.phase = phaseInbox
	return s, s.sendText(messaging.QuickReplies[idx])
}

func (s *ParentScreen) sendText(content string) tea.Cmd {
	mailbox := s.deps.Mailbox
	return func() tea.Msg {
		_, err := mailbox.SendText(context.Background(), messaging.SenderParent, content)
		return messageSentMsg{Err: err}
	}
}

// draftEncouragement asks the LLM for a short encouraging note based on
// the most recent study report.
func (s *ParentScreen) draftEncouragement() tea.Cmd {
	provider := s.deps.LLMProvider
	session := s.latestStudySession()
	return func() tea.Msg {
		text, err := messaging.DraftEncouragement(context.Background(), provider, session)
		return encouragementDraftMsg{Text: text, Err: err}
	}
}

// latestStudySession finds the newest study report in the inbox, or a
// zero session when none exists.
func (s *ParentScreen) latestStudySession() messaging.StudySession {
	for _, m := range s.messages {
		if m.Type == messaging.TypeStudyReport && m.Session != nil {
			return *m.Session
		}
	}
	return messaging.StudySession{}
}

func (s *ParentScreen) View(width, height int) string {
	if s.inPINPhase() {
		return s.renderPINView(width)
	}
	if s.phase == phaseDashboard || s.phase == phaseSpendAmount {
		return s.renderDashboard(width)
	}
	return s.renderInbox(width, height)
}

func (s *ParentScreen) renderDashboard(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Points & Progress"))
	b.WriteString("\n\n")

	center := func(line string, style lipgloss.Style) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	text := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	if s.deps.Points != nil {
		center(fmt.Sprintf("Earned %d points lifetime, %d available to spend",
			s.deps.Points.TotalEarned(), s.deps.Points.Available()), text)
	}
	if s.deps.Levels != nil {
		center(fmt.Sprintf("Level %d — %s", s.deps.Levels.Level(), s.deps.Levels.Title()), text)
	}
	if s.deps.Challenge != nil {
		center(fmt.Sprintf("Daily streak: %d day(s)",
			s.deps.Challenge.CurrentStreak(context.Background())), text)
	}
	b.WriteString("\n")

	if s.phase == phaseSpendAmount {
		center("How many points to spend?", text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spendInput.View()))
		b.WriteString("\n")
	}
	if s.spendErr != "" {
		center(s.spendErr, lipgloss.NewStyle().Foreground(theme.Error))
	}

	if len(s.ledger) > 0 {
		b.WriteString("\n")
		center("Recent activity", lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true))
		for _, ev := range s.ledger {
			sign := "+"
			note := ev.QuestionID
			if ev.Bonus {
				note += " (bonus)"
			}
			if ev.Kind == "spend" {
				sign = "−"
				note = ev.Reason
			}
			center(fmt.Sprintf("%s  %s%d  %s",
				ev.At.Format("Jan 02 15:04"), sign, ev.Amount, note), dim)
		}
	}

	return b.String()
}

func (s *ParentScreen) renderPINView(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	var title string
	switch s.phase {
	case phasePINSetup:
		title = "Choose a parent PIN"
	case phasePINConfirm:
		title = "Type the PIN again"
	default:
		title = "Enter the parent PIN"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.pin.View()))
	b.WriteString("\n\n")

	if s.pinErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.pinErr))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ParentScreen) renderInbox(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.phase == phaseReplyPick {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Pick a quick reply"))
		b.WriteString("\n\n")
		for i, reply := range messaging.QuickReplies {
			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.replySel {
				prefix = "▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, reply))))
			b.WriteString("\n")
		}
		return b.String()
	}

	if s.phase == phaseEncouragePreview {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Suggested message"))
		b.WriteString("\n\n")
		box := lipgloss.NewStyle().
			Width(min(width-8, 60)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Foreground(theme.Text).
			Render(s.draft)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Enter to send, Esc to discard"))
		return b.String()
	}

	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading messages...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(s.notice))
		b.WriteString("\n\n")
	}

	if len(s.messages) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No messages yet."))
		return b.String()
	}

	for _, m := range s.messages {
		b.WriteString(renderMessage(m, width))
	}
	return b.String()
}

func renderMessage(m *messaging.Message, width int) string {
	who := "Child"
	whoStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if m.Sender == messaging.SenderParent {
		who = "You"
		whoStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	header := fmt.Sprintf("%s  %s", whoStyle.Render(who),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.SentAt.Format("Jan 02 15:04")))

	body := lipgloss.NewStyle().
		Width(min(width-12, 56)).
		Foreground(theme.Text).
		Render(m.Content)

	block := header + "\n" + body + "\n"
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
