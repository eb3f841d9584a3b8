package practice

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kukulab/kuku/internal/countdown"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/router"
	"github.com/kukulab/kuku/internal/screen"
	"github.com/kukulab/kuku/internal/screens/summary"
	"github.com/kukulab/kuku/internal/ui/layout"
)

// phase tracks where the practice flow currently is.
type phase int

const (
	phaseModeSelect phase = iota
	phaseTableSelect
	phaseQuestion
	phaseFeedback
)

// Deps are the injected dependencies for a practice run.
type Deps struct {
	Engine     *engine.Engine
	Difficulty *difficulty.Tracker
	Mailbox    *messaging.Mailbox
}

// modeOption is one entry in the mode-select menu.
type modeOption struct {
	Label      string
	Mode       question.Mode
	NeedsTable bool
}

var modeOptions = []modeOption{
	{Label: "MIXED PRACTICE", Mode: question.ModeRandom},
	{Label: "TABLE IN ORDER", Mode: question.ModeSequential, NeedsTable: true},
	{Label: "TABLE SHUFFLED", Mode: question.ModeTable, NeedsTable: true},
	{Label: "MISSING NUMBER", Mode: question.ModeHolePunch},
	{Label: "TRICKY MIX", Mode: question.ModeChallenge},
}

// PracticeScreen runs a practice session: pick a mode, then answer
// questions against the countdown until the learner quits.
type PracticeScreen struct {
	deps Deps

	phase        phase
	modeSelected int
	tableSel     int // 0-based table index during table select

	gen     *question.Generator
	mode    question.Mode
	current question.Question
	prompt  string
	choices []int
	// Hole-punch questions show the product and ask for an operand;
	// holeFactor is the visible operand.
	holeFactor int
	selected   int

	clock *countdown.Countdown

	answered     int
	correctCount int
	pointsWon    int

	lastResult *engine.Result
	errMsg     string

	showQuitConfirm bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen starting at mode selection.
func New(deps Deps) *PracticeScreen {
	return &PracticeScreen{
		deps:  deps,
		phase: phaseModeSelect,
		clock: countdown.New(),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseModeSelect, phaseTableSelect:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Answer"},
			{Key: "Esc", Description: "Finish"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case answerScoredMsg:
		return s.handleScored(msg)
	case feedbackDoneMsg:
		return s.nextQuestion()
	case finishMsg:
		return s.finish()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, func() tea.Msg { return finishMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseModeSelect:
		return s.handleModeSelectKey(key)
	case phaseTableSelect:
		return s.handleTableSelectKey(key)
	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	case phaseQuestion:
		return s.handleQuestionKey(key)
	}
	return s, nil
}

func (s *PracticeScreen) handleModeSelectKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.modeSelected > 0 {
			s.modeSelected--
		}
	case "down", "j":
		if s.modeSelected < len(modeOptions)-1 {
			s.modeSelected++
		}
	case "enter":
		opt := modeOptions[s.modeSelected]
		if opt.NeedsTable {
			s.phase = phaseTableSelect
			return s, nil
		}
		return s.startRound(opt.Mode, 0)
	}
	return s, nil
}

func (s *PracticeScreen) handleTableSelectKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k", "left", "h":
		if s.tableSel > 0 {
			s.tableSel--
		}
	case "down", "j", "right", "l":
		if s.tableSel < question.MaxTable-1 {
			s.tableSel++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.tableSel = int(key[0]-'0') - 1
		return s.startRound(modeOptions[s.modeSelected].Mode, s.tableSel+1)
	case "enter":
		return s.startRound(modeOptions[s.modeSelected].Mode, s.tableSel+1)
	case "esc":
		s.phase = phaseModeSelect
	}
	return s, nil
}

func (s *PracticeScreen) handleQuestionKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit(false)
	case "up", "k":
		if s.selected >= gridCols {
			s.selected -= gridCols
		}
		return s, nil
	case "down", "j":
		if s.selected+gridCols < len(s.choices) {
			s.selected += gridCols
		}
		return s, nil
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "right", "l":
		if s.selected < len(s.choices)-1 {
			s.selected++
		}
		return s, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0]-'0') - 1
		if idx < len(s.choices) {
			s.selected = idx
			return s.submit(false)
		}
		return s, nil
	}
	return s, nil
}

// startRound locks in a mode and serves the first question.
func (s *PracticeScreen) startRound(mode question.Mode, table int) (screen.Screen, tea.Cmd) {
	s.mode = mode
	s.gen = question.NewGenerator(mode, table)
	if mode == question.ModeChallenge && s.deps.Difficulty != nil {
		tracker := s.deps.Difficulty
		s.gen.DifficultFacts = func() []question.Question {
			recs := tracker.Difficult()
			facts := make([]question.Question, 0, len(recs))
			for _, r := range recs {
				facts = append(facts, question.New(r.First, r.Second))
			}
			return facts
		}
	}
	return s.nextQuestion()
}

func (s *PracticeScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	s.lastResult = nil
	s.current = s.gen.Next()
	s.selected = 0

	if s.mode == question.ModeHolePunch {
		prompt, answer := question.HolePunchPrompt(s.current)
		s.prompt = prompt
		s.holeFactor = s.current.Answer() / answer
		s.choices = operandChoices()
	} else {
		s.prompt = s.current.Prompt()
		s.holeFactor = 0
		s.choices = question.Choices(s.current)
	}

	s.phase = phaseQuestion
	s.clock.Start()
	return s, tickCmd()
}

func (s *PracticeScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseQuestion {
		return s, nil
	}
	if s.showQuitConfirm {
		// Pause the clock while the confirm dialog is up.
		return s, tickCmd()
	}

	if s.clock.Tick(countdown.TickInterval) {
		return s.submit(true)
	}
	return s, tickCmd()
}

// submit scores the current answer. On timeout no choice counts.
func (s *PracticeScreen) submit(timedOut bool) (screen.Screen, tea.Cmd) {
	s.clock.Stop()
	s.phase = phaseFeedback

	selected := 0
	if !timedOut && s.selected < len(s.choices) {
		selected = s.choices[s.selected]
		if s.mode == question.ModeHolePunch {
			// The learner picks an operand; score it as the product
			// it implies so a right pick matches the fact's answer.
			selected *= s.holeFactor
		}
	}

	q := s.current
	mode := s.mode
	elapsed := s.clock.Elapsed()
	eng := s.deps.Engine

	return s, func() tea.Msg {
		res, err := eng.SubmitAnswer(context.Background(), q, selected, timedOut, elapsed, mode)
		return answerScoredMsg{Result: res, Err: err}
	}
}

func (s *PracticeScreen) handleScored(msg answerScoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.lastResult = msg.Result
	s.answered++
	if msg.Result.Correct {
		s.correctCount++
	}
	s.pointsWon += msg.Result.Points
	return s, nil
}

func (s *PracticeScreen) finish() (screen.Screen, tea.Cmd) {
	sum := s.deps.Engine.FinishSession(context.Background())
	if sum.TotalProblems == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	sc := summary.New(sum, s.pointsWon, s.deps.Mailbox)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sc}
	}
}

// operandChoices returns the nine possible missing operands, shuffled.
func operandChoices() []int {
	out := make([]int, question.MaxTable)
	for i := range out {
		out[i] = i + 1
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// tickCmd schedules the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(countdown.TickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
