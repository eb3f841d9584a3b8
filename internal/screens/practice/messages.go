package practice

import (
	"time"

	"github.com/kukulab/kuku/internal/engine"
)

// timerTickMsg drives the answer countdown.
type timerTickMsg time.Time

// answerScoredMsg is sent when the engine has processed an answer.
type answerScoredMsg struct {
	Result *engine.Result
	Err    error
}

// feedbackDoneMsg is sent when the feedback display is dismissed.
type feedbackDoneMsg struct{}

// finishMsg triggers the end-of-session flow.
type finishMsg struct{}
