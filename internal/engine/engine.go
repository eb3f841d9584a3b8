// Package engine runs the answer pipeline: one submitted answer flows
// through difficulty tracking, table stats, scoring, leveling, badges,
// and the daily challenge, producing a single Result for the UI.
package engine

import (
	"context"
	"time"

	"github.com/kukulab/kuku/internal/achievement"
	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/tablestats"
)

// improvedWindowDays bounds how far back the overcome-badge check looks
// for recovered difficult questions.
const improvedWindowDays = 30

// Answer is one appended answer-log row.
type Answer struct {
	Identifier    string
	First         int
	Second        int
	Correct       bool
	TimedOut      bool
	Elapsed       time.Duration
	PointsAwarded int
	Mode          question.Mode
}

// AnswerLog persists the append-only answer history.
type AnswerLog interface {
	Append(ctx context.Context, a Answer) error
	Count(ctx context.Context) (int, error)
}

// Deps are the subsystems the engine drives. Achievements may be nil;
// everything else is required.
type Deps struct {
	Difficulty   *difficulty.Tracker
	Tables       *tablestats.Tracker
	Points       *points.Balance
	Levels       *level.Engine
	Badges       *badges.Evaluator
	Challenge    *challenge.Tracker
	Achievements *achievement.Recorder
	Log          AnswerLog
}

// Result is everything one answer changed, for the feedback screen.
type Result struct {
	Question     question.Question
	Selected     int
	Correct      bool
	TimedOut     bool
	WasDifficult bool
	Points       int

	LeveledUp bool
	NewLevel  int

	NewBadges    []badges.Type
	NewMasteries []int

	ChallengeCompleted bool
	DailyStreak        int
}

// Summary describes a finished practice session.
type Summary struct {
	TotalProblems  int
	CorrectAnswers int
	AverageTimeSec float64
	NewMasteries   []int
	Perfect        bool
}

type session struct {
	problems     int
	correct      int
	totalTime    time.Duration
	newMasteries []int
}

// Engine coordinates the subsystems for a practice run.
type Engine struct {
	difficulty   *difficulty.Tracker
	tables       *tablestats.Tracker
	points       *points.Balance
	levels       *level.Engine
	badges       *badges.Evaluator
	challenge    *challenge.Tracker
	achievements *achievement.Recorder
	log          AnswerLog

	totalAnswered int
	sess          session
}

// New assembles an engine. The lifetime answer count is loaded from the
// log so problem-count badges land on the right answer.
func New(ctx context.Context, deps Deps) (*Engine, error) {
	e := &Engine{
		difficulty:   deps.Difficulty,
		tables:       deps.Tables,
		points:       deps.Points,
		levels:       deps.Levels,
		badges:       deps.Badges,
		challenge:    deps.Challenge,
		achievements: deps.Achievements,
		log:          deps.Log,
	}
	if deps.Log != nil {
		n, err := deps.Log.Count(ctx)
		if err != nil {
			return nil, err
		}
		e.totalAnswered = n
	}
	return e, nil
}

// TotalAnswered returns the lifetime answered-problem count.
func (e *Engine) TotalAnswered() int { return e.totalAnswered }

// SubmitAnswer runs one answer through the whole pipeline. A timed-out
// answer is treated as incorrect. The difficulty bonus is decided by the
// fact's status before this answer is recorded.
func (e *Engine) SubmitAnswer(ctx context.Context, q question.Question, selected int, timedOut bool, elapsed time.Duration, mode question.Mode) (*Result, error) {
	correct := !timedOut && selected == q.Answer()
	id := q.Identifier()

	res := &Result{
		Question:     q,
		Selected:     selected,
		Correct:      correct,
		TimedOut:     timedOut,
		WasDifficult: e.difficulty.IsDifficult(id),
	}

	masteredBefore := make(map[int]bool)
	for _, rec := range e.tables.All() {
		if rec.Level() == tablestats.LevelMaster {
			masteredBefore[rec.Table] = true
		}
	}

	if correct {
		e.difficulty.RecordCorrect(ctx, id)
	} else {
		e.difficulty.RecordIncorrect(ctx, id, q.First, q.Second)
	}
	e.tables.RecordAnswer(ctx, q.First, q.Second, correct)
	res.Points = e.points.ScoreAnswer(ctx, id, correct, res.WasDifficult)
	res.LeveledUp, res.NewLevel = e.levels.UpdateExperience(ctx, e.points.TotalEarned())

	e.totalAnswered++
	if e.log != nil {
		if err := e.log.Append(ctx, Answer{
			Identifier:    id,
			First:         q.First,
			Second:        q.Second,
			Correct:       correct,
			TimedOut:      timedOut,
			Elapsed:       elapsed,
			PointsAwarded: res.Points,
			Mode:          mode,
		}); err != nil {
			return nil, err
		}
	}

	res.NewBadges = e.badges.CheckAnswer(ctx, correct, elapsed, e.totalAnswered, e.levels.Level())

	res.NewMasteries = e.newMasteries(ctx, q, masteredBefore)
	if len(res.NewMasteries) > 0 {
		res.NewBadges = append(res.NewBadges, e.badges.CheckTableMastery(ctx, e.tables.MasteredCount())...)
	}
	if correct {
		improved := len(e.difficulty.Improved(improvedWindowDays))
		res.NewBadges = append(res.NewBadges, e.badges.CheckOvercome(ctx, improved)...)
	}

	e.updateChallenge(ctx, res)
	e.updateSession(res, elapsed)
	return res, nil
}

func (e *Engine) newMasteries(ctx context.Context, q question.Question, masteredBefore map[int]bool) []int {
	tables := []int{q.First}
	if q.Second != q.First {
		tables = append(tables, q.Second)
	}
	var out []int
	for _, table := range tables {
		rec := e.tables.Get(table)
		if rec == nil || masteredBefore[table] || rec.Level() != tablestats.LevelMaster {
			continue
		}
		out = append(out, table)
		if e.achievements != nil {
			_, _ = e.achievements.TableMastery(ctx, table)
		}
	}
	return out
}

func (e *Engine) updateChallenge(ctx context.Context, res *Result) {
	day, err := e.challenge.GetOrCreateToday(ctx)
	if err != nil {
		return
	}
	wasCompleted := day.IsCompleted()
	e.challenge.UpdateProgress(ctx, day, 1)
	res.DailyStreak = day.StreakCount

	if day.IsCompleted() && !wasCompleted {
		res.ChallengeCompleted = true
		if e.achievements != nil {
			_, _ = e.achievements.ChallengeComplete(ctx, day.TargetProblems, day.CompletedProblems)
			if day.StreakCount >= 2 {
				_, _ = e.achievements.Streak(ctx, day.StreakCount)
			}
		}
		res.NewBadges = append(res.NewBadges, e.badges.CheckDailyStreak(ctx, day.StreakCount)...)
	}
}

func (e *Engine) updateSession(res *Result, elapsed time.Duration) {
	e.sess.problems++
	if res.Correct {
		e.sess.correct++
	}
	e.sess.totalTime += elapsed
	e.sess.newMasteries = append(e.sess.newMasteries, res.NewMasteries...)
}

// FinishSession closes the current practice session and returns its
// summary. A perfect session of at least one problem records a
// perfect-score achievement. The session counters reset for the next
// run.
func (e *Engine) FinishSession(ctx context.Context) Summary {
	s := e.sess
	e.sess = session{}

	sum := Summary{
		TotalProblems:  s.problems,
		CorrectAnswers: s.correct,
		NewMasteries:   s.newMasteries,
		Perfect:        s.problems > 0 && s.correct == s.problems,
	}
	if s.problems > 0 {
		sum.AverageTimeSec = s.totalTime.Seconds() / float64(s.problems)
	}
	if sum.Perfect && e.achievements != nil {
		_, _ = e.achievements.PerfectScore(ctx, s.problems)
	}
	return sum
}
