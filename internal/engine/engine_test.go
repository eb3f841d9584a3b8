package engine

import (
	"context"
	"testing"
	"time"

	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/tablestats"
)

type memChallengeRepo struct {
	days map[time.Time]*challenge.Day
}

func (m *memChallengeRepo) Get(_ context.Context, day time.Time) (*challenge.Day, error) {
	return m.days[day], nil
}

func (m *memChallengeRepo) Upsert(_ context.Context, d *challenge.Day) error {
	m.days[d.Day] = d
	return nil
}

type memLog struct {
	rows []Answer
}

func (m *memLog) Append(_ context.Context, a Answer) error {
	m.rows = append(m.rows, a)
	return nil
}

func (m *memLog) Count(_ context.Context) (int, error) {
	return len(m.rows), nil
}

func newEngine(t *testing.T) (*Engine, *memLog) {
	t.Helper()
	ctx := context.Background()

	diff, err := difficulty.NewTracker(ctx, nil)
	if err != nil {
		t.Fatalf("difficulty: %v", err)
	}
	tables, err := tablestats.NewTracker(ctx, nil)
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	bal, err := points.NewBalance(ctx, nil)
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	lvl, err := level.NewEngine(ctx, nil)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	eval, err := badges.NewEvaluator(ctx, nil)
	if err != nil {
		t.Fatalf("badges: %v", err)
	}

	log := &memLog{}
	e, err := New(ctx, Deps{
		Difficulty: diff,
		Tables:     tables,
		Points:     bal,
		Levels:     lvl,
		Badges:     eval,
		Challenge:  challenge.NewTracker(&memChallengeRepo{days: make(map[time.Time]*challenge.Day)}),
		Log:        log,
	})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e, log
}

func submit(t *testing.T, e *Engine, q question.Question, selected int, elapsed time.Duration) *Result {
	t.Helper()
	res, err := e.SubmitAnswer(context.Background(), q, selected, false, elapsed, question.ModeRandom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return res
}

func TestCorrectAnswerEarnsBasePoint(t *testing.T) {
	e, log := newEngine(t)
	q := question.New(3, 4)

	res := submit(t, e, q, 12, 4*time.Second)
	if !res.Correct || res.Points != points.BasePoints {
		t.Errorf("result = %+v, want correct with 1 point", res)
	}
	if e.TotalAnswered() != 1 || len(log.rows) != 1 {
		t.Errorf("answer not logged: total=%d rows=%d", e.TotalAnswered(), len(log.rows))
	}
	if log.rows[0].Identifier != "3x4" || !log.rows[0].Correct {
		t.Errorf("logged row = %+v", log.rows[0])
	}
}

func TestWrongAnswerAwardsNothing(t *testing.T) {
	e, _ := newEngine(t)

	res := submit(t, e, question.New(3, 4), 13, 4*time.Second)
	if res.Correct || res.Points != 0 {
		t.Errorf("result = %+v, want incorrect with 0 points", res)
	}
}

func TestTimeoutIsIncorrect(t *testing.T) {
	e, log := newEngine(t)
	q := question.New(3, 4)

	res, err := e.SubmitAnswer(context.Background(), q, q.Answer(), true, 10*time.Second, question.ModeRandom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct || !res.TimedOut || res.Points != 0 {
		t.Errorf("result = %+v, want timed-out incorrect", res)
	}
	if !log.rows[0].TimedOut || log.rows[0].Correct {
		t.Errorf("logged row = %+v", log.rows[0])
	}
}

func TestDifficultyBonusUsesStatusBeforeAnswer(t *testing.T) {
	e, _ := newEngine(t)
	q := question.New(7, 8)

	// Three misses make 7x8 difficult.
	for i := 0; i < 3; i++ {
		submit(t, e, q, 1, 4*time.Second)
	}

	res := submit(t, e, q, q.Answer(), 4*time.Second)
	if !res.WasDifficult {
		t.Fatal("fact not difficult after three misses")
	}
	want := points.BasePoints + points.BasePoints/2 + 1
	if res.Points != want {
		t.Errorf("points = %d, want %d", res.Points, want)
	}
}

func TestChallengeCompletesOnFifthAnswer(t *testing.T) {
	e, _ := newEngine(t)

	for i := 0; i < 4; i++ {
		res := submit(t, e, question.Random(), 0, 4*time.Second)
		if res.ChallengeCompleted {
			t.Fatalf("challenge completed on answer %d", i+1)
		}
	}
	res := submit(t, e, question.Random(), 0, 4*time.Second)
	if !res.ChallengeCompleted {
		t.Error("challenge not completed on 5th answer")
	}
	if res.DailyStreak != 1 {
		t.Errorf("streak = %d, want 1", res.DailyStreak)
	}

	// Further answers keep the challenge completed without re-firing.
	res = submit(t, e, question.Random(), 0, 4*time.Second)
	if res.ChallengeCompleted {
		t.Error("completion re-fired on 6th answer")
	}
}

func TestLevelUpSurfacesInResult(t *testing.T) {
	e, _ := newEngine(t)

	// Level 2 needs 10 experience; base point per correct answer.
	var res *Result
	for i := 0; i < 10; i++ {
		q := question.New(1+i%9, 9)
		res = submit(t, e, q, q.Answer(), 4*time.Second)
		if i < 9 && res.LeveledUp {
			t.Fatalf("leveled up early at answer %d", i+1)
		}
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Errorf("result = leveledUp=%v newLevel=%d, want level 2", res.LeveledUp, res.NewLevel)
	}
}

func TestStreakBadgeFlowsThrough(t *testing.T) {
	e, _ := newEngine(t)

	var res *Result
	for i := 0; i < 10; i++ {
		q := question.New(1+i%9, 8)
		res = submit(t, e, q, q.Answer(), 4*time.Second)
	}
	found := false
	for _, b := range res.NewBadges {
		if b == badges.TypeStreak10 {
			found = true
		}
	}
	if !found {
		t.Errorf("10th correct answer badges = %v, want streak_10", res.NewBadges)
	}
}

func TestNewMasteryDetected(t *testing.T) {
	e, _ := newEngine(t)
	q := question.New(6, 6)

	res := submit(t, e, q, q.Answer(), 4*time.Second)
	if len(res.NewMasteries) != 1 || res.NewMasteries[0] != 6 {
		t.Errorf("new masteries = %v, want [6]", res.NewMasteries)
	}

	// Already mastered: no re-announcement.
	res = submit(t, e, q, q.Answer(), 4*time.Second)
	if len(res.NewMasteries) != 0 {
		t.Errorf("mastery re-announced: %v", res.NewMasteries)
	}
}

func TestFinishSessionSummary(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	q := question.New(2, 3)
	submit(t, e, q, q.Answer(), 2*time.Second)
	submit(t, e, q, q.Answer(), 4*time.Second)
	submit(t, e, q, 0, 6*time.Second)

	sum := e.FinishSession(ctx)
	if sum.TotalProblems != 3 || sum.CorrectAnswers != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Perfect {
		t.Error("imperfect session marked perfect")
	}
	if sum.AverageTimeSec != 4.0 {
		t.Errorf("average = %v, want 4.0", sum.AverageTimeSec)
	}

	// Counters reset for the next session.
	empty := e.FinishSession(ctx)
	if empty.TotalProblems != 0 {
		t.Errorf("session not reset: %+v", empty)
	}
}

func TestPerfectSession(t *testing.T) {
	e, _ := newEngine(t)

	q := question.New(4, 5)
	submit(t, e, q, q.Answer(), 3*time.Second)
	submit(t, e, q, q.Answer(), 3*time.Second)

	sum := e.FinishSession(context.Background())
	if !sum.Perfect {
		t.Errorf("all-correct session not perfect: %+v", sum)
	}
}
