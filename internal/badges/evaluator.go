package badges

import (
	"context"
	"time"
)

const (
	fastAnswerLimit      = 3 * time.Second
	superFastAnswerLimit = 2 * time.Second

	speedsterCount = 10
	lightningCount = 20

	overcomerCount = 5
	conquerorCount = 10
)

// Counters is the evaluator's persisted answer bookkeeping. The fast
// counters are lifetime totals and never reset; only the streak drops
// back to zero on a miss.
type Counters struct {
	CorrectStreak   int
	FastAnswers     int
	SuperFastAnswer int
}

// Repo persists earned badges and the evaluator counters.
type Repo interface {
	All(ctx context.Context) ([]*Badge, error)
	Insert(ctx context.Context, b *Badge) error
	MarkAllSeen(ctx context.Context) error
	LoadCounters(ctx context.Context) (Counters, error)
	SaveCounters(ctx context.Context, c Counters) error
}

// Evaluator checks answers and progress milestones against the badge
// rules and awards each badge at most once.
type Evaluator struct {
	repo     Repo
	earned   map[Type]*Badge
	counters Counters
	now      func() time.Time
}

// NewEvaluator loads earned badges and counters from the repo. A nil
// repo keeps everything in memory.
func NewEvaluator(ctx context.Context, repo Repo) (*Evaluator, error) {
	e := &Evaluator{
		repo:   repo,
		earned: make(map[Type]*Badge),
		now:    time.Now,
	}
	if repo == nil {
		return e, nil
	}
	all, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		e.earned[b.Type] = b
	}
	c, err := repo.LoadCounters(ctx)
	if err != nil {
		return nil, err
	}
	e.counters = c
	return e, nil
}

// Has reports whether a badge has been earned.
func (e *Evaluator) Has(t Type) bool {
	_, ok := e.earned[t]
	return ok
}

// Earned returns every earned badge.
func (e *Evaluator) Earned() []*Badge {
	out := make([]*Badge, 0, len(e.earned))
	for _, t := range All {
		if b, ok := e.earned[t]; ok {
			out = append(out, b)
		}
	}
	return out
}

// NewBadges returns earned badges the player has not seen yet.
func (e *Evaluator) NewBadges() []*Badge {
	var out []*Badge
	for _, b := range e.Earned() {
		if b.IsNew {
			out = append(out, b)
		}
	}
	return out
}

// MarkSeen clears the new flag on every earned badge.
func (e *Evaluator) MarkSeen(ctx context.Context) {
	for _, b := range e.earned {
		b.IsNew = false
	}
	if e.repo != nil {
		_ = e.repo.MarkAllSeen(ctx)
	}
}

// EarnedCount returns how many badges have been earned.
func (e *Evaluator) EarnedCount() int { return len(e.earned) }

// TotalCount returns how many badges exist.
func (e *Evaluator) TotalCount() int { return len(All) }

// Progress returns earned/total in [0,1].
func (e *Evaluator) Progress() float64 {
	return float64(len(e.earned)) / float64(len(All))
}

// CheckAnswer updates the streak and speed counters for one answer and
// returns any badges earned by it. Milestone checks fire only when a
// counter lands exactly on its threshold, so each counter value awards
// at most once. An incorrect answer resets the streak and awards
// nothing.
func (e *Evaluator) CheckAnswer(ctx context.Context, correct bool, elapsed time.Duration, totalProblems, level int) []Type {
	if !correct {
		e.counters.CorrectStreak = 0
		e.saveCounters(ctx)
		return nil
	}

	var earned []Type
	add := func(t Type) {
		if e.earn(ctx, t) {
			earned = append(earned, t)
		}
	}

	e.counters.CorrectStreak++
	switch e.counters.CorrectStreak {
	case 10:
		add(TypeStreak10)
	case 20:
		add(TypeStreak20)
	case 50:
		add(TypeStreak50)
	}

	if elapsed <= fastAnswerLimit {
		e.counters.FastAnswers++
		if e.counters.FastAnswers == speedsterCount {
			add(TypeSpeedster)
		}
	}
	if elapsed <= superFastAnswerLimit {
		e.counters.SuperFastAnswer++
		if e.counters.SuperFastAnswer == lightningCount {
			add(TypeLightning)
		}
	}
	e.saveCounters(ctx)

	switch totalProblems {
	case 100:
		add(TypeProblems100)
	case 500:
		add(TypeProblems500)
	case 1000:
		add(TypeProblems1000)
	}

	switch level {
	case 10:
		add(TypeLevel10)
	case 25:
		add(TypeLevel25)
	case 50:
		add(TypeLevel50)
	}

	return earned
}

// CheckTableMastery awards the table badges for the current count of
// mastered tables.
func (e *Evaluator) CheckTableMastery(ctx context.Context, masteredTables int) []Type {
	var earned []Type
	if masteredTables == 1 && e.earn(ctx, TypeTableMaster) {
		earned = append(earned, TypeTableMaster)
	}
	if masteredTables == 9 && e.earn(ctx, TypeAllTableMaster) {
		earned = append(earned, TypeAllTableMaster)
	}
	return earned
}

// CheckDailyStreak awards the challenge-streak badges.
func (e *Evaluator) CheckDailyStreak(ctx context.Context, streakDays int) []Type {
	var earned []Type
	if streakDays == 7 && e.earn(ctx, TypeDailyChampion) {
		earned = append(earned, TypeDailyChampion)
	}
	if streakDays == 30 && e.earn(ctx, TypeWeeklyWarrior) {
		earned = append(earned, TypeWeeklyWarrior)
	}
	return earned
}

// CheckOvercome awards the overcome badges for the count of difficult
// questions that have improved. Unlike the other milestone checks these
// trigger at or above the threshold, not only on an exact landing.
func (e *Evaluator) CheckOvercome(ctx context.Context, improvedCount int) []Type {
	var earned []Type
	if improvedCount >= overcomerCount && e.earn(ctx, TypeOvercomer) {
		earned = append(earned, TypeOvercomer)
	}
	if improvedCount >= conquerorCount && e.earn(ctx, TypeConqueror) {
		earned = append(earned, TypeConqueror)
	}
	return earned
}

func (e *Evaluator) earn(ctx context.Context, t Type) bool {
	if _, ok := e.earned[t]; ok {
		return false
	}
	b := &Badge{Type: t, EarnedAt: e.now(), IsNew: true}
	e.earned[t] = b
	if e.repo != nil {
		_ = e.repo.Insert(ctx, b)
	}
	return true
}

func (e *Evaluator) saveCounters(ctx context.Context) {
	if e.repo != nil {
		_ = e.repo.SaveCounters(ctx, e.counters)
	}
}
