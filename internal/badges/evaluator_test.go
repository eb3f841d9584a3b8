package badges

import (
	"context"
	"testing"
	"time"
)

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(context.Background(), nil)
	if err != nil {
		t.Fatalf("new evaluator: %v", err)
	}
	return e
}

func answer(e *Evaluator, correct bool, elapsed time.Duration) []Type {
	return e.CheckAnswer(context.Background(), correct, elapsed, 0, 1)
}

func TestStreakBadges(t *testing.T) {
	e := newEvaluator(t)

	for i := 0; i < 9; i++ {
		if got := answer(e, true, 5*time.Second); len(got) != 0 {
			t.Fatalf("badge before 10th answer: %v", got)
		}
	}
	got := answer(e, true, 5*time.Second)
	if len(got) != 1 || got[0] != TypeStreak10 {
		t.Fatalf("10th answer earned %v, want [streak_10]", got)
	}
	if !e.Has(TypeStreak10) {
		t.Error("streak_10 not recorded as earned")
	}
}

func TestStreakResetsOnMiss(t *testing.T) {
	e := newEvaluator(t)

	for i := 0; i < 9; i++ {
		answer(e, true, 5*time.Second)
	}
	answer(e, false, 5*time.Second)
	if got := answer(e, true, 5*time.Second); len(got) != 0 {
		t.Errorf("earned %v right after a miss", got)
	}
	// Nine more correct answers complete a fresh run of ten.
	for i := 0; i < 8; i++ {
		answer(e, true, 5*time.Second)
	}
	got := answer(e, true, 5*time.Second)
	if len(got) != 1 || got[0] != TypeStreak10 {
		t.Errorf("fresh run of 10 earned %v, want [streak_10]", got)
	}
}

func TestSpeedCountersSurviveMisses(t *testing.T) {
	e := newEvaluator(t)

	// Nine fast answers, then a miss. The fast counter keeps its value.
	for i := 0; i < 9; i++ {
		answer(e, true, 2500*time.Millisecond)
	}
	answer(e, false, time.Second)

	got := answer(e, true, 2500*time.Millisecond)
	if len(got) != 1 || got[0] != TypeSpeedster {
		t.Errorf("10th fast answer earned %v, want [speedster]", got)
	}
}

func TestLightningCountsSuperFastOnly(t *testing.T) {
	e := newEvaluator(t)

	// 2.5s answers are fast but not super fast.
	for i := 0; i < 30; i++ {
		answer(e, true, 2500*time.Millisecond)
	}
	if e.Has(TypeLightning) {
		t.Fatal("lightning earned without sub-2s answers")
	}
	for i := 0; i < 19; i++ {
		answer(e, true, time.Second)
	}
	got := answer(e, true, time.Second)
	if len(got) == 0 || got[len(got)-1] != TypeLightning {
		t.Errorf("20th super-fast answer earned %v, want lightning", got)
	}
}

func TestProblemCountExactLanding(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	if got := e.CheckAnswer(ctx, true, 5*time.Second, 99, 1); len(got) != 0 {
		t.Errorf("99 problems earned %v", got)
	}
	got := e.CheckAnswer(ctx, true, 5*time.Second, 100, 1)
	if len(got) != 1 || got[0] != TypeProblems100 {
		t.Errorf("100 problems earned %v, want [problems_100]", got)
	}
	if got := e.CheckAnswer(ctx, true, 5*time.Second, 101, 1); len(got) != 0 {
		t.Errorf("101 problems earned %v", got)
	}
}

func TestLevelBadges(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	got := e.CheckAnswer(ctx, true, 5*time.Second, 1, 10)
	if len(got) != 1 || got[0] != TypeLevel10 {
		t.Errorf("level 10 earned %v, want [level_10]", got)
	}
	// Earn-once: the same level never awards twice.
	if got := e.CheckAnswer(ctx, true, 5*time.Second, 2, 10); len(got) != 0 {
		t.Errorf("level 10 re-earned: %v", got)
	}
}

func TestTableMasteryBadges(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	got := e.CheckTableMastery(ctx, 1)
	if len(got) != 1 || got[0] != TypeTableMaster {
		t.Errorf("one mastered table earned %v", got)
	}
	if got := e.CheckTableMastery(ctx, 5); len(got) != 0 {
		t.Errorf("five mastered tables earned %v", got)
	}
	got = e.CheckTableMastery(ctx, 9)
	if len(got) != 1 || got[0] != TypeAllTableMaster {
		t.Errorf("nine mastered tables earned %v", got)
	}
}

func TestDailyStreakBadges(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	if got := e.CheckDailyStreak(ctx, 6); len(got) != 0 {
		t.Errorf("6-day streak earned %v", got)
	}
	got := e.CheckDailyStreak(ctx, 7)
	if len(got) != 1 || got[0] != TypeDailyChampion {
		t.Errorf("7-day streak earned %v", got)
	}
	got = e.CheckDailyStreak(ctx, 30)
	if len(got) != 1 || got[0] != TypeWeeklyWarrior {
		t.Errorf("30-day streak earned %v", got)
	}
}

func TestOvercomeBadgesAtOrAbove(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	if got := e.CheckOvercome(ctx, 4); len(got) != 0 {
		t.Errorf("4 improved earned %v", got)
	}
	// Jumping straight past both thresholds earns both at once.
	got := e.CheckOvercome(ctx, 12)
	if len(got) != 2 || got[0] != TypeOvercomer || got[1] != TypeConqueror {
		t.Errorf("12 improved earned %v, want [overcomer conqueror]", got)
	}
	if got := e.CheckOvercome(ctx, 20); len(got) != 0 {
		t.Errorf("re-earned overcome badges: %v", got)
	}
}

func TestNewBadgesAndMarkSeen(t *testing.T) {
	e := newEvaluator(t)
	ctx := context.Background()

	e.CheckTableMastery(ctx, 1)
	e.CheckDailyStreak(ctx, 7)

	if got := len(e.NewBadges()); got != 2 {
		t.Fatalf("new badges = %d, want 2", got)
	}
	e.MarkSeen(ctx)
	if got := len(e.NewBadges()); got != 0 {
		t.Errorf("new badges after mark seen = %d", got)
	}
	if e.EarnedCount() != 2 {
		t.Errorf("earned count = %d, want 2", e.EarnedCount())
	}
}

func TestDisplayInfoCoversAllTypes(t *testing.T) {
	for _, typ := range All {
		if !typ.Valid() {
			t.Errorf("%s not valid", typ)
		}
		info := typ.DisplayInfo()
		if info.Title == "" || info.Requirement == "" {
			t.Errorf("%s missing display info", typ)
		}
	}
}
