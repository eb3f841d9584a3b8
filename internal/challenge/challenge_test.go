package challenge

import (
	"context"
	"testing"
	"time"
)

// memRepo is an in-memory challenge repo for tests.
type memRepo struct {
	days map[time.Time]*Day
}

func newMemRepo() *memRepo {
	return &memRepo{days: make(map[time.Time]*Day)}
}

func (m *memRepo) Get(_ context.Context, day time.Time) (*Day, error) {
	return m.days[day], nil
}

func (m *memRepo) Upsert(_ context.Context, d *Day) error {
	m.days[d.Day] = d
	return nil
}

func trackerAt(repo *memRepo, now time.Time) *Tracker {
	t := NewTracker(repo)
	t.now = func() time.Time { return now }
	return t
}

var day0 = time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

func TestGetOrCreateTodayIdempotent(t *testing.T) {
	repo := newMemRepo()
	tr := trackerAt(repo, day0)
	ctx := context.Background()

	first, err := tr.GetOrCreateToday(ctx)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if first.TargetProblems != DefaultTarget {
		t.Errorf("target = %d, want %d", first.TargetProblems, DefaultTarget)
	}

	second, err := tr.GetOrCreateToday(ctx)
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if first != second {
		t.Error("second call created a new record")
	}
}

func TestStreakCarriesFromCompletedYesterday(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	yesterday := trackerAt(repo, day0)
	d, _ := yesterday.GetOrCreateToday(ctx)
	yesterday.UpdateProgress(ctx, d, 5)
	if !d.IsCompleted() || d.StreakCount != 1 {
		t.Fatalf("yesterday not completed with bump: %+v", d)
	}

	today := trackerAt(repo, day0.AddDate(0, 0, 1))
	d2, _ := today.GetOrCreateToday(ctx)
	if d2.StreakCount != 2 {
		t.Errorf("streak = %d, want 2", d2.StreakCount)
	}
}

func TestStreakResetsAfterIncompleteYesterday(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	yesterday := trackerAt(repo, day0)
	d, _ := yesterday.GetOrCreateToday(ctx)
	yesterday.UpdateProgress(ctx, d, 3) // short of the goal

	today := trackerAt(repo, day0.AddDate(0, 0, 1))
	d2, _ := today.GetOrCreateToday(ctx)
	if d2.StreakCount != 0 {
		t.Errorf("streak = %d, want 0", d2.StreakCount)
	}
}

func TestFirstCompletionBumpOnlyOnce(t *testing.T) {
	repo := newMemRepo()
	tr := trackerAt(repo, day0)
	ctx := context.Background()

	d, _ := tr.GetOrCreateToday(ctx)
	tr.UpdateProgress(ctx, d, 2)
	if d.StreakCount != 0 {
		t.Errorf("streak bumped before completion: %d", d.StreakCount)
	}
	tr.UpdateProgress(ctx, d, 3)
	if d.StreakCount != 1 {
		t.Errorf("streak = %d, want 1 after first completion", d.StreakCount)
	}
	tr.UpdateProgress(ctx, d, 5)
	if d.StreakCount != 1 {
		t.Errorf("streak re-bumped: %d", d.StreakCount)
	}
}

func TestCurrentStreakWalk(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	// Three consecutive completed days ending today.
	for i := 2; i >= 0; i-- {
		tr := trackerAt(repo, day0.AddDate(0, 0, -i))
		d, _ := tr.GetOrCreateToday(ctx)
		tr.UpdateProgress(ctx, d, 5)
	}

	tr := trackerAt(repo, day0)
	if got := tr.CurrentStreak(ctx); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}

	// An incomplete today hides the run.
	next := trackerAt(repo, day0.AddDate(0, 0, 1))
	if _, err := next.GetOrCreateToday(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := next.CurrentStreak(ctx); got != 0 {
		t.Errorf("streak with incomplete today = %d, want 0", got)
	}
}

func TestWeeklyHistoryOldestFirst(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	for i := 9; i >= 0; i-- {
		tr := trackerAt(repo, day0.AddDate(0, 0, -i))
		if _, err := tr.GetOrCreateToday(ctx); err != nil {
			t.Fatalf("create day -%d: %v", i, err)
		}
	}

	tr := trackerAt(repo, day0)
	week := tr.WeeklyHistory(ctx)
	if len(week) != 7 {
		t.Fatalf("history length = %d, want 7", len(week))
	}
	for i := 1; i < len(week); i++ {
		if !week[i-1].Day.Before(week[i].Day) {
			t.Errorf("history not oldest-first at %d: %v then %v", i, week[i-1].Day, week[i].Day)
		}
	}
}
