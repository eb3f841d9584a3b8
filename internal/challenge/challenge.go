package challenge

import (
	"context"
	"time"
)

// DefaultTarget is the fixed daily goal assigned when a day's record is
// created.
const DefaultTarget = 5

// Day is one calendar day's challenge record. Day is midnight local
// time.
type Day struct {
	Day               time.Time
	TargetProblems    int
	CompletedProblems int
	StreakCount       int
	CreatedAt         time.Time
}

// IsCompleted reports whether the day's goal has been met.
func (d *Day) IsCompleted() bool {
	return d.CompletedProblems >= d.TargetProblems
}

// Progress returns completed/target clamped to [0,1].
func (d *Day) Progress() float64 {
	if d.TargetProblems <= 0 {
		return 0
	}
	p := float64(d.CompletedProblems) / float64(d.TargetProblems)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Repo persists daily records keyed by day.
type Repo interface {
	// Get returns the record for a day, or nil when none exists.
	Get(ctx context.Context, day time.Time) (*Day, error)
	Upsert(ctx context.Context, d *Day) error
}

// Tracker manages daily challenge records and the day-over-day streak.
type Tracker struct {
	repo Repo
	now  func() time.Time
}

// NewTracker creates a tracker over the given repo.
func NewTracker(repo Repo) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetOrCreateToday returns today's record, creating it on first call of
// the day. The streak carries forward from yesterday only if yesterday's
// goal was met; otherwise it resets to zero. Repeated calls on the same
// day return the same record.
func (t *Tracker) GetOrCreateToday(ctx context.Context) (*Day, error) {
	today := startOfDay(t.now())

	existing, err := t.repo.Get(ctx, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	streak := 0
	yesterday, err := t.repo.Get(ctx, today.AddDate(0, 0, -1))
	if err == nil && yesterday != nil && yesterday.IsCompleted() {
		streak = yesterday.StreakCount + 1
	}

	d := &Day{
		Day:            today,
		TargetProblems: DefaultTarget,
		StreakCount:    streak,
		CreatedAt:      t.now(),
	}
	if err := t.repo.Upsert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateProgress adds completed problems to today's record. The first
// time a record created with streak 0 reaches its goal, the streak bumps
// to 1 so the very first completed day counts itself.
func (t *Tracker) UpdateProgress(ctx context.Context, d *Day, additional int) {
	d.CompletedProblems += additional
	if d.IsCompleted() && d.StreakCount == 0 {
		d.StreakCount = 1
	}
	_ = t.repo.Upsert(ctx, d)
}

// CurrentStreak walks backward from today counting consecutive completed
// days, stopping at the first missing or incomplete day. Today counts
// only once its goal is met.
func (t *Tracker) CurrentStreak(ctx context.Context) int {
	streak := 0
	day := startOfDay(t.now())
	for {
		d, err := t.repo.Get(ctx, day)
		if err != nil || d == nil || !d.IsCompleted() {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyHistory returns the most recent seven days' records, oldest
// first. Days with no record are skipped.
func (t *Tracker) WeeklyHistory(ctx context.Context) []*Day {
	var out []*Day
	today := startOfDay(t.now())
	for i := 6; i >= 0; i-- {
		d, err := t.repo.Get(ctx, today.AddDate(0, 0, -i))
		if err != nil || d == nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
