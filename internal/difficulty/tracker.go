package difficulty

import (
	"context"
	"time"
)

// Thresholds for the difficult-fact classification: a fact needs at
// least MinAttempts answers, and a miss rate strictly above
// ThresholdPercent, before it counts as difficult.
const (
	MinAttempts      = 3
	ThresholdPercent = 30.0
)

// Record holds the per-fact counters. A record only exists once the fact
// has been missed at least once; facts that have never been missed are
// never tracked.
type Record struct {
	Identifier      string
	First           int
	Second          int
	CorrectCount    int
	IncorrectCount  int
	LastIncorrectAt time.Time
}

// TotalAttempts returns the number of tracked answers to this fact.
func (r *Record) TotalAttempts() int {
	return r.CorrectCount + r.IncorrectCount
}

// IncorrectPercent returns the miss rate in percent (0 when untouched).
func (r *Record) IncorrectPercent() float64 {
	total := r.TotalAttempts()
	if total == 0 {
		return 0
	}
	return float64(r.IncorrectCount) / float64(total) * 100
}

// IsDifficult reports whether the fact currently classifies as
// difficult. The percentage comparison is strict: exactly 30% is not
// difficult.
func (r *Record) IsDifficult() bool {
	return r.TotalAttempts() >= MinAttempts && r.IncorrectPercent() > ThresholdPercent
}

// Repo persists difficulty records. Save failures are non-fatal; the
// in-memory state stays authoritative for the session.
type Repo interface {
	All(ctx context.Context) ([]*Record, error)
	Upsert(ctx context.Context, rec *Record) error
}

// Tracker keeps all difficulty records in memory and writes through to
// the repo on every mutation.
type Tracker struct {
	records map[string]*Record
	repo    Repo
	now     func() time.Time
}

// NewTracker loads existing records from the repo. A nil repo gives a
// purely in-memory tracker (used in tests and by history replay).
func NewTracker(ctx context.Context, repo Repo) (*Tracker, error) {
	t := &Tracker{
		records: make(map[string]*Record),
		repo:    repo,
		now:     time.Now,
	}
	if repo == nil {
		return t, nil
	}
	recs, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		t.records[r.Identifier] = r
	}
	return t, nil
}

// RecordIncorrect registers a miss. The first miss creates the record
// with incorrectCount=1.
func (t *Tracker) RecordIncorrect(ctx context.Context, identifier string, first, second int) *Record {
	rec, ok := t.records[identifier]
	if !ok {
		rec = &Record{
			Identifier:      identifier,
			First:           first,
			Second:          second,
			IncorrectCount:  1,
			LastIncorrectAt: t.now(),
		}
		t.records[identifier] = rec
	} else {
		rec.IncorrectCount++
		rec.LastIncorrectAt = t.now()
	}
	t.save(ctx, rec)
	return rec
}

// RecordCorrect registers a correct answer to a tracked fact. Facts with
// no record are ignored: a fact that has never been missed never becomes
// difficult.
func (t *Tracker) RecordCorrect(ctx context.Context, identifier string) *Record {
	rec, ok := t.records[identifier]
	if !ok {
		return nil
	}
	rec.CorrectCount++
	t.save(ctx, rec)
	return rec
}

// IsDifficult reports the current classification for a fact.
func (t *Tracker) IsDifficult(identifier string) bool {
	rec, ok := t.records[identifier]
	return ok && rec.IsDifficult()
}

// Get returns the record for a fact, or nil if it was never missed.
func (t *Tracker) Get(identifier string) *Record {
	return t.records[identifier]
}

// Difficult returns all facts currently classified as difficult.
func (t *Tracker) Difficult() []*Record {
	var out []*Record
	for _, r := range t.records {
		if r.IsDifficult() {
			out = append(out, r)
		}
	}
	return out
}

// Improved returns tracked facts that are no longer difficult: at least
// MinAttempts answers, currently below the threshold, and either missed
// within the window or answered correctly at least once.
func (t *Tracker) Improved(withinDays int) []*Record {
	cutoff := t.now().AddDate(0, 0, -withinDays)
	var out []*Record
	for _, r := range t.records {
		if r.IsDifficult() || r.TotalAttempts() < MinAttempts {
			continue
		}
		if r.LastIncorrectAt.Before(cutoff) && r.CorrectCount == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountDifficultAt counts facts that classified as difficult as of the
// given date, judged by last-miss time. This mirrors the trend chart's
// approximation; correct answers after the date are not unwound.
func (t *Tracker) CountDifficultAt(date time.Time) int {
	n := 0
	for _, r := range t.records {
		if !r.LastIncorrectAt.After(date) && r.IsDifficult() {
			n++
		}
	}
	return n
}

func (t *Tracker) save(ctx context.Context, rec *Record) {
	if t.repo == nil {
		return
	}
	// Fire-and-forget: a failed save is retried on the next mutation.
	_ = t.repo.Upsert(ctx, rec)
}
