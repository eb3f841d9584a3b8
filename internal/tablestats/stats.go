package tablestats

import (
	"context"
	"time"

	"github.com/kukulab/kuku/internal/question"
)

// Mastery classification thresholds on the per-table correct rate.
// The bands are half-open: rate < 0.26 is beginner, < 0.61 intermediate,
// < 0.86 advanced, everything else master.
const (
	intermediateFloor = 0.26
	advancedFloor     = 0.61
	masterFloor       = 0.86
)

// Level is the per-table mastery classification.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelMaster       Level = "master"
)

// LevelFor maps a correct rate onto a mastery level.
func LevelFor(correctRate float64) Level {
	switch {
	case correctRate < intermediateFloor:
		return LevelBeginner
	case correctRate < advancedFloor:
		return LevelIntermediate
	case correctRate < masterFloor:
		return LevelAdvanced
	default:
		return LevelMaster
	}
}

// Record holds cumulative counters for one multiplication table.
type Record struct {
	Table           int
	TotalProblems   int
	CorrectProblems int
	LastUpdated     time.Time
}

// CorrectRate returns correct/total, or 0 for an untouched table.
func (r *Record) CorrectRate() float64 {
	if r.TotalProblems == 0 {
		return 0
	}
	return float64(r.CorrectProblems) / float64(r.TotalProblems)
}

// Level returns the mastery classification for this table.
func (r *Record) Level() Level {
	return LevelFor(r.CorrectRate())
}

// Repo persists table records.
type Repo interface {
	All(ctx context.Context) ([]*Record, error)
	Upsert(ctx context.Context, rec *Record) error
}

// Tracker keeps the nine table records in memory and writes through on
// mutation. All nine records exist at all times, zero-created on load.
type Tracker struct {
	records map[int]*Record
	repo    Repo
	now     func() time.Time
}

// NewTracker loads records from the repo and fills in any missing
// tables with zeroed records.
func NewTracker(ctx context.Context, repo Repo) (*Tracker, error) {
	t := &Tracker{
		records: make(map[int]*Record, question.MaxTable),
		repo:    repo,
		now:     time.Now,
	}
	if repo != nil {
		recs, err := repo.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			t.records[r.Table] = r
		}
	}
	for table := question.MinTable; table <= question.MaxTable; table++ {
		if _, ok := t.records[table]; !ok {
			t.records[table] = &Record{Table: table, LastUpdated: t.now()}
		}
	}
	return t, nil
}

// Get returns the record for a table. Tables outside 1..9 return nil.
func (t *Tracker) Get(table int) *Record {
	return t.records[table]
}

// All returns the nine records ordered by table number.
func (t *Tracker) All() []*Record {
	out := make([]*Record, 0, question.MaxTable)
	for table := question.MinTable; table <= question.MaxTable; table++ {
		out = append(out, t.records[table])
	}
	return out
}

// RecordAnswer credits an answer to the tables of BOTH operands. A fact
// like 3x4 counts toward table 3 and table 4; summing totals across all
// tables therefore double-counts answers with distinct operands. The
// stats display depends on this, so it must not be normalized away.
func (t *Tracker) RecordAnswer(ctx context.Context, first, second int, correct bool) {
	tables := []int{first}
	if second != first {
		tables = append(tables, second)
	}
	for _, table := range tables {
		rec, ok := t.records[table]
		if !ok {
			continue
		}
		rec.TotalProblems++
		if correct {
			rec.CorrectProblems++
		}
		rec.LastUpdated = t.now()
		if t.repo != nil {
			_ = t.repo.Upsert(ctx, rec)
		}
	}
}

// AnswerHistory is the slice of past answers needed to rebuild counters.
type AnswerHistory struct {
	Identifier string
	Correct    bool
}

// RebuildFromHistory zeroes all nine records and replays the answer log.
// Used when persisted aggregates are missing or corrupt.
func (t *Tracker) RebuildFromHistory(ctx context.Context, history []AnswerHistory) {
	for table := question.MinTable; table <= question.MaxTable; table++ {
		t.records[table] = &Record{Table: table, LastUpdated: t.now()}
	}
	for _, h := range history {
		first, second, ok := question.ParseIdentifier(h.Identifier)
		if !ok || first > question.MaxTable || second > question.MaxTable {
			continue
		}
		t.RecordAnswer(ctx, first, second, h.Correct)
	}
}

// MasteredCount returns how many tables are currently at master level.
func (t *Tracker) MasteredCount() int {
	n := 0
	for _, r := range t.records {
		if r.Level() == LevelMaster {
			n++
		}
	}
	return n
}
