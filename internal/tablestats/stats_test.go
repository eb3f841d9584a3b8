package tablestats

import (
	"context"
	"testing"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(context.Background(), nil)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

func TestAllNineTablesExist(t *testing.T) {
	tr := newTracker(t)
	all := tr.All()
	if len(all) != 9 {
		t.Fatalf("got %d records, want 9", len(all))
	}
	for i, r := range all {
		if r.Table != i+1 {
			t.Errorf("record %d has table %d", i, r.Table)
		}
		if r.TotalProblems != 0 || r.CorrectProblems != 0 {
			t.Errorf("table %d not zeroed: %+v", r.Table, r)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		rate float64
		want Level
	}{
		{0.0, LevelBeginner},
		{0.25, LevelBeginner},
		{0.26, LevelIntermediate},
		{0.60, LevelIntermediate},
		{0.61, LevelAdvanced},
		{0.85, LevelAdvanced},
		{0.86, LevelMaster},
		{1.0, LevelMaster},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.rate); got != tt.want {
			t.Errorf("LevelFor(%v) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestRecordAnswerUpdatesBothTables(t *testing.T) {
	tr := newTracker(t)
	tr.RecordAnswer(context.Background(), 3, 4, true)

	for _, table := range []int{3, 4} {
		r := tr.Get(table)
		if r.TotalProblems != 1 || r.CorrectProblems != 1 {
			t.Errorf("table %d = %d/%d, want 1/1", table, r.CorrectProblems, r.TotalProblems)
		}
	}
	if r := tr.Get(5); r.TotalProblems != 0 {
		t.Errorf("table 5 touched: %+v", r)
	}
}

func TestRecordAnswerSquareCountsOnce(t *testing.T) {
	tr := newTracker(t)
	tr.RecordAnswer(context.Background(), 6, 6, false)

	r := tr.Get(6)
	if r.TotalProblems != 1 || r.CorrectProblems != 0 {
		t.Errorf("table 6 = %d/%d, want 0/1", r.CorrectProblems, r.TotalProblems)
	}
}

func TestRebuildFromHistory(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	// Seed some state that the rebuild must discard.
	tr.RecordAnswer(ctx, 9, 9, true)

	tr.RebuildFromHistory(ctx, []AnswerHistory{
		{Identifier: "2x3", Correct: true},
		{Identifier: "2x5", Correct: false},
		{Identifier: "not-a-fact", Correct: true},
	})

	r2 := tr.Get(2)
	if r2.TotalProblems != 2 || r2.CorrectProblems != 1 {
		t.Errorf("table 2 = %d/%d, want 1/2", r2.CorrectProblems, r2.TotalProblems)
	}
	if r9 := tr.Get(9); r9.TotalProblems != 0 {
		t.Errorf("table 9 not reset: %+v", r9)
	}
}

func TestMasteredCount(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	// Table 4: 44 correct of 50 → 88% → master.
	for i := 0; i < 44; i++ {
		tr.RecordAnswer(ctx, 4, 4, true)
	}
	for i := 0; i < 6; i++ {
		tr.RecordAnswer(ctx, 4, 4, false)
	}

	r := tr.Get(4)
	if r.Level() != LevelMaster {
		t.Errorf("table 4 level = %v, want master (rate %v)", r.Level(), r.CorrectRate())
	}
	if got := tr.MasteredCount(); got != 1 {
		t.Errorf("mastered count = %d, want 1", got)
	}
}
