package difficulty

import (
	"context"
	"testing"
	"time"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(context.Background(), nil)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

func TestFirstMissCreatesRecord(t *testing.T) {
	tr := newTracker(t)
	rec := tr.RecordIncorrect(context.Background(), "3x4", 3, 4)

	if rec.IncorrectCount != 1 || rec.CorrectCount != 0 {
		t.Errorf("got incorrect=%d correct=%d, want 1/0", rec.IncorrectCount, rec.CorrectCount)
	}
	if rec.First != 3 || rec.Second != 4 {
		t.Errorf("operands = %dx%d, want 3x4", rec.First, rec.Second)
	}
}

func TestCorrectOnUntrackedFactIsNoop(t *testing.T) {
	tr := newTracker(t)
	if rec := tr.RecordCorrect(context.Background(), "7x8"); rec != nil {
		t.Errorf("expected nil record for untracked fact, got %+v", rec)
	}
	if tr.Get("7x8") != nil {
		t.Error("correct answer must not create a record")
	}
}

func TestIsDifficultThresholds(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      bool
	}{
		{"under three attempts", 0, 2, false},
		{"one of two missed", 1, 1, false},
		{"three of four missed", 1, 3, true},
		{"two of nine missed", 7, 2, false},
		{"exactly 30 percent", 7, 3, false}, // strict >, not >=
		{"just over 30 percent", 6, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Record{CorrectCount: tt.correct, IncorrectCount: tt.incorrect}
			if got := rec.IsDifficult(); got != tt.want {
				t.Errorf("correct=%d incorrect=%d: isDifficult = %v, want %v",
					tt.correct, tt.incorrect, got, tt.want)
			}
		})
	}
}

func TestTrackerIsDifficultUnknownFact(t *testing.T) {
	tr := newTracker(t)
	if tr.IsDifficult("9x9") {
		t.Error("unknown fact must not be difficult")
	}
}

func TestDifficultList(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tr.RecordIncorrect(ctx, "6x7", 6, 7)
	}
	tr.RecordIncorrect(ctx, "2x2", 2, 2)

	diff := tr.Difficult()
	if len(diff) != 1 || diff[0].Identifier != "6x7" {
		t.Errorf("difficult = %v, want only 6x7", diff)
	}
}

func TestImproved(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	// Missed three times, then answered correctly seven times: 3/10 = 30%,
	// no longer strictly above the threshold.
	for i := 0; i < 3; i++ {
		tr.RecordIncorrect(ctx, "8x6", 8, 6)
	}
	for i := 0; i < 7; i++ {
		tr.RecordCorrect(ctx, "8x6")
	}

	improved := tr.Improved(7)
	if len(improved) != 1 || improved[0].Identifier != "8x6" {
		t.Errorf("improved = %v, want 8x6", improved)
	}

	// A still-difficult fact must not appear.
	for i := 0; i < 4; i++ {
		tr.RecordIncorrect(ctx, "7x7", 7, 7)
	}
	for _, r := range tr.Improved(7) {
		if r.Identifier == "7x7" {
			t.Error("difficult fact listed as improved")
		}
	}
}

func TestCountDifficultAt(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return base }
	for i := 0; i < 3; i++ {
		tr.RecordIncorrect(ctx, "4x8", 4, 8)
	}

	if got := tr.CountDifficultAt(base.AddDate(0, 0, -1)); got != 0 {
		t.Errorf("count before any miss = %d, want 0", got)
	}
	if got := tr.CountDifficultAt(base); got != 1 {
		t.Errorf("count at last miss = %d, want 1", got)
	}
}
