package level

import (
	"context"
	"testing"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestExperienceCurve(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{3, 25},
		{4, 45},
		{5, 70},
	}
	for _, tt := range tests {
		if got := ExperienceRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("exp(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromExperience(t *testing.T) {
	tests := []struct {
		exp  int
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{69, 4},
		{70, 5},
		{1 << 30, 50}, // cap
	}
	for _, tt := range tests {
		if got := LevelFromExperience(tt.exp); got != tt.want {
			t.Errorf("LevelFromExperience(%d) = %d, want %d", tt.exp, got, tt.want)
		}
	}
}

func TestUpdateExperienceLevelUp(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	up, lvl := e.UpdateExperience(ctx, 15)
	if !up || lvl != 2 {
		t.Fatalf("got up=%v lvl=%d, want level-up to 2", up, lvl)
	}
	if e.Title() != TitleBeginner {
		t.Errorf("title = %v, want beginner (level 2 is within 1-5)", e.Title())
	}
	if len(e.History()) != 1 {
		t.Fatalf("history length = %d, want 1", len(e.History()))
	}
	rec := e.History()[0]
	if rec.FromLevel != 1 || rec.ToLevel != 2 || rec.TotalExperienceAtTime != 15 {
		t.Errorf("history record = %+v", rec)
	}
}

func TestUpdateExperienceNoDemotion(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.UpdateExperience(ctx, 100) // level 6 territory
	before := e.Level()

	up, _ := e.UpdateExperience(ctx, 0)
	if up {
		t.Error("reported level-up on lowered experience")
	}
	if e.Level() != before {
		t.Errorf("level dropped from %d to %d", before, e.Level())
	}
}

func TestUpdateExperienceSameLevelNoHistory(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.UpdateExperience(ctx, 5) // still level 1
	if len(e.History()) != 0 {
		t.Errorf("history grew without a level-up: %v", e.History())
	}
}

func TestTitleBands(t *testing.T) {
	tests := []struct {
		level int
		want  Title
	}{
		{1, TitleBeginner},
		{5, TitleBeginner},
		{6, TitleApprentice},
		{10, TitleApprentice},
		{11, TitlePractitioner},
		{20, TitlePractitioner},
		{21, TitleExpert},
		{30, TitleExpert},
		{31, TitleMaster},
		{40, TitleMaster},
		{41, TitleGrandmaster},
		{49, TitleGrandmaster},
		{50, TitleLegend},
	}
	for _, tt := range tests {
		if got := TitleForLevel(tt.level); got != tt.want {
			t.Errorf("TitleForLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	// Level 2 spans 10..25. At 15 experience, progress is 5/15.
	e.UpdateExperience(ctx, 15)
	got := e.Progress()
	want := 5.0 / 15.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("progress = %v, want %v", got, want)
	}

	// At the cap, progress pins to 1.
	e.UpdateExperience(ctx, ExperienceRequiredForLevel(MaxLevel)+500)
	if e.Level() != MaxLevel {
		t.Fatalf("level = %d, want %d", e.Level(), MaxLevel)
	}
	if e.Progress() != 1.0 {
		t.Errorf("progress at cap = %v, want 1.0", e.Progress())
	}
}
