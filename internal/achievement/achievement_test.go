package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memRepo struct {
	items []*Achievement
}

func (m *memRepo) Insert(_ context.Context, a *Achievement) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memRepo) Recent(_ context.Context, limit int) ([]*Achievement, error) {
	out := make([]*Achievement, len(m.items))
	copy(out, m.items)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) Unshared(_ context.Context) ([]*Achievement, error) {
	var out []*Achievement
	for _, a := range m.items {
		if !a.IsShared {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) MarkShared(_ context.Context, id uuid.UUID) error {
	for _, a := range m.items {
		if a.ID == id {
			a.IsShared = true
		}
	}
	return nil
}

func (m *memRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) error {
	kept := m.items[:0]
	for _, a := range m.items {
		if a.IsSpecial || !a.EarnedAt.Before(cutoff) {
			kept = append(kept, a)
		}
	}
	m.items = kept
	return nil
}

func TestTableMasteryIsSpecial(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo)

	a, err := rec.TableMastery(context.Background(), 7)
	if err != nil {
		t.Fatalf("table mastery: %v", err)
	}
	if !a.IsSpecial {
		t.Error("table mastery not special")
	}
	if a.Metadata["table"] != "7" {
		t.Errorf("metadata table = %q, want 7", a.Metadata["table"])
	}
	if a.ID == uuid.Nil {
		t.Error("missing id")
	}
}

func TestStreakSpecialAtWeek(t *testing.T) {
	rec := NewRecorder(&memRepo{})
	ctx := context.Background()

	short, _ := rec.Streak(ctx, 6)
	if short.IsSpecial {
		t.Error("6-day streak marked special")
	}
	week, _ := rec.Streak(ctx, 7)
	if !week.IsSpecial {
		t.Error("7-day streak not special")
	}
}

func TestSpeedImprovementPercent(t *testing.T) {
	rec := NewRecorder(&memRepo{})

	a, _ := rec.SpeedImprovement(context.Background(), 8.0, 6.0)
	if a.Metadata["improvement"] != "25" {
		t.Errorf("improvement = %q, want 25", a.Metadata["improvement"])
	}
	if !a.IsSpecial {
		t.Error("25% improvement not special")
	}
}

func TestPerfectScoreSpecialAtTen(t *testing.T) {
	rec := NewRecorder(&memRepo{})
	ctx := context.Background()

	small, _ := rec.PerfectScore(ctx, 5)
	if small.IsSpecial {
		t.Error("5-problem perfect score marked special")
	}
	big, _ := rec.PerfectScore(ctx, 10)
	if !big.IsSpecial {
		t.Error("10-problem perfect score not special")
	}
}

func TestUnsharedAndMarkShared(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo)
	ctx := context.Background()

	a, _ := rec.TableMastery(ctx, 3)
	rec.ChallengeComplete(ctx, 5, 5)

	unshared, _ := rec.Unshared(ctx)
	if len(unshared) != 2 {
		t.Fatalf("unshared = %d, want 2", len(unshared))
	}
	if err := rec.MarkShared(ctx, a.ID); err != nil {
		t.Fatalf("mark shared: %v", err)
	}
	unshared, _ = rec.Unshared(ctx)
	if len(unshared) != 1 {
		t.Errorf("unshared after marking = %d, want 1", len(unshared))
	}
}

func TestCleanupKeepsSpecial(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo)
	ctx := context.Background()

	old := time.Now().AddDate(0, -6, 0)
	rec.now = func() time.Time { return old }
	rec.TableMastery(ctx, 2)         // special
	rec.ChallengeComplete(ctx, 5, 5) // not special

	rec.now = time.Now
	if err := rec.Cleanup(ctx, 3); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].Type != TypeTableMastery {
		t.Errorf("cleanup kept %d items, want only the special one", len(repo.items))
	}
}
