package points

import (
	"context"
	"testing"
)

func newBalance(t *testing.T) *Balance {
	t.Helper()
	b, err := NewBalance(context.Background(), nil)
	if err != nil {
		t.Fatalf("new balance: %v", err)
	}
	return b
}

func TestAddPoints(t *testing.T) {
	b := newBalance(t)
	ctx := context.Background()

	if err := b.AddPoints(ctx, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.AddPoints(ctx, 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	if b.TotalEarned() != 8 || b.Available() != 8 {
		t.Errorf("earned=%d available=%d, want 8/8", b.TotalEarned(), b.Available())
	}
}

func TestAddPointsRejectsNegative(t *testing.T) {
	b := newBalance(t)
	if err := b.AddPoints(context.Background(), -1); err == nil {
		t.Error("expected error for negative amount")
	}
	if b.TotalEarned() != 0 {
		t.Errorf("balance mutated on rejected add: %d", b.TotalEarned())
	}
}

func TestSpend(t *testing.T) {
	b := newBalance(t)
	ctx := context.Background()
	_ = b.AddPoints(ctx, 10)

	ok, err := b.Spend(ctx, 4, "stickers")
	if err != nil || !ok {
		t.Fatalf("spend: ok=%v err=%v", ok, err)
	}
	if b.Available() != 6 {
		t.Errorf("available = %d, want 6", b.Available())
	}
	if b.TotalEarned() != 10 {
		t.Errorf("spend changed totalEarned: %d", b.TotalEarned())
	}
}

func TestSpendInsufficientLeavesStateUnchanged(t *testing.T) {
	b := newBalance(t)
	ctx := context.Background()
	_ = b.AddPoints(ctx, 3)

	ok, err := b.Spend(ctx, 5, "toy")
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if ok {
		t.Error("spend should fail when balance is short")
	}
	if b.Available() != 3 || b.TotalEarned() != 3 {
		t.Errorf("state mutated on failed spend: available=%d earned=%d", b.Available(), b.TotalEarned())
	}
}

func TestScoreAnswerIncorrect(t *testing.T) {
	b := newBalance(t)
	if got := b.ScoreAnswer(context.Background(), "3x4", false, true); got != 0 {
		t.Errorf("incorrect answer awarded %d points", got)
	}
	if b.TotalEarned() != 0 {
		t.Errorf("balance mutated on incorrect answer: %d", b.TotalEarned())
	}
}

func TestScoreAnswerPlain(t *testing.T) {
	b := newBalance(t)
	if got := b.ScoreAnswer(context.Background(), "3x4", true, false); got != BasePoints {
		t.Errorf("plain correct = %d, want %d", got, BasePoints)
	}
}

func TestScoreAnswerDifficultBonusCap(t *testing.T) {
	b := newBalance(t)
	ctx := context.Background()

	// base/2+1 = 1 bonus per answer; the cap of 10 allows exactly ten
	// bonus payments for one fact.
	for i := 0; i < 10; i++ {
		if got := b.ScoreAnswer(ctx, "7x8", true, true); got != BasePoints+1 {
			t.Fatalf("award %d = %d, want %d", i, got, BasePoints+1)
		}
	}
	if paid := b.BonusPaid("7x8"); paid != MaxBonusPerFact {
		t.Errorf("bonus paid = %d, want %d", paid, MaxBonusPerFact)
	}

	// The eleventh difficult answer earns the base point only.
	if got := b.ScoreAnswer(ctx, "7x8", true, true); got != BasePoints {
		t.Errorf("award past cap = %d, want %d", got, BasePoints)
	}

	// A different fact has its own ledger entry.
	if got := b.ScoreAnswer(ctx, "6x9", true, true); got != BasePoints+1 {
		t.Errorf("fresh fact award = %d, want %d", got, BasePoints+1)
	}
}

func TestRedeem(t *testing.T) {
	b := newBalance(t)
	ctx := context.Background()
	_ = b.AddPoints(ctx, 12)

	if got := b.Redeem(ctx, "allowance"); got != 12 {
		t.Errorf("redeem = %d, want 12", got)
	}
	if b.Available() != 0 || b.TotalEarned() != 12 {
		t.Errorf("after redeem: available=%d earned=%d", b.Available(), b.TotalEarned())
	}
	if got := b.Redeem(ctx, "again"); got != 0 {
		t.Errorf("redeem on empty balance = %d, want 0", got)
	}
}
