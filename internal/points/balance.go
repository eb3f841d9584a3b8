package points

import (
	"context"
	"fmt"
	"time"
)

// Scoring constants. The bonus for a difficult fact is half the base
// point plus one, and each fact can pay out at most MaxBonusPerFact
// bonus points over its lifetime so a single fact cannot be ground for
// points.
const (
	BasePoints      = 1
	MaxBonusPerFact = 10
)

// State is the persisted point balance.
type State struct {
	TotalEarned int
	Available   int
	BonusLedger map[string]int
	LastUpdated time.Time
}

// Event is one row of the earn/spend ledger.
type Event struct {
	Kind       string // "earn" or "spend"
	Amount     int
	QuestionID string
	Bonus      bool
	Reason     string
	At         time.Time
}

// Repo persists the balance and its ledger.
type Repo interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
	AppendEvent(ctx context.Context, ev Event) error
}

// Balance is the scoring engine. Mutations apply to the in-memory state
// first and are written through to the repo; a failed save is retried on
// the next mutation.
type Balance struct {
	state *State
	repo  Repo
	now   func() time.Time
}

// NewBalance loads the balance, creating a zeroed one if none exists.
func NewBalance(ctx context.Context, repo Repo) (*Balance, error) {
	b := &Balance{repo: repo, now: time.Now}
	if repo != nil {
		st, err := repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		b.state = st
	}
	if b.state == nil {
		b.state = &State{BonusLedger: make(map[string]int)}
	}
	if b.state.BonusLedger == nil {
		b.state.BonusLedger = make(map[string]int)
	}
	return b, nil
}

// TotalEarned returns the lifetime earned points. Never decreases.
func (b *Balance) TotalEarned() int { return b.state.TotalEarned }

// Available returns the spendable points.
func (b *Balance) Available() int { return b.state.Available }

// BonusPaid returns the cumulative bonus already paid for a fact.
func (b *Balance) BonusPaid(identifier string) int {
	return b.state.BonusLedger[identifier]
}

// AddPoints credits n points to both the lifetime total and the
// spendable balance. Negative amounts are a programmer error.
func (b *Balance) AddPoints(ctx context.Context, n int) error {
	return b.addPoints(ctx, n, "", false)
}

func (b *Balance) addPoints(ctx context.Context, n int, questionID string, bonus bool) error {
	if n < 0 {
		return fmt.Errorf("points: negative amount %d", n)
	}
	b.state.TotalEarned += n
	b.state.Available += n
	b.state.LastUpdated = b.now()
	b.persist(ctx)
	if n > 0 {
		b.appendEvent(ctx, Event{Kind: "earn", Amount: n, QuestionID: questionID, Bonus: bonus, At: b.state.LastUpdated})
	}
	return nil
}

// ScoreAnswer converts an answer outcome into awarded points and applies
// them. Incorrect answers award nothing. Correct answers earn the base
// point; correct answers to a currently-difficult fact also earn a bonus
// of base/2+1, clamped so the lifetime bonus per fact never exceeds
// MaxBonusPerFact. Base and bonus are applied as one mutation.
func (b *Balance) ScoreAnswer(ctx context.Context, identifier string, correct, difficult bool) int {
	if !correct {
		return 0
	}
	if !difficult {
		_ = b.addPoints(ctx, BasePoints, identifier, false)
		return BasePoints
	}

	paid := b.state.BonusLedger[identifier]
	bonus := BasePoints/2 + 1
	if room := MaxBonusPerFact - paid; bonus > room {
		bonus = room
	}
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 0 {
		b.state.BonusLedger[identifier] = paid + bonus
	}
	total := BasePoints + bonus
	_ = b.addPoints(ctx, total, identifier, bonus > 0)
	return total
}

// Spend debits n from the available balance. It fails without mutating
// anything when the balance is short, and rejects negative amounts.
func (b *Balance) Spend(ctx context.Context, n int, reason string) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("points: negative amount %d", n)
	}
	if b.state.Available < n {
		return false, nil
	}
	b.state.Available -= n
	b.state.LastUpdated = b.now()
	b.persist(ctx)
	if n > 0 {
		b.appendEvent(ctx, Event{Kind: "spend", Amount: n, Reason: reason, At: b.state.LastUpdated})
	}
	return true, nil
}

// Redeem zeroes the available balance ("spend everything") and returns
// the amount redeemed. Lifetime earnings are untouched.
func (b *Balance) Redeem(ctx context.Context, reason string) int {
	n := b.state.Available
	if n == 0 {
		return 0
	}
	ok, _ := b.Spend(ctx, n, reason)
	if !ok {
		return 0
	}
	return n
}

func (b *Balance) persist(ctx context.Context) {
	if b.repo == nil {
		return
	}
	_ = b.repo.Save(ctx, b.state)
}

func (b *Balance) appendEvent(ctx context.Context, ev Event) {
	if b.repo == nil {
		return
	}
	_ = b.repo.AppendEvent(ctx, ev)
}
