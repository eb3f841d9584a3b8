package store

import (
	"context"
	"fmt"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/pointevent"
	"github.com/kukulab/kuku/internal/points"
)

// PointsRepo returns the point-balance repo backed by this store.
func (s *Store) PointsRepo() points.Repo {
	return &pointsRepo{store: s}
}

type pointsRepo struct {
	store *Store
}

func (r *pointsRepo) Load(ctx context.Context) (*points.State, error) {
	row, err := r.store.client.PointState.Query().First(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query point state: %w", err)
	}
	return &points.State{
		TotalEarned: row.TotalEarned,
		Available:   row.Available,
		BonusLedger: row.BonusLedger,
		LastUpdated: row.LastUpdated,
	}, nil
}

func (r *pointsRepo) Save(ctx context.Context, st *points.State) error {
	n, err := r.store.client.PointState.Update().
		SetTotalEarned(st.TotalEarned).
		SetAvailable(st.Available).
		SetBonusLedger(st.BonusLedger).
		SetLastUpdated(st.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update point state: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.store.client.PointState.Create().
		SetTotalEarned(st.TotalEarned).
		SetAvailable(st.Available).
		SetBonusLedger(st.BonusLedger).
		SetLastUpdated(st.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create point state: %w", err)
	}
	return nil
}

func (r *pointsRepo) AppendEvent(ctx context.Context, ev points.Event) error {
	seqNum, err := r.store.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.store.client.PointEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ev.At).
		SetKind(ev.Kind).
		SetAmount(ev.Amount).
		SetBonus(ev.Bonus)

	if ev.QuestionID != "" {
		builder = builder.SetQuestionID(ev.QuestionID)
	}
	if ev.Reason != "" {
		builder = builder.SetReason(ev.Reason)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save point event: %w", err)
	}
	return nil
}

// RecentPointEvents returns the latest earn/spend ledger rows, newest
// first. Used by the parent dashboard.
func (s *Store) RecentPointEvents(ctx context.Context, limit int) ([]points.Event, error) {
	rows, err := s.client.PointEvent.Query().
		Order(ent.Desc(pointevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query point events: %w", err)
	}

	out := make([]points.Event, 0, len(rows))
	for _, row := range rows {
		ev := points.Event{
			Kind:   row.Kind,
			Amount: row.Amount,
			Bonus:  row.Bonus,
			At:     row.Timestamp,
		}
		if row.QuestionID != nil {
			ev.QuestionID = *row.QuestionID
		}
		if row.Reason != nil {
			ev.Reason = *row.Reason
		}
		out = append(out, ev)
	}
	return out, nil
}
