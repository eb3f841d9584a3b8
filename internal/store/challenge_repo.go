package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/dailychallenge"
	"github.com/kukulab/kuku/internal/challenge"
)

// ChallengeRepo returns the daily-challenge repo backed by this store.
func (s *Store) ChallengeRepo() challenge.Repo {
	return &challengeRepo{client: s.client}
}

type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) Get(ctx context.Context, day time.Time) (*challenge.Day, error) {
	row, err := r.client.DailyChallenge.Query().
		Where(dailychallenge.Day(day)).
		Only(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query daily challenge: %w", err)
	}
	return &challenge.Day{
		Day:               row.Day,
		TargetProblems:    row.TargetProblems,
		CompletedProblems: row.CompletedProblems,
		StreakCount:       row.StreakCount,
		CreatedAt:         row.CreatedAt,
	}, nil
}

func (r *challengeRepo) Upsert(ctx context.Context, d *challenge.Day) error {
	n, err := r.client.DailyChallenge.Update().
		Where(dailychallenge.Day(d.Day)).
		SetTargetProblems(d.TargetProblems).
		SetCompletedProblems(d.CompletedProblems).
		SetStreakCount(d.StreakCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update daily challenge: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.DailyChallenge.Create().
		SetDay(d.Day).
		SetTargetProblems(d.TargetProblems).
		SetCompletedProblems(d.CompletedProblems).
		SetStreakCount(d.StreakCount).
		SetCreatedAt(d.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create daily challenge: %w", err)
	}
	return nil
}
