package store

import (
	"context"
	"fmt"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/difficultquestion"
	"github.com/kukulab/kuku/internal/difficulty"
)

// DifficultyRepo returns the difficult-question repo backed by this store.
func (s *Store) DifficultyRepo() difficulty.Repo {
	return &difficultyRepo{client: s.client}
}

type difficultyRepo struct {
	client *ent.Client
}

func (r *difficultyRepo) All(ctx context.Context) ([]*difficulty.Record, error) {
	rows, err := r.client.DifficultQuestion.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query difficult questions: %w", err)
	}

	out := make([]*difficulty.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, &difficulty.Record{
			Identifier:      row.Identifier,
			First:           row.First,
			Second:          row.Second,
			CorrectCount:    row.CorrectCount,
			IncorrectCount:  row.IncorrectCount,
			LastIncorrectAt: row.LastIncorrectAt,
		})
	}
	return out, nil
}

func (r *difficultyRepo) Upsert(ctx context.Context, rec *difficulty.Record) error {
	n, err := r.client.DifficultQuestion.Update().
		Where(difficultquestion.Identifier(rec.Identifier)).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount).
		SetLastIncorrectAt(rec.LastIncorrectAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update difficult question: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.DifficultQuestion.Create().
		SetIdentifier(rec.Identifier).
		SetFirst(rec.First).
		SetSecond(rec.Second).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount).
		SetLastIncorrectAt(rec.LastIncorrectAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create difficult question: %w", err)
	}
	return nil
}
