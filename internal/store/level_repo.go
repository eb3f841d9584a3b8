package store

import (
	"context"
	"fmt"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/schema"
	"github.com/kukulab/kuku/internal/level"
)

// LevelRepo returns the level-state repo backed by this store.
func (s *Store) LevelRepo() level.Repo {
	return &levelRepo{client: s.client}
}

type levelRepo struct {
	client *ent.Client
}

func (r *levelRepo) Load(ctx context.Context) (*level.State, error) {
	row, err := r.client.LevelState.Query().First(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query level state: %w", err)
	}

	history := make([]level.UpRecord, 0, len(row.History))
	for _, h := range row.History {
		history = append(history, level.UpRecord{
			FromLevel:             h.FromLevel,
			ToLevel:               h.ToLevel,
			At:                    h.At,
			TotalExperienceAtTime: h.TotalExperienceAtTime,
		})
	}

	return &level.State{
		Level:           row.Level,
		TotalExperience: row.TotalExperience,
		Title:           level.Title(row.Title),
		History:         history,
		CreatedAt:       row.CreatedAt,
		LastUpdated:     row.LastUpdated,
	}, nil
}

func (r *levelRepo) Save(ctx context.Context, st *level.State) error {
	history := make([]schema.LevelUpRecord, 0, len(st.History))
	for _, h := range st.History {
		history = append(history, schema.LevelUpRecord{
			FromLevel:             h.FromLevel,
			ToLevel:               h.ToLevel,
			At:                    h.At,
			TotalExperienceAtTime: h.TotalExperienceAtTime,
		})
	}

	n, err := r.client.LevelState.Update().
		SetLevel(st.Level).
		SetTotalExperience(st.TotalExperience).
		SetTitle(string(st.Title)).
		SetHistory(history).
		SetLastUpdated(st.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update level state: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.LevelState.Create().
		SetLevel(st.Level).
		SetTotalExperience(st.TotalExperience).
		SetTitle(string(st.Title)).
		SetHistory(history).
		SetCreatedAt(st.CreatedAt).
		SetLastUpdated(st.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create level state: %w", err)
	}
	return nil
}
