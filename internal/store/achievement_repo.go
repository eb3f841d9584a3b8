package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kukulab/kuku/ent"
	entachievement "github.com/kukulab/kuku/ent/achievement"
	"github.com/kukulab/kuku/internal/achievement"
)

// AchievementRepo returns the achievement repo backed by this store.
func (s *Store) AchievementRepo() achievement.Repo {
	return &achievementRepo{client: s.client}
}

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Insert(ctx context.Context, a *achievement.Achievement) error {
	_, err := r.client.Achievement.Create().
		SetUUID(a.ID).
		SetType(string(a.Type)).
		SetTitle(a.Title).
		SetDescription(a.Description).
		SetMetadata(a.Metadata).
		SetIsSpecial(a.IsSpecial).
		SetIsShared(a.IsShared).
		SetEarnedAt(a.EarnedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement: %w", err)
	}
	return nil
}

func (r *achievementRepo) Recent(ctx context.Context, limit int) ([]*achievement.Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Order(ent.Desc(entachievement.FieldEarnedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	return fromEntAchievements(rows), nil
}

func (r *achievementRepo) Unshared(ctx context.Context) ([]*achievement.Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(entachievement.IsShared(false)).
		Order(ent.Desc(entachievement.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unshared achievements: %w", err)
	}
	return fromEntAchievements(rows), nil
}

func (r *achievementRepo) MarkShared(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Achievement.Update().
		Where(entachievement.UUID(id)).
		SetIsShared(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark achievement shared: %w", err)
	}
	return nil
}

func (r *achievementRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	_, err := r.client.Achievement.Delete().
		Where(
			entachievement.EarnedAtLT(cutoff),
			entachievement.IsSpecial(false),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete old achievements: %w", err)
	}
	return nil
}

func fromEntAchievements(rows []*ent.Achievement) []*achievement.Achievement {
	out := make([]*achievement.Achievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, &achievement.Achievement{
			ID:          row.UUID,
			Type:        achievement.Type(row.Type),
			Title:       row.Title,
			Description: row.Description,
			Metadata:    row.Metadata,
			EarnedAt:    row.EarnedAt,
			IsSpecial:   row.IsSpecial,
			IsShared:    row.IsShared,
		})
	}
	return out
}
