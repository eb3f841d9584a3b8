package store

import (
	"context"
	"fmt"
	"strconv"

	entbadge "github.com/kukulab/kuku/ent/badge"
	"github.com/kukulab/kuku/internal/badges"
)

// Counter keys in the settings table.
const (
	correctStreakKey   = "badge_correct_streak"
	fastAnswersKey     = "badge_fast_answers"
	superFastAnswerKey = "badge_superfast_answers"
)

// BadgesRepo returns the badge repo backed by this store.
func (s *Store) BadgesRepo() badges.Repo {
	return &badgesRepo{store: s}
}

type badgesRepo struct {
	store *Store
}

func (r *badgesRepo) All(ctx context.Context) ([]*badges.Badge, error) {
	rows, err := r.store.client.Badge.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}

	out := make([]*badges.Badge, 0, len(rows))
	for _, row := range rows {
		out = append(out, &badges.Badge{
			Type:     badges.Type(row.BadgeType),
			EarnedAt: row.EarnedAt,
			IsNew:    row.IsNew,
		})
	}
	return out, nil
}

func (r *badgesRepo) Insert(ctx context.Context, b *badges.Badge) error {
	_, err := r.store.client.Badge.Create().
		SetBadgeType(string(b.Type)).
		SetEarnedAt(b.EarnedAt).
		SetIsNew(b.IsNew).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge: %w", err)
	}
	return nil
}

func (r *badgesRepo) MarkAllSeen(ctx context.Context) error {
	_, err := r.store.client.Badge.Update().
		Where(entbadge.IsNew(true)).
		SetIsNew(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark badges seen: %w", err)
	}
	return nil
}

func (r *badgesRepo) LoadCounters(ctx context.Context) (badges.Counters, error) {
	settings := r.store.SettingRepo()
	var c badges.Counters
	for _, item := range []struct {
		key string
		dst *int
	}{
		{correctStreakKey, &c.CorrectStreak},
		{fastAnswersKey, &c.FastAnswers},
		{superFastAnswerKey, &c.SuperFastAnswer},
	} {
		val, err := settings.Get(ctx, item.key)
		if err != nil {
			return badges.Counters{}, err
		}
		if val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return badges.Counters{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		*item.dst = n
	}
	return c, nil
}

func (r *badgesRepo) SaveCounters(ctx context.Context, c badges.Counters) error {
	settings := r.store.SettingRepo()
	for _, item := range []struct {
		key string
		val int
	}{
		{correctStreakKey, c.CorrectStreak},
		{fastAnswersKey, c.FastAnswers},
		{superFastAnswerKey, c.SuperFastAnswer},
	} {
		if err := settings.Set(ctx, item.key, strconv.Itoa(item.val)); err != nil {
			return err
		}
	}
	return nil
}
