package store

import (
	"context"
	"fmt"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/setting"
	"github.com/kukulab/kuku/internal/parentauth"
)

// SettingRepo returns the key/value settings repo backed by this store.
// It satisfies parentauth.SettingRepo and also backs the badge counters.
func (s *Store) SettingRepo() parentauth.SettingRepo {
	return &settingRepo{client: s.client}
}

type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %s: %w", key, err)
	}
	return row.Value, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(setting.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create setting %s: %w", key, err)
	}
	return nil
}

func (r *settingRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Setting.Delete().
		Where(setting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
