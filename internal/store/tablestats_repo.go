package store

import (
	"context"
	"fmt"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/tablestat"
	"github.com/kukulab/kuku/internal/tablestats"
)

// TableStatsRepo returns the per-table statistics repo backed by this store.
func (s *Store) TableStatsRepo() tablestats.Repo {
	return &tableStatsRepo{client: s.client}
}

type tableStatsRepo struct {
	client *ent.Client
}

func (r *tableStatsRepo) All(ctx context.Context) ([]*tablestats.Record, error) {
	rows, err := r.client.TableStat.Query().
		Order(ent.Asc(tablestat.FieldTable)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query table stats: %w", err)
	}

	out := make([]*tablestats.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, &tablestats.Record{
			Table:           row.Table,
			TotalProblems:   row.TotalProblems,
			CorrectProblems: row.CorrectProblems,
			LastUpdated:     row.LastUpdated,
		})
	}
	return out, nil
}

func (r *tableStatsRepo) Upsert(ctx context.Context, rec *tablestats.Record) error {
	n, err := r.client.TableStat.Update().
		Where(tablestat.TableEQ(rec.Table)).
		SetTotalProblems(rec.TotalProblems).
		SetCorrectProblems(rec.CorrectProblems).
		SetLastUpdated(rec.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update table stat: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.TableStat.Create().
		SetTable(rec.Table).
		SetTotalProblems(rec.TotalProblems).
		SetCorrectProblems(rec.CorrectProblems).
		SetLastUpdated(rec.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create table stat: %w", err)
	}
	return nil
}
