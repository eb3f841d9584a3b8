package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TableStat holds cumulative attempt counters for one multiplication
// table (1-9). One row exists per table; rows are lazily created with
// zero counters.
type TableStat struct {
	ent.Schema
}

func (TableStat) Fields() []ent.Field {
	return []ent.Field{
		field.Int("table").
			Unique().
			Range(1, 9),
		field.Int("total_problems").
			Default(0).
			NonNegative(),
		field.Int("correct_problems").
			Default(0).
			NonNegative(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
