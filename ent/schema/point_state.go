package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PointState is the single-row point balance. total_earned is monotonic;
// available is what spending draws from.
type PointState struct {
	ent.Schema
}

func (PointState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("total_earned").
			Default(0).
			NonNegative(),
		field.Int("available").
			Default(0).
			NonNegative(),
		field.JSON("bonus_ledger", map[string]int{}).
			Optional().
			Comment("Cumulative bonus already paid per difficult fact, capped at 10 each"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
