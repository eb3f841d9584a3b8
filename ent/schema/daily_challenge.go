package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DailyChallenge is one calendar day's challenge record. The day field is
// always midnight local time; one row exists per day at most.
type DailyChallenge struct {
	ent.Schema
}

func (DailyChallenge) Fields() []ent.Field {
	return []ent.Field{
		field.Time("day").
			Unique(),
		field.Int("target_problems").
			Default(5).
			Positive(),
		field.Int("completed_problems").
			Default(0).
			NonNegative(),
		field.Int("streak_count").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
