package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DifficultQuestion tracks per-fact miss counters. A record only comes
// into existence the first time a fact is missed.
type DifficultQuestion struct {
	ent.Schema
}

func (DifficultQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("identifier").
			NotEmpty().
			Unique().
			Comment(`Fact key, e.g. "3x4"`),
		field.Int("first").
			Comment("Multiplicand (1-9)"),
		field.Int("second").
			Comment("Multiplier (1-9)"),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Int("incorrect_count").
			Default(1).
			NonNegative(),
		field.Time("last_incorrect_at").
			Default(time.Now),
	}
}

func (DifficultQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_incorrect_at"),
	}
}
