package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointEvent is the earn/spend ledger backing the parent dashboard
// history views.
type PointEvent struct {
	ent.Schema
}

func (PointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("earn or spend"),
		field.Int("amount").
			Positive(),
		field.String("question_id").
			Optional().
			Nillable().
			Comment("Fact that earned the points (earn only)"),
		field.Bool("bonus").
			Default(false).
			Comment("True when the earn included a difficult-fact bonus"),
		field.String("reason").
			Optional().
			Nillable().
			Comment("Free-text reason (spend only)"),
	}
}

func (PointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
