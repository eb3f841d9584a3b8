package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered (or timed-out) question.
// The event log is append-only and is the source of truth for rebuilding
// per-table statistics.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("identifier").
			NotEmpty().
			Comment(`Fact key, e.g. "3x4"`),
		field.Int("first").
			Comment("Multiplicand (1-9)"),
		field.Int("second").
			Comment("Multiplier (1-9)"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("timeout").
			Default(false).
			Comment("True when the countdown expired before an answer"),
		field.Int("elapsed_ms").
			Comment("Milliseconds from question shown to resolution"),
		field.Int("points_awarded").
			Default(0).
			Comment("Base + bonus points granted for this answer"),
		field.String("mode").
			Default("random").
			Comment("Game mode the question was served in"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier"),
		index.Fields("correct"),
	}
}
