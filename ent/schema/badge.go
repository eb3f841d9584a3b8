package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Badge is an earned badge. Each badge type is earned at most once;
// is_new stays set until the learner views the badge shelf.
type Badge struct {
	ent.Schema
}

func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_type").
			NotEmpty().
			Unique(),
		field.Time("earned_at").
			Default(time.Now),
		field.Bool("is_new").
			Default(true),
	}
}
