package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Achievement is a shareable milestone record (table mastered, streak
// reached, perfect round, ...). Unlike badges, achievements can recur.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("uuid", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("type").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Bool("is_special").
			Default(false),
		field.Bool("is_shared").
			Default(false),
		field.Time("earned_at").
			Default(time.Now),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("earned_at"),
	}
}
