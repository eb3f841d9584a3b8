package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LevelUpRecord is one entry in the level-up history.
type LevelUpRecord struct {
	FromLevel             int       `json:"from_level"`
	ToLevel               int       `json:"to_level"`
	At                    time.Time `json:"at"`
	TotalExperienceAtTime int       `json:"total_experience_at_time"`
}

// LevelState is the single-row level record. total_experience mirrors
// PointState.total_earned.
type LevelState struct {
	ent.Schema
}

func (LevelState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").
			Default(1).
			Range(1, 50),
		field.Int("total_experience").
			Default(0).
			NonNegative(),
		field.String("title").
			Default("beginner"),
		field.JSON("history", []LevelUpRecord{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
