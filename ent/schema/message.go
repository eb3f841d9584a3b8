package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StudySession is the serialized study-report payload attached to
// study-report messages.
type StudySession struct {
	TotalProblems  int     `json:"total_problems"`
	CorrectAnswers int     `json:"correct_answers"`
	AverageTimeSec float64 `json:"average_time_sec"`
	NewMasteries   []int   `json:"new_masteries,omitempty"`
}

// Message is a parent/child message.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("uuid", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("sender").
			NotEmpty().
			Comment("child or parent"),
		field.String("msg_type").
			NotEmpty().
			Comment("text, study_report, or achievement"),
		field.String("content").
			NotEmpty(),
		field.Bool("is_read").
			Default(false),
		field.UUID("achievement_uuid", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Linked achievement (achievement messages only)"),
		field.JSON("session", &StudySession{}).
			Optional().
			Comment("Study-report payload (study_report messages only)"),
		field.Time("sent_at").
			Default(time.Now),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sender"),
		index.Fields("is_read"),
		index.Fields("sent_at"),
	}
}
