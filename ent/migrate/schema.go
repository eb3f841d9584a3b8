// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeUUID, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_special", Type: field.TypeBool, Default: false},
		{Name: "is_shared", Type: field.TypeBool, Default: false},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_type",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[2]},
			},
			{
				Name:    "achievement_earned_at",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[8]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "identifier", Type: field.TypeString},
		{Name: "first", Type: field.TypeInt},
		{Name: "second", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "timeout", Type: field.TypeBool, Default: false},
		{Name: "elapsed_ms", Type: field.TypeInt},
		{Name: "points_awarded", Type: field.TypeInt, Default: 0},
		{Name: "mode", Type: field.TypeString, Default: "random"},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_identifier",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[6]},
			},
		},
	}
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "badge_type", Type: field.TypeString, Unique: true},
		{Name: "earned_at", Type: field.TypeTime},
		{Name: "is_new", Type: field.TypeBool, Default: true},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
	}
	// DailyChallengesColumns holds the columns for the "daily_challenges" table.
	DailyChallengesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "day", Type: field.TypeTime, Unique: true},
		{Name: "target_problems", Type: field.TypeInt, Default: 5},
		{Name: "completed_problems", Type: field.TypeInt, Default: 0},
		{Name: "streak_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DailyChallengesTable holds the schema information for the "daily_challenges" table.
	DailyChallengesTable = &schema.Table{
		Name:       "daily_challenges",
		Columns:    DailyChallengesColumns,
		PrimaryKey: []*schema.Column{DailyChallengesColumns[0]},
	}
	// DifficultQuestionsColumns holds the columns for the "difficult_questions" table.
	DifficultQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "identifier", Type: field.TypeString, Unique: true},
		{Name: "first", Type: field.TypeInt},
		{Name: "second", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 1},
		{Name: "last_incorrect_at", Type: field.TypeTime},
	}
	// DifficultQuestionsTable holds the schema information for the "difficult_questions" table.
	DifficultQuestionsTable = &schema.Table{
		Name:       "difficult_questions",
		Columns:    DifficultQuestionsColumns,
		PrimaryKey: []*schema.Column{DifficultQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "difficultquestion_last_incorrect_at",
				Unique:  false,
				Columns: []*schema.Column{DifficultQuestionsColumns[6]},
			},
		},
	}
	// LlmEventsColumns holds the columns for the "llm_events" table.
	LlmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmEventsTable holds the schema information for the "llm_events" table.
	LlmEventsTable = &schema.Table{
		Name:       "llm_events",
		Columns:    LlmEventsColumns,
		PrimaryKey: []*schema.Column{LlmEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[1]},
			},
			{
				Name:    "llmevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[2]},
			},
		},
	}
	// LevelStatesColumns holds the columns for the "level_states" table.
	LevelStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "total_experience", Type: field.TypeInt, Default: 0},
		{Name: "title", Type: field.TypeString, Default: "beginner"},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// LevelStatesTable holds the schema information for the "level_states" table.
	LevelStatesTable = &schema.Table{
		Name:       "level_states",
		Columns:    LevelStatesColumns,
		PrimaryKey: []*schema.Column{LevelStatesColumns[0]},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeUUID, Unique: true},
		{Name: "sender", Type: field.TypeString},
		{Name: "msg_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "achievement_uuid", Type: field.TypeUUID, Nullable: true},
		{Name: "session", Type: field.TypeJSON, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_sender",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2]},
			},
			{
				Name:    "message_is_read",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5]},
			},
			{
				Name:    "message_sent_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8]},
			},
		},
	}
	// PointEventsColumns holds the columns for the "point_events" table.
	PointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "bonus", Type: field.TypeBool, Default: false},
		{Name: "reason", Type: field.TypeString, Nullable: true},
	}
	// PointEventsTable holds the schema information for the "point_events" table.
	PointEventsTable = &schema.Table{
		Name:       "point_events",
		Columns:    PointEventsColumns,
		PrimaryKey: []*schema.Column{PointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[1]},
			},
			{
				Name:    "pointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_kind",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3]},
			},
		},
	}
	// PointStatesColumns holds the columns for the "point_states" table.
	PointStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_earned", Type: field.TypeInt, Default: 0},
		{Name: "available", Type: field.TypeInt, Default: 0},
		{Name: "bonus_ledger", Type: field.TypeJSON, Nullable: true},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// PointStatesTable holds the schema information for the "point_states" table.
	PointStatesTable = &schema.Table{
		Name:       "point_states",
		Columns:    PointStatesColumns,
		PrimaryKey: []*schema.Column{PointStatesColumns[0]},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TableStatsColumns holds the columns for the "table_stats" table.
	TableStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "table", Type: field.TypeInt, Unique: true},
		{Name: "total_problems", Type: field.TypeInt, Default: 0},
		{Name: "correct_problems", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// TableStatsTable holds the schema information for the "table_stats" table.
	TableStatsTable = &schema.Table{
		Name:       "table_stats",
		Columns:    TableStatsColumns,
		PrimaryKey: []*schema.Column{TableStatsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		AnswerEventsTable,
		BadgesTable,
		DailyChallengesTable,
		DifficultQuestionsTable,
		LlmEventsTable,
		LevelStatesTable,
		MessagesTable,
		PointEventsTable,
		PointStatesTable,
		SettingsTable,
		TableStatsTable,
	}
)

func init() {
}
