// Code generated by ent, DO NOT EDIT.

package dailychallenge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailychallenge type in the database.
	Label = "daily_challenge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTargetProblems holds the string denoting the target_problems field in the database.
	FieldTargetProblems = "target_problems"
	// FieldCompletedProblems holds the string denoting the completed_problems field in the database.
	FieldCompletedProblems = "completed_problems"
	// FieldStreakCount holds the string denoting the streak_count field in the database.
	FieldStreakCount = "streak_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the dailychallenge in the database.
	Table = "daily_challenges"
)

// Columns holds all SQL columns for dailychallenge fields.
var Columns = []string{
	FieldID,
	FieldDay,
	FieldTargetProblems,
	FieldCompletedProblems,
	FieldStreakCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTargetProblems holds the default value on creation for the "target_problems" field.
	DefaultTargetProblems int
	// TargetProblemsValidator is a validator for the "target_problems" field. It is called by the builders before save.
	TargetProblemsValidator func(int) error
	// DefaultCompletedProblems holds the default value on creation for the "completed_problems" field.
	DefaultCompletedProblems int
	// CompletedProblemsValidator is a validator for the "completed_problems" field. It is called by the builders before save.
	CompletedProblemsValidator func(int) error
	// DefaultStreakCount holds the default value on creation for the "streak_count" field.
	DefaultStreakCount int
	// StreakCountValidator is a validator for the "streak_count" field. It is called by the builders before save.
	StreakCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyChallenge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByTargetProblems orders the results by the target_problems field.
func ByTargetProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetProblems, opts...).ToFunc()
}

// ByCompletedProblems orders the results by the completed_problems field.
func ByCompletedProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedProblems, opts...).ToFunc()
}

// ByStreakCount orders the results by the streak_count field.
func ByStreakCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
