// Code generated by ent, DO NOT EDIT.

package difficultquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the difficultquestion type in the database.
	Label = "difficult_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIdentifier holds the string denoting the identifier field in the database.
	FieldIdentifier = "identifier"
	// FieldFirst holds the string denoting the first field in the database.
	FieldFirst = "first"
	// FieldSecond holds the string denoting the second field in the database.
	FieldSecond = "second"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldLastIncorrectAt holds the string denoting the last_incorrect_at field in the database.
	FieldLastIncorrectAt = "last_incorrect_at"
	// Table holds the table name of the difficultquestion in the database.
	Table = "difficult_questions"
)

// Columns holds all SQL columns for difficultquestion fields.
var Columns = []string{
	FieldID,
	FieldIdentifier,
	FieldFirst,
	FieldSecond,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldLastIncorrectAt,
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
	// IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	IdentifierValidator func(string) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	IncorrectCountValidator func(int) error
	// DefaultLastIncorrectAt holds the default value on creation for the "last_incorrect_at" field.
	DefaultLastIncorrectAt func() time.Time
)

// OrderOption defines the ordering options for the DifficultQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIdentifier orders the results by the identifier field.
func ByIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifier, opts...).ToFunc()
}

// ByFirst orders the results by the first field.
func ByFirst(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirst, opts...).ToFunc()
}

// BySecond orders the results by the second field.
func BySecond(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecond, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByLastIncorrectAt orders the results by the last_incorrect_at field.
func ByLastIncorrectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastIncorrectAt, opts...).ToFunc()
}
