// Code generated by ent, DO NOT EDIT.

package tablestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tablestat type in the database.
	Label = "table_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTable holds the string denoting the table field in the database.
	FieldTable = "table"
	// FieldTotalProblems holds the string denoting the total_problems field in the database.
	FieldTotalProblems = "total_problems"
	// FieldCorrectProblems holds the string denoting the correct_problems field in the database.
	FieldCorrectProblems = "correct_problems"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the tablestat in the database.
	Table = "table_stats"
)

// Columns holds all SQL columns for tablestat fields.
var Columns = []string{
	FieldID,
	FieldTable,
	FieldTotalProblems,
	FieldCorrectProblems,
	FieldLastUpdated,
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
	// TableValidator is a validator for the "table" field. It is called by the builders before save.
	TableValidator func(int) error
	// DefaultTotalProblems holds the default value on creation for the "total_problems" field.
	DefaultTotalProblems int
	// TotalProblemsValidator is a validator for the "total_problems" field. It is called by the builders before save.
	TotalProblemsValidator func(int) error
	// DefaultCorrectProblems holds the default value on creation for the "correct_problems" field.
	DefaultCorrectProblems int
	// CorrectProblemsValidator is a validator for the "correct_problems" field. It is called by the builders before save.
	CorrectProblemsValidator func(int) error
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the TableStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTable orders the results by the table field.
func ByTable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTable, opts...).ToFunc()
}

// ByTotalProblems orders the results by the total_problems field.
func ByTotalProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProblems, opts...).ToFunc()
}

// ByCorrectProblems orders the results by the correct_problems field.
func ByCorrectProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectProblems, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
