// Code generated by ent, DO NOT EDIT.

package pointstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pointstate type in the database.
	Label = "point_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalEarned holds the string denoting the total_earned field in the database.
	FieldTotalEarned = "total_earned"
	// FieldAvailable holds the string denoting the available field in the database.
	FieldAvailable = "available"
	// FieldBonusLedger holds the string denoting the bonus_ledger field in the database.
	FieldBonusLedger = "bonus_ledger"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the pointstate in the database.
	Table = "point_states"
)

// Columns holds all SQL columns for pointstate fields.
var Columns = []string{
	FieldID,
	FieldTotalEarned,
	FieldAvailable,
	FieldBonusLedger,
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
	// DefaultTotalEarned holds the default value on creation for the "total_earned" field.
	DefaultTotalEarned int
	// TotalEarnedValidator is a validator for the "total_earned" field. It is called by the builders before save.
	TotalEarnedValidator func(int) error
	// DefaultAvailable holds the default value on creation for the "available" field.
	DefaultAvailable int
	// AvailableValidator is a validator for the "available" field. It is called by the builders before save.
	AvailableValidator func(int) error
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the PointState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalEarned orders the results by the total_earned field.
func ByTotalEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEarned, opts...).ToFunc()
}

// ByAvailable orders the results by the available field.
func ByAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailable, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
