// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/tablestat"
)

// TableStat is the model entity for the TableStat schema.
type TableStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Table holds the value of the "table" field.
	Table int `json:"table,omitempty"`
	// TotalProblems holds the value of the "total_problems" field.
	TotalProblems int `json:"total_problems,omitempty"`
	// CorrectProblems holds the value of the "correct_problems" field.
	CorrectProblems int `json:"correct_problems,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TableStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tablestat.FieldID, tablestat.FieldTable, tablestat.FieldTotalProblems, tablestat.FieldCorrectProblems:
			values[i] = new(sql.NullInt64)
		case tablestat.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TableStat fields.
func (_m *TableStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tablestat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tablestat.FieldTable:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field table", values[i])
			} else if value.Valid {
				_m.Table = int(value.Int64)
			}
		case tablestat.FieldTotalProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_problems", values[i])
			} else if value.Valid {
				_m.TotalProblems = int(value.Int64)
			}
		case tablestat.FieldCorrectProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_problems", values[i])
			} else if value.Valid {
				_m.CorrectProblems = int(value.Int64)
			}
		case tablestat.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TableStat.
// This includes values selected through modifiers, order, etc.
func (_m *TableStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TableStat.
// Note that you need to call TableStat.Unwrap() before calling this method if this TableStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TableStat) Update() *TableStatUpdateOne {
	return NewTableStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TableStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TableStat) Unwrap() *TableStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TableStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TableStat) String() string {
	var builder strings.Builder
	builder.WriteString("TableStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("table=")
	builder.WriteString(fmt.Sprintf("%v", _m.Table))
	builder.WriteString(", ")
	builder.WriteString("total_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalProblems))
	builder.WriteString(", ")
	builder.WriteString("correct_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectProblems))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TableStats is a parsable slice of TableStat.
type TableStats []*TableStat
