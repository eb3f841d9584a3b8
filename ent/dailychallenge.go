// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/dailychallenge"
)

// DailyChallenge is the model entity for the DailyChallenge schema.
type DailyChallenge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Day holds the value of the "day" field.
	Day time.Time `json:"day,omitempty"`
	// TargetProblems holds the value of the "target_problems" field.
	TargetProblems int `json:"target_problems,omitempty"`
	// CompletedProblems holds the value of the "completed_problems" field.
	CompletedProblems int `json:"completed_problems,omitempty"`
	// StreakCount holds the value of the "streak_count" field.
	StreakCount int `json:"streak_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyChallenge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailychallenge.FieldID, dailychallenge.FieldTargetProblems, dailychallenge.FieldCompletedProblems, dailychallenge.FieldStreakCount:
			values[i] = new(sql.NullInt64)
		case dailychallenge.FieldDay, dailychallenge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyChallenge fields.
func (_m *DailyChallenge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailychallenge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailychallenge.FieldDay:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.Time
			}
		case dailychallenge.FieldTargetProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_problems", values[i])
			} else if value.Valid {
				_m.TargetProblems = int(value.Int64)
			}
		case dailychallenge.FieldCompletedProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_problems", values[i])
			} else if value.Valid {
				_m.CompletedProblems = int(value.Int64)
			}
		case dailychallenge.FieldStreakCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_count", values[i])
			} else if value.Valid {
				_m.StreakCount = int(value.Int64)
			}
		case dailychallenge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyChallenge.
// This includes values selected through modifiers, order, etc.
func (_m *DailyChallenge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyChallenge.
// Note that you need to call DailyChallenge.Unwrap() before calling this method if this DailyChallenge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyChallenge) Update() *DailyChallengeUpdateOne {
	return NewDailyChallengeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyChallenge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyChallenge) Unwrap() *DailyChallenge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyChallenge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyChallenge) String() string {
	var builder strings.Builder
	builder.WriteString("DailyChallenge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("day=")
	builder.WriteString(_m.Day.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("target_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetProblems))
	builder.WriteString(", ")
	builder.WriteString("completed_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedProblems))
	builder.WriteString(", ")
	builder.WriteString("streak_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyChallenges is a parsable slice of DailyChallenge.
type DailyChallenges []*DailyChallenge
