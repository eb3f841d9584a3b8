// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/difficultquestion"
)

// DifficultQuestion is the model entity for the DifficultQuestion schema.
type DifficultQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Fact key, e.g. "3x4"
	Identifier string `json:"identifier,omitempty"`
	// Multiplicand (1-9)
	First int `json:"first,omitempty"`
	// Multiplier (1-9)
	Second int `json:"second,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// LastIncorrectAt holds the value of the "last_incorrect_at" field.
	LastIncorrectAt time.Time `json:"last_incorrect_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DifficultQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case difficultquestion.FieldID, difficultquestion.FieldFirst, difficultquestion.FieldSecond, difficultquestion.FieldCorrectCount, difficultquestion.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case difficultquestion.FieldIdentifier:
			values[i] = new(sql.NullString)
		case difficultquestion.FieldLastIncorrectAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DifficultQuestion fields.
func (_m *DifficultQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case difficultquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case difficultquestion.FieldIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier", values[i])
			} else if value.Valid {
				_m.Identifier = value.String
			}
		case difficultquestion.FieldFirst:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first", values[i])
			} else if value.Valid {
				_m.First = int(value.Int64)
			}
		case difficultquestion.FieldSecond:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field second", values[i])
			} else if value.Valid {
				_m.Second = int(value.Int64)
			}
		case difficultquestion.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case difficultquestion.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				_m.IncorrectCount = int(value.Int64)
			}
		case difficultquestion.FieldLastIncorrectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_incorrect_at", values[i])
			} else if value.Valid {
				_m.LastIncorrectAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DifficultQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *DifficultQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DifficultQuestion.
// Note that you need to call DifficultQuestion.Unwrap() before calling this method if this DifficultQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DifficultQuestion) Update() *DifficultQuestionUpdateOne {
	return NewDifficultQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DifficultQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DifficultQuestion) Unwrap() *DifficultQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DifficultQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DifficultQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("DifficultQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("identifier=")
	builder.WriteString(_m.Identifier)
	builder.WriteString(", ")
	builder.WriteString("first=")
	builder.WriteString(fmt.Sprintf("%v", _m.First))
	builder.WriteString(", ")
	builder.WriteString("second=")
	builder.WriteString(fmt.Sprintf("%v", _m.Second))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectCount))
	builder.WriteString(", ")
	builder.WriteString("last_incorrect_at=")
	builder.WriteString(_m.LastIncorrectAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DifficultQuestions is a parsable slice of DifficultQuestion.
type DifficultQuestions []*DifficultQuestion
