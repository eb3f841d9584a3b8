// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/pointstate"
)

// PointState is the model entity for the PointState schema.
type PointState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TotalEarned holds the value of the "total_earned" field.
	TotalEarned int `json:"total_earned,omitempty"`
	// Available holds the value of the "available" field.
	Available int `json:"available,omitempty"`
	// Cumulative bonus already paid per difficult fact, capped at 10 each
	BonusLedger map[string]int `json:"bonus_ledger,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PointState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pointstate.FieldBonusLedger:
			values[i] = new([]byte)
		case pointstate.FieldID, pointstate.FieldTotalEarned, pointstate.FieldAvailable:
			values[i] = new(sql.NullInt64)
		case pointstate.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PointState fields.
func (_m *PointState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pointstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pointstate.FieldTotalEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_earned", values[i])
			} else if value.Valid {
				_m.TotalEarned = int(value.Int64)
			}
		case pointstate.FieldAvailable:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field available", values[i])
			} else if value.Valid {
				_m.Available = int(value.Int64)
			}
		case pointstate.FieldBonusLedger:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_ledger", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BonusLedger); err != nil {
					return fmt.Errorf("unmarshal field bonus_ledger: %w", err)
				}
			}
		case pointstate.FieldLastUpdated:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PointState.
// This includes values selected through modifiers, order, etc.
func (_m *PointState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PointState.
// Note that you need to call PointState.Unwrap() before calling this method if this PointState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PointState) Update() *PointStateUpdateOne {
	return NewPointStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PointState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PointState) Unwrap() *PointState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PointState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PointState) String() string {
	var builder strings.Builder
	builder.WriteString("PointState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEarned))
	builder.WriteString(", ")
	builder.WriteString("available=")
	builder.WriteString(fmt.Sprintf("%v", _m.Available))
	builder.WriteString(", ")
	builder.WriteString("bonus_ledger=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusLedger))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PointStates is a parsable slice of PointState.
type PointStates []*PointState
