// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/pointstate"
	"github.com/kukulab/kuku/ent/predicate"
)

// PointStateUpdate is the builder for updating PointState entities.
type PointStateUpdate struct {
	config
	hooks    []Hook
	mutation *PointStateMutation
}

// Where appends a list predicates to the PointStateUpdate builder.
func (_u *PointStateUpdate) Where(ps ...predicate.PointState) *PointStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalEarned sets the "total_earned" field.
func (_u *PointStateUpdate) SetTotalEarned(v int) *PointStateUpdate {
	_u.mutation.ResetTotalEarned()
	_u.mutation.SetTotalEarned(v)
	return _u
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_u *PointStateUpdate) SetNillableTotalEarned(v *int) *PointStateUpdate {
	if v != nil {
		_u.SetTotalEarned(*v)
	}
	return _u
}

// AddTotalEarned adds value to the "total_earned" field.
func (_u *PointStateUpdate) AddTotalEarned(v int) *PointStateUpdate {
	_u.mutation.AddTotalEarned(v)
	return _u
}

// SetAvailable sets the "available" field.
func (_u *PointStateUpdate) SetAvailable(v int) *PointStateUpdate {
	_u.mutation.ResetAvailable()
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *PointStateUpdate) SetNillableAvailable(v *int) *PointStateUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// AddAvailable adds value to the "available" field.
func (_u *PointStateUpdate) AddAvailable(v int) *PointStateUpdate {
	_u.mutation.AddAvailable(v)
	return _u
}

// SetBonusLedger sets the "bonus_ledger" field.
func (_u *PointStateUpdate) SetBonusLedger(v map[string]int) *PointStateUpdate {
	_u.mutation.SetBonusLedger(v)
	return _u
}

// ClearBonusLedger clears the value of the "bonus_ledger" field.
func (_u *PointStateUpdate) ClearBonusLedger() *PointStateUpdate {
	_u.mutation.ClearBonusLedger()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *PointStateUpdate) SetLastUpdated(v time.Time) *PointStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the PointStateMutation object of the builder.
func (_u *PointStateUpdate) Mutation() *PointStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PointStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PointStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PointStateUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := pointstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointStateUpdate) check() error {
	if v, ok := _u.mutation.TotalEarned(); ok {
		if err := pointstate.TotalEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_earned", err: fmt.Errorf(`ent: validator failed for field "PointState.total_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Available(); ok {
		if err := pointstate.AvailableValidator(v); err != nil {
			return &ValidationError{Name: "available", err: fmt.Errorf(`ent: validator failed for field "PointState.available": %w`, err)}
		}
	}
	return nil
}

func (_u *PointStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointstate.Table, pointstate.Columns, sqlgraph.NewFieldSpec(pointstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalEarned(); ok {
		_spec.SetField(pointstate.FieldTotalEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEarned(); ok {
		_spec.AddField(pointstate.FieldTotalEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(pointstate.FieldAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvailable(); ok {
		_spec.AddField(pointstate.FieldAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusLedger(); ok {
		_spec.SetField(pointstate.FieldBonusLedger, field.TypeJSON, value)
	}
	if _u.mutation.BonusLedgerCleared() {
		_spec.ClearField(pointstate.FieldBonusLedger, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(pointstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PointStateUpdateOne is the builder for updating a single PointState entity.
type PointStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PointStateMutation
}

// SetTotalEarned sets the "total_earned" field.
func (_u *PointStateUpdateOne) SetTotalEarned(v int) *PointStateUpdateOne {
	_u.mutation.ResetTotalEarned()
	_u.mutation.SetTotalEarned(v)
	return _u
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_u *PointStateUpdateOne) SetNillableTotalEarned(v *int) *PointStateUpdateOne {
	if v != nil {
		_u.SetTotalEarned(*v)
	}
	return _u
}

// AddTotalEarned adds value to the "total_earned" field.
func (_u *PointStateUpdateOne) AddTotalEarned(v int) *PointStateUpdateOne {
	_u.mutation.AddTotalEarned(v)
	return _u
}

// SetAvailable sets the "available" field.
func (_u *PointStateUpdateOne) SetAvailable(v int) *PointStateUpdateOne {
	_u.mutation.ResetAvailable()
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *PointStateUpdateOne) SetNillableAvailable(v *int) *PointStateUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// AddAvailable adds value to the "available" field.
func (_u *PointStateUpdateOne) AddAvailable(v int) *PointStateUpdateOne {
	_u.mutation.AddAvailable(v)
	return _u
}

// SetBonusLedger sets the "bonus_ledger" field.
func (_u *PointStateUpdateOne) SetBonusLedger(v map[string]int) *PointStateUpdateOne {
	_u.mutation.SetBonusLedger(v)
	return _u
}

// ClearBonusLedger clears the value of the "bonus_ledger" field.
func (_u *PointStateUpdateOne) ClearBonusLedger() *PointStateUpdateOne {
	_u.mutation.ClearBonusLedger()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *PointStateUpdateOne) SetLastUpdated(v time.Time) *PointStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the PointStateMutation object of the builder.
func (_u *PointStateUpdateOne) Mutation() *PointStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PointStateUpdate builder.
func (_u *PointStateUpdateOne) Where(ps ...predicate.PointState) *PointStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PointStateUpdateOne) Select(field string, fields ...string) *PointStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PointState entity.
func (_u *PointStateUpdateOne) Save(ctx context.Context) (*PointState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointStateUpdateOne) SaveX(ctx context.Context) *PointState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PointStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PointStateUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := pointstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointStateUpdateOne) check() error {
	if v, ok := _u.mutation.TotalEarned(); ok {
		if err := pointstate.TotalEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_earned", err: fmt.Errorf(`ent: validator failed for field "PointState.total_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Available(); ok {
		if err := pointstate.AvailableValidator(v); err != nil {
			return &ValidationError{Name: "available", err: fmt.Errorf(`ent: validator failed for field "PointState.available": %w`, err)}
		}
	}
	return nil
}

func (_u *PointStateUpdateOne) sqlSave(ctx context.Context) (_node *PointState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointstate.Table, pointstate.Columns, sqlgraph.NewFieldSpec(pointstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PointState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pointstate.FieldID)
		for _, f := range fields {
			if !pointstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pointstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalEarned(); ok {
		_spec.SetField(pointstate.FieldTotalEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEarned(); ok {
		_spec.AddField(pointstate.FieldTotalEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(pointstate.FieldAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvailable(); ok {
		_spec.AddField(pointstate.FieldAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusLedger(); ok {
		_spec.SetField(pointstate.FieldBonusLedger, field.TypeJSON, value)
	}
	if _u.mutation.BonusLedgerCleared() {
		_spec.ClearField(pointstate.FieldBonusLedger, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(pointstate.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &PointState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
