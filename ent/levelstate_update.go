// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/levelstate"
	"github.com/kukulab/kuku/ent/predicate"
	"github.com/kukulab/kuku/ent/schema"
)

// LevelStateUpdate is the builder for updating LevelState entities.
type LevelStateUpdate struct {
	config
	hooks    []Hook
	mutation *LevelStateMutation
}

// Where appends a list predicates to the LevelStateUpdate builder.
func (_u *LevelStateUpdate) Where(ps ...predicate.LevelState) *LevelStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LevelStateUpdate) SetLevel(v int) *LevelStateUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelStateUpdate) SetNillableLevel(v *int) *LevelStateUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LevelStateUpdate) AddLevel(v int) *LevelStateUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetTotalExperience sets the "total_experience" field.
func (_u *LevelStateUpdate) SetTotalExperience(v int) *LevelStateUpdate {
	_u.mutation.ResetTotalExperience()
	_u.mutation.SetTotalExperience(v)
	return _u
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_u *LevelStateUpdate) SetNillableTotalExperience(v *int) *LevelStateUpdate {
	if v != nil {
		_u.SetTotalExperience(*v)
	}
	return _u
}

// AddTotalExperience adds value to the "total_experience" field.
func (_u *LevelStateUpdate) AddTotalExperience(v int) *LevelStateUpdate {
	_u.mutation.AddTotalExperience(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LevelStateUpdate) SetTitle(v string) *LevelStateUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LevelStateUpdate) SetNillableTitle(v *string) *LevelStateUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *LevelStateUpdate) SetHistory(v []schema.LevelUpRecord) *LevelStateUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *LevelStateUpdate) AppendHistory(v []schema.LevelUpRecord) *LevelStateUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *LevelStateUpdate) ClearHistory() *LevelStateUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LevelStateUpdate) SetLastUpdated(v time.Time) *LevelStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the LevelStateMutation object of the builder.
func (_u *LevelStateUpdate) Mutation() *LevelStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LevelStateUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := levelstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelStateUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := levelstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelState.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalExperience(); ok {
		if err := levelstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "LevelState.total_experience": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelstate.Table, levelstate.Columns, sqlgraph.NewFieldSpec(levelstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(levelstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExperience(); ok {
		_spec.SetField(levelstate.FieldTotalExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExperience(); ok {
		_spec.AddField(levelstate.FieldTotalExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(levelstate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(levelstate.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, levelstate.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(levelstate.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(levelstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelStateUpdateOne is the builder for updating a single LevelState entity.
type LevelStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelStateMutation
}

// SetLevel sets the "level" field.
func (_u *LevelStateUpdateOne) SetLevel(v int) *LevelStateUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelStateUpdateOne) SetNillableLevel(v *int) *LevelStateUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LevelStateUpdateOne) AddLevel(v int) *LevelStateUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetTotalExperience sets the "total_experience" field.
func (_u *LevelStateUpdateOne) SetTotalExperience(v int) *LevelStateUpdateOne {
	_u.mutation.ResetTotalExperience()
	_u.mutation.SetTotalExperience(v)
	return _u
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_u *LevelStateUpdateOne) SetNillableTotalExperience(v *int) *LevelStateUpdateOne {
	if v != nil {
		_u.SetTotalExperience(*v)
	}
	return _u
}

// AddTotalExperience adds value to the "total_experience" field.
func (_u *LevelStateUpdateOne) AddTotalExperience(v int) *LevelStateUpdateOne {
	_u.mutation.AddTotalExperience(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LevelStateUpdateOne) SetTitle(v string) *LevelStateUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LevelStateUpdateOne) SetNillableTitle(v *string) *LevelStateUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *LevelStateUpdateOne) SetHistory(v []schema.LevelUpRecord) *LevelStateUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *LevelStateUpdateOne) AppendHistory(v []schema.LevelUpRecord) *LevelStateUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *LevelStateUpdateOne) ClearHistory() *LevelStateUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LevelStateUpdateOne) SetLastUpdated(v time.Time) *LevelStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the LevelStateMutation object of the builder.
func (_u *LevelStateUpdateOne) Mutation() *LevelStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelStateUpdate builder.
func (_u *LevelStateUpdateOne) Where(ps ...predicate.LevelState) *LevelStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelStateUpdateOne) Select(field string, fields ...string) *LevelStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LevelState entity.
func (_u *LevelStateUpdateOne) Save(ctx context.Context) (*LevelState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelStateUpdateOne) SaveX(ctx context.Context) *LevelState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LevelStateUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := levelstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelStateUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := levelstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelState.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalExperience(); ok {
		if err := levelstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "LevelState.total_experience": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelStateUpdateOne) sqlSave(ctx context.Context) (_node *LevelState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelstate.Table, levelstate.Columns, sqlgraph.NewFieldSpec(levelstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LevelState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, levelstate.FieldID)
		for _, f := range fields {
			if !levelstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != levelstate.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(levelstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExperience(); ok {
		_spec.SetField(levelstate.FieldTotalExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExperience(); ok {
		_spec.AddField(levelstate.FieldTotalExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(levelstate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(levelstate.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, levelstate.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(levelstate.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(levelstate.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &LevelState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
