// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/answerevent"
	"github.com/kukulab/kuku/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *AnswerEventUpdate) SetIdentifier(v string) *AnswerEventUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableIdentifier(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *AnswerEventUpdate) SetFirst(v int) *AnswerEventUpdate {
	_u.mutation.ResetFirst()
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableFirst(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// AddFirst adds value to the "first" field.
func (_u *AnswerEventUpdate) AddFirst(v int) *AnswerEventUpdate {
	_u.mutation.AddFirst(v)
	return _u
}

// SetSecond sets the "second" field.
func (_u *AnswerEventUpdate) SetSecond(v int) *AnswerEventUpdate {
	_u.mutation.ResetSecond()
	_u.mutation.SetSecond(v)
	return _u
}

// SetNillableSecond sets the "second" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSecond(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSecond(*v)
	}
	return _u
}

// AddSecond adds value to the "second" field.
func (_u *AnswerEventUpdate) AddSecond(v int) *AnswerEventUpdate {
	_u.mutation.AddSecond(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeout sets the "timeout" field.
func (_u *AnswerEventUpdate) SetTimeout(v bool) *AnswerEventUpdate {
	_u.mutation.SetTimeout(v)
	return _u
}

// SetNillableTimeout sets the "timeout" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeout(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeout(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AnswerEventUpdate) SetElapsedMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableElapsedMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AnswerEventUpdate) AddElapsedMs(v int) *AnswerEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AnswerEventUpdate) SetPointsAwarded(v int) *AnswerEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePointsAwarded(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AnswerEventUpdate) AddPointsAwarded(v int) *AnswerEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdate) SetMode(v string) *AnswerEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMode(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := answerevent.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(answerevent.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(answerevent.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirst(); ok {
		_spec.AddField(answerevent.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Second(); ok {
		_spec.SetField(answerevent.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSecond(); ok {
		_spec.AddField(answerevent.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timeout(); ok {
		_spec.SetField(answerevent.FieldTimeout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(answerevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(answerevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetIdentifier sets the "identifier" field.
func (_u *AnswerEventUpdateOne) SetIdentifier(v string) *AnswerEventUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableIdentifier(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *AnswerEventUpdateOne) SetFirst(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetFirst()
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableFirst(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// AddFirst adds value to the "first" field.
func (_u *AnswerEventUpdateOne) AddFirst(v int) *AnswerEventUpdateOne {
	_u.mutation.AddFirst(v)
	return _u
}

// SetSecond sets the "second" field.
func (_u *AnswerEventUpdateOne) SetSecond(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSecond()
	_u.mutation.SetSecond(v)
	return _u
}

// SetNillableSecond sets the "second" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSecond(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSecond(*v)
	}
	return _u
}

// AddSecond adds value to the "second" field.
func (_u *AnswerEventUpdateOne) AddSecond(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSecond(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeout sets the "timeout" field.
func (_u *AnswerEventUpdateOne) SetTimeout(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetTimeout(v)
	return _u
}

// SetNillableTimeout sets the "timeout" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeout(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeout(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AnswerEventUpdateOne) SetElapsedMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableElapsedMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AnswerEventUpdateOne) AddElapsedMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AnswerEventUpdateOne) SetPointsAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePointsAwarded(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AnswerEventUpdateOne) AddPointsAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdateOne) SetMode(v string) *AnswerEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMode(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := answerevent.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(answerevent.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(answerevent.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirst(); ok {
		_spec.AddField(answerevent.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Second(); ok {
		_spec.SetField(answerevent.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSecond(); ok {
		_spec.AddField(answerevent.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timeout(); ok {
		_spec.SetField(answerevent.FieldTimeout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(answerevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(answerevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
