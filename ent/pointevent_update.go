// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/pointevent"
	"github.com/kukulab/kuku/ent/predicate"
)

// PointEventUpdate is the builder for updating PointEvent entities.
type PointEventUpdate struct {
	config
	hooks    []Hook
	mutation *PointEventMutation
}

// Where appends a list predicates to the PointEventUpdate builder.
func (_u *PointEventUpdate) Where(ps ...predicate.PointEvent) *PointEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *PointEventUpdate) SetKind(v string) *PointEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableKind(v *string) *PointEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PointEventUpdate) SetAmount(v int) *PointEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableAmount(v *int) *PointEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PointEventUpdate) AddAmount(v int) *PointEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PointEventUpdate) SetQuestionID(v string) *PointEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableQuestionID(v *string) *PointEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *PointEventUpdate) ClearQuestionID() *PointEventUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetBonus sets the "bonus" field.
func (_u *PointEventUpdate) SetBonus(v bool) *PointEventUpdate {
	_u.mutation.SetBonus(v)
	return _u
}

// SetNillableBonus sets the "bonus" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableBonus(v *bool) *PointEventUpdate {
	if v != nil {
		_u.SetBonus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointEventUpdate) SetReason(v string) *PointEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableReason(v *string) *PointEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PointEventUpdate) ClearReason() *PointEventUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the PointEventMutation object of the builder.
func (_u *PointEventUpdate) Mutation() *PointEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PointEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PointEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pointevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PointEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := pointevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PointEvent.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *PointEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointevent.Table, pointevent.Columns, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pointevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pointevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pointevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(pointevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(pointevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.Bonus(); ok {
		_spec.SetField(pointevent.FieldBonus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(pointevent.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PointEventUpdateOne is the builder for updating a single PointEvent entity.
type PointEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PointEventMutation
}

// SetKind sets the "kind" field.
func (_u *PointEventUpdateOne) SetKind(v string) *PointEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableKind(v *string) *PointEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PointEventUpdateOne) SetAmount(v int) *PointEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableAmount(v *int) *PointEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PointEventUpdateOne) AddAmount(v int) *PointEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PointEventUpdateOne) SetQuestionID(v string) *PointEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableQuestionID(v *string) *PointEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *PointEventUpdateOne) ClearQuestionID() *PointEventUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetBonus sets the "bonus" field.
func (_u *PointEventUpdateOne) SetBonus(v bool) *PointEventUpdateOne {
	_u.mutation.SetBonus(v)
	return _u
}

// SetNillableBonus sets the "bonus" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableBonus(v *bool) *PointEventUpdateOne {
	if v != nil {
		_u.SetBonus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointEventUpdateOne) SetReason(v string) *PointEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableReason(v *string) *PointEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PointEventUpdateOne) ClearReason() *PointEventUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the PointEventMutation object of the builder.
func (_u *PointEventUpdateOne) Mutation() *PointEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PointEventUpdate builder.
func (_u *PointEventUpdateOne) Where(ps ...predicate.PointEvent) *PointEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PointEventUpdateOne) Select(field string, fields ...string) *PointEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PointEvent entity.
func (_u *PointEventUpdateOne) Save(ctx context.Context) (*PointEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointEventUpdateOne) SaveX(ctx context.Context) *PointEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PointEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pointevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PointEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := pointevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PointEvent.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *PointEventUpdateOne) sqlSave(ctx context.Context) (_node *PointEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointevent.Table, pointevent.Columns, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PointEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pointevent.FieldID)
		for _, f := range fields {
			if !pointevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pointevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pointevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pointevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pointevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(pointevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(pointevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.Bonus(); ok {
		_spec.SetField(pointevent.FieldBonus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(pointevent.FieldReason, field.TypeString)
	}
	_node = &PointEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
