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
	"github.com/kukulab/kuku/ent/difficultquestion"
	"github.com/kukulab/kuku/ent/predicate"
)

// DifficultQuestionUpdate is the builder for updating DifficultQuestion entities.
type DifficultQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *DifficultQuestionMutation
}

// Where appends a list predicates to the DifficultQuestionUpdate builder.
func (_u *DifficultQuestionUpdate) Where(ps ...predicate.DifficultQuestion) *DifficultQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *DifficultQuestionUpdate) SetIdentifier(v string) *DifficultQuestionUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableIdentifier(v *string) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *DifficultQuestionUpdate) SetFirst(v int) *DifficultQuestionUpdate {
	_u.mutation.ResetFirst()
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableFirst(v *int) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// AddFirst adds value to the "first" field.
func (_u *DifficultQuestionUpdate) AddFirst(v int) *DifficultQuestionUpdate {
	_u.mutation.AddFirst(v)
	return _u
}

// SetSecond sets the "second" field.
func (_u *DifficultQuestionUpdate) SetSecond(v int) *DifficultQuestionUpdate {
	_u.mutation.ResetSecond()
	_u.mutation.SetSecond(v)
	return _u
}

// SetNillableSecond sets the "second" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableSecond(v *int) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetSecond(*v)
	}
	return _u
}

// AddSecond adds value to the "second" field.
func (_u *DifficultQuestionUpdate) AddSecond(v int) *DifficultQuestionUpdate {
	_u.mutation.AddSecond(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *DifficultQuestionUpdate) SetCorrectCount(v int) *DifficultQuestionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableCorrectCount(v *int) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *DifficultQuestionUpdate) AddCorrectCount(v int) *DifficultQuestionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *DifficultQuestionUpdate) SetIncorrectCount(v int) *DifficultQuestionUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableIncorrectCount(v *int) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *DifficultQuestionUpdate) AddIncorrectCount(v int) *DifficultQuestionUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastIncorrectAt sets the "last_incorrect_at" field.
func (_u *DifficultQuestionUpdate) SetLastIncorrectAt(v time.Time) *DifficultQuestionUpdate {
	_u.mutation.SetLastIncorrectAt(v)
	return _u
}

// SetNillableLastIncorrectAt sets the "last_incorrect_at" field if the given value is not nil.
func (_u *DifficultQuestionUpdate) SetNillableLastIncorrectAt(v *time.Time) *DifficultQuestionUpdate {
	if v != nil {
		_u.SetLastIncorrectAt(*v)
	}
	return _u
}

// Mutation returns the DifficultQuestionMutation object of the builder.
func (_u *DifficultQuestionUpdate) Mutation() *DifficultQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DifficultQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DifficultQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultQuestionUpdate) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := difficultquestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := difficultquestion.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := difficultquestion.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultquestion.Table, difficultquestion.Columns, sqlgraph.NewFieldSpec(difficultquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(difficultquestion.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(difficultquestion.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirst(); ok {
		_spec.AddField(difficultquestion.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Second(); ok {
		_spec.SetField(difficultquestion.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSecond(); ok {
		_spec.AddField(difficultquestion.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(difficultquestion.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(difficultquestion.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIncorrectAt(); ok {
		_spec.SetField(difficultquestion.FieldLastIncorrectAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DifficultQuestionUpdateOne is the builder for updating a single DifficultQuestion entity.
type DifficultQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DifficultQuestionMutation
}

// SetIdentifier sets the "identifier" field.
func (_u *DifficultQuestionUpdateOne) SetIdentifier(v string) *DifficultQuestionUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableIdentifier(v *string) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *DifficultQuestionUpdateOne) SetFirst(v int) *DifficultQuestionUpdateOne {
	_u.mutation.ResetFirst()
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableFirst(v *int) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// AddFirst adds value to the "first" field.
func (_u *DifficultQuestionUpdateOne) AddFirst(v int) *DifficultQuestionUpdateOne {
	_u.mutation.AddFirst(v)
	return _u
}

// SetSecond sets the "second" field.
func (_u *DifficultQuestionUpdateOne) SetSecond(v int) *DifficultQuestionUpdateOne {
	_u.mutation.ResetSecond()
	_u.mutation.SetSecond(v)
	return _u
}

// SetNillableSecond sets the "second" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableSecond(v *int) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetSecond(*v)
	}
	return _u
}

// AddSecond adds value to the "second" field.
func (_u *DifficultQuestionUpdateOne) AddSecond(v int) *DifficultQuestionUpdateOne {
	_u.mutation.AddSecond(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *DifficultQuestionUpdateOne) SetCorrectCount(v int) *DifficultQuestionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableCorrectCount(v *int) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *DifficultQuestionUpdateOne) AddCorrectCount(v int) *DifficultQuestionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *DifficultQuestionUpdateOne) SetIncorrectCount(v int) *DifficultQuestionUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableIncorrectCount(v *int) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *DifficultQuestionUpdateOne) AddIncorrectCount(v int) *DifficultQuestionUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastIncorrectAt sets the "last_incorrect_at" field.
func (_u *DifficultQuestionUpdateOne) SetLastIncorrectAt(v time.Time) *DifficultQuestionUpdateOne {
	_u.mutation.SetLastIncorrectAt(v)
	return _u
}

// SetNillableLastIncorrectAt sets the "last_incorrect_at" field if the given value is not nil.
func (_u *DifficultQuestionUpdateOne) SetNillableLastIncorrectAt(v *time.Time) *DifficultQuestionUpdateOne {
	if v != nil {
		_u.SetLastIncorrectAt(*v)
	}
	return _u
}

// Mutation returns the DifficultQuestionMutation object of the builder.
func (_u *DifficultQuestionUpdateOne) Mutation() *DifficultQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DifficultQuestionUpdate builder.
func (_u *DifficultQuestionUpdateOne) Where(ps ...predicate.DifficultQuestion) *DifficultQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DifficultQuestionUpdateOne) Select(field string, fields ...string) *DifficultQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DifficultQuestion entity.
func (_u *DifficultQuestionUpdateOne) Save(ctx context.Context) (*DifficultQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultQuestionUpdateOne) SaveX(ctx context.Context) *DifficultQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DifficultQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := difficultquestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := difficultquestion.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := difficultquestion.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultQuestionUpdateOne) sqlSave(ctx context.Context) (_node *DifficultQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultquestion.Table, difficultquestion.Columns, sqlgraph.NewFieldSpec(difficultquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DifficultQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, difficultquestion.FieldID)
		for _, f := range fields {
			if !difficultquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != difficultquestion.FieldID {
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
		_spec.SetField(difficultquestion.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(difficultquestion.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirst(); ok {
		_spec.AddField(difficultquestion.FieldFirst, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Second(); ok {
		_spec.SetField(difficultquestion.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSecond(); ok {
		_spec.AddField(difficultquestion.FieldSecond, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(difficultquestion.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(difficultquestion.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIncorrectAt(); ok {
		_spec.SetField(difficultquestion.FieldLastIncorrectAt, field.TypeTime, value)
	}
	_node = &DifficultQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
