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
	"github.com/kukulab/kuku/ent/dailychallenge"
	"github.com/kukulab/kuku/ent/predicate"
)

// DailyChallengeUpdate is the builder for updating DailyChallenge entities.
type DailyChallengeUpdate struct {
	config
	hooks    []Hook
	mutation *DailyChallengeMutation
}

// Where appends a list predicates to the DailyChallengeUpdate builder.
func (_u *DailyChallengeUpdate) Where(ps ...predicate.DailyChallenge) *DailyChallengeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDay sets the "day" field.
func (_u *DailyChallengeUpdate) SetDay(v time.Time) *DailyChallengeUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DailyChallengeUpdate) SetNillableDay(v *time.Time) *DailyChallengeUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTargetProblems sets the "target_problems" field.
func (_u *DailyChallengeUpdate) SetTargetProblems(v int) *DailyChallengeUpdate {
	_u.mutation.ResetTargetProblems()
	_u.mutation.SetTargetProblems(v)
	return _u
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_u *DailyChallengeUpdate) SetNillableTargetProblems(v *int) *DailyChallengeUpdate {
	if v != nil {
		_u.SetTargetProblems(*v)
	}
	return _u
}

// AddTargetProblems adds value to the "target_problems" field.
func (_u *DailyChallengeUpdate) AddTargetProblems(v int) *DailyChallengeUpdate {
	_u.mutation.AddTargetProblems(v)
	return _u
}

// SetCompletedProblems sets the "completed_problems" field.
func (_u *DailyChallengeUpdate) SetCompletedProblems(v int) *DailyChallengeUpdate {
	_u.mutation.ResetCompletedProblems()
	_u.mutation.SetCompletedProblems(v)
	return _u
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_u *DailyChallengeUpdate) SetNillableCompletedProblems(v *int) *DailyChallengeUpdate {
	if v != nil {
		_u.SetCompletedProblems(*v)
	}
	return _u
}

// AddCompletedProblems adds value to the "completed_problems" field.
func (_u *DailyChallengeUpdate) AddCompletedProblems(v int) *DailyChallengeUpdate {
	_u.mutation.AddCompletedProblems(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *DailyChallengeUpdate) SetStreakCount(v int) *DailyChallengeUpdate {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *DailyChallengeUpdate) SetNillableStreakCount(v *int) *DailyChallengeUpdate {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *DailyChallengeUpdate) AddStreakCount(v int) *DailyChallengeUpdate {
	_u.mutation.AddStreakCount(v)
	return _u
}

// Mutation returns the DailyChallengeMutation object of the builder.
func (_u *DailyChallengeUpdate) Mutation() *DailyChallengeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyChallengeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyChallengeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyChallengeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyChallengeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyChallengeUpdate) check() error {
	if v, ok := _u.mutation.TargetProblems(); ok {
		if err := dailychallenge.TargetProblemsValidator(v); err != nil {
			return &ValidationError{Name: "target_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.target_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedProblems(); ok {
		if err := dailychallenge.CompletedProblemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.completed_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCount(); ok {
		if err := dailychallenge.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.streak_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyChallengeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailychallenge.Table, dailychallenge.Columns, sqlgraph.NewFieldSpec(dailychallenge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dailychallenge.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetProblems(); ok {
		_spec.SetField(dailychallenge.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetProblems(); ok {
		_spec.AddField(dailychallenge.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedProblems(); ok {
		_spec.SetField(dailychallenge.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedProblems(); ok {
		_spec.AddField(dailychallenge.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(dailychallenge.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(dailychallenge.FieldStreakCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailychallenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyChallengeUpdateOne is the builder for updating a single DailyChallenge entity.
type DailyChallengeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyChallengeMutation
}

// SetDay sets the "day" field.
func (_u *DailyChallengeUpdateOne) SetDay(v time.Time) *DailyChallengeUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DailyChallengeUpdateOne) SetNillableDay(v *time.Time) *DailyChallengeUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTargetProblems sets the "target_problems" field.
func (_u *DailyChallengeUpdateOne) SetTargetProblems(v int) *DailyChallengeUpdateOne {
	_u.mutation.ResetTargetProblems()
	_u.mutation.SetTargetProblems(v)
	return _u
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_u *DailyChallengeUpdateOne) SetNillableTargetProblems(v *int) *DailyChallengeUpdateOne {
	if v != nil {
		_u.SetTargetProblems(*v)
	}
	return _u
}

// AddTargetProblems adds value to the "target_problems" field.
func (_u *DailyChallengeUpdateOne) AddTargetProblems(v int) *DailyChallengeUpdateOne {
	_u.mutation.AddTargetProblems(v)
	return _u
}

// SetCompletedProblems sets the "completed_problems" field.
func (_u *DailyChallengeUpdateOne) SetCompletedProblems(v int) *DailyChallengeUpdateOne {
	_u.mutation.ResetCompletedProblems()
	_u.mutation.SetCompletedProblems(v)
	return _u
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_u *DailyChallengeUpdateOne) SetNillableCompletedProblems(v *int) *DailyChallengeUpdateOne {
	if v != nil {
		_u.SetCompletedProblems(*v)
	}
	return _u
}

// AddCompletedProblems adds value to the "completed_problems" field.
func (_u *DailyChallengeUpdateOne) AddCompletedProblems(v int) *DailyChallengeUpdateOne {
	_u.mutation.AddCompletedProblems(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *DailyChallengeUpdateOne) SetStreakCount(v int) *DailyChallengeUpdateOne {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *DailyChallengeUpdateOne) SetNillableStreakCount(v *int) *DailyChallengeUpdateOne {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *DailyChallengeUpdateOne) AddStreakCount(v int) *DailyChallengeUpdateOne {
	_u.mutation.AddStreakCount(v)
	return _u
}

// Mutation returns the DailyChallengeMutation object of the builder.
func (_u *DailyChallengeUpdateOne) Mutation() *DailyChallengeMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyChallengeUpdate builder.
func (_u *DailyChallengeUpdateOne) Where(ps ...predicate.DailyChallenge) *DailyChallengeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyChallengeUpdateOne) Select(field string, fields ...string) *DailyChallengeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyChallenge entity.
func (_u *DailyChallengeUpdateOne) Save(ctx context.Context) (*DailyChallenge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyChallengeUpdateOne) SaveX(ctx context.Context) *DailyChallenge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyChallengeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyChallengeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyChallengeUpdateOne) check() error {
	if v, ok := _u.mutation.TargetProblems(); ok {
		if err := dailychallenge.TargetProblemsValidator(v); err != nil {
			return &ValidationError{Name: "target_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.target_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedProblems(); ok {
		if err := dailychallenge.CompletedProblemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.completed_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCount(); ok {
		if err := dailychallenge.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.streak_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyChallengeUpdateOne) sqlSave(ctx context.Context) (_node *DailyChallenge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailychallenge.Table, dailychallenge.Columns, sqlgraph.NewFieldSpec(dailychallenge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyChallenge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailychallenge.FieldID)
		for _, f := range fields {
			if !dailychallenge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailychallenge.FieldID {
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
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dailychallenge.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetProblems(); ok {
		_spec.SetField(dailychallenge.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetProblems(); ok {
		_spec.AddField(dailychallenge.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedProblems(); ok {
		_spec.SetField(dailychallenge.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedProblems(); ok {
		_spec.AddField(dailychallenge.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(dailychallenge.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(dailychallenge.FieldStreakCount, field.TypeInt, value)
	}
	_node = &DailyChallenge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailychallenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
