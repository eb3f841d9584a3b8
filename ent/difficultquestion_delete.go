// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/difficultquestion"
	"github.com/kukulab/kuku/ent/predicate"
)

// DifficultQuestionDelete is the builder for deleting a DifficultQuestion entity.
type DifficultQuestionDelete struct {
	config
	hooks    []Hook
	mutation *DifficultQuestionMutation
}

// Where appends a list predicates to the DifficultQuestionDelete builder.
func (_d *DifficultQuestionDelete) Where(ps ...predicate.DifficultQuestion) *DifficultQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DifficultQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DifficultQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(difficultquestion.Table, sqlgraph.NewFieldSpec(difficultquestion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DifficultQuestionDeleteOne is the builder for deleting a single DifficultQuestion entity.
type DifficultQuestionDeleteOne struct {
	_d *DifficultQuestionDelete
}

// Where appends a list predicates to the DifficultQuestionDelete builder.
func (_d *DifficultQuestionDeleteOne) Where(ps ...predicate.DifficultQuestion) *DifficultQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DifficultQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{difficultquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
