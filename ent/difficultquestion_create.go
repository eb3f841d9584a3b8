// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/difficultquestion"
)

// DifficultQuestionCreate is the builder for creating a DifficultQuestion entity.
type DifficultQuestionCreate struct {
	config
	mutation *DifficultQuestionMutation
	hooks    []Hook
}

// SetIdentifier sets the "identifier" field.
func (_c *DifficultQuestionCreate) SetIdentifier(v string) *DifficultQuestionCreate {
	_c.mutation.SetIdentifier(v)
	return _c
}

// SetFirst sets the "first" field.
func (_c *DifficultQuestionCreate) SetFirst(v int) *DifficultQuestionCreate {
	_c.mutation.SetFirst(v)
	return _c
}

// SetSecond sets the "second" field.
func (_c *DifficultQuestionCreate) SetSecond(v int) *DifficultQuestionCreate {
	_c.mutation.SetSecond(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *DifficultQuestionCreate) SetCorrectCount(v int) *DifficultQuestionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *DifficultQuestionCreate) SetNillableCorrectCount(v *int) *DifficultQuestionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *DifficultQuestionCreate) SetIncorrectCount(v int) *DifficultQuestionCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *DifficultQuestionCreate) SetNillableIncorrectCount(v *int) *DifficultQuestionCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastIncorrectAt sets the "last_incorrect_at" field.
func (_c *DifficultQuestionCreate) SetLastIncorrectAt(v time.Time) *DifficultQuestionCreate {
	_c.mutation.SetLastIncorrectAt(v)
	return _c
}

// SetNillableLastIncorrectAt sets the "last_incorrect_at" field if the given value is not nil.
func (_c *DifficultQuestionCreate) SetNillableLastIncorrectAt(v *time.Time) *DifficultQuestionCreate {
	if v != nil {
		_c.SetLastIncorrectAt(*v)
	}
	return _c
}

// Mutation returns the DifficultQuestionMutation object of the builder.
func (_c *DifficultQuestionCreate) Mutation() *DifficultQuestionMutation {
	return _c.mutation
}

// Save creates the DifficultQuestion in the database.
func (_c *DifficultQuestionCreate) Save(ctx context.Context) (*DifficultQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DifficultQuestionCreate) SaveX(ctx context.Context) *DifficultQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DifficultQuestionCreate) defaults() {
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := difficultquestion.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := difficultquestion.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.LastIncorrectAt(); !ok {
		v := difficultquestion.DefaultLastIncorrectAt()
		_c.mutation.SetLastIncorrectAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DifficultQuestionCreate) check() error {
	if _, ok := _c.mutation.Identifier(); !ok {
		return &ValidationError{Name: "identifier", err: errors.New(`ent: missing required field "DifficultQuestion.identifier"`)}
	}
	if v, ok := _c.mutation.Identifier(); ok {
		if err := difficultquestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.First(); !ok {
		return &ValidationError{Name: "first", err: errors.New(`ent: missing required field "DifficultQuestion.first"`)}
	}
	if _, ok := _c.mutation.Second(); !ok {
		return &ValidationError{Name: "second", err: errors.New(`ent: missing required field "DifficultQuestion.second"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "DifficultQuestion.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := difficultquestion.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "DifficultQuestion.incorrect_count"`)}
	}
	if v, ok := _c.mutation.IncorrectCount(); ok {
		if err := difficultquestion.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "DifficultQuestion.incorrect_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastIncorrectAt(); !ok {
		return &ValidationError{Name: "last_incorrect_at", err: errors.New(`ent: missing required field "DifficultQuestion.last_incorrect_at"`)}
	}
	return nil
}

func (_c *DifficultQuestionCreate) sqlSave(ctx context.Context) (*DifficultQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DifficultQuestionCreate) createSpec() (*DifficultQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &DifficultQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(difficultquestion.Table, sqlgraph.NewFieldSpec(difficultquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Identifier(); ok {
		_spec.SetField(difficultquestion.FieldIdentifier, field.TypeString, value)
		_node.Identifier = value
	}
	if value, ok := _c.mutation.First(); ok {
		_spec.SetField(difficultquestion.FieldFirst, field.TypeInt, value)
		_node.First = value
	}
	if value, ok := _c.mutation.Second(); ok {
		_spec.SetField(difficultquestion.FieldSecond, field.TypeInt, value)
		_node.Second = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(difficultquestion.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastIncorrectAt(); ok {
		_spec.SetField(difficultquestion.FieldLastIncorrectAt, field.TypeTime, value)
		_node.LastIncorrectAt = value
	}
	return _node, _spec
}

// DifficultQuestionCreateBulk is the builder for creating many DifficultQuestion entities in bulk.
type DifficultQuestionCreateBulk struct {
	config
	err      error
	builders []*DifficultQuestionCreate
}

// Save creates the DifficultQuestion entities in the database.
func (_c *DifficultQuestionCreateBulk) Save(ctx context.Context) ([]*DifficultQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DifficultQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DifficultQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DifficultQuestionCreateBulk) SaveX(ctx context.Context) []*DifficultQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
