// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/dailychallenge"
)

// DailyChallengeCreate is the builder for creating a DailyChallenge entity.
type DailyChallengeCreate struct {
	config
	mutation *DailyChallengeMutation
	hooks    []Hook
}

// SetDay sets the "day" field.
func (_c *DailyChallengeCreate) SetDay(v time.Time) *DailyChallengeCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTargetProblems sets the "target_problems" field.
func (_c *DailyChallengeCreate) SetTargetProblems(v int) *DailyChallengeCreate {
	_c.mutation.SetTargetProblems(v)
	return _c
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_c *DailyChallengeCreate) SetNillableTargetProblems(v *int) *DailyChallengeCreate {
	if v != nil {
		_c.SetTargetProblems(*v)
	}
	return _c
}

// SetCompletedProblems sets the "completed_problems" field.
func (_c *DailyChallengeCreate) SetCompletedProblems(v int) *DailyChallengeCreate {
	_c.mutation.SetCompletedProblems(v)
	return _c
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_c *DailyChallengeCreate) SetNillableCompletedProblems(v *int) *DailyChallengeCreate {
	if v != nil {
		_c.SetCompletedProblems(*v)
	}
	return _c
}

// SetStreakCount sets the "streak_count" field.
func (_c *DailyChallengeCreate) SetStreakCount(v int) *DailyChallengeCreate {
	_c.mutation.SetStreakCount(v)
	return _c
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_c *DailyChallengeCreate) SetNillableStreakCount(v *int) *DailyChallengeCreate {
	if v != nil {
		_c.SetStreakCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DailyChallengeCreate) SetCreatedAt(v time.Time) *DailyChallengeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DailyChallengeCreate) SetNillableCreatedAt(v *time.Time) *DailyChallengeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the DailyChallengeMutation object of the builder.
func (_c *DailyChallengeCreate) Mutation() *DailyChallengeMutation {
	return _c.mutation
}

// Save creates the DailyChallenge in the database.
func (_c *DailyChallengeCreate) Save(ctx context.Context) (*DailyChallenge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyChallengeCreate) SaveX(ctx context.Context) *DailyChallenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyChallengeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyChallengeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyChallengeCreate) defaults() {
	if _, ok := _c.mutation.TargetProblems(); !ok {
		v := dailychallenge.DefaultTargetProblems
		_c.mutation.SetTargetProblems(v)
	}
	if _, ok := _c.mutation.CompletedProblems(); !ok {
		v := dailychallenge.DefaultCompletedProblems
		_c.mutation.SetCompletedProblems(v)
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		v := dailychallenge.DefaultStreakCount
		_c.mutation.SetStreakCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dailychallenge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyChallengeCreate) check() error {
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "DailyChallenge.day"`)}
	}
	if _, ok := _c.mutation.TargetProblems(); !ok {
		return &ValidationError{Name: "target_problems", err: errors.New(`ent: missing required field "DailyChallenge.target_problems"`)}
	}
	if v, ok := _c.mutation.TargetProblems(); ok {
		if err := dailychallenge.TargetProblemsValidator(v); err != nil {
			return &ValidationError{Name: "target_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.target_problems": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedProblems(); !ok {
		return &ValidationError{Name: "completed_problems", err: errors.New(`ent: missing required field "DailyChallenge.completed_problems"`)}
	}
	if v, ok := _c.mutation.CompletedProblems(); ok {
		if err := dailychallenge.CompletedProblemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_problems", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.completed_problems": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		return &ValidationError{Name: "streak_count", err: errors.New(`ent: missing required field "DailyChallenge.streak_count"`)}
	}
	if v, ok := _c.mutation.StreakCount(); ok {
		if err := dailychallenge.StreakCountValidator(v); err != nil {
			return &ValidationError{Name: "streak_count", err: fmt.Errorf(`ent: validator failed for field "DailyChallenge.streak_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DailyChallenge.created_at"`)}
	}
	return nil
}

func (_c *DailyChallengeCreate) sqlSave(ctx context.Context) (*DailyChallenge, error) {
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

func (_c *DailyChallengeCreate) createSpec() (*DailyChallenge, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyChallenge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailychallenge.Table, sqlgraph.NewFieldSpec(dailychallenge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(dailychallenge.FieldDay, field.TypeTime, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TargetProblems(); ok {
		_spec.SetField(dailychallenge.FieldTargetProblems, field.TypeInt, value)
		_node.TargetProblems = value
	}
	if value, ok := _c.mutation.CompletedProblems(); ok {
		_spec.SetField(dailychallenge.FieldCompletedProblems, field.TypeInt, value)
		_node.CompletedProblems = value
	}
	if value, ok := _c.mutation.StreakCount(); ok {
		_spec.SetField(dailychallenge.FieldStreakCount, field.TypeInt, value)
		_node.StreakCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dailychallenge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DailyChallengeCreateBulk is the builder for creating many DailyChallenge entities in bulk.
type DailyChallengeCreateBulk struct {
	config
	err      error
	builders []*DailyChallengeCreate
}

// Save creates the DailyChallenge entities in the database.
func (_c *DailyChallengeCreateBulk) Save(ctx context.Context) ([]*DailyChallenge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyChallenge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyChallengeMutation)
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
func (_c *DailyChallengeCreateBulk) SaveX(ctx context.Context) []*DailyChallenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyChallengeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyChallengeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
