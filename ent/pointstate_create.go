// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/pointstate"
)

// PointStateCreate is the builder for creating a PointState entity.
type PointStateCreate struct {
	config
	mutation *PointStateMutation
	hooks    []Hook
}

// SetTotalEarned sets the "total_earned" field.
func (_c *PointStateCreate) SetTotalEarned(v int) *PointStateCreate {
	_c.mutation.SetTotalEarned(v)
	return _c
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_c *PointStateCreate) SetNillableTotalEarned(v *int) *PointStateCreate {
	if v != nil {
		_c.SetTotalEarned(*v)
	}
	return _c
}

// SetAvailable sets the "available" field.
func (_c *PointStateCreate) SetAvailable(v int) *PointStateCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *PointStateCreate) SetNillableAvailable(v *int) *PointStateCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetBonusLedger sets the "bonus_ledger" field.
func (_c *PointStateCreate) SetBonusLedger(v map[string]int) *PointStateCreate {
	_c.mutation.SetBonusLedger(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *PointStateCreate) SetLastUpdated(v time.Time) *PointStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *PointStateCreate) SetNillableLastUpdated(v *time.Time) *PointStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the PointStateMutation object of the builder.
func (_c *PointStateCreate) Mutation() *PointStateMutation {
	return _c.mutation
}

// Save creates the PointState in the database.
func (_c *PointStateCreate) Save(ctx context.Context) (*PointState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointStateCreate) SaveX(ctx context.Context) *PointState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointStateCreate) defaults() {
	if _, ok := _c.mutation.TotalEarned(); !ok {
		v := pointstate.DefaultTotalEarned
		_c.mutation.SetTotalEarned(v)
	}
	if _, ok := _c.mutation.Available(); !ok {
		v := pointstate.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := pointstate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointStateCreate) check() error {
	if _, ok := _c.mutation.TotalEarned(); !ok {
		return &ValidationError{Name: "total_earned", err: errors.New(`ent: missing required field "PointState.total_earned"`)}
	}
	if v, ok := _c.mutation.TotalEarned(); ok {
		if err := pointstate.TotalEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_earned", err: fmt.Errorf(`ent: validator failed for field "PointState.total_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`ent: missing required field "PointState.available"`)}
	}
	if v, ok := _c.mutation.Available(); ok {
		if err := pointstate.AvailableValidator(v); err != nil {
			return &ValidationError{Name: "available", err: fmt.Errorf(`ent: validator failed for field "PointState.available": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "PointState.last_updated"`)}
	}
	return nil
}

func (_c *PointStateCreate) sqlSave(ctx context.Context) (*PointState, error) {
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

func (_c *PointStateCreate) createSpec() (*PointState, *sqlgraph.CreateSpec) {
	var (
		_node = &PointState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointstate.Table, sqlgraph.NewFieldSpec(pointstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TotalEarned(); ok {
		_spec.SetField(pointstate.FieldTotalEarned, field.TypeInt, value)
		_node.TotalEarned = value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(pointstate.FieldAvailable, field.TypeInt, value)
		_node.Available = value
	}
	if value, ok := _c.mutation.BonusLedger(); ok {
		_spec.SetField(pointstate.FieldBonusLedger, field.TypeJSON, value)
		_node.BonusLedger = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(pointstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// PointStateCreateBulk is the builder for creating many PointState entities in bulk.
type PointStateCreateBulk struct {
	config
	err      error
	builders []*PointStateCreate
}

// Save creates the PointState entities in the database.
func (_c *PointStateCreateBulk) Save(ctx context.Context) ([]*PointState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointStateMutation)
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
func (_c *PointStateCreateBulk) SaveX(ctx context.Context) []*PointState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
