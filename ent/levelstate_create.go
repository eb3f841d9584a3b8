// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/levelstate"
	"github.com/kukulab/kuku/ent/schema"
)

// LevelStateCreate is the builder for creating a LevelState entity.
type LevelStateCreate struct {
	config
	mutation *LevelStateMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *LevelStateCreate) SetLevel(v int) *LevelStateCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LevelStateCreate) SetNillableLevel(v *int) *LevelStateCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetTotalExperience sets the "total_experience" field.
func (_c *LevelStateCreate) SetTotalExperience(v int) *LevelStateCreate {
	_c.mutation.SetTotalExperience(v)
	return _c
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_c *LevelStateCreate) SetNillableTotalExperience(v *int) *LevelStateCreate {
	if v != nil {
		_c.SetTotalExperience(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *LevelStateCreate) SetTitle(v string) *LevelStateCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *LevelStateCreate) SetNillableTitle(v *string) *LevelStateCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *LevelStateCreate) SetHistory(v []schema.LevelUpRecord) *LevelStateCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LevelStateCreate) SetCreatedAt(v time.Time) *LevelStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LevelStateCreate) SetNillableCreatedAt(v *time.Time) *LevelStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *LevelStateCreate) SetLastUpdated(v time.Time) *LevelStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *LevelStateCreate) SetNillableLastUpdated(v *time.Time) *LevelStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the LevelStateMutation object of the builder.
func (_c *LevelStateCreate) Mutation() *LevelStateMutation {
	return _c.mutation
}

// Save creates the LevelState in the database.
func (_c *LevelStateCreate) Save(ctx context.Context) (*LevelState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelStateCreate) SaveX(ctx context.Context) *LevelState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelStateCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := levelstate.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.TotalExperience(); !ok {
		v := levelstate.DefaultTotalExperience
		_c.mutation.SetTotalExperience(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := levelstate.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := levelstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := levelstate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelStateCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LevelState.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := levelstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelState.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalExperience(); !ok {
		return &ValidationError{Name: "total_experience", err: errors.New(`ent: missing required field "LevelState.total_experience"`)}
	}
	if v, ok := _c.mutation.TotalExperience(); ok {
		if err := levelstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "LevelState.total_experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LevelState.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LevelState.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "LevelState.last_updated"`)}
	}
	return nil
}

func (_c *LevelStateCreate) sqlSave(ctx context.Context) (*LevelState, error) {
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

func (_c *LevelStateCreate) createSpec() (*LevelState, *sqlgraph.CreateSpec) {
	var (
		_node = &LevelState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(levelstate.Table, sqlgraph.NewFieldSpec(levelstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(levelstate.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.TotalExperience(); ok {
		_spec.SetField(levelstate.FieldTotalExperience, field.TypeInt, value)
		_node.TotalExperience = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(levelstate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(levelstate.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(levelstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(levelstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// LevelStateCreateBulk is the builder for creating many LevelState entities in bulk.
type LevelStateCreateBulk struct {
	config
	err      error
	builders []*LevelStateCreate
}

// Save creates the LevelState entities in the database.
func (_c *LevelStateCreateBulk) Save(ctx context.Context) ([]*LevelState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LevelState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelStateMutation)
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
func (_c *LevelStateCreateBulk) SaveX(ctx context.Context) []*LevelState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
