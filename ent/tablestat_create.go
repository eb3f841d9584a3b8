// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/tablestat"
)

// TableStatCreate is the builder for creating a TableStat entity.
type TableStatCreate struct {
	config
	mutation *TableStatMutation
	hooks    []Hook
}

// SetTable sets the "table" field.
func (_c *TableStatCreate) SetTable(v int) *TableStatCreate {
	_c.mutation.SetTable(v)
	return _c
}

// SetTotalProblems sets the "total_problems" field.
func (_c *TableStatCreate) SetTotalProblems(v int) *TableStatCreate {
	_c.mutation.SetTotalProblems(v)
	return _c
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_c *TableStatCreate) SetNillableTotalProblems(v *int) *TableStatCreate {
	if v != nil {
		_c.SetTotalProblems(*v)
	}
	return _c
}

// SetCorrectProblems sets the "correct_problems" field.
func (_c *TableStatCreate) SetCorrectProblems(v int) *TableStatCreate {
	_c.mutation.SetCorrectProblems(v)
	return _c
}

// SetNillableCorrectProblems sets the "correct_problems" field if the given value is not nil.
func (_c *TableStatCreate) SetNillableCorrectProblems(v *int) *TableStatCreate {
	if v != nil {
		_c.SetCorrectProblems(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *TableStatCreate) SetLastUpdated(v time.Time) *TableStatCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *TableStatCreate) SetNillableLastUpdated(v *time.Time) *TableStatCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the TableStatMutation object of the builder.
func (_c *TableStatCreate) Mutation() *TableStatMutation {
	return _c.mutation
}

// Save creates the TableStat in the database.
func (_c *TableStatCreate) Save(ctx context.Context) (*TableStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TableStatCreate) SaveX(ctx context.Context) *TableStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TableStatCreate) defaults() {
	if _, ok := _c.mutation.TotalProblems(); !ok {
		v := tablestat.DefaultTotalProblems
		_c.mutation.SetTotalProblems(v)
	}
	if _, ok := _c.mutation.CorrectProblems(); !ok {
		v := tablestat.DefaultCorrectProblems
		_c.mutation.SetCorrectProblems(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := tablestat.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TableStatCreate) check() error {
	if _, ok := _c.mutation.Table(); !ok {
		return &ValidationError{Name: "table", err: errors.New(`ent: missing required field "TableStat.table"`)}
	}
	if v, ok := _c.mutation.Table(); ok {
		if err := tablestat.TableValidator(v); err != nil {
			return &ValidationError{Name: "table", err: fmt.Errorf(`ent: validator failed for field "TableStat.table": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalProblems(); !ok {
		return &ValidationError{Name: "total_problems", err: errors.New(`ent: missing required field "TableStat.total_problems"`)}
	}
	if v, ok := _c.mutation.TotalProblems(); ok {
		if err := tablestat.TotalProblemsValidator(v); err != nil {
			return &ValidationError{Name: "total_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.total_problems": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectProblems(); !ok {
		return &ValidationError{Name: "correct_problems", err: errors.New(`ent: missing required field "TableStat.correct_problems"`)}
	}
	if v, ok := _c.mutation.CorrectProblems(); ok {
		if err := tablestat.CorrectProblemsValidator(v); err != nil {
			return &ValidationError{Name: "correct_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.correct_problems": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "TableStat.last_updated"`)}
	}
	return nil
}

func (_c *TableStatCreate) sqlSave(ctx context.Context) (*TableStat, error) {
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

func (_c *TableStatCreate) createSpec() (*TableStat, *sqlgraph.CreateSpec) {
	var (
		_node = &TableStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tablestat.Table, sqlgraph.NewFieldSpec(tablestat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Table(); ok {
		_spec.SetField(tablestat.FieldTable, field.TypeInt, value)
		_node.Table = value
	}
	if value, ok := _c.mutation.TotalProblems(); ok {
		_spec.SetField(tablestat.FieldTotalProblems, field.TypeInt, value)
		_node.TotalProblems = value
	}
	if value, ok := _c.mutation.CorrectProblems(); ok {
		_spec.SetField(tablestat.FieldCorrectProblems, field.TypeInt, value)
		_node.CorrectProblems = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(tablestat.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// TableStatCreateBulk is the builder for creating many TableStat entities in bulk.
type TableStatCreateBulk struct {
	config
	err      error
	builders []*TableStatCreate
}

// Save creates the TableStat entities in the database.
func (_c *TableStatCreateBulk) Save(ctx context.Context) ([]*TableStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TableStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TableStatMutation)
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
func (_c *TableStatCreateBulk) SaveX(ctx context.Context) []*TableStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
