// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kukulab/kuku/ent/pointevent"
)

// PointEventCreate is the builder for creating a PointEvent entity.
type PointEventCreate struct {
	config
	mutation *PointEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PointEventCreate) SetSequence(v int64) *PointEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PointEventCreate) SetTimestamp(v time.Time) *PointEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableTimestamp(v *time.Time) *PointEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *PointEventCreate) SetKind(v string) *PointEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PointEventCreate) SetAmount(v int) *PointEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *PointEventCreate) SetQuestionID(v string) *PointEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableQuestionID(v *string) *PointEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetBonus sets the "bonus" field.
func (_c *PointEventCreate) SetBonus(v bool) *PointEventCreate {
	_c.mutation.SetBonus(v)
	return _c
}

// SetNillableBonus sets the "bonus" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableBonus(v *bool) *PointEventCreate {
	if v != nil {
		_c.SetBonus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *PointEventCreate) SetReason(v string) *PointEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableReason(v *string) *PointEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// Mutation returns the PointEventMutation object of the builder.
func (_c *PointEventCreate) Mutation() *PointEventMutation {
	return _c.mutation
}

// Save creates the PointEvent in the database.
func (_c *PointEventCreate) Save(ctx context.Context) (*PointEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointEventCreate) SaveX(ctx context.Context) *PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pointevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Bonus(); !ok {
		v := pointevent.DefaultBonus
		_c.mutation.SetBonus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PointEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PointEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PointEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pointevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PointEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PointEvent.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := pointevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PointEvent.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bonus(); !ok {
		return &ValidationError{Name: "bonus", err: errors.New(`ent: missing required field "PointEvent.bonus"`)}
	}
	return nil
}

func (_c *PointEventCreate) sqlSave(ctx context.Context) (*PointEvent, error) {
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

func (_c *PointEventCreate) createSpec() (*PointEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PointEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointevent.Table, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pointevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pointevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pointevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(pointevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(pointevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = &value
	}
	if value, ok := _c.mutation.Bonus(); ok {
		_spec.SetField(pointevent.FieldBonus, field.TypeBool, value)
		_node.Bonus = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	return _node, _spec
}

// PointEventCreateBulk is the builder for creating many PointEvent entities in bulk.
type PointEventCreateBulk struct {
	config
	err      error
	builders []*PointEventCreate
}

// Save creates the PointEvent entities in the database.
func (_c *PointEventCreateBulk) Save(ctx context.Context) ([]*PointEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointEventMutation)
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
func (_c *PointEventCreateBulk) SaveX(ctx context.Context) []*PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
