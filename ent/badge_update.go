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
	"github.com/kukulab/kuku/ent/badge"
	"github.com/kukulab/kuku/ent/predicate"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBadgeType sets the "badge_type" field.
func (_u *BadgeUpdate) SetBadgeType(v string) *BadgeUpdate {
	_u.mutation.SetBadgeType(v)
	return _u
}

// SetNillableBadgeType sets the "badge_type" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableBadgeType(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetBadgeType(*v)
	}
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *BadgeUpdate) SetEarnedAt(v time.Time) *BadgeUpdate {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableEarnedAt(v *time.Time) *BadgeUpdate {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// SetIsNew sets the "is_new" field.
func (_u *BadgeUpdate) SetIsNew(v bool) *BadgeUpdate {
	_u.mutation.SetIsNew(v)
	return _u
}

// SetNillableIsNew sets the "is_new" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableIsNew(v *bool) *BadgeUpdate {
	if v != nil {
		_u.SetIsNew(*v)
	}
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdate) Mutation() *BadgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdate) check() error {
	if v, ok := _u.mutation.BadgeType(); ok {
		if err := badge.BadgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "badge_type", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BadgeType(); ok {
		_spec.SetField(badge.FieldBadgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(badge.FieldEarnedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsNew(); ok {
		_spec.SetField(badge.FieldIsNew, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetBadgeType sets the "badge_type" field.
func (_u *BadgeUpdateOne) SetBadgeType(v string) *BadgeUpdateOne {
	_u.mutation.SetBadgeType(v)
	return _u
}

// SetNillableBadgeType sets the "badge_type" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableBadgeType(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetBadgeType(*v)
	}
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *BadgeUpdateOne) SetEarnedAt(v time.Time) *BadgeUpdateOne {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableEarnedAt(v *time.Time) *BadgeUpdateOne {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// SetIsNew sets the "is_new" field.
func (_u *BadgeUpdateOne) SetIsNew(v bool) *BadgeUpdateOne {
	_u.mutation.SetIsNew(v)
	return _u
}

// SetNillableIsNew sets the "is_new" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableIsNew(v *bool) *BadgeUpdateOne {
	if v != nil {
		_u.SetIsNew(*v)
	}
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdateOne) Mutation() *BadgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Badge entity.
func (_u *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdateOne) check() error {
	if v, ok := _u.mutation.BadgeType(); ok {
		if err := badge.BadgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "badge_type", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
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
	if value, ok := _u.mutation.BadgeType(); ok {
		_spec.SetField(badge.FieldBadgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(badge.FieldEarnedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsNew(); ok {
		_spec.SetField(badge.FieldIsNew, field.TypeBool, value)
	}
	_node = &Badge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
