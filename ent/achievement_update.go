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
	"github.com/google/uuid"
	"github.com/kukulab/kuku/ent/achievement"
	"github.com/kukulab/kuku/ent/predicate"
)

// AchievementUpdate is the builder for updating Achievement entities.
type AchievementUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementMutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdate) Where(ps ...predicate.Achievement) *AchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUUID sets the "uuid" field.
func (_u *AchievementUpdate) SetUUID(v uuid.UUID) *AchievementUpdate {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableUUID(v *uuid.UUID) *AchievementUpdate {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AchievementUpdate) SetType(v string) *AchievementUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableType(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AchievementUpdate) SetTitle(v string) *AchievementUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableTitle(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdate) SetDescription(v string) *AchievementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableDescription(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AchievementUpdate) SetMetadata(v map[string]string) *AchievementUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AchievementUpdate) ClearMetadata() *AchievementUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsSpecial sets the "is_special" field.
func (_u *AchievementUpdate) SetIsSpecial(v bool) *AchievementUpdate {
	_u.mutation.SetIsSpecial(v)
	return _u
}

// SetNillableIsSpecial sets the "is_special" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableIsSpecial(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetIsSpecial(*v)
	}
	return _u
}

// SetIsShared sets the "is_shared" field.
func (_u *AchievementUpdate) SetIsShared(v bool) *AchievementUpdate {
	_u.mutation.SetIsShared(v)
	return _u
}

// SetNillableIsShared sets the "is_shared" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableIsShared(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetIsShared(*v)
	}
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdate) SetEarnedAt(v time.Time) *AchievementUpdate {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEarnedAt(v *time.Time) *AchievementUpdate {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdate) Mutation() *AchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := achievement.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Achievement.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := achievement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Achievement.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := achievement.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Achievement.description": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UUID(); ok {
		_spec.SetField(achievement.FieldUUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(achievement.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(achievement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(achievement.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(achievement.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsSpecial(); ok {
		_spec.SetField(achievement.FieldIsSpecial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsShared(); ok {
		_spec.SetField(achievement.FieldIsShared, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUpdateOne is the builder for updating a single Achievement entity.
type AchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementMutation
}

// SetUUID sets the "uuid" field.
func (_u *AchievementUpdateOne) SetUUID(v uuid.UUID) *AchievementUpdateOne {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableUUID(v *uuid.UUID) *AchievementUpdateOne {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AchievementUpdateOne) SetType(v string) *AchievementUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableType(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AchievementUpdateOne) SetTitle(v string) *AchievementUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableTitle(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdateOne) SetDescription(v string) *AchievementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableDescription(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AchievementUpdateOne) SetMetadata(v map[string]string) *AchievementUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AchievementUpdateOne) ClearMetadata() *AchievementUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsSpecial sets the "is_special" field.
func (_u *AchievementUpdateOne) SetIsSpecial(v bool) *AchievementUpdateOne {
	_u.mutation.SetIsSpecial(v)
	return _u
}

// SetNillableIsSpecial sets the "is_special" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableIsSpecial(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetIsSpecial(*v)
	}
	return _u
}

// SetIsShared sets the "is_shared" field.
func (_u *AchievementUpdateOne) SetIsShared(v bool) *AchievementUpdateOne {
	_u.mutation.SetIsShared(v)
	return _u
}

// SetNillableIsShared sets the "is_shared" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableIsShared(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetIsShared(*v)
	}
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdateOne) SetEarnedAt(v time.Time) *AchievementUpdateOne {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEarnedAt(v *time.Time) *AchievementUpdateOne {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdateOne) Mutation() *AchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdateOne) Where(ps ...predicate.Achievement) *AchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUpdateOne) Select(field string, fields ...string) *AchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Achievement entity.
func (_u *AchievementUpdateOne) Save(ctx context.Context) (*Achievement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdateOne) SaveX(ctx context.Context) *Achievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := achievement.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Achievement.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := achievement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Achievement.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := achievement.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Achievement.description": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdateOne) sqlSave(ctx context.Context) (_node *Achievement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Achievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievement.FieldID)
		for _, f := range fields {
			if !achievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievement.FieldID {
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
	if value, ok := _u.mutation.UUID(); ok {
		_spec.SetField(achievement.FieldUUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(achievement.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(achievement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(achievement.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(achievement.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsSpecial(); ok {
		_spec.SetField(achievement.FieldIsSpecial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsShared(); ok {
		_spec.SetField(achievement.FieldIsShared, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	_node = &Achievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
