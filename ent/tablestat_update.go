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
	"github.com/kukulab/kuku/ent/predicate"
	"github.com/kukulab/kuku/ent/tablestat"
)

// TableStatUpdate is the builder for updating TableStat entities.
type TableStatUpdate struct {
	config
	hooks    []Hook
	mutation *TableStatMutation
}

// Where appends a list predicates to the TableStatUpdate builder.
func (_u *TableStatUpdate) Where(ps ...predicate.TableStat) *TableStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTable sets the "table" field.
func (_u *TableStatUpdate) SetTable(v int) *TableStatUpdate {
	_u.mutation.ResetTable()
	_u.mutation.SetTable(v)
	return _u
}

// SetNillableTable sets the "table" field if the given value is not nil.
func (_u *TableStatUpdate) SetNillableTable(v *int) *TableStatUpdate {
	if v != nil {
		_u.SetTable(*v)
	}
	return _u
}

// AddTable adds value to the "table" field.
func (_u *TableStatUpdate) AddTable(v int) *TableStatUpdate {
	_u.mutation.AddTable(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *TableStatUpdate) SetTotalProblems(v int) *TableStatUpdate {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *TableStatUpdate) SetNillableTotalProblems(v *int) *TableStatUpdate {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *TableStatUpdate) AddTotalProblems(v int) *TableStatUpdate {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetCorrectProblems sets the "correct_problems" field.
func (_u *TableStatUpdate) SetCorrectProblems(v int) *TableStatUpdate {
	_u.mutation.ResetCorrectProblems()
	_u.mutation.SetCorrectProblems(v)
	return _u
}

// SetNillableCorrectProblems sets the "correct_problems" field if the given value is not nil.
func (_u *TableStatUpdate) SetNillableCorrectProblems(v *int) *TableStatUpdate {
	if v != nil {
		_u.SetCorrectProblems(*v)
	}
	return _u
}

// AddCorrectProblems adds value to the "correct_problems" field.
func (_u *TableStatUpdate) AddCorrectProblems(v int) *TableStatUpdate {
	_u.mutation.AddCorrectProblems(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TableStatUpdate) SetLastUpdated(v time.Time) *TableStatUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TableStatMutation object of the builder.
func (_u *TableStatUpdate) Mutation() *TableStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TableStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TableStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableStatUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := tablestat.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableStatUpdate) check() error {
	if v, ok := _u.mutation.Table(); ok {
		if err := tablestat.TableValidator(v); err != nil {
			return &ValidationError{Name: "table", err: fmt.Errorf(`ent: validator failed for field "TableStat.table": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalProblems(); ok {
		if err := tablestat.TotalProblemsValidator(v); err != nil {
			return &ValidationError{Name: "total_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.total_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectProblems(); ok {
		if err := tablestat.CorrectProblemsValidator(v); err != nil {
			return &ValidationError{Name: "correct_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.correct_problems": %w`, err)}
		}
	}
	return nil
}

func (_u *TableStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tablestat.Table, tablestat.Columns, sqlgraph.NewFieldSpec(tablestat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Table(); ok {
		_spec.SetField(tablestat.FieldTable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTable(); ok {
		_spec.AddField(tablestat.FieldTable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(tablestat.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(tablestat.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectProblems(); ok {
		_spec.SetField(tablestat.FieldCorrectProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectProblems(); ok {
		_spec.AddField(tablestat.FieldCorrectProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(tablestat.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tablestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TableStatUpdateOne is the builder for updating a single TableStat entity.
type TableStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TableStatMutation
}

// SetTable sets the "table" field.
func (_u *TableStatUpdateOne) SetTable(v int) *TableStatUpdateOne {
	_u.mutation.ResetTable()
	_u.mutation.SetTable(v)
	return _u
}

// SetNillableTable sets the "table" field if the given value is not nil.
func (_u *TableStatUpdateOne) SetNillableTable(v *int) *TableStatUpdateOne {
	if v != nil {
		_u.SetTable(*v)
	}
	return _u
}

// AddTable adds value to the "table" field.
func (_u *TableStatUpdateOne) AddTable(v int) *TableStatUpdateOne {
	_u.mutation.AddTable(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *TableStatUpdateOne) SetTotalProblems(v int) *TableStatUpdateOne {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *TableStatUpdateOne) SetNillableTotalProblems(v *int) *TableStatUpdateOne {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *TableStatUpdateOne) AddTotalProblems(v int) *TableStatUpdateOne {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetCorrectProblems sets the "correct_problems" field.
func (_u *TableStatUpdateOne) SetCorrectProblems(v int) *TableStatUpdateOne {
	_u.mutation.ResetCorrectProblems()
	_u.mutation.SetCorrectProblems(v)
	return _u
}

// SetNillableCorrectProblems sets the "correct_problems" field if the given value is not nil.
func (_u *TableStatUpdateOne) SetNillableCorrectProblems(v *int) *TableStatUpdateOne {
	if v != nil {
		_u.SetCorrectProblems(*v)
	}
	return _u
}

// AddCorrectProblems adds value to the "correct_problems" field.
func (_u *TableStatUpdateOne) AddCorrectProblems(v int) *TableStatUpdateOne {
	_u.mutation.AddCorrectProblems(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TableStatUpdateOne) SetLastUpdated(v time.Time) *TableStatUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TableStatMutation object of the builder.
func (_u *TableStatUpdateOne) Mutation() *TableStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the TableStatUpdate builder.
func (_u *TableStatUpdateOne) Where(ps ...predicate.TableStat) *TableStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TableStatUpdateOne) Select(field string, fields ...string) *TableStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TableStat entity.
func (_u *TableStatUpdateOne) Save(ctx context.Context) (*TableStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableStatUpdateOne) SaveX(ctx context.Context) *TableStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TableStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableStatUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := tablestat.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableStatUpdateOne) check() error {
	if v, ok := _u.mutation.Table(); ok {
		if err := tablestat.TableValidator(v); err != nil {
			return &ValidationError{Name: "table", err: fmt.Errorf(`ent: validator failed for field "TableStat.table": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalProblems(); ok {
		if err := tablestat.TotalProblemsValidator(v); err != nil {
			return &ValidationError{Name: "total_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.total_problems": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectProblems(); ok {
		if err := tablestat.CorrectProblemsValidator(v); err != nil {
			return &ValidationError{Name: "correct_problems", err: fmt.Errorf(`ent: validator failed for field "TableStat.correct_problems": %w`, err)}
		}
	}
	return nil
}

func (_u *TableStatUpdateOne) sqlSave(ctx context.Context) (_node *TableStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tablestat.Table, tablestat.Columns, sqlgraph.NewFieldSpec(tablestat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TableStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tablestat.FieldID)
		for _, f := range fields {
			if !tablestat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tablestat.FieldID {
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
	if value, ok := _u.mutation.Table(); ok {
		_spec.SetField(tablestat.FieldTable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTable(); ok {
		_spec.AddField(tablestat.FieldTable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(tablestat.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(tablestat.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectProblems(); ok {
		_spec.SetField(tablestat.FieldCorrectProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectProblems(); ok {
		_spec.AddField(tablestat.FieldCorrectProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(tablestat.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &TableStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tablestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
