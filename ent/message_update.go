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
	"github.com/kukulab/kuku/ent/message"
	"github.com/kukulab/kuku/ent/predicate"
	"github.com/kukulab/kuku/ent/schema"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUUID sets the "uuid" field.
func (_u *MessageUpdate) SetUUID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableUUID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *MessageUpdate) SetSender(v string) *MessageUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSender(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetMsgType sets the "msg_type" field.
func (_u *MessageUpdate) SetMsgType(v string) *MessageUpdate {
	_u.mutation.SetMsgType(v)
	return _u
}

// SetNillableMsgType sets the "msg_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMsgType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMsgType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *MessageUpdate) SetIsRead(v bool) *MessageUpdate {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsRead(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetAchievementUUID sets the "achievement_uuid" field.
func (_u *MessageUpdate) SetAchievementUUID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetAchievementUUID(v)
	return _u
}

// SetNillableAchievementUUID sets the "achievement_uuid" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAchievementUUID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetAchievementUUID(*v)
	}
	return _u
}

// ClearAchievementUUID clears the value of the "achievement_uuid" field.
func (_u *MessageUpdate) ClearAchievementUUID() *MessageUpdate {
	_u.mutation.ClearAchievementUUID()
	return _u
}

// SetSession sets the "session" field.
func (_u *MessageUpdate) SetSession(v *schema.StudySession) *MessageUpdate {
	_u.mutation.SetSession(v)
	return _u
}

// ClearSession clears the value of the "session" field.
func (_u *MessageUpdate) ClearSession() *MessageUpdate {
	_u.mutation.ClearSession()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageUpdate) SetSentAt(v time.Time) *MessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSentAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Sender(); ok {
		if err := message.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "Message.sender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsgType(); ok {
		if err := message.MsgTypeValidator(v); err != nil {
			return &ValidationError{Name: "msg_type", err: fmt.Errorf(`ent: validator failed for field "Message.msg_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Message.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UUID(); ok {
		_spec.SetField(message.FieldUUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(message.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.MsgType(); ok {
		_spec.SetField(message.FieldMsgType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(message.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AchievementUUID(); ok {
		_spec.SetField(message.FieldAchievementUUID, field.TypeUUID, value)
	}
	if _u.mutation.AchievementUUIDCleared() {
		_spec.ClearField(message.FieldAchievementUUID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Session(); ok {
		_spec.SetField(message.FieldSession, field.TypeJSON, value)
	}
	if _u.mutation.SessionCleared() {
		_spec.ClearField(message.FieldSession, field.TypeJSON)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(message.FieldSentAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetUUID sets the "uuid" field.
func (_u *MessageUpdateOne) SetUUID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableUUID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *MessageUpdateOne) SetSender(v string) *MessageUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSender(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetMsgType sets the "msg_type" field.
func (_u *MessageUpdateOne) SetMsgType(v string) *MessageUpdateOne {
	_u.mutation.SetMsgType(v)
	return _u
}

// SetNillableMsgType sets the "msg_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMsgType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMsgType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *MessageUpdateOne) SetIsRead(v bool) *MessageUpdateOne {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsRead(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetAchievementUUID sets the "achievement_uuid" field.
func (_u *MessageUpdateOne) SetAchievementUUID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetAchievementUUID(v)
	return _u
}

// SetNillableAchievementUUID sets the "achievement_uuid" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAchievementUUID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetAchievementUUID(*v)
	}
	return _u
}

// ClearAchievementUUID clears the value of the "achievement_uuid" field.
func (_u *MessageUpdateOne) ClearAchievementUUID() *MessageUpdateOne {
	_u.mutation.ClearAchievementUUID()
	return _u
}

// SetSession sets the "session" field.
func (_u *MessageUpdateOne) SetSession(v *schema.StudySession) *MessageUpdateOne {
	_u.mutation.SetSession(v)
	return _u
}

// ClearSession clears the value of the "session" field.
func (_u *MessageUpdateOne) ClearSession() *MessageUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageUpdateOne) SetSentAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSentAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Sender(); ok {
		if err := message.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "Message.sender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsgType(); ok {
		if err := message.MsgTypeValidator(v); err != nil {
			return &ValidationError{Name: "msg_type", err: fmt.Errorf(`ent: validator failed for field "Message.msg_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Message.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
		_spec.SetField(message.FieldUUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(message.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.MsgType(); ok {
		_spec.SetField(message.FieldMsgType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(message.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AchievementUUID(); ok {
		_spec.SetField(message.FieldAchievementUUID, field.TypeUUID, value)
	}
	if _u.mutation.AchievementUUIDCleared() {
		_spec.ClearField(message.FieldAchievementUUID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Session(); ok {
		_spec.SetField(message.FieldSession, field.TypeJSON, value)
	}
	if _u.mutation.SessionCleared() {
		_spec.ClearField(message.FieldSession, field.TypeJSON)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(message.FieldSentAt, field.TypeTime, value)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
