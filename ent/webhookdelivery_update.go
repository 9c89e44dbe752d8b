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
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdate) SetAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAttempts(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdate) AddAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *WebhookDeliveryUpdate) SetMaxAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableMaxAttempts(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *WebhookDeliveryUpdate) AddMaxAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *WebhookDeliveryUpdate) SetNextRetryAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *WebhookDeliveryUpdate) ClearNextRetryAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetResponseCode sets the "response_code" field.
func (_u *WebhookDeliveryUpdate) SetResponseCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetResponseCode()
	_u.mutation.SetResponseCode(v)
	return _u
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableResponseCode(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetResponseCode(*v)
	}
	return _u
}

// AddResponseCode adds value to the "response_code" field.
func (_u *WebhookDeliveryUpdate) AddResponseCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddResponseCode(v)
	return _u
}

// ClearResponseCode clears the value of the "response_code" field.
func (_u *WebhookDeliveryUpdate) ClearResponseCode() *WebhookDeliveryUpdate {
	_u.mutation.ClearResponseCode()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdate) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdate) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.webhook"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookdelivery.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseCode(); ok {
		_spec.SetField(webhookdelivery.FieldResponseCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCode(); ok {
		_spec.AddField(webhookdelivery.FieldResponseCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldResponseCode, field.TypeInt)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdateOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) SetAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAttempts(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) AddAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *WebhookDeliveryUpdateOne) SetMaxAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableMaxAttempts(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *WebhookDeliveryUpdateOne) AddMaxAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *WebhookDeliveryUpdateOne) SetNextRetryAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearNextRetryAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetResponseCode sets the "response_code" field.
func (_u *WebhookDeliveryUpdateOne) SetResponseCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetResponseCode()
	_u.mutation.SetResponseCode(v)
	return _u
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableResponseCode(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetResponseCode(*v)
	}
	return _u
}

// AddResponseCode adds value to the "response_code" field.
func (_u *WebhookDeliveryUpdateOne) AddResponseCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddResponseCode(v)
	return _u
}

// ClearResponseCode clears the value of the "response_code" field.
func (_u *WebhookDeliveryUpdateOne) ClearResponseCode() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearResponseCode()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdateOne) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdateOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.webhook"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookdelivery.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseCode(); ok {
		_spec.SetField(webhookdelivery.FieldResponseCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCode(); ok {
		_spec.AddField(webhookdelivery.FieldResponseCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldResponseCode, field.TypeInt)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
