// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
)

// WebhookDeliveryCreate is the builder for creating a WebhookDelivery entity.
type WebhookDeliveryCreate struct {
	config
	mutation *WebhookDeliveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWebhookID sets the "webhook_id" field.
func (_c *WebhookDeliveryCreate) SetWebhookID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetWebhookID(v)
	return _c
}

// SetEvent sets the "event" field.
func (_c *WebhookDeliveryCreate) SetEvent(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WebhookDeliveryCreate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *WebhookDeliveryCreate) SetAttempts(v int) *WebhookDeliveryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAttempts(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *WebhookDeliveryCreate) SetMaxAttempts(v int) *WebhookDeliveryCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableMaxAttempts(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *WebhookDeliveryCreate) SetNextRetryAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetResponseCode sets the "response_code" field.
func (_c *WebhookDeliveryCreate) SetResponseCode(v int) *WebhookDeliveryCreate {
	_c.mutation.SetResponseCode(v)
	return _c
}

// SetNillableResponseCode sets the "response_code" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableResponseCode(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetResponseCode(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookDeliveryCreate) SetPayload(v map[string]interface{}) *WebhookDeliveryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryCreate) SetCreatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookDeliveryCreate) SetUpdatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableUpdatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookDeliveryCreate) SetID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWebhook sets the "webhook" edge to the Webhook entity.
func (_c *WebhookDeliveryCreate) SetWebhook(v *Webhook) *WebhookDeliveryCreate {
	return _c.SetWebhookID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_c *WebhookDeliveryCreate) Mutation() *WebhookDeliveryMutation {
	return _c.mutation
}

// Save creates the WebhookDelivery in the database.
func (_c *WebhookDeliveryCreate) Save(ctx context.Context) (*WebhookDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryCreate) SaveX(ctx context.Context) *WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := webhookdelivery.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := webhookdelivery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := webhookdelivery.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryCreate) check() error {
	if _, ok := _c.mutation.WebhookID(); !ok {
		return &ValidationError{Name: "webhook_id", err: errors.New(`ent: missing required field "WebhookDelivery.webhook_id"`)}
	}
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "WebhookDelivery.event"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WebhookDelivery.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "WebhookDelivery.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "WebhookDelivery.max_attempts"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookDelivery.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDelivery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookDelivery.updated_at"`)}
	}
	if len(_c.mutation.WebhookIDs()) == 0 {
		return &ValidationError{Name: "webhook", err: errors.New(`ent: missing required edge "WebhookDelivery.webhook"`)}
	}
	return nil
}

func (_c *WebhookDeliveryCreate) sqlSave(ctx context.Context) (*WebhookDelivery, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WebhookDelivery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookDeliveryCreate) createSpec() (*WebhookDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdelivery.Table, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(webhookdelivery.FieldEvent, field.TypeString, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookdelivery.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.ResponseCode(); ok {
		_spec.SetField(webhookdelivery.FieldResponseCode, field.TypeInt, value)
		_node.ResponseCode = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WebhookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.WebhookTable,
			Columns: []string{webhookdelivery.WebhookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WebhookID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.Create().
//		SetWebhookID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetWebhookID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertOne {
	_c.conflict = opts
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

type (
	// WebhookDeliveryUpsertOne is the builder for "upsert"-ing
	//  one WebhookDelivery node.
	WebhookDeliveryUpsertOne struct {
		create *WebhookDeliveryCreate
	}

	// WebhookDeliveryUpsert is the "OnConflict" setter.
	WebhookDeliveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsert) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateStatus() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsert) SetAttempts(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAttempts() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsert) AddAttempts(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookDeliveryUpsert) SetMaxAttempts(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateMaxAttempts() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookDeliveryUpsert) AddMaxAttempts(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldMaxAttempts, v)
	return u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *WebhookDeliveryUpsert) SetNextRetryAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldNextRetryAt, v)
	return u
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateNextRetryAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldNextRetryAt)
	return u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *WebhookDeliveryUpsert) ClearNextRetryAt() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldNextRetryAt)
	return u
}

// SetResponseCode sets the "response_code" field.
func (u *WebhookDeliveryUpsert) SetResponseCode(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldResponseCode, v)
	return u
}

// UpdateResponseCode sets the "response_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateResponseCode() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldResponseCode)
	return u
}

// AddResponseCode adds v to the "response_code" field.
func (u *WebhookDeliveryUpsert) AddResponseCode(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldResponseCode, v)
	return u
}

// ClearResponseCode clears the value of the "response_code" field.
func (u *WebhookDeliveryUpsert) ClearResponseCode() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldResponseCode)
	return u
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsert) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdatePayload() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsert) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateUpdatedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertOne) UpdateNewValues() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookdelivery.FieldID)
		}
		if _, exists := u.create.mutation.WebhookID(); exists {
			s.SetIgnore(webhookdelivery.FieldWebhookID)
		}
		if _, exists := u.create.mutation.Event(); exists {
			s.SetIgnore(webhookdelivery.FieldEvent)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(webhookdelivery.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookDeliveryUpsertOne) Ignore() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertOne) DoNothing() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreate.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertOne) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateStatus() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertOne) SetAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertOne) AddAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAttempts() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookDeliveryUpsertOne) SetMaxAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookDeliveryUpsertOne) AddMaxAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateMaxAttempts() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *WebhookDeliveryUpsertOne) SetNextRetryAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateNextRetryAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *WebhookDeliveryUpsertOne) ClearNextRetryAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetResponseCode sets the "response_code" field.
func (u *WebhookDeliveryUpsertOne) SetResponseCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetResponseCode(v)
	})
}

// AddResponseCode adds v to the "response_code" field.
func (u *WebhookDeliveryUpsertOne) AddResponseCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddResponseCode(v)
	})
}

// UpdateResponseCode sets the "response_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateResponseCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateResponseCode()
	})
}

// ClearResponseCode clears the value of the "response_code" field.
func (u *WebhookDeliveryUpsertOne) ClearResponseCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearResponseCode()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertOne) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdatePayload() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateUpdatedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookDeliveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookDeliveryUpsertOne.ID is not supported by MySQL driver. Use WebhookDeliveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookDeliveryCreateBulk is the builder for creating many WebhookDelivery entities in bulk.
type WebhookDeliveryCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookDelivery entities in the database.
func (_c *WebhookDeliveryCreateBulk) Save(ctx context.Context) ([]*WebhookDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *WebhookDeliveryCreateBulk) SaveX(ctx context.Context) []*WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetWebhookID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertBulk {
	_c.conflict = opts
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// WebhookDeliveryUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookDelivery nodes.
type WebhookDeliveryUpsertBulk struct {
	create *WebhookDeliveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) UpdateNewValues() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookdelivery.FieldID)
			}
			if _, exists := b.mutation.WebhookID(); exists {
				s.SetIgnore(webhookdelivery.FieldWebhookID)
			}
			if _, exists := b.mutation.Event(); exists {
				s.SetIgnore(webhookdelivery.FieldEvent)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(webhookdelivery.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) Ignore() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertBulk) DoNothing() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertBulk) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertBulk) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateStatus() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) SetAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) AddAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAttempts() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookDeliveryUpsertBulk) SetMaxAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookDeliveryUpsertBulk) AddMaxAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateMaxAttempts() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *WebhookDeliveryUpsertBulk) SetNextRetryAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateNextRetryAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *WebhookDeliveryUpsertBulk) ClearNextRetryAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetResponseCode sets the "response_code" field.
func (u *WebhookDeliveryUpsertBulk) SetResponseCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetResponseCode(v)
	})
}

// AddResponseCode adds v to the "response_code" field.
func (u *WebhookDeliveryUpsertBulk) AddResponseCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddResponseCode(v)
	})
}

// UpdateResponseCode sets the "response_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateResponseCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateResponseCode()
	})
}

// ClearResponseCode clears the value of the "response_code" field.
func (u *WebhookDeliveryUpsertBulk) ClearResponseCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearResponseCode()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertBulk) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdatePayload() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertBulk) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateUpdatedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookDeliveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
