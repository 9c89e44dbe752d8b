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

// WebhookCreate is the builder for creating a Webhook entity.
type WebhookCreate struct {
	config
	mutation *WebhookMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTeamID sets the "team_id" field.
func (_c *WebhookCreate) SetTeamID(v string) *WebhookCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookCreate) SetURL(v string) *WebhookCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetSecret sets the "secret" field.
func (_c *WebhookCreate) SetSecret(v string) *WebhookCreate {
	_c.mutation.SetSecret(v)
	return _c
}

// SetEvents sets the "events" field.
func (_c *WebhookCreate) SetEvents(v []string) *WebhookCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *WebhookCreate) SetActive(v bool) *WebhookCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableActive(v *bool) *WebhookCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookCreate) SetCreatedAt(v time.Time) *WebhookCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableCreatedAt(v *time.Time) *WebhookCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookCreate) SetID(v string) *WebhookCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_c *WebhookCreate) AddDeliveryIDs(ids ...string) *WebhookCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_c *WebhookCreate) AddDeliveries(v ...*WebhookDelivery) *WebhookCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_c *WebhookCreate) Mutation() *WebhookMutation {
	return _c.mutation
}

// Save creates the Webhook in the database.
func (_c *WebhookCreate) Save(ctx context.Context) (*Webhook, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookCreate) SaveX(ctx context.Context) *Webhook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookCreate) defaults() {
	if _, ok := _c.mutation.Events(); !ok {
		v := webhook.DefaultEvents
		_c.mutation.SetEvents(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := webhook.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhook.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Webhook.team_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Webhook.url"`)}
	}
	if _, ok := _c.mutation.Secret(); !ok {
		return &ValidationError{Name: "secret", err: errors.New(`ent: missing required field "Webhook.secret"`)}
	}
	if _, ok := _c.mutation.Events(); !ok {
		return &ValidationError{Name: "events", err: errors.New(`ent: missing required field "Webhook.events"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Webhook.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Webhook.created_at"`)}
	}
	return nil
}

func (_c *WebhookCreate) sqlSave(ctx context.Context) (*Webhook, error) {
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
			return nil, fmt.Errorf("unexpected Webhook.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookCreate) createSpec() (*Webhook, *sqlgraph.CreateSpec) {
	var (
		_node = &Webhook{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhook.Table, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(webhook.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Secret(); ok {
		_spec.SetField(webhook.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(webhook.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhook.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Webhook.Create().
//		SetTeamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookCreate) OnConflict(opts ...sql.ConflictOption) *WebhookUpsertOne {
	_c.conflict = opts
	return &WebhookUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Webhook.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookCreate) OnConflictColumns(columns ...string) *WebhookUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookUpsertOne{
		create: _c,
	}
}

type (
	// WebhookUpsertOne is the builder for "upsert"-ing
	//  one Webhook node.
	WebhookUpsertOne struct {
		create *WebhookCreate
	}

	// WebhookUpsert is the "OnConflict" setter.
	WebhookUpsert struct {
		*sql.UpdateSet
	}
)

// SetURL sets the "url" field.
func (u *WebhookUpsert) SetURL(v string) *WebhookUpsert {
	u.Set(webhook.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookUpsert) UpdateURL() *WebhookUpsert {
	u.SetExcluded(webhook.FieldURL)
	return u
}

// SetSecret sets the "secret" field.
func (u *WebhookUpsert) SetSecret(v string) *WebhookUpsert {
	u.Set(webhook.FieldSecret, v)
	return u
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookUpsert) UpdateSecret() *WebhookUpsert {
	u.SetExcluded(webhook.FieldSecret)
	return u
}

// SetEvents sets the "events" field.
func (u *WebhookUpsert) SetEvents(v []string) *WebhookUpsert {
	u.Set(webhook.FieldEvents, v)
	return u
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookUpsert) UpdateEvents() *WebhookUpsert {
	u.SetExcluded(webhook.FieldEvents)
	return u
}

// SetActive sets the "active" field.
func (u *WebhookUpsert) SetActive(v bool) *WebhookUpsert {
	u.Set(webhook.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookUpsert) UpdateActive() *WebhookUpsert {
	u.SetExcluded(webhook.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Webhook.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhook.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookUpsertOne) UpdateNewValues() *WebhookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhook.FieldID)
		}
		if _, exists := u.create.mutation.TeamID(); exists {
			s.SetIgnore(webhook.FieldTeamID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(webhook.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Webhook.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookUpsertOne) Ignore() *WebhookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookUpsertOne) DoNothing() *WebhookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookCreate.OnConflict
// documentation for more info.
func (u *WebhookUpsertOne) Update(set func(*WebhookUpsert)) *WebhookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *WebhookUpsertOne) SetURL(v string) *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookUpsertOne) UpdateURL() *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateURL()
	})
}

// SetSecret sets the "secret" field.
func (u *WebhookUpsertOne) SetSecret(v string) *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.SetSecret(v)
	})
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookUpsertOne) UpdateSecret() *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateSecret()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookUpsertOne) SetEvents(v []string) *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookUpsertOne) UpdateEvents() *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateEvents()
	})
}

// SetActive sets the "active" field.
func (u *WebhookUpsertOne) SetActive(v bool) *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookUpsertOne) UpdateActive() *WebhookUpsertOne {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WebhookUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookUpsertOne.ID is not supported by MySQL driver. Use WebhookUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookCreateBulk is the builder for creating many Webhook entities in bulk.
type WebhookCreateBulk struct {
	config
	err      error
	builders []*WebhookCreate
	conflict []sql.ConflictOption
}

// Save creates the Webhook entities in the database.
func (_c *WebhookCreateBulk) Save(ctx context.Context) ([]*Webhook, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Webhook, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookMutation)
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
func (_c *WebhookCreateBulk) SaveX(ctx context.Context) []*Webhook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Webhook.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookUpsertBulk {
	_c.conflict = opts
	return &WebhookUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Webhook.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookCreateBulk) OnConflictColumns(columns ...string) *WebhookUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookUpsertBulk{
		create: _c,
	}
}

// WebhookUpsertBulk is the builder for "upsert"-ing
// a bulk of Webhook nodes.
type WebhookUpsertBulk struct {
	create *WebhookCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Webhook.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhook.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookUpsertBulk) UpdateNewValues() *WebhookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhook.FieldID)
			}
			if _, exists := b.mutation.TeamID(); exists {
				s.SetIgnore(webhook.FieldTeamID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(webhook.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Webhook.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookUpsertBulk) Ignore() *WebhookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookUpsertBulk) DoNothing() *WebhookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookUpsertBulk) Update(set func(*WebhookUpsert)) *WebhookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *WebhookUpsertBulk) SetURL(v string) *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookUpsertBulk) UpdateURL() *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateURL()
	})
}

// SetSecret sets the "secret" field.
func (u *WebhookUpsertBulk) SetSecret(v string) *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.SetSecret(v)
	})
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookUpsertBulk) UpdateSecret() *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateSecret()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookUpsertBulk) SetEvents(v []string) *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookUpsertBulk) UpdateEvents() *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateEvents()
	})
}

// SetActive sets the "active" field.
func (u *WebhookUpsertBulk) SetActive(v bool) *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookUpsertBulk) UpdateActive() *WebhookUpsertBulk {
	return u.Update(func(s *WebhookUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WebhookUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
