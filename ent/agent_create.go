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
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExternalID sets the "external_id" field.
func (_c *AgentCreate) SetExternalID(v string) *AgentCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *AgentCreate) SetDisplayName(v string) *AgentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetEndpointURL sets the "endpoint_url" field.
func (_c *AgentCreate) SetEndpointURL(v string) *AgentCreate {
	_c.mutation.SetEndpointURL(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_c *AgentCreate) SetMaxConcurrent(v int) *AgentCreate {
	_c.mutation.SetMaxConcurrent(v)
	return _c
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaxConcurrent(v *int) *AgentCreate {
	if v != nil {
		_c.SetMaxConcurrent(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWsConnected sets the "ws_connected" field.
func (_c *AgentCreate) SetWsConnected(v bool) *AgentCreate {
	_c.mutation.SetWsConnected(v)
	return _c
}

// SetNillableWsConnected sets the "ws_connected" field if the given value is not nil.
func (_c *AgentCreate) SetNillableWsConnected(v *bool) *AgentCreate {
	if v != nil {
		_c.SetWsConnected(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentCreate) SetLastHeartbeat(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeat(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *AgentCreate) SetTeamID(v string) *AgentCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTeamID(v *string) *AgentCreate {
	if v != nil {
		_c.SetTeamID(*v)
	}
	return _c
}

// SetRegisteredBy sets the "registered_by" field.
func (_c *AgentCreate) SetRegisteredBy(v string) *AgentCreate {
	_c.mutation.SetRegisteredBy(v)
	return _c
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (_c *AgentCreate) SetAuthSecretHash(v string) *AgentCreate {
	_c.mutation.SetAuthSecretHash(v)
	return _c
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (_c *AgentCreate) SetAuthSecretCiphertext(v string) *AgentCreate {
	_c.mutation.SetAuthSecretCiphertext(v)
	return _c
}

// SetNillableAuthSecretCiphertext sets the "auth_secret_ciphertext" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAuthSecretCiphertext(v *string) *AgentCreate {
	if v != nil {
		_c.SetAuthSecretCiphertext(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AgentCreate) SetDeletedAt(v time.Time) *AgentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDeletedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVersionIDs adds the "versions" edge to the AgentVersion entity by IDs.
func (_c *AgentCreate) AddVersionIDs(ids ...string) *AgentCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the AgentVersion entity.
func (_c *AgentCreate) AddVersions(v ...*AgentVersion) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Capabilities(); !ok {
		v := agent.DefaultCapabilities
		_c.mutation.SetCapabilities(v)
	}
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		v := agent.DefaultMaxConcurrent
		_c.mutation.SetMaxConcurrent(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.WsConnected(); !ok {
		v := agent.DefaultWsConnected
		_c.mutation.SetWsConnected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Agent.external_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Agent.display_name"`)}
	}
	if _, ok := _c.mutation.EndpointURL(); !ok {
		return &ValidationError{Name: "endpoint_url", err: errors.New(`ent: missing required field "Agent.endpoint_url"`)}
	}
	if _, ok := _c.mutation.Capabilities(); !ok {
		return &ValidationError{Name: "capabilities", err: errors.New(`ent: missing required field "Agent.capabilities"`)}
	}
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		return &ValidationError{Name: "max_concurrent", err: errors.New(`ent: missing required field "Agent.max_concurrent"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WsConnected(); !ok {
		return &ValidationError{Name: "ws_connected", err: errors.New(`ent: missing required field "Agent.ws_connected"`)}
	}
	if _, ok := _c.mutation.RegisteredBy(); !ok {
		return &ValidationError{Name: "registered_by", err: errors.New(`ent: missing required field "Agent.registered_by"`)}
	}
	if _, ok := _c.mutation.AuthSecretHash(); !ok {
		return &ValidationError{Name: "auth_secret_hash", err: errors.New(`ent: missing required field "Agent.auth_secret_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(agent.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.EndpointURL(); ok {
		_spec.SetField(agent.FieldEndpointURL, field.TypeString, value)
		_node.EndpointURL = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.MaxConcurrent(); ok {
		_spec.SetField(agent.FieldMaxConcurrent, field.TypeInt, value)
		_node.MaxConcurrent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WsConnected(); ok {
		_spec.SetField(agent.FieldWsConnected, field.TypeBool, value)
		_node.WsConnected = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(agent.FieldTeamID, field.TypeString, value)
		_node.TeamID = &value
	}
	if value, ok := _c.mutation.RegisteredBy(); ok {
		_spec.SetField(agent.FieldRegisteredBy, field.TypeString, value)
		_node.RegisteredBy = value
	}
	if value, ok := _c.mutation.AuthSecretHash(); ok {
		_spec.SetField(agent.FieldAuthSecretHash, field.TypeString, value)
		_node.AuthSecretHash = value
	}
	if value, ok := _c.mutation.AuthSecretCiphertext(); ok {
		_spec.SetField(agent.FieldAuthSecretCiphertext, field.TypeString, value)
		_node.AuthSecretCiphertext = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(agent.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.VersionsTable,
			Columns: []string{agent.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentversion.FieldID, field.TypeString),
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
//	client.Agent.Create().
//		SetExternalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetExternalID sets the "external_id" field.
func (u *AgentUpsert) SetExternalID(v string) *AgentUpsert {
	u.Set(agent.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateExternalID() *AgentUpsert {
	u.SetExcluded(agent.FieldExternalID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *AgentUpsert) SetDisplayName(v string) *AgentUpsert {
	u.Set(agent.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDisplayName() *AgentUpsert {
	u.SetExcluded(agent.FieldDisplayName)
	return u
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *AgentUpsert) SetEndpointURL(v string) *AgentUpsert {
	u.Set(agent.FieldEndpointURL, v)
	return u
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *AgentUpsert) UpdateEndpointURL() *AgentUpsert {
	u.SetExcluded(agent.FieldEndpointURL)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsert) SetCapabilities(v []string) *AgentUpsert {
	u.Set(agent.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapabilities() *AgentUpsert {
	u.SetExcluded(agent.FieldCapabilities)
	return u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *AgentUpsert) SetMaxConcurrent(v int) *AgentUpsert {
	u.Set(agent.FieldMaxConcurrent, v)
	return u
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *AgentUpsert) UpdateMaxConcurrent() *AgentUpsert {
	u.SetExcluded(agent.FieldMaxConcurrent)
	return u
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *AgentUpsert) AddMaxConcurrent(v int) *AgentUpsert {
	u.Add(agent.FieldMaxConcurrent, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetWsConnected sets the "ws_connected" field.
func (u *AgentUpsert) SetWsConnected(v bool) *AgentUpsert {
	u.Set(agent.FieldWsConnected, v)
	return u
}

// UpdateWsConnected sets the "ws_connected" field to the value that was provided on create.
func (u *AgentUpsert) UpdateWsConnected() *AgentUpsert {
	u.SetExcluded(agent.FieldWsConnected)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsert) SetLastHeartbeat(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastHeartbeat() *AgentUpsert {
	u.SetExcluded(agent.FieldLastHeartbeat)
	return u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsert) ClearLastHeartbeat() *AgentUpsert {
	u.SetNull(agent.FieldLastHeartbeat)
	return u
}

// SetTeamID sets the "team_id" field.
func (u *AgentUpsert) SetTeamID(v string) *AgentUpsert {
	u.Set(agent.FieldTeamID, v)
	return u
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTeamID() *AgentUpsert {
	u.SetExcluded(agent.FieldTeamID)
	return u
}

// ClearTeamID clears the value of the "team_id" field.
func (u *AgentUpsert) ClearTeamID() *AgentUpsert {
	u.SetNull(agent.FieldTeamID)
	return u
}

// SetRegisteredBy sets the "registered_by" field.
func (u *AgentUpsert) SetRegisteredBy(v string) *AgentUpsert {
	u.Set(agent.FieldRegisteredBy, v)
	return u
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *AgentUpsert) UpdateRegisteredBy() *AgentUpsert {
	u.SetExcluded(agent.FieldRegisteredBy)
	return u
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (u *AgentUpsert) SetAuthSecretHash(v string) *AgentUpsert {
	u.Set(agent.FieldAuthSecretHash, v)
	return u
}

// UpdateAuthSecretHash sets the "auth_secret_hash" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAuthSecretHash() *AgentUpsert {
	u.SetExcluded(agent.FieldAuthSecretHash)
	return u
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (u *AgentUpsert) SetAuthSecretCiphertext(v string) *AgentUpsert {
	u.Set(agent.FieldAuthSecretCiphertext, v)
	return u
}

// UpdateAuthSecretCiphertext sets the "auth_secret_ciphertext" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAuthSecretCiphertext() *AgentUpsert {
	u.SetExcluded(agent.FieldAuthSecretCiphertext)
	return u
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (u *AgentUpsert) ClearAuthSecretCiphertext() *AgentUpsert {
	u.SetNull(agent.FieldAuthSecretCiphertext)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsert) SetDeletedAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDeletedAt() *AgentUpsert {
	u.SetExcluded(agent.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsert) ClearDeletedAt() *AgentUpsert {
	u.SetNull(agent.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *AgentUpsertOne) SetExternalID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateExternalID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateExternalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AgentUpsertOne) SetDisplayName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDisplayName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *AgentUpsertOne) SetEndpointURL(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateEndpointURL() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEndpointURL()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertOne) SetCapabilities(v []string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *AgentUpsertOne) SetMaxConcurrent(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetMaxConcurrent(v)
	})
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *AgentUpsertOne) AddMaxConcurrent(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddMaxConcurrent(v)
	})
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateMaxConcurrent() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMaxConcurrent()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetWsConnected sets the "ws_connected" field.
func (u *AgentUpsertOne) SetWsConnected(v bool) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetWsConnected(v)
	})
}

// UpdateWsConnected sets the "ws_connected" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateWsConnected() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateWsConnected()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertOne) SetLastHeartbeat(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsertOne) ClearLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeat()
	})
}

// SetTeamID sets the "team_id" field.
func (u *AgentUpsertOne) SetTeamID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTeamID(v)
	})
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTeamID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTeamID()
	})
}

// ClearTeamID clears the value of the "team_id" field.
func (u *AgentUpsertOne) ClearTeamID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearTeamID()
	})
}

// SetRegisteredBy sets the "registered_by" field.
func (u *AgentUpsertOne) SetRegisteredBy(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetRegisteredBy(v)
	})
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateRegisteredBy() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRegisteredBy()
	})
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (u *AgentUpsertOne) SetAuthSecretHash(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAuthSecretHash(v)
	})
}

// UpdateAuthSecretHash sets the "auth_secret_hash" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAuthSecretHash() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAuthSecretHash()
	})
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (u *AgentUpsertOne) SetAuthSecretCiphertext(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAuthSecretCiphertext(v)
	})
}

// UpdateAuthSecretCiphertext sets the "auth_secret_ciphertext" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAuthSecretCiphertext() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAuthSecretCiphertext()
	})
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (u *AgentUpsertOne) ClearAuthSecretCiphertext() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAuthSecretCiphertext()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsertOne) SetDeletedAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDeletedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsertOne) ClearDeletedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *AgentUpsertBulk) SetExternalID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateExternalID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateExternalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AgentUpsertBulk) SetDisplayName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDisplayName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *AgentUpsertBulk) SetEndpointURL(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateEndpointURL() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEndpointURL()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertBulk) SetCapabilities(v []string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *AgentUpsertBulk) SetMaxConcurrent(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetMaxConcurrent(v)
	})
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *AgentUpsertBulk) AddMaxConcurrent(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddMaxConcurrent(v)
	})
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateMaxConcurrent() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMaxConcurrent()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetWsConnected sets the "ws_connected" field.
func (u *AgentUpsertBulk) SetWsConnected(v bool) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetWsConnected(v)
	})
}

// UpdateWsConnected sets the "ws_connected" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateWsConnected() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateWsConnected()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertBulk) SetLastHeartbeat(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsertBulk) ClearLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeat()
	})
}

// SetTeamID sets the "team_id" field.
func (u *AgentUpsertBulk) SetTeamID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTeamID(v)
	})
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTeamID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTeamID()
	})
}

// ClearTeamID clears the value of the "team_id" field.
func (u *AgentUpsertBulk) ClearTeamID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearTeamID()
	})
}

// SetRegisteredBy sets the "registered_by" field.
func (u *AgentUpsertBulk) SetRegisteredBy(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetRegisteredBy(v)
	})
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateRegisteredBy() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRegisteredBy()
	})
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (u *AgentUpsertBulk) SetAuthSecretHash(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAuthSecretHash(v)
	})
}

// UpdateAuthSecretHash sets the "auth_secret_hash" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAuthSecretHash() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAuthSecretHash()
	})
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (u *AgentUpsertBulk) SetAuthSecretCiphertext(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAuthSecretCiphertext(v)
	})
}

// UpdateAuthSecretCiphertext sets the "auth_secret_ciphertext" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAuthSecretCiphertext() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAuthSecretCiphertext()
	})
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (u *AgentUpsertBulk) ClearAuthSecretCiphertext() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAuthSecretCiphertext()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsertBulk) SetDeletedAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDeletedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsertBulk) ClearDeletedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
