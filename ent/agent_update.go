// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *AgentUpdate) SetExternalID(v string) *AgentUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableExternalID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentUpdate) SetDisplayName(v string) *AgentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDisplayName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *AgentUpdate) SetEndpointURL(v string) *AgentUpdate {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEndpointURL(v *string) *AgentUpdate {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdate) SetCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdate) AppendCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *AgentUpdate) SetMaxConcurrent(v int) *AgentUpdate {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaxConcurrent(v *int) *AgentUpdate {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *AgentUpdate) AddMaxConcurrent(v int) *AgentUpdate {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWsConnected sets the "ws_connected" field.
func (_u *AgentUpdate) SetWsConnected(v bool) *AgentUpdate {
	_u.mutation.SetWsConnected(v)
	return _u
}

// SetNillableWsConnected sets the "ws_connected" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableWsConnected(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetWsConnected(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdate) SetLastHeartbeat(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeat(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdate) ClearLastHeartbeat() *AgentUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *AgentUpdate) SetTeamID(v string) *AgentUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTeamID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *AgentUpdate) ClearTeamID() *AgentUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetRegisteredBy sets the "registered_by" field.
func (_u *AgentUpdate) SetRegisteredBy(v string) *AgentUpdate {
	_u.mutation.SetRegisteredBy(v)
	return _u
}

// SetNillableRegisteredBy sets the "registered_by" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRegisteredBy(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRegisteredBy(*v)
	}
	return _u
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (_u *AgentUpdate) SetAuthSecretHash(v string) *AgentUpdate {
	_u.mutation.SetAuthSecretHash(v)
	return _u
}

// SetNillableAuthSecretHash sets the "auth_secret_hash" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAuthSecretHash(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAuthSecretHash(*v)
	}
	return _u
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (_u *AgentUpdate) SetAuthSecretCiphertext(v string) *AgentUpdate {
	_u.mutation.SetAuthSecretCiphertext(v)
	return _u
}

// SetNillableAuthSecretCiphertext sets the "auth_secret_ciphertext" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAuthSecretCiphertext(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAuthSecretCiphertext(*v)
	}
	return _u
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (_u *AgentUpdate) ClearAuthSecretCiphertext() *AgentUpdate {
	_u.mutation.ClearAuthSecretCiphertext()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AgentUpdate) SetDeletedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDeletedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AgentUpdate) ClearDeletedAt() *AgentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddVersionIDs adds the "versions" edge to the AgentVersion entity by IDs.
func (_u *AgentUpdate) AddVersionIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AgentVersion entity.
func (_u *AgentUpdate) AddVersions(v ...*AgentVersion) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AgentVersion entity.
func (_u *AgentUpdate) ClearVersions() *AgentUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AgentVersion entities by IDs.
func (_u *AgentUpdate) RemoveVersionIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AgentVersion entities.
func (_u *AgentUpdate) RemoveVersions(v ...*AgentVersion) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(agent.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(agent.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(agent.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(agent.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WsConnected(); ok {
		_spec.SetField(agent.FieldWsConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(agent.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(agent.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.RegisteredBy(); ok {
		_spec.SetField(agent.FieldRegisteredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretHash(); ok {
		_spec.SetField(agent.FieldAuthSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretCiphertext(); ok {
		_spec.SetField(agent.FieldAuthSecretCiphertext, field.TypeString, value)
	}
	if _u.mutation.AuthSecretCiphertextCleared() {
		_spec.ClearField(agent.FieldAuthSecretCiphertext, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(agent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(agent.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetExternalID sets the "external_id" field.
func (_u *AgentUpdateOne) SetExternalID(v string) *AgentUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableExternalID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentUpdateOne) SetDisplayName(v string) *AgentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDisplayName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *AgentUpdateOne) SetEndpointURL(v string) *AgentUpdateOne {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEndpointURL(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdateOne) SetCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdateOne) AppendCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *AgentUpdateOne) SetMaxConcurrent(v int) *AgentUpdateOne {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaxConcurrent(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *AgentUpdateOne) AddMaxConcurrent(v int) *AgentUpdateOne {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWsConnected sets the "ws_connected" field.
func (_u *AgentUpdateOne) SetWsConnected(v bool) *AgentUpdateOne {
	_u.mutation.SetWsConnected(v)
	return _u
}

// SetNillableWsConnected sets the "ws_connected" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableWsConnected(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetWsConnected(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdateOne) SetLastHeartbeat(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeat(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdateOne) ClearLastHeartbeat() *AgentUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *AgentUpdateOne) SetTeamID(v string) *AgentUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTeamID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *AgentUpdateOne) ClearTeamID() *AgentUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetRegisteredBy sets the "registered_by" field.
func (_u *AgentUpdateOne) SetRegisteredBy(v string) *AgentUpdateOne {
	_u.mutation.SetRegisteredBy(v)
	return _u
}

// SetNillableRegisteredBy sets the "registered_by" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRegisteredBy(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRegisteredBy(*v)
	}
	return _u
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (_u *AgentUpdateOne) SetAuthSecretHash(v string) *AgentUpdateOne {
	_u.mutation.SetAuthSecretHash(v)
	return _u
}

// SetNillableAuthSecretHash sets the "auth_secret_hash" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAuthSecretHash(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAuthSecretHash(*v)
	}
	return _u
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (_u *AgentUpdateOne) SetAuthSecretCiphertext(v string) *AgentUpdateOne {
	_u.mutation.SetAuthSecretCiphertext(v)
	return _u
}

// SetNillableAuthSecretCiphertext sets the "auth_secret_ciphertext" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAuthSecretCiphertext(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAuthSecretCiphertext(*v)
	}
	return _u
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (_u *AgentUpdateOne) ClearAuthSecretCiphertext() *AgentUpdateOne {
	_u.mutation.ClearAuthSecretCiphertext()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AgentUpdateOne) SetDeletedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDeletedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AgentUpdateOne) ClearDeletedAt() *AgentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddVersionIDs adds the "versions" edge to the AgentVersion entity by IDs.
func (_u *AgentUpdateOne) AddVersionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AgentVersion entity.
func (_u *AgentUpdateOne) AddVersions(v ...*AgentVersion) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AgentVersion entity.
func (_u *AgentUpdateOne) ClearVersions() *AgentUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AgentVersion entities by IDs.
func (_u *AgentUpdateOne) RemoveVersionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AgentVersion entities.
func (_u *AgentUpdateOne) RemoveVersions(v ...*AgentVersion) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(agent.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(agent.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(agent.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(agent.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WsConnected(); ok {
		_spec.SetField(agent.FieldWsConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(agent.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(agent.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.RegisteredBy(); ok {
		_spec.SetField(agent.FieldRegisteredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretHash(); ok {
		_spec.SetField(agent.FieldAuthSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretCiphertext(); ok {
		_spec.SetField(agent.FieldAuthSecretCiphertext, field.TypeString, value)
	}
	if _u.mutation.AuthSecretCiphertextCleared() {
		_spec.ClearField(agent.FieldAuthSecretCiphertext, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(agent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(agent.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
