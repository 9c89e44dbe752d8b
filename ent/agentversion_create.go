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

// AgentVersionCreate is the builder for creating a AgentVersion entity.
type AgentVersionCreate struct {
	config
	mutation *AgentVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentVersionCreate) SetAgentID(v string) *AgentVersionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentVersionCreate) SetVersion(v string) *AgentVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *AgentVersionCreate) SetEndpoint(v string) *AgentVersionCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentVersionCreate) SetCapabilities(v []string) *AgentVersionCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentVersionCreate) SetStatus(v agentversion.Status) *AgentVersionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableStatus(v *agentversion.Status) *AgentVersionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_c *AgentVersionCreate) SetTrafficPercent(v int) *AgentVersionCreate {
	_c.mutation.SetTrafficPercent(v)
	return _c
}

// SetNillableTrafficPercent sets the "traffic_percent" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableTrafficPercent(v *int) *AgentVersionCreate {
	if v != nil {
		_c.SetTrafficPercent(*v)
	}
	return _c
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (_c *AgentVersionCreate) SetErrorRatePer1000(v float64) *AgentVersionCreate {
	_c.mutation.SetErrorRatePer1000(v)
	return _c
}

// SetNillableErrorRatePer1000 sets the "error_rate_per_1000" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableErrorRatePer1000(v *float64) *AgentVersionCreate {
	if v != nil {
		_c.SetErrorRatePer1000(*v)
	}
	return _c
}

// SetErrorThreshold sets the "error_threshold" field.
func (_c *AgentVersionCreate) SetErrorThreshold(v float64) *AgentVersionCreate {
	_c.mutation.SetErrorThreshold(v)
	return _c
}

// SetNillableErrorThreshold sets the "error_threshold" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableErrorThreshold(v *float64) *AgentVersionCreate {
	if v != nil {
		_c.SetErrorThreshold(*v)
	}
	return _c
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (_c *AgentVersionCreate) SetIsRollbackTarget(v bool) *AgentVersionCreate {
	_c.mutation.SetIsRollbackTarget(v)
	return _c
}

// SetNillableIsRollbackTarget sets the "is_rollback_target" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableIsRollbackTarget(v *bool) *AgentVersionCreate {
	if v != nil {
		_c.SetIsRollbackTarget(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentVersionCreate) SetCreatedAt(v time.Time) *AgentVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentVersionCreate) SetNillableCreatedAt(v *time.Time) *AgentVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentVersionCreate) SetID(v string) *AgentVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentVersionCreate) SetAgent(v *Agent) *AgentVersionCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the AgentVersionMutation object of the builder.
func (_c *AgentVersionCreate) Mutation() *AgentVersionMutation {
	return _c.mutation
}

// Save creates the AgentVersion in the database.
func (_c *AgentVersionCreate) Save(ctx context.Context) (*AgentVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentVersionCreate) SaveX(ctx context.Context) *AgentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentVersionCreate) defaults() {
	if _, ok := _c.mutation.Capabilities(); !ok {
		v := agentversion.DefaultCapabilities
		_c.mutation.SetCapabilities(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentversion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TrafficPercent(); !ok {
		v := agentversion.DefaultTrafficPercent
		_c.mutation.SetTrafficPercent(v)
	}
	if _, ok := _c.mutation.ErrorRatePer1000(); !ok {
		v := agentversion.DefaultErrorRatePer1000
		_c.mutation.SetErrorRatePer1000(v)
	}
	if _, ok := _c.mutation.ErrorThreshold(); !ok {
		v := agentversion.DefaultErrorThreshold
		_c.mutation.SetErrorThreshold(v)
	}
	if _, ok := _c.mutation.IsRollbackTarget(); !ok {
		v := agentversion.DefaultIsRollbackTarget
		_c.mutation.SetIsRollbackTarget(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentVersionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentVersion.agent_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentVersion.version"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "AgentVersion.endpoint"`)}
	}
	if _, ok := _c.mutation.Capabilities(); !ok {
		return &ValidationError{Name: "capabilities", err: errors.New(`ent: missing required field "AgentVersion.capabilities"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentVersion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrafficPercent(); !ok {
		return &ValidationError{Name: "traffic_percent", err: errors.New(`ent: missing required field "AgentVersion.traffic_percent"`)}
	}
	if v, ok := _c.mutation.TrafficPercent(); ok {
		if err := agentversion.TrafficPercentValidator(v); err != nil {
			return &ValidationError{Name: "traffic_percent", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.traffic_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorRatePer1000(); !ok {
		return &ValidationError{Name: "error_rate_per_1000", err: errors.New(`ent: missing required field "AgentVersion.error_rate_per_1000"`)}
	}
	if _, ok := _c.mutation.ErrorThreshold(); !ok {
		return &ValidationError{Name: "error_threshold", err: errors.New(`ent: missing required field "AgentVersion.error_threshold"`)}
	}
	if _, ok := _c.mutation.IsRollbackTarget(); !ok {
		return &ValidationError{Name: "is_rollback_target", err: errors.New(`ent: missing required field "AgentVersion.is_rollback_target"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentVersion.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentVersion.agent"`)}
	}
	return nil
}

func (_c *AgentVersionCreate) sqlSave(ctx context.Context) (*AgentVersion, error) {
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
			return nil, fmt.Errorf("unexpected AgentVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentVersionCreate) createSpec() (*AgentVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentversion.Table, sqlgraph.NewFieldSpec(agentversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentversion.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(agentversion.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agentversion.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentversion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TrafficPercent(); ok {
		_spec.SetField(agentversion.FieldTrafficPercent, field.TypeInt, value)
		_node.TrafficPercent = value
	}
	if value, ok := _c.mutation.ErrorRatePer1000(); ok {
		_spec.SetField(agentversion.FieldErrorRatePer1000, field.TypeFloat64, value)
		_node.ErrorRatePer1000 = value
	}
	if value, ok := _c.mutation.ErrorThreshold(); ok {
		_spec.SetField(agentversion.FieldErrorThreshold, field.TypeFloat64, value)
		_node.ErrorThreshold = value
	}
	if value, ok := _c.mutation.IsRollbackTarget(); ok {
		_spec.SetField(agentversion.FieldIsRollbackTarget, field.TypeBool, value)
		_node.IsRollbackTarget = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentversion.AgentTable,
			Columns: []string{agentversion.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentVersion.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentVersionUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentVersionCreate) OnConflict(opts ...sql.ConflictOption) *AgentVersionUpsertOne {
	_c.conflict = opts
	return &AgentVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentVersionCreate) OnConflictColumns(columns ...string) *AgentVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentVersionUpsertOne{
		create: _c,
	}
}

type (
	// AgentVersionUpsertOne is the builder for "upsert"-ing
	//  one AgentVersion node.
	AgentVersionUpsertOne struct {
		create *AgentVersionCreate
	}

	// AgentVersionUpsert is the "OnConflict" setter.
	AgentVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetVersion sets the "version" field.
func (u *AgentVersionUpsert) SetVersion(v string) *AgentVersionUpsert {
	u.Set(agentversion.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateVersion() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldVersion)
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *AgentVersionUpsert) SetEndpoint(v string) *AgentVersionUpsert {
	u.Set(agentversion.FieldEndpoint, v)
	return u
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateEndpoint() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldEndpoint)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentVersionUpsert) SetCapabilities(v []string) *AgentVersionUpsert {
	u.Set(agentversion.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateCapabilities() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldCapabilities)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentVersionUpsert) SetStatus(v agentversion.Status) *AgentVersionUpsert {
	u.Set(agentversion.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateStatus() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldStatus)
	return u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *AgentVersionUpsert) SetTrafficPercent(v int) *AgentVersionUpsert {
	u.Set(agentversion.FieldTrafficPercent, v)
	return u
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateTrafficPercent() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldTrafficPercent)
	return u
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *AgentVersionUpsert) AddTrafficPercent(v int) *AgentVersionUpsert {
	u.Add(agentversion.FieldTrafficPercent, v)
	return u
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (u *AgentVersionUpsert) SetErrorRatePer1000(v float64) *AgentVersionUpsert {
	u.Set(agentversion.FieldErrorRatePer1000, v)
	return u
}

// UpdateErrorRatePer1000 sets the "error_rate_per_1000" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateErrorRatePer1000() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldErrorRatePer1000)
	return u
}

// AddErrorRatePer1000 adds v to the "error_rate_per_1000" field.
func (u *AgentVersionUpsert) AddErrorRatePer1000(v float64) *AgentVersionUpsert {
	u.Add(agentversion.FieldErrorRatePer1000, v)
	return u
}

// SetErrorThreshold sets the "error_threshold" field.
func (u *AgentVersionUpsert) SetErrorThreshold(v float64) *AgentVersionUpsert {
	u.Set(agentversion.FieldErrorThreshold, v)
	return u
}

// UpdateErrorThreshold sets the "error_threshold" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateErrorThreshold() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldErrorThreshold)
	return u
}

// AddErrorThreshold adds v to the "error_threshold" field.
func (u *AgentVersionUpsert) AddErrorThreshold(v float64) *AgentVersionUpsert {
	u.Add(agentversion.FieldErrorThreshold, v)
	return u
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (u *AgentVersionUpsert) SetIsRollbackTarget(v bool) *AgentVersionUpsert {
	u.Set(agentversion.FieldIsRollbackTarget, v)
	return u
}

// UpdateIsRollbackTarget sets the "is_rollback_target" field to the value that was provided on create.
func (u *AgentVersionUpsert) UpdateIsRollbackTarget() *AgentVersionUpsert {
	u.SetExcluded(agentversion.FieldIsRollbackTarget)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentVersionUpsertOne) UpdateNewValues() *AgentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentversion.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(agentversion.FieldAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentVersionUpsertOne) Ignore() *AgentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentVersionUpsertOne) DoNothing() *AgentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentVersionCreate.OnConflict
// documentation for more info.
func (u *AgentVersionUpsertOne) Update(set func(*AgentVersionUpsert)) *AgentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *AgentVersionUpsertOne) SetVersion(v string) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateVersion() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *AgentVersionUpsertOne) SetEndpoint(v string) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateEndpoint() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateEndpoint()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentVersionUpsertOne) SetCapabilities(v []string) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateCapabilities() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateCapabilities()
	})
}

// SetStatus sets the "status" field.
func (u *AgentVersionUpsertOne) SetStatus(v agentversion.Status) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateStatus() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateStatus()
	})
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *AgentVersionUpsertOne) SetTrafficPercent(v int) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetTrafficPercent(v)
	})
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *AgentVersionUpsertOne) AddTrafficPercent(v int) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddTrafficPercent(v)
	})
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateTrafficPercent() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateTrafficPercent()
	})
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (u *AgentVersionUpsertOne) SetErrorRatePer1000(v float64) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetErrorRatePer1000(v)
	})
}

// AddErrorRatePer1000 adds v to the "error_rate_per_1000" field.
func (u *AgentVersionUpsertOne) AddErrorRatePer1000(v float64) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddErrorRatePer1000(v)
	})
}

// UpdateErrorRatePer1000 sets the "error_rate_per_1000" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateErrorRatePer1000() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateErrorRatePer1000()
	})
}

// SetErrorThreshold sets the "error_threshold" field.
func (u *AgentVersionUpsertOne) SetErrorThreshold(v float64) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetErrorThreshold(v)
	})
}

// AddErrorThreshold adds v to the "error_threshold" field.
func (u *AgentVersionUpsertOne) AddErrorThreshold(v float64) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddErrorThreshold(v)
	})
}

// UpdateErrorThreshold sets the "error_threshold" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateErrorThreshold() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateErrorThreshold()
	})
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (u *AgentVersionUpsertOne) SetIsRollbackTarget(v bool) *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetIsRollbackTarget(v)
	})
}

// UpdateIsRollbackTarget sets the "is_rollback_target" field to the value that was provided on create.
func (u *AgentVersionUpsertOne) UpdateIsRollbackTarget() *AgentVersionUpsertOne {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateIsRollbackTarget()
	})
}

// Exec executes the query.
func (u *AgentVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentVersionUpsertOne.ID is not supported by MySQL driver. Use AgentVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentVersionCreateBulk is the builder for creating many AgentVersion entities in bulk.
type AgentVersionCreateBulk struct {
	config
	err      error
	builders []*AgentVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentVersion entities in the database.
func (_c *AgentVersionCreateBulk) Save(ctx context.Context) ([]*AgentVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentVersionMutation)
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
func (_c *AgentVersionCreateBulk) SaveX(ctx context.Context) []*AgentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentVersionUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentVersionUpsertBulk {
	_c.conflict = opts
	return &AgentVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentVersionCreateBulk) OnConflictColumns(columns ...string) *AgentVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentVersionUpsertBulk{
		create: _c,
	}
}

// AgentVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentVersion nodes.
type AgentVersionUpsertBulk struct {
	create *AgentVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentVersionUpsertBulk) UpdateNewValues() *AgentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentversion.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(agentversion.FieldAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentVersionUpsertBulk) Ignore() *AgentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentVersionUpsertBulk) DoNothing() *AgentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentVersionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentVersionUpsertBulk) Update(set func(*AgentVersionUpsert)) *AgentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *AgentVersionUpsertBulk) SetVersion(v string) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateVersion() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *AgentVersionUpsertBulk) SetEndpoint(v string) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateEndpoint() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateEndpoint()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentVersionUpsertBulk) SetCapabilities(v []string) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateCapabilities() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateCapabilities()
	})
}

// SetStatus sets the "status" field.
func (u *AgentVersionUpsertBulk) SetStatus(v agentversion.Status) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateStatus() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateStatus()
	})
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *AgentVersionUpsertBulk) SetTrafficPercent(v int) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetTrafficPercent(v)
	})
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *AgentVersionUpsertBulk) AddTrafficPercent(v int) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddTrafficPercent(v)
	})
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateTrafficPercent() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateTrafficPercent()
	})
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (u *AgentVersionUpsertBulk) SetErrorRatePer1000(v float64) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetErrorRatePer1000(v)
	})
}

// AddErrorRatePer1000 adds v to the "error_rate_per_1000" field.
func (u *AgentVersionUpsertBulk) AddErrorRatePer1000(v float64) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddErrorRatePer1000(v)
	})
}

// UpdateErrorRatePer1000 sets the "error_rate_per_1000" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateErrorRatePer1000() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateErrorRatePer1000()
	})
}

// SetErrorThreshold sets the "error_threshold" field.
func (u *AgentVersionUpsertBulk) SetErrorThreshold(v float64) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetErrorThreshold(v)
	})
}

// AddErrorThreshold adds v to the "error_threshold" field.
func (u *AgentVersionUpsertBulk) AddErrorThreshold(v float64) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.AddErrorThreshold(v)
	})
}

// UpdateErrorThreshold sets the "error_threshold" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateErrorThreshold() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateErrorThreshold()
	})
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (u *AgentVersionUpsertBulk) SetIsRollbackTarget(v bool) *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.SetIsRollbackTarget(v)
	})
}

// UpdateIsRollbackTarget sets the "is_rollback_target" field to the value that was provided on create.
func (u *AgentVersionUpsertBulk) UpdateIsRollbackTarget() *AgentVersionUpsertBulk {
	return u.Update(func(s *AgentVersionUpsert) {
		s.UpdateIsRollbackTarget()
	})
}

// Exec executes the query.
func (u *AgentVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
