// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// AgentVersionUpdate is the builder for updating AgentVersion entities.
type AgentVersionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentVersionMutation
}

// Where appends a list predicates to the AgentVersionUpdate builder.
func (_u *AgentVersionUpdate) Where(ps ...predicate.AgentVersion) *AgentVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentVersionUpdate) SetVersion(v string) *AgentVersionUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableVersion(v *string) *AgentVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *AgentVersionUpdate) SetEndpoint(v string) *AgentVersionUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableEndpoint(v *string) *AgentVersionUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentVersionUpdate) SetCapabilities(v []string) *AgentVersionUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentVersionUpdate) AppendCapabilities(v []string) *AgentVersionUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentVersionUpdate) SetStatus(v agentversion.Status) *AgentVersionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableStatus(v *agentversion.Status) *AgentVersionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_u *AgentVersionUpdate) SetTrafficPercent(v int) *AgentVersionUpdate {
	_u.mutation.ResetTrafficPercent()
	_u.mutation.SetTrafficPercent(v)
	return _u
}

// SetNillableTrafficPercent sets the "traffic_percent" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableTrafficPercent(v *int) *AgentVersionUpdate {
	if v != nil {
		_u.SetTrafficPercent(*v)
	}
	return _u
}

// AddTrafficPercent adds value to the "traffic_percent" field.
func (_u *AgentVersionUpdate) AddTrafficPercent(v int) *AgentVersionUpdate {
	_u.mutation.AddTrafficPercent(v)
	return _u
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (_u *AgentVersionUpdate) SetErrorRatePer1000(v float64) *AgentVersionUpdate {
	_u.mutation.ResetErrorRatePer1000()
	_u.mutation.SetErrorRatePer1000(v)
	return _u
}

// SetNillableErrorRatePer1000 sets the "error_rate_per_1000" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableErrorRatePer1000(v *float64) *AgentVersionUpdate {
	if v != nil {
		_u.SetErrorRatePer1000(*v)
	}
	return _u
}

// AddErrorRatePer1000 adds value to the "error_rate_per_1000" field.
func (_u *AgentVersionUpdate) AddErrorRatePer1000(v float64) *AgentVersionUpdate {
	_u.mutation.AddErrorRatePer1000(v)
	return _u
}

// SetErrorThreshold sets the "error_threshold" field.
func (_u *AgentVersionUpdate) SetErrorThreshold(v float64) *AgentVersionUpdate {
	_u.mutation.ResetErrorThreshold()
	_u.mutation.SetErrorThreshold(v)
	return _u
}

// SetNillableErrorThreshold sets the "error_threshold" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableErrorThreshold(v *float64) *AgentVersionUpdate {
	if v != nil {
		_u.SetErrorThreshold(*v)
	}
	return _u
}

// AddErrorThreshold adds value to the "error_threshold" field.
func (_u *AgentVersionUpdate) AddErrorThreshold(v float64) *AgentVersionUpdate {
	_u.mutation.AddErrorThreshold(v)
	return _u
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (_u *AgentVersionUpdate) SetIsRollbackTarget(v bool) *AgentVersionUpdate {
	_u.mutation.SetIsRollbackTarget(v)
	return _u
}

// SetNillableIsRollbackTarget sets the "is_rollback_target" field if the given value is not nil.
func (_u *AgentVersionUpdate) SetNillableIsRollbackTarget(v *bool) *AgentVersionUpdate {
	if v != nil {
		_u.SetIsRollbackTarget(*v)
	}
	return _u
}

// Mutation returns the AgentVersionMutation object of the builder.
func (_u *AgentVersionUpdate) Mutation() *AgentVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentVersionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrafficPercent(); ok {
		if err := agentversion.TrafficPercentValidator(v); err != nil {
			return &ValidationError{Name: "traffic_percent", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.traffic_percent": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentVersion.agent"`)
	}
	return nil
}

func (_u *AgentVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentversion.Table, agentversion.Columns, sqlgraph.NewFieldSpec(agentversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentversion.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(agentversion.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentversion.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentversion.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrafficPercent(); ok {
		_spec.SetField(agentversion.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrafficPercent(); ok {
		_spec.AddField(agentversion.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorRatePer1000(); ok {
		_spec.SetField(agentversion.FieldErrorRatePer1000, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRatePer1000(); ok {
		_spec.AddField(agentversion.FieldErrorRatePer1000, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorThreshold(); ok {
		_spec.SetField(agentversion.FieldErrorThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorThreshold(); ok {
		_spec.AddField(agentversion.FieldErrorThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsRollbackTarget(); ok {
		_spec.SetField(agentversion.FieldIsRollbackTarget, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentVersionUpdateOne is the builder for updating a single AgentVersion entity.
type AgentVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentVersionMutation
}

// SetVersion sets the "version" field.
func (_u *AgentVersionUpdateOne) SetVersion(v string) *AgentVersionUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableVersion(v *string) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *AgentVersionUpdateOne) SetEndpoint(v string) *AgentVersionUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableEndpoint(v *string) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentVersionUpdateOne) SetCapabilities(v []string) *AgentVersionUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentVersionUpdateOne) AppendCapabilities(v []string) *AgentVersionUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentVersionUpdateOne) SetStatus(v agentversion.Status) *AgentVersionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableStatus(v *agentversion.Status) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_u *AgentVersionUpdateOne) SetTrafficPercent(v int) *AgentVersionUpdateOne {
	_u.mutation.ResetTrafficPercent()
	_u.mutation.SetTrafficPercent(v)
	return _u
}

// SetNillableTrafficPercent sets the "traffic_percent" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableTrafficPercent(v *int) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetTrafficPercent(*v)
	}
	return _u
}

// AddTrafficPercent adds value to the "traffic_percent" field.
func (_u *AgentVersionUpdateOne) AddTrafficPercent(v int) *AgentVersionUpdateOne {
	_u.mutation.AddTrafficPercent(v)
	return _u
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (_u *AgentVersionUpdateOne) SetErrorRatePer1000(v float64) *AgentVersionUpdateOne {
	_u.mutation.ResetErrorRatePer1000()
	_u.mutation.SetErrorRatePer1000(v)
	return _u
}

// SetNillableErrorRatePer1000 sets the "error_rate_per_1000" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableErrorRatePer1000(v *float64) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetErrorRatePer1000(*v)
	}
	return _u
}

// AddErrorRatePer1000 adds value to the "error_rate_per_1000" field.
func (_u *AgentVersionUpdateOne) AddErrorRatePer1000(v float64) *AgentVersionUpdateOne {
	_u.mutation.AddErrorRatePer1000(v)
	return _u
}

// SetErrorThreshold sets the "error_threshold" field.
func (_u *AgentVersionUpdateOne) SetErrorThreshold(v float64) *AgentVersionUpdateOne {
	_u.mutation.ResetErrorThreshold()
	_u.mutation.SetErrorThreshold(v)
	return _u
}

// SetNillableErrorThreshold sets the "error_threshold" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableErrorThreshold(v *float64) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetErrorThreshold(*v)
	}
	return _u
}

// AddErrorThreshold adds value to the "error_threshold" field.
func (_u *AgentVersionUpdateOne) AddErrorThreshold(v float64) *AgentVersionUpdateOne {
	_u.mutation.AddErrorThreshold(v)
	return _u
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (_u *AgentVersionUpdateOne) SetIsRollbackTarget(v bool) *AgentVersionUpdateOne {
	_u.mutation.SetIsRollbackTarget(v)
	return _u
}

// SetNillableIsRollbackTarget sets the "is_rollback_target" field if the given value is not nil.
func (_u *AgentVersionUpdateOne) SetNillableIsRollbackTarget(v *bool) *AgentVersionUpdateOne {
	if v != nil {
		_u.SetIsRollbackTarget(*v)
	}
	return _u
}

// Mutation returns the AgentVersionMutation object of the builder.
func (_u *AgentVersionUpdateOne) Mutation() *AgentVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentVersionUpdate builder.
func (_u *AgentVersionUpdateOne) Where(ps ...predicate.AgentVersion) *AgentVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentVersionUpdateOne) Select(field string, fields ...string) *AgentVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentVersion entity.
func (_u *AgentVersionUpdateOne) Save(ctx context.Context) (*AgentVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentVersionUpdateOne) SaveX(ctx context.Context) *AgentVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrafficPercent(); ok {
		if err := agentversion.TrafficPercentValidator(v); err != nil {
			return &ValidationError{Name: "traffic_percent", err: fmt.Errorf(`ent: validator failed for field "AgentVersion.traffic_percent": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentVersion.agent"`)
	}
	return nil
}

func (_u *AgentVersionUpdateOne) sqlSave(ctx context.Context) (_node *AgentVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentversion.Table, agentversion.Columns, sqlgraph.NewFieldSpec(agentversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentversion.FieldID)
		for _, f := range fields {
			if !agentversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentversion.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentversion.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(agentversion.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentversion.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentversion.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrafficPercent(); ok {
		_spec.SetField(agentversion.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrafficPercent(); ok {
		_spec.AddField(agentversion.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorRatePer1000(); ok {
		_spec.SetField(agentversion.FieldErrorRatePer1000, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRatePer1000(); ok {
		_spec.AddField(agentversion.FieldErrorRatePer1000, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorThreshold(); ok {
		_spec.SetField(agentversion.FieldErrorThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorThreshold(); ok {
		_spec.AddField(agentversion.FieldErrorThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsRollbackTarget(); ok {
		_spec.SetField(agentversion.FieldIsRollbackTarget, field.TypeBool, value)
	}
	_node = &AgentVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
