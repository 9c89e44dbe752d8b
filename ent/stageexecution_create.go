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
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
)

// StageExecutionCreate is the builder for creating a StageExecution entity.
type StageExecutionCreate struct {
	config
	mutation *StageExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *StageExecutionCreate) SetRunID(v string) *StageExecutionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageExecutionCreate) SetStageID(v string) *StageExecutionCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageExecutionCreate) SetStatus(v stageexecution.Status) *StageExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStatus(v *stageexecution.Status) *StageExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *StageExecutionCreate) SetAgentID(v string) *StageExecutionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableAgentID(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetInputResolved sets the "input_resolved" field.
func (_c *StageExecutionCreate) SetInputResolved(v map[string]interface{}) *StageExecutionCreate {
	_c.mutation.SetInputResolved(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *StageExecutionCreate) SetOutput(v map[string]interface{}) *StageExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageExecutionCreate) SetErrorMessage(v string) *StageExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorMessage(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageExecutionCreate) SetStartedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStartedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageExecutionCreate) SetCompletedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCompletedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *StageExecutionCreate) SetExecutionTimeMs(v int64) *StageExecutionCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableExecutionTimeMs(v *int64) *StageExecutionCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageExecutionCreate) SetID(v string) *StageExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *StageExecutionCreate) SetRun(v *WorkflowRun) *StageExecutionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_c *StageExecutionCreate) Mutation() *StageExecutionMutation {
	return _c.mutation
}

// Save creates the StageExecution in the database.
func (_c *StageExecutionCreate) Save(ctx context.Context) (*StageExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageExecutionCreate) SaveX(ctx context.Context) *StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stageexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := stageexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageExecutionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StageExecution.run_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageExecution.stage_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StageExecution.started_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StageExecution.run"`)}
	}
	return nil
}

func (_c *StageExecutionCreate) sqlSave(ctx context.Context) (*StageExecution, error) {
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
			return nil, fmt.Errorf("unexpected StageExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageExecutionCreate) createSpec() (*StageExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StageExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageexecution.Table, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stageexecution.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(stageexecution.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.InputResolved(); ok {
		_spec.SetField(stageexecution.FieldInputResolved, field.TypeJSON, value)
		_node.InputResolved = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(stageexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(stageexecution.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageexecution.RunTable,
			Columns: []string{stageexecution.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageExecution.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageExecutionUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageExecutionCreate) OnConflict(opts ...sql.ConflictOption) *StageExecutionUpsertOne {
	_c.conflict = opts
	return &StageExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageExecutionCreate) OnConflictColumns(columns ...string) *StageExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageExecutionUpsertOne{
		create: _c,
	}
}

type (
	// StageExecutionUpsertOne is the builder for "upsert"-ing
	//  one StageExecution node.
	StageExecutionUpsertOne struct {
		create *StageExecutionCreate
	}

	// StageExecutionUpsert is the "OnConflict" setter.
	StageExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *StageExecutionUpsert) SetStatus(v stageexecution.Status) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStatus() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStatus)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *StageExecutionUpsert) SetAgentID(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateAgentID() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *StageExecutionUpsert) ClearAgentID() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldAgentID)
	return u
}

// SetInputResolved sets the "input_resolved" field.
func (u *StageExecutionUpsert) SetInputResolved(v map[string]interface{}) *StageExecutionUpsert {
	u.Set(stageexecution.FieldInputResolved, v)
	return u
}

// UpdateInputResolved sets the "input_resolved" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateInputResolved() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldInputResolved)
	return u
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (u *StageExecutionUpsert) ClearInputResolved() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldInputResolved)
	return u
}

// SetOutput sets the "output" field.
func (u *StageExecutionUpsert) SetOutput(v map[string]interface{}) *StageExecutionUpsert {
	u.Set(stageexecution.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateOutput() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *StageExecutionUpsert) ClearOutput() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsert) SetErrorMessage(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateErrorMessage() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsert) ClearErrorMessage() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldErrorMessage)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsert) SetCompletedAt(v time.Time) *StageExecutionUpsert {
	u.Set(stageexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateCompletedAt() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsert) ClearCompletedAt() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldCompletedAt)
	return u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *StageExecutionUpsert) SetExecutionTimeMs(v int64) *StageExecutionUpsert {
	u.Set(stageexecution.FieldExecutionTimeMs, v)
	return u
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateExecutionTimeMs() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldExecutionTimeMs)
	return u
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *StageExecutionUpsert) AddExecutionTimeMs(v int64) *StageExecutionUpsert {
	u.Add(stageexecution.FieldExecutionTimeMs, v)
	return u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *StageExecutionUpsert) ClearExecutionTimeMs() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldExecutionTimeMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageExecutionUpsertOne) UpdateNewValues() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stageexecution.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(stageexecution.FieldRunID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(stageexecution.FieldStageID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(stageexecution.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageExecutionUpsertOne) Ignore() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageExecutionUpsertOne) DoNothing() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageExecutionCreate.OnConflict
// documentation for more info.
func (u *StageExecutionUpsertOne) Update(set func(*StageExecutionUpsert)) *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StageExecutionUpsertOne) SetStatus(v stageexecution.Status) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStatus() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *StageExecutionUpsertOne) SetAgentID(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateAgentID() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *StageExecutionUpsertOne) ClearAgentID() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearAgentID()
	})
}

// SetInputResolved sets the "input_resolved" field.
func (u *StageExecutionUpsertOne) SetInputResolved(v map[string]interface{}) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetInputResolved(v)
	})
}

// UpdateInputResolved sets the "input_resolved" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateInputResolved() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateInputResolved()
	})
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (u *StageExecutionUpsertOne) ClearInputResolved() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearInputResolved()
	})
}

// SetOutput sets the "output" field.
func (u *StageExecutionUpsertOne) SetOutput(v map[string]interface{}) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateOutput() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StageExecutionUpsertOne) ClearOutput() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsertOne) SetErrorMessage(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateErrorMessage() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsertOne) ClearErrorMessage() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsertOne) SetCompletedAt(v time.Time) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateCompletedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsertOne) ClearCompletedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *StageExecutionUpsertOne) SetExecutionTimeMs(v int64) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *StageExecutionUpsertOne) AddExecutionTimeMs(v int64) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateExecutionTimeMs() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *StageExecutionUpsertOne) ClearExecutionTimeMs() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearExecutionTimeMs()
	})
}

// Exec executes the query.
func (u *StageExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageExecutionUpsertOne.ID is not supported by MySQL driver. Use StageExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageExecutionCreateBulk is the builder for creating many StageExecution entities in bulk.
type StageExecutionCreateBulk struct {
	config
	err      error
	builders []*StageExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the StageExecution entities in the database.
func (_c *StageExecutionCreateBulk) Save(ctx context.Context) ([]*StageExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageExecutionMutation)
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
func (_c *StageExecutionCreateBulk) SaveX(ctx context.Context) []*StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageExecutionUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageExecutionUpsertBulk {
	_c.conflict = opts
	return &StageExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageExecutionCreateBulk) OnConflictColumns(columns ...string) *StageExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageExecutionUpsertBulk{
		create: _c,
	}
}

// StageExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of StageExecution nodes.
type StageExecutionUpsertBulk struct {
	create *StageExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageExecutionUpsertBulk) UpdateNewValues() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stageexecution.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(stageexecution.FieldRunID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(stageexecution.FieldStageID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(stageexecution.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageExecutionUpsertBulk) Ignore() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageExecutionUpsertBulk) DoNothing() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *StageExecutionUpsertBulk) Update(set func(*StageExecutionUpsert)) *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StageExecutionUpsertBulk) SetStatus(v stageexecution.Status) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStatus() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *StageExecutionUpsertBulk) SetAgentID(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateAgentID() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *StageExecutionUpsertBulk) ClearAgentID() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearAgentID()
	})
}

// SetInputResolved sets the "input_resolved" field.
func (u *StageExecutionUpsertBulk) SetInputResolved(v map[string]interface{}) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetInputResolved(v)
	})
}

// UpdateInputResolved sets the "input_resolved" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateInputResolved() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateInputResolved()
	})
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (u *StageExecutionUpsertBulk) ClearInputResolved() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearInputResolved()
	})
}

// SetOutput sets the "output" field.
func (u *StageExecutionUpsertBulk) SetOutput(v map[string]interface{}) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateOutput() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StageExecutionUpsertBulk) ClearOutput() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsertBulk) SetErrorMessage(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateErrorMessage() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsertBulk) ClearErrorMessage() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsertBulk) SetCompletedAt(v time.Time) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateCompletedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsertBulk) ClearCompletedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *StageExecutionUpsertBulk) SetExecutionTimeMs(v int64) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *StageExecutionUpsertBulk) AddExecutionTimeMs(v int64) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateExecutionTimeMs() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *StageExecutionUpsertBulk) ClearExecutionTimeMs() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearExecutionTimeMs()
	})
}

// Exec executes the query.
func (u *StageExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
