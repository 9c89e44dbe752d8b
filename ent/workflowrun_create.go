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
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

// WorkflowRunCreate is the builder for creating a WorkflowRun entity.
type WorkflowRunCreate struct {
	config
	mutation *WorkflowRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *WorkflowRunCreate) SetUserID(v string) *WorkflowRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *WorkflowRunCreate) SetTeamID(v string) *WorkflowRunCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableTeamID(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetTeamID(*v)
	}
	return _c
}

// SetWorkflowName sets the "workflow_name" field.
func (_c *WorkflowRunCreate) SetWorkflowName(v string) *WorkflowRunCreate {
	_c.mutation.SetWorkflowName(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *WorkflowRunCreate) SetDefinition(v models.WorkflowDefinition) *WorkflowRunCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *WorkflowRunCreate) SetInput(v map[string]interface{}) *WorkflowRunCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowRunCreate) SetStatus(v workflowrun.Status) *WorkflowRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedStages sets the "completed_stages" field.
func (_c *WorkflowRunCreate) SetCompletedStages(v []string) *WorkflowRunCreate {
	_c.mutation.SetCompletedStages(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *WorkflowRunCreate) SetOutput(v map[string]interface{}) *WorkflowRunCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowRunCreate) SetErrorMessage(v string) *WorkflowRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableErrorMessage(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowRunCreate) SetPodID(v string) *WorkflowRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillablePodID(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkflowRunCreate) SetLastHeartbeatAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowRunCreate) SetCreatedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCreatedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowRunCreate) SetStartedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableStartedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowRunCreate) SetCompletedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCompletedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowRunCreate) SetID(v string) *WorkflowRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *WorkflowRunCreate) AddStageExecutionIDs(ids ...string) *WorkflowRunCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *WorkflowRunCreate) AddStageExecutions(v ...*StageExecution) *WorkflowRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// AddAuditRecordIDs adds the "audit_records" edge to the AuditRecord entity by IDs.
func (_c *WorkflowRunCreate) AddAuditRecordIDs(ids ...string) *WorkflowRunCreate {
	_c.mutation.AddAuditRecordIDs(ids...)
	return _c
}

// AddAuditRecords adds the "audit_records" edges to the AuditRecord entity.
func (_c *WorkflowRunCreate) AddAuditRecords(v ...*AuditRecord) *WorkflowRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditRecordIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_c *WorkflowRunCreate) Mutation() *WorkflowRunMutation {
	return _c.mutation
}

// Save creates the WorkflowRun in the database.
func (_c *WorkflowRunCreate) Save(ctx context.Context) (*WorkflowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowRunCreate) SaveX(ctx context.Context) *WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedStages(); !ok {
		v := workflowrun.DefaultCompletedStages
		_c.mutation.SetCompletedStages(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowRunCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkflowRun.user_id"`)}
	}
	if _, ok := _c.mutation.WorkflowName(); !ok {
		return &ValidationError{Name: "workflow_name", err: errors.New(`ent: missing required field "WorkflowRun.workflow_name"`)}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "WorkflowRun.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedStages(); !ok {
		return &ValidationError{Name: "completed_stages", err: errors.New(`ent: missing required field "WorkflowRun.completed_stages"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowRun.created_at"`)}
	}
	return nil
}

func (_c *WorkflowRunCreate) sqlSave(ctx context.Context) (*WorkflowRun, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowRunCreate) createSpec() (*WorkflowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowrun.Table, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workflowrun.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(workflowrun.FieldTeamID, field.TypeString, value)
		_node.TeamID = &value
	}
	if value, ok := _c.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
		_node.WorkflowName = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(workflowrun.FieldDefinition, field.TypeJSON, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(workflowrun.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedStages(); ok {
		_spec.SetField(workflowrun.FieldCompletedStages, field.TypeJSON, value)
		_node.CompletedStages = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(workflowrun.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StageExecutionsTable,
			Columns: []string{workflowrun.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.AuditRecordsTable,
			Columns: []string{workflowrun.AuditRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
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
//	client.WorkflowRun.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowRunUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowRunCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowRunUpsertOne {
	_c.conflict = opts
	return &WorkflowRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowRunCreate) OnConflictColumns(columns ...string) *WorkflowRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowRunUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowRunUpsertOne is the builder for "upsert"-ing
	//  one WorkflowRun node.
	WorkflowRunUpsertOne struct {
		create *WorkflowRunCreate
	}

	// WorkflowRunUpsert is the "OnConflict" setter.
	WorkflowRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *WorkflowRunUpsert) SetUserID(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateUserID() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldUserID)
	return u
}

// SetTeamID sets the "team_id" field.
func (u *WorkflowRunUpsert) SetTeamID(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldTeamID, v)
	return u
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateTeamID() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldTeamID)
	return u
}

// ClearTeamID clears the value of the "team_id" field.
func (u *WorkflowRunUpsert) ClearTeamID() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldTeamID)
	return u
}

// SetWorkflowName sets the "workflow_name" field.
func (u *WorkflowRunUpsert) SetWorkflowName(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldWorkflowName, v)
	return u
}

// UpdateWorkflowName sets the "workflow_name" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateWorkflowName() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldWorkflowName)
	return u
}

// SetDefinition sets the "definition" field.
func (u *WorkflowRunUpsert) SetDefinition(v models.WorkflowDefinition) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldDefinition, v)
	return u
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateDefinition() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldDefinition)
	return u
}

// SetInput sets the "input" field.
func (u *WorkflowRunUpsert) SetInput(v map[string]interface{}) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldInput, v)
	return u
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateInput() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldInput)
	return u
}

// ClearInput clears the value of the "input" field.
func (u *WorkflowRunUpsert) ClearInput() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldInput)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkflowRunUpsert) SetStatus(v workflowrun.Status) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateStatus() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldStatus)
	return u
}

// SetCompletedStages sets the "completed_stages" field.
func (u *WorkflowRunUpsert) SetCompletedStages(v []string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldCompletedStages, v)
	return u
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateCompletedStages() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldCompletedStages)
	return u
}

// SetOutput sets the "output" field.
func (u *WorkflowRunUpsert) SetOutput(v map[string]interface{}) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateOutput() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *WorkflowRunUpsert) ClearOutput() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsert) SetErrorMessage(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateErrorMessage() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsert) ClearErrorMessage() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsert) SetPodID(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdatePodID() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsert) ClearPodID() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsert) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateLastHeartbeatAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsert) ClearLastHeartbeatAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldLastHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsert) SetStartedAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateStartedAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsert) ClearStartedAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsert) SetCompletedAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateCompletedAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsert) ClearCompletedAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowRunUpsertOne) UpdateNewValues() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowrun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowRunUpsertOne) Ignore() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowRunUpsertOne) DoNothing() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowRunCreate.OnConflict
// documentation for more info.
func (u *WorkflowRunUpsertOne) Update(set func(*WorkflowRunUpsert)) *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkflowRunUpsertOne) SetUserID(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateUserID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateUserID()
	})
}

// SetTeamID sets the "team_id" field.
func (u *WorkflowRunUpsertOne) SetTeamID(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetTeamID(v)
	})
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateTeamID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateTeamID()
	})
}

// ClearTeamID clears the value of the "team_id" field.
func (u *WorkflowRunUpsertOne) ClearTeamID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearTeamID()
	})
}

// SetWorkflowName sets the "workflow_name" field.
func (u *WorkflowRunUpsertOne) SetWorkflowName(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetWorkflowName(v)
	})
}

// UpdateWorkflowName sets the "workflow_name" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateWorkflowName() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateWorkflowName()
	})
}

// SetDefinition sets the "definition" field.
func (u *WorkflowRunUpsertOne) SetDefinition(v models.WorkflowDefinition) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetDefinition(v)
	})
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateDefinition() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateDefinition()
	})
}

// SetInput sets the "input" field.
func (u *WorkflowRunUpsertOne) SetInput(v map[string]interface{}) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateInput() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *WorkflowRunUpsertOne) ClearInput() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearInput()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowRunUpsertOne) SetStatus(v workflowrun.Status) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateStatus() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *WorkflowRunUpsertOne) SetCompletedStages(v []string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateCompletedStages() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedStages()
	})
}

// SetOutput sets the "output" field.
func (u *WorkflowRunUpsertOne) SetOutput(v map[string]interface{}) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateOutput() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *WorkflowRunUpsertOne) ClearOutput() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsertOne) SetErrorMessage(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateErrorMessage() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsertOne) ClearErrorMessage() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsertOne) SetPodID(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdatePodID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsertOne) ClearPodID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateLastHeartbeatAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertOne) ClearLastHeartbeatAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsertOne) SetStartedAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateStartedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsertOne) ClearStartedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsertOne) SetCompletedAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateCompletedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsertOne) ClearCompletedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowRunUpsertOne.ID is not supported by MySQL driver. Use WorkflowRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowRunCreateBulk is the builder for creating many WorkflowRun entities in bulk.
type WorkflowRunCreateBulk struct {
	config
	err      error
	builders []*WorkflowRunCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowRun entities in the database.
func (_c *WorkflowRunCreateBulk) Save(ctx context.Context) ([]*WorkflowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowRunMutation)
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
func (_c *WorkflowRunCreateBulk) SaveX(ctx context.Context) []*WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowRunUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowRunUpsertBulk {
	_c.conflict = opts
	return &WorkflowRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowRunCreateBulk) OnConflictColumns(columns ...string) *WorkflowRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowRunUpsertBulk{
		create: _c,
	}
}

// WorkflowRunUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowRun nodes.
type WorkflowRunUpsertBulk struct {
	create *WorkflowRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowRunUpsertBulk) UpdateNewValues() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowrun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowRunUpsertBulk) Ignore() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowRunUpsertBulk) DoNothing() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowRunCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowRunUpsertBulk) Update(set func(*WorkflowRunUpsert)) *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkflowRunUpsertBulk) SetUserID(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateUserID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateUserID()
	})
}

// SetTeamID sets the "team_id" field.
func (u *WorkflowRunUpsertBulk) SetTeamID(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetTeamID(v)
	})
}

// UpdateTeamID sets the "team_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateTeamID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateTeamID()
	})
}

// ClearTeamID clears the value of the "team_id" field.
func (u *WorkflowRunUpsertBulk) ClearTeamID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearTeamID()
	})
}

// SetWorkflowName sets the "workflow_name" field.
func (u *WorkflowRunUpsertBulk) SetWorkflowName(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetWorkflowName(v)
	})
}

// UpdateWorkflowName sets the "workflow_name" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateWorkflowName() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateWorkflowName()
	})
}

// SetDefinition sets the "definition" field.
func (u *WorkflowRunUpsertBulk) SetDefinition(v models.WorkflowDefinition) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetDefinition(v)
	})
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateDefinition() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateDefinition()
	})
}

// SetInput sets the "input" field.
func (u *WorkflowRunUpsertBulk) SetInput(v map[string]interface{}) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateInput() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *WorkflowRunUpsertBulk) ClearInput() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearInput()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowRunUpsertBulk) SetStatus(v workflowrun.Status) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateStatus() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *WorkflowRunUpsertBulk) SetCompletedStages(v []string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateCompletedStages() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedStages()
	})
}

// SetOutput sets the "output" field.
func (u *WorkflowRunUpsertBulk) SetOutput(v map[string]interface{}) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateOutput() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *WorkflowRunUpsertBulk) ClearOutput() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsertBulk) SetErrorMessage(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateErrorMessage() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsertBulk) ClearErrorMessage() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsertBulk) SetPodID(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdatePodID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsertBulk) ClearPodID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertBulk) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateLastHeartbeatAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertBulk) ClearLastHeartbeatAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsertBulk) SetStartedAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateStartedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsertBulk) ClearStartedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsertBulk) SetCompletedAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateCompletedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsertBulk) ClearCompletedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
