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
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowRunUpdate) SetUserID(v string) *WorkflowRunUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableUserID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *WorkflowRunUpdate) SetTeamID(v string) *WorkflowRunUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableTeamID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *WorkflowRunUpdate) ClearTeamID() *WorkflowRunUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdate) SetWorkflowName(v string) *WorkflowRunUpdate {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableWorkflowName(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *WorkflowRunUpdate) SetDefinition(v models.WorkflowDefinition) *WorkflowRunUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableDefinition(v *models.WorkflowDefinition) *WorkflowRunUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowRunUpdate) SetInput(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *WorkflowRunUpdate) ClearInput() *WorkflowRunUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdate) SetStatus(v workflowrun.Status) *WorkflowRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *WorkflowRunUpdate) SetCompletedStages(v []string) *WorkflowRunUpdate {
	_u.mutation.SetCompletedStages(v)
	return _u
}

// AppendCompletedStages appends value to the "completed_stages" field.
func (_u *WorkflowRunUpdate) AppendCompletedStages(v []string) *WorkflowRunUpdate {
	_u.mutation.AppendCompletedStages(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *WorkflowRunUpdate) SetOutput(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *WorkflowRunUpdate) ClearOutput() *WorkflowRunUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdate) SetErrorMessage(v string) *WorkflowRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableErrorMessage(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdate) ClearErrorMessage() *WorkflowRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdate) SetPodID(v string) *WorkflowRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePodID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdate) ClearPodID() *WorkflowRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) ClearLastHeartbeatAt() *WorkflowRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdate) SetStartedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdate) ClearStartedAt() *WorkflowRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdate) SetCompletedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdate) ClearCompletedAt() *WorkflowRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *WorkflowRunUpdate) AddStageExecutionIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *WorkflowRunUpdate) AddStageExecutions(v ...*StageExecution) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddAuditRecordIDs adds the "audit_records" edge to the AuditRecord entity by IDs.
func (_u *WorkflowRunUpdate) AddAuditRecordIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddAuditRecordIDs(ids...)
	return _u
}

// AddAuditRecords adds the "audit_records" edges to the AuditRecord entity.
func (_u *WorkflowRunUpdate) AddAuditRecords(v ...*AuditRecord) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditRecordIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *WorkflowRunUpdate) ClearStageExecutions() *WorkflowRunUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *WorkflowRunUpdate) RemoveStageExecutionIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *WorkflowRunUpdate) RemoveStageExecutions(v ...*StageExecution) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearAuditRecords clears all "audit_records" edges to the AuditRecord entity.
func (_u *WorkflowRunUpdate) ClearAuditRecords() *WorkflowRunUpdate {
	_u.mutation.ClearAuditRecords()
	return _u
}

// RemoveAuditRecordIDs removes the "audit_records" edge to AuditRecord entities by IDs.
func (_u *WorkflowRunUpdate) RemoveAuditRecordIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveAuditRecordIDs(ids...)
	return _u
}

// RemoveAuditRecords removes "audit_records" edges to AuditRecord entities.
func (_u *WorkflowRunUpdate) RemoveAuditRecords(v ...*AuditRecord) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdate) check() error {
	if v, ok := _u.mutation.Definition(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.definition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflowrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(workflowrun.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(workflowrun.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(workflowrun.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowrun.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(workflowrun.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(workflowrun.FieldCompletedStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldCompletedStages, value)
		})
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(workflowrun.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(workflowrun.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditRecordsIDs(); len(nodes) > 0 && !_u.mutation.AuditRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowRunUpdateOne) SetUserID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableUserID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *WorkflowRunUpdateOne) SetTeamID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableTeamID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *WorkflowRunUpdateOne) ClearTeamID() *WorkflowRunUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdateOne) SetWorkflowName(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableWorkflowName(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *WorkflowRunUpdateOne) SetDefinition(v models.WorkflowDefinition) *WorkflowRunUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableDefinition(v *models.WorkflowDefinition) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowRunUpdateOne) SetInput(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *WorkflowRunUpdateOne) ClearInput() *WorkflowRunUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdateOne) SetStatus(v workflowrun.Status) *WorkflowRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *WorkflowRunUpdateOne) SetCompletedStages(v []string) *WorkflowRunUpdateOne {
	_u.mutation.SetCompletedStages(v)
	return _u
}

// AppendCompletedStages appends value to the "completed_stages" field.
func (_u *WorkflowRunUpdateOne) AppendCompletedStages(v []string) *WorkflowRunUpdateOne {
	_u.mutation.AppendCompletedStages(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *WorkflowRunUpdateOne) SetOutput(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *WorkflowRunUpdateOne) ClearOutput() *WorkflowRunUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdateOne) SetErrorMessage(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableErrorMessage(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdateOne) ClearErrorMessage() *WorkflowRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdateOne) SetPodID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePodID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdateOne) ClearPodID() *WorkflowRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) ClearLastHeartbeatAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdateOne) SetStartedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdateOne) ClearStartedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdateOne) SetCompletedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdateOne) ClearCompletedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *WorkflowRunUpdateOne) AddStageExecutionIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *WorkflowRunUpdateOne) AddStageExecutions(v ...*StageExecution) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddAuditRecordIDs adds the "audit_records" edge to the AuditRecord entity by IDs.
func (_u *WorkflowRunUpdateOne) AddAuditRecordIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddAuditRecordIDs(ids...)
	return _u
}

// AddAuditRecords adds the "audit_records" edges to the AuditRecord entity.
func (_u *WorkflowRunUpdateOne) AddAuditRecords(v ...*AuditRecord) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditRecordIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *WorkflowRunUpdateOne) ClearStageExecutions() *WorkflowRunUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveStageExecutionIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *WorkflowRunUpdateOne) RemoveStageExecutions(v ...*StageExecution) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearAuditRecords clears all "audit_records" edges to the AuditRecord entity.
func (_u *WorkflowRunUpdateOne) ClearAuditRecords() *WorkflowRunUpdateOne {
	_u.mutation.ClearAuditRecords()
	return _u
}

// RemoveAuditRecordIDs removes the "audit_records" edge to AuditRecord entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveAuditRecordIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveAuditRecordIDs(ids...)
	return _u
}

// RemoveAuditRecords removes "audit_records" edges to AuditRecord entities.
func (_u *WorkflowRunUpdateOne) RemoveAuditRecords(v ...*AuditRecord) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditRecordIDs(ids...)
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdateOne) check() error {
	if v, ok := _u.mutation.Definition(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.definition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflowrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(workflowrun.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(workflowrun.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(workflowrun.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowrun.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(workflowrun.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(workflowrun.FieldCompletedStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldCompletedStages, value)
		})
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(workflowrun.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(workflowrun.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditRecordsIDs(); len(nodes) > 0 && !_u.mutation.AuditRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
