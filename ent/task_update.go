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
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRequiredCapability sets the "required_capability" field.
func (_u *TaskUpdate) SetRequiredCapability(v string) *TaskUpdate {
	_u.mutation.SetRequiredCapability(v)
	return _u
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequiredCapability(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRequiredCapability(*v)
	}
	return _u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (_u *TaskUpdate) ClearRequiredCapability() *TaskUpdate {
	_u.mutation.ClearRequiredCapability()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdate) SetTags(v []string) *TaskUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdate) AppendTags(v []string) *TaskUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *TaskUpdate) SetAssignedAgent(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgent(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *TaskUpdate) ClearAssignedAgent() *TaskUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (_u *TaskUpdate) SetCreatedByAgent(v string) *TaskUpdate {
	_u.mutation.SetCreatedByAgent(v)
	return _u
}

// SetNillableCreatedByAgent sets the "created_by_agent" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedByAgent(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatedByAgent(*v)
	}
	return _u
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (_u *TaskUpdate) ClearCreatedByAgent() *TaskUpdate {
	_u.mutation.ClearCreatedByAgent()
	return _u
}

// SetCreatedByUser sets the "created_by_user" field.
func (_u *TaskUpdate) SetCreatedByUser(v string) *TaskUpdate {
	_u.mutation.SetCreatedByUser(v)
	return _u
}

// SetNillableCreatedByUser sets the "created_by_user" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedByUser(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatedByUser(*v)
	}
	return _u
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (_u *TaskUpdate) ClearCreatedByUser() *TaskUpdate {
	_u.mutation.ClearCreatedByUser()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdate) SetDependsOn(v []string) *TaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdate) AppendDependsOn(v []string) *TaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *TaskUpdate) SetInputMapping(v map[string]string) *TaskUpdate {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *TaskUpdate) ClearInputMapping() *TaskUpdate {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *TaskUpdate) SetTimeoutMs(v int64) *TaskUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTimeoutMs(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *TaskUpdate) AddTimeoutMs(v int64) *TaskUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (_u *TaskUpdate) ClearTimeoutMs() *TaskUpdate {
	_u.mutation.ClearTimeoutMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdate) SetRetryCount(v int) *TaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdate) AddRetryCount(v int) *TaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdate) SetMaxRetries(v int) *TaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRetries(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdate) AddMaxRetries(v int) *TaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetProgressCurrent sets the "progress_current" field.
func (_u *TaskUpdate) SetProgressCurrent(v int) *TaskUpdate {
	_u.mutation.ResetProgressCurrent()
	_u.mutation.SetProgressCurrent(v)
	return _u
}

// SetNillableProgressCurrent sets the "progress_current" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgressCurrent(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgressCurrent(*v)
	}
	return _u
}

// AddProgressCurrent adds value to the "progress_current" field.
func (_u *TaskUpdate) AddProgressCurrent(v int) *TaskUpdate {
	_u.mutation.AddProgressCurrent(v)
	return _u
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (_u *TaskUpdate) ClearProgressCurrent() *TaskUpdate {
	_u.mutation.ClearProgressCurrent()
	return _u
}

// SetProgressTotal sets the "progress_total" field.
func (_u *TaskUpdate) SetProgressTotal(v int) *TaskUpdate {
	_u.mutation.ResetProgressTotal()
	_u.mutation.SetProgressTotal(v)
	return _u
}

// SetNillableProgressTotal sets the "progress_total" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgressTotal(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgressTotal(*v)
	}
	return _u
}

// AddProgressTotal adds value to the "progress_total" field.
func (_u *TaskUpdate) AddProgressTotal(v int) *TaskUpdate {
	_u.mutation.AddProgressTotal(v)
	return _u
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (_u *TaskUpdate) ClearProgressTotal() *TaskUpdate {
	_u.mutation.ClearProgressTotal()
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *TaskUpdate) SetProgressMessage(v string) *TaskUpdate {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgressMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (_u *TaskUpdate) ClearProgressMessage() *TaskUpdate {
	_u.mutation.ClearProgressMessage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskUpdate) SetOutput(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskUpdate) ClearOutput() *TaskUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v string) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableResult(v *string) *TaskUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdate) SetLastError(v string) *TaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdate) ClearLastError() *TaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredCapability(); ok {
		_spec.SetField(task.FieldRequiredCapability, field.TypeString, value)
	}
	if _u.mutation.RequiredCapabilityCleared() {
		_spec.ClearField(task.FieldRequiredCapability, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(task.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByAgent(); ok {
		_spec.SetField(task.FieldCreatedByAgent, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentCleared() {
		_spec.ClearField(task.FieldCreatedByAgent, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByUser(); ok {
		_spec.SetField(task.FieldCreatedByUser, field.TypeString, value)
	}
	if _u.mutation.CreatedByUserCleared() {
		_spec.ClearField(task.FieldCreatedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(task.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(task.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(task.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(task.FieldTimeoutMs, field.TypeInt64, value)
	}
	if _u.mutation.TimeoutMsCleared() {
		_spec.ClearField(task.FieldTimeoutMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressCurrent(); ok {
		_spec.SetField(task.FieldProgressCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressCurrent(); ok {
		_spec.AddField(task.FieldProgressCurrent, field.TypeInt, value)
	}
	if _u.mutation.ProgressCurrentCleared() {
		_spec.ClearField(task.FieldProgressCurrent, field.TypeInt)
	}
	if value, ok := _u.mutation.ProgressTotal(); ok {
		_spec.SetField(task.FieldProgressTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressTotal(); ok {
		_spec.AddField(task.FieldProgressTotal, field.TypeInt, value)
	}
	if _u.mutation.ProgressTotalCleared() {
		_spec.ClearField(task.FieldProgressTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(task.FieldProgressMessage, field.TypeString, value)
	}
	if _u.mutation.ProgressMessageCleared() {
		_spec.ClearField(task.FieldProgressMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(task.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(task.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRequiredCapability sets the "required_capability" field.
func (_u *TaskUpdateOne) SetRequiredCapability(v string) *TaskUpdateOne {
	_u.mutation.SetRequiredCapability(v)
	return _u
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequiredCapability(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRequiredCapability(*v)
	}
	return _u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (_u *TaskUpdateOne) ClearRequiredCapability() *TaskUpdateOne {
	_u.mutation.ClearRequiredCapability()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdateOne) SetTags(v []string) *TaskUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdateOne) AppendTags(v []string) *TaskUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *TaskUpdateOne) SetAssignedAgent(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgent(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *TaskUpdateOne) ClearAssignedAgent() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (_u *TaskUpdateOne) SetCreatedByAgent(v string) *TaskUpdateOne {
	_u.mutation.SetCreatedByAgent(v)
	return _u
}

// SetNillableCreatedByAgent sets the "created_by_agent" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedByAgent(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedByAgent(*v)
	}
	return _u
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (_u *TaskUpdateOne) ClearCreatedByAgent() *TaskUpdateOne {
	_u.mutation.ClearCreatedByAgent()
	return _u
}

// SetCreatedByUser sets the "created_by_user" field.
func (_u *TaskUpdateOne) SetCreatedByUser(v string) *TaskUpdateOne {
	_u.mutation.SetCreatedByUser(v)
	return _u
}

// SetNillableCreatedByUser sets the "created_by_user" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedByUser(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedByUser(*v)
	}
	return _u
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (_u *TaskUpdateOne) ClearCreatedByUser() *TaskUpdateOne {
	_u.mutation.ClearCreatedByUser()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdateOne) SetDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdateOne) AppendDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *TaskUpdateOne) SetInputMapping(v map[string]string) *TaskUpdateOne {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *TaskUpdateOne) ClearInputMapping() *TaskUpdateOne {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *TaskUpdateOne) SetTimeoutMs(v int64) *TaskUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTimeoutMs(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *TaskUpdateOne) AddTimeoutMs(v int64) *TaskUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (_u *TaskUpdateOne) ClearTimeoutMs() *TaskUpdateOne {
	_u.mutation.ClearTimeoutMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdateOne) SetRetryCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdateOne) AddRetryCount(v int) *TaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdateOne) SetMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRetries(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdateOne) AddMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetProgressCurrent sets the "progress_current" field.
func (_u *TaskUpdateOne) SetProgressCurrent(v int) *TaskUpdateOne {
	_u.mutation.ResetProgressCurrent()
	_u.mutation.SetProgressCurrent(v)
	return _u
}

// SetNillableProgressCurrent sets the "progress_current" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgressCurrent(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgressCurrent(*v)
	}
	return _u
}

// AddProgressCurrent adds value to the "progress_current" field.
func (_u *TaskUpdateOne) AddProgressCurrent(v int) *TaskUpdateOne {
	_u.mutation.AddProgressCurrent(v)
	return _u
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (_u *TaskUpdateOne) ClearProgressCurrent() *TaskUpdateOne {
	_u.mutation.ClearProgressCurrent()
	return _u
}

// SetProgressTotal sets the "progress_total" field.
func (_u *TaskUpdateOne) SetProgressTotal(v int) *TaskUpdateOne {
	_u.mutation.ResetProgressTotal()
	_u.mutation.SetProgressTotal(v)
	return _u
}

// SetNillableProgressTotal sets the "progress_total" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgressTotal(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgressTotal(*v)
	}
	return _u
}

// AddProgressTotal adds value to the "progress_total" field.
func (_u *TaskUpdateOne) AddProgressTotal(v int) *TaskUpdateOne {
	_u.mutation.AddProgressTotal(v)
	return _u
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (_u *TaskUpdateOne) ClearProgressTotal() *TaskUpdateOne {
	_u.mutation.ClearProgressTotal()
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *TaskUpdateOne) SetProgressMessage(v string) *TaskUpdateOne {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgressMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (_u *TaskUpdateOne) ClearProgressMessage() *TaskUpdateOne {
	_u.mutation.ClearProgressMessage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskUpdateOne) SetOutput(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskUpdateOne) ClearOutput() *TaskUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v string) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableResult(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdateOne) SetLastError(v string) *TaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdateOne) ClearLastError() *TaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredCapability(); ok {
		_spec.SetField(task.FieldRequiredCapability, field.TypeString, value)
	}
	if _u.mutation.RequiredCapabilityCleared() {
		_spec.ClearField(task.FieldRequiredCapability, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(task.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByAgent(); ok {
		_spec.SetField(task.FieldCreatedByAgent, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentCleared() {
		_spec.ClearField(task.FieldCreatedByAgent, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByUser(); ok {
		_spec.SetField(task.FieldCreatedByUser, field.TypeString, value)
	}
	if _u.mutation.CreatedByUserCleared() {
		_spec.ClearField(task.FieldCreatedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(task.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(task.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(task.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(task.FieldTimeoutMs, field.TypeInt64, value)
	}
	if _u.mutation.TimeoutMsCleared() {
		_spec.ClearField(task.FieldTimeoutMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressCurrent(); ok {
		_spec.SetField(task.FieldProgressCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressCurrent(); ok {
		_spec.AddField(task.FieldProgressCurrent, field.TypeInt, value)
	}
	if _u.mutation.ProgressCurrentCleared() {
		_spec.ClearField(task.FieldProgressCurrent, field.TypeInt)
	}
	if value, ok := _u.mutation.ProgressTotal(); ok {
		_spec.SetField(task.FieldProgressTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressTotal(); ok {
		_spec.AddField(task.FieldProgressTotal, field.TypeInt, value)
	}
	if _u.mutation.ProgressTotalCleared() {
		_spec.ClearField(task.FieldProgressTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(task.FieldProgressMessage, field.TypeString, value)
	}
	if _u.mutation.ProgressMessageCleared() {
		_spec.ClearField(task.FieldProgressMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(task.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(task.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
