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
	"github.com/conductor-hq/conductor/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTeamID sets the "team_id" field.
func (_c *TaskCreate) SetTeamID(v string) *TaskCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRequiredCapability sets the "required_capability" field.
func (_c *TaskCreate) SetRequiredCapability(v string) *TaskCreate {
	_c.mutation.SetRequiredCapability(v)
	return _c
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequiredCapability(v *string) *TaskCreate {
	if v != nil {
		_c.SetRequiredCapability(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *TaskCreate) SetTags(v []string) *TaskCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_c *TaskCreate) SetAssignedAgent(v string) *TaskCreate {
	_c.mutation.SetAssignedAgent(v)
	return _c
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAgent(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedAgent(*v)
	}
	return _c
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (_c *TaskCreate) SetCreatedByAgent(v string) *TaskCreate {
	_c.mutation.SetCreatedByAgent(v)
	return _c
}

// SetNillableCreatedByAgent sets the "created_by_agent" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedByAgent(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatedByAgent(*v)
	}
	return _c
}

// SetCreatedByUser sets the "created_by_user" field.
func (_c *TaskCreate) SetCreatedByUser(v string) *TaskCreate {
	_c.mutation.SetCreatedByUser(v)
	return _c
}

// SetNillableCreatedByUser sets the "created_by_user" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedByUser(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatedByUser(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *TaskCreate) SetDependsOn(v []string) *TaskCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetInputMapping sets the "input_mapping" field.
func (_c *TaskCreate) SetInputMapping(v map[string]string) *TaskCreate {
	_c.mutation.SetInputMapping(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *TaskCreate) SetTimeoutMs(v int64) *TaskCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTimeoutMs(v *int64) *TaskCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskCreate) SetRetryCount(v int) *TaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TaskCreate) SetMaxRetries(v int) *TaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRetries(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetProgressCurrent sets the "progress_current" field.
func (_c *TaskCreate) SetProgressCurrent(v int) *TaskCreate {
	_c.mutation.SetProgressCurrent(v)
	return _c
}

// SetNillableProgressCurrent sets the "progress_current" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgressCurrent(v *int) *TaskCreate {
	if v != nil {
		_c.SetProgressCurrent(*v)
	}
	return _c
}

// SetProgressTotal sets the "progress_total" field.
func (_c *TaskCreate) SetProgressTotal(v int) *TaskCreate {
	_c.mutation.SetProgressTotal(v)
	return _c
}

// SetNillableProgressTotal sets the "progress_total" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgressTotal(v *int) *TaskCreate {
	if v != nil {
		_c.SetProgressTotal(*v)
	}
	return _c
}

// SetProgressMessage sets the "progress_message" field.
func (_c *TaskCreate) SetProgressMessage(v string) *TaskCreate {
	_c.mutation.SetProgressMessage(v)
	return _c
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgressMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetProgressMessage(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *TaskCreate) SetOutput(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskCreate) SetResult(v string) *TaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *TaskCreate) SetNillableResult(v *string) *TaskCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TaskCreate) SetLastError(v string) *TaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastError(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := task.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Tags(); !ok {
		v := task.DefaultTags
		_c.mutation.SetTags(v)
	}
	if _, ok := _c.mutation.DependsOn(); !ok {
		v := task.DefaultDependsOn
		_c.mutation.SetDependsOn(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := task.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := task.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Task.team_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "Task.tags"`)}
	}
	if _, ok := _c.mutation.DependsOn(); !ok {
		return &ValidationError{Name: "depends_on", err: errors.New(`ent: missing required field "Task.depends_on"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Task.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Task.max_retries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(task.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RequiredCapability(); ok {
		_spec.SetField(task.FieldRequiredCapability, field.TypeString, value)
		_node.RequiredCapability = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
		_node.AssignedAgent = &value
	}
	if value, ok := _c.mutation.CreatedByAgent(); ok {
		_spec.SetField(task.FieldCreatedByAgent, field.TypeString, value)
		_node.CreatedByAgent = &value
	}
	if value, ok := _c.mutation.CreatedByUser(); ok {
		_spec.SetField(task.FieldCreatedByUser, field.TypeString, value)
		_node.CreatedByUser = &value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.InputMapping(); ok {
		_spec.SetField(task.FieldInputMapping, field.TypeJSON, value)
		_node.InputMapping = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(task.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.ProgressCurrent(); ok {
		_spec.SetField(task.FieldProgressCurrent, field.TypeInt, value)
		_node.ProgressCurrent = &value
	}
	if value, ok := _c.mutation.ProgressTotal(); ok {
		_spec.SetField(task.FieldProgressTotal, field.TypeInt, value)
		_node.ProgressTotal = &value
	}
	if value, ok := _c.mutation.ProgressMessage(); ok {
		_spec.SetField(task.FieldProgressMessage, field.TypeString, value)
		_node.ProgressMessage = &value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(task.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetTeamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v task.Priority) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TaskUpsert) SetRequiredCapability(v string) *TaskUpsert {
	u.Set(task.FieldRequiredCapability, v)
	return u
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRequiredCapability() *TaskUpsert {
	u.SetExcluded(task.FieldRequiredCapability)
	return u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TaskUpsert) ClearRequiredCapability() *TaskUpsert {
	u.SetNull(task.FieldRequiredCapability)
	return u
}

// SetTags sets the "tags" field.
func (u *TaskUpsert) SetTags(v []string) *TaskUpsert {
	u.Set(task.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTags() *TaskUpsert {
	u.SetExcluded(task.FieldTags)
	return u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsert) SetAssignedAgent(v string) *TaskUpsert {
	u.Set(task.FieldAssignedAgent, v)
	return u
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAgent() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAgent)
	return u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsert) ClearAssignedAgent() *TaskUpsert {
	u.SetNull(task.FieldAssignedAgent)
	return u
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (u *TaskUpsert) SetCreatedByAgent(v string) *TaskUpsert {
	u.Set(task.FieldCreatedByAgent, v)
	return u
}

// UpdateCreatedByAgent sets the "created_by_agent" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatedByAgent() *TaskUpsert {
	u.SetExcluded(task.FieldCreatedByAgent)
	return u
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (u *TaskUpsert) ClearCreatedByAgent() *TaskUpsert {
	u.SetNull(task.FieldCreatedByAgent)
	return u
}

// SetCreatedByUser sets the "created_by_user" field.
func (u *TaskUpsert) SetCreatedByUser(v string) *TaskUpsert {
	u.Set(task.FieldCreatedByUser, v)
	return u
}

// UpdateCreatedByUser sets the "created_by_user" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatedByUser() *TaskUpsert {
	u.SetExcluded(task.FieldCreatedByUser)
	return u
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (u *TaskUpsert) ClearCreatedByUser() *TaskUpsert {
	u.SetNull(task.FieldCreatedByUser)
	return u
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsert) SetDependsOn(v []string) *TaskUpsert {
	u.Set(task.FieldDependsOn, v)
	return u
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDependsOn() *TaskUpsert {
	u.SetExcluded(task.FieldDependsOn)
	return u
}

// SetInputMapping sets the "input_mapping" field.
func (u *TaskUpsert) SetInputMapping(v map[string]string) *TaskUpsert {
	u.Set(task.FieldInputMapping, v)
	return u
}

// UpdateInputMapping sets the "input_mapping" field to the value that was provided on create.
func (u *TaskUpsert) UpdateInputMapping() *TaskUpsert {
	u.SetExcluded(task.FieldInputMapping)
	return u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (u *TaskUpsert) ClearInputMapping() *TaskUpsert {
	u.SetNull(task.FieldInputMapping)
	return u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (u *TaskUpsert) SetTimeoutMs(v int64) *TaskUpsert {
	u.Set(task.FieldTimeoutMs, v)
	return u
}

// UpdateTimeoutMs sets the "timeout_ms" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTimeoutMs() *TaskUpsert {
	u.SetExcluded(task.FieldTimeoutMs)
	return u
}

// AddTimeoutMs adds v to the "timeout_ms" field.
func (u *TaskUpsert) AddTimeoutMs(v int64) *TaskUpsert {
	u.Add(task.FieldTimeoutMs, v)
	return u
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (u *TaskUpsert) ClearTimeoutMs() *TaskUpsert {
	u.SetNull(task.FieldTimeoutMs)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsert) SetRetryCount(v int) *TaskUpsert {
	u.Set(task.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRetryCount() *TaskUpsert {
	u.SetExcluded(task.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsert) AddRetryCount(v int) *TaskUpsert {
	u.Add(task.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsert) SetMaxRetries(v int) *TaskUpsert {
	u.Set(task.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxRetries() *TaskUpsert {
	u.SetExcluded(task.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsert) AddMaxRetries(v int) *TaskUpsert {
	u.Add(task.FieldMaxRetries, v)
	return u
}

// SetProgressCurrent sets the "progress_current" field.
func (u *TaskUpsert) SetProgressCurrent(v int) *TaskUpsert {
	u.Set(task.FieldProgressCurrent, v)
	return u
}

// UpdateProgressCurrent sets the "progress_current" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgressCurrent() *TaskUpsert {
	u.SetExcluded(task.FieldProgressCurrent)
	return u
}

// AddProgressCurrent adds v to the "progress_current" field.
func (u *TaskUpsert) AddProgressCurrent(v int) *TaskUpsert {
	u.Add(task.FieldProgressCurrent, v)
	return u
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (u *TaskUpsert) ClearProgressCurrent() *TaskUpsert {
	u.SetNull(task.FieldProgressCurrent)
	return u
}

// SetProgressTotal sets the "progress_total" field.
func (u *TaskUpsert) SetProgressTotal(v int) *TaskUpsert {
	u.Set(task.FieldProgressTotal, v)
	return u
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgressTotal() *TaskUpsert {
	u.SetExcluded(task.FieldProgressTotal)
	return u
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *TaskUpsert) AddProgressTotal(v int) *TaskUpsert {
	u.Add(task.FieldProgressTotal, v)
	return u
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (u *TaskUpsert) ClearProgressTotal() *TaskUpsert {
	u.SetNull(task.FieldProgressTotal)
	return u
}

// SetProgressMessage sets the "progress_message" field.
func (u *TaskUpsert) SetProgressMessage(v string) *TaskUpsert {
	u.Set(task.FieldProgressMessage, v)
	return u
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgressMessage() *TaskUpsert {
	u.SetExcluded(task.FieldProgressMessage)
	return u
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (u *TaskUpsert) ClearProgressMessage() *TaskUpsert {
	u.SetNull(task.FieldProgressMessage)
	return u
}

// SetOutput sets the "output" field.
func (u *TaskUpsert) SetOutput(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOutput() *TaskUpsert {
	u.SetExcluded(task.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *TaskUpsert) ClearOutput() *TaskUpsert {
	u.SetNull(task.FieldOutput)
	return u
}

// SetResult sets the "result" field.
func (u *TaskUpsert) SetResult(v string) *TaskUpsert {
	u.Set(task.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResult() *TaskUpsert {
	u.SetExcluded(task.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsert) ClearResult() *TaskUpsert {
	u.SetNull(task.FieldResult)
	return u
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsert) SetLastError(v string) *TaskUpsert {
	u.Set(task.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastError() *TaskUpsert {
	u.SetExcluded(task.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsert) ClearLastError() *TaskUpsert {
	u.SetNull(task.FieldLastError)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.TeamID(); exists {
			s.SetIgnore(task.FieldTeamID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v task.Priority) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TaskUpsertOne) SetRequiredCapability(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequiredCapability(v)
	})
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRequiredCapability() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequiredCapability()
	})
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TaskUpsertOne) ClearRequiredCapability() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequiredCapability()
	})
}

// SetTags sets the "tags" field.
func (u *TaskUpsertOne) SetTags(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTags()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsertOne) SetAssignedAgent(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgent()
	})
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsertOne) ClearAssignedAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgent()
	})
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (u *TaskUpsertOne) SetCreatedByAgent(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedByAgent(v)
	})
}

// UpdateCreatedByAgent sets the "created_by_agent" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatedByAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedByAgent()
	})
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (u *TaskUpsertOne) ClearCreatedByAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedByAgent()
	})
}

// SetCreatedByUser sets the "created_by_user" field.
func (u *TaskUpsertOne) SetCreatedByUser(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedByUser(v)
	})
}

// UpdateCreatedByUser sets the "created_by_user" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatedByUser() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedByUser()
	})
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (u *TaskUpsertOne) ClearCreatedByUser() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedByUser()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertOne) SetDependsOn(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDependsOn() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// SetInputMapping sets the "input_mapping" field.
func (u *TaskUpsertOne) SetInputMapping(v map[string]string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetInputMapping(v)
	})
}

// UpdateInputMapping sets the "input_mapping" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateInputMapping() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInputMapping()
	})
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (u *TaskUpsertOne) ClearInputMapping() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearInputMapping()
	})
}

// SetTimeoutMs sets the "timeout_ms" field.
func (u *TaskUpsertOne) SetTimeoutMs(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutMs(v)
	})
}

// AddTimeoutMs adds v to the "timeout_ms" field.
func (u *TaskUpsertOne) AddTimeoutMs(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutMs(v)
	})
}

// UpdateTimeoutMs sets the "timeout_ms" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTimeoutMs() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutMs()
	})
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (u *TaskUpsertOne) ClearTimeoutMs() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTimeoutMs()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertOne) SetRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertOne) AddRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRetryCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertOne) SetMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertOne) AddMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxRetries() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetProgressCurrent sets the "progress_current" field.
func (u *TaskUpsertOne) SetProgressCurrent(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressCurrent(v)
	})
}

// AddProgressCurrent adds v to the "progress_current" field.
func (u *TaskUpsertOne) AddProgressCurrent(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressCurrent(v)
	})
}

// UpdateProgressCurrent sets the "progress_current" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgressCurrent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressCurrent()
	})
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (u *TaskUpsertOne) ClearProgressCurrent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressCurrent()
	})
}

// SetProgressTotal sets the "progress_total" field.
func (u *TaskUpsertOne) SetProgressTotal(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressTotal(v)
	})
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *TaskUpsertOne) AddProgressTotal(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressTotal(v)
	})
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgressTotal() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressTotal()
	})
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (u *TaskUpsertOne) ClearProgressTotal() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressTotal()
	})
}

// SetProgressMessage sets the "progress_message" field.
func (u *TaskUpsertOne) SetProgressMessage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressMessage(v)
	})
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgressMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressMessage()
	})
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (u *TaskUpsertOne) ClearProgressMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressMessage()
	})
}

// SetOutput sets the "output" field.
func (u *TaskUpsertOne) SetOutput(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOutput() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *TaskUpsertOne) ClearOutput() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutput()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertOne) SetResult(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertOne) ClearResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertOne) SetLastError(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertOne) ClearLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.TeamID(); exists {
				s.SetIgnore(task.FieldTeamID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v task.Priority) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TaskUpsertBulk) SetRequiredCapability(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequiredCapability(v)
	})
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRequiredCapability() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequiredCapability()
	})
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TaskUpsertBulk) ClearRequiredCapability() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequiredCapability()
	})
}

// SetTags sets the "tags" field.
func (u *TaskUpsertBulk) SetTags(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTags()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsertBulk) SetAssignedAgent(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgent()
	})
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsertBulk) ClearAssignedAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgent()
	})
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (u *TaskUpsertBulk) SetCreatedByAgent(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedByAgent(v)
	})
}

// UpdateCreatedByAgent sets the "created_by_agent" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatedByAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedByAgent()
	})
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (u *TaskUpsertBulk) ClearCreatedByAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedByAgent()
	})
}

// SetCreatedByUser sets the "created_by_user" field.
func (u *TaskUpsertBulk) SetCreatedByUser(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedByUser(v)
	})
}

// UpdateCreatedByUser sets the "created_by_user" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatedByUser() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedByUser()
	})
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (u *TaskUpsertBulk) ClearCreatedByUser() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedByUser()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertBulk) SetDependsOn(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDependsOn() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// SetInputMapping sets the "input_mapping" field.
func (u *TaskUpsertBulk) SetInputMapping(v map[string]string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetInputMapping(v)
	})
}

// UpdateInputMapping sets the "input_mapping" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateInputMapping() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInputMapping()
	})
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (u *TaskUpsertBulk) ClearInputMapping() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearInputMapping()
	})
}

// SetTimeoutMs sets the "timeout_ms" field.
func (u *TaskUpsertBulk) SetTimeoutMs(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutMs(v)
	})
}

// AddTimeoutMs adds v to the "timeout_ms" field.
func (u *TaskUpsertBulk) AddTimeoutMs(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutMs(v)
	})
}

// UpdateTimeoutMs sets the "timeout_ms" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTimeoutMs() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutMs()
	})
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (u *TaskUpsertBulk) ClearTimeoutMs() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTimeoutMs()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertBulk) SetRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertBulk) AddRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRetryCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertBulk) SetMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertBulk) AddMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxRetries() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetProgressCurrent sets the "progress_current" field.
func (u *TaskUpsertBulk) SetProgressCurrent(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressCurrent(v)
	})
}

// AddProgressCurrent adds v to the "progress_current" field.
func (u *TaskUpsertBulk) AddProgressCurrent(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressCurrent(v)
	})
}

// UpdateProgressCurrent sets the "progress_current" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgressCurrent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressCurrent()
	})
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (u *TaskUpsertBulk) ClearProgressCurrent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressCurrent()
	})
}

// SetProgressTotal sets the "progress_total" field.
func (u *TaskUpsertBulk) SetProgressTotal(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressTotal(v)
	})
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *TaskUpsertBulk) AddProgressTotal(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressTotal(v)
	})
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgressTotal() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressTotal()
	})
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (u *TaskUpsertBulk) ClearProgressTotal() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressTotal()
	})
}

// SetProgressMessage sets the "progress_message" field.
func (u *TaskUpsertBulk) SetProgressMessage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressMessage(v)
	})
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgressMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressMessage()
	})
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (u *TaskUpsertBulk) ClearProgressMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProgressMessage()
	})
}

// SetOutput sets the "output" field.
func (u *TaskUpsertBulk) SetOutput(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOutput() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *TaskUpsertBulk) ClearOutput() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutput()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertBulk) SetResult(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertBulk) ClearResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertBulk) SetLastError(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertBulk) ClearLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
