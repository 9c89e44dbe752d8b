// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/stageexecution"
)

// StageExecutionUpdate is the builder for updating StageExecution entities.
type StageExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StageExecutionMutation
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdate) Where(ps ...predicate.StageExecution) *StageExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdate) SetStatus(v stageexecution.Status) *StageExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StageExecutionUpdate) SetAgentID(v string) *StageExecutionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableAgentID(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StageExecutionUpdate) ClearAgentID() *StageExecutionUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetInputResolved sets the "input_resolved" field.
func (_u *StageExecutionUpdate) SetInputResolved(v map[string]interface{}) *StageExecutionUpdate {
	_u.mutation.SetInputResolved(v)
	return _u
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (_u *StageExecutionUpdate) ClearInputResolved() *StageExecutionUpdate {
	_u.mutation.ClearInputResolved()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StageExecutionUpdate) SetOutput(v map[string]interface{}) *StageExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StageExecutionUpdate) ClearOutput() *StageExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdate) SetErrorMessage(v string) *StageExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorMessage(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdate) ClearErrorMessage() *StageExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdate) SetCompletedAt(v time.Time) *StageExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdate) ClearCompletedAt() *StageExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *StageExecutionUpdate) SetExecutionTimeMs(v int64) *StageExecutionUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableExecutionTimeMs(v *int64) *StageExecutionUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *StageExecutionUpdate) AddExecutionTimeMs(v int64) *StageExecutionUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *StageExecutionUpdate) ClearExecutionTimeMs() *StageExecutionUpdate {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdate) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.run"`)
	}
	return nil
}

func (_u *StageExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(stageexecution.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(stageexecution.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.InputResolved(); ok {
		_spec.SetField(stageexecution.FieldInputResolved, field.TypeJSON, value)
	}
	if _u.mutation.InputResolvedCleared() {
		_spec.ClearField(stageexecution.FieldInputResolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stageexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stageexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(stageexecution.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(stageexecution.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(stageexecution.FieldExecutionTimeMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageExecutionUpdateOne is the builder for updating a single StageExecution entity.
type StageExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdateOne) SetStatus(v stageexecution.Status) *StageExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StageExecutionUpdateOne) SetAgentID(v string) *StageExecutionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableAgentID(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StageExecutionUpdateOne) ClearAgentID() *StageExecutionUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetInputResolved sets the "input_resolved" field.
func (_u *StageExecutionUpdateOne) SetInputResolved(v map[string]interface{}) *StageExecutionUpdateOne {
	_u.mutation.SetInputResolved(v)
	return _u
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (_u *StageExecutionUpdateOne) ClearInputResolved() *StageExecutionUpdateOne {
	_u.mutation.ClearInputResolved()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StageExecutionUpdateOne) SetOutput(v map[string]interface{}) *StageExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StageExecutionUpdateOne) ClearOutput() *StageExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdateOne) SetErrorMessage(v string) *StageExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorMessage(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdateOne) ClearErrorMessage() *StageExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdateOne) SetCompletedAt(v time.Time) *StageExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdateOne) ClearCompletedAt() *StageExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *StageExecutionUpdateOne) SetExecutionTimeMs(v int64) *StageExecutionUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableExecutionTimeMs(v *int64) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *StageExecutionUpdateOne) AddExecutionTimeMs(v int64) *StageExecutionUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *StageExecutionUpdateOne) ClearExecutionTimeMs() *StageExecutionUpdateOne {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdateOne) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdateOne) Where(ps ...predicate.StageExecution) *StageExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageExecutionUpdateOne) Select(field string, fields ...string) *StageExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageExecution entity.
func (_u *StageExecutionUpdateOne) Save(ctx context.Context) (*StageExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) SaveX(ctx context.Context) *StageExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.run"`)
	}
	return nil
}

func (_u *StageExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StageExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageexecution.FieldID)
		for _, f := range fields {
			if !stageexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(stageexecution.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(stageexecution.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.InputResolved(); ok {
		_spec.SetField(stageexecution.FieldInputResolved, field.TypeJSON, value)
	}
	if _u.mutation.InputResolvedCleared() {
		_spec.ClearField(stageexecution.FieldInputResolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stageexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stageexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(stageexecution.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(stageexecution.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(stageexecution.FieldExecutionTimeMs, field.TypeInt64)
	}
	_node = &StageExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
