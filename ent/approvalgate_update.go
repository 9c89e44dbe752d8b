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
	"github.com/conductor-hq/conductor/ent/approvalgate"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ApprovalGateUpdate is the builder for updating ApprovalGate entities.
type ApprovalGateUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalGateMutation
}

// Where appends a list predicates to the ApprovalGateUpdate builder.
func (_u *ApprovalGateUpdate) Where(ps ...predicate.ApprovalGate) *ApprovalGateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalGateUpdate) SetTitle(v string) *ApprovalGateUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableTitle(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalGateUpdate) SetDescription(v string) *ApprovalGateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableDescription(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalGateUpdate) SetStatus(v approvalgate.Status) *ApprovalGateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableStatus(v *approvalgate.Status) *ApprovalGateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalGateUpdate) SetApprovers(v []string) *ApprovalGateUpdate {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalGateUpdate) AppendApprovers(v []string) *ApprovalGateUpdate {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (_u *ApprovalGateUpdate) SetRequestedByAgent(v string) *ApprovalGateUpdate {
	_u.mutation.SetRequestedByAgent(v)
	return _u
}

// SetNillableRequestedByAgent sets the "requested_by_agent" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableRequestedByAgent(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetRequestedByAgent(*v)
	}
	return _u
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (_u *ApprovalGateUpdate) ClearRequestedByAgent() *ApprovalGateUpdate {
	_u.mutation.ClearRequestedByAgent()
	return _u
}

// SetRequestedByUser sets the "requested_by_user" field.
func (_u *ApprovalGateUpdate) SetRequestedByUser(v string) *ApprovalGateUpdate {
	_u.mutation.SetRequestedByUser(v)
	return _u
}

// SetNillableRequestedByUser sets the "requested_by_user" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableRequestedByUser(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetRequestedByUser(*v)
	}
	return _u
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (_u *ApprovalGateUpdate) ClearRequestedByUser() *ApprovalGateUpdate {
	_u.mutation.ClearRequestedByUser()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ApprovalGateUpdate) SetTaskID(v string) *ApprovalGateUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableTaskID(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ApprovalGateUpdate) ClearTaskID() *ApprovalGateUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalGateUpdate) SetExpiresAt(v time.Time) *ApprovalGateUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalGateUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ApprovalGateUpdate) ClearExpiresAt() *ApprovalGateUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ApprovalGateUpdate) SetRespondedBy(v string) *ApprovalGateUpdate {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableRespondedBy(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ApprovalGateUpdate) ClearRespondedBy() *ApprovalGateUpdate {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetResponseNote sets the "response_note" field.
func (_u *ApprovalGateUpdate) SetResponseNote(v string) *ApprovalGateUpdate {
	_u.mutation.SetResponseNote(v)
	return _u
}

// SetNillableResponseNote sets the "response_note" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableResponseNote(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetResponseNote(*v)
	}
	return _u
}

// ClearResponseNote clears the value of the "response_note" field.
func (_u *ApprovalGateUpdate) ClearResponseNote() *ApprovalGateUpdate {
	_u.mutation.ClearResponseNote()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalGateUpdate) SetRespondedAt(v time.Time) *ApprovalGateUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableRespondedAt(v *time.Time) *ApprovalGateUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalGateUpdate) ClearRespondedAt() *ApprovalGateUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_u *ApprovalGateUpdate) Mutation() *ApprovalGateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalGateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalGateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalGateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalGateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalGateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalgate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalGateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalgate.Table, approvalgate.Columns, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalgate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalgate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalgate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approvalgate.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalgate.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.RequestedByAgent(); ok {
		_spec.SetField(approvalgate.FieldRequestedByAgent, field.TypeString, value)
	}
	if _u.mutation.RequestedByAgentCleared() {
		_spec.ClearField(approvalgate.FieldRequestedByAgent, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedByUser(); ok {
		_spec.SetField(approvalgate.FieldRequestedByUser, field.TypeString, value)
	}
	if _u.mutation.RequestedByUserCleared() {
		_spec.ClearField(approvalgate.FieldRequestedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(approvalgate.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(approvalgate.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalgate.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(approvalgate.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(approvalgate.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(approvalgate.FieldRespondedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseNote(); ok {
		_spec.SetField(approvalgate.FieldResponseNote, field.TypeString, value)
	}
	if _u.mutation.ResponseNoteCleared() {
		_spec.ClearField(approvalgate.FieldResponseNote, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approvalgate.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approvalgate.FieldRespondedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalgate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalGateUpdateOne is the builder for updating a single ApprovalGate entity.
type ApprovalGateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalGateMutation
}

// SetTitle sets the "title" field.
func (_u *ApprovalGateUpdateOne) SetTitle(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableTitle(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalGateUpdateOne) SetDescription(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableDescription(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalGateUpdateOne) SetStatus(v approvalgate.Status) *ApprovalGateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableStatus(v *approvalgate.Status) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalGateUpdateOne) SetApprovers(v []string) *ApprovalGateUpdateOne {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalGateUpdateOne) AppendApprovers(v []string) *ApprovalGateUpdateOne {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (_u *ApprovalGateUpdateOne) SetRequestedByAgent(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetRequestedByAgent(v)
	return _u
}

// SetNillableRequestedByAgent sets the "requested_by_agent" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableRequestedByAgent(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetRequestedByAgent(*v)
	}
	return _u
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (_u *ApprovalGateUpdateOne) ClearRequestedByAgent() *ApprovalGateUpdateOne {
	_u.mutation.ClearRequestedByAgent()
	return _u
}

// SetRequestedByUser sets the "requested_by_user" field.
func (_u *ApprovalGateUpdateOne) SetRequestedByUser(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetRequestedByUser(v)
	return _u
}

// SetNillableRequestedByUser sets the "requested_by_user" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableRequestedByUser(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetRequestedByUser(*v)
	}
	return _u
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (_u *ApprovalGateUpdateOne) ClearRequestedByUser() *ApprovalGateUpdateOne {
	_u.mutation.ClearRequestedByUser()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ApprovalGateUpdateOne) SetTaskID(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableTaskID(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ApprovalGateUpdateOne) ClearTaskID() *ApprovalGateUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalGateUpdateOne) SetExpiresAt(v time.Time) *ApprovalGateUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ApprovalGateUpdateOne) ClearExpiresAt() *ApprovalGateUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ApprovalGateUpdateOne) SetRespondedBy(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableRespondedBy(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ApprovalGateUpdateOne) ClearRespondedBy() *ApprovalGateUpdateOne {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetResponseNote sets the "response_note" field.
func (_u *ApprovalGateUpdateOne) SetResponseNote(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetResponseNote(v)
	return _u
}

// SetNillableResponseNote sets the "response_note" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableResponseNote(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetResponseNote(*v)
	}
	return _u
}

// ClearResponseNote clears the value of the "response_note" field.
func (_u *ApprovalGateUpdateOne) ClearResponseNote() *ApprovalGateUpdateOne {
	_u.mutation.ClearResponseNote()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalGateUpdateOne) SetRespondedAt(v time.Time) *ApprovalGateUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableRespondedAt(v *time.Time) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalGateUpdateOne) ClearRespondedAt() *ApprovalGateUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_u *ApprovalGateUpdateOne) Mutation() *ApprovalGateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalGateUpdate builder.
func (_u *ApprovalGateUpdateOne) Where(ps ...predicate.ApprovalGate) *ApprovalGateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalGateUpdateOne) Select(field string, fields ...string) *ApprovalGateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalGate entity.
func (_u *ApprovalGateUpdateOne) Save(ctx context.Context) (*ApprovalGate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalGateUpdateOne) SaveX(ctx context.Context) *ApprovalGate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalGateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalGateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalGateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalgate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalGateUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalGate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalgate.Table, approvalgate.Columns, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalGate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalgate.FieldID)
		for _, f := range fields {
			if !approvalgate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalgate.FieldID {
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
		_spec.SetField(approvalgate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalgate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalgate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approvalgate.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalgate.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.RequestedByAgent(); ok {
		_spec.SetField(approvalgate.FieldRequestedByAgent, field.TypeString, value)
	}
	if _u.mutation.RequestedByAgentCleared() {
		_spec.ClearField(approvalgate.FieldRequestedByAgent, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedByUser(); ok {
		_spec.SetField(approvalgate.FieldRequestedByUser, field.TypeString, value)
	}
	if _u.mutation.RequestedByUserCleared() {
		_spec.ClearField(approvalgate.FieldRequestedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(approvalgate.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(approvalgate.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalgate.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(approvalgate.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(approvalgate.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(approvalgate.FieldRespondedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseNote(); ok {
		_spec.SetField(approvalgate.FieldResponseNote, field.TypeString, value)
	}
	if _u.mutation.ResponseNoteCleared() {
		_spec.ClearField(approvalgate.FieldResponseNote, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approvalgate.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approvalgate.FieldRespondedAt, field.TypeTime)
	}
	_node = &ApprovalGate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalgate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
