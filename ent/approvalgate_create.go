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
	"github.com/conductor-hq/conductor/ent/approvalgate"
)

// ApprovalGateCreate is the builder for creating a ApprovalGate entity.
type ApprovalGateCreate struct {
	config
	mutation *ApprovalGateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTeamID sets the "team_id" field.
func (_c *ApprovalGateCreate) SetTeamID(v string) *ApprovalGateCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalGateCreate) SetTitle(v string) *ApprovalGateCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalGateCreate) SetDescription(v string) *ApprovalGateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableDescription(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalGateCreate) SetStatus(v approvalgate.Status) *ApprovalGateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableStatus(v *approvalgate.Status) *ApprovalGateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetApprovers sets the "approvers" field.
func (_c *ApprovalGateCreate) SetApprovers(v []string) *ApprovalGateCreate {
	_c.mutation.SetApprovers(v)
	return _c
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (_c *ApprovalGateCreate) SetRequestedByAgent(v string) *ApprovalGateCreate {
	_c.mutation.SetRequestedByAgent(v)
	return _c
}

// SetNillableRequestedByAgent sets the "requested_by_agent" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableRequestedByAgent(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetRequestedByAgent(*v)
	}
	return _c
}

// SetRequestedByUser sets the "requested_by_user" field.
func (_c *ApprovalGateCreate) SetRequestedByUser(v string) *ApprovalGateCreate {
	_c.mutation.SetRequestedByUser(v)
	return _c
}

// SetNillableRequestedByUser sets the "requested_by_user" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableRequestedByUser(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetRequestedByUser(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ApprovalGateCreate) SetTaskID(v string) *ApprovalGateCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableTaskID(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalGateCreate) SetExpiresAt(v time.Time) *ApprovalGateCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableExpiresAt(v *time.Time) *ApprovalGateCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetRespondedBy sets the "responded_by" field.
func (_c *ApprovalGateCreate) SetRespondedBy(v string) *ApprovalGateCreate {
	_c.mutation.SetRespondedBy(v)
	return _c
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableRespondedBy(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetRespondedBy(*v)
	}
	return _c
}

// SetResponseNote sets the "response_note" field.
func (_c *ApprovalGateCreate) SetResponseNote(v string) *ApprovalGateCreate {
	_c.mutation.SetResponseNote(v)
	return _c
}

// SetNillableResponseNote sets the "response_note" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableResponseNote(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetResponseNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalGateCreate) SetCreatedAt(v time.Time) *ApprovalGateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableCreatedAt(v *time.Time) *ApprovalGateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *ApprovalGateCreate) SetRespondedAt(v time.Time) *ApprovalGateCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableRespondedAt(v *time.Time) *ApprovalGateCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalGateCreate) SetID(v string) *ApprovalGateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_c *ApprovalGateCreate) Mutation() *ApprovalGateMutation {
	return _c.mutation
}

// Save creates the ApprovalGate in the database.
func (_c *ApprovalGateCreate) Save(ctx context.Context) (*ApprovalGate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalGateCreate) SaveX(ctx context.Context) *ApprovalGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalGateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalGateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalGateCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := approvalgate.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalgate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Approvers(); !ok {
		v := approvalgate.DefaultApprovers
		_c.mutation.SetApprovers(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalgate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalGateCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "ApprovalGate.team_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ApprovalGate.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ApprovalGate.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalGate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalgate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approvers(); !ok {
		return &ValidationError{Name: "approvers", err: errors.New(`ent: missing required field "ApprovalGate.approvers"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalGate.created_at"`)}
	}
	return nil
}

func (_c *ApprovalGateCreate) sqlSave(ctx context.Context) (*ApprovalGate, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalGate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalGateCreate) createSpec() (*ApprovalGate, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalGate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalgate.Table, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(approvalgate.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approvalgate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalgate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalgate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Approvers(); ok {
		_spec.SetField(approvalgate.FieldApprovers, field.TypeJSON, value)
		_node.Approvers = value
	}
	if value, ok := _c.mutation.RequestedByAgent(); ok {
		_spec.SetField(approvalgate.FieldRequestedByAgent, field.TypeString, value)
		_node.RequestedByAgent = &value
	}
	if value, ok := _c.mutation.RequestedByUser(); ok {
		_spec.SetField(approvalgate.FieldRequestedByUser, field.TypeString, value)
		_node.RequestedByUser = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(approvalgate.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalgate.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.RespondedBy(); ok {
		_spec.SetField(approvalgate.FieldRespondedBy, field.TypeString, value)
		_node.RespondedBy = &value
	}
	if value, ok := _c.mutation.ResponseNote(); ok {
		_spec.SetField(approvalgate.FieldResponseNote, field.TypeString, value)
		_node.ResponseNote = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalgate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(approvalgate.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalGate.Create().
//		SetTeamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalGateUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalGateCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalGateUpsertOne {
	_c.conflict = opts
	return &ApprovalGateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalGateCreate) OnConflictColumns(columns ...string) *ApprovalGateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalGateUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalGateUpsertOne is the builder for "upsert"-ing
	//  one ApprovalGate node.
	ApprovalGateUpsertOne struct {
		create *ApprovalGateCreate
	}

	// ApprovalGateUpsert is the "OnConflict" setter.
	ApprovalGateUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ApprovalGateUpsert) SetTitle(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateTitle() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ApprovalGateUpsert) SetDescription(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateDescription() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *ApprovalGateUpsert) SetStatus(v approvalgate.Status) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateStatus() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldStatus)
	return u
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalGateUpsert) SetApprovers(v []string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldApprovers, v)
	return u
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateApprovers() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldApprovers)
	return u
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (u *ApprovalGateUpsert) SetRequestedByAgent(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldRequestedByAgent, v)
	return u
}

// UpdateRequestedByAgent sets the "requested_by_agent" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateRequestedByAgent() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldRequestedByAgent)
	return u
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (u *ApprovalGateUpsert) ClearRequestedByAgent() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldRequestedByAgent)
	return u
}

// SetRequestedByUser sets the "requested_by_user" field.
func (u *ApprovalGateUpsert) SetRequestedByUser(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldRequestedByUser, v)
	return u
}

// UpdateRequestedByUser sets the "requested_by_user" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateRequestedByUser() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldRequestedByUser)
	return u
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (u *ApprovalGateUpsert) ClearRequestedByUser() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldRequestedByUser)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ApprovalGateUpsert) SetTaskID(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateTaskID() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ApprovalGateUpsert) ClearTaskID() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldTaskID)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalGateUpsert) SetExpiresAt(v time.Time) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateExpiresAt() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalGateUpsert) ClearExpiresAt() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldExpiresAt)
	return u
}

// SetRespondedBy sets the "responded_by" field.
func (u *ApprovalGateUpsert) SetRespondedBy(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldRespondedBy, v)
	return u
}

// UpdateRespondedBy sets the "responded_by" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateRespondedBy() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldRespondedBy)
	return u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (u *ApprovalGateUpsert) ClearRespondedBy() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldRespondedBy)
	return u
}

// SetResponseNote sets the "response_note" field.
func (u *ApprovalGateUpsert) SetResponseNote(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldResponseNote, v)
	return u
}

// UpdateResponseNote sets the "response_note" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateResponseNote() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldResponseNote)
	return u
}

// ClearResponseNote clears the value of the "response_note" field.
func (u *ApprovalGateUpsert) ClearResponseNote() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldResponseNote)
	return u
}

// SetRespondedAt sets the "responded_at" field.
func (u *ApprovalGateUpsert) SetRespondedAt(v time.Time) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldRespondedAt, v)
	return u
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateRespondedAt() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldRespondedAt)
	return u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *ApprovalGateUpsert) ClearRespondedAt() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldRespondedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalgate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalGateUpsertOne) UpdateNewValues() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalgate.FieldID)
		}
		if _, exists := u.create.mutation.TeamID(); exists {
			s.SetIgnore(approvalgate.FieldTeamID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalgate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalGateUpsertOne) Ignore() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalGateUpsertOne) DoNothing() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalGateCreate.OnConflict
// documentation for more info.
func (u *ApprovalGateUpsertOne) Update(set func(*ApprovalGateUpsert)) *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalGateUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ApprovalGateUpsertOne) SetTitle(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateTitle() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ApprovalGateUpsertOne) SetDescription(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateDescription() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalGateUpsertOne) SetStatus(v approvalgate.Status) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateStatus() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalGateUpsertOne) SetApprovers(v []string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateApprovers() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateApprovers()
	})
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (u *ApprovalGateUpsertOne) SetRequestedByAgent(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRequestedByAgent(v)
	})
}

// UpdateRequestedByAgent sets the "requested_by_agent" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateRequestedByAgent() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRequestedByAgent()
	})
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (u *ApprovalGateUpsertOne) ClearRequestedByAgent() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRequestedByAgent()
	})
}

// SetRequestedByUser sets the "requested_by_user" field.
func (u *ApprovalGateUpsertOne) SetRequestedByUser(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRequestedByUser(v)
	})
}

// UpdateRequestedByUser sets the "requested_by_user" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateRequestedByUser() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRequestedByUser()
	})
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (u *ApprovalGateUpsertOne) ClearRequestedByUser() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRequestedByUser()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ApprovalGateUpsertOne) SetTaskID(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateTaskID() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ApprovalGateUpsertOne) ClearTaskID() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearTaskID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalGateUpsertOne) SetExpiresAt(v time.Time) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateExpiresAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalGateUpsertOne) ClearExpiresAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearExpiresAt()
	})
}

// SetRespondedBy sets the "responded_by" field.
func (u *ApprovalGateUpsertOne) SetRespondedBy(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRespondedBy(v)
	})
}

// UpdateRespondedBy sets the "responded_by" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateRespondedBy() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRespondedBy()
	})
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (u *ApprovalGateUpsertOne) ClearRespondedBy() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRespondedBy()
	})
}

// SetResponseNote sets the "response_note" field.
func (u *ApprovalGateUpsertOne) SetResponseNote(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetResponseNote(v)
	})
}

// UpdateResponseNote sets the "response_note" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateResponseNote() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateResponseNote()
	})
}

// ClearResponseNote clears the value of the "response_note" field.
func (u *ApprovalGateUpsertOne) ClearResponseNote() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearResponseNote()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *ApprovalGateUpsertOne) SetRespondedAt(v time.Time) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateRespondedAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *ApprovalGateUpsertOne) ClearRespondedAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *ApprovalGateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalGateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalGateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalGateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalGateUpsertOne.ID is not supported by MySQL driver. Use ApprovalGateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalGateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalGateCreateBulk is the builder for creating many ApprovalGate entities in bulk.
type ApprovalGateCreateBulk struct {
	config
	err      error
	builders []*ApprovalGateCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalGate entities in the database.
func (_c *ApprovalGateCreateBulk) Save(ctx context.Context) ([]*ApprovalGate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalGate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalGateMutation)
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
func (_c *ApprovalGateCreateBulk) SaveX(ctx context.Context) []*ApprovalGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalGateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalGateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalGate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalGateUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalGateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalGateUpsertBulk {
	_c.conflict = opts
	return &ApprovalGateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalGateCreateBulk) OnConflictColumns(columns ...string) *ApprovalGateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalGateUpsertBulk{
		create: _c,
	}
}

// ApprovalGateUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalGate nodes.
type ApprovalGateUpsertBulk struct {
	create *ApprovalGateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalgate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalGateUpsertBulk) UpdateNewValues() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalgate.FieldID)
			}
			if _, exists := b.mutation.TeamID(); exists {
				s.SetIgnore(approvalgate.FieldTeamID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalgate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalGateUpsertBulk) Ignore() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalGateUpsertBulk) DoNothing() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalGateCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalGateUpsertBulk) Update(set func(*ApprovalGateUpsert)) *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalGateUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ApprovalGateUpsertBulk) SetTitle(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateTitle() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ApprovalGateUpsertBulk) SetDescription(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateDescription() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalGateUpsertBulk) SetStatus(v approvalgate.Status) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateStatus() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalGateUpsertBulk) SetApprovers(v []string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateApprovers() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateApprovers()
	})
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (u *ApprovalGateUpsertBulk) SetRequestedByAgent(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRequestedByAgent(v)
	})
}

// UpdateRequestedByAgent sets the "requested_by_agent" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateRequestedByAgent() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRequestedByAgent()
	})
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (u *ApprovalGateUpsertBulk) ClearRequestedByAgent() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRequestedByAgent()
	})
}

// SetRequestedByUser sets the "requested_by_user" field.
func (u *ApprovalGateUpsertBulk) SetRequestedByUser(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRequestedByUser(v)
	})
}

// UpdateRequestedByUser sets the "requested_by_user" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateRequestedByUser() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRequestedByUser()
	})
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (u *ApprovalGateUpsertBulk) ClearRequestedByUser() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRequestedByUser()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ApprovalGateUpsertBulk) SetTaskID(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateTaskID() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ApprovalGateUpsertBulk) ClearTaskID() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearTaskID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalGateUpsertBulk) SetExpiresAt(v time.Time) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateExpiresAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalGateUpsertBulk) ClearExpiresAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearExpiresAt()
	})
}

// SetRespondedBy sets the "responded_by" field.
func (u *ApprovalGateUpsertBulk) SetRespondedBy(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRespondedBy(v)
	})
}

// UpdateRespondedBy sets the "responded_by" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateRespondedBy() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRespondedBy()
	})
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (u *ApprovalGateUpsertBulk) ClearRespondedBy() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRespondedBy()
	})
}

// SetResponseNote sets the "response_note" field.
func (u *ApprovalGateUpsertBulk) SetResponseNote(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetResponseNote(v)
	})
}

// UpdateResponseNote sets the "response_note" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateResponseNote() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateResponseNote()
	})
}

// ClearResponseNote clears the value of the "response_note" field.
func (u *ApprovalGateUpsertBulk) ClearResponseNote() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearResponseNote()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *ApprovalGateUpsertBulk) SetRespondedAt(v time.Time) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateRespondedAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *ApprovalGateUpsertBulk) ClearRespondedAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *ApprovalGateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalGateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalGateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalGateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
