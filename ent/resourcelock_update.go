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
	"github.com/conductor-hq/conductor/ent/resourcelock"
)

// ResourceLockUpdate is the builder for updating ResourceLock entities.
type ResourceLockUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceLockMutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdate) Where(ps ...predicate.ResourceLock) *ResourceLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerAgent sets the "owner_agent" field.
func (_u *ResourceLockUpdate) SetOwnerAgent(v string) *ResourceLockUpdate {
	_u.mutation.SetOwnerAgent(v)
	return _u
}

// SetNillableOwnerAgent sets the "owner_agent" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableOwnerAgent(v *string) *ResourceLockUpdate {
	if v != nil {
		_u.SetOwnerAgent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResourceLockUpdate) SetStatus(v resourcelock.Status) *ResourceLockUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableStatus(v *resourcelock.Status) *ResourceLockUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConflictStrategy sets the "conflict_strategy" field.
func (_u *ResourceLockUpdate) SetConflictStrategy(v resourcelock.ConflictStrategy) *ResourceLockUpdate {
	_u.mutation.SetConflictStrategy(v)
	return _u
}

// SetNillableConflictStrategy sets the "conflict_strategy" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableConflictStrategy(v *resourcelock.ConflictStrategy) *ResourceLockUpdate {
	if v != nil {
		_u.SetConflictStrategy(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ResourceLockUpdate) SetContentHash(v string) *ResourceLockUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableContentHash(v *string) *ResourceLockUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ResourceLockUpdate) ClearContentHash() *ResourceLockUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResourceLockUpdate) SetVersion(v int) *ResourceLockUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableVersion(v *int) *ResourceLockUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResourceLockUpdate) AddVersion(v int) *ResourceLockUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *ResourceLockUpdate) SetAcquiredAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableAcquiredAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdate) SetExpiresAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceLockUpdate) SetReleasedAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableReleasedAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceLockUpdate) ClearReleasedAt() *ResourceLockUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdate) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceLockUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := resourcelock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConflictStrategy(); ok {
		if err := resourcelock.ConflictStrategyValidator(v); err != nil {
			return &ValidationError{Name: "conflict_strategy", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.conflict_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerAgent(); ok {
		_spec.SetField(resourcelock.FieldOwnerAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resourcelock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConflictStrategy(); ok {
		_spec.SetField(resourcelock.FieldConflictStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(resourcelock.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(resourcelock.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourcelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourcelock.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceLockUpdateOne is the builder for updating a single ResourceLock entity.
type ResourceLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceLockMutation
}

// SetOwnerAgent sets the "owner_agent" field.
func (_u *ResourceLockUpdateOne) SetOwnerAgent(v string) *ResourceLockUpdateOne {
	_u.mutation.SetOwnerAgent(v)
	return _u
}

// SetNillableOwnerAgent sets the "owner_agent" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableOwnerAgent(v *string) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetOwnerAgent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResourceLockUpdateOne) SetStatus(v resourcelock.Status) *ResourceLockUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableStatus(v *resourcelock.Status) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConflictStrategy sets the "conflict_strategy" field.
func (_u *ResourceLockUpdateOne) SetConflictStrategy(v resourcelock.ConflictStrategy) *ResourceLockUpdateOne {
	_u.mutation.SetConflictStrategy(v)
	return _u
}

// SetNillableConflictStrategy sets the "conflict_strategy" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableConflictStrategy(v *resourcelock.ConflictStrategy) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetConflictStrategy(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ResourceLockUpdateOne) SetContentHash(v string) *ResourceLockUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableContentHash(v *string) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ResourceLockUpdateOne) ClearContentHash() *ResourceLockUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResourceLockUpdateOne) SetVersion(v int) *ResourceLockUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableVersion(v *int) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResourceLockUpdateOne) AddVersion(v int) *ResourceLockUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *ResourceLockUpdateOne) SetAcquiredAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableAcquiredAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdateOne) SetExpiresAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceLockUpdateOne) SetReleasedAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableReleasedAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceLockUpdateOne) ClearReleasedAt() *ResourceLockUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdateOne) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdateOne) Where(ps ...predicate.ResourceLock) *ResourceLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceLockUpdateOne) Select(field string, fields ...string) *ResourceLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceLock entity.
func (_u *ResourceLockUpdateOne) Save(ctx context.Context) (*ResourceLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) SaveX(ctx context.Context) *ResourceLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceLockUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := resourcelock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConflictStrategy(); ok {
		if err := resourcelock.ConflictStrategyValidator(v); err != nil {
			return &ValidationError{Name: "conflict_strategy", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.conflict_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceLockUpdateOne) sqlSave(ctx context.Context) (_node *ResourceLock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourcelock.FieldID)
		for _, f := range fields {
			if !resourcelock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourcelock.FieldID {
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
	if value, ok := _u.mutation.OwnerAgent(); ok {
		_spec.SetField(resourcelock.FieldOwnerAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resourcelock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConflictStrategy(); ok {
		_spec.SetField(resourcelock.FieldConflictStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(resourcelock.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(resourcelock.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourcelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourcelock.FieldReleasedAt, field.TypeTime)
	}
	_node = &ResourceLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
