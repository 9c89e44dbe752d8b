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
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

// AuditRecordCreate is the builder for creating a AuditRecord entity.
type AuditRecordCreate struct {
	config
	mutation *AuditRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *AuditRecordCreate) SetRunID(v string) *AuditRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *AuditRecordCreate) SetStageID(v string) *AuditRecordCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AuditRecordCreate) SetAgentID(v string) *AuditRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditRecordCreate) SetAction(v auditrecord.Action) *AuditRecordCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditRecordCreate) SetStatus(v string) *AuditRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetInputHash sets the "input_hash" field.
func (_c *AuditRecordCreate) SetInputHash(v string) *AuditRecordCreate {
	_c.mutation.SetInputHash(v)
	return _c
}

// SetOutputHash sets the "output_hash" field.
func (_c *AuditRecordCreate) SetOutputHash(v string) *AuditRecordCreate {
	_c.mutation.SetOutputHash(v)
	return _c
}

// SetNillableOutputHash sets the "output_hash" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableOutputHash(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetOutputHash(*v)
	}
	return _c
}

// SetLoggedAt sets the "logged_at" field.
func (_c *AuditRecordCreate) SetLoggedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetLoggedAt(v)
	return _c
}

// SetNillableLoggedAt sets the "logged_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableLoggedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetLoggedAt(*v)
	}
	return _c
}

// SetSignature sets the "signature" field.
func (_c *AuditRecordCreate) SetSignature(v *models.AuditSignature) *AuditRecordCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AuditRecordCreate) SetID(v string) *AuditRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *AuditRecordCreate) SetRun(v *WorkflowRun) *AuditRecordCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_c *AuditRecordCreate) Mutation() *AuditRecordMutation {
	return _c.mutation
}

// Save creates the AuditRecord in the database.
func (_c *AuditRecordCreate) Save(ctx context.Context) (*AuditRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditRecordCreate) SaveX(ctx context.Context) *AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditRecordCreate) defaults() {
	if _, ok := _c.mutation.LoggedAt(); !ok {
		v := auditrecord.DefaultLoggedAt()
		_c.mutation.SetLoggedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AuditRecord.run_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "AuditRecord.stage_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AuditRecord.agent_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditRecord.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := auditrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditRecord.status"`)}
	}
	if _, ok := _c.mutation.InputHash(); !ok {
		return &ValidationError{Name: "input_hash", err: errors.New(`ent: missing required field "AuditRecord.input_hash"`)}
	}
	if _, ok := _c.mutation.LoggedAt(); !ok {
		return &ValidationError{Name: "logged_at", err: errors.New(`ent: missing required field "AuditRecord.logged_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AuditRecord.run"`)}
	}
	return nil
}

func (_c *AuditRecordCreate) sqlSave(ctx context.Context) (*AuditRecord, error) {
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
			return nil, fmt.Errorf("unexpected AuditRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditRecordCreate) createSpec() (*AuditRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditrecord.Table, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(auditrecord.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(auditrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditrecord.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(auditrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputHash(); ok {
		_spec.SetField(auditrecord.FieldInputHash, field.TypeString, value)
		_node.InputHash = value
	}
	if value, ok := _c.mutation.OutputHash(); ok {
		_spec.SetField(auditrecord.FieldOutputHash, field.TypeString, value)
		_node.OutputHash = &value
	}
	if value, ok := _c.mutation.LoggedAt(); ok {
		_spec.SetField(auditrecord.FieldLoggedAt, field.TypeTime, value)
		_node.LoggedAt = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(auditrecord.FieldSignature, field.TypeJSON, value)
		_node.Signature = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.RunTable,
			Columns: []string{auditrecord.RunColumn},
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
//	client.AuditRecord.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditRecordUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditRecordCreate) OnConflict(opts ...sql.ConflictOption) *AuditRecordUpsertOne {
	_c.conflict = opts
	return &AuditRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditRecordCreate) OnConflictColumns(columns ...string) *AuditRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditRecordUpsertOne{
		create: _c,
	}
}

type (
	// AuditRecordUpsertOne is the builder for "upsert"-ing
	//  one AuditRecord node.
	AuditRecordUpsertOne struct {
		create *AuditRecordCreate
	}

	// AuditRecordUpsert is the "OnConflict" setter.
	AuditRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetSignature sets the "signature" field.
func (u *AuditRecordUpsert) SetSignature(v *models.AuditSignature) *AuditRecordUpsert {
	u.Set(auditrecord.FieldSignature, v)
	return u
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateSignature() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldSignature)
	return u
}

// ClearSignature clears the value of the "signature" field.
func (u *AuditRecordUpsert) ClearSignature() *AuditRecordUpsert {
	u.SetNull(auditrecord.FieldSignature)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditRecordUpsertOne) UpdateNewValues() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditrecord.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(auditrecord.FieldRunID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(auditrecord.FieldStageID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(auditrecord.FieldAgentID)
		}
		if _, exists := u.create.mutation.Action(); exists {
			s.SetIgnore(auditrecord.FieldAction)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(auditrecord.FieldStatus)
		}
		if _, exists := u.create.mutation.InputHash(); exists {
			s.SetIgnore(auditrecord.FieldInputHash)
		}
		if _, exists := u.create.mutation.OutputHash(); exists {
			s.SetIgnore(auditrecord.FieldOutputHash)
		}
		if _, exists := u.create.mutation.LoggedAt(); exists {
			s.SetIgnore(auditrecord.FieldLoggedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditRecordUpsertOne) Ignore() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditRecordUpsertOne) DoNothing() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditRecordCreate.OnConflict
// documentation for more info.
func (u *AuditRecordUpsertOne) Update(set func(*AuditRecordUpsert)) *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSignature sets the "signature" field.
func (u *AuditRecordUpsertOne) SetSignature(v *models.AuditSignature) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateSignature() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *AuditRecordUpsertOne) ClearSignature() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearSignature()
	})
}

// Exec executes the query.
func (u *AuditRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditRecordUpsertOne.ID is not supported by MySQL driver. Use AuditRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditRecordCreateBulk is the builder for creating many AuditRecord entities in bulk.
type AuditRecordCreateBulk struct {
	config
	err      error
	builders []*AuditRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditRecord entities in the database.
func (_c *AuditRecordCreateBulk) Save(ctx context.Context) ([]*AuditRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditRecordMutation)
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
func (_c *AuditRecordCreateBulk) SaveX(ctx context.Context) []*AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditRecordUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditRecordUpsertBulk {
	_c.conflict = opts
	return &AuditRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditRecordCreateBulk) OnConflictColumns(columns ...string) *AuditRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditRecordUpsertBulk{
		create: _c,
	}
}

// AuditRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditRecord nodes.
type AuditRecordUpsertBulk struct {
	create *AuditRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditRecordUpsertBulk) UpdateNewValues() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditrecord.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(auditrecord.FieldRunID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(auditrecord.FieldStageID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(auditrecord.FieldAgentID)
			}
			if _, exists := b.mutation.Action(); exists {
				s.SetIgnore(auditrecord.FieldAction)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(auditrecord.FieldStatus)
			}
			if _, exists := b.mutation.InputHash(); exists {
				s.SetIgnore(auditrecord.FieldInputHash)
			}
			if _, exists := b.mutation.OutputHash(); exists {
				s.SetIgnore(auditrecord.FieldOutputHash)
			}
			if _, exists := b.mutation.LoggedAt(); exists {
				s.SetIgnore(auditrecord.FieldLoggedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditRecordUpsertBulk) Ignore() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditRecordUpsertBulk) DoNothing() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AuditRecordUpsertBulk) Update(set func(*AuditRecordUpsert)) *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSignature sets the "signature" field.
func (u *AuditRecordUpsertBulk) SetSignature(v *models.AuditSignature) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateSignature() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *AuditRecordUpsertBulk) ClearSignature() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearSignature()
	})
}

// Exec executes the query.
func (u *AuditRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
