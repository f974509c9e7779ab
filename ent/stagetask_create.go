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
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/stagetask"
)

// StageTaskCreate is the builder for creating a StageTask entity.
type StageTaskCreate struct {
	config
	mutation *StageTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *StageTaskCreate) SetQueue(v stagetask.Queue) *StageTaskCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetProcessID sets the "process_id" field.
func (_c *StageTaskCreate) SetProcessID(v string) *StageTaskCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageTaskCreate) SetStatus(v stagetask.Status) *StageTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableStatus(v *stagetask.Status) *StageTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *StageTaskCreate) SetEnqueuedAt(v time.Time) *StageTaskCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableEnqueuedAt(v *time.Time) *StageTaskCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageTaskCreate) SetStartedAt(v time.Time) *StageTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableStartedAt(v *time.Time) *StageTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *StageTaskCreate) SetFinishedAt(v time.Time) *StageTaskCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableFinishedAt(v *time.Time) *StageTaskCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageTaskCreate) SetErrorMessage(v string) *StageTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableErrorMessage(v *string) *StageTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *StageTaskCreate) SetWorkerID(v string) *StageTaskCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *StageTaskCreate) SetNillableWorkerID(v *string) *StageTaskCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageTaskCreate) SetID(v string) *StageTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProcess sets the "process" edge to the MonitoringProcess entity.
func (_c *StageTaskCreate) SetProcess(v *MonitoringProcess) *StageTaskCreate {
	return _c.SetProcessID(v.ID)
}

// Mutation returns the StageTaskMutation object of the builder.
func (_c *StageTaskCreate) Mutation() *StageTaskMutation {
	return _c.mutation
}

// Save creates the StageTask in the database.
func (_c *StageTaskCreate) Save(ctx context.Context) (*StageTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageTaskCreate) SaveX(ctx context.Context) *StageTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stagetask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := stagetask.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageTaskCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "StageTask.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := stagetask.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "StageTask.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "StageTask.process_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stagetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "StageTask.enqueued_at"`)}
	}
	if len(_c.mutation.ProcessIDs()) == 0 {
		return &ValidationError{Name: "process", err: errors.New(`ent: missing required edge "StageTask.process"`)}
	}
	return nil
}

func (_c *StageTaskCreate) sqlSave(ctx context.Context) (*StageTask, error) {
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
			return nil, fmt.Errorf("unexpected StageTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageTaskCreate) createSpec() (*StageTask, *sqlgraph.CreateSpec) {
	var (
		_node = &StageTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagetask.Table, sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(stagetask.FieldQueue, field.TypeEnum, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stagetask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(stagetask.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stagetask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(stagetask.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stagetask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(stagetask.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if nodes := _c.mutation.ProcessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagetask.ProcessTable,
			Columns: []string{stagetask.ProcessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProcessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageTask.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageTaskUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *StageTaskCreate) OnConflict(opts ...sql.ConflictOption) *StageTaskUpsertOne {
	_c.conflict = opts
	return &StageTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageTaskCreate) OnConflictColumns(columns ...string) *StageTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageTaskUpsertOne{
		create: _c,
	}
}

type (
	// StageTaskUpsertOne is the builder for "upsert"-ing
	//  one StageTask node.
	StageTaskUpsertOne struct {
		create *StageTaskCreate
	}

	// StageTaskUpsert is the "OnConflict" setter.
	StageTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *StageTaskUpsert) SetStatus(v stagetask.Status) *StageTaskUpsert {
	u.Set(stagetask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageTaskUpsert) UpdateStatus() *StageTaskUpsert {
	u.SetExcluded(stagetask.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StageTaskUpsert) SetStartedAt(v time.Time) *StageTaskUpsert {
	u.Set(stagetask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTaskUpsert) UpdateStartedAt() *StageTaskUpsert {
	u.SetExcluded(stagetask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageTaskUpsert) ClearStartedAt() *StageTaskUpsert {
	u.SetNull(stagetask.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *StageTaskUpsert) SetFinishedAt(v time.Time) *StageTaskUpsert {
	u.Set(stagetask.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *StageTaskUpsert) UpdateFinishedAt() *StageTaskUpsert {
	u.SetExcluded(stagetask.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *StageTaskUpsert) ClearFinishedAt() *StageTaskUpsert {
	u.SetNull(stagetask.FieldFinishedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StageTaskUpsert) SetErrorMessage(v string) *StageTaskUpsert {
	u.Set(stagetask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageTaskUpsert) UpdateErrorMessage() *StageTaskUpsert {
	u.SetExcluded(stagetask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageTaskUpsert) ClearErrorMessage() *StageTaskUpsert {
	u.SetNull(stagetask.FieldErrorMessage)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *StageTaskUpsert) SetWorkerID(v string) *StageTaskUpsert {
	u.Set(stagetask.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StageTaskUpsert) UpdateWorkerID() *StageTaskUpsert {
	u.SetExcluded(stagetask.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StageTaskUpsert) ClearWorkerID() *StageTaskUpsert {
	u.SetNull(stagetask.FieldWorkerID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageTaskUpsertOne) UpdateNewValues() *StageTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagetask.FieldID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(stagetask.FieldQueue)
		}
		if _, exists := u.create.mutation.ProcessID(); exists {
			s.SetIgnore(stagetask.FieldProcessID)
		}
		if _, exists := u.create.mutation.EnqueuedAt(); exists {
			s.SetIgnore(stagetask.FieldEnqueuedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageTaskUpsertOne) Ignore() *StageTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageTaskUpsertOne) DoNothing() *StageTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageTaskCreate.OnConflict
// documentation for more info.
func (u *StageTaskUpsertOne) Update(set func(*StageTaskUpsert)) *StageTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StageTaskUpsertOne) SetStatus(v stagetask.Status) *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageTaskUpsertOne) UpdateStatus() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageTaskUpsertOne) SetStartedAt(v time.Time) *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTaskUpsertOne) UpdateStartedAt() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageTaskUpsertOne) ClearStartedAt() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *StageTaskUpsertOne) SetFinishedAt(v time.Time) *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *StageTaskUpsertOne) UpdateFinishedAt() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *StageTaskUpsertOne) ClearFinishedAt() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageTaskUpsertOne) SetErrorMessage(v string) *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageTaskUpsertOne) UpdateErrorMessage() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageTaskUpsertOne) ClearErrorMessage() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *StageTaskUpsertOne) SetWorkerID(v string) *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StageTaskUpsertOne) UpdateWorkerID() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StageTaskUpsertOne) ClearWorkerID() *StageTaskUpsertOne {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearWorkerID()
	})
}

// Exec executes the query.
func (u *StageTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageTaskUpsertOne.ID is not supported by MySQL driver. Use StageTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageTaskCreateBulk is the builder for creating many StageTask entities in bulk.
type StageTaskCreateBulk struct {
	config
	err      error
	builders []*StageTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the StageTask entities in the database.
func (_c *StageTaskCreateBulk) Save(ctx context.Context) ([]*StageTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageTaskMutation)
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
func (_c *StageTaskCreateBulk) SaveX(ctx context.Context) []*StageTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageTaskUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *StageTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageTaskUpsertBulk {
	_c.conflict = opts
	return &StageTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageTaskCreateBulk) OnConflictColumns(columns ...string) *StageTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageTaskUpsertBulk{
		create: _c,
	}
}

// StageTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of StageTask nodes.
type StageTaskUpsertBulk struct {
	create *StageTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageTaskUpsertBulk) UpdateNewValues() *StageTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagetask.FieldID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(stagetask.FieldQueue)
			}
			if _, exists := b.mutation.ProcessID(); exists {
				s.SetIgnore(stagetask.FieldProcessID)
			}
			if _, exists := b.mutation.EnqueuedAt(); exists {
				s.SetIgnore(stagetask.FieldEnqueuedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageTaskUpsertBulk) Ignore() *StageTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageTaskUpsertBulk) DoNothing() *StageTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageTaskCreateBulk.OnConflict
// documentation for more info.
func (u *StageTaskUpsertBulk) Update(set func(*StageTaskUpsert)) *StageTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StageTaskUpsertBulk) SetStatus(v stagetask.Status) *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageTaskUpsertBulk) UpdateStatus() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageTaskUpsertBulk) SetStartedAt(v time.Time) *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTaskUpsertBulk) UpdateStartedAt() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageTaskUpsertBulk) ClearStartedAt() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *StageTaskUpsertBulk) SetFinishedAt(v time.Time) *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *StageTaskUpsertBulk) UpdateFinishedAt() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *StageTaskUpsertBulk) ClearFinishedAt() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageTaskUpsertBulk) SetErrorMessage(v string) *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageTaskUpsertBulk) UpdateErrorMessage() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageTaskUpsertBulk) ClearErrorMessage() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *StageTaskUpsertBulk) SetWorkerID(v string) *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StageTaskUpsertBulk) UpdateWorkerID() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StageTaskUpsertBulk) ClearWorkerID() *StageTaskUpsertBulk {
	return u.Update(func(s *StageTaskUpsert) {
		s.ClearWorkerID()
	})
}

// Exec executes the query.
func (u *StageTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
