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
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
)

// UpstreamCredentialCreate is the builder for creating a UpstreamCredential entity.
type UpstreamCredentialCreate struct {
	config
	mutation *UpstreamCredentialMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UpstreamCredentialCreate) SetUserID(v string) *UpstreamCredentialCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UpstreamCredentialCreate) SetDisplayName(v string) *UpstreamCredentialCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *UpstreamCredentialCreate) SetUsername(v string) *UpstreamCredentialCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_c *UpstreamCredentialCreate) SetPasswordEncrypted(v string) *UpstreamCredentialCreate {
	_c.mutation.SetPasswordEncrypted(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UpstreamCredentialCreate) SetIsActive(v bool) *UpstreamCredentialCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UpstreamCredentialCreate) SetNillableIsActive(v *bool) *UpstreamCredentialCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UpstreamCredentialCreate) SetCreatedAt(v time.Time) *UpstreamCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UpstreamCredentialCreate) SetNillableCreatedAt(v *time.Time) *UpstreamCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UpstreamCredentialCreate) SetLastUsedAt(v time.Time) *UpstreamCredentialCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UpstreamCredentialCreate) SetNillableLastUsedAt(v *time.Time) *UpstreamCredentialCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UpstreamCredentialCreate) SetID(v string) *UpstreamCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *UpstreamCredentialCreate) SetOwnerID(id string) *UpstreamCredentialCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *UpstreamCredentialCreate) SetOwner(v *User) *UpstreamCredentialCreate {
	return _c.SetOwnerID(v.ID)
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_c *UpstreamCredentialCreate) AddProcessIDs(ids ...string) *UpstreamCredentialCreate {
	_c.mutation.AddProcessIDs(ids...)
	return _c
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_c *UpstreamCredentialCreate) AddProcesses(v ...*MonitoringProcess) *UpstreamCredentialCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamCredentialMutation object of the builder.
func (_c *UpstreamCredentialCreate) Mutation() *UpstreamCredentialMutation {
	return _c.mutation
}

// Save creates the UpstreamCredential in the database.
func (_c *UpstreamCredentialCreate) Save(ctx context.Context) (*UpstreamCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UpstreamCredentialCreate) SaveX(ctx context.Context) *UpstreamCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UpstreamCredentialCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := upstreamcredential.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upstreamcredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UpstreamCredentialCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UpstreamCredential.user_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "UpstreamCredential.display_name"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "UpstreamCredential.username"`)}
	}
	if _, ok := _c.mutation.PasswordEncrypted(); !ok {
		return &ValidationError{Name: "password_encrypted", err: errors.New(`ent: missing required field "UpstreamCredential.password_encrypted"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "UpstreamCredential.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UpstreamCredential.created_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "UpstreamCredential.owner"`)}
	}
	return nil
}

func (_c *UpstreamCredentialCreate) sqlSave(ctx context.Context) (*UpstreamCredential, error) {
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
			return nil, fmt.Errorf("unexpected UpstreamCredential.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UpstreamCredentialCreate) createSpec() (*UpstreamCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &UpstreamCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upstreamcredential.Table, sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(upstreamcredential.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(upstreamcredential.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamcredential.FieldPasswordEncrypted, field.TypeString, value)
		_node.PasswordEncrypted = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(upstreamcredential.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upstreamcredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamcredential.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upstreamcredential.OwnerTable,
			Columns: []string{upstreamcredential.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProcessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   upstreamcredential.ProcessesTable,
			Columns: upstreamcredential.ProcessesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString),
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
//	client.UpstreamCredential.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UpstreamCredentialUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UpstreamCredentialCreate) OnConflict(opts ...sql.ConflictOption) *UpstreamCredentialUpsertOne {
	_c.conflict = opts
	return &UpstreamCredentialUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UpstreamCredentialCreate) OnConflictColumns(columns ...string) *UpstreamCredentialUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UpstreamCredentialUpsertOne{
		create: _c,
	}
}

type (
	// UpstreamCredentialUpsertOne is the builder for "upsert"-ing
	//  one UpstreamCredential node.
	UpstreamCredentialUpsertOne struct {
		create *UpstreamCredentialCreate
	}

	// UpstreamCredentialUpsert is the "OnConflict" setter.
	UpstreamCredentialUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *UpstreamCredentialUpsert) SetDisplayName(v string) *UpstreamCredentialUpsert {
	u.Set(upstreamcredential.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UpstreamCredentialUpsert) UpdateDisplayName() *UpstreamCredentialUpsert {
	u.SetExcluded(upstreamcredential.FieldDisplayName)
	return u
}

// SetUsername sets the "username" field.
func (u *UpstreamCredentialUpsert) SetUsername(v string) *UpstreamCredentialUpsert {
	u.Set(upstreamcredential.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UpstreamCredentialUpsert) UpdateUsername() *UpstreamCredentialUpsert {
	u.SetExcluded(upstreamcredential.FieldUsername)
	return u
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (u *UpstreamCredentialUpsert) SetPasswordEncrypted(v string) *UpstreamCredentialUpsert {
	u.Set(upstreamcredential.FieldPasswordEncrypted, v)
	return u
}

// UpdatePasswordEncrypted sets the "password_encrypted" field to the value that was provided on create.
func (u *UpstreamCredentialUpsert) UpdatePasswordEncrypted() *UpstreamCredentialUpsert {
	u.SetExcluded(upstreamcredential.FieldPasswordEncrypted)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *UpstreamCredentialUpsert) SetIsActive(v bool) *UpstreamCredentialUpsert {
	u.Set(upstreamcredential.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UpstreamCredentialUpsert) UpdateIsActive() *UpstreamCredentialUpsert {
	u.SetExcluded(upstreamcredential.FieldIsActive)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UpstreamCredentialUpsert) SetLastUsedAt(v time.Time) *UpstreamCredentialUpsert {
	u.Set(upstreamcredential.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UpstreamCredentialUpsert) UpdateLastUsedAt() *UpstreamCredentialUpsert {
	u.SetExcluded(upstreamcredential.FieldLastUsedAt)
	return u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UpstreamCredentialUpsert) ClearLastUsedAt() *UpstreamCredentialUpsert {
	u.SetNull(upstreamcredential.FieldLastUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upstreamcredential.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UpstreamCredentialUpsertOne) UpdateNewValues() *UpstreamCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(upstreamcredential.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(upstreamcredential.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(upstreamcredential.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UpstreamCredentialUpsertOne) Ignore() *UpstreamCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UpstreamCredentialUpsertOne) DoNothing() *UpstreamCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UpstreamCredentialCreate.OnConflict
// documentation for more info.
func (u *UpstreamCredentialUpsertOne) Update(set func(*UpstreamCredentialUpsert)) *UpstreamCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UpstreamCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UpstreamCredentialUpsertOne) SetDisplayName(v string) *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertOne) UpdateDisplayName() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateDisplayName()
	})
}

// SetUsername sets the "username" field.
func (u *UpstreamCredentialUpsertOne) SetUsername(v string) *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertOne) UpdateUsername() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateUsername()
	})
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (u *UpstreamCredentialUpsertOne) SetPasswordEncrypted(v string) *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetPasswordEncrypted(v)
	})
}

// UpdatePasswordEncrypted sets the "password_encrypted" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertOne) UpdatePasswordEncrypted() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdatePasswordEncrypted()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UpstreamCredentialUpsertOne) SetIsActive(v bool) *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertOne) UpdateIsActive() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UpstreamCredentialUpsertOne) SetLastUsedAt(v time.Time) *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertOne) UpdateLastUsedAt() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UpstreamCredentialUpsertOne) ClearLastUsedAt() *UpstreamCredentialUpsertOne {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *UpstreamCredentialUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UpstreamCredentialCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UpstreamCredentialUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UpstreamCredentialUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UpstreamCredentialUpsertOne.ID is not supported by MySQL driver. Use UpstreamCredentialUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UpstreamCredentialUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UpstreamCredentialCreateBulk is the builder for creating many UpstreamCredential entities in bulk.
type UpstreamCredentialCreateBulk struct {
	config
	err      error
	builders []*UpstreamCredentialCreate
	conflict []sql.ConflictOption
}

// Save creates the UpstreamCredential entities in the database.
func (_c *UpstreamCredentialCreateBulk) Save(ctx context.Context) ([]*UpstreamCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UpstreamCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UpstreamCredentialMutation)
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
func (_c *UpstreamCredentialCreateBulk) SaveX(ctx context.Context) []*UpstreamCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UpstreamCredential.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UpstreamCredentialUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UpstreamCredentialCreateBulk) OnConflict(opts ...sql.ConflictOption) *UpstreamCredentialUpsertBulk {
	_c.conflict = opts
	return &UpstreamCredentialUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UpstreamCredentialCreateBulk) OnConflictColumns(columns ...string) *UpstreamCredentialUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UpstreamCredentialUpsertBulk{
		create: _c,
	}
}

// UpstreamCredentialUpsertBulk is the builder for "upsert"-ing
// a bulk of UpstreamCredential nodes.
type UpstreamCredentialUpsertBulk struct {
	create *UpstreamCredentialCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upstreamcredential.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UpstreamCredentialUpsertBulk) UpdateNewValues() *UpstreamCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(upstreamcredential.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(upstreamcredential.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(upstreamcredential.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UpstreamCredential.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UpstreamCredentialUpsertBulk) Ignore() *UpstreamCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UpstreamCredentialUpsertBulk) DoNothing() *UpstreamCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UpstreamCredentialCreateBulk.OnConflict
// documentation for more info.
func (u *UpstreamCredentialUpsertBulk) Update(set func(*UpstreamCredentialUpsert)) *UpstreamCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UpstreamCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UpstreamCredentialUpsertBulk) SetDisplayName(v string) *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertBulk) UpdateDisplayName() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateDisplayName()
	})
}

// SetUsername sets the "username" field.
func (u *UpstreamCredentialUpsertBulk) SetUsername(v string) *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertBulk) UpdateUsername() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateUsername()
	})
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (u *UpstreamCredentialUpsertBulk) SetPasswordEncrypted(v string) *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetPasswordEncrypted(v)
	})
}

// UpdatePasswordEncrypted sets the "password_encrypted" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertBulk) UpdatePasswordEncrypted() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdatePasswordEncrypted()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UpstreamCredentialUpsertBulk) SetIsActive(v bool) *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertBulk) UpdateIsActive() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UpstreamCredentialUpsertBulk) SetLastUsedAt(v time.Time) *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UpstreamCredentialUpsertBulk) UpdateLastUsedAt() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UpstreamCredentialUpsertBulk) ClearLastUsedAt() *UpstreamCredentialUpsertBulk {
	return u.Update(func(s *UpstreamCredentialUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *UpstreamCredentialUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UpstreamCredentialCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UpstreamCredentialCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UpstreamCredentialUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
