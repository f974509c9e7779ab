// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/user"
)

// PromptTemplateCreate is the builder for creating a PromptTemplate entity.
type PromptTemplateCreate struct {
	config
	mutation *PromptTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *PromptTemplateCreate) SetOwnerUserID(v string) *PromptTemplateCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableOwnerUserID(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetOwnerUserID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PromptTemplateCreate) SetName(v string) *PromptTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PromptTemplateCreate) SetSystemPrompt(v string) *PromptTemplateCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_c *PromptTemplateCreate) SetUserPromptTemplate(v string) *PromptTemplateCreate {
	_c.mutation.SetUserPromptTemplate(v)
	return _c
}

// SetIsSystem sets the "is_system" field.
func (_c *PromptTemplateCreate) SetIsSystem(v bool) *PromptTemplateCreate {
	_c.mutation.SetIsSystem(v)
	return _c
}

// SetNillableIsSystem sets the "is_system" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableIsSystem(v *bool) *PromptTemplateCreate {
	if v != nil {
		_c.SetIsSystem(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptTemplateCreate) SetID(v string) *PromptTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *PromptTemplateCreate) SetOwnerID(id string) *PromptTemplateCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableOwnerID(id *string) *PromptTemplateCreate {
	if id != nil {
		_c = _c.SetOwnerID(*id)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *PromptTemplateCreate) SetOwner(v *User) *PromptTemplateCreate {
	return _c.SetOwnerID(v.ID)
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_c *PromptTemplateCreate) AddProcessIDs(ids ...string) *PromptTemplateCreate {
	_c.mutation.AddProcessIDs(ids...)
	return _c
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_c *PromptTemplateCreate) AddProcesses(v ...*MonitoringProcess) *PromptTemplateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_c *PromptTemplateCreate) Mutation() *PromptTemplateMutation {
	return _c.mutation
}

// Save creates the PromptTemplate in the database.
func (_c *PromptTemplateCreate) Save(ctx context.Context) (*PromptTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptTemplateCreate) SaveX(ctx context.Context) *PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptTemplateCreate) defaults() {
	if _, ok := _c.mutation.IsSystem(); !ok {
		v := prompttemplate.DefaultIsSystem
		_c.mutation.SetIsSystem(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PromptTemplate.name"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "PromptTemplate.system_prompt"`)}
	}
	if _, ok := _c.mutation.UserPromptTemplate(); !ok {
		return &ValidationError{Name: "user_prompt_template", err: errors.New(`ent: missing required field "PromptTemplate.user_prompt_template"`)}
	}
	if _, ok := _c.mutation.IsSystem(); !ok {
		return &ValidationError{Name: "is_system", err: errors.New(`ent: missing required field "PromptTemplate.is_system"`)}
	}
	return nil
}

func (_c *PromptTemplateCreate) sqlSave(ctx context.Context) (*PromptTemplate, error) {
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
			return nil, fmt.Errorf("unexpected PromptTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptTemplateCreate) createSpec() (*PromptTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompttemplate.Table, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
		_node.UserPromptTemplate = value
	}
	if value, ok := _c.mutation.IsSystem(); ok {
		_spec.SetField(prompttemplate.FieldIsSystem, field.TypeBool, value)
		_node.IsSystem = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prompttemplate.OwnerTable,
			Columns: []string{prompttemplate.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerUserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProcessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   prompttemplate.ProcessesTable,
			Columns: prompttemplate.ProcessesPrimaryKey,
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
//	client.PromptTemplate.Create().
//		SetOwnerUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptTemplateUpsert) {
//			SetOwnerUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptTemplateCreate) OnConflict(opts ...sql.ConflictOption) *PromptTemplateUpsertOne {
	_c.conflict = opts
	return &PromptTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptTemplateCreate) OnConflictColumns(columns ...string) *PromptTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptTemplateUpsertOne{
		create: _c,
	}
}

type (
	// PromptTemplateUpsertOne is the builder for "upsert"-ing
	//  one PromptTemplate node.
	PromptTemplateUpsertOne struct {
		create *PromptTemplateCreate
	}

	// PromptTemplateUpsert is the "OnConflict" setter.
	PromptTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerUserID sets the "owner_user_id" field.
func (u *PromptTemplateUpsert) SetOwnerUserID(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldOwnerUserID, v)
	return u
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateOwnerUserID() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldOwnerUserID)
	return u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *PromptTemplateUpsert) ClearOwnerUserID() *PromptTemplateUpsert {
	u.SetNull(prompttemplate.FieldOwnerUserID)
	return u
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsert) SetName(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateName() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldName)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PromptTemplateUpsert) SetSystemPrompt(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateSystemPrompt() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldSystemPrompt)
	return u
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (u *PromptTemplateUpsert) SetUserPromptTemplate(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldUserPromptTemplate, v)
	return u
}

// UpdateUserPromptTemplate sets the "user_prompt_template" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateUserPromptTemplate() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldUserPromptTemplate)
	return u
}

// SetIsSystem sets the "is_system" field.
func (u *PromptTemplateUpsert) SetIsSystem(v bool) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldIsSystem, v)
	return u
}

// UpdateIsSystem sets the "is_system" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateIsSystem() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldIsSystem)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompttemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptTemplateUpsertOne) UpdateNewValues() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prompttemplate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromptTemplateUpsertOne) Ignore() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptTemplateUpsertOne) DoNothing() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptTemplateCreate.OnConflict
// documentation for more info.
func (u *PromptTemplateUpsertOne) Update(set func(*PromptTemplateUpsert)) *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (u *PromptTemplateUpsertOne) SetOwnerUserID(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetOwnerUserID(v)
	})
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateOwnerUserID() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateOwnerUserID()
	})
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *PromptTemplateUpsertOne) ClearOwnerUserID() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.ClearOwnerUserID()
	})
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsertOne) SetName(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateName() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateName()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PromptTemplateUpsertOne) SetSystemPrompt(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateSystemPrompt() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (u *PromptTemplateUpsertOne) SetUserPromptTemplate(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetUserPromptTemplate(v)
	})
}

// UpdateUserPromptTemplate sets the "user_prompt_template" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateUserPromptTemplate() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateUserPromptTemplate()
	})
}

// SetIsSystem sets the "is_system" field.
func (u *PromptTemplateUpsertOne) SetIsSystem(v bool) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetIsSystem(v)
	})
}

// UpdateIsSystem sets the "is_system" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateIsSystem() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateIsSystem()
	})
}

// Exec executes the query.
func (u *PromptTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromptTemplateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PromptTemplateUpsertOne.ID is not supported by MySQL driver. Use PromptTemplateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromptTemplateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromptTemplateCreateBulk is the builder for creating many PromptTemplate entities in bulk.
type PromptTemplateCreateBulk struct {
	config
	err      error
	builders []*PromptTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the PromptTemplate entities in the database.
func (_c *PromptTemplateCreateBulk) Save(ctx context.Context) ([]*PromptTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptTemplateMutation)
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
func (_c *PromptTemplateCreateBulk) SaveX(ctx context.Context) []*PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromptTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptTemplateUpsert) {
//			SetOwnerUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromptTemplateUpsertBulk {
	_c.conflict = opts
	return &PromptTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptTemplateCreateBulk) OnConflictColumns(columns ...string) *PromptTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptTemplateUpsertBulk{
		create: _c,
	}
}

// PromptTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of PromptTemplate nodes.
type PromptTemplateUpsertBulk struct {
	create *PromptTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompttemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptTemplateUpsertBulk) UpdateNewValues() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prompttemplate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromptTemplateUpsertBulk) Ignore() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptTemplateUpsertBulk) DoNothing() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *PromptTemplateUpsertBulk) Update(set func(*PromptTemplateUpsert)) *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (u *PromptTemplateUpsertBulk) SetOwnerUserID(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetOwnerUserID(v)
	})
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateOwnerUserID() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateOwnerUserID()
	})
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *PromptTemplateUpsertBulk) ClearOwnerUserID() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.ClearOwnerUserID()
	})
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsertBulk) SetName(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateName() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateName()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PromptTemplateUpsertBulk) SetSystemPrompt(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateSystemPrompt() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (u *PromptTemplateUpsertBulk) SetUserPromptTemplate(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetUserPromptTemplate(v)
	})
}

// UpdateUserPromptTemplate sets the "user_prompt_template" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateUserPromptTemplate() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateUserPromptTemplate()
	})
}

// SetIsSystem sets the "is_system" field.
func (u *PromptTemplateUpsertBulk) SetIsSystem(v bool) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetIsSystem(v)
	})
}

// UpdateIsSystem sets the "is_system" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateIsSystem() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateIsSystem()
	})
}

// Exec executes the query.
func (u *PromptTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PromptTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
