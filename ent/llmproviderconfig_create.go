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
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/user"
)

// LLMProviderConfigCreate is the builder for creating a LLMProviderConfig entity.
type LLMProviderConfigCreate struct {
	config
	mutation *LLMProviderConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LLMProviderConfigCreate) SetUserID(v string) *LLMProviderConfigCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetVendorTag sets the "vendor_tag" field.
func (_c *LLMProviderConfigCreate) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigCreate {
	_c.mutation.SetVendorTag(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *LLMProviderConfigCreate) SetModelName(v string) *LLMProviderConfigCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_c *LLMProviderConfigCreate) SetAPIKeyEncrypted(v string) *LLMProviderConfigCreate {
	_c.mutation.SetAPIKeyEncrypted(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *LLMProviderConfigCreate) SetTemperature(v float64) *LLMProviderConfigCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableTemperature(v *float64) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *LLMProviderConfigCreate) SetMaxTokens(v int) *LLMProviderConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableMaxTokens(v *int) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetJSONMode sets the "json_mode" field.
func (_c *LLMProviderConfigCreate) SetJSONMode(v bool) *LLMProviderConfigCreate {
	_c.mutation.SetJSONMode(v)
	return _c
}

// SetNillableJSONMode sets the "json_mode" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableJSONMode(v *bool) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetJSONMode(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *LLMProviderConfigCreate) SetIsActive(v bool) *LLMProviderConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableIsActive(v *bool) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMProviderConfigCreate) SetID(v string) *LLMProviderConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *LLMProviderConfigCreate) SetOwnerID(id string) *LLMProviderConfigCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *LLMProviderConfigCreate) SetOwner(v *User) *LLMProviderConfigCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the LLMProviderConfigMutation object of the builder.
func (_c *LLMProviderConfigCreate) Mutation() *LLMProviderConfigMutation {
	return _c.mutation
}

// Save creates the LLMProviderConfig in the database.
func (_c *LLMProviderConfigCreate) Save(ctx context.Context) (*LLMProviderConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMProviderConfigCreate) SaveX(ctx context.Context) *LLMProviderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMProviderConfigCreate) defaults() {
	if _, ok := _c.mutation.Temperature(); !ok {
		v := llmproviderconfig.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := llmproviderconfig.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.JSONMode(); !ok {
		v := llmproviderconfig.DefaultJSONMode
		_c.mutation.SetJSONMode(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := llmproviderconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMProviderConfigCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LLMProviderConfig.user_id"`)}
	}
	if _, ok := _c.mutation.VendorTag(); !ok {
		return &ValidationError{Name: "vendor_tag", err: errors.New(`ent: missing required field "LLMProviderConfig.vendor_tag"`)}
	}
	if v, ok := _c.mutation.VendorTag(); ok {
		if err := llmproviderconfig.VendorTagValidator(v); err != nil {
			return &ValidationError{Name: "vendor_tag", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.vendor_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMProviderConfig.model_name"`)}
	}
	if _, ok := _c.mutation.APIKeyEncrypted(); !ok {
		return &ValidationError{Name: "api_key_encrypted", err: errors.New(`ent: missing required field "LLMProviderConfig.api_key_encrypted"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "LLMProviderConfig.temperature"`)}
	}
	if v, ok := _c.mutation.Temperature(); ok {
		if err := llmproviderconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.temperature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "LLMProviderConfig.max_tokens"`)}
	}
	if v, ok := _c.mutation.MaxTokens(); ok {
		if err := llmproviderconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.max_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JSONMode(); !ok {
		return &ValidationError{Name: "json_mode", err: errors.New(`ent: missing required field "LLMProviderConfig.json_mode"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "LLMProviderConfig.is_active"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "LLMProviderConfig.owner"`)}
	}
	return nil
}

func (_c *LLMProviderConfigCreate) sqlSave(ctx context.Context) (*LLMProviderConfig, error) {
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
			return nil, fmt.Errorf("unexpected LLMProviderConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMProviderConfigCreate) createSpec() (*LLMProviderConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMProviderConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmproviderconfig.Table, sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VendorTag(); ok {
		_spec.SetField(llmproviderconfig.FieldVendorTag, field.TypeEnum, value)
		_node.VendorTag = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llmproviderconfig.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(llmproviderconfig.FieldAPIKeyEncrypted, field.TypeString, value)
		_node.APIKeyEncrypted = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.JSONMode(); ok {
		_spec.SetField(llmproviderconfig.FieldJSONMode, field.TypeBool, value)
		_node.JSONMode = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(llmproviderconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmproviderconfig.OwnerTable,
			Columns: []string{llmproviderconfig.OwnerColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMProviderConfig.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMProviderConfigUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMProviderConfigCreate) OnConflict(opts ...sql.ConflictOption) *LLMProviderConfigUpsertOne {
	_c.conflict = opts
	return &LLMProviderConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMProviderConfigCreate) OnConflictColumns(columns ...string) *LLMProviderConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMProviderConfigUpsertOne{
		create: _c,
	}
}

type (
	// LLMProviderConfigUpsertOne is the builder for "upsert"-ing
	//  one LLMProviderConfig node.
	LLMProviderConfigUpsertOne struct {
		create *LLMProviderConfigCreate
	}

	// LLMProviderConfigUpsert is the "OnConflict" setter.
	LLMProviderConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendorTag sets the "vendor_tag" field.
func (u *LLMProviderConfigUpsert) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldVendorTag, v)
	return u
}

// UpdateVendorTag sets the "vendor_tag" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateVendorTag() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldVendorTag)
	return u
}

// SetModelName sets the "model_name" field.
func (u *LLMProviderConfigUpsert) SetModelName(v string) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateModelName() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldModelName)
	return u
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (u *LLMProviderConfigUpsert) SetAPIKeyEncrypted(v string) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldAPIKeyEncrypted, v)
	return u
}

// UpdateAPIKeyEncrypted sets the "api_key_encrypted" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateAPIKeyEncrypted() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldAPIKeyEncrypted)
	return u
}

// SetTemperature sets the "temperature" field.
func (u *LLMProviderConfigUpsert) SetTemperature(v float64) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldTemperature, v)
	return u
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateTemperature() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldTemperature)
	return u
}

// AddTemperature adds v to the "temperature" field.
func (u *LLMProviderConfigUpsert) AddTemperature(v float64) *LLMProviderConfigUpsert {
	u.Add(llmproviderconfig.FieldTemperature, v)
	return u
}

// SetMaxTokens sets the "max_tokens" field.
func (u *LLMProviderConfigUpsert) SetMaxTokens(v int) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldMaxTokens, v)
	return u
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateMaxTokens() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldMaxTokens)
	return u
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *LLMProviderConfigUpsert) AddMaxTokens(v int) *LLMProviderConfigUpsert {
	u.Add(llmproviderconfig.FieldMaxTokens, v)
	return u
}

// SetJSONMode sets the "json_mode" field.
func (u *LLMProviderConfigUpsert) SetJSONMode(v bool) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldJSONMode, v)
	return u
}

// UpdateJSONMode sets the "json_mode" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateJSONMode() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldJSONMode)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *LLMProviderConfigUpsert) SetIsActive(v bool) *LLMProviderConfigUpsert {
	u.Set(llmproviderconfig.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *LLMProviderConfigUpsert) UpdateIsActive() *LLMProviderConfigUpsert {
	u.SetExcluded(llmproviderconfig.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmproviderconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMProviderConfigUpsertOne) UpdateNewValues() *LLMProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llmproviderconfig.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(llmproviderconfig.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMProviderConfigUpsertOne) Ignore() *LLMProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMProviderConfigUpsertOne) DoNothing() *LLMProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMProviderConfigCreate.OnConflict
// documentation for more info.
func (u *LLMProviderConfigUpsertOne) Update(set func(*LLMProviderConfigUpsert)) *LLMProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMProviderConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorTag sets the "vendor_tag" field.
func (u *LLMProviderConfigUpsertOne) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetVendorTag(v)
	})
}

// UpdateVendorTag sets the "vendor_tag" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateVendorTag() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateVendorTag()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMProviderConfigUpsertOne) SetModelName(v string) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateModelName() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateModelName()
	})
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (u *LLMProviderConfigUpsertOne) SetAPIKeyEncrypted(v string) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetAPIKeyEncrypted(v)
	})
}

// UpdateAPIKeyEncrypted sets the "api_key_encrypted" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateAPIKeyEncrypted() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateAPIKeyEncrypted()
	})
}

// SetTemperature sets the "temperature" field.
func (u *LLMProviderConfigUpsertOne) SetTemperature(v float64) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *LLMProviderConfigUpsertOne) AddTemperature(v float64) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateTemperature() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateTemperature()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *LLMProviderConfigUpsertOne) SetMaxTokens(v int) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *LLMProviderConfigUpsertOne) AddMaxTokens(v int) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateMaxTokens() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetJSONMode sets the "json_mode" field.
func (u *LLMProviderConfigUpsertOne) SetJSONMode(v bool) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetJSONMode(v)
	})
}

// UpdateJSONMode sets the "json_mode" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateJSONMode() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateJSONMode()
	})
}

// SetIsActive sets the "is_active" field.
func (u *LLMProviderConfigUpsertOne) SetIsActive(v bool) *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertOne) UpdateIsActive() *LLMProviderConfigUpsertOne {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *LLMProviderConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMProviderConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMProviderConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMProviderConfigUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMProviderConfigUpsertOne.ID is not supported by MySQL driver. Use LLMProviderConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMProviderConfigUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMProviderConfigCreateBulk is the builder for creating many LLMProviderConfig entities in bulk.
type LLMProviderConfigCreateBulk struct {
	config
	err      error
	builders []*LLMProviderConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMProviderConfig entities in the database.
func (_c *LLMProviderConfigCreateBulk) Save(ctx context.Context) ([]*LLMProviderConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMProviderConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMProviderConfigMutation)
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
func (_c *LLMProviderConfigCreateBulk) SaveX(ctx context.Context) []*LLMProviderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMProviderConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMProviderConfigUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMProviderConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMProviderConfigUpsertBulk {
	_c.conflict = opts
	return &LLMProviderConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMProviderConfigCreateBulk) OnConflictColumns(columns ...string) *LLMProviderConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMProviderConfigUpsertBulk{
		create: _c,
	}
}

// LLMProviderConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMProviderConfig nodes.
type LLMProviderConfigUpsertBulk struct {
	create *LLMProviderConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmproviderconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMProviderConfigUpsertBulk) UpdateNewValues() *LLMProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llmproviderconfig.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(llmproviderconfig.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMProviderConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMProviderConfigUpsertBulk) Ignore() *LLMProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMProviderConfigUpsertBulk) DoNothing() *LLMProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMProviderConfigCreateBulk.OnConflict
// documentation for more info.
func (u *LLMProviderConfigUpsertBulk) Update(set func(*LLMProviderConfigUpsert)) *LLMProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMProviderConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorTag sets the "vendor_tag" field.
func (u *LLMProviderConfigUpsertBulk) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetVendorTag(v)
	})
}

// UpdateVendorTag sets the "vendor_tag" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateVendorTag() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateVendorTag()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMProviderConfigUpsertBulk) SetModelName(v string) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateModelName() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateModelName()
	})
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (u *LLMProviderConfigUpsertBulk) SetAPIKeyEncrypted(v string) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetAPIKeyEncrypted(v)
	})
}

// UpdateAPIKeyEncrypted sets the "api_key_encrypted" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateAPIKeyEncrypted() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateAPIKeyEncrypted()
	})
}

// SetTemperature sets the "temperature" field.
func (u *LLMProviderConfigUpsertBulk) SetTemperature(v float64) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *LLMProviderConfigUpsertBulk) AddTemperature(v float64) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateTemperature() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateTemperature()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *LLMProviderConfigUpsertBulk) SetMaxTokens(v int) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *LLMProviderConfigUpsertBulk) AddMaxTokens(v int) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateMaxTokens() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetJSONMode sets the "json_mode" field.
func (u *LLMProviderConfigUpsertBulk) SetJSONMode(v bool) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetJSONMode(v)
	})
}

// UpdateJSONMode sets the "json_mode" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateJSONMode() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateJSONMode()
	})
}

// SetIsActive sets the "is_active" field.
func (u *LLMProviderConfigUpsertBulk) SetIsActive(v bool) *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *LLMProviderConfigUpsertBulk) UpdateIsActive() *LLMProviderConfigUpsertBulk {
	return u.Update(func(s *LLMProviderConfigUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *LLMProviderConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMProviderConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMProviderConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMProviderConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
