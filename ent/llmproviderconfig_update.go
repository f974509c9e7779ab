// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// LLMProviderConfigUpdate is the builder for updating LLMProviderConfig entities.
type LLMProviderConfigUpdate struct {
	config
	hooks    []Hook
	mutation *LLMProviderConfigMutation
}

// Where appends a list predicates to the LLMProviderConfigUpdate builder.
func (_u *LLMProviderConfigUpdate) Where(ps ...predicate.LLMProviderConfig) *LLMProviderConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorTag sets the "vendor_tag" field.
func (_u *LLMProviderConfigUpdate) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigUpdate {
	_u.mutation.SetVendorTag(v)
	return _u
}

// SetNillableVendorTag sets the "vendor_tag" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableVendorTag(v *llmproviderconfig.VendorTag) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetVendorTag(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMProviderConfigUpdate) SetModelName(v string) *LLMProviderConfigUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableModelName(v *string) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_u *LLMProviderConfigUpdate) SetAPIKeyEncrypted(v string) *LLMProviderConfigUpdate {
	_u.mutation.SetAPIKeyEncrypted(v)
	return _u
}

// SetNillableAPIKeyEncrypted sets the "api_key_encrypted" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableAPIKeyEncrypted(v *string) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetAPIKeyEncrypted(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *LLMProviderConfigUpdate) SetTemperature(v float64) *LLMProviderConfigUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableTemperature(v *float64) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *LLMProviderConfigUpdate) AddTemperature(v float64) *LLMProviderConfigUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *LLMProviderConfigUpdate) SetMaxTokens(v int) *LLMProviderConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableMaxTokens(v *int) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *LLMProviderConfigUpdate) AddMaxTokens(v int) *LLMProviderConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetJSONMode sets the "json_mode" field.
func (_u *LLMProviderConfigUpdate) SetJSONMode(v bool) *LLMProviderConfigUpdate {
	_u.mutation.SetJSONMode(v)
	return _u
}

// SetNillableJSONMode sets the "json_mode" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableJSONMode(v *bool) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetJSONMode(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *LLMProviderConfigUpdate) SetIsActive(v bool) *LLMProviderConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *LLMProviderConfigUpdate) SetNillableIsActive(v *bool) *LLMProviderConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the LLMProviderConfigMutation object of the builder.
func (_u *LLMProviderConfigUpdate) Mutation() *LLMProviderConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMProviderConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMProviderConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMProviderConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMProviderConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMProviderConfigUpdate) check() error {
	if v, ok := _u.mutation.VendorTag(); ok {
		if err := llmproviderconfig.VendorTagValidator(v); err != nil {
			return &ValidationError{Name: "vendor_tag", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.vendor_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := llmproviderconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := llmproviderconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.max_tokens": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMProviderConfig.owner"`)
	}
	return nil
}

func (_u *LLMProviderConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmproviderconfig.Table, llmproviderconfig.Columns, sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorTag(); ok {
		_spec.SetField(llmproviderconfig.FieldVendorTag, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmproviderconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(llmproviderconfig.FieldAPIKeyEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JSONMode(); ok {
		_spec.SetField(llmproviderconfig.FieldJSONMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(llmproviderconfig.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmproviderconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMProviderConfigUpdateOne is the builder for updating a single LLMProviderConfig entity.
type LLMProviderConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMProviderConfigMutation
}

// SetVendorTag sets the "vendor_tag" field.
func (_u *LLMProviderConfigUpdateOne) SetVendorTag(v llmproviderconfig.VendorTag) *LLMProviderConfigUpdateOne {
	_u.mutation.SetVendorTag(v)
	return _u
}

// SetNillableVendorTag sets the "vendor_tag" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableVendorTag(v *llmproviderconfig.VendorTag) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetVendorTag(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMProviderConfigUpdateOne) SetModelName(v string) *LLMProviderConfigUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableModelName(v *string) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_u *LLMProviderConfigUpdateOne) SetAPIKeyEncrypted(v string) *LLMProviderConfigUpdateOne {
	_u.mutation.SetAPIKeyEncrypted(v)
	return _u
}

// SetNillableAPIKeyEncrypted sets the "api_key_encrypted" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableAPIKeyEncrypted(v *string) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetAPIKeyEncrypted(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *LLMProviderConfigUpdateOne) SetTemperature(v float64) *LLMProviderConfigUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableTemperature(v *float64) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *LLMProviderConfigUpdateOne) AddTemperature(v float64) *LLMProviderConfigUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *LLMProviderConfigUpdateOne) SetMaxTokens(v int) *LLMProviderConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableMaxTokens(v *int) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *LLMProviderConfigUpdateOne) AddMaxTokens(v int) *LLMProviderConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetJSONMode sets the "json_mode" field.
func (_u *LLMProviderConfigUpdateOne) SetJSONMode(v bool) *LLMProviderConfigUpdateOne {
	_u.mutation.SetJSONMode(v)
	return _u
}

// SetNillableJSONMode sets the "json_mode" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableJSONMode(v *bool) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetJSONMode(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *LLMProviderConfigUpdateOne) SetIsActive(v bool) *LLMProviderConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *LLMProviderConfigUpdateOne) SetNillableIsActive(v *bool) *LLMProviderConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the LLMProviderConfigMutation object of the builder.
func (_u *LLMProviderConfigUpdateOne) Mutation() *LLMProviderConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMProviderConfigUpdate builder.
func (_u *LLMProviderConfigUpdateOne) Where(ps ...predicate.LLMProviderConfig) *LLMProviderConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMProviderConfigUpdateOne) Select(field string, fields ...string) *LLMProviderConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMProviderConfig entity.
func (_u *LLMProviderConfigUpdateOne) Save(ctx context.Context) (*LLMProviderConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMProviderConfigUpdateOne) SaveX(ctx context.Context) *LLMProviderConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMProviderConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMProviderConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMProviderConfigUpdateOne) check() error {
	if v, ok := _u.mutation.VendorTag(); ok {
		if err := llmproviderconfig.VendorTagValidator(v); err != nil {
			return &ValidationError{Name: "vendor_tag", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.vendor_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := llmproviderconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := llmproviderconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.max_tokens": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMProviderConfig.owner"`)
	}
	return nil
}

func (_u *LLMProviderConfigUpdateOne) sqlSave(ctx context.Context) (_node *LLMProviderConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmproviderconfig.Table, llmproviderconfig.Columns, sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMProviderConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmproviderconfig.FieldID)
		for _, f := range fields {
			if !llmproviderconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmproviderconfig.FieldID {
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
	if value, ok := _u.mutation.VendorTag(); ok {
		_spec.SetField(llmproviderconfig.FieldVendorTag, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmproviderconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(llmproviderconfig.FieldAPIKeyEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JSONMode(); ok {
		_spec.SetField(llmproviderconfig.FieldJSONMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(llmproviderconfig.FieldIsActive, field.TypeBool, value)
	}
	_node = &LLMProviderConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmproviderconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
