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
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
)

// UpstreamCredentialUpdate is the builder for updating UpstreamCredential entities.
type UpstreamCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *UpstreamCredentialMutation
}

// Where appends a list predicates to the UpstreamCredentialUpdate builder.
func (_u *UpstreamCredentialUpdate) Where(ps ...predicate.UpstreamCredential) *UpstreamCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UpstreamCredentialUpdate) SetDisplayName(v string) *UpstreamCredentialUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UpstreamCredentialUpdate) SetNillableDisplayName(v *string) *UpstreamCredentialUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *UpstreamCredentialUpdate) SetUsername(v string) *UpstreamCredentialUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UpstreamCredentialUpdate) SetNillableUsername(v *string) *UpstreamCredentialUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_u *UpstreamCredentialUpdate) SetPasswordEncrypted(v string) *UpstreamCredentialUpdate {
	_u.mutation.SetPasswordEncrypted(v)
	return _u
}

// SetNillablePasswordEncrypted sets the "password_encrypted" field if the given value is not nil.
func (_u *UpstreamCredentialUpdate) SetNillablePasswordEncrypted(v *string) *UpstreamCredentialUpdate {
	if v != nil {
		_u.SetPasswordEncrypted(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UpstreamCredentialUpdate) SetIsActive(v bool) *UpstreamCredentialUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UpstreamCredentialUpdate) SetNillableIsActive(v *bool) *UpstreamCredentialUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UpstreamCredentialUpdate) SetLastUsedAt(v time.Time) *UpstreamCredentialUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UpstreamCredentialUpdate) SetNillableLastUsedAt(v *time.Time) *UpstreamCredentialUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UpstreamCredentialUpdate) ClearLastUsedAt() *UpstreamCredentialUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_u *UpstreamCredentialUpdate) AddProcessIDs(ids ...string) *UpstreamCredentialUpdate {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_u *UpstreamCredentialUpdate) AddProcesses(v ...*MonitoringProcess) *UpstreamCredentialUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamCredentialMutation object of the builder.
func (_u *UpstreamCredentialUpdate) Mutation() *UpstreamCredentialMutation {
	return _u.mutation
}

// ClearProcesses clears all "processes" edges to the MonitoringProcess entity.
func (_u *UpstreamCredentialUpdate) ClearProcesses() *UpstreamCredentialUpdate {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to MonitoringProcess entities by IDs.
func (_u *UpstreamCredentialUpdate) RemoveProcessIDs(ids ...string) *UpstreamCredentialUpdate {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to MonitoringProcess entities.
func (_u *UpstreamCredentialUpdate) RemoveProcesses(v ...*MonitoringProcess) *UpstreamCredentialUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UpstreamCredentialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UpstreamCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamCredentialUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamCredential.owner"`)
	}
	return nil
}

func (_u *UpstreamCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamcredential.Table, upstreamcredential.Columns, sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(upstreamcredential.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(upstreamcredential.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamcredential.FieldPasswordEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(upstreamcredential.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamcredential.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(upstreamcredential.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UpstreamCredentialUpdateOne is the builder for updating a single UpstreamCredential entity.
type UpstreamCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UpstreamCredentialMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *UpstreamCredentialUpdateOne) SetDisplayName(v string) *UpstreamCredentialUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UpstreamCredentialUpdateOne) SetNillableDisplayName(v *string) *UpstreamCredentialUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *UpstreamCredentialUpdateOne) SetUsername(v string) *UpstreamCredentialUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UpstreamCredentialUpdateOne) SetNillableUsername(v *string) *UpstreamCredentialUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_u *UpstreamCredentialUpdateOne) SetPasswordEncrypted(v string) *UpstreamCredentialUpdateOne {
	_u.mutation.SetPasswordEncrypted(v)
	return _u
}

// SetNillablePasswordEncrypted sets the "password_encrypted" field if the given value is not nil.
func (_u *UpstreamCredentialUpdateOne) SetNillablePasswordEncrypted(v *string) *UpstreamCredentialUpdateOne {
	if v != nil {
		_u.SetPasswordEncrypted(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UpstreamCredentialUpdateOne) SetIsActive(v bool) *UpstreamCredentialUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UpstreamCredentialUpdateOne) SetNillableIsActive(v *bool) *UpstreamCredentialUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UpstreamCredentialUpdateOne) SetLastUsedAt(v time.Time) *UpstreamCredentialUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UpstreamCredentialUpdateOne) SetNillableLastUsedAt(v *time.Time) *UpstreamCredentialUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UpstreamCredentialUpdateOne) ClearLastUsedAt() *UpstreamCredentialUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_u *UpstreamCredentialUpdateOne) AddProcessIDs(ids ...string) *UpstreamCredentialUpdateOne {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_u *UpstreamCredentialUpdateOne) AddProcesses(v ...*MonitoringProcess) *UpstreamCredentialUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamCredentialMutation object of the builder.
func (_u *UpstreamCredentialUpdateOne) Mutation() *UpstreamCredentialMutation {
	return _u.mutation
}

// ClearProcesses clears all "processes" edges to the MonitoringProcess entity.
func (_u *UpstreamCredentialUpdateOne) ClearProcesses() *UpstreamCredentialUpdateOne {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to MonitoringProcess entities by IDs.
func (_u *UpstreamCredentialUpdateOne) RemoveProcessIDs(ids ...string) *UpstreamCredentialUpdateOne {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to MonitoringProcess entities.
func (_u *UpstreamCredentialUpdateOne) RemoveProcesses(v ...*MonitoringProcess) *UpstreamCredentialUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Where appends a list predicates to the UpstreamCredentialUpdate builder.
func (_u *UpstreamCredentialUpdateOne) Where(ps ...predicate.UpstreamCredential) *UpstreamCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UpstreamCredentialUpdateOne) Select(field string, fields ...string) *UpstreamCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UpstreamCredential entity.
func (_u *UpstreamCredentialUpdateOne) Save(ctx context.Context) (*UpstreamCredential, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamCredentialUpdateOne) SaveX(ctx context.Context) *UpstreamCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UpstreamCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamCredentialUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamCredential.owner"`)
	}
	return nil
}

func (_u *UpstreamCredentialUpdateOne) sqlSave(ctx context.Context) (_node *UpstreamCredential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamcredential.Table, upstreamcredential.Columns, sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UpstreamCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upstreamcredential.FieldID)
		for _, f := range fields {
			if !upstreamcredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upstreamcredential.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(upstreamcredential.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(upstreamcredential.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamcredential.FieldPasswordEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(upstreamcredential.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamcredential.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(upstreamcredential.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UpstreamCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
