// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/user"
)

// PromptTemplateUpdate is the builder for updating PromptTemplate entities.
type PromptTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdate) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *PromptTemplateUpdate) SetOwnerUserID(v string) *PromptTemplateUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableOwnerUserID(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *PromptTemplateUpdate) ClearOwnerUserID() *PromptTemplateUpdate {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdate) SetName(v string) *PromptTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableName(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdate) SetSystemPrompt(v string) *PromptTemplateUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableSystemPrompt(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_u *PromptTemplateUpdate) SetUserPromptTemplate(v string) *PromptTemplateUpdate {
	_u.mutation.SetUserPromptTemplate(v)
	return _u
}

// SetNillableUserPromptTemplate sets the "user_prompt_template" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableUserPromptTemplate(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetUserPromptTemplate(*v)
	}
	return _u
}

// SetIsSystem sets the "is_system" field.
func (_u *PromptTemplateUpdate) SetIsSystem(v bool) *PromptTemplateUpdate {
	_u.mutation.SetIsSystem(v)
	return _u
}

// SetNillableIsSystem sets the "is_system" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableIsSystem(v *bool) *PromptTemplateUpdate {
	if v != nil {
		_u.SetIsSystem(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *PromptTemplateUpdate) SetOwnerID(id string) *PromptTemplateUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableOwnerID(id *string) *PromptTemplateUpdate {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PromptTemplateUpdate) SetOwner(v *User) *PromptTemplateUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_u *PromptTemplateUpdate) AddProcessIDs(ids ...string) *PromptTemplateUpdate {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_u *PromptTemplateUpdate) AddProcesses(v ...*MonitoringProcess) *PromptTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdate) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PromptTemplateUpdate) ClearOwner() *PromptTemplateUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProcesses clears all "processes" edges to the MonitoringProcess entity.
func (_u *PromptTemplateUpdate) ClearProcesses() *PromptTemplateUpdate {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to MonitoringProcess entities by IDs.
func (_u *PromptTemplateUpdate) RemoveProcessIDs(ids ...string) *PromptTemplateUpdate {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to MonitoringProcess entities.
func (_u *PromptTemplateUpdate) RemoveProcesses(v ...*MonitoringProcess) *PromptTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PromptTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsSystem(); ok {
		_spec.SetField(prompttemplate.FieldIsSystem, field.TypeBool, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptTemplateUpdateOne is the builder for updating a single PromptTemplate entity.
type PromptTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *PromptTemplateUpdateOne) SetOwnerUserID(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableOwnerUserID(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *PromptTemplateUpdateOne) ClearOwnerUserID() *PromptTemplateUpdateOne {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdateOne) SetName(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableName(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdateOne) SetSystemPrompt(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableSystemPrompt(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_u *PromptTemplateUpdateOne) SetUserPromptTemplate(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetUserPromptTemplate(v)
	return _u
}

// SetNillableUserPromptTemplate sets the "user_prompt_template" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableUserPromptTemplate(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetUserPromptTemplate(*v)
	}
	return _u
}

// SetIsSystem sets the "is_system" field.
func (_u *PromptTemplateUpdateOne) SetIsSystem(v bool) *PromptTemplateUpdateOne {
	_u.mutation.SetIsSystem(v)
	return _u
}

// SetNillableIsSystem sets the "is_system" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableIsSystem(v *bool) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetIsSystem(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *PromptTemplateUpdateOne) SetOwnerID(id string) *PromptTemplateUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableOwnerID(id *string) *PromptTemplateUpdateOne {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PromptTemplateUpdateOne) SetOwner(v *User) *PromptTemplateUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by IDs.
func (_u *PromptTemplateUpdateOne) AddProcessIDs(ids ...string) *PromptTemplateUpdateOne {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the MonitoringProcess entity.
func (_u *PromptTemplateUpdateOne) AddProcesses(v ...*MonitoringProcess) *PromptTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdateOne) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PromptTemplateUpdateOne) ClearOwner() *PromptTemplateUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProcesses clears all "processes" edges to the MonitoringProcess entity.
func (_u *PromptTemplateUpdateOne) ClearProcesses() *PromptTemplateUpdateOne {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to MonitoringProcess entities by IDs.
func (_u *PromptTemplateUpdateOne) RemoveProcessIDs(ids ...string) *PromptTemplateUpdateOne {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to MonitoringProcess entities.
func (_u *PromptTemplateUpdateOne) RemoveProcesses(v ...*MonitoringProcess) *PromptTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdateOne) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptTemplateUpdateOne) Select(field string, fields ...string) *PromptTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptTemplate entity.
func (_u *PromptTemplateUpdateOne) Save(ctx context.Context) (*PromptTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) SaveX(ctx context.Context) *PromptTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PromptTemplateUpdateOne) sqlSave(ctx context.Context) (_node *PromptTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompttemplate.FieldID)
		for _, f := range fields {
			if !prompttemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompttemplate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsSystem(); ok {
		_spec.SetField(prompttemplate.FieldIsSystem, field.TypeBool, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PromptTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
