// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// MonitoringProcessDelete is the builder for deleting a MonitoringProcess entity.
type MonitoringProcessDelete struct {
	config
	hooks    []Hook
	mutation *MonitoringProcessMutation
}

// Where appends a list predicates to the MonitoringProcessDelete builder.
func (_d *MonitoringProcessDelete) Where(ps ...predicate.MonitoringProcess) *MonitoringProcessDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonitoringProcessDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoringProcessDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonitoringProcessDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monitoringprocess.Table, sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MonitoringProcessDeleteOne is the builder for deleting a single MonitoringProcess entity.
type MonitoringProcessDeleteOne struct {
	_d *MonitoringProcessDelete
}

// Where appends a list predicates to the MonitoringProcessDelete builder.
func (_d *MonitoringProcessDeleteOne) Where(ps ...predicate.MonitoringProcess) *MonitoringProcessDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonitoringProcessDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monitoringprocess.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoringProcessDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
