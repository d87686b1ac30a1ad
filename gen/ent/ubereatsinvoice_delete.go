// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
)

// UberEatsInvoiceDelete is the builder for deleting a UberEatsInvoice entity.
type UberEatsInvoiceDelete struct {
	config
	hooks    []Hook
	mutation *UberEatsInvoiceMutation
}

// Where appends a list predicates to the UberEatsInvoiceDelete builder.
func (_d *UberEatsInvoiceDelete) Where(ps ...predicate.UberEatsInvoice) *UberEatsInvoiceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UberEatsInvoiceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UberEatsInvoiceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UberEatsInvoiceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ubereatsinvoice.Table, sqlgraph.NewFieldSpec(ubereatsinvoice.FieldID, field.TypeUUID))
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

// UberEatsInvoiceDeleteOne is the builder for deleting a single UberEatsInvoice entity.
type UberEatsInvoiceDeleteOne struct {
	_d *UberEatsInvoiceDelete
}

// Where appends a list predicates to the UberEatsInvoiceDelete builder.
func (_d *UberEatsInvoiceDeleteOne) Where(ps ...predicate.UberEatsInvoice) *UberEatsInvoiceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UberEatsInvoiceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ubereatsinvoice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UberEatsInvoiceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
