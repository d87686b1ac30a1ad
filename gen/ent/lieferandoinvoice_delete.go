// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
)

// LieferandoInvoiceDelete is the builder for deleting a LieferandoInvoice entity.
type LieferandoInvoiceDelete struct {
	config
	hooks    []Hook
	mutation *LieferandoInvoiceMutation
}

// Where appends a list predicates to the LieferandoInvoiceDelete builder.
func (_d *LieferandoInvoiceDelete) Where(ps ...predicate.LieferandoInvoice) *LieferandoInvoiceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LieferandoInvoiceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LieferandoInvoiceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LieferandoInvoiceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lieferandoinvoice.Table, sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID))
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

// LieferandoInvoiceDeleteOne is the builder for deleting a single LieferandoInvoice entity.
type LieferandoInvoiceDeleteOne struct {
	_d *LieferandoInvoiceDelete
}

// Where appends a list predicates to the LieferandoInvoiceDelete builder.
func (_d *LieferandoInvoiceDeleteOne) Where(ps ...predicate.LieferandoInvoice) *LieferandoInvoiceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LieferandoInvoiceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lieferandoinvoice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LieferandoInvoiceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
