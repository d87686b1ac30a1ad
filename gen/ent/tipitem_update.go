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
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// TipItemUpdate is the builder for updating TipItem entities.
type TipItemUpdate struct {
	config
	hooks    []Hook
	mutation *TipItemMutation
}

// Where appends a list predicates to the TipItemUpdate builder.
func (_u *TipItemUpdate) Where(ps ...predicate.TipItem) *TipItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTippedAt sets the "tipped_at" field.
func (_u *TipItemUpdate) SetTippedAt(v time.Time) *TipItemUpdate {
	_u.mutation.SetTippedAt(v)
	return _u
}

// SetNillableTippedAt sets the "tipped_at" field if the given value is not nil.
func (_u *TipItemUpdate) SetNillableTippedAt(v *time.Time) *TipItemUpdate {
	if v != nil {
		_u.SetTippedAt(*v)
	}
	return _u
}

// SetOrderCode sets the "order_code" field.
func (_u *TipItemUpdate) SetOrderCode(v string) *TipItemUpdate {
	_u.mutation.SetOrderCode(v)
	return _u
}

// SetNillableOrderCode sets the "order_code" field if the given value is not nil.
func (_u *TipItemUpdate) SetNillableOrderCode(v *string) *TipItemUpdate {
	if v != nil {
		_u.SetOrderCode(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TipItemUpdate) SetAmount(v float64) *TipItemUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TipItemUpdate) SetNillableAmount(v *float64) *TipItemUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TipItemUpdate) AddAmount(v float64) *TipItemUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by ID.
func (_u *TipItemUpdate) SetInvoiceID(id uuid.UUID) *TipItemUpdate {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetInvoice sets the "invoice" edge to the LieferandoInvoice entity.
func (_u *TipItemUpdate) SetInvoice(v *LieferandoInvoice) *TipItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the TipItemMutation object of the builder.
func (_u *TipItemUpdate) Mutation() *TipItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (_u *TipItemUpdate) ClearInvoice() *TipItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipItemUpdate) check() error {
	if v, ok := _u.mutation.OrderCode(); ok {
		if err := tipitem.OrderCodeValidator(v); err != nil {
			return &ValidationError{Name: "order_code", err: fmt.Errorf(`ent: validator failed for field "TipItem.order_code": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TipItem.invoice"`)
	}
	return nil
}

func (_u *TipItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipitem.Table, tipitem.Columns, sqlgraph.NewFieldSpec(tipitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TippedAt(); ok {
		_spec.SetField(tipitem.FieldTippedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderCode(); ok {
		_spec.SetField(tipitem.FieldOrderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(tipitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(tipitem.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipitem.InvoiceTable,
			Columns: []string{tipitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipitem.InvoiceTable,
			Columns: []string{tipitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipItemUpdateOne is the builder for updating a single TipItem entity.
type TipItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipItemMutation
}

// SetTippedAt sets the "tipped_at" field.
func (_u *TipItemUpdateOne) SetTippedAt(v time.Time) *TipItemUpdateOne {
	_u.mutation.SetTippedAt(v)
	return _u
}

// SetNillableTippedAt sets the "tipped_at" field if the given value is not nil.
func (_u *TipItemUpdateOne) SetNillableTippedAt(v *time.Time) *TipItemUpdateOne {
	if v != nil {
		_u.SetTippedAt(*v)
	}
	return _u
}

// SetOrderCode sets the "order_code" field.
func (_u *TipItemUpdateOne) SetOrderCode(v string) *TipItemUpdateOne {
	_u.mutation.SetOrderCode(v)
	return _u
}

// SetNillableOrderCode sets the "order_code" field if the given value is not nil.
func (_u *TipItemUpdateOne) SetNillableOrderCode(v *string) *TipItemUpdateOne {
	if v != nil {
		_u.SetOrderCode(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TipItemUpdateOne) SetAmount(v float64) *TipItemUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TipItemUpdateOne) SetNillableAmount(v *float64) *TipItemUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TipItemUpdateOne) AddAmount(v float64) *TipItemUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by ID.
func (_u *TipItemUpdateOne) SetInvoiceID(id uuid.UUID) *TipItemUpdateOne {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetInvoice sets the "invoice" edge to the LieferandoInvoice entity.
func (_u *TipItemUpdateOne) SetInvoice(v *LieferandoInvoice) *TipItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the TipItemMutation object of the builder.
func (_u *TipItemUpdateOne) Mutation() *TipItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (_u *TipItemUpdateOne) ClearInvoice() *TipItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the TipItemUpdate builder.
func (_u *TipItemUpdateOne) Where(ps ...predicate.TipItem) *TipItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipItemUpdateOne) Select(field string, fields ...string) *TipItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipItem entity.
func (_u *TipItemUpdateOne) Save(ctx context.Context) (*TipItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipItemUpdateOne) SaveX(ctx context.Context) *TipItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipItemUpdateOne) check() error {
	if v, ok := _u.mutation.OrderCode(); ok {
		if err := tipitem.OrderCodeValidator(v); err != nil {
			return &ValidationError{Name: "order_code", err: fmt.Errorf(`ent: validator failed for field "TipItem.order_code": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TipItem.invoice"`)
	}
	return nil
}

func (_u *TipItemUpdateOne) sqlSave(ctx context.Context) (_node *TipItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipitem.Table, tipitem.Columns, sqlgraph.NewFieldSpec(tipitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TipItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipitem.FieldID)
		for _, f := range fields {
			if !tipitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tipitem.FieldID {
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
	if value, ok := _u.mutation.TippedAt(); ok {
		_spec.SetField(tipitem.FieldTippedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderCode(); ok {
		_spec.SetField(tipitem.FieldOrderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(tipitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(tipitem.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipitem.InvoiceTable,
			Columns: []string{tipitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipitem.InvoiceTable,
			Columns: []string{tipitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TipItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
