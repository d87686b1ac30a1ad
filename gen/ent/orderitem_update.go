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
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderedAt sets the "ordered_at" field.
func (_u *OrderItemUpdate) SetOrderedAt(v time.Time) *OrderItemUpdate {
	_u.mutation.SetOrderedAt(v)
	return _u
}

// SetNillableOrderedAt sets the "ordered_at" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderedAt(v *time.Time) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderedAt(*v)
	}
	return _u
}

// SetOrderCode sets the "order_code" field.
func (_u *OrderItemUpdate) SetOrderCode(v string) *OrderItemUpdate {
	_u.mutation.SetOrderCode(v)
	return _u
}

// SetNillableOrderCode sets the "order_code" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderCode(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderCode(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OrderItemUpdate) SetAmount(v float64) *OrderItemUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableAmount(v *float64) *OrderItemUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OrderItemUpdate) AddAmount(v float64) *OrderItemUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetOnline sets the "online" field.
func (_u *OrderItemUpdate) SetOnline(v bool) *OrderItemUpdate {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOnline(v *bool) *OrderItemUpdate {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by ID.
func (_u *OrderItemUpdate) SetInvoiceID(id uuid.UUID) *OrderItemUpdate {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetInvoice sets the "invoice" edge to the LieferandoInvoice entity.
func (_u *OrderItemUpdate) SetInvoice(v *LieferandoInvoice) *OrderItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (_u *OrderItemUpdate) ClearInvoice() *OrderItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.OrderCode(); ok {
		if err := orderitem.OrderCodeValidator(v); err != nil {
			return &ValidationError{Name: "order_code", err: fmt.Errorf(`ent: validator failed for field "OrderItem.order_code": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.invoice"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderedAt(); ok {
		_spec.SetField(orderitem.FieldOrderedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderCode(); ok {
		_spec.SetField(orderitem.FieldOrderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(orderitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(orderitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(orderitem.FieldOnline, field.TypeBool, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.InvoiceTable,
			Columns: []string{orderitem.InvoiceColumn},
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
			Table:   orderitem.InvoiceTable,
			Columns: []string{orderitem.InvoiceColumn},
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
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetOrderedAt sets the "ordered_at" field.
func (_u *OrderItemUpdateOne) SetOrderedAt(v time.Time) *OrderItemUpdateOne {
	_u.mutation.SetOrderedAt(v)
	return _u
}

// SetNillableOrderedAt sets the "ordered_at" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderedAt(v *time.Time) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderedAt(*v)
	}
	return _u
}

// SetOrderCode sets the "order_code" field.
func (_u *OrderItemUpdateOne) SetOrderCode(v string) *OrderItemUpdateOne {
	_u.mutation.SetOrderCode(v)
	return _u
}

// SetNillableOrderCode sets the "order_code" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderCode(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderCode(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OrderItemUpdateOne) SetAmount(v float64) *OrderItemUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableAmount(v *float64) *OrderItemUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OrderItemUpdateOne) AddAmount(v float64) *OrderItemUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetOnline sets the "online" field.
func (_u *OrderItemUpdateOne) SetOnline(v bool) *OrderItemUpdateOne {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOnline(v *bool) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by ID.
func (_u *OrderItemUpdateOne) SetInvoiceID(id uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetInvoice sets the "invoice" edge to the LieferandoInvoice entity.
func (_u *OrderItemUpdateOne) SetInvoice(v *LieferandoInvoice) *OrderItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (_u *OrderItemUpdateOne) ClearInvoice() *OrderItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.OrderCode(); ok {
		if err := orderitem.OrderCodeValidator(v); err != nil {
			return &ValidationError{Name: "order_code", err: fmt.Errorf(`ent: validator failed for field "OrderItem.order_code": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.invoice"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
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
	if value, ok := _u.mutation.OrderedAt(); ok {
		_spec.SetField(orderitem.FieldOrderedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderCode(); ok {
		_spec.SetField(orderitem.FieldOrderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(orderitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(orderitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(orderitem.FieldOnline, field.TypeBool, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.InvoiceTable,
			Columns: []string{orderitem.InvoiceColumn},
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
			Table:   orderitem.InvoiceTable,
			Columns: []string{orderitem.InvoiceColumn},
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
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
