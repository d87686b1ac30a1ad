// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// TipItemCreate is the builder for creating a TipItem entity.
type TipItemCreate struct {
	config
	mutation *TipItemMutation
	hooks    []Hook
}

// SetTippedAt sets the "tipped_at" field.
func (_c *TipItemCreate) SetTippedAt(v time.Time) *TipItemCreate {
	_c.mutation.SetTippedAt(v)
	return _c
}

// SetOrderCode sets the "order_code" field.
func (_c *TipItemCreate) SetOrderCode(v string) *TipItemCreate {
	_c.mutation.SetOrderCode(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TipItemCreate) SetAmount(v float64) *TipItemCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TipItemCreate) SetID(v uuid.UUID) *TipItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipItemCreate) SetNillableID(v *uuid.UUID) *TipItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by ID.
func (_c *TipItemCreate) SetInvoiceID(id uuid.UUID) *TipItemCreate {
	_c.mutation.SetInvoiceID(id)
	return _c
}

// SetInvoice sets the "invoice" edge to the LieferandoInvoice entity.
func (_c *TipItemCreate) SetInvoice(v *LieferandoInvoice) *TipItemCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the TipItemMutation object of the builder.
func (_c *TipItemCreate) Mutation() *TipItemMutation {
	return _c.mutation
}

// Save creates the TipItem in the database.
func (_c *TipItemCreate) Save(ctx context.Context) (*TipItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipItemCreate) SaveX(ctx context.Context) *TipItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := tipitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipItemCreate) check() error {
	if _, ok := _c.mutation.TippedAt(); !ok {
		return &ValidationError{Name: "tipped_at", err: errors.New(`ent: missing required field "TipItem.tipped_at"`)}
	}
	if _, ok := _c.mutation.OrderCode(); !ok {
		return &ValidationError{Name: "order_code", err: errors.New(`ent: missing required field "TipItem.order_code"`)}
	}
	if v, ok := _c.mutation.OrderCode(); ok {
		if err := tipitem.OrderCodeValidator(v); err != nil {
			return &ValidationError{Name: "order_code", err: fmt.Errorf(`ent: validator failed for field "TipItem.order_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "TipItem.amount"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "TipItem.invoice"`)}
	}
	return nil
}

func (_c *TipItemCreate) sqlSave(ctx context.Context) (*TipItem, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TipItemCreate) createSpec() (*TipItem, *sqlgraph.CreateSpec) {
	var (
		_node = &TipItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipitem.Table, sqlgraph.NewFieldSpec(tipitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TippedAt(); ok {
		_spec.SetField(tipitem.FieldTippedAt, field.TypeTime, value)
		_node.TippedAt = value
	}
	if value, ok := _c.mutation.OrderCode(); ok {
		_spec.SetField(tipitem.FieldOrderCode, field.TypeString, value)
		_node.OrderCode = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(tipitem.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.lieferando_invoice_tip_items = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TipItemCreateBulk is the builder for creating many TipItem entities in bulk.
type TipItemCreateBulk struct {
	config
	err      error
	builders []*TipItemCreate
}

// Save creates the TipItem entities in the database.
func (_c *TipItemCreateBulk) Save(ctx context.Context) ([]*TipItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipItemMutation)
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
func (_c *TipItemCreateBulk) SaveX(ctx context.Context) []*TipItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
