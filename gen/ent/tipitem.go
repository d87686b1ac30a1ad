// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// TipItem is the model entity for the TipItem schema.
type TipItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TippedAt holds the value of the "tipped_at" field.
	TippedAt time.Time `json:"tipped_at,omitempty"`
	// OrderCode holds the value of the "order_code" field.
	OrderCode string `json:"order_code,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TipItemQuery when eager-loading is set.
	Edges                        TipItemEdges `json:"edges"`
	lieferando_invoice_tip_items *uuid.UUID
	selectValues                 sql.SelectValues
}

// TipItemEdges holds the relations/edges for other nodes in the graph.
type TipItemEdges struct {
	// Invoice holds the value of the invoice edge.
	Invoice *LieferandoInvoice `json:"invoice,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvoiceOrErr returns the Invoice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TipItemEdges) InvoiceOrErr() (*LieferandoInvoice, error) {
	if e.Invoice != nil {
		return e.Invoice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lieferandoinvoice.Label}
	}
	return nil, &NotLoadedError{edge: "invoice"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tipitem.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case tipitem.FieldOrderCode:
			values[i] = new(sql.NullString)
		case tipitem.FieldTippedAt:
			values[i] = new(sql.NullTime)
		case tipitem.FieldID:
			values[i] = new(uuid.UUID)
		case tipitem.ForeignKeys[0]: // lieferando_invoice_tip_items
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipItem fields.
func (_m *TipItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tipitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tipitem.FieldTippedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tipped_at", values[i])
			} else if value.Valid {
				_m.TippedAt = value.Time
			}
		case tipitem.FieldOrderCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_code", values[i])
			} else if value.Valid {
				_m.OrderCode = value.String
			}
		case tipitem.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case tipitem.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field lieferando_invoice_tip_items", values[i])
			} else if value.Valid {
				_m.lieferando_invoice_tip_items = new(uuid.UUID)
				*_m.lieferando_invoice_tip_items = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipItem.
// This includes values selected through modifiers, order, etc.
func (_m *TipItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoice queries the "invoice" edge of the TipItem entity.
func (_m *TipItem) QueryInvoice() *LieferandoInvoiceQuery {
	return NewTipItemClient(_m.config).QueryInvoice(_m)
}

// Update returns a builder for updating this TipItem.
// Note that you need to call TipItem.Unwrap() before calling this method if this TipItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipItem) Update() *TipItemUpdateOne {
	return NewTipItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipItem) Unwrap() *TipItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TipItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipItem) String() string {
	var builder strings.Builder
	builder.WriteString("TipItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tipped_at=")
	builder.WriteString(_m.TippedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("order_code=")
	builder.WriteString(_m.OrderCode)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteByte(')')
	return builder.String()
}

// TipItems is a parsable slice of TipItem.
type TipItems []*TipItem
