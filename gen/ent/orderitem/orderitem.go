// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the orderitem type in the database.
	Label = "order_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrderedAt holds the string denoting the ordered_at field in the database.
	FieldOrderedAt = "ordered_at"
	// FieldOrderCode holds the string denoting the order_code field in the database.
	FieldOrderCode = "order_code"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldOnline holds the string denoting the online field in the database.
	FieldOnline = "online"
	// EdgeInvoice holds the string denoting the invoice edge name in mutations.
	EdgeInvoice = "invoice"
	// Table holds the table name of the orderitem in the database.
	Table = "order_items"
	// InvoiceTable is the table that holds the invoice relation/edge.
	InvoiceTable = "order_items"
	// InvoiceInverseTable is the table name for the LieferandoInvoice entity.
	// It exists in this package in order to avoid circular dependency with the "lieferandoinvoice" package.
	InvoiceInverseTable = "lieferando_invoices"
	// InvoiceColumn is the table column denoting the invoice relation/edge.
	InvoiceColumn = "lieferando_invoice_order_items"
)

// Columns holds all SQL columns for orderitem fields.
var Columns = []string{
	FieldID,
	FieldOrderedAt,
	FieldOrderCode,
	FieldAmount,
	FieldOnline,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "order_items"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"lieferando_invoice_order_items",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// OrderCodeValidator is a validator for the "order_code" field. It is called by the builders before save.
	OrderCodeValidator func(string) error
	// DefaultOnline holds the default value on creation for the "online" field.
	DefaultOnline bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OrderItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrderedAt orders the results by the ordered_at field.
func ByOrderedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderedAt, opts...).ToFunc()
}

// ByOrderCode orders the results by the order_code field.
func ByOrderCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderCode, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByOnline orders the results by the online field.
func ByOnline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnline, opts...).ToFunc()
}

// ByInvoiceField orders the results by invoice field.
func ByInvoiceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvoiceStep(), sql.OrderByField(field, opts...))
	}
}
func newInvoiceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvoiceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
	)
}
