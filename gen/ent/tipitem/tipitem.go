// Code generated by ent, DO NOT EDIT.

package tipitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tipitem type in the database.
	Label = "tip_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTippedAt holds the string denoting the tipped_at field in the database.
	FieldTippedAt = "tipped_at"
	// FieldOrderCode holds the string denoting the order_code field in the database.
	FieldOrderCode = "order_code"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// EdgeInvoice holds the string denoting the invoice edge name in mutations.
	EdgeInvoice = "invoice"
	// Table holds the table name of the tipitem in the database.
	Table = "tip_items"
	// InvoiceTable is the table that holds the invoice relation/edge.
	InvoiceTable = "tip_items"
	// InvoiceInverseTable is the table name for the LieferandoInvoice entity.
	// It exists in this package in order to avoid circular dependency with the "lieferandoinvoice" package.
	InvoiceInverseTable = "lieferando_invoices"
	// InvoiceColumn is the table column denoting the invoice relation/edge.
	InvoiceColumn = "lieferando_invoice_tip_items"
)

// Columns holds all SQL columns for tipitem fields.
var Columns = []string{
	FieldID,
	FieldTippedAt,
	FieldOrderCode,
	FieldAmount,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tip_items"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"lieferando_invoice_tip_items",
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TipItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTippedAt orders the results by the tipped_at field.
func ByTippedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTippedAt, opts...).ToFunc()
}

// ByOrderCode orders the results by the order_code field.
func ByOrderCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderCode, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
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
