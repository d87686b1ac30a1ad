// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LieferandoInvoice is the predicate function for lieferandoinvoice builders.
type LieferandoInvoice func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// TipItem is the predicate function for tipitem builders.
type TipItem func(*sql.Selector)

// UberEatsInvoice is the predicate function for ubereatsinvoice builders.
type UberEatsInvoice func(*sql.Selector)

// WoltInvoice is the predicate function for woltinvoice builders.
type WoltInvoice func(*sql.Selector)
