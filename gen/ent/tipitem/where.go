// Code generated by ent, DO NOT EDIT.

package tipitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipItem {
	return predicate.TipItem(sql.FieldLTE(FieldID, id))
}

// TippedAt applies equality check predicate on the "tipped_at" field. It's identical to TippedAtEQ.
func TippedAt(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldTippedAt, v))
}

// OrderCode applies equality check predicate on the "order_code" field. It's identical to OrderCodeEQ.
func OrderCode(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldOrderCode, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldAmount, v))
}

// TippedAtEQ applies the EQ predicate on the "tipped_at" field.
func TippedAtEQ(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldTippedAt, v))
}

// TippedAtNEQ applies the NEQ predicate on the "tipped_at" field.
func TippedAtNEQ(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldNEQ(FieldTippedAt, v))
}

// TippedAtIn applies the In predicate on the "tipped_at" field.
func TippedAtIn(vs ...time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldIn(FieldTippedAt, vs...))
}

// TippedAtNotIn applies the NotIn predicate on the "tipped_at" field.
func TippedAtNotIn(vs ...time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldNotIn(FieldTippedAt, vs...))
}

// TippedAtGT applies the GT predicate on the "tipped_at" field.
func TippedAtGT(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldGT(FieldTippedAt, v))
}

// TippedAtGTE applies the GTE predicate on the "tipped_at" field.
func TippedAtGTE(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldGTE(FieldTippedAt, v))
}

// TippedAtLT applies the LT predicate on the "tipped_at" field.
func TippedAtLT(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldLT(FieldTippedAt, v))
}

// TippedAtLTE applies the LTE predicate on the "tipped_at" field.
func TippedAtLTE(v time.Time) predicate.TipItem {
	return predicate.TipItem(sql.FieldLTE(FieldTippedAt, v))
}

// OrderCodeEQ applies the EQ predicate on the "order_code" field.
func OrderCodeEQ(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldOrderCode, v))
}

// OrderCodeNEQ applies the NEQ predicate on the "order_code" field.
func OrderCodeNEQ(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldNEQ(FieldOrderCode, v))
}

// OrderCodeIn applies the In predicate on the "order_code" field.
func OrderCodeIn(vs ...string) predicate.TipItem {
	return predicate.TipItem(sql.FieldIn(FieldOrderCode, vs...))
}

// OrderCodeNotIn applies the NotIn predicate on the "order_code" field.
func OrderCodeNotIn(vs ...string) predicate.TipItem {
	return predicate.TipItem(sql.FieldNotIn(FieldOrderCode, vs...))
}

// OrderCodeGT applies the GT predicate on the "order_code" field.
func OrderCodeGT(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldGT(FieldOrderCode, v))
}

// OrderCodeGTE applies the GTE predicate on the "order_code" field.
func OrderCodeGTE(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldGTE(FieldOrderCode, v))
}

// OrderCodeLT applies the LT predicate on the "order_code" field.
func OrderCodeLT(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldLT(FieldOrderCode, v))
}

// OrderCodeLTE applies the LTE predicate on the "order_code" field.
func OrderCodeLTE(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldLTE(FieldOrderCode, v))
}

// OrderCodeContains applies the Contains predicate on the "order_code" field.
func OrderCodeContains(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldContains(FieldOrderCode, v))
}

// OrderCodeHasPrefix applies the HasPrefix predicate on the "order_code" field.
func OrderCodeHasPrefix(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldHasPrefix(FieldOrderCode, v))
}

// OrderCodeHasSuffix applies the HasSuffix predicate on the "order_code" field.
func OrderCodeHasSuffix(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldHasSuffix(FieldOrderCode, v))
}

// OrderCodeEqualFold applies the EqualFold predicate on the "order_code" field.
func OrderCodeEqualFold(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldEqualFold(FieldOrderCode, v))
}

// OrderCodeContainsFold applies the ContainsFold predicate on the "order_code" field.
func OrderCodeContainsFold(v string) predicate.TipItem {
	return predicate.TipItem(sql.FieldContainsFold(FieldOrderCode, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.TipItem {
	return predicate.TipItem(sql.FieldLTE(FieldAmount, v))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.TipItem {
	return predicate.TipItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.LieferandoInvoice) predicate.TipItem {
	return predicate.TipItem(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipItem) predicate.TipItem {
	return predicate.TipItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipItem) predicate.TipItem {
	return predicate.TipItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipItem) predicate.TipItem {
	return predicate.TipItem(sql.NotPredicates(p))
}
