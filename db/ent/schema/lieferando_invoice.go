package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// LieferandoInvoice is the weekly Lieferando settlement invoice, including
// the supplier footer and the derived cash/online split.
type LieferandoInvoice struct{ ent.Schema }

func (LieferandoInvoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lieferando_invoices"},
	}
}

func (LieferandoInvoice) Fields() []ent.Field {
	return append(invoiceFields(),
		field.String("restaurant_name").Optional(),
		field.String("customer_number").Optional(),
		field.String("customer_company").Optional(),
		field.String("customer_tax_number").Optional(),
		field.String("customer_bank_iban").Optional(),
		field.String("supplier_iban").Optional(),
		field.String("supplier_vat_id").Optional(),
		field.String("supplier_managing_director").Optional(),
		field.String("supplier_court_registry").Optional(),
		field.String("supplier_hrb").Optional(),

		field.Int("total_orders").Optional().Nillable(),
		field.Float("total_revenue").Optional().Nillable().SchemaType(money),
		field.Int("online_paid_orders").Optional().Nillable(),
		field.Float("online_paid_amount").Optional().Nillable().SchemaType(money),
		field.Int("cash_paid_orders").Optional().Nillable(),
		field.Float("cash_paid_amount").Optional().Nillable().SchemaType(money),
		field.Float("cash_service_fee_amount").Optional().Nillable().SchemaType(money),
		field.Int("chargeback_orders").Optional().Nillable(),
		field.Float("chargeback_amount").Optional().Nillable().SchemaType(money),
		field.Int("stamp_card_orders").Optional().Nillable(),
		field.Float("stamp_card_amount").Optional().Nillable().SchemaType(money),

		field.Float("service_fee_rate").Optional().Nillable(),
		field.Float("service_fee_amount").Optional().Nillable().SchemaType(money),
		field.Float("admin_fee_rate").Optional().Nillable(),
		field.Float("admin_fee_amount").Optional().Nillable().SchemaType(money),

		field.Float("subtotal").Optional().Nillable().SchemaType(money),
		field.Float("tax_rate").Optional().Nillable(),
		field.Float("tax_amount").Optional().Nillable().SchemaType(money),
		field.Float("paid_online_payments").Optional().Nillable().SchemaType(money),
		field.Float("outstanding_amount").Optional().Nillable().SchemaType(money),
		field.Float("outstanding_balance").Optional().Nillable().SchemaType(money),
		field.Float("payout_amount").Optional().Nillable().SchemaType(money),
		field.Float("amount_due").Optional().Nillable().SchemaType(money),

		field.Time("confirmation_payment_date").Optional().Nillable().SchemaType(dateCol),
		field.String("confirmation_code_message").Optional().MaxLen(255),
	)
}

func (LieferandoInvoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY order rows from the itemized pages
		edge.To("order_items", OrderItem.Type),
		// ONE invoice -> MANY tip rows
		edge.To("tip_items", TipItem.Type),
	}
}
