package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// UberEatsInvoice is the Uber Eats order-and-payment summary invoice.
type UberEatsInvoice struct{ ent.Schema }

func (UberEatsInvoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uber_eats_invoices"},
	}
}

func (UberEatsInvoice) Fields() []ent.Field {
	return append(invoiceFields(),
		field.Time("tax_date").Optional().Nillable().SchemaType(dateCol),
		field.String("customer_company").Optional(),
		field.String("restaurant_name").Optional(),
		field.String("restaurant_address").Optional(),
		field.String("business_id").Optional(),
		field.String("customer_vat_id").Optional(),
		field.String("tax_number").Optional(),

		field.Int("total_orders").Optional().Nillable(),
		field.Float("total_order_value").Optional().Nillable().SchemaType(money),
		field.Float("gross_revenue_after_discounts").Optional().Nillable().SchemaType(money),
		field.Float("commission_own_delivery").Optional().Nillable().SchemaType(money),
		field.Float("commission_pickup").Optional().Nillable().SchemaType(money),
		field.Float("uber_eats_fee").Optional().Nillable().SchemaType(money),
		field.Float("vat_19").Optional().Nillable().SchemaType(money),
		field.Float("cash_collected").Optional().Nillable().SchemaType(money),
		field.Float("total_payout").Optional().Nillable().SchemaType(money),
		field.Float("net_amount").Optional().Nillable().SchemaType(money),
		field.Float("vat_amount").Optional().Nillable().SchemaType(money),
	)
}
