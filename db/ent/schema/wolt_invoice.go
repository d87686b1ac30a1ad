package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// WoltInvoice is the self-billed Wolt invoice with its 7%/19% VAT splits.
// The netting_* columns are filled later, when the payout email's netting
// report is merged into the invoice it references.
type WoltInvoice struct{ ent.Schema }

func (WoltInvoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "wolt_invoices"},
	}
}

func (WoltInvoice) Fields() []ent.Field {
	return append(invoiceFields(),
		field.String("supplier_address").Optional(),
		field.String("supplier_vat_id").Optional(),
		field.String("restaurant_name").Optional(),
		field.String("business_id").Optional(),

		field.Float("goods_net_7").Optional().Nillable().SchemaType(money),
		field.Float("goods_vat_7").Optional().Nillable().SchemaType(money),
		field.Float("goods_gross_7").Optional().Nillable().SchemaType(money),
		field.Float("goods_net_19").Optional().Nillable().SchemaType(money),
		field.Float("goods_vat_19").Optional().Nillable().SchemaType(money),
		field.Float("goods_gross_19").Optional().Nillable().SchemaType(money),
		field.Float("goods_net_total").Optional().Nillable().SchemaType(money),
		field.Float("goods_vat_total").Optional().Nillable().SchemaType(money),
		field.Float("goods_gross_total").Optional().Nillable().SchemaType(money),

		field.Float("distribution_net_total").Optional().Nillable().SchemaType(money),
		field.Float("distribution_vat_total").Optional().Nillable().SchemaType(money),
		field.Float("distribution_gross_total").Optional().Nillable().SchemaType(money),

		field.Float("netprice_net_7").Optional().Nillable().SchemaType(money),
		field.Float("netprice_vat_7").Optional().Nillable().SchemaType(money),
		field.Float("netprice_gross_7").Optional().Nillable().SchemaType(money),
		field.Float("netprice_net_19").Optional().Nillable().SchemaType(money),
		field.Float("netprice_vat_19").Optional().Nillable().SchemaType(money),
		field.Float("netprice_gross_19").Optional().Nillable().SchemaType(money),
		field.Float("netprice_net_total").Optional().Nillable().SchemaType(money),
		field.Float("netprice_vat_total").Optional().Nillable().SchemaType(money),
		field.Float("netprice_gross_total").Optional().Nillable().SchemaType(money),

		field.Float("end_amount_net").Optional().Nillable().SchemaType(money),
		field.Float("end_amount_vat").Optional().Nillable().SchemaType(money),
		field.Float("end_amount_gross").Optional().Nillable().SchemaType(money),

		field.String("netting_merchant_invoice").Optional(),
		field.Float("netting_merchant_net").Optional().Nillable().SchemaType(money),
		field.Float("netting_merchant_vat").Optional().Nillable().SchemaType(money),
		field.Float("netting_merchant_gross").Optional().Nillable().SchemaType(money),
		field.String("netting_wolt_invoice").Optional(),
		field.Float("netting_wolt_net").Optional().Nillable().SchemaType(money),
		field.Float("netting_wolt_vat").Optional().Nillable().SchemaType(money),
		field.Float("netting_wolt_gross").Optional().Nillable().SchemaType(money),
		field.Float("netting_net_payout").Optional().Nillable().SchemaType(money),
		field.JSON("netting_parsed_json", map[string]interface{}{}).Optional(),
		field.Text("netting_raw_text").Optional(),
	)
}
