// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LieferandoInvoicesColumns holds the columns for the "lieferando_invoices" table.
	LieferandoInvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Unique: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "Draft"},
		{Name: "extraction_confidence", Type: field.TypeInt, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_filename", Type: field.TypeString, Nullable: true},
		{Name: "email_subject", Type: field.TypeString, Nullable: true},
		{Name: "email_sender", Type: field.TypeString, Nullable: true},
		{Name: "email_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "restaurant_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_number", Type: field.TypeString, Nullable: true},
		{Name: "customer_company", Type: field.TypeString, Nullable: true},
		{Name: "customer_tax_number", Type: field.TypeString, Nullable: true},
		{Name: "customer_bank_iban", Type: field.TypeString, Nullable: true},
		{Name: "supplier_iban", Type: field.TypeString, Nullable: true},
		{Name: "supplier_vat_id", Type: field.TypeString, Nullable: true},
		{Name: "supplier_managing_director", Type: field.TypeString, Nullable: true},
		{Name: "supplier_court_registry", Type: field.TypeString, Nullable: true},
		{Name: "supplier_hrb", Type: field.TypeString, Nullable: true},
		{Name: "total_orders", Type: field.TypeInt, Nullable: true},
		{Name: "total_revenue", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "online_paid_orders", Type: field.TypeInt, Nullable: true},
		{Name: "online_paid_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cash_paid_orders", Type: field.TypeInt, Nullable: true},
		{Name: "cash_paid_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cash_service_fee_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "chargeback_orders", Type: field.TypeInt, Nullable: true},
		{Name: "chargeback_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "stamp_card_orders", Type: field.TypeInt, Nullable: true},
		{Name: "stamp_card_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "service_fee_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "service_fee_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "admin_fee_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "admin_fee_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "paid_online_payments", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "outstanding_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "outstanding_balance", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payout_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount_due", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "confirmation_payment_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "confirmation_code_message", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// LieferandoInvoicesTable holds the schema information for the "lieferando_invoices" table.
	LieferandoInvoicesTable = &schema.Table{
		Name:       "lieferando_invoices",
		Columns:    LieferandoInvoicesColumns,
		PrimaryKey: []*schema.Column{LieferandoInvoicesColumns[0]},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ordered_at", Type: field.TypeTime},
		{Name: "order_code", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "online", Type: field.TypeBool, Default: false},
		{Name: "lieferando_invoice_order_items", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_lieferando_invoices_order_items",
				Columns:    []*schema.Column{OrderItemsColumns[5]},
				RefColumns: []*schema.Column{LieferandoInvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TipItemsColumns holds the columns for the "tip_items" table.
	TipItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tipped_at", Type: field.TypeTime},
		{Name: "order_code", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "lieferando_invoice_tip_items", Type: field.TypeUUID},
	}
	// TipItemsTable holds the schema information for the "tip_items" table.
	TipItemsTable = &schema.Table{
		Name:       "tip_items",
		Columns:    TipItemsColumns,
		PrimaryKey: []*schema.Column{TipItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tip_items_lieferando_invoices_tip_items",
				Columns:    []*schema.Column{TipItemsColumns[4]},
				RefColumns: []*schema.Column{LieferandoInvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UberEatsInvoicesColumns holds the columns for the "uber_eats_invoices" table.
	UberEatsInvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Unique: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "Draft"},
		{Name: "extraction_confidence", Type: field.TypeInt, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_filename", Type: field.TypeString, Nullable: true},
		{Name: "email_subject", Type: field.TypeString, Nullable: true},
		{Name: "email_sender", Type: field.TypeString, Nullable: true},
		{Name: "email_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tax_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "customer_company", Type: field.TypeString, Nullable: true},
		{Name: "restaurant_name", Type: field.TypeString, Nullable: true},
		{Name: "restaurant_address", Type: field.TypeString, Nullable: true},
		{Name: "business_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_vat_id", Type: field.TypeString, Nullable: true},
		{Name: "tax_number", Type: field.TypeString, Nullable: true},
		{Name: "total_orders", Type: field.TypeInt, Nullable: true},
		{Name: "total_order_value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gross_revenue_after_discounts", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "commission_own_delivery", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "commission_pickup", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "uber_eats_fee", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cash_collected", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_payout", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "net_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
	}
	// UberEatsInvoicesTable holds the schema information for the "uber_eats_invoices" table.
	UberEatsInvoicesTable = &schema.Table{
		Name:       "uber_eats_invoices",
		Columns:    UberEatsInvoicesColumns,
		PrimaryKey: []*schema.Column{UberEatsInvoicesColumns[0]},
	}
	// WoltInvoicesColumns holds the columns for the "wolt_invoices" table.
	WoltInvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Unique: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "Draft"},
		{Name: "extraction_confidence", Type: field.TypeInt, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_filename", Type: field.TypeString, Nullable: true},
		{Name: "email_subject", Type: field.TypeString, Nullable: true},
		{Name: "email_sender", Type: field.TypeString, Nullable: true},
		{Name: "email_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_address", Type: field.TypeString, Nullable: true},
		{Name: "supplier_vat_id", Type: field.TypeString, Nullable: true},
		{Name: "restaurant_name", Type: field.TypeString, Nullable: true},
		{Name: "business_id", Type: field.TypeString, Nullable: true},
		{Name: "goods_net_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_vat_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_gross_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_net_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_vat_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_gross_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_net_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_vat_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "goods_gross_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "distribution_net_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "distribution_vat_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "distribution_gross_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_net_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_vat_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_gross_7", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_net_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_vat_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_gross_19", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_net_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_vat_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netprice_gross_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "end_amount_net", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "end_amount_vat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "end_amount_gross", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_merchant_invoice", Type: field.TypeString, Nullable: true},
		{Name: "netting_merchant_net", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_merchant_vat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_merchant_gross", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_wolt_invoice", Type: field.TypeString, Nullable: true},
		{Name: "netting_wolt_net", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_wolt_vat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_wolt_gross", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_net_payout", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "netting_parsed_json", Type: field.TypeJSON, Nullable: true},
		{Name: "netting_raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// WoltInvoicesTable holds the schema information for the "wolt_invoices" table.
	WoltInvoicesTable = &schema.Table{
		Name:       "wolt_invoices",
		Columns:    WoltInvoicesColumns,
		PrimaryKey: []*schema.Column{WoltInvoicesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LieferandoInvoicesTable,
		OrderItemsTable,
		TipItemsTable,
		UberEatsInvoicesTable,
		WoltInvoicesTable,
	}
)

func init() {
	LieferandoInvoicesTable.Annotation = &entsql.Annotation{
		Table: "lieferando_invoices",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = LieferandoInvoicesTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
	TipItemsTable.ForeignKeys[0].RefTable = LieferandoInvoicesTable
	TipItemsTable.Annotation = &entsql.Annotation{
		Table: "tip_items",
	}
	UberEatsInvoicesTable.Annotation = &entsql.Annotation{
		Table: "uber_eats_invoices",
	}
	WoltInvoicesTable.Annotation = &entsql.Annotation{
		Table: "wolt_invoices",
	}
}
