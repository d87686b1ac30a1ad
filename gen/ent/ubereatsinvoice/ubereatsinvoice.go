// Code generated by ent, DO NOT EDIT.

package ubereatsinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ubereatsinvoice type in the database.
	Label = "uber_eats_invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "invoice_date"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldPeriodEnd holds the string denoting the period_end field in the database.
	FieldPeriodEnd = "period_end"
	// FieldSupplierName holds the string denoting the supplier_name field in the database.
	FieldSupplierName = "supplier_name"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldSourceFilename holds the string denoting the source_filename field in the database.
	FieldSourceFilename = "source_filename"
	// FieldEmailSubject holds the string denoting the email_subject field in the database.
	FieldEmailSubject = "email_subject"
	// FieldEmailSender holds the string denoting the email_sender field in the database.
	FieldEmailSender = "email_sender"
	// FieldEmailDate holds the string denoting the email_date field in the database.
	FieldEmailDate = "email_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTaxDate holds the string denoting the tax_date field in the database.
	FieldTaxDate = "tax_date"
	// FieldCustomerCompany holds the string denoting the customer_company field in the database.
	FieldCustomerCompany = "customer_company"
	// FieldRestaurantName holds the string denoting the restaurant_name field in the database.
	FieldRestaurantName = "restaurant_name"
	// FieldRestaurantAddress holds the string denoting the restaurant_address field in the database.
	FieldRestaurantAddress = "restaurant_address"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldCustomerVatID holds the string denoting the customer_vat_id field in the database.
	FieldCustomerVatID = "customer_vat_id"
	// FieldTaxNumber holds the string denoting the tax_number field in the database.
	FieldTaxNumber = "tax_number"
	// FieldTotalOrders holds the string denoting the total_orders field in the database.
	FieldTotalOrders = "total_orders"
	// FieldTotalOrderValue holds the string denoting the total_order_value field in the database.
	FieldTotalOrderValue = "total_order_value"
	// FieldGrossRevenueAfterDiscounts holds the string denoting the gross_revenue_after_discounts field in the database.
	FieldGrossRevenueAfterDiscounts = "gross_revenue_after_discounts"
	// FieldCommissionOwnDelivery holds the string denoting the commission_own_delivery field in the database.
	FieldCommissionOwnDelivery = "commission_own_delivery"
	// FieldCommissionPickup holds the string denoting the commission_pickup field in the database.
	FieldCommissionPickup = "commission_pickup"
	// FieldUberEatsFee holds the string denoting the uber_eats_fee field in the database.
	FieldUberEatsFee = "uber_eats_fee"
	// FieldVat19 holds the string denoting the vat_19 field in the database.
	FieldVat19 = "vat_19"
	// FieldCashCollected holds the string denoting the cash_collected field in the database.
	FieldCashCollected = "cash_collected"
	// FieldTotalPayout holds the string denoting the total_payout field in the database.
	FieldTotalPayout = "total_payout"
	// FieldNetAmount holds the string denoting the net_amount field in the database.
	FieldNetAmount = "net_amount"
	// FieldVatAmount holds the string denoting the vat_amount field in the database.
	FieldVatAmount = "vat_amount"
	// Table holds the table name of the ubereatsinvoice in the database.
	Table = "uber_eats_invoices"
)

// Columns holds all SQL columns for ubereatsinvoice fields.
var Columns = []string{
	FieldID,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldSupplierName,
	FieldTotalAmount,
	FieldStatus,
	FieldExtractionConfidence,
	FieldNeedsReview,
	FieldRawText,
	FieldSourceFilename,
	FieldEmailSubject,
	FieldEmailSender,
	FieldEmailDate,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTaxDate,
	FieldCustomerCompany,
	FieldRestaurantName,
	FieldRestaurantAddress,
	FieldBusinessID,
	FieldCustomerVatID,
	FieldTaxNumber,
	FieldTotalOrders,
	FieldTotalOrderValue,
	FieldGrossRevenueAfterDiscounts,
	FieldCommissionOwnDelivery,
	FieldCommissionPickup,
	FieldUberEatsFee,
	FieldVat19,
	FieldCashCollected,
	FieldTotalPayout,
	FieldNetAmount,
	FieldVatAmount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	InvoiceNumberValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultExtractionConfidence holds the default value on creation for the "extraction_confidence" field.
	DefaultExtractionConfidence int
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UberEatsInvoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByPeriodEnd orders the results by the period_end field.
func ByPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodEnd, opts...).ToFunc()
}

// BySupplierName orders the results by the supplier_name field.
func BySupplierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierName, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// BySourceFilename orders the results by the source_filename field.
func BySourceFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFilename, opts...).ToFunc()
}

// ByEmailSubject orders the results by the email_subject field.
func ByEmailSubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSubject, opts...).ToFunc()
}

// ByEmailSender orders the results by the email_sender field.
func ByEmailSender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSender, opts...).ToFunc()
}

// ByEmailDate orders the results by the email_date field.
func ByEmailDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTaxDate orders the results by the tax_date field.
func ByTaxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxDate, opts...).ToFunc()
}

// ByCustomerCompany orders the results by the customer_company field.
func ByCustomerCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerCompany, opts...).ToFunc()
}

// ByRestaurantName orders the results by the restaurant_name field.
func ByRestaurantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantName, opts...).ToFunc()
}

// ByRestaurantAddress orders the results by the restaurant_address field.
func ByRestaurantAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantAddress, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByCustomerVatID orders the results by the customer_vat_id field.
func ByCustomerVatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerVatID, opts...).ToFunc()
}

// ByTaxNumber orders the results by the tax_number field.
func ByTaxNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxNumber, opts...).ToFunc()
}

// ByTotalOrders orders the results by the total_orders field.
func ByTotalOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOrders, opts...).ToFunc()
}

// ByTotalOrderValue orders the results by the total_order_value field.
func ByTotalOrderValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOrderValue, opts...).ToFunc()
}

// ByGrossRevenueAfterDiscounts orders the results by the gross_revenue_after_discounts field.
func ByGrossRevenueAfterDiscounts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossRevenueAfterDiscounts, opts...).ToFunc()
}

// ByCommissionOwnDelivery orders the results by the commission_own_delivery field.
func ByCommissionOwnDelivery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionOwnDelivery, opts...).ToFunc()
}

// ByCommissionPickup orders the results by the commission_pickup field.
func ByCommissionPickup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionPickup, opts...).ToFunc()
}

// ByUberEatsFee orders the results by the uber_eats_fee field.
func ByUberEatsFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUberEatsFee, opts...).ToFunc()
}

// ByVat19 orders the results by the vat_19 field.
func ByVat19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVat19, opts...).ToFunc()
}

// ByCashCollected orders the results by the cash_collected field.
func ByCashCollected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashCollected, opts...).ToFunc()
}

// ByTotalPayout orders the results by the total_payout field.
func ByTotalPayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPayout, opts...).ToFunc()
}

// ByNetAmount orders the results by the net_amount field.
func ByNetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetAmount, opts...).ToFunc()
}

// ByVatAmount orders the results by the vat_amount field.
func ByVatAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatAmount, opts...).ToFunc()
}
