// Code generated by ent, DO NOT EDIT.

package woltinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the woltinvoice type in the database.
	Label = "wolt_invoice"
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
	// FieldSupplierAddress holds the string denoting the supplier_address field in the database.
	FieldSupplierAddress = "supplier_address"
	// FieldSupplierVatID holds the string denoting the supplier_vat_id field in the database.
	FieldSupplierVatID = "supplier_vat_id"
	// FieldRestaurantName holds the string denoting the restaurant_name field in the database.
	FieldRestaurantName = "restaurant_name"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldGoodsNet7 holds the string denoting the goods_net_7 field in the database.
	FieldGoodsNet7 = "goods_net_7"
	// FieldGoodsVat7 holds the string denoting the goods_vat_7 field in the database.
	FieldGoodsVat7 = "goods_vat_7"
	// FieldGoodsGross7 holds the string denoting the goods_gross_7 field in the database.
	FieldGoodsGross7 = "goods_gross_7"
	// FieldGoodsNet19 holds the string denoting the goods_net_19 field in the database.
	FieldGoodsNet19 = "goods_net_19"
	// FieldGoodsVat19 holds the string denoting the goods_vat_19 field in the database.
	FieldGoodsVat19 = "goods_vat_19"
	// FieldGoodsGross19 holds the string denoting the goods_gross_19 field in the database.
	FieldGoodsGross19 = "goods_gross_19"
	// FieldGoodsNetTotal holds the string denoting the goods_net_total field in the database.
	FieldGoodsNetTotal = "goods_net_total"
	// FieldGoodsVatTotal holds the string denoting the goods_vat_total field in the database.
	FieldGoodsVatTotal = "goods_vat_total"
	// FieldGoodsGrossTotal holds the string denoting the goods_gross_total field in the database.
	FieldGoodsGrossTotal = "goods_gross_total"
	// FieldDistributionNetTotal holds the string denoting the distribution_net_total field in the database.
	FieldDistributionNetTotal = "distribution_net_total"
	// FieldDistributionVatTotal holds the string denoting the distribution_vat_total field in the database.
	FieldDistributionVatTotal = "distribution_vat_total"
	// FieldDistributionGrossTotal holds the string denoting the distribution_gross_total field in the database.
	FieldDistributionGrossTotal = "distribution_gross_total"
	// FieldNetpriceNet7 holds the string denoting the netprice_net_7 field in the database.
	FieldNetpriceNet7 = "netprice_net_7"
	// FieldNetpriceVat7 holds the string denoting the netprice_vat_7 field in the database.
	FieldNetpriceVat7 = "netprice_vat_7"
	// FieldNetpriceGross7 holds the string denoting the netprice_gross_7 field in the database.
	FieldNetpriceGross7 = "netprice_gross_7"
	// FieldNetpriceNet19 holds the string denoting the netprice_net_19 field in the database.
	FieldNetpriceNet19 = "netprice_net_19"
	// FieldNetpriceVat19 holds the string denoting the netprice_vat_19 field in the database.
	FieldNetpriceVat19 = "netprice_vat_19"
	// FieldNetpriceGross19 holds the string denoting the netprice_gross_19 field in the database.
	FieldNetpriceGross19 = "netprice_gross_19"
	// FieldNetpriceNetTotal holds the string denoting the netprice_net_total field in the database.
	FieldNetpriceNetTotal = "netprice_net_total"
	// FieldNetpriceVatTotal holds the string denoting the netprice_vat_total field in the database.
	FieldNetpriceVatTotal = "netprice_vat_total"
	// FieldNetpriceGrossTotal holds the string denoting the netprice_gross_total field in the database.
	FieldNetpriceGrossTotal = "netprice_gross_total"
	// FieldEndAmountNet holds the string denoting the end_amount_net field in the database.
	FieldEndAmountNet = "end_amount_net"
	// FieldEndAmountVat holds the string denoting the end_amount_vat field in the database.
	FieldEndAmountVat = "end_amount_vat"
	// FieldEndAmountGross holds the string denoting the end_amount_gross field in the database.
	FieldEndAmountGross = "end_amount_gross"
	// FieldNettingMerchantInvoice holds the string denoting the netting_merchant_invoice field in the database.
	FieldNettingMerchantInvoice = "netting_merchant_invoice"
	// FieldNettingMerchantNet holds the string denoting the netting_merchant_net field in the database.
	FieldNettingMerchantNet = "netting_merchant_net"
	// FieldNettingMerchantVat holds the string denoting the netting_merchant_vat field in the database.
	FieldNettingMerchantVat = "netting_merchant_vat"
	// FieldNettingMerchantGross holds the string denoting the netting_merchant_gross field in the database.
	FieldNettingMerchantGross = "netting_merchant_gross"
	// FieldNettingWoltInvoice holds the string denoting the netting_wolt_invoice field in the database.
	FieldNettingWoltInvoice = "netting_wolt_invoice"
	// FieldNettingWoltNet holds the string denoting the netting_wolt_net field in the database.
	FieldNettingWoltNet = "netting_wolt_net"
	// FieldNettingWoltVat holds the string denoting the netting_wolt_vat field in the database.
	FieldNettingWoltVat = "netting_wolt_vat"
	// FieldNettingWoltGross holds the string denoting the netting_wolt_gross field in the database.
	FieldNettingWoltGross = "netting_wolt_gross"
	// FieldNettingNetPayout holds the string denoting the netting_net_payout field in the database.
	FieldNettingNetPayout = "netting_net_payout"
	// FieldNettingParsedJSON holds the string denoting the netting_parsed_json field in the database.
	FieldNettingParsedJSON = "netting_parsed_json"
	// FieldNettingRawText holds the string denoting the netting_raw_text field in the database.
	FieldNettingRawText = "netting_raw_text"
	// Table holds the table name of the woltinvoice in the database.
	Table = "wolt_invoices"
)

// Columns holds all SQL columns for woltinvoice fields.
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
	FieldSupplierAddress,
	FieldSupplierVatID,
	FieldRestaurantName,
	FieldBusinessID,
	FieldGoodsNet7,
	FieldGoodsVat7,
	FieldGoodsGross7,
	FieldGoodsNet19,
	FieldGoodsVat19,
	FieldGoodsGross19,
	FieldGoodsNetTotal,
	FieldGoodsVatTotal,
	FieldGoodsGrossTotal,
	FieldDistributionNetTotal,
	FieldDistributionVatTotal,
	FieldDistributionGrossTotal,
	FieldNetpriceNet7,
	FieldNetpriceVat7,
	FieldNetpriceGross7,
	FieldNetpriceNet19,
	FieldNetpriceVat19,
	FieldNetpriceGross19,
	FieldNetpriceNetTotal,
	FieldNetpriceVatTotal,
	FieldNetpriceGrossTotal,
	FieldEndAmountNet,
	FieldEndAmountVat,
	FieldEndAmountGross,
	FieldNettingMerchantInvoice,
	FieldNettingMerchantNet,
	FieldNettingMerchantVat,
	FieldNettingMerchantGross,
	FieldNettingWoltInvoice,
	FieldNettingWoltNet,
	FieldNettingWoltVat,
	FieldNettingWoltGross,
	FieldNettingNetPayout,
	FieldNettingParsedJSON,
	FieldNettingRawText,
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

// OrderOption defines the ordering options for the WoltInvoice queries.
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

// BySupplierAddress orders the results by the supplier_address field.
func BySupplierAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierAddress, opts...).ToFunc()
}

// BySupplierVatID orders the results by the supplier_vat_id field.
func BySupplierVatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierVatID, opts...).ToFunc()
}

// ByRestaurantName orders the results by the restaurant_name field.
func ByRestaurantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantName, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByGoodsNet7 orders the results by the goods_net_7 field.
func ByGoodsNet7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsNet7, opts...).ToFunc()
}

// ByGoodsVat7 orders the results by the goods_vat_7 field.
func ByGoodsVat7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsVat7, opts...).ToFunc()
}

// ByGoodsGross7 orders the results by the goods_gross_7 field.
func ByGoodsGross7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsGross7, opts...).ToFunc()
}

// ByGoodsNet19 orders the results by the goods_net_19 field.
func ByGoodsNet19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsNet19, opts...).ToFunc()
}

// ByGoodsVat19 orders the results by the goods_vat_19 field.
func ByGoodsVat19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsVat19, opts...).ToFunc()
}

// ByGoodsGross19 orders the results by the goods_gross_19 field.
func ByGoodsGross19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsGross19, opts...).ToFunc()
}

// ByGoodsNetTotal orders the results by the goods_net_total field.
func ByGoodsNetTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsNetTotal, opts...).ToFunc()
}

// ByGoodsVatTotal orders the results by the goods_vat_total field.
func ByGoodsVatTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsVatTotal, opts...).ToFunc()
}

// ByGoodsGrossTotal orders the results by the goods_gross_total field.
func ByGoodsGrossTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoodsGrossTotal, opts...).ToFunc()
}

// ByDistributionNetTotal orders the results by the distribution_net_total field.
func ByDistributionNetTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionNetTotal, opts...).ToFunc()
}

// ByDistributionVatTotal orders the results by the distribution_vat_total field.
func ByDistributionVatTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionVatTotal, opts...).ToFunc()
}

// ByDistributionGrossTotal orders the results by the distribution_gross_total field.
func ByDistributionGrossTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionGrossTotal, opts...).ToFunc()
}

// ByNetpriceNet7 orders the results by the netprice_net_7 field.
func ByNetpriceNet7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceNet7, opts...).ToFunc()
}

// ByNetpriceVat7 orders the results by the netprice_vat_7 field.
func ByNetpriceVat7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceVat7, opts...).ToFunc()
}

// ByNetpriceGross7 orders the results by the netprice_gross_7 field.
func ByNetpriceGross7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceGross7, opts...).ToFunc()
}

// ByNetpriceNet19 orders the results by the netprice_net_19 field.
func ByNetpriceNet19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceNet19, opts...).ToFunc()
}

// ByNetpriceVat19 orders the results by the netprice_vat_19 field.
func ByNetpriceVat19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceVat19, opts...).ToFunc()
}

// ByNetpriceGross19 orders the results by the netprice_gross_19 field.
func ByNetpriceGross19(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceGross19, opts...).ToFunc()
}

// ByNetpriceNetTotal orders the results by the netprice_net_total field.
func ByNetpriceNetTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceNetTotal, opts...).ToFunc()
}

// ByNetpriceVatTotal orders the results by the netprice_vat_total field.
func ByNetpriceVatTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceVatTotal, opts...).ToFunc()
}

// ByNetpriceGrossTotal orders the results by the netprice_gross_total field.
func ByNetpriceGrossTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetpriceGrossTotal, opts...).ToFunc()
}

// ByEndAmountNet orders the results by the end_amount_net field.
func ByEndAmountNet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAmountNet, opts...).ToFunc()
}

// ByEndAmountVat orders the results by the end_amount_vat field.
func ByEndAmountVat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAmountVat, opts...).ToFunc()
}

// ByEndAmountGross orders the results by the end_amount_gross field.
func ByEndAmountGross(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAmountGross, opts...).ToFunc()
}

// ByNettingMerchantInvoice orders the results by the netting_merchant_invoice field.
func ByNettingMerchantInvoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingMerchantInvoice, opts...).ToFunc()
}

// ByNettingMerchantNet orders the results by the netting_merchant_net field.
func ByNettingMerchantNet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingMerchantNet, opts...).ToFunc()
}

// ByNettingMerchantVat orders the results by the netting_merchant_vat field.
func ByNettingMerchantVat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingMerchantVat, opts...).ToFunc()
}

// ByNettingMerchantGross orders the results by the netting_merchant_gross field.
func ByNettingMerchantGross(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingMerchantGross, opts...).ToFunc()
}

// ByNettingWoltInvoice orders the results by the netting_wolt_invoice field.
func ByNettingWoltInvoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingWoltInvoice, opts...).ToFunc()
}

// ByNettingWoltNet orders the results by the netting_wolt_net field.
func ByNettingWoltNet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingWoltNet, opts...).ToFunc()
}

// ByNettingWoltVat orders the results by the netting_wolt_vat field.
func ByNettingWoltVat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingWoltVat, opts...).ToFunc()
}

// ByNettingWoltGross orders the results by the netting_wolt_gross field.
func ByNettingWoltGross(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingWoltGross, opts...).ToFunc()
}

// ByNettingNetPayout orders the results by the netting_net_payout field.
func ByNettingNetPayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingNetPayout, opts...).ToFunc()
}

// ByNettingRawText orders the results by the netting_raw_text field.
func ByNettingRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNettingRawText, opts...).ToFunc()
}
