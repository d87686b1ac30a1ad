// Code generated by ent, DO NOT EDIT.

package lieferandoinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the lieferandoinvoice type in the database.
	Label = "lieferando_invoice"
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
	// FieldRestaurantName holds the string denoting the restaurant_name field in the database.
	FieldRestaurantName = "restaurant_name"
	// FieldCustomerNumber holds the string denoting the customer_number field in the database.
	FieldCustomerNumber = "customer_number"
	// FieldCustomerCompany holds the string denoting the customer_company field in the database.
	FieldCustomerCompany = "customer_company"
	// FieldCustomerTaxNumber holds the string denoting the customer_tax_number field in the database.
	FieldCustomerTaxNumber = "customer_tax_number"
	// FieldCustomerBankIban holds the string denoting the customer_bank_iban field in the database.
	FieldCustomerBankIban = "customer_bank_iban"
	// FieldSupplierIban holds the string denoting the supplier_iban field in the database.
	FieldSupplierIban = "supplier_iban"
	// FieldSupplierVatID holds the string denoting the supplier_vat_id field in the database.
	FieldSupplierVatID = "supplier_vat_id"
	// FieldSupplierManagingDirector holds the string denoting the supplier_managing_director field in the database.
	FieldSupplierManagingDirector = "supplier_managing_director"
	// FieldSupplierCourtRegistry holds the string denoting the supplier_court_registry field in the database.
	FieldSupplierCourtRegistry = "supplier_court_registry"
	// FieldSupplierHrb holds the string denoting the supplier_hrb field in the database.
	FieldSupplierHrb = "supplier_hrb"
	// FieldTotalOrders holds the string denoting the total_orders field in the database.
	FieldTotalOrders = "total_orders"
	// FieldTotalRevenue holds the string denoting the total_revenue field in the database.
	FieldTotalRevenue = "total_revenue"
	// FieldOnlinePaidOrders holds the string denoting the online_paid_orders field in the database.
	FieldOnlinePaidOrders = "online_paid_orders"
	// FieldOnlinePaidAmount holds the string denoting the online_paid_amount field in the database.
	FieldOnlinePaidAmount = "online_paid_amount"
	// FieldCashPaidOrders holds the string denoting the cash_paid_orders field in the database.
	FieldCashPaidOrders = "cash_paid_orders"
	// FieldCashPaidAmount holds the string denoting the cash_paid_amount field in the database.
	FieldCashPaidAmount = "cash_paid_amount"
	// FieldCashServiceFeeAmount holds the string denoting the cash_service_fee_amount field in the database.
	FieldCashServiceFeeAmount = "cash_service_fee_amount"
	// FieldChargebackOrders holds the string denoting the chargeback_orders field in the database.
	FieldChargebackOrders = "chargeback_orders"
	// FieldChargebackAmount holds the string denoting the chargeback_amount field in the database.
	FieldChargebackAmount = "chargeback_amount"
	// FieldStampCardOrders holds the string denoting the stamp_card_orders field in the database.
	FieldStampCardOrders = "stamp_card_orders"
	// FieldStampCardAmount holds the string denoting the stamp_card_amount field in the database.
	FieldStampCardAmount = "stamp_card_amount"
	// FieldServiceFeeRate holds the string denoting the service_fee_rate field in the database.
	FieldServiceFeeRate = "service_fee_rate"
	// FieldServiceFeeAmount holds the string denoting the service_fee_amount field in the database.
	FieldServiceFeeAmount = "service_fee_amount"
	// FieldAdminFeeRate holds the string denoting the admin_fee_rate field in the database.
	FieldAdminFeeRate = "admin_fee_rate"
	// FieldAdminFeeAmount holds the string denoting the admin_fee_amount field in the database.
	FieldAdminFeeAmount = "admin_fee_amount"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldTaxRate holds the string denoting the tax_rate field in the database.
	FieldTaxRate = "tax_rate"
	// FieldTaxAmount holds the string denoting the tax_amount field in the database.
	FieldTaxAmount = "tax_amount"
	// FieldPaidOnlinePayments holds the string denoting the paid_online_payments field in the database.
	FieldPaidOnlinePayments = "paid_online_payments"
	// FieldOutstandingAmount holds the string denoting the outstanding_amount field in the database.
	FieldOutstandingAmount = "outstanding_amount"
	// FieldOutstandingBalance holds the string denoting the outstanding_balance field in the database.
	FieldOutstandingBalance = "outstanding_balance"
	// FieldPayoutAmount holds the string denoting the payout_amount field in the database.
	FieldPayoutAmount = "payout_amount"
	// FieldAmountDue holds the string denoting the amount_due field in the database.
	FieldAmountDue = "amount_due"
	// FieldConfirmationPaymentDate holds the string denoting the confirmation_payment_date field in the database.
	FieldConfirmationPaymentDate = "confirmation_payment_date"
	// FieldConfirmationCodeMessage holds the string denoting the confirmation_code_message field in the database.
	FieldConfirmationCodeMessage = "confirmation_code_message"
	// EdgeOrderItems holds the string denoting the order_items edge name in mutations.
	EdgeOrderItems = "order_items"
	// EdgeTipItems holds the string denoting the tip_items edge name in mutations.
	EdgeTipItems = "tip_items"
	// Table holds the table name of the lieferandoinvoice in the database.
	Table = "lieferando_invoices"
	// OrderItemsTable is the table that holds the order_items relation/edge.
	OrderItemsTable = "order_items"
	// OrderItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	OrderItemsInverseTable = "order_items"
	// OrderItemsColumn is the table column denoting the order_items relation/edge.
	OrderItemsColumn = "lieferando_invoice_order_items"
	// TipItemsTable is the table that holds the tip_items relation/edge.
	TipItemsTable = "tip_items"
	// TipItemsInverseTable is the table name for the TipItem entity.
	// It exists in this package in order to avoid circular dependency with the "tipitem" package.
	TipItemsInverseTable = "tip_items"
	// TipItemsColumn is the table column denoting the tip_items relation/edge.
	TipItemsColumn = "lieferando_invoice_tip_items"
)

// Columns holds all SQL columns for lieferandoinvoice fields.
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
	FieldRestaurantName,
	FieldCustomerNumber,
	FieldCustomerCompany,
	FieldCustomerTaxNumber,
	FieldCustomerBankIban,
	FieldSupplierIban,
	FieldSupplierVatID,
	FieldSupplierManagingDirector,
	FieldSupplierCourtRegistry,
	FieldSupplierHrb,
	FieldTotalOrders,
	FieldTotalRevenue,
	FieldOnlinePaidOrders,
	FieldOnlinePaidAmount,
	FieldCashPaidOrders,
	FieldCashPaidAmount,
	FieldCashServiceFeeAmount,
	FieldChargebackOrders,
	FieldChargebackAmount,
	FieldStampCardOrders,
	FieldStampCardAmount,
	FieldServiceFeeRate,
	FieldServiceFeeAmount,
	FieldAdminFeeRate,
	FieldAdminFeeAmount,
	FieldSubtotal,
	FieldTaxRate,
	FieldTaxAmount,
	FieldPaidOnlinePayments,
	FieldOutstandingAmount,
	FieldOutstandingBalance,
	FieldPayoutAmount,
	FieldAmountDue,
	FieldConfirmationPaymentDate,
	FieldConfirmationCodeMessage,
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
	// ConfirmationCodeMessageValidator is a validator for the "confirmation_code_message" field. It is called by the builders before save.
	ConfirmationCodeMessageValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LieferandoInvoice queries.
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

// ByRestaurantName orders the results by the restaurant_name field.
func ByRestaurantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantName, opts...).ToFunc()
}

// ByCustomerNumber orders the results by the customer_number field.
func ByCustomerNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerNumber, opts...).ToFunc()
}

// ByCustomerCompany orders the results by the customer_company field.
func ByCustomerCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerCompany, opts...).ToFunc()
}

// ByCustomerTaxNumber orders the results by the customer_tax_number field.
func ByCustomerTaxNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerTaxNumber, opts...).ToFunc()
}

// ByCustomerBankIban orders the results by the customer_bank_iban field.
func ByCustomerBankIban(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerBankIban, opts...).ToFunc()
}

// BySupplierIban orders the results by the supplier_iban field.
func BySupplierIban(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierIban, opts...).ToFunc()
}

// BySupplierVatID orders the results by the supplier_vat_id field.
func BySupplierVatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierVatID, opts...).ToFunc()
}

// BySupplierManagingDirector orders the results by the supplier_managing_director field.
func BySupplierManagingDirector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierManagingDirector, opts...).ToFunc()
}

// BySupplierCourtRegistry orders the results by the supplier_court_registry field.
func BySupplierCourtRegistry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierCourtRegistry, opts...).ToFunc()
}

// BySupplierHrb orders the results by the supplier_hrb field.
func BySupplierHrb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierHrb, opts...).ToFunc()
}

// ByTotalOrders orders the results by the total_orders field.
func ByTotalOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOrders, opts...).ToFunc()
}

// ByTotalRevenue orders the results by the total_revenue field.
func ByTotalRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRevenue, opts...).ToFunc()
}

// ByOnlinePaidOrders orders the results by the online_paid_orders field.
func ByOnlinePaidOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnlinePaidOrders, opts...).ToFunc()
}

// ByOnlinePaidAmount orders the results by the online_paid_amount field.
func ByOnlinePaidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnlinePaidAmount, opts...).ToFunc()
}

// ByCashPaidOrders orders the results by the cash_paid_orders field.
func ByCashPaidOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashPaidOrders, opts...).ToFunc()
}

// ByCashPaidAmount orders the results by the cash_paid_amount field.
func ByCashPaidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashPaidAmount, opts...).ToFunc()
}

// ByCashServiceFeeAmount orders the results by the cash_service_fee_amount field.
func ByCashServiceFeeAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashServiceFeeAmount, opts...).ToFunc()
}

// ByChargebackOrders orders the results by the chargeback_orders field.
func ByChargebackOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChargebackOrders, opts...).ToFunc()
}

// ByChargebackAmount orders the results by the chargeback_amount field.
func ByChargebackAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChargebackAmount, opts...).ToFunc()
}

// ByStampCardOrders orders the results by the stamp_card_orders field.
func ByStampCardOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStampCardOrders, opts...).ToFunc()
}

// ByStampCardAmount orders the results by the stamp_card_amount field.
func ByStampCardAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStampCardAmount, opts...).ToFunc()
}

// ByServiceFeeRate orders the results by the service_fee_rate field.
func ByServiceFeeRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceFeeRate, opts...).ToFunc()
}

// ByServiceFeeAmount orders the results by the service_fee_amount field.
func ByServiceFeeAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceFeeAmount, opts...).ToFunc()
}

// ByAdminFeeRate orders the results by the admin_fee_rate field.
func ByAdminFeeRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminFeeRate, opts...).ToFunc()
}

// ByAdminFeeAmount orders the results by the admin_fee_amount field.
func ByAdminFeeAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminFeeAmount, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByTaxRate orders the results by the tax_rate field.
func ByTaxRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxRate, opts...).ToFunc()
}

// ByTaxAmount orders the results by the tax_amount field.
func ByTaxAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxAmount, opts...).ToFunc()
}

// ByPaidOnlinePayments orders the results by the paid_online_payments field.
func ByPaidOnlinePayments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidOnlinePayments, opts...).ToFunc()
}

// ByOutstandingAmount orders the results by the outstanding_amount field.
func ByOutstandingAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutstandingAmount, opts...).ToFunc()
}

// ByOutstandingBalance orders the results by the outstanding_balance field.
func ByOutstandingBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutstandingBalance, opts...).ToFunc()
}

// ByPayoutAmount orders the results by the payout_amount field.
func ByPayoutAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayoutAmount, opts...).ToFunc()
}

// ByAmountDue orders the results by the amount_due field.
func ByAmountDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountDue, opts...).ToFunc()
}

// ByConfirmationPaymentDate orders the results by the confirmation_payment_date field.
func ByConfirmationPaymentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationPaymentDate, opts...).ToFunc()
}

// ByConfirmationCodeMessage orders the results by the confirmation_code_message field.
func ByConfirmationCodeMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationCodeMessage, opts...).ToFunc()
}

// ByOrderItemsCount orders the results by order_items count.
func ByOrderItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrderItemsStep(), opts...)
	}
}

// ByOrderItems orders the results by order_items terms.
func ByOrderItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrderItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTipItemsCount orders the results by tip_items count.
func ByTipItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTipItemsStep(), opts...)
	}
}

// ByTipItems orders the results by tip_items terms.
func ByTipItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTipItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOrderItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrderItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrderItemsTable, OrderItemsColumn),
	)
}
func newTipItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TipItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TipItemsTable, TipItemsColumn),
	)
}
