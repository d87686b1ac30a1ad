// Code generated by ent, DO NOT EDIT.

package lieferandoinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldID, id))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStatus, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldRawText, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// EmailSubject applies equality check predicate on the "email_subject" field. It's identical to EmailSubjectEQ.
func EmailSubject(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSender applies equality check predicate on the "email_sender" field. It's identical to EmailSenderEQ.
func EmailSender(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailDate applies equality check predicate on the "email_date" field. It's identical to EmailDateEQ.
func EmailDate(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// RestaurantName applies equality check predicate on the "restaurant_name" field. It's identical to RestaurantNameEQ.
func RestaurantName(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// CustomerNumber applies equality check predicate on the "customer_number" field. It's identical to CustomerNumberEQ.
func CustomerNumber(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerNumber, v))
}

// CustomerCompany applies equality check predicate on the "customer_company" field. It's identical to CustomerCompanyEQ.
func CustomerCompany(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerCompany, v))
}

// CustomerTaxNumber applies equality check predicate on the "customer_tax_number" field. It's identical to CustomerTaxNumberEQ.
func CustomerTaxNumber(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerTaxNumber, v))
}

// CustomerBankIban applies equality check predicate on the "customer_bank_iban" field. It's identical to CustomerBankIbanEQ.
func CustomerBankIban(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerBankIban, v))
}

// SupplierIban applies equality check predicate on the "supplier_iban" field. It's identical to SupplierIbanEQ.
func SupplierIban(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierIban, v))
}

// SupplierVatID applies equality check predicate on the "supplier_vat_id" field. It's identical to SupplierVatIDEQ.
func SupplierVatID(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierVatID, v))
}

// SupplierManagingDirector applies equality check predicate on the "supplier_managing_director" field. It's identical to SupplierManagingDirectorEQ.
func SupplierManagingDirector(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierManagingDirector, v))
}

// SupplierCourtRegistry applies equality check predicate on the "supplier_court_registry" field. It's identical to SupplierCourtRegistryEQ.
func SupplierCourtRegistry(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierCourtRegistry, v))
}

// SupplierHrb applies equality check predicate on the "supplier_hrb" field. It's identical to SupplierHrbEQ.
func SupplierHrb(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierHrb, v))
}

// TotalOrders applies equality check predicate on the "total_orders" field. It's identical to TotalOrdersEQ.
func TotalOrders(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalRevenue applies equality check predicate on the "total_revenue" field. It's identical to TotalRevenueEQ.
func TotalRevenue(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalRevenue, v))
}

// OnlinePaidOrders applies equality check predicate on the "online_paid_orders" field. It's identical to OnlinePaidOrdersEQ.
func OnlinePaidOrders(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOnlinePaidOrders, v))
}

// OnlinePaidAmount applies equality check predicate on the "online_paid_amount" field. It's identical to OnlinePaidAmountEQ.
func OnlinePaidAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOnlinePaidAmount, v))
}

// CashPaidOrders applies equality check predicate on the "cash_paid_orders" field. It's identical to CashPaidOrdersEQ.
func CashPaidOrders(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashPaidOrders, v))
}

// CashPaidAmount applies equality check predicate on the "cash_paid_amount" field. It's identical to CashPaidAmountEQ.
func CashPaidAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashPaidAmount, v))
}

// CashServiceFeeAmount applies equality check predicate on the "cash_service_fee_amount" field. It's identical to CashServiceFeeAmountEQ.
func CashServiceFeeAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashServiceFeeAmount, v))
}

// ChargebackOrders applies equality check predicate on the "chargeback_orders" field. It's identical to ChargebackOrdersEQ.
func ChargebackOrders(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldChargebackOrders, v))
}

// ChargebackAmount applies equality check predicate on the "chargeback_amount" field. It's identical to ChargebackAmountEQ.
func ChargebackAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldChargebackAmount, v))
}

// StampCardOrders applies equality check predicate on the "stamp_card_orders" field. It's identical to StampCardOrdersEQ.
func StampCardOrders(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStampCardOrders, v))
}

// StampCardAmount applies equality check predicate on the "stamp_card_amount" field. It's identical to StampCardAmountEQ.
func StampCardAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStampCardAmount, v))
}

// ServiceFeeRate applies equality check predicate on the "service_fee_rate" field. It's identical to ServiceFeeRateEQ.
func ServiceFeeRate(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldServiceFeeRate, v))
}

// ServiceFeeAmount applies equality check predicate on the "service_fee_amount" field. It's identical to ServiceFeeAmountEQ.
func ServiceFeeAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldServiceFeeAmount, v))
}

// AdminFeeRate applies equality check predicate on the "admin_fee_rate" field. It's identical to AdminFeeRateEQ.
func AdminFeeRate(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAdminFeeRate, v))
}

// AdminFeeAmount applies equality check predicate on the "admin_fee_amount" field. It's identical to AdminFeeAmountEQ.
func AdminFeeAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAdminFeeAmount, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSubtotal, v))
}

// TaxRate applies equality check predicate on the "tax_rate" field. It's identical to TaxRateEQ.
func TaxRate(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTaxRate, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTaxAmount, v))
}

// PaidOnlinePayments applies equality check predicate on the "paid_online_payments" field. It's identical to PaidOnlinePaymentsEQ.
func PaidOnlinePayments(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPaidOnlinePayments, v))
}

// OutstandingAmount applies equality check predicate on the "outstanding_amount" field. It's identical to OutstandingAmountEQ.
func OutstandingAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOutstandingAmount, v))
}

// OutstandingBalance applies equality check predicate on the "outstanding_balance" field. It's identical to OutstandingBalanceEQ.
func OutstandingBalance(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOutstandingBalance, v))
}

// PayoutAmount applies equality check predicate on the "payout_amount" field. It's identical to PayoutAmountEQ.
func PayoutAmount(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPayoutAmount, v))
}

// AmountDue applies equality check predicate on the "amount_due" field. It's identical to AmountDueEQ.
func AmountDue(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAmountDue, v))
}

// ConfirmationPaymentDate applies equality check predicate on the "confirmation_payment_date" field. It's identical to ConfirmationPaymentDateEQ.
func ConfirmationPaymentDate(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldConfirmationPaymentDate, v))
}

// ConfirmationCodeMessage applies equality check predicate on the "confirmation_code_message" field. It's identical to ConfirmationCodeMessageEQ.
func ConfirmationCodeMessage(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldConfirmationCodeMessage, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldInvoiceDate))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldPeriodEnd))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierName, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldTotalAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldExtractionConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldNeedsReview, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldRawText, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameIsNil applies the IsNil predicate on the "source_filename" field.
func SourceFilenameIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSourceFilename))
}

// SourceFilenameNotNil applies the NotNil predicate on the "source_filename" field.
func SourceFilenameNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSourceFilename))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSourceFilename, v))
}

// EmailSubjectEQ applies the EQ predicate on the "email_subject" field.
func EmailSubjectEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSubjectNEQ applies the NEQ predicate on the "email_subject" field.
func EmailSubjectNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldEmailSubject, v))
}

// EmailSubjectIn applies the In predicate on the "email_subject" field.
func EmailSubjectIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldEmailSubject, vs...))
}

// EmailSubjectNotIn applies the NotIn predicate on the "email_subject" field.
func EmailSubjectNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldEmailSubject, vs...))
}

// EmailSubjectGT applies the GT predicate on the "email_subject" field.
func EmailSubjectGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldEmailSubject, v))
}

// EmailSubjectGTE applies the GTE predicate on the "email_subject" field.
func EmailSubjectGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldEmailSubject, v))
}

// EmailSubjectLT applies the LT predicate on the "email_subject" field.
func EmailSubjectLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldEmailSubject, v))
}

// EmailSubjectLTE applies the LTE predicate on the "email_subject" field.
func EmailSubjectLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldEmailSubject, v))
}

// EmailSubjectContains applies the Contains predicate on the "email_subject" field.
func EmailSubjectContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldEmailSubject, v))
}

// EmailSubjectHasPrefix applies the HasPrefix predicate on the "email_subject" field.
func EmailSubjectHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldEmailSubject, v))
}

// EmailSubjectHasSuffix applies the HasSuffix predicate on the "email_subject" field.
func EmailSubjectHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldEmailSubject, v))
}

// EmailSubjectIsNil applies the IsNil predicate on the "email_subject" field.
func EmailSubjectIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldEmailSubject))
}

// EmailSubjectNotNil applies the NotNil predicate on the "email_subject" field.
func EmailSubjectNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldEmailSubject))
}

// EmailSubjectEqualFold applies the EqualFold predicate on the "email_subject" field.
func EmailSubjectEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldEmailSubject, v))
}

// EmailSubjectContainsFold applies the ContainsFold predicate on the "email_subject" field.
func EmailSubjectContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldEmailSubject, v))
}

// EmailSenderEQ applies the EQ predicate on the "email_sender" field.
func EmailSenderEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailSenderNEQ applies the NEQ predicate on the "email_sender" field.
func EmailSenderNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldEmailSender, v))
}

// EmailSenderIn applies the In predicate on the "email_sender" field.
func EmailSenderIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldEmailSender, vs...))
}

// EmailSenderNotIn applies the NotIn predicate on the "email_sender" field.
func EmailSenderNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldEmailSender, vs...))
}

// EmailSenderGT applies the GT predicate on the "email_sender" field.
func EmailSenderGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldEmailSender, v))
}

// EmailSenderGTE applies the GTE predicate on the "email_sender" field.
func EmailSenderGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldEmailSender, v))
}

// EmailSenderLT applies the LT predicate on the "email_sender" field.
func EmailSenderLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldEmailSender, v))
}

// EmailSenderLTE applies the LTE predicate on the "email_sender" field.
func EmailSenderLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldEmailSender, v))
}

// EmailSenderContains applies the Contains predicate on the "email_sender" field.
func EmailSenderContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldEmailSender, v))
}

// EmailSenderHasPrefix applies the HasPrefix predicate on the "email_sender" field.
func EmailSenderHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldEmailSender, v))
}

// EmailSenderHasSuffix applies the HasSuffix predicate on the "email_sender" field.
func EmailSenderHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldEmailSender, v))
}

// EmailSenderIsNil applies the IsNil predicate on the "email_sender" field.
func EmailSenderIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldEmailSender))
}

// EmailSenderNotNil applies the NotNil predicate on the "email_sender" field.
func EmailSenderNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldEmailSender))
}

// EmailSenderEqualFold applies the EqualFold predicate on the "email_sender" field.
func EmailSenderEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldEmailSender, v))
}

// EmailSenderContainsFold applies the ContainsFold predicate on the "email_sender" field.
func EmailSenderContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldEmailSender, v))
}

// EmailDateEQ applies the EQ predicate on the "email_date" field.
func EmailDateEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// EmailDateNEQ applies the NEQ predicate on the "email_date" field.
func EmailDateNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldEmailDate, v))
}

// EmailDateIn applies the In predicate on the "email_date" field.
func EmailDateIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldEmailDate, vs...))
}

// EmailDateNotIn applies the NotIn predicate on the "email_date" field.
func EmailDateNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldEmailDate, vs...))
}

// EmailDateGT applies the GT predicate on the "email_date" field.
func EmailDateGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldEmailDate, v))
}

// EmailDateGTE applies the GTE predicate on the "email_date" field.
func EmailDateGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldEmailDate, v))
}

// EmailDateLT applies the LT predicate on the "email_date" field.
func EmailDateLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldEmailDate, v))
}

// EmailDateLTE applies the LTE predicate on the "email_date" field.
func EmailDateLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldEmailDate, v))
}

// EmailDateIsNil applies the IsNil predicate on the "email_date" field.
func EmailDateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldEmailDate))
}

// EmailDateNotNil applies the NotNil predicate on the "email_date" field.
func EmailDateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldEmailDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// RestaurantNameEQ applies the EQ predicate on the "restaurant_name" field.
func RestaurantNameEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantNameNEQ applies the NEQ predicate on the "restaurant_name" field.
func RestaurantNameNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldRestaurantName, v))
}

// RestaurantNameIn applies the In predicate on the "restaurant_name" field.
func RestaurantNameIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldRestaurantName, vs...))
}

// RestaurantNameNotIn applies the NotIn predicate on the "restaurant_name" field.
func RestaurantNameNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldRestaurantName, vs...))
}

// RestaurantNameGT applies the GT predicate on the "restaurant_name" field.
func RestaurantNameGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldRestaurantName, v))
}

// RestaurantNameGTE applies the GTE predicate on the "restaurant_name" field.
func RestaurantNameGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldRestaurantName, v))
}

// RestaurantNameLT applies the LT predicate on the "restaurant_name" field.
func RestaurantNameLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldRestaurantName, v))
}

// RestaurantNameLTE applies the LTE predicate on the "restaurant_name" field.
func RestaurantNameLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldRestaurantName, v))
}

// RestaurantNameContains applies the Contains predicate on the "restaurant_name" field.
func RestaurantNameContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldRestaurantName, v))
}

// RestaurantNameHasPrefix applies the HasPrefix predicate on the "restaurant_name" field.
func RestaurantNameHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldRestaurantName, v))
}

// RestaurantNameHasSuffix applies the HasSuffix predicate on the "restaurant_name" field.
func RestaurantNameHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldRestaurantName, v))
}

// RestaurantNameIsNil applies the IsNil predicate on the "restaurant_name" field.
func RestaurantNameIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldRestaurantName))
}

// RestaurantNameNotNil applies the NotNil predicate on the "restaurant_name" field.
func RestaurantNameNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldRestaurantName))
}

// RestaurantNameEqualFold applies the EqualFold predicate on the "restaurant_name" field.
func RestaurantNameEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldRestaurantName, v))
}

// RestaurantNameContainsFold applies the ContainsFold predicate on the "restaurant_name" field.
func RestaurantNameContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldRestaurantName, v))
}

// CustomerNumberEQ applies the EQ predicate on the "customer_number" field.
func CustomerNumberEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerNumber, v))
}

// CustomerNumberNEQ applies the NEQ predicate on the "customer_number" field.
func CustomerNumberNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCustomerNumber, v))
}

// CustomerNumberIn applies the In predicate on the "customer_number" field.
func CustomerNumberIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCustomerNumber, vs...))
}

// CustomerNumberNotIn applies the NotIn predicate on the "customer_number" field.
func CustomerNumberNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCustomerNumber, vs...))
}

// CustomerNumberGT applies the GT predicate on the "customer_number" field.
func CustomerNumberGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCustomerNumber, v))
}

// CustomerNumberGTE applies the GTE predicate on the "customer_number" field.
func CustomerNumberGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCustomerNumber, v))
}

// CustomerNumberLT applies the LT predicate on the "customer_number" field.
func CustomerNumberLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCustomerNumber, v))
}

// CustomerNumberLTE applies the LTE predicate on the "customer_number" field.
func CustomerNumberLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCustomerNumber, v))
}

// CustomerNumberContains applies the Contains predicate on the "customer_number" field.
func CustomerNumberContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldCustomerNumber, v))
}

// CustomerNumberHasPrefix applies the HasPrefix predicate on the "customer_number" field.
func CustomerNumberHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldCustomerNumber, v))
}

// CustomerNumberHasSuffix applies the HasSuffix predicate on the "customer_number" field.
func CustomerNumberHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldCustomerNumber, v))
}

// CustomerNumberIsNil applies the IsNil predicate on the "customer_number" field.
func CustomerNumberIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCustomerNumber))
}

// CustomerNumberNotNil applies the NotNil predicate on the "customer_number" field.
func CustomerNumberNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCustomerNumber))
}

// CustomerNumberEqualFold applies the EqualFold predicate on the "customer_number" field.
func CustomerNumberEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldCustomerNumber, v))
}

// CustomerNumberContainsFold applies the ContainsFold predicate on the "customer_number" field.
func CustomerNumberContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldCustomerNumber, v))
}

// CustomerCompanyEQ applies the EQ predicate on the "customer_company" field.
func CustomerCompanyEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerCompany, v))
}

// CustomerCompanyNEQ applies the NEQ predicate on the "customer_company" field.
func CustomerCompanyNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCustomerCompany, v))
}

// CustomerCompanyIn applies the In predicate on the "customer_company" field.
func CustomerCompanyIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCustomerCompany, vs...))
}

// CustomerCompanyNotIn applies the NotIn predicate on the "customer_company" field.
func CustomerCompanyNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCustomerCompany, vs...))
}

// CustomerCompanyGT applies the GT predicate on the "customer_company" field.
func CustomerCompanyGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCustomerCompany, v))
}

// CustomerCompanyGTE applies the GTE predicate on the "customer_company" field.
func CustomerCompanyGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCustomerCompany, v))
}

// CustomerCompanyLT applies the LT predicate on the "customer_company" field.
func CustomerCompanyLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCustomerCompany, v))
}

// CustomerCompanyLTE applies the LTE predicate on the "customer_company" field.
func CustomerCompanyLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCustomerCompany, v))
}

// CustomerCompanyContains applies the Contains predicate on the "customer_company" field.
func CustomerCompanyContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldCustomerCompany, v))
}

// CustomerCompanyHasPrefix applies the HasPrefix predicate on the "customer_company" field.
func CustomerCompanyHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldCustomerCompany, v))
}

// CustomerCompanyHasSuffix applies the HasSuffix predicate on the "customer_company" field.
func CustomerCompanyHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldCustomerCompany, v))
}

// CustomerCompanyIsNil applies the IsNil predicate on the "customer_company" field.
func CustomerCompanyIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCustomerCompany))
}

// CustomerCompanyNotNil applies the NotNil predicate on the "customer_company" field.
func CustomerCompanyNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCustomerCompany))
}

// CustomerCompanyEqualFold applies the EqualFold predicate on the "customer_company" field.
func CustomerCompanyEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldCustomerCompany, v))
}

// CustomerCompanyContainsFold applies the ContainsFold predicate on the "customer_company" field.
func CustomerCompanyContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldCustomerCompany, v))
}

// CustomerTaxNumberEQ applies the EQ predicate on the "customer_tax_number" field.
func CustomerTaxNumberEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberNEQ applies the NEQ predicate on the "customer_tax_number" field.
func CustomerTaxNumberNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberIn applies the In predicate on the "customer_tax_number" field.
func CustomerTaxNumberIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCustomerTaxNumber, vs...))
}

// CustomerTaxNumberNotIn applies the NotIn predicate on the "customer_tax_number" field.
func CustomerTaxNumberNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCustomerTaxNumber, vs...))
}

// CustomerTaxNumberGT applies the GT predicate on the "customer_tax_number" field.
func CustomerTaxNumberGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberGTE applies the GTE predicate on the "customer_tax_number" field.
func CustomerTaxNumberGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberLT applies the LT predicate on the "customer_tax_number" field.
func CustomerTaxNumberLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberLTE applies the LTE predicate on the "customer_tax_number" field.
func CustomerTaxNumberLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberContains applies the Contains predicate on the "customer_tax_number" field.
func CustomerTaxNumberContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberHasPrefix applies the HasPrefix predicate on the "customer_tax_number" field.
func CustomerTaxNumberHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberHasSuffix applies the HasSuffix predicate on the "customer_tax_number" field.
func CustomerTaxNumberHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberIsNil applies the IsNil predicate on the "customer_tax_number" field.
func CustomerTaxNumberIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCustomerTaxNumber))
}

// CustomerTaxNumberNotNil applies the NotNil predicate on the "customer_tax_number" field.
func CustomerTaxNumberNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCustomerTaxNumber))
}

// CustomerTaxNumberEqualFold applies the EqualFold predicate on the "customer_tax_number" field.
func CustomerTaxNumberEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldCustomerTaxNumber, v))
}

// CustomerTaxNumberContainsFold applies the ContainsFold predicate on the "customer_tax_number" field.
func CustomerTaxNumberContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldCustomerTaxNumber, v))
}

// CustomerBankIbanEQ applies the EQ predicate on the "customer_bank_iban" field.
func CustomerBankIbanEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCustomerBankIban, v))
}

// CustomerBankIbanNEQ applies the NEQ predicate on the "customer_bank_iban" field.
func CustomerBankIbanNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCustomerBankIban, v))
}

// CustomerBankIbanIn applies the In predicate on the "customer_bank_iban" field.
func CustomerBankIbanIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCustomerBankIban, vs...))
}

// CustomerBankIbanNotIn applies the NotIn predicate on the "customer_bank_iban" field.
func CustomerBankIbanNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCustomerBankIban, vs...))
}

// CustomerBankIbanGT applies the GT predicate on the "customer_bank_iban" field.
func CustomerBankIbanGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCustomerBankIban, v))
}

// CustomerBankIbanGTE applies the GTE predicate on the "customer_bank_iban" field.
func CustomerBankIbanGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCustomerBankIban, v))
}

// CustomerBankIbanLT applies the LT predicate on the "customer_bank_iban" field.
func CustomerBankIbanLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCustomerBankIban, v))
}

// CustomerBankIbanLTE applies the LTE predicate on the "customer_bank_iban" field.
func CustomerBankIbanLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCustomerBankIban, v))
}

// CustomerBankIbanContains applies the Contains predicate on the "customer_bank_iban" field.
func CustomerBankIbanContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldCustomerBankIban, v))
}

// CustomerBankIbanHasPrefix applies the HasPrefix predicate on the "customer_bank_iban" field.
func CustomerBankIbanHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldCustomerBankIban, v))
}

// CustomerBankIbanHasSuffix applies the HasSuffix predicate on the "customer_bank_iban" field.
func CustomerBankIbanHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldCustomerBankIban, v))
}

// CustomerBankIbanIsNil applies the IsNil predicate on the "customer_bank_iban" field.
func CustomerBankIbanIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCustomerBankIban))
}

// CustomerBankIbanNotNil applies the NotNil predicate on the "customer_bank_iban" field.
func CustomerBankIbanNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCustomerBankIban))
}

// CustomerBankIbanEqualFold applies the EqualFold predicate on the "customer_bank_iban" field.
func CustomerBankIbanEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldCustomerBankIban, v))
}

// CustomerBankIbanContainsFold applies the ContainsFold predicate on the "customer_bank_iban" field.
func CustomerBankIbanContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldCustomerBankIban, v))
}

// SupplierIbanEQ applies the EQ predicate on the "supplier_iban" field.
func SupplierIbanEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierIban, v))
}

// SupplierIbanNEQ applies the NEQ predicate on the "supplier_iban" field.
func SupplierIbanNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierIban, v))
}

// SupplierIbanIn applies the In predicate on the "supplier_iban" field.
func SupplierIbanIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierIban, vs...))
}

// SupplierIbanNotIn applies the NotIn predicate on the "supplier_iban" field.
func SupplierIbanNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierIban, vs...))
}

// SupplierIbanGT applies the GT predicate on the "supplier_iban" field.
func SupplierIbanGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierIban, v))
}

// SupplierIbanGTE applies the GTE predicate on the "supplier_iban" field.
func SupplierIbanGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierIban, v))
}

// SupplierIbanLT applies the LT predicate on the "supplier_iban" field.
func SupplierIbanLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierIban, v))
}

// SupplierIbanLTE applies the LTE predicate on the "supplier_iban" field.
func SupplierIbanLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierIban, v))
}

// SupplierIbanContains applies the Contains predicate on the "supplier_iban" field.
func SupplierIbanContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierIban, v))
}

// SupplierIbanHasPrefix applies the HasPrefix predicate on the "supplier_iban" field.
func SupplierIbanHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierIban, v))
}

// SupplierIbanHasSuffix applies the HasSuffix predicate on the "supplier_iban" field.
func SupplierIbanHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierIban, v))
}

// SupplierIbanIsNil applies the IsNil predicate on the "supplier_iban" field.
func SupplierIbanIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierIban))
}

// SupplierIbanNotNil applies the NotNil predicate on the "supplier_iban" field.
func SupplierIbanNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierIban))
}

// SupplierIbanEqualFold applies the EqualFold predicate on the "supplier_iban" field.
func SupplierIbanEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierIban, v))
}

// SupplierIbanContainsFold applies the ContainsFold predicate on the "supplier_iban" field.
func SupplierIbanContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierIban, v))
}

// SupplierVatIDEQ applies the EQ predicate on the "supplier_vat_id" field.
func SupplierVatIDEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierVatID, v))
}

// SupplierVatIDNEQ applies the NEQ predicate on the "supplier_vat_id" field.
func SupplierVatIDNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierVatID, v))
}

// SupplierVatIDIn applies the In predicate on the "supplier_vat_id" field.
func SupplierVatIDIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierVatID, vs...))
}

// SupplierVatIDNotIn applies the NotIn predicate on the "supplier_vat_id" field.
func SupplierVatIDNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierVatID, vs...))
}

// SupplierVatIDGT applies the GT predicate on the "supplier_vat_id" field.
func SupplierVatIDGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierVatID, v))
}

// SupplierVatIDGTE applies the GTE predicate on the "supplier_vat_id" field.
func SupplierVatIDGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierVatID, v))
}

// SupplierVatIDLT applies the LT predicate on the "supplier_vat_id" field.
func SupplierVatIDLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierVatID, v))
}

// SupplierVatIDLTE applies the LTE predicate on the "supplier_vat_id" field.
func SupplierVatIDLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierVatID, v))
}

// SupplierVatIDContains applies the Contains predicate on the "supplier_vat_id" field.
func SupplierVatIDContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierVatID, v))
}

// SupplierVatIDHasPrefix applies the HasPrefix predicate on the "supplier_vat_id" field.
func SupplierVatIDHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierVatID, v))
}

// SupplierVatIDHasSuffix applies the HasSuffix predicate on the "supplier_vat_id" field.
func SupplierVatIDHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierVatID, v))
}

// SupplierVatIDIsNil applies the IsNil predicate on the "supplier_vat_id" field.
func SupplierVatIDIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierVatID))
}

// SupplierVatIDNotNil applies the NotNil predicate on the "supplier_vat_id" field.
func SupplierVatIDNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierVatID))
}

// SupplierVatIDEqualFold applies the EqualFold predicate on the "supplier_vat_id" field.
func SupplierVatIDEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierVatID, v))
}

// SupplierVatIDContainsFold applies the ContainsFold predicate on the "supplier_vat_id" field.
func SupplierVatIDContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierVatID, v))
}

// SupplierManagingDirectorEQ applies the EQ predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorNEQ applies the NEQ predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorIn applies the In predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierManagingDirector, vs...))
}

// SupplierManagingDirectorNotIn applies the NotIn predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierManagingDirector, vs...))
}

// SupplierManagingDirectorGT applies the GT predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorGTE applies the GTE predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorLT applies the LT predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorLTE applies the LTE predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorContains applies the Contains predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorHasPrefix applies the HasPrefix predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorHasSuffix applies the HasSuffix predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorIsNil applies the IsNil predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierManagingDirector))
}

// SupplierManagingDirectorNotNil applies the NotNil predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierManagingDirector))
}

// SupplierManagingDirectorEqualFold applies the EqualFold predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierManagingDirector, v))
}

// SupplierManagingDirectorContainsFold applies the ContainsFold predicate on the "supplier_managing_director" field.
func SupplierManagingDirectorContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierManagingDirector, v))
}

// SupplierCourtRegistryEQ applies the EQ predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryNEQ applies the NEQ predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryIn applies the In predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierCourtRegistry, vs...))
}

// SupplierCourtRegistryNotIn applies the NotIn predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierCourtRegistry, vs...))
}

// SupplierCourtRegistryGT applies the GT predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryGTE applies the GTE predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryLT applies the LT predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryLTE applies the LTE predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryContains applies the Contains predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryHasPrefix applies the HasPrefix predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryHasSuffix applies the HasSuffix predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryIsNil applies the IsNil predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierCourtRegistry))
}

// SupplierCourtRegistryNotNil applies the NotNil predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierCourtRegistry))
}

// SupplierCourtRegistryEqualFold applies the EqualFold predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierCourtRegistry, v))
}

// SupplierCourtRegistryContainsFold applies the ContainsFold predicate on the "supplier_court_registry" field.
func SupplierCourtRegistryContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierCourtRegistry, v))
}

// SupplierHrbEQ applies the EQ predicate on the "supplier_hrb" field.
func SupplierHrbEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSupplierHrb, v))
}

// SupplierHrbNEQ applies the NEQ predicate on the "supplier_hrb" field.
func SupplierHrbNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSupplierHrb, v))
}

// SupplierHrbIn applies the In predicate on the "supplier_hrb" field.
func SupplierHrbIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSupplierHrb, vs...))
}

// SupplierHrbNotIn applies the NotIn predicate on the "supplier_hrb" field.
func SupplierHrbNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSupplierHrb, vs...))
}

// SupplierHrbGT applies the GT predicate on the "supplier_hrb" field.
func SupplierHrbGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSupplierHrb, v))
}

// SupplierHrbGTE applies the GTE predicate on the "supplier_hrb" field.
func SupplierHrbGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSupplierHrb, v))
}

// SupplierHrbLT applies the LT predicate on the "supplier_hrb" field.
func SupplierHrbLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSupplierHrb, v))
}

// SupplierHrbLTE applies the LTE predicate on the "supplier_hrb" field.
func SupplierHrbLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSupplierHrb, v))
}

// SupplierHrbContains applies the Contains predicate on the "supplier_hrb" field.
func SupplierHrbContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldSupplierHrb, v))
}

// SupplierHrbHasPrefix applies the HasPrefix predicate on the "supplier_hrb" field.
func SupplierHrbHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldSupplierHrb, v))
}

// SupplierHrbHasSuffix applies the HasSuffix predicate on the "supplier_hrb" field.
func SupplierHrbHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldSupplierHrb, v))
}

// SupplierHrbIsNil applies the IsNil predicate on the "supplier_hrb" field.
func SupplierHrbIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSupplierHrb))
}

// SupplierHrbNotNil applies the NotNil predicate on the "supplier_hrb" field.
func SupplierHrbNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSupplierHrb))
}

// SupplierHrbEqualFold applies the EqualFold predicate on the "supplier_hrb" field.
func SupplierHrbEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldSupplierHrb, v))
}

// SupplierHrbContainsFold applies the ContainsFold predicate on the "supplier_hrb" field.
func SupplierHrbContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldSupplierHrb, v))
}

// TotalOrdersEQ applies the EQ predicate on the "total_orders" field.
func TotalOrdersEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalOrdersNEQ applies the NEQ predicate on the "total_orders" field.
func TotalOrdersNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldTotalOrders, v))
}

// TotalOrdersIn applies the In predicate on the "total_orders" field.
func TotalOrdersIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldTotalOrders, vs...))
}

// TotalOrdersNotIn applies the NotIn predicate on the "total_orders" field.
func TotalOrdersNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldTotalOrders, vs...))
}

// TotalOrdersGT applies the GT predicate on the "total_orders" field.
func TotalOrdersGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldTotalOrders, v))
}

// TotalOrdersGTE applies the GTE predicate on the "total_orders" field.
func TotalOrdersGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldTotalOrders, v))
}

// TotalOrdersLT applies the LT predicate on the "total_orders" field.
func TotalOrdersLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldTotalOrders, v))
}

// TotalOrdersLTE applies the LTE predicate on the "total_orders" field.
func TotalOrdersLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldTotalOrders, v))
}

// TotalOrdersIsNil applies the IsNil predicate on the "total_orders" field.
func TotalOrdersIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldTotalOrders))
}

// TotalOrdersNotNil applies the NotNil predicate on the "total_orders" field.
func TotalOrdersNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldTotalOrders))
}

// TotalRevenueEQ applies the EQ predicate on the "total_revenue" field.
func TotalRevenueEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTotalRevenue, v))
}

// TotalRevenueNEQ applies the NEQ predicate on the "total_revenue" field.
func TotalRevenueNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldTotalRevenue, v))
}

// TotalRevenueIn applies the In predicate on the "total_revenue" field.
func TotalRevenueIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldTotalRevenue, vs...))
}

// TotalRevenueNotIn applies the NotIn predicate on the "total_revenue" field.
func TotalRevenueNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldTotalRevenue, vs...))
}

// TotalRevenueGT applies the GT predicate on the "total_revenue" field.
func TotalRevenueGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldTotalRevenue, v))
}

// TotalRevenueGTE applies the GTE predicate on the "total_revenue" field.
func TotalRevenueGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldTotalRevenue, v))
}

// TotalRevenueLT applies the LT predicate on the "total_revenue" field.
func TotalRevenueLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldTotalRevenue, v))
}

// TotalRevenueLTE applies the LTE predicate on the "total_revenue" field.
func TotalRevenueLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldTotalRevenue, v))
}

// TotalRevenueIsNil applies the IsNil predicate on the "total_revenue" field.
func TotalRevenueIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldTotalRevenue))
}

// TotalRevenueNotNil applies the NotNil predicate on the "total_revenue" field.
func TotalRevenueNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldTotalRevenue))
}

// OnlinePaidOrdersEQ applies the EQ predicate on the "online_paid_orders" field.
func OnlinePaidOrdersEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersNEQ applies the NEQ predicate on the "online_paid_orders" field.
func OnlinePaidOrdersNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersIn applies the In predicate on the "online_paid_orders" field.
func OnlinePaidOrdersIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldOnlinePaidOrders, vs...))
}

// OnlinePaidOrdersNotIn applies the NotIn predicate on the "online_paid_orders" field.
func OnlinePaidOrdersNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldOnlinePaidOrders, vs...))
}

// OnlinePaidOrdersGT applies the GT predicate on the "online_paid_orders" field.
func OnlinePaidOrdersGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersGTE applies the GTE predicate on the "online_paid_orders" field.
func OnlinePaidOrdersGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersLT applies the LT predicate on the "online_paid_orders" field.
func OnlinePaidOrdersLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersLTE applies the LTE predicate on the "online_paid_orders" field.
func OnlinePaidOrdersLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldOnlinePaidOrders, v))
}

// OnlinePaidOrdersIsNil applies the IsNil predicate on the "online_paid_orders" field.
func OnlinePaidOrdersIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldOnlinePaidOrders))
}

// OnlinePaidOrdersNotNil applies the NotNil predicate on the "online_paid_orders" field.
func OnlinePaidOrdersNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldOnlinePaidOrders))
}

// OnlinePaidAmountEQ applies the EQ predicate on the "online_paid_amount" field.
func OnlinePaidAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountNEQ applies the NEQ predicate on the "online_paid_amount" field.
func OnlinePaidAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountIn applies the In predicate on the "online_paid_amount" field.
func OnlinePaidAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldOnlinePaidAmount, vs...))
}

// OnlinePaidAmountNotIn applies the NotIn predicate on the "online_paid_amount" field.
func OnlinePaidAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldOnlinePaidAmount, vs...))
}

// OnlinePaidAmountGT applies the GT predicate on the "online_paid_amount" field.
func OnlinePaidAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountGTE applies the GTE predicate on the "online_paid_amount" field.
func OnlinePaidAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountLT applies the LT predicate on the "online_paid_amount" field.
func OnlinePaidAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountLTE applies the LTE predicate on the "online_paid_amount" field.
func OnlinePaidAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldOnlinePaidAmount, v))
}

// OnlinePaidAmountIsNil applies the IsNil predicate on the "online_paid_amount" field.
func OnlinePaidAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldOnlinePaidAmount))
}

// OnlinePaidAmountNotNil applies the NotNil predicate on the "online_paid_amount" field.
func OnlinePaidAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldOnlinePaidAmount))
}

// CashPaidOrdersEQ applies the EQ predicate on the "cash_paid_orders" field.
func CashPaidOrdersEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashPaidOrders, v))
}

// CashPaidOrdersNEQ applies the NEQ predicate on the "cash_paid_orders" field.
func CashPaidOrdersNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCashPaidOrders, v))
}

// CashPaidOrdersIn applies the In predicate on the "cash_paid_orders" field.
func CashPaidOrdersIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCashPaidOrders, vs...))
}

// CashPaidOrdersNotIn applies the NotIn predicate on the "cash_paid_orders" field.
func CashPaidOrdersNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCashPaidOrders, vs...))
}

// CashPaidOrdersGT applies the GT predicate on the "cash_paid_orders" field.
func CashPaidOrdersGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCashPaidOrders, v))
}

// CashPaidOrdersGTE applies the GTE predicate on the "cash_paid_orders" field.
func CashPaidOrdersGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCashPaidOrders, v))
}

// CashPaidOrdersLT applies the LT predicate on the "cash_paid_orders" field.
func CashPaidOrdersLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCashPaidOrders, v))
}

// CashPaidOrdersLTE applies the LTE predicate on the "cash_paid_orders" field.
func CashPaidOrdersLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCashPaidOrders, v))
}

// CashPaidOrdersIsNil applies the IsNil predicate on the "cash_paid_orders" field.
func CashPaidOrdersIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCashPaidOrders))
}

// CashPaidOrdersNotNil applies the NotNil predicate on the "cash_paid_orders" field.
func CashPaidOrdersNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCashPaidOrders))
}

// CashPaidAmountEQ applies the EQ predicate on the "cash_paid_amount" field.
func CashPaidAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashPaidAmount, v))
}

// CashPaidAmountNEQ applies the NEQ predicate on the "cash_paid_amount" field.
func CashPaidAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCashPaidAmount, v))
}

// CashPaidAmountIn applies the In predicate on the "cash_paid_amount" field.
func CashPaidAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCashPaidAmount, vs...))
}

// CashPaidAmountNotIn applies the NotIn predicate on the "cash_paid_amount" field.
func CashPaidAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCashPaidAmount, vs...))
}

// CashPaidAmountGT applies the GT predicate on the "cash_paid_amount" field.
func CashPaidAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCashPaidAmount, v))
}

// CashPaidAmountGTE applies the GTE predicate on the "cash_paid_amount" field.
func CashPaidAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCashPaidAmount, v))
}

// CashPaidAmountLT applies the LT predicate on the "cash_paid_amount" field.
func CashPaidAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCashPaidAmount, v))
}

// CashPaidAmountLTE applies the LTE predicate on the "cash_paid_amount" field.
func CashPaidAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCashPaidAmount, v))
}

// CashPaidAmountIsNil applies the IsNil predicate on the "cash_paid_amount" field.
func CashPaidAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCashPaidAmount))
}

// CashPaidAmountNotNil applies the NotNil predicate on the "cash_paid_amount" field.
func CashPaidAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCashPaidAmount))
}

// CashServiceFeeAmountEQ applies the EQ predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountNEQ applies the NEQ predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountIn applies the In predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldCashServiceFeeAmount, vs...))
}

// CashServiceFeeAmountNotIn applies the NotIn predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldCashServiceFeeAmount, vs...))
}

// CashServiceFeeAmountGT applies the GT predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountGTE applies the GTE predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountLT applies the LT predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountLTE applies the LTE predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldCashServiceFeeAmount, v))
}

// CashServiceFeeAmountIsNil applies the IsNil predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldCashServiceFeeAmount))
}

// CashServiceFeeAmountNotNil applies the NotNil predicate on the "cash_service_fee_amount" field.
func CashServiceFeeAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldCashServiceFeeAmount))
}

// ChargebackOrdersEQ applies the EQ predicate on the "chargeback_orders" field.
func ChargebackOrdersEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldChargebackOrders, v))
}

// ChargebackOrdersNEQ applies the NEQ predicate on the "chargeback_orders" field.
func ChargebackOrdersNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldChargebackOrders, v))
}

// ChargebackOrdersIn applies the In predicate on the "chargeback_orders" field.
func ChargebackOrdersIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldChargebackOrders, vs...))
}

// ChargebackOrdersNotIn applies the NotIn predicate on the "chargeback_orders" field.
func ChargebackOrdersNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldChargebackOrders, vs...))
}

// ChargebackOrdersGT applies the GT predicate on the "chargeback_orders" field.
func ChargebackOrdersGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldChargebackOrders, v))
}

// ChargebackOrdersGTE applies the GTE predicate on the "chargeback_orders" field.
func ChargebackOrdersGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldChargebackOrders, v))
}

// ChargebackOrdersLT applies the LT predicate on the "chargeback_orders" field.
func ChargebackOrdersLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldChargebackOrders, v))
}

// ChargebackOrdersLTE applies the LTE predicate on the "chargeback_orders" field.
func ChargebackOrdersLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldChargebackOrders, v))
}

// ChargebackOrdersIsNil applies the IsNil predicate on the "chargeback_orders" field.
func ChargebackOrdersIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldChargebackOrders))
}

// ChargebackOrdersNotNil applies the NotNil predicate on the "chargeback_orders" field.
func ChargebackOrdersNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldChargebackOrders))
}

// ChargebackAmountEQ applies the EQ predicate on the "chargeback_amount" field.
func ChargebackAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldChargebackAmount, v))
}

// ChargebackAmountNEQ applies the NEQ predicate on the "chargeback_amount" field.
func ChargebackAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldChargebackAmount, v))
}

// ChargebackAmountIn applies the In predicate on the "chargeback_amount" field.
func ChargebackAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldChargebackAmount, vs...))
}

// ChargebackAmountNotIn applies the NotIn predicate on the "chargeback_amount" field.
func ChargebackAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldChargebackAmount, vs...))
}

// ChargebackAmountGT applies the GT predicate on the "chargeback_amount" field.
func ChargebackAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldChargebackAmount, v))
}

// ChargebackAmountGTE applies the GTE predicate on the "chargeback_amount" field.
func ChargebackAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldChargebackAmount, v))
}

// ChargebackAmountLT applies the LT predicate on the "chargeback_amount" field.
func ChargebackAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldChargebackAmount, v))
}

// ChargebackAmountLTE applies the LTE predicate on the "chargeback_amount" field.
func ChargebackAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldChargebackAmount, v))
}

// ChargebackAmountIsNil applies the IsNil predicate on the "chargeback_amount" field.
func ChargebackAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldChargebackAmount))
}

// ChargebackAmountNotNil applies the NotNil predicate on the "chargeback_amount" field.
func ChargebackAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldChargebackAmount))
}

// StampCardOrdersEQ applies the EQ predicate on the "stamp_card_orders" field.
func StampCardOrdersEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStampCardOrders, v))
}

// StampCardOrdersNEQ applies the NEQ predicate on the "stamp_card_orders" field.
func StampCardOrdersNEQ(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldStampCardOrders, v))
}

// StampCardOrdersIn applies the In predicate on the "stamp_card_orders" field.
func StampCardOrdersIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldStampCardOrders, vs...))
}

// StampCardOrdersNotIn applies the NotIn predicate on the "stamp_card_orders" field.
func StampCardOrdersNotIn(vs ...int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldStampCardOrders, vs...))
}

// StampCardOrdersGT applies the GT predicate on the "stamp_card_orders" field.
func StampCardOrdersGT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldStampCardOrders, v))
}

// StampCardOrdersGTE applies the GTE predicate on the "stamp_card_orders" field.
func StampCardOrdersGTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldStampCardOrders, v))
}

// StampCardOrdersLT applies the LT predicate on the "stamp_card_orders" field.
func StampCardOrdersLT(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldStampCardOrders, v))
}

// StampCardOrdersLTE applies the LTE predicate on the "stamp_card_orders" field.
func StampCardOrdersLTE(v int) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldStampCardOrders, v))
}

// StampCardOrdersIsNil applies the IsNil predicate on the "stamp_card_orders" field.
func StampCardOrdersIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldStampCardOrders))
}

// StampCardOrdersNotNil applies the NotNil predicate on the "stamp_card_orders" field.
func StampCardOrdersNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldStampCardOrders))
}

// StampCardAmountEQ applies the EQ predicate on the "stamp_card_amount" field.
func StampCardAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldStampCardAmount, v))
}

// StampCardAmountNEQ applies the NEQ predicate on the "stamp_card_amount" field.
func StampCardAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldStampCardAmount, v))
}

// StampCardAmountIn applies the In predicate on the "stamp_card_amount" field.
func StampCardAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldStampCardAmount, vs...))
}

// StampCardAmountNotIn applies the NotIn predicate on the "stamp_card_amount" field.
func StampCardAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldStampCardAmount, vs...))
}

// StampCardAmountGT applies the GT predicate on the "stamp_card_amount" field.
func StampCardAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldStampCardAmount, v))
}

// StampCardAmountGTE applies the GTE predicate on the "stamp_card_amount" field.
func StampCardAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldStampCardAmount, v))
}

// StampCardAmountLT applies the LT predicate on the "stamp_card_amount" field.
func StampCardAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldStampCardAmount, v))
}

// StampCardAmountLTE applies the LTE predicate on the "stamp_card_amount" field.
func StampCardAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldStampCardAmount, v))
}

// StampCardAmountIsNil applies the IsNil predicate on the "stamp_card_amount" field.
func StampCardAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldStampCardAmount))
}

// StampCardAmountNotNil applies the NotNil predicate on the "stamp_card_amount" field.
func StampCardAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldStampCardAmount))
}

// ServiceFeeRateEQ applies the EQ predicate on the "service_fee_rate" field.
func ServiceFeeRateEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldServiceFeeRate, v))
}

// ServiceFeeRateNEQ applies the NEQ predicate on the "service_fee_rate" field.
func ServiceFeeRateNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldServiceFeeRate, v))
}

// ServiceFeeRateIn applies the In predicate on the "service_fee_rate" field.
func ServiceFeeRateIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldServiceFeeRate, vs...))
}

// ServiceFeeRateNotIn applies the NotIn predicate on the "service_fee_rate" field.
func ServiceFeeRateNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldServiceFeeRate, vs...))
}

// ServiceFeeRateGT applies the GT predicate on the "service_fee_rate" field.
func ServiceFeeRateGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldServiceFeeRate, v))
}

// ServiceFeeRateGTE applies the GTE predicate on the "service_fee_rate" field.
func ServiceFeeRateGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldServiceFeeRate, v))
}

// ServiceFeeRateLT applies the LT predicate on the "service_fee_rate" field.
func ServiceFeeRateLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldServiceFeeRate, v))
}

// ServiceFeeRateLTE applies the LTE predicate on the "service_fee_rate" field.
func ServiceFeeRateLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldServiceFeeRate, v))
}

// ServiceFeeRateIsNil applies the IsNil predicate on the "service_fee_rate" field.
func ServiceFeeRateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldServiceFeeRate))
}

// ServiceFeeRateNotNil applies the NotNil predicate on the "service_fee_rate" field.
func ServiceFeeRateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldServiceFeeRate))
}

// ServiceFeeAmountEQ applies the EQ predicate on the "service_fee_amount" field.
func ServiceFeeAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountNEQ applies the NEQ predicate on the "service_fee_amount" field.
func ServiceFeeAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountIn applies the In predicate on the "service_fee_amount" field.
func ServiceFeeAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldServiceFeeAmount, vs...))
}

// ServiceFeeAmountNotIn applies the NotIn predicate on the "service_fee_amount" field.
func ServiceFeeAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldServiceFeeAmount, vs...))
}

// ServiceFeeAmountGT applies the GT predicate on the "service_fee_amount" field.
func ServiceFeeAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountGTE applies the GTE predicate on the "service_fee_amount" field.
func ServiceFeeAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountLT applies the LT predicate on the "service_fee_amount" field.
func ServiceFeeAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountLTE applies the LTE predicate on the "service_fee_amount" field.
func ServiceFeeAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldServiceFeeAmount, v))
}

// ServiceFeeAmountIsNil applies the IsNil predicate on the "service_fee_amount" field.
func ServiceFeeAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldServiceFeeAmount))
}

// ServiceFeeAmountNotNil applies the NotNil predicate on the "service_fee_amount" field.
func ServiceFeeAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldServiceFeeAmount))
}

// AdminFeeRateEQ applies the EQ predicate on the "admin_fee_rate" field.
func AdminFeeRateEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAdminFeeRate, v))
}

// AdminFeeRateNEQ applies the NEQ predicate on the "admin_fee_rate" field.
func AdminFeeRateNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldAdminFeeRate, v))
}

// AdminFeeRateIn applies the In predicate on the "admin_fee_rate" field.
func AdminFeeRateIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldAdminFeeRate, vs...))
}

// AdminFeeRateNotIn applies the NotIn predicate on the "admin_fee_rate" field.
func AdminFeeRateNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldAdminFeeRate, vs...))
}

// AdminFeeRateGT applies the GT predicate on the "admin_fee_rate" field.
func AdminFeeRateGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldAdminFeeRate, v))
}

// AdminFeeRateGTE applies the GTE predicate on the "admin_fee_rate" field.
func AdminFeeRateGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldAdminFeeRate, v))
}

// AdminFeeRateLT applies the LT predicate on the "admin_fee_rate" field.
func AdminFeeRateLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldAdminFeeRate, v))
}

// AdminFeeRateLTE applies the LTE predicate on the "admin_fee_rate" field.
func AdminFeeRateLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldAdminFeeRate, v))
}

// AdminFeeRateIsNil applies the IsNil predicate on the "admin_fee_rate" field.
func AdminFeeRateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldAdminFeeRate))
}

// AdminFeeRateNotNil applies the NotNil predicate on the "admin_fee_rate" field.
func AdminFeeRateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldAdminFeeRate))
}

// AdminFeeAmountEQ applies the EQ predicate on the "admin_fee_amount" field.
func AdminFeeAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAdminFeeAmount, v))
}

// AdminFeeAmountNEQ applies the NEQ predicate on the "admin_fee_amount" field.
func AdminFeeAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldAdminFeeAmount, v))
}

// AdminFeeAmountIn applies the In predicate on the "admin_fee_amount" field.
func AdminFeeAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldAdminFeeAmount, vs...))
}

// AdminFeeAmountNotIn applies the NotIn predicate on the "admin_fee_amount" field.
func AdminFeeAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldAdminFeeAmount, vs...))
}

// AdminFeeAmountGT applies the GT predicate on the "admin_fee_amount" field.
func AdminFeeAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldAdminFeeAmount, v))
}

// AdminFeeAmountGTE applies the GTE predicate on the "admin_fee_amount" field.
func AdminFeeAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldAdminFeeAmount, v))
}

// AdminFeeAmountLT applies the LT predicate on the "admin_fee_amount" field.
func AdminFeeAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldAdminFeeAmount, v))
}

// AdminFeeAmountLTE applies the LTE predicate on the "admin_fee_amount" field.
func AdminFeeAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldAdminFeeAmount, v))
}

// AdminFeeAmountIsNil applies the IsNil predicate on the "admin_fee_amount" field.
func AdminFeeAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldAdminFeeAmount))
}

// AdminFeeAmountNotNil applies the NotNil predicate on the "admin_fee_amount" field.
func AdminFeeAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldAdminFeeAmount))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldSubtotal))
}

// TaxRateEQ applies the EQ predicate on the "tax_rate" field.
func TaxRateEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTaxRate, v))
}

// TaxRateNEQ applies the NEQ predicate on the "tax_rate" field.
func TaxRateNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldTaxRate, v))
}

// TaxRateIn applies the In predicate on the "tax_rate" field.
func TaxRateIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldTaxRate, vs...))
}

// TaxRateNotIn applies the NotIn predicate on the "tax_rate" field.
func TaxRateNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldTaxRate, vs...))
}

// TaxRateGT applies the GT predicate on the "tax_rate" field.
func TaxRateGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldTaxRate, v))
}

// TaxRateGTE applies the GTE predicate on the "tax_rate" field.
func TaxRateGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldTaxRate, v))
}

// TaxRateLT applies the LT predicate on the "tax_rate" field.
func TaxRateLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldTaxRate, v))
}

// TaxRateLTE applies the LTE predicate on the "tax_rate" field.
func TaxRateLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldTaxRate, v))
}

// TaxRateIsNil applies the IsNil predicate on the "tax_rate" field.
func TaxRateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldTaxRate))
}

// TaxRateNotNil applies the NotNil predicate on the "tax_rate" field.
func TaxRateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldTaxRate))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldTaxAmount))
}

// PaidOnlinePaymentsEQ applies the EQ predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsNEQ applies the NEQ predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsIn applies the In predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldPaidOnlinePayments, vs...))
}

// PaidOnlinePaymentsNotIn applies the NotIn predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldPaidOnlinePayments, vs...))
}

// PaidOnlinePaymentsGT applies the GT predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsGTE applies the GTE predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsLT applies the LT predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsLTE applies the LTE predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldPaidOnlinePayments, v))
}

// PaidOnlinePaymentsIsNil applies the IsNil predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldPaidOnlinePayments))
}

// PaidOnlinePaymentsNotNil applies the NotNil predicate on the "paid_online_payments" field.
func PaidOnlinePaymentsNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldPaidOnlinePayments))
}

// OutstandingAmountEQ applies the EQ predicate on the "outstanding_amount" field.
func OutstandingAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOutstandingAmount, v))
}

// OutstandingAmountNEQ applies the NEQ predicate on the "outstanding_amount" field.
func OutstandingAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldOutstandingAmount, v))
}

// OutstandingAmountIn applies the In predicate on the "outstanding_amount" field.
func OutstandingAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldOutstandingAmount, vs...))
}

// OutstandingAmountNotIn applies the NotIn predicate on the "outstanding_amount" field.
func OutstandingAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldOutstandingAmount, vs...))
}

// OutstandingAmountGT applies the GT predicate on the "outstanding_amount" field.
func OutstandingAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldOutstandingAmount, v))
}

// OutstandingAmountGTE applies the GTE predicate on the "outstanding_amount" field.
func OutstandingAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldOutstandingAmount, v))
}

// OutstandingAmountLT applies the LT predicate on the "outstanding_amount" field.
func OutstandingAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldOutstandingAmount, v))
}

// OutstandingAmountLTE applies the LTE predicate on the "outstanding_amount" field.
func OutstandingAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldOutstandingAmount, v))
}

// OutstandingAmountIsNil applies the IsNil predicate on the "outstanding_amount" field.
func OutstandingAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldOutstandingAmount))
}

// OutstandingAmountNotNil applies the NotNil predicate on the "outstanding_amount" field.
func OutstandingAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldOutstandingAmount))
}

// OutstandingBalanceEQ applies the EQ predicate on the "outstanding_balance" field.
func OutstandingBalanceEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldOutstandingBalance, v))
}

// OutstandingBalanceNEQ applies the NEQ predicate on the "outstanding_balance" field.
func OutstandingBalanceNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldOutstandingBalance, v))
}

// OutstandingBalanceIn applies the In predicate on the "outstanding_balance" field.
func OutstandingBalanceIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldOutstandingBalance, vs...))
}

// OutstandingBalanceNotIn applies the NotIn predicate on the "outstanding_balance" field.
func OutstandingBalanceNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldOutstandingBalance, vs...))
}

// OutstandingBalanceGT applies the GT predicate on the "outstanding_balance" field.
func OutstandingBalanceGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldOutstandingBalance, v))
}

// OutstandingBalanceGTE applies the GTE predicate on the "outstanding_balance" field.
func OutstandingBalanceGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldOutstandingBalance, v))
}

// OutstandingBalanceLT applies the LT predicate on the "outstanding_balance" field.
func OutstandingBalanceLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldOutstandingBalance, v))
}

// OutstandingBalanceLTE applies the LTE predicate on the "outstanding_balance" field.
func OutstandingBalanceLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldOutstandingBalance, v))
}

// OutstandingBalanceIsNil applies the IsNil predicate on the "outstanding_balance" field.
func OutstandingBalanceIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldOutstandingBalance))
}

// OutstandingBalanceNotNil applies the NotNil predicate on the "outstanding_balance" field.
func OutstandingBalanceNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldOutstandingBalance))
}

// PayoutAmountEQ applies the EQ predicate on the "payout_amount" field.
func PayoutAmountEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldPayoutAmount, v))
}

// PayoutAmountNEQ applies the NEQ predicate on the "payout_amount" field.
func PayoutAmountNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldPayoutAmount, v))
}

// PayoutAmountIn applies the In predicate on the "payout_amount" field.
func PayoutAmountIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldPayoutAmount, vs...))
}

// PayoutAmountNotIn applies the NotIn predicate on the "payout_amount" field.
func PayoutAmountNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldPayoutAmount, vs...))
}

// PayoutAmountGT applies the GT predicate on the "payout_amount" field.
func PayoutAmountGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldPayoutAmount, v))
}

// PayoutAmountGTE applies the GTE predicate on the "payout_amount" field.
func PayoutAmountGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldPayoutAmount, v))
}

// PayoutAmountLT applies the LT predicate on the "payout_amount" field.
func PayoutAmountLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldPayoutAmount, v))
}

// PayoutAmountLTE applies the LTE predicate on the "payout_amount" field.
func PayoutAmountLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldPayoutAmount, v))
}

// PayoutAmountIsNil applies the IsNil predicate on the "payout_amount" field.
func PayoutAmountIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldPayoutAmount))
}

// PayoutAmountNotNil applies the NotNil predicate on the "payout_amount" field.
func PayoutAmountNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldPayoutAmount))
}

// AmountDueEQ applies the EQ predicate on the "amount_due" field.
func AmountDueEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldAmountDue, v))
}

// AmountDueNEQ applies the NEQ predicate on the "amount_due" field.
func AmountDueNEQ(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldAmountDue, v))
}

// AmountDueIn applies the In predicate on the "amount_due" field.
func AmountDueIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldAmountDue, vs...))
}

// AmountDueNotIn applies the NotIn predicate on the "amount_due" field.
func AmountDueNotIn(vs ...float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldAmountDue, vs...))
}

// AmountDueGT applies the GT predicate on the "amount_due" field.
func AmountDueGT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldAmountDue, v))
}

// AmountDueGTE applies the GTE predicate on the "amount_due" field.
func AmountDueGTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldAmountDue, v))
}

// AmountDueLT applies the LT predicate on the "amount_due" field.
func AmountDueLT(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldAmountDue, v))
}

// AmountDueLTE applies the LTE predicate on the "amount_due" field.
func AmountDueLTE(v float64) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldAmountDue, v))
}

// AmountDueIsNil applies the IsNil predicate on the "amount_due" field.
func AmountDueIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldAmountDue))
}

// AmountDueNotNil applies the NotNil predicate on the "amount_due" field.
func AmountDueNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldAmountDue))
}

// ConfirmationPaymentDateEQ applies the EQ predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateNEQ applies the NEQ predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateNEQ(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateIn applies the In predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldConfirmationPaymentDate, vs...))
}

// ConfirmationPaymentDateNotIn applies the NotIn predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateNotIn(vs ...time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldConfirmationPaymentDate, vs...))
}

// ConfirmationPaymentDateGT applies the GT predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateGT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateGTE applies the GTE predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateGTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateLT applies the LT predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateLT(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateLTE applies the LTE predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateLTE(v time.Time) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldConfirmationPaymentDate, v))
}

// ConfirmationPaymentDateIsNil applies the IsNil predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldConfirmationPaymentDate))
}

// ConfirmationPaymentDateNotNil applies the NotNil predicate on the "confirmation_payment_date" field.
func ConfirmationPaymentDateNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldConfirmationPaymentDate))
}

// ConfirmationCodeMessageEQ applies the EQ predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEQ(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageNEQ applies the NEQ predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageNEQ(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNEQ(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageIn applies the In predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIn(FieldConfirmationCodeMessage, vs...))
}

// ConfirmationCodeMessageNotIn applies the NotIn predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageNotIn(vs ...string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotIn(FieldConfirmationCodeMessage, vs...))
}

// ConfirmationCodeMessageGT applies the GT predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageGT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGT(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageGTE applies the GTE predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageGTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldGTE(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageLT applies the LT predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageLT(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLT(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageLTE applies the LTE predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageLTE(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldLTE(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageContains applies the Contains predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageContains(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContains(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageHasPrefix applies the HasPrefix predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageHasPrefix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasPrefix(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageHasSuffix applies the HasSuffix predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageHasSuffix(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldHasSuffix(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageIsNil applies the IsNil predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageIsNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldIsNull(FieldConfirmationCodeMessage))
}

// ConfirmationCodeMessageNotNil applies the NotNil predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageNotNil() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldNotNull(FieldConfirmationCodeMessage))
}

// ConfirmationCodeMessageEqualFold applies the EqualFold predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageEqualFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldEqualFold(FieldConfirmationCodeMessage, v))
}

// ConfirmationCodeMessageContainsFold applies the ContainsFold predicate on the "confirmation_code_message" field.
func ConfirmationCodeMessageContainsFold(v string) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.FieldContainsFold(FieldConfirmationCodeMessage, v))
}

// HasOrderItems applies the HasEdge predicate on the "order_items" edge.
func HasOrderItems() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrderItemsTable, OrderItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderItemsWith applies the HasEdge predicate on the "order_items" edge with a given conditions (other predicates).
func HasOrderItemsWith(preds ...predicate.OrderItem) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(func(s *sql.Selector) {
		step := newOrderItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTipItems applies the HasEdge predicate on the "tip_items" edge.
func HasTipItems() predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TipItemsTable, TipItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTipItemsWith applies the HasEdge predicate on the "tip_items" edge with a given conditions (other predicates).
func HasTipItemsWith(preds ...predicate.TipItem) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(func(s *sql.Selector) {
		step := newTipItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LieferandoInvoice) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LieferandoInvoice) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LieferandoInvoice) predicate.LieferandoInvoice {
	return predicate.LieferandoInvoice(sql.NotPredicates(p))
}
