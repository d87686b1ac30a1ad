// Code generated by ent, DO NOT EDIT.

package ubereatsinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldID, id))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldStatus, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRawText, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// EmailSubject applies equality check predicate on the "email_subject" field. It's identical to EmailSubjectEQ.
func EmailSubject(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSender applies equality check predicate on the "email_sender" field. It's identical to EmailSenderEQ.
func EmailSender(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailDate applies equality check predicate on the "email_date" field. It's identical to EmailDateEQ.
func EmailDate(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaxDate applies equality check predicate on the "tax_date" field. It's identical to TaxDateEQ.
func TaxDate(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTaxDate, v))
}

// CustomerCompany applies equality check predicate on the "customer_company" field. It's identical to CustomerCompanyEQ.
func CustomerCompany(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCustomerCompany, v))
}

// RestaurantName applies equality check predicate on the "restaurant_name" field. It's identical to RestaurantNameEQ.
func RestaurantName(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantAddress applies equality check predicate on the "restaurant_address" field. It's identical to RestaurantAddressEQ.
func RestaurantAddress(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRestaurantAddress, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldBusinessID, v))
}

// CustomerVatID applies equality check predicate on the "customer_vat_id" field. It's identical to CustomerVatIDEQ.
func CustomerVatID(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCustomerVatID, v))
}

// TaxNumber applies equality check predicate on the "tax_number" field. It's identical to TaxNumberEQ.
func TaxNumber(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTaxNumber, v))
}

// TotalOrders applies equality check predicate on the "total_orders" field. It's identical to TotalOrdersEQ.
func TotalOrders(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalOrderValue applies equality check predicate on the "total_order_value" field. It's identical to TotalOrderValueEQ.
func TotalOrderValue(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalOrderValue, v))
}

// GrossRevenueAfterDiscounts applies equality check predicate on the "gross_revenue_after_discounts" field. It's identical to GrossRevenueAfterDiscountsEQ.
func GrossRevenueAfterDiscounts(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldGrossRevenueAfterDiscounts, v))
}

// CommissionOwnDelivery applies equality check predicate on the "commission_own_delivery" field. It's identical to CommissionOwnDeliveryEQ.
func CommissionOwnDelivery(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCommissionOwnDelivery, v))
}

// CommissionPickup applies equality check predicate on the "commission_pickup" field. It's identical to CommissionPickupEQ.
func CommissionPickup(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCommissionPickup, v))
}

// UberEatsFee applies equality check predicate on the "uber_eats_fee" field. It's identical to UberEatsFeeEQ.
func UberEatsFee(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldUberEatsFee, v))
}

// Vat19 applies equality check predicate on the "vat_19" field. It's identical to Vat19EQ.
func Vat19(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldVat19, v))
}

// CashCollected applies equality check predicate on the "cash_collected" field. It's identical to CashCollectedEQ.
func CashCollected(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCashCollected, v))
}

// TotalPayout applies equality check predicate on the "total_payout" field. It's identical to TotalPayoutEQ.
func TotalPayout(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalPayout, v))
}

// NetAmount applies equality check predicate on the "net_amount" field. It's identical to NetAmountEQ.
func NetAmount(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldNetAmount, v))
}

// VatAmount applies equality check predicate on the "vat_amount" field. It's identical to VatAmountEQ.
func VatAmount(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldVatAmount, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldInvoiceDate))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldPeriodEnd))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldSupplierName, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTotalAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldExtractionConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldNeedsReview, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldRawText, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameIsNil applies the IsNil predicate on the "source_filename" field.
func SourceFilenameIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldSourceFilename))
}

// SourceFilenameNotNil applies the NotNil predicate on the "source_filename" field.
func SourceFilenameNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldSourceFilename))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldSourceFilename, v))
}

// EmailSubjectEQ applies the EQ predicate on the "email_subject" field.
func EmailSubjectEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSubjectNEQ applies the NEQ predicate on the "email_subject" field.
func EmailSubjectNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldEmailSubject, v))
}

// EmailSubjectIn applies the In predicate on the "email_subject" field.
func EmailSubjectIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldEmailSubject, vs...))
}

// EmailSubjectNotIn applies the NotIn predicate on the "email_subject" field.
func EmailSubjectNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldEmailSubject, vs...))
}

// EmailSubjectGT applies the GT predicate on the "email_subject" field.
func EmailSubjectGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldEmailSubject, v))
}

// EmailSubjectGTE applies the GTE predicate on the "email_subject" field.
func EmailSubjectGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldEmailSubject, v))
}

// EmailSubjectLT applies the LT predicate on the "email_subject" field.
func EmailSubjectLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldEmailSubject, v))
}

// EmailSubjectLTE applies the LTE predicate on the "email_subject" field.
func EmailSubjectLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldEmailSubject, v))
}

// EmailSubjectContains applies the Contains predicate on the "email_subject" field.
func EmailSubjectContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldEmailSubject, v))
}

// EmailSubjectHasPrefix applies the HasPrefix predicate on the "email_subject" field.
func EmailSubjectHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldEmailSubject, v))
}

// EmailSubjectHasSuffix applies the HasSuffix predicate on the "email_subject" field.
func EmailSubjectHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldEmailSubject, v))
}

// EmailSubjectIsNil applies the IsNil predicate on the "email_subject" field.
func EmailSubjectIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldEmailSubject))
}

// EmailSubjectNotNil applies the NotNil predicate on the "email_subject" field.
func EmailSubjectNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldEmailSubject))
}

// EmailSubjectEqualFold applies the EqualFold predicate on the "email_subject" field.
func EmailSubjectEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldEmailSubject, v))
}

// EmailSubjectContainsFold applies the ContainsFold predicate on the "email_subject" field.
func EmailSubjectContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldEmailSubject, v))
}

// EmailSenderEQ applies the EQ predicate on the "email_sender" field.
func EmailSenderEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailSenderNEQ applies the NEQ predicate on the "email_sender" field.
func EmailSenderNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldEmailSender, v))
}

// EmailSenderIn applies the In predicate on the "email_sender" field.
func EmailSenderIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldEmailSender, vs...))
}

// EmailSenderNotIn applies the NotIn predicate on the "email_sender" field.
func EmailSenderNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldEmailSender, vs...))
}

// EmailSenderGT applies the GT predicate on the "email_sender" field.
func EmailSenderGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldEmailSender, v))
}

// EmailSenderGTE applies the GTE predicate on the "email_sender" field.
func EmailSenderGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldEmailSender, v))
}

// EmailSenderLT applies the LT predicate on the "email_sender" field.
func EmailSenderLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldEmailSender, v))
}

// EmailSenderLTE applies the LTE predicate on the "email_sender" field.
func EmailSenderLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldEmailSender, v))
}

// EmailSenderContains applies the Contains predicate on the "email_sender" field.
func EmailSenderContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldEmailSender, v))
}

// EmailSenderHasPrefix applies the HasPrefix predicate on the "email_sender" field.
func EmailSenderHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldEmailSender, v))
}

// EmailSenderHasSuffix applies the HasSuffix predicate on the "email_sender" field.
func EmailSenderHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldEmailSender, v))
}

// EmailSenderIsNil applies the IsNil predicate on the "email_sender" field.
func EmailSenderIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldEmailSender))
}

// EmailSenderNotNil applies the NotNil predicate on the "email_sender" field.
func EmailSenderNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldEmailSender))
}

// EmailSenderEqualFold applies the EqualFold predicate on the "email_sender" field.
func EmailSenderEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldEmailSender, v))
}

// EmailSenderContainsFold applies the ContainsFold predicate on the "email_sender" field.
func EmailSenderContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldEmailSender, v))
}

// EmailDateEQ applies the EQ predicate on the "email_date" field.
func EmailDateEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// EmailDateNEQ applies the NEQ predicate on the "email_date" field.
func EmailDateNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldEmailDate, v))
}

// EmailDateIn applies the In predicate on the "email_date" field.
func EmailDateIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldEmailDate, vs...))
}

// EmailDateNotIn applies the NotIn predicate on the "email_date" field.
func EmailDateNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldEmailDate, vs...))
}

// EmailDateGT applies the GT predicate on the "email_date" field.
func EmailDateGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldEmailDate, v))
}

// EmailDateGTE applies the GTE predicate on the "email_date" field.
func EmailDateGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldEmailDate, v))
}

// EmailDateLT applies the LT predicate on the "email_date" field.
func EmailDateLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldEmailDate, v))
}

// EmailDateLTE applies the LTE predicate on the "email_date" field.
func EmailDateLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldEmailDate, v))
}

// EmailDateIsNil applies the IsNil predicate on the "email_date" field.
func EmailDateIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldEmailDate))
}

// EmailDateNotNil applies the NotNil predicate on the "email_date" field.
func EmailDateNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldEmailDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// TaxDateEQ applies the EQ predicate on the "tax_date" field.
func TaxDateEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTaxDate, v))
}

// TaxDateNEQ applies the NEQ predicate on the "tax_date" field.
func TaxDateNEQ(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTaxDate, v))
}

// TaxDateIn applies the In predicate on the "tax_date" field.
func TaxDateIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTaxDate, vs...))
}

// TaxDateNotIn applies the NotIn predicate on the "tax_date" field.
func TaxDateNotIn(vs ...time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTaxDate, vs...))
}

// TaxDateGT applies the GT predicate on the "tax_date" field.
func TaxDateGT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTaxDate, v))
}

// TaxDateGTE applies the GTE predicate on the "tax_date" field.
func TaxDateGTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTaxDate, v))
}

// TaxDateLT applies the LT predicate on the "tax_date" field.
func TaxDateLT(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTaxDate, v))
}

// TaxDateLTE applies the LTE predicate on the "tax_date" field.
func TaxDateLTE(v time.Time) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTaxDate, v))
}

// TaxDateIsNil applies the IsNil predicate on the "tax_date" field.
func TaxDateIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTaxDate))
}

// TaxDateNotNil applies the NotNil predicate on the "tax_date" field.
func TaxDateNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTaxDate))
}

// CustomerCompanyEQ applies the EQ predicate on the "customer_company" field.
func CustomerCompanyEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCustomerCompany, v))
}

// CustomerCompanyNEQ applies the NEQ predicate on the "customer_company" field.
func CustomerCompanyNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCustomerCompany, v))
}

// CustomerCompanyIn applies the In predicate on the "customer_company" field.
func CustomerCompanyIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCustomerCompany, vs...))
}

// CustomerCompanyNotIn applies the NotIn predicate on the "customer_company" field.
func CustomerCompanyNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCustomerCompany, vs...))
}

// CustomerCompanyGT applies the GT predicate on the "customer_company" field.
func CustomerCompanyGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCustomerCompany, v))
}

// CustomerCompanyGTE applies the GTE predicate on the "customer_company" field.
func CustomerCompanyGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCustomerCompany, v))
}

// CustomerCompanyLT applies the LT predicate on the "customer_company" field.
func CustomerCompanyLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCustomerCompany, v))
}

// CustomerCompanyLTE applies the LTE predicate on the "customer_company" field.
func CustomerCompanyLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCustomerCompany, v))
}

// CustomerCompanyContains applies the Contains predicate on the "customer_company" field.
func CustomerCompanyContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldCustomerCompany, v))
}

// CustomerCompanyHasPrefix applies the HasPrefix predicate on the "customer_company" field.
func CustomerCompanyHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldCustomerCompany, v))
}

// CustomerCompanyHasSuffix applies the HasSuffix predicate on the "customer_company" field.
func CustomerCompanyHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldCustomerCompany, v))
}

// CustomerCompanyIsNil applies the IsNil predicate on the "customer_company" field.
func CustomerCompanyIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldCustomerCompany))
}

// CustomerCompanyNotNil applies the NotNil predicate on the "customer_company" field.
func CustomerCompanyNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldCustomerCompany))
}

// CustomerCompanyEqualFold applies the EqualFold predicate on the "customer_company" field.
func CustomerCompanyEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldCustomerCompany, v))
}

// CustomerCompanyContainsFold applies the ContainsFold predicate on the "customer_company" field.
func CustomerCompanyContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldCustomerCompany, v))
}

// RestaurantNameEQ applies the EQ predicate on the "restaurant_name" field.
func RestaurantNameEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantNameNEQ applies the NEQ predicate on the "restaurant_name" field.
func RestaurantNameNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldRestaurantName, v))
}

// RestaurantNameIn applies the In predicate on the "restaurant_name" field.
func RestaurantNameIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldRestaurantName, vs...))
}

// RestaurantNameNotIn applies the NotIn predicate on the "restaurant_name" field.
func RestaurantNameNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldRestaurantName, vs...))
}

// RestaurantNameGT applies the GT predicate on the "restaurant_name" field.
func RestaurantNameGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldRestaurantName, v))
}

// RestaurantNameGTE applies the GTE predicate on the "restaurant_name" field.
func RestaurantNameGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldRestaurantName, v))
}

// RestaurantNameLT applies the LT predicate on the "restaurant_name" field.
func RestaurantNameLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldRestaurantName, v))
}

// RestaurantNameLTE applies the LTE predicate on the "restaurant_name" field.
func RestaurantNameLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldRestaurantName, v))
}

// RestaurantNameContains applies the Contains predicate on the "restaurant_name" field.
func RestaurantNameContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldRestaurantName, v))
}

// RestaurantNameHasPrefix applies the HasPrefix predicate on the "restaurant_name" field.
func RestaurantNameHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldRestaurantName, v))
}

// RestaurantNameHasSuffix applies the HasSuffix predicate on the "restaurant_name" field.
func RestaurantNameHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldRestaurantName, v))
}

// RestaurantNameIsNil applies the IsNil predicate on the "restaurant_name" field.
func RestaurantNameIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldRestaurantName))
}

// RestaurantNameNotNil applies the NotNil predicate on the "restaurant_name" field.
func RestaurantNameNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldRestaurantName))
}

// RestaurantNameEqualFold applies the EqualFold predicate on the "restaurant_name" field.
func RestaurantNameEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldRestaurantName, v))
}

// RestaurantNameContainsFold applies the ContainsFold predicate on the "restaurant_name" field.
func RestaurantNameContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldRestaurantName, v))
}

// RestaurantAddressEQ applies the EQ predicate on the "restaurant_address" field.
func RestaurantAddressEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldRestaurantAddress, v))
}

// RestaurantAddressNEQ applies the NEQ predicate on the "restaurant_address" field.
func RestaurantAddressNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldRestaurantAddress, v))
}

// RestaurantAddressIn applies the In predicate on the "restaurant_address" field.
func RestaurantAddressIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldRestaurantAddress, vs...))
}

// RestaurantAddressNotIn applies the NotIn predicate on the "restaurant_address" field.
func RestaurantAddressNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldRestaurantAddress, vs...))
}

// RestaurantAddressGT applies the GT predicate on the "restaurant_address" field.
func RestaurantAddressGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldRestaurantAddress, v))
}

// RestaurantAddressGTE applies the GTE predicate on the "restaurant_address" field.
func RestaurantAddressGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldRestaurantAddress, v))
}

// RestaurantAddressLT applies the LT predicate on the "restaurant_address" field.
func RestaurantAddressLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldRestaurantAddress, v))
}

// RestaurantAddressLTE applies the LTE predicate on the "restaurant_address" field.
func RestaurantAddressLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldRestaurantAddress, v))
}

// RestaurantAddressContains applies the Contains predicate on the "restaurant_address" field.
func RestaurantAddressContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldRestaurantAddress, v))
}

// RestaurantAddressHasPrefix applies the HasPrefix predicate on the "restaurant_address" field.
func RestaurantAddressHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldRestaurantAddress, v))
}

// RestaurantAddressHasSuffix applies the HasSuffix predicate on the "restaurant_address" field.
func RestaurantAddressHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldRestaurantAddress, v))
}

// RestaurantAddressIsNil applies the IsNil predicate on the "restaurant_address" field.
func RestaurantAddressIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldRestaurantAddress))
}

// RestaurantAddressNotNil applies the NotNil predicate on the "restaurant_address" field.
func RestaurantAddressNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldRestaurantAddress))
}

// RestaurantAddressEqualFold applies the EqualFold predicate on the "restaurant_address" field.
func RestaurantAddressEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldRestaurantAddress, v))
}

// RestaurantAddressContainsFold applies the ContainsFold predicate on the "restaurant_address" field.
func RestaurantAddressContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldRestaurantAddress, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDIsNil applies the IsNil predicate on the "business_id" field.
func BusinessIDIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldBusinessID))
}

// BusinessIDNotNil applies the NotNil predicate on the "business_id" field.
func BusinessIDNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldBusinessID))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldBusinessID, v))
}

// CustomerVatIDEQ applies the EQ predicate on the "customer_vat_id" field.
func CustomerVatIDEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCustomerVatID, v))
}

// CustomerVatIDNEQ applies the NEQ predicate on the "customer_vat_id" field.
func CustomerVatIDNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCustomerVatID, v))
}

// CustomerVatIDIn applies the In predicate on the "customer_vat_id" field.
func CustomerVatIDIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCustomerVatID, vs...))
}

// CustomerVatIDNotIn applies the NotIn predicate on the "customer_vat_id" field.
func CustomerVatIDNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCustomerVatID, vs...))
}

// CustomerVatIDGT applies the GT predicate on the "customer_vat_id" field.
func CustomerVatIDGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCustomerVatID, v))
}

// CustomerVatIDGTE applies the GTE predicate on the "customer_vat_id" field.
func CustomerVatIDGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCustomerVatID, v))
}

// CustomerVatIDLT applies the LT predicate on the "customer_vat_id" field.
func CustomerVatIDLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCustomerVatID, v))
}

// CustomerVatIDLTE applies the LTE predicate on the "customer_vat_id" field.
func CustomerVatIDLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCustomerVatID, v))
}

// CustomerVatIDContains applies the Contains predicate on the "customer_vat_id" field.
func CustomerVatIDContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldCustomerVatID, v))
}

// CustomerVatIDHasPrefix applies the HasPrefix predicate on the "customer_vat_id" field.
func CustomerVatIDHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldCustomerVatID, v))
}

// CustomerVatIDHasSuffix applies the HasSuffix predicate on the "customer_vat_id" field.
func CustomerVatIDHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldCustomerVatID, v))
}

// CustomerVatIDIsNil applies the IsNil predicate on the "customer_vat_id" field.
func CustomerVatIDIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldCustomerVatID))
}

// CustomerVatIDNotNil applies the NotNil predicate on the "customer_vat_id" field.
func CustomerVatIDNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldCustomerVatID))
}

// CustomerVatIDEqualFold applies the EqualFold predicate on the "customer_vat_id" field.
func CustomerVatIDEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldCustomerVatID, v))
}

// CustomerVatIDContainsFold applies the ContainsFold predicate on the "customer_vat_id" field.
func CustomerVatIDContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldCustomerVatID, v))
}

// TaxNumberEQ applies the EQ predicate on the "tax_number" field.
func TaxNumberEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTaxNumber, v))
}

// TaxNumberNEQ applies the NEQ predicate on the "tax_number" field.
func TaxNumberNEQ(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTaxNumber, v))
}

// TaxNumberIn applies the In predicate on the "tax_number" field.
func TaxNumberIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTaxNumber, vs...))
}

// TaxNumberNotIn applies the NotIn predicate on the "tax_number" field.
func TaxNumberNotIn(vs ...string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTaxNumber, vs...))
}

// TaxNumberGT applies the GT predicate on the "tax_number" field.
func TaxNumberGT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTaxNumber, v))
}

// TaxNumberGTE applies the GTE predicate on the "tax_number" field.
func TaxNumberGTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTaxNumber, v))
}

// TaxNumberLT applies the LT predicate on the "tax_number" field.
func TaxNumberLT(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTaxNumber, v))
}

// TaxNumberLTE applies the LTE predicate on the "tax_number" field.
func TaxNumberLTE(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTaxNumber, v))
}

// TaxNumberContains applies the Contains predicate on the "tax_number" field.
func TaxNumberContains(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContains(FieldTaxNumber, v))
}

// TaxNumberHasPrefix applies the HasPrefix predicate on the "tax_number" field.
func TaxNumberHasPrefix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasPrefix(FieldTaxNumber, v))
}

// TaxNumberHasSuffix applies the HasSuffix predicate on the "tax_number" field.
func TaxNumberHasSuffix(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldHasSuffix(FieldTaxNumber, v))
}

// TaxNumberIsNil applies the IsNil predicate on the "tax_number" field.
func TaxNumberIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTaxNumber))
}

// TaxNumberNotNil applies the NotNil predicate on the "tax_number" field.
func TaxNumberNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTaxNumber))
}

// TaxNumberEqualFold applies the EqualFold predicate on the "tax_number" field.
func TaxNumberEqualFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEqualFold(FieldTaxNumber, v))
}

// TaxNumberContainsFold applies the ContainsFold predicate on the "tax_number" field.
func TaxNumberContainsFold(v string) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldContainsFold(FieldTaxNumber, v))
}

// TotalOrdersEQ applies the EQ predicate on the "total_orders" field.
func TotalOrdersEQ(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalOrdersNEQ applies the NEQ predicate on the "total_orders" field.
func TotalOrdersNEQ(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTotalOrders, v))
}

// TotalOrdersIn applies the In predicate on the "total_orders" field.
func TotalOrdersIn(vs ...int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTotalOrders, vs...))
}

// TotalOrdersNotIn applies the NotIn predicate on the "total_orders" field.
func TotalOrdersNotIn(vs ...int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTotalOrders, vs...))
}

// TotalOrdersGT applies the GT predicate on the "total_orders" field.
func TotalOrdersGT(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTotalOrders, v))
}

// TotalOrdersGTE applies the GTE predicate on the "total_orders" field.
func TotalOrdersGTE(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTotalOrders, v))
}

// TotalOrdersLT applies the LT predicate on the "total_orders" field.
func TotalOrdersLT(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTotalOrders, v))
}

// TotalOrdersLTE applies the LTE predicate on the "total_orders" field.
func TotalOrdersLTE(v int) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTotalOrders, v))
}

// TotalOrdersIsNil applies the IsNil predicate on the "total_orders" field.
func TotalOrdersIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTotalOrders))
}

// TotalOrdersNotNil applies the NotNil predicate on the "total_orders" field.
func TotalOrdersNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTotalOrders))
}

// TotalOrderValueEQ applies the EQ predicate on the "total_order_value" field.
func TotalOrderValueEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalOrderValue, v))
}

// TotalOrderValueNEQ applies the NEQ predicate on the "total_order_value" field.
func TotalOrderValueNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTotalOrderValue, v))
}

// TotalOrderValueIn applies the In predicate on the "total_order_value" field.
func TotalOrderValueIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTotalOrderValue, vs...))
}

// TotalOrderValueNotIn applies the NotIn predicate on the "total_order_value" field.
func TotalOrderValueNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTotalOrderValue, vs...))
}

// TotalOrderValueGT applies the GT predicate on the "total_order_value" field.
func TotalOrderValueGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTotalOrderValue, v))
}

// TotalOrderValueGTE applies the GTE predicate on the "total_order_value" field.
func TotalOrderValueGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTotalOrderValue, v))
}

// TotalOrderValueLT applies the LT predicate on the "total_order_value" field.
func TotalOrderValueLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTotalOrderValue, v))
}

// TotalOrderValueLTE applies the LTE predicate on the "total_order_value" field.
func TotalOrderValueLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTotalOrderValue, v))
}

// TotalOrderValueIsNil applies the IsNil predicate on the "total_order_value" field.
func TotalOrderValueIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTotalOrderValue))
}

// TotalOrderValueNotNil applies the NotNil predicate on the "total_order_value" field.
func TotalOrderValueNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTotalOrderValue))
}

// GrossRevenueAfterDiscountsEQ applies the EQ predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsNEQ applies the NEQ predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsIn applies the In predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldGrossRevenueAfterDiscounts, vs...))
}

// GrossRevenueAfterDiscountsNotIn applies the NotIn predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldGrossRevenueAfterDiscounts, vs...))
}

// GrossRevenueAfterDiscountsGT applies the GT predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsGTE applies the GTE predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsLT applies the LT predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsLTE applies the LTE predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldGrossRevenueAfterDiscounts, v))
}

// GrossRevenueAfterDiscountsIsNil applies the IsNil predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldGrossRevenueAfterDiscounts))
}

// GrossRevenueAfterDiscountsNotNil applies the NotNil predicate on the "gross_revenue_after_discounts" field.
func GrossRevenueAfterDiscountsNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldGrossRevenueAfterDiscounts))
}

// CommissionOwnDeliveryEQ applies the EQ predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryNEQ applies the NEQ predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryIn applies the In predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCommissionOwnDelivery, vs...))
}

// CommissionOwnDeliveryNotIn applies the NotIn predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCommissionOwnDelivery, vs...))
}

// CommissionOwnDeliveryGT applies the GT predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryGTE applies the GTE predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryLT applies the LT predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryLTE applies the LTE predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCommissionOwnDelivery, v))
}

// CommissionOwnDeliveryIsNil applies the IsNil predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldCommissionOwnDelivery))
}

// CommissionOwnDeliveryNotNil applies the NotNil predicate on the "commission_own_delivery" field.
func CommissionOwnDeliveryNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldCommissionOwnDelivery))
}

// CommissionPickupEQ applies the EQ predicate on the "commission_pickup" field.
func CommissionPickupEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCommissionPickup, v))
}

// CommissionPickupNEQ applies the NEQ predicate on the "commission_pickup" field.
func CommissionPickupNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCommissionPickup, v))
}

// CommissionPickupIn applies the In predicate on the "commission_pickup" field.
func CommissionPickupIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCommissionPickup, vs...))
}

// CommissionPickupNotIn applies the NotIn predicate on the "commission_pickup" field.
func CommissionPickupNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCommissionPickup, vs...))
}

// CommissionPickupGT applies the GT predicate on the "commission_pickup" field.
func CommissionPickupGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCommissionPickup, v))
}

// CommissionPickupGTE applies the GTE predicate on the "commission_pickup" field.
func CommissionPickupGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCommissionPickup, v))
}

// CommissionPickupLT applies the LT predicate on the "commission_pickup" field.
func CommissionPickupLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCommissionPickup, v))
}

// CommissionPickupLTE applies the LTE predicate on the "commission_pickup" field.
func CommissionPickupLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCommissionPickup, v))
}

// CommissionPickupIsNil applies the IsNil predicate on the "commission_pickup" field.
func CommissionPickupIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldCommissionPickup))
}

// CommissionPickupNotNil applies the NotNil predicate on the "commission_pickup" field.
func CommissionPickupNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldCommissionPickup))
}

// UberEatsFeeEQ applies the EQ predicate on the "uber_eats_fee" field.
func UberEatsFeeEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldUberEatsFee, v))
}

// UberEatsFeeNEQ applies the NEQ predicate on the "uber_eats_fee" field.
func UberEatsFeeNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldUberEatsFee, v))
}

// UberEatsFeeIn applies the In predicate on the "uber_eats_fee" field.
func UberEatsFeeIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldUberEatsFee, vs...))
}

// UberEatsFeeNotIn applies the NotIn predicate on the "uber_eats_fee" field.
func UberEatsFeeNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldUberEatsFee, vs...))
}

// UberEatsFeeGT applies the GT predicate on the "uber_eats_fee" field.
func UberEatsFeeGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldUberEatsFee, v))
}

// UberEatsFeeGTE applies the GTE predicate on the "uber_eats_fee" field.
func UberEatsFeeGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldUberEatsFee, v))
}

// UberEatsFeeLT applies the LT predicate on the "uber_eats_fee" field.
func UberEatsFeeLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldUberEatsFee, v))
}

// UberEatsFeeLTE applies the LTE predicate on the "uber_eats_fee" field.
func UberEatsFeeLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldUberEatsFee, v))
}

// UberEatsFeeIsNil applies the IsNil predicate on the "uber_eats_fee" field.
func UberEatsFeeIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldUberEatsFee))
}

// UberEatsFeeNotNil applies the NotNil predicate on the "uber_eats_fee" field.
func UberEatsFeeNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldUberEatsFee))
}

// Vat19EQ applies the EQ predicate on the "vat_19" field.
func Vat19EQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldVat19, v))
}

// Vat19NEQ applies the NEQ predicate on the "vat_19" field.
func Vat19NEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldVat19, v))
}

// Vat19In applies the In predicate on the "vat_19" field.
func Vat19In(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldVat19, vs...))
}

// Vat19NotIn applies the NotIn predicate on the "vat_19" field.
func Vat19NotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldVat19, vs...))
}

// Vat19GT applies the GT predicate on the "vat_19" field.
func Vat19GT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldVat19, v))
}

// Vat19GTE applies the GTE predicate on the "vat_19" field.
func Vat19GTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldVat19, v))
}

// Vat19LT applies the LT predicate on the "vat_19" field.
func Vat19LT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldVat19, v))
}

// Vat19LTE applies the LTE predicate on the "vat_19" field.
func Vat19LTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldVat19, v))
}

// Vat19IsNil applies the IsNil predicate on the "vat_19" field.
func Vat19IsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldVat19))
}

// Vat19NotNil applies the NotNil predicate on the "vat_19" field.
func Vat19NotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldVat19))
}

// CashCollectedEQ applies the EQ predicate on the "cash_collected" field.
func CashCollectedEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldCashCollected, v))
}

// CashCollectedNEQ applies the NEQ predicate on the "cash_collected" field.
func CashCollectedNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldCashCollected, v))
}

// CashCollectedIn applies the In predicate on the "cash_collected" field.
func CashCollectedIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldCashCollected, vs...))
}

// CashCollectedNotIn applies the NotIn predicate on the "cash_collected" field.
func CashCollectedNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldCashCollected, vs...))
}

// CashCollectedGT applies the GT predicate on the "cash_collected" field.
func CashCollectedGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldCashCollected, v))
}

// CashCollectedGTE applies the GTE predicate on the "cash_collected" field.
func CashCollectedGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldCashCollected, v))
}

// CashCollectedLT applies the LT predicate on the "cash_collected" field.
func CashCollectedLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldCashCollected, v))
}

// CashCollectedLTE applies the LTE predicate on the "cash_collected" field.
func CashCollectedLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldCashCollected, v))
}

// CashCollectedIsNil applies the IsNil predicate on the "cash_collected" field.
func CashCollectedIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldCashCollected))
}

// CashCollectedNotNil applies the NotNil predicate on the "cash_collected" field.
func CashCollectedNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldCashCollected))
}

// TotalPayoutEQ applies the EQ predicate on the "total_payout" field.
func TotalPayoutEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldTotalPayout, v))
}

// TotalPayoutNEQ applies the NEQ predicate on the "total_payout" field.
func TotalPayoutNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldTotalPayout, v))
}

// TotalPayoutIn applies the In predicate on the "total_payout" field.
func TotalPayoutIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldTotalPayout, vs...))
}

// TotalPayoutNotIn applies the NotIn predicate on the "total_payout" field.
func TotalPayoutNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldTotalPayout, vs...))
}

// TotalPayoutGT applies the GT predicate on the "total_payout" field.
func TotalPayoutGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldTotalPayout, v))
}

// TotalPayoutGTE applies the GTE predicate on the "total_payout" field.
func TotalPayoutGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldTotalPayout, v))
}

// TotalPayoutLT applies the LT predicate on the "total_payout" field.
func TotalPayoutLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldTotalPayout, v))
}

// TotalPayoutLTE applies the LTE predicate on the "total_payout" field.
func TotalPayoutLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldTotalPayout, v))
}

// TotalPayoutIsNil applies the IsNil predicate on the "total_payout" field.
func TotalPayoutIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldTotalPayout))
}

// TotalPayoutNotNil applies the NotNil predicate on the "total_payout" field.
func TotalPayoutNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldTotalPayout))
}

// NetAmountEQ applies the EQ predicate on the "net_amount" field.
func NetAmountEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldNetAmount, v))
}

// NetAmountNEQ applies the NEQ predicate on the "net_amount" field.
func NetAmountNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldNetAmount, v))
}

// NetAmountIn applies the In predicate on the "net_amount" field.
func NetAmountIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldNetAmount, vs...))
}

// NetAmountNotIn applies the NotIn predicate on the "net_amount" field.
func NetAmountNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldNetAmount, vs...))
}

// NetAmountGT applies the GT predicate on the "net_amount" field.
func NetAmountGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldNetAmount, v))
}

// NetAmountGTE applies the GTE predicate on the "net_amount" field.
func NetAmountGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldNetAmount, v))
}

// NetAmountLT applies the LT predicate on the "net_amount" field.
func NetAmountLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldNetAmount, v))
}

// NetAmountLTE applies the LTE predicate on the "net_amount" field.
func NetAmountLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldNetAmount, v))
}

// NetAmountIsNil applies the IsNil predicate on the "net_amount" field.
func NetAmountIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldNetAmount))
}

// NetAmountNotNil applies the NotNil predicate on the "net_amount" field.
func NetAmountNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldNetAmount))
}

// VatAmountEQ applies the EQ predicate on the "vat_amount" field.
func VatAmountEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldEQ(FieldVatAmount, v))
}

// VatAmountNEQ applies the NEQ predicate on the "vat_amount" field.
func VatAmountNEQ(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNEQ(FieldVatAmount, v))
}

// VatAmountIn applies the In predicate on the "vat_amount" field.
func VatAmountIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIn(FieldVatAmount, vs...))
}

// VatAmountNotIn applies the NotIn predicate on the "vat_amount" field.
func VatAmountNotIn(vs ...float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotIn(FieldVatAmount, vs...))
}

// VatAmountGT applies the GT predicate on the "vat_amount" field.
func VatAmountGT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGT(FieldVatAmount, v))
}

// VatAmountGTE applies the GTE predicate on the "vat_amount" field.
func VatAmountGTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldGTE(FieldVatAmount, v))
}

// VatAmountLT applies the LT predicate on the "vat_amount" field.
func VatAmountLT(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLT(FieldVatAmount, v))
}

// VatAmountLTE applies the LTE predicate on the "vat_amount" field.
func VatAmountLTE(v float64) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldLTE(FieldVatAmount, v))
}

// VatAmountIsNil applies the IsNil predicate on the "vat_amount" field.
func VatAmountIsNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldIsNull(FieldVatAmount))
}

// VatAmountNotNil applies the NotNil predicate on the "vat_amount" field.
func VatAmountNotNil() predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.FieldNotNull(FieldVatAmount))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UberEatsInvoice) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UberEatsInvoice) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UberEatsInvoice) predicate.UberEatsInvoice {
	return predicate.UberEatsInvoice(sql.NotPredicates(p))
}
