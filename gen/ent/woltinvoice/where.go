// Code generated by ent, DO NOT EDIT.

package woltinvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldID, id))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldStatus, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldRawText, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// EmailSubject applies equality check predicate on the "email_subject" field. It's identical to EmailSubjectEQ.
func EmailSubject(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSender applies equality check predicate on the "email_sender" field. It's identical to EmailSenderEQ.
func EmailSender(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailDate applies equality check predicate on the "email_date" field. It's identical to EmailDateEQ.
func EmailDate(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// SupplierAddress applies equality check predicate on the "supplier_address" field. It's identical to SupplierAddressEQ.
func SupplierAddress(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierAddress, v))
}

// SupplierVatID applies equality check predicate on the "supplier_vat_id" field. It's identical to SupplierVatIDEQ.
func SupplierVatID(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierVatID, v))
}

// RestaurantName applies equality check predicate on the "restaurant_name" field. It's identical to RestaurantNameEQ.
func RestaurantName(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldBusinessID, v))
}

// GoodsNet7 applies equality check predicate on the "goods_net_7" field. It's identical to GoodsNet7EQ.
func GoodsNet7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNet7, v))
}

// GoodsVat7 applies equality check predicate on the "goods_vat_7" field. It's identical to GoodsVat7EQ.
func GoodsVat7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVat7, v))
}

// GoodsGross7 applies equality check predicate on the "goods_gross_7" field. It's identical to GoodsGross7EQ.
func GoodsGross7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGross7, v))
}

// GoodsNet19 applies equality check predicate on the "goods_net_19" field. It's identical to GoodsNet19EQ.
func GoodsNet19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNet19, v))
}

// GoodsVat19 applies equality check predicate on the "goods_vat_19" field. It's identical to GoodsVat19EQ.
func GoodsVat19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVat19, v))
}

// GoodsGross19 applies equality check predicate on the "goods_gross_19" field. It's identical to GoodsGross19EQ.
func GoodsGross19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGross19, v))
}

// GoodsNetTotal applies equality check predicate on the "goods_net_total" field. It's identical to GoodsNetTotalEQ.
func GoodsNetTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNetTotal, v))
}

// GoodsVatTotal applies equality check predicate on the "goods_vat_total" field. It's identical to GoodsVatTotalEQ.
func GoodsVatTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVatTotal, v))
}

// GoodsGrossTotal applies equality check predicate on the "goods_gross_total" field. It's identical to GoodsGrossTotalEQ.
func GoodsGrossTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGrossTotal, v))
}

// DistributionNetTotal applies equality check predicate on the "distribution_net_total" field. It's identical to DistributionNetTotalEQ.
func DistributionNetTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionNetTotal, v))
}

// DistributionVatTotal applies equality check predicate on the "distribution_vat_total" field. It's identical to DistributionVatTotalEQ.
func DistributionVatTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionVatTotal, v))
}

// DistributionGrossTotal applies equality check predicate on the "distribution_gross_total" field. It's identical to DistributionGrossTotalEQ.
func DistributionGrossTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionGrossTotal, v))
}

// NetpriceNet7 applies equality check predicate on the "netprice_net_7" field. It's identical to NetpriceNet7EQ.
func NetpriceNet7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNet7, v))
}

// NetpriceVat7 applies equality check predicate on the "netprice_vat_7" field. It's identical to NetpriceVat7EQ.
func NetpriceVat7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVat7, v))
}

// NetpriceGross7 applies equality check predicate on the "netprice_gross_7" field. It's identical to NetpriceGross7EQ.
func NetpriceGross7(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGross7, v))
}

// NetpriceNet19 applies equality check predicate on the "netprice_net_19" field. It's identical to NetpriceNet19EQ.
func NetpriceNet19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNet19, v))
}

// NetpriceVat19 applies equality check predicate on the "netprice_vat_19" field. It's identical to NetpriceVat19EQ.
func NetpriceVat19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVat19, v))
}

// NetpriceGross19 applies equality check predicate on the "netprice_gross_19" field. It's identical to NetpriceGross19EQ.
func NetpriceGross19(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGross19, v))
}

// NetpriceNetTotal applies equality check predicate on the "netprice_net_total" field. It's identical to NetpriceNetTotalEQ.
func NetpriceNetTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNetTotal, v))
}

// NetpriceVatTotal applies equality check predicate on the "netprice_vat_total" field. It's identical to NetpriceVatTotalEQ.
func NetpriceVatTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVatTotal, v))
}

// NetpriceGrossTotal applies equality check predicate on the "netprice_gross_total" field. It's identical to NetpriceGrossTotalEQ.
func NetpriceGrossTotal(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGrossTotal, v))
}

// EndAmountNet applies equality check predicate on the "end_amount_net" field. It's identical to EndAmountNetEQ.
func EndAmountNet(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountNet, v))
}

// EndAmountVat applies equality check predicate on the "end_amount_vat" field. It's identical to EndAmountVatEQ.
func EndAmountVat(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountVat, v))
}

// EndAmountGross applies equality check predicate on the "end_amount_gross" field. It's identical to EndAmountGrossEQ.
func EndAmountGross(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountGross, v))
}

// NettingMerchantInvoice applies equality check predicate on the "netting_merchant_invoice" field. It's identical to NettingMerchantInvoiceEQ.
func NettingMerchantInvoice(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantInvoice, v))
}

// NettingMerchantNet applies equality check predicate on the "netting_merchant_net" field. It's identical to NettingMerchantNetEQ.
func NettingMerchantNet(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantNet, v))
}

// NettingMerchantVat applies equality check predicate on the "netting_merchant_vat" field. It's identical to NettingMerchantVatEQ.
func NettingMerchantVat(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantVat, v))
}

// NettingMerchantGross applies equality check predicate on the "netting_merchant_gross" field. It's identical to NettingMerchantGrossEQ.
func NettingMerchantGross(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantGross, v))
}

// NettingWoltInvoice applies equality check predicate on the "netting_wolt_invoice" field. It's identical to NettingWoltInvoiceEQ.
func NettingWoltInvoice(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltInvoice, v))
}

// NettingWoltNet applies equality check predicate on the "netting_wolt_net" field. It's identical to NettingWoltNetEQ.
func NettingWoltNet(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltNet, v))
}

// NettingWoltVat applies equality check predicate on the "netting_wolt_vat" field. It's identical to NettingWoltVatEQ.
func NettingWoltVat(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltVat, v))
}

// NettingWoltGross applies equality check predicate on the "netting_wolt_gross" field. It's identical to NettingWoltGrossEQ.
func NettingWoltGross(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltGross, v))
}

// NettingNetPayout applies equality check predicate on the "netting_net_payout" field. It's identical to NettingNetPayoutEQ.
func NettingNetPayout(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingNetPayout, v))
}

// NettingRawText applies equality check predicate on the "netting_raw_text" field. It's identical to NettingRawTextEQ.
func NettingRawText(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingRawText, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldInvoiceDate))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldPeriodEnd))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldSupplierName, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldTotalAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v int) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldExtractionConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNeedsReview, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldRawText, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameIsNil applies the IsNil predicate on the "source_filename" field.
func SourceFilenameIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldSourceFilename))
}

// SourceFilenameNotNil applies the NotNil predicate on the "source_filename" field.
func SourceFilenameNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldSourceFilename))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldSourceFilename, v))
}

// EmailSubjectEQ applies the EQ predicate on the "email_subject" field.
func EmailSubjectEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSubjectNEQ applies the NEQ predicate on the "email_subject" field.
func EmailSubjectNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEmailSubject, v))
}

// EmailSubjectIn applies the In predicate on the "email_subject" field.
func EmailSubjectIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEmailSubject, vs...))
}

// EmailSubjectNotIn applies the NotIn predicate on the "email_subject" field.
func EmailSubjectNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEmailSubject, vs...))
}

// EmailSubjectGT applies the GT predicate on the "email_subject" field.
func EmailSubjectGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEmailSubject, v))
}

// EmailSubjectGTE applies the GTE predicate on the "email_subject" field.
func EmailSubjectGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEmailSubject, v))
}

// EmailSubjectLT applies the LT predicate on the "email_subject" field.
func EmailSubjectLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEmailSubject, v))
}

// EmailSubjectLTE applies the LTE predicate on the "email_subject" field.
func EmailSubjectLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEmailSubject, v))
}

// EmailSubjectContains applies the Contains predicate on the "email_subject" field.
func EmailSubjectContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldEmailSubject, v))
}

// EmailSubjectHasPrefix applies the HasPrefix predicate on the "email_subject" field.
func EmailSubjectHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldEmailSubject, v))
}

// EmailSubjectHasSuffix applies the HasSuffix predicate on the "email_subject" field.
func EmailSubjectHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldEmailSubject, v))
}

// EmailSubjectIsNil applies the IsNil predicate on the "email_subject" field.
func EmailSubjectIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEmailSubject))
}

// EmailSubjectNotNil applies the NotNil predicate on the "email_subject" field.
func EmailSubjectNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEmailSubject))
}

// EmailSubjectEqualFold applies the EqualFold predicate on the "email_subject" field.
func EmailSubjectEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldEmailSubject, v))
}

// EmailSubjectContainsFold applies the ContainsFold predicate on the "email_subject" field.
func EmailSubjectContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldEmailSubject, v))
}

// EmailSenderEQ applies the EQ predicate on the "email_sender" field.
func EmailSenderEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailSender, v))
}

// EmailSenderNEQ applies the NEQ predicate on the "email_sender" field.
func EmailSenderNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEmailSender, v))
}

// EmailSenderIn applies the In predicate on the "email_sender" field.
func EmailSenderIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEmailSender, vs...))
}

// EmailSenderNotIn applies the NotIn predicate on the "email_sender" field.
func EmailSenderNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEmailSender, vs...))
}

// EmailSenderGT applies the GT predicate on the "email_sender" field.
func EmailSenderGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEmailSender, v))
}

// EmailSenderGTE applies the GTE predicate on the "email_sender" field.
func EmailSenderGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEmailSender, v))
}

// EmailSenderLT applies the LT predicate on the "email_sender" field.
func EmailSenderLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEmailSender, v))
}

// EmailSenderLTE applies the LTE predicate on the "email_sender" field.
func EmailSenderLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEmailSender, v))
}

// EmailSenderContains applies the Contains predicate on the "email_sender" field.
func EmailSenderContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldEmailSender, v))
}

// EmailSenderHasPrefix applies the HasPrefix predicate on the "email_sender" field.
func EmailSenderHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldEmailSender, v))
}

// EmailSenderHasSuffix applies the HasSuffix predicate on the "email_sender" field.
func EmailSenderHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldEmailSender, v))
}

// EmailSenderIsNil applies the IsNil predicate on the "email_sender" field.
func EmailSenderIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEmailSender))
}

// EmailSenderNotNil applies the NotNil predicate on the "email_sender" field.
func EmailSenderNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEmailSender))
}

// EmailSenderEqualFold applies the EqualFold predicate on the "email_sender" field.
func EmailSenderEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldEmailSender, v))
}

// EmailSenderContainsFold applies the ContainsFold predicate on the "email_sender" field.
func EmailSenderContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldEmailSender, v))
}

// EmailDateEQ applies the EQ predicate on the "email_date" field.
func EmailDateEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEmailDate, v))
}

// EmailDateNEQ applies the NEQ predicate on the "email_date" field.
func EmailDateNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEmailDate, v))
}

// EmailDateIn applies the In predicate on the "email_date" field.
func EmailDateIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEmailDate, vs...))
}

// EmailDateNotIn applies the NotIn predicate on the "email_date" field.
func EmailDateNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEmailDate, vs...))
}

// EmailDateGT applies the GT predicate on the "email_date" field.
func EmailDateGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEmailDate, v))
}

// EmailDateGTE applies the GTE predicate on the "email_date" field.
func EmailDateGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEmailDate, v))
}

// EmailDateLT applies the LT predicate on the "email_date" field.
func EmailDateLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEmailDate, v))
}

// EmailDateLTE applies the LTE predicate on the "email_date" field.
func EmailDateLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEmailDate, v))
}

// EmailDateIsNil applies the IsNil predicate on the "email_date" field.
func EmailDateIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEmailDate))
}

// EmailDateNotNil applies the NotNil predicate on the "email_date" field.
func EmailDateNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEmailDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// SupplierAddressEQ applies the EQ predicate on the "supplier_address" field.
func SupplierAddressEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierAddress, v))
}

// SupplierAddressNEQ applies the NEQ predicate on the "supplier_address" field.
func SupplierAddressNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldSupplierAddress, v))
}

// SupplierAddressIn applies the In predicate on the "supplier_address" field.
func SupplierAddressIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldSupplierAddress, vs...))
}

// SupplierAddressNotIn applies the NotIn predicate on the "supplier_address" field.
func SupplierAddressNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldSupplierAddress, vs...))
}

// SupplierAddressGT applies the GT predicate on the "supplier_address" field.
func SupplierAddressGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldSupplierAddress, v))
}

// SupplierAddressGTE applies the GTE predicate on the "supplier_address" field.
func SupplierAddressGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldSupplierAddress, v))
}

// SupplierAddressLT applies the LT predicate on the "supplier_address" field.
func SupplierAddressLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldSupplierAddress, v))
}

// SupplierAddressLTE applies the LTE predicate on the "supplier_address" field.
func SupplierAddressLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldSupplierAddress, v))
}

// SupplierAddressContains applies the Contains predicate on the "supplier_address" field.
func SupplierAddressContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldSupplierAddress, v))
}

// SupplierAddressHasPrefix applies the HasPrefix predicate on the "supplier_address" field.
func SupplierAddressHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldSupplierAddress, v))
}

// SupplierAddressHasSuffix applies the HasSuffix predicate on the "supplier_address" field.
func SupplierAddressHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldSupplierAddress, v))
}

// SupplierAddressIsNil applies the IsNil predicate on the "supplier_address" field.
func SupplierAddressIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldSupplierAddress))
}

// SupplierAddressNotNil applies the NotNil predicate on the "supplier_address" field.
func SupplierAddressNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldSupplierAddress))
}

// SupplierAddressEqualFold applies the EqualFold predicate on the "supplier_address" field.
func SupplierAddressEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldSupplierAddress, v))
}

// SupplierAddressContainsFold applies the ContainsFold predicate on the "supplier_address" field.
func SupplierAddressContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldSupplierAddress, v))
}

// SupplierVatIDEQ applies the EQ predicate on the "supplier_vat_id" field.
func SupplierVatIDEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldSupplierVatID, v))
}

// SupplierVatIDNEQ applies the NEQ predicate on the "supplier_vat_id" field.
func SupplierVatIDNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldSupplierVatID, v))
}

// SupplierVatIDIn applies the In predicate on the "supplier_vat_id" field.
func SupplierVatIDIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldSupplierVatID, vs...))
}

// SupplierVatIDNotIn applies the NotIn predicate on the "supplier_vat_id" field.
func SupplierVatIDNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldSupplierVatID, vs...))
}

// SupplierVatIDGT applies the GT predicate on the "supplier_vat_id" field.
func SupplierVatIDGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldSupplierVatID, v))
}

// SupplierVatIDGTE applies the GTE predicate on the "supplier_vat_id" field.
func SupplierVatIDGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldSupplierVatID, v))
}

// SupplierVatIDLT applies the LT predicate on the "supplier_vat_id" field.
func SupplierVatIDLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldSupplierVatID, v))
}

// SupplierVatIDLTE applies the LTE predicate on the "supplier_vat_id" field.
func SupplierVatIDLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldSupplierVatID, v))
}

// SupplierVatIDContains applies the Contains predicate on the "supplier_vat_id" field.
func SupplierVatIDContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldSupplierVatID, v))
}

// SupplierVatIDHasPrefix applies the HasPrefix predicate on the "supplier_vat_id" field.
func SupplierVatIDHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldSupplierVatID, v))
}

// SupplierVatIDHasSuffix applies the HasSuffix predicate on the "supplier_vat_id" field.
func SupplierVatIDHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldSupplierVatID, v))
}

// SupplierVatIDIsNil applies the IsNil predicate on the "supplier_vat_id" field.
func SupplierVatIDIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldSupplierVatID))
}

// SupplierVatIDNotNil applies the NotNil predicate on the "supplier_vat_id" field.
func SupplierVatIDNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldSupplierVatID))
}

// SupplierVatIDEqualFold applies the EqualFold predicate on the "supplier_vat_id" field.
func SupplierVatIDEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldSupplierVatID, v))
}

// SupplierVatIDContainsFold applies the ContainsFold predicate on the "supplier_vat_id" field.
func SupplierVatIDContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldSupplierVatID, v))
}

// RestaurantNameEQ applies the EQ predicate on the "restaurant_name" field.
func RestaurantNameEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantNameNEQ applies the NEQ predicate on the "restaurant_name" field.
func RestaurantNameNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldRestaurantName, v))
}

// RestaurantNameIn applies the In predicate on the "restaurant_name" field.
func RestaurantNameIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldRestaurantName, vs...))
}

// RestaurantNameNotIn applies the NotIn predicate on the "restaurant_name" field.
func RestaurantNameNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldRestaurantName, vs...))
}

// RestaurantNameGT applies the GT predicate on the "restaurant_name" field.
func RestaurantNameGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldRestaurantName, v))
}

// RestaurantNameGTE applies the GTE predicate on the "restaurant_name" field.
func RestaurantNameGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldRestaurantName, v))
}

// RestaurantNameLT applies the LT predicate on the "restaurant_name" field.
func RestaurantNameLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldRestaurantName, v))
}

// RestaurantNameLTE applies the LTE predicate on the "restaurant_name" field.
func RestaurantNameLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldRestaurantName, v))
}

// RestaurantNameContains applies the Contains predicate on the "restaurant_name" field.
func RestaurantNameContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldRestaurantName, v))
}

// RestaurantNameHasPrefix applies the HasPrefix predicate on the "restaurant_name" field.
func RestaurantNameHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldRestaurantName, v))
}

// RestaurantNameHasSuffix applies the HasSuffix predicate on the "restaurant_name" field.
func RestaurantNameHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldRestaurantName, v))
}

// RestaurantNameIsNil applies the IsNil predicate on the "restaurant_name" field.
func RestaurantNameIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldRestaurantName))
}

// RestaurantNameNotNil applies the NotNil predicate on the "restaurant_name" field.
func RestaurantNameNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldRestaurantName))
}

// RestaurantNameEqualFold applies the EqualFold predicate on the "restaurant_name" field.
func RestaurantNameEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldRestaurantName, v))
}

// RestaurantNameContainsFold applies the ContainsFold predicate on the "restaurant_name" field.
func RestaurantNameContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldRestaurantName, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDIsNil applies the IsNil predicate on the "business_id" field.
func BusinessIDIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldBusinessID))
}

// BusinessIDNotNil applies the NotNil predicate on the "business_id" field.
func BusinessIDNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldBusinessID))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldBusinessID, v))
}

// GoodsNet7EQ applies the EQ predicate on the "goods_net_7" field.
func GoodsNet7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNet7, v))
}

// GoodsNet7NEQ applies the NEQ predicate on the "goods_net_7" field.
func GoodsNet7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsNet7, v))
}

// GoodsNet7In applies the In predicate on the "goods_net_7" field.
func GoodsNet7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsNet7, vs...))
}

// GoodsNet7NotIn applies the NotIn predicate on the "goods_net_7" field.
func GoodsNet7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsNet7, vs...))
}

// GoodsNet7GT applies the GT predicate on the "goods_net_7" field.
func GoodsNet7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsNet7, v))
}

// GoodsNet7GTE applies the GTE predicate on the "goods_net_7" field.
func GoodsNet7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsNet7, v))
}

// GoodsNet7LT applies the LT predicate on the "goods_net_7" field.
func GoodsNet7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsNet7, v))
}

// GoodsNet7LTE applies the LTE predicate on the "goods_net_7" field.
func GoodsNet7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsNet7, v))
}

// GoodsNet7IsNil applies the IsNil predicate on the "goods_net_7" field.
func GoodsNet7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsNet7))
}

// GoodsNet7NotNil applies the NotNil predicate on the "goods_net_7" field.
func GoodsNet7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsNet7))
}

// GoodsVat7EQ applies the EQ predicate on the "goods_vat_7" field.
func GoodsVat7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVat7, v))
}

// GoodsVat7NEQ applies the NEQ predicate on the "goods_vat_7" field.
func GoodsVat7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsVat7, v))
}

// GoodsVat7In applies the In predicate on the "goods_vat_7" field.
func GoodsVat7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsVat7, vs...))
}

// GoodsVat7NotIn applies the NotIn predicate on the "goods_vat_7" field.
func GoodsVat7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsVat7, vs...))
}

// GoodsVat7GT applies the GT predicate on the "goods_vat_7" field.
func GoodsVat7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsVat7, v))
}

// GoodsVat7GTE applies the GTE predicate on the "goods_vat_7" field.
func GoodsVat7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsVat7, v))
}

// GoodsVat7LT applies the LT predicate on the "goods_vat_7" field.
func GoodsVat7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsVat7, v))
}

// GoodsVat7LTE applies the LTE predicate on the "goods_vat_7" field.
func GoodsVat7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsVat7, v))
}

// GoodsVat7IsNil applies the IsNil predicate on the "goods_vat_7" field.
func GoodsVat7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsVat7))
}

// GoodsVat7NotNil applies the NotNil predicate on the "goods_vat_7" field.
func GoodsVat7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsVat7))
}

// GoodsGross7EQ applies the EQ predicate on the "goods_gross_7" field.
func GoodsGross7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGross7, v))
}

// GoodsGross7NEQ applies the NEQ predicate on the "goods_gross_7" field.
func GoodsGross7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsGross7, v))
}

// GoodsGross7In applies the In predicate on the "goods_gross_7" field.
func GoodsGross7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsGross7, vs...))
}

// GoodsGross7NotIn applies the NotIn predicate on the "goods_gross_7" field.
func GoodsGross7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsGross7, vs...))
}

// GoodsGross7GT applies the GT predicate on the "goods_gross_7" field.
func GoodsGross7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsGross7, v))
}

// GoodsGross7GTE applies the GTE predicate on the "goods_gross_7" field.
func GoodsGross7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsGross7, v))
}

// GoodsGross7LT applies the LT predicate on the "goods_gross_7" field.
func GoodsGross7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsGross7, v))
}

// GoodsGross7LTE applies the LTE predicate on the "goods_gross_7" field.
func GoodsGross7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsGross7, v))
}

// GoodsGross7IsNil applies the IsNil predicate on the "goods_gross_7" field.
func GoodsGross7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsGross7))
}

// GoodsGross7NotNil applies the NotNil predicate on the "goods_gross_7" field.
func GoodsGross7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsGross7))
}

// GoodsNet19EQ applies the EQ predicate on the "goods_net_19" field.
func GoodsNet19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNet19, v))
}

// GoodsNet19NEQ applies the NEQ predicate on the "goods_net_19" field.
func GoodsNet19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsNet19, v))
}

// GoodsNet19In applies the In predicate on the "goods_net_19" field.
func GoodsNet19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsNet19, vs...))
}

// GoodsNet19NotIn applies the NotIn predicate on the "goods_net_19" field.
func GoodsNet19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsNet19, vs...))
}

// GoodsNet19GT applies the GT predicate on the "goods_net_19" field.
func GoodsNet19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsNet19, v))
}

// GoodsNet19GTE applies the GTE predicate on the "goods_net_19" field.
func GoodsNet19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsNet19, v))
}

// GoodsNet19LT applies the LT predicate on the "goods_net_19" field.
func GoodsNet19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsNet19, v))
}

// GoodsNet19LTE applies the LTE predicate on the "goods_net_19" field.
func GoodsNet19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsNet19, v))
}

// GoodsNet19IsNil applies the IsNil predicate on the "goods_net_19" field.
func GoodsNet19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsNet19))
}

// GoodsNet19NotNil applies the NotNil predicate on the "goods_net_19" field.
func GoodsNet19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsNet19))
}

// GoodsVat19EQ applies the EQ predicate on the "goods_vat_19" field.
func GoodsVat19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVat19, v))
}

// GoodsVat19NEQ applies the NEQ predicate on the "goods_vat_19" field.
func GoodsVat19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsVat19, v))
}

// GoodsVat19In applies the In predicate on the "goods_vat_19" field.
func GoodsVat19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsVat19, vs...))
}

// GoodsVat19NotIn applies the NotIn predicate on the "goods_vat_19" field.
func GoodsVat19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsVat19, vs...))
}

// GoodsVat19GT applies the GT predicate on the "goods_vat_19" field.
func GoodsVat19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsVat19, v))
}

// GoodsVat19GTE applies the GTE predicate on the "goods_vat_19" field.
func GoodsVat19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsVat19, v))
}

// GoodsVat19LT applies the LT predicate on the "goods_vat_19" field.
func GoodsVat19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsVat19, v))
}

// GoodsVat19LTE applies the LTE predicate on the "goods_vat_19" field.
func GoodsVat19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsVat19, v))
}

// GoodsVat19IsNil applies the IsNil predicate on the "goods_vat_19" field.
func GoodsVat19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsVat19))
}

// GoodsVat19NotNil applies the NotNil predicate on the "goods_vat_19" field.
func GoodsVat19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsVat19))
}

// GoodsGross19EQ applies the EQ predicate on the "goods_gross_19" field.
func GoodsGross19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGross19, v))
}

// GoodsGross19NEQ applies the NEQ predicate on the "goods_gross_19" field.
func GoodsGross19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsGross19, v))
}

// GoodsGross19In applies the In predicate on the "goods_gross_19" field.
func GoodsGross19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsGross19, vs...))
}

// GoodsGross19NotIn applies the NotIn predicate on the "goods_gross_19" field.
func GoodsGross19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsGross19, vs...))
}

// GoodsGross19GT applies the GT predicate on the "goods_gross_19" field.
func GoodsGross19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsGross19, v))
}

// GoodsGross19GTE applies the GTE predicate on the "goods_gross_19" field.
func GoodsGross19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsGross19, v))
}

// GoodsGross19LT applies the LT predicate on the "goods_gross_19" field.
func GoodsGross19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsGross19, v))
}

// GoodsGross19LTE applies the LTE predicate on the "goods_gross_19" field.
func GoodsGross19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsGross19, v))
}

// GoodsGross19IsNil applies the IsNil predicate on the "goods_gross_19" field.
func GoodsGross19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsGross19))
}

// GoodsGross19NotNil applies the NotNil predicate on the "goods_gross_19" field.
func GoodsGross19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsGross19))
}

// GoodsNetTotalEQ applies the EQ predicate on the "goods_net_total" field.
func GoodsNetTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsNetTotal, v))
}

// GoodsNetTotalNEQ applies the NEQ predicate on the "goods_net_total" field.
func GoodsNetTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsNetTotal, v))
}

// GoodsNetTotalIn applies the In predicate on the "goods_net_total" field.
func GoodsNetTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsNetTotal, vs...))
}

// GoodsNetTotalNotIn applies the NotIn predicate on the "goods_net_total" field.
func GoodsNetTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsNetTotal, vs...))
}

// GoodsNetTotalGT applies the GT predicate on the "goods_net_total" field.
func GoodsNetTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsNetTotal, v))
}

// GoodsNetTotalGTE applies the GTE predicate on the "goods_net_total" field.
func GoodsNetTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsNetTotal, v))
}

// GoodsNetTotalLT applies the LT predicate on the "goods_net_total" field.
func GoodsNetTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsNetTotal, v))
}

// GoodsNetTotalLTE applies the LTE predicate on the "goods_net_total" field.
func GoodsNetTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsNetTotal, v))
}

// GoodsNetTotalIsNil applies the IsNil predicate on the "goods_net_total" field.
func GoodsNetTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsNetTotal))
}

// GoodsNetTotalNotNil applies the NotNil predicate on the "goods_net_total" field.
func GoodsNetTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsNetTotal))
}

// GoodsVatTotalEQ applies the EQ predicate on the "goods_vat_total" field.
func GoodsVatTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsVatTotal, v))
}

// GoodsVatTotalNEQ applies the NEQ predicate on the "goods_vat_total" field.
func GoodsVatTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsVatTotal, v))
}

// GoodsVatTotalIn applies the In predicate on the "goods_vat_total" field.
func GoodsVatTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsVatTotal, vs...))
}

// GoodsVatTotalNotIn applies the NotIn predicate on the "goods_vat_total" field.
func GoodsVatTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsVatTotal, vs...))
}

// GoodsVatTotalGT applies the GT predicate on the "goods_vat_total" field.
func GoodsVatTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsVatTotal, v))
}

// GoodsVatTotalGTE applies the GTE predicate on the "goods_vat_total" field.
func GoodsVatTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsVatTotal, v))
}

// GoodsVatTotalLT applies the LT predicate on the "goods_vat_total" field.
func GoodsVatTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsVatTotal, v))
}

// GoodsVatTotalLTE applies the LTE predicate on the "goods_vat_total" field.
func GoodsVatTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsVatTotal, v))
}

// GoodsVatTotalIsNil applies the IsNil predicate on the "goods_vat_total" field.
func GoodsVatTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsVatTotal))
}

// GoodsVatTotalNotNil applies the NotNil predicate on the "goods_vat_total" field.
func GoodsVatTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsVatTotal))
}

// GoodsGrossTotalEQ applies the EQ predicate on the "goods_gross_total" field.
func GoodsGrossTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalNEQ applies the NEQ predicate on the "goods_gross_total" field.
func GoodsGrossTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalIn applies the In predicate on the "goods_gross_total" field.
func GoodsGrossTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldGoodsGrossTotal, vs...))
}

// GoodsGrossTotalNotIn applies the NotIn predicate on the "goods_gross_total" field.
func GoodsGrossTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldGoodsGrossTotal, vs...))
}

// GoodsGrossTotalGT applies the GT predicate on the "goods_gross_total" field.
func GoodsGrossTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalGTE applies the GTE predicate on the "goods_gross_total" field.
func GoodsGrossTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalLT applies the LT predicate on the "goods_gross_total" field.
func GoodsGrossTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalLTE applies the LTE predicate on the "goods_gross_total" field.
func GoodsGrossTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldGoodsGrossTotal, v))
}

// GoodsGrossTotalIsNil applies the IsNil predicate on the "goods_gross_total" field.
func GoodsGrossTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldGoodsGrossTotal))
}

// GoodsGrossTotalNotNil applies the NotNil predicate on the "goods_gross_total" field.
func GoodsGrossTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldGoodsGrossTotal))
}

// DistributionNetTotalEQ applies the EQ predicate on the "distribution_net_total" field.
func DistributionNetTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionNetTotal, v))
}

// DistributionNetTotalNEQ applies the NEQ predicate on the "distribution_net_total" field.
func DistributionNetTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldDistributionNetTotal, v))
}

// DistributionNetTotalIn applies the In predicate on the "distribution_net_total" field.
func DistributionNetTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldDistributionNetTotal, vs...))
}

// DistributionNetTotalNotIn applies the NotIn predicate on the "distribution_net_total" field.
func DistributionNetTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldDistributionNetTotal, vs...))
}

// DistributionNetTotalGT applies the GT predicate on the "distribution_net_total" field.
func DistributionNetTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldDistributionNetTotal, v))
}

// DistributionNetTotalGTE applies the GTE predicate on the "distribution_net_total" field.
func DistributionNetTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldDistributionNetTotal, v))
}

// DistributionNetTotalLT applies the LT predicate on the "distribution_net_total" field.
func DistributionNetTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldDistributionNetTotal, v))
}

// DistributionNetTotalLTE applies the LTE predicate on the "distribution_net_total" field.
func DistributionNetTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldDistributionNetTotal, v))
}

// DistributionNetTotalIsNil applies the IsNil predicate on the "distribution_net_total" field.
func DistributionNetTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldDistributionNetTotal))
}

// DistributionNetTotalNotNil applies the NotNil predicate on the "distribution_net_total" field.
func DistributionNetTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldDistributionNetTotal))
}

// DistributionVatTotalEQ applies the EQ predicate on the "distribution_vat_total" field.
func DistributionVatTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionVatTotal, v))
}

// DistributionVatTotalNEQ applies the NEQ predicate on the "distribution_vat_total" field.
func DistributionVatTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldDistributionVatTotal, v))
}

// DistributionVatTotalIn applies the In predicate on the "distribution_vat_total" field.
func DistributionVatTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldDistributionVatTotal, vs...))
}

// DistributionVatTotalNotIn applies the NotIn predicate on the "distribution_vat_total" field.
func DistributionVatTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldDistributionVatTotal, vs...))
}

// DistributionVatTotalGT applies the GT predicate on the "distribution_vat_total" field.
func DistributionVatTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldDistributionVatTotal, v))
}

// DistributionVatTotalGTE applies the GTE predicate on the "distribution_vat_total" field.
func DistributionVatTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldDistributionVatTotal, v))
}

// DistributionVatTotalLT applies the LT predicate on the "distribution_vat_total" field.
func DistributionVatTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldDistributionVatTotal, v))
}

// DistributionVatTotalLTE applies the LTE predicate on the "distribution_vat_total" field.
func DistributionVatTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldDistributionVatTotal, v))
}

// DistributionVatTotalIsNil applies the IsNil predicate on the "distribution_vat_total" field.
func DistributionVatTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldDistributionVatTotal))
}

// DistributionVatTotalNotNil applies the NotNil predicate on the "distribution_vat_total" field.
func DistributionVatTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldDistributionVatTotal))
}

// DistributionGrossTotalEQ applies the EQ predicate on the "distribution_gross_total" field.
func DistributionGrossTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalNEQ applies the NEQ predicate on the "distribution_gross_total" field.
func DistributionGrossTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalIn applies the In predicate on the "distribution_gross_total" field.
func DistributionGrossTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldDistributionGrossTotal, vs...))
}

// DistributionGrossTotalNotIn applies the NotIn predicate on the "distribution_gross_total" field.
func DistributionGrossTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldDistributionGrossTotal, vs...))
}

// DistributionGrossTotalGT applies the GT predicate on the "distribution_gross_total" field.
func DistributionGrossTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalGTE applies the GTE predicate on the "distribution_gross_total" field.
func DistributionGrossTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalLT applies the LT predicate on the "distribution_gross_total" field.
func DistributionGrossTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalLTE applies the LTE predicate on the "distribution_gross_total" field.
func DistributionGrossTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldDistributionGrossTotal, v))
}

// DistributionGrossTotalIsNil applies the IsNil predicate on the "distribution_gross_total" field.
func DistributionGrossTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldDistributionGrossTotal))
}

// DistributionGrossTotalNotNil applies the NotNil predicate on the "distribution_gross_total" field.
func DistributionGrossTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldDistributionGrossTotal))
}

// NetpriceNet7EQ applies the EQ predicate on the "netprice_net_7" field.
func NetpriceNet7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNet7, v))
}

// NetpriceNet7NEQ applies the NEQ predicate on the "netprice_net_7" field.
func NetpriceNet7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceNet7, v))
}

// NetpriceNet7In applies the In predicate on the "netprice_net_7" field.
func NetpriceNet7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceNet7, vs...))
}

// NetpriceNet7NotIn applies the NotIn predicate on the "netprice_net_7" field.
func NetpriceNet7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceNet7, vs...))
}

// NetpriceNet7GT applies the GT predicate on the "netprice_net_7" field.
func NetpriceNet7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceNet7, v))
}

// NetpriceNet7GTE applies the GTE predicate on the "netprice_net_7" field.
func NetpriceNet7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceNet7, v))
}

// NetpriceNet7LT applies the LT predicate on the "netprice_net_7" field.
func NetpriceNet7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceNet7, v))
}

// NetpriceNet7LTE applies the LTE predicate on the "netprice_net_7" field.
func NetpriceNet7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceNet7, v))
}

// NetpriceNet7IsNil applies the IsNil predicate on the "netprice_net_7" field.
func NetpriceNet7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceNet7))
}

// NetpriceNet7NotNil applies the NotNil predicate on the "netprice_net_7" field.
func NetpriceNet7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceNet7))
}

// NetpriceVat7EQ applies the EQ predicate on the "netprice_vat_7" field.
func NetpriceVat7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVat7, v))
}

// NetpriceVat7NEQ applies the NEQ predicate on the "netprice_vat_7" field.
func NetpriceVat7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceVat7, v))
}

// NetpriceVat7In applies the In predicate on the "netprice_vat_7" field.
func NetpriceVat7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceVat7, vs...))
}

// NetpriceVat7NotIn applies the NotIn predicate on the "netprice_vat_7" field.
func NetpriceVat7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceVat7, vs...))
}

// NetpriceVat7GT applies the GT predicate on the "netprice_vat_7" field.
func NetpriceVat7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceVat7, v))
}

// NetpriceVat7GTE applies the GTE predicate on the "netprice_vat_7" field.
func NetpriceVat7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceVat7, v))
}

// NetpriceVat7LT applies the LT predicate on the "netprice_vat_7" field.
func NetpriceVat7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceVat7, v))
}

// NetpriceVat7LTE applies the LTE predicate on the "netprice_vat_7" field.
func NetpriceVat7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceVat7, v))
}

// NetpriceVat7IsNil applies the IsNil predicate on the "netprice_vat_7" field.
func NetpriceVat7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceVat7))
}

// NetpriceVat7NotNil applies the NotNil predicate on the "netprice_vat_7" field.
func NetpriceVat7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceVat7))
}

// NetpriceGross7EQ applies the EQ predicate on the "netprice_gross_7" field.
func NetpriceGross7EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGross7, v))
}

// NetpriceGross7NEQ applies the NEQ predicate on the "netprice_gross_7" field.
func NetpriceGross7NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceGross7, v))
}

// NetpriceGross7In applies the In predicate on the "netprice_gross_7" field.
func NetpriceGross7In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceGross7, vs...))
}

// NetpriceGross7NotIn applies the NotIn predicate on the "netprice_gross_7" field.
func NetpriceGross7NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceGross7, vs...))
}

// NetpriceGross7GT applies the GT predicate on the "netprice_gross_7" field.
func NetpriceGross7GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceGross7, v))
}

// NetpriceGross7GTE applies the GTE predicate on the "netprice_gross_7" field.
func NetpriceGross7GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceGross7, v))
}

// NetpriceGross7LT applies the LT predicate on the "netprice_gross_7" field.
func NetpriceGross7LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceGross7, v))
}

// NetpriceGross7LTE applies the LTE predicate on the "netprice_gross_7" field.
func NetpriceGross7LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceGross7, v))
}

// NetpriceGross7IsNil applies the IsNil predicate on the "netprice_gross_7" field.
func NetpriceGross7IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceGross7))
}

// NetpriceGross7NotNil applies the NotNil predicate on the "netprice_gross_7" field.
func NetpriceGross7NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceGross7))
}

// NetpriceNet19EQ applies the EQ predicate on the "netprice_net_19" field.
func NetpriceNet19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNet19, v))
}

// NetpriceNet19NEQ applies the NEQ predicate on the "netprice_net_19" field.
func NetpriceNet19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceNet19, v))
}

// NetpriceNet19In applies the In predicate on the "netprice_net_19" field.
func NetpriceNet19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceNet19, vs...))
}

// NetpriceNet19NotIn applies the NotIn predicate on the "netprice_net_19" field.
func NetpriceNet19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceNet19, vs...))
}

// NetpriceNet19GT applies the GT predicate on the "netprice_net_19" field.
func NetpriceNet19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceNet19, v))
}

// NetpriceNet19GTE applies the GTE predicate on the "netprice_net_19" field.
func NetpriceNet19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceNet19, v))
}

// NetpriceNet19LT applies the LT predicate on the "netprice_net_19" field.
func NetpriceNet19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceNet19, v))
}

// NetpriceNet19LTE applies the LTE predicate on the "netprice_net_19" field.
func NetpriceNet19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceNet19, v))
}

// NetpriceNet19IsNil applies the IsNil predicate on the "netprice_net_19" field.
func NetpriceNet19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceNet19))
}

// NetpriceNet19NotNil applies the NotNil predicate on the "netprice_net_19" field.
func NetpriceNet19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceNet19))
}

// NetpriceVat19EQ applies the EQ predicate on the "netprice_vat_19" field.
func NetpriceVat19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVat19, v))
}

// NetpriceVat19NEQ applies the NEQ predicate on the "netprice_vat_19" field.
func NetpriceVat19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceVat19, v))
}

// NetpriceVat19In applies the In predicate on the "netprice_vat_19" field.
func NetpriceVat19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceVat19, vs...))
}

// NetpriceVat19NotIn applies the NotIn predicate on the "netprice_vat_19" field.
func NetpriceVat19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceVat19, vs...))
}

// NetpriceVat19GT applies the GT predicate on the "netprice_vat_19" field.
func NetpriceVat19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceVat19, v))
}

// NetpriceVat19GTE applies the GTE predicate on the "netprice_vat_19" field.
func NetpriceVat19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceVat19, v))
}

// NetpriceVat19LT applies the LT predicate on the "netprice_vat_19" field.
func NetpriceVat19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceVat19, v))
}

// NetpriceVat19LTE applies the LTE predicate on the "netprice_vat_19" field.
func NetpriceVat19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceVat19, v))
}

// NetpriceVat19IsNil applies the IsNil predicate on the "netprice_vat_19" field.
func NetpriceVat19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceVat19))
}

// NetpriceVat19NotNil applies the NotNil predicate on the "netprice_vat_19" field.
func NetpriceVat19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceVat19))
}

// NetpriceGross19EQ applies the EQ predicate on the "netprice_gross_19" field.
func NetpriceGross19EQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGross19, v))
}

// NetpriceGross19NEQ applies the NEQ predicate on the "netprice_gross_19" field.
func NetpriceGross19NEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceGross19, v))
}

// NetpriceGross19In applies the In predicate on the "netprice_gross_19" field.
func NetpriceGross19In(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceGross19, vs...))
}

// NetpriceGross19NotIn applies the NotIn predicate on the "netprice_gross_19" field.
func NetpriceGross19NotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceGross19, vs...))
}

// NetpriceGross19GT applies the GT predicate on the "netprice_gross_19" field.
func NetpriceGross19GT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceGross19, v))
}

// NetpriceGross19GTE applies the GTE predicate on the "netprice_gross_19" field.
func NetpriceGross19GTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceGross19, v))
}

// NetpriceGross19LT applies the LT predicate on the "netprice_gross_19" field.
func NetpriceGross19LT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceGross19, v))
}

// NetpriceGross19LTE applies the LTE predicate on the "netprice_gross_19" field.
func NetpriceGross19LTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceGross19, v))
}

// NetpriceGross19IsNil applies the IsNil predicate on the "netprice_gross_19" field.
func NetpriceGross19IsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceGross19))
}

// NetpriceGross19NotNil applies the NotNil predicate on the "netprice_gross_19" field.
func NetpriceGross19NotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceGross19))
}

// NetpriceNetTotalEQ applies the EQ predicate on the "netprice_net_total" field.
func NetpriceNetTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalNEQ applies the NEQ predicate on the "netprice_net_total" field.
func NetpriceNetTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalIn applies the In predicate on the "netprice_net_total" field.
func NetpriceNetTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceNetTotal, vs...))
}

// NetpriceNetTotalNotIn applies the NotIn predicate on the "netprice_net_total" field.
func NetpriceNetTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceNetTotal, vs...))
}

// NetpriceNetTotalGT applies the GT predicate on the "netprice_net_total" field.
func NetpriceNetTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalGTE applies the GTE predicate on the "netprice_net_total" field.
func NetpriceNetTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalLT applies the LT predicate on the "netprice_net_total" field.
func NetpriceNetTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalLTE applies the LTE predicate on the "netprice_net_total" field.
func NetpriceNetTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceNetTotal, v))
}

// NetpriceNetTotalIsNil applies the IsNil predicate on the "netprice_net_total" field.
func NetpriceNetTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceNetTotal))
}

// NetpriceNetTotalNotNil applies the NotNil predicate on the "netprice_net_total" field.
func NetpriceNetTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceNetTotal))
}

// NetpriceVatTotalEQ applies the EQ predicate on the "netprice_vat_total" field.
func NetpriceVatTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalNEQ applies the NEQ predicate on the "netprice_vat_total" field.
func NetpriceVatTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalIn applies the In predicate on the "netprice_vat_total" field.
func NetpriceVatTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceVatTotal, vs...))
}

// NetpriceVatTotalNotIn applies the NotIn predicate on the "netprice_vat_total" field.
func NetpriceVatTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceVatTotal, vs...))
}

// NetpriceVatTotalGT applies the GT predicate on the "netprice_vat_total" field.
func NetpriceVatTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalGTE applies the GTE predicate on the "netprice_vat_total" field.
func NetpriceVatTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalLT applies the LT predicate on the "netprice_vat_total" field.
func NetpriceVatTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalLTE applies the LTE predicate on the "netprice_vat_total" field.
func NetpriceVatTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceVatTotal, v))
}

// NetpriceVatTotalIsNil applies the IsNil predicate on the "netprice_vat_total" field.
func NetpriceVatTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceVatTotal))
}

// NetpriceVatTotalNotNil applies the NotNil predicate on the "netprice_vat_total" field.
func NetpriceVatTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceVatTotal))
}

// NetpriceGrossTotalEQ applies the EQ predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalNEQ applies the NEQ predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalIn applies the In predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNetpriceGrossTotal, vs...))
}

// NetpriceGrossTotalNotIn applies the NotIn predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNetpriceGrossTotal, vs...))
}

// NetpriceGrossTotalGT applies the GT predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalGTE applies the GTE predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalLT applies the LT predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalLTE applies the LTE predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNetpriceGrossTotal, v))
}

// NetpriceGrossTotalIsNil applies the IsNil predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNetpriceGrossTotal))
}

// NetpriceGrossTotalNotNil applies the NotNil predicate on the "netprice_gross_total" field.
func NetpriceGrossTotalNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNetpriceGrossTotal))
}

// EndAmountNetEQ applies the EQ predicate on the "end_amount_net" field.
func EndAmountNetEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountNet, v))
}

// EndAmountNetNEQ applies the NEQ predicate on the "end_amount_net" field.
func EndAmountNetNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEndAmountNet, v))
}

// EndAmountNetIn applies the In predicate on the "end_amount_net" field.
func EndAmountNetIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEndAmountNet, vs...))
}

// EndAmountNetNotIn applies the NotIn predicate on the "end_amount_net" field.
func EndAmountNetNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEndAmountNet, vs...))
}

// EndAmountNetGT applies the GT predicate on the "end_amount_net" field.
func EndAmountNetGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEndAmountNet, v))
}

// EndAmountNetGTE applies the GTE predicate on the "end_amount_net" field.
func EndAmountNetGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEndAmountNet, v))
}

// EndAmountNetLT applies the LT predicate on the "end_amount_net" field.
func EndAmountNetLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEndAmountNet, v))
}

// EndAmountNetLTE applies the LTE predicate on the "end_amount_net" field.
func EndAmountNetLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEndAmountNet, v))
}

// EndAmountNetIsNil applies the IsNil predicate on the "end_amount_net" field.
func EndAmountNetIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEndAmountNet))
}

// EndAmountNetNotNil applies the NotNil predicate on the "end_amount_net" field.
func EndAmountNetNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEndAmountNet))
}

// EndAmountVatEQ applies the EQ predicate on the "end_amount_vat" field.
func EndAmountVatEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountVat, v))
}

// EndAmountVatNEQ applies the NEQ predicate on the "end_amount_vat" field.
func EndAmountVatNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEndAmountVat, v))
}

// EndAmountVatIn applies the In predicate on the "end_amount_vat" field.
func EndAmountVatIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEndAmountVat, vs...))
}

// EndAmountVatNotIn applies the NotIn predicate on the "end_amount_vat" field.
func EndAmountVatNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEndAmountVat, vs...))
}

// EndAmountVatGT applies the GT predicate on the "end_amount_vat" field.
func EndAmountVatGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEndAmountVat, v))
}

// EndAmountVatGTE applies the GTE predicate on the "end_amount_vat" field.
func EndAmountVatGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEndAmountVat, v))
}

// EndAmountVatLT applies the LT predicate on the "end_amount_vat" field.
func EndAmountVatLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEndAmountVat, v))
}

// EndAmountVatLTE applies the LTE predicate on the "end_amount_vat" field.
func EndAmountVatLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEndAmountVat, v))
}

// EndAmountVatIsNil applies the IsNil predicate on the "end_amount_vat" field.
func EndAmountVatIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEndAmountVat))
}

// EndAmountVatNotNil applies the NotNil predicate on the "end_amount_vat" field.
func EndAmountVatNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEndAmountVat))
}

// EndAmountGrossEQ applies the EQ predicate on the "end_amount_gross" field.
func EndAmountGrossEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldEndAmountGross, v))
}

// EndAmountGrossNEQ applies the NEQ predicate on the "end_amount_gross" field.
func EndAmountGrossNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldEndAmountGross, v))
}

// EndAmountGrossIn applies the In predicate on the "end_amount_gross" field.
func EndAmountGrossIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldEndAmountGross, vs...))
}

// EndAmountGrossNotIn applies the NotIn predicate on the "end_amount_gross" field.
func EndAmountGrossNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldEndAmountGross, vs...))
}

// EndAmountGrossGT applies the GT predicate on the "end_amount_gross" field.
func EndAmountGrossGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldEndAmountGross, v))
}

// EndAmountGrossGTE applies the GTE predicate on the "end_amount_gross" field.
func EndAmountGrossGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldEndAmountGross, v))
}

// EndAmountGrossLT applies the LT predicate on the "end_amount_gross" field.
func EndAmountGrossLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldEndAmountGross, v))
}

// EndAmountGrossLTE applies the LTE predicate on the "end_amount_gross" field.
func EndAmountGrossLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldEndAmountGross, v))
}

// EndAmountGrossIsNil applies the IsNil predicate on the "end_amount_gross" field.
func EndAmountGrossIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldEndAmountGross))
}

// EndAmountGrossNotNil applies the NotNil predicate on the "end_amount_gross" field.
func EndAmountGrossNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldEndAmountGross))
}

// NettingMerchantInvoiceEQ applies the EQ predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceNEQ applies the NEQ predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceIn applies the In predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingMerchantInvoice, vs...))
}

// NettingMerchantInvoiceNotIn applies the NotIn predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingMerchantInvoice, vs...))
}

// NettingMerchantInvoiceGT applies the GT predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceGTE applies the GTE predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceLT applies the LT predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceLTE applies the LTE predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceContains applies the Contains predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceHasPrefix applies the HasPrefix predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceHasSuffix applies the HasSuffix predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceIsNil applies the IsNil predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingMerchantInvoice))
}

// NettingMerchantInvoiceNotNil applies the NotNil predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingMerchantInvoice))
}

// NettingMerchantInvoiceEqualFold applies the EqualFold predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldNettingMerchantInvoice, v))
}

// NettingMerchantInvoiceContainsFold applies the ContainsFold predicate on the "netting_merchant_invoice" field.
func NettingMerchantInvoiceContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldNettingMerchantInvoice, v))
}

// NettingMerchantNetEQ applies the EQ predicate on the "netting_merchant_net" field.
func NettingMerchantNetEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantNet, v))
}

// NettingMerchantNetNEQ applies the NEQ predicate on the "netting_merchant_net" field.
func NettingMerchantNetNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingMerchantNet, v))
}

// NettingMerchantNetIn applies the In predicate on the "netting_merchant_net" field.
func NettingMerchantNetIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingMerchantNet, vs...))
}

// NettingMerchantNetNotIn applies the NotIn predicate on the "netting_merchant_net" field.
func NettingMerchantNetNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingMerchantNet, vs...))
}

// NettingMerchantNetGT applies the GT predicate on the "netting_merchant_net" field.
func NettingMerchantNetGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingMerchantNet, v))
}

// NettingMerchantNetGTE applies the GTE predicate on the "netting_merchant_net" field.
func NettingMerchantNetGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingMerchantNet, v))
}

// NettingMerchantNetLT applies the LT predicate on the "netting_merchant_net" field.
func NettingMerchantNetLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingMerchantNet, v))
}

// NettingMerchantNetLTE applies the LTE predicate on the "netting_merchant_net" field.
func NettingMerchantNetLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingMerchantNet, v))
}

// NettingMerchantNetIsNil applies the IsNil predicate on the "netting_merchant_net" field.
func NettingMerchantNetIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingMerchantNet))
}

// NettingMerchantNetNotNil applies the NotNil predicate on the "netting_merchant_net" field.
func NettingMerchantNetNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingMerchantNet))
}

// NettingMerchantVatEQ applies the EQ predicate on the "netting_merchant_vat" field.
func NettingMerchantVatEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantVat, v))
}

// NettingMerchantVatNEQ applies the NEQ predicate on the "netting_merchant_vat" field.
func NettingMerchantVatNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingMerchantVat, v))
}

// NettingMerchantVatIn applies the In predicate on the "netting_merchant_vat" field.
func NettingMerchantVatIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingMerchantVat, vs...))
}

// NettingMerchantVatNotIn applies the NotIn predicate on the "netting_merchant_vat" field.
func NettingMerchantVatNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingMerchantVat, vs...))
}

// NettingMerchantVatGT applies the GT predicate on the "netting_merchant_vat" field.
func NettingMerchantVatGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingMerchantVat, v))
}

// NettingMerchantVatGTE applies the GTE predicate on the "netting_merchant_vat" field.
func NettingMerchantVatGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingMerchantVat, v))
}

// NettingMerchantVatLT applies the LT predicate on the "netting_merchant_vat" field.
func NettingMerchantVatLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingMerchantVat, v))
}

// NettingMerchantVatLTE applies the LTE predicate on the "netting_merchant_vat" field.
func NettingMerchantVatLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingMerchantVat, v))
}

// NettingMerchantVatIsNil applies the IsNil predicate on the "netting_merchant_vat" field.
func NettingMerchantVatIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingMerchantVat))
}

// NettingMerchantVatNotNil applies the NotNil predicate on the "netting_merchant_vat" field.
func NettingMerchantVatNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingMerchantVat))
}

// NettingMerchantGrossEQ applies the EQ predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossNEQ applies the NEQ predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossIn applies the In predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingMerchantGross, vs...))
}

// NettingMerchantGrossNotIn applies the NotIn predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingMerchantGross, vs...))
}

// NettingMerchantGrossGT applies the GT predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossGTE applies the GTE predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossLT applies the LT predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossLTE applies the LTE predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingMerchantGross, v))
}

// NettingMerchantGrossIsNil applies the IsNil predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingMerchantGross))
}

// NettingMerchantGrossNotNil applies the NotNil predicate on the "netting_merchant_gross" field.
func NettingMerchantGrossNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingMerchantGross))
}

// NettingWoltInvoiceEQ applies the EQ predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceNEQ applies the NEQ predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceIn applies the In predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingWoltInvoice, vs...))
}

// NettingWoltInvoiceNotIn applies the NotIn predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingWoltInvoice, vs...))
}

// NettingWoltInvoiceGT applies the GT predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceGTE applies the GTE predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceLT applies the LT predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceLTE applies the LTE predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceContains applies the Contains predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceHasPrefix applies the HasPrefix predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceHasSuffix applies the HasSuffix predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceIsNil applies the IsNil predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingWoltInvoice))
}

// NettingWoltInvoiceNotNil applies the NotNil predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingWoltInvoice))
}

// NettingWoltInvoiceEqualFold applies the EqualFold predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldNettingWoltInvoice, v))
}

// NettingWoltInvoiceContainsFold applies the ContainsFold predicate on the "netting_wolt_invoice" field.
func NettingWoltInvoiceContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldNettingWoltInvoice, v))
}

// NettingWoltNetEQ applies the EQ predicate on the "netting_wolt_net" field.
func NettingWoltNetEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltNet, v))
}

// NettingWoltNetNEQ applies the NEQ predicate on the "netting_wolt_net" field.
func NettingWoltNetNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingWoltNet, v))
}

// NettingWoltNetIn applies the In predicate on the "netting_wolt_net" field.
func NettingWoltNetIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingWoltNet, vs...))
}

// NettingWoltNetNotIn applies the NotIn predicate on the "netting_wolt_net" field.
func NettingWoltNetNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingWoltNet, vs...))
}

// NettingWoltNetGT applies the GT predicate on the "netting_wolt_net" field.
func NettingWoltNetGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingWoltNet, v))
}

// NettingWoltNetGTE applies the GTE predicate on the "netting_wolt_net" field.
func NettingWoltNetGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingWoltNet, v))
}

// NettingWoltNetLT applies the LT predicate on the "netting_wolt_net" field.
func NettingWoltNetLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingWoltNet, v))
}

// NettingWoltNetLTE applies the LTE predicate on the "netting_wolt_net" field.
func NettingWoltNetLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingWoltNet, v))
}

// NettingWoltNetIsNil applies the IsNil predicate on the "netting_wolt_net" field.
func NettingWoltNetIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingWoltNet))
}

// NettingWoltNetNotNil applies the NotNil predicate on the "netting_wolt_net" field.
func NettingWoltNetNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingWoltNet))
}

// NettingWoltVatEQ applies the EQ predicate on the "netting_wolt_vat" field.
func NettingWoltVatEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltVat, v))
}

// NettingWoltVatNEQ applies the NEQ predicate on the "netting_wolt_vat" field.
func NettingWoltVatNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingWoltVat, v))
}

// NettingWoltVatIn applies the In predicate on the "netting_wolt_vat" field.
func NettingWoltVatIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingWoltVat, vs...))
}

// NettingWoltVatNotIn applies the NotIn predicate on the "netting_wolt_vat" field.
func NettingWoltVatNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingWoltVat, vs...))
}

// NettingWoltVatGT applies the GT predicate on the "netting_wolt_vat" field.
func NettingWoltVatGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingWoltVat, v))
}

// NettingWoltVatGTE applies the GTE predicate on the "netting_wolt_vat" field.
func NettingWoltVatGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingWoltVat, v))
}

// NettingWoltVatLT applies the LT predicate on the "netting_wolt_vat" field.
func NettingWoltVatLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingWoltVat, v))
}

// NettingWoltVatLTE applies the LTE predicate on the "netting_wolt_vat" field.
func NettingWoltVatLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingWoltVat, v))
}

// NettingWoltVatIsNil applies the IsNil predicate on the "netting_wolt_vat" field.
func NettingWoltVatIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingWoltVat))
}

// NettingWoltVatNotNil applies the NotNil predicate on the "netting_wolt_vat" field.
func NettingWoltVatNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingWoltVat))
}

// NettingWoltGrossEQ applies the EQ predicate on the "netting_wolt_gross" field.
func NettingWoltGrossEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingWoltGross, v))
}

// NettingWoltGrossNEQ applies the NEQ predicate on the "netting_wolt_gross" field.
func NettingWoltGrossNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingWoltGross, v))
}

// NettingWoltGrossIn applies the In predicate on the "netting_wolt_gross" field.
func NettingWoltGrossIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingWoltGross, vs...))
}

// NettingWoltGrossNotIn applies the NotIn predicate on the "netting_wolt_gross" field.
func NettingWoltGrossNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingWoltGross, vs...))
}

// NettingWoltGrossGT applies the GT predicate on the "netting_wolt_gross" field.
func NettingWoltGrossGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingWoltGross, v))
}

// NettingWoltGrossGTE applies the GTE predicate on the "netting_wolt_gross" field.
func NettingWoltGrossGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingWoltGross, v))
}

// NettingWoltGrossLT applies the LT predicate on the "netting_wolt_gross" field.
func NettingWoltGrossLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingWoltGross, v))
}

// NettingWoltGrossLTE applies the LTE predicate on the "netting_wolt_gross" field.
func NettingWoltGrossLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingWoltGross, v))
}

// NettingWoltGrossIsNil applies the IsNil predicate on the "netting_wolt_gross" field.
func NettingWoltGrossIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingWoltGross))
}

// NettingWoltGrossNotNil applies the NotNil predicate on the "netting_wolt_gross" field.
func NettingWoltGrossNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingWoltGross))
}

// NettingNetPayoutEQ applies the EQ predicate on the "netting_net_payout" field.
func NettingNetPayoutEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingNetPayout, v))
}

// NettingNetPayoutNEQ applies the NEQ predicate on the "netting_net_payout" field.
func NettingNetPayoutNEQ(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingNetPayout, v))
}

// NettingNetPayoutIn applies the In predicate on the "netting_net_payout" field.
func NettingNetPayoutIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingNetPayout, vs...))
}

// NettingNetPayoutNotIn applies the NotIn predicate on the "netting_net_payout" field.
func NettingNetPayoutNotIn(vs ...float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingNetPayout, vs...))
}

// NettingNetPayoutGT applies the GT predicate on the "netting_net_payout" field.
func NettingNetPayoutGT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingNetPayout, v))
}

// NettingNetPayoutGTE applies the GTE predicate on the "netting_net_payout" field.
func NettingNetPayoutGTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingNetPayout, v))
}

// NettingNetPayoutLT applies the LT predicate on the "netting_net_payout" field.
func NettingNetPayoutLT(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingNetPayout, v))
}

// NettingNetPayoutLTE applies the LTE predicate on the "netting_net_payout" field.
func NettingNetPayoutLTE(v float64) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingNetPayout, v))
}

// NettingNetPayoutIsNil applies the IsNil predicate on the "netting_net_payout" field.
func NettingNetPayoutIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingNetPayout))
}

// NettingNetPayoutNotNil applies the NotNil predicate on the "netting_net_payout" field.
func NettingNetPayoutNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingNetPayout))
}

// NettingParsedJSONIsNil applies the IsNil predicate on the "netting_parsed_json" field.
func NettingParsedJSONIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingParsedJSON))
}

// NettingParsedJSONNotNil applies the NotNil predicate on the "netting_parsed_json" field.
func NettingParsedJSONNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingParsedJSON))
}

// NettingRawTextEQ applies the EQ predicate on the "netting_raw_text" field.
func NettingRawTextEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEQ(FieldNettingRawText, v))
}

// NettingRawTextNEQ applies the NEQ predicate on the "netting_raw_text" field.
func NettingRawTextNEQ(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNEQ(FieldNettingRawText, v))
}

// NettingRawTextIn applies the In predicate on the "netting_raw_text" field.
func NettingRawTextIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIn(FieldNettingRawText, vs...))
}

// NettingRawTextNotIn applies the NotIn predicate on the "netting_raw_text" field.
func NettingRawTextNotIn(vs ...string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotIn(FieldNettingRawText, vs...))
}

// NettingRawTextGT applies the GT predicate on the "netting_raw_text" field.
func NettingRawTextGT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGT(FieldNettingRawText, v))
}

// NettingRawTextGTE applies the GTE predicate on the "netting_raw_text" field.
func NettingRawTextGTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldGTE(FieldNettingRawText, v))
}

// NettingRawTextLT applies the LT predicate on the "netting_raw_text" field.
func NettingRawTextLT(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLT(FieldNettingRawText, v))
}

// NettingRawTextLTE applies the LTE predicate on the "netting_raw_text" field.
func NettingRawTextLTE(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldLTE(FieldNettingRawText, v))
}

// NettingRawTextContains applies the Contains predicate on the "netting_raw_text" field.
func NettingRawTextContains(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContains(FieldNettingRawText, v))
}

// NettingRawTextHasPrefix applies the HasPrefix predicate on the "netting_raw_text" field.
func NettingRawTextHasPrefix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasPrefix(FieldNettingRawText, v))
}

// NettingRawTextHasSuffix applies the HasSuffix predicate on the "netting_raw_text" field.
func NettingRawTextHasSuffix(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldHasSuffix(FieldNettingRawText, v))
}

// NettingRawTextIsNil applies the IsNil predicate on the "netting_raw_text" field.
func NettingRawTextIsNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldIsNull(FieldNettingRawText))
}

// NettingRawTextNotNil applies the NotNil predicate on the "netting_raw_text" field.
func NettingRawTextNotNil() predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldNotNull(FieldNettingRawText))
}

// NettingRawTextEqualFold applies the EqualFold predicate on the "netting_raw_text" field.
func NettingRawTextEqualFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldEqualFold(FieldNettingRawText, v))
}

// NettingRawTextContainsFold applies the ContainsFold predicate on the "netting_raw_text" field.
func NettingRawTextContainsFold(v string) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.FieldContainsFold(FieldNettingRawText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WoltInvoice) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WoltInvoice) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WoltInvoice) predicate.WoltInvoice {
	return predicate.WoltInvoice(sql.NotPredicates(p))
}
