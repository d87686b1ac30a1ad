// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
	"github.com/google/uuid"
)

// WoltInvoiceCreate is the builder for creating a WoltInvoice entity.
type WoltInvoiceCreate struct {
	config
	mutation *WoltInvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *WoltInvoiceCreate) SetInvoiceNumber(v string) *WoltInvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *WoltInvoiceCreate) SetInvoiceDate(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableInvoiceDate(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *WoltInvoiceCreate) SetPeriodStart(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillablePeriodStart(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *WoltInvoiceCreate) SetPeriodEnd(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillablePeriodEnd(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *WoltInvoiceCreate) SetSupplierName(v string) *WoltInvoiceCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableSupplierName(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *WoltInvoiceCreate) SetTotalAmount(v float64) *WoltInvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableTotalAmount(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WoltInvoiceCreate) SetStatus(v string) *WoltInvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableStatus(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *WoltInvoiceCreate) SetExtractionConfidence(v int) *WoltInvoiceCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableExtractionConfidence(v *int) *WoltInvoiceCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *WoltInvoiceCreate) SetNeedsReview(v bool) *WoltInvoiceCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNeedsReview(v *bool) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *WoltInvoiceCreate) SetRawText(v string) *WoltInvoiceCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableRawText(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *WoltInvoiceCreate) SetSourceFilename(v string) *WoltInvoiceCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableSourceFilename(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetSourceFilename(*v)
	}
	return _c
}

// SetEmailSubject sets the "email_subject" field.
func (_c *WoltInvoiceCreate) SetEmailSubject(v string) *WoltInvoiceCreate {
	_c.mutation.SetEmailSubject(v)
	return _c
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEmailSubject(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEmailSubject(*v)
	}
	return _c
}

// SetEmailSender sets the "email_sender" field.
func (_c *WoltInvoiceCreate) SetEmailSender(v string) *WoltInvoiceCreate {
	_c.mutation.SetEmailSender(v)
	return _c
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEmailSender(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEmailSender(*v)
	}
	return _c
}

// SetEmailDate sets the "email_date" field.
func (_c *WoltInvoiceCreate) SetEmailDate(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetEmailDate(v)
	return _c
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEmailDate(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEmailDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WoltInvoiceCreate) SetCreatedAt(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableCreatedAt(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WoltInvoiceCreate) SetUpdatedAt(v time.Time) *WoltInvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableUpdatedAt(v *time.Time) *WoltInvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSupplierAddress sets the "supplier_address" field.
func (_c *WoltInvoiceCreate) SetSupplierAddress(v string) *WoltInvoiceCreate {
	_c.mutation.SetSupplierAddress(v)
	return _c
}

// SetNillableSupplierAddress sets the "supplier_address" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableSupplierAddress(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetSupplierAddress(*v)
	}
	return _c
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_c *WoltInvoiceCreate) SetSupplierVatID(v string) *WoltInvoiceCreate {
	_c.mutation.SetSupplierVatID(v)
	return _c
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableSupplierVatID(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetSupplierVatID(*v)
	}
	return _c
}

// SetRestaurantName sets the "restaurant_name" field.
func (_c *WoltInvoiceCreate) SetRestaurantName(v string) *WoltInvoiceCreate {
	_c.mutation.SetRestaurantName(v)
	return _c
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableRestaurantName(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetRestaurantName(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *WoltInvoiceCreate) SetBusinessID(v string) *WoltInvoiceCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableBusinessID(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetBusinessID(*v)
	}
	return _c
}

// SetGoodsNet7 sets the "goods_net_7" field.
func (_c *WoltInvoiceCreate) SetGoodsNet7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsNet7(v)
	return _c
}

// SetNillableGoodsNet7 sets the "goods_net_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsNet7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsNet7(*v)
	}
	return _c
}

// SetGoodsVat7 sets the "goods_vat_7" field.
func (_c *WoltInvoiceCreate) SetGoodsVat7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsVat7(v)
	return _c
}

// SetNillableGoodsVat7 sets the "goods_vat_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsVat7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsVat7(*v)
	}
	return _c
}

// SetGoodsGross7 sets the "goods_gross_7" field.
func (_c *WoltInvoiceCreate) SetGoodsGross7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsGross7(v)
	return _c
}

// SetNillableGoodsGross7 sets the "goods_gross_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsGross7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsGross7(*v)
	}
	return _c
}

// SetGoodsNet19 sets the "goods_net_19" field.
func (_c *WoltInvoiceCreate) SetGoodsNet19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsNet19(v)
	return _c
}

// SetNillableGoodsNet19 sets the "goods_net_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsNet19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsNet19(*v)
	}
	return _c
}

// SetGoodsVat19 sets the "goods_vat_19" field.
func (_c *WoltInvoiceCreate) SetGoodsVat19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsVat19(v)
	return _c
}

// SetNillableGoodsVat19 sets the "goods_vat_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsVat19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsVat19(*v)
	}
	return _c
}

// SetGoodsGross19 sets the "goods_gross_19" field.
func (_c *WoltInvoiceCreate) SetGoodsGross19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsGross19(v)
	return _c
}

// SetNillableGoodsGross19 sets the "goods_gross_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsGross19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsGross19(*v)
	}
	return _c
}

// SetGoodsNetTotal sets the "goods_net_total" field.
func (_c *WoltInvoiceCreate) SetGoodsNetTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsNetTotal(v)
	return _c
}

// SetNillableGoodsNetTotal sets the "goods_net_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsNetTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsNetTotal(*v)
	}
	return _c
}

// SetGoodsVatTotal sets the "goods_vat_total" field.
func (_c *WoltInvoiceCreate) SetGoodsVatTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsVatTotal(v)
	return _c
}

// SetNillableGoodsVatTotal sets the "goods_vat_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsVatTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsVatTotal(*v)
	}
	return _c
}

// SetGoodsGrossTotal sets the "goods_gross_total" field.
func (_c *WoltInvoiceCreate) SetGoodsGrossTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetGoodsGrossTotal(v)
	return _c
}

// SetNillableGoodsGrossTotal sets the "goods_gross_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableGoodsGrossTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetGoodsGrossTotal(*v)
	}
	return _c
}

// SetDistributionNetTotal sets the "distribution_net_total" field.
func (_c *WoltInvoiceCreate) SetDistributionNetTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetDistributionNetTotal(v)
	return _c
}

// SetNillableDistributionNetTotal sets the "distribution_net_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableDistributionNetTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetDistributionNetTotal(*v)
	}
	return _c
}

// SetDistributionVatTotal sets the "distribution_vat_total" field.
func (_c *WoltInvoiceCreate) SetDistributionVatTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetDistributionVatTotal(v)
	return _c
}

// SetNillableDistributionVatTotal sets the "distribution_vat_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableDistributionVatTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetDistributionVatTotal(*v)
	}
	return _c
}

// SetDistributionGrossTotal sets the "distribution_gross_total" field.
func (_c *WoltInvoiceCreate) SetDistributionGrossTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetDistributionGrossTotal(v)
	return _c
}

// SetNillableDistributionGrossTotal sets the "distribution_gross_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableDistributionGrossTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetDistributionGrossTotal(*v)
	}
	return _c
}

// SetNetpriceNet7 sets the "netprice_net_7" field.
func (_c *WoltInvoiceCreate) SetNetpriceNet7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceNet7(v)
	return _c
}

// SetNillableNetpriceNet7 sets the "netprice_net_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceNet7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceNet7(*v)
	}
	return _c
}

// SetNetpriceVat7 sets the "netprice_vat_7" field.
func (_c *WoltInvoiceCreate) SetNetpriceVat7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceVat7(v)
	return _c
}

// SetNillableNetpriceVat7 sets the "netprice_vat_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceVat7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceVat7(*v)
	}
	return _c
}

// SetNetpriceGross7 sets the "netprice_gross_7" field.
func (_c *WoltInvoiceCreate) SetNetpriceGross7(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceGross7(v)
	return _c
}

// SetNillableNetpriceGross7 sets the "netprice_gross_7" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceGross7(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceGross7(*v)
	}
	return _c
}

// SetNetpriceNet19 sets the "netprice_net_19" field.
func (_c *WoltInvoiceCreate) SetNetpriceNet19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceNet19(v)
	return _c
}

// SetNillableNetpriceNet19 sets the "netprice_net_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceNet19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceNet19(*v)
	}
	return _c
}

// SetNetpriceVat19 sets the "netprice_vat_19" field.
func (_c *WoltInvoiceCreate) SetNetpriceVat19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceVat19(v)
	return _c
}

// SetNillableNetpriceVat19 sets the "netprice_vat_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceVat19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceVat19(*v)
	}
	return _c
}

// SetNetpriceGross19 sets the "netprice_gross_19" field.
func (_c *WoltInvoiceCreate) SetNetpriceGross19(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceGross19(v)
	return _c
}

// SetNillableNetpriceGross19 sets the "netprice_gross_19" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceGross19(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceGross19(*v)
	}
	return _c
}

// SetNetpriceNetTotal sets the "netprice_net_total" field.
func (_c *WoltInvoiceCreate) SetNetpriceNetTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceNetTotal(v)
	return _c
}

// SetNillableNetpriceNetTotal sets the "netprice_net_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceNetTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceNetTotal(*v)
	}
	return _c
}

// SetNetpriceVatTotal sets the "netprice_vat_total" field.
func (_c *WoltInvoiceCreate) SetNetpriceVatTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceVatTotal(v)
	return _c
}

// SetNillableNetpriceVatTotal sets the "netprice_vat_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceVatTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceVatTotal(*v)
	}
	return _c
}

// SetNetpriceGrossTotal sets the "netprice_gross_total" field.
func (_c *WoltInvoiceCreate) SetNetpriceGrossTotal(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNetpriceGrossTotal(v)
	return _c
}

// SetNillableNetpriceGrossTotal sets the "netprice_gross_total" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNetpriceGrossTotal(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNetpriceGrossTotal(*v)
	}
	return _c
}

// SetEndAmountNet sets the "end_amount_net" field.
func (_c *WoltInvoiceCreate) SetEndAmountNet(v float64) *WoltInvoiceCreate {
	_c.mutation.SetEndAmountNet(v)
	return _c
}

// SetNillableEndAmountNet sets the "end_amount_net" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEndAmountNet(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEndAmountNet(*v)
	}
	return _c
}

// SetEndAmountVat sets the "end_amount_vat" field.
func (_c *WoltInvoiceCreate) SetEndAmountVat(v float64) *WoltInvoiceCreate {
	_c.mutation.SetEndAmountVat(v)
	return _c
}

// SetNillableEndAmountVat sets the "end_amount_vat" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEndAmountVat(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEndAmountVat(*v)
	}
	return _c
}

// SetEndAmountGross sets the "end_amount_gross" field.
func (_c *WoltInvoiceCreate) SetEndAmountGross(v float64) *WoltInvoiceCreate {
	_c.mutation.SetEndAmountGross(v)
	return _c
}

// SetNillableEndAmountGross sets the "end_amount_gross" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableEndAmountGross(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetEndAmountGross(*v)
	}
	return _c
}

// SetNettingMerchantInvoice sets the "netting_merchant_invoice" field.
func (_c *WoltInvoiceCreate) SetNettingMerchantInvoice(v string) *WoltInvoiceCreate {
	_c.mutation.SetNettingMerchantInvoice(v)
	return _c
}

// SetNillableNettingMerchantInvoice sets the "netting_merchant_invoice" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingMerchantInvoice(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingMerchantInvoice(*v)
	}
	return _c
}

// SetNettingMerchantNet sets the "netting_merchant_net" field.
func (_c *WoltInvoiceCreate) SetNettingMerchantNet(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingMerchantNet(v)
	return _c
}

// SetNillableNettingMerchantNet sets the "netting_merchant_net" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingMerchantNet(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingMerchantNet(*v)
	}
	return _c
}

// SetNettingMerchantVat sets the "netting_merchant_vat" field.
func (_c *WoltInvoiceCreate) SetNettingMerchantVat(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingMerchantVat(v)
	return _c
}

// SetNillableNettingMerchantVat sets the "netting_merchant_vat" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingMerchantVat(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingMerchantVat(*v)
	}
	return _c
}

// SetNettingMerchantGross sets the "netting_merchant_gross" field.
func (_c *WoltInvoiceCreate) SetNettingMerchantGross(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingMerchantGross(v)
	return _c
}

// SetNillableNettingMerchantGross sets the "netting_merchant_gross" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingMerchantGross(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingMerchantGross(*v)
	}
	return _c
}

// SetNettingWoltInvoice sets the "netting_wolt_invoice" field.
func (_c *WoltInvoiceCreate) SetNettingWoltInvoice(v string) *WoltInvoiceCreate {
	_c.mutation.SetNettingWoltInvoice(v)
	return _c
}

// SetNillableNettingWoltInvoice sets the "netting_wolt_invoice" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingWoltInvoice(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingWoltInvoice(*v)
	}
	return _c
}

// SetNettingWoltNet sets the "netting_wolt_net" field.
func (_c *WoltInvoiceCreate) SetNettingWoltNet(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingWoltNet(v)
	return _c
}

// SetNillableNettingWoltNet sets the "netting_wolt_net" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingWoltNet(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingWoltNet(*v)
	}
	return _c
}

// SetNettingWoltVat sets the "netting_wolt_vat" field.
func (_c *WoltInvoiceCreate) SetNettingWoltVat(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingWoltVat(v)
	return _c
}

// SetNillableNettingWoltVat sets the "netting_wolt_vat" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingWoltVat(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingWoltVat(*v)
	}
	return _c
}

// SetNettingWoltGross sets the "netting_wolt_gross" field.
func (_c *WoltInvoiceCreate) SetNettingWoltGross(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingWoltGross(v)
	return _c
}

// SetNillableNettingWoltGross sets the "netting_wolt_gross" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingWoltGross(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingWoltGross(*v)
	}
	return _c
}

// SetNettingNetPayout sets the "netting_net_payout" field.
func (_c *WoltInvoiceCreate) SetNettingNetPayout(v float64) *WoltInvoiceCreate {
	_c.mutation.SetNettingNetPayout(v)
	return _c
}

// SetNillableNettingNetPayout sets the "netting_net_payout" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingNetPayout(v *float64) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingNetPayout(*v)
	}
	return _c
}

// SetNettingParsedJSON sets the "netting_parsed_json" field.
func (_c *WoltInvoiceCreate) SetNettingParsedJSON(v map[string]interface{}) *WoltInvoiceCreate {
	_c.mutation.SetNettingParsedJSON(v)
	return _c
}

// SetNettingRawText sets the "netting_raw_text" field.
func (_c *WoltInvoiceCreate) SetNettingRawText(v string) *WoltInvoiceCreate {
	_c.mutation.SetNettingRawText(v)
	return _c
}

// SetNillableNettingRawText sets the "netting_raw_text" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableNettingRawText(v *string) *WoltInvoiceCreate {
	if v != nil {
		_c.SetNettingRawText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WoltInvoiceCreate) SetID(v uuid.UUID) *WoltInvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WoltInvoiceCreate) SetNillableID(v *uuid.UUID) *WoltInvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WoltInvoiceMutation object of the builder.
func (_c *WoltInvoiceCreate) Mutation() *WoltInvoiceMutation {
	return _c.mutation
}

// Save creates the WoltInvoice in the database.
func (_c *WoltInvoiceCreate) Save(ctx context.Context) (*WoltInvoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WoltInvoiceCreate) SaveX(ctx context.Context) *WoltInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WoltInvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WoltInvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WoltInvoiceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := woltinvoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := woltinvoice.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := woltinvoice.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := woltinvoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := woltinvoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := woltinvoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WoltInvoiceCreate) check() error {
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "WoltInvoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := woltinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WoltInvoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := woltinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "WoltInvoice.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "WoltInvoice.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WoltInvoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WoltInvoice.updated_at"`)}
	}
	return nil
}

func (_c *WoltInvoiceCreate) sqlSave(ctx context.Context) (*WoltInvoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WoltInvoiceCreate) createSpec() (*WoltInvoice, *sqlgraph.CreateSpec) {
	var (
		_node = &WoltInvoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(woltinvoice.Table, sqlgraph.NewFieldSpec(woltinvoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(woltinvoice.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(woltinvoice.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(woltinvoice.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(woltinvoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(woltinvoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(woltinvoice.FieldExtractionConfidence, field.TypeInt, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(woltinvoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(woltinvoice.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(woltinvoice.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.EmailSubject(); ok {
		_spec.SetField(woltinvoice.FieldEmailSubject, field.TypeString, value)
		_node.EmailSubject = value
	}
	if value, ok := _c.mutation.EmailSender(); ok {
		_spec.SetField(woltinvoice.FieldEmailSender, field.TypeString, value)
		_node.EmailSender = value
	}
	if value, ok := _c.mutation.EmailDate(); ok {
		_spec.SetField(woltinvoice.FieldEmailDate, field.TypeTime, value)
		_node.EmailDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(woltinvoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(woltinvoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SupplierAddress(); ok {
		_spec.SetField(woltinvoice.FieldSupplierAddress, field.TypeString, value)
		_node.SupplierAddress = value
	}
	if value, ok := _c.mutation.SupplierVatID(); ok {
		_spec.SetField(woltinvoice.FieldSupplierVatID, field.TypeString, value)
		_node.SupplierVatID = value
	}
	if value, ok := _c.mutation.RestaurantName(); ok {
		_spec.SetField(woltinvoice.FieldRestaurantName, field.TypeString, value)
		_node.RestaurantName = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(woltinvoice.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.GoodsNet7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet7, field.TypeFloat64, value)
		_node.GoodsNet7 = &value
	}
	if value, ok := _c.mutation.GoodsVat7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat7, field.TypeFloat64, value)
		_node.GoodsVat7 = &value
	}
	if value, ok := _c.mutation.GoodsGross7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross7, field.TypeFloat64, value)
		_node.GoodsGross7 = &value
	}
	if value, ok := _c.mutation.GoodsNet19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet19, field.TypeFloat64, value)
		_node.GoodsNet19 = &value
	}
	if value, ok := _c.mutation.GoodsVat19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat19, field.TypeFloat64, value)
		_node.GoodsVat19 = &value
	}
	if value, ok := _c.mutation.GoodsGross19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross19, field.TypeFloat64, value)
		_node.GoodsGross19 = &value
	}
	if value, ok := _c.mutation.GoodsNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64, value)
		_node.GoodsNetTotal = &value
	}
	if value, ok := _c.mutation.GoodsVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64, value)
		_node.GoodsVatTotal = &value
	}
	if value, ok := _c.mutation.GoodsGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64, value)
		_node.GoodsGrossTotal = &value
	}
	if value, ok := _c.mutation.DistributionNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64, value)
		_node.DistributionNetTotal = &value
	}
	if value, ok := _c.mutation.DistributionVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64, value)
		_node.DistributionVatTotal = &value
	}
	if value, ok := _c.mutation.DistributionGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64, value)
		_node.DistributionGrossTotal = &value
	}
	if value, ok := _c.mutation.NetpriceNet7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64, value)
		_node.NetpriceNet7 = &value
	}
	if value, ok := _c.mutation.NetpriceVat7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64, value)
		_node.NetpriceVat7 = &value
	}
	if value, ok := _c.mutation.NetpriceGross7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64, value)
		_node.NetpriceGross7 = &value
	}
	if value, ok := _c.mutation.NetpriceNet19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64, value)
		_node.NetpriceNet19 = &value
	}
	if value, ok := _c.mutation.NetpriceVat19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64, value)
		_node.NetpriceVat19 = &value
	}
	if value, ok := _c.mutation.NetpriceGross19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64, value)
		_node.NetpriceGross19 = &value
	}
	if value, ok := _c.mutation.NetpriceNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64, value)
		_node.NetpriceNetTotal = &value
	}
	if value, ok := _c.mutation.NetpriceVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64, value)
		_node.NetpriceVatTotal = &value
	}
	if value, ok := _c.mutation.NetpriceGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64, value)
		_node.NetpriceGrossTotal = &value
	}
	if value, ok := _c.mutation.EndAmountNet(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountNet, field.TypeFloat64, value)
		_node.EndAmountNet = &value
	}
	if value, ok := _c.mutation.EndAmountVat(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountVat, field.TypeFloat64, value)
		_node.EndAmountVat = &value
	}
	if value, ok := _c.mutation.EndAmountGross(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountGross, field.TypeFloat64, value)
		_node.EndAmountGross = &value
	}
	if value, ok := _c.mutation.NettingMerchantInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantInvoice, field.TypeString, value)
		_node.NettingMerchantInvoice = value
	}
	if value, ok := _c.mutation.NettingMerchantNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64, value)
		_node.NettingMerchantNet = &value
	}
	if value, ok := _c.mutation.NettingMerchantVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64, value)
		_node.NettingMerchantVat = &value
	}
	if value, ok := _c.mutation.NettingMerchantGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64, value)
		_node.NettingMerchantGross = &value
	}
	if value, ok := _c.mutation.NettingWoltInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltInvoice, field.TypeString, value)
		_node.NettingWoltInvoice = value
	}
	if value, ok := _c.mutation.NettingWoltNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64, value)
		_node.NettingWoltNet = &value
	}
	if value, ok := _c.mutation.NettingWoltVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64, value)
		_node.NettingWoltVat = &value
	}
	if value, ok := _c.mutation.NettingWoltGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64, value)
		_node.NettingWoltGross = &value
	}
	if value, ok := _c.mutation.NettingNetPayout(); ok {
		_spec.SetField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64, value)
		_node.NettingNetPayout = &value
	}
	if value, ok := _c.mutation.NettingParsedJSON(); ok {
		_spec.SetField(woltinvoice.FieldNettingParsedJSON, field.TypeJSON, value)
		_node.NettingParsedJSON = value
	}
	if value, ok := _c.mutation.NettingRawText(); ok {
		_spec.SetField(woltinvoice.FieldNettingRawText, field.TypeString, value)
		_node.NettingRawText = value
	}
	return _node, _spec
}

// WoltInvoiceCreateBulk is the builder for creating many WoltInvoice entities in bulk.
type WoltInvoiceCreateBulk struct {
	config
	err      error
	builders []*WoltInvoiceCreate
}

// Save creates the WoltInvoice entities in the database.
func (_c *WoltInvoiceCreateBulk) Save(ctx context.Context) ([]*WoltInvoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WoltInvoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WoltInvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WoltInvoiceCreateBulk) SaveX(ctx context.Context) []*WoltInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WoltInvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WoltInvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
