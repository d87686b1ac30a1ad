// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
)

// WoltInvoiceUpdate is the builder for updating WoltInvoice entities.
type WoltInvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *WoltInvoiceMutation
}

// Where appends a list predicates to the WoltInvoiceUpdate builder.
func (_u *WoltInvoiceUpdate) Where(ps ...predicate.WoltInvoice) *WoltInvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *WoltInvoiceUpdate) SetInvoiceNumber(v string) *WoltInvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableInvoiceNumber(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *WoltInvoiceUpdate) SetInvoiceDate(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *WoltInvoiceUpdate) ClearInvoiceDate() *WoltInvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *WoltInvoiceUpdate) SetPeriodStart(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillablePeriodStart(v *time.Time) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *WoltInvoiceUpdate) ClearPeriodStart() *WoltInvoiceUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *WoltInvoiceUpdate) SetPeriodEnd(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillablePeriodEnd(v *time.Time) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *WoltInvoiceUpdate) ClearPeriodEnd() *WoltInvoiceUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *WoltInvoiceUpdate) SetSupplierName(v string) *WoltInvoiceUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableSupplierName(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *WoltInvoiceUpdate) ClearSupplierName() *WoltInvoiceUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *WoltInvoiceUpdate) SetTotalAmount(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableTotalAmount(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *WoltInvoiceUpdate) AddTotalAmount(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *WoltInvoiceUpdate) ClearTotalAmount() *WoltInvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WoltInvoiceUpdate) SetStatus(v string) *WoltInvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableStatus(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *WoltInvoiceUpdate) SetExtractionConfidence(v int) *WoltInvoiceUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableExtractionConfidence(v *int) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *WoltInvoiceUpdate) AddExtractionConfidence(v int) *WoltInvoiceUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *WoltInvoiceUpdate) SetNeedsReview(v bool) *WoltInvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNeedsReview(v *bool) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *WoltInvoiceUpdate) SetRawText(v string) *WoltInvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableRawText(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *WoltInvoiceUpdate) ClearRawText() *WoltInvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *WoltInvoiceUpdate) SetSourceFilename(v string) *WoltInvoiceUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableSourceFilename(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *WoltInvoiceUpdate) ClearSourceFilename() *WoltInvoiceUpdate {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *WoltInvoiceUpdate) SetEmailSubject(v string) *WoltInvoiceUpdate {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEmailSubject(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *WoltInvoiceUpdate) ClearEmailSubject() *WoltInvoiceUpdate {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *WoltInvoiceUpdate) SetEmailSender(v string) *WoltInvoiceUpdate {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEmailSender(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *WoltInvoiceUpdate) ClearEmailSender() *WoltInvoiceUpdate {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *WoltInvoiceUpdate) SetEmailDate(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEmailDate(v *time.Time) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *WoltInvoiceUpdate) ClearEmailDate() *WoltInvoiceUpdate {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WoltInvoiceUpdate) SetCreatedAt(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableCreatedAt(v *time.Time) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WoltInvoiceUpdate) SetUpdatedAt(v time.Time) *WoltInvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplierAddress sets the "supplier_address" field.
func (_u *WoltInvoiceUpdate) SetSupplierAddress(v string) *WoltInvoiceUpdate {
	_u.mutation.SetSupplierAddress(v)
	return _u
}

// SetNillableSupplierAddress sets the "supplier_address" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableSupplierAddress(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetSupplierAddress(*v)
	}
	return _u
}

// ClearSupplierAddress clears the value of the "supplier_address" field.
func (_u *WoltInvoiceUpdate) ClearSupplierAddress() *WoltInvoiceUpdate {
	_u.mutation.ClearSupplierAddress()
	return _u
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_u *WoltInvoiceUpdate) SetSupplierVatID(v string) *WoltInvoiceUpdate {
	_u.mutation.SetSupplierVatID(v)
	return _u
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableSupplierVatID(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetSupplierVatID(*v)
	}
	return _u
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (_u *WoltInvoiceUpdate) ClearSupplierVatID() *WoltInvoiceUpdate {
	_u.mutation.ClearSupplierVatID()
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *WoltInvoiceUpdate) SetRestaurantName(v string) *WoltInvoiceUpdate {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableRestaurantName(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *WoltInvoiceUpdate) ClearRestaurantName() *WoltInvoiceUpdate {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *WoltInvoiceUpdate) SetBusinessID(v string) *WoltInvoiceUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableBusinessID(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *WoltInvoiceUpdate) ClearBusinessID() *WoltInvoiceUpdate {
	_u.mutation.ClearBusinessID()
	return _u
}

// SetGoodsNet7 sets the "goods_net_7" field.
func (_u *WoltInvoiceUpdate) SetGoodsNet7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsNet7()
	_u.mutation.SetGoodsNet7(v)
	return _u
}

// SetNillableGoodsNet7 sets the "goods_net_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsNet7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsNet7(*v)
	}
	return _u
}

// AddGoodsNet7 adds value to the "goods_net_7" field.
func (_u *WoltInvoiceUpdate) AddGoodsNet7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsNet7(v)
	return _u
}

// ClearGoodsNet7 clears the value of the "goods_net_7" field.
func (_u *WoltInvoiceUpdate) ClearGoodsNet7() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsNet7()
	return _u
}

// SetGoodsVat7 sets the "goods_vat_7" field.
func (_u *WoltInvoiceUpdate) SetGoodsVat7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsVat7()
	_u.mutation.SetGoodsVat7(v)
	return _u
}

// SetNillableGoodsVat7 sets the "goods_vat_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsVat7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsVat7(*v)
	}
	return _u
}

// AddGoodsVat7 adds value to the "goods_vat_7" field.
func (_u *WoltInvoiceUpdate) AddGoodsVat7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsVat7(v)
	return _u
}

// ClearGoodsVat7 clears the value of the "goods_vat_7" field.
func (_u *WoltInvoiceUpdate) ClearGoodsVat7() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsVat7()
	return _u
}

// SetGoodsGross7 sets the "goods_gross_7" field.
func (_u *WoltInvoiceUpdate) SetGoodsGross7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsGross7()
	_u.mutation.SetGoodsGross7(v)
	return _u
}

// SetNillableGoodsGross7 sets the "goods_gross_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsGross7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsGross7(*v)
	}
	return _u
}

// AddGoodsGross7 adds value to the "goods_gross_7" field.
func (_u *WoltInvoiceUpdate) AddGoodsGross7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsGross7(v)
	return _u
}

// ClearGoodsGross7 clears the value of the "goods_gross_7" field.
func (_u *WoltInvoiceUpdate) ClearGoodsGross7() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsGross7()
	return _u
}

// SetGoodsNet19 sets the "goods_net_19" field.
func (_u *WoltInvoiceUpdate) SetGoodsNet19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsNet19()
	_u.mutation.SetGoodsNet19(v)
	return _u
}

// SetNillableGoodsNet19 sets the "goods_net_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsNet19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsNet19(*v)
	}
	return _u
}

// AddGoodsNet19 adds value to the "goods_net_19" field.
func (_u *WoltInvoiceUpdate) AddGoodsNet19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsNet19(v)
	return _u
}

// ClearGoodsNet19 clears the value of the "goods_net_19" field.
func (_u *WoltInvoiceUpdate) ClearGoodsNet19() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsNet19()
	return _u
}

// SetGoodsVat19 sets the "goods_vat_19" field.
func (_u *WoltInvoiceUpdate) SetGoodsVat19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsVat19()
	_u.mutation.SetGoodsVat19(v)
	return _u
}

// SetNillableGoodsVat19 sets the "goods_vat_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsVat19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsVat19(*v)
	}
	return _u
}

// AddGoodsVat19 adds value to the "goods_vat_19" field.
func (_u *WoltInvoiceUpdate) AddGoodsVat19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsVat19(v)
	return _u
}

// ClearGoodsVat19 clears the value of the "goods_vat_19" field.
func (_u *WoltInvoiceUpdate) ClearGoodsVat19() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsVat19()
	return _u
}

// SetGoodsGross19 sets the "goods_gross_19" field.
func (_u *WoltInvoiceUpdate) SetGoodsGross19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsGross19()
	_u.mutation.SetGoodsGross19(v)
	return _u
}

// SetNillableGoodsGross19 sets the "goods_gross_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsGross19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsGross19(*v)
	}
	return _u
}

// AddGoodsGross19 adds value to the "goods_gross_19" field.
func (_u *WoltInvoiceUpdate) AddGoodsGross19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsGross19(v)
	return _u
}

// ClearGoodsGross19 clears the value of the "goods_gross_19" field.
func (_u *WoltInvoiceUpdate) ClearGoodsGross19() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsGross19()
	return _u
}

// SetGoodsNetTotal sets the "goods_net_total" field.
func (_u *WoltInvoiceUpdate) SetGoodsNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsNetTotal()
	_u.mutation.SetGoodsNetTotal(v)
	return _u
}

// SetNillableGoodsNetTotal sets the "goods_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsNetTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsNetTotal(*v)
	}
	return _u
}

// AddGoodsNetTotal adds value to the "goods_net_total" field.
func (_u *WoltInvoiceUpdate) AddGoodsNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsNetTotal(v)
	return _u
}

// ClearGoodsNetTotal clears the value of the "goods_net_total" field.
func (_u *WoltInvoiceUpdate) ClearGoodsNetTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsNetTotal()
	return _u
}

// SetGoodsVatTotal sets the "goods_vat_total" field.
func (_u *WoltInvoiceUpdate) SetGoodsVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsVatTotal()
	_u.mutation.SetGoodsVatTotal(v)
	return _u
}

// SetNillableGoodsVatTotal sets the "goods_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsVatTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsVatTotal(*v)
	}
	return _u
}

// AddGoodsVatTotal adds value to the "goods_vat_total" field.
func (_u *WoltInvoiceUpdate) AddGoodsVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsVatTotal(v)
	return _u
}

// ClearGoodsVatTotal clears the value of the "goods_vat_total" field.
func (_u *WoltInvoiceUpdate) ClearGoodsVatTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsVatTotal()
	return _u
}

// SetGoodsGrossTotal sets the "goods_gross_total" field.
func (_u *WoltInvoiceUpdate) SetGoodsGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetGoodsGrossTotal()
	_u.mutation.SetGoodsGrossTotal(v)
	return _u
}

// SetNillableGoodsGrossTotal sets the "goods_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableGoodsGrossTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetGoodsGrossTotal(*v)
	}
	return _u
}

// AddGoodsGrossTotal adds value to the "goods_gross_total" field.
func (_u *WoltInvoiceUpdate) AddGoodsGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddGoodsGrossTotal(v)
	return _u
}

// ClearGoodsGrossTotal clears the value of the "goods_gross_total" field.
func (_u *WoltInvoiceUpdate) ClearGoodsGrossTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearGoodsGrossTotal()
	return _u
}

// SetDistributionNetTotal sets the "distribution_net_total" field.
func (_u *WoltInvoiceUpdate) SetDistributionNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetDistributionNetTotal()
	_u.mutation.SetDistributionNetTotal(v)
	return _u
}

// SetNillableDistributionNetTotal sets the "distribution_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableDistributionNetTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetDistributionNetTotal(*v)
	}
	return _u
}

// AddDistributionNetTotal adds value to the "distribution_net_total" field.
func (_u *WoltInvoiceUpdate) AddDistributionNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddDistributionNetTotal(v)
	return _u
}

// ClearDistributionNetTotal clears the value of the "distribution_net_total" field.
func (_u *WoltInvoiceUpdate) ClearDistributionNetTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearDistributionNetTotal()
	return _u
}

// SetDistributionVatTotal sets the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdate) SetDistributionVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetDistributionVatTotal()
	_u.mutation.SetDistributionVatTotal(v)
	return _u
}

// SetNillableDistributionVatTotal sets the "distribution_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableDistributionVatTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetDistributionVatTotal(*v)
	}
	return _u
}

// AddDistributionVatTotal adds value to the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdate) AddDistributionVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddDistributionVatTotal(v)
	return _u
}

// ClearDistributionVatTotal clears the value of the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdate) ClearDistributionVatTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearDistributionVatTotal()
	return _u
}

// SetDistributionGrossTotal sets the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdate) SetDistributionGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetDistributionGrossTotal()
	_u.mutation.SetDistributionGrossTotal(v)
	return _u
}

// SetNillableDistributionGrossTotal sets the "distribution_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableDistributionGrossTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetDistributionGrossTotal(*v)
	}
	return _u
}

// AddDistributionGrossTotal adds value to the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdate) AddDistributionGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddDistributionGrossTotal(v)
	return _u
}

// ClearDistributionGrossTotal clears the value of the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdate) ClearDistributionGrossTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearDistributionGrossTotal()
	return _u
}

// SetNetpriceNet7 sets the "netprice_net_7" field.
func (_u *WoltInvoiceUpdate) SetNetpriceNet7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceNet7()
	_u.mutation.SetNetpriceNet7(v)
	return _u
}

// SetNillableNetpriceNet7 sets the "netprice_net_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceNet7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceNet7(*v)
	}
	return _u
}

// AddNetpriceNet7 adds value to the "netprice_net_7" field.
func (_u *WoltInvoiceUpdate) AddNetpriceNet7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceNet7(v)
	return _u
}

// ClearNetpriceNet7 clears the value of the "netprice_net_7" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceNet7() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceNet7()
	return _u
}

// SetNetpriceVat7 sets the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdate) SetNetpriceVat7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceVat7()
	_u.mutation.SetNetpriceVat7(v)
	return _u
}

// SetNillableNetpriceVat7 sets the "netprice_vat_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceVat7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceVat7(*v)
	}
	return _u
}

// AddNetpriceVat7 adds value to the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdate) AddNetpriceVat7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceVat7(v)
	return _u
}

// ClearNetpriceVat7 clears the value of the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceVat7() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceVat7()
	return _u
}

// SetNetpriceGross7 sets the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdate) SetNetpriceGross7(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceGross7()
	_u.mutation.SetNetpriceGross7(v)
	return _u
}

// SetNillableNetpriceGross7 sets the "netprice_gross_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceGross7(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceGross7(*v)
	}
	return _u
}

// AddNetpriceGross7 adds value to the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdate) AddNetpriceGross7(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceGross7(v)
	return _u
}

// ClearNetpriceGross7 clears the value of the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceGross7() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceGross7()
	return _u
}

// SetNetpriceNet19 sets the "netprice_net_19" field.
func (_u *WoltInvoiceUpdate) SetNetpriceNet19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceNet19()
	_u.mutation.SetNetpriceNet19(v)
	return _u
}

// SetNillableNetpriceNet19 sets the "netprice_net_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceNet19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceNet19(*v)
	}
	return _u
}

// AddNetpriceNet19 adds value to the "netprice_net_19" field.
func (_u *WoltInvoiceUpdate) AddNetpriceNet19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceNet19(v)
	return _u
}

// ClearNetpriceNet19 clears the value of the "netprice_net_19" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceNet19() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceNet19()
	return _u
}

// SetNetpriceVat19 sets the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdate) SetNetpriceVat19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceVat19()
	_u.mutation.SetNetpriceVat19(v)
	return _u
}

// SetNillableNetpriceVat19 sets the "netprice_vat_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceVat19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceVat19(*v)
	}
	return _u
}

// AddNetpriceVat19 adds value to the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdate) AddNetpriceVat19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceVat19(v)
	return _u
}

// ClearNetpriceVat19 clears the value of the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceVat19() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceVat19()
	return _u
}

// SetNetpriceGross19 sets the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdate) SetNetpriceGross19(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceGross19()
	_u.mutation.SetNetpriceGross19(v)
	return _u
}

// SetNillableNetpriceGross19 sets the "netprice_gross_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceGross19(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceGross19(*v)
	}
	return _u
}

// AddNetpriceGross19 adds value to the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdate) AddNetpriceGross19(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceGross19(v)
	return _u
}

// ClearNetpriceGross19 clears the value of the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceGross19() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceGross19()
	return _u
}

// SetNetpriceNetTotal sets the "netprice_net_total" field.
func (_u *WoltInvoiceUpdate) SetNetpriceNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceNetTotal()
	_u.mutation.SetNetpriceNetTotal(v)
	return _u
}

// SetNillableNetpriceNetTotal sets the "netprice_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceNetTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceNetTotal(*v)
	}
	return _u
}

// AddNetpriceNetTotal adds value to the "netprice_net_total" field.
func (_u *WoltInvoiceUpdate) AddNetpriceNetTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceNetTotal(v)
	return _u
}

// ClearNetpriceNetTotal clears the value of the "netprice_net_total" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceNetTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceNetTotal()
	return _u
}

// SetNetpriceVatTotal sets the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdate) SetNetpriceVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceVatTotal()
	_u.mutation.SetNetpriceVatTotal(v)
	return _u
}

// SetNillableNetpriceVatTotal sets the "netprice_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceVatTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceVatTotal(*v)
	}
	return _u
}

// AddNetpriceVatTotal adds value to the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdate) AddNetpriceVatTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceVatTotal(v)
	return _u
}

// ClearNetpriceVatTotal clears the value of the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceVatTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceVatTotal()
	return _u
}

// SetNetpriceGrossTotal sets the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdate) SetNetpriceGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNetpriceGrossTotal()
	_u.mutation.SetNetpriceGrossTotal(v)
	return _u
}

// SetNillableNetpriceGrossTotal sets the "netprice_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNetpriceGrossTotal(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNetpriceGrossTotal(*v)
	}
	return _u
}

// AddNetpriceGrossTotal adds value to the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdate) AddNetpriceGrossTotal(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNetpriceGrossTotal(v)
	return _u
}

// ClearNetpriceGrossTotal clears the value of the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdate) ClearNetpriceGrossTotal() *WoltInvoiceUpdate {
	_u.mutation.ClearNetpriceGrossTotal()
	return _u
}

// SetEndAmountNet sets the "end_amount_net" field.
func (_u *WoltInvoiceUpdate) SetEndAmountNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetEndAmountNet()
	_u.mutation.SetEndAmountNet(v)
	return _u
}

// SetNillableEndAmountNet sets the "end_amount_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEndAmountNet(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEndAmountNet(*v)
	}
	return _u
}

// AddEndAmountNet adds value to the "end_amount_net" field.
func (_u *WoltInvoiceUpdate) AddEndAmountNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddEndAmountNet(v)
	return _u
}

// ClearEndAmountNet clears the value of the "end_amount_net" field.
func (_u *WoltInvoiceUpdate) ClearEndAmountNet() *WoltInvoiceUpdate {
	_u.mutation.ClearEndAmountNet()
	return _u
}

// SetEndAmountVat sets the "end_amount_vat" field.
func (_u *WoltInvoiceUpdate) SetEndAmountVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetEndAmountVat()
	_u.mutation.SetEndAmountVat(v)
	return _u
}

// SetNillableEndAmountVat sets the "end_amount_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEndAmountVat(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEndAmountVat(*v)
	}
	return _u
}

// AddEndAmountVat adds value to the "end_amount_vat" field.
func (_u *WoltInvoiceUpdate) AddEndAmountVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddEndAmountVat(v)
	return _u
}

// ClearEndAmountVat clears the value of the "end_amount_vat" field.
func (_u *WoltInvoiceUpdate) ClearEndAmountVat() *WoltInvoiceUpdate {
	_u.mutation.ClearEndAmountVat()
	return _u
}

// SetEndAmountGross sets the "end_amount_gross" field.
func (_u *WoltInvoiceUpdate) SetEndAmountGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetEndAmountGross()
	_u.mutation.SetEndAmountGross(v)
	return _u
}

// SetNillableEndAmountGross sets the "end_amount_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableEndAmountGross(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetEndAmountGross(*v)
	}
	return _u
}

// AddEndAmountGross adds value to the "end_amount_gross" field.
func (_u *WoltInvoiceUpdate) AddEndAmountGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddEndAmountGross(v)
	return _u
}

// ClearEndAmountGross clears the value of the "end_amount_gross" field.
func (_u *WoltInvoiceUpdate) ClearEndAmountGross() *WoltInvoiceUpdate {
	_u.mutation.ClearEndAmountGross()
	return _u
}

// SetNettingMerchantInvoice sets the "netting_merchant_invoice" field.
func (_u *WoltInvoiceUpdate) SetNettingMerchantInvoice(v string) *WoltInvoiceUpdate {
	_u.mutation.SetNettingMerchantInvoice(v)
	return _u
}

// SetNillableNettingMerchantInvoice sets the "netting_merchant_invoice" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingMerchantInvoice(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingMerchantInvoice(*v)
	}
	return _u
}

// ClearNettingMerchantInvoice clears the value of the "netting_merchant_invoice" field.
func (_u *WoltInvoiceUpdate) ClearNettingMerchantInvoice() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingMerchantInvoice()
	return _u
}

// SetNettingMerchantNet sets the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdate) SetNettingMerchantNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingMerchantNet()
	_u.mutation.SetNettingMerchantNet(v)
	return _u
}

// SetNillableNettingMerchantNet sets the "netting_merchant_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingMerchantNet(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingMerchantNet(*v)
	}
	return _u
}

// AddNettingMerchantNet adds value to the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdate) AddNettingMerchantNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingMerchantNet(v)
	return _u
}

// ClearNettingMerchantNet clears the value of the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdate) ClearNettingMerchantNet() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingMerchantNet()
	return _u
}

// SetNettingMerchantVat sets the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdate) SetNettingMerchantVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingMerchantVat()
	_u.mutation.SetNettingMerchantVat(v)
	return _u
}

// SetNillableNettingMerchantVat sets the "netting_merchant_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingMerchantVat(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingMerchantVat(*v)
	}
	return _u
}

// AddNettingMerchantVat adds value to the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdate) AddNettingMerchantVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingMerchantVat(v)
	return _u
}

// ClearNettingMerchantVat clears the value of the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdate) ClearNettingMerchantVat() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingMerchantVat()
	return _u
}

// SetNettingMerchantGross sets the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdate) SetNettingMerchantGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingMerchantGross()
	_u.mutation.SetNettingMerchantGross(v)
	return _u
}

// SetNillableNettingMerchantGross sets the "netting_merchant_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingMerchantGross(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingMerchantGross(*v)
	}
	return _u
}

// AddNettingMerchantGross adds value to the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdate) AddNettingMerchantGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingMerchantGross(v)
	return _u
}

// ClearNettingMerchantGross clears the value of the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdate) ClearNettingMerchantGross() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingMerchantGross()
	return _u
}

// SetNettingWoltInvoice sets the "netting_wolt_invoice" field.
func (_u *WoltInvoiceUpdate) SetNettingWoltInvoice(v string) *WoltInvoiceUpdate {
	_u.mutation.SetNettingWoltInvoice(v)
	return _u
}

// SetNillableNettingWoltInvoice sets the "netting_wolt_invoice" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingWoltInvoice(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingWoltInvoice(*v)
	}
	return _u
}

// ClearNettingWoltInvoice clears the value of the "netting_wolt_invoice" field.
func (_u *WoltInvoiceUpdate) ClearNettingWoltInvoice() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingWoltInvoice()
	return _u
}

// SetNettingWoltNet sets the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdate) SetNettingWoltNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingWoltNet()
	_u.mutation.SetNettingWoltNet(v)
	return _u
}

// SetNillableNettingWoltNet sets the "netting_wolt_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingWoltNet(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingWoltNet(*v)
	}
	return _u
}

// AddNettingWoltNet adds value to the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdate) AddNettingWoltNet(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingWoltNet(v)
	return _u
}

// ClearNettingWoltNet clears the value of the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdate) ClearNettingWoltNet() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingWoltNet()
	return _u
}

// SetNettingWoltVat sets the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdate) SetNettingWoltVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingWoltVat()
	_u.mutation.SetNettingWoltVat(v)
	return _u
}

// SetNillableNettingWoltVat sets the "netting_wolt_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingWoltVat(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingWoltVat(*v)
	}
	return _u
}

// AddNettingWoltVat adds value to the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdate) AddNettingWoltVat(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingWoltVat(v)
	return _u
}

// ClearNettingWoltVat clears the value of the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdate) ClearNettingWoltVat() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingWoltVat()
	return _u
}

// SetNettingWoltGross sets the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdate) SetNettingWoltGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingWoltGross()
	_u.mutation.SetNettingWoltGross(v)
	return _u
}

// SetNillableNettingWoltGross sets the "netting_wolt_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingWoltGross(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingWoltGross(*v)
	}
	return _u
}

// AddNettingWoltGross adds value to the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdate) AddNettingWoltGross(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingWoltGross(v)
	return _u
}

// ClearNettingWoltGross clears the value of the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdate) ClearNettingWoltGross() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingWoltGross()
	return _u
}

// SetNettingNetPayout sets the "netting_net_payout" field.
func (_u *WoltInvoiceUpdate) SetNettingNetPayout(v float64) *WoltInvoiceUpdate {
	_u.mutation.ResetNettingNetPayout()
	_u.mutation.SetNettingNetPayout(v)
	return _u
}

// SetNillableNettingNetPayout sets the "netting_net_payout" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingNetPayout(v *float64) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingNetPayout(*v)
	}
	return _u
}

// AddNettingNetPayout adds value to the "netting_net_payout" field.
func (_u *WoltInvoiceUpdate) AddNettingNetPayout(v float64) *WoltInvoiceUpdate {
	_u.mutation.AddNettingNetPayout(v)
	return _u
}

// ClearNettingNetPayout clears the value of the "netting_net_payout" field.
func (_u *WoltInvoiceUpdate) ClearNettingNetPayout() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingNetPayout()
	return _u
}

// SetNettingParsedJSON sets the "netting_parsed_json" field.
func (_u *WoltInvoiceUpdate) SetNettingParsedJSON(v map[string]interface{}) *WoltInvoiceUpdate {
	_u.mutation.SetNettingParsedJSON(v)
	return _u
}

// ClearNettingParsedJSON clears the value of the "netting_parsed_json" field.
func (_u *WoltInvoiceUpdate) ClearNettingParsedJSON() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingParsedJSON()
	return _u
}

// SetNettingRawText sets the "netting_raw_text" field.
func (_u *WoltInvoiceUpdate) SetNettingRawText(v string) *WoltInvoiceUpdate {
	_u.mutation.SetNettingRawText(v)
	return _u
}

// SetNillableNettingRawText sets the "netting_raw_text" field if the given value is not nil.
func (_u *WoltInvoiceUpdate) SetNillableNettingRawText(v *string) *WoltInvoiceUpdate {
	if v != nil {
		_u.SetNettingRawText(*v)
	}
	return _u
}

// ClearNettingRawText clears the value of the "netting_raw_text" field.
func (_u *WoltInvoiceUpdate) ClearNettingRawText() *WoltInvoiceUpdate {
	_u.mutation.ClearNettingRawText()
	return _u
}

// Mutation returns the WoltInvoiceMutation object of the builder.
func (_u *WoltInvoiceUpdate) Mutation() *WoltInvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WoltInvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WoltInvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WoltInvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WoltInvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WoltInvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := woltinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WoltInvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := woltinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := woltinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WoltInvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(woltinvoice.Table, woltinvoice.Columns, sqlgraph.NewFieldSpec(woltinvoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(woltinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(woltinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(woltinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(woltinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(woltinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(woltinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(woltinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(woltinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(woltinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(woltinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(woltinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(woltinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(woltinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(woltinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(woltinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(woltinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(woltinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(woltinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(woltinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(woltinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(woltinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(woltinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(woltinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(woltinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(woltinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupplierAddress(); ok {
		_spec.SetField(woltinvoice.FieldSupplierAddress, field.TypeString, value)
	}
	if _u.mutation.SupplierAddressCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierVatID(); ok {
		_spec.SetField(woltinvoice.FieldSupplierVatID, field.TypeString, value)
	}
	if _u.mutation.SupplierVatIDCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierVatID, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(woltinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(woltinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(woltinvoice.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(woltinvoice.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.GoodsNet7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNet7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNet7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNet7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNet7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVat7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVat7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVat7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVat7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVat7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGross7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGross7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGross7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGross7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGross7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsNet19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNet19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNet19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNet19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNet19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVat19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVat19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVat19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVat19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGross19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGross19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGross19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGross19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGross19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNet7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNet7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNet7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVat7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVat7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVat7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGross7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGross7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGross7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNet19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNet19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNet19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVat19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVat19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVat19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGross19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGross19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGross19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountNet(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountNet(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountNet, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountNetCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountVat(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountVat(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountVat, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountVatCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountGross(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountGross(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountGross, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountGrossCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantInvoice, field.TypeString, value)
	}
	if _u.mutation.NettingMerchantInvoiceCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.NettingMerchantNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantNet(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantNetCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantVat(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantVatCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantGross(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantGrossCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltInvoice, field.TypeString, value)
	}
	if _u.mutation.NettingWoltInvoiceCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.NettingWoltNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltNet(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltNetCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltVat(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltVatCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltGross(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltGrossCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingNetPayout(); ok {
		_spec.SetField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingNetPayout(); ok {
		_spec.AddField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64, value)
	}
	if _u.mutation.NettingNetPayoutCleared() {
		_spec.ClearField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingParsedJSON(); ok {
		_spec.SetField(woltinvoice.FieldNettingParsedJSON, field.TypeJSON, value)
	}
	if _u.mutation.NettingParsedJSONCleared() {
		_spec.ClearField(woltinvoice.FieldNettingParsedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.NettingRawText(); ok {
		_spec.SetField(woltinvoice.FieldNettingRawText, field.TypeString, value)
	}
	if _u.mutation.NettingRawTextCleared() {
		_spec.ClearField(woltinvoice.FieldNettingRawText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{woltinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WoltInvoiceUpdateOne is the builder for updating a single WoltInvoice entity.
type WoltInvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WoltInvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *WoltInvoiceUpdateOne) SetInvoiceNumber(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *WoltInvoiceUpdateOne) SetInvoiceDate(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *WoltInvoiceUpdateOne) ClearInvoiceDate() *WoltInvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *WoltInvoiceUpdateOne) SetPeriodStart(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillablePeriodStart(v *time.Time) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *WoltInvoiceUpdateOne) ClearPeriodStart() *WoltInvoiceUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *WoltInvoiceUpdateOne) SetPeriodEnd(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillablePeriodEnd(v *time.Time) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *WoltInvoiceUpdateOne) ClearPeriodEnd() *WoltInvoiceUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *WoltInvoiceUpdateOne) SetSupplierName(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableSupplierName(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *WoltInvoiceUpdateOne) ClearSupplierName() *WoltInvoiceUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *WoltInvoiceUpdateOne) SetTotalAmount(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableTotalAmount(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *WoltInvoiceUpdateOne) AddTotalAmount(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *WoltInvoiceUpdateOne) ClearTotalAmount() *WoltInvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WoltInvoiceUpdateOne) SetStatus(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableStatus(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *WoltInvoiceUpdateOne) SetExtractionConfidence(v int) *WoltInvoiceUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableExtractionConfidence(v *int) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *WoltInvoiceUpdateOne) AddExtractionConfidence(v int) *WoltInvoiceUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *WoltInvoiceUpdateOne) SetNeedsReview(v bool) *WoltInvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNeedsReview(v *bool) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *WoltInvoiceUpdateOne) SetRawText(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableRawText(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *WoltInvoiceUpdateOne) ClearRawText() *WoltInvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *WoltInvoiceUpdateOne) SetSourceFilename(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableSourceFilename(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *WoltInvoiceUpdateOne) ClearSourceFilename() *WoltInvoiceUpdateOne {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *WoltInvoiceUpdateOne) SetEmailSubject(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEmailSubject(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *WoltInvoiceUpdateOne) ClearEmailSubject() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *WoltInvoiceUpdateOne) SetEmailSender(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEmailSender(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *WoltInvoiceUpdateOne) ClearEmailSender() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *WoltInvoiceUpdateOne) SetEmailDate(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEmailDate(v *time.Time) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *WoltInvoiceUpdateOne) ClearEmailDate() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WoltInvoiceUpdateOne) SetCreatedAt(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WoltInvoiceUpdateOne) SetUpdatedAt(v time.Time) *WoltInvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplierAddress sets the "supplier_address" field.
func (_u *WoltInvoiceUpdateOne) SetSupplierAddress(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetSupplierAddress(v)
	return _u
}

// SetNillableSupplierAddress sets the "supplier_address" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableSupplierAddress(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierAddress(*v)
	}
	return _u
}

// ClearSupplierAddress clears the value of the "supplier_address" field.
func (_u *WoltInvoiceUpdateOne) ClearSupplierAddress() *WoltInvoiceUpdateOne {
	_u.mutation.ClearSupplierAddress()
	return _u
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_u *WoltInvoiceUpdateOne) SetSupplierVatID(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetSupplierVatID(v)
	return _u
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableSupplierVatID(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierVatID(*v)
	}
	return _u
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (_u *WoltInvoiceUpdateOne) ClearSupplierVatID() *WoltInvoiceUpdateOne {
	_u.mutation.ClearSupplierVatID()
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *WoltInvoiceUpdateOne) SetRestaurantName(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableRestaurantName(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *WoltInvoiceUpdateOne) ClearRestaurantName() *WoltInvoiceUpdateOne {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *WoltInvoiceUpdateOne) SetBusinessID(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableBusinessID(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *WoltInvoiceUpdateOne) ClearBusinessID() *WoltInvoiceUpdateOne {
	_u.mutation.ClearBusinessID()
	return _u
}

// SetGoodsNet7 sets the "goods_net_7" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsNet7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsNet7()
	_u.mutation.SetGoodsNet7(v)
	return _u
}

// SetNillableGoodsNet7 sets the "goods_net_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsNet7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsNet7(*v)
	}
	return _u
}

// AddGoodsNet7 adds value to the "goods_net_7" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsNet7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsNet7(v)
	return _u
}

// ClearGoodsNet7 clears the value of the "goods_net_7" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsNet7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsNet7()
	return _u
}

// SetGoodsVat7 sets the "goods_vat_7" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsVat7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsVat7()
	_u.mutation.SetGoodsVat7(v)
	return _u
}

// SetNillableGoodsVat7 sets the "goods_vat_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsVat7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsVat7(*v)
	}
	return _u
}

// AddGoodsVat7 adds value to the "goods_vat_7" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsVat7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsVat7(v)
	return _u
}

// ClearGoodsVat7 clears the value of the "goods_vat_7" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsVat7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsVat7()
	return _u
}

// SetGoodsGross7 sets the "goods_gross_7" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsGross7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsGross7()
	_u.mutation.SetGoodsGross7(v)
	return _u
}

// SetNillableGoodsGross7 sets the "goods_gross_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsGross7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsGross7(*v)
	}
	return _u
}

// AddGoodsGross7 adds value to the "goods_gross_7" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsGross7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsGross7(v)
	return _u
}

// ClearGoodsGross7 clears the value of the "goods_gross_7" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsGross7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsGross7()
	return _u
}

// SetGoodsNet19 sets the "goods_net_19" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsNet19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsNet19()
	_u.mutation.SetGoodsNet19(v)
	return _u
}

// SetNillableGoodsNet19 sets the "goods_net_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsNet19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsNet19(*v)
	}
	return _u
}

// AddGoodsNet19 adds value to the "goods_net_19" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsNet19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsNet19(v)
	return _u
}

// ClearGoodsNet19 clears the value of the "goods_net_19" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsNet19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsNet19()
	return _u
}

// SetGoodsVat19 sets the "goods_vat_19" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsVat19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsVat19()
	_u.mutation.SetGoodsVat19(v)
	return _u
}

// SetNillableGoodsVat19 sets the "goods_vat_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsVat19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsVat19(*v)
	}
	return _u
}

// AddGoodsVat19 adds value to the "goods_vat_19" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsVat19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsVat19(v)
	return _u
}

// ClearGoodsVat19 clears the value of the "goods_vat_19" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsVat19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsVat19()
	return _u
}

// SetGoodsGross19 sets the "goods_gross_19" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsGross19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsGross19()
	_u.mutation.SetGoodsGross19(v)
	return _u
}

// SetNillableGoodsGross19 sets the "goods_gross_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsGross19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsGross19(*v)
	}
	return _u
}

// AddGoodsGross19 adds value to the "goods_gross_19" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsGross19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsGross19(v)
	return _u
}

// ClearGoodsGross19 clears the value of the "goods_gross_19" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsGross19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsGross19()
	return _u
}

// SetGoodsNetTotal sets the "goods_net_total" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsNetTotal()
	_u.mutation.SetGoodsNetTotal(v)
	return _u
}

// SetNillableGoodsNetTotal sets the "goods_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsNetTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsNetTotal(*v)
	}
	return _u
}

// AddGoodsNetTotal adds value to the "goods_net_total" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsNetTotal(v)
	return _u
}

// ClearGoodsNetTotal clears the value of the "goods_net_total" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsNetTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsNetTotal()
	return _u
}

// SetGoodsVatTotal sets the "goods_vat_total" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsVatTotal()
	_u.mutation.SetGoodsVatTotal(v)
	return _u
}

// SetNillableGoodsVatTotal sets the "goods_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsVatTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsVatTotal(*v)
	}
	return _u
}

// AddGoodsVatTotal adds value to the "goods_vat_total" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsVatTotal(v)
	return _u
}

// ClearGoodsVatTotal clears the value of the "goods_vat_total" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsVatTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsVatTotal()
	return _u
}

// SetGoodsGrossTotal sets the "goods_gross_total" field.
func (_u *WoltInvoiceUpdateOne) SetGoodsGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetGoodsGrossTotal()
	_u.mutation.SetGoodsGrossTotal(v)
	return _u
}

// SetNillableGoodsGrossTotal sets the "goods_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableGoodsGrossTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetGoodsGrossTotal(*v)
	}
	return _u
}

// AddGoodsGrossTotal adds value to the "goods_gross_total" field.
func (_u *WoltInvoiceUpdateOne) AddGoodsGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddGoodsGrossTotal(v)
	return _u
}

// ClearGoodsGrossTotal clears the value of the "goods_gross_total" field.
func (_u *WoltInvoiceUpdateOne) ClearGoodsGrossTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearGoodsGrossTotal()
	return _u
}

// SetDistributionNetTotal sets the "distribution_net_total" field.
func (_u *WoltInvoiceUpdateOne) SetDistributionNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetDistributionNetTotal()
	_u.mutation.SetDistributionNetTotal(v)
	return _u
}

// SetNillableDistributionNetTotal sets the "distribution_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableDistributionNetTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetDistributionNetTotal(*v)
	}
	return _u
}

// AddDistributionNetTotal adds value to the "distribution_net_total" field.
func (_u *WoltInvoiceUpdateOne) AddDistributionNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddDistributionNetTotal(v)
	return _u
}

// ClearDistributionNetTotal clears the value of the "distribution_net_total" field.
func (_u *WoltInvoiceUpdateOne) ClearDistributionNetTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearDistributionNetTotal()
	return _u
}

// SetDistributionVatTotal sets the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdateOne) SetDistributionVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetDistributionVatTotal()
	_u.mutation.SetDistributionVatTotal(v)
	return _u
}

// SetNillableDistributionVatTotal sets the "distribution_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableDistributionVatTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetDistributionVatTotal(*v)
	}
	return _u
}

// AddDistributionVatTotal adds value to the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdateOne) AddDistributionVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddDistributionVatTotal(v)
	return _u
}

// ClearDistributionVatTotal clears the value of the "distribution_vat_total" field.
func (_u *WoltInvoiceUpdateOne) ClearDistributionVatTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearDistributionVatTotal()
	return _u
}

// SetDistributionGrossTotal sets the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdateOne) SetDistributionGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetDistributionGrossTotal()
	_u.mutation.SetDistributionGrossTotal(v)
	return _u
}

// SetNillableDistributionGrossTotal sets the "distribution_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableDistributionGrossTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetDistributionGrossTotal(*v)
	}
	return _u
}

// AddDistributionGrossTotal adds value to the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdateOne) AddDistributionGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddDistributionGrossTotal(v)
	return _u
}

// ClearDistributionGrossTotal clears the value of the "distribution_gross_total" field.
func (_u *WoltInvoiceUpdateOne) ClearDistributionGrossTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearDistributionGrossTotal()
	return _u
}

// SetNetpriceNet7 sets the "netprice_net_7" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceNet7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceNet7()
	_u.mutation.SetNetpriceNet7(v)
	return _u
}

// SetNillableNetpriceNet7 sets the "netprice_net_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceNet7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceNet7(*v)
	}
	return _u
}

// AddNetpriceNet7 adds value to the "netprice_net_7" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceNet7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceNet7(v)
	return _u
}

// ClearNetpriceNet7 clears the value of the "netprice_net_7" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceNet7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceNet7()
	return _u
}

// SetNetpriceVat7 sets the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceVat7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceVat7()
	_u.mutation.SetNetpriceVat7(v)
	return _u
}

// SetNillableNetpriceVat7 sets the "netprice_vat_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceVat7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceVat7(*v)
	}
	return _u
}

// AddNetpriceVat7 adds value to the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceVat7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceVat7(v)
	return _u
}

// ClearNetpriceVat7 clears the value of the "netprice_vat_7" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceVat7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceVat7()
	return _u
}

// SetNetpriceGross7 sets the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceGross7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceGross7()
	_u.mutation.SetNetpriceGross7(v)
	return _u
}

// SetNillableNetpriceGross7 sets the "netprice_gross_7" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceGross7(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceGross7(*v)
	}
	return _u
}

// AddNetpriceGross7 adds value to the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceGross7(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceGross7(v)
	return _u
}

// ClearNetpriceGross7 clears the value of the "netprice_gross_7" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceGross7() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceGross7()
	return _u
}

// SetNetpriceNet19 sets the "netprice_net_19" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceNet19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceNet19()
	_u.mutation.SetNetpriceNet19(v)
	return _u
}

// SetNillableNetpriceNet19 sets the "netprice_net_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceNet19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceNet19(*v)
	}
	return _u
}

// AddNetpriceNet19 adds value to the "netprice_net_19" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceNet19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceNet19(v)
	return _u
}

// ClearNetpriceNet19 clears the value of the "netprice_net_19" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceNet19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceNet19()
	return _u
}

// SetNetpriceVat19 sets the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceVat19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceVat19()
	_u.mutation.SetNetpriceVat19(v)
	return _u
}

// SetNillableNetpriceVat19 sets the "netprice_vat_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceVat19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceVat19(*v)
	}
	return _u
}

// AddNetpriceVat19 adds value to the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceVat19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceVat19(v)
	return _u
}

// ClearNetpriceVat19 clears the value of the "netprice_vat_19" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceVat19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceVat19()
	return _u
}

// SetNetpriceGross19 sets the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceGross19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceGross19()
	_u.mutation.SetNetpriceGross19(v)
	return _u
}

// SetNillableNetpriceGross19 sets the "netprice_gross_19" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceGross19(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceGross19(*v)
	}
	return _u
}

// AddNetpriceGross19 adds value to the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceGross19(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceGross19(v)
	return _u
}

// ClearNetpriceGross19 clears the value of the "netprice_gross_19" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceGross19() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceGross19()
	return _u
}

// SetNetpriceNetTotal sets the "netprice_net_total" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceNetTotal()
	_u.mutation.SetNetpriceNetTotal(v)
	return _u
}

// SetNillableNetpriceNetTotal sets the "netprice_net_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceNetTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceNetTotal(*v)
	}
	return _u
}

// AddNetpriceNetTotal adds value to the "netprice_net_total" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceNetTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceNetTotal(v)
	return _u
}

// ClearNetpriceNetTotal clears the value of the "netprice_net_total" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceNetTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceNetTotal()
	return _u
}

// SetNetpriceVatTotal sets the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceVatTotal()
	_u.mutation.SetNetpriceVatTotal(v)
	return _u
}

// SetNillableNetpriceVatTotal sets the "netprice_vat_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceVatTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceVatTotal(*v)
	}
	return _u
}

// AddNetpriceVatTotal adds value to the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceVatTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceVatTotal(v)
	return _u
}

// ClearNetpriceVatTotal clears the value of the "netprice_vat_total" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceVatTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceVatTotal()
	return _u
}

// SetNetpriceGrossTotal sets the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdateOne) SetNetpriceGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNetpriceGrossTotal()
	_u.mutation.SetNetpriceGrossTotal(v)
	return _u
}

// SetNillableNetpriceGrossTotal sets the "netprice_gross_total" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNetpriceGrossTotal(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNetpriceGrossTotal(*v)
	}
	return _u
}

// AddNetpriceGrossTotal adds value to the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdateOne) AddNetpriceGrossTotal(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNetpriceGrossTotal(v)
	return _u
}

// ClearNetpriceGrossTotal clears the value of the "netprice_gross_total" field.
func (_u *WoltInvoiceUpdateOne) ClearNetpriceGrossTotal() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNetpriceGrossTotal()
	return _u
}

// SetEndAmountNet sets the "end_amount_net" field.
func (_u *WoltInvoiceUpdateOne) SetEndAmountNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetEndAmountNet()
	_u.mutation.SetEndAmountNet(v)
	return _u
}

// SetNillableEndAmountNet sets the "end_amount_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEndAmountNet(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEndAmountNet(*v)
	}
	return _u
}

// AddEndAmountNet adds value to the "end_amount_net" field.
func (_u *WoltInvoiceUpdateOne) AddEndAmountNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddEndAmountNet(v)
	return _u
}

// ClearEndAmountNet clears the value of the "end_amount_net" field.
func (_u *WoltInvoiceUpdateOne) ClearEndAmountNet() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEndAmountNet()
	return _u
}

// SetEndAmountVat sets the "end_amount_vat" field.
func (_u *WoltInvoiceUpdateOne) SetEndAmountVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetEndAmountVat()
	_u.mutation.SetEndAmountVat(v)
	return _u
}

// SetNillableEndAmountVat sets the "end_amount_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEndAmountVat(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEndAmountVat(*v)
	}
	return _u
}

// AddEndAmountVat adds value to the "end_amount_vat" field.
func (_u *WoltInvoiceUpdateOne) AddEndAmountVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddEndAmountVat(v)
	return _u
}

// ClearEndAmountVat clears the value of the "end_amount_vat" field.
func (_u *WoltInvoiceUpdateOne) ClearEndAmountVat() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEndAmountVat()
	return _u
}

// SetEndAmountGross sets the "end_amount_gross" field.
func (_u *WoltInvoiceUpdateOne) SetEndAmountGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetEndAmountGross()
	_u.mutation.SetEndAmountGross(v)
	return _u
}

// SetNillableEndAmountGross sets the "end_amount_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableEndAmountGross(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetEndAmountGross(*v)
	}
	return _u
}

// AddEndAmountGross adds value to the "end_amount_gross" field.
func (_u *WoltInvoiceUpdateOne) AddEndAmountGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddEndAmountGross(v)
	return _u
}

// ClearEndAmountGross clears the value of the "end_amount_gross" field.
func (_u *WoltInvoiceUpdateOne) ClearEndAmountGross() *WoltInvoiceUpdateOne {
	_u.mutation.ClearEndAmountGross()
	return _u
}

// SetNettingMerchantInvoice sets the "netting_merchant_invoice" field.
func (_u *WoltInvoiceUpdateOne) SetNettingMerchantInvoice(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetNettingMerchantInvoice(v)
	return _u
}

// SetNillableNettingMerchantInvoice sets the "netting_merchant_invoice" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingMerchantInvoice(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingMerchantInvoice(*v)
	}
	return _u
}

// ClearNettingMerchantInvoice clears the value of the "netting_merchant_invoice" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingMerchantInvoice() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingMerchantInvoice()
	return _u
}

// SetNettingMerchantNet sets the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdateOne) SetNettingMerchantNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingMerchantNet()
	_u.mutation.SetNettingMerchantNet(v)
	return _u
}

// SetNillableNettingMerchantNet sets the "netting_merchant_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingMerchantNet(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingMerchantNet(*v)
	}
	return _u
}

// AddNettingMerchantNet adds value to the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdateOne) AddNettingMerchantNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingMerchantNet(v)
	return _u
}

// ClearNettingMerchantNet clears the value of the "netting_merchant_net" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingMerchantNet() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingMerchantNet()
	return _u
}

// SetNettingMerchantVat sets the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdateOne) SetNettingMerchantVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingMerchantVat()
	_u.mutation.SetNettingMerchantVat(v)
	return _u
}

// SetNillableNettingMerchantVat sets the "netting_merchant_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingMerchantVat(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingMerchantVat(*v)
	}
	return _u
}

// AddNettingMerchantVat adds value to the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdateOne) AddNettingMerchantVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingMerchantVat(v)
	return _u
}

// ClearNettingMerchantVat clears the value of the "netting_merchant_vat" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingMerchantVat() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingMerchantVat()
	return _u
}

// SetNettingMerchantGross sets the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdateOne) SetNettingMerchantGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingMerchantGross()
	_u.mutation.SetNettingMerchantGross(v)
	return _u
}

// SetNillableNettingMerchantGross sets the "netting_merchant_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingMerchantGross(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingMerchantGross(*v)
	}
	return _u
}

// AddNettingMerchantGross adds value to the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdateOne) AddNettingMerchantGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingMerchantGross(v)
	return _u
}

// ClearNettingMerchantGross clears the value of the "netting_merchant_gross" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingMerchantGross() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingMerchantGross()
	return _u
}

// SetNettingWoltInvoice sets the "netting_wolt_invoice" field.
func (_u *WoltInvoiceUpdateOne) SetNettingWoltInvoice(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetNettingWoltInvoice(v)
	return _u
}

// SetNillableNettingWoltInvoice sets the "netting_wolt_invoice" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingWoltInvoice(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingWoltInvoice(*v)
	}
	return _u
}

// ClearNettingWoltInvoice clears the value of the "netting_wolt_invoice" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingWoltInvoice() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingWoltInvoice()
	return _u
}

// SetNettingWoltNet sets the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdateOne) SetNettingWoltNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingWoltNet()
	_u.mutation.SetNettingWoltNet(v)
	return _u
}

// SetNillableNettingWoltNet sets the "netting_wolt_net" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingWoltNet(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingWoltNet(*v)
	}
	return _u
}

// AddNettingWoltNet adds value to the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdateOne) AddNettingWoltNet(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingWoltNet(v)
	return _u
}

// ClearNettingWoltNet clears the value of the "netting_wolt_net" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingWoltNet() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingWoltNet()
	return _u
}

// SetNettingWoltVat sets the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdateOne) SetNettingWoltVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingWoltVat()
	_u.mutation.SetNettingWoltVat(v)
	return _u
}

// SetNillableNettingWoltVat sets the "netting_wolt_vat" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingWoltVat(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingWoltVat(*v)
	}
	return _u
}

// AddNettingWoltVat adds value to the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdateOne) AddNettingWoltVat(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingWoltVat(v)
	return _u
}

// ClearNettingWoltVat clears the value of the "netting_wolt_vat" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingWoltVat() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingWoltVat()
	return _u
}

// SetNettingWoltGross sets the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdateOne) SetNettingWoltGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingWoltGross()
	_u.mutation.SetNettingWoltGross(v)
	return _u
}

// SetNillableNettingWoltGross sets the "netting_wolt_gross" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingWoltGross(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingWoltGross(*v)
	}
	return _u
}

// AddNettingWoltGross adds value to the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdateOne) AddNettingWoltGross(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingWoltGross(v)
	return _u
}

// ClearNettingWoltGross clears the value of the "netting_wolt_gross" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingWoltGross() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingWoltGross()
	return _u
}

// SetNettingNetPayout sets the "netting_net_payout" field.
func (_u *WoltInvoiceUpdateOne) SetNettingNetPayout(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.ResetNettingNetPayout()
	_u.mutation.SetNettingNetPayout(v)
	return _u
}

// SetNillableNettingNetPayout sets the "netting_net_payout" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingNetPayout(v *float64) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingNetPayout(*v)
	}
	return _u
}

// AddNettingNetPayout adds value to the "netting_net_payout" field.
func (_u *WoltInvoiceUpdateOne) AddNettingNetPayout(v float64) *WoltInvoiceUpdateOne {
	_u.mutation.AddNettingNetPayout(v)
	return _u
}

// ClearNettingNetPayout clears the value of the "netting_net_payout" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingNetPayout() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingNetPayout()
	return _u
}

// SetNettingParsedJSON sets the "netting_parsed_json" field.
func (_u *WoltInvoiceUpdateOne) SetNettingParsedJSON(v map[string]interface{}) *WoltInvoiceUpdateOne {
	_u.mutation.SetNettingParsedJSON(v)
	return _u
}

// ClearNettingParsedJSON clears the value of the "netting_parsed_json" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingParsedJSON() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingParsedJSON()
	return _u
}

// SetNettingRawText sets the "netting_raw_text" field.
func (_u *WoltInvoiceUpdateOne) SetNettingRawText(v string) *WoltInvoiceUpdateOne {
	_u.mutation.SetNettingRawText(v)
	return _u
}

// SetNillableNettingRawText sets the "netting_raw_text" field if the given value is not nil.
func (_u *WoltInvoiceUpdateOne) SetNillableNettingRawText(v *string) *WoltInvoiceUpdateOne {
	if v != nil {
		_u.SetNettingRawText(*v)
	}
	return _u
}

// ClearNettingRawText clears the value of the "netting_raw_text" field.
func (_u *WoltInvoiceUpdateOne) ClearNettingRawText() *WoltInvoiceUpdateOne {
	_u.mutation.ClearNettingRawText()
	return _u
}

// Mutation returns the WoltInvoiceMutation object of the builder.
func (_u *WoltInvoiceUpdateOne) Mutation() *WoltInvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the WoltInvoiceUpdate builder.
func (_u *WoltInvoiceUpdateOne) Where(ps ...predicate.WoltInvoice) *WoltInvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WoltInvoiceUpdateOne) Select(field string, fields ...string) *WoltInvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WoltInvoice entity.
func (_u *WoltInvoiceUpdateOne) Save(ctx context.Context) (*WoltInvoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WoltInvoiceUpdateOne) SaveX(ctx context.Context) *WoltInvoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WoltInvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WoltInvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WoltInvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := woltinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WoltInvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := woltinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := woltinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WoltInvoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WoltInvoiceUpdateOne) sqlSave(ctx context.Context) (_node *WoltInvoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(woltinvoice.Table, woltinvoice.Columns, sqlgraph.NewFieldSpec(woltinvoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WoltInvoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, woltinvoice.FieldID)
		for _, f := range fields {
			if !woltinvoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != woltinvoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(woltinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(woltinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(woltinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(woltinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(woltinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(woltinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(woltinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(woltinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(woltinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(woltinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(woltinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(woltinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(woltinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(woltinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(woltinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(woltinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(woltinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(woltinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(woltinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(woltinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(woltinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(woltinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(woltinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(woltinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(woltinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(woltinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupplierAddress(); ok {
		_spec.SetField(woltinvoice.FieldSupplierAddress, field.TypeString, value)
	}
	if _u.mutation.SupplierAddressCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierVatID(); ok {
		_spec.SetField(woltinvoice.FieldSupplierVatID, field.TypeString, value)
	}
	if _u.mutation.SupplierVatIDCleared() {
		_spec.ClearField(woltinvoice.FieldSupplierVatID, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(woltinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(woltinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(woltinvoice.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(woltinvoice.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.GoodsNet7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNet7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNet7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNet7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNet7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVat7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVat7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVat7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVat7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVat7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGross7(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGross7(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGross7, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGross7Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGross7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsNet19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNet19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNet19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNet19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNet19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNet19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVat19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVat19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVat19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVat19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGross19(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGross19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGross19(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGross19, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGross19Cleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGross19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GoodsGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGoodsGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GoodsGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldGoodsGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DistributionGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldDistributionGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNet7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNet7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNet7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNet7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVat7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVat7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVat7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVat7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGross7(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGross7(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGross7Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGross7, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNet19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNet19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNet19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNet19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVat19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVat19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVat19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGross19(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGross19(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGross19Cleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGross19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceNetTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceNetTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceNetTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceVatTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceVatTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceVatTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetpriceGrossTotal(); ok {
		_spec.SetField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetpriceGrossTotal(); ok {
		_spec.AddField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetpriceGrossTotalCleared() {
		_spec.ClearField(woltinvoice.FieldNetpriceGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountNet(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountNet(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountNet, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountNetCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountVat(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountVat(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountVat, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountVatCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndAmountGross(); ok {
		_spec.SetField(woltinvoice.FieldEndAmountGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndAmountGross(); ok {
		_spec.AddField(woltinvoice.FieldEndAmountGross, field.TypeFloat64, value)
	}
	if _u.mutation.EndAmountGrossCleared() {
		_spec.ClearField(woltinvoice.FieldEndAmountGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantInvoice, field.TypeString, value)
	}
	if _u.mutation.NettingMerchantInvoiceCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.NettingMerchantNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantNet(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantNetCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantVat(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantVatCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingMerchantGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingMerchantGross(); ok {
		_spec.AddField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64, value)
	}
	if _u.mutation.NettingMerchantGrossCleared() {
		_spec.ClearField(woltinvoice.FieldNettingMerchantGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltInvoice(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltInvoice, field.TypeString, value)
	}
	if _u.mutation.NettingWoltInvoiceCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.NettingWoltNet(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltNet(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltNetCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltVat(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltVat(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltVatCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltVat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingWoltGross(); ok {
		_spec.SetField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingWoltGross(); ok {
		_spec.AddField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64, value)
	}
	if _u.mutation.NettingWoltGrossCleared() {
		_spec.ClearField(woltinvoice.FieldNettingWoltGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingNetPayout(); ok {
		_spec.SetField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNettingNetPayout(); ok {
		_spec.AddField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64, value)
	}
	if _u.mutation.NettingNetPayoutCleared() {
		_spec.ClearField(woltinvoice.FieldNettingNetPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NettingParsedJSON(); ok {
		_spec.SetField(woltinvoice.FieldNettingParsedJSON, field.TypeJSON, value)
	}
	if _u.mutation.NettingParsedJSONCleared() {
		_spec.ClearField(woltinvoice.FieldNettingParsedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.NettingRawText(); ok {
		_spec.SetField(woltinvoice.FieldNettingRawText, field.TypeString, value)
	}
	if _u.mutation.NettingRawTextCleared() {
		_spec.ClearField(woltinvoice.FieldNettingRawText, field.TypeString)
	}
	_node = &WoltInvoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{woltinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
