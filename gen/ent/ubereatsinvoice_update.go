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
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
)

// UberEatsInvoiceUpdate is the builder for updating UberEatsInvoice entities.
type UberEatsInvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *UberEatsInvoiceMutation
}

// Where appends a list predicates to the UberEatsInvoiceUpdate builder.
func (_u *UberEatsInvoiceUpdate) Where(ps ...predicate.UberEatsInvoice) *UberEatsInvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *UberEatsInvoiceUpdate) SetInvoiceNumber(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableInvoiceNumber(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *UberEatsInvoiceUpdate) SetInvoiceDate(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *UberEatsInvoiceUpdate) ClearInvoiceDate() *UberEatsInvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UberEatsInvoiceUpdate) SetPeriodStart(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillablePeriodStart(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *UberEatsInvoiceUpdate) ClearPeriodStart() *UberEatsInvoiceUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UberEatsInvoiceUpdate) SetPeriodEnd(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillablePeriodEnd(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *UberEatsInvoiceUpdate) ClearPeriodEnd() *UberEatsInvoiceUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *UberEatsInvoiceUpdate) SetSupplierName(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableSupplierName(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *UberEatsInvoiceUpdate) ClearSupplierName() *UberEatsInvoiceUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *UberEatsInvoiceUpdate) SetTotalAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTotalAmount(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *UberEatsInvoiceUpdate) AddTotalAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *UberEatsInvoiceUpdate) ClearTotalAmount() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UberEatsInvoiceUpdate) SetStatus(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableStatus(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *UberEatsInvoiceUpdate) SetExtractionConfidence(v int) *UberEatsInvoiceUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableExtractionConfidence(v *int) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *UberEatsInvoiceUpdate) AddExtractionConfidence(v int) *UberEatsInvoiceUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *UberEatsInvoiceUpdate) SetNeedsReview(v bool) *UberEatsInvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableNeedsReview(v *bool) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *UberEatsInvoiceUpdate) SetRawText(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableRawText(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *UberEatsInvoiceUpdate) ClearRawText() *UberEatsInvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *UberEatsInvoiceUpdate) SetSourceFilename(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableSourceFilename(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *UberEatsInvoiceUpdate) ClearSourceFilename() *UberEatsInvoiceUpdate {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *UberEatsInvoiceUpdate) SetEmailSubject(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableEmailSubject(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *UberEatsInvoiceUpdate) ClearEmailSubject() *UberEatsInvoiceUpdate {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *UberEatsInvoiceUpdate) SetEmailSender(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableEmailSender(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *UberEatsInvoiceUpdate) ClearEmailSender() *UberEatsInvoiceUpdate {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *UberEatsInvoiceUpdate) SetEmailDate(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableEmailDate(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *UberEatsInvoiceUpdate) ClearEmailDate() *UberEatsInvoiceUpdate {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UberEatsInvoiceUpdate) SetCreatedAt(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCreatedAt(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UberEatsInvoiceUpdate) SetUpdatedAt(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaxDate sets the "tax_date" field.
func (_u *UberEatsInvoiceUpdate) SetTaxDate(v time.Time) *UberEatsInvoiceUpdate {
	_u.mutation.SetTaxDate(v)
	return _u
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTaxDate(v *time.Time) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTaxDate(*v)
	}
	return _u
}

// ClearTaxDate clears the value of the "tax_date" field.
func (_u *UberEatsInvoiceUpdate) ClearTaxDate() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTaxDate()
	return _u
}

// SetCustomerCompany sets the "customer_company" field.
func (_u *UberEatsInvoiceUpdate) SetCustomerCompany(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetCustomerCompany(v)
	return _u
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCustomerCompany(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCustomerCompany(*v)
	}
	return _u
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (_u *UberEatsInvoiceUpdate) ClearCustomerCompany() *UberEatsInvoiceUpdate {
	_u.mutation.ClearCustomerCompany()
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *UberEatsInvoiceUpdate) SetRestaurantName(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableRestaurantName(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *UberEatsInvoiceUpdate) ClearRestaurantName() *UberEatsInvoiceUpdate {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetRestaurantAddress sets the "restaurant_address" field.
func (_u *UberEatsInvoiceUpdate) SetRestaurantAddress(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetRestaurantAddress(v)
	return _u
}

// SetNillableRestaurantAddress sets the "restaurant_address" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableRestaurantAddress(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetRestaurantAddress(*v)
	}
	return _u
}

// ClearRestaurantAddress clears the value of the "restaurant_address" field.
func (_u *UberEatsInvoiceUpdate) ClearRestaurantAddress() *UberEatsInvoiceUpdate {
	_u.mutation.ClearRestaurantAddress()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *UberEatsInvoiceUpdate) SetBusinessID(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableBusinessID(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *UberEatsInvoiceUpdate) ClearBusinessID() *UberEatsInvoiceUpdate {
	_u.mutation.ClearBusinessID()
	return _u
}

// SetCustomerVatID sets the "customer_vat_id" field.
func (_u *UberEatsInvoiceUpdate) SetCustomerVatID(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetCustomerVatID(v)
	return _u
}

// SetNillableCustomerVatID sets the "customer_vat_id" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCustomerVatID(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCustomerVatID(*v)
	}
	return _u
}

// ClearCustomerVatID clears the value of the "customer_vat_id" field.
func (_u *UberEatsInvoiceUpdate) ClearCustomerVatID() *UberEatsInvoiceUpdate {
	_u.mutation.ClearCustomerVatID()
	return _u
}

// SetTaxNumber sets the "tax_number" field.
func (_u *UberEatsInvoiceUpdate) SetTaxNumber(v string) *UberEatsInvoiceUpdate {
	_u.mutation.SetTaxNumber(v)
	return _u
}

// SetNillableTaxNumber sets the "tax_number" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTaxNumber(v *string) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTaxNumber(*v)
	}
	return _u
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (_u *UberEatsInvoiceUpdate) ClearTaxNumber() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTaxNumber()
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *UberEatsInvoiceUpdate) SetTotalOrders(v int) *UberEatsInvoiceUpdate {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTotalOrders(v *int) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *UberEatsInvoiceUpdate) AddTotalOrders(v int) *UberEatsInvoiceUpdate {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (_u *UberEatsInvoiceUpdate) ClearTotalOrders() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTotalOrders()
	return _u
}

// SetTotalOrderValue sets the "total_order_value" field.
func (_u *UberEatsInvoiceUpdate) SetTotalOrderValue(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetTotalOrderValue()
	_u.mutation.SetTotalOrderValue(v)
	return _u
}

// SetNillableTotalOrderValue sets the "total_order_value" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTotalOrderValue(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTotalOrderValue(*v)
	}
	return _u
}

// AddTotalOrderValue adds value to the "total_order_value" field.
func (_u *UberEatsInvoiceUpdate) AddTotalOrderValue(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddTotalOrderValue(v)
	return _u
}

// ClearTotalOrderValue clears the value of the "total_order_value" field.
func (_u *UberEatsInvoiceUpdate) ClearTotalOrderValue() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTotalOrderValue()
	return _u
}

// SetGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdate) SetGrossRevenueAfterDiscounts(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetGrossRevenueAfterDiscounts()
	_u.mutation.SetGrossRevenueAfterDiscounts(v)
	return _u
}

// SetNillableGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableGrossRevenueAfterDiscounts(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetGrossRevenueAfterDiscounts(*v)
	}
	return _u
}

// AddGrossRevenueAfterDiscounts adds value to the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdate) AddGrossRevenueAfterDiscounts(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddGrossRevenueAfterDiscounts(v)
	return _u
}

// ClearGrossRevenueAfterDiscounts clears the value of the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdate) ClearGrossRevenueAfterDiscounts() *UberEatsInvoiceUpdate {
	_u.mutation.ClearGrossRevenueAfterDiscounts()
	return _u
}

// SetCommissionOwnDelivery sets the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdate) SetCommissionOwnDelivery(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetCommissionOwnDelivery()
	_u.mutation.SetCommissionOwnDelivery(v)
	return _u
}

// SetNillableCommissionOwnDelivery sets the "commission_own_delivery" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCommissionOwnDelivery(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCommissionOwnDelivery(*v)
	}
	return _u
}

// AddCommissionOwnDelivery adds value to the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdate) AddCommissionOwnDelivery(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddCommissionOwnDelivery(v)
	return _u
}

// ClearCommissionOwnDelivery clears the value of the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdate) ClearCommissionOwnDelivery() *UberEatsInvoiceUpdate {
	_u.mutation.ClearCommissionOwnDelivery()
	return _u
}

// SetCommissionPickup sets the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdate) SetCommissionPickup(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetCommissionPickup()
	_u.mutation.SetCommissionPickup(v)
	return _u
}

// SetNillableCommissionPickup sets the "commission_pickup" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCommissionPickup(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCommissionPickup(*v)
	}
	return _u
}

// AddCommissionPickup adds value to the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdate) AddCommissionPickup(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddCommissionPickup(v)
	return _u
}

// ClearCommissionPickup clears the value of the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdate) ClearCommissionPickup() *UberEatsInvoiceUpdate {
	_u.mutation.ClearCommissionPickup()
	return _u
}

// SetUberEatsFee sets the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdate) SetUberEatsFee(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetUberEatsFee()
	_u.mutation.SetUberEatsFee(v)
	return _u
}

// SetNillableUberEatsFee sets the "uber_eats_fee" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableUberEatsFee(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetUberEatsFee(*v)
	}
	return _u
}

// AddUberEatsFee adds value to the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdate) AddUberEatsFee(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddUberEatsFee(v)
	return _u
}

// ClearUberEatsFee clears the value of the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdate) ClearUberEatsFee() *UberEatsInvoiceUpdate {
	_u.mutation.ClearUberEatsFee()
	return _u
}

// SetVat19 sets the "vat_19" field.
func (_u *UberEatsInvoiceUpdate) SetVat19(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetVat19()
	_u.mutation.SetVat19(v)
	return _u
}

// SetNillableVat19 sets the "vat_19" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableVat19(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetVat19(*v)
	}
	return _u
}

// AddVat19 adds value to the "vat_19" field.
func (_u *UberEatsInvoiceUpdate) AddVat19(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddVat19(v)
	return _u
}

// ClearVat19 clears the value of the "vat_19" field.
func (_u *UberEatsInvoiceUpdate) ClearVat19() *UberEatsInvoiceUpdate {
	_u.mutation.ClearVat19()
	return _u
}

// SetCashCollected sets the "cash_collected" field.
func (_u *UberEatsInvoiceUpdate) SetCashCollected(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetCashCollected()
	_u.mutation.SetCashCollected(v)
	return _u
}

// SetNillableCashCollected sets the "cash_collected" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableCashCollected(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetCashCollected(*v)
	}
	return _u
}

// AddCashCollected adds value to the "cash_collected" field.
func (_u *UberEatsInvoiceUpdate) AddCashCollected(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddCashCollected(v)
	return _u
}

// ClearCashCollected clears the value of the "cash_collected" field.
func (_u *UberEatsInvoiceUpdate) ClearCashCollected() *UberEatsInvoiceUpdate {
	_u.mutation.ClearCashCollected()
	return _u
}

// SetTotalPayout sets the "total_payout" field.
func (_u *UberEatsInvoiceUpdate) SetTotalPayout(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetTotalPayout()
	_u.mutation.SetTotalPayout(v)
	return _u
}

// SetNillableTotalPayout sets the "total_payout" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableTotalPayout(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetTotalPayout(*v)
	}
	return _u
}

// AddTotalPayout adds value to the "total_payout" field.
func (_u *UberEatsInvoiceUpdate) AddTotalPayout(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddTotalPayout(v)
	return _u
}

// ClearTotalPayout clears the value of the "total_payout" field.
func (_u *UberEatsInvoiceUpdate) ClearTotalPayout() *UberEatsInvoiceUpdate {
	_u.mutation.ClearTotalPayout()
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *UberEatsInvoiceUpdate) SetNetAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableNetAmount(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *UberEatsInvoiceUpdate) AddNetAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *UberEatsInvoiceUpdate) ClearNetAmount() *UberEatsInvoiceUpdate {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *UberEatsInvoiceUpdate) SetVatAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdate) SetNillableVatAmount(v *float64) *UberEatsInvoiceUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *UberEatsInvoiceUpdate) AddVatAmount(v float64) *UberEatsInvoiceUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *UberEatsInvoiceUpdate) ClearVatAmount() *UberEatsInvoiceUpdate {
	_u.mutation.ClearVatAmount()
	return _u
}

// Mutation returns the UberEatsInvoiceMutation object of the builder.
func (_u *UberEatsInvoiceUpdate) Mutation() *UberEatsInvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UberEatsInvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UberEatsInvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UberEatsInvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UberEatsInvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UberEatsInvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ubereatsinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UberEatsInvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := ubereatsinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ubereatsinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UberEatsInvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ubereatsinvoice.Table, ubereatsinvoice.Columns, sqlgraph.NewFieldSpec(ubereatsinvoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(ubereatsinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(ubereatsinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(ubereatsinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(ubereatsinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ubereatsinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(ubereatsinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(ubereatsinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ubereatsinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(ubereatsinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(ubereatsinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaxDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxDate, field.TypeTime, value)
	}
	if _u.mutation.TaxDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTaxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerCompany(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerCompany, field.TypeString, value)
	}
	if _u.mutation.CustomerCompanyCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCustomerCompany, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantAddress(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantAddress, field.TypeString, value)
	}
	if _u.mutation.RestaurantAddressCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRestaurantAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(ubereatsinvoice.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(ubereatsinvoice.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerVatID(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerVatID, field.TypeString, value)
	}
	if _u.mutation.CustomerVatIDCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCustomerVatID, field.TypeString)
	}
	if value, ok := _u.mutation.TaxNumber(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxNumber, field.TypeString, value)
	}
	if _u.mutation.TaxNumberCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if _u.mutation.TotalOrdersCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalOrderValue(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalOrderValue(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalOrderValueCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossRevenueAfterDiscounts(); ok {
		_spec.SetField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossRevenueAfterDiscounts(); ok {
		_spec.AddField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64, value)
	}
	if _u.mutation.GrossRevenueAfterDiscountsCleared() {
		_spec.ClearField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionOwnDelivery(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionOwnDelivery(); ok {
		_spec.AddField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionOwnDeliveryCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionPickup(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionPickup(); ok {
		_spec.AddField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionPickupCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UberEatsFee(); ok {
		_spec.SetField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUberEatsFee(); ok {
		_spec.AddField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64, value)
	}
	if _u.mutation.UberEatsFeeCleared() {
		_spec.ClearField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Vat19(); ok {
		_spec.SetField(ubereatsinvoice.FieldVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVat19(); ok {
		_spec.AddField(ubereatsinvoice.FieldVat19, field.TypeFloat64, value)
	}
	if _u.mutation.Vat19Cleared() {
		_spec.ClearField(ubereatsinvoice.FieldVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashCollected(); ok {
		_spec.SetField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashCollected(); ok {
		_spec.AddField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64, value)
	}
	if _u.mutation.CashCollectedCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPayout(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPayout(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPayoutCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ubereatsinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UberEatsInvoiceUpdateOne is the builder for updating a single UberEatsInvoice entity.
type UberEatsInvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UberEatsInvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *UberEatsInvoiceUpdateOne) SetInvoiceNumber(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *UberEatsInvoiceUpdateOne) SetInvoiceDate(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *UberEatsInvoiceUpdateOne) ClearInvoiceDate() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UberEatsInvoiceUpdateOne) SetPeriodStart(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillablePeriodStart(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *UberEatsInvoiceUpdateOne) ClearPeriodStart() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UberEatsInvoiceUpdateOne) SetPeriodEnd(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillablePeriodEnd(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *UberEatsInvoiceUpdateOne) ClearPeriodEnd() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *UberEatsInvoiceUpdateOne) SetSupplierName(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableSupplierName(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *UberEatsInvoiceUpdateOne) ClearSupplierName() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *UberEatsInvoiceUpdateOne) SetTotalAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTotalAmount(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *UberEatsInvoiceUpdateOne) AddTotalAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTotalAmount() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UberEatsInvoiceUpdateOne) SetStatus(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableStatus(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *UberEatsInvoiceUpdateOne) SetExtractionConfidence(v int) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableExtractionConfidence(v *int) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *UberEatsInvoiceUpdateOne) AddExtractionConfidence(v int) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *UberEatsInvoiceUpdateOne) SetNeedsReview(v bool) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableNeedsReview(v *bool) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *UberEatsInvoiceUpdateOne) SetRawText(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableRawText(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *UberEatsInvoiceUpdateOne) ClearRawText() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *UberEatsInvoiceUpdateOne) SetSourceFilename(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableSourceFilename(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *UberEatsInvoiceUpdateOne) ClearSourceFilename() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *UberEatsInvoiceUpdateOne) SetEmailSubject(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableEmailSubject(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *UberEatsInvoiceUpdateOne) ClearEmailSubject() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *UberEatsInvoiceUpdateOne) SetEmailSender(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableEmailSender(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *UberEatsInvoiceUpdateOne) ClearEmailSender() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *UberEatsInvoiceUpdateOne) SetEmailDate(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableEmailDate(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *UberEatsInvoiceUpdateOne) ClearEmailDate() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UberEatsInvoiceUpdateOne) SetCreatedAt(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UberEatsInvoiceUpdateOne) SetUpdatedAt(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaxDate sets the "tax_date" field.
func (_u *UberEatsInvoiceUpdateOne) SetTaxDate(v time.Time) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetTaxDate(v)
	return _u
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTaxDate(v *time.Time) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTaxDate(*v)
	}
	return _u
}

// ClearTaxDate clears the value of the "tax_date" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTaxDate() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTaxDate()
	return _u
}

// SetCustomerCompany sets the "customer_company" field.
func (_u *UberEatsInvoiceUpdateOne) SetCustomerCompany(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetCustomerCompany(v)
	return _u
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCustomerCompany(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerCompany(*v)
	}
	return _u
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (_u *UberEatsInvoiceUpdateOne) ClearCustomerCompany() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearCustomerCompany()
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *UberEatsInvoiceUpdateOne) SetRestaurantName(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableRestaurantName(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *UberEatsInvoiceUpdateOne) ClearRestaurantName() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetRestaurantAddress sets the "restaurant_address" field.
func (_u *UberEatsInvoiceUpdateOne) SetRestaurantAddress(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetRestaurantAddress(v)
	return _u
}

// SetNillableRestaurantAddress sets the "restaurant_address" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableRestaurantAddress(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetRestaurantAddress(*v)
	}
	return _u
}

// ClearRestaurantAddress clears the value of the "restaurant_address" field.
func (_u *UberEatsInvoiceUpdateOne) ClearRestaurantAddress() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearRestaurantAddress()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *UberEatsInvoiceUpdateOne) SetBusinessID(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableBusinessID(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *UberEatsInvoiceUpdateOne) ClearBusinessID() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearBusinessID()
	return _u
}

// SetCustomerVatID sets the "customer_vat_id" field.
func (_u *UberEatsInvoiceUpdateOne) SetCustomerVatID(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetCustomerVatID(v)
	return _u
}

// SetNillableCustomerVatID sets the "customer_vat_id" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCustomerVatID(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerVatID(*v)
	}
	return _u
}

// ClearCustomerVatID clears the value of the "customer_vat_id" field.
func (_u *UberEatsInvoiceUpdateOne) ClearCustomerVatID() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearCustomerVatID()
	return _u
}

// SetTaxNumber sets the "tax_number" field.
func (_u *UberEatsInvoiceUpdateOne) SetTaxNumber(v string) *UberEatsInvoiceUpdateOne {
	_u.mutation.SetTaxNumber(v)
	return _u
}

// SetNillableTaxNumber sets the "tax_number" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTaxNumber(v *string) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTaxNumber(*v)
	}
	return _u
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTaxNumber() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTaxNumber()
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *UberEatsInvoiceUpdateOne) SetTotalOrders(v int) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTotalOrders(v *int) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *UberEatsInvoiceUpdateOne) AddTotalOrders(v int) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTotalOrders() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTotalOrders()
	return _u
}

// SetTotalOrderValue sets the "total_order_value" field.
func (_u *UberEatsInvoiceUpdateOne) SetTotalOrderValue(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetTotalOrderValue()
	_u.mutation.SetTotalOrderValue(v)
	return _u
}

// SetNillableTotalOrderValue sets the "total_order_value" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTotalOrderValue(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalOrderValue(*v)
	}
	return _u
}

// AddTotalOrderValue adds value to the "total_order_value" field.
func (_u *UberEatsInvoiceUpdateOne) AddTotalOrderValue(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddTotalOrderValue(v)
	return _u
}

// ClearTotalOrderValue clears the value of the "total_order_value" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTotalOrderValue() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTotalOrderValue()
	return _u
}

// SetGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdateOne) SetGrossRevenueAfterDiscounts(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetGrossRevenueAfterDiscounts()
	_u.mutation.SetGrossRevenueAfterDiscounts(v)
	return _u
}

// SetNillableGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableGrossRevenueAfterDiscounts(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetGrossRevenueAfterDiscounts(*v)
	}
	return _u
}

// AddGrossRevenueAfterDiscounts adds value to the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdateOne) AddGrossRevenueAfterDiscounts(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddGrossRevenueAfterDiscounts(v)
	return _u
}

// ClearGrossRevenueAfterDiscounts clears the value of the "gross_revenue_after_discounts" field.
func (_u *UberEatsInvoiceUpdateOne) ClearGrossRevenueAfterDiscounts() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearGrossRevenueAfterDiscounts()
	return _u
}

// SetCommissionOwnDelivery sets the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdateOne) SetCommissionOwnDelivery(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetCommissionOwnDelivery()
	_u.mutation.SetCommissionOwnDelivery(v)
	return _u
}

// SetNillableCommissionOwnDelivery sets the "commission_own_delivery" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCommissionOwnDelivery(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCommissionOwnDelivery(*v)
	}
	return _u
}

// AddCommissionOwnDelivery adds value to the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdateOne) AddCommissionOwnDelivery(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddCommissionOwnDelivery(v)
	return _u
}

// ClearCommissionOwnDelivery clears the value of the "commission_own_delivery" field.
func (_u *UberEatsInvoiceUpdateOne) ClearCommissionOwnDelivery() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearCommissionOwnDelivery()
	return _u
}

// SetCommissionPickup sets the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdateOne) SetCommissionPickup(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetCommissionPickup()
	_u.mutation.SetCommissionPickup(v)
	return _u
}

// SetNillableCommissionPickup sets the "commission_pickup" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCommissionPickup(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCommissionPickup(*v)
	}
	return _u
}

// AddCommissionPickup adds value to the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdateOne) AddCommissionPickup(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddCommissionPickup(v)
	return _u
}

// ClearCommissionPickup clears the value of the "commission_pickup" field.
func (_u *UberEatsInvoiceUpdateOne) ClearCommissionPickup() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearCommissionPickup()
	return _u
}

// SetUberEatsFee sets the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdateOne) SetUberEatsFee(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetUberEatsFee()
	_u.mutation.SetUberEatsFee(v)
	return _u
}

// SetNillableUberEatsFee sets the "uber_eats_fee" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableUberEatsFee(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetUberEatsFee(*v)
	}
	return _u
}

// AddUberEatsFee adds value to the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdateOne) AddUberEatsFee(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddUberEatsFee(v)
	return _u
}

// ClearUberEatsFee clears the value of the "uber_eats_fee" field.
func (_u *UberEatsInvoiceUpdateOne) ClearUberEatsFee() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearUberEatsFee()
	return _u
}

// SetVat19 sets the "vat_19" field.
func (_u *UberEatsInvoiceUpdateOne) SetVat19(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetVat19()
	_u.mutation.SetVat19(v)
	return _u
}

// SetNillableVat19 sets the "vat_19" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableVat19(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetVat19(*v)
	}
	return _u
}

// AddVat19 adds value to the "vat_19" field.
func (_u *UberEatsInvoiceUpdateOne) AddVat19(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddVat19(v)
	return _u
}

// ClearVat19 clears the value of the "vat_19" field.
func (_u *UberEatsInvoiceUpdateOne) ClearVat19() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearVat19()
	return _u
}

// SetCashCollected sets the "cash_collected" field.
func (_u *UberEatsInvoiceUpdateOne) SetCashCollected(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetCashCollected()
	_u.mutation.SetCashCollected(v)
	return _u
}

// SetNillableCashCollected sets the "cash_collected" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableCashCollected(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetCashCollected(*v)
	}
	return _u
}

// AddCashCollected adds value to the "cash_collected" field.
func (_u *UberEatsInvoiceUpdateOne) AddCashCollected(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddCashCollected(v)
	return _u
}

// ClearCashCollected clears the value of the "cash_collected" field.
func (_u *UberEatsInvoiceUpdateOne) ClearCashCollected() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearCashCollected()
	return _u
}

// SetTotalPayout sets the "total_payout" field.
func (_u *UberEatsInvoiceUpdateOne) SetTotalPayout(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetTotalPayout()
	_u.mutation.SetTotalPayout(v)
	return _u
}

// SetNillableTotalPayout sets the "total_payout" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableTotalPayout(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalPayout(*v)
	}
	return _u
}

// AddTotalPayout adds value to the "total_payout" field.
func (_u *UberEatsInvoiceUpdateOne) AddTotalPayout(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddTotalPayout(v)
	return _u
}

// ClearTotalPayout clears the value of the "total_payout" field.
func (_u *UberEatsInvoiceUpdateOne) ClearTotalPayout() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearTotalPayout()
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *UberEatsInvoiceUpdateOne) SetNetAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableNetAmount(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *UberEatsInvoiceUpdateOne) AddNetAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *UberEatsInvoiceUpdateOne) ClearNetAmount() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *UberEatsInvoiceUpdateOne) SetVatAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *UberEatsInvoiceUpdateOne) SetNillableVatAmount(v *float64) *UberEatsInvoiceUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *UberEatsInvoiceUpdateOne) AddVatAmount(v float64) *UberEatsInvoiceUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *UberEatsInvoiceUpdateOne) ClearVatAmount() *UberEatsInvoiceUpdateOne {
	_u.mutation.ClearVatAmount()
	return _u
}

// Mutation returns the UberEatsInvoiceMutation object of the builder.
func (_u *UberEatsInvoiceUpdateOne) Mutation() *UberEatsInvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UberEatsInvoiceUpdate builder.
func (_u *UberEatsInvoiceUpdateOne) Where(ps ...predicate.UberEatsInvoice) *UberEatsInvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UberEatsInvoiceUpdateOne) Select(field string, fields ...string) *UberEatsInvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UberEatsInvoice entity.
func (_u *UberEatsInvoiceUpdateOne) Save(ctx context.Context) (*UberEatsInvoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UberEatsInvoiceUpdateOne) SaveX(ctx context.Context) *UberEatsInvoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UberEatsInvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UberEatsInvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UberEatsInvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ubereatsinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UberEatsInvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := ubereatsinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ubereatsinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UberEatsInvoiceUpdateOne) sqlSave(ctx context.Context) (_node *UberEatsInvoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ubereatsinvoice.Table, ubereatsinvoice.Columns, sqlgraph.NewFieldSpec(ubereatsinvoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UberEatsInvoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ubereatsinvoice.FieldID)
		for _, f := range fields {
			if !ubereatsinvoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ubereatsinvoice.FieldID {
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
		_spec.SetField(ubereatsinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(ubereatsinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(ubereatsinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(ubereatsinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ubereatsinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(ubereatsinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(ubereatsinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ubereatsinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(ubereatsinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(ubereatsinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaxDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxDate, field.TypeTime, value)
	}
	if _u.mutation.TaxDateCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTaxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerCompany(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerCompany, field.TypeString, value)
	}
	if _u.mutation.CustomerCompanyCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCustomerCompany, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.RestaurantAddress(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantAddress, field.TypeString, value)
	}
	if _u.mutation.RestaurantAddressCleared() {
		_spec.ClearField(ubereatsinvoice.FieldRestaurantAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(ubereatsinvoice.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(ubereatsinvoice.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerVatID(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerVatID, field.TypeString, value)
	}
	if _u.mutation.CustomerVatIDCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCustomerVatID, field.TypeString)
	}
	if value, ok := _u.mutation.TaxNumber(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxNumber, field.TypeString, value)
	}
	if _u.mutation.TaxNumberCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if _u.mutation.TotalOrdersCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalOrderValue(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalOrderValue(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalOrderValueCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossRevenueAfterDiscounts(); ok {
		_spec.SetField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossRevenueAfterDiscounts(); ok {
		_spec.AddField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64, value)
	}
	if _u.mutation.GrossRevenueAfterDiscountsCleared() {
		_spec.ClearField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionOwnDelivery(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionOwnDelivery(); ok {
		_spec.AddField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionOwnDeliveryCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionPickup(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionPickup(); ok {
		_spec.AddField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionPickupCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UberEatsFee(); ok {
		_spec.SetField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUberEatsFee(); ok {
		_spec.AddField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64, value)
	}
	if _u.mutation.UberEatsFeeCleared() {
		_spec.ClearField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Vat19(); ok {
		_spec.SetField(ubereatsinvoice.FieldVat19, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVat19(); ok {
		_spec.AddField(ubereatsinvoice.FieldVat19, field.TypeFloat64, value)
	}
	if _u.mutation.Vat19Cleared() {
		_spec.ClearField(ubereatsinvoice.FieldVat19, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashCollected(); ok {
		_spec.SetField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashCollected(); ok {
		_spec.AddField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64, value)
	}
	if _u.mutation.CashCollectedCleared() {
		_spec.ClearField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPayout(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPayout(); ok {
		_spec.AddField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPayoutCleared() {
		_spec.ClearField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64)
	}
	_node = &UberEatsInvoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ubereatsinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
