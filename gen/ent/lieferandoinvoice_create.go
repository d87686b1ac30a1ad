// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// LieferandoInvoiceCreate is the builder for creating a LieferandoInvoice entity.
type LieferandoInvoiceCreate struct {
	config
	mutation *LieferandoInvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *LieferandoInvoiceCreate) SetInvoiceNumber(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *LieferandoInvoiceCreate) SetInvoiceDate(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableInvoiceDate(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *LieferandoInvoiceCreate) SetPeriodStart(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillablePeriodStart(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *LieferandoInvoiceCreate) SetPeriodEnd(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillablePeriodEnd(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *LieferandoInvoiceCreate) SetSupplierName(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierName(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *LieferandoInvoiceCreate) SetTotalAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableTotalAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LieferandoInvoiceCreate) SetStatus(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableStatus(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *LieferandoInvoiceCreate) SetExtractionConfidence(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableExtractionConfidence(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *LieferandoInvoiceCreate) SetNeedsReview(v bool) *LieferandoInvoiceCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableNeedsReview(v *bool) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *LieferandoInvoiceCreate) SetRawText(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableRawText(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *LieferandoInvoiceCreate) SetSourceFilename(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSourceFilename(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSourceFilename(*v)
	}
	return _c
}

// SetEmailSubject sets the "email_subject" field.
func (_c *LieferandoInvoiceCreate) SetEmailSubject(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetEmailSubject(v)
	return _c
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableEmailSubject(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetEmailSubject(*v)
	}
	return _c
}

// SetEmailSender sets the "email_sender" field.
func (_c *LieferandoInvoiceCreate) SetEmailSender(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetEmailSender(v)
	return _c
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableEmailSender(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetEmailSender(*v)
	}
	return _c
}

// SetEmailDate sets the "email_date" field.
func (_c *LieferandoInvoiceCreate) SetEmailDate(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetEmailDate(v)
	return _c
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableEmailDate(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetEmailDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LieferandoInvoiceCreate) SetCreatedAt(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCreatedAt(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LieferandoInvoiceCreate) SetUpdatedAt(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableUpdatedAt(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRestaurantName sets the "restaurant_name" field.
func (_c *LieferandoInvoiceCreate) SetRestaurantName(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetRestaurantName(v)
	return _c
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableRestaurantName(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetRestaurantName(*v)
	}
	return _c
}

// SetCustomerNumber sets the "customer_number" field.
func (_c *LieferandoInvoiceCreate) SetCustomerNumber(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetCustomerNumber(v)
	return _c
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCustomerNumber(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCustomerNumber(*v)
	}
	return _c
}

// SetCustomerCompany sets the "customer_company" field.
func (_c *LieferandoInvoiceCreate) SetCustomerCompany(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetCustomerCompany(v)
	return _c
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCustomerCompany(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCustomerCompany(*v)
	}
	return _c
}

// SetCustomerTaxNumber sets the "customer_tax_number" field.
func (_c *LieferandoInvoiceCreate) SetCustomerTaxNumber(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetCustomerTaxNumber(v)
	return _c
}

// SetNillableCustomerTaxNumber sets the "customer_tax_number" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCustomerTaxNumber(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCustomerTaxNumber(*v)
	}
	return _c
}

// SetCustomerBankIban sets the "customer_bank_iban" field.
func (_c *LieferandoInvoiceCreate) SetCustomerBankIban(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetCustomerBankIban(v)
	return _c
}

// SetNillableCustomerBankIban sets the "customer_bank_iban" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCustomerBankIban(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCustomerBankIban(*v)
	}
	return _c
}

// SetSupplierIban sets the "supplier_iban" field.
func (_c *LieferandoInvoiceCreate) SetSupplierIban(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierIban(v)
	return _c
}

// SetNillableSupplierIban sets the "supplier_iban" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierIban(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierIban(*v)
	}
	return _c
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_c *LieferandoInvoiceCreate) SetSupplierVatID(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierVatID(v)
	return _c
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierVatID(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierVatID(*v)
	}
	return _c
}

// SetSupplierManagingDirector sets the "supplier_managing_director" field.
func (_c *LieferandoInvoiceCreate) SetSupplierManagingDirector(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierManagingDirector(v)
	return _c
}

// SetNillableSupplierManagingDirector sets the "supplier_managing_director" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierManagingDirector(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierManagingDirector(*v)
	}
	return _c
}

// SetSupplierCourtRegistry sets the "supplier_court_registry" field.
func (_c *LieferandoInvoiceCreate) SetSupplierCourtRegistry(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierCourtRegistry(v)
	return _c
}

// SetNillableSupplierCourtRegistry sets the "supplier_court_registry" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierCourtRegistry(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierCourtRegistry(*v)
	}
	return _c
}

// SetSupplierHrb sets the "supplier_hrb" field.
func (_c *LieferandoInvoiceCreate) SetSupplierHrb(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetSupplierHrb(v)
	return _c
}

// SetNillableSupplierHrb sets the "supplier_hrb" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSupplierHrb(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSupplierHrb(*v)
	}
	return _c
}

// SetTotalOrders sets the "total_orders" field.
func (_c *LieferandoInvoiceCreate) SetTotalOrders(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetTotalOrders(v)
	return _c
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableTotalOrders(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetTotalOrders(*v)
	}
	return _c
}

// SetTotalRevenue sets the "total_revenue" field.
func (_c *LieferandoInvoiceCreate) SetTotalRevenue(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetTotalRevenue(v)
	return _c
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableTotalRevenue(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetTotalRevenue(*v)
	}
	return _c
}

// SetOnlinePaidOrders sets the "online_paid_orders" field.
func (_c *LieferandoInvoiceCreate) SetOnlinePaidOrders(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetOnlinePaidOrders(v)
	return _c
}

// SetNillableOnlinePaidOrders sets the "online_paid_orders" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableOnlinePaidOrders(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetOnlinePaidOrders(*v)
	}
	return _c
}

// SetOnlinePaidAmount sets the "online_paid_amount" field.
func (_c *LieferandoInvoiceCreate) SetOnlinePaidAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetOnlinePaidAmount(v)
	return _c
}

// SetNillableOnlinePaidAmount sets the "online_paid_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableOnlinePaidAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetOnlinePaidAmount(*v)
	}
	return _c
}

// SetCashPaidOrders sets the "cash_paid_orders" field.
func (_c *LieferandoInvoiceCreate) SetCashPaidOrders(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetCashPaidOrders(v)
	return _c
}

// SetNillableCashPaidOrders sets the "cash_paid_orders" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCashPaidOrders(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCashPaidOrders(*v)
	}
	return _c
}

// SetCashPaidAmount sets the "cash_paid_amount" field.
func (_c *LieferandoInvoiceCreate) SetCashPaidAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetCashPaidAmount(v)
	return _c
}

// SetNillableCashPaidAmount sets the "cash_paid_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCashPaidAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCashPaidAmount(*v)
	}
	return _c
}

// SetCashServiceFeeAmount sets the "cash_service_fee_amount" field.
func (_c *LieferandoInvoiceCreate) SetCashServiceFeeAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetCashServiceFeeAmount(v)
	return _c
}

// SetNillableCashServiceFeeAmount sets the "cash_service_fee_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableCashServiceFeeAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetCashServiceFeeAmount(*v)
	}
	return _c
}

// SetChargebackOrders sets the "chargeback_orders" field.
func (_c *LieferandoInvoiceCreate) SetChargebackOrders(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetChargebackOrders(v)
	return _c
}

// SetNillableChargebackOrders sets the "chargeback_orders" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableChargebackOrders(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetChargebackOrders(*v)
	}
	return _c
}

// SetChargebackAmount sets the "chargeback_amount" field.
func (_c *LieferandoInvoiceCreate) SetChargebackAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetChargebackAmount(v)
	return _c
}

// SetNillableChargebackAmount sets the "chargeback_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableChargebackAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetChargebackAmount(*v)
	}
	return _c
}

// SetStampCardOrders sets the "stamp_card_orders" field.
func (_c *LieferandoInvoiceCreate) SetStampCardOrders(v int) *LieferandoInvoiceCreate {
	_c.mutation.SetStampCardOrders(v)
	return _c
}

// SetNillableStampCardOrders sets the "stamp_card_orders" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableStampCardOrders(v *int) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetStampCardOrders(*v)
	}
	return _c
}

// SetStampCardAmount sets the "stamp_card_amount" field.
func (_c *LieferandoInvoiceCreate) SetStampCardAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetStampCardAmount(v)
	return _c
}

// SetNillableStampCardAmount sets the "stamp_card_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableStampCardAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetStampCardAmount(*v)
	}
	return _c
}

// SetServiceFeeRate sets the "service_fee_rate" field.
func (_c *LieferandoInvoiceCreate) SetServiceFeeRate(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetServiceFeeRate(v)
	return _c
}

// SetNillableServiceFeeRate sets the "service_fee_rate" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableServiceFeeRate(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetServiceFeeRate(*v)
	}
	return _c
}

// SetServiceFeeAmount sets the "service_fee_amount" field.
func (_c *LieferandoInvoiceCreate) SetServiceFeeAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetServiceFeeAmount(v)
	return _c
}

// SetNillableServiceFeeAmount sets the "service_fee_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableServiceFeeAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetServiceFeeAmount(*v)
	}
	return _c
}

// SetAdminFeeRate sets the "admin_fee_rate" field.
func (_c *LieferandoInvoiceCreate) SetAdminFeeRate(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetAdminFeeRate(v)
	return _c
}

// SetNillableAdminFeeRate sets the "admin_fee_rate" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableAdminFeeRate(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetAdminFeeRate(*v)
	}
	return _c
}

// SetAdminFeeAmount sets the "admin_fee_amount" field.
func (_c *LieferandoInvoiceCreate) SetAdminFeeAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetAdminFeeAmount(v)
	return _c
}

// SetNillableAdminFeeAmount sets the "admin_fee_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableAdminFeeAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetAdminFeeAmount(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *LieferandoInvoiceCreate) SetSubtotal(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableSubtotal(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *LieferandoInvoiceCreate) SetTaxRate(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableTaxRate(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetTaxRate(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *LieferandoInvoiceCreate) SetTaxAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableTaxAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetPaidOnlinePayments sets the "paid_online_payments" field.
func (_c *LieferandoInvoiceCreate) SetPaidOnlinePayments(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetPaidOnlinePayments(v)
	return _c
}

// SetNillablePaidOnlinePayments sets the "paid_online_payments" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillablePaidOnlinePayments(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetPaidOnlinePayments(*v)
	}
	return _c
}

// SetOutstandingAmount sets the "outstanding_amount" field.
func (_c *LieferandoInvoiceCreate) SetOutstandingAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetOutstandingAmount(v)
	return _c
}

// SetNillableOutstandingAmount sets the "outstanding_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableOutstandingAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetOutstandingAmount(*v)
	}
	return _c
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_c *LieferandoInvoiceCreate) SetOutstandingBalance(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetOutstandingBalance(v)
	return _c
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableOutstandingBalance(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetOutstandingBalance(*v)
	}
	return _c
}

// SetPayoutAmount sets the "payout_amount" field.
func (_c *LieferandoInvoiceCreate) SetPayoutAmount(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetPayoutAmount(v)
	return _c
}

// SetNillablePayoutAmount sets the "payout_amount" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillablePayoutAmount(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetPayoutAmount(*v)
	}
	return _c
}

// SetAmountDue sets the "amount_due" field.
func (_c *LieferandoInvoiceCreate) SetAmountDue(v float64) *LieferandoInvoiceCreate {
	_c.mutation.SetAmountDue(v)
	return _c
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableAmountDue(v *float64) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetAmountDue(*v)
	}
	return _c
}

// SetConfirmationPaymentDate sets the "confirmation_payment_date" field.
func (_c *LieferandoInvoiceCreate) SetConfirmationPaymentDate(v time.Time) *LieferandoInvoiceCreate {
	_c.mutation.SetConfirmationPaymentDate(v)
	return _c
}

// SetNillableConfirmationPaymentDate sets the "confirmation_payment_date" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableConfirmationPaymentDate(v *time.Time) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetConfirmationPaymentDate(*v)
	}
	return _c
}

// SetConfirmationCodeMessage sets the "confirmation_code_message" field.
func (_c *LieferandoInvoiceCreate) SetConfirmationCodeMessage(v string) *LieferandoInvoiceCreate {
	_c.mutation.SetConfirmationCodeMessage(v)
	return _c
}

// SetNillableConfirmationCodeMessage sets the "confirmation_code_message" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableConfirmationCodeMessage(v *string) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetConfirmationCodeMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LieferandoInvoiceCreate) SetID(v uuid.UUID) *LieferandoInvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LieferandoInvoiceCreate) SetNillableID(v *uuid.UUID) *LieferandoInvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_c *LieferandoInvoiceCreate) AddOrderItemIDs(ids ...uuid.UUID) *LieferandoInvoiceCreate {
	_c.mutation.AddOrderItemIDs(ids...)
	return _c
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_c *LieferandoInvoiceCreate) AddOrderItems(v ...*OrderItem) *LieferandoInvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderItemIDs(ids...)
}

// AddTipItemIDs adds the "tip_items" edge to the TipItem entity by IDs.
func (_c *LieferandoInvoiceCreate) AddTipItemIDs(ids ...uuid.UUID) *LieferandoInvoiceCreate {
	_c.mutation.AddTipItemIDs(ids...)
	return _c
}

// AddTipItems adds the "tip_items" edges to the TipItem entity.
func (_c *LieferandoInvoiceCreate) AddTipItems(v ...*TipItem) *LieferandoInvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTipItemIDs(ids...)
}

// Mutation returns the LieferandoInvoiceMutation object of the builder.
func (_c *LieferandoInvoiceCreate) Mutation() *LieferandoInvoiceMutation {
	return _c.mutation
}

// Save creates the LieferandoInvoice in the database.
func (_c *LieferandoInvoiceCreate) Save(ctx context.Context) (*LieferandoInvoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LieferandoInvoiceCreate) SaveX(ctx context.Context) *LieferandoInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LieferandoInvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LieferandoInvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LieferandoInvoiceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := lieferandoinvoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := lieferandoinvoice.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := lieferandoinvoice.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lieferandoinvoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lieferandoinvoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lieferandoinvoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LieferandoInvoiceCreate) check() error {
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "LieferandoInvoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := lieferandoinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LieferandoInvoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lieferandoinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "LieferandoInvoice.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "LieferandoInvoice.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LieferandoInvoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LieferandoInvoice.updated_at"`)}
	}
	if v, ok := _c.mutation.ConfirmationCodeMessage(); ok {
		if err := lieferandoinvoice.ConfirmationCodeMessageValidator(v); err != nil {
			return &ValidationError{Name: "confirmation_code_message", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.confirmation_code_message": %w`, err)}
		}
	}
	return nil
}

func (_c *LieferandoInvoiceCreate) sqlSave(ctx context.Context) (*LieferandoInvoice, error) {
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

func (_c *LieferandoInvoiceCreate) createSpec() (*LieferandoInvoice, *sqlgraph.CreateSpec) {
	var (
		_node = &LieferandoInvoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lieferandoinvoice.Table, sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lieferandoinvoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(lieferandoinvoice.FieldExtractionConfidence, field.TypeInt, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(lieferandoinvoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(lieferandoinvoice.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(lieferandoinvoice.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.EmailSubject(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSubject, field.TypeString, value)
		_node.EmailSubject = value
	}
	if value, ok := _c.mutation.EmailSender(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSender, field.TypeString, value)
		_node.EmailSender = value
	}
	if value, ok := _c.mutation.EmailDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailDate, field.TypeTime, value)
		_node.EmailDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RestaurantName(); ok {
		_spec.SetField(lieferandoinvoice.FieldRestaurantName, field.TypeString, value)
		_node.RestaurantName = value
	}
	if value, ok := _c.mutation.CustomerNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerNumber, field.TypeString, value)
		_node.CustomerNumber = value
	}
	if value, ok := _c.mutation.CustomerCompany(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerCompany, field.TypeString, value)
		_node.CustomerCompany = value
	}
	if value, ok := _c.mutation.CustomerTaxNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerTaxNumber, field.TypeString, value)
		_node.CustomerTaxNumber = value
	}
	if value, ok := _c.mutation.CustomerBankIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerBankIban, field.TypeString, value)
		_node.CustomerBankIban = value
	}
	if value, ok := _c.mutation.SupplierIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierIban, field.TypeString, value)
		_node.SupplierIban = value
	}
	if value, ok := _c.mutation.SupplierVatID(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierVatID, field.TypeString, value)
		_node.SupplierVatID = value
	}
	if value, ok := _c.mutation.SupplierManagingDirector(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierManagingDirector, field.TypeString, value)
		_node.SupplierManagingDirector = value
	}
	if value, ok := _c.mutation.SupplierCourtRegistry(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierCourtRegistry, field.TypeString, value)
		_node.SupplierCourtRegistry = value
	}
	if value, ok := _c.mutation.SupplierHrb(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierHrb, field.TypeString, value)
		_node.SupplierHrb = value
	}
	if value, ok := _c.mutation.TotalOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalOrders, field.TypeInt, value)
		_node.TotalOrders = &value
	}
	if value, ok := _c.mutation.TotalRevenue(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64, value)
		_node.TotalRevenue = &value
	}
	if value, ok := _c.mutation.OnlinePaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt, value)
		_node.OnlinePaidOrders = &value
	}
	if value, ok := _c.mutation.OnlinePaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64, value)
		_node.OnlinePaidAmount = &value
	}
	if value, ok := _c.mutation.CashPaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt, value)
		_node.CashPaidOrders = &value
	}
	if value, ok := _c.mutation.CashPaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64, value)
		_node.CashPaidAmount = &value
	}
	if value, ok := _c.mutation.CashServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64, value)
		_node.CashServiceFeeAmount = &value
	}
	if value, ok := _c.mutation.ChargebackOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt, value)
		_node.ChargebackOrders = &value
	}
	if value, ok := _c.mutation.ChargebackAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64, value)
		_node.ChargebackAmount = &value
	}
	if value, ok := _c.mutation.StampCardOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt, value)
		_node.StampCardOrders = &value
	}
	if value, ok := _c.mutation.StampCardAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64, value)
		_node.StampCardAmount = &value
	}
	if value, ok := _c.mutation.ServiceFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64, value)
		_node.ServiceFeeRate = &value
	}
	if value, ok := _c.mutation.ServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64, value)
		_node.ServiceFeeAmount = &value
	}
	if value, ok := _c.mutation.AdminFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64, value)
		_node.AdminFeeRate = &value
	}
	if value, ok := _c.mutation.AdminFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64, value)
		_node.AdminFeeAmount = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.PaidOnlinePayments(); ok {
		_spec.SetField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64, value)
		_node.PaidOnlinePayments = &value
	}
	if value, ok := _c.mutation.OutstandingAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64, value)
		_node.OutstandingAmount = &value
	}
	if value, ok := _c.mutation.OutstandingBalance(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64, value)
		_node.OutstandingBalance = &value
	}
	if value, ok := _c.mutation.PayoutAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64, value)
		_node.PayoutAmount = &value
	}
	if value, ok := _c.mutation.AmountDue(); ok {
		_spec.SetField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64, value)
		_node.AmountDue = &value
	}
	if value, ok := _c.mutation.ConfirmationPaymentDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationPaymentDate, field.TypeTime, value)
		_node.ConfirmationPaymentDate = &value
	}
	if value, ok := _c.mutation.ConfirmationCodeMessage(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationCodeMessage, field.TypeString, value)
		_node.ConfirmationCodeMessage = value
	}
	if nodes := _c.mutation.OrderItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lieferandoinvoice.OrderItemsTable,
			Columns: []string{lieferandoinvoice.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TipItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lieferandoinvoice.TipItemsTable,
			Columns: []string{lieferandoinvoice.TipItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LieferandoInvoiceCreateBulk is the builder for creating many LieferandoInvoice entities in bulk.
type LieferandoInvoiceCreateBulk struct {
	config
	err      error
	builders []*LieferandoInvoiceCreate
}

// Save creates the LieferandoInvoice entities in the database.
func (_c *LieferandoInvoiceCreateBulk) Save(ctx context.Context) ([]*LieferandoInvoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LieferandoInvoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LieferandoInvoiceMutation)
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
func (_c *LieferandoInvoiceCreateBulk) SaveX(ctx context.Context) []*LieferandoInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LieferandoInvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LieferandoInvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
