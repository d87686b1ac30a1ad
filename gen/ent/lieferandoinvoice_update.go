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
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// LieferandoInvoiceUpdate is the builder for updating LieferandoInvoice entities.
type LieferandoInvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *LieferandoInvoiceMutation
}

// Where appends a list predicates to the LieferandoInvoiceUpdate builder.
func (_u *LieferandoInvoiceUpdate) Where(ps ...predicate.LieferandoInvoice) *LieferandoInvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *LieferandoInvoiceUpdate) SetInvoiceNumber(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableInvoiceNumber(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *LieferandoInvoiceUpdate) SetInvoiceDate(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *LieferandoInvoiceUpdate) ClearInvoiceDate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *LieferandoInvoiceUpdate) SetPeriodStart(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillablePeriodStart(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *LieferandoInvoiceUpdate) ClearPeriodStart() *LieferandoInvoiceUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *LieferandoInvoiceUpdate) SetPeriodEnd(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillablePeriodEnd(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *LieferandoInvoiceUpdate) ClearPeriodEnd() *LieferandoInvoiceUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierName(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierName(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierName() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *LieferandoInvoiceUpdate) SetTotalAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableTotalAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *LieferandoInvoiceUpdate) AddTotalAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearTotalAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LieferandoInvoiceUpdate) SetStatus(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableStatus(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *LieferandoInvoiceUpdate) SetExtractionConfidence(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableExtractionConfidence(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *LieferandoInvoiceUpdate) AddExtractionConfidence(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LieferandoInvoiceUpdate) SetNeedsReview(v bool) *LieferandoInvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableNeedsReview(v *bool) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *LieferandoInvoiceUpdate) SetRawText(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableRawText(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *LieferandoInvoiceUpdate) ClearRawText() *LieferandoInvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *LieferandoInvoiceUpdate) SetSourceFilename(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSourceFilename(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *LieferandoInvoiceUpdate) ClearSourceFilename() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *LieferandoInvoiceUpdate) SetEmailSubject(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableEmailSubject(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *LieferandoInvoiceUpdate) ClearEmailSubject() *LieferandoInvoiceUpdate {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *LieferandoInvoiceUpdate) SetEmailSender(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableEmailSender(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *LieferandoInvoiceUpdate) ClearEmailSender() *LieferandoInvoiceUpdate {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *LieferandoInvoiceUpdate) SetEmailDate(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableEmailDate(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *LieferandoInvoiceUpdate) ClearEmailDate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LieferandoInvoiceUpdate) SetCreatedAt(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCreatedAt(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LieferandoInvoiceUpdate) SetUpdatedAt(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *LieferandoInvoiceUpdate) SetRestaurantName(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableRestaurantName(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *LieferandoInvoiceUpdate) ClearRestaurantName() *LieferandoInvoiceUpdate {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *LieferandoInvoiceUpdate) SetCustomerNumber(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCustomerNumber(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *LieferandoInvoiceUpdate) ClearCustomerNumber() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetCustomerCompany sets the "customer_company" field.
func (_u *LieferandoInvoiceUpdate) SetCustomerCompany(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetCustomerCompany(v)
	return _u
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCustomerCompany(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCustomerCompany(*v)
	}
	return _u
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (_u *LieferandoInvoiceUpdate) ClearCustomerCompany() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCustomerCompany()
	return _u
}

// SetCustomerTaxNumber sets the "customer_tax_number" field.
func (_u *LieferandoInvoiceUpdate) SetCustomerTaxNumber(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetCustomerTaxNumber(v)
	return _u
}

// SetNillableCustomerTaxNumber sets the "customer_tax_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCustomerTaxNumber(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCustomerTaxNumber(*v)
	}
	return _u
}

// ClearCustomerTaxNumber clears the value of the "customer_tax_number" field.
func (_u *LieferandoInvoiceUpdate) ClearCustomerTaxNumber() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCustomerTaxNumber()
	return _u
}

// SetCustomerBankIban sets the "customer_bank_iban" field.
func (_u *LieferandoInvoiceUpdate) SetCustomerBankIban(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetCustomerBankIban(v)
	return _u
}

// SetNillableCustomerBankIban sets the "customer_bank_iban" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCustomerBankIban(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCustomerBankIban(*v)
	}
	return _u
}

// ClearCustomerBankIban clears the value of the "customer_bank_iban" field.
func (_u *LieferandoInvoiceUpdate) ClearCustomerBankIban() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCustomerBankIban()
	return _u
}

// SetSupplierIban sets the "supplier_iban" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierIban(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierIban(v)
	return _u
}

// SetNillableSupplierIban sets the "supplier_iban" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierIban(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierIban(*v)
	}
	return _u
}

// ClearSupplierIban clears the value of the "supplier_iban" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierIban() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierIban()
	return _u
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierVatID(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierVatID(v)
	return _u
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierVatID(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierVatID(*v)
	}
	return _u
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierVatID() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierVatID()
	return _u
}

// SetSupplierManagingDirector sets the "supplier_managing_director" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierManagingDirector(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierManagingDirector(v)
	return _u
}

// SetNillableSupplierManagingDirector sets the "supplier_managing_director" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierManagingDirector(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierManagingDirector(*v)
	}
	return _u
}

// ClearSupplierManagingDirector clears the value of the "supplier_managing_director" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierManagingDirector() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierManagingDirector()
	return _u
}

// SetSupplierCourtRegistry sets the "supplier_court_registry" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierCourtRegistry(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierCourtRegistry(v)
	return _u
}

// SetNillableSupplierCourtRegistry sets the "supplier_court_registry" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierCourtRegistry(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierCourtRegistry(*v)
	}
	return _u
}

// ClearSupplierCourtRegistry clears the value of the "supplier_court_registry" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierCourtRegistry() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierCourtRegistry()
	return _u
}

// SetSupplierHrb sets the "supplier_hrb" field.
func (_u *LieferandoInvoiceUpdate) SetSupplierHrb(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetSupplierHrb(v)
	return _u
}

// SetNillableSupplierHrb sets the "supplier_hrb" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSupplierHrb(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSupplierHrb(*v)
	}
	return _u
}

// ClearSupplierHrb clears the value of the "supplier_hrb" field.
func (_u *LieferandoInvoiceUpdate) ClearSupplierHrb() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSupplierHrb()
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *LieferandoInvoiceUpdate) SetTotalOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableTotalOrders(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *LieferandoInvoiceUpdate) AddTotalOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (_u *LieferandoInvoiceUpdate) ClearTotalOrders() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTotalOrders()
	return _u
}

// SetTotalRevenue sets the "total_revenue" field.
func (_u *LieferandoInvoiceUpdate) SetTotalRevenue(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetTotalRevenue()
	_u.mutation.SetTotalRevenue(v)
	return _u
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableTotalRevenue(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetTotalRevenue(*v)
	}
	return _u
}

// AddTotalRevenue adds value to the "total_revenue" field.
func (_u *LieferandoInvoiceUpdate) AddTotalRevenue(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddTotalRevenue(v)
	return _u
}

// ClearTotalRevenue clears the value of the "total_revenue" field.
func (_u *LieferandoInvoiceUpdate) ClearTotalRevenue() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTotalRevenue()
	return _u
}

// SetOnlinePaidOrders sets the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) SetOnlinePaidOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetOnlinePaidOrders()
	_u.mutation.SetOnlinePaidOrders(v)
	return _u
}

// SetNillableOnlinePaidOrders sets the "online_paid_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableOnlinePaidOrders(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetOnlinePaidOrders(*v)
	}
	return _u
}

// AddOnlinePaidOrders adds value to the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) AddOnlinePaidOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddOnlinePaidOrders(v)
	return _u
}

// ClearOnlinePaidOrders clears the value of the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) ClearOnlinePaidOrders() *LieferandoInvoiceUpdate {
	_u.mutation.ClearOnlinePaidOrders()
	return _u
}

// SetOnlinePaidAmount sets the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) SetOnlinePaidAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetOnlinePaidAmount()
	_u.mutation.SetOnlinePaidAmount(v)
	return _u
}

// SetNillableOnlinePaidAmount sets the "online_paid_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableOnlinePaidAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetOnlinePaidAmount(*v)
	}
	return _u
}

// AddOnlinePaidAmount adds value to the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) AddOnlinePaidAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddOnlinePaidAmount(v)
	return _u
}

// ClearOnlinePaidAmount clears the value of the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearOnlinePaidAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearOnlinePaidAmount()
	return _u
}

// SetCashPaidOrders sets the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) SetCashPaidOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetCashPaidOrders()
	_u.mutation.SetCashPaidOrders(v)
	return _u
}

// SetNillableCashPaidOrders sets the "cash_paid_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCashPaidOrders(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCashPaidOrders(*v)
	}
	return _u
}

// AddCashPaidOrders adds value to the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) AddCashPaidOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddCashPaidOrders(v)
	return _u
}

// ClearCashPaidOrders clears the value of the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdate) ClearCashPaidOrders() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCashPaidOrders()
	return _u
}

// SetCashPaidAmount sets the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) SetCashPaidAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetCashPaidAmount()
	_u.mutation.SetCashPaidAmount(v)
	return _u
}

// SetNillableCashPaidAmount sets the "cash_paid_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCashPaidAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCashPaidAmount(*v)
	}
	return _u
}

// AddCashPaidAmount adds value to the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) AddCashPaidAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddCashPaidAmount(v)
	return _u
}

// ClearCashPaidAmount clears the value of the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearCashPaidAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCashPaidAmount()
	return _u
}

// SetCashServiceFeeAmount sets the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) SetCashServiceFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetCashServiceFeeAmount()
	_u.mutation.SetCashServiceFeeAmount(v)
	return _u
}

// SetNillableCashServiceFeeAmount sets the "cash_service_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableCashServiceFeeAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetCashServiceFeeAmount(*v)
	}
	return _u
}

// AddCashServiceFeeAmount adds value to the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) AddCashServiceFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddCashServiceFeeAmount(v)
	return _u
}

// ClearCashServiceFeeAmount clears the value of the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearCashServiceFeeAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearCashServiceFeeAmount()
	return _u
}

// SetChargebackOrders sets the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdate) SetChargebackOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetChargebackOrders()
	_u.mutation.SetChargebackOrders(v)
	return _u
}

// SetNillableChargebackOrders sets the "chargeback_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableChargebackOrders(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetChargebackOrders(*v)
	}
	return _u
}

// AddChargebackOrders adds value to the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdate) AddChargebackOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddChargebackOrders(v)
	return _u
}

// ClearChargebackOrders clears the value of the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdate) ClearChargebackOrders() *LieferandoInvoiceUpdate {
	_u.mutation.ClearChargebackOrders()
	return _u
}

// SetChargebackAmount sets the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdate) SetChargebackAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetChargebackAmount()
	_u.mutation.SetChargebackAmount(v)
	return _u
}

// SetNillableChargebackAmount sets the "chargeback_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableChargebackAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetChargebackAmount(*v)
	}
	return _u
}

// AddChargebackAmount adds value to the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdate) AddChargebackAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddChargebackAmount(v)
	return _u
}

// ClearChargebackAmount clears the value of the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearChargebackAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearChargebackAmount()
	return _u
}

// SetStampCardOrders sets the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdate) SetStampCardOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.ResetStampCardOrders()
	_u.mutation.SetStampCardOrders(v)
	return _u
}

// SetNillableStampCardOrders sets the "stamp_card_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableStampCardOrders(v *int) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetStampCardOrders(*v)
	}
	return _u
}

// AddStampCardOrders adds value to the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdate) AddStampCardOrders(v int) *LieferandoInvoiceUpdate {
	_u.mutation.AddStampCardOrders(v)
	return _u
}

// ClearStampCardOrders clears the value of the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdate) ClearStampCardOrders() *LieferandoInvoiceUpdate {
	_u.mutation.ClearStampCardOrders()
	return _u
}

// SetStampCardAmount sets the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdate) SetStampCardAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetStampCardAmount()
	_u.mutation.SetStampCardAmount(v)
	return _u
}

// SetNillableStampCardAmount sets the "stamp_card_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableStampCardAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetStampCardAmount(*v)
	}
	return _u
}

// AddStampCardAmount adds value to the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdate) AddStampCardAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddStampCardAmount(v)
	return _u
}

// ClearStampCardAmount clears the value of the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearStampCardAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearStampCardAmount()
	return _u
}

// SetServiceFeeRate sets the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) SetServiceFeeRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetServiceFeeRate()
	_u.mutation.SetServiceFeeRate(v)
	return _u
}

// SetNillableServiceFeeRate sets the "service_fee_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableServiceFeeRate(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetServiceFeeRate(*v)
	}
	return _u
}

// AddServiceFeeRate adds value to the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) AddServiceFeeRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddServiceFeeRate(v)
	return _u
}

// ClearServiceFeeRate clears the value of the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) ClearServiceFeeRate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearServiceFeeRate()
	return _u
}

// SetServiceFeeAmount sets the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) SetServiceFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetServiceFeeAmount()
	_u.mutation.SetServiceFeeAmount(v)
	return _u
}

// SetNillableServiceFeeAmount sets the "service_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableServiceFeeAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetServiceFeeAmount(*v)
	}
	return _u
}

// AddServiceFeeAmount adds value to the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) AddServiceFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddServiceFeeAmount(v)
	return _u
}

// ClearServiceFeeAmount clears the value of the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearServiceFeeAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearServiceFeeAmount()
	return _u
}

// SetAdminFeeRate sets the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) SetAdminFeeRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetAdminFeeRate()
	_u.mutation.SetAdminFeeRate(v)
	return _u
}

// SetNillableAdminFeeRate sets the "admin_fee_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableAdminFeeRate(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetAdminFeeRate(*v)
	}
	return _u
}

// AddAdminFeeRate adds value to the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) AddAdminFeeRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddAdminFeeRate(v)
	return _u
}

// ClearAdminFeeRate clears the value of the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdate) ClearAdminFeeRate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearAdminFeeRate()
	return _u
}

// SetAdminFeeAmount sets the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) SetAdminFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetAdminFeeAmount()
	_u.mutation.SetAdminFeeAmount(v)
	return _u
}

// SetNillableAdminFeeAmount sets the "admin_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableAdminFeeAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetAdminFeeAmount(*v)
	}
	return _u
}

// AddAdminFeeAmount adds value to the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) AddAdminFeeAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddAdminFeeAmount(v)
	return _u
}

// ClearAdminFeeAmount clears the value of the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearAdminFeeAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearAdminFeeAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *LieferandoInvoiceUpdate) SetSubtotal(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableSubtotal(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *LieferandoInvoiceUpdate) AddSubtotal(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *LieferandoInvoiceUpdate) ClearSubtotal() *LieferandoInvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *LieferandoInvoiceUpdate) SetTaxRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableTaxRate(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *LieferandoInvoiceUpdate) AddTaxRate(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *LieferandoInvoiceUpdate) ClearTaxRate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *LieferandoInvoiceUpdate) SetTaxAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableTaxAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *LieferandoInvoiceUpdate) AddTaxAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearTaxAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetPaidOnlinePayments sets the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdate) SetPaidOnlinePayments(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetPaidOnlinePayments()
	_u.mutation.SetPaidOnlinePayments(v)
	return _u
}

// SetNillablePaidOnlinePayments sets the "paid_online_payments" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillablePaidOnlinePayments(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetPaidOnlinePayments(*v)
	}
	return _u
}

// AddPaidOnlinePayments adds value to the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdate) AddPaidOnlinePayments(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddPaidOnlinePayments(v)
	return _u
}

// ClearPaidOnlinePayments clears the value of the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdate) ClearPaidOnlinePayments() *LieferandoInvoiceUpdate {
	_u.mutation.ClearPaidOnlinePayments()
	return _u
}

// SetOutstandingAmount sets the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdate) SetOutstandingAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetOutstandingAmount()
	_u.mutation.SetOutstandingAmount(v)
	return _u
}

// SetNillableOutstandingAmount sets the "outstanding_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableOutstandingAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetOutstandingAmount(*v)
	}
	return _u
}

// AddOutstandingAmount adds value to the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdate) AddOutstandingAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddOutstandingAmount(v)
	return _u
}

// ClearOutstandingAmount clears the value of the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearOutstandingAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearOutstandingAmount()
	return _u
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdate) SetOutstandingBalance(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetOutstandingBalance()
	_u.mutation.SetOutstandingBalance(v)
	return _u
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableOutstandingBalance(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetOutstandingBalance(*v)
	}
	return _u
}

// AddOutstandingBalance adds value to the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdate) AddOutstandingBalance(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddOutstandingBalance(v)
	return _u
}

// ClearOutstandingBalance clears the value of the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdate) ClearOutstandingBalance() *LieferandoInvoiceUpdate {
	_u.mutation.ClearOutstandingBalance()
	return _u
}

// SetPayoutAmount sets the "payout_amount" field.
func (_u *LieferandoInvoiceUpdate) SetPayoutAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetPayoutAmount()
	_u.mutation.SetPayoutAmount(v)
	return _u
}

// SetNillablePayoutAmount sets the "payout_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillablePayoutAmount(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetPayoutAmount(*v)
	}
	return _u
}

// AddPayoutAmount adds value to the "payout_amount" field.
func (_u *LieferandoInvoiceUpdate) AddPayoutAmount(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddPayoutAmount(v)
	return _u
}

// ClearPayoutAmount clears the value of the "payout_amount" field.
func (_u *LieferandoInvoiceUpdate) ClearPayoutAmount() *LieferandoInvoiceUpdate {
	_u.mutation.ClearPayoutAmount()
	return _u
}

// SetAmountDue sets the "amount_due" field.
func (_u *LieferandoInvoiceUpdate) SetAmountDue(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.ResetAmountDue()
	_u.mutation.SetAmountDue(v)
	return _u
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableAmountDue(v *float64) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetAmountDue(*v)
	}
	return _u
}

// AddAmountDue adds value to the "amount_due" field.
func (_u *LieferandoInvoiceUpdate) AddAmountDue(v float64) *LieferandoInvoiceUpdate {
	_u.mutation.AddAmountDue(v)
	return _u
}

// ClearAmountDue clears the value of the "amount_due" field.
func (_u *LieferandoInvoiceUpdate) ClearAmountDue() *LieferandoInvoiceUpdate {
	_u.mutation.ClearAmountDue()
	return _u
}

// SetConfirmationPaymentDate sets the "confirmation_payment_date" field.
func (_u *LieferandoInvoiceUpdate) SetConfirmationPaymentDate(v time.Time) *LieferandoInvoiceUpdate {
	_u.mutation.SetConfirmationPaymentDate(v)
	return _u
}

// SetNillableConfirmationPaymentDate sets the "confirmation_payment_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableConfirmationPaymentDate(v *time.Time) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetConfirmationPaymentDate(*v)
	}
	return _u
}

// ClearConfirmationPaymentDate clears the value of the "confirmation_payment_date" field.
func (_u *LieferandoInvoiceUpdate) ClearConfirmationPaymentDate() *LieferandoInvoiceUpdate {
	_u.mutation.ClearConfirmationPaymentDate()
	return _u
}

// SetConfirmationCodeMessage sets the "confirmation_code_message" field.
func (_u *LieferandoInvoiceUpdate) SetConfirmationCodeMessage(v string) *LieferandoInvoiceUpdate {
	_u.mutation.SetConfirmationCodeMessage(v)
	return _u
}

// SetNillableConfirmationCodeMessage sets the "confirmation_code_message" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdate) SetNillableConfirmationCodeMessage(v *string) *LieferandoInvoiceUpdate {
	if v != nil {
		_u.SetConfirmationCodeMessage(*v)
	}
	return _u
}

// ClearConfirmationCodeMessage clears the value of the "confirmation_code_message" field.
func (_u *LieferandoInvoiceUpdate) ClearConfirmationCodeMessage() *LieferandoInvoiceUpdate {
	_u.mutation.ClearConfirmationCodeMessage()
	return _u
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *LieferandoInvoiceUpdate) AddOrderItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdate {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *LieferandoInvoiceUpdate) AddOrderItems(v ...*OrderItem) *LieferandoInvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// AddTipItemIDs adds the "tip_items" edge to the TipItem entity by IDs.
func (_u *LieferandoInvoiceUpdate) AddTipItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdate {
	_u.mutation.AddTipItemIDs(ids...)
	return _u
}

// AddTipItems adds the "tip_items" edges to the TipItem entity.
func (_u *LieferandoInvoiceUpdate) AddTipItems(v ...*TipItem) *LieferandoInvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTipItemIDs(ids...)
}

// Mutation returns the LieferandoInvoiceMutation object of the builder.
func (_u *LieferandoInvoiceUpdate) Mutation() *LieferandoInvoiceMutation {
	return _u.mutation
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *LieferandoInvoiceUpdate) ClearOrderItems() *LieferandoInvoiceUpdate {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *LieferandoInvoiceUpdate) RemoveOrderItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdate {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *LieferandoInvoiceUpdate) RemoveOrderItems(v ...*OrderItem) *LieferandoInvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// ClearTipItems clears all "tip_items" edges to the TipItem entity.
func (_u *LieferandoInvoiceUpdate) ClearTipItems() *LieferandoInvoiceUpdate {
	_u.mutation.ClearTipItems()
	return _u
}

// RemoveTipItemIDs removes the "tip_items" edge to TipItem entities by IDs.
func (_u *LieferandoInvoiceUpdate) RemoveTipItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdate {
	_u.mutation.RemoveTipItemIDs(ids...)
	return _u
}

// RemoveTipItems removes "tip_items" edges to TipItem entities.
func (_u *LieferandoInvoiceUpdate) RemoveTipItems(v ...*TipItem) *LieferandoInvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTipItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LieferandoInvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LieferandoInvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LieferandoInvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LieferandoInvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LieferandoInvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lieferandoinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LieferandoInvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := lieferandoinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lieferandoinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfirmationCodeMessage(); ok {
		if err := lieferandoinvoice.ConfirmationCodeMessageValidator(v); err != nil {
			return &ValidationError{Name: "confirmation_code_message", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.confirmation_code_message": %w`, err)}
		}
	}
	return nil
}

func (_u *LieferandoInvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lieferandoinvoice.Table, lieferandoinvoice.Columns, sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lieferandoinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(lieferandoinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(lieferandoinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(lieferandoinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(lieferandoinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(lieferandoinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(lieferandoinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(lieferandoinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerCompany(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerCompany, field.TypeString, value)
	}
	if _u.mutation.CustomerCompanyCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerCompany, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerTaxNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerTaxNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxNumberCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerBankIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerBankIban, field.TypeString, value)
	}
	if _u.mutation.CustomerBankIbanCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerBankIban, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierIban, field.TypeString, value)
	}
	if _u.mutation.SupplierIbanCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierIban, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierVatID(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierVatID, field.TypeString, value)
	}
	if _u.mutation.SupplierVatIDCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierVatID, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierManagingDirector(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierManagingDirector, field.TypeString, value)
	}
	if _u.mutation.SupplierManagingDirectorCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierManagingDirector, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierCourtRegistry(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierCourtRegistry, field.TypeString, value)
	}
	if _u.mutation.SupplierCourtRegistryCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierCourtRegistry, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierHrb(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierHrb, field.TypeString, value)
	}
	if _u.mutation.SupplierHrbCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierHrb, field.TypeString)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if _u.mutation.TotalOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalRevenue(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalRevenue(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalRevenueCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OnlinePaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOnlinePaidOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt, value)
	}
	if _u.mutation.OnlinePaidOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.OnlinePaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOnlinePaidAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.OnlinePaidAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashPaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCashPaidOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt, value)
	}
	if _u.mutation.CashPaidOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.CashPaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashPaidAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CashPaidAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashServiceFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CashServiceFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ChargebackOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChargebackOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt, value)
	}
	if _u.mutation.ChargebackOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.ChargebackAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChargebackAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ChargebackAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StampCardOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStampCardOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt, value)
	}
	if _u.mutation.StampCardOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.StampCardAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStampCardAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64, value)
	}
	if _u.mutation.StampCardAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ServiceFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServiceFeeRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64, value)
	}
	if _u.mutation.ServiceFeeRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServiceFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ServiceFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdminFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminFeeRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64, value)
	}
	if _u.mutation.AdminFeeRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdminFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AdminFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaidOnlinePayments(); ok {
		_spec.SetField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaidOnlinePayments(); ok {
		_spec.AddField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64, value)
	}
	if _u.mutation.PaidOnlinePaymentsCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutstandingAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64, value)
	}
	if _u.mutation.OutstandingAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutstandingBalance(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingBalance(); ok {
		_spec.AddField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if _u.mutation.OutstandingBalanceCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayoutAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPayoutAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PayoutAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountDue(); ok {
		_spec.SetField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountDue(); ok {
		_spec.AddField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64, value)
	}
	if _u.mutation.AmountDueCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfirmationPaymentDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.ConfirmationPaymentDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldConfirmationPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmationCodeMessage(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationCodeMessage, field.TypeString, value)
	}
	if _u.mutation.ConfirmationCodeMessageCleared() {
		_spec.ClearField(lieferandoinvoice.FieldConfirmationCodeMessage, field.TypeString)
	}
	if _u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TipItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTipItemsIDs(); len(nodes) > 0 && !_u.mutation.TipItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TipItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lieferandoinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LieferandoInvoiceUpdateOne is the builder for updating a single LieferandoInvoice entity.
type LieferandoInvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LieferandoInvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *LieferandoInvoiceUpdateOne) SetInvoiceNumber(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *LieferandoInvoiceUpdateOne) SetInvoiceDate(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *LieferandoInvoiceUpdateOne) ClearInvoiceDate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *LieferandoInvoiceUpdateOne) SetPeriodStart(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillablePeriodStart(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *LieferandoInvoiceUpdateOne) ClearPeriodStart() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *LieferandoInvoiceUpdateOne) SetPeriodEnd(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillablePeriodEnd(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *LieferandoInvoiceUpdateOne) ClearPeriodEnd() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierName(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierName(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierName() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetTotalAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableTotalAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddTotalAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearTotalAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LieferandoInvoiceUpdateOne) SetStatus(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableStatus(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *LieferandoInvoiceUpdateOne) SetExtractionConfidence(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableExtractionConfidence(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *LieferandoInvoiceUpdateOne) AddExtractionConfidence(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LieferandoInvoiceUpdateOne) SetNeedsReview(v bool) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableNeedsReview(v *bool) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *LieferandoInvoiceUpdateOne) SetRawText(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableRawText(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *LieferandoInvoiceUpdateOne) ClearRawText() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *LieferandoInvoiceUpdateOne) SetSourceFilename(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSourceFilename(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSourceFilename() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSourceFilename()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *LieferandoInvoiceUpdateOne) SetEmailSubject(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableEmailSubject(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *LieferandoInvoiceUpdateOne) ClearEmailSubject() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailSender sets the "email_sender" field.
func (_u *LieferandoInvoiceUpdateOne) SetEmailSender(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetEmailSender(v)
	return _u
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableEmailSender(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailSender(*v)
	}
	return _u
}

// ClearEmailSender clears the value of the "email_sender" field.
func (_u *LieferandoInvoiceUpdateOne) ClearEmailSender() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearEmailSender()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *LieferandoInvoiceUpdateOne) SetEmailDate(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableEmailDate(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *LieferandoInvoiceUpdateOne) ClearEmailDate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LieferandoInvoiceUpdateOne) SetCreatedAt(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LieferandoInvoiceUpdateOne) SetUpdatedAt(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *LieferandoInvoiceUpdateOne) SetRestaurantName(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableRestaurantName(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (_u *LieferandoInvoiceUpdateOne) ClearRestaurantName() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearRestaurantName()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *LieferandoInvoiceUpdateOne) SetCustomerNumber(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCustomerNumber(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCustomerNumber() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetCustomerCompany sets the "customer_company" field.
func (_u *LieferandoInvoiceUpdateOne) SetCustomerCompany(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetCustomerCompany(v)
	return _u
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCustomerCompany(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerCompany(*v)
	}
	return _u
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCustomerCompany() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCustomerCompany()
	return _u
}

// SetCustomerTaxNumber sets the "customer_tax_number" field.
func (_u *LieferandoInvoiceUpdateOne) SetCustomerTaxNumber(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetCustomerTaxNumber(v)
	return _u
}

// SetNillableCustomerTaxNumber sets the "customer_tax_number" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCustomerTaxNumber(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerTaxNumber(*v)
	}
	return _u
}

// ClearCustomerTaxNumber clears the value of the "customer_tax_number" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCustomerTaxNumber() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCustomerTaxNumber()
	return _u
}

// SetCustomerBankIban sets the "customer_bank_iban" field.
func (_u *LieferandoInvoiceUpdateOne) SetCustomerBankIban(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetCustomerBankIban(v)
	return _u
}

// SetNillableCustomerBankIban sets the "customer_bank_iban" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCustomerBankIban(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerBankIban(*v)
	}
	return _u
}

// ClearCustomerBankIban clears the value of the "customer_bank_iban" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCustomerBankIban() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCustomerBankIban()
	return _u
}

// SetSupplierIban sets the "supplier_iban" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierIban(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierIban(v)
	return _u
}

// SetNillableSupplierIban sets the "supplier_iban" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierIban(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierIban(*v)
	}
	return _u
}

// ClearSupplierIban clears the value of the "supplier_iban" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierIban() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierIban()
	return _u
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierVatID(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierVatID(v)
	return _u
}

// SetNillableSupplierVatID sets the "supplier_vat_id" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierVatID(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierVatID(*v)
	}
	return _u
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierVatID() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierVatID()
	return _u
}

// SetSupplierManagingDirector sets the "supplier_managing_director" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierManagingDirector(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierManagingDirector(v)
	return _u
}

// SetNillableSupplierManagingDirector sets the "supplier_managing_director" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierManagingDirector(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierManagingDirector(*v)
	}
	return _u
}

// ClearSupplierManagingDirector clears the value of the "supplier_managing_director" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierManagingDirector() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierManagingDirector()
	return _u
}

// SetSupplierCourtRegistry sets the "supplier_court_registry" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierCourtRegistry(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierCourtRegistry(v)
	return _u
}

// SetNillableSupplierCourtRegistry sets the "supplier_court_registry" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierCourtRegistry(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierCourtRegistry(*v)
	}
	return _u
}

// ClearSupplierCourtRegistry clears the value of the "supplier_court_registry" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierCourtRegistry() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierCourtRegistry()
	return _u
}

// SetSupplierHrb sets the "supplier_hrb" field.
func (_u *LieferandoInvoiceUpdateOne) SetSupplierHrb(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetSupplierHrb(v)
	return _u
}

// SetNillableSupplierHrb sets the "supplier_hrb" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSupplierHrb(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierHrb(*v)
	}
	return _u
}

// ClearSupplierHrb clears the value of the "supplier_hrb" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSupplierHrb() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSupplierHrb()
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *LieferandoInvoiceUpdateOne) SetTotalOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableTotalOrders(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *LieferandoInvoiceUpdateOne) AddTotalOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (_u *LieferandoInvoiceUpdateOne) ClearTotalOrders() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTotalOrders()
	return _u
}

// SetTotalRevenue sets the "total_revenue" field.
func (_u *LieferandoInvoiceUpdateOne) SetTotalRevenue(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetTotalRevenue()
	_u.mutation.SetTotalRevenue(v)
	return _u
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableTotalRevenue(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalRevenue(*v)
	}
	return _u
}

// AddTotalRevenue adds value to the "total_revenue" field.
func (_u *LieferandoInvoiceUpdateOne) AddTotalRevenue(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTotalRevenue(v)
	return _u
}

// ClearTotalRevenue clears the value of the "total_revenue" field.
func (_u *LieferandoInvoiceUpdateOne) ClearTotalRevenue() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTotalRevenue()
	return _u
}

// SetOnlinePaidOrders sets the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) SetOnlinePaidOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetOnlinePaidOrders()
	_u.mutation.SetOnlinePaidOrders(v)
	return _u
}

// SetNillableOnlinePaidOrders sets the "online_paid_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableOnlinePaidOrders(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetOnlinePaidOrders(*v)
	}
	return _u
}

// AddOnlinePaidOrders adds value to the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) AddOnlinePaidOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddOnlinePaidOrders(v)
	return _u
}

// ClearOnlinePaidOrders clears the value of the "online_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) ClearOnlinePaidOrders() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearOnlinePaidOrders()
	return _u
}

// SetOnlinePaidAmount sets the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetOnlinePaidAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetOnlinePaidAmount()
	_u.mutation.SetOnlinePaidAmount(v)
	return _u
}

// SetNillableOnlinePaidAmount sets the "online_paid_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableOnlinePaidAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetOnlinePaidAmount(*v)
	}
	return _u
}

// AddOnlinePaidAmount adds value to the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddOnlinePaidAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddOnlinePaidAmount(v)
	return _u
}

// ClearOnlinePaidAmount clears the value of the "online_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearOnlinePaidAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearOnlinePaidAmount()
	return _u
}

// SetCashPaidOrders sets the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) SetCashPaidOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetCashPaidOrders()
	_u.mutation.SetCashPaidOrders(v)
	return _u
}

// SetNillableCashPaidOrders sets the "cash_paid_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCashPaidOrders(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCashPaidOrders(*v)
	}
	return _u
}

// AddCashPaidOrders adds value to the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) AddCashPaidOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddCashPaidOrders(v)
	return _u
}

// ClearCashPaidOrders clears the value of the "cash_paid_orders" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCashPaidOrders() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCashPaidOrders()
	return _u
}

// SetCashPaidAmount sets the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetCashPaidAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetCashPaidAmount()
	_u.mutation.SetCashPaidAmount(v)
	return _u
}

// SetNillableCashPaidAmount sets the "cash_paid_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCashPaidAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCashPaidAmount(*v)
	}
	return _u
}

// AddCashPaidAmount adds value to the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddCashPaidAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddCashPaidAmount(v)
	return _u
}

// ClearCashPaidAmount clears the value of the "cash_paid_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCashPaidAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCashPaidAmount()
	return _u
}

// SetCashServiceFeeAmount sets the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetCashServiceFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetCashServiceFeeAmount()
	_u.mutation.SetCashServiceFeeAmount(v)
	return _u
}

// SetNillableCashServiceFeeAmount sets the "cash_service_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableCashServiceFeeAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetCashServiceFeeAmount(*v)
	}
	return _u
}

// AddCashServiceFeeAmount adds value to the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddCashServiceFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddCashServiceFeeAmount(v)
	return _u
}

// ClearCashServiceFeeAmount clears the value of the "cash_service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearCashServiceFeeAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearCashServiceFeeAmount()
	return _u
}

// SetChargebackOrders sets the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdateOne) SetChargebackOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetChargebackOrders()
	_u.mutation.SetChargebackOrders(v)
	return _u
}

// SetNillableChargebackOrders sets the "chargeback_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableChargebackOrders(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetChargebackOrders(*v)
	}
	return _u
}

// AddChargebackOrders adds value to the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdateOne) AddChargebackOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddChargebackOrders(v)
	return _u
}

// ClearChargebackOrders clears the value of the "chargeback_orders" field.
func (_u *LieferandoInvoiceUpdateOne) ClearChargebackOrders() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearChargebackOrders()
	return _u
}

// SetChargebackAmount sets the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetChargebackAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetChargebackAmount()
	_u.mutation.SetChargebackAmount(v)
	return _u
}

// SetNillableChargebackAmount sets the "chargeback_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableChargebackAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetChargebackAmount(*v)
	}
	return _u
}

// AddChargebackAmount adds value to the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddChargebackAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddChargebackAmount(v)
	return _u
}

// ClearChargebackAmount clears the value of the "chargeback_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearChargebackAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearChargebackAmount()
	return _u
}

// SetStampCardOrders sets the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdateOne) SetStampCardOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetStampCardOrders()
	_u.mutation.SetStampCardOrders(v)
	return _u
}

// SetNillableStampCardOrders sets the "stamp_card_orders" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableStampCardOrders(v *int) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetStampCardOrders(*v)
	}
	return _u
}

// AddStampCardOrders adds value to the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdateOne) AddStampCardOrders(v int) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddStampCardOrders(v)
	return _u
}

// ClearStampCardOrders clears the value of the "stamp_card_orders" field.
func (_u *LieferandoInvoiceUpdateOne) ClearStampCardOrders() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearStampCardOrders()
	return _u
}

// SetStampCardAmount sets the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetStampCardAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetStampCardAmount()
	_u.mutation.SetStampCardAmount(v)
	return _u
}

// SetNillableStampCardAmount sets the "stamp_card_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableStampCardAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetStampCardAmount(*v)
	}
	return _u
}

// AddStampCardAmount adds value to the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddStampCardAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddStampCardAmount(v)
	return _u
}

// ClearStampCardAmount clears the value of the "stamp_card_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearStampCardAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearStampCardAmount()
	return _u
}

// SetServiceFeeRate sets the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) SetServiceFeeRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetServiceFeeRate()
	_u.mutation.SetServiceFeeRate(v)
	return _u
}

// SetNillableServiceFeeRate sets the "service_fee_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableServiceFeeRate(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetServiceFeeRate(*v)
	}
	return _u
}

// AddServiceFeeRate adds value to the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) AddServiceFeeRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddServiceFeeRate(v)
	return _u
}

// ClearServiceFeeRate clears the value of the "service_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) ClearServiceFeeRate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearServiceFeeRate()
	return _u
}

// SetServiceFeeAmount sets the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetServiceFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetServiceFeeAmount()
	_u.mutation.SetServiceFeeAmount(v)
	return _u
}

// SetNillableServiceFeeAmount sets the "service_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableServiceFeeAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetServiceFeeAmount(*v)
	}
	return _u
}

// AddServiceFeeAmount adds value to the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddServiceFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddServiceFeeAmount(v)
	return _u
}

// ClearServiceFeeAmount clears the value of the "service_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearServiceFeeAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearServiceFeeAmount()
	return _u
}

// SetAdminFeeRate sets the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) SetAdminFeeRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetAdminFeeRate()
	_u.mutation.SetAdminFeeRate(v)
	return _u
}

// SetNillableAdminFeeRate sets the "admin_fee_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableAdminFeeRate(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetAdminFeeRate(*v)
	}
	return _u
}

// AddAdminFeeRate adds value to the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) AddAdminFeeRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddAdminFeeRate(v)
	return _u
}

// ClearAdminFeeRate clears the value of the "admin_fee_rate" field.
func (_u *LieferandoInvoiceUpdateOne) ClearAdminFeeRate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearAdminFeeRate()
	return _u
}

// SetAdminFeeAmount sets the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetAdminFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetAdminFeeAmount()
	_u.mutation.SetAdminFeeAmount(v)
	return _u
}

// SetNillableAdminFeeAmount sets the "admin_fee_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableAdminFeeAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetAdminFeeAmount(*v)
	}
	return _u
}

// AddAdminFeeAmount adds value to the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddAdminFeeAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddAdminFeeAmount(v)
	return _u
}

// ClearAdminFeeAmount clears the value of the "admin_fee_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearAdminFeeAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearAdminFeeAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *LieferandoInvoiceUpdateOne) SetSubtotal(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableSubtotal(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *LieferandoInvoiceUpdateOne) AddSubtotal(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *LieferandoInvoiceUpdateOne) ClearSubtotal() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *LieferandoInvoiceUpdateOne) SetTaxRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableTaxRate(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *LieferandoInvoiceUpdateOne) AddTaxRate(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *LieferandoInvoiceUpdateOne) ClearTaxRate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetTaxAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableTaxAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddTaxAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearTaxAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetPaidOnlinePayments sets the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdateOne) SetPaidOnlinePayments(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetPaidOnlinePayments()
	_u.mutation.SetPaidOnlinePayments(v)
	return _u
}

// SetNillablePaidOnlinePayments sets the "paid_online_payments" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillablePaidOnlinePayments(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetPaidOnlinePayments(*v)
	}
	return _u
}

// AddPaidOnlinePayments adds value to the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdateOne) AddPaidOnlinePayments(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddPaidOnlinePayments(v)
	return _u
}

// ClearPaidOnlinePayments clears the value of the "paid_online_payments" field.
func (_u *LieferandoInvoiceUpdateOne) ClearPaidOnlinePayments() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearPaidOnlinePayments()
	return _u
}

// SetOutstandingAmount sets the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetOutstandingAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetOutstandingAmount()
	_u.mutation.SetOutstandingAmount(v)
	return _u
}

// SetNillableOutstandingAmount sets the "outstanding_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableOutstandingAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetOutstandingAmount(*v)
	}
	return _u
}

// AddOutstandingAmount adds value to the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddOutstandingAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddOutstandingAmount(v)
	return _u
}

// ClearOutstandingAmount clears the value of the "outstanding_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearOutstandingAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearOutstandingAmount()
	return _u
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdateOne) SetOutstandingBalance(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetOutstandingBalance()
	_u.mutation.SetOutstandingBalance(v)
	return _u
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableOutstandingBalance(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetOutstandingBalance(*v)
	}
	return _u
}

// AddOutstandingBalance adds value to the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdateOne) AddOutstandingBalance(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddOutstandingBalance(v)
	return _u
}

// ClearOutstandingBalance clears the value of the "outstanding_balance" field.
func (_u *LieferandoInvoiceUpdateOne) ClearOutstandingBalance() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearOutstandingBalance()
	return _u
}

// SetPayoutAmount sets the "payout_amount" field.
func (_u *LieferandoInvoiceUpdateOne) SetPayoutAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetPayoutAmount()
	_u.mutation.SetPayoutAmount(v)
	return _u
}

// SetNillablePayoutAmount sets the "payout_amount" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillablePayoutAmount(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetPayoutAmount(*v)
	}
	return _u
}

// AddPayoutAmount adds value to the "payout_amount" field.
func (_u *LieferandoInvoiceUpdateOne) AddPayoutAmount(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddPayoutAmount(v)
	return _u
}

// ClearPayoutAmount clears the value of the "payout_amount" field.
func (_u *LieferandoInvoiceUpdateOne) ClearPayoutAmount() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearPayoutAmount()
	return _u
}

// SetAmountDue sets the "amount_due" field.
func (_u *LieferandoInvoiceUpdateOne) SetAmountDue(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.ResetAmountDue()
	_u.mutation.SetAmountDue(v)
	return _u
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableAmountDue(v *float64) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetAmountDue(*v)
	}
	return _u
}

// AddAmountDue adds value to the "amount_due" field.
func (_u *LieferandoInvoiceUpdateOne) AddAmountDue(v float64) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddAmountDue(v)
	return _u
}

// ClearAmountDue clears the value of the "amount_due" field.
func (_u *LieferandoInvoiceUpdateOne) ClearAmountDue() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearAmountDue()
	return _u
}

// SetConfirmationPaymentDate sets the "confirmation_payment_date" field.
func (_u *LieferandoInvoiceUpdateOne) SetConfirmationPaymentDate(v time.Time) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetConfirmationPaymentDate(v)
	return _u
}

// SetNillableConfirmationPaymentDate sets the "confirmation_payment_date" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableConfirmationPaymentDate(v *time.Time) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetConfirmationPaymentDate(*v)
	}
	return _u
}

// ClearConfirmationPaymentDate clears the value of the "confirmation_payment_date" field.
func (_u *LieferandoInvoiceUpdateOne) ClearConfirmationPaymentDate() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearConfirmationPaymentDate()
	return _u
}

// SetConfirmationCodeMessage sets the "confirmation_code_message" field.
func (_u *LieferandoInvoiceUpdateOne) SetConfirmationCodeMessage(v string) *LieferandoInvoiceUpdateOne {
	_u.mutation.SetConfirmationCodeMessage(v)
	return _u
}

// SetNillableConfirmationCodeMessage sets the "confirmation_code_message" field if the given value is not nil.
func (_u *LieferandoInvoiceUpdateOne) SetNillableConfirmationCodeMessage(v *string) *LieferandoInvoiceUpdateOne {
	if v != nil {
		_u.SetConfirmationCodeMessage(*v)
	}
	return _u
}

// ClearConfirmationCodeMessage clears the value of the "confirmation_code_message" field.
func (_u *LieferandoInvoiceUpdateOne) ClearConfirmationCodeMessage() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearConfirmationCodeMessage()
	return _u
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *LieferandoInvoiceUpdateOne) AddOrderItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *LieferandoInvoiceUpdateOne) AddOrderItems(v ...*OrderItem) *LieferandoInvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// AddTipItemIDs adds the "tip_items" edge to the TipItem entity by IDs.
func (_u *LieferandoInvoiceUpdateOne) AddTipItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdateOne {
	_u.mutation.AddTipItemIDs(ids...)
	return _u
}

// AddTipItems adds the "tip_items" edges to the TipItem entity.
func (_u *LieferandoInvoiceUpdateOne) AddTipItems(v ...*TipItem) *LieferandoInvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTipItemIDs(ids...)
}

// Mutation returns the LieferandoInvoiceMutation object of the builder.
func (_u *LieferandoInvoiceUpdateOne) Mutation() *LieferandoInvoiceMutation {
	return _u.mutation
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *LieferandoInvoiceUpdateOne) ClearOrderItems() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *LieferandoInvoiceUpdateOne) RemoveOrderItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdateOne {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *LieferandoInvoiceUpdateOne) RemoveOrderItems(v ...*OrderItem) *LieferandoInvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// ClearTipItems clears all "tip_items" edges to the TipItem entity.
func (_u *LieferandoInvoiceUpdateOne) ClearTipItems() *LieferandoInvoiceUpdateOne {
	_u.mutation.ClearTipItems()
	return _u
}

// RemoveTipItemIDs removes the "tip_items" edge to TipItem entities by IDs.
func (_u *LieferandoInvoiceUpdateOne) RemoveTipItemIDs(ids ...uuid.UUID) *LieferandoInvoiceUpdateOne {
	_u.mutation.RemoveTipItemIDs(ids...)
	return _u
}

// RemoveTipItems removes "tip_items" edges to TipItem entities.
func (_u *LieferandoInvoiceUpdateOne) RemoveTipItems(v ...*TipItem) *LieferandoInvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTipItemIDs(ids...)
}

// Where appends a list predicates to the LieferandoInvoiceUpdate builder.
func (_u *LieferandoInvoiceUpdateOne) Where(ps ...predicate.LieferandoInvoice) *LieferandoInvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LieferandoInvoiceUpdateOne) Select(field string, fields ...string) *LieferandoInvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LieferandoInvoice entity.
func (_u *LieferandoInvoiceUpdateOne) Save(ctx context.Context) (*LieferandoInvoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LieferandoInvoiceUpdateOne) SaveX(ctx context.Context) *LieferandoInvoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LieferandoInvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LieferandoInvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LieferandoInvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lieferandoinvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LieferandoInvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := lieferandoinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lieferandoinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfirmationCodeMessage(); ok {
		if err := lieferandoinvoice.ConfirmationCodeMessageValidator(v); err != nil {
			return &ValidationError{Name: "confirmation_code_message", err: fmt.Errorf(`ent: validator failed for field "LieferandoInvoice.confirmation_code_message": %w`, err)}
		}
	}
	return nil
}

func (_u *LieferandoInvoiceUpdateOne) sqlSave(ctx context.Context) (_node *LieferandoInvoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lieferandoinvoice.Table, lieferandoinvoice.Columns, sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LieferandoInvoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lieferandoinvoice.FieldID)
		for _, f := range fields {
			if !lieferandoinvoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lieferandoinvoice.FieldID {
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
		_spec.SetField(lieferandoinvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(lieferandoinvoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lieferandoinvoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(lieferandoinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(lieferandoinvoice.FieldExtractionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(lieferandoinvoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(lieferandoinvoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(lieferandoinvoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(lieferandoinvoice.FieldSourceFilename, field.TypeString, value)
	}
	if _u.mutation.SourceFilenameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSourceFilename, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSender(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailSender, field.TypeString, value)
	}
	if _u.mutation.EmailSenderCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailSender, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lieferandoinvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(lieferandoinvoice.FieldRestaurantName, field.TypeString, value)
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(lieferandoinvoice.FieldRestaurantName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerCompany(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerCompany, field.TypeString, value)
	}
	if _u.mutation.CustomerCompanyCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerCompany, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerTaxNumber(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerTaxNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxNumberCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerBankIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldCustomerBankIban, field.TypeString, value)
	}
	if _u.mutation.CustomerBankIbanCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCustomerBankIban, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierIban(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierIban, field.TypeString, value)
	}
	if _u.mutation.SupplierIbanCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierIban, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierVatID(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierVatID, field.TypeString, value)
	}
	if _u.mutation.SupplierVatIDCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierVatID, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierManagingDirector(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierManagingDirector, field.TypeString, value)
	}
	if _u.mutation.SupplierManagingDirectorCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierManagingDirector, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierCourtRegistry(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierCourtRegistry, field.TypeString, value)
	}
	if _u.mutation.SupplierCourtRegistryCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierCourtRegistry, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierHrb(); ok {
		_spec.SetField(lieferandoinvoice.FieldSupplierHrb, field.TypeString, value)
	}
	if _u.mutation.SupplierHrbCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSupplierHrb, field.TypeString)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalOrders, field.TypeInt, value)
	}
	if _u.mutation.TotalOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalRevenue(); ok {
		_spec.SetField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalRevenue(); ok {
		_spec.AddField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalRevenueCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTotalRevenue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OnlinePaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOnlinePaidOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt, value)
	}
	if _u.mutation.OnlinePaidOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOnlinePaidOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.OnlinePaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOnlinePaidAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.OnlinePaidAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOnlinePaidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashPaidOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCashPaidOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt, value)
	}
	if _u.mutation.CashPaidOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashPaidOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.CashPaidAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashPaidAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CashPaidAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashPaidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CashServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashServiceFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CashServiceFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldCashServiceFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ChargebackOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChargebackOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt, value)
	}
	if _u.mutation.ChargebackOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldChargebackOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.ChargebackAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChargebackAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ChargebackAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldChargebackAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StampCardOrders(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStampCardOrders(); ok {
		_spec.AddField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt, value)
	}
	if _u.mutation.StampCardOrdersCleared() {
		_spec.ClearField(lieferandoinvoice.FieldStampCardOrders, field.TypeInt)
	}
	if value, ok := _u.mutation.StampCardAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStampCardAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64, value)
	}
	if _u.mutation.StampCardAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldStampCardAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ServiceFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServiceFeeRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64, value)
	}
	if _u.mutation.ServiceFeeRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldServiceFeeRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ServiceFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServiceFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ServiceFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldServiceFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdminFeeRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminFeeRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64, value)
	}
	if _u.mutation.AdminFeeRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAdminFeeRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdminFeeAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminFeeAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AdminFeeAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAdminFeeAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(lieferandoinvoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTaxRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaidOnlinePayments(); ok {
		_spec.SetField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaidOnlinePayments(); ok {
		_spec.AddField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64, value)
	}
	if _u.mutation.PaidOnlinePaymentsCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPaidOnlinePayments, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutstandingAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64, value)
	}
	if _u.mutation.OutstandingAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOutstandingAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutstandingBalance(); ok {
		_spec.SetField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingBalance(); ok {
		_spec.AddField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if _u.mutation.OutstandingBalanceCleared() {
		_spec.ClearField(lieferandoinvoice.FieldOutstandingBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayoutAmount(); ok {
		_spec.SetField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPayoutAmount(); ok {
		_spec.AddField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PayoutAmountCleared() {
		_spec.ClearField(lieferandoinvoice.FieldPayoutAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountDue(); ok {
		_spec.SetField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountDue(); ok {
		_spec.AddField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64, value)
	}
	if _u.mutation.AmountDueCleared() {
		_spec.ClearField(lieferandoinvoice.FieldAmountDue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfirmationPaymentDate(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.ConfirmationPaymentDateCleared() {
		_spec.ClearField(lieferandoinvoice.FieldConfirmationPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmationCodeMessage(); ok {
		_spec.SetField(lieferandoinvoice.FieldConfirmationCodeMessage, field.TypeString, value)
	}
	if _u.mutation.ConfirmationCodeMessageCleared() {
		_spec.ClearField(lieferandoinvoice.FieldConfirmationCodeMessage, field.TypeString)
	}
	if _u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TipItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTipItemsIDs(); len(nodes) > 0 && !_u.mutation.TipItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TipItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LieferandoInvoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lieferandoinvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
