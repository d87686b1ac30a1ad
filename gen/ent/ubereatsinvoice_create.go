// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/google/uuid"
)

// UberEatsInvoiceCreate is the builder for creating a UberEatsInvoice entity.
type UberEatsInvoiceCreate struct {
	config
	mutation *UberEatsInvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *UberEatsInvoiceCreate) SetInvoiceNumber(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *UberEatsInvoiceCreate) SetInvoiceDate(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableInvoiceDate(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *UberEatsInvoiceCreate) SetPeriodStart(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillablePeriodStart(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *UberEatsInvoiceCreate) SetPeriodEnd(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillablePeriodEnd(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *UberEatsInvoiceCreate) SetSupplierName(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableSupplierName(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *UberEatsInvoiceCreate) SetTotalAmount(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTotalAmount(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UberEatsInvoiceCreate) SetStatus(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableStatus(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *UberEatsInvoiceCreate) SetExtractionConfidence(v int) *UberEatsInvoiceCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableExtractionConfidence(v *int) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *UberEatsInvoiceCreate) SetNeedsReview(v bool) *UberEatsInvoiceCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableNeedsReview(v *bool) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *UberEatsInvoiceCreate) SetRawText(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableRawText(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *UberEatsInvoiceCreate) SetSourceFilename(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableSourceFilename(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetSourceFilename(*v)
	}
	return _c
}

// SetEmailSubject sets the "email_subject" field.
func (_c *UberEatsInvoiceCreate) SetEmailSubject(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetEmailSubject(v)
	return _c
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableEmailSubject(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetEmailSubject(*v)
	}
	return _c
}

// SetEmailSender sets the "email_sender" field.
func (_c *UberEatsInvoiceCreate) SetEmailSender(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetEmailSender(v)
	return _c
}

// SetNillableEmailSender sets the "email_sender" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableEmailSender(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetEmailSender(*v)
	}
	return _c
}

// SetEmailDate sets the "email_date" field.
func (_c *UberEatsInvoiceCreate) SetEmailDate(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetEmailDate(v)
	return _c
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableEmailDate(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetEmailDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UberEatsInvoiceCreate) SetCreatedAt(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCreatedAt(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UberEatsInvoiceCreate) SetUpdatedAt(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableUpdatedAt(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTaxDate sets the "tax_date" field.
func (_c *UberEatsInvoiceCreate) SetTaxDate(v time.Time) *UberEatsInvoiceCreate {
	_c.mutation.SetTaxDate(v)
	return _c
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTaxDate(v *time.Time) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTaxDate(*v)
	}
	return _c
}

// SetCustomerCompany sets the "customer_company" field.
func (_c *UberEatsInvoiceCreate) SetCustomerCompany(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetCustomerCompany(v)
	return _c
}

// SetNillableCustomerCompany sets the "customer_company" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCustomerCompany(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCustomerCompany(*v)
	}
	return _c
}

// SetRestaurantName sets the "restaurant_name" field.
func (_c *UberEatsInvoiceCreate) SetRestaurantName(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetRestaurantName(v)
	return _c
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableRestaurantName(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetRestaurantName(*v)
	}
	return _c
}

// SetRestaurantAddress sets the "restaurant_address" field.
func (_c *UberEatsInvoiceCreate) SetRestaurantAddress(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetRestaurantAddress(v)
	return _c
}

// SetNillableRestaurantAddress sets the "restaurant_address" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableRestaurantAddress(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetRestaurantAddress(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *UberEatsInvoiceCreate) SetBusinessID(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableBusinessID(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetBusinessID(*v)
	}
	return _c
}

// SetCustomerVatID sets the "customer_vat_id" field.
func (_c *UberEatsInvoiceCreate) SetCustomerVatID(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetCustomerVatID(v)
	return _c
}

// SetNillableCustomerVatID sets the "customer_vat_id" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCustomerVatID(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCustomerVatID(*v)
	}
	return _c
}

// SetTaxNumber sets the "tax_number" field.
func (_c *UberEatsInvoiceCreate) SetTaxNumber(v string) *UberEatsInvoiceCreate {
	_c.mutation.SetTaxNumber(v)
	return _c
}

// SetNillableTaxNumber sets the "tax_number" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTaxNumber(v *string) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTaxNumber(*v)
	}
	return _c
}

// SetTotalOrders sets the "total_orders" field.
func (_c *UberEatsInvoiceCreate) SetTotalOrders(v int) *UberEatsInvoiceCreate {
	_c.mutation.SetTotalOrders(v)
	return _c
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTotalOrders(v *int) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTotalOrders(*v)
	}
	return _c
}

// SetTotalOrderValue sets the "total_order_value" field.
func (_c *UberEatsInvoiceCreate) SetTotalOrderValue(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetTotalOrderValue(v)
	return _c
}

// SetNillableTotalOrderValue sets the "total_order_value" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTotalOrderValue(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTotalOrderValue(*v)
	}
	return _c
}

// SetGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field.
func (_c *UberEatsInvoiceCreate) SetGrossRevenueAfterDiscounts(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetGrossRevenueAfterDiscounts(v)
	return _c
}

// SetNillableGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableGrossRevenueAfterDiscounts(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetGrossRevenueAfterDiscounts(*v)
	}
	return _c
}

// SetCommissionOwnDelivery sets the "commission_own_delivery" field.
func (_c *UberEatsInvoiceCreate) SetCommissionOwnDelivery(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetCommissionOwnDelivery(v)
	return _c
}

// SetNillableCommissionOwnDelivery sets the "commission_own_delivery" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCommissionOwnDelivery(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCommissionOwnDelivery(*v)
	}
	return _c
}

// SetCommissionPickup sets the "commission_pickup" field.
func (_c *UberEatsInvoiceCreate) SetCommissionPickup(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetCommissionPickup(v)
	return _c
}

// SetNillableCommissionPickup sets the "commission_pickup" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCommissionPickup(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCommissionPickup(*v)
	}
	return _c
}

// SetUberEatsFee sets the "uber_eats_fee" field.
func (_c *UberEatsInvoiceCreate) SetUberEatsFee(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetUberEatsFee(v)
	return _c
}

// SetNillableUberEatsFee sets the "uber_eats_fee" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableUberEatsFee(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetUberEatsFee(*v)
	}
	return _c
}

// SetVat19 sets the "vat_19" field.
func (_c *UberEatsInvoiceCreate) SetVat19(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetVat19(v)
	return _c
}

// SetNillableVat19 sets the "vat_19" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableVat19(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetVat19(*v)
	}
	return _c
}

// SetCashCollected sets the "cash_collected" field.
func (_c *UberEatsInvoiceCreate) SetCashCollected(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetCashCollected(v)
	return _c
}

// SetNillableCashCollected sets the "cash_collected" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableCashCollected(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetCashCollected(*v)
	}
	return _c
}

// SetTotalPayout sets the "total_payout" field.
func (_c *UberEatsInvoiceCreate) SetTotalPayout(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetTotalPayout(v)
	return _c
}

// SetNillableTotalPayout sets the "total_payout" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableTotalPayout(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetTotalPayout(*v)
	}
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *UberEatsInvoiceCreate) SetNetAmount(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableNetAmount(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetNetAmount(*v)
	}
	return _c
}

// SetVatAmount sets the "vat_amount" field.
func (_c *UberEatsInvoiceCreate) SetVatAmount(v float64) *UberEatsInvoiceCreate {
	_c.mutation.SetVatAmount(v)
	return _c
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableVatAmount(v *float64) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetVatAmount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UberEatsInvoiceCreate) SetID(v uuid.UUID) *UberEatsInvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UberEatsInvoiceCreate) SetNillableID(v *uuid.UUID) *UberEatsInvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UberEatsInvoiceMutation object of the builder.
func (_c *UberEatsInvoiceCreate) Mutation() *UberEatsInvoiceMutation {
	return _c.mutation
}

// Save creates the UberEatsInvoice in the database.
func (_c *UberEatsInvoiceCreate) Save(ctx context.Context) (*UberEatsInvoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UberEatsInvoiceCreate) SaveX(ctx context.Context) *UberEatsInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UberEatsInvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UberEatsInvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UberEatsInvoiceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ubereatsinvoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := ubereatsinvoice.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := ubereatsinvoice.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ubereatsinvoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ubereatsinvoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ubereatsinvoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UberEatsInvoiceCreate) check() error {
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "UberEatsInvoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := ubereatsinvoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UberEatsInvoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ubereatsinvoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UberEatsInvoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "UberEatsInvoice.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "UberEatsInvoice.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UberEatsInvoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UberEatsInvoice.updated_at"`)}
	}
	return nil
}

func (_c *UberEatsInvoiceCreate) sqlSave(ctx context.Context) (*UberEatsInvoice, error) {
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

func (_c *UberEatsInvoiceCreate) createSpec() (*UberEatsInvoice, *sqlgraph.CreateSpec) {
	var (
		_node = &UberEatsInvoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ubereatsinvoice.Table, sqlgraph.NewFieldSpec(ubereatsinvoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(ubereatsinvoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(ubereatsinvoice.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(ubereatsinvoice.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ubereatsinvoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(ubereatsinvoice.FieldExtractionConfidence, field.TypeInt, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(ubereatsinvoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(ubereatsinvoice.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(ubereatsinvoice.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.EmailSubject(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSubject, field.TypeString, value)
		_node.EmailSubject = value
	}
	if value, ok := _c.mutation.EmailSender(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailSender, field.TypeString, value)
		_node.EmailSender = value
	}
	if value, ok := _c.mutation.EmailDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldEmailDate, field.TypeTime, value)
		_node.EmailDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ubereatsinvoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TaxDate(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxDate, field.TypeTime, value)
		_node.TaxDate = &value
	}
	if value, ok := _c.mutation.CustomerCompany(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerCompany, field.TypeString, value)
		_node.CustomerCompany = value
	}
	if value, ok := _c.mutation.RestaurantName(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantName, field.TypeString, value)
		_node.RestaurantName = value
	}
	if value, ok := _c.mutation.RestaurantAddress(); ok {
		_spec.SetField(ubereatsinvoice.FieldRestaurantAddress, field.TypeString, value)
		_node.RestaurantAddress = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(ubereatsinvoice.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.CustomerVatID(); ok {
		_spec.SetField(ubereatsinvoice.FieldCustomerVatID, field.TypeString, value)
		_node.CustomerVatID = value
	}
	if value, ok := _c.mutation.TaxNumber(); ok {
		_spec.SetField(ubereatsinvoice.FieldTaxNumber, field.TypeString, value)
		_node.TaxNumber = value
	}
	if value, ok := _c.mutation.TotalOrders(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrders, field.TypeInt, value)
		_node.TotalOrders = &value
	}
	if value, ok := _c.mutation.TotalOrderValue(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalOrderValue, field.TypeFloat64, value)
		_node.TotalOrderValue = &value
	}
	if value, ok := _c.mutation.GrossRevenueAfterDiscounts(); ok {
		_spec.SetField(ubereatsinvoice.FieldGrossRevenueAfterDiscounts, field.TypeFloat64, value)
		_node.GrossRevenueAfterDiscounts = &value
	}
	if value, ok := _c.mutation.CommissionOwnDelivery(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionOwnDelivery, field.TypeFloat64, value)
		_node.CommissionOwnDelivery = &value
	}
	if value, ok := _c.mutation.CommissionPickup(); ok {
		_spec.SetField(ubereatsinvoice.FieldCommissionPickup, field.TypeFloat64, value)
		_node.CommissionPickup = &value
	}
	if value, ok := _c.mutation.UberEatsFee(); ok {
		_spec.SetField(ubereatsinvoice.FieldUberEatsFee, field.TypeFloat64, value)
		_node.UberEatsFee = &value
	}
	if value, ok := _c.mutation.Vat19(); ok {
		_spec.SetField(ubereatsinvoice.FieldVat19, field.TypeFloat64, value)
		_node.Vat19 = &value
	}
	if value, ok := _c.mutation.CashCollected(); ok {
		_spec.SetField(ubereatsinvoice.FieldCashCollected, field.TypeFloat64, value)
		_node.CashCollected = &value
	}
	if value, ok := _c.mutation.TotalPayout(); ok {
		_spec.SetField(ubereatsinvoice.FieldTotalPayout, field.TypeFloat64, value)
		_node.TotalPayout = &value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldNetAmount, field.TypeFloat64, value)
		_node.NetAmount = &value
	}
	if value, ok := _c.mutation.VatAmount(); ok {
		_spec.SetField(ubereatsinvoice.FieldVatAmount, field.TypeFloat64, value)
		_node.VatAmount = &value
	}
	return _node, _spec
}

// UberEatsInvoiceCreateBulk is the builder for creating many UberEatsInvoice entities in bulk.
type UberEatsInvoiceCreateBulk struct {
	config
	err      error
	builders []*UberEatsInvoiceCreate
}

// Save creates the UberEatsInvoice entities in the database.
func (_c *UberEatsInvoiceCreateBulk) Save(ctx context.Context) ([]*UberEatsInvoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UberEatsInvoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UberEatsInvoiceMutation)
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
func (_c *UberEatsInvoiceCreateBulk) SaveX(ctx context.Context) []*UberEatsInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UberEatsInvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UberEatsInvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
