// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/google/uuid"
)

// UberEatsInvoice is the model entity for the UberEatsInvoice schema.
type UberEatsInvoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart *time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd *time.Time `json:"period_end,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName string `json:"supplier_name,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence int `json:"extraction_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// SourceFilename holds the value of the "source_filename" field.
	SourceFilename string `json:"source_filename,omitempty"`
	// EmailSubject holds the value of the "email_subject" field.
	EmailSubject string `json:"email_subject,omitempty"`
	// EmailSender holds the value of the "email_sender" field.
	EmailSender string `json:"email_sender,omitempty"`
	// EmailDate holds the value of the "email_date" field.
	EmailDate *time.Time `json:"email_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TaxDate holds the value of the "tax_date" field.
	TaxDate *time.Time `json:"tax_date,omitempty"`
	// CustomerCompany holds the value of the "customer_company" field.
	CustomerCompany string `json:"customer_company,omitempty"`
	// RestaurantName holds the value of the "restaurant_name" field.
	RestaurantName string `json:"restaurant_name,omitempty"`
	// RestaurantAddress holds the value of the "restaurant_address" field.
	RestaurantAddress string `json:"restaurant_address,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// CustomerVatID holds the value of the "customer_vat_id" field.
	CustomerVatID string `json:"customer_vat_id,omitempty"`
	// TaxNumber holds the value of the "tax_number" field.
	TaxNumber string `json:"tax_number,omitempty"`
	// TotalOrders holds the value of the "total_orders" field.
	TotalOrders *int `json:"total_orders,omitempty"`
	// TotalOrderValue holds the value of the "total_order_value" field.
	TotalOrderValue *float64 `json:"total_order_value,omitempty"`
	// GrossRevenueAfterDiscounts holds the value of the "gross_revenue_after_discounts" field.
	GrossRevenueAfterDiscounts *float64 `json:"gross_revenue_after_discounts,omitempty"`
	// CommissionOwnDelivery holds the value of the "commission_own_delivery" field.
	CommissionOwnDelivery *float64 `json:"commission_own_delivery,omitempty"`
	// CommissionPickup holds the value of the "commission_pickup" field.
	CommissionPickup *float64 `json:"commission_pickup,omitempty"`
	// UberEatsFee holds the value of the "uber_eats_fee" field.
	UberEatsFee *float64 `json:"uber_eats_fee,omitempty"`
	// Vat19 holds the value of the "vat_19" field.
	Vat19 *float64 `json:"vat_19,omitempty"`
	// CashCollected holds the value of the "cash_collected" field.
	CashCollected *float64 `json:"cash_collected,omitempty"`
	// TotalPayout holds the value of the "total_payout" field.
	TotalPayout *float64 `json:"total_payout,omitempty"`
	// NetAmount holds the value of the "net_amount" field.
	NetAmount *float64 `json:"net_amount,omitempty"`
	// VatAmount holds the value of the "vat_amount" field.
	VatAmount    *float64 `json:"vat_amount,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UberEatsInvoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ubereatsinvoice.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case ubereatsinvoice.FieldTotalAmount, ubereatsinvoice.FieldTotalOrderValue, ubereatsinvoice.FieldGrossRevenueAfterDiscounts, ubereatsinvoice.FieldCommissionOwnDelivery, ubereatsinvoice.FieldCommissionPickup, ubereatsinvoice.FieldUberEatsFee, ubereatsinvoice.FieldVat19, ubereatsinvoice.FieldCashCollected, ubereatsinvoice.FieldTotalPayout, ubereatsinvoice.FieldNetAmount, ubereatsinvoice.FieldVatAmount:
			values[i] = new(sql.NullFloat64)
		case ubereatsinvoice.FieldExtractionConfidence, ubereatsinvoice.FieldTotalOrders:
			values[i] = new(sql.NullInt64)
		case ubereatsinvoice.FieldInvoiceNumber, ubereatsinvoice.FieldSupplierName, ubereatsinvoice.FieldStatus, ubereatsinvoice.FieldRawText, ubereatsinvoice.FieldSourceFilename, ubereatsinvoice.FieldEmailSubject, ubereatsinvoice.FieldEmailSender, ubereatsinvoice.FieldCustomerCompany, ubereatsinvoice.FieldRestaurantName, ubereatsinvoice.FieldRestaurantAddress, ubereatsinvoice.FieldBusinessID, ubereatsinvoice.FieldCustomerVatID, ubereatsinvoice.FieldTaxNumber:
			values[i] = new(sql.NullString)
		case ubereatsinvoice.FieldInvoiceDate, ubereatsinvoice.FieldPeriodStart, ubereatsinvoice.FieldPeriodEnd, ubereatsinvoice.FieldEmailDate, ubereatsinvoice.FieldCreatedAt, ubereatsinvoice.FieldUpdatedAt, ubereatsinvoice.FieldTaxDate:
			values[i] = new(sql.NullTime)
		case ubereatsinvoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UberEatsInvoice fields.
func (_m *UberEatsInvoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ubereatsinvoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ubereatsinvoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case ubereatsinvoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case ubereatsinvoice.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = new(time.Time)
				*_m.PeriodStart = value.Time
			}
		case ubereatsinvoice.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = new(time.Time)
				*_m.PeriodEnd = value.Time
			}
		case ubereatsinvoice.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case ubereatsinvoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case ubereatsinvoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ubereatsinvoice.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = int(value.Int64)
			}
		case ubereatsinvoice.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case ubereatsinvoice.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case ubereatsinvoice.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case ubereatsinvoice.FieldEmailSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_subject", values[i])
			} else if value.Valid {
				_m.EmailSubject = value.String
			}
		case ubereatsinvoice.FieldEmailSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_sender", values[i])
			} else if value.Valid {
				_m.EmailSender = value.String
			}
		case ubereatsinvoice.FieldEmailDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_date", values[i])
			} else if value.Valid {
				_m.EmailDate = new(time.Time)
				*_m.EmailDate = value.Time
			}
		case ubereatsinvoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ubereatsinvoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case ubereatsinvoice.FieldTaxDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tax_date", values[i])
			} else if value.Valid {
				_m.TaxDate = new(time.Time)
				*_m.TaxDate = value.Time
			}
		case ubereatsinvoice.FieldCustomerCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_company", values[i])
			} else if value.Valid {
				_m.CustomerCompany = value.String
			}
		case ubereatsinvoice.FieldRestaurantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant_name", values[i])
			} else if value.Valid {
				_m.RestaurantName = value.String
			}
		case ubereatsinvoice.FieldRestaurantAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant_address", values[i])
			} else if value.Valid {
				_m.RestaurantAddress = value.String
			}
		case ubereatsinvoice.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case ubereatsinvoice.FieldCustomerVatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_vat_id", values[i])
			} else if value.Valid {
				_m.CustomerVatID = value.String
			}
		case ubereatsinvoice.FieldTaxNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_number", values[i])
			} else if value.Valid {
				_m.TaxNumber = value.String
			}
		case ubereatsinvoice.FieldTotalOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_orders", values[i])
			} else if value.Valid {
				_m.TotalOrders = new(int)
				*_m.TotalOrders = int(value.Int64)
			}
		case ubereatsinvoice.FieldTotalOrderValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_order_value", values[i])
			} else if value.Valid {
				_m.TotalOrderValue = new(float64)
				*_m.TotalOrderValue = value.Float64
			}
		case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_revenue_after_discounts", values[i])
			} else if value.Valid {
				_m.GrossRevenueAfterDiscounts = new(float64)
				*_m.GrossRevenueAfterDiscounts = value.Float64
			}
		case ubereatsinvoice.FieldCommissionOwnDelivery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_own_delivery", values[i])
			} else if value.Valid {
				_m.CommissionOwnDelivery = new(float64)
				*_m.CommissionOwnDelivery = value.Float64
			}
		case ubereatsinvoice.FieldCommissionPickup:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_pickup", values[i])
			} else if value.Valid {
				_m.CommissionPickup = new(float64)
				*_m.CommissionPickup = value.Float64
			}
		case ubereatsinvoice.FieldUberEatsFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uber_eats_fee", values[i])
			} else if value.Valid {
				_m.UberEatsFee = new(float64)
				*_m.UberEatsFee = value.Float64
			}
		case ubereatsinvoice.FieldVat19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_19", values[i])
			} else if value.Valid {
				_m.Vat19 = new(float64)
				*_m.Vat19 = value.Float64
			}
		case ubereatsinvoice.FieldCashCollected:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_collected", values[i])
			} else if value.Valid {
				_m.CashCollected = new(float64)
				*_m.CashCollected = value.Float64
			}
		case ubereatsinvoice.FieldTotalPayout:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_payout", values[i])
			} else if value.Valid {
				_m.TotalPayout = new(float64)
				*_m.TotalPayout = value.Float64
			}
		case ubereatsinvoice.FieldNetAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_amount", values[i])
			} else if value.Valid {
				_m.NetAmount = new(float64)
				*_m.NetAmount = value.Float64
			}
		case ubereatsinvoice.FieldVatAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount", values[i])
			} else if value.Valid {
				_m.VatAmount = new(float64)
				*_m.VatAmount = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UberEatsInvoice.
// This includes values selected through modifiers, order, etc.
func (_m *UberEatsInvoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UberEatsInvoice.
// Note that you need to call UberEatsInvoice.Unwrap() before calling this method if this UberEatsInvoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UberEatsInvoice) Update() *UberEatsInvoiceUpdateOne {
	return NewUberEatsInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UberEatsInvoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UberEatsInvoice) Unwrap() *UberEatsInvoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UberEatsInvoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UberEatsInvoice) String() string {
	var builder strings.Builder
	builder.WriteString("UberEatsInvoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PeriodStart; v != nil {
		builder.WriteString("period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PeriodEnd; v != nil {
		builder.WriteString("period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("supplier_name=")
	builder.WriteString(_m.SupplierName)
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("source_filename=")
	builder.WriteString(_m.SourceFilename)
	builder.WriteString(", ")
	builder.WriteString("email_subject=")
	builder.WriteString(_m.EmailSubject)
	builder.WriteString(", ")
	builder.WriteString("email_sender=")
	builder.WriteString(_m.EmailSender)
	builder.WriteString(", ")
	if v := _m.EmailDate; v != nil {
		builder.WriteString("email_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.TaxDate; v != nil {
		builder.WriteString("tax_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("customer_company=")
	builder.WriteString(_m.CustomerCompany)
	builder.WriteString(", ")
	builder.WriteString("restaurant_name=")
	builder.WriteString(_m.RestaurantName)
	builder.WriteString(", ")
	builder.WriteString("restaurant_address=")
	builder.WriteString(_m.RestaurantAddress)
	builder.WriteString(", ")
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("customer_vat_id=")
	builder.WriteString(_m.CustomerVatID)
	builder.WriteString(", ")
	builder.WriteString("tax_number=")
	builder.WriteString(_m.TaxNumber)
	builder.WriteString(", ")
	if v := _m.TotalOrders; v != nil {
		builder.WriteString("total_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalOrderValue; v != nil {
		builder.WriteString("total_order_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GrossRevenueAfterDiscounts; v != nil {
		builder.WriteString("gross_revenue_after_discounts=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CommissionOwnDelivery; v != nil {
		builder.WriteString("commission_own_delivery=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CommissionPickup; v != nil {
		builder.WriteString("commission_pickup=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UberEatsFee; v != nil {
		builder.WriteString("uber_eats_fee=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Vat19; v != nil {
		builder.WriteString("vat_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CashCollected; v != nil {
		builder.WriteString("cash_collected=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalPayout; v != nil {
		builder.WriteString("total_payout=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetAmount; v != nil {
		builder.WriteString("net_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatAmount; v != nil {
		builder.WriteString("vat_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UberEatsInvoices is a parsable slice of UberEatsInvoice.
type UberEatsInvoices []*UberEatsInvoice
