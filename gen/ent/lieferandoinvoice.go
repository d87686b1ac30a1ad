// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/google/uuid"
)

// LieferandoInvoice is the model entity for the LieferandoInvoice schema.
type LieferandoInvoice struct {
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
	// RestaurantName holds the value of the "restaurant_name" field.
	RestaurantName string `json:"restaurant_name,omitempty"`
	// CustomerNumber holds the value of the "customer_number" field.
	CustomerNumber string `json:"customer_number,omitempty"`
	// CustomerCompany holds the value of the "customer_company" field.
	CustomerCompany string `json:"customer_company,omitempty"`
	// CustomerTaxNumber holds the value of the "customer_tax_number" field.
	CustomerTaxNumber string `json:"customer_tax_number,omitempty"`
	// CustomerBankIban holds the value of the "customer_bank_iban" field.
	CustomerBankIban string `json:"customer_bank_iban,omitempty"`
	// SupplierIban holds the value of the "supplier_iban" field.
	SupplierIban string `json:"supplier_iban,omitempty"`
	// SupplierVatID holds the value of the "supplier_vat_id" field.
	SupplierVatID string `json:"supplier_vat_id,omitempty"`
	// SupplierManagingDirector holds the value of the "supplier_managing_director" field.
	SupplierManagingDirector string `json:"supplier_managing_director,omitempty"`
	// SupplierCourtRegistry holds the value of the "supplier_court_registry" field.
	SupplierCourtRegistry string `json:"supplier_court_registry,omitempty"`
	// SupplierHrb holds the value of the "supplier_hrb" field.
	SupplierHrb string `json:"supplier_hrb,omitempty"`
	// TotalOrders holds the value of the "total_orders" field.
	TotalOrders *int `json:"total_orders,omitempty"`
	// TotalRevenue holds the value of the "total_revenue" field.
	TotalRevenue *float64 `json:"total_revenue,omitempty"`
	// OnlinePaidOrders holds the value of the "online_paid_orders" field.
	OnlinePaidOrders *int `json:"online_paid_orders,omitempty"`
	// OnlinePaidAmount holds the value of the "online_paid_amount" field.
	OnlinePaidAmount *float64 `json:"online_paid_amount,omitempty"`
	// CashPaidOrders holds the value of the "cash_paid_orders" field.
	CashPaidOrders *int `json:"cash_paid_orders,omitempty"`
	// CashPaidAmount holds the value of the "cash_paid_amount" field.
	CashPaidAmount *float64 `json:"cash_paid_amount,omitempty"`
	// CashServiceFeeAmount holds the value of the "cash_service_fee_amount" field.
	CashServiceFeeAmount *float64 `json:"cash_service_fee_amount,omitempty"`
	// ChargebackOrders holds the value of the "chargeback_orders" field.
	ChargebackOrders *int `json:"chargeback_orders,omitempty"`
	// ChargebackAmount holds the value of the "chargeback_amount" field.
	ChargebackAmount *float64 `json:"chargeback_amount,omitempty"`
	// StampCardOrders holds the value of the "stamp_card_orders" field.
	StampCardOrders *int `json:"stamp_card_orders,omitempty"`
	// StampCardAmount holds the value of the "stamp_card_amount" field.
	StampCardAmount *float64 `json:"stamp_card_amount,omitempty"`
	// ServiceFeeRate holds the value of the "service_fee_rate" field.
	ServiceFeeRate *float64 `json:"service_fee_rate,omitempty"`
	// ServiceFeeAmount holds the value of the "service_fee_amount" field.
	ServiceFeeAmount *float64 `json:"service_fee_amount,omitempty"`
	// AdminFeeRate holds the value of the "admin_fee_rate" field.
	AdminFeeRate *float64 `json:"admin_fee_rate,omitempty"`
	// AdminFeeAmount holds the value of the "admin_fee_amount" field.
	AdminFeeAmount *float64 `json:"admin_fee_amount,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// TaxRate holds the value of the "tax_rate" field.
	TaxRate *float64 `json:"tax_rate,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount *float64 `json:"tax_amount,omitempty"`
	// PaidOnlinePayments holds the value of the "paid_online_payments" field.
	PaidOnlinePayments *float64 `json:"paid_online_payments,omitempty"`
	// OutstandingAmount holds the value of the "outstanding_amount" field.
	OutstandingAmount *float64 `json:"outstanding_amount,omitempty"`
	// OutstandingBalance holds the value of the "outstanding_balance" field.
	OutstandingBalance *float64 `json:"outstanding_balance,omitempty"`
	// PayoutAmount holds the value of the "payout_amount" field.
	PayoutAmount *float64 `json:"payout_amount,omitempty"`
	// AmountDue holds the value of the "amount_due" field.
	AmountDue *float64 `json:"amount_due,omitempty"`
	// ConfirmationPaymentDate holds the value of the "confirmation_payment_date" field.
	ConfirmationPaymentDate *time.Time `json:"confirmation_payment_date,omitempty"`
	// ConfirmationCodeMessage holds the value of the "confirmation_code_message" field.
	ConfirmationCodeMessage string `json:"confirmation_code_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LieferandoInvoiceQuery when eager-loading is set.
	Edges        LieferandoInvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LieferandoInvoiceEdges holds the relations/edges for other nodes in the graph.
type LieferandoInvoiceEdges struct {
	// OrderItems holds the value of the order_items edge.
	OrderItems []*OrderItem `json:"order_items,omitempty"`
	// TipItems holds the value of the tip_items edge.
	TipItems []*TipItem `json:"tip_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OrderItemsOrErr returns the OrderItems value or an error if the edge
// was not loaded in eager-loading.
func (e LieferandoInvoiceEdges) OrderItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[0] {
		return e.OrderItems, nil
	}
	return nil, &NotLoadedError{edge: "order_items"}
}

// TipItemsOrErr returns the TipItems value or an error if the edge
// was not loaded in eager-loading.
func (e LieferandoInvoiceEdges) TipItemsOrErr() ([]*TipItem, error) {
	if e.loadedTypes[1] {
		return e.TipItems, nil
	}
	return nil, &NotLoadedError{edge: "tip_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LieferandoInvoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lieferandoinvoice.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case lieferandoinvoice.FieldTotalAmount, lieferandoinvoice.FieldTotalRevenue, lieferandoinvoice.FieldOnlinePaidAmount, lieferandoinvoice.FieldCashPaidAmount, lieferandoinvoice.FieldCashServiceFeeAmount, lieferandoinvoice.FieldChargebackAmount, lieferandoinvoice.FieldStampCardAmount, lieferandoinvoice.FieldServiceFeeRate, lieferandoinvoice.FieldServiceFeeAmount, lieferandoinvoice.FieldAdminFeeRate, lieferandoinvoice.FieldAdminFeeAmount, lieferandoinvoice.FieldSubtotal, lieferandoinvoice.FieldTaxRate, lieferandoinvoice.FieldTaxAmount, lieferandoinvoice.FieldPaidOnlinePayments, lieferandoinvoice.FieldOutstandingAmount, lieferandoinvoice.FieldOutstandingBalance, lieferandoinvoice.FieldPayoutAmount, lieferandoinvoice.FieldAmountDue:
			values[i] = new(sql.NullFloat64)
		case lieferandoinvoice.FieldExtractionConfidence, lieferandoinvoice.FieldTotalOrders, lieferandoinvoice.FieldOnlinePaidOrders, lieferandoinvoice.FieldCashPaidOrders, lieferandoinvoice.FieldChargebackOrders, lieferandoinvoice.FieldStampCardOrders:
			values[i] = new(sql.NullInt64)
		case lieferandoinvoice.FieldInvoiceNumber, lieferandoinvoice.FieldSupplierName, lieferandoinvoice.FieldStatus, lieferandoinvoice.FieldRawText, lieferandoinvoice.FieldSourceFilename, lieferandoinvoice.FieldEmailSubject, lieferandoinvoice.FieldEmailSender, lieferandoinvoice.FieldRestaurantName, lieferandoinvoice.FieldCustomerNumber, lieferandoinvoice.FieldCustomerCompany, lieferandoinvoice.FieldCustomerTaxNumber, lieferandoinvoice.FieldCustomerBankIban, lieferandoinvoice.FieldSupplierIban, lieferandoinvoice.FieldSupplierVatID, lieferandoinvoice.FieldSupplierManagingDirector, lieferandoinvoice.FieldSupplierCourtRegistry, lieferandoinvoice.FieldSupplierHrb, lieferandoinvoice.FieldConfirmationCodeMessage:
			values[i] = new(sql.NullString)
		case lieferandoinvoice.FieldInvoiceDate, lieferandoinvoice.FieldPeriodStart, lieferandoinvoice.FieldPeriodEnd, lieferandoinvoice.FieldEmailDate, lieferandoinvoice.FieldCreatedAt, lieferandoinvoice.FieldUpdatedAt, lieferandoinvoice.FieldConfirmationPaymentDate:
			values[i] = new(sql.NullTime)
		case lieferandoinvoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LieferandoInvoice fields.
func (_m *LieferandoInvoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lieferandoinvoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lieferandoinvoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case lieferandoinvoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case lieferandoinvoice.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = new(time.Time)
				*_m.PeriodStart = value.Time
			}
		case lieferandoinvoice.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = new(time.Time)
				*_m.PeriodEnd = value.Time
			}
		case lieferandoinvoice.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case lieferandoinvoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case lieferandoinvoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case lieferandoinvoice.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = int(value.Int64)
			}
		case lieferandoinvoice.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case lieferandoinvoice.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case lieferandoinvoice.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case lieferandoinvoice.FieldEmailSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_subject", values[i])
			} else if value.Valid {
				_m.EmailSubject = value.String
			}
		case lieferandoinvoice.FieldEmailSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_sender", values[i])
			} else if value.Valid {
				_m.EmailSender = value.String
			}
		case lieferandoinvoice.FieldEmailDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_date", values[i])
			} else if value.Valid {
				_m.EmailDate = new(time.Time)
				*_m.EmailDate = value.Time
			}
		case lieferandoinvoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lieferandoinvoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case lieferandoinvoice.FieldRestaurantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant_name", values[i])
			} else if value.Valid {
				_m.RestaurantName = value.String
			}
		case lieferandoinvoice.FieldCustomerNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_number", values[i])
			} else if value.Valid {
				_m.CustomerNumber = value.String
			}
		case lieferandoinvoice.FieldCustomerCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_company", values[i])
			} else if value.Valid {
				_m.CustomerCompany = value.String
			}
		case lieferandoinvoice.FieldCustomerTaxNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_tax_number", values[i])
			} else if value.Valid {
				_m.CustomerTaxNumber = value.String
			}
		case lieferandoinvoice.FieldCustomerBankIban:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_bank_iban", values[i])
			} else if value.Valid {
				_m.CustomerBankIban = value.String
			}
		case lieferandoinvoice.FieldSupplierIban:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_iban", values[i])
			} else if value.Valid {
				_m.SupplierIban = value.String
			}
		case lieferandoinvoice.FieldSupplierVatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_vat_id", values[i])
			} else if value.Valid {
				_m.SupplierVatID = value.String
			}
		case lieferandoinvoice.FieldSupplierManagingDirector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_managing_director", values[i])
			} else if value.Valid {
				_m.SupplierManagingDirector = value.String
			}
		case lieferandoinvoice.FieldSupplierCourtRegistry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_court_registry", values[i])
			} else if value.Valid {
				_m.SupplierCourtRegistry = value.String
			}
		case lieferandoinvoice.FieldSupplierHrb:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_hrb", values[i])
			} else if value.Valid {
				_m.SupplierHrb = value.String
			}
		case lieferandoinvoice.FieldTotalOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_orders", values[i])
			} else if value.Valid {
				_m.TotalOrders = new(int)
				*_m.TotalOrders = int(value.Int64)
			}
		case lieferandoinvoice.FieldTotalRevenue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_revenue", values[i])
			} else if value.Valid {
				_m.TotalRevenue = new(float64)
				*_m.TotalRevenue = value.Float64
			}
		case lieferandoinvoice.FieldOnlinePaidOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field online_paid_orders", values[i])
			} else if value.Valid {
				_m.OnlinePaidOrders = new(int)
				*_m.OnlinePaidOrders = int(value.Int64)
			}
		case lieferandoinvoice.FieldOnlinePaidAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field online_paid_amount", values[i])
			} else if value.Valid {
				_m.OnlinePaidAmount = new(float64)
				*_m.OnlinePaidAmount = value.Float64
			}
		case lieferandoinvoice.FieldCashPaidOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_paid_orders", values[i])
			} else if value.Valid {
				_m.CashPaidOrders = new(int)
				*_m.CashPaidOrders = int(value.Int64)
			}
		case lieferandoinvoice.FieldCashPaidAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_paid_amount", values[i])
			} else if value.Valid {
				_m.CashPaidAmount = new(float64)
				*_m.CashPaidAmount = value.Float64
			}
		case lieferandoinvoice.FieldCashServiceFeeAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_service_fee_amount", values[i])
			} else if value.Valid {
				_m.CashServiceFeeAmount = new(float64)
				*_m.CashServiceFeeAmount = value.Float64
			}
		case lieferandoinvoice.FieldChargebackOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chargeback_orders", values[i])
			} else if value.Valid {
				_m.ChargebackOrders = new(int)
				*_m.ChargebackOrders = int(value.Int64)
			}
		case lieferandoinvoice.FieldChargebackAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chargeback_amount", values[i])
			} else if value.Valid {
				_m.ChargebackAmount = new(float64)
				*_m.ChargebackAmount = value.Float64
			}
		case lieferandoinvoice.FieldStampCardOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stamp_card_orders", values[i])
			} else if value.Valid {
				_m.StampCardOrders = new(int)
				*_m.StampCardOrders = int(value.Int64)
			}
		case lieferandoinvoice.FieldStampCardAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stamp_card_amount", values[i])
			} else if value.Valid {
				_m.StampCardAmount = new(float64)
				*_m.StampCardAmount = value.Float64
			}
		case lieferandoinvoice.FieldServiceFeeRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field service_fee_rate", values[i])
			} else if value.Valid {
				_m.ServiceFeeRate = new(float64)
				*_m.ServiceFeeRate = value.Float64
			}
		case lieferandoinvoice.FieldServiceFeeAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field service_fee_amount", values[i])
			} else if value.Valid {
				_m.ServiceFeeAmount = new(float64)
				*_m.ServiceFeeAmount = value.Float64
			}
		case lieferandoinvoice.FieldAdminFeeRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_fee_rate", values[i])
			} else if value.Valid {
				_m.AdminFeeRate = new(float64)
				*_m.AdminFeeRate = value.Float64
			}
		case lieferandoinvoice.FieldAdminFeeAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_fee_amount", values[i])
			} else if value.Valid {
				_m.AdminFeeAmount = new(float64)
				*_m.AdminFeeAmount = value.Float64
			}
		case lieferandoinvoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(float64)
				*_m.Subtotal = value.Float64
			}
		case lieferandoinvoice.FieldTaxRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_rate", values[i])
			} else if value.Valid {
				_m.TaxRate = new(float64)
				*_m.TaxRate = value.Float64
			}
		case lieferandoinvoice.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = new(float64)
				*_m.TaxAmount = value.Float64
			}
		case lieferandoinvoice.FieldPaidOnlinePayments:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field paid_online_payments", values[i])
			} else if value.Valid {
				_m.PaidOnlinePayments = new(float64)
				*_m.PaidOnlinePayments = value.Float64
			}
		case lieferandoinvoice.FieldOutstandingAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field outstanding_amount", values[i])
			} else if value.Valid {
				_m.OutstandingAmount = new(float64)
				*_m.OutstandingAmount = value.Float64
			}
		case lieferandoinvoice.FieldOutstandingBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field outstanding_balance", values[i])
			} else if value.Valid {
				_m.OutstandingBalance = new(float64)
				*_m.OutstandingBalance = value.Float64
			}
		case lieferandoinvoice.FieldPayoutAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field payout_amount", values[i])
			} else if value.Valid {
				_m.PayoutAmount = new(float64)
				*_m.PayoutAmount = value.Float64
			}
		case lieferandoinvoice.FieldAmountDue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_due", values[i])
			} else if value.Valid {
				_m.AmountDue = new(float64)
				*_m.AmountDue = value.Float64
			}
		case lieferandoinvoice.FieldConfirmationPaymentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_payment_date", values[i])
			} else if value.Valid {
				_m.ConfirmationPaymentDate = new(time.Time)
				*_m.ConfirmationPaymentDate = value.Time
			}
		case lieferandoinvoice.FieldConfirmationCodeMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_code_message", values[i])
			} else if value.Valid {
				_m.ConfirmationCodeMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LieferandoInvoice.
// This includes values selected through modifiers, order, etc.
func (_m *LieferandoInvoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrderItems queries the "order_items" edge of the LieferandoInvoice entity.
func (_m *LieferandoInvoice) QueryOrderItems() *OrderItemQuery {
	return NewLieferandoInvoiceClient(_m.config).QueryOrderItems(_m)
}

// QueryTipItems queries the "tip_items" edge of the LieferandoInvoice entity.
func (_m *LieferandoInvoice) QueryTipItems() *TipItemQuery {
	return NewLieferandoInvoiceClient(_m.config).QueryTipItems(_m)
}

// Update returns a builder for updating this LieferandoInvoice.
// Note that you need to call LieferandoInvoice.Unwrap() before calling this method if this LieferandoInvoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LieferandoInvoice) Update() *LieferandoInvoiceUpdateOne {
	return NewLieferandoInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LieferandoInvoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LieferandoInvoice) Unwrap() *LieferandoInvoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LieferandoInvoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LieferandoInvoice) String() string {
	var builder strings.Builder
	builder.WriteString("LieferandoInvoice(")
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
	builder.WriteString("restaurant_name=")
	builder.WriteString(_m.RestaurantName)
	builder.WriteString(", ")
	builder.WriteString("customer_number=")
	builder.WriteString(_m.CustomerNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_company=")
	builder.WriteString(_m.CustomerCompany)
	builder.WriteString(", ")
	builder.WriteString("customer_tax_number=")
	builder.WriteString(_m.CustomerTaxNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_bank_iban=")
	builder.WriteString(_m.CustomerBankIban)
	builder.WriteString(", ")
	builder.WriteString("supplier_iban=")
	builder.WriteString(_m.SupplierIban)
	builder.WriteString(", ")
	builder.WriteString("supplier_vat_id=")
	builder.WriteString(_m.SupplierVatID)
	builder.WriteString(", ")
	builder.WriteString("supplier_managing_director=")
	builder.WriteString(_m.SupplierManagingDirector)
	builder.WriteString(", ")
	builder.WriteString("supplier_court_registry=")
	builder.WriteString(_m.SupplierCourtRegistry)
	builder.WriteString(", ")
	builder.WriteString("supplier_hrb=")
	builder.WriteString(_m.SupplierHrb)
	builder.WriteString(", ")
	if v := _m.TotalOrders; v != nil {
		builder.WriteString("total_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalRevenue; v != nil {
		builder.WriteString("total_revenue=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OnlinePaidOrders; v != nil {
		builder.WriteString("online_paid_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OnlinePaidAmount; v != nil {
		builder.WriteString("online_paid_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CashPaidOrders; v != nil {
		builder.WriteString("cash_paid_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CashPaidAmount; v != nil {
		builder.WriteString("cash_paid_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CashServiceFeeAmount; v != nil {
		builder.WriteString("cash_service_fee_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ChargebackOrders; v != nil {
		builder.WriteString("chargeback_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ChargebackAmount; v != nil {
		builder.WriteString("chargeback_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StampCardOrders; v != nil {
		builder.WriteString("stamp_card_orders=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StampCardAmount; v != nil {
		builder.WriteString("stamp_card_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ServiceFeeRate; v != nil {
		builder.WriteString("service_fee_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ServiceFeeAmount; v != nil {
		builder.WriteString("service_fee_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdminFeeRate; v != nil {
		builder.WriteString("admin_fee_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdminFeeAmount; v != nil {
		builder.WriteString("admin_fee_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TaxRate; v != nil {
		builder.WriteString("tax_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TaxAmount; v != nil {
		builder.WriteString("tax_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaidOnlinePayments; v != nil {
		builder.WriteString("paid_online_payments=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutstandingAmount; v != nil {
		builder.WriteString("outstanding_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutstandingBalance; v != nil {
		builder.WriteString("outstanding_balance=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PayoutAmount; v != nil {
		builder.WriteString("payout_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AmountDue; v != nil {
		builder.WriteString("amount_due=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConfirmationPaymentDate; v != nil {
		builder.WriteString("confirmation_payment_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("confirmation_code_message=")
	builder.WriteString(_m.ConfirmationCodeMessage)
	builder.WriteByte(')')
	return builder.String()
}

// LieferandoInvoices is a parsable slice of LieferandoInvoice.
type LieferandoInvoices []*LieferandoInvoice
