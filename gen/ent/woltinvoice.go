// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
	"github.com/google/uuid"
)

// WoltInvoice is the model entity for the WoltInvoice schema.
type WoltInvoice struct {
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
	// SupplierAddress holds the value of the "supplier_address" field.
	SupplierAddress string `json:"supplier_address,omitempty"`
	// SupplierVatID holds the value of the "supplier_vat_id" field.
	SupplierVatID string `json:"supplier_vat_id,omitempty"`
	// RestaurantName holds the value of the "restaurant_name" field.
	RestaurantName string `json:"restaurant_name,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// GoodsNet7 holds the value of the "goods_net_7" field.
	GoodsNet7 *float64 `json:"goods_net_7,omitempty"`
	// GoodsVat7 holds the value of the "goods_vat_7" field.
	GoodsVat7 *float64 `json:"goods_vat_7,omitempty"`
	// GoodsGross7 holds the value of the "goods_gross_7" field.
	GoodsGross7 *float64 `json:"goods_gross_7,omitempty"`
	// GoodsNet19 holds the value of the "goods_net_19" field.
	GoodsNet19 *float64 `json:"goods_net_19,omitempty"`
	// GoodsVat19 holds the value of the "goods_vat_19" field.
	GoodsVat19 *float64 `json:"goods_vat_19,omitempty"`
	// GoodsGross19 holds the value of the "goods_gross_19" field.
	GoodsGross19 *float64 `json:"goods_gross_19,omitempty"`
	// GoodsNetTotal holds the value of the "goods_net_total" field.
	GoodsNetTotal *float64 `json:"goods_net_total,omitempty"`
	// GoodsVatTotal holds the value of the "goods_vat_total" field.
	GoodsVatTotal *float64 `json:"goods_vat_total,omitempty"`
	// GoodsGrossTotal holds the value of the "goods_gross_total" field.
	GoodsGrossTotal *float64 `json:"goods_gross_total,omitempty"`
	// DistributionNetTotal holds the value of the "distribution_net_total" field.
	DistributionNetTotal *float64 `json:"distribution_net_total,omitempty"`
	// DistributionVatTotal holds the value of the "distribution_vat_total" field.
	DistributionVatTotal *float64 `json:"distribution_vat_total,omitempty"`
	// DistributionGrossTotal holds the value of the "distribution_gross_total" field.
	DistributionGrossTotal *float64 `json:"distribution_gross_total,omitempty"`
	// NetpriceNet7 holds the value of the "netprice_net_7" field.
	NetpriceNet7 *float64 `json:"netprice_net_7,omitempty"`
	// NetpriceVat7 holds the value of the "netprice_vat_7" field.
	NetpriceVat7 *float64 `json:"netprice_vat_7,omitempty"`
	// NetpriceGross7 holds the value of the "netprice_gross_7" field.
	NetpriceGross7 *float64 `json:"netprice_gross_7,omitempty"`
	// NetpriceNet19 holds the value of the "netprice_net_19" field.
	NetpriceNet19 *float64 `json:"netprice_net_19,omitempty"`
	// NetpriceVat19 holds the value of the "netprice_vat_19" field.
	NetpriceVat19 *float64 `json:"netprice_vat_19,omitempty"`
	// NetpriceGross19 holds the value of the "netprice_gross_19" field.
	NetpriceGross19 *float64 `json:"netprice_gross_19,omitempty"`
	// NetpriceNetTotal holds the value of the "netprice_net_total" field.
	NetpriceNetTotal *float64 `json:"netprice_net_total,omitempty"`
	// NetpriceVatTotal holds the value of the "netprice_vat_total" field.
	NetpriceVatTotal *float64 `json:"netprice_vat_total,omitempty"`
	// NetpriceGrossTotal holds the value of the "netprice_gross_total" field.
	NetpriceGrossTotal *float64 `json:"netprice_gross_total,omitempty"`
	// EndAmountNet holds the value of the "end_amount_net" field.
	EndAmountNet *float64 `json:"end_amount_net,omitempty"`
	// EndAmountVat holds the value of the "end_amount_vat" field.
	EndAmountVat *float64 `json:"end_amount_vat,omitempty"`
	// EndAmountGross holds the value of the "end_amount_gross" field.
	EndAmountGross *float64 `json:"end_amount_gross,omitempty"`
	// NettingMerchantInvoice holds the value of the "netting_merchant_invoice" field.
	NettingMerchantInvoice string `json:"netting_merchant_invoice,omitempty"`
	// NettingMerchantNet holds the value of the "netting_merchant_net" field.
	NettingMerchantNet *float64 `json:"netting_merchant_net,omitempty"`
	// NettingMerchantVat holds the value of the "netting_merchant_vat" field.
	NettingMerchantVat *float64 `json:"netting_merchant_vat,omitempty"`
	// NettingMerchantGross holds the value of the "netting_merchant_gross" field.
	NettingMerchantGross *float64 `json:"netting_merchant_gross,omitempty"`
	// NettingWoltInvoice holds the value of the "netting_wolt_invoice" field.
	NettingWoltInvoice string `json:"netting_wolt_invoice,omitempty"`
	// NettingWoltNet holds the value of the "netting_wolt_net" field.
	NettingWoltNet *float64 `json:"netting_wolt_net,omitempty"`
	// NettingWoltVat holds the value of the "netting_wolt_vat" field.
	NettingWoltVat *float64 `json:"netting_wolt_vat,omitempty"`
	// NettingWoltGross holds the value of the "netting_wolt_gross" field.
	NettingWoltGross *float64 `json:"netting_wolt_gross,omitempty"`
	// NettingNetPayout holds the value of the "netting_net_payout" field.
	NettingNetPayout *float64 `json:"netting_net_payout,omitempty"`
	// NettingParsedJSON holds the value of the "netting_parsed_json" field.
	NettingParsedJSON map[string]interface{} `json:"netting_parsed_json,omitempty"`
	// NettingRawText holds the value of the "netting_raw_text" field.
	NettingRawText string `json:"netting_raw_text,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WoltInvoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case woltinvoice.FieldNettingParsedJSON:
			values[i] = new([]byte)
		case woltinvoice.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case woltinvoice.FieldTotalAmount, woltinvoice.FieldGoodsNet7, woltinvoice.FieldGoodsVat7, woltinvoice.FieldGoodsGross7, woltinvoice.FieldGoodsNet19, woltinvoice.FieldGoodsVat19, woltinvoice.FieldGoodsGross19, woltinvoice.FieldGoodsNetTotal, woltinvoice.FieldGoodsVatTotal, woltinvoice.FieldGoodsGrossTotal, woltinvoice.FieldDistributionNetTotal, woltinvoice.FieldDistributionVatTotal, woltinvoice.FieldDistributionGrossTotal, woltinvoice.FieldNetpriceNet7, woltinvoice.FieldNetpriceVat7, woltinvoice.FieldNetpriceGross7, woltinvoice.FieldNetpriceNet19, woltinvoice.FieldNetpriceVat19, woltinvoice.FieldNetpriceGross19, woltinvoice.FieldNetpriceNetTotal, woltinvoice.FieldNetpriceVatTotal, woltinvoice.FieldNetpriceGrossTotal, woltinvoice.FieldEndAmountNet, woltinvoice.FieldEndAmountVat, woltinvoice.FieldEndAmountGross, woltinvoice.FieldNettingMerchantNet, woltinvoice.FieldNettingMerchantVat, woltinvoice.FieldNettingMerchantGross, woltinvoice.FieldNettingWoltNet, woltinvoice.FieldNettingWoltVat, woltinvoice.FieldNettingWoltGross, woltinvoice.FieldNettingNetPayout:
			values[i] = new(sql.NullFloat64)
		case woltinvoice.FieldExtractionConfidence:
			values[i] = new(sql.NullInt64)
		case woltinvoice.FieldInvoiceNumber, woltinvoice.FieldSupplierName, woltinvoice.FieldStatus, woltinvoice.FieldRawText, woltinvoice.FieldSourceFilename, woltinvoice.FieldEmailSubject, woltinvoice.FieldEmailSender, woltinvoice.FieldSupplierAddress, woltinvoice.FieldSupplierVatID, woltinvoice.FieldRestaurantName, woltinvoice.FieldBusinessID, woltinvoice.FieldNettingMerchantInvoice, woltinvoice.FieldNettingWoltInvoice, woltinvoice.FieldNettingRawText:
			values[i] = new(sql.NullString)
		case woltinvoice.FieldInvoiceDate, woltinvoice.FieldPeriodStart, woltinvoice.FieldPeriodEnd, woltinvoice.FieldEmailDate, woltinvoice.FieldCreatedAt, woltinvoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case woltinvoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WoltInvoice fields.
func (_m *WoltInvoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case woltinvoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case woltinvoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case woltinvoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case woltinvoice.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = new(time.Time)
				*_m.PeriodStart = value.Time
			}
		case woltinvoice.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = new(time.Time)
				*_m.PeriodEnd = value.Time
			}
		case woltinvoice.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case woltinvoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case woltinvoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case woltinvoice.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = int(value.Int64)
			}
		case woltinvoice.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case woltinvoice.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case woltinvoice.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case woltinvoice.FieldEmailSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_subject", values[i])
			} else if value.Valid {
				_m.EmailSubject = value.String
			}
		case woltinvoice.FieldEmailSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_sender", values[i])
			} else if value.Valid {
				_m.EmailSender = value.String
			}
		case woltinvoice.FieldEmailDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_date", values[i])
			} else if value.Valid {
				_m.EmailDate = new(time.Time)
				*_m.EmailDate = value.Time
			}
		case woltinvoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case woltinvoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case woltinvoice.FieldSupplierAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_address", values[i])
			} else if value.Valid {
				_m.SupplierAddress = value.String
			}
		case woltinvoice.FieldSupplierVatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_vat_id", values[i])
			} else if value.Valid {
				_m.SupplierVatID = value.String
			}
		case woltinvoice.FieldRestaurantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant_name", values[i])
			} else if value.Valid {
				_m.RestaurantName = value.String
			}
		case woltinvoice.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case woltinvoice.FieldGoodsNet7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_net_7", values[i])
			} else if value.Valid {
				_m.GoodsNet7 = new(float64)
				*_m.GoodsNet7 = value.Float64
			}
		case woltinvoice.FieldGoodsVat7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_vat_7", values[i])
			} else if value.Valid {
				_m.GoodsVat7 = new(float64)
				*_m.GoodsVat7 = value.Float64
			}
		case woltinvoice.FieldGoodsGross7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_gross_7", values[i])
			} else if value.Valid {
				_m.GoodsGross7 = new(float64)
				*_m.GoodsGross7 = value.Float64
			}
		case woltinvoice.FieldGoodsNet19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_net_19", values[i])
			} else if value.Valid {
				_m.GoodsNet19 = new(float64)
				*_m.GoodsNet19 = value.Float64
			}
		case woltinvoice.FieldGoodsVat19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_vat_19", values[i])
			} else if value.Valid {
				_m.GoodsVat19 = new(float64)
				*_m.GoodsVat19 = value.Float64
			}
		case woltinvoice.FieldGoodsGross19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_gross_19", values[i])
			} else if value.Valid {
				_m.GoodsGross19 = new(float64)
				*_m.GoodsGross19 = value.Float64
			}
		case woltinvoice.FieldGoodsNetTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_net_total", values[i])
			} else if value.Valid {
				_m.GoodsNetTotal = new(float64)
				*_m.GoodsNetTotal = value.Float64
			}
		case woltinvoice.FieldGoodsVatTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_vat_total", values[i])
			} else if value.Valid {
				_m.GoodsVatTotal = new(float64)
				*_m.GoodsVatTotal = value.Float64
			}
		case woltinvoice.FieldGoodsGrossTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field goods_gross_total", values[i])
			} else if value.Valid {
				_m.GoodsGrossTotal = new(float64)
				*_m.GoodsGrossTotal = value.Float64
			}
		case woltinvoice.FieldDistributionNetTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_net_total", values[i])
			} else if value.Valid {
				_m.DistributionNetTotal = new(float64)
				*_m.DistributionNetTotal = value.Float64
			}
		case woltinvoice.FieldDistributionVatTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_vat_total", values[i])
			} else if value.Valid {
				_m.DistributionVatTotal = new(float64)
				*_m.DistributionVatTotal = value.Float64
			}
		case woltinvoice.FieldDistributionGrossTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_gross_total", values[i])
			} else if value.Valid {
				_m.DistributionGrossTotal = new(float64)
				*_m.DistributionGrossTotal = value.Float64
			}
		case woltinvoice.FieldNetpriceNet7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_net_7", values[i])
			} else if value.Valid {
				_m.NetpriceNet7 = new(float64)
				*_m.NetpriceNet7 = value.Float64
			}
		case woltinvoice.FieldNetpriceVat7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_vat_7", values[i])
			} else if value.Valid {
				_m.NetpriceVat7 = new(float64)
				*_m.NetpriceVat7 = value.Float64
			}
		case woltinvoice.FieldNetpriceGross7:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_gross_7", values[i])
			} else if value.Valid {
				_m.NetpriceGross7 = new(float64)
				*_m.NetpriceGross7 = value.Float64
			}
		case woltinvoice.FieldNetpriceNet19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_net_19", values[i])
			} else if value.Valid {
				_m.NetpriceNet19 = new(float64)
				*_m.NetpriceNet19 = value.Float64
			}
		case woltinvoice.FieldNetpriceVat19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_vat_19", values[i])
			} else if value.Valid {
				_m.NetpriceVat19 = new(float64)
				*_m.NetpriceVat19 = value.Float64
			}
		case woltinvoice.FieldNetpriceGross19:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_gross_19", values[i])
			} else if value.Valid {
				_m.NetpriceGross19 = new(float64)
				*_m.NetpriceGross19 = value.Float64
			}
		case woltinvoice.FieldNetpriceNetTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_net_total", values[i])
			} else if value.Valid {
				_m.NetpriceNetTotal = new(float64)
				*_m.NetpriceNetTotal = value.Float64
			}
		case woltinvoice.FieldNetpriceVatTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_vat_total", values[i])
			} else if value.Valid {
				_m.NetpriceVatTotal = new(float64)
				*_m.NetpriceVatTotal = value.Float64
			}
		case woltinvoice.FieldNetpriceGrossTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netprice_gross_total", values[i])
			} else if value.Valid {
				_m.NetpriceGrossTotal = new(float64)
				*_m.NetpriceGrossTotal = value.Float64
			}
		case woltinvoice.FieldEndAmountNet:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_amount_net", values[i])
			} else if value.Valid {
				_m.EndAmountNet = new(float64)
				*_m.EndAmountNet = value.Float64
			}
		case woltinvoice.FieldEndAmountVat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_amount_vat", values[i])
			} else if value.Valid {
				_m.EndAmountVat = new(float64)
				*_m.EndAmountVat = value.Float64
			}
		case woltinvoice.FieldEndAmountGross:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_amount_gross", values[i])
			} else if value.Valid {
				_m.EndAmountGross = new(float64)
				*_m.EndAmountGross = value.Float64
			}
		case woltinvoice.FieldNettingMerchantInvoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field netting_merchant_invoice", values[i])
			} else if value.Valid {
				_m.NettingMerchantInvoice = value.String
			}
		case woltinvoice.FieldNettingMerchantNet:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_merchant_net", values[i])
			} else if value.Valid {
				_m.NettingMerchantNet = new(float64)
				*_m.NettingMerchantNet = value.Float64
			}
		case woltinvoice.FieldNettingMerchantVat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_merchant_vat", values[i])
			} else if value.Valid {
				_m.NettingMerchantVat = new(float64)
				*_m.NettingMerchantVat = value.Float64
			}
		case woltinvoice.FieldNettingMerchantGross:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_merchant_gross", values[i])
			} else if value.Valid {
				_m.NettingMerchantGross = new(float64)
				*_m.NettingMerchantGross = value.Float64
			}
		case woltinvoice.FieldNettingWoltInvoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field netting_wolt_invoice", values[i])
			} else if value.Valid {
				_m.NettingWoltInvoice = value.String
			}
		case woltinvoice.FieldNettingWoltNet:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_wolt_net", values[i])
			} else if value.Valid {
				_m.NettingWoltNet = new(float64)
				*_m.NettingWoltNet = value.Float64
			}
		case woltinvoice.FieldNettingWoltVat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_wolt_vat", values[i])
			} else if value.Valid {
				_m.NettingWoltVat = new(float64)
				*_m.NettingWoltVat = value.Float64
			}
		case woltinvoice.FieldNettingWoltGross:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_wolt_gross", values[i])
			} else if value.Valid {
				_m.NettingWoltGross = new(float64)
				*_m.NettingWoltGross = value.Float64
			}
		case woltinvoice.FieldNettingNetPayout:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field netting_net_payout", values[i])
			} else if value.Valid {
				_m.NettingNetPayout = new(float64)
				*_m.NettingNetPayout = value.Float64
			}
		case woltinvoice.FieldNettingParsedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field netting_parsed_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NettingParsedJSON); err != nil {
					return fmt.Errorf("unmarshal field netting_parsed_json: %w", err)
				}
			}
		case woltinvoice.FieldNettingRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field netting_raw_text", values[i])
			} else if value.Valid {
				_m.NettingRawText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WoltInvoice.
// This includes values selected through modifiers, order, etc.
func (_m *WoltInvoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WoltInvoice.
// Note that you need to call WoltInvoice.Unwrap() before calling this method if this WoltInvoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WoltInvoice) Update() *WoltInvoiceUpdateOne {
	return NewWoltInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WoltInvoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WoltInvoice) Unwrap() *WoltInvoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WoltInvoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WoltInvoice) String() string {
	var builder strings.Builder
	builder.WriteString("WoltInvoice(")
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
	builder.WriteString("supplier_address=")
	builder.WriteString(_m.SupplierAddress)
	builder.WriteString(", ")
	builder.WriteString("supplier_vat_id=")
	builder.WriteString(_m.SupplierVatID)
	builder.WriteString(", ")
	builder.WriteString("restaurant_name=")
	builder.WriteString(_m.RestaurantName)
	builder.WriteString(", ")
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	if v := _m.GoodsNet7; v != nil {
		builder.WriteString("goods_net_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsVat7; v != nil {
		builder.WriteString("goods_vat_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsGross7; v != nil {
		builder.WriteString("goods_gross_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsNet19; v != nil {
		builder.WriteString("goods_net_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsVat19; v != nil {
		builder.WriteString("goods_vat_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsGross19; v != nil {
		builder.WriteString("goods_gross_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsNetTotal; v != nil {
		builder.WriteString("goods_net_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsVatTotal; v != nil {
		builder.WriteString("goods_vat_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GoodsGrossTotal; v != nil {
		builder.WriteString("goods_gross_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DistributionNetTotal; v != nil {
		builder.WriteString("distribution_net_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DistributionVatTotal; v != nil {
		builder.WriteString("distribution_vat_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DistributionGrossTotal; v != nil {
		builder.WriteString("distribution_gross_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceNet7; v != nil {
		builder.WriteString("netprice_net_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceVat7; v != nil {
		builder.WriteString("netprice_vat_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceGross7; v != nil {
		builder.WriteString("netprice_gross_7=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceNet19; v != nil {
		builder.WriteString("netprice_net_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceVat19; v != nil {
		builder.WriteString("netprice_vat_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceGross19; v != nil {
		builder.WriteString("netprice_gross_19=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceNetTotal; v != nil {
		builder.WriteString("netprice_net_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceVatTotal; v != nil {
		builder.WriteString("netprice_vat_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetpriceGrossTotal; v != nil {
		builder.WriteString("netprice_gross_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndAmountNet; v != nil {
		builder.WriteString("end_amount_net=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndAmountVat; v != nil {
		builder.WriteString("end_amount_vat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndAmountGross; v != nil {
		builder.WriteString("end_amount_gross=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("netting_merchant_invoice=")
	builder.WriteString(_m.NettingMerchantInvoice)
	builder.WriteString(", ")
	if v := _m.NettingMerchantNet; v != nil {
		builder.WriteString("netting_merchant_net=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NettingMerchantVat; v != nil {
		builder.WriteString("netting_merchant_vat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NettingMerchantGross; v != nil {
		builder.WriteString("netting_merchant_gross=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("netting_wolt_invoice=")
	builder.WriteString(_m.NettingWoltInvoice)
	builder.WriteString(", ")
	if v := _m.NettingWoltNet; v != nil {
		builder.WriteString("netting_wolt_net=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NettingWoltVat; v != nil {
		builder.WriteString("netting_wolt_vat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NettingWoltGross; v != nil {
		builder.WriteString("netting_wolt_gross=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NettingNetPayout; v != nil {
		builder.WriteString("netting_net_payout=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("netting_parsed_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.NettingParsedJSON))
	builder.WriteString(", ")
	builder.WriteString("netting_raw_text=")
	builder.WriteString(_m.NettingRawText)
	builder.WriteByte(')')
	return builder.String()
}

// WoltInvoices is a parsable slice of WoltInvoice.
type WoltInvoices []*WoltInvoice
