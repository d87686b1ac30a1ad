// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cc-collective/invoice-ingest/db/ent/schema"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lieferandoinvoiceFields := schema.LieferandoInvoice{}.Fields()
	_ = lieferandoinvoiceFields
	// lieferandoinvoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	lieferandoinvoiceDescInvoiceNumber := lieferandoinvoiceFields[1].Descriptor()
	// lieferandoinvoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	lieferandoinvoice.InvoiceNumberValidator = lieferandoinvoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// lieferandoinvoiceDescStatus is the schema descriptor for status field.
	lieferandoinvoiceDescStatus := lieferandoinvoiceFields[7].Descriptor()
	// lieferandoinvoice.DefaultStatus holds the default value on creation for the status field.
	lieferandoinvoice.DefaultStatus = lieferandoinvoiceDescStatus.Default.(string)
	// lieferandoinvoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	lieferandoinvoice.StatusValidator = lieferandoinvoiceDescStatus.Validators[0].(func(string) error)
	// lieferandoinvoiceDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	lieferandoinvoiceDescExtractionConfidence := lieferandoinvoiceFields[8].Descriptor()
	// lieferandoinvoice.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	lieferandoinvoice.DefaultExtractionConfidence = lieferandoinvoiceDescExtractionConfidence.Default.(int)
	// lieferandoinvoiceDescNeedsReview is the schema descriptor for needs_review field.
	lieferandoinvoiceDescNeedsReview := lieferandoinvoiceFields[9].Descriptor()
	// lieferandoinvoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	lieferandoinvoice.DefaultNeedsReview = lieferandoinvoiceDescNeedsReview.Default.(bool)
	// lieferandoinvoiceDescCreatedAt is the schema descriptor for created_at field.
	lieferandoinvoiceDescCreatedAt := lieferandoinvoiceFields[15].Descriptor()
	// lieferandoinvoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	lieferandoinvoice.DefaultCreatedAt = lieferandoinvoiceDescCreatedAt.Default.(func() time.Time)
	// lieferandoinvoiceDescUpdatedAt is the schema descriptor for updated_at field.
	lieferandoinvoiceDescUpdatedAt := lieferandoinvoiceFields[16].Descriptor()
	// lieferandoinvoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lieferandoinvoice.DefaultUpdatedAt = lieferandoinvoiceDescUpdatedAt.Default.(func() time.Time)
	// lieferandoinvoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lieferandoinvoice.UpdateDefaultUpdatedAt = lieferandoinvoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lieferandoinvoiceDescConfirmationCodeMessage is the schema descriptor for confirmation_code_message field.
	lieferandoinvoiceDescConfirmationCodeMessage := lieferandoinvoiceFields[51].Descriptor()
	// lieferandoinvoice.ConfirmationCodeMessageValidator is a validator for the "confirmation_code_message" field. It is called by the builders before save.
	lieferandoinvoice.ConfirmationCodeMessageValidator = lieferandoinvoiceDescConfirmationCodeMessage.Validators[0].(func(string) error)
	// lieferandoinvoiceDescID is the schema descriptor for id field.
	lieferandoinvoiceDescID := lieferandoinvoiceFields[0].Descriptor()
	// lieferandoinvoice.DefaultID holds the default value on creation for the id field.
	lieferandoinvoice.DefaultID = lieferandoinvoiceDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescOrderCode is the schema descriptor for order_code field.
	orderitemDescOrderCode := orderitemFields[2].Descriptor()
	// orderitem.OrderCodeValidator is a validator for the "order_code" field. It is called by the builders before save.
	orderitem.OrderCodeValidator = orderitemDescOrderCode.Validators[0].(func(string) error)
	// orderitemDescOnline is the schema descriptor for online field.
	orderitemDescOnline := orderitemFields[4].Descriptor()
	// orderitem.DefaultOnline holds the default value on creation for the online field.
	orderitem.DefaultOnline = orderitemDescOnline.Default.(bool)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
	tipitemFields := schema.TipItem{}.Fields()
	_ = tipitemFields
	// tipitemDescOrderCode is the schema descriptor for order_code field.
	tipitemDescOrderCode := tipitemFields[2].Descriptor()
	// tipitem.OrderCodeValidator is a validator for the "order_code" field. It is called by the builders before save.
	tipitem.OrderCodeValidator = tipitemDescOrderCode.Validators[0].(func(string) error)
	// tipitemDescID is the schema descriptor for id field.
	tipitemDescID := tipitemFields[0].Descriptor()
	// tipitem.DefaultID holds the default value on creation for the id field.
	tipitem.DefaultID = tipitemDescID.Default.(func() uuid.UUID)
	ubereatsinvoiceFields := schema.UberEatsInvoice{}.Fields()
	_ = ubereatsinvoiceFields
	// ubereatsinvoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	ubereatsinvoiceDescInvoiceNumber := ubereatsinvoiceFields[1].Descriptor()
	// ubereatsinvoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	ubereatsinvoice.InvoiceNumberValidator = ubereatsinvoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// ubereatsinvoiceDescStatus is the schema descriptor for status field.
	ubereatsinvoiceDescStatus := ubereatsinvoiceFields[7].Descriptor()
	// ubereatsinvoice.DefaultStatus holds the default value on creation for the status field.
	ubereatsinvoice.DefaultStatus = ubereatsinvoiceDescStatus.Default.(string)
	// ubereatsinvoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ubereatsinvoice.StatusValidator = ubereatsinvoiceDescStatus.Validators[0].(func(string) error)
	// ubereatsinvoiceDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	ubereatsinvoiceDescExtractionConfidence := ubereatsinvoiceFields[8].Descriptor()
	// ubereatsinvoice.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	ubereatsinvoice.DefaultExtractionConfidence = ubereatsinvoiceDescExtractionConfidence.Default.(int)
	// ubereatsinvoiceDescNeedsReview is the schema descriptor for needs_review field.
	ubereatsinvoiceDescNeedsReview := ubereatsinvoiceFields[9].Descriptor()
	// ubereatsinvoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	ubereatsinvoice.DefaultNeedsReview = ubereatsinvoiceDescNeedsReview.Default.(bool)
	// ubereatsinvoiceDescCreatedAt is the schema descriptor for created_at field.
	ubereatsinvoiceDescCreatedAt := ubereatsinvoiceFields[15].Descriptor()
	// ubereatsinvoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	ubereatsinvoice.DefaultCreatedAt = ubereatsinvoiceDescCreatedAt.Default.(func() time.Time)
	// ubereatsinvoiceDescUpdatedAt is the schema descriptor for updated_at field.
	ubereatsinvoiceDescUpdatedAt := ubereatsinvoiceFields[16].Descriptor()
	// ubereatsinvoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ubereatsinvoice.DefaultUpdatedAt = ubereatsinvoiceDescUpdatedAt.Default.(func() time.Time)
	// ubereatsinvoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ubereatsinvoice.UpdateDefaultUpdatedAt = ubereatsinvoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ubereatsinvoiceDescID is the schema descriptor for id field.
	ubereatsinvoiceDescID := ubereatsinvoiceFields[0].Descriptor()
	// ubereatsinvoice.DefaultID holds the default value on creation for the id field.
	ubereatsinvoice.DefaultID = ubereatsinvoiceDescID.Default.(func() uuid.UUID)
	woltinvoiceFields := schema.WoltInvoice{}.Fields()
	_ = woltinvoiceFields
	// woltinvoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	woltinvoiceDescInvoiceNumber := woltinvoiceFields[1].Descriptor()
	// woltinvoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	woltinvoice.InvoiceNumberValidator = woltinvoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// woltinvoiceDescStatus is the schema descriptor for status field.
	woltinvoiceDescStatus := woltinvoiceFields[7].Descriptor()
	// woltinvoice.DefaultStatus holds the default value on creation for the status field.
	woltinvoice.DefaultStatus = woltinvoiceDescStatus.Default.(string)
	// woltinvoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	woltinvoice.StatusValidator = woltinvoiceDescStatus.Validators[0].(func(string) error)
	// woltinvoiceDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	woltinvoiceDescExtractionConfidence := woltinvoiceFields[8].Descriptor()
	// woltinvoice.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	woltinvoice.DefaultExtractionConfidence = woltinvoiceDescExtractionConfidence.Default.(int)
	// woltinvoiceDescNeedsReview is the schema descriptor for needs_review field.
	woltinvoiceDescNeedsReview := woltinvoiceFields[9].Descriptor()
	// woltinvoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	woltinvoice.DefaultNeedsReview = woltinvoiceDescNeedsReview.Default.(bool)
	// woltinvoiceDescCreatedAt is the schema descriptor for created_at field.
	woltinvoiceDescCreatedAt := woltinvoiceFields[15].Descriptor()
	// woltinvoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	woltinvoice.DefaultCreatedAt = woltinvoiceDescCreatedAt.Default.(func() time.Time)
	// woltinvoiceDescUpdatedAt is the schema descriptor for updated_at field.
	woltinvoiceDescUpdatedAt := woltinvoiceFields[16].Descriptor()
	// woltinvoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	woltinvoice.DefaultUpdatedAt = woltinvoiceDescUpdatedAt.Default.(func() time.Time)
	// woltinvoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	woltinvoice.UpdateDefaultUpdatedAt = woltinvoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// woltinvoiceDescID is the schema descriptor for id field.
	woltinvoiceDescID := woltinvoiceFields[0].Descriptor()
	// woltinvoice.DefaultID holds the default value on creation for the id field.
	woltinvoice.DefaultID = woltinvoiceDescID.Default.(func() uuid.UUID)
}
