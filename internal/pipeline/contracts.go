package pipeline

import (
	"context"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/extract"
)

// CreateInvoiceRequest carries everything needed to persist one extracted
// invoice together with its email provenance.
type CreateInvoiceRequest struct {
	Data     *extract.Data
	Email    entity.EmailMeta
	Filename string
}

// Store is the persistence surface the processor needs. The repository
// package provides the ent-backed implementation.
type Store interface {
	// Exists reports whether an invoice with this business key is already
	// persisted on the platform's collection.
	Exists(ctx context.Context, platform constants.Platform, invoiceNumber string) (bool, error)

	// CreateInvoice persists a new invoice row. A concurrent insert of the
	// same invoice number surfaces as common.ErrDuplicateInvoice.
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error)

	// AttachNetting merges a netting report into the already-persisted Wolt
	// invoice it references. It never creates rows: an unknown invoice number
	// returns common.ErrNoMatchingInvoice.
	AttachNetting(ctx context.Context, invoiceNumber string, fields *extract.NettingFields, rawText string) error
}

// TextExtractor turns PDF bytes into plain text, pages joined by form feeds.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// Notifier receives the digest of every processed email.
type Notifier interface {
	EmailProcessed(ctx context.Context, email entity.EmailMeta, stats EmailStats)
}
