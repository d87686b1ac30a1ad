package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/cc-collective/invoice-ingest/constants"
)

// Invoice represents a persisted invoice for data transfer between layers.
// Platform-specific columns stay in the repository layer; this is the common
// shape the server and the export surface work with.
type Invoice struct {
	ID            uuid.UUID               `json:"id"`
	Platform      constants.Platform      `json:"platform"`
	InvoiceNumber string                  `json:"invoice_number"`
	InvoiceDate   *time.Time              `json:"invoice_date,omitempty"`
	PeriodStart   *time.Time              `json:"period_start,omitempty"`
	PeriodEnd     *time.Time              `json:"period_end,omitempty"`
	SupplierName  string                  `json:"supplier_name"`
	TotalAmount   *float64                `json:"total_amount,omitempty"`
	Status        constants.InvoiceStatus `json:"status"`
	Confidence    int                     `json:"confidence"`
	NeedsReview   bool                    `json:"needs_review"`
	EmailSubject  string                  `json:"email_subject,omitempty"`
	EmailSender   string                  `json:"email_sender,omitempty"`
	EmailDate     *time.Time              `json:"email_date,omitempty"`
	HasNetting    bool                    `json:"has_netting"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// InvoiceRef identifies one invoice by its business key.
type InvoiceRef struct {
	Platform      constants.Platform `json:"platform"`
	InvoiceNumber string             `json:"invoice_number"`
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Platform    constants.Platform
	From        *time.Time
	To          *time.Time
	NeedsReview *bool
}
