package constants

// InvoiceStatus is the canonical status for persisted invoice rows.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusReviewed  InvoiceStatus = "Reviewed"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// Outcome is the terminal state of one PDF inside an email batch.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
	OutcomeMerged    Outcome = "merged"
	OutcomeOrphaned  Outcome = "orphaned"
)
