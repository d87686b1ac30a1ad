package utils

import (
	"time"

	invoicespb "github.com/cc-collective/invoice-ingest/gen/proto/invoices/v1"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

func formatYMD(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	total := ""
	if inv.TotalAmount != nil {
		total = normalize.FormatDecimal(*inv.TotalAmount)
	}
	return &invoicespb.Invoice{
		Id:                   inv.ID.String(),
		Platform:             string(inv.Platform),
		InvoiceNumber:        inv.InvoiceNumber,
		InvoiceDate:          formatYMD(inv.InvoiceDate),
		PeriodStart:          formatYMD(inv.PeriodStart),
		PeriodEnd:            formatYMD(inv.PeriodEnd),
		SupplierName:         inv.SupplierName,
		TotalAmount:          total,
		Status:               string(inv.Status),
		ExtractionConfidence: int32(inv.Confidence),
		NeedsReview:          inv.NeedsReview,
		HasNetting:           inv.HasNetting,
		EmailSubject:         inv.EmailSubject,
		EmailSender:          inv.EmailSender,
		CreatedAt:            inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
