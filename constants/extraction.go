package constants

import "strings"

// DefaultExtractionConfidence is the flat heuristic score attached to an
// extraction when no stronger signal is computed. It is not calibrated.
const DefaultExtractionConfidence = 60

// Email subject markers that activate per-PDF first-page sniffing instead of
// the generic invoice-keyword gate.
const (
	SubjectUberEatsActivity = "ihre neue aktivitätsübersicht"
	SubjectWoltPayoutReport = "wolt payout report"
)

// InvoiceSubjectKeywords gates ordinary invoice emails. An email whose subject
// contains none of these is skipped without touching its attachments.
var InvoiceSubjectKeywords = []string{"invoice", "fatura", "rechnung", "facture", "bill", "wolt"}

// Fallback supplier names used when the PDF does not spell them out.
const (
	SupplierLieferando = "yd.yourdelivery GmbH"
	SupplierWolt       = "Wolt Enterprises Deutschland GmbH"
	SupplierUberEats   = "Uber Eats Germany GmbH"
)

// IsPDFFilename reports whether an attachment filename looks like a PDF.
func IsPDFFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}
