package classify

import (
	"strings"

	"github.com/cc-collective/invoice-ingest/constants"
)

// FirstPage cuts the concatenated page text down to the first page. The text
// extractor joins pages with a form feed; machine-generated reports carry
// their header markers on page one.
func FirstPage(text string) string {
	if i := strings.IndexByte(text, '\f'); i >= 0 {
		return text[:i]
	}
	return text
}

// IsSpecialReportSubject reports whether the email subject activates per-PDF
// first-page sniffing. For every other invoice-keyword subject the attached
// PDFs are all treated as primary invoices.
func IsSpecialReportSubject(subject string) (uberEats, woltPayout bool) {
	s := strings.ToLower(subject)
	return strings.Contains(s, constants.SubjectUberEatsActivity),
		strings.Contains(s, constants.SubjectWoltPayoutReport)
}

// HasInvoiceSubject reports whether an ordinary email subject looks like an
// invoice delivery at all.
func HasInvoiceSubject(subject string) bool {
	s := strings.ToLower(subject)
	for _, kw := range constants.InvoiceSubjectKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// SniffUberEats tags a PDF inside an Uber Eats activity-summary email. Only
// PDFs carrying the order-and-payment summary header are worth extracting.
func SniffUberEats(firstPage string) constants.DocType {
	if strings.Contains(strings.ToLower(firstPage), "bestell- und zahlungsübersicht") {
		return constants.DocPrimaryInvoice
	}
	return constants.DocIrrelevant
}

// SniffWoltPayout tags a PDF inside a Wolt payout-report email: the
// self-billed invoice is primary, the revenue-and-payout overview is the
// netting report, anything else is ignored.
func SniffWoltPayout(firstPage string) constants.DocType {
	text := strings.ToLower(firstPage)
	if strings.Contains(text, "rechnung") && strings.Contains(text, "selbstfakturierung") {
		return constants.DocPrimaryInvoice
	}
	if strings.Contains(text, "übersicht umsätze und auszahlungen") {
		return constants.DocNettingReport
	}
	return constants.DocIrrelevant
}
