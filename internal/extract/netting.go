package extract

import (
	"regexp"
	"strings"

	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

var (
	// A netting table row: a DEU/... invoice number followed by the
	// net / VAT / gross columns in order.
	reNettingRow = regexp.MustCompile(`(DEU/[A-Z0-9/]+).*?([-+]?\d[\d.,]*).*?([-+]?\d[\d.,]*).*?([-+]?\d[\d.,]*)`)

	reNettingPayout   = regexp.MustCompile(`(?i)Nettoauszahlung\s+([\d.,]+)`)
	reNettingAmount   = regexp.MustCompile(`[-+]?\d[\d.,]*`)
	reNettingInvoice  = regexp.MustCompile(`(?i)Rechnungsnummer\s*[:\-]?\s*([A-Z0-9/\-]+)`)
	reNettingDEUShape = regexp.MustCompile(`(?i)DEU/\d{2}/[A-Z0-9]+(?:/\d+)+`)
)

// ExtractNetting parses the figures off a Wolt netting report. Row
// attribution is positional: the first DEU/... row is the merchant's
// self-billed invoice, the second is Wolt's own service invoice.
func ExtractNetting(rawText string) *NettingFields {
	f := &NettingFields{}
	if rawText == "" {
		return f
	}

	var rows [][]string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := reNettingRow.FindStringSubmatch(line); m != nil {
			rows = append(rows, m)
		}
	}
	if len(rows) > 0 {
		f.MerchantInvoiceNumber = rows[0][1]
		f.Merchant = amounts3(rows[0][2], rows[0][3], rows[0][4])
	}
	if len(rows) > 1 {
		f.WoltInvoiceNumber = rows[1][1]
		f.Wolt = amounts3(rows[1][2], rows[1][3], rows[1][4])
	}

	if m := reNettingPayout.FindStringSubmatch(rawText); m != nil {
		if v, ok := normalize.ParseDecimal(m[1]); ok {
			f.NetPayout = &v
		}
	} else {
		// negative payouts print with a leading sign the labeled pattern
		// misses; rescan the Nettoauszahlung line for any signed amount
		for _, line := range strings.Split(rawText, "\n") {
			if !strings.Contains(strings.ToLower(line), "nettoauszahlung") {
				continue
			}
			if m := reNettingAmount.FindString(line); m != "" {
				if v, ok := normalize.ParseDecimal(m); ok {
					f.NetPayout = &v
				}
			}
			break
		}
	}

	return f
}

// FindNettingInvoiceNumber resolves which primary invoice a netting report
// belongs to. The labeled Rechnungsnummer wins, skipping the table header's
// "Gesamtbetrag" column label; otherwise the first DEU/... shaped token
// anywhere on the report is used. The result is uppercased to match the
// stored invoice numbers.
func FindNettingInvoiceNumber(rawText string) string {
	for _, m := range reNettingInvoice.FindAllStringSubmatch(rawText, -1) {
		candidate := strings.TrimSpace(m[1])
		if strings.EqualFold(candidate, "Gesamtbetrag") {
			continue
		}
		return strings.ToUpper(candidate)
	}
	if m := reNettingDEUShape.FindString(rawText); m != "" {
		return strings.ToUpper(strings.TrimSpace(m))
	}
	return ""
}
