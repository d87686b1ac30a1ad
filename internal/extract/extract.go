// Package extract turns raw PDF text into structured invoice data using
// per-platform regex grammars. Rules are independent: a rule that does not
// match leaves its field absent and never fails the extraction as a whole.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

var (
	// High-precision invoice number patterns, tried before the generic ones.
	// Uber Eats: "Rechnungsnummer: UBER_DEU-FIGGGCEE-01-2025-0000001"
	reUberInvoiceNo = regexp.MustCompile(`(?i)Rechnungsnummer:\s*([A-Z0-9_\-]+)`)
	// Wolt: "Rechnungsnummer DEU/25/HRB274170B/1/35"
	reWoltInvoiceNo = regexp.MustCompile(`(?i)Rechnungsnummer[\s:]+([A-Z]{3}/\d{2}/[A-Z0-9]+(?:/\d+)+)`)

	genericInvoiceNoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Rechnungsnummer[\s:]+([A-Z0-9/\-]+)`),
		regexp.MustCompile(`(?i)Invoice\s*(?:Number|No|#)[\s:]+([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)Rechnung\s*(?:Nr|#)[\s:]+([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)Fatura\s*(?:No|#)[\s:]+([A-Z0-9\-]+)`),
	}

	// German VAT-ID shape; a generic match of this form is the supplier's tax
	// ID, not an invoice number.
	reGermanVATID = regexp.MustCompile(`^DE\d{9}$`)

	genericDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Date[\s:]*(\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4})`),
		regexp.MustCompile(`Datum[\s:]*(\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4})`),
		regexp.MustCompile(`(\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4})`),
	}

	genericTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total[\s:]*[€$£]?\s*([\d,.]+)`),
		regexp.MustCompile(`(?i)Gesamt[\s:]*[€$£]?\s*([\d,.]+)`),
		regexp.MustCompile(`(?i)Toplam[\s:]*[€$£]?\s*([\d,.]+)`),
		regexp.MustCompile(`[€$£]\s*([\d,.]+)`),
	}

	reIBAN = regexp.MustCompile(`([A-Z]{2}\d{2}\s?[\d\s]{10,30})`)
)

// group1 returns the trimmed first capture group of re in text, if any.
func group1(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// dec captures group 1 of re and normalizes it, returning nil on a miss.
func dec(re *regexp.Regexp, text string) *float64 {
	s, ok := group1(re, text)
	if !ok {
		return nil
	}
	f, ok := normalize.ParseDecimal(s)
	if !ok {
		return nil
	}
	return &f
}

// count captures group 1 of re as an integer, returning nil on a miss.
func count(re *regexp.Regexp, text string) *int {
	s, ok := group1(re, text)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// date captures group 1 of re as a date, returning nil on a miss.
func date(re *regexp.Regexp, text string) *time.Time {
	s, ok := group1(re, text)
	if !ok {
		return nil
	}
	t, ok := normalize.ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}

func floatPtr(f float64) *float64 { return &f }

// stripSpaces removes every whitespace run, for IBANs printed in groups.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Extract runs the grammar for the already-classified platform over the raw
// text. It never fails: fields whose rules miss stay absent and the result
// carries the flat default confidence unless a platform rule set a stronger
// one. Callers must resolve the platform first.
func Extract(platform constants.Platform, rawText string) *Data {
	d := &Data{
		Platform:   platform,
		RawText:    rawText,
		Confidence: constants.DefaultExtractionConfidence,
	}
	if rawText == "" {
		d.Confidence = 0
		return d
	}

	d.InvoiceNumber = invoiceNumber(rawText)
	d.InvoiceDate = genericDate(rawText)
	d.TotalAmount = genericTotal(rawText)
	if m := reIBAN.FindStringSubmatch(rawText); m != nil {
		d.IBAN = stripSpaces(m[1])
	}

	switch platform {
	case constants.PlatformLieferando:
		d.Lieferando = extractLieferando(rawText, d)
	case constants.PlatformWolt:
		d.Wolt = extractWolt(rawText, d)
	case constants.PlatformUberEats:
		d.UberEats = extractUberEats(rawText, d)
	}
	return d
}

// invoiceNumber tries the platform-precise patterns first, then the generic
// fallbacks, rejecting anything shaped like a German VAT ID.
func invoiceNumber(text string) string {
	if n, ok := group1(reUberInvoiceNo, text); ok {
		return n
	}
	if n, ok := group1(reWoltInvoiceNo, text); ok {
		return n
	}
	for _, re := range genericInvoiceNoPatterns {
		n, ok := group1(re, text)
		if !ok {
			continue
		}
		if reGermanVATID.MatchString(n) {
			continue
		}
		return n
	}
	return ""
}

func genericDate(text string) *time.Time {
	for _, re := range genericDatePatterns {
		if t := date(re, text); t != nil {
			return t
		}
	}
	return nil
}

// genericTotal takes the largest labeled/currency amount on the document; the
// platform grammars override it with the precise total when they find one.
func genericTotal(text string) *float64 {
	for _, re := range genericTotalPatterns {
		matches := re.FindAllStringSubmatch(text, -1)
		if matches == nil {
			continue
		}
		var best *float64
		for _, m := range matches {
			f, ok := normalize.ParseDecimal(m[1])
			if !ok {
				continue
			}
			if best == nil || f > *best {
				best = floatPtr(f)
			}
		}
		if best != nil {
			return best
		}
	}
	return nil
}
