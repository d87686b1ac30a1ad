package classify

import (
	"math/rand"
	"testing"

	"github.com/cc-collective/invoice-ingest/constants"
)

func randomText(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,\n"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// The rechnung_und filename prefix is authoritative: whatever the content
// claims, the PDF is a Lieferando invoice.
func TestClassifyFilenamePrefixBeatsContent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		content := randomText(r, 400)
		if got := Classify("rechnung_und_einzelauflistung.pdf", content); got != constants.PlatformLieferando {
			t.Fatalf("iteration %d: got %s, want lieferando (content %q)", i, got, content)
		}
	}
	// even content that screams another platform
	for _, content := range []string{"Uber Eats Germany", "Wolt Enterprises Selbstfakturierung Rechnung"} {
		if got := Classify("Rechnung_und_Einzelauflistung.pdf", content); got != constants.PlatformLieferando {
			t.Errorf("content %q: got %s, want lieferando", content, got)
		}
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want constants.Platform
	}{
		{"rechnung_und_einzelauflistung_12345.pdf", constants.PlatformLieferando},
		{"Edelweiss Baumschulenstraße__netting_report__semi_monthly__2025-11-16__2025-12-01.pdf", constants.PlatformWolt},
		{"Edelweiss Baumschulenstraße__sales_report__semi_monthly__2025-11-16__2025-12-01.pdf", constants.PlatformWolt},
		{"Edelweiss_Baumschulenstraße_2025-11-30_00:00:00.000_692cfcbbc3686f9e6b931ea6.pdf", constants.PlatformWolt},
		{"report_2025-11-16__2025-12-01.pdf", constants.PlatformWolt},
		{"lieferando-november.pdf", constants.PlatformLieferando},
		{"yourdelivery_abrechnung.pdf", constants.PlatformLieferando},
		{"takeaway_invoice.pdf", constants.PlatformLieferando},
		{"statement.pdf", constants.PlatformUnknown},
		{"", constants.PlatformUnknown},
	}
	for _, tt := range tests {
		if got := FromFilename(tt.name); got != tt.want {
			t.Errorf("FromFilename(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    constants.Platform
	}{
		{"uber header", "Bestell- und Zahlungsübersicht\nZeitraum: 11.11.2025 - 16.11.2025", constants.PlatformUberEats},
		{"uber brand", "invoice issued by Uber Eats Germany GmbH", constants.PlatformUberEats},
		{"wolt self billed", "Rechnung (Selbstfakturierung)\nWolt Enterprises Deutschland GmbH", constants.PlatformWolt},
		{"wolt brand only", "payout issued by Wolt", constants.PlatformWolt},
		{"lieferando", "Lieferando.de Abrechnung", constants.PlatformLieferando},
		{"self billed but lieferando branded", "Rechnung Selbstfakturierung lieferando", constants.PlatformLieferando},
		{"unrelated", "1&1 Telecom GmbH Rechnungsübersicht", constants.PlatformUnknown},
	}
	for _, tt := range tests {
		if got := FromContent(tt.content); got != tt.want {
			t.Errorf("%s: FromContent = %s, want %s", tt.name, got, tt.want)
		}
	}
}

// Every text carrying both self-billing markers and no Lieferando branding
// classifies as Wolt, independent of surrounding noise.
func TestSelfBilledContentIsWolt(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		content := randomText(r, 200) + " Rechnung (Selbstfakturierung) " + randomText(r, 200)
		got := FromContent(content)
		// random noise can legitimately contain a stronger marker only via
		// these substrings, which the alphabet cannot produce
		if got != constants.PlatformWolt {
			t.Fatalf("iteration %d: got %s, want wolt", i, got)
		}
	}
}

func TestSniffWoltPayout(t *testing.T) {
	tests := []struct {
		firstPage string
		want      constants.DocType
	}{
		{"Rechnung (Selbstfakturierung)\nRechnungsnummer DEU/25/HRB274170B/1/35", constants.DocPrimaryInvoice},
		{"Übersicht Umsätze und Auszahlungen\n01.11.2025 - 16.11.2025", constants.DocNettingReport},
		{"Wolt Marketing Report", constants.DocIrrelevant},
	}
	for _, tt := range tests {
		if got := SniffWoltPayout(tt.firstPage); got != tt.want {
			t.Errorf("SniffWoltPayout(%q) = %s, want %s", tt.firstPage, got, tt.want)
		}
	}
}

func TestSniffUberEats(t *testing.T) {
	if got := SniffUberEats("Bestell- und Zahlungsübersicht"); got != constants.DocPrimaryInvoice {
		t.Errorf("summary header: got %s", got)
	}
	if got := SniffUberEats("Werbeanzeigen Übersicht"); got != constants.DocIrrelevant {
		t.Errorf("other report: got %s", got)
	}
}

func TestFirstPage(t *testing.T) {
	if got := FirstPage("page one\fpage two"); got != "page one" {
		t.Errorf("FirstPage = %q", got)
	}
	if got := FirstPage("single page"); got != "single page" {
		t.Errorf("FirstPage single = %q", got)
	}
}

func TestSubjectGating(t *testing.T) {
	uber, wolt := IsSpecialReportSubject("Ihre neue Aktivitätsübersicht ist verfügbar")
	if !uber || wolt {
		t.Errorf("uber subject: got uber=%v wolt=%v", uber, wolt)
	}
	uber, wolt = IsSpecialReportSubject("Wolt Payout Report 16.11.-30.11.")
	if uber || !wolt {
		t.Errorf("wolt subject: got uber=%v wolt=%v", uber, wolt)
	}
	if !HasInvoiceSubject("Ihre Rechnung für November") {
		t.Error("rechnung subject not detected")
	}
	if HasInvoiceSubject("Newsletter: neue Restaurants in Berlin") {
		t.Error("newsletter subject detected as invoice")
	}
}
