package extract

import (
	"math"
	"testing"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
)

const lieferandoText = `Lieferando.de
yd. yourdelivery GmbH
Kundennummer: 123456
z.Hd. Edelweiss Pizza GmbH
Rechnung Nr: 9917350273
Lieferando.de (02-11-2025 bis einschließlich 08-11-2025): 26 Bestellungen im Wert von € 627,59
Verwaltungsgebühr (Online-Zahlungen) (02-11-2025 bis einschließlich 08-11-2025): 21 Bestellungen im Wert von € 512,09
Servicegebühr: € 0,25 x 21
Servicegebühr: 13,0% von € 627,59 € 81,59
Zwischensumme € 86,84
MwSt. (19% von € 86,84) € 16,50
Gesamtbetrag dieser Rechnung € 103,34
Verrechnet mit eingegangenen Onlinebezahlungen € 512,09
Offener Rechnungsbetrag € 0,00
Bankkonto DE89370400440532013000
davon mit Stempelkarte bezahlt **: 1 Bestellung im Wert von € 12,69
Datum # €
02-11-2025, 12:38:34 H7HH6B 22,00*
02-11-2025, 13:02:11 K3ZZ1A 15,50

Trinkgelder erhalten von Kunden
Datum # €
03-11-2025, 18:00:00 H7HH6B 2,00

Geschäftsführer: Lukas Berg
Amtsgericht Berlin-Charlottenburg
HRB: 145454
USt.-IdNr. DE815377698
`

func approx(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil, want %v", name, want)
	}
	if math.Abs(*got-want) > 0.005 {
		t.Errorf("%s = %v, want %v", name, *got, want)
	}
}

func wantInt(t *testing.T, name string, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil, want %d", name, want)
	}
	if *got != want {
		t.Errorf("%s = %d, want %d", name, *got, want)
	}
}

func TestExtractLieferando(t *testing.T) {
	d := Extract(constants.PlatformLieferando, lieferandoText)
	if d.InvoiceNumber != "9917350273" {
		t.Errorf("invoice number = %q", d.InvoiceNumber)
	}
	approx(t, "total amount", d.TotalAmount, 103.34)
	if d.Confidence != constants.DefaultExtractionConfidence {
		t.Errorf("confidence = %d", d.Confidence)
	}

	f := d.Lieferando
	if f == nil {
		t.Fatal("no lieferando fields")
	}
	if f.CustomerNumber != "123456" {
		t.Errorf("customer number = %q", f.CustomerNumber)
	}
	if f.CustomerCompany != "Edelweiss Pizza GmbH" {
		t.Errorf("customer company = %q", f.CustomerCompany)
	}
	if f.PeriodStart == nil || !f.PeriodStart.Equal(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v", f.PeriodStart)
	}
	if f.PeriodEnd == nil || !f.PeriodEnd.Equal(time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period end = %v", f.PeriodEnd)
	}

	wantInt(t, "total orders", f.TotalOrders, 26)
	approx(t, "total revenue", f.TotalRevenue, 627.59)
	wantInt(t, "online paid orders", f.OnlinePaidOrders, 21)
	approx(t, "online paid amount", f.OnlinePaidAmount, 512.09)
	wantInt(t, "cash paid orders", f.CashPaidOrders, 5)
	approx(t, "cash paid amount", f.CashPaidAmount, 115.50)

	approx(t, "admin fee rate", f.AdminFeeRate, 0.25)
	approx(t, "admin fee amount", f.AdminFeeAmount, 5.25)
	approx(t, "service fee rate", f.ServiceFeeRate, 13.0)
	approx(t, "service fee amount", f.ServiceFeeAmount, 81.59)
	approx(t, "subtotal", f.Subtotal, 86.84)
	approx(t, "tax rate", f.TaxRate, 19)
	approx(t, "tax amount", f.TaxAmount, 16.50)
	approx(t, "paid online payments", f.PaidOnlinePayments, 512.09)
	approx(t, "outstanding", f.OutstandingAmount, 0)

	if f.CustomerBankIBAN != "DE89370400440532013000" {
		t.Errorf("customer IBAN = %q", f.CustomerBankIBAN)
	}
	if f.SupplierVATID != "DE815377698" {
		t.Errorf("supplier VAT ID = %q", f.SupplierVATID)
	}
	if f.SupplierManagingDirector != "Lukas Berg" {
		t.Errorf("managing director = %q", f.SupplierManagingDirector)
	}
	if f.SupplierHRB != "145454" {
		t.Errorf("HRB = %q", f.SupplierHRB)
	}

	wantInt(t, "stamp card orders", f.StampCardOrders, 1)
	approx(t, "stamp card amount", f.StampCardAmount, 12.69)
}

func TestExtractLieferandoOrderTable(t *testing.T) {
	d := Extract(constants.PlatformLieferando, lieferandoText)
	f := d.Lieferando

	if len(f.OrderItems) != 2 {
		t.Fatalf("got %d order items, want 2", len(f.OrderItems))
	}
	first := f.OrderItems[0]
	if first.ID != "H7HH6B" || !first.Online || math.Abs(first.Amount-22.00) > 0.005 {
		t.Errorf("first order item = %+v", first)
	}
	if !first.At.Equal(time.Date(2025, 11, 2, 12, 38, 34, 0, time.UTC)) {
		t.Errorf("first order time = %v", first.At)
	}
	if second := f.OrderItems[1]; second.Online {
		t.Error("cash order flagged as online")
	}

	if len(f.TipItems) != 1 {
		t.Fatalf("got %d tip items, want 1", len(f.TipItems))
	}
	if tip := f.TipItems[0]; tip.ID != "H7HH6B" || math.Abs(tip.Amount-2.00) > 0.005 {
		t.Errorf("tip item = %+v", tip)
	}
}

// A table footnote or the TCPDF footer ends the table without failing the
// extraction of everything before it.
func TestExtractLieferandoTableStops(t *testing.T) {
	text := "Datum # €\n" +
		"02-11-2025, 12:38:34 AAAAAA 10,00*\n" +
		"** mit Stempelkarte bezahlt\n" +
		"02-11-2025, 13:00:00 BBBBBB 11,00*\n"
	items := parseItemTable(text, "", true)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (table must stop at footnote)", len(items))
	}

	text = "Datum # €\n02-11-2025, 12:38:34 AAAAAA 10,00*\nPowered by TCPDF (www.tcpdf.org)\n"
	if items = parseItemTable(text, "", true); len(items) != 1 {
		t.Fatalf("got %d items, want 1 (table must stop at footer)", len(items))
	}
}

// Derived cash counts are complements of online counts and must never go
// negative, whatever the grammar matched.
func TestExtractLieferandoNoNegativeCashDerivation(t *testing.T) {
	text := `Lieferando.de (02-11-2025 bis einschließlich 08-11-2025): 10 Bestellungen im Wert von € 100,00
Verwaltungsgebühr (Online-Zahlungen) (02-11-2025 bis einschließlich 08-11-2025): 12 Bestellungen im Wert von € 120,00
`
	d := Extract(constants.PlatformLieferando, text)
	f := d.Lieferando
	if f.CashPaidOrders != nil {
		t.Errorf("cash paid orders = %d, want nil", *f.CashPaidOrders)
	}
	if f.CashPaidAmount != nil {
		t.Errorf("cash paid amount = %v, want nil", *f.CashPaidAmount)
	}
}

const woltText = `Rechnung (Selbstfakturierung)
Rechnungsnummer DEU/25/HRB274170B/1/35
Bill To
Wolt Enterprises Deutschland GmbH
Potsdamer Platz 1
10785 Berlin
Leistungszeitraum 01.11.2025 - 16.11.2025
Rechnungsdatum 17.11.2025
USt.-ID: DE315819979
Restaurant Edelweiss Baumschulenstraße
Geschäfts-ID: HRB274170B
Summe verkaufte Waren 1.234,56 7.00 86,42 1.320,98
Summe verkaufte Waren 100,00 19.00 19,00 119,00
Zwischensumme aller verkauften Waren (A) 1.334,56 105,42 1.439,98
Zwischensumme Wolt Vertrieb (B) 400,00 76,00 476,00
Summe Nettopreis (A - B) mit Umsatzsteuer 7.00 % 834,56 7.00 58,42 892,98
Summe Nettopreis (A - B) mit Umsatzsteuer 19.00 % 100,00 19.00 19,00 119,00
Endbetrag 934,56 77,42 1.011,98
`

func TestExtractWolt(t *testing.T) {
	d := Extract(constants.PlatformWolt, woltText)
	if d.InvoiceNumber != "DEU/25/HRB274170B/1/35" {
		t.Errorf("invoice number = %q", d.InvoiceNumber)
	}
	if d.InvoiceDate == nil || !d.InvoiceDate.Equal(time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("invoice date = %v", d.InvoiceDate)
	}
	approx(t, "total amount", d.TotalAmount, 1011.98)

	f := d.Wolt
	if f == nil {
		t.Fatal("no wolt fields")
	}
	if f.SupplierName != "Wolt Enterprises Deutschland GmbH" {
		t.Errorf("supplier = %q", f.SupplierName)
	}
	if f.SupplierAddress != "Potsdamer Platz 1 10785 Berlin" {
		t.Errorf("supplier address = %q", f.SupplierAddress)
	}
	if f.SupplierVATID != "DE315819979" {
		t.Errorf("supplier VAT = %q", f.SupplierVATID)
	}
	if f.RestaurantName != "Edelweiss Baumschulenstraße" {
		t.Errorf("restaurant = %q", f.RestaurantName)
	}
	if f.BusinessID != "HRB274170B" {
		t.Errorf("business ID = %q", f.BusinessID)
	}
	if f.PeriodStart == nil || !f.PeriodStart.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v", f.PeriodStart)
	}

	approx(t, "goods 7 net", f.Goods7.Net, 1234.56)
	approx(t, "goods 7 vat", f.Goods7.VAT, 86.42)
	approx(t, "goods 7 gross", f.Goods7.Gross, 1320.98)
	approx(t, "goods 19 net", f.Goods19.Net, 100.00)
	approx(t, "goods total net", f.GoodsTotal.Net, 1334.56)
	approx(t, "distribution net", f.DistributionTotal.Net, 400.00)
	approx(t, "netprice 7 net", f.NetPrice7.Net, 834.56)
	approx(t, "netprice 19 gross", f.NetPrice19.Gross, 119.00)
	approx(t, "netprice total net", f.NetPriceTotal.Net, 934.56)
	approx(t, "netprice total vat", f.NetPriceTotal.VAT, 77.42)
	approx(t, "netprice total gross", f.NetPriceTotal.Gross, 1011.98)
	approx(t, "end amount gross", f.EndAmount.Gross, 1011.98)
}

func TestExtractWoltSupplierFallback(t *testing.T) {
	d := Extract(constants.PlatformWolt, "Rechnung (Selbstfakturierung)\nRechnungsnummer DEU/25/X1/1/2\n")
	if d.Wolt.SupplierName != constants.SupplierWolt {
		t.Errorf("supplier fallback = %q", d.Wolt.SupplierName)
	}
}

const uberEatsText = `Bestell- und Zahlungsübersicht
Rechnungsnummer: UBER_DEU-FIGGGCEE-01-2025-0000001
Rechnungsdatum: 17.11.2025
Steuerdatum 16.11.2025
Zeitraum: 11.11.2025 - 16.11.2025
CC CULINARY COLLECTIVE GmbH
Hohenzollerndamm 58,14199,Berlin, Germany
Restaurant: Burger Boost - CC Culinary Collective (Weseler Straße)
Handelsregisternummer: HRB 274170
USt-IdNr.: DE361596531
St-Nr.: 127/249/52915
42 Bestellungen im Gesamtwert von: € 1.100,50
Bruttoumsatz nach Rabatten € 1.050,00
Provision, eigene Lieferung (30%) € 315,00
Provision, Abholung (15%) € 12,00
MwSt. (19%) € 62,13
Eingenommenes Bargeld € 80,00
Gesamtauszahlung € 595,87
Gesamtnettobetrag 327,00 €
Gesamtbetrag USt 19% 62,13 €
Gesamtbetrag 389,13 €
`

func TestExtractUberEats(t *testing.T) {
	d := Extract(constants.PlatformUberEats, uberEatsText)
	if d.InvoiceNumber != "UBER_DEU-FIGGGCEE-01-2025-0000001" {
		t.Errorf("invoice number = %q", d.InvoiceNumber)
	}
	if d.InvoiceDate == nil || !d.InvoiceDate.Equal(time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("invoice date = %v", d.InvoiceDate)
	}
	approx(t, "total amount", d.TotalAmount, 389.13)

	f := d.UberEats
	if f == nil {
		t.Fatal("no uber eats fields")
	}
	if f.TaxDate == nil || !f.TaxDate.Equal(time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tax date = %v", f.TaxDate)
	}
	if f.PeriodStart == nil || !f.PeriodStart.Equal(time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v", f.PeriodStart)
	}
	if f.CustomerCompany != "CC CULINARY COLLECTIVE GmbH" {
		t.Errorf("customer company = %q", f.CustomerCompany)
	}
	if f.RestaurantName != "Burger Boost - CC Culinary Collective (Weseler Straße)" {
		t.Errorf("restaurant = %q", f.RestaurantName)
	}
	if f.RestaurantAddress != "Hohenzollerndamm 58, 14199, Berlin, Germany" {
		t.Errorf("restaurant address = %q", f.RestaurantAddress)
	}
	if f.BusinessID != "HRB 274170" {
		t.Errorf("business ID = %q", f.BusinessID)
	}
	if f.CustomerVATID != "DE361596531" {
		t.Errorf("customer VAT = %q", f.CustomerVATID)
	}
	if f.TaxNumber != "127/249/52915" {
		t.Errorf("tax number = %q", f.TaxNumber)
	}

	wantInt(t, "total orders", f.TotalOrders, 42)
	approx(t, "total order value", f.TotalOrderValue, 1100.50)
	approx(t, "gross revenue", f.GrossRevenueAfterDiscounts, 1050.00)
	approx(t, "commission own delivery", f.CommissionOwnDelivery, 315.00)
	approx(t, "commission pickup", f.CommissionPickup, 12.00)
	approx(t, "vat 19", f.VAT19, 62.13)
	approx(t, "cash collected", f.CashCollected, 80.00)
	approx(t, "total payout", f.TotalPayout, 595.87)
	approx(t, "net amount", f.NetAmount, 327.00)
	approx(t, "vat amount", f.VATAmount, 62.13)
}

// An alternative VAT-ID label must never be mistaken for an invoice number.
func TestInvoiceNumberRejectsVATID(t *testing.T) {
	if n := invoiceNumber("Rechnungsnummer DE123456789\n"); n != "" {
		t.Errorf("got %q, want empty (VAT-ID shaped)", n)
	}
}

func TestExtractEmptyText(t *testing.T) {
	d := Extract(constants.PlatformWolt, "")
	if d.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", d.Confidence)
	}
	if d.InvoiceNumber != "" || d.TotalAmount != nil {
		t.Error("empty text produced fields")
	}
}

const nettingText = `Übersicht Umsätze und Auszahlungen
01.11.2025 - 16.11.2025
Rechnungsnummer Gesamtbetrag
DEU/25/HRB274170B/1/35 934,56 77,42 1.011,98
DEU/25/WOLT/99/12 -400,00 -76,00 -476,00
Nettoauszahlung 535,98
`

func TestExtractNetting(t *testing.T) {
	f := ExtractNetting(nettingText)
	if f.Empty() {
		t.Fatal("netting result is empty")
	}
	if f.MerchantInvoiceNumber != "DEU/25/HRB274170B/1/35" {
		t.Errorf("merchant invoice = %q", f.MerchantInvoiceNumber)
	}
	approx(t, "merchant net", f.Merchant.Net, 934.56)
	approx(t, "merchant vat", f.Merchant.VAT, 77.42)
	approx(t, "merchant gross", f.Merchant.Gross, 1011.98)
	if f.WoltInvoiceNumber != "DEU/25/WOLT/99/12" {
		t.Errorf("wolt invoice = %q", f.WoltInvoiceNumber)
	}
	approx(t, "wolt net", f.Wolt.Net, -400.00)
	approx(t, "wolt gross", f.Wolt.Gross, -476.00)
	approx(t, "net payout", f.NetPayout, 535.98)
}

func TestExtractNettingNegativePayoutLine(t *testing.T) {
	f := ExtractNetting("Nettoauszahlung -12,50 EUR\n")
	approx(t, "net payout", f.NetPayout, -12.50)
}

func TestExtractNettingEmpty(t *testing.T) {
	if f := ExtractNetting(""); !f.Empty() {
		t.Error("empty text produced netting fields")
	}
	if f := ExtractNetting("Wolt Marketing Report\nnothing relevant here"); !f.Empty() {
		t.Error("irrelevant text produced netting fields")
	}
}

func TestFindNettingInvoiceNumber(t *testing.T) {
	// the table header's column label must be skipped
	if n := FindNettingInvoiceNumber(nettingText); n != "DEU/25/HRB274170B/1/35" {
		t.Errorf("got %q", n)
	}
	if n := FindNettingInvoiceNumber("Rechnungsnummer: deu/25/x9/1/7\n"); n != "DEU/25/X9/1/7" {
		t.Errorf("labeled lowercase: got %q", n)
	}
	if n := FindNettingInvoiceNumber("no numbers here"); n != "" {
		t.Errorf("got %q, want empty", n)
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	total := 103.34

	complete := &Data{
		Platform:      constants.PlatformLieferando,
		InvoiceNumber: "9917350273",
		InvoiceDate:   &now,
		TotalAmount:   &total,
		Confidence:    constants.DefaultExtractionConfidence,
	}
	Validate(complete)
	if complete.NeedsReview {
		t.Error("complete result flagged for review")
	}

	missingTotal := &Data{
		Platform:      constants.PlatformWolt,
		InvoiceNumber: "DEU/25/X/1/1",
		InvoiceDate:   &now,
		Confidence:    constants.DefaultExtractionConfidence,
	}
	Validate(missingTotal)
	if !missingTotal.NeedsReview {
		t.Error("missing total not flagged")
	}

	placeholder := &Data{
		Platform:      constants.PlatformLieferando,
		InvoiceNumber: "TEMP-20251117120000",
		InvoiceDate:   &now,
		TotalAmount:   &total,
		Confidence:    constants.DefaultExtractionConfidence,
	}
	Validate(placeholder)
	if !placeholder.NeedsReview {
		t.Error("placeholder number not flagged")
	}
}
