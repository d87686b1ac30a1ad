package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

var (
	reLfCustomerNo = regexp.MustCompile(`Kundennummer[\s:]*(\d+)`)
	reLfRestaurant = regexp.MustCompile(`z\.Hd\.\s*(.+)`)
	reLfCompany    = regexp.MustCompile(`z\.Hd\.\s+(.+?GmbH)`)
	reLfPeriod     = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})\s+bis\s+(?:einschließlich\s+)?(\d{2}-\d{2}-\d{4})`)

	// "Lieferando.de (02-11-2025 bis einschließlich 08-11-2025): 26 Bestellungen im Wert von € 627,59"
	reLfTotalsLine   = regexp.MustCompile(`(?i)Lieferando\.de\s*\([^)]+\)\s*:\s*(\d+)\s+Bestellungen\s+im\s+Wert\s+von\s*€\s*([\d,.]+)`)
	reLfRevenueLine  = regexp.MustCompile(`Ihr Umsatz in der Zeit[^€]*€\s*([\d,.]+)`)
	reLfGesamtLine   = regexp.MustCompile(`(?i)Gesamt\s+(\d+)\s+Bestellungen?[^€]*€\s*([\d,.]+)`)
	reLfAdminTitle   = regexp.MustCompile(`(?is)Verwaltungsgebühr\s*\(Online-Zahlungen\)\s*\([^)]+\)\s*:\s*(\d+)\s+Bestellungen\s+im\s+Wert\s+von\s*€\s*([\d,.]+)`)
	reLfAdminLoose   = regexp.MustCompile(`(?is)Verwaltungsgebühr\s*\(Online-Zahlungen\)[\s\S]*?(\d+)\s+Bestellungen\s+im\s+Wert\s+von\s*€\s*([\d,.]+)`)
	reLfAdminRate    = regexp.MustCompile(`(?is)Verwaltungsgebühr\s*\(Online-Zahlungen\)[\s\S]*?Servicegebühr:\s*€\s*([\d,.]+)\s*x\s*(\d+)`)
	reLfServiceFee   = regexp.MustCompile(`Servicegebühr:\s*([\d,.]+)%[^€]*€\s*[\d,.]+\s*€\s*([\d,.]+)`)
	reLfSubtotal     = regexp.MustCompile(`Zwischensumme\s*€\s*([\d,.]+)`)
	reLfTax          = regexp.MustCompile(`MwSt\.\s*\((\d+)%[^€]*€\s*[\d,.]+\)\s*€\s*([\d,.]+)`)
	reLfTotal        = regexp.MustCompile(`Gesamtbetrag dieser Rechnung\s*€\s*([\d,.]+)`)
	reLfChargeback   = regexp.MustCompile(`(?i)R[üu]ckbuch\w*\s+(\d+)\s+Bestellungen?\s+im\s+Wert\s+von\s+€\s*([\d,.]+)`)
	reLfPaidOnline   = regexp.MustCompile(`Verrechnet mit eingegangenen Onlinebezahlungen\s*€\s*([\d,.]+)`)
	reLfOutstanding  = regexp.MustCompile(`Offener Rechnungsbetrag\s*€\s*([\d,.]+)`)
	reLfOutBalance   = regexp.MustCompile(`Ausstehende Onlinebezahlungen am[^€]*€\s*([\d,.]+)`)
	reLfPayout       = regexp.MustCompile(`(?s)COLLECTIVE GmbH[^€]*€\s*([\d,.]+)\s*Datum`)
	reLfCustIBAN     = regexp.MustCompile(`Bankkonto\s+(DE[\d\s]+)`)
	reLfSuppIBAN     = regexp.MustCompile(`IBAN:\s+(DE[\d\s]+)`)
	reLfVATID        = regexp.MustCompile(`USt\.-IdNr\.\s+(DE\d+)`)
	reLfDirector     = regexp.MustCompile(`(?i)Geschäftsführer\s*:\s*(.+)`)
	reLfCourt        = regexp.MustCompile(`(?i)Amtsgericht\s*[:\s]+[^\n]+`)
	reLfHRB          = regexp.MustCompile(`(?i)HRB\s*[:\s]+([A-Z0-9]+)`)
	reLfAmountDue    = regexp.MustCompile(`(?i)Zu\s+begleichender\s+Betrag\s*:\s*€?\s*([\d,.]+)`)
	reLfConfDate     = regexp.MustCompile(`(?i)Am\s+(\d{2}[-.]\d{2}[-.]\d{4})\s+wurde\s+an\s+Sie`)
	reLfConfSnippet  = regexp.MustCompile(`(?is)(.{0,10}Bestätigungscode.{0,220})`)
	reLfServiceGebCt = regexp.MustCompile(`(?i)Servicegebühren\s*\([^)]+\):\s*(\d+)\s+Bestellungen\s+im\s+Wert\s+von\s+€\s*([\d,.]+)`)

	lfTaxNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Steuernummer[:\s]+(DE\d+)`),
		regexp.MustCompile(`(?i)Steuernummer[:\s]+([A-Z]{2}\d+)`),
		regexp.MustCompile(`(?i)Steuernummer[:\s]+([A-Z]{2}[\d/]+)`),
	}

	lfStampCardPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)davon mit Stempelkarte bezahlt\s*\*\*\s*:\s*(\d+)\s+Bestellung[^€]*€\s*([\d,.]+)`),
		regexp.MustCompile(`(?i)davon mit Stempelkarte bezahlt\s*\*\*\s+(\d+)\s+Bestellung[^€]*€\s*([\d,.]+)`),
		regexp.MustCompile(`(?i)Stempelkarte bezahlt\s*\*\*\s*:\s*(\d+)\s+Bestellung[^€]*€\s*([\d,.]+)`),
	}

	// "02-11-2025, 12:38:34 H7HH6B 22,00*" — trailing * marks online payment.
	reLfOrderRow = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4},\s*\d{2}:\d{2}:\d{2})\s+([A-Z0-9]+)\s+([\d,.]+)(\*?)$`)
	reLfTipRow   = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4},\s*\d{2}:\d{2}:\d{2})\s+([A-Z0-9]+)\s+([\d,.]+)$`)
)

func extractLieferando(text string, d *Data) *LieferandoFields {
	f := &LieferandoFields{SupplierName: constants.SupplierLieferando}

	f.CustomerNumber, _ = group1(reLfCustomerNo, text)
	if m := reLfRestaurant.FindStringSubmatch(text); m != nil {
		f.RestaurantName = strings.TrimSpace(strings.TrimRight(m[1], "\r"))
	}
	f.CustomerCompany, _ = group1(reLfCompany, text)

	if m := reLfPeriod.FindStringSubmatch(text); m != nil {
		if t, ok := normalize.ParseDate(m[1]); ok {
			f.PeriodStart = &t
		}
		if t, ok := normalize.ParseDate(m[2]); ok {
			f.PeriodEnd = &t
		}
	}

	// Totals line on page one, then two fallbacks for older layouts.
	if m := reLfTotalsLine.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.TotalOrders = &n
		}
		if v, ok := normalize.ParseDecimal(m[2]); ok {
			f.TotalRevenue = &v
		}
	}
	if f.TotalRevenue == nil {
		f.TotalRevenue = dec(reLfRevenueLine, text)
	}
	if f.TotalOrders == nil || f.TotalRevenue == nil {
		if m := reLfGesamtLine.FindStringSubmatch(text); m != nil {
			if f.TotalOrders == nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					f.TotalOrders = &n
				}
			}
			if f.TotalRevenue == nil {
				if v, ok := normalize.ParseDecimal(m[2]); ok {
					f.TotalRevenue = &v
				}
			}
		}
	}

	// Online payment block. The strict pattern first; PDFs that break the
	// line mid-label need the loose one.
	admin := reLfAdminTitle.FindStringSubmatch(text)
	if admin == nil {
		admin = reLfAdminLoose.FindStringSubmatch(text)
	}
	if admin != nil {
		if n, err := strconv.Atoi(admin[1]); err == nil {
			f.OnlinePaidOrders = &n
		}
		if v, ok := normalize.ParseDecimal(admin[2]); ok {
			f.OnlinePaidAmount = &v
		}
	}
	if m := reLfAdminRate.FindStringSubmatch(text); m != nil {
		rate, rateOK := normalize.ParseDecimal(m[1])
		n, err := strconv.Atoi(m[2])
		if rateOK {
			f.AdminFeeRate = &rate
		}
		if err == nil && f.OnlinePaidOrders == nil {
			f.OnlinePaidOrders = &n
		}
		if rateOK && err == nil {
			amount := float64(int(rate*float64(n)*100+0.5)) / 100
			f.AdminFeeAmount = &amount
		}
	}

	// Derived complements: only stored when non-negative.
	if f.TotalOrders != nil && f.OnlinePaidOrders != nil && f.CashPaidOrders == nil {
		if cash := *f.TotalOrders - *f.OnlinePaidOrders; cash > 0 {
			f.CashPaidOrders = &cash
		}
	}
	if f.TotalRevenue != nil && f.OnlinePaidAmount != nil && f.CashPaidAmount == nil {
		cash := float64(int((*f.TotalRevenue-*f.OnlinePaidAmount)*100+0.5)) / 100
		if cash > 0 {
			f.CashPaidAmount = &cash
		}
	}

	if m := reLfServiceFee.FindStringSubmatch(text); m != nil {
		if rate, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			f.ServiceFeeRate = &rate
		}
		if v, ok := normalize.ParseDecimal(m[2]); ok {
			f.ServiceFeeAmount = &v
		}
	}

	f.Subtotal = dec(reLfSubtotal, text)
	if m := reLfTax.FindStringSubmatch(text); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.TaxRate = &rate
		}
		if v, ok := normalize.ParseDecimal(m[2]); ok {
			f.TaxAmount = &v
		}
	}
	if total := dec(reLfTotal, text); total != nil {
		d.TotalAmount = total
	}

	if m := reLfChargeback.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.ChargebackOrders = &n
		}
		if v, ok := normalize.ParseDecimal(m[2]); ok {
			f.ChargebackAmount = &v
		}
	}

	f.PaidOnlinePayments = dec(reLfPaidOnline, text)
	f.OutstandingAmount = dec(reLfOutstanding, text)
	f.OutstandingBalance = dec(reLfOutBalance, text)
	f.PayoutAmount = dec(reLfPayout, text)

	if m := reLfCustIBAN.FindStringSubmatch(text); m != nil {
		f.CustomerBankIBAN = stripSpaces(m[1])
	}
	if m := reLfSuppIBAN.FindStringSubmatch(text); m != nil {
		f.SupplierIBAN = stripSpaces(m[1])
	}
	f.SupplierVATID, _ = group1(reLfVATID, text)

	for _, re := range lfTaxNumberPatterns {
		if n, ok := group1(re, text); ok {
			// "DE36/159/6531" -> "DE361596531"
			f.CustomerTaxNumber = strings.ReplaceAll(n, "/", "")
			break
		}
	}

	// Cash service fees: "Servicegebühren (02-11-2025 ...): 5 Bestellungen im Wert von € 3,38"
	if m := reLfServiceGebCt.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && f.CashPaidOrders == nil {
			f.CashPaidOrders = &n
		}
		if v, ok := normalize.ParseDecimal(m[2]); ok && f.CashServiceFeeAmount == nil {
			f.CashServiceFeeAmount = &v
		}
	}

	f.OrderItems = parseItemTable(text, "", true)
	f.TipItems = parseItemTable(text, "Trinkgelder erhalten von", false)

	extractLieferandoFooter(text, f)
	extractLieferandoConfirmation(text, f)
	extractLieferandoStampCard(text, f)

	return f
}

func extractLieferandoFooter(text string, f *LieferandoFields) {
	if m := reLfDirector.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		// names sometimes continue before the next label; keep the first line
		// and cut off trailing register data
		name = regexp.MustCompile(`(?i)\b(IBAN|USt\.?-IdNr|HRB|Amtsgericht|T:|Tel\.?)\b`).Split(name, 2)[0]
		f.SupplierManagingDirector = strings.TrimSpace(name)
	}
	if m := reLfCourt.FindString(text); m != "" {
		// keep the full "Amtsgericht Berlin-..." wording
		f.SupplierCourtRegistry = strings.TrimSpace(strings.SplitN(m, "\n", 2)[0])
	}
	f.SupplierHRB, _ = group1(reLfHRB, text)
}

func extractLieferandoConfirmation(text string, f *LieferandoFields) {
	f.AmountDue = dec(reLfAmountDue, text)
	if m := reLfConfDate.FindStringSubmatch(text); m != nil {
		if t, ok := normalize.ParseDate(strings.ReplaceAll(m[1], ".", "-")); ok {
			f.ConfirmationPaymentDate = &t
		}
	}
	if m := reLfConfSnippet.FindStringSubmatch(text); m != nil {
		msg := strings.Join(strings.Fields(strings.ReplaceAll(m[1], "\n", " ")), " ")
		if len(msg) > 255 {
			msg = msg[:255]
		}
		f.ConfirmationCodeMessage = msg
	}
}

func extractLieferandoStampCard(text string, f *LieferandoFields) {
	for _, re := range lfStampCardPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		v, ok := normalize.ParseDecimal(m[2])
		if !ok {
			continue
		}
		f.StampCardOrders = &n
		f.StampCardAmount = &v
		return
	}
}

// parseItemTable consumes the "Datum # €" item tables of the later pages.
// When anchor is non-empty the header is only searched after the anchor line
// (the tip table follows "Trinkgelder erhalten von"). A blank line, a footnote
// or a malformed row ends the table silently without failing the extraction.
func parseItemTable(text, anchor string, withOnlineFlag bool) []LineItem {
	lines := strings.Split(text, "\n")

	start := 0
	if anchor != "" {
		start = -1
		for i, line := range lines {
			if strings.Contains(line, anchor) {
				start = i
				break
			}
		}
		if start < 0 {
			return nil
		}
	}

	headerIdx := -1
	for i := start; i < len(lines); i++ {
		clean := strings.TrimSpace(lines[i])
		if clean == "Datum # €" || (strings.Contains(clean, "Datum") && strings.Contains(clean, "#") && strings.Contains(clean, "€") && len(clean) <= 15) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	rowRe := reLfTipRow
	if withOnlineFlag {
		rowRe = reLfOrderRow
	}

	var items []LineItem
	for _, line := range lines[headerIdx+1:] {
		clean := strings.TrimSpace(line)
		if clean == "" {
			break
		}
		if strings.HasPrefix(clean, "**") || strings.Contains(clean, "Powered by TCPDF") {
			break
		}
		m := rowRe.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		at, ok := normalize.ParseDateTime(m[1])
		if !ok {
			continue
		}
		amount, ok := normalize.ParseDecimal(m[3])
		if !ok {
			continue
		}
		item := LineItem{At: at, ID: m[2], Amount: amount}
		if withOnlineFlag {
			item.Online = strings.HasSuffix(clean, "*")
		}
		items = append(items, item)
	}
	return items
}
