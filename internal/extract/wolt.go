package extract

import (
	"regexp"
	"strings"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

var (
	reWoltBillTo      = regexp.MustCompile(`(?s)Bill To\s+(.*?)Leistungszeitraum`)
	reWoltVATID       = regexp.MustCompile(`USt\.-ID:\s*(DE\d+)`)
	reWoltInvoiceDate = regexp.MustCompile(`Rechnungsdatum\s+(\d{2}\.\d{2}\.\d{4})`)
	reWoltPeriod      = regexp.MustCompile(`Leistungszeitraum\s+(\d{2}\.\d{2}\.\d{4})\s*-\s*(\d{2}\.\d{2}\.\d{4})`)
	reWoltRestaurant  = regexp.MustCompile(`Restaurant\s+([^\n]+)`)
	reWoltBusinessID  = regexp.MustCompile(`Geschäfts-ID:\s*([A-Z0-9 ]+)`)

	// Table rows. Columns read net, VAT rate, VAT amount, gross; the pipe
	// characters some extractors emit are stripped before matching.
	reWoltGoodsRow   = regexp.MustCompile(`Summe verkaufte Waren\s+([\-\d,.]+)\s+(7\.00|19\.00)\s+([\-\d,.]+)\s+([\-\d,.]+)`)
	reWoltGoodsTotal = regexp.MustCompile(`Zwischensumme aller verkauften Waren \(A\)\s+([\-\d,.]+)\s+([\-\d,.]+)\s+([\-\d,.]+)`)
	reWoltDistTotal  = regexp.MustCompile(`Zwischensumme Wolt Vertrieb \(B\)\s+([\-\d,.]+)\s+([\-\d,.]+)\s+([\-\d,.]+)`)
	reWoltNetPrice   = regexp.MustCompile(`Summe Nettopreis \(A\s*-\s*B\) mit Umsatzsteuer\s+(7\.00|19\.00)\s*%\s+([\-\d,.]+)\s+(?:7\.00|19\.00)\s+([\-\d,.]+)\s+([\-\d,.]+)`)
	reWoltEndAmount  = regexp.MustCompile(`Endbetrag\s+([\-\d,.]+)\s+([\-\d,.]+)\s+([\-\d,.]+)`)
)

func amounts3(net, vat, gross string) Amounts {
	var a Amounts
	if v, ok := normalize.ParseDecimal(net); ok {
		a.Net = &v
	}
	if v, ok := normalize.ParseDecimal(vat); ok {
		a.VAT = &v
	}
	if v, ok := normalize.ParseDecimal(gross); ok {
		a.Gross = &v
	}
	return a
}

func addAmounts(sum *Amounts, a Amounts) {
	add := func(dst **float64, src *float64) {
		if src == nil {
			return
		}
		if *dst == nil {
			zero := 0.0
			*dst = &zero
		}
		**dst += *src
	}
	add(&sum.Net, a.Net)
	add(&sum.VAT, a.VAT)
	add(&sum.Gross, a.Gross)
}

func extractWolt(text string, d *Data) *WoltFields {
	f := &WoltFields{}
	clean := strings.ReplaceAll(text, "|", " ")

	if m := reWoltBillTo.FindStringSubmatch(text); m != nil {
		var lines []string
		for _, line := range strings.Split(m[1], "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			f.SupplierName = lines[0]
		}
		if len(lines) > 1 {
			f.SupplierAddress = strings.Join(lines[1:], " ")
		}
	}
	if f.SupplierName == "" {
		f.SupplierName = constants.SupplierWolt
	}
	f.SupplierVATID, _ = group1(reWoltVATID, text)

	if t := date(reWoltInvoiceDate, text); t != nil {
		d.InvoiceDate = t
	}
	if m := reWoltPeriod.FindStringSubmatch(text); m != nil {
		if t, ok := normalize.ParseDate(m[1]); ok {
			f.PeriodStart = &t
		}
		if t, ok := normalize.ParseDate(m[2]); ok {
			f.PeriodEnd = &t
		}
	}

	f.RestaurantName, _ = group1(reWoltRestaurant, text)
	f.BusinessID, _ = group1(reWoltBusinessID, text)

	for _, m := range reWoltGoodsRow.FindAllStringSubmatch(clean, -1) {
		a := amounts3(m[1], m[3], m[4])
		if strings.HasPrefix(m[2], "7") {
			f.Goods7 = a
		} else {
			f.Goods19 = a
		}
	}
	if m := reWoltGoodsTotal.FindStringSubmatch(clean); m != nil {
		f.GoodsTotal = amounts3(m[1], m[2], m[3])
	}
	if m := reWoltDistTotal.FindStringSubmatch(clean); m != nil {
		f.DistributionTotal = amounts3(m[1], m[2], m[3])
	}

	for _, m := range reWoltNetPrice.FindAllStringSubmatch(clean, -1) {
		a := amounts3(m[2], m[3], m[4])
		if strings.HasPrefix(m[1], "7") {
			f.NetPrice7 = a
		} else {
			f.NetPrice19 = a
		}
	}
	// The total row prints on a separate page in some layouts; summing the
	// rate rows is always available when either matched.
	if f.NetPrice7.Net != nil || f.NetPrice19.Net != nil {
		addAmounts(&f.NetPriceTotal, f.NetPrice7)
		addAmounts(&f.NetPriceTotal, f.NetPrice19)
	}

	if m := reWoltEndAmount.FindStringSubmatch(clean); m != nil {
		f.EndAmount = amounts3(m[1], m[2], m[3])
		if f.EndAmount.Gross != nil {
			d.TotalAmount = f.EndAmount.Gross
		}
	}

	return f
}
