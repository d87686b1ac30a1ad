package extract

import (
	"regexp"
	"strings"

	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

var (
	reUberInvoiceDate = regexp.MustCompile(`Rechnungsdatum:\s*(\d{2}\.\d{2}\.\d{4})`)
	reUberTaxDate     = regexp.MustCompile(`Steuerdatum\s+(\d{2}\.\d{2}\.\d{4})`)
	reUberPeriod      = regexp.MustCompile(`Zeitraum:\s*(\d{2}\.\d{2}\.\d{4})\s*-\s*(\d{2}\.\d{2}\.\d{4})`)
	reUberPeriodAlt   = regexp.MustCompile(`vom\s+(\d{2}\.\d{2}\.\d{4})\s+bis\s+(?:zum\s+)?(\d{2}\.\d{2}\.\d{4})`)

	reUberRestaurant = regexp.MustCompile(`Restaurant:\s*([^\n]+)`)
	// The summary often omits the label; the customer block then reads
	// "<brand> - <company> (<location>)" with the address on the next lines.
	reUberRestaurantAlt = regexp.MustCompile(`(?i)([A-ZÄÖÜ][\w&.\- ]+ - [A-ZÄÖÜ][\w&.\- ]+ \([^)]+\))`)
	reUberAddress       = regexp.MustCompile(`(?im)^([A-ZÄÖÜa-zäöüß.\- ]+\s\d+[a-z]?)[,\s]+(\d{5})[,\s]+([A-Za-zÄÖÜäöüß\- ]+?)(?:[,\s]+(Germany|Deutschland))?$`)
	reUberCompanyBlock  = regexp.MustCompile(`(?im)GmbH\s*\n([^\n]+)\n([^\n]+)`)

	reUberHRB       = regexp.MustCompile(`(?i)Handelsregisternummer:\s*([A-Z0-9 ]+)`)
	reUberVATID     = regexp.MustCompile(`(?i)USt-IdNr\.:\s*(DE\d+)`)
	reUberTaxNumber = regexp.MustCompile(`(?i)St-Nr\.:\s*([\d/]+)`)

	reUberOrders       = regexp.MustCompile(`(\d+)\s+Bestellungen im Gesamtwert`)
	reUberOrderValue   = regexp.MustCompile(`Bestellungen im Gesamtwert von:\s*€\s*([\d,.]+)`)
	reUberGrossRevenue = regexp.MustCompile(`Bruttoumsatz nach Rabatten\s*€\s*([\d,.]+)`)
	reUberCommOwn      = regexp.MustCompile(`(?s)Provision, eigene Lieferung.*?€\s*([\d,.]+)`)
	reUberCommPickup   = regexp.MustCompile(`(?s)Provision, Abholung.*?€\s*([\d,.]+)`)
	reUberFee          = regexp.MustCompile(`Uber Eats Gebühr\s*€\s*([\d,.]+)`)
	reUberVAT19        = regexp.MustCompile(`MwSt\.\s*\(19%[^€]*€\s*([\d,.]+)`)
	reUberCash         = regexp.MustCompile(`Eingenommenes Bargeld\s*€\s*([\d,.]+)`)
	reUberPayout       = regexp.MustCompile(`Gesamtauszahlung\s*€\s*([\d,.]+)`)
	reUberNetAmount    = regexp.MustCompile(`Gesamtnettobetrag\s*([\d,.]+)\s*€`)
	reUberVATAmount    = regexp.MustCompile(`Gesamtbetrag USt 19%\s*([\d,.]+)\s*€`)
	reUberTotal        = regexp.MustCompile(`Gesamtbetrag\s*([\d,.]+)\s*€`)
)

func extractUberEats(text string, d *Data) *UberEatsFields {
	f := &UberEatsFields{}

	if t := date(reUberInvoiceDate, text); t != nil {
		d.InvoiceDate = t
	}
	f.TaxDate = date(reUberTaxDate, text)

	period := reUberPeriod.FindStringSubmatch(text)
	if period == nil {
		period = reUberPeriodAlt.FindStringSubmatch(text)
	}
	if period != nil {
		if t, ok := normalize.ParseDate(period[1]); ok {
			f.PeriodStart = &t
		}
		if t, ok := normalize.ParseDate(period[2]); ok {
			f.PeriodEnd = &t
		}
	}

	extractUberEatsParties(text, f)

	f.BusinessID, _ = group1(reUberHRB, text)
	f.CustomerVATID, _ = group1(reUberVATID, text)
	f.TaxNumber, _ = group1(reUberTaxNumber, text)

	f.TotalOrders = count(reUberOrders, text)
	f.TotalOrderValue = dec(reUberOrderValue, text)
	f.GrossRevenueAfterDiscounts = dec(reUberGrossRevenue, text)
	f.CommissionOwnDelivery = dec(reUberCommOwn, text)
	f.CommissionPickup = dec(reUberCommPickup, text)
	f.UberEatsFee = dec(reUberFee, text)
	f.VAT19 = dec(reUberVAT19, text)
	f.CashCollected = dec(reUberCash, text)
	f.TotalPayout = dec(reUberPayout, text)
	f.NetAmount = dec(reUberNetAmount, text)
	f.VATAmount = dec(reUberVATAmount, text)

	if total := dec(reUberTotal, text); total != nil {
		d.TotalAmount = total
	}

	return f
}

func extractUberEatsParties(text string, f *UberEatsFields) {
	if m := regexp.MustCompile(`(?i)([A-ZÄÖÜ][A-ZÄÖÜ &.\-]+GmbH)`).FindStringSubmatch(text); m != nil {
		f.CustomerCompany = strings.TrimSpace(m[1])
	}

	if name, ok := group1(reUberRestaurant, text); ok {
		f.RestaurantName = name
	} else if m := reUberRestaurantAlt.FindStringSubmatch(text); m != nil {
		f.RestaurantName = strings.TrimSpace(m[1])
	}

	if m := reUberAddress.FindStringSubmatch(text); m != nil {
		country := m[4]
		if country == "" {
			country = "Germany"
		}
		f.RestaurantAddress = m[1] + ", " + m[2] + ", " + strings.TrimSpace(m[3]) + ", " + country
	} else if m := reUberCompanyBlock.FindStringSubmatch(text); m != nil {
		f.RestaurantAddress = strings.TrimSpace(m[1]) + ", " + strings.TrimSpace(m[2])
	}
}
