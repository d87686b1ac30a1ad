// Package normalize converts locale-formatted decimal strings and the date
// formats seen on German delivery-platform invoices into canonical values.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts is tried in order; the first successful parse wins.
var dateLayouts = []string{
	"02.01.2006",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"01/02/2006",
	"02.01.06",
	"02/01/06",
}

// ParseDecimal converts a currency/percent literal into a float64.
// Both "1.234,56" (German) and "1234.56" styles are accepted: when both
// separators are present the dots are thousands markers, otherwise a comma is
// the decimal separator. Currency and percent signs are stripped.
func ParseDecimal(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, false
	}
	r := strings.NewReplacer("€", "", "$", "", "£", "", "%", "", "−", "-", " ", "", " ", "")
	clean = r.Replace(clean)

	if strings.Contains(clean, ",") && strings.Contains(clean, ".") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatDecimal renders f with German separators and two decimal places.
// FormatDecimal and ParseDecimal round-trip: parsing the output yields f
// rounded to cents.
func FormatDecimal(f float64) string {
	neg := f < 0
	f = math.Abs(f)
	cents := int64(math.Round(f * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	fmt.Fprintf(&b, "%02d", frac)
	return b.String()
}

// ParseDate parses the date formats observed across the three platforms.
func ParseDate(s string) (time.Time, bool) {
	clean := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, clean, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateTime parses the "02-11-2025, 12:38:34" stamps used by the
// Lieferando order-item table.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("02-01-2006, 15:04:05", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TempInvoiceNumber builds the placeholder business key used when no invoice
// number could be extracted. The 14-digit stamp keeps placeholders unique per
// second, which is enough for a single synchronous processing loop.
func TempInvoiceNumber(now time.Time) string {
	return "TEMP-" + now.Format("20060102150405")
}
