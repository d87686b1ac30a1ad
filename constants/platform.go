package constants

// Platform identifies the delivery marketplace an invoice belongs to.
type Platform string

// Stable values (store these exact strings in DB).
const (
	PlatformLieferando Platform = "lieferando"
	PlatformWolt       Platform = "wolt"
	PlatformUberEats   Platform = "uber_eats"
	PlatformUnknown    Platform = "unknown"
)

// AllPlatforms lists every platform with a persisted invoice collection.
var AllPlatforms = []Platform{PlatformLieferando, PlatformWolt, PlatformUberEats}

// ParsePlatform maps a wire string onto a known platform. The empty string is
// accepted and means "all platforms" to filters.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformLieferando, PlatformWolt, PlatformUberEats:
		return Platform(s), true
	case "":
		return "", true
	}
	return PlatformUnknown, false
}

// DocType tags a PDF inside a multi-document email.
type DocType string

const (
	DocPrimaryInvoice DocType = "primary_invoice"
	DocNettingReport  DocType = "netting_report"
	DocIrrelevant     DocType = "irrelevant"
)
