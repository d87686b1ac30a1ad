// Package classify decides which delivery platform a PDF belongs to and, for
// multi-document report emails, what kind of document it is.
//
// Classification is a fixed decision table: an ordered list of (predicate,
// platform) pairs evaluated top to bottom. Filename rules always run before
// content rules and are authoritative when they match.
package classify

import (
	"regexp"
	"strings"

	"github.com/cc-collective/invoice-ingest/constants"
)

// Wolt filename shapes:
//
//	Edelweiss_Baumschulenstraße_2025-11-30_00:00:00.000_692cfcbbc3686f9e6b931ea6.pdf
//	Edelweiss Baumschulenstraße__netting_report__semi_monthly__2025-11-16__2025-12-01.pdf
//	Edelweiss Baumschulenstraße__sales_report__semi_monthly__2025-11-16__2025-12-01.pdf
var (
	reWoltDateHash  = regexp.MustCompile(`_\d{4}-\d{2}-\d{2}_\d{2}:\d{2}:\d{2}\.\d{3}_[a-f0-9]+\.pdf$`)
	reWoltDateRange = regexp.MustCompile(`_\d{4}-\d{2}-\d{2}__\d{4}-\d{2}-\d{2}\.pdf$`)
)

type filenameRule struct {
	name     string
	match    func(name string) bool
	platform constants.Platform
}

type contentRule struct {
	name     string
	match    func(text string) bool
	platform constants.Platform
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// filenameRules run against the lowercased filename, in priority order.
var filenameRules = []filenameRule{
	{
		// "rechnung_und..." is unconditionally Lieferando, whatever the content says.
		name:     "lieferando_rechnung_und_prefix",
		match:    func(name string) bool { return strings.HasPrefix(name, "rechnung_und") },
		platform: constants.PlatformLieferando,
	},
	{
		name:     "wolt_netting_report_marker",
		match:    func(name string) bool { return strings.Contains(name, "__netting_report__") },
		platform: constants.PlatformWolt,
	},
	{
		name:     "wolt_sales_report_marker",
		match:    func(name string) bool { return strings.Contains(name, "__sales_report__") },
		platform: constants.PlatformWolt,
	},
	{
		name:     "wolt_date_time_hash_suffix",
		match:    reWoltDateHash.MatchString,
		platform: constants.PlatformWolt,
	},
	{
		name:     "wolt_date_range_suffix",
		match:    reWoltDateRange.MatchString,
		platform: constants.PlatformWolt,
	},
	{
		name:     "lieferando_brand_substring",
		match:    func(name string) bool { return containsAny(name, "lieferando", "yourdelivery", "takeaway", "rechnung_und") },
		platform: constants.PlatformLieferando,
	},
}

// contentRules run against the lowercased full text when no filename rule hit.
var contentRules = []contentRule{
	{
		// "Bestell- und Zahlungsübersicht" is the Uber Eats summary header.
		name:     "uber_eats_summary_header",
		match:    func(text string) bool { return strings.Contains(text, "bestell- und zahlungsübersicht") },
		platform: constants.PlatformUberEats,
	},
	{
		name:     "uber_eats_brand",
		match:    func(text string) bool { return strings.Contains(text, "uber eats") },
		platform: constants.PlatformUberEats,
	},
	{
		// Self-billed Wolt invoice, unless the Lieferando brand is also present.
		name: "wolt_selbstfakturierung",
		match: func(text string) bool {
			return strings.Contains(text, "rechnung") &&
				strings.Contains(text, "selbstfakturierung") &&
				!containsAny(text, "lieferando", "yourdelivery", "takeaway")
		},
		platform: constants.PlatformWolt,
	},
	{
		name: "wolt_brand",
		match: func(text string) bool {
			return strings.Contains(text, "wolt") && !strings.Contains(text, "lieferando")
		},
		platform: constants.PlatformWolt,
	},
	{
		name:     "lieferando_brand",
		match:    func(text string) bool { return containsAny(text, "lieferando", "yourdelivery", "takeaway") },
		platform: constants.PlatformLieferando,
	},
}

// FromFilename resolves the platform from the attachment filename alone.
// Returns PlatformUnknown when no rule matches.
func FromFilename(filename string) constants.Platform {
	name := strings.ToLower(strings.TrimSpace(filename))
	if name == "" {
		return constants.PlatformUnknown
	}
	for _, r := range filenameRules {
		if r.match(name) {
			return r.platform
		}
	}
	return constants.PlatformUnknown
}

// FromContent resolves the platform from the extracted PDF text alone.
func FromContent(content string) constants.Platform {
	text := strings.ToLower(content)
	for _, r := range contentRules {
		if r.match(text) {
			return r.platform
		}
	}
	return constants.PlatformUnknown
}

// Classify decides the platform for one PDF. The filename verdict wins;
// content heuristics are the fallback. PlatformUnknown means the PDF belongs
// to an unrelated counterparty and must be skipped silently.
func Classify(filename, content string) constants.Platform {
	if p := FromFilename(filename); p != constants.PlatformUnknown {
		return p
	}
	return FromContent(content)
}
